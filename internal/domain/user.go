package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is a platform member. Identity comes from the external provider; the
// row stores the global role and notification preferences.
type User struct {
	ID              uuid.UUID
	Role            Role
	DisplayName     string
	Email           *string
	EmailEnabled    bool
	TelegramChatID  *int64
	TelegramEnabled bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time
}

// AnonymousUser is the actor used when a request carries no identity.
var AnonymousUser = User{Role: RoleUser}

// IsDeleted returns true if the user has been soft-deleted.
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

// IsAnonymous reports whether the user has no identity.
func (u *User) IsAnonymous() bool {
	return u.ID == uuid.Nil
}

// EnabledChannels returns the channels the user receives notifications on.
// In-app delivery is always on; email and telegram need an opt-in and an address.
func (u *User) EnabledChannels() []Channel {
	channels := []Channel{ChannelInApp}
	if u.EmailEnabled && u.Email != nil && strings.TrimSpace(*u.Email) != "" {
		channels = append(channels, ChannelEmail)
	}
	if u.TelegramEnabled && u.TelegramChatID != nil && *u.TelegramChatID != 0 {
		channels = append(channels, ChannelTelegram)
	}
	return channels
}

// HasChannel reports whether c is among EnabledChannels.
func (u *User) HasChannel(c Channel) bool {
	for _, ch := range u.EnabledChannels() {
		if ch == c {
			return true
		}
	}
	return false
}
