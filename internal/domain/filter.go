package domain

import (
	"time"

	"github.com/google/uuid"
)

// PendingFilter narrows the moderation queue.
type PendingFilter struct {
	// ProfileIDs restricts the queue to these profiles. Nil means every
	// profile; an empty non-nil slice matches nothing.
	ProfileIDs []uuid.UUID
	Kinds      []ContentKind
	Limit      int
}

// StatusTransition is one conditional status change of a content item.
type StatusTransition struct {
	ItemID  uuid.UUID
	From    ContentStatus
	To      ContentStatus
	ActorID uuid.UUID
	Note    *string
	At      time.Time
}

// NotificationFilter narrows notification listings. Nil fields do not filter.
type NotificationFilter struct {
	RecipientID *uuid.UUID
	Channel     *Channel
	Status      *NotificationStatus
	Limit       int
	Offset      int
}

// ChannelSettings is the set of notification preferences a user controls.
type ChannelSettings struct {
	Email           *string
	EmailEnabled    bool
	TelegramChatID  *int64
	TelegramEnabled bool
}
