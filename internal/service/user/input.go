package user

import (
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/memorial-backend/internal/domain"
)

// ProvisionInput holds identity fields taken from the identity provider.
type ProvisionInput struct {
	DisplayName string
	Email       *string
}

// Validate validates the provision input.
func (i ProvisionInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.DisplayName)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "display_name", Message: "required"})
	} else if len(name) > 255 {
		errs = append(errs, domain.FieldError{Field: "display_name", Message: "too long"})
	}
	errs = append(errs, validateEmail(i.Email)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateChannelsInput replaces the caller's notification preferences.
type UpdateChannelsInput struct {
	Email           *string
	EmailEnabled    bool
	TelegramChatID  *int64
	TelegramEnabled bool
}

// Validate validates the channel preferences.
func (i UpdateChannelsInput) Validate() error {
	errs := validateEmail(i.Email)

	if i.EmailEnabled && (i.Email == nil || strings.TrimSpace(*i.Email) == "") {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required when email is enabled"})
	}
	if i.TelegramEnabled && (i.TelegramChatID == nil || *i.TelegramChatID == 0) {
		errs = append(errs, domain.FieldError{Field: "telegram_chat_id", Message: "required when telegram is enabled"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SetRoleInput changes the global role of a user.
type SetRoleInput struct {
	UserID uuid.UUID
	Role   domain.Role
}

// Validate validates the role change.
func (i SetRoleInput) Validate() error {
	var errs []domain.FieldError
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be user, moderator, admin or superadmin"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateEmail(email *string) []domain.FieldError {
	if email == nil || strings.TrimSpace(*email) == "" {
		return nil
	}
	e := strings.TrimSpace(*email)
	if len(e) > 320 {
		return []domain.FieldError{{Field: "email", Message: "too long"}}
	}
	if _, err := mail.ParseAddress(e); err != nil {
		return []domain.FieldError{{Field: "email", Message: "invalid address"}}
	}
	return nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
