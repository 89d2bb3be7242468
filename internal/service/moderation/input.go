package moderation

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/memorial-backend/internal/domain"
)

const (
	MaxPayloadBytes = 64 << 10
	MaxTitleLength  = 200
	MaxNoteLength   = 2000
	DefaultLimit    = 50
	MaxLimit        = 200
)

// SubmitInput holds the parameters for submitting a content item.
// ProfileID is nil for kind profile, which creates a new memorial.
type SubmitInput struct {
	ProfileID *uuid.UUID
	Kind      domain.ContentKind
	Payload   json.RawMessage
}

// Validate checks all fields and collects all errors.
func (i SubmitInput) Validate() error {
	var errs []domain.FieldError

	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "unknown content kind"})
	}
	if i.Kind == domain.ContentKindProfile && i.ProfileID != nil {
		errs = append(errs, domain.FieldError{Field: "profile_id", Message: "must be empty for a new profile"})
	}
	if i.Kind != domain.ContentKindProfile && (i.ProfileID == nil || *i.ProfileID == uuid.Nil) {
		errs = append(errs, domain.FieldError{Field: "profile_id", Message: "required"})
	}
	errs = append(errs, validatePayload(i.Payload)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validatePayload(p json.RawMessage) []domain.FieldError {
	if len(p) == 0 {
		return []domain.FieldError{{Field: "payload", Message: "required"}}
	}
	if len(p) > MaxPayloadBytes {
		return []domain.FieldError{{Field: "payload", Message: "max 64 KiB"}}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(p, &fields); err != nil || fields == nil {
		return []domain.FieldError{{Field: "payload", Message: "must be a JSON object"}}
	}

	raw, ok := fields["title"]
	if !ok {
		return nil
	}
	var title string
	if err := json.Unmarshal(raw, &title); err != nil {
		return []domain.FieldError{{Field: "payload.title", Message: "must be a string"}}
	}
	if utf8.RuneCountInString(strings.TrimSpace(title)) > MaxTitleLength {
		return []domain.FieldError{{Field: "payload.title", Message: "max 200 characters"}}
	}
	return nil
}

// ModerateInput holds a moderation decision.
type ModerateInput struct {
	ItemID uuid.UUID
	Action domain.ModerationAction
	Note   *string
}

// Validate checks all fields and collects all errors. Kind-specific note
// requirements are checked once the item is loaded.
func (i ModerateInput) Validate() error {
	var errs []domain.FieldError
	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if !i.Action.IsValid() {
		errs = append(errs, domain.FieldError{Field: "action", Message: "must be approve or reject"})
	}
	errs = append(errs, validateNote(i.Note)...)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ArchiveInput holds the parameters for archiving an approved item.
type ArchiveInput struct {
	ItemID uuid.UUID
	Note   *string
}

// Validate checks all fields and collects all errors.
func (i ArchiveInput) Validate() error {
	var errs []domain.FieldError
	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	errs = append(errs, validateNote(i.Note)...)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteInput holds the parameters for soft-deleting an item.
type DeleteInput struct {
	ItemID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteInput) Validate() error {
	if i.ItemID == uuid.Nil {
		return domain.NewValidationError("item_id", "required")
	}
	return nil
}

// ListPendingInput narrows the moderation queue.
type ListPendingInput struct {
	ProfileID *uuid.UUID
	Kinds     []domain.ContentKind
	Limit     int
}

// Validate checks all fields and collects all errors.
func (i ListPendingInput) Validate() error {
	var errs []domain.FieldError
	for _, k := range i.Kinds {
		if !k.IsValid() {
			errs = append(errs, domain.FieldError{Field: "kind", Message: "unknown content kind: " + string(k)})
		}
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "max 200"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// EditorInput names a profile and the user whose editor rights change.
type EditorInput struct {
	ProfileID uuid.UUID
	UserID    uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i EditorInput) Validate() error {
	var errs []domain.FieldError
	if i.ProfileID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "profile_id", Message: "required"})
	}
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateNote(note *string) []domain.FieldError {
	if note != nil && utf8.RuneCountInString(strings.TrimSpace(*note)) > MaxNoteLength {
		return []domain.FieldError{{Field: "note", Message: "max 2000 characters"}}
	}
	return nil
}
