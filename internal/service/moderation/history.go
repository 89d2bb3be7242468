package moderation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/memorial-backend/internal/domain"
)

// History returns the audit trail of an item, newest first. Only staff and
// managers of the item's profile may read it.
func (s *Service) History(ctx context.Context, itemID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	actor, err := s.requireActor(ctx)
	if err != nil {
		return nil, err
	}
	if itemID == uuid.Nil {
		return nil, domain.NewValidationError("item_id", "required")
	}
	if limit < 0 || limit > MaxLimit {
		return nil, domain.NewValidationError("limit", "must be between 0 and 200")
	}
	if limit == 0 {
		limit = DefaultLimit
	}

	item, profile, err := s.loadItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !actor.Role.IsStaff() && !profile.IsManager(actor.ID) {
		return nil, domain.ErrForbidden
	}

	records, err := s.audit.GetByEntity(ctx, domain.EntityTypeContentItem, item.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("get history: %w", err)
	}
	return records, nil
}
