package moderation

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/memorial-backend/internal/domain"
	"github.com/heartmarshall/memorial-backend/internal/service/access"
)

// GetCapabilities returns what the caller may do with an item. Anonymous
// callers are allowed and get at most view.
func (s *Service) GetCapabilities(ctx context.Context, itemID uuid.UUID) (domain.CapabilitySet, error) {
	if itemID == uuid.Nil {
		return 0, domain.NewValidationError("item_id", "required")
	}
	actor, err := s.optionalActor(ctx)
	if err != nil {
		return 0, err
	}
	item, profile, err := s.loadItem(ctx, itemID)
	if err != nil {
		return 0, err
	}
	return access.Resolve(actor, item, profile), nil
}
