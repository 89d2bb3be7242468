package moderation

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/memorial-backend/internal/domain"
)

// ListPending returns the caller's moderation queue oldest first, each entry
// annotated with its priority as of now. Staff see every profile; other users
// see the profiles they own or edit, minus items they may not moderate.
func (s *Service) ListPending(ctx context.Context, input ListPendingInput) ([]PendingItem, error) {
	actor, err := s.requireActor(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.PendingFilter{Kinds: input.Kinds, Limit: input.Limit}
	if filter.Limit == 0 {
		filter.Limit = DefaultLimit
	}

	staff := actor.Role.IsStaff()
	switch {
	case staff && input.ProfileID != nil:
		filter.ProfileIDs = []uuid.UUID{*input.ProfileID}
	case !staff:
		managed, err := s.profiles.ManagedProfileIDs(ctx, actor.ID)
		if err != nil {
			return nil, fmt.Errorf("managed profiles: %w", err)
		}
		if input.ProfileID != nil {
			if !slices.Contains(managed, *input.ProfileID) {
				return nil, domain.ErrForbidden
			}
			managed = []uuid.UUID{*input.ProfileID}
		}
		if managed == nil {
			managed = []uuid.UUID{}
		}
		filter.ProfileIDs = managed
	}

	items, err := s.content.ListPending(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list pending: %w", err)
	}

	now := s.clock()
	out := make([]PendingItem, 0, len(items))
	for _, item := range items {
		if !staff && !managerMayModerate(actor, item) {
			continue
		}
		out = append(out, PendingItem{
			Item:        item,
			Priority:    domain.PriorityFor(item.CreatedAt, now),
			DaysInQueue: domain.DaysInQueue(item.CreatedAt, now),
		})
	}
	return out, nil
}

// managerMayModerate applies the manager exceptions of access.Resolve to an
// item from a profile the actor is known to manage.
func managerMayModerate(actor domain.User, item domain.ContentItem) bool {
	policy := domain.PolicyFor(item.Kind)
	if !policy.ManagerModeration {
		return false
	}
	return !(policy.SelfModerationForbidden && item.AuthorID == actor.ID)
}
