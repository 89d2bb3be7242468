package moderation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/memorial-backend/internal/domain"
	"github.com/heartmarshall/memorial-backend/internal/service/access"
)

const deletedState = "deleted"

// Delete soft-deletes an item. The write is conditional on the status read
// before the permission check, so a concurrent moderation decision turns the
// delete into domain.ErrConflict.
func (s *Service) Delete(ctx context.Context, input DeleteInput) error {
	actor, err := s.requireActor(ctx)
	if err != nil {
		return err
	}
	if err := input.Validate(); err != nil {
		return err
	}

	item, profile, err := s.loadItem(ctx, input.ItemID)
	if err != nil {
		return err
	}
	if !access.Resolve(actor, item, profile).Has(domain.CapabilityDelete) {
		return domain.ErrForbidden
	}

	notified := 0
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := s.clock()
		if err := s.content.SoftDelete(txCtx, item.ID, item.Status, actor.ID, now); err != nil {
			return fmt.Errorf("soft delete: %w", err)
		}
		if err := s.audit.Log(txCtx, domain.NewAuditRecord(actor.ID, domain.EntityTypeContentItem, item.ID,
			domain.AuditActionDelete, string(item.Status), deletedState, now)); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		n, err := s.produce(txCtx, domain.Event{
			Type:       domain.NotificationTypeContentDeleted,
			EntityType: domain.EntityTypeContentItem,
			EntityID:   item.ID,
			ActorID:    actor.ID,
			Recipients: []uuid.UUID{item.AuthorID},
			Kind:       item.Kind,
		})
		notified = n
		return err
	})
	if err != nil {
		return err
	}

	s.wake(ctx, notified)

	s.log.InfoContext(ctx, "content deleted",
		slog.String("actor_id", actor.ID.String()),
		slog.String("item_id", item.ID.String()),
		slog.String("kind", string(item.Kind)),
	)

	return nil
}
