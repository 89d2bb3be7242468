package moderation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/memorial-backend/internal/domain"
	"github.com/heartmarshall/memorial-backend/internal/service/access"
)

// Archive hides an approved item from public view. Archived is terminal and
// distinct from rejected.
func (s *Service) Archive(ctx context.Context, input ArchiveInput) (*domain.ContentItem, error) {
	actor, err := s.requireActor(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	item, profile, err := s.loadItem(ctx, input.ItemID)
	if err != nil {
		return nil, err
	}

	caps := access.Resolve(actor, item, profile)
	if !caps.Has(domain.CapabilityEdit) && !caps.Has(domain.CapabilityDelete) {
		return nil, domain.ErrForbidden
	}
	if !domain.CanTransition(item.Status, domain.ContentStatusArchived) {
		return nil, fmt.Errorf("cannot archive a %s item: %w", item.Status, domain.ErrInvalidState)
	}

	note := trimOrNil(input.Note)

	var (
		updated  *domain.ContentItem
		notified int
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := s.clock()
		var err error
		updated, err = s.content.UpdateStatus(txCtx, domain.StatusTransition{
			ItemID:  item.ID,
			From:    item.Status,
			To:      domain.ContentStatusArchived,
			ActorID: actor.ID,
			Note:    note,
			At:      now,
		})
		if errors.Is(err, domain.ErrConflict) {
			return fmt.Errorf("content item %s changed concurrently: %w", item.ID, err)
		}
		if err != nil {
			return fmt.Errorf("update status: %w", err)
		}

		rec := domain.NewAuditRecord(actor.ID, domain.EntityTypeContentItem, item.ID,
			domain.AuditActionArchive, string(item.Status), string(domain.ContentStatusArchived), now)
		if note != nil {
			rec.Changes = map[string]any{"note": *note}
		}
		if err := s.audit.Log(txCtx, rec); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}

		notified, err = s.produce(txCtx, domain.Event{
			Type:       domain.NotificationTypeContentArchived,
			EntityType: domain.EntityTypeContentItem,
			EntityID:   item.ID,
			ActorID:    actor.ID,
			Recipients: []uuid.UUID{item.AuthorID},
			Kind:       item.Kind,
			Note:       note,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.wake(ctx, notified)

	s.log.InfoContext(ctx, "content archived",
		slog.String("actor_id", actor.ID.String()),
		slog.String("item_id", item.ID.String()),
	)

	return updated, nil
}
