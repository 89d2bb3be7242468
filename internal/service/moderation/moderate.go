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

var auditActionFor = map[domain.ModerationAction]domain.AuditAction{
	domain.ModerationActionApprove: domain.AuditActionApprove,
	domain.ModerationActionReject:  domain.AuditActionReject,
}

var notificationFor = map[domain.ModerationAction]domain.NotificationType{
	domain.ModerationActionApprove: domain.NotificationTypeModerationApproved,
	domain.ModerationActionReject:  domain.NotificationTypeModerationRejected,
}

// Moderate approves or rejects a pending item.
//
// Errors:
//   - domain.ErrUnauthorized without identity, domain.ErrForbidden without
//     the moderate capability;
//   - domain.ErrNotFound for missing or deleted items;
//   - domain.ErrInvalidState when the item is not pending;
//   - *domain.ValidationError for an unknown action or a missing required note;
//   - domain.ErrAlreadyModerated when a concurrent decision won.
func (s *Service) Moderate(ctx context.Context, input ModerateInput) (*ModerateResult, error) {
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

	if !access.Resolve(actor, item, profile).Has(domain.CapabilityModerate) {
		return nil, domain.ErrForbidden
	}

	target := input.Action.TargetStatus()
	if !domain.CanTransition(item.Status, target) {
		return nil, fmt.Errorf("cannot %s a %s item: %w", input.Action, item.Status, domain.ErrInvalidState)
	}

	note := trimOrNil(input.Note)
	if input.Action == domain.ModerationActionReject && note == nil && domain.PolicyFor(item.Kind).RequiresRejectNote {
		return nil, domain.NewValidationError("note", "required when rejecting a "+string(item.Kind))
	}

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
			To:      target,
			ActorID: actor.ID,
			Note:    note,
			At:      now,
		})
		if errors.Is(err, domain.ErrConflict) {
			return fmt.Errorf("content item %s: %w", item.ID, domain.ErrAlreadyModerated)
		}
		if err != nil {
			return fmt.Errorf("update status: %w", err)
		}

		rec := domain.NewAuditRecord(actor.ID, domain.EntityTypeContentItem, item.ID,
			auditActionFor[input.Action], string(item.Status), string(target), now)
		if note != nil {
			rec.Changes = map[string]any{"note": *note}
		}
		if err := s.audit.Log(txCtx, rec); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}

		notified, err = s.produce(txCtx, domain.Event{
			Type:       notificationFor[input.Action],
			EntityType: domain.EntityTypeContentItem,
			EntityID:   item.ID,
			ActorID:    actor.ID,
			Recipients: []uuid.UUID{item.AuthorID, profile.OwnerID},
			Kind:       item.Kind,
			Note:       note,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.wake(ctx, notified)

	s.log.InfoContext(ctx, "content moderated",
		slog.String("actor_id", actor.ID.String()),
		slog.String("item_id", item.ID.String()),
		slog.String("kind", string(item.Kind)),
		slog.String("status", string(target)),
		slog.Int("notified", notified),
	)

	return &ModerateResult{Item: *updated, NewStatus: target, Notified: notified}, nil
}
