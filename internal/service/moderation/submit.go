package moderation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/memorial-backend/internal/domain"
)

// Submit creates a content item authored by the caller. Kind profile creates
// a new memorial owned by the caller; every other kind attaches to an
// existing profile. The initial status follows the kind's auto-approval
// policy.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*domain.ContentItem, error) {
	actor, err := s.requireActor(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.Kind == domain.ContentKindProfile {
		return s.submitProfile(ctx, actor, input)
	}

	profile, err := s.profiles.GetByID(ctx, *input.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	profileItem, err := s.content.GetByID(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("load profile item: %w", err)
	}
	if profileItem.IsDeleted() {
		return nil, fmt.Errorf("profile %s: %w", profile.ID, domain.ErrNotFound)
	}

	isOwner := profile.IsOwner(actor.ID)
	policy := domain.PolicyFor(input.Kind)
	now := s.clock()
	item := domain.ContentItem{
		ID:        uuid.New(),
		Kind:      input.Kind,
		ProfileID: profile.ID,
		AuthorID:  actor.ID,
		Status:    policy.InitialStatus(isOwner, profile.IsEditor(actor.ID)),
		Payload:   input.Payload,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var ev *domain.Event
	switch {
	case item.Status == domain.ContentStatusPending:
		ev = &domain.Event{
			Type:       domain.NotificationTypeContentSubmitted,
			Recipients: append([]uuid.UUID{profile.OwnerID}, profile.Editors.Slice()...),
		}
	case !isOwner:
		ev = &domain.Event{
			Type:       domain.NotificationTypeContentPublished,
			Recipients: []uuid.UUID{profile.OwnerID},
		}
	}

	notified := 0
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.content.Create(txCtx, item); err != nil {
			return fmt.Errorf("create item: %w", err)
		}
		if err := s.audit.Log(txCtx, domain.NewAuditRecord(actor.ID, domain.EntityTypeContentItem, item.ID,
			domain.AuditActionCreate, "", string(item.Status), now)); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		if ev == nil {
			return nil
		}
		ev.EntityType = domain.EntityTypeContentItem
		ev.EntityID = item.ID
		ev.ActorID = actor.ID
		ev.Kind = item.Kind
		n, err := s.produce(txCtx, *ev)
		if err != nil {
			return err
		}
		notified = n
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.wake(ctx, notified)

	s.log.InfoContext(ctx, "content submitted",
		slog.String("actor_id", actor.ID.String()),
		slog.String("item_id", item.ID.String()),
		slog.String("kind", string(item.Kind)),
		slog.String("status", string(item.Status)),
		slog.Int("notified", notified),
	)

	return &item, nil
}

// submitProfile creates a memorial together with its pending profile item.
func (s *Service) submitProfile(ctx context.Context, actor domain.User, input SubmitInput) (*domain.ContentItem, error) {
	now := s.clock()
	id := uuid.New()
	item := domain.ContentItem{
		ID:        id,
		Kind:      domain.ContentKindProfile,
		ProfileID: id,
		AuthorID:  actor.ID,
		Status:    domain.PolicyFor(domain.ContentKindProfile).InitialStatus(true, false),
		Payload:   input.Payload,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.profiles.Create(txCtx, domain.Profile{ID: id, OwnerID: actor.ID, CreatedAt: now}); err != nil {
			return fmt.Errorf("create profile: %w", err)
		}
		if err := s.content.Create(txCtx, item); err != nil {
			return fmt.Errorf("create profile item: %w", err)
		}
		if err := s.audit.Log(txCtx, domain.NewAuditRecord(actor.ID, domain.EntityTypeContentItem, id,
			domain.AuditActionCreate, "", string(item.Status), now)); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "profile submitted",
		slog.String("actor_id", actor.ID.String()),
		slog.String("profile_id", id.String()),
	)

	return &item, nil
}
