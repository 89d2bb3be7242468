package moderation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/memorial-backend/internal/domain"
	"github.com/heartmarshall/memorial-backend/internal/service/access"
)

// AddEditor grants userID delegated editor rights over a profile. Adding an
// existing editor is a no-op that writes nothing.
func (s *Service) AddEditor(ctx context.Context, input EditorInput) (*EditorResult, error) {
	actor, profile, err := s.prepareEditorChange(ctx, input)
	if err != nil {
		return nil, err
	}
	if profile.IsOwner(input.UserID) {
		return nil, domain.NewValidationError("user_id", "owner cannot be an editor")
	}

	target, err := s.users.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if target.IsDeleted() {
		return nil, fmt.Errorf("user %s: %w", input.UserID, domain.ErrNotFound)
	}

	return s.applyEditorChange(ctx, actor, input, domain.AuditActionEditorAdd, domain.NotificationTypeEditorAdded,
		func(txCtx context.Context, now time.Time) (bool, error) {
			return s.profiles.AddEditor(txCtx, profile.ID, input.UserID, actor.ID, now)
		})
}

// RemoveEditor revokes userID's editor rights. Removing a non-editor is a
// no-op that writes nothing.
func (s *Service) RemoveEditor(ctx context.Context, input EditorInput) (*EditorResult, error) {
	actor, profile, err := s.prepareEditorChange(ctx, input)
	if err != nil {
		return nil, err
	}

	return s.applyEditorChange(ctx, actor, input, domain.AuditActionEditorRemove, domain.NotificationTypeEditorRemoved,
		func(txCtx context.Context, _ time.Time) (bool, error) {
			return s.profiles.RemoveEditor(txCtx, profile.ID, input.UserID)
		})
}

func (s *Service) prepareEditorChange(ctx context.Context, input EditorInput) (domain.User, domain.Profile, error) {
	actor, err := s.requireActor(ctx)
	if err != nil {
		return domain.User{}, domain.Profile{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.User{}, domain.Profile{}, err
	}

	_, profile, err := s.loadItem(ctx, input.ProfileID)
	if err != nil {
		return domain.User{}, domain.Profile{}, err
	}
	if !access.CanManageEditors(actor, profile) {
		return domain.User{}, domain.Profile{}, domain.ErrForbidden
	}
	return actor, profile, nil
}

func (s *Service) applyEditorChange(
	ctx context.Context,
	actor domain.User,
	input EditorInput,
	action domain.AuditAction,
	notification domain.NotificationType,
	change func(ctx context.Context, now time.Time) (bool, error),
) (*EditorResult, error) {
	var (
		changed  bool
		notified int
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := s.clock()
		var err error
		changed, err = change(txCtx, now)
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("user %s: %w", input.UserID, err)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", action, err)
		}
		if !changed {
			return nil
		}

		rec := domain.NewAuditRecord(actor.ID, domain.EntityTypeProfile, input.ProfileID, action, "", "", now)
		rec.Changes = map[string]any{"user_id": input.UserID.String()}
		if err := s.audit.Log(txCtx, rec); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}

		notified, err = s.produce(txCtx, domain.Event{
			Type:       notification,
			EntityType: domain.EntityTypeProfile,
			EntityID:   input.ProfileID,
			ActorID:    actor.ID,
			Recipients: []uuid.UUID{input.UserID},
			Kind:       domain.ContentKindProfile,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.wake(ctx, notified)

	if changed {
		s.log.InfoContext(ctx, "profile editors changed",
			slog.String("actor_id", actor.ID.String()),
			slog.String("profile_id", input.ProfileID.String()),
			slog.String("user_id", input.UserID.String()),
			slog.String("action", string(action)),
		)
	}

	return &EditorResult{Changed: changed}, nil
}
