package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/memorial-backend/internal/domain"
	"github.com/heartmarshall/memorial-backend/internal/service/access"
	"github.com/heartmarshall/memorial-backend/pkg/ctxutil"
)

// SetRole changes the global role of a user. The caller's stored role
// decides, see access.CanAssignRole.
func (s *Service) SetRole(ctx context.Context, input SetRoleInput) (*domain.User, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	actor, err := s.users.GetByID(ctx, callerID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrUnauthorized
	}
	if err != nil {
		return nil, fmt.Errorf("user.SetRole: load actor: %w", err)
	}
	if actor.IsDeleted() {
		return nil, domain.ErrUnauthorized
	}

	target, err := s.users.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("user.SetRole: load target: %w", err)
	}
	if target.IsDeleted() {
		return nil, fmt.Errorf("user.SetRole: %w", domain.ErrNotFound)
	}

	if !access.CanAssignRole(*actor, *target, input.Role) {
		return nil, domain.ErrForbidden
	}
	if target.Role == input.Role {
		return target, nil
	}

	before := target.Role
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := time.Now().UTC()
		if err := s.users.UpdateRole(txCtx, target.ID, before, input.Role, now); err != nil {
			return fmt.Errorf("update role: %w", err)
		}
		rec := domain.NewAuditRecord(callerID, domain.EntityTypeUser, target.ID, domain.AuditActionRoleChange,
			string(before), string(input.Role), now)
		if err := s.audit.Log(txCtx, rec); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		target.Role = input.Role
		target.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("user.SetRole: %w", err)
	}

	s.log.InfoContext(ctx, "user role updated",
		slog.String("actor_id", callerID.String()),
		slog.String("target_user_id", target.ID.String()),
		slog.String("old_role", string(before)),
		slog.String("new_role", string(input.Role)),
	)

	return target, nil
}
