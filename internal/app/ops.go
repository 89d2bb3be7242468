package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/memorial-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/memorial-backend/internal/adapter/postgres/audit"
	notificationrepo "github.com/heartmarshall/memorial-backend/internal/adapter/postgres/notification"
	userrepo "github.com/heartmarshall/memorial-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/memorial-backend/internal/domain"
	"github.com/heartmarshall/memorial-backend/internal/service/notify"
	"github.com/heartmarshall/memorial-backend/pkg/ctxutil"
)

// RequeueOptions selects failed notifications to send again.
// When IDs is empty the oldest failed rows are picked, optionally per channel.
type RequeueOptions struct {
	ActorID uuid.UUID
	IDs     []uuid.UUID
	Channel string
	Limit   int
}

func (o RequeueOptions) validate() error {
	var errs []domain.FieldError
	if o.ActorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "actor", Message: "required"})
	}
	if o.Channel != "" && !domain.Channel(o.Channel).IsValid() {
		errs = append(errs, domain.FieldError{Field: "channel", Message: "must be email, inapp or telegram"})
	}
	if len(o.IDs) == 0 && (o.Limit < 1 || o.Limit > notify.MaxRequeueSize) {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 1 and %d", notify.MaxRequeueSize)})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

type failedLister interface {
	List(ctx context.Context, f domain.NotificationFilter) ([]domain.Notification, error)
}

// failedIDs resolves the ids to requeue from explicit ids or a failed-queue scan.
func failedIDs(ctx context.Context, store failedLister, opts RequeueOptions) ([]uuid.UUID, error) {
	if len(opts.IDs) > 0 {
		return opts.IDs, nil
	}

	status := domain.NotificationStatusFailed
	filter := domain.NotificationFilter{Status: &status, Limit: opts.Limit}
	if opts.Channel != "" {
		ch := domain.Channel(opts.Channel)
		filter.Channel = &ch
	}

	items, err := store.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list failed notifications: %w", err)
	}
	ids := make([]uuid.UUID, 0, len(items))
	for _, n := range items {
		ids = append(ids, n.ID)
	}
	return ids, nil
}

// RunRequeueFailed moves failed notifications back to pending on behalf of
// an admin and returns the ids that were requeued.
func RunRequeueFailed(ctx context.Context, opts RequeueOptions) ([]uuid.UUID, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	rt, err := bootstrap(ctx, "requeue-failed")
	if err != nil {
		return nil, err
	}
	defer rt.close()

	notifications := notificationrepo.New(rt.pool)
	var waker notify.Waker
	if rt.signal != nil {
		waker = rt.signal
	}
	svc := notify.NewService(rt.log, notifications, userrepo.New(rt.pool), auditrepo.New(rt.pool),
		postgres.NewTxManager(rt.pool), waker)

	ids, err := failedIDs(ctx, notifications, opts)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		rt.log.InfoContext(ctx, "no failed notifications to requeue")
		return nil, nil
	}

	return svc.RequeueFailed(ctxutil.WithUserID(ctx, opts.ActorID), ids)
}

// BootstrapAdminOptions identifies the first superadmin.
type BootstrapAdminOptions struct {
	UserID      uuid.UUID
	DisplayName string
	Email       string
}

func (o BootstrapAdminOptions) validate() error {
	var errs []domain.FieldError
	if o.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user-id", Message: "required"})
	}
	if strings.TrimSpace(o.DisplayName) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RunBootstrapAdmin provisions a user and grants superadmin, bypassing the
// role-assignment rules that need an existing admin. Running it twice is a no-op.
func RunBootstrapAdmin(ctx context.Context, opts BootstrapAdminOptions) (*domain.User, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	rt, err := bootstrap(ctx, "bootstrap-admin")
	if err != nil {
		return nil, err
	}
	defer rt.close()

	users := userrepo.New(rt.pool)
	audit := auditrepo.New(rt.pool)
	tx := postgres.NewTxManager(rt.pool)

	now := time.Now().UTC()
	candidate := &domain.User{
		ID:          opts.UserID,
		Role:        domain.RoleUser,
		DisplayName: strings.TrimSpace(opts.DisplayName),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if email := strings.TrimSpace(opts.Email); email != "" {
		candidate.Email = &email
	}

	var result *domain.User
	err = tx.RunInTx(ctx, func(txCtx context.Context) error {
		u, err := users.Upsert(txCtx, candidate)
		if err != nil {
			return fmt.Errorf("upsert user: %w", err)
		}
		if u.IsDeleted() {
			return fmt.Errorf("user %s is deleted: %w", u.ID, domain.ErrInvalidState)
		}
		if u.Role == domain.RoleSuperadmin {
			result = u
			return nil
		}

		before := u.Role
		if err := users.UpdateRole(txCtx, u.ID, before, domain.RoleSuperadmin, now); err != nil {
			return fmt.Errorf("update role: %w", err)
		}
		rec := domain.NewAuditRecord(u.ID, domain.EntityTypeUser, u.ID, domain.AuditActionRoleChange,
			string(before), string(domain.RoleSuperadmin), now)
		if err := audit.Log(txCtx, rec); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}

		u.Role = domain.RoleSuperadmin
		u.UpdatedAt = now
		result = u
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, fmt.Errorf("role changed concurrently, run again: %w", err)
		}
		return nil, err
	}

	rt.log.InfoContext(ctx, "superadmin bootstrapped", slog.String("user_id", result.ID.String()))
	return result, nil
}
