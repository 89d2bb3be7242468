package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/memorial-backend/internal/domain"
	"github.com/heartmarshall/memorial-backend/pkg/ctxutil"
)

type notificationStore interface {
	List(ctx context.Context, f domain.NotificationFilter) ([]domain.Notification, error)
	Requeue(ctx context.Context, ids []uuid.UUID, at time.Time) ([]uuid.UUID, error)
}

type actorReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Waker nudges the dispatcher to run a pass before its next tick.
type Waker interface {
	Wake(ctx context.Context) error
}

const (
	DefaultLimit   = 50
	MaxLimit       = 200
	MaxRequeueSize = 500
)

// Service exposes the notification queue to users and operators.
type Service struct {
	notifications notificationStore
	users         actorReader
	audit         auditLogger
	tx            txManager
	waker         Waker
	log           *slog.Logger
}

// NewService creates a notification service. waker may be nil.
func NewService(
	log *slog.Logger,
	notifications notificationStore,
	users actorReader,
	audit auditLogger,
	tx txManager,
	waker Waker,
) *Service {
	return &Service{
		notifications: notifications,
		users:         users,
		audit:         audit,
		tx:            tx,
		waker:         waker,
		log:           log.With("service", "notify"),
	}
}

// ListInput holds paging parameters.
type ListInput struct {
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "max 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ListInput) limit() int {
	if i.Limit == 0 {
		return DefaultLimit
	}
	return i.Limit
}

// ListForRecipient returns the caller's in-app inbox, newest first.
func (s *Service) ListForRecipient(ctx context.Context, input ListInput) ([]domain.Notification, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	channel := domain.ChannelInApp
	status := domain.NotificationStatusSent
	items, err := s.notifications.List(ctx, domain.NotificationFilter{
		RecipientID: &userID,
		Channel:     &channel,
		Status:      &status,
		Limit:       input.limit(),
		Offset:      input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list inbox: %w", err)
	}
	return items, nil
}

// ListByStatusInput selects notifications for operators.
type ListByStatusInput struct {
	Status domain.NotificationStatus
	ListInput
}

// ListByStatus returns notifications in one status for admins.
func (s *Service) ListByStatus(ctx context.Context, input ListByStatusInput) ([]domain.Notification, error) {
	if _, err := s.requireAdmin(ctx); err != nil {
		return nil, err
	}
	if !input.Status.IsValid() {
		return nil, domain.NewValidationError("status", "must be pending, sent or failed")
	}
	if err := input.ListInput.Validate(); err != nil {
		return nil, err
	}

	status := input.Status
	items, err := s.notifications.List(ctx, domain.NotificationFilter{
		Status: &status,
		Limit:  input.limit(),
		Offset: input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return items, nil
}

// RequeueFailed moves failed notifications back to pending so the dispatcher
// retries them. It is the only way a failed notification is sent again.
func (s *Service) RequeueFailed(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	actorID, err := s.requireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, domain.NewValidationError("ids", "required")
	}
	if len(ids) > MaxRequeueSize {
		return nil, domain.NewValidationError("ids", "max 500 ids")
	}
	var requeued []uuid.UUID
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := time.Now().UTC()
		var err error
		requeued, err = s.notifications.Requeue(txCtx, ids, now)
		if err != nil {
			return fmt.Errorf("requeue: %w", err)
		}
		for _, id := range requeued {
			rec := domain.NewAuditRecord(actorID, domain.EntityTypeNotification, id, domain.AuditActionRequeue,
				string(domain.NotificationStatusFailed), string(domain.NotificationStatusPending), now)
			if err := s.audit.Log(txCtx, rec); err != nil {
				return fmt.Errorf("audit log: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(requeued) > 0 {
		s.wake(ctx)
	}

	s.log.InfoContext(ctx, "notifications requeued",
		slog.String("actor_id", actorID.String()),
		slog.Int("requested", len(ids)),
		slog.Int("requeued", len(requeued)),
	)

	return requeued, nil
}

func (s *Service) wake(ctx context.Context) {
	if s.waker == nil {
		return
	}
	if err := s.waker.Wake(ctx); err != nil {
		s.log.WarnContext(ctx, "dispatcher wake failed", slog.String("error", err.Error()))
	}
}

// requireAdmin checks the stored role of the caller.
func (s *Service) requireAdmin(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	actor, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return uuid.Nil, domain.ErrUnauthorized
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("load actor: %w", err)
	}
	if actor.IsDeleted() {
		return uuid.Nil, domain.ErrUnauthorized
	}
	if !actor.Role.IsAdmin() {
		return uuid.Nil, domain.ErrForbidden
	}
	return userID, nil
}
