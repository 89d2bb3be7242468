// Package moderation drives content items through their approval workflow.
//
// Every mutating operation resolves the caller's capabilities first, then
// applies a conditional status change, writes an audit record and enqueues
// notifications in a single transaction.
package moderation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/memorial-backend/internal/domain"
	"github.com/heartmarshall/memorial-backend/pkg/ctxutil"
)

type contentRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ContentItem, error)
	Create(ctx context.Context, item domain.ContentItem) error
	UpdateStatus(ctx context.Context, t domain.StatusTransition) (*domain.ContentItem, error)
	SoftDelete(ctx context.Context, id uuid.UUID, expected domain.ContentStatus, by uuid.UUID, at time.Time) error
	ListPending(ctx context.Context, f domain.PendingFilter) ([]domain.ContentItem, error)
}

type profileRepo interface {
	Create(ctx context.Context, p domain.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	AddEditor(ctx context.Context, profileID, userID, addedBy uuid.UUID, now time.Time) (bool, error)
	RemoveEditor(ctx context.Context, profileID, userID uuid.UUID) (bool, error)
	ManagedProfileIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type auditRepo interface {
	Log(ctx context.Context, record domain.AuditRecord) error
	GetByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error)
}

type producer interface {
	Produce(ctx context.Context, ev domain.Event) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type waker interface {
	Wake(ctx context.Context) error
}

// Service implements the moderation workflow.
type Service struct {
	content  contentRepo
	profiles profileRepo
	users    userRepo
	audit    auditRepo
	producer producer
	tx       txManager
	waker    waker
	log      *slog.Logger
	clock    func() time.Time
}

// NewService creates a moderation service. w may be nil, in which case the
// dispatcher only picks up new notifications on its next tick.
func NewService(
	log *slog.Logger,
	content contentRepo,
	profiles profileRepo,
	users userRepo,
	audit auditRepo,
	producer producer,
	tx txManager,
	w waker,
) *Service {
	return &Service{
		content:  content,
		profiles: profiles,
		users:    users,
		audit:    audit,
		producer: producer,
		tx:       tx,
		waker:    w,
		log:      log.With("service", "moderation"),
		clock:    func() time.Time { return time.Now().UTC() },
	}
}

// requireActor loads the authenticated caller. Unknown and deleted users are
// treated as unauthenticated.
func (s *Service) requireActor(ctx context.Context) (domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.User{}, domain.ErrUnauthorized
	}
	u, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, domain.ErrUnauthorized
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("load actor: %w", err)
	}
	if u.IsDeleted() {
		return domain.User{}, domain.ErrUnauthorized
	}
	return *u, nil
}

// optionalActor is requireActor for read paths that allow anonymous callers.
func (s *Service) optionalActor(ctx context.Context) (domain.User, error) {
	u, err := s.requireActor(ctx)
	if errors.Is(err, domain.ErrUnauthorized) {
		return domain.AnonymousUser, nil
	}
	return u, err
}

// loadItem returns a live item and the profile it is scoped to.
func (s *Service) loadItem(ctx context.Context, itemID uuid.UUID) (domain.ContentItem, domain.Profile, error) {
	item, err := s.content.GetByID(ctx, itemID)
	if err != nil {
		return domain.ContentItem{}, domain.Profile{}, fmt.Errorf("load item: %w", err)
	}
	if item.IsDeleted() {
		return domain.ContentItem{}, domain.Profile{}, fmt.Errorf("content item %s: %w", itemID, domain.ErrNotFound)
	}
	profile, err := s.profiles.GetByID(ctx, item.ProfileID)
	if err != nil {
		return domain.ContentItem{}, domain.Profile{}, fmt.Errorf("load profile: %w", err)
	}
	return *item, *profile, nil
}

// produce wraps producer errors with the event type.
func (s *Service) produce(ctx context.Context, ev domain.Event) (int, error) {
	n, err := s.producer.Produce(ctx, ev)
	if err != nil {
		return 0, fmt.Errorf("produce %s: %w", ev.Type, err)
	}
	return n, nil
}

// wake nudges the dispatcher after a commit. Failures only delay delivery.
func (s *Service) wake(ctx context.Context, notified int) {
	if s.waker == nil || notified == 0 {
		return
	}
	if err := s.waker.Wake(ctx); err != nil {
		s.log.WarnContext(ctx, "dispatcher wake failed", slog.String("error", err.Error()))
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
