package moderation

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/memorial-backend/internal/domain"
	"github.com/heartmarshall/memorial-backend/internal/service/notify"
)

// memStore backs every repository the service needs with maps guarded by a
// single mutex. Status updates are conditional like the SQL versions.
type memStore struct {
	mu            sync.Mutex
	users         map[uuid.UUID]domain.User
	profiles      map[uuid.UUID]domain.Profile
	items         map[uuid.UUID]domain.ContentItem
	audit         []domain.AuditRecord
	notifications map[string]domain.Notification

	// afterItemRead runs outside the lock after every item read.
	afterItemRead func()
}

func newMemStore() *memStore {
	return &memStore{
		users:         map[uuid.UUID]domain.User{},
		profiles:      map[uuid.UUID]domain.Profile{},
		items:         map[uuid.UUID]domain.ContentItem{},
		notifications: map[string]domain.Notification{},
	}
}

func (m *memStore) addUser(role domain.Role) domain.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := domain.User{ID: uuid.New(), Role: role, DisplayName: "user"}
	m.users[u.ID] = u
	return u
}

// addProfile stores an approved profile with the given editors.
func (m *memStore) addProfile(owner uuid.UUID, editors ...uuid.UUID) domain.Profile {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := domain.Profile{ID: uuid.New(), OwnerID: owner, Editors: domain.NewEditorSet(editors...)}
	m.profiles[p.ID] = p
	m.items[p.ID] = domain.ContentItem{
		ID:        p.ID,
		Kind:      domain.ContentKindProfile,
		ProfileID: p.ID,
		AuthorID:  owner,
		Status:    domain.ContentStatusApproved,
		Payload:   json.RawMessage(`{}`),
	}
	return p
}

func (m *memStore) addItem(profileID, author uuid.UUID, kind domain.ContentKind, status domain.ContentStatus, createdAt time.Time) domain.ContentItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	item := domain.ContentItem{
		ID:        uuid.New(),
		Kind:      kind,
		ProfileID: profileID,
		AuthorID:  author,
		Status:    status,
		Payload:   json.RawMessage(`{}`),
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	m.items[item.ID] = item
	return item
}

func (m *memStore) item(id uuid.UUID) domain.ContentItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.items[id]
}

func (m *memStore) auditFor(entityID uuid.UUID) []domain.AuditRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.AuditRecord
	for _, r := range m.audit {
		if r.EntityID == entityID {
			out = append(out, r)
		}
	}
	return out
}

func (m *memStore) notificationsFor(recipient uuid.UUID) []domain.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Notification
	for _, n := range m.notifications {
		if n.RecipientID == recipient {
			out = append(out, n)
		}
	}
	return out
}

func (m *memStore) notificationCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.notifications)
}

// ---------------------------------------------------------------------------
// Repository views
// ---------------------------------------------------------------------------

type memContent struct{ *memStore }

func (m memContent) GetByID(_ context.Context, id uuid.UUID) (*domain.ContentItem, error) {
	m.mu.Lock()
	item, ok := m.items[id]
	m.mu.Unlock()
	if m.afterItemRead != nil {
		m.afterItemRead()
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &item, nil
}

func (m memContent) Create(_ context.Context, item domain.ContentItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[item.ID]; ok {
		return domain.ErrAlreadyExists
	}
	m.items[item.ID] = item
	return nil
}

func (m memContent) UpdateStatus(_ context.Context, t domain.StatusTransition) (*domain.ContentItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[t.ItemID]
	if !ok || item.Status != t.From || item.IsDeleted() {
		return nil, domain.ErrConflict
	}
	actor := t.ActorID
	at := t.At
	item.Status = t.To
	item.ModeratedBy = &actor
	item.ModeratedAt = &at
	item.ModerationNote = t.Note
	item.UpdatedAt = t.At
	m.items[item.ID] = item
	return &item, nil
}

func (m memContent) SoftDelete(_ context.Context, id uuid.UUID, expected domain.ContentStatus, by uuid.UUID, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[id]
	if !ok || item.Status != expected || item.IsDeleted() {
		return domain.ErrConflict
	}
	item.DeletedAt = &at
	item.DeletedBy = &by
	m.items[id] = item
	return nil
}

func (m memContent) ListPending(_ context.Context, f domain.PendingFilter) ([]domain.ContentItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.ContentItem
	for _, item := range m.items {
		if item.Status != domain.ContentStatusPending || item.IsDeleted() {
			continue
		}
		if f.ProfileIDs != nil && !slices.Contains(f.ProfileIDs, item.ProfileID) {
			continue
		}
		if len(f.Kinds) > 0 && !slices.Contains(f.Kinds, item.Kind) {
			continue
		}
		out = append(out, item)
	}
	slices.SortFunc(out, func(a, b domain.ContentItem) int { return a.CreatedAt.Compare(b.CreatedAt) })
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

type memProfiles struct{ *memStore }

func (m memProfiles) Create(_ context.Context, p domain.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.Editors == nil {
		p.Editors = domain.NewEditorSet()
	}
	m.profiles[p.ID] = p
	return nil
}

func (m memProfiles) GetByID(_ context.Context, id uuid.UUID) (*domain.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p.Editors = domain.NewEditorSet(p.Editors.Slice()...)
	return &p, nil
}

func (m memProfiles) AddEditor(_ context.Context, profileID, userID, _ uuid.UUID, _ time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[profileID]
	if !ok {
		return false, domain.ErrNotFound
	}
	return p.Editors.Add(userID), nil
}

func (m memProfiles) RemoveEditor(_ context.Context, profileID, userID uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[profileID]
	if !ok {
		return false, domain.ErrNotFound
	}
	return p.Editors.Remove(userID), nil
}

func (m memProfiles) ManagedProfileIDs(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []uuid.UUID
	for _, p := range m.profiles {
		if p.IsManager(userID) {
			out = append(out, p.ID)
		}
	}
	return out, nil
}

type memUsers struct{ *memStore }

func (m memUsers) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (m memUsers) GetByIDs(_ context.Context, ids []uuid.UUID) ([]*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.User
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			out = append(out, &u)
		}
	}
	return out, nil
}

type memAudit struct{ *memStore }

func (m memAudit) Log(_ context.Context, record domain.AuditRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.audit = append(m.audit, record)
	return nil
}

func (m memAudit) GetByEntity(_ context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.AuditRecord
	for i := len(m.audit) - 1; i >= 0 && len(out) < limit; i-- {
		if r := m.audit[i]; r.EntityType == entityType && r.EntityID == entityID {
			out = append(out, r)
		}
	}
	return out, nil
}

type memNotifications struct{ *memStore }

func (m memNotifications) InsertPending(_ context.Context, n domain.Notification) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := n.EntityID.String() + "|" + n.RecipientID.String() + "|" + string(n.Type) + "|" + string(n.Channel)
	if _, ok := m.notifications[key]; ok {
		return false, nil
	}
	m.notifications[key] = n
	return true, nil
}

type memTx struct{}

func (memTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// newMemService wires the service to store with the real notification producer.
func newMemService(t *testing.T, store *memStore) *Service {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
	prod := notify.NewProducer(logger, memUsers{store}, memNotifications{store})
	return NewService(logger, memContent{store}, memProfiles{store}, memUsers{store}, memAudit{store}, prod, memTx{}, nil)
}
