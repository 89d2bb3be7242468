package moderation

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/memorial-backend/internal/domain"
)

var _ contentRepo = &contentRepoMock{}

type contentRepoMock struct {
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.ContentItem, error)
	CreateFunc       func(ctx context.Context, item domain.ContentItem) error
	UpdateStatusFunc func(ctx context.Context, t domain.StatusTransition) (*domain.ContentItem, error)
	SoftDeleteFunc   func(ctx context.Context, id uuid.UUID, expected domain.ContentStatus, by uuid.UUID, at time.Time) error
	ListPendingFunc  func(ctx context.Context, f domain.PendingFilter) ([]domain.ContentItem, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Create []struct {
			Ctx  context.Context
			Item domain.ContentItem
		}
		UpdateStatus []struct {
			Ctx context.Context
			T   domain.StatusTransition
		}
		SoftDelete []struct {
			Ctx      context.Context
			ID       uuid.UUID
			Expected domain.ContentStatus
			By       uuid.UUID
			At       time.Time
		}
		ListPending []struct {
			Ctx context.Context
			F   domain.PendingFilter
		}
	}
	lockGetByID      sync.RWMutex
	lockCreate       sync.RWMutex
	lockUpdateStatus sync.RWMutex
	lockSoftDelete   sync.RWMutex
	lockListPending  sync.RWMutex
}

func (mock *contentRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.ContentItem, error) {
	if mock.GetByIDFunc == nil {
		panic("contentRepoMock.GetByIDFunc: method is nil but contentRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *contentRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *contentRepoMock) Create(ctx context.Context, item domain.ContentItem) error {
	if mock.CreateFunc == nil {
		panic("contentRepoMock.CreateFunc: method is nil but contentRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Item domain.ContentItem
	}{Ctx: ctx, Item: item}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, item)
}

func (mock *contentRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Item domain.ContentItem
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *contentRepoMock) UpdateStatus(ctx context.Context, t domain.StatusTransition) (*domain.ContentItem, error) {
	if mock.UpdateStatusFunc == nil {
		panic("contentRepoMock.UpdateStatusFunc: method is nil but contentRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   domain.StatusTransition
	}{Ctx: ctx, T: t}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, t)
}

func (mock *contentRepoMock) UpdateStatusCalls() []struct {
	Ctx context.Context
	T   domain.StatusTransition
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

func (mock *contentRepoMock) SoftDelete(ctx context.Context, id uuid.UUID, expected domain.ContentStatus, by uuid.UUID, at time.Time) error {
	if mock.SoftDeleteFunc == nil {
		panic("contentRepoMock.SoftDeleteFunc: method is nil but contentRepo.SoftDelete was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ID       uuid.UUID
		Expected domain.ContentStatus
		By       uuid.UUID
		At       time.Time
	}{Ctx: ctx, ID: id, Expected: expected, By: by, At: at}
	mock.lockSoftDelete.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, callInfo)
	mock.lockSoftDelete.Unlock()
	return mock.SoftDeleteFunc(ctx, id, expected, by, at)
}

func (mock *contentRepoMock) SoftDeleteCalls() []struct {
	Ctx      context.Context
	ID       uuid.UUID
	Expected domain.ContentStatus
	By       uuid.UUID
	At       time.Time
} {
	mock.lockSoftDelete.RLock()
	calls := mock.calls.SoftDelete
	mock.lockSoftDelete.RUnlock()
	return calls
}

func (mock *contentRepoMock) ListPending(ctx context.Context, f domain.PendingFilter) ([]domain.ContentItem, error) {
	if mock.ListPendingFunc == nil {
		panic("contentRepoMock.ListPendingFunc: method is nil but contentRepo.ListPending was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.PendingFilter
	}{Ctx: ctx, F: f}
	mock.lockListPending.Lock()
	mock.calls.ListPending = append(mock.calls.ListPending, callInfo)
	mock.lockListPending.Unlock()
	return mock.ListPendingFunc(ctx, f)
}

func (mock *contentRepoMock) ListPendingCalls() []struct {
	Ctx context.Context
	F   domain.PendingFilter
} {
	mock.lockListPending.RLock()
	calls := mock.calls.ListPending
	mock.lockListPending.RUnlock()
	return calls
}

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	CreateFunc            func(ctx context.Context, p domain.Profile) error
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	AddEditorFunc         func(ctx context.Context, profileID uuid.UUID, userID uuid.UUID, addedBy uuid.UUID, now time.Time) (bool, error)
	RemoveEditorFunc      func(ctx context.Context, profileID uuid.UUID, userID uuid.UUID) (bool, error)
	ManagedProfileIDsFunc func(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			P   domain.Profile
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		AddEditor []struct {
			Ctx       context.Context
			ProfileID uuid.UUID
			UserID    uuid.UUID
			AddedBy   uuid.UUID
			Now       time.Time
		}
		RemoveEditor []struct {
			Ctx       context.Context
			ProfileID uuid.UUID
			UserID    uuid.UUID
		}
		ManagedProfileIDs []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockCreate            sync.RWMutex
	lockGetByID           sync.RWMutex
	lockAddEditor         sync.RWMutex
	lockRemoveEditor      sync.RWMutex
	lockManagedProfileIDs sync.RWMutex
}

func (mock *profileRepoMock) Create(ctx context.Context, p domain.Profile) error {
	if mock.CreateFunc == nil {
		panic("profileRepoMock.CreateFunc: method is nil but profileRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.Profile
	}{Ctx: ctx, P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *profileRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   domain.Profile
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *profileRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	if mock.GetByIDFunc == nil {
		panic("profileRepoMock.GetByIDFunc: method is nil but profileRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *profileRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *profileRepoMock) AddEditor(ctx context.Context, profileID uuid.UUID, userID uuid.UUID, addedBy uuid.UUID, now time.Time) (bool, error) {
	if mock.AddEditorFunc == nil {
		panic("profileRepoMock.AddEditorFunc: method is nil but profileRepo.AddEditor was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProfileID uuid.UUID
		UserID    uuid.UUID
		AddedBy   uuid.UUID
		Now       time.Time
	}{Ctx: ctx, ProfileID: profileID, UserID: userID, AddedBy: addedBy, Now: now}
	mock.lockAddEditor.Lock()
	mock.calls.AddEditor = append(mock.calls.AddEditor, callInfo)
	mock.lockAddEditor.Unlock()
	return mock.AddEditorFunc(ctx, profileID, userID, addedBy, now)
}

func (mock *profileRepoMock) AddEditorCalls() []struct {
	Ctx       context.Context
	ProfileID uuid.UUID
	UserID    uuid.UUID
	AddedBy   uuid.UUID
	Now       time.Time
} {
	mock.lockAddEditor.RLock()
	calls := mock.calls.AddEditor
	mock.lockAddEditor.RUnlock()
	return calls
}

func (mock *profileRepoMock) RemoveEditor(ctx context.Context, profileID uuid.UUID, userID uuid.UUID) (bool, error) {
	if mock.RemoveEditorFunc == nil {
		panic("profileRepoMock.RemoveEditorFunc: method is nil but profileRepo.RemoveEditor was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProfileID uuid.UUID
		UserID    uuid.UUID
	}{Ctx: ctx, ProfileID: profileID, UserID: userID}
	mock.lockRemoveEditor.Lock()
	mock.calls.RemoveEditor = append(mock.calls.RemoveEditor, callInfo)
	mock.lockRemoveEditor.Unlock()
	return mock.RemoveEditorFunc(ctx, profileID, userID)
}

func (mock *profileRepoMock) RemoveEditorCalls() []struct {
	Ctx       context.Context
	ProfileID uuid.UUID
	UserID    uuid.UUID
} {
	mock.lockRemoveEditor.RLock()
	calls := mock.calls.RemoveEditor
	mock.lockRemoveEditor.RUnlock()
	return calls
}

func (mock *profileRepoMock) ManagedProfileIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	if mock.ManagedProfileIDsFunc == nil {
		panic("profileRepoMock.ManagedProfileIDsFunc: method is nil but profileRepo.ManagedProfileIDs was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockManagedProfileIDs.Lock()
	mock.calls.ManagedProfileIDs = append(mock.calls.ManagedProfileIDs, callInfo)
	mock.lockManagedProfileIDs.Unlock()
	return mock.ManagedProfileIDsFunc(ctx, userID)
}

func (mock *profileRepoMock) ManagedProfileIDsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockManagedProfileIDs.RLock()
	calls := mock.calls.ManagedProfileIDs
	mock.lockManagedProfileIDs.RUnlock()
	return calls
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ auditRepo = &auditRepoMock{}

type auditRepoMock struct {
	LogFunc         func(ctx context.Context, record domain.AuditRecord) error
	GetByEntityFunc func(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error)

	calls struct {
		Log []struct {
			Ctx    context.Context
			Record domain.AuditRecord
		}
		GetByEntity []struct {
			Ctx        context.Context
			EntityType domain.EntityType
			EntityID   uuid.UUID
			Limit      int
		}
	}
	lockLog         sync.RWMutex
	lockGetByEntity sync.RWMutex
}

func (mock *auditRepoMock) Log(ctx context.Context, record domain.AuditRecord) error {
	if mock.LogFunc == nil {
		panic("auditRepoMock.LogFunc: method is nil but auditRepo.Log was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Record domain.AuditRecord
	}{Ctx: ctx, Record: record}
	mock.lockLog.Lock()
	mock.calls.Log = append(mock.calls.Log, callInfo)
	mock.lockLog.Unlock()
	return mock.LogFunc(ctx, record)
}

func (mock *auditRepoMock) LogCalls() []struct {
	Ctx    context.Context
	Record domain.AuditRecord
} {
	mock.lockLog.RLock()
	calls := mock.calls.Log
	mock.lockLog.RUnlock()
	return calls
}

func (mock *auditRepoMock) GetByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	if mock.GetByEntityFunc == nil {
		panic("auditRepoMock.GetByEntityFunc: method is nil but auditRepo.GetByEntity was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		EntityType domain.EntityType
		EntityID   uuid.UUID
		Limit      int
	}{Ctx: ctx, EntityType: entityType, EntityID: entityID, Limit: limit}
	mock.lockGetByEntity.Lock()
	mock.calls.GetByEntity = append(mock.calls.GetByEntity, callInfo)
	mock.lockGetByEntity.Unlock()
	return mock.GetByEntityFunc(ctx, entityType, entityID, limit)
}

func (mock *auditRepoMock) GetByEntityCalls() []struct {
	Ctx        context.Context
	EntityType domain.EntityType
	EntityID   uuid.UUID
	Limit      int
} {
	mock.lockGetByEntity.RLock()
	calls := mock.calls.GetByEntity
	mock.lockGetByEntity.RUnlock()
	return calls
}

var _ producer = &producerMock{}

type producerMock struct {
	ProduceFunc func(ctx context.Context, ev domain.Event) (int, error)

	calls struct {
		Produce []struct {
			Ctx context.Context
			Ev  domain.Event
		}
	}
	lockProduce sync.RWMutex
}

func (mock *producerMock) Produce(ctx context.Context, ev domain.Event) (int, error) {
	if mock.ProduceFunc == nil {
		panic("producerMock.ProduceFunc: method is nil but producer.Produce was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ev  domain.Event
	}{Ctx: ctx, Ev: ev}
	mock.lockProduce.Lock()
	mock.calls.Produce = append(mock.calls.Produce, callInfo)
	mock.lockProduce.Unlock()
	return mock.ProduceFunc(ctx, ev)
}

func (mock *producerMock) ProduceCalls() []struct {
	Ctx context.Context
	Ev  domain.Event
} {
	mock.lockProduce.RLock()
	calls := mock.calls.Produce
	mock.lockProduce.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}

var _ waker = &wakerMock{}

type wakerMock struct {
	WakeFunc func(ctx context.Context) error

	calls struct {
		Wake []struct {
			Ctx context.Context
		}
	}
	lockWake sync.RWMutex
}

func (mock *wakerMock) Wake(ctx context.Context) error {
	if mock.WakeFunc == nil {
		panic("wakerMock.WakeFunc: method is nil but waker.Wake was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockWake.Lock()
	mock.calls.Wake = append(mock.calls.Wake, callInfo)
	mock.lockWake.Unlock()
	return mock.WakeFunc(ctx)
}

func (mock *wakerMock) WakeCalls() []struct {
	Ctx context.Context
} {
	mock.lockWake.RLock()
	calls := mock.calls.Wake
	mock.lockWake.RUnlock()
	return calls
}
