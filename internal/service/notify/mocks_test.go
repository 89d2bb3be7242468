package notify

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/memorial-backend/internal/domain"
)

var _ userReader = &userReaderMock{}

type userReaderMock struct {
	GetByIDsFunc func(ctx context.Context, ids []uuid.UUID) ([]*domain.User, error)

	calls struct {
		GetByIDs []struct {
			Ctx context.Context
			Ids []uuid.UUID
		}
	}
	lockGetByIDs sync.RWMutex
}

func (mock *userReaderMock) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.User, error) {
	if mock.GetByIDsFunc == nil {
		panic("userReaderMock.GetByIDsFunc: method is nil but userReader.GetByIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []uuid.UUID
	}{Ctx: ctx, Ids: ids}
	mock.lockGetByIDs.Lock()
	mock.calls.GetByIDs = append(mock.calls.GetByIDs, callInfo)
	mock.lockGetByIDs.Unlock()
	return mock.GetByIDsFunc(ctx, ids)
}

func (mock *userReaderMock) GetByIDsCalls() []struct {
	Ctx context.Context
	Ids []uuid.UUID
} {
	mock.lockGetByIDs.RLock()
	calls := mock.calls.GetByIDs
	mock.lockGetByIDs.RUnlock()
	return calls
}

var _ notificationWriter = &notificationWriterMock{}

type notificationWriterMock struct {
	InsertPendingFunc func(ctx context.Context, n domain.Notification) (bool, error)

	calls struct {
		InsertPending []struct {
			Ctx context.Context
			N   domain.Notification
		}
	}
	lockInsertPending sync.RWMutex
}

func (mock *notificationWriterMock) InsertPending(ctx context.Context, n domain.Notification) (bool, error) {
	if mock.InsertPendingFunc == nil {
		panic("notificationWriterMock.InsertPendingFunc: method is nil but notificationWriter.InsertPending was just called")
	}
	callInfo := struct {
		Ctx context.Context
		N   domain.Notification
	}{Ctx: ctx, N: n}
	mock.lockInsertPending.Lock()
	mock.calls.InsertPending = append(mock.calls.InsertPending, callInfo)
	mock.lockInsertPending.Unlock()
	return mock.InsertPendingFunc(ctx, n)
}

func (mock *notificationWriterMock) InsertPendingCalls() []struct {
	Ctx context.Context
	N   domain.Notification
} {
	mock.lockInsertPending.RLock()
	calls := mock.calls.InsertPending
	mock.lockInsertPending.RUnlock()
	return calls
}

var _ notificationStore = &notificationStoreMock{}

type notificationStoreMock struct {
	ListFunc    func(ctx context.Context, f domain.NotificationFilter) ([]domain.Notification, error)
	RequeueFunc func(ctx context.Context, ids []uuid.UUID, at time.Time) ([]uuid.UUID, error)

	calls struct {
		List []struct {
			Ctx context.Context
			F   domain.NotificationFilter
		}
		Requeue []struct {
			Ctx context.Context
			Ids []uuid.UUID
			At  time.Time
		}
	}
	lockList    sync.RWMutex
	lockRequeue sync.RWMutex
}

func (mock *notificationStoreMock) List(ctx context.Context, f domain.NotificationFilter) ([]domain.Notification, error) {
	if mock.ListFunc == nil {
		panic("notificationStoreMock.ListFunc: method is nil but notificationStore.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.NotificationFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *notificationStoreMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.NotificationFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *notificationStoreMock) Requeue(ctx context.Context, ids []uuid.UUID, at time.Time) ([]uuid.UUID, error) {
	if mock.RequeueFunc == nil {
		panic("notificationStoreMock.RequeueFunc: method is nil but notificationStore.Requeue was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []uuid.UUID
		At  time.Time
	}{Ctx: ctx, Ids: ids, At: at}
	mock.lockRequeue.Lock()
	mock.calls.Requeue = append(mock.calls.Requeue, callInfo)
	mock.lockRequeue.Unlock()
	return mock.RequeueFunc(ctx, ids, at)
}

func (mock *notificationStoreMock) RequeueCalls() []struct {
	Ctx context.Context
	Ids []uuid.UUID
	At  time.Time
} {
	mock.lockRequeue.RLock()
	calls := mock.calls.Requeue
	mock.lockRequeue.RUnlock()
	return calls
}

var _ actorReader = &actorReaderMock{}

type actorReaderMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *actorReaderMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("actorReaderMock.GetByIDFunc: method is nil but actorReader.GetByID was just called")
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

func (mock *actorReaderMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ auditLogger = &auditLoggerMock{}

type auditLoggerMock struct {
	LogFunc func(ctx context.Context, record domain.AuditRecord) error

	calls struct {
		Log []struct {
			Ctx    context.Context
			Record domain.AuditRecord
		}
	}
	lockLog sync.RWMutex
}

func (mock *auditLoggerMock) Log(ctx context.Context, record domain.AuditRecord) error {
	if mock.LogFunc == nil {
		panic("auditLoggerMock.LogFunc: method is nil but auditLogger.Log was just called")
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

func (mock *auditLoggerMock) LogCalls() []struct {
	Ctx    context.Context
	Record domain.AuditRecord
} {
	mock.lockLog.RLock()
	calls := mock.calls.Log
	mock.lockLog.RUnlock()
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

var _ Waker = &wakerMock{}

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
		panic("wakerMock.WakeFunc: method is nil but Waker.Wake was just called")
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
