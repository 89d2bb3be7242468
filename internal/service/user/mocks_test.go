package user

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/memorial-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpsertFunc         func(ctx context.Context, u *domain.User) (*domain.User, error)
	UpdateChannelsFunc func(ctx context.Context, id uuid.UUID, s domain.ChannelSettings, now time.Time) (*domain.User, error)
	UpdateRoleFunc     func(ctx context.Context, id uuid.UUID, expected domain.Role, role domain.Role, now time.Time) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Upsert []struct {
			Ctx context.Context
			U   *domain.User
		}
		UpdateChannels []struct {
			Ctx context.Context
			ID  uuid.UUID
			S   domain.ChannelSettings
			Now time.Time
		}
		UpdateRole []struct {
			Ctx      context.Context
			ID       uuid.UUID
			Expected domain.Role
			Role     domain.Role
			Now      time.Time
		}
	}
	lockGetByID        sync.RWMutex
	lockUpsert         sync.RWMutex
	lockUpdateChannels sync.RWMutex
	lockUpdateRole     sync.RWMutex
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

func (mock *userRepoMock) Upsert(ctx context.Context, u *domain.User) (*domain.User, error) {
	if mock.UpsertFunc == nil {
		panic("userRepoMock.UpsertFunc: method is nil but userRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U   *domain.User
	}{Ctx: ctx, U: u}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, u)
}

func (mock *userRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	U   *domain.User
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdateChannels(ctx context.Context, id uuid.UUID, s domain.ChannelSettings, now time.Time) (*domain.User, error) {
	if mock.UpdateChannelsFunc == nil {
		panic("userRepoMock.UpdateChannelsFunc: method is nil but userRepo.UpdateChannels was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		S   domain.ChannelSettings
		Now time.Time
	}{Ctx: ctx, ID: id, S: s, Now: now}
	mock.lockUpdateChannels.Lock()
	mock.calls.UpdateChannels = append(mock.calls.UpdateChannels, callInfo)
	mock.lockUpdateChannels.Unlock()
	return mock.UpdateChannelsFunc(ctx, id, s, now)
}

func (mock *userRepoMock) UpdateChannelsCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	S   domain.ChannelSettings
	Now time.Time
} {
	mock.lockUpdateChannels.RLock()
	calls := mock.calls.UpdateChannels
	mock.lockUpdateChannels.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdateRole(ctx context.Context, id uuid.UUID, expected domain.Role, role domain.Role, now time.Time) error {
	if mock.UpdateRoleFunc == nil {
		panic("userRepoMock.UpdateRoleFunc: method is nil but userRepo.UpdateRole was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ID       uuid.UUID
		Expected domain.Role
		Role     domain.Role
		Now      time.Time
	}{Ctx: ctx, ID: id, Expected: expected, Role: role, Now: now}
	mock.lockUpdateRole.Lock()
	mock.calls.UpdateRole = append(mock.calls.UpdateRole, callInfo)
	mock.lockUpdateRole.Unlock()
	return mock.UpdateRoleFunc(ctx, id, expected, role, now)
}

func (mock *userRepoMock) UpdateRoleCalls() []struct {
	Ctx      context.Context
	ID       uuid.UUID
	Expected domain.Role
	Role     domain.Role
	Now      time.Time
} {
	mock.lockUpdateRole.RLock()
	calls := mock.calls.UpdateRole
	mock.lockUpdateRole.RUnlock()
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
