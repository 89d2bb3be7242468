package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/memorial-backend/internal/domain"
	"github.com/heartmarshall/memorial-backend/internal/service/moderation"
	"github.com/heartmarshall/memorial-backend/internal/service/notify"
	"github.com/heartmarshall/memorial-backend/internal/service/user"
)

var _ moderationService = &moderationServiceMock{}

type moderationServiceMock struct {
	SubmitFunc          func(ctx context.Context, input moderation.SubmitInput) (*domain.ContentItem, error)
	ModerateFunc        func(ctx context.Context, input moderation.ModerateInput) (*moderation.ModerateResult, error)
	ArchiveFunc         func(ctx context.Context, input moderation.ArchiveInput) (*domain.ContentItem, error)
	DeleteFunc          func(ctx context.Context, input moderation.DeleteInput) error
	ListPendingFunc     func(ctx context.Context, input moderation.ListPendingInput) ([]moderation.PendingItem, error)
	GetCapabilitiesFunc func(ctx context.Context, itemID uuid.UUID) (domain.CapabilitySet, error)
	HistoryFunc         func(ctx context.Context, itemID uuid.UUID, limit int) ([]domain.AuditRecord, error)
	AddEditorFunc       func(ctx context.Context, input moderation.EditorInput) (*moderation.EditorResult, error)
	RemoveEditorFunc    func(ctx context.Context, input moderation.EditorInput) (*moderation.EditorResult, error)

	calls struct {
		Submit []struct {
			Ctx   context.Context
			Input moderation.SubmitInput
		}
		Moderate []struct {
			Ctx   context.Context
			Input moderation.ModerateInput
		}
		Archive []struct {
			Ctx   context.Context
			Input moderation.ArchiveInput
		}
		Delete []struct {
			Ctx   context.Context
			Input moderation.DeleteInput
		}
		ListPending []struct {
			Ctx   context.Context
			Input moderation.ListPendingInput
		}
		GetCapabilities []struct {
			Ctx    context.Context
			ItemID uuid.UUID
		}
		History []struct {
			Ctx    context.Context
			ItemID uuid.UUID
			Limit  int
		}
		AddEditor []struct {
			Ctx   context.Context
			Input moderation.EditorInput
		}
		RemoveEditor []struct {
			Ctx   context.Context
			Input moderation.EditorInput
		}
	}
	lockSubmit          sync.RWMutex
	lockModerate        sync.RWMutex
	lockArchive         sync.RWMutex
	lockDelete          sync.RWMutex
	lockListPending     sync.RWMutex
	lockGetCapabilities sync.RWMutex
	lockHistory         sync.RWMutex
	lockAddEditor       sync.RWMutex
	lockRemoveEditor    sync.RWMutex
}

func (mock *moderationServiceMock) Submit(ctx context.Context, input moderation.SubmitInput) (*domain.ContentItem, error) {
	if mock.SubmitFunc == nil {
		panic("moderationServiceMock.SubmitFunc: method is nil but moderationService.Submit was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input moderation.SubmitInput
	}{Ctx: ctx, Input: input}
	mock.lockSubmit.Lock()
	mock.calls.Submit = append(mock.calls.Submit, callInfo)
	mock.lockSubmit.Unlock()
	return mock.SubmitFunc(ctx, input)
}

func (mock *moderationServiceMock) SubmitCalls() []struct {
	Ctx   context.Context
	Input moderation.SubmitInput
} {
	mock.lockSubmit.RLock()
	calls := mock.calls.Submit
	mock.lockSubmit.RUnlock()
	return calls
}

func (mock *moderationServiceMock) Moderate(ctx context.Context, input moderation.ModerateInput) (*moderation.ModerateResult, error) {
	if mock.ModerateFunc == nil {
		panic("moderationServiceMock.ModerateFunc: method is nil but moderationService.Moderate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input moderation.ModerateInput
	}{Ctx: ctx, Input: input}
	mock.lockModerate.Lock()
	mock.calls.Moderate = append(mock.calls.Moderate, callInfo)
	mock.lockModerate.Unlock()
	return mock.ModerateFunc(ctx, input)
}

func (mock *moderationServiceMock) ModerateCalls() []struct {
	Ctx   context.Context
	Input moderation.ModerateInput
} {
	mock.lockModerate.RLock()
	calls := mock.calls.Moderate
	mock.lockModerate.RUnlock()
	return calls
}

func (mock *moderationServiceMock) Archive(ctx context.Context, input moderation.ArchiveInput) (*domain.ContentItem, error) {
	if mock.ArchiveFunc == nil {
		panic("moderationServiceMock.ArchiveFunc: method is nil but moderationService.Archive was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input moderation.ArchiveInput
	}{Ctx: ctx, Input: input}
	mock.lockArchive.Lock()
	mock.calls.Archive = append(mock.calls.Archive, callInfo)
	mock.lockArchive.Unlock()
	return mock.ArchiveFunc(ctx, input)
}

func (mock *moderationServiceMock) ArchiveCalls() []struct {
	Ctx   context.Context
	Input moderation.ArchiveInput
} {
	mock.lockArchive.RLock()
	calls := mock.calls.Archive
	mock.lockArchive.RUnlock()
	return calls
}

func (mock *moderationServiceMock) Delete(ctx context.Context, input moderation.DeleteInput) error {
	if mock.DeleteFunc == nil {
		panic("moderationServiceMock.DeleteFunc: method is nil but moderationService.Delete was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input moderation.DeleteInput
	}{Ctx: ctx, Input: input}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, input)
}

func (mock *moderationServiceMock) DeleteCalls() []struct {
	Ctx   context.Context
	Input moderation.DeleteInput
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *moderationServiceMock) ListPending(ctx context.Context, input moderation.ListPendingInput) ([]moderation.PendingItem, error) {
	if mock.ListPendingFunc == nil {
		panic("moderationServiceMock.ListPendingFunc: method is nil but moderationService.ListPending was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input moderation.ListPendingInput
	}{Ctx: ctx, Input: input}
	mock.lockListPending.Lock()
	mock.calls.ListPending = append(mock.calls.ListPending, callInfo)
	mock.lockListPending.Unlock()
	return mock.ListPendingFunc(ctx, input)
}

func (mock *moderationServiceMock) ListPendingCalls() []struct {
	Ctx   context.Context
	Input moderation.ListPendingInput
} {
	mock.lockListPending.RLock()
	calls := mock.calls.ListPending
	mock.lockListPending.RUnlock()
	return calls
}

func (mock *moderationServiceMock) GetCapabilities(ctx context.Context, itemID uuid.UUID) (domain.CapabilitySet, error) {
	if mock.GetCapabilitiesFunc == nil {
		panic("moderationServiceMock.GetCapabilitiesFunc: method is nil but moderationService.GetCapabilities was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
	}{Ctx: ctx, ItemID: itemID}
	mock.lockGetCapabilities.Lock()
	mock.calls.GetCapabilities = append(mock.calls.GetCapabilities, callInfo)
	mock.lockGetCapabilities.Unlock()
	return mock.GetCapabilitiesFunc(ctx, itemID)
}

func (mock *moderationServiceMock) GetCapabilitiesCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
} {
	mock.lockGetCapabilities.RLock()
	calls := mock.calls.GetCapabilities
	mock.lockGetCapabilities.RUnlock()
	return calls
}

func (mock *moderationServiceMock) History(ctx context.Context, itemID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	if mock.HistoryFunc == nil {
		panic("moderationServiceMock.HistoryFunc: method is nil but moderationService.History was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
		Limit  int
	}{Ctx: ctx, ItemID: itemID, Limit: limit}
	mock.lockHistory.Lock()
	mock.calls.History = append(mock.calls.History, callInfo)
	mock.lockHistory.Unlock()
	return mock.HistoryFunc(ctx, itemID, limit)
}

func (mock *moderationServiceMock) HistoryCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
	Limit  int
} {
	mock.lockHistory.RLock()
	calls := mock.calls.History
	mock.lockHistory.RUnlock()
	return calls
}

func (mock *moderationServiceMock) AddEditor(ctx context.Context, input moderation.EditorInput) (*moderation.EditorResult, error) {
	if mock.AddEditorFunc == nil {
		panic("moderationServiceMock.AddEditorFunc: method is nil but moderationService.AddEditor was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input moderation.EditorInput
	}{Ctx: ctx, Input: input}
	mock.lockAddEditor.Lock()
	mock.calls.AddEditor = append(mock.calls.AddEditor, callInfo)
	mock.lockAddEditor.Unlock()
	return mock.AddEditorFunc(ctx, input)
}

func (mock *moderationServiceMock) AddEditorCalls() []struct {
	Ctx   context.Context
	Input moderation.EditorInput
} {
	mock.lockAddEditor.RLock()
	calls := mock.calls.AddEditor
	mock.lockAddEditor.RUnlock()
	return calls
}

func (mock *moderationServiceMock) RemoveEditor(ctx context.Context, input moderation.EditorInput) (*moderation.EditorResult, error) {
	if mock.RemoveEditorFunc == nil {
		panic("moderationServiceMock.RemoveEditorFunc: method is nil but moderationService.RemoveEditor was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input moderation.EditorInput
	}{Ctx: ctx, Input: input}
	mock.lockRemoveEditor.Lock()
	mock.calls.RemoveEditor = append(mock.calls.RemoveEditor, callInfo)
	mock.lockRemoveEditor.Unlock()
	return mock.RemoveEditorFunc(ctx, input)
}

func (mock *moderationServiceMock) RemoveEditorCalls() []struct {
	Ctx   context.Context
	Input moderation.EditorInput
} {
	mock.lockRemoveEditor.RLock()
	calls := mock.calls.RemoveEditor
	mock.lockRemoveEditor.RUnlock()
	return calls
}

var _ accountService = &accountServiceMock{}

type accountServiceMock struct {
	ProvisionFunc      func(ctx context.Context, input user.ProvisionInput) (*domain.User, error)
	MeFunc             func(ctx context.Context) (*domain.User, error)
	UpdateChannelsFunc func(ctx context.Context, input user.UpdateChannelsInput) (*domain.User, error)

	calls struct {
		Provision []struct {
			Ctx   context.Context
			Input user.ProvisionInput
		}
		Me []struct {
			Ctx context.Context
		}
		UpdateChannels []struct {
			Ctx   context.Context
			Input user.UpdateChannelsInput
		}
	}
	lockProvision      sync.RWMutex
	lockMe             sync.RWMutex
	lockUpdateChannels sync.RWMutex
}

func (mock *accountServiceMock) Provision(ctx context.Context, input user.ProvisionInput) (*domain.User, error) {
	if mock.ProvisionFunc == nil {
		panic("accountServiceMock.ProvisionFunc: method is nil but accountService.Provision was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.ProvisionInput
	}{Ctx: ctx, Input: input}
	mock.lockProvision.Lock()
	mock.calls.Provision = append(mock.calls.Provision, callInfo)
	mock.lockProvision.Unlock()
	return mock.ProvisionFunc(ctx, input)
}

func (mock *accountServiceMock) ProvisionCalls() []struct {
	Ctx   context.Context
	Input user.ProvisionInput
} {
	mock.lockProvision.RLock()
	calls := mock.calls.Provision
	mock.lockProvision.RUnlock()
	return calls
}

func (mock *accountServiceMock) Me(ctx context.Context) (*domain.User, error) {
	if mock.MeFunc == nil {
		panic("accountServiceMock.MeFunc: method is nil but accountService.Me was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockMe.Lock()
	mock.calls.Me = append(mock.calls.Me, callInfo)
	mock.lockMe.Unlock()
	return mock.MeFunc(ctx)
}

func (mock *accountServiceMock) MeCalls() []struct {
	Ctx context.Context
} {
	mock.lockMe.RLock()
	calls := mock.calls.Me
	mock.lockMe.RUnlock()
	return calls
}

func (mock *accountServiceMock) UpdateChannels(ctx context.Context, input user.UpdateChannelsInput) (*domain.User, error) {
	if mock.UpdateChannelsFunc == nil {
		panic("accountServiceMock.UpdateChannelsFunc: method is nil but accountService.UpdateChannels was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.UpdateChannelsInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateChannels.Lock()
	mock.calls.UpdateChannels = append(mock.calls.UpdateChannels, callInfo)
	mock.lockUpdateChannels.Unlock()
	return mock.UpdateChannelsFunc(ctx, input)
}

func (mock *accountServiceMock) UpdateChannelsCalls() []struct {
	Ctx   context.Context
	Input user.UpdateChannelsInput
} {
	mock.lockUpdateChannels.RLock()
	calls := mock.calls.UpdateChannels
	mock.lockUpdateChannels.RUnlock()
	return calls
}

var _ inboxService = &inboxServiceMock{}

type inboxServiceMock struct {
	ListForRecipientFunc func(ctx context.Context, input notify.ListInput) ([]domain.Notification, error)

	calls struct {
		ListForRecipient []struct {
			Ctx   context.Context
			Input notify.ListInput
		}
	}
	lockListForRecipient sync.RWMutex
}

func (mock *inboxServiceMock) ListForRecipient(ctx context.Context, input notify.ListInput) ([]domain.Notification, error) {
	if mock.ListForRecipientFunc == nil {
		panic("inboxServiceMock.ListForRecipientFunc: method is nil but inboxService.ListForRecipient was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input notify.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockListForRecipient.Lock()
	mock.calls.ListForRecipient = append(mock.calls.ListForRecipient, callInfo)
	mock.lockListForRecipient.Unlock()
	return mock.ListForRecipientFunc(ctx, input)
}

func (mock *inboxServiceMock) ListForRecipientCalls() []struct {
	Ctx   context.Context
	Input notify.ListInput
} {
	mock.lockListForRecipient.RLock()
	calls := mock.calls.ListForRecipient
	mock.lockListForRecipient.RUnlock()
	return calls
}

var _ notificationAdmin = &notificationAdminMock{}

type notificationAdminMock struct {
	ListByStatusFunc  func(ctx context.Context, input notify.ListByStatusInput) ([]domain.Notification, error)
	RequeueFailedFunc func(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)

	calls struct {
		ListByStatus []struct {
			Ctx   context.Context
			Input notify.ListByStatusInput
		}
		RequeueFailed []struct {
			Ctx context.Context
			Ids []uuid.UUID
		}
	}
	lockListByStatus  sync.RWMutex
	lockRequeueFailed sync.RWMutex
}

func (mock *notificationAdminMock) ListByStatus(ctx context.Context, input notify.ListByStatusInput) ([]domain.Notification, error) {
	if mock.ListByStatusFunc == nil {
		panic("notificationAdminMock.ListByStatusFunc: method is nil but notificationAdmin.ListByStatus was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input notify.ListByStatusInput
	}{Ctx: ctx, Input: input}
	mock.lockListByStatus.Lock()
	mock.calls.ListByStatus = append(mock.calls.ListByStatus, callInfo)
	mock.lockListByStatus.Unlock()
	return mock.ListByStatusFunc(ctx, input)
}

func (mock *notificationAdminMock) ListByStatusCalls() []struct {
	Ctx   context.Context
	Input notify.ListByStatusInput
} {
	mock.lockListByStatus.RLock()
	calls := mock.calls.ListByStatus
	mock.lockListByStatus.RUnlock()
	return calls
}

func (mock *notificationAdminMock) RequeueFailed(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	if mock.RequeueFailedFunc == nil {
		panic("notificationAdminMock.RequeueFailedFunc: method is nil but notificationAdmin.RequeueFailed was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []uuid.UUID
	}{Ctx: ctx, Ids: ids}
	mock.lockRequeueFailed.Lock()
	mock.calls.RequeueFailed = append(mock.calls.RequeueFailed, callInfo)
	mock.lockRequeueFailed.Unlock()
	return mock.RequeueFailedFunc(ctx, ids)
}

func (mock *notificationAdminMock) RequeueFailedCalls() []struct {
	Ctx context.Context
	Ids []uuid.UUID
} {
	mock.lockRequeueFailed.RLock()
	calls := mock.calls.RequeueFailed
	mock.lockRequeueFailed.RUnlock()
	return calls
}

var _ roleAdmin = &roleAdminMock{}

type roleAdminMock struct {
	SetRoleFunc func(ctx context.Context, input user.SetRoleInput) (*domain.User, error)

	calls struct {
		SetRole []struct {
			Ctx   context.Context
			Input user.SetRoleInput
		}
	}
	lockSetRole sync.RWMutex
}

func (mock *roleAdminMock) SetRole(ctx context.Context, input user.SetRoleInput) (*domain.User, error) {
	if mock.SetRoleFunc == nil {
		panic("roleAdminMock.SetRoleFunc: method is nil but roleAdmin.SetRole was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.SetRoleInput
	}{Ctx: ctx, Input: input}
	mock.lockSetRole.Lock()
	mock.calls.SetRole = append(mock.calls.SetRole, callInfo)
	mock.lockSetRole.Unlock()
	return mock.SetRoleFunc(ctx, input)
}

func (mock *roleAdminMock) SetRoleCalls() []struct {
	Ctx   context.Context
	Input user.SetRoleInput
} {
	mock.lockSetRole.RLock()
	calls := mock.calls.SetRole
	mock.lockSetRole.RUnlock()
	return calls
}
