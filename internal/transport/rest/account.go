package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/memorial-backend/internal/domain"
	"github.com/heartmarshall/memorial-backend/internal/service/notify"
	"github.com/heartmarshall/memorial-backend/internal/service/user"
)

type accountService interface {
	Provision(ctx context.Context, input user.ProvisionInput) (*domain.User, error)
	Me(ctx context.Context) (*domain.User, error)
	UpdateChannels(ctx context.Context, input user.UpdateChannelsInput) (*domain.User, error)
}

type inboxService interface {
	ListForRecipient(ctx context.Context, input notify.ListInput) ([]domain.Notification, error)
}

// AccountHandler serves the caller's own account and inbox.
type AccountHandler struct {
	users accountService
	inbox inboxService
	log   *slog.Logger
}

// NewAccountHandler creates an AccountHandler.
func NewAccountHandler(users accountService, inbox inboxService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{users: users, inbox: inbox, log: logger.With("handler", "account")}
}

type provisionRequest struct {
	DisplayName string  `json:"display_name" validate:"required,max=255"`
	Email       *string `json:"email"        validate:"omitempty,email,max=320"`
}

type channelsRequest struct {
	Email           *string `json:"email"            validate:"omitempty,email,max=320"`
	EmailEnabled    bool    `json:"email_enabled"`
	TelegramChatID  *int64  `json:"telegram_chat_id"`
	TelegramEnabled bool    `json:"telegram_enabled"`
}

// Provision handles POST /me: registers or refreshes the caller's account.
func (h *AccountHandler) Provision(w http.ResponseWriter, r *http.Request) {
	var req provisionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	u, err := h.users.Provision(r.Context(), user.ProvisionInput{
		DisplayName: req.DisplayName,
		Email:       req.Email,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUser(u))
}

// Me handles GET /me.
func (h *AccountHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.users.Me(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUser(u))
}

// UpdateChannels handles PUT /me/channels.
func (h *AccountHandler) UpdateChannels(w http.ResponseWriter, r *http.Request) {
	var req channelsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	u, err := h.users.UpdateChannels(r.Context(), user.UpdateChannelsInput{
		Email:           req.Email,
		EmailEnabled:    req.EmailEnabled,
		TelegramChatID:  req.TelegramChatID,
		TelegramEnabled: req.TelegramEnabled,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUser(u))
}

// Notifications handles GET /me/notifications?limit=&offset=.
func (h *AccountHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}
	offset, ok := queryInt(w, r, "offset")
	if !ok {
		return
	}
	items, err := h.inbox.ListForRecipient(r.Context(), notify.ListInput{Limit: limit, Offset: offset})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toNotifications(items, false))
}
