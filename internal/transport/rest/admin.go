package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/memorial-backend/internal/domain"
	"github.com/heartmarshall/memorial-backend/internal/service/notify"
	"github.com/heartmarshall/memorial-backend/internal/service/user"
)

type notificationAdmin interface {
	ListByStatus(ctx context.Context, input notify.ListByStatusInput) ([]domain.Notification, error)
	RequeueFailed(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)
}

type roleAdmin interface {
	SetRole(ctx context.Context, input user.SetRoleInput) (*domain.User, error)
}

// AdminHandler serves operator endpoints. Authorization is enforced by the
// services against the stored role, not the token claim.
type AdminHandler struct {
	notifications notificationAdmin
	roles         roleAdmin
	log           *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(notifications notificationAdmin, roles roleAdmin, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		notifications: notifications,
		roles:         roles,
		log:           logger.With("handler", "admin"),
	}
}

type requeueRequest struct {
	IDs []uuid.UUID `json:"ids" validate:"required,min=1,max=500"`
}

type requeueResponse struct {
	Requested int         `json:"requested"`
	Requeued  []uuid.UUID `json:"requeued"`
}

type setRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user moderator admin superadmin"`
}

// ListNotifications handles GET /admin/notifications?status=failed&limit=&offset=.
func (h *AdminHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status == "" {
		status = string(domain.NotificationStatusFailed)
	}
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}
	offset, ok := queryInt(w, r, "offset")
	if !ok {
		return
	}

	items, err := h.notifications.ListByStatus(r.Context(), notify.ListByStatusInput{
		Status:    domain.NotificationStatus(status),
		ListInput: notify.ListInput{Limit: limit, Offset: offset},
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toNotifications(items, true))
}

// Requeue handles POST /admin/notifications/requeue.
func (h *AdminHandler) Requeue(w http.ResponseWriter, r *http.Request) {
	var req requeueRequest
	if !decodeBody(w, r, &req) {
		return
	}
	requeued, err := h.notifications.RequeueFailed(r.Context(), req.IDs)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	if requeued == nil {
		requeued = []uuid.UUID{}
	}
	writeJSON(w, http.StatusOK, requeueResponse{Requested: len(req.IDs), Requeued: requeued})
}

// SetRole handles PUT /admin/users/{userID}/role.
func (h *AdminHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userID")
	if !ok {
		return
	}
	var req setRoleRequest
	if !decodeBody(w, r, &req) {
		return
	}
	u, err := h.roles.SetRole(r.Context(), user.SetRoleInput{UserID: userID, Role: domain.Role(req.Role)})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUser(u))
}
