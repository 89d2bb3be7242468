package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/memorial-backend/internal/domain"
	"github.com/heartmarshall/memorial-backend/internal/service/moderation"
)

type moderationService interface {
	Submit(ctx context.Context, input moderation.SubmitInput) (*domain.ContentItem, error)
	Moderate(ctx context.Context, input moderation.ModerateInput) (*moderation.ModerateResult, error)
	Archive(ctx context.Context, input moderation.ArchiveInput) (*domain.ContentItem, error)
	Delete(ctx context.Context, input moderation.DeleteInput) error
	ListPending(ctx context.Context, input moderation.ListPendingInput) ([]moderation.PendingItem, error)
	GetCapabilities(ctx context.Context, itemID uuid.UUID) (domain.CapabilitySet, error)
	History(ctx context.Context, itemID uuid.UUID, limit int) ([]domain.AuditRecord, error)
	AddEditor(ctx context.Context, input moderation.EditorInput) (*moderation.EditorResult, error)
	RemoveEditor(ctx context.Context, input moderation.EditorInput) (*moderation.EditorResult, error)
}

// ModerationHandler serves content submission and the moderation workflow.
type ModerationHandler struct {
	svc moderationService
	log *slog.Logger
}

// NewModerationHandler creates a ModerationHandler.
func NewModerationHandler(svc moderationService, logger *slog.Logger) *ModerationHandler {
	return &ModerationHandler{svc: svc, log: logger.With("handler", "moderation")}
}

type submitRequest struct {
	Kind    string          `json:"kind"    validate:"required,max=32"`
	Payload json.RawMessage `json:"payload" validate:"required"`
}

type createProfileRequest struct {
	Payload json.RawMessage `json:"payload" validate:"required"`
}

type moderateRequest struct {
	Action string  `json:"action" validate:"required,oneof=approve reject"`
	Note   *string `json:"note"   validate:"omitempty,max=2000"`
}

type archiveRequest struct {
	Note *string `json:"note" validate:"omitempty,max=2000"`
}

// CreateProfile handles POST /profiles.
func (h *ModerationHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var req createProfileRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := h.svc.Submit(r.Context(), moderation.SubmitInput{
		Kind:    domain.ContentKindProfile,
		Payload: req.Payload,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toContentItem(*item))
}

// SubmitItem handles POST /profiles/{profileID}/items.
func (h *ModerationHandler) SubmitItem(w http.ResponseWriter, r *http.Request) {
	profileID, ok := pathUUID(w, r, "profileID")
	if !ok {
		return
	}
	var req submitRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := h.svc.Submit(r.Context(), moderation.SubmitInput{
		ProfileID: &profileID,
		Kind:      domain.ContentKind(req.Kind),
		Payload:   req.Payload,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toContentItem(*item))
}

// ListPending handles GET /moderation/pending?profile_id=&kind=a,b&limit=.
func (h *ModerationHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var input moderation.ListPendingInput

	if raw := q.Get("profile_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeValidation(w, []domain.FieldError{{Field: "profile_id", Message: "must be a UUID"}})
			return
		}
		input.ProfileID = &id
	}
	for _, raw := range q["kind"] {
		for _, k := range strings.Split(raw, ",") {
			if k = strings.TrimSpace(k); k != "" {
				input.Kinds = append(input.Kinds, domain.ContentKind(k))
			}
		}
	}
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}
	input.Limit = limit

	items, err := h.svc.ListPending(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPendingItems(items))
}

// Moderate handles POST /items/{itemID}/moderate.
func (h *ModerationHandler) Moderate(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathUUID(w, r, "itemID")
	if !ok {
		return
	}
	var req moderateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	res, err := h.svc.Moderate(r.Context(), moderation.ModerateInput{
		ItemID: itemID,
		Action: domain.ModerationAction(req.Action),
		Note:   req.Note,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, moderateResponse{
		Item:      toContentItem(res.Item),
		NewStatus: string(res.NewStatus),
		Notified:  res.Notified,
	})
}

// Archive handles POST /items/{itemID}/archive. The body is optional.
func (h *ModerationHandler) Archive(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathUUID(w, r, "itemID")
	if !ok {
		return
	}
	var req archiveRequest
	if !decodeOptionalBody(w, r, &req) {
		return
	}

	item, err := h.svc.Archive(r.Context(), moderation.ArchiveInput{ItemID: itemID, Note: req.Note})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toContentItem(*item))
}

// Delete handles DELETE /items/{itemID}.
func (h *ModerationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathUUID(w, r, "itemID")
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), moderation.DeleteInput{ItemID: itemID}); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Capabilities handles GET /items/{itemID}/capabilities.
func (h *ModerationHandler) Capabilities(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathUUID(w, r, "itemID")
	if !ok {
		return
	}
	caps, err := h.svc.GetCapabilities(r.Context(), itemID)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, capabilitiesResponse{ItemID: itemID, Capabilities: caps.Names()})
}

// History handles GET /items/{itemID}/history?limit=.
func (h *ModerationHandler) History(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathUUID(w, r, "itemID")
	if !ok {
		return
	}
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}
	records, err := h.svc.History(r.Context(), itemID, limit)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAuditRecords(records))
}

// AddEditor handles PUT /profiles/{profileID}/editors/{userID}.
func (h *ModerationHandler) AddEditor(w http.ResponseWriter, r *http.Request) {
	h.changeEditor(w, r, h.svc.AddEditor)
}

// RemoveEditor handles DELETE /profiles/{profileID}/editors/{userID}.
func (h *ModerationHandler) RemoveEditor(w http.ResponseWriter, r *http.Request) {
	h.changeEditor(w, r, h.svc.RemoveEditor)
}

func (h *ModerationHandler) changeEditor(
	w http.ResponseWriter,
	r *http.Request,
	change func(context.Context, moderation.EditorInput) (*moderation.EditorResult, error),
) {
	profileID, ok := pathUUID(w, r, "profileID")
	if !ok {
		return
	}
	userID, ok := pathUUID(w, r, "userID")
	if !ok {
		return
	}
	res, err := change(r.Context(), moderation.EditorInput{ProfileID: profileID, UserID: userID})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"changed": res.Changed})
}
