package rest

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/memorial-backend/internal/domain"
	"github.com/heartmarshall/memorial-backend/internal/service/moderation"
)

type contentItemResponse struct {
	ID             uuid.UUID       `json:"id"`
	Kind           string          `json:"kind"`
	ProfileID      uuid.UUID       `json:"profile_id"`
	AuthorID       uuid.UUID       `json:"author_id"`
	Status         string          `json:"status"`
	Payload        json.RawMessage `json:"payload"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	ModeratedBy    *uuid.UUID      `json:"moderated_by,omitempty"`
	ModeratedAt    *time.Time      `json:"moderated_at,omitempty"`
	ModerationNote *string         `json:"moderation_note,omitempty"`
}

func toContentItem(c domain.ContentItem) contentItemResponse {
	return contentItemResponse{
		ID:             c.ID,
		Kind:           string(c.Kind),
		ProfileID:      c.ProfileID,
		AuthorID:       c.AuthorID,
		Status:         string(c.Status),
		Payload:        c.Payload,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
		ModeratedBy:    c.ModeratedBy,
		ModeratedAt:    c.ModeratedAt,
		ModerationNote: c.ModerationNote,
	}
}

type pendingItemResponse struct {
	contentItemResponse
	Priority    string `json:"priority"`
	DaysInQueue int    `json:"days_in_queue"`
}

type moderateResponse struct {
	Item      contentItemResponse `json:"item"`
	NewStatus string              `json:"new_status"`
	Notified  int                 `json:"notified"`
}

type capabilitiesResponse struct {
	ItemID       uuid.UUID `json:"item_id"`
	Capabilities []string  `json:"capabilities"`
}

type auditRecordResponse struct {
	ID          uuid.UUID      `json:"id"`
	ActorID     uuid.UUID      `json:"actor_id"`
	EntityType  string         `json:"entity_type"`
	EntityID    uuid.UUID      `json:"entity_id"`
	Action      string         `json:"action"`
	BeforeState *string        `json:"before_state,omitempty"`
	AfterState  *string        `json:"after_state,omitempty"`
	Changes     map[string]any `json:"changes,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

func toAuditRecords(records []domain.AuditRecord) []auditRecordResponse {
	out := make([]auditRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, auditRecordResponse{
			ID:          r.ID,
			ActorID:     r.ActorID,
			EntityType:  string(r.EntityType),
			EntityID:    r.EntityID,
			Action:      string(r.Action),
			BeforeState: r.BeforeState,
			AfterState:  r.AfterState,
			Changes:     r.Changes,
			CreatedAt:   r.CreatedAt,
		})
	}
	return out
}

type notificationResponse struct {
	ID           uuid.UUID  `json:"id"`
	RecipientID  uuid.UUID  `json:"recipient_id"`
	Type         string     `json:"type"`
	Title        string     `json:"title"`
	Body         string     `json:"body"`
	EntityType   *string    `json:"entity_type,omitempty"`
	EntityID     *uuid.UUID `json:"entity_id,omitempty"`
	Channel      string     `json:"channel"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	SentAt       *time.Time `json:"sent_at,omitempty"`
	ErrorMessage *string    `json:"error_message,omitempty"`
}

// toNotifications hides error messages unless withErrors is set.
func toNotifications(items []domain.Notification, withErrors bool) []notificationResponse {
	out := make([]notificationResponse, 0, len(items))
	for _, n := range items {
		resp := notificationResponse{
			ID:          n.ID,
			RecipientID: n.RecipientID,
			Type:        string(n.Type),
			Title:       n.Title,
			Body:        n.Body,
			EntityID:    n.EntityID,
			Channel:     string(n.Channel),
			Status:      string(n.Status),
			CreatedAt:   n.CreatedAt,
			SentAt:      n.SentAt,
		}
		if n.EntityType != nil {
			et := string(*n.EntityType)
			resp.EntityType = &et
		}
		if withErrors {
			resp.ErrorMessage = n.ErrorMessage
		}
		out = append(out, resp)
	}
	return out
}

type userResponse struct {
	ID              uuid.UUID `json:"id"`
	Role            string    `json:"role"`
	DisplayName     string    `json:"display_name"`
	Email           *string   `json:"email,omitempty"`
	EmailEnabled    bool      `json:"email_enabled"`
	TelegramChatID  *int64    `json:"telegram_chat_id,omitempty"`
	TelegramEnabled bool      `json:"telegram_enabled"`
	Channels        []string  `json:"channels"`
	CreatedAt       time.Time `json:"created_at"`
}

func toUser(u *domain.User) userResponse {
	channels := u.EnabledChannels()
	names := make([]string, 0, len(channels))
	for _, c := range channels {
		names = append(names, string(c))
	}
	return userResponse{
		ID:              u.ID,
		Role:            string(u.Role),
		DisplayName:     u.DisplayName,
		Email:           u.Email,
		EmailEnabled:    u.EmailEnabled,
		TelegramChatID:  u.TelegramChatID,
		TelegramEnabled: u.TelegramEnabled,
		Channels:        names,
		CreatedAt:       u.CreatedAt,
	}
}

func toPendingItems(items []moderation.PendingItem) []pendingItemResponse {
	out := make([]pendingItemResponse, 0, len(items))
	for _, p := range items {
		out = append(out, pendingItemResponse{
			contentItemResponse: toContentItem(p.Item),
			Priority:            string(p.Priority),
			DaysInQueue:         p.DaysInQueue,
		})
	}
	return out
}
