package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/memorial-backend/internal/domain"
)

type userReader interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.User, error)
}

type notificationWriter interface {
	InsertPending(ctx context.Context, n domain.Notification) (bool, error)
}

// Producer turns domain events into pending notifications, one per recipient
// and enabled channel. It never delivers anything itself.
type Producer struct {
	users         userReader
	notifications notificationWriter
	log           *slog.Logger
	now           func() time.Time
}

// NewProducer creates a notification producer.
func NewProducer(log *slog.Logger, users userReader, notifications notificationWriter) *Producer {
	return &Producer{
		users:         users,
		notifications: notifications,
		log:           log.With("service", "notify_producer"),
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Produce enqueues notifications for ev and returns how many rows were
// created. Rows already present for the same entity, recipient, type and
// channel are skipped. When ctx carries a transaction the inserts join it.
func (p *Producer) Produce(ctx context.Context, ev domain.Event) (int, error) {
	if !ev.Type.IsValid() {
		return 0, domain.NewValidationError("type", "unknown notification type")
	}

	recipients := uniqueRecipients(ev.Recipients, ev.ActorID)
	if len(recipients) == 0 {
		return 0, nil
	}

	users, err := p.users.GetByIDs(ctx, recipients)
	if err != nil {
		return 0, fmt.Errorf("load recipients: %w", err)
	}
	byID := make(map[uuid.UUID]*domain.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	title, body := composeMessage(ev)
	entityType := ev.EntityType
	entityID := ev.EntityID
	now := p.now()

	created := 0
	for _, id := range recipients {
		u, ok := byID[id]
		if !ok || u.IsDeleted() {
			continue
		}
		for _, ch := range u.EnabledChannels() {
			inserted, err := p.notifications.InsertPending(ctx, domain.Notification{
				ID:          uuid.New(),
				RecipientID: id,
				Type:        ev.Type,
				Title:       title,
				Body:        body,
				EntityType:  &entityType,
				EntityID:    &entityID,
				Channel:     ch,
				Status:      domain.NotificationStatusPending,
				CreatedAt:   now,
			})
			if err != nil {
				return created, fmt.Errorf("enqueue %s for %s: %w", ch, id, err)
			}
			if inserted {
				created++
			}
		}
	}

	if created > 0 {
		p.log.DebugContext(ctx, "notifications enqueued",
			slog.String("type", string(ev.Type)),
			slog.String("entity_id", ev.EntityID.String()),
			slog.Int("count", created),
		)
	}

	return created, nil
}

// uniqueRecipients drops duplicates, the nil id and the actor, keeping order.
func uniqueRecipients(ids []uuid.UUID, actorID uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil || id == actorID {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
