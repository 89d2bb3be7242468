// Package notification implements the notification queue using PostgreSQL.
// The table doubles as the outbox read by the dispatcher.
package notification

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/memorial-backend/internal/adapter/postgres"
	"github.com/heartmarshall/memorial-backend/internal/domain"
)

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new notification repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var notificationColumns = []string{
	"n.id", "n.recipient_id", "n.type", "n.title", "n.body", "n.entity_type", "n.entity_id",
	"n.channel", "n.status", "n.created_at", "n.sent_at", "n.error_message",
}

// ---------------------------------------------------------------------------
// Producer side
// ---------------------------------------------------------------------------

// InsertPending enqueues n unless a row with the same entity, recipient, type
// and channel already exists. It reports whether a row was inserted.
func (r *Repo) InsertPending(ctx context.Context, n domain.Notification) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var entityType *string
	if n.EntityType != nil {
		s := string(*n.EntityType)
		entityType = &s
	}

	tag, err := q.Exec(ctx, `
INSERT INTO notifications (id, recipient_id, type, title, body, entity_type, entity_id, channel, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'pending', $9, $9)
ON CONFLICT ON CONSTRAINT notifications_dedup DO NOTHING`,
		n.ID, n.RecipientID, string(n.Type), n.Title, n.Body, entityType, n.EntityID, string(n.Channel), n.CreatedAt,
	)
	if err != nil {
		return false, postgres.MapError(err, "notification", n.ID)
	}
	return tag.RowsAffected() == 1, nil
}

// ---------------------------------------------------------------------------
// Dispatcher side
// ---------------------------------------------------------------------------

// ListDeliverable returns up to limit pending notifications oldest first,
// restricted to the given channels and to recipients who are not deleted and
// still have the channel enabled. Each row carries the address its channel needs.
func (r *Repo) ListDeliverable(ctx context.Context, channels []domain.Channel, limit int) ([]domain.Delivery, error) {
	if len(channels) == 0 || limit <= 0 {
		return nil, nil
	}
	names := make([]string, len(channels))
	for i, c := range channels {
		names[i] = string(c)
	}

	query, args, err := psql.Select(notificationColumns...).
		Columns("u.email", "u.telegram_chat_id").
		From("notifications n").
		Join("users u ON u.id = n.recipient_id").
		Where(sq.Eq{"n.status": string(domain.NotificationStatusPending)}).
		Where("u.deleted_at IS NULL").
		Where("n.channel::text = ANY(?::text[])", names).
		Where(`(n.channel = 'inapp'
			OR (n.channel = 'email' AND u.email_enabled AND coalesce(btrim(u.email), '') <> '')
			OR (n.channel = 'telegram' AND u.telegram_enabled AND coalesce(u.telegram_chat_id, 0) <> 0))`).
		OrderBy("n.created_at ASC", "n.id ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list deliverable: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list deliverable: %w", err)
	}
	defer rows.Close()

	deliveries := make([]domain.Delivery, 0, limit)
	for rows.Next() {
		var d domain.Delivery
		n, err := scanNotification(rows, &d.Email, &d.TelegramChatID)
		if err != nil {
			return nil, fmt.Errorf("scan delivery: %w", err)
		}
		d.Notification = *n
		deliveries = append(deliveries, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate deliveries: %w", err)
	}
	return deliveries, nil
}

// MarkSent moves a pending notification to sent. It reports false when the
// row was no longer pending.
func (r *Repo) MarkSent(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `
UPDATE notifications SET status = 'sent', sent_at = $2, error_message = NULL, updated_at = $2
WHERE id = $1 AND status = 'pending'`, id, at)
	if err != nil {
		return false, postgres.MapError(err, "notification", id)
	}
	return tag.RowsAffected() == 1, nil
}

// MarkFailed moves a pending notification to failed with the delivery error.
func (r *Repo) MarkFailed(ctx context.Context, id uuid.UUID, reason string, at time.Time) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `
UPDATE notifications SET status = 'failed', error_message = $2, updated_at = $3
WHERE id = $1 AND status = 'pending'`, id, reason, at)
	if err != nil {
		return false, postgres.MapError(err, "notification", id)
	}
	return tag.RowsAffected() == 1, nil
}

// ---------------------------------------------------------------------------
// Operator side
// ---------------------------------------------------------------------------

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// List returns notifications newest first.
func (r *Repo) List(ctx context.Context, f domain.NotificationFilter) ([]domain.Notification, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := max(f.Offset, 0)

	b := psql.Select(notificationColumns...).
		From("notifications n").
		OrderBy("n.created_at DESC", "n.id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	if f.RecipientID != nil {
		b = b.Where(sq.Eq{"n.recipient_id": *f.RecipientID})
	}
	if f.Channel != nil {
		b = b.Where(sq.Eq{"n.channel": string(*f.Channel)})
	}
	if f.Status != nil {
		b = b.Where(sq.Eq{"n.status": string(*f.Status)})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list notifications: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Notification, 0, limit)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		out = append(out, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notifications: %w", err)
	}
	return out, nil
}

// Requeue moves failed notifications among ids back to pending and returns
// the ids that actually changed.
func (r *Repo) Requeue(ctx context.Context, ids []uuid.UUID, at time.Time) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `
UPDATE notifications SET status = 'pending', error_message = NULL, updated_at = $2
WHERE id = ANY($1) AND status = 'failed'
RETURNING id`, ids, at)
	if err != nil {
		return nil, fmt.Errorf("requeue notifications: %w", err)
	}
	requeued, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("collect requeued ids: %w", err)
	}
	return requeued, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanNotification(row pgx.Row, extra ...any) (*domain.Notification, error) {
	var (
		n                    domain.Notification
		typ, channel, status string
		entityType           *string
	)
	dest := []any{
		&n.ID, &n.RecipientID, &typ, &n.Title, &n.Body, &entityType, &n.EntityID,
		&channel, &status, &n.CreatedAt, &n.SentAt, &n.ErrorMessage,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	n.Type = domain.NotificationType(typ)
	n.Channel = domain.Channel(channel)
	n.Status = domain.NotificationStatus(status)
	if entityType != nil {
		et := domain.EntityType(*entityType)
		n.EntityType = &et
	}
	return &n, nil
}
