// Package content implements the ContentItem repository using PostgreSQL.
//
// Status changes are optimistic: every write is conditional on the status the
// caller read, so two moderators racing on one item cannot both win.
package content

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/memorial-backend/internal/adapter/postgres"
	"github.com/heartmarshall/memorial-backend/internal/domain"
)

// Repo provides content item persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new content repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var itemColumns = []string{
	"id", "kind", "profile_id", "author_id", "status", "payload", "created_at", "updated_at",
	"moderated_by", "moderated_at", "moderation_note", "deleted_at", "deleted_by",
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an item by id. Soft-deleted items are returned as well;
// callers check IsDeleted.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ContentItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Select(itemColumns...).From("content_items").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get content item: %w", err)
	}

	item, err := scanItem(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "content item", id)
	}
	return item, nil
}

const (
	defaultPendingLimit = 50
	maxPendingLimit     = 200
)

// ListPending returns pending, non-deleted items oldest first.
func (r *Repo) ListPending(ctx context.Context, f domain.PendingFilter) ([]domain.ContentItem, error) {
	if f.ProfileIDs != nil && len(f.ProfileIDs) == 0 {
		return []domain.ContentItem{}, nil
	}

	limit := f.Limit
	if limit <= 0 {
		limit = defaultPendingLimit
	}
	if limit > maxPendingLimit {
		limit = maxPendingLimit
	}

	b := psql.Select(itemColumns...).
		From("content_items").
		Where(sq.Eq{"status": string(domain.ContentStatusPending)}).
		Where("deleted_at IS NULL").
		OrderBy("created_at ASC", "id ASC").
		Limit(uint64(limit))

	if f.ProfileIDs != nil {
		b = b.Where(sq.Eq{"profile_id": f.ProfileIDs})
	}
	if len(f.Kinds) > 0 {
		kinds := make([]string, len(f.Kinds))
		for i, k := range f.Kinds {
			kinds[i] = string(k)
		}
		b = b.Where(sq.Eq{"kind": kinds})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list pending: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pending: %w", err)
	}
	defer rows.Close()

	items := make([]domain.ContentItem, 0, limit)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan content item: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate content items: %w", err)
	}
	return items, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new item.
func (r *Repo) Create(ctx context.Context, item domain.ContentItem) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Insert("content_items").
		Columns("id", "kind", "profile_id", "author_id", "status", "payload", "created_at", "updated_at").
		Values(item.ID, string(item.Kind), item.ProfileID, item.AuthorID, string(item.Status), []byte(item.Payload), item.CreatedAt, item.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create content item: %w", err)
	}

	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "content item", item.ID)
	}
	return nil
}

// UpdateStatus moves the item from p.From to p.To. It returns
// domain.ErrConflict when the item is no longer in p.From or was deleted.
func (r *Repo) UpdateStatus(ctx context.Context, p domain.StatusTransition) (*domain.ContentItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Update("content_items").
		Set("status", string(p.To)).
		Set("moderated_by", p.ActorID).
		Set("moderated_at", p.At).
		Set("moderation_note", p.Note).
		Set("updated_at", p.At).
		Where(sq.Eq{"id": p.ItemID, "status": string(p.From)}).
		Where("deleted_at IS NULL").
		Suffix("RETURNING " + strings.Join(itemColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update status: %w", err)
	}

	item, err := scanItem(q.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("content item %s: status is no longer %s: %w", p.ItemID, p.From, domain.ErrConflict)
	}
	if err != nil {
		return nil, postgres.MapError(err, "content item", p.ItemID)
	}
	return item, nil
}

// SoftDelete marks the item deleted when it still has the expected status.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID, expected domain.ContentStatus, by uuid.UUID, at time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Update("content_items").
		Set("deleted_at", at).
		Set("deleted_by", by).
		Set("updated_at", at).
		Where(sq.Eq{"id": id, "status": string(expected)}).
		Where("deleted_at IS NULL").
		ToSql()
	if err != nil {
		return fmt.Errorf("build soft delete: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "content item", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("content item %s: %w", id, domain.ErrConflict)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanItem(row pgx.Row) (*domain.ContentItem, error) {
	var (
		item         domain.ContentItem
		kind, status string
		payload      []byte
	)
	if err := row.Scan(
		&item.ID, &kind, &item.ProfileID, &item.AuthorID, &status, &payload,
		&item.CreatedAt, &item.UpdatedAt,
		&item.ModeratedBy, &item.ModeratedAt, &item.ModerationNote,
		&item.DeletedAt, &item.DeletedBy,
	); err != nil {
		return nil, err
	}
	item.Kind = domain.ContentKind(kind)
	item.Status = domain.ContentStatus(status)
	item.Payload = payload
	return &item, nil
}
