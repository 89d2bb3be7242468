// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/memorial-backend/internal/adapter/postgres"
	"github.com/heartmarshall/memorial-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, role, display_name, email, email_enabled, telegram_chat_id, telegram_enabled, created_at, updated_at, deleted_at`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key, including soft-deleted users.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return u, nil
}

// GetByIDs returns the users that exist among ids, in no particular order.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `SELECT `+userColumns+` FROM users WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("get users by ids: %w", err)
	}
	defer rows.Close()

	users := make([]*domain.User, 0, len(ids))
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Upsert inserts the user or refreshes display name and email of an existing
// one. Role and channel preferences of an existing user are never touched.
func (r *Repo) Upsert(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `
INSERT INTO users (id, role, display_name, email, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
ON CONFLICT (id) DO UPDATE
SET display_name = EXCLUDED.display_name,
    email        = COALESCE(EXCLUDED.email, users.email),
    updated_at   = EXCLUDED.updated_at
RETURNING `+userColumns,
		u.ID, string(u.Role), u.DisplayName, u.Email, u.CreatedAt,
	)

	saved, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	return saved, nil
}

// UpdateChannels replaces the notification preferences of an active user.
func (r *Repo) UpdateChannels(ctx context.Context, id uuid.UUID, s domain.ChannelSettings, now time.Time) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `
UPDATE users
SET email = $2, email_enabled = $3, telegram_chat_id = $4, telegram_enabled = $5, updated_at = $6
WHERE id = $1 AND deleted_at IS NULL
RETURNING `+userColumns,
		id, s.Email, s.EmailEnabled, s.TelegramChatID, s.TelegramEnabled, now,
	)

	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return u, nil
}

// UpdateRole sets the global role when the current role still equals
// expected. Returns domain.ErrConflict if the role changed concurrently.
func (r *Repo) UpdateRole(ctx context.Context, id uuid.UUID, expected, role domain.Role, now time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `
UPDATE users SET role = $3, updated_at = $4
WHERE id = $1 AND role = $2 AND deleted_at IS NULL`,
		id, string(expected), string(role), now,
	)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrConflict)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u    domain.User
		role string
	)
	if err := row.Scan(
		&u.ID, &role, &u.DisplayName, &u.Email, &u.EmailEnabled,
		&u.TelegramChatID, &u.TelegramEnabled, &u.CreatedAt, &u.UpdatedAt, &u.DeletedAt,
	); err != nil {
		return nil, err
	}
	u.Role = domain.Role(role)
	return &u, nil
}
