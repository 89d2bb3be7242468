// Package profile implements the Profile repository using PostgreSQL.
// Editors are stored in profile_editors and loaded with the profile.
package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/memorial-backend/internal/adapter/postgres"
	"github.com/heartmarshall/memorial-backend/internal/domain"
)

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new profile repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts the profile row. The matching content item of kind profile
// is created separately by the content repository in the same transaction.
func (r *Repo) Create(ctx context.Context, p domain.Profile) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`INSERT INTO profiles (id, owner_id, created_at) VALUES ($1, $2, $3)`,
		p.ID, p.OwnerID, p.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "profile", p.ID)
	}
	return nil
}

// GetByID returns the profile with its editor set.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p := domain.Profile{ID: id}
	err := q.QueryRow(ctx,
		`SELECT owner_id, created_at FROM profiles WHERE id = $1`, id,
	).Scan(&p.OwnerID, &p.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "profile", id)
	}

	rows, err := q.Query(ctx, `SELECT user_id FROM profile_editors WHERE profile_id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("list editors of profile %s: %w", id, err)
	}
	defer rows.Close()

	p.Editors = domain.NewEditorSet()
	for rows.Next() {
		var editorID uuid.UUID
		if err := rows.Scan(&editorID); err != nil {
			return nil, fmt.Errorf("scan editor: %w", err)
		}
		p.Editors.Add(editorID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate editors: %w", err)
	}

	return &p, nil
}

// AddEditor grants userID editor rights. It reports false when the user
// already was an editor.
func (r *Repo) AddEditor(ctx context.Context, profileID, userID, addedBy uuid.UUID, now time.Time) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `
INSERT INTO profile_editors (profile_id, user_id, added_by, added_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (profile_id, user_id) DO NOTHING`,
		profileID, userID, addedBy, now,
	)
	if err != nil {
		return false, postgres.MapError(err, "profile", profileID)
	}
	return tag.RowsAffected() == 1, nil
}

// RemoveEditor revokes editor rights and reports whether userID was an editor.
func (r *Repo) RemoveEditor(ctx context.Context, profileID, userID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`DELETE FROM profile_editors WHERE profile_id = $1 AND user_id = $2`,
		profileID, userID,
	)
	if err != nil {
		return false, postgres.MapError(err, "profile", profileID)
	}
	return tag.RowsAffected() == 1, nil
}

// ManagedProfileIDs returns the profiles userID owns or edits.
func (r *Repo) ManagedProfileIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `
SELECT id FROM profiles WHERE owner_id = $1
UNION
SELECT profile_id FROM profile_editors WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("managed profiles of %s: %w", userID, err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan profile id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate profile ids: %w", err)
	}
	return ids, nil
}
