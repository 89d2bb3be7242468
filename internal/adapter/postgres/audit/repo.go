// Package audit implements the Audit repository using PostgreSQL.
// It provides append-only operations for audit log records; a table trigger
// rejects UPDATE and DELETE.
package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/memorial-backend/internal/adapter/postgres"
	"github.com/heartmarshall/memorial-backend/internal/domain"
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const auditColumns = `id, actor_id, entity_type, entity_id, action, before_state, after_state, changes, created_at`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new audit record and returns the persisted domain.AuditRecord.
// Inside a transaction (see postgres.TxManager) the record commits or rolls
// back together with the change it describes.
func (r *Repo) Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var changesJSON []byte
	if record.Changes != nil {
		var err error
		changesJSON, err = json.Marshal(record.Changes)
		if err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_record marshal changes: %w", err)
		}
	}

	row := q.QueryRow(ctx, `
INSERT INTO audit_log (`+auditColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING `+auditColumns,
		record.ID, record.ActorID, string(record.EntityType), record.EntityID, string(record.Action),
		record.BeforeState, record.AfterState, changesJSON, record.CreatedAt,
	)

	created, err := scanAuditRecord(row)
	if err != nil {
		return domain.AuditRecord{}, postgres.MapError(err, "audit_record", record.ID)
	}

	return created, nil
}

// Log creates an audit record without returning it.
// Satisfies the auditLogger interfaces of the moderation, notify and user services.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	_, err := r.Create(ctx, record)
	return err
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByEntity returns the change history for a specific entity, ordered by
// created_at DESC, limited to `limit` records.
func (r *Repo) GetByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `
SELECT `+auditColumns+`
FROM audit_log
WHERE entity_type = $1 AND entity_id = $2
ORDER BY created_at DESC, id
LIMIT $3`, string(entityType), entityID, limit)
	if err != nil {
		return nil, fmt.Errorf("get audit_records by entity: %w", err)
	}

	return collectAuditRecords(rows)
}

// GetByActor returns audit log records written by an actor, ordered by
// created_at DESC with pagination.
func (r *Repo) GetByActor(ctx context.Context, actorID uuid.UUID, limit, offset int) ([]domain.AuditRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `
SELECT `+auditColumns+`
FROM audit_log
WHERE actor_id = $1
ORDER BY created_at DESC, id
LIMIT $2 OFFSET $3`, actorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get audit_records by actor: %w", err)
	}

	return collectAuditRecords(rows)
}

// ---------------------------------------------------------------------------
// Mapping helpers: row -> domain
// ---------------------------------------------------------------------------

func collectAuditRecords(rows pgx.Rows) ([]domain.AuditRecord, error) {
	defer rows.Close()

	var records []domain.AuditRecord
	for rows.Next() {
		rec, err := scanAuditRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit_records: %w", err)
	}

	return records, nil
}

// scanAuditRecord reads one audit_log row into a domain.AuditRecord.
func scanAuditRecord(row pgx.Row) (domain.AuditRecord, error) {
	var (
		record      domain.AuditRecord
		entityType  string
		action      string
		changesJSON []byte
	)

	if err := row.Scan(
		&record.ID, &record.ActorID, &entityType, &record.EntityID, &action,
		&record.BeforeState, &record.AfterState, &changesJSON, &record.CreatedAt,
	); err != nil {
		return domain.AuditRecord{}, err
	}

	record.EntityType = domain.EntityType(entityType)
	record.Action = domain.AuditAction(action)

	// changes: JSONB -> map[string]any
	if len(changesJSON) > 0 {
		changes := make(map[string]any)
		if err := json.Unmarshal(changesJSON, &changes); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_record %s unmarshal changes: %w", record.ID, err)
		}
		record.Changes = changes
	}

	return record, nil
}
