package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord is an immutable log entry of one state-changing action.
type AuditRecord struct {
	ID          uuid.UUID
	ActorID     uuid.UUID
	EntityType  EntityType
	EntityID    uuid.UUID
	Action      AuditAction
	BeforeState *string
	AfterState  *string
	Changes     map[string]any
	CreatedAt   time.Time
}

// NewAuditRecord builds a record for a status change. Empty states are stored as NULL.
func NewAuditRecord(actorID uuid.UUID, entityType EntityType, entityID uuid.UUID, action AuditAction, before, after string, now time.Time) AuditRecord {
	return AuditRecord{
		ID:          uuid.New(),
		ActorID:     actorID,
		EntityType:  entityType,
		EntityID:    entityID,
		Action:      action,
		BeforeState: stringOrNil(before),
		AfterState:  stringOrNil(after),
		CreatedAt:   now,
	}
}

func stringOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
