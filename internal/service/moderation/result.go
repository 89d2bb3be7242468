package moderation

import "github.com/heartmarshall/memorial-backend/internal/domain"

// ModerateResult is the outcome of a moderation decision.
type ModerateResult struct {
	Item      domain.ContentItem
	NewStatus domain.ContentStatus
	Notified  int
}

// PendingItem is a queue entry annotated with its computed priority.
type PendingItem struct {
	Item        domain.ContentItem
	Priority    domain.Priority
	DaysInQueue int
}

// EditorResult reports whether an editor change took effect.
type EditorResult struct {
	Changed bool
}
