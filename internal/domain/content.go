package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ContentItem is any moderatable record attached to a profile. The kind
// discriminates the payload; moderation rules come from PolicyFor(kind).
type ContentItem struct {
	ID             uuid.UUID
	Kind           ContentKind
	ProfileID      uuid.UUID // owner scope; equals ID for kind profile
	AuthorID       uuid.UUID
	Status         ContentStatus
	Payload        json.RawMessage
	CreatedAt      time.Time
	UpdatedAt      time.Time
	ModeratedBy    *uuid.UUID
	ModeratedAt    *time.Time
	ModerationNote *string
	DeletedAt      *time.Time
	DeletedBy      *uuid.UUID
}

// IsDeleted returns true if the item has been soft-deleted.
func (c *ContentItem) IsDeleted() bool {
	return c.DeletedAt != nil
}

// AutoApproval says which authors get their submissions approved immediately.
type AutoApproval int

const (
	AutoApproveNobody AutoApproval = iota
	AutoApproveOwner
	AutoApproveManagers // owner and editors
)

// KindPolicy holds the per-kind moderation rules.
type KindPolicy struct {
	AutoApprove        AutoApproval
	RequiresRejectNote bool
	// ManagerModeration allows the profile owner and editors to moderate.
	// When false only staff may moderate the kind.
	ManagerModeration bool
	AuthorMayDelete   bool
	// SelfModerationForbidden removes moderate from a manager who authored the item.
	SelfModerationForbidden bool
}

var kindPolicies = map[ContentKind]KindPolicy{
	ContentKindProfile: {
		AutoApprove: AutoApproveNobody,
	},
	ContentKindTimelineEvent:  {AutoApprove: AutoApproveManagers, ManagerModeration: true},
	ContentKindMemory:         {AutoApprove: AutoApproveManagers, ManagerModeration: true},
	ContentKindMemoryAddition: {AutoApprove: AutoApproveManagers, ManagerModeration: true},
	ContentKindComment: {
		AutoApprove:             AutoApproveManagers,
		ManagerModeration:       true,
		AuthorMayDelete:         true,
		SelfModerationForbidden: true,
	},
	ContentKindCondolence: {
		AutoApprove:             AutoApproveOwner,
		RequiresRejectNote:      true,
		ManagerModeration:       true,
		AuthorMayDelete:         true,
		SelfModerationForbidden: true,
	},
	ContentKindConnection: {AutoApprove: AutoApproveManagers, ManagerModeration: true},
	ContentKindAward:      {AutoApprove: AutoApproveManagers, ManagerModeration: true},
}

// PolicyFor returns the moderation policy of a kind. Unknown kinds get the
// most restrictive policy.
func PolicyFor(kind ContentKind) KindPolicy {
	if p, ok := kindPolicies[kind]; ok {
		return p
	}
	return KindPolicy{}
}

// InitialStatus returns the status a new submission starts in, given whether
// its author owns or edits the target profile.
func (p KindPolicy) InitialStatus(isOwner, isEditor bool) ContentStatus {
	switch p.AutoApprove {
	case AutoApproveOwner:
		if isOwner {
			return ContentStatusApproved
		}
	case AutoApproveManagers:
		if isOwner || isEditor {
			return ContentStatusApproved
		}
	}
	return ContentStatusPending
}

var transitions = map[ContentStatus][]ContentStatus{
	ContentStatusPending:  {ContentStatusApproved, ContentStatusRejected},
	ContentStatusApproved: {ContentStatusArchived},
}

// CanTransition reports whether the state machine allows from -> to.
func CanTransition(from, to ContentStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
