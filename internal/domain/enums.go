package domain

// ContentKind discriminates the moderatable content item kinds.
type ContentKind string

const (
	ContentKindProfile        ContentKind = "profile"
	ContentKindTimelineEvent  ContentKind = "timeline_event"
	ContentKindMemory         ContentKind = "memory"
	ContentKindMemoryAddition ContentKind = "memory_addition"
	ContentKindComment        ContentKind = "comment"
	ContentKindCondolence     ContentKind = "condolence"
	ContentKindConnection     ContentKind = "connection"
	ContentKindAward          ContentKind = "award"
)

// AllContentKinds lists every kind in a stable order.
var AllContentKinds = []ContentKind{
	ContentKindProfile,
	ContentKindTimelineEvent,
	ContentKindMemory,
	ContentKindMemoryAddition,
	ContentKindComment,
	ContentKindCondolence,
	ContentKindConnection,
	ContentKindAward,
}

func (k ContentKind) String() string { return string(k) }

func (k ContentKind) IsValid() bool {
	switch k {
	case ContentKindProfile, ContentKindTimelineEvent, ContentKindMemory, ContentKindMemoryAddition,
		ContentKindComment, ContentKindCondolence, ContentKindConnection, ContentKindAward:
		return true
	}
	return false
}

// ContentStatus is the moderation state of a content item.
type ContentStatus string

const (
	ContentStatusPending  ContentStatus = "pending"
	ContentStatusApproved ContentStatus = "approved"
	ContentStatusRejected ContentStatus = "rejected"
	ContentStatusArchived ContentStatus = "archived"
)

func (s ContentStatus) String() string { return string(s) }

func (s ContentStatus) IsValid() bool {
	switch s {
	case ContentStatusPending, ContentStatusApproved, ContentStatusRejected, ContentStatusArchived:
		return true
	}
	return false
}

// IsTerminal reports whether no transition leaves the status.
func (s ContentStatus) IsTerminal() bool {
	return s == ContentStatusRejected || s == ContentStatusArchived
}

// Role is the global, platform-wide role of a user.
// Owner and editor are contextual per profile and are never stored as a role.
type Role string

const (
	RoleUser       Role = "user"
	RoleModerator  Role = "moderator"
	RoleAdmin      Role = "admin"
	RoleSuperadmin Role = "superadmin"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin, RoleSuperadmin:
		return true
	}
	return false
}

// IsStaff reports whether the role carries platform-wide moderation authority.
func (r Role) IsStaff() bool {
	return r == RoleModerator || r == RoleAdmin || r == RoleSuperadmin
}

// IsAdmin reports whether the role is admin or superadmin.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperadmin
}

// ModerationAction is the decision applied to a pending item.
type ModerationAction string

const (
	ModerationActionApprove ModerationAction = "approve"
	ModerationActionReject  ModerationAction = "reject"
)

func (a ModerationAction) String() string { return string(a) }

func (a ModerationAction) IsValid() bool {
	return a == ModerationActionApprove || a == ModerationActionReject
}

// TargetStatus returns the status the action moves a pending item to.
func (a ModerationAction) TargetStatus() ContentStatus {
	if a == ModerationActionApprove {
		return ContentStatusApproved
	}
	return ContentStatusRejected
}

// Priority ranks pending items in the moderation queue.
type Priority string

const (
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) String() string { return string(p) }

// Rank orders priorities: normal < high < urgent.
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 2
	case PriorityHigh:
		return 1
	}
	return 0
}

// Channel is a notification delivery mechanism.
type Channel string

const (
	ChannelTelegram Channel = "telegram"
	ChannelEmail    Channel = "email"
	ChannelInApp    Channel = "inapp"
)

func (c Channel) String() string { return string(c) }

func (c Channel) IsValid() bool {
	switch c {
	case ChannelTelegram, ChannelEmail, ChannelInApp:
		return true
	}
	return false
}

// NotificationStatus is the delivery state of a notification.
type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "pending"
	NotificationStatusSent    NotificationStatus = "sent"
	NotificationStatusFailed  NotificationStatus = "failed"
)

func (s NotificationStatus) String() string { return string(s) }

func (s NotificationStatus) IsValid() bool {
	switch s {
	case NotificationStatusPending, NotificationStatusSent, NotificationStatusFailed:
		return true
	}
	return false
}

// NotificationType names the event a notification reports.
type NotificationType string

const (
	NotificationTypeContentSubmitted   NotificationType = "content_submitted"
	NotificationTypeContentPublished   NotificationType = "content_published"
	NotificationTypeModerationApproved NotificationType = "moderation_approved"
	NotificationTypeModerationRejected NotificationType = "moderation_rejected"
	NotificationTypeContentArchived    NotificationType = "content_archived"
	NotificationTypeContentDeleted     NotificationType = "content_deleted"
	NotificationTypeEditorAdded        NotificationType = "editor_added"
	NotificationTypeEditorRemoved      NotificationType = "editor_removed"
)

func (t NotificationType) String() string { return string(t) }

func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeContentSubmitted, NotificationTypeContentPublished,
		NotificationTypeModerationApproved, NotificationTypeModerationRejected,
		NotificationTypeContentArchived, NotificationTypeContentDeleted,
		NotificationTypeEditorAdded, NotificationTypeEditorRemoved:
		return true
	}
	return false
}

// EntityType identifies the kind of domain entity (used in audit logs and
// notification references).
type EntityType string

const (
	EntityTypeContentItem  EntityType = "content_item"
	EntityTypeProfile      EntityType = "profile"
	EntityTypeUser         EntityType = "user"
	EntityTypeNotification EntityType = "notification"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeContentItem, EntityTypeProfile, EntityTypeUser, EntityTypeNotification:
		return true
	}
	return false
}

// AuditAction is the operation recorded by an audit entry.
type AuditAction string

const (
	AuditActionCreate       AuditAction = "create"
	AuditActionApprove      AuditAction = "approve"
	AuditActionReject       AuditAction = "reject"
	AuditActionArchive      AuditAction = "archive"
	AuditActionDelete       AuditAction = "delete"
	AuditActionEditorAdd    AuditAction = "editor_add"
	AuditActionEditorRemove AuditAction = "editor_remove"
	AuditActionRoleChange   AuditAction = "role_change"
	AuditActionRequeue      AuditAction = "requeue"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionApprove, AuditActionReject, AuditActionArchive,
		AuditActionDelete, AuditActionEditorAdd, AuditActionEditorRemove,
		AuditActionRoleChange, AuditActionRequeue:
		return true
	}
	return false
}
