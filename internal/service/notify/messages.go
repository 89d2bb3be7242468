package notify

import (
	"strings"

	"github.com/heartmarshall/memorial-backend/internal/domain"
)

var kindLabels = map[domain.ContentKind]string{
	domain.ContentKindProfile:        "memorial profile",
	domain.ContentKindTimelineEvent:  "timeline event",
	domain.ContentKindMemory:         "memory",
	domain.ContentKindMemoryAddition: "memory addition",
	domain.ContentKindComment:        "comment",
	domain.ContentKindCondolence:     "condolence",
	domain.ContentKindConnection:     "family connection",
	domain.ContentKindAward:          "award",
}

// kindLabel returns a human-readable name for a content kind.
func kindLabel(k domain.ContentKind) string {
	if l, ok := kindLabels[k]; ok {
		return l
	}
	return "record"
}

// composeMessage builds the stored title and body of a notification.
// Channel-specific formatting happens at dispatch time.
func composeMessage(ev domain.Event) (title, body string) {
	label := kindLabel(ev.Kind)

	switch ev.Type {
	case domain.NotificationTypeContentSubmitted:
		title = "New " + label + " awaits review"
		body = "A new " + label + " was submitted to a memorial you manage and is waiting for moderation."
	case domain.NotificationTypeContentPublished:
		title = "New " + label + " published"
		body = "A " + label + " was added to a memorial you own."
	case domain.NotificationTypeModerationApproved:
		title = "Your " + label + " was approved"
		body = "The " + label + " is now visible on the memorial page."
	case domain.NotificationTypeModerationRejected:
		title = "Your " + label + " was rejected"
		body = "The " + label + " did not pass moderation."
	case domain.NotificationTypeContentArchived:
		title = "Your " + label + " was archived"
		body = "The " + label + " is no longer shown on the memorial page."
	case domain.NotificationTypeContentDeleted:
		title = "Your " + label + " was removed"
		body = "The " + label + " was deleted from the memorial."
	case domain.NotificationTypeEditorAdded:
		title = "You can now edit a memorial"
		body = "You were added as an editor of a memorial profile."
	case domain.NotificationTypeEditorRemoved:
		title = "Editor access removed"
		body = "You are no longer an editor of a memorial profile."
	default:
		title = "Memorial update"
	}

	if ev.Note != nil {
		if note := strings.TrimSpace(*ev.Note); note != "" {
			body += "\nReason: " + note
		}
	}
	return title, body
}
