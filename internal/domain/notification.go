package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is one message for one recipient over one channel.
type Notification struct {
	ID           uuid.UUID
	RecipientID  uuid.UUID
	Type         NotificationType
	Title        string
	Body         string
	EntityType   *EntityType
	EntityID     *uuid.UUID
	Channel      Channel
	Status       NotificationStatus
	CreatedAt    time.Time
	SentAt       *time.Time
	ErrorMessage *string
}

// Delivery is a pending notification joined with the recipient address the
// channel needs.
type Delivery struct {
	Notification   Notification
	Email          *string
	TelegramChatID *int64
}

// Event is a domain event that may fan out into notifications.
type Event struct {
	Type       NotificationType
	EntityType EntityType
	EntityID   uuid.UUID
	ActorID    uuid.UUID
	Recipients []uuid.UUID
	Kind       ContentKind
	Note       *string
}

// Message is a rendered notification ready for one channel. Only the address
// field of the target channel is set.
type Message struct {
	NotificationID uuid.UUID
	RecipientID    uuid.UUID
	Channel        Channel
	Email          string
	TelegramChatID int64
	Subject        string
	Text           string
	HTML           string
}
