// Package inapp implements the in-app inbox channel. Notification rows are
// the inbox itself, so delivery only needs to mark them sent.
package inapp

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/memorial-backend/internal/domain"
)

// Sender always succeeds.
type Sender struct {
	log *slog.Logger
}

// New creates the in-app channel.
func New(log *slog.Logger) *Sender {
	return &Sender{log: log.With("channel", string(domain.ChannelInApp))}
}

// Send makes msg visible in the recipient's inbox.
func (s *Sender) Send(ctx context.Context, msg domain.Message) error {
	s.log.DebugContext(ctx, "inbox delivery",
		slog.String("notification_id", msg.NotificationID.String()),
		slog.String("recipient_id", msg.RecipientID.String()),
	)
	return nil
}
