// Package telegram delivers notifications through the Telegram Bot API.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/heartmarshall/memorial-backend/internal/domain"
)

var errNoChat = errors.New("telegram chat id is missing")

// Sender posts plain-text messages to a chat. With an empty token it runs in
// dry mode: messages are logged and reported as delivered.
type Sender struct {
	api    *tgbotapi.BotAPI
	log    *slog.Logger
	dryRun bool
}

// New creates a sender for the public Bot API. timeout caps each HTTP
// request, including the ones Send stops waiting for.
func New(token string, timeout time.Duration, log *slog.Logger) (*Sender, error) {
	return NewWithEndpoint(token, tgbotapi.APIEndpoint, &http.Client{Timeout: timeout}, log)
}

// NewWithEndpoint creates a sender against a custom API endpoint, in the
// "https://host/bot%s/%s" form tgbotapi expects.
func NewWithEndpoint(token, endpoint string, client *http.Client, log *slog.Logger) (*Sender, error) {
	log = log.With("channel", string(domain.ChannelTelegram))

	if strings.TrimSpace(token) == "" {
		log.Warn("telegram token is empty, running in dry mode")
		return &Sender{log: log, dryRun: true}, nil
	}

	api, err := tgbotapi.NewBotAPIWithClient(token, endpoint, client)
	if err != nil {
		return nil, fmt.Errorf("telegram bot api: %w", err)
	}

	return &Sender{api: api, log: log}, nil
}

// DryRun reports whether messages are only logged.
func (s *Sender) DryRun() bool { return s.dryRun }

// Send delivers msg.Text to msg.TelegramChatID. The Bot API client has no
// context support, so cancellation abandons the request; the HTTP client
// timeout then ends it.
func (s *Sender) Send(ctx context.Context, msg domain.Message) error {
	if msg.TelegramChatID == 0 {
		return errNoChat
	}

	if s.dryRun {
		s.log.InfoContext(ctx, "dry run: telegram message",
			slog.Int64("chat_id", msg.TelegramChatID),
			slog.String("notification_id", msg.NotificationID.String()),
			slog.String("text", msg.Text),
		)
		return nil
	}

	out := tgbotapi.NewMessage(msg.TelegramChatID, msg.Text)
	out.DisableWebPagePreview = true

	done := make(chan error, 1)
	go func() {
		_, err := s.api.Send(out)
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("send message: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("send message: %w", ctx.Err())
	}
}
