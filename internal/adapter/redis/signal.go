package redis

import (
	"context"
	"fmt"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"
)

// Signal publishes and receives dispatcher wake-ups over a pub/sub channel.
// Messages carry no payload; a wake-up only shortens the wait until the
// next poll.
type Signal struct {
	client  *goredis.Client
	channel string
	log     *slog.Logger
}

// NewSignal creates a signal on the given pub/sub channel.
func NewSignal(client *goredis.Client, channel string, log *slog.Logger) *Signal {
	return &Signal{client: client, channel: channel, log: log.With("adapter", "redis_signal")}
}

// Wake publishes a wake-up.
func (s *Signal) Wake(ctx context.Context) error {
	if err := s.client.Publish(ctx, s.channel, "wake").Err(); err != nil {
		return fmt.Errorf("publish %s: %w", s.channel, err)
	}
	return nil
}

// Subscribe returns a channel that receives a value per wake-up. Bursts are
// coalesced into one pending value. The channel is closed when ctx ends.
func (s *Signal) Subscribe(ctx context.Context) (<-chan struct{}, error) {
	sub := s.client.Subscribe(ctx, s.channel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("subscribe %s: %w", s.channel, err)
	}

	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		defer sub.Close()

		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-msgs:
				if !ok {
					s.log.Warn("wake subscription closed")
					return
				}
				select {
				case out <- struct{}{}:
				default:
				}
			}
		}
	}()
	return out, nil
}
