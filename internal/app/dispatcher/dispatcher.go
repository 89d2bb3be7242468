// Package dispatcher delivers pending notifications through their channels.
//
// A pass takes the dispatcher lock, selects a batch of the oldest deliverable
// notifications, sends each one once and records the outcome. Failed
// notifications are never retried automatically; an operator requeues them.
package dispatcher

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/memorial-backend/internal/domain"
)

type store interface {
	ListDeliverable(ctx context.Context, channels []domain.Channel, limit int) ([]domain.Delivery, error)
	MarkSent(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	MarkFailed(ctx context.Context, id uuid.UUID, reason string, at time.Time) (bool, error)
}

// Channel sends one rendered message.
type Channel interface {
	Send(ctx context.Context, msg domain.Message) error
}

// Stats summarizes one pass.
type Stats struct {
	// Skipped is true when another pass held the lock.
	Skipped  bool
	Selected int
	Sent     int
	Failed   int
	// Stale counts rows another pass finished first.
	Stale int
	// Errors counts outcomes that could not be recorded.
	Errors int
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLock replaces the process-local lock, typically with a Redis lock
// shared by all instances.
func WithLock(l Locker) Option {
	return func(d *Dispatcher) { d.lock = l }
}

// WithWake makes Run start a pass on every value received from ch.
func WithWake(ch <-chan struct{}) Option {
	return func(d *Dispatcher) { d.wake = ch }
}

// WithMetrics records Prometheus metrics.
func WithMetrics(m *Metrics) Option {
	return func(d *Dispatcher) { d.metrics = m }
}

// Dispatcher drains the notification queue.
type Dispatcher struct {
	store    store
	channels map[domain.Channel]Channel
	enabled  []domain.Channel
	lock     Locker
	wake     <-chan struct{}
	metrics  *Metrics
	renderer *Renderer
	cfg      Config
	log      *slog.Logger
	now      func() time.Time
}

// New creates a dispatcher. Notifications for channels missing from channels
// stay pending until a dispatcher with that channel runs.
func New(log *slog.Logger, s store, channels map[domain.Channel]Channel, cfg Config, opts ...Option) *Dispatcher {
	enabled := make([]domain.Channel, 0, len(channels))
	for ch := range channels {
		enabled = append(enabled, ch)
	}
	slices.Sort(enabled)

	d := &Dispatcher{
		store:    s,
		channels: channels,
		enabled:  enabled,
		lock:     NewLocalLock(),
		renderer: NewRenderer(),
		cfg:      cfg.withDefaults(),
		log:      log.With("service", "dispatcher"),
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run polls until ctx is cancelled. A pass in progress when ctx ends runs to
// completion before Run returns.
func (d *Dispatcher) Run(ctx context.Context) error {
	d.log.InfoContext(ctx, "dispatcher started",
		slog.Duration("interval", d.cfg.Interval),
		slog.Int("batch_size", d.cfg.BatchSize),
		slog.Int("workers", d.cfg.Workers),
		slog.Any("channels", d.enabled),
	)

	ticker := time.NewTicker(d.cfg.Interval)
	defer ticker.Stop()

	wake := d.wake
	d.pass(ctx)
	for {
		select {
		case <-ctx.Done():
			d.log.InfoContext(context.WithoutCancel(ctx), "dispatcher stopped")
			return nil
		case <-ticker.C:
			d.pass(ctx)
		case _, ok := <-wake:
			if !ok {
				wake = nil
				continue
			}
			d.pass(ctx)
		}
	}
}

func (d *Dispatcher) pass(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	stats, err := d.RunOnce(ctx)
	if err != nil {
		d.log.ErrorContext(ctx, "dispatch pass failed", slog.String("error", err.Error()))
		return
	}
	if stats.Selected > 0 {
		d.log.InfoContext(ctx, "dispatch pass done",
			slog.Int("selected", stats.Selected),
			slog.Int("sent", stats.Sent),
			slog.Int("failed", stats.Failed),
			slog.Int("stale", stats.Stale),
			slog.Int("errors", stats.Errors),
		)
	}
}

// RunOnce performs a single pass. It returns without error and with
// Stats.Skipped set when another pass holds the lock.
func (d *Dispatcher) RunOnce(ctx context.Context) (Stats, error) {
	if len(d.enabled) == 0 {
		return Stats{}, nil
	}

	release, ok, err := d.lock.TryLock(ctx)
	if err != nil {
		d.metrics.pass(outcomeError)
		return Stats{}, fmt.Errorf("dispatcher lock: %w", err)
	}
	if !ok {
		d.metrics.pass(outcomeLocked)
		d.log.DebugContext(ctx, "dispatcher lock held elsewhere, skipping pass")
		return Stats{Skipped: true}, nil
	}
	defer func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			d.log.WarnContext(ctx, "release dispatcher lock", slog.String("error", err.Error()))
		}
	}()

	deliveries, err := d.store.ListDeliverable(ctx, d.enabled, d.cfg.BatchSize)
	if err != nil {
		d.metrics.pass(outcomeError)
		return Stats{}, fmt.Errorf("list deliverable: %w", err)
	}
	d.metrics.batch(len(deliveries))

	stats := Stats{Selected: len(deliveries)}
	if len(deliveries) == 0 {
		d.metrics.pass(outcomeDone)
		return stats, nil
	}

	// Every selected row ends as sent or failed even if shutdown starts now.
	sendCtx := context.WithoutCancel(ctx)

	var mu sync.Mutex
	g := new(errgroup.Group)
	g.SetLimit(d.cfg.Workers)
	for _, group := range groupDeliveries(deliveries) {
		g.Go(func() error {
			for _, dl := range group {
				result := d.deliver(sendCtx, dl)
				mu.Lock()
				stats.record(result)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	d.metrics.pass(outcomeDone)
	return stats, nil
}

func (s *Stats) record(result string) {
	switch result {
	case resultSent:
		s.Sent++
	case resultFailed:
		s.Failed++
	case resultStale:
		s.Stale++
	default:
		s.Errors++
	}
}

// deliver sends one notification and records the outcome.
func (d *Dispatcher) deliver(ctx context.Context, dl domain.Delivery) string {
	n := dl.Notification
	log := d.log.With(
		slog.String("notification_id", n.ID.String()),
		slog.String("channel", string(n.Channel)),
	)

	ch, ok := d.channels[n.Channel]
	if !ok {
		// ListDeliverable only returns enabled channels.
		return resultStale
	}

	var (
		sendErr error
		elapsed = -1.0
	)
	msg, err := d.renderer.Render(dl)
	if err != nil {
		sendErr = err
	} else {
		sendCtx, cancel := context.WithTimeout(ctx, d.cfg.SendTimeout)
		start := time.Now()
		sendErr = ch.Send(sendCtx, msg)
		elapsed = time.Since(start).Seconds()
		cancel()
	}

	now := d.now()
	var (
		updated bool
		result  string
	)
	if sendErr != nil {
		derr := &domain.DeliveryError{Channel: n.Channel, Err: sendErr}
		log.WarnContext(ctx, "notification delivery failed", slog.String("error", derr.Error()))
		updated, err = d.store.MarkFailed(ctx, n.ID, derr.Error(), now)
		result = resultFailed
	} else {
		updated, err = d.store.MarkSent(ctx, n.ID, now)
		result = resultSent
	}

	switch {
	case err != nil:
		log.ErrorContext(ctx, "record delivery outcome", slog.String("outcome", result), slog.String("error", err.Error()))
		result = resultMarkFail
	case !updated:
		log.WarnContext(ctx, "notification already finished by another pass")
		result = resultStale
	}

	d.metrics.delivery(string(n.Channel), result, elapsed)
	return result
}

// groupDeliveries splits deliveries by (recipient, channel), keeping the
// input order inside each group and ordering groups by first appearance.
func groupDeliveries(deliveries []domain.Delivery) [][]domain.Delivery {
	type key struct {
		recipient uuid.UUID
		channel   domain.Channel
	}
	index := make(map[key]int)
	var groups [][]domain.Delivery
	for _, dl := range deliveries {
		k := key{dl.Notification.RecipientID, dl.Notification.Channel}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], dl)
	}
	return groups
}
