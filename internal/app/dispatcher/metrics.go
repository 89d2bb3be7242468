package dispatcher

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are the dispatcher's Prometheus collectors.
type Metrics struct {
	dispatched *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	batchSize  prometheus.Histogram
	passes     *prometheus.CounterVec
}

// NewMetrics registers the dispatcher collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		dispatched: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "memorial_notifications_dispatched_total",
				Help: "Notifications processed by the dispatcher, by channel and result.",
			},
			[]string{"channel", "result"},
		),
		duration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "memorial_notification_delivery_seconds",
				Help:    "Duration of a single channel send.",
				Buckets: []float64{.01, .05, .1, .25, .5, 1, 2, 5, 10},
			},
			[]string{"channel"},
		),
		batchSize: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "memorial_dispatcher_batch_size",
				Help:    "Notifications selected per pass.",
				Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
			},
		),
		passes: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "memorial_dispatcher_passes_total",
				Help: "Dispatcher passes by outcome.",
			},
			[]string{"outcome"},
		),
	}
}

// Pass outcomes.
const (
	outcomeDone    = "done"
	outcomeLocked  = "locked"
	outcomeError   = "error"
	resultSent     = "sent"
	resultFailed   = "failed"
	resultStale    = "stale"
	resultMarkFail = "mark_error"
)

// The methods below accept a nil receiver so metrics stay optional.

func (m *Metrics) pass(outcome string) {
	if m != nil {
		m.passes.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) batch(n int) {
	if m != nil {
		m.batchSize.Observe(float64(n))
	}
}

func (m *Metrics) delivery(channel, result string, seconds float64) {
	if m == nil {
		return
	}
	m.dispatched.WithLabelValues(channel, result).Inc()
	if seconds >= 0 {
		m.duration.WithLabelValues(channel).Observe(seconds)
	}
}
