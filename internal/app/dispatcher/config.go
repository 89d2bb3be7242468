package dispatcher

import "time"

// Config tunes the delivery loop.
type Config struct {
	// Interval between polls when no wake-up arrives.
	Interval time.Duration
	// BatchSize caps the notifications taken per pass.
	BatchSize int
	// Workers caps the (recipient, channel) groups delivered concurrently.
	Workers int
	// SendTimeout bounds one channel send.
	SendTimeout time.Duration
}

const (
	DefaultInterval    = 30 * time.Second
	DefaultBatchSize   = 10
	DefaultWorkers     = 4
	DefaultSendTimeout = 10 * time.Second
)

func (c Config) withDefaults() Config {
	if c.Interval <= 0 {
		c.Interval = DefaultInterval
	}
	if c.BatchSize <= 0 {
		c.BatchSize = DefaultBatchSize
	}
	if c.Workers <= 0 {
		c.Workers = DefaultWorkers
	}
	if c.SendTimeout <= 0 {
		c.SendTimeout = DefaultSendTimeout
	}
	return c
}
