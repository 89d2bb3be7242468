package config

import (
	"fmt"
	"strings"
	"time"
)

// lockTTLMargin covers the selection and status writes around the sends of a pass.
const lockTTLMargin = 10 * time.Second

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"json", "text"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be > 0 (got %s)", c.Auth.TokenTTL)
	}

	if c.Database.StatementTimeout < 0 {
		return fmt.Errorf("database.statement_timeout must be >= 0 (got %s)", c.Database.StatementTimeout)
	}

	if !oneOf(c.Log.Level, validLogLevels) {
		return fmt.Errorf("log.level must be one of %s (got %q)", strings.Join(validLogLevels, ", "), c.Log.Level)
	}
	if !oneOf(c.Log.Format, validLogFormats) {
		return fmt.Errorf("log.format must be one of %s (got %q)", strings.Join(validLogFormats, ", "), c.Log.Format)
	}

	if err := c.Dispatcher.validate(); err != nil {
		return fmt.Errorf("dispatcher: %w", err)
	}

	// The lease is not renewed, so it has to outlive the slowest pass.
	if minTTL := c.Dispatcher.MaxPassDuration() + lockTTLMargin; c.Redis.Enabled() && c.Redis.LockTTL < minTTL {
		return fmt.Errorf("redis.lock_ttl (%s) must be at least batch_size*send_timeout + %s (%s)",
			c.Redis.LockTTL, lockTTLMargin, minTTL)
	}

	if c.SMTP.Host != "" && (c.SMTP.Port <= 0 || c.SMTP.Port > 65535) {
		return fmt.Errorf("smtp.port out of range (got %d)", c.SMTP.Port)
	}

	if c.RateLimit.SubmitPerMinute <= 0 {
		return fmt.Errorf("ratelimit.submit_per_minute must be > 0 (got %d)", c.RateLimit.SubmitPerMinute)
	}

	return nil
}

func (d *DispatcherConfig) validate() error {
	if d.Interval <= 0 {
		return fmt.Errorf("interval must be > 0 (got %s)", d.Interval)
	}
	if d.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be > 0 (got %d)", d.BatchSize)
	}
	if d.Workers <= 0 {
		return fmt.Errorf("workers must be > 0 (got %d)", d.Workers)
	}
	if d.SendTimeout <= 0 {
		return fmt.Errorf("send_timeout must be > 0 (got %s)", d.SendTimeout)
	}
	return nil
}

func oneOf(v string, allowed []string) bool {
	v = strings.ToLower(v)
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
