package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	Redis      RedisConfig      `yaml:"redis"`
	Telegram   TelegramConfig   `yaml:"telegram"`
	SMTP       SMTPConfig       `yaml:"smtp"`
	Dispatcher DispatcherConfig `yaml:"dispatcher"`
	Metrics    MetricsConfig    `yaml:"metrics"`
	RateLimit  RateLimitConfig  `yaml:"ratelimit"`
}

// CORSConfig holds CORS settings. List values are comma-separated.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"300"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings. StatementTimeout caps
// every statement server-side; zero disables it.
type DatabaseConfig struct {
	DSN              string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns         int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns         int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime  time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime  time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	StatementTimeout time.Duration `yaml:"statement_timeout"  env:"DATABASE_STATEMENT_TIMEOUT"  env-default:"15s"`
}

// AuthConfig holds identity token settings. Tokens are issued by the
// external identity provider with the shared secret.
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string        `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"memorial-identity"`
	TokenTTL  time.Duration `yaml:"token_ttl"  env:"AUTH_TOKEN_TTL"  env-default:"1h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RedisConfig is optional. Without a URL the notifier uses a process-local
// lock and relies on polling alone.
type RedisConfig struct {
	URL         string        `yaml:"url"          env:"REDIS_URL"`
	LockKey     string        `yaml:"lock_key"     env:"REDIS_LOCK_KEY"     env-default:"memorial:dispatcher:lock"`
	LockTTL     time.Duration `yaml:"lock_ttl"     env:"REDIS_LOCK_TTL"     env-default:"2m"`
	WakeChannel string        `yaml:"wake_channel" env:"REDIS_WAKE_CHANNEL" env-default:"memorial:notifications:wake"`
}

// Enabled reports whether a Redis URL is configured.
func (c RedisConfig) Enabled() bool { return c.URL != "" }

// TelegramConfig holds the bot token. An empty token puts the channel in dry-run mode.
type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN"`
}

// SMTPConfig holds the outgoing mail server. Email delivery is disabled
// when Host is empty.
type SMTPConfig struct {
	Host     string `yaml:"host"      env:"SMTP_HOST"`
	Port     int    `yaml:"port"      env:"SMTP_PORT"      env-default:"587"`
	Username string `yaml:"username"  env:"SMTP_USERNAME"`
	Password string `yaml:"password"  env:"SMTP_PASSWORD"`
	From     string `yaml:"from"      env:"SMTP_FROM"      env-default:"no-reply@memorial.local"`
	FromName string `yaml:"from_name" env:"SMTP_FROM_NAME" env-default:"Memorial"`
	StartTLS bool   `yaml:"starttls"  env:"SMTP_STARTTLS"  env-default:"true"`
}

// DispatcherConfig tunes the notification delivery loop.
type DispatcherConfig struct {
	Interval    time.Duration `yaml:"interval"     env:"DISPATCHER_INTERVAL"     env-default:"30s"`
	BatchSize   int           `yaml:"batch_size"   env:"DISPATCHER_BATCH_SIZE"   env-default:"10"`
	Workers     int           `yaml:"workers"      env:"DISPATCHER_WORKERS"      env-default:"4"`
	SendTimeout time.Duration `yaml:"send_timeout" env:"DISPATCHER_SEND_TIMEOUT" env-default:"10s"`
}

// MaxPassDuration bounds the time spent sending in one pass: every message of
// a batch may share one recipient and channel, and those are sent in order.
func (d DispatcherConfig) MaxPassDuration() time.Duration {
	return time.Duration(d.BatchSize) * d.SendTimeout
}

// MetricsConfig holds the notifier's Prometheus listener.
type MetricsConfig struct {
	Addr string `yaml:"addr" env:"METRICS_ADDR" env-default:":9102"`
}

// RateLimitConfig throttles content submission per caller.
type RateLimitConfig struct {
	SubmitPerMinute int           `yaml:"submit_per_minute" env:"RATELIMIT_SUBMIT_PER_MINUTE" env-default:"30"`
	SubmitBurst     int           `yaml:"submit_burst"      env:"RATELIMIT_SUBMIT_BURST"      env-default:"10"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"  env:"RATELIMIT_CLEANUP_INTERVAL"  env-default:"5m"`
}
