// Package app wires configuration, storage and services into the two
// long-running processes: the REST API server and the notifier.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/memorial-backend/internal/adapter/postgres"
	"github.com/heartmarshall/memorial-backend/internal/adapter/redis"
	"github.com/heartmarshall/memorial-backend/internal/config"
)

// runtime holds what both processes share. close releases it in reverse order.
type runtime struct {
	cfg    *config.Config
	log    *slog.Logger
	pool   *pgxpool.Pool
	redis  *goredis.Client
	signal *redis.Signal
}

func bootstrap(ctx context.Context, name string) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := NewLogger(cfg.Log).With(slog.String("process", name))
	logger.InfoContext(ctx, "starting",
		slog.String("build", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database, "memorial-"+name)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	rt := &runtime{cfg: cfg, log: logger, pool: pool}

	if cfg.Redis.Enabled() {
		client, err := redis.NewClient(ctx, cfg.Redis.URL)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		rt.redis = client
		rt.signal = redis.NewSignal(client, cfg.Redis.WakeChannel, logger)
	} else {
		logger.WarnContext(ctx, "redis not configured: dispatcher lock is process-local and wake-ups rely on polling")
	}

	return rt, nil
}

func (rt *runtime) close() {
	if rt.redis != nil {
		if err := rt.redis.Close(); err != nil {
			rt.log.Error("close redis", slog.String("error", err.Error()))
		}
	}
	rt.pool.Close()
}

// redisPing adapts the go-redis client to a plain error-returning ping.
func redisPing(client *goredis.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}
