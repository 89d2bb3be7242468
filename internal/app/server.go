package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/heartmarshall/memorial-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/memorial-backend/internal/adapter/postgres/audit"
	contentrepo "github.com/heartmarshall/memorial-backend/internal/adapter/postgres/content"
	notificationrepo "github.com/heartmarshall/memorial-backend/internal/adapter/postgres/notification"
	profilerepo "github.com/heartmarshall/memorial-backend/internal/adapter/postgres/profile"
	userrepo "github.com/heartmarshall/memorial-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/memorial-backend/internal/auth"
	"github.com/heartmarshall/memorial-backend/internal/service/moderation"
	"github.com/heartmarshall/memorial-backend/internal/service/notify"
	"github.com/heartmarshall/memorial-backend/internal/service/user"
	"github.com/heartmarshall/memorial-backend/internal/transport/middleware"
	"github.com/heartmarshall/memorial-backend/internal/transport/rest"
)

// RunServer serves the REST API until ctx is cancelled, then drains
// in-flight requests within the configured shutdown timeout.
func RunServer(ctx context.Context) error {
	rt, err := bootstrap(ctx, "server")
	if err != nil {
		return err
	}
	defer rt.close()

	cfg, logger := rt.cfg, rt.log

	users := userrepo.New(rt.pool)
	profiles := profilerepo.New(rt.pool)
	content := contentrepo.New(rt.pool)
	audit := auditrepo.New(rt.pool)
	notifications := notificationrepo.New(rt.pool)
	tx := postgres.NewTxManager(rt.pool)

	// A nil *redis.Signal must not reach the services as a non-nil interface.
	var waker notify.Waker
	if rt.signal != nil {
		waker = rt.signal
	}

	producer := notify.NewProducer(logger, users, notifications)
	moderationSvc := moderation.NewService(logger, content, profiles, users, audit, producer, tx, waker)
	notifySvc := notify.NewService(logger, notifications, users, audit, tx, waker)
	userSvc := user.NewService(logger, users, audit, tx)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.SubmitPerMinute, cfg.RateLimit.SubmitBurst, cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	health := rest.NewHealthHandler(BuildVersion()).WithComponent("database", rt.pool)
	if rt.redis != nil {
		health.WithComponent("redis", rest.PingFunc(redisPing(rt.redis)))
	}

	router := rest.NewRouter(rest.RouterDeps{
		Log:        logger,
		CORS:       cfg.CORS,
		Verifier:   auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL),
		Limiter:    limiter,
		Health:     health,
		Account:    rest.NewAccountHandler(userSvc, notifySvc, logger),
		Moderation: rest.NewModerationHandler(moderationSvc, logger),
		Admin:      rest.NewAdminHandler(notifySvc, userSvc, logger),
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.InfoContext(ctx, "http server listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
