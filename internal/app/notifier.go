package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/memorial-backend/internal/adapter/channel/email"
	"github.com/heartmarshall/memorial-backend/internal/adapter/channel/inapp"
	"github.com/heartmarshall/memorial-backend/internal/adapter/channel/telegram"
	notificationrepo "github.com/heartmarshall/memorial-backend/internal/adapter/postgres/notification"
	"github.com/heartmarshall/memorial-backend/internal/adapter/redis"
	"github.com/heartmarshall/memorial-backend/internal/app/dispatcher"
	"github.com/heartmarshall/memorial-backend/internal/config"
	"github.com/heartmarshall/memorial-backend/internal/domain"
	"github.com/heartmarshall/memorial-backend/internal/transport/middleware"
	"github.com/heartmarshall/memorial-backend/internal/transport/rest"
)

// RunNotifier runs the dispatcher loop and the metrics listener until ctx is
// cancelled. The in-flight batch always completes before it returns.
func RunNotifier(ctx context.Context) error {
	rt, err := bootstrap(ctx, "notifier")
	if err != nil {
		return err
	}
	defer rt.close()

	cfg, logger := rt.cfg, rt.log

	channels, err := buildChannels(cfg, logger)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	opts := []dispatcher.Option{dispatcher.WithMetrics(dispatcher.NewMetrics(reg))}
	if rt.redis != nil {
		opts = append(opts, dispatcher.WithLock(redis.NewLock(rt.redis, cfg.Redis.LockKey, cfg.Redis.LockTTL)))
		wake, err := rt.signal.Subscribe(ctx)
		if err != nil {
			return fmt.Errorf("subscribe wake channel: %w", err)
		}
		opts = append(opts, dispatcher.WithWake(wake))
	}

	d := dispatcher.New(logger, notificationrepo.New(rt.pool), channels, dispatcherConfig(cfg.Dispatcher), opts...)

	health := rest.NewHealthHandler(BuildVersion()).WithComponent("database", rt.pool)
	if rt.redis != nil {
		health.WithComponent("redis", rest.PingFunc(redisPing(rt.redis)))
	}
	metricsSrv := &http.Server{
		Addr:              cfg.Metrics.Addr,
		Handler:           metricsRouter(logger, reg, health),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return d.Run(gctx)
	})
	g.Go(func() error {
		logger.InfoContext(gctx, "metrics listening", slog.String("addr", metricsSrv.Addr))
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), 5*time.Second)
		defer cancel()
		return metricsSrv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("notifier stopped")
	return nil
}

// buildChannels registers every channel that can deliver. Email is left out
// when SMTP is not configured, so email rows wait in the queue.
func buildChannels(cfg *config.Config, logger *slog.Logger) (map[domain.Channel]dispatcher.Channel, error) {
	tg, err := telegram.New(cfg.Telegram.BotToken, cfg.Dispatcher.SendTimeout, logger)
	if err != nil {
		return nil, fmt.Errorf("telegram channel: %w", err)
	}

	channels := map[domain.Channel]dispatcher.Channel{
		domain.ChannelInApp:    inapp.New(logger),
		domain.ChannelTelegram: tg,
	}

	mail := email.New(email.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		FromName: cfg.SMTP.FromName,
		StartTLS: cfg.SMTP.StartTLS,
	}, logger)
	if mail.IsConfigured() {
		channels[domain.ChannelEmail] = mail
	} else {
		logger.Warn("smtp not configured: email notifications stay pending")
	}
	return channels, nil
}

func dispatcherConfig(c config.DispatcherConfig) dispatcher.Config {
	return dispatcher.Config{
		Interval:    c.Interval,
		BatchSize:   c.BatchSize,
		Workers:     c.Workers,
		SendTimeout: c.SendTimeout,
	}
}

func metricsRouter(logger *slog.Logger, reg *prometheus.Registry, health *rest.HealthHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(logger))
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	r.Get("/live", health.Live)
	r.Get("/ready", health.Ready)
	return r
}
