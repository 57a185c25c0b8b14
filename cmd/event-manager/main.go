package main

import (
	"context"
	"errors"
	"eventManager/internal/config"
	"eventManager/internal/http-server/middleware/ratelimit"
	"eventManager/internal/http-server/router"
	"eventManager/internal/lib/jwt"
	"eventManager/internal/lib/logger/handlers/slogpretty"
	"eventManager/internal/lib/logger/sl"
	"eventManager/internal/payment"
	"eventManager/internal/services/analytics"
	authsvc "eventManager/internal/services/auth"
	"eventManager/internal/services/booking"
	"eventManager/internal/services/events"
	"eventManager/internal/services/notify"
	"eventManager/internal/storage/mongodb"
	"eventManager/internal/storage/postgres"
	"github.com/redis/go-redis/v9"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

const shutdownTimeout = 10 * time.Second

type notificationStore interface {
	notify.Store
	router.NotificationStore
}

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("starting event manager", slog.String("env", cfg.Env))
	log.Debug("debug messages are enabled")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	if err = storage.Migrate(ctx); err != nil {
		log.Error("failed to apply schema", sl.Err(err))
		os.Exit(1)
	}

	var notifications notificationStore = storage

	if cfg.Notifications.Store == "mongo" {
		mongoStore, err := mongodb.New(ctx, cfg.Notifications.MongoURI, cfg.Notifications.MongoDatabase)
		if err != nil {
			log.Error("failed to connect to mongodb", sl.Err(err))
			os.Exit(1)
		}

		if err = mongoStore.EnsureIndexes(ctx); err != nil {
			log.Warn("failed to create notification indexes", sl.Err(err))
		}

		defer func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := mongoStore.Close(closeCtx); err != nil {
				log.Error("failed to close mongodb connection", sl.Err(err))
			}
		}()

		notifications = mongoStore
		log.Info("notifications are stored in mongodb")
	}

	var limiter *ratelimit.Limiter

	if cfg.Redis.Address != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()

		if err = client.Ping(ctx).Err(); err != nil {
			log.Warn("redis is unreachable, requests will not be limited until it is back", sl.Err(err))
		}

		limiter = ratelimit.New(log, client, cfg.Redis.RateLimit, cfg.Redis.Window)
	}

	tokens := jwt.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	notifier := notify.New(log, notifications, storage)

	authService := authsvc.New(log, storage, tokens)
	eventService := events.New(log, storage, notifier)
	bookingService := booking.New(
		log,
		storage,
		payment.New(log, cfg.Payment, cfg.HTTPServer.ClientURL),
		notifier,
		cfg.Bookings.PendingTTL,
	)
	analyticsService := analytics.New(log, storage)

	handler := router.New(log, router.Deps{
		Auth:          authService,
		Tokens:        tokens,
		Users:         storage,
		Events:        eventService,
		Bookings:      bookingService,
		Analytics:     analyticsService,
		Notifications: notifications,
		Webhooks:      payment.NewWebhookVerifier(cfg.Payment.StripeWebhookSecret),
		DB:            storage,
		Limiter:       limiter,
		ExposeErrors:  cfg.Env == envLocal,
	})

	go sweepPendingBookings(ctx, log, bookingService, cfg.Bookings.SweepInterval)

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      handler,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop()
		}
	}()

	<-ctx.Done()

	log.Info("application stopping")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

// sweepPendingBookings fails pending bookings whose checkout was abandoned.
func sweepPendingBookings(ctx context.Context, log *slog.Logger, svc *booking.Service, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := svc.ExpirePending(ctx); err != nil {
				log.Error("failed to expire pending bookings", sl.Err(err))
			}
		case <-ctx.Done():
			return
		}
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
