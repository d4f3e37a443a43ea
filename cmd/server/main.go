package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"twala_backend/internal/app/di"
	"twala_backend/internal/app/router"
	assethandler "twala_backend/internal/feature/assets/transport/handler"
	assetusecase "twala_backend/internal/feature/assets/usecase"
	notificationhandler "twala_backend/internal/feature/notifications/transport/handler"
	onboardingadapters "twala_backend/internal/feature/onboarding/adapters"
	onboardinghandler "twala_backend/internal/feature/onboarding/transport/handler"
	onboardingusecase "twala_backend/internal/feature/onboarding/usecase"
	"twala_backend/internal/platform/config"
	platformdb "twala_backend/internal/platform/db"
	platformhandler "twala_backend/internal/platform/http/handler"
	"twala_backend/internal/platform/logging"
	platformredis "twala_backend/internal/platform/redis"
	"twala_backend/internal/shared/notify"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Setup(cfg.LogLevel, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// db
	db, err := platformdb.Open(di.DBConfig(cfg))
	if err != nil {
		return err
	}
	if cfg.RunMigrations {
		if err := platformdb.Migrate(db); err != nil {
			return err
		}
	}

	// Redis
	var rdb *redisv9.Client
	if cfg.RedisEnabled() {
		if tmp, err := platformredis.NewRedisClient(ctx, cfg.RedisAddr(), cfg.RedisPassword); err != nil {
			slog.Warn("Redis unavailable. Running without cache.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("Failed to close Redis client", "error", err)
				}
			}()
		}
	}

	// Repository
	assetRepo, err := di.NewAssetRepository(cfg.AssetSource, db, rdb, cfg.AssetCacheTTL)
	if err != nil {
		return err
	}
	stateStore, stopSweeper, err := di.NewStateStore(rdb, cfg.SessionIdleTTL, cfg.SweepSchedule)
	if err != nil {
		return err
	}
	defer stopSweeper()

	toasts := notify.NewQueue(cfg.ToastTTL)
	defer toasts.Close()

	// Usecase
	assetUC := assetusecase.NewAssetUsecase(assetRepo)
	gateUC := onboardingusecase.NewGateUsecase(
		onboardingadapters.NewPrerequisiteRepository(db),
		onboardingadapters.NewRouteClassifier(),
		onboardingadapters.NewNavigator(nil),
		stateStore,
		toasts,
	)

	// Handler
	checks := map[string]platformhandler.Check{
		"db": func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if rdb != nil {
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}

	// ルータ生成
	r := router.NewRouter(router.Handlers{
		Health:        platformhandler.NewHealthHandler(checks),
		Assets:        assethandler.NewAssetHandler(assetUC),
		Onboarding:    onboardinghandler.NewGateHandler(gateUC),
		Notifications: notificationhandler.NewNotificationHandler(toasts),
	}, router.Options{JWTSecret: cfg.JWTSecret, CORSOrigins: cfg.CORSOrigins})

	// JWT_SECRETチェック（開発中の注意喚起）
	if cfg.JWTSecret == "" {
		slog.Warn("JWT_SECRET is not set. Every authenticated request will fail.")
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("listening", "addr", cfg.HTTPAddr, "asset_source", cfg.AssetSource, "redis", rdb != nil)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	slog.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}
