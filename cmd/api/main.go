package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tenant_rating_backend/internal/adapters"
	"tenant_rating_backend/internal/adapters/storage"
	"tenant_rating_backend/internal/admin"
	"tenant_rating_backend/internal/auth"
	"tenant_rating_backend/internal/events"
	apphttp "tenant_rating_backend/internal/http"
	"tenant_rating_backend/internal/http/router"
	"tenant_rating_backend/internal/landlords"
	"tenant_rating_backend/internal/notification"
	"tenant_rating_backend/internal/requests"
	"tenant_rating_backend/internal/requests/service"
	"tenant_rating_backend/internal/scheduler"
	"tenant_rating_backend/internal/scoring"
	"tenant_rating_backend/migrations"
	"tenant_rating_backend/platform/config"
	"tenant_rating_backend/platform/db"
	"tenant_rating_backend/platform/docintel"
	"tenant_rating_backend/platform/logger"
	"tenant_rating_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg, migrations.FS)
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	notifier, closeNotifier := initScoreNotifier(cfg, log)
	if closeNotifier != nil {
		defer closeNotifier()
	}

	sender := initEmailSender(cfg, log)

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	// Notification module subscribes to domain events (not HTTP-facing)
	notificationModule := notification.NewModule(sender, log)
	notificationModule.RegisterHandlers(eventBus)

	policy, err := scoring.LoadPolicy(cfg.GetScoringPolicyPath())
	if err != nil {
		log.Error("failed to load scoring policy", "error", err)
		panic("failed to load scoring policy: " + err.Error())
	}

	authModule := auth.NewModule(pool, cfg, eventBus, log, val)
	requestsModule := requests.NewModule(pool, initAnalyzer(cfg, log), policy, cfg, val, log)
	requestsModule.Service().SetEventBus(eventBus)
	if notifier != nil {
		requestsModule.Service().SetNotifier(notifier)
	}
	landlordsModule := landlords.NewModule(pool, eventBus, val, log)
	adminModule := admin.NewModule(pool, val, log)

	// Storage service for archiving uploaded payslips (MinIO)
	if cfg.IsMinIOEnabled() {
		storageSvc, err := storage.NewMinIOService(cfg)
		if err != nil {
			log.Error("failed to initialize storage service", "error", err)
			panic("failed to initialize storage service: " + err.Error())
		}
		bucket := cfg.GetMinioBucketPayslips()
		if err := withRetry(ctx, log, "ensure payslips bucket", 5, 2*time.Second, func() error {
			return storageSvc.EnsureBucketExists(ctx, bucket)
		}); err != nil {
			log.Error("failed to ensure storage bucket exists", "error", err, "bucket", bucket)
			panic("failed to ensure storage bucket exists: " + err.Error())
		}
		requestsModule.Service().SetStorage(storageSvc, bucket)
		log.Info("storage service initialized", "payslipsBucket", bucket)
	} else {
		log.Warn("MINIO_ENDPOINT not configured; payslip archiving disabled")
	}

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		Health:   db.NewPoolAdapter(pool),
		EventBus: eventBus,
		Modules: []apphttp.Module{
			authModule,
			requestsModule,
			landlordsModule,
			adminModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

func initAnalyzer(cfg *config.Config, log *logger.Logger) service.Analyzer {
	if !cfg.IsDocIntelEnabled() {
		log.Warn("DOCINTEL_ENDPOINT not configured; payslip analysis disabled")
		return adapters.DisabledAnalyzer{}
	}

	client := docintel.NewClient(docintel.Config{
		Endpoint: cfg.GetDocIntelEndpoint(),
		APIKey:   cfg.GetDocIntelAPIKey(),
		ModelID:  cfg.GetDocIntelModelID(),
	})
	return adapters.NewDocIntelAnalyzer(client)
}

func initEmailSender(cfg *config.Config, log *logger.Logger) notification.Sender {
	if !cfg.GetEmailEnabled() {
		log.Warn("SMTP_HOST not configured; outgoing email disabled")
		return notification.NoopSender{}
	}
	return notification.NewSMTPSender(cfg)
}

func initScoreNotifier(cfg config.SchedulerConfig, log *logger.Logger) (*scheduler.Client, func()) {
	if cfg.GetRedisURL() == "" {
		log.Warn("REDIS_URL not configured; score notifications disabled")
		return nil, nil
	}

	client, err := scheduler.NewClient(cfg)
	if err != nil {
		log.Error("failed to initialize scheduler client", "error", err)
		return nil, nil
	}

	return client, func() {
		_ = client.Close()
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
