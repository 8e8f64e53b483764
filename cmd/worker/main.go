package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"tenant_rating_backend/internal/notification"
	"tenant_rating_backend/internal/scheduler"
	"tenant_rating_backend/platform/config"
	"tenant_rating_backend/platform/db"
	"tenant_rating_backend/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting worker", "env", cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()

	var sender notification.Sender = notification.NoopSender{}
	if cfg.GetEmailEnabled() {
		sender = notification.NewSMTPSender(cfg)
	} else {
		log.Warn("SMTP_HOST not configured; outgoing email disabled")
	}
	sms := notification.NewLogSMSSender(log)

	worker, err := scheduler.NewWorker(cfg, pool, sender, sms, log)
	if err != nil {
		log.Error("failed to initialize worker", "error", err)
		panic("failed to initialize worker: " + err.Error())
	}

	worker.Run(ctx)
	log.Info("worker stopped")
}
