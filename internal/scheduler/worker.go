package scheduler

import (
	"context"
	"fmt"

	authrepo "tenant_rating_backend/internal/auth/repository"
	"tenant_rating_backend/internal/notification"
	"tenant_rating_backend/internal/requests/repository"
	"tenant_rating_backend/platform/config"
	"tenant_rating_backend/platform/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Worker struct {
	server   *asynq.Server
	mux      *asynq.ServeMux
	requests *repository.Repository
	users    *authrepo.Repository
	email    notification.Sender
	sms      notification.SMSSender
	log      *logger.Logger
}

func NewWorker(cfg config.SchedulerConfig, pool *pgxpool.Pool, email notification.Sender, sms notification.SMSSender, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL, cfg.GetRedisTLSInsecure())
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAsynqQueueName()
	if queue == "" {
		queue = "default"
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queue: 1,
		},
	})

	mux := asynq.NewServeMux()
	w := &Worker{
		server:   server,
		mux:      mux,
		requests: repository.New(pool),
		users:    authrepo.New(pool),
		email:    email,
		sms:      sms,
		log:      log,
	}

	mux.HandleFunc(TaskScoreEmail, w.handleScoreEmail)
	mux.HandleFunc(TaskScoreSMS, w.handleScoreSMS)

	return w, nil
}

func (w *Worker) handleScoreEmail(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseScoreNotificationPayload(task)
	if err != nil {
		return err
	}

	req, user, err := w.load(ctx, payload)
	if err != nil {
		return err
	}

	details := notification.ScoreDetails{
		FinalScore:  req.FinalScore,
		CityName:    req.CityName,
		DesiredRent: req.DesiredRent,
		Status:      req.Status,
	}
	if err := w.email.SendScoreEmail(ctx, user.Email, user.FirstName, details); err != nil {
		w.log.Error("score email failed", "request_id", payload.RequestID, "error", err)
		return err
	}

	w.log.Info("score email sent", "request_id", payload.RequestID, "user_id", payload.UserID)
	return nil
}

func (w *Worker) handleScoreSMS(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseScoreNotificationPayload(task)
	if err != nil {
		return err
	}

	req, user, err := w.load(ctx, payload)
	if err != nil {
		return err
	}

	if user.PhoneNumber == "" {
		w.log.Warn("score sms skipped, user has no phone number", "user_id", payload.UserID)
		return nil
	}

	if err := w.sms.SendScoreSMS(ctx, user.PhoneNumber, req.FinalScore); err != nil {
		w.log.Error("score sms failed", "request_id", payload.RequestID, "error", err)
		return err
	}

	w.log.Info("score sms sent", "request_id", payload.RequestID, "user_id", payload.UserID)
	return nil
}

func (w *Worker) load(ctx context.Context, payload ScoreNotificationPayload) (*repository.Request, authrepo.User, error) {
	requestID, err := uuid.Parse(payload.RequestID)
	if err != nil {
		return nil, authrepo.User{}, err
	}

	userID, err := uuid.Parse(payload.UserID)
	if err != nil {
		return nil, authrepo.User{}, err
	}

	req, err := w.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, authrepo.User{}, err
	}

	user, err := w.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, authrepo.User{}, err
	}

	return req, user, nil
}

func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("scheduler worker stopped", "error", err)
	}
}
