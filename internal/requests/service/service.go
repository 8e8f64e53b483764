package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tenant_rating_backend/internal/adapters/storage"
	"tenant_rating_backend/internal/events"
	"tenant_rating_backend/internal/extraction"
	"tenant_rating_backend/internal/requests/repository"
	"tenant_rating_backend/internal/requests/transport"
	"tenant_rating_backend/internal/scheduler"
	"tenant_rating_backend/internal/scoring"
	"tenant_rating_backend/platform/apperr"
	"tenant_rating_backend/platform/docintel"
	"tenant_rating_backend/platform/logger"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Analyzer is the document-understanding boundary. It is the only slow,
// failure-prone step of the pipeline.
type Analyzer interface {
	Analyze(ctx context.Context, content []byte) (*docintel.AnalyzeResult, error)
}

// ScoreNotifier enqueues score delivery to the applicant.
type ScoreNotifier interface {
	EnqueueScoreEmail(ctx context.Context, payload scheduler.ScoreNotificationPayload) error
	EnqueueScoreSMS(ctx context.Context, payload scheduler.ScoreNotificationPayload) error
}

const (
	batchSizeSingle = 3
	batchSizeCouple = 6

	msgWrongFileCount = "יש להעלות 3 או 6 תלושי שכר."
)

// Service implements the payslip scoring pipeline: analyze each uploaded
// document, aggregate and validate the batch, score it, persist the result
// and archive the originals.
type Service struct {
	repo     *repository.Repository
	analyzer Analyzer
	calc     *scoring.Calculator
	policy   scoring.Policy
	store    storage.ObjectStore
	bucket   string
	notifier ScoreNotifier
	bus      events.Bus
	log      *logger.Logger

	// limiter paces calls to the analyzer to respect its quota.
	limiter *rate.Limiter
	now     func() time.Time
}

// New creates the requests service.
func New(repo *repository.Repository, analyzer Analyzer, policy scoring.Policy, callDelay time.Duration, log *logger.Logger) *Service {
	if callDelay <= 0 {
		callDelay = time.Second
	}
	return &Service{
		repo:     repo,
		analyzer: analyzer,
		calc:     scoring.NewCalculator(policy),
		policy:   policy,
		log:      log,
		limiter:  rate.NewLimiter(rate.Every(callDelay), 1),
		now:      time.Now,
	}
}

// SetStorage injects the object store used to archive uploaded payslips.
func (s *Service) SetStorage(store storage.ObjectStore, bucket string) {
	s.store = store
	s.bucket = bucket
}

// SetNotifier injects the background score notifier.
func (s *Service) SetNotifier(n ScoreNotifier) {
	s.notifier = n
}

// SetEventBus injects the event bus for publishing domain events.
func (s *Service) SetEventBus(bus events.Bus) {
	s.bus = bus
}

// SetClock overrides the time source, for tests.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// Create runs the whole pipeline for one submission and persists the scored
// request. Per-file analysis failures are tolerated and recorded in the
// debug trace; batch validation failures abort without persisting anything.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, form transport.CreateRequestForm, files []transport.UploadedFile) (*transport.RequestResult, error) {
	if len(files) != batchSizeSingle && len(files) != batchSizeCouple {
		return nil, apperr.Validation(msgWrongFileCount)
	}

	profiles, trace := s.analyzeBatch(ctx, files)

	applicant := extraction.Aggregate(profiles, len(files))
	if verr := extraction.Validate(applicant, len(files), s.policy.DateRule); verr != nil {
		return nil, apperr.Validation(verr.Message).WithDetails(trace)
	}

	breakdown := s.calc.Breakdown(applicant, form.DesiredRent)

	req := &repository.Request{
		ID:                uuid.New(),
		UserID:            userID,
		DesiredRent:       form.DesiredRent,
		CityName:          form.CityName,
		TenantIdentityNos: strings.Join(applicant.IdentityNumbers, ", "),
		TempScore:         breakdown.TempScore,
		FinalScore:        breakdown.FinalScore,
		Status:            string(transport.RequestStatusPending),
		CreatedAt:         s.now().UTC(),
	}
	if err := s.repo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	s.archiveFiles(ctx, req.ID, files)

	if s.bus != nil {
		s.bus.Publish(ctx, events.RequestScored{
			BaseEvent:  events.NewBaseEvent(),
			RequestID:  req.ID,
			UserID:     userID,
			CityName:   req.CityName,
			TempScore:  req.TempScore,
			FinalScore: req.FinalScore,
		})
	}

	result := s.toResult(req)
	result.Breakdown = &breakdown
	result.RawData = trace
	return result, nil
}

// analyzeBatch runs each file through the analyzer, in upload order, pacing
// the calls. Failures are recorded in the trace and skip the file.
func (s *Service) analyzeBatch(ctx context.Context, files []transport.UploadedFile) ([]extraction.DocumentProfile, extraction.DebugTrace) {
	var profiles []extraction.DocumentProfile
	trace := make(extraction.DebugTrace)
	now := s.now()

	for _, file := range files {
		if len(file.Content) == 0 {
			continue
		}

		if err := s.limiter.Wait(ctx); err != nil {
			trace.AddError(file.FileName, err)
			break
		}

		result, err := s.analyzer.Analyze(ctx, file.Content)
		if err != nil {
			s.log.Error("payslip analysis failed", "file", file.FileName, "error", err)
			trace.AddError(file.FileName, err)
			continue
		}

		for i, doc := range result.Documents {
			trace.AddDocument(file.FileName, i, doc)
			profiles = append(profiles, extraction.BuildProfile(doc, now))
			s.log.AnalysisEvent(file.FileName, i, "extracted")
		}
	}

	return profiles, trace
}

// archiveFiles uploads the raw payslips to object storage. Archiving is
// best-effort: a failed upload is logged, not returned, since the request
// has already been scored and persisted.
func (s *Service) archiveFiles(ctx context.Context, requestID uuid.UUID, files []transport.UploadedFile) {
	if s.store == nil {
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, file := range files {
		key := storage.PayslipObjectKey(requestID, i, file.FileName)
		content := file.Content
		contentType := file.ContentType
		g.Go(func() error {
			return s.store.PutObject(gctx, s.bucket, key, content, contentType)
		})
	}
	if err := g.Wait(); err != nil {
		s.log.Error("payslip archive upload failed", "requestId", requestID, "error", err)
	}
}

// ListMine returns the caller's previous requests.
func (s *Service) ListMine(ctx context.Context, userID uuid.UUID) ([]transport.RequestResult, error) {
	requests, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}

	results := make([]transport.RequestResult, 0, len(requests))
	for i := range requests {
		results = append(results, *s.toResult(&requests[i]))
	}
	return results, nil
}

// NotifyEmail enqueues an email with the request's score to its owner.
func (s *Service) NotifyEmail(ctx context.Context, userID, requestID uuid.UUID) error {
	return s.notify(ctx, userID, requestID, func(ctx context.Context, p scheduler.ScoreNotificationPayload) error {
		return s.notifier.EnqueueScoreEmail(ctx, p)
	})
}

// NotifySMS enqueues a text message with the request's score to its owner.
func (s *Service) NotifySMS(ctx context.Context, userID, requestID uuid.UUID) error {
	return s.notify(ctx, userID, requestID, func(ctx context.Context, p scheduler.ScoreNotificationPayload) error {
		return s.notifier.EnqueueScoreSMS(ctx, p)
	})
}

func (s *Service) notify(ctx context.Context, userID, requestID uuid.UUID, enqueue func(context.Context, scheduler.ScoreNotificationPayload) error) error {
	if s.notifier == nil {
		return apperr.Unavailable("notifications are not configured")
	}

	req, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if req.UserID != userID {
		return apperr.Forbidden("request belongs to another user")
	}

	payload := scheduler.ScoreNotificationPayload{
		RequestID: req.ID.String(),
		UserID:    req.UserID.String(),
	}
	if err := enqueue(ctx, payload); err != nil {
		return fmt.Errorf("enqueue score notification: %w", err)
	}
	return nil
}

func (s *Service) toResult(req *repository.Request) *transport.RequestResult {
	return &transport.RequestResult{
		RequestID:         req.ID,
		TempScore:         req.TempScore,
		FinalScore:        req.FinalScore,
		MaxAffordableRent: s.calc.MaxAffordableRent(req.TempScore),
		CityName:          req.CityName,
		DesiredRent:       req.DesiredRent,
		Status:            transport.RequestStatus(req.Status),
		DateCreated:       req.CreatedAt,
	}
}
