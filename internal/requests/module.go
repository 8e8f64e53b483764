// Package requests provides the payslip scoring requests domain module.
package requests

import (
	"time"

	apphttp "tenant_rating_backend/internal/http"
	"tenant_rating_backend/internal/requests/handler"
	"tenant_rating_backend/internal/requests/repository"
	"tenant_rating_backend/internal/requests/service"
	"tenant_rating_backend/internal/scoring"
	"tenant_rating_backend/platform/logger"
	"tenant_rating_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config is the configuration surface the requests module needs.
type Config interface {
	GetDocIntelCallDelay() time.Duration
}

// Module represents the requests domain module
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates a new requests module with all dependencies wired
func NewModule(pool *pgxpool.Pool, analyzer service.Analyzer, policy scoring.Policy, cfg Config, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, analyzer, policy, cfg.GetDocIntelCallDelay(), log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module name for logging
func (m *Module) Name() string {
	return "requests"
}

// Service returns the service layer for external use
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes registers the module's routes
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	requests := ctx.Protected.Group("/requests")
	m.handler.RegisterRoutes(requests)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
