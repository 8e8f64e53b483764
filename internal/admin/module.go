// Package admin provides the administrative surface for accounts and requests.
package admin

import (
	"tenant_rating_backend/internal/admin/handler"
	"tenant_rating_backend/internal/admin/repository"
	"tenant_rating_backend/internal/admin/service"
	authrepo "tenant_rating_backend/internal/auth/repository"
	apphttp "tenant_rating_backend/internal/http"
	requestsrepo "tenant_rating_backend/internal/requests/repository"
	"tenant_rating_backend/platform/logger"
	"tenant_rating_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module represents the admin domain module
type Module struct {
	handler *handler.Handler
}

// NewModule creates a new admin module with all dependencies wired
func NewModule(pool *pgxpool.Pool, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, authrepo.New(pool), requestsrepo.New(pool), log)
	h := handler.New(svc, val)

	return &Module{handler: h}
}

// Name returns the module name for logging
func (m *Module) Name() string {
	return "admin"
}

// RegisterRoutes registers the module's routes
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.Admin)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
