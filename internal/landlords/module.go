// Package landlords provides the landlord-facing search over scored requests.
package landlords

import (
	authrepo "tenant_rating_backend/internal/auth/repository"
	"tenant_rating_backend/internal/events"
	apphttp "tenant_rating_backend/internal/http"
	"tenant_rating_backend/internal/landlords/handler"
	"tenant_rating_backend/internal/landlords/repository"
	"tenant_rating_backend/internal/landlords/service"
	"tenant_rating_backend/platform/httpkit"
	"tenant_rating_backend/platform/logger"
	"tenant_rating_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module represents the landlords domain module
type Module struct {
	handler *handler.Handler
}

// NewModule creates a new landlords module with all dependencies wired
func NewModule(pool *pgxpool.Pool, bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, bus, log)
	h := handler.New(svc, val)

	return &Module{handler: h}
}

// Name returns the module name for logging
func (m *Module) Name() string {
	return "landlords"
}

// RegisterRoutes registers the module's routes
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	landlords := ctx.Protected.Group("/landlords")
	landlords.Use(httpkit.RequireRole(authrepo.RoleLandlord))
	m.handler.RegisterRoutes(landlords)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
