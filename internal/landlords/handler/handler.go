package handler

import (
	"context"
	"net/http"

	"tenant_rating_backend/internal/landlords/service"
	"tenant_rating_backend/internal/landlords/transport"
	"tenant_rating_backend/platform/httpkit"
	"tenant_rating_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const msgInvalidRequest = "invalid request"

// Handler handles HTTP requests for the landlord search surface
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new landlords handler
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes registers the landlord routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/search", h.Search)
	rg.GET("/saved", h.ListSaved)
	rg.POST("/saved/:id", h.Save)
	rg.DELETE("/saved/:id", h.Unsave)
}

// Search handles GET /api/v1/landlords/search
func (h *Handler) Search(c *gin.Context) {
	userID, ok := httpkit.UserID(c)
	if !ok {
		httpkit.Error(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	var query transport.SearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, err.Error())
		return
	}
	if err := h.val.Struct(query); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, err.Error())
		return
	}

	results, err := h.svc.Search(c.Request.Context(), userID, query)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, results)
}

// ListSaved handles GET /api/v1/landlords/saved
func (h *Handler) ListSaved(c *gin.Context) {
	userID, ok := httpkit.UserID(c)
	if !ok {
		httpkit.Error(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	results, err := h.svc.ListSaved(c.Request.Context(), userID)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, results)
}

// Save handles POST /api/v1/landlords/saved/:id
func (h *Handler) Save(c *gin.Context) {
	h.mutate(c, h.svc.Save)
}

// Unsave handles DELETE /api/v1/landlords/saved/:id
func (h *Handler) Unsave(c *gin.Context) {
	h.mutate(c, h.svc.Unsave)
}

func (h *Handler) mutate(c *gin.Context, fn func(ctx context.Context, landlordID, requestID uuid.UUID) error) {
	userID, ok := httpkit.UserID(c)
	if !ok {
		httpkit.Error(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, "invalid request id")
		return
	}

	if err := fn(c.Request.Context(), userID, requestID); httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, gin.H{"status": "ok"})
}
