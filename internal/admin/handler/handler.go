package handler

import (
	"net/http"

	"tenant_rating_backend/internal/admin/service"
	"tenant_rating_backend/internal/admin/transport"
	"tenant_rating_backend/platform/httpkit"
	"tenant_rating_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// Handler handles HTTP requests for the admin surface
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new admin handler
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes registers the admin routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/stats", h.GetStats)
	rg.GET("/users", h.ListUsers)
	rg.PATCH("/users/:id/active", h.SetUserActive)
	rg.GET("/requests", h.ListRequests)
	rg.PATCH("/requests/:id/status", h.SetRequestStatus)
}

// GetStats handles GET /api/v1/admin/stats
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.svc.GetStats(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, stats)
}

// ListUsers handles GET /api/v1/admin/users
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.svc.ListUsers(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, users)
}

// SetUserActive handles PATCH /api/v1/admin/users/:id/active
func (h *Handler) SetUserActive(c *gin.Context) {
	userID, ok := parseID(c)
	if !ok {
		return
	}

	var req transport.SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, err.Error())
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	if err := h.svc.SetUserActive(c.Request.Context(), userID, *req.Active); httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, gin.H{"status": "ok"})
}

// ListRequests handles GET /api/v1/admin/requests
func (h *Handler) ListRequests(c *gin.Context) {
	requests, err := h.svc.ListRequests(c.Request.Context(), c.Query("status"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, requests)
}

// SetRequestStatus handles PATCH /api/v1/admin/requests/:id/status
func (h *Handler) SetRequestStatus(c *gin.Context) {
	reviewerID, ok := httpkit.UserID(c)
	if !ok {
		httpkit.Error(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	requestID, ok := parseID(c)
	if !ok {
		return
	}

	var req transport.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, err.Error())
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	if err := h.svc.SetRequestStatus(c.Request.Context(), requestID, reviewerID, req.Status); httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, gin.H{"status": "ok"})
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, "invalid id")
		return uuid.UUID{}, false
	}
	return id, true
}
