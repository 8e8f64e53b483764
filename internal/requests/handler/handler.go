package handler

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"

	"tenant_rating_backend/internal/requests/service"
	"tenant_rating_backend/internal/requests/transport"
	"tenant_rating_backend/platform/httpkit"
	"tenant_rating_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"

	// maxUploadBytes caps the whole multipart form (6 scanned payslips).
	maxUploadBytes = 64 << 20
)

// Handler handles HTTP requests for payslip scoring requests
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new requests handler
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes registers the request routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("/my", h.ListMine)
	rg.POST("/:id/notify-email", h.NotifyEmail)
	rg.POST("/:id/notify-sms", h.NotifySMS)
}

// Create handles POST /api/v1/requests
func (h *Handler) Create(c *gin.Context) {
	userID, ok := httpkit.UserID(c)
	if !ok {
		httpkit.Error(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	var form transport.CreateRequestForm
	if err := c.ShouldBind(&form); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, err.Error())
		return
	}
	if err := h.val.Struct(form); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	multipartForm, err := c.MultipartForm()
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, err.Error())
		return
	}

	files, err := readFiles(multipartForm.File["files"])
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, err.Error())
		return
	}

	result, err := h.svc.Create(c.Request.Context(), userID, form, files)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.Created(c, result)
}

// ListMine handles GET /api/v1/requests/my
func (h *Handler) ListMine(c *gin.Context) {
	userID, ok := httpkit.UserID(c)
	if !ok {
		httpkit.Error(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	results, err := h.svc.ListMine(c.Request.Context(), userID)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, results)
}

// NotifyEmail handles POST /api/v1/requests/:id/notify-email
func (h *Handler) NotifyEmail(c *gin.Context) {
	h.notify(c, h.svc.NotifyEmail)
}

// NotifySMS handles POST /api/v1/requests/:id/notify-sms
func (h *Handler) NotifySMS(c *gin.Context) {
	h.notify(c, h.svc.NotifySMS)
}

func (h *Handler) notify(c *gin.Context, fn func(ctx context.Context, userID, requestID uuid.UUID) error) {
	userID, ok := httpkit.UserID(c)
	if !ok {
		httpkit.Error(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	requestID, ok := parseRequestID(c)
	if !ok {
		return
	}

	if err := fn(c.Request.Context(), userID, requestID); httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, gin.H{"status": "queued"})
}

func readFiles(headers []*multipart.FileHeader) ([]transport.UploadedFile, error) {
	files := make([]transport.UploadedFile, 0, len(headers))
	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			return nil, err
		}
		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}

		files = append(files, transport.UploadedFile{
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Content:     content,
		})
	}
	return files, nil
}

func parseRequestID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, "invalid request id")
		return uuid.UUID{}, false
	}
	return id, true
}
