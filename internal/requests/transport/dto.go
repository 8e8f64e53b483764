package transport

import (
	"time"

	"tenant_rating_backend/internal/extraction"
	"tenant_rating_backend/internal/scoring"

	"github.com/google/uuid"
)

// RequestStatus tracks the review lifecycle of a scored request.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// CreateRequestForm is the non-file part of the payslip submission form.
type CreateRequestForm struct {
	DesiredRent float64 `form:"desiredRent" validate:"required,gt=0"`
	CityName    string  `form:"cityName" validate:"required,min=2,max=100"`
}

// UploadedFile is one payslip as received from the multipart form.
type UploadedFile struct {
	FileName    string
	ContentType string
	Content     []byte
}

// RequestResult is the response for a created or listed request.
type RequestResult struct {
	RequestID         uuid.UUID     `json:"requestId"`
	TempScore         float64       `json:"tempScore"`
	FinalScore        float64       `json:"finalScore"`
	MaxAffordableRent float64       `json:"maxAffordableRent"`
	CityName          string        `json:"cityName"`
	DesiredRent       float64       `json:"desiredRent"`
	Status            RequestStatus `json:"status"`
	DateCreated       time.Time     `json:"dateCreated"`

	// Populated only on creation, for the applicant's own audit view.
	Breakdown *scoring.Breakdown    `json:"breakdown,omitempty"`
	RawData   extraction.DebugTrace `json:"rawData,omitempty"`
}
