// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"tenant_rating_backend/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Auth Domain Events
// =============================================================================

// UserSignedUp is published when a new user successfully registers.
type UserSignedUp struct {
	BaseEvent
	UserID    uuid.UUID `json:"userId"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	Role      string    `json:"role"`
}

func (e UserSignedUp) EventName() string { return "auth.user.signed_up" }

// =============================================================================
// Request Domain Events
// =============================================================================

// RequestScored is published after a payslip batch has been analyzed,
// validated and scored, and the resulting request persisted.
type RequestScored struct {
	BaseEvent
	RequestID  uuid.UUID `json:"requestId"`
	UserID     uuid.UUID `json:"userId"`
	CityName   string    `json:"cityName"`
	TempScore  float64   `json:"tempScore"`
	FinalScore float64   `json:"finalScore"`
}

func (e RequestScored) EventName() string { return "requests.scored" }

// RequestSaved is published when a landlord bookmarks a scored request.
type RequestSaved struct {
	BaseEvent
	RequestID      uuid.UUID `json:"requestId"`
	LandlordUserID uuid.UUID `json:"landlordUserId"`
}

func (e RequestSaved) EventName() string { return "requests.saved" }
