package notification

import (
	"context"

	"tenant_rating_backend/internal/events"
	"tenant_rating_backend/platform/logger"
)

// Module subscribes to domain events and sends the matching notifications.
type Module struct {
	sender Sender
	log    *logger.Logger
}

func NewModule(sender Sender, log *logger.Logger) *Module {
	return &Module{
		sender: sender,
		log:    log,
	}
}

func (m *Module) RegisterHandlers(bus *events.InMemoryBus) {
	bus.Subscribe(events.UserSignedUp{}.EventName(), m)

	m.log.Info("notification module registered event handlers")
}

// Handle routes events to the appropriate handler method.
func (m *Module) Handle(ctx context.Context, event events.Event) error {
	switch e := event.(type) {
	case events.UserSignedUp:
		return m.handleUserSignedUp(ctx, e)
	default:
		return nil
	}
}

func (m *Module) handleUserSignedUp(ctx context.Context, e events.UserSignedUp) error {
	if err := m.sender.SendWelcomeEmail(ctx, e.Email, e.FirstName); err != nil {
		m.log.Error("welcome email failed", "user_id", e.UserID.String(), "error", err)
		return err
	}
	return nil
}
