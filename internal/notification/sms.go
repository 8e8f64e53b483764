package notification

import (
	"context"
	"fmt"

	"tenant_rating_backend/platform/logger"
	"tenant_rating_backend/platform/phone"
)

type SMSSender interface {
	SendScoreSMS(ctx context.Context, toPhone string, finalScore float64) error
}

// LogSMSSender is a development stand-in for a real SMS gateway. It
// normalizes the destination number and logs the message instead of
// dispatching it.
type LogSMSSender struct {
	log *logger.Logger
}

func NewLogSMSSender(log *logger.Logger) *LogSMSSender {
	return &LogSMSSender{log: log}
}

func (s *LogSMSSender) SendScoreSMS(ctx context.Context, toPhone string, finalScore float64) error {
	normalized := phone.NormalizeE164(toPhone)
	message := fmt.Sprintf("ציון הדירוג שלך: %.0f מתוך 100", finalScore)
	s.log.Info("sms dispatched", "to", normalized, "body", message)
	return nil
}
