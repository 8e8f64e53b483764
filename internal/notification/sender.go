// Package notification delivers emails and SMS messages in response to
// domain events and queued tasks. Domain modules publish events or enqueue
// tasks; they never talk to an email provider directly.
package notification

import "context"

// ScoreDetails carries the rating outcome included in score notifications.
type ScoreDetails struct {
	FinalScore  float64
	CityName    string
	DesiredRent float64
	Status      string
}

type Sender interface {
	SendWelcomeEmail(ctx context.Context, toEmail, firstName string) error
	SendScoreEmail(ctx context.Context, toEmail, firstName string, details ScoreDetails) error
	SendCustomEmail(ctx context.Context, toEmail, subject, htmlContent string) error
}

type NoopSender struct{}

func (NoopSender) SendWelcomeEmail(ctx context.Context, toEmail, firstName string) error {
	return nil
}

func (NoopSender) SendScoreEmail(ctx context.Context, toEmail, firstName string, details ScoreDetails) error {
	return nil
}

func (NoopSender) SendCustomEmail(ctx context.Context, toEmail, subject, htmlContent string) error {
	return nil
}
