// Package adapters contains thin cross-boundary adapters so domain modules
// depend on their own interfaces instead of concrete infrastructure types.
package adapters

import (
	"context"

	"tenant_rating_backend/platform/apperr"
	"tenant_rating_backend/platform/docintel"
)

// DocIntelAnalyzer adapts the document analysis client to the requests
// module's Analyzer boundary.
type DocIntelAnalyzer struct {
	client *docintel.Client
}

func NewDocIntelAnalyzer(client *docintel.Client) *DocIntelAnalyzer {
	return &DocIntelAnalyzer{client: client}
}

func (a *DocIntelAnalyzer) Analyze(ctx context.Context, content []byte) (*docintel.AnalyzeResult, error) {
	result, err := a.client.Analyze(ctx, content)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DisabledAnalyzer is installed when the document analysis service is not
// configured. Every call fails with a service-unavailable error.
type DisabledAnalyzer struct{}

func (DisabledAnalyzer) Analyze(ctx context.Context, content []byte) (*docintel.AnalyzeResult, error) {
	return nil, apperr.New(apperr.KindUnavailable, "document analysis is not configured")
}
