// Package docintel provides a client for the Azure Document Intelligence
// REST API. The pipeline only ever sees the AnalyzeResult shape; how the
// service understands documents is its own business.
package docintel

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const apiVersion = "2024-11-30"

// Client is an HTTP client for the document analysis API.
type Client struct {
	endpoint     string
	apiKey       string
	modelID      string
	httpClient   *http.Client
	pollInterval time.Duration
}

// Config configures the document analysis client.
type Config struct {
	Endpoint     string
	APIKey       string
	ModelID      string
	Timeout      time.Duration
	PollInterval time.Duration
}

// NewClient creates a new document analysis client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	pollInterval := cfg.PollInterval
	if pollInterval == 0 {
		pollInterval = 2 * time.Second
	}

	return &Client{
		endpoint:     strings.TrimRight(cfg.Endpoint, "/"),
		apiKey:       cfg.APIKey,
		modelID:      cfg.ModelID,
		httpClient:   &http.Client{Timeout: timeout},
		pollInterval: pollInterval,
	}
}

type analyzeRequest struct {
	Base64Source string `json:"base64Source"`
}

type operationResponse struct {
	Status        string         `json:"status"`
	Error         *apiError      `json:"error,omitempty"`
	AnalyzeResult *AnalyzeResult `json:"analyzeResult,omitempty"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Analyze submits document bytes for analysis and polls the operation until
// it completes. The call blocks for the full duration of the remote analysis.
func (c *Client) Analyze(ctx context.Context, content []byte) (AnalyzeResult, error) {
	if len(content) == 0 {
		return AnalyzeResult{}, fmt.Errorf("document content is required")
	}

	opURL, err := c.submit(ctx, content)
	if err != nil {
		return AnalyzeResult{}, err
	}

	return c.poll(ctx, opURL)
}

func (c *Client) submit(ctx context.Context, content []byte) (string, error) {
	bodyBytes, err := json.Marshal(analyzeRequest{
		Base64Source: base64.StdEncoding.EncodeToString(content),
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal analyze request: %w", err)
	}

	url := fmt.Sprintf("%s/documentintelligence/documentModels/%s:analyze?api-version=%s", c.endpoint, c.modelID, apiVersion)
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create analyze request: %w", err)
	}

	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Ocp-Apim-Subscription-Key", c.apiKey)

	resp, err := c.httpClient.Do(request)
	if err != nil {
		return "", fmt.Errorf("analyze request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("document analysis API returned %d: %s", resp.StatusCode, string(body))
	}

	opURL := resp.Header.Get("Operation-Location")
	if opURL == "" {
		return "", fmt.Errorf("document analysis API returned no Operation-Location")
	}

	return opURL, nil
}

func (c *Client) poll(ctx context.Context, opURL string) (AnalyzeResult, error) {
	for {
		select {
		case <-ctx.Done():
			return AnalyzeResult{}, ctx.Err()
		case <-time.After(c.pollInterval):
		}

		op, err := c.fetchOperation(ctx, opURL)
		if err != nil {
			return AnalyzeResult{}, err
		}

		switch op.Status {
		case "succeeded":
			if op.AnalyzeResult == nil {
				return AnalyzeResult{}, fmt.Errorf("analysis succeeded without a result")
			}
			return *op.AnalyzeResult, nil
		case "failed":
			if op.Error != nil {
				return AnalyzeResult{}, fmt.Errorf("analysis failed: %s: %s", op.Error.Code, op.Error.Message)
			}
			return AnalyzeResult{}, fmt.Errorf("analysis failed")
		case "running", "notStarted":
			// keep polling
		default:
			return AnalyzeResult{}, fmt.Errorf("analysis returned unknown status %q", op.Status)
		}
	}
}

func (c *Client) fetchOperation(ctx context.Context, opURL string) (operationResponse, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, opURL, nil)
	if err != nil {
		return operationResponse{}, fmt.Errorf("failed to create poll request: %w", err)
	}
	request.Header.Set("Ocp-Apim-Subscription-Key", c.apiKey)

	resp, err := c.httpClient.Do(request)
	if err != nil {
		return operationResponse{}, fmt.Errorf("poll request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return operationResponse{}, fmt.Errorf("document analysis API returned %d: %s", resp.StatusCode, string(body))
	}

	var op operationResponse
	if err := json.NewDecoder(resp.Body).Decode(&op); err != nil {
		return operationResponse{}, fmt.Errorf("failed to decode operation response: %w", err)
	}

	return op, nil
}
