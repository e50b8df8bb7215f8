package provider

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// Config carries the knobs a completion service needs for one call.
// Constructed once at startup from process configuration and treated as
// read-only afterwards.
type Config struct {
	APIKey      string        `mapstructure:"api_key" json:"api_key"`
	Model       string        `mapstructure:"model" json:"model"`
	BaseURL     string        `mapstructure:"base_url" json:"base_url"`
	MaxTokens   int           `mapstructure:"max_tokens" json:"max_tokens"`
	Temperature float64       `mapstructure:"temperature" json:"temperature"`
	Timeout     time.Duration `mapstructure:"timeout" json:"timeout"`
}

// CompletionRequest is one rendered two-message chat request. Exactly
// one candidate is requested per call.
type CompletionRequest struct {
	System string `json:"system"`
	User   string `json:"user"`
}

// Completion is the usable part of a successful API response: the first
// candidate's text plus aggregate token usage when the API reports it.
type Completion struct {
	Text       string        `json:"text"`
	TokensUsed int           `json:"tokens_used"`
	Model      string        `json:"model"`
	Latency    time.Duration `json:"latency"`
}

// CompletionService wraps one text-generation backend. Implementations
// are safe for concurrent use; nothing is mutated after construction.
type CompletionService interface {
	Name() string
	Complete(ctx context.Context, cfg Config, req CompletionRequest) (*Completion, error)
	IsAvailable(ctx context.Context) error
}

// Transport-level retry policy shared by the HTTP-backed services.
// Attempts counts the first try; only connection failures are retried,
// never an HTTP status the API answered with.
const (
	transportAttempts = 3
	retryDelay        = 500 * time.Millisecond
)

const defaultTimeout = 30 * time.Second

// doWithRetry issues a request built by newRequest up to
// transportAttempts times. Only transport failures are retried; any
// HTTP status the API answered with is returned to the caller as-is.
// The request is rebuilt per attempt so each try gets a fresh body.
func doWithRetry(ctx context.Context, client *http.Client, service string, newRequest func() (*http.Request, error)) (*http.Response, error) {
	var lastErr error

	for attempt := 1; attempt <= transportAttempts; attempt++ {
		if attempt > 1 {
			slog.Debug("retrying completion request", "service", service, "attempt", attempt)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(retryDelay):
			}
		}

		httpReq, err := newRequest()
		if err != nil {
			return nil, err
		}

		resp, err := client.Do(httpReq)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		// A cancelled context will not recover; stop early.
		if ctx.Err() != nil {
			return nil, lastErr
		}
	}

	return nil, lastErr
}
