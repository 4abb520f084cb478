package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wiselydiary/backend/internal/logger"
	"wiselydiary/backend/internal/metrics"
)

// RequestType tags a completion for logging and metrics. It does not change the prompt.
type RequestType string

const (
	RequestSummary  RequestType = "summary"
	RequestLetter   RequestType = "letter"
	RequestFreeform RequestType = "freeform"
)

// Request is one synchronous completion call.
type Request struct {
	Type        RequestType
	Prompt      string
	Model       string   // empty: gateway default
	Temperature *float64 // nil: gateway default
}

// Gateway sends prompts to the configured provider.
type Gateway interface {
	Complete(ctx context.Context, req Request) (string, error)
}

type gateway struct {
	provider    Provider
	rateLimiter *RateLimiter
}

// NewGateway wraps provider with the shared rate limiter. A nil limiter disables limiting.
func NewGateway(provider Provider, rateLimiter *RateLimiter) Gateway {
	return &gateway{provider: provider, rateLimiter: rateLimiter}
}

func (g *gateway) Complete(ctx context.Context, req Request) (string, error) {
	reqType := req.Type
	if reqType == "" {
		reqType = RequestFreeform
	}
	name := g.provider.Name()

	if g.rateLimiter != nil {
		if err := g.rateLimiter.Wait(ctx, reqType); err != nil {
			logger.Warn("llm rate limit wait failed", "module", "ai", "action", "request", "resource", "llm", "result", "failed", "type", reqType, "error", err)
			return "", fmt.Errorf("rate limit: %w", err)
		}
	}

	start := time.Now()
	text, err := g.provider.Complete(ctx, CompletionRequest{
		Prompt:      req.Prompt,
		Model:       req.Model,
		Temperature: req.Temperature,
	})
	elapsed := time.Since(start)
	metrics.LLMDuration.WithLabelValues(name, string(reqType)).Observe(elapsed.Seconds())

	if err != nil {
		result := "upstream_error"
		switch {
		case errors.Is(err, ErrMalformedResponse):
			result = "malformed"
		case ctx.Err() != nil:
			result = "canceled"
		}
		metrics.LLMRequests.WithLabelValues(name, string(reqType), result).Inc()
		logger.Error("llm request failed", "module", "ai", "action", "request", "resource", "llm", "result", "failed", "provider", name, "type", reqType, "duration_ms", elapsed.Milliseconds(), "error", err)
		return "", err
	}

	metrics.LLMRequests.WithLabelValues(name, string(reqType), "ok").Inc()
	logger.Info("llm request completed", "module", "ai", "action", "request", "resource", "llm", "result", "ok", "provider", name, "type", reqType, "duration_ms", elapsed.Milliseconds(), "chars", len(text))
	return text, nil
}
