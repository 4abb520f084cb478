package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Provider sends a single-turn chat completion to an LLM API.
type Provider interface {
	// Name returns the provider name.
	Name() string
	// Complete sends req.Prompt as the only user message and returns the generated text.
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// CompletionRequest overrides the provider defaults for one call.
type CompletionRequest struct {
	Prompt      string
	Model       string   // empty: provider default
	Temperature *float64 // nil: provider default
}

// Config holds the configuration for an AI provider.
type Config struct {
	Provider    string // openai, anthropic, compatible
	APIKey      string
	BaseURL     string // optional for openai/anthropic, required for compatible
	Model       string
	Temperature float64
	MaxTokens   int          // anthropic only; defaults to DefaultMaxTokens
	HTTPClient  *http.Client // optional; carries proxy and timeout
}

// ProviderType constants
const (
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderCompatible = "compatible"
)

const DefaultMaxTokens = 1024

var (
	ErrInvalidProvider = errors.New("invalid provider")
	ErrMissingAPIKey   = errors.New("API key is required")
	ErrMissingBaseURL  = errors.New("base URL is required for compatible provider")
	ErrMissingModel    = errors.New("model is required")

	// ErrUpstream reports that the LLM call did not succeed.
	ErrUpstream = errors.New("llm upstream failure")
	// ErrMalformedResponse reports a successful call whose body lacks the generated text.
	ErrMalformedResponse = errors.New("llm response malformed")
)

// UpstreamError carries the provider and HTTP status of a failed call.
// StatusCode is zero for transport failures.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: upstream returned status %d: %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: upstream call failed: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstream
}

// NewProvider creates a new AI provider based on the config.
func NewProvider(cfg Config) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Model == "" {
		return nil, ErrMissingModel
	}

	switch cfg.Provider {
	case ProviderOpenAI, "":
		return NewOpenAIProvider(cfg), nil
	case ProviderAnthropic:
		return NewAnthropicProvider(cfg), nil
	case ProviderCompatible:
		if cfg.BaseURL == "" {
			return nil, ErrMissingBaseURL
		}
		return NewCompatibleProvider(cfg), nil
	default:
		return nil, ErrInvalidProvider
	}
}

func (r CompletionRequest) modelOr(def string) string {
	if r.Model != "" {
		return r.Model
	}
	return def
}

func (r CompletionRequest) temperatureOr(def float64) float64 {
	if r.Temperature != nil {
		return *r.Temperature
	}
	return def
}

// callError classifies an SDK failure. Errors caused by ctx ending pass through
// without ErrUpstream; a success body that does not decode is ErrMalformedResponse;
// everything else is an UpstreamError. statusCode is zero when no API error was returned.
func callError(ctx context.Context, provider string, statusCode int, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(err, ctxErr) {
			return err
		}
		return fmt.Errorf("%w: %v", ctxErr, err)
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if statusCode == 0 && (errors.As(err, &syntaxErr) || errors.As(err, &typeErr)) {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return &UpstreamError{Provider: provider, StatusCode: statusCode, Err: err}
}
