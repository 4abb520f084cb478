package ai

import (
	"context"
	"errors"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIProvider implements Provider for the OpenAI chat completions API.
type OpenAIProvider struct {
	client      openai.Client
	name        string
	model       string
	temperature float64
}

// NewOpenAIProvider creates a new OpenAI provider. SDK retries are disabled;
// a failed call surfaces immediately as ErrUpstream.
func NewOpenAIProvider(cfg Config) *OpenAIProvider {
	return newOpenAIProvider(ProviderOpenAI, cfg)
}

func newOpenAIProvider(name string, cfg Config) *OpenAIProvider {
	return &OpenAIProvider{
		client:      openai.NewClient(openAIOptions(cfg)...),
		name:        name,
		model:       cfg.Model,
		temperature: cfg.Temperature,
	}
}

func openAIOptions(cfg Config) []option.RequestOption {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	}
	return opts
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string {
	return p.name
}

// Complete posts {model, temperature, messages:[{role:user, content:prompt}]} and
// returns choices[0].message.content.
func (p *OpenAIProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(req.modelOr(p.model)),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(req.Prompt),
		},
		Temperature: openai.Float(req.temperatureOr(p.temperature)),
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", openAICallError(ctx, p.name, err)
	}

	if resp == nil || len(resp.Choices) == 0 {
		return "", ErrMalformedResponse
	}
	message := resp.Choices[0].Message
	if !message.JSON.Content.Valid() {
		return "", ErrMalformedResponse
	}
	return message.Content, nil
}

func openAICallError(ctx context.Context, provider string, err error) error {
	var statusCode int
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		statusCode = apiErr.StatusCode
	}
	return callError(ctx, provider, statusCode, err)
}
