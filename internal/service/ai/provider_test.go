package ai_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"wiselydiary/backend/internal/service/ai"
)

type chatRequest struct {
	Model       string   `json:"model"`
	Temperature *float64 `json:"temperature"`
	Messages    []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func newChatServer(t *testing.T, status int, body string, captured *chatRequest) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"), "unexpected path %s", r.URL.Path)
		require.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		if captured != nil {
			raw, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(raw, captured))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func newOpenAI(serverURL string) ai.Provider {
	return ai.NewOpenAIProvider(ai.Config{
		APIKey:      "sk-test",
		BaseURL:     serverURL,
		Model:       "gpt-4o-mini",
		Temperature: 0.3,
	})
}

const chatOK = `{"id":"chatcmpl-1","object":"chat.completion","created":1,"model":"gpt-4o-mini",
"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"X"}}]}`

func TestOpenAIProvider_Complete_ReturnsFirstChoice(t *testing.T) {
	var req chatRequest
	server := newChatServer(t, http.StatusOK, chatOK, &req)

	text, err := newOpenAI(server.URL).Complete(context.Background(), ai.CompletionRequest{Prompt: "hello"})
	require.NoError(t, err)
	require.Equal(t, "X", text)

	require.Equal(t, "gpt-4o-mini", req.Model)
	require.NotNil(t, req.Temperature)
	require.InDelta(t, 0.3, *req.Temperature, 1e-9)
	require.Len(t, req.Messages, 1)
	require.Equal(t, "user", req.Messages[0].Role)
	require.Equal(t, "hello", req.Messages[0].Content)
}

func TestOpenAIProvider_Complete_RequestOverrides(t *testing.T) {
	var req chatRequest
	server := newChatServer(t, http.StatusOK, chatOK, &req)

	temp := 0.7
	_, err := newOpenAI(server.URL).Complete(context.Background(), ai.CompletionRequest{
		Prompt:      "write",
		Model:       "gpt-3.5-turbo",
		Temperature: &temp,
	})
	require.NoError(t, err)
	require.Equal(t, "gpt-3.5-turbo", req.Model)
	require.InDelta(t, 0.7, *req.Temperature, 1e-9)
}

func TestOpenAIProvider_Complete_NonSuccessIsUpstream(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
	}))
	defer server.Close()

	_, err := newOpenAI(server.URL).Complete(context.Background(), ai.CompletionRequest{Prompt: "hello"})
	require.Error(t, err)
	require.ErrorIs(t, err, ai.ErrUpstream)

	var upstream *ai.UpstreamError
	require.True(t, errors.As(err, &upstream))
	require.Equal(t, http.StatusInternalServerError, upstream.StatusCode)
	require.Equal(t, "openai", upstream.Provider)
	require.Equal(t, int32(1), calls.Load(), "no retries expected")
}

func TestOpenAIProvider_Complete_Unauthorized(t *testing.T) {
	server := newChatServer(t, http.StatusUnauthorized, `{"error":{"message":"bad key"}}`, nil)

	_, err := newOpenAI(server.URL).Complete(context.Background(), ai.CompletionRequest{Prompt: "hello"})
	require.ErrorIs(t, err, ai.ErrUpstream)
}

func TestOpenAIProvider_Complete_Malformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "no choices", body: `{"id":"1","object":"chat.completion","choices":[]}`},
		{name: "missing content", body: `{"id":"1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant"}}]}`},
		{name: "body is not json", body: `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newChatServer(t, http.StatusOK, tt.body, nil)
			_, err := newOpenAI(server.URL).Complete(context.Background(), ai.CompletionRequest{Prompt: "hello"})
			require.ErrorIs(t, err, ai.ErrMalformedResponse)
			require.NotErrorIs(t, err, ai.ErrUpstream)
		})
	}
}

func TestOpenAIProvider_Complete_CancelledIsNotUpstream(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(server.Close)
	t.Cleanup(func() { close(release) })

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := newOpenAI(server.URL).Complete(ctx, ai.CompletionRequest{Prompt: "hello"})
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.NotErrorIs(t, err, ai.ErrUpstream)

	cancelled, stop := context.WithCancel(context.Background())
	stop()
	_, err = newOpenAI(server.URL).Complete(cancelled, ai.CompletionRequest{Prompt: "hello"})
	require.ErrorIs(t, err, context.Canceled)
	require.NotErrorIs(t, err, ai.ErrUpstream)
}

func TestOpenAIProvider_Complete_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := newOpenAI(url).Complete(context.Background(), ai.CompletionRequest{Prompt: "hello"})
	require.ErrorIs(t, err, ai.ErrUpstream)

	var upstream *ai.UpstreamError
	require.True(t, errors.As(err, &upstream))
	require.Zero(t, upstream.StatusCode)
}

func TestCompatibleProvider_Name(t *testing.T) {
	server := newChatServer(t, http.StatusOK, chatOK, nil)
	p, err := ai.NewProvider(ai.Config{Provider: ai.ProviderCompatible, APIKey: "sk-test", BaseURL: server.URL, Model: "llama3"})
	require.NoError(t, err)
	require.Equal(t, ai.ProviderCompatible, p.Name())

	text, err := p.Complete(context.Background(), ai.CompletionRequest{Prompt: "hi"})
	require.NoError(t, err)
	require.Equal(t, "X", text)
}

func TestAnthropicProvider_Complete(t *testing.T) {
	var body map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasSuffix(r.URL.Path, "/messages"), "unexpected path %s", r.URL.Path)
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &body))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_1","type":"message","role":"assistant","model":"claude-3-5-haiku-latest",
"content":[{"type":"text","text":"X"}],"stop_reason":"end_turn","usage":{"input_tokens":1,"output_tokens":1}}`))
	}))
	defer server.Close()

	p, err := ai.NewProvider(ai.Config{Provider: ai.ProviderAnthropic, APIKey: "sk-test", BaseURL: server.URL, Model: "claude-3-5-haiku-latest", Temperature: 1.5})
	require.NoError(t, err)
	require.Equal(t, ai.ProviderAnthropic, p.Name())

	text, err := p.Complete(context.Background(), ai.CompletionRequest{Prompt: "hello"})
	require.NoError(t, err)
	require.Equal(t, "X", text)
	require.InDelta(t, 1.0, body["temperature"], 1e-9)
	require.EqualValues(t, ai.DefaultMaxTokens, body["max_tokens"])
}

func TestAnthropicProvider_Complete_NonSuccessIsUpstream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"invalid_request_error","message":"bad"}}`))
	}))
	defer server.Close()

	p := ai.NewAnthropicProvider(ai.Config{APIKey: "sk-test", BaseURL: server.URL, Model: "claude"})
	_, err := p.Complete(context.Background(), ai.CompletionRequest{Prompt: "hello"})
	require.ErrorIs(t, err, ai.ErrUpstream)

	var upstream *ai.UpstreamError
	require.True(t, errors.As(err, &upstream))
	require.Equal(t, http.StatusBadRequest, upstream.StatusCode)
}

func TestNewProvider_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  ai.Config
		err  error
	}{
		{name: "missing key", cfg: ai.Config{Provider: ai.ProviderOpenAI, Model: "m"}, err: ai.ErrMissingAPIKey},
		{name: "missing model", cfg: ai.Config{Provider: ai.ProviderOpenAI, APIKey: "k"}, err: ai.ErrMissingModel},
		{name: "compatible without base url", cfg: ai.Config{Provider: ai.ProviderCompatible, APIKey: "k", Model: "m"}, err: ai.ErrMissingBaseURL},
		{name: "unknown provider", cfg: ai.Config{Provider: "mistral", APIKey: "k", Model: "m"}, err: ai.ErrInvalidProvider},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ai.NewProvider(tt.cfg)
			require.ErrorIs(t, err, tt.err)
		})
	}

	p, err := ai.NewProvider(ai.Config{APIKey: "k", Model: "m"})
	require.NoError(t, err)
	require.Equal(t, ai.ProviderOpenAI, p.Name())
}
