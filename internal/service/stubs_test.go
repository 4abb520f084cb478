package service_test

import (
	"context"
	"sync"

	"wiselydiary/backend/internal/service/ai"
)

type gatewayStub struct {
	mu       sync.Mutex
	text     string
	err      error
	requests []ai.Request
	started  chan struct{}
	release  chan struct{}
}

func (g *gatewayStub) Complete(ctx context.Context, req ai.Request) (string, error) {
	g.mu.Lock()
	g.requests = append(g.requests, req)
	g.mu.Unlock()

	if g.started != nil {
		select {
		case g.started <- struct{}{}:
		default:
		}
	}
	if g.release != nil {
		select {
		case <-g.release:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return g.text, g.err
}

func (g *gatewayStub) calls() []ai.Request {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]ai.Request(nil), g.requests...)
}

type embedderStub struct {
	vectors map[string][]float32
	err     error
	calls   int
}

func (e *embedderStub) Embed(_ context.Context, texts []string) ([][]float32, error) {
	e.calls++
	if e.err != nil {
		return nil, e.err
	}
	out := make([][]float32, len(texts))
	for i, t := range texts {
		if v, ok := e.vectors[t]; ok {
			out[i] = v
		} else {
			out[i] = []float32{0, 0, 1}
		}
	}
	return out, nil
}
