package ai

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"wiselydiary/backend/internal/logger"
	"wiselydiary/backend/internal/metrics"
)

// DefaultRateLimit is the default number of LLM calls allowed per second.
const DefaultRateLimit = 10

// RateLimiter paces outbound LLM calls. Summaries, letters and freeform entries
// share one limiter because they draw on the same provider quota.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter allows qps calls per second with a burst of qps.
func NewRateLimiter(qps int) *RateLimiter {
	if qps <= 0 {
		qps = DefaultRateLimit
	}
	return &RateLimiter{limiter: rate.NewLimiter(rate.Limit(qps), qps)}
}

// Wait blocks until a call of reqType may go out or ctx is done.
func (r *RateLimiter) Wait(ctx context.Context, reqType RequestType) error {
	if r.limiter.Allow() {
		return nil
	}

	start := time.Now()
	if err := r.limiter.Wait(ctx); err != nil {
		return err
	}
	waited := time.Since(start)
	metrics.LLMThrottleWait.WithLabelValues(string(reqType)).Observe(waited.Seconds())
	logger.Debug("llm call throttled", "module", "ai", "action", "throttle", "resource", "llm", "result", "ok", "type", reqType, "wait_ms", waited.Milliseconds())
	return nil
}

// Limit returns the configured calls per second.
func (r *RateLimiter) Limit() int {
	return int(r.limiter.Limit())
}
