package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "wiselydiary"

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "HTTP requests by method, route and status code."},
		[]string{"method", "route", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: namespace, Name: "http_request_duration_seconds", Help: "HTTP request latency by route.", Buckets: prometheus.DefBuckets},
		[]string{"method", "route"},
	)
	LLMRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "llm_requests_total", Help: "LLM gateway calls by provider, request type and result."},
		[]string{"provider", "type", "result"},
	)
	LLMDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: namespace, Name: "llm_request_duration_seconds", Help: "LLM gateway latency by provider and request type.", Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120}},
		[]string{"provider", "type"},
	)
	LLMThrottleWait = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: namespace, Name: "llm_throttle_wait_seconds", Help: "Time LLM calls spent waiting on the rate limiter, by request type.", Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5}},
		[]string{"type"},
	)
	SummariesSaved = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "diary_summaries_saved_total", Help: "Diary summaries persisted, by operation (insert or update)."},
		[]string{"op"},
	)
	DocumentChunks = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "document_chunks_stored_total", Help: "Uploaded document chunks stored, by store type."},
		[]string{"store_type"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(HTTPRequests)
	reg.MustRegister(HTTPDuration)
	reg.MustRegister(LLMRequests)
	reg.MustRegister(LLMDuration)
	reg.MustRegister(LLMThrottleWait)
	reg.MustRegister(SummariesSaved)
	reg.MustRegister(DocumentChunks)
}
