package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"wiselydiary/backend/internal/handler"
	apphttp "wiselydiary/backend/internal/http"
	"wiselydiary/backend/internal/metrics"
	"wiselydiary/backend/internal/service"
	servicemock "wiselydiary/backend/internal/service/mock"
)

func newRouter(t *testing.T, health func(ctx context.Context) error) (*servicemock.MockDiaryService, http.Handler) {
	ctrl := gomock.NewController(t)
	diaries := servicemock.NewMockDiaryService(ctrl)
	vectors := servicemock.NewMockVectorStoreService(ctrl)

	reg := prometheus.NewRegistry()
	metrics.RegisterCollectors(reg)

	e := apphttp.NewRouter(handler.NewDiaryHandler(diaries), handler.NewRAGHandler(vectors, 0), apphttp.RouterOptions{
		BodyLimit: "1K",
		Gatherer:  reg,
		Health:    health,
	})
	return diaries, e
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Healthz(t *testing.T) {
	_, h := newRouter(t, nil)
	rec := serve(h, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	_, h = newRouter(t, func(ctx context.Context) error { return errors.New("db closed") })
	rec = serve(h, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRouter_RequestIDAndMetrics(t *testing.T) {
	diaries, h := newRouter(t, nil)
	diaries.EXPECT().GetDiaryContents(gomock.Any(), "u1", "2024-05-01").Return(service.DiaryDetail{DiaryContents: "x"}, nil)

	rec := serve(h, http.MethodGet, "/api/diaries/detail?memberId=u1&date=2024-05-01", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	rec = serve(h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `wiselydiary_http_requests_total{method="GET",route="/api/diaries/detail",status="200"}`)
}

func TestRouter_BodyLimit(t *testing.T) {
	_, h := newRouter(t, nil)
	rec := serve(h, http.MethodPost, "/api/diaries/generate", `{"prompt":"`+strings.Repeat("a", 2048)+`"}`)
	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestRouter_UnknownRoute(t *testing.T) {
	_, h := newRouter(t, nil)
	rec := serve(h, http.MethodGet, "/api/nope", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}
