package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/application"
	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/domain"
	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/features"
	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/recommend"
	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/scoring"
)

type memOutcomes struct {
	rows map[string]domain.PredictionOutcome
}

func (m *memOutcomes) StorePrediction(_ context.Context, outcome domain.PredictionOutcome) error {
	m.rows[outcome.PredictionID] = outcome
	return nil
}

func (m *memOutcomes) GetByPredictionID(_ context.Context, predictionID string) (domain.PredictionOutcome, error) {
	row, ok := m.rows[predictionID]
	if !ok {
		return domain.PredictionOutcome{}, domain.ErrNotFound
	}
	return row, nil
}

func (m *memOutcomes) RecordOutcome(_ context.Context, outcome domain.PredictionOutcome) error {
	m.rows[outcome.PredictionID] = outcome
	return nil
}

func (m *memOutcomes) ListReported(_ context.Context, _ string, _ int) ([]domain.PredictionOutcome, error) {
	return nil, nil
}

type memBenchmarks struct{}

func (memBenchmarks) Get(_ context.Context, _ string) (domain.PlatformBenchmark, error) {
	return domain.PlatformBenchmark{}, domain.ErrNotFound
}

func (memBenchmarks) Upsert(_ context.Context, _ domain.PlatformBenchmark) error { return nil }

func newTestRouter(t *testing.T, ready func() error) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := application.NewService(application.Dependencies{
		Logger:     logger,
		Content:    features.NewContentExtractor(),
		Creator:    features.NewCreatorExtractor(16, time.Minute),
		Trend:      features.NewTrendExtractor(),
		Engage:     scoring.NewEngagementPredictor(""),
		Viral:      scoring.NewViralScorer(""),
		Audience:   scoring.NewAudienceFitScorer(""),
		Timing:     scoring.NewTimingOptimizer(""),
		Engine:     recommend.NewEngine(),
		Outcomes:   &memOutcomes{rows: map[string]domain.PredictionOutcome{}},
		Benchmarks: memBenchmarks{},
	})
	return NewRouter(NewHandler(svc), logger, ready)
}

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t, nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("healthz status = %d", rr.Code)
	}

	failing := newTestRouter(t, func() error { return errors.New("db down") })
	rr = httptest.NewRecorder()
	failing.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("readyz with failing dependency = %d, want 503", rr.Code)
	}
	var out apiError
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	if out.Code != "NOT_READY" || out.Status != "error" {
		t.Fatalf("unexpected envelope: %+v", out)
	}
}

func TestAuthRequired(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/predictions", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("missing bearer = %d, want 401", rr.Code)
	}
	var out apiError
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	if out.Code != "UNAUTHORIZED" {
		t.Fatalf("unexpected code %q", out.Code)
	}
}

func TestPredictRoute(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t, nil)

	body := `{"content":{"caption":"wait for it #grwm","content_type":"video","platform":"tiktok","duration_seconds":30}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/predictions", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer user-1")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("predict failed: status=%d body=%s", rr.Code, rr.Body.String())
	}
	if rr.Header().Get("X-Request-Id") == "" {
		t.Fatal("response must carry a request id")
	}

	var envelope struct {
		Status string                    `json:"status"`
		Data   domain.PredictionResponse `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if envelope.Status != "success" {
		t.Fatalf("status = %q", envelope.Status)
	}
	if !strings.HasPrefix(envelope.Data.PredictionID, "pred_") {
		t.Fatalf("prediction id = %q", envelope.Data.PredictionID)
	}
	if envelope.Data.Platform != "tiktok" {
		t.Fatalf("platform = %q", envelope.Data.Platform)
	}
}

func TestPredictRouteRejectsBadJSON(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/predictions", strings.NewReader(`{not json`))
	req.Header.Set("Authorization", "Bearer user-1")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("bad json = %d, want 400", rr.Code)
	}
}

func TestTimingRouteValidatesLimit(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/timing/optimal?platform=tiktok&limit=abc", nil)
	req.Header.Set("Authorization", "Bearer user-1")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("non-numeric limit = %d, want 400", rr.Code)
	}
}

func TestOutcomeRouteNeedsIdempotencyKey(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t, nil)
	body := `{"prediction_id":"pred_x","actual":{"views":100}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/outcomes", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer user-1")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("missing idempotency key = %d, want 400", rr.Code)
	}
	var out apiError
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	if out.Code != "IDEMPOTENCY_KEY_REQUIRED" {
		t.Fatalf("unexpected code %q", out.Code)
	}
}

func TestAdminRoutesForbiddenForUsers(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t, nil)
	body := `{"items":[{"type":"hashtag","name":"grwm","popularity":0.9}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/trends", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer user-1")
	req.Header.Set("X-Actor-Role", "user")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("user on admin route = %d, want 403", rr.Code)
	}
}

func TestBenchmarkRouteNotFound(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/benchmarks/tiktok", nil)
	req.Header.Set("Authorization", "Bearer user-1")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("unseeded benchmark = %d, want 404", rr.Code)
	}
}
