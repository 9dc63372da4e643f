package ports

import (
	"context"
	"time"

	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/domain"
)

type OutcomeRepository interface {
	StorePrediction(ctx context.Context, outcome domain.PredictionOutcome) error
	GetByPredictionID(ctx context.Context, predictionID string) (domain.PredictionOutcome, error)
	RecordOutcome(ctx context.Context, outcome domain.PredictionOutcome) error
	ListReported(ctx context.Context, platform string, limit int) ([]domain.PredictionOutcome, error)
}

type BaselineRepository interface {
	Get(ctx context.Context, creatorID, platform string) (domain.CreatorBaseline, error)
	Upsert(ctx context.Context, baseline domain.CreatorBaseline) error
}

type BenchmarkRepository interface {
	Get(ctx context.Context, platform string) (domain.PlatformBenchmark, error)
	Upsert(ctx context.Context, benchmark domain.PlatformBenchmark) error
}

type EffectivenessRepository interface {
	RecordIssued(ctx context.Context, category, platform string, at time.Time) error
	RecordBeat(ctx context.Context, category, platform string, at time.Time) error
	List(ctx context.Context, platform string) ([]domain.RecommendationEffectiveness, error)
}

type WeightHistoryRepository interface {
	Append(ctx context.Context, change domain.ModelWeightChange) error
}

type IdempotencyRecord struct {
	Key          string
	RequestHash  string
	ResponseCode int
	ResponseBody []byte
	ExpiresAt    time.Time
}

type IdempotencyRepository interface {
	Get(ctx context.Context, key string, now time.Time) (*IdempotencyRecord, error)
	Reserve(ctx context.Context, key, requestHash string, expiresAt time.Time) error
	Complete(ctx context.Context, key string, responseCode int, responseBody []byte, at time.Time) error
}
