package ports

import (
	"context"
	"time"

	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/domain"
)

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

// TrendStore persists the shared trend snapshot so replicas converge on the
// same trending data after an admin refresh.
type TrendStore interface {
	Load(ctx context.Context) (*domain.TrendSnapshot, error)
	Store(ctx context.Context, snapshot *domain.TrendSnapshot) error
}
