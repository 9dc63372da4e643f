package ports

import (
	"context"

	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/domain"
)

// ContentFetcher retrieves remote media bytes for visual analysis.
type ContentFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// InsightGenerator turns a finished analysis into short human-readable
// reasoning lines. Implementations must be safe to skip: callers fall back
// to template reasoning when generation fails.
type InsightGenerator interface {
	Reasoning(ctx context.Context, analysis domain.ContentAnalysis, prediction domain.EngagementPrediction) ([]string, error)
}
