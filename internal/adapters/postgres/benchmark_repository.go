package postgres

import (
	"context"
	"errors"

	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type benchmarkRepository struct {
	db *gorm.DB
}

func (r *benchmarkRepository) Get(ctx context.Context, platform string) (domain.PlatformBenchmark, error) {
	var rec platformBenchmarkModel
	if err := r.db.WithContext(ctx).Where("platform = ?", platform).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PlatformBenchmark{}, domain.ErrNotFound
		}
		return domain.PlatformBenchmark{}, err
	}
	return domain.PlatformBenchmark{
		Platform:                 rec.Platform,
		MedianViews:              rec.MedianViews,
		MedianEngagement:         rec.MedianEngagement,
		ViralViewThreshold:       rec.ViralViewThreshold,
		ViralEngagementThreshold: rec.ViralEngagementThreshold,
		SampleCount:              rec.SampleCount,
		UpdatedAt:                rec.UpdatedAt,
	}, nil
}

func (r *benchmarkRepository) Upsert(ctx context.Context, benchmark domain.PlatformBenchmark) error {
	rec := platformBenchmarkModel{
		Platform:                 benchmark.Platform,
		MedianViews:              benchmark.MedianViews,
		MedianEngagement:         benchmark.MedianEngagement,
		ViralViewThreshold:       benchmark.ViralViewThreshold,
		ViralEngagementThreshold: benchmark.ViralEngagementThreshold,
		SampleCount:              benchmark.SampleCount,
		UpdatedAt:                benchmark.UpdatedAt,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "platform"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"median_views", "median_engagement_rate", "viral_view_threshold",
			"viral_engagement_threshold", "sample_count", "updated_at",
		}),
	}).Create(&rec).Error
}
