package postgres

import (
	"context"
	"errors"

	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type baselineRepository struct {
	db *gorm.DB
}

func (r *baselineRepository) Get(ctx context.Context, creatorID, platform string) (domain.CreatorBaseline, error) {
	var rec creatorBaselineModel
	err := r.db.WithContext(ctx).
		Where("creator_id = ? AND platform = ?", creatorID, platform).
		Take(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CreatorBaseline{}, domain.ErrNotFound
		}
		return domain.CreatorBaseline{}, err
	}
	return domain.CreatorBaseline{
		CreatorID:          rec.CreatorID,
		Platform:           rec.Platform,
		SampleCount:        rec.SampleCount,
		MeanViews:          rec.MeanViews,
		MeanLikes:          rec.MeanLikes,
		MeanComments:       rec.MeanComments,
		MeanShares:         rec.MeanShares,
		MeanEngagementRate: rec.MeanEngagementRate,
		UpdatedAt:          rec.UpdatedAt,
	}, nil
}

func (r *baselineRepository) Upsert(ctx context.Context, baseline domain.CreatorBaseline) error {
	rec := creatorBaselineModel{
		CreatorID:          baseline.CreatorID,
		Platform:           baseline.Platform,
		SampleCount:        baseline.SampleCount,
		MeanViews:          baseline.MeanViews,
		MeanLikes:          baseline.MeanLikes,
		MeanComments:       baseline.MeanComments,
		MeanShares:         baseline.MeanShares,
		MeanEngagementRate: baseline.MeanEngagementRate,
		UpdatedAt:          baseline.UpdatedAt,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "creator_id"}, {Name: "platform"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"sample_count", "mean_views", "mean_likes", "mean_comments",
			"mean_shares", "mean_engagement_rate", "updated_at",
		}),
	}).Create(&rec).Error
}
