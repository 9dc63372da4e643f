package postgres

import (
	"context"
	"time"

	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type effectivenessRepository struct {
	db *gorm.DB
}

func (r *effectivenessRepository) RecordIssued(ctx context.Context, category, platform string, at time.Time) error {
	return r.bump(ctx, category, platform, at, "issued_count")
}

func (r *effectivenessRepository) RecordBeat(ctx context.Context, category, platform string, at time.Time) error {
	return r.bump(ctx, category, platform, at, "beat_count")
}

func (r *effectivenessRepository) bump(ctx context.Context, category, platform string, at time.Time, column string) error {
	rec := recommendationEffectivenessModel{
		Category:  category,
		Platform:  platform,
		UpdatedAt: at,
	}
	if column == "issued_count" {
		rec.IssuedCount = 1
	} else {
		rec.BeatCount = 1
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "category"}, {Name: "platform"}},
		DoUpdates: clause.Assignments(map[string]any{
			column:       gorm.Expr(column + " + 1"),
			"updated_at": at,
		}),
	}).Create(&rec).Error
}

func (r *effectivenessRepository) List(ctx context.Context, platform string) ([]domain.RecommendationEffectiveness, error) {
	q := r.db.WithContext(ctx)
	if platform != "" {
		q = q.Where("platform = ?", platform)
	}
	var rows []recommendationEffectivenessModel
	if err := q.Order("category asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.RecommendationEffectiveness, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.RecommendationEffectiveness{
			Category:    row.Category,
			Platform:    row.Platform,
			IssuedCount: row.IssuedCount,
			BeatCount:   row.BeatCount,
			UpdatedAt:   row.UpdatedAt,
		})
	}
	return out, nil
}
