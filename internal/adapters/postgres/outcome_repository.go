package postgres

import (
	"context"
	"errors"

	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/domain"
	"gorm.io/gorm"
)

type outcomeRepository struct {
	db *gorm.DB
}

func (r *outcomeRepository) StorePrediction(ctx context.Context, outcome domain.PredictionOutcome) error {
	rec := outcomeToModel(outcome)
	err := r.db.WithContext(ctx).Create(&rec).Error
	if err != nil && isUniqueViolation(err) {
		return domain.ErrConflict
	}
	return err
}

func (r *outcomeRepository) GetByPredictionID(ctx context.Context, predictionID string) (domain.PredictionOutcome, error) {
	var rec predictionOutcomeModel
	if err := r.db.WithContext(ctx).Where("prediction_id = ?", predictionID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PredictionOutcome{}, domain.ErrNotFound
		}
		return domain.PredictionOutcome{}, err
	}
	return outcomeFromModel(rec), nil
}

func (r *outcomeRepository) RecordOutcome(ctx context.Context, outcome domain.PredictionOutcome) error {
	if outcome.Actual == nil || outcome.ReportedAt == nil {
		return domain.ErrInvalidInput
	}
	res := r.db.WithContext(ctx).Model(&predictionOutcomeModel{}).
		Where("prediction_id = ? AND reported_at IS NULL", outcome.PredictionID).
		Updates(map[string]any{
			"actual_views":        outcome.Actual.Views,
			"actual_likes":        outcome.Actual.Likes,
			"actual_comments":     outcome.Actual.Comments,
			"actual_shares":       outcome.Actual.Shares,
			"views_accuracy":      outcome.ViewsAccuracy,
			"likes_accuracy":      outcome.LikesAccuracy,
			"engagement_accuracy": outcome.EngagementAccuracy,
			"reported_at":         *outcome.ReportedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrConflict
	}
	return nil
}

func (r *outcomeRepository) ListReported(ctx context.Context, platform string, limit int) ([]domain.PredictionOutcome, error) {
	q := r.db.WithContext(ctx).Where("reported_at IS NOT NULL")
	if platform != "" {
		q = q.Where("platform = ?", platform)
	}
	var rows []predictionOutcomeModel
	if err := q.Order("reported_at desc").Limit(limit).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.PredictionOutcome, 0, len(rows))
	for _, row := range rows {
		out = append(out, outcomeFromModel(row))
	}
	return out, nil
}

func outcomeToModel(o domain.PredictionOutcome) predictionOutcomeModel {
	rec := predictionOutcomeModel{
		PredictionID:       o.PredictionID,
		CreatorID:          o.CreatorID,
		Platform:           o.Platform,
		ContentType:        o.ContentType,
		PredictedViews:     o.Predicted.Views,
		PredictedLikes:     o.Predicted.Likes,
		PredictedComments:  o.Predicted.Comments,
		PredictedShares:    o.Predicted.Shares,
		ViewsAccuracy:      o.ViewsAccuracy,
		LikesAccuracy:      o.LikesAccuracy,
		EngagementAccuracy: o.EngagementAccuracy,
		PredictedAt:        o.PredictedAt,
		ReportedAt:         o.ReportedAt,
	}
	if o.Actual != nil {
		rec.ActualViews = &o.Actual.Views
		rec.ActualLikes = &o.Actual.Likes
		rec.ActualComments = &o.Actual.Comments
		rec.ActualShares = &o.Actual.Shares
	}
	return rec
}

func outcomeFromModel(rec predictionOutcomeModel) domain.PredictionOutcome {
	out := domain.PredictionOutcome{
		PredictionID: rec.PredictionID,
		CreatorID:    rec.CreatorID,
		Platform:     rec.Platform,
		ContentType:  rec.ContentType,
		Predicted: domain.OutcomeMetrics{
			Views:    rec.PredictedViews,
			Likes:    rec.PredictedLikes,
			Comments: rec.PredictedComments,
			Shares:   rec.PredictedShares,
		},
		ViewsAccuracy:      rec.ViewsAccuracy,
		LikesAccuracy:      rec.LikesAccuracy,
		EngagementAccuracy: rec.EngagementAccuracy,
		PredictedAt:        rec.PredictedAt,
		ReportedAt:         rec.ReportedAt,
	}
	if rec.ActualViews != nil {
		out.Actual = &domain.OutcomeMetrics{
			Views:    *rec.ActualViews,
			Likes:    derefInt64(rec.ActualLikes),
			Comments: derefInt64(rec.ActualComments),
			Shares:   derefInt64(rec.ActualShares),
		}
	}
	return out
}

func derefInt64(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
