package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/domain"
	"gorm.io/gorm"
)

type weightHistoryRepository struct {
	db *gorm.DB
}

func (r *weightHistoryRepository) Append(ctx context.Context, change domain.ModelWeightChange) error {
	id, err := uuid.Parse(change.ChangeID)
	if err != nil {
		id = uuid.New()
	}
	rec := modelWeightHistoryModel{
		ChangeID:    id,
		Model:       change.Model,
		Version:     change.Version,
		Weights:     string(change.Weights),
		SampleCount: change.SampleCount,
		TrainedAt:   change.TrainedAt,
	}
	return r.db.WithContext(ctx).Create(&rec).Error
}
