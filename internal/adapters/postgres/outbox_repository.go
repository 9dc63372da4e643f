package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/ports"
	"gorm.io/gorm"
)

type outboxRepository struct {
	db *gorm.DB
}

func (r *outboxRepository) Enqueue(ctx context.Context, event ports.OutboxEvent) error {
	rec := predictionOutboxModel{
		OutboxID:     uuid.New(),
		EventType:    event.EventType,
		PartitionKey: event.PartitionKey,
		Payload:      string(event.Payload),
		CreatedAt:    time.Now().UTC(),
	}
	return r.db.WithContext(ctx).Create(&rec).Error
}

func (r *outboxRepository) FetchUnpublished(ctx context.Context, limit int) ([]ports.OutboxRecord, error) {
	var rows []predictionOutboxModel
	if err := r.db.WithContext(ctx).
		Where("published_at IS NULL").
		Order("created_at asc").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]ports.OutboxRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, ports.OutboxRecord{
			ID:           row.OutboxID.String(),
			EventType:    row.EventType,
			Payload:      []byte(row.Payload),
			PartitionKey: row.PartitionKey,
			CreatedAt:    row.CreatedAt,
			Attempts:     row.RetryCount,
		})
	}
	return out, nil
}

func (r *outboxRepository) MarkPublished(ctx context.Context, id string, at time.Time) error {
	return r.db.WithContext(ctx).Model(&predictionOutboxModel{}).
		Where("outbox_id = ?", id).
		Update("published_at", at).Error
}

func (r *outboxRepository) MarkFailed(ctx context.Context, id string, at time.Time) error {
	return r.db.WithContext(ctx).Model(&predictionOutboxModel{}).
		Where("outbox_id = ?", id).
		Updates(map[string]any{
			"retry_count":   gorm.Expr("retry_count + 1"),
			"last_error_at": at,
		}).Error
}
