package ports

import (
	"context"
	"time"
)

const (
	EventPredictionGenerated = "prediction.generated"
	EventOutcomeRecorded     = "prediction.outcome_recorded"
	EventTrendsUpdated       = "trends.updated"
)

type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload []byte, partitionKey string) error
	Close() error
}

type OutboxEvent struct {
	EventType    string
	Payload      []byte
	PartitionKey string
}

type OutboxRecord struct {
	ID           string
	EventType    string
	Payload      []byte
	PartitionKey string
	CreatedAt    time.Time
	Attempts     int
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, event OutboxEvent) error
	FetchUnpublished(ctx context.Context, limit int) ([]OutboxRecord, error)
	MarkPublished(ctx context.Context, id string, at time.Time) error
	MarkFailed(ctx context.Context, id string, at time.Time) error
}
