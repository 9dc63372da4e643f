package postgres

import (
	"time"

	"github.com/google/uuid"
)

type predictionOutcomeModel struct {
	PredictionID       string     `gorm:"column:prediction_id;primaryKey"`
	CreatorID          string     `gorm:"column:creator_id"`
	Platform           string     `gorm:"column:platform"`
	ContentType        string     `gorm:"column:content_type"`
	PredictedViews     int64      `gorm:"column:predicted_views"`
	PredictedLikes     int64      `gorm:"column:predicted_likes"`
	PredictedComments  int64      `gorm:"column:predicted_comments"`
	PredictedShares    int64      `gorm:"column:predicted_shares"`
	ActualViews        *int64     `gorm:"column:actual_views"`
	ActualLikes        *int64     `gorm:"column:actual_likes"`
	ActualComments     *int64     `gorm:"column:actual_comments"`
	ActualShares       *int64     `gorm:"column:actual_shares"`
	ViewsAccuracy      float64    `gorm:"column:views_accuracy"`
	LikesAccuracy      float64    `gorm:"column:likes_accuracy"`
	EngagementAccuracy float64    `gorm:"column:engagement_accuracy"`
	PredictedAt        time.Time  `gorm:"column:predicted_at"`
	ReportedAt         *time.Time `gorm:"column:reported_at"`
}

func (predictionOutcomeModel) TableName() string { return "prediction_outcomes" }

type creatorBaselineModel struct {
	CreatorID          string    `gorm:"column:creator_id;primaryKey"`
	Platform           string    `gorm:"column:platform;primaryKey"`
	SampleCount        int64     `gorm:"column:sample_count"`
	MeanViews          float64   `gorm:"column:mean_views"`
	MeanLikes          float64   `gorm:"column:mean_likes"`
	MeanComments       float64   `gorm:"column:mean_comments"`
	MeanShares         float64   `gorm:"column:mean_shares"`
	MeanEngagementRate float64   `gorm:"column:mean_engagement_rate"`
	UpdatedAt          time.Time `gorm:"column:updated_at"`
}

func (creatorBaselineModel) TableName() string { return "creator_baselines" }

type platformBenchmarkModel struct {
	Platform                 string    `gorm:"column:platform;primaryKey"`
	MedianViews              int64     `gorm:"column:median_views"`
	MedianEngagement         float64   `gorm:"column:median_engagement_rate"`
	ViralViewThreshold       int64     `gorm:"column:viral_view_threshold"`
	ViralEngagementThreshold float64   `gorm:"column:viral_engagement_threshold"`
	SampleCount              int64     `gorm:"column:sample_count"`
	UpdatedAt                time.Time `gorm:"column:updated_at"`
}

func (platformBenchmarkModel) TableName() string { return "platform_benchmarks" }

type recommendationEffectivenessModel struct {
	Category    string    `gorm:"column:category;primaryKey"`
	Platform    string    `gorm:"column:platform;primaryKey"`
	IssuedCount int64     `gorm:"column:issued_count"`
	BeatCount   int64     `gorm:"column:beat_count"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (recommendationEffectivenessModel) TableName() string { return "recommendation_effectiveness" }

type modelWeightHistoryModel struct {
	ChangeID    uuid.UUID `gorm:"column:change_id;type:uuid;default:gen_random_uuid();primaryKey"`
	Model       string    `gorm:"column:model"`
	Version     string    `gorm:"column:version"`
	Weights     string    `gorm:"column:weights"`
	SampleCount int64     `gorm:"column:sample_count"`
	TrainedAt   time.Time `gorm:"column:trained_at"`
}

func (modelWeightHistoryModel) TableName() string { return "model_weight_history" }

type predictionOutboxModel struct {
	OutboxID     uuid.UUID  `gorm:"column:outbox_id;type:uuid;default:gen_random_uuid();primaryKey"`
	EventType    string     `gorm:"column:event_type"`
	PartitionKey string     `gorm:"column:partition_key"`
	Payload      string     `gorm:"column:payload"`
	RetryCount   int        `gorm:"column:retry_count"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	PublishedAt  *time.Time `gorm:"column:published_at"`
	LastErrorAt  *time.Time `gorm:"column:last_error_at"`
}

func (predictionOutboxModel) TableName() string { return "prediction_outbox" }

type predictionIdempotencyModel struct {
	IdempotencyKey string    `gorm:"column:idempotency_key;primaryKey"`
	RequestHash    string    `gorm:"column:request_hash"`
	Status         string    `gorm:"column:status"`
	ResponseCode   int       `gorm:"column:response_code"`
	ResponseBody   *string   `gorm:"column:response_body"`
	ExpiresAt      time.Time `gorm:"column:expires_at"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (predictionIdempotencyModel) TableName() string { return "prediction_idempotency" }
