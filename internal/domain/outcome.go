package domain

import "time"

// OutcomeMetrics is one observed or predicted metric tuple.
type OutcomeMetrics struct {
	Views    int64 `json:"views"`
	Likes    int64 `json:"likes"`
	Comments int64 `json:"comments"`
	Shares   int64 `json:"shares"`
}

// PredictionOutcome links a stored prediction to its reported outcome.
// Created at prediction time, updated exactly once when the outcome
// arrives, never deleted.
type PredictionOutcome struct {
	PredictionID string `json:"prediction_id"`
	CreatorID    string `json:"creator_id"`
	Platform     string `json:"platform"`
	ContentType  string `json:"content_type"`

	Predicted OutcomeMetrics  `json:"predicted"`
	Actual    *OutcomeMetrics `json:"actual,omitempty"`

	ViewsAccuracy      float64 `json:"views_accuracy"`
	LikesAccuracy      float64 `json:"likes_accuracy"`
	EngagementAccuracy float64 `json:"engagement_accuracy"`

	PredictedAt time.Time  `json:"predicted_at"`
	ReportedAt  *time.Time `json:"reported_at,omitempty"`
}

// CreatorBaseline is the running mean of a creator's actual outcomes,
// updated incrementally each time an outcome arrives. Created lazily on
// the first outcome.
type CreatorBaseline struct {
	CreatorID          string    `json:"creator_id"`
	Platform           string    `json:"platform"`
	SampleCount        int64     `json:"sample_count"`
	MeanViews          float64   `json:"mean_views"`
	MeanLikes          float64   `json:"mean_likes"`
	MeanComments       float64   `json:"mean_comments"`
	MeanShares         float64   `json:"mean_shares"`
	MeanEngagementRate float64   `json:"mean_engagement_rate"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Observe folds one outcome into the running means (Welford-style
// online averaging: mean += (x - mean) / n).
func (b *CreatorBaseline) Observe(actual OutcomeMetrics, at time.Time) {
	b.SampleCount++
	n := float64(b.SampleCount)
	b.MeanViews += (float64(actual.Views) - b.MeanViews) / n
	b.MeanLikes += (float64(actual.Likes) - b.MeanLikes) / n
	b.MeanComments += (float64(actual.Comments) - b.MeanComments) / n
	b.MeanShares += (float64(actual.Shares) - b.MeanShares) / n
	rate := EngagementRate(actual.Views, actual.Likes, actual.Comments, actual.Shares)
	b.MeanEngagementRate += (rate - b.MeanEngagementRate) / n
	b.UpdatedAt = at
}

// PlatformBenchmark is an aggregate benchmark row per platform.
type PlatformBenchmark struct {
	Platform                 string    `json:"platform"`
	MedianViews              int64     `json:"median_views"`
	MedianEngagement         float64   `json:"median_engagement_rate"`
	ViralViewThreshold       int64     `json:"viral_view_threshold"`
	ViralEngagementThreshold float64   `json:"viral_engagement_threshold"`
	SampleCount              int64     `json:"sample_count"`
	UpdatedAt                time.Time `json:"updated_at"`
}

// RecommendationEffectiveness tracks how often recommendations of one
// category preceded an outcome that beat its prediction.
type RecommendationEffectiveness struct {
	Category    string    `json:"category"`
	Platform    string    `json:"platform"`
	IssuedCount int64     `json:"issued_count"`
	BeatCount   int64     `json:"beat_count"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ModelWeightChange is one append-only row recording a weight refit.
type ModelWeightChange struct {
	ChangeID    string    `json:"change_id"`
	Model       string    `json:"model"`
	Version     string    `json:"version"`
	Weights     []byte    `json:"weights"`
	SampleCount int64     `json:"sample_count"`
	TrainedAt   time.Time `json:"trained_at"`
}

// MetricAccuracy is 1 - relative error, clamped to [0,1].
func MetricAccuracy(predicted, actual int64) float64 {
	if actual <= 0 {
		if predicted <= 0 {
			return 1
		}
		return 0
	}
	diff := float64(predicted - actual)
	if diff < 0 {
		diff = -diff
	}
	return Clamp01(1 - diff/float64(actual))
}
