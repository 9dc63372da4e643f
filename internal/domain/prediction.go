package domain

import "time"

// EngagementPrediction holds predicted interaction counts with a
// symmetric prediction interval.
type EngagementPrediction struct {
	PredictedViews    int64   `json:"predicted_views"`
	PredictedLikes    int64   `json:"predicted_likes"`
	PredictedComments int64   `json:"predicted_comments"`
	PredictedShares   int64   `json:"predicted_shares"`
	EngagementRate    float64 `json:"engagement_rate"`

	ViewsLow  int64 `json:"views_low"`
	ViewsHigh int64 `json:"views_high"`

	Confidence float64  `json:"confidence"`
	Basis      string   `json:"basis"`
	Degraded   []string `json:"degraded,omitempty"`
	Reasoning  string   `json:"reasoning,omitempty"`
}

// ViralScore is the 0-100 virality estimate for one content item.
type ViralScore struct {
	Score           float64            `json:"score"`
	Probability     float64            `json:"probability"`
	ReachMultiplier float64            `json:"reach_multiplier"`
	PeakHoursAfter  int                `json:"peak_hours_after_post"`
	FactorBreakdown map[string]float64 `json:"factor_breakdown,omitempty"`
	Confidence      float64            `json:"confidence"`
	Basis           string             `json:"basis"`
	Degraded        []string           `json:"degraded,omitempty"`
	Reasoning       string             `json:"reasoning,omitempty"`
}

// AudienceFit scores brand/creator compatibility from sub-scores.
type AudienceFit struct {
	Score              float64  `json:"score"`
	DemographicMatch   float64  `json:"demographic_match"`
	InterestOverlap    float64  `json:"interest_overlap"`
	StyleCompatibility float64  `json:"style_compatibility"`
	SafetyScore        float64  `json:"safety_score"`
	AuthenticityScore  float64  `json:"authenticity_score"`
	Confidence         float64  `json:"confidence"`
	Basis              string   `json:"basis"`
	Degraded           []string `json:"degraded,omitempty"`
	Reasoning          string   `json:"reasoning,omitempty"`
}

// TimeSlot is one recommended posting slot.
type TimeSlot struct {
	Day   string  `json:"day"`
	Hour  int     `json:"hour"`
	Score float64 `json:"score"`
}

// OptimalTime is the posting-time recommendation set. Slots on the same
// day are always at least two hours apart.
type OptimalTime struct {
	Slots      []TimeSlot `json:"slots"`
	Confidence float64    `json:"confidence"`
	Basis      string     `json:"basis"`
	Reasoning  string     `json:"reasoning,omitempty"`
}

// ContentAnalysis aggregates the intermediate analysis handed to the
// recommendation engine.
type ContentAnalysis struct {
	Content  ContentFeatureSet  `json:"content"`
	Creator  *CreatorFeatureSet `json:"creator,omitempty"`
	Trends   TrendFeatureSet    `json:"trends"`
	Platform string             `json:"platform"`

	PlatformScore float64 `json:"platform_score"`
	PacingScore   float64 `json:"pacing_score"`
}

// PredictionResponse is the full prediction for one content item.
type PredictionResponse struct {
	PredictionID string `json:"prediction_id"`
	CreatorID    string `json:"creator_id,omitempty"`
	Platform     string `json:"platform"`
	ContentType  string `json:"content_type"`

	Engagement EngagementPrediction `json:"engagement"`
	Viral      ViralScore           `json:"viral"`
	Audience   AudienceFit          `json:"audience_fit"`
	Timing     OptimalTime          `json:"optimal_timing"`
	Analysis   ContentAnalysis      `json:"analysis"`

	OverallScore    float64   `json:"overall_score"`
	ConfidenceScore float64   `json:"confidence_score"`
	Degraded        []string  `json:"degraded,omitempty"`
	ModelVersion    string    `json:"model_version"`
	GeneratedAt     time.Time `json:"generated_at"`
}

// ComparisonEntry ranks one variant inside a compare request.
type ComparisonEntry struct {
	Label    string             `json:"label"`
	Rank     int                `json:"rank"`
	Response PredictionResponse `json:"prediction"`
}
