package domain

// ContentFeatureSet is the fused feature view of a single content item.
// Computed per prediction request; it has no persistent identity.
type ContentFeatureSet struct {
	// Visual features, only meaningful when content bytes were supplied.
	VisualQuality   float64 `json:"visual_quality"`
	ResolutionScore float64 `json:"resolution_score"`
	AspectScore     float64 `json:"aspect_score"`
	BrightnessScore float64 `json:"brightness_score"`
	ContrastScore   float64 `json:"contrast_score"`
	HasVisual       bool    `json:"has_visual"`

	// Text metrics.
	CaptionLength    int     `json:"caption_length"`
	WordCount        int     `json:"word_count"`
	HashtagCount     int     `json:"hashtag_count"`
	MentionCount     int     `json:"mention_count"`
	EmojiCount       int     `json:"emoji_count"`
	QuestionCount    int     `json:"question_count"`
	ExclamationCount int     `json:"exclamation_count"`
	HasCTA           bool    `json:"has_cta"`
	CTAType          string  `json:"cta_type,omitempty"`
	ReadingTimeMin   float64 `json:"reading_time_minutes"`

	// Structural metrics.
	HookStrength    float64 `json:"hook_strength"`
	DurationSeconds float64 `json:"duration_seconds"`

	// Hashtag metrics.
	HashtagDiversity float64 `json:"hashtag_diversity"`
	TrendingRatio    float64 `json:"trending_ratio"`
	NicheRatio       float64 `json:"niche_ratio"`

	Sentiment   float64 `json:"sentiment"`
	Platform    string  `json:"platform"`
	ContentType string  `json:"content_type"`

	// MediaUnavailable is set when the item's media could not be
	// retrieved at all; the visual features above are then absent and
	// confidence is capped at its base.
	MediaUnavailable bool `json:"media_unavailable,omitempty"`

	// Degraded lists the sub-extractions that fell back to defaults
	// instead of erroring (e.g. an undecodable image).
	Degraded []string `json:"degraded,omitempty"`
}
