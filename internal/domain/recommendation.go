package domain

import "time"

const (
	RecommendationCategoryHook     = "hook"
	RecommendationCategoryCaption  = "caption"
	RecommendationCategoryHashtags = "hashtags"
	RecommendationCategoryAudio    = "audio"
	RecommendationCategoryTiming   = "timing"
	RecommendationCategoryFormat   = "format"
	RecommendationCategoryVisual   = "visual"
	RecommendationCategoryCTA      = "cta"
	RecommendationCategoryTrending = "trending"
	RecommendationCategoryPacing   = "pacing"
)

const (
	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityMedium   = "medium"
	PriorityLow      = "low"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// ActionStep is one ordered step inside a recommendation.
type ActionStep struct {
	Step        int    `json:"step"`
	Action      string `json:"action"`
	Details     string `json:"details,omitempty"`
	TimeMinutes int    `json:"time_minutes"`
}

// Template is a reusable example backing a recommendation.
type Template struct {
	Name         string `json:"name"`
	Example      string `json:"example"`
	PlatformNote string `json:"platform_note,omitempty"`
}

// DetailedRecommendation is one prioritized, time-estimated action item.
type DetailedRecommendation struct {
	Category        string            `json:"category"`
	Priority        string            `json:"priority"`
	Title           string            `json:"title"`
	Rationale       string            `json:"rationale"`
	CurrentScore    float64           `json:"current_score"`
	TargetScore     float64           `json:"target_score"`
	ExpectedImpact  float64           `json:"expected_impact"`
	Difficulty      string            `json:"difficulty"`
	Steps           []ActionStep      `json:"steps"`
	Templates       []Template        `json:"templates,omitempty"`
	PlatformNotes   map[string]string `json:"platform_notes,omitempty"`
	AffectedMetrics []string          `json:"affected_metrics,omitempty"`
	TotalTimeMin    int               `json:"total_time_minutes"`
}

// DetailedRecommendationResponse is the recommendation engine output.
type DetailedRecommendationResponse struct {
	Recommendations []DetailedRecommendation `json:"recommendations"`
	QuickWins       []DetailedRecommendation `json:"quick_wins"`
	HighImpact      []DetailedRecommendation `json:"high_impact"`
	CurrentScore    float64                  `json:"current_score"`
	PotentialScore  float64                  `json:"potential_score"`
	TotalTimeMin    int                      `json:"total_time_minutes"`
	GeneratedAt     time.Time                `json:"generated_at"`
}

// PriorityWeight orders priorities for sorting, higher first.
func PriorityWeight(priority string) int {
	switch priority {
	case PriorityCritical:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}
