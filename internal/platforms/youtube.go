package platforms

import "github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/domain"

type youtube struct {
	cfg Config
}

func newYouTube() *youtube {
	return &youtube{cfg: Config{
		Platform:            domain.PlatformYouTube,
		DurationSeconds:     Range{Min: 30, Max: 60},
		HashtagCount:        Range{Min: 2, Max: 5},
		CaptionLength:       Range{Min: 100, Max: 500},
		AspectRatio:         "9:16",
		PeakHours:           []int{17, 18, 20},
		AlgorithmPriorities: []string{"watch_time", "click_through", "session_time"},
		FormatWeight:        0.25,
		HashtagWeight:       0.10,
		CaptionWeight:       0.20,
		VisualWeight:        0.25,
		HookWeight:          0.20,
	}}
}

func (y *youtube) Config() Config { return y.cfg }

func (y *youtube) AnalyzeContent(content domain.ContentFeatureSet) Analysis {
	return analyzeWith(y.cfg, content, y.AlgorithmTips())
}

func (y *youtube) HookRecommendations() []OptimizationTip {
	return []OptimizationTip{
		{Category: "hook", Tip: "Shorts need the premise stated in the first 2 seconds", Impact: "high"},
		{Category: "hook", Tip: "Match the title promise immediately; bait drops session time", Impact: "high"},
	}
}

func (y *youtube) HashtagStrategy() []OptimizationTip {
	return []OptimizationTip{
		{Category: "hashtags", Tip: "2-5 hashtags; the first three show above the title", Impact: "low"},
	}
}

func (y *youtube) OptimalPostingTimes() []int { return y.cfg.PeakHours }

func (y *youtube) FormatRecommendations() []OptimizationTip {
	return []OptimizationTip{
		{Category: "format", Tip: "Shorts: loopable 30-60s; long-form: chapters and a cold open", Impact: "high"},
		{Category: "format", Tip: "End Shorts where they started for seamless rewatch loops", Impact: "medium"},
	}
}

func (y *youtube) TrendingSounds() []TrendingElement {
	return []TrendingElement{
		{Type: "format", Name: "mini-documentary shorts"},
		{Type: "format", Name: "one-take explainer"},
	}
}

func (y *youtube) CTARecommendations() []OptimizationTip {
	return []OptimizationTip{
		{Category: "cta", Tip: "Verbal subscribe ask at the value peak, not the start", Impact: "medium"},
		{Category: "cta", Tip: "Pin a comment with the next-step link", Impact: "low"},
	}
}

func (y *youtube) AlgorithmTips() []OptimizationTip {
	return []OptimizationTip{
		{Category: "algorithm", Tip: "Watch time and CTR dominate; thumbnails earn the click, pacing keeps it", Impact: "high"},
		{Category: "algorithm", Tip: "Consistency of upload schedule feeds the recommendation engine", Impact: "medium"},
	}
}
