package platforms

import "github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/domain"

type instagram struct {
	cfg Config
}

func newInstagram() *instagram {
	return &instagram{cfg: Config{
		Platform:            domain.PlatformInstagram,
		DurationSeconds:     Range{Min: 15, Max: 90},
		HashtagCount:        Range{Min: 3, Max: 8},
		CaptionLength:       Range{Min: 70, Max: 220},
		AspectRatio:         "9:16",
		PeakHours:           []int{11, 12, 19},
		AlgorithmPriorities: []string{"saves", "shares", "watch_time", "likes"},
		FormatWeight:        0.20,
		HashtagWeight:       0.15,
		CaptionWeight:       0.15,
		VisualWeight:        0.30,
		HookWeight:          0.20,
	}}
}

func (i *instagram) Config() Config { return i.cfg }

func (i *instagram) AnalyzeContent(content domain.ContentFeatureSet) Analysis {
	return analyzeWith(i.cfg, content, i.AlgorithmTips())
}

func (i *instagram) HookRecommendations() []OptimizationTip {
	return []OptimizationTip{
		{Category: "hook", Tip: "Lead Reels with motion or a face; static first frames underperform", Impact: "high"},
		{Category: "hook", Tip: "Use the first caption line as a curiosity gap; the fold cuts the rest", Impact: "medium"},
	}
}

func (i *instagram) HashtagStrategy() []OptimizationTip {
	return []OptimizationTip{
		{Category: "hashtags", Tip: "3-8 targeted hashtags outperform tag walls", Impact: "medium"},
		{Category: "hashtags", Tip: "Put hashtags in the caption, not the first comment", Impact: "low"},
	}
}

func (i *instagram) OptimalPostingTimes() []int { return i.cfg.PeakHours }

func (i *instagram) FormatRecommendations() []OptimizationTip {
	return []OptimizationTip{
		{Category: "format", Tip: "Reels up to 90 seconds; carousels for saveable step-by-step value", Impact: "high"},
		{Category: "format", Tip: "Design for sound-off viewing with captions burned in", Impact: "medium"},
	}
}

func (i *instagram) TrendingSounds() []TrendingElement {
	return []TrendingElement{
		{Type: "sound", Name: "reels trending audio", Note: "check the arrow icon for rising sounds"},
		{Type: "format", Name: "photo-dump carousel"},
	}
}

func (i *instagram) CTARecommendations() []OptimizationTip {
	return []OptimizationTip{
		{Category: "cta", Tip: "\"Save this for later\" drives the save signal the algorithm favors", Impact: "high"},
		{Category: "cta", Tip: "\"Send this to someone who...\" drives DM shares", Impact: "medium"},
	}
}

func (i *instagram) AlgorithmTips() []OptimizationTip {
	return []OptimizationTip{
		{Category: "algorithm", Tip: "Saves and shares outweigh likes; build saveable content", Impact: "high"},
		{Category: "algorithm", Tip: "Post when your audience is online, then engage for 30 minutes", Impact: "medium"},
	}
}
