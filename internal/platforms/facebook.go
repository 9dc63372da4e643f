package platforms

import "github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/domain"

type facebook struct {
	cfg Config
}

func newFacebook() *facebook {
	return &facebook{cfg: Config{
		Platform:            domain.PlatformFacebook,
		DurationSeconds:     Range{Min: 30, Max: 120},
		HashtagCount:        Range{Min: 0, Max: 3},
		CaptionLength:       Range{Min: 40, Max: 250},
		AspectRatio:         "1:1",
		PeakHours:           []int{9, 13, 15},
		AlgorithmPriorities: []string{"meaningful_interactions", "shares", "comments"},
		FormatWeight:        0.20,
		HashtagWeight:       0.05,
		CaptionWeight:       0.25,
		VisualWeight:        0.25,
		HookWeight:          0.25,
	}}
}

func (f *facebook) Config() Config { return f.cfg }

func (f *facebook) AnalyzeContent(content domain.ContentFeatureSet) Analysis {
	return analyzeWith(f.cfg, content, f.AlgorithmTips())
}

func (f *facebook) HookRecommendations() []OptimizationTip {
	return []OptimizationTip{
		{Category: "hook", Tip: "Open with a relatable statement; FB audiences reward familiarity", Impact: "medium"},
		{Category: "hook", Tip: "Square video with captions wins the silent autoplay feed", Impact: "high"},
	}
}

func (f *facebook) HashtagStrategy() []OptimizationTip {
	return []OptimizationTip{
		{Category: "hashtags", Tip: "Hashtags carry little weight; 0-3 at most", Impact: "low"},
	}
}

func (f *facebook) OptimalPostingTimes() []int { return f.cfg.PeakHours }

func (f *facebook) FormatRecommendations() []OptimizationTip {
	return []OptimizationTip{
		{Category: "format", Tip: "Native uploads over links; the feed downranks outbound links", Impact: "high"},
		{Category: "format", Tip: "1:1 or 4:5 video takes the most feed real estate", Impact: "medium"},
	}
}

func (f *facebook) TrendingSounds() []TrendingElement {
	return []TrendingElement{
		{Type: "format", Name: "reshare-bait question posts"},
	}
}

func (f *facebook) CTARecommendations() []OptimizationTip {
	return []OptimizationTip{
		{Category: "cta", Tip: "Conversation starters beat hard CTAs under meaningful-interaction ranking", Impact: "medium"},
	}
}

func (f *facebook) AlgorithmTips() []OptimizationTip {
	return []OptimizationTip{
		{Category: "algorithm", Tip: "Comment threads between real people weigh most; ask debatable questions", Impact: "high"},
		{Category: "algorithm", Tip: "Group distribution often outperforms page reach", Impact: "medium"},
	}
}
