package platforms

import "github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/domain"

type tiktok struct {
	cfg Config
}

func newTikTok() *tiktok {
	return &tiktok{cfg: Config{
		Platform:            domain.PlatformTikTok,
		DurationSeconds:     Range{Min: 15, Max: 60},
		HashtagCount:        Range{Min: 3, Max: 6},
		CaptionLength:       Range{Min: 50, Max: 150},
		AspectRatio:         "9:16",
		PeakHours:           []int{12, 19, 20, 21},
		AlgorithmPriorities: []string{"completion_rate", "rewatches", "shares", "comments"},
		FormatWeight:        0.20,
		HashtagWeight:       0.15,
		CaptionWeight:       0.10,
		VisualWeight:        0.25,
		HookWeight:          0.30,
	}}
}

func (t *tiktok) Config() Config { return t.cfg }

func (t *tiktok) AnalyzeContent(content domain.ContentFeatureSet) Analysis {
	return analyzeWith(t.cfg, content, t.AlgorithmTips())
}

func (t *tiktok) HookRecommendations() []OptimizationTip {
	return []OptimizationTip{
		{Category: "hook", Tip: "Open with the payoff or a pattern interrupt in the first 1.5 seconds", Impact: "high"},
		{Category: "hook", Tip: "Put a bold on-screen text hook over the first frame", Impact: "high"},
		{Category: "hook", Tip: "Tease the ending (\"wait for it\") to drive completion rate", Impact: "medium"},
	}
}

func (t *tiktok) HashtagStrategy() []OptimizationTip {
	return []OptimizationTip{
		{Category: "hashtags", Tip: "Mix 2-3 trending hashtags with 2-3 niche tags", Impact: "medium"},
		{Category: "hashtags", Tip: "Skip generic tags like #fyp; they add noise, not reach", Impact: "low"},
	}
}

func (t *tiktok) OptimalPostingTimes() []int { return t.cfg.PeakHours }

func (t *tiktok) FormatRecommendations() []OptimizationTip {
	return []OptimizationTip{
		{Category: "format", Tip: "Keep videos between 15 and 60 seconds; completion beats length", Impact: "high"},
		{Category: "format", Tip: "Shoot native 9:16 vertical; letterboxing kills reach", Impact: "high"},
		{Category: "format", Tip: "Cut every 2-3 seconds to hold attention", Impact: "medium"},
	}
}

func (t *tiktok) TrendingSounds() []TrendingElement {
	return []TrendingElement{
		{Type: "sound", Name: "trending audio under 50k uses", Note: "early adoption window"},
		{Type: "sound", Name: "sped-up remixes", Note: "strong with 18-24"},
		{Type: "format", Name: "voiceover storytime"},
	}
}

func (t *tiktok) CTARecommendations() []OptimizationTip {
	return []OptimizationTip{
		{Category: "cta", Tip: "Ask a question viewers can answer in one word to farm comments", Impact: "medium"},
		{Category: "cta", Tip: "\"Follow for part 2\" only when a part 2 actually exists", Impact: "medium"},
	}
}

func (t *tiktok) AlgorithmTips() []OptimizationTip {
	return []OptimizationTip{
		{Category: "algorithm", Tip: "Completion rate is the strongest ranking signal; front-load value", Impact: "high"},
		{Category: "algorithm", Tip: "Reply to early comments within the first hour to extend distribution", Impact: "medium"},
		{Category: "algorithm", Tip: "Rewatch loops (seamless endings) compound reach", Impact: "medium"},
	}
}
