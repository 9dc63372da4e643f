package platforms

import "github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/domain"

type pinterest struct {
	cfg Config
}

func newPinterest() *pinterest {
	return &pinterest{cfg: Config{
		Platform:            domain.PlatformPinterest,
		DurationSeconds:     Range{Min: 6, Max: 15},
		HashtagCount:        Range{Min: 2, Max: 5},
		CaptionLength:       Range{Min: 100, Max: 300},
		AspectRatio:         "2:3",
		PeakHours:           []int{14, 20, 21},
		AlgorithmPriorities: []string{"saves", "closeups", "outbound_clicks", "freshness"},
		FormatWeight:        0.15,
		HashtagWeight:       0.10,
		CaptionWeight:       0.20,
		VisualWeight:        0.35,
		HookWeight:          0.20,
	}}
}

func (p *pinterest) Config() Config { return p.cfg }

func (p *pinterest) AnalyzeContent(content domain.ContentFeatureSet) Analysis {
	return analyzeWith(p.cfg, content, p.AlgorithmTips())
}

func (p *pinterest) HookRecommendations() []OptimizationTip {
	return []OptimizationTip{
		{Category: "hook", Tip: "Text overlay stating the benefit; pins are scanned, not watched", Impact: "high"},
	}
}

func (p *pinterest) HashtagStrategy() []OptimizationTip {
	return []OptimizationTip{
		{Category: "hashtags", Tip: "Keyword-rich descriptions beat hashtags; treat it as search", Impact: "high"},
	}
}

func (p *pinterest) OptimalPostingTimes() []int { return p.cfg.PeakHours }

func (p *pinterest) FormatRecommendations() []OptimizationTip {
	return []OptimizationTip{
		{Category: "format", Tip: "2:3 vertical pins; anything wider loses grid space", Impact: "high"},
		{Category: "format", Tip: "Idea pins of 6-15 seconds per page retain best", Impact: "medium"},
	}
}

func (p *pinterest) TrendingSounds() []TrendingElement {
	return []TrendingElement{
		{Type: "format", Name: "seasonal mood boards", Note: "pin 30-45 days before the season"},
	}
}

func (p *pinterest) CTARecommendations() []OptimizationTip {
	return []OptimizationTip{
		{Category: "cta", Tip: "Pin-to-save framing; saves compound over months", Impact: "medium"},
	}
}

func (p *pinterest) AlgorithmTips() []OptimizationTip {
	return []OptimizationTip{
		{Category: "algorithm", Tip: "Pinterest is a search engine; front-load keywords in title and description", Impact: "high"},
		{Category: "algorithm", Tip: "Fresh pins outrank repins; schedule steadily", Impact: "medium"},
	}
}
