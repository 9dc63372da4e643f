package platforms

import (
	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/domain"
)

// Range is an inclusive optimum band for a numeric content property.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

// Score is 1.0 inside the band and decays linearly with relative
// distance outside it.
func (r Range) Score(v float64) float64 {
	if r.Contains(v) {
		return 1
	}
	span := r.Max - r.Min
	if span <= 0 {
		span = 1
	}
	var distance float64
	if v < r.Min {
		distance = r.Min - v
	} else {
		distance = v - r.Max
	}
	return domain.Clamp01(1 - distance/span)
}

// Config is one platform's static best-practice table.
type Config struct {
	Platform            string   `json:"platform"`
	DurationSeconds     Range    `json:"duration_seconds"`
	HashtagCount        Range    `json:"hashtag_count"`
	CaptionLength       Range    `json:"caption_length"`
	AspectRatio         string   `json:"aspect_ratio"`
	PeakHours           []int    `json:"peak_hours"`
	AlgorithmPriorities []string `json:"algorithm_priorities"`

	// Sub-score weights for AnalyzeContent; each table sums to 1.
	FormatWeight  float64 `json:"-"`
	HashtagWeight float64 `json:"-"`
	CaptionWeight float64 `json:"-"`
	VisualWeight  float64 `json:"-"`
	HookWeight    float64 `json:"-"`
}

// OptimizationTip is one hand-authored best-practice item.
type OptimizationTip struct {
	Category string `json:"category"`
	Tip      string `json:"tip"`
	Impact   string `json:"impact"`
}

// TrendingElement names a currently favored sound/format/feature.
type TrendingElement struct {
	Type string `json:"type"`
	Name string `json:"name"`
	Note string `json:"note,omitempty"`
}

// Analysis is the per-platform content check result.
type Analysis struct {
	Platform   string             `json:"platform"`
	Score      float64            `json:"score"`
	SubScores  map[string]float64 `json:"sub_scores"`
	Strengths  []string           `json:"strengths"`
	Weaknesses []string           `json:"weaknesses"`
	Tips       []OptimizationTip  `json:"tips"`
}

// Optimizer is the per-platform strategy interface consumed by the
// recommendation engine.
type Optimizer interface {
	Config() Config
	AnalyzeContent(content domain.ContentFeatureSet) Analysis
	HookRecommendations() []OptimizationTip
	HashtagStrategy() []OptimizationTip
	OptimalPostingTimes() []int
	FormatRecommendations() []OptimizationTip
	TrendingSounds() []TrendingElement
	CTARecommendations() []OptimizationTip
	AlgorithmTips() []OptimizationTip
}

var registry = map[string]Optimizer{
	domain.PlatformTikTok:    newTikTok(),
	domain.PlatformInstagram: newInstagram(),
	domain.PlatformYouTube:   newYouTube(),
	domain.PlatformFacebook:  newFacebook(),
	domain.PlatformPinterest: newPinterest(),
}

// ForPlatform returns the optimizer for a platform tag; unknown tags
// resolve through NormalizePlatform.
func ForPlatform(platform string) Optimizer {
	return registry[domain.NormalizePlatform(platform)]
}

// Supported lists the registered platform tags.
func Supported() []string {
	out := make([]string, 0, len(registry))
	for p := range registry {
		out = append(out, p)
	}
	return out
}

// analyzeWith computes the weighted platform score shared by all
// concrete optimizers; only the weights and tips differ per platform.
func analyzeWith(cfg Config, content domain.ContentFeatureSet, tips []OptimizationTip) Analysis {
	sub := map[string]float64{
		"format":  formatScore(cfg, content),
		"hashtag": cfg.HashtagCount.Score(float64(content.HashtagCount)),
		"caption": cfg.CaptionLength.Score(float64(content.CaptionLength)),
		"visual":  visualScore(content),
		"hook":    content.HookStrength,
	}
	score := domain.Clamp100(100 * (cfg.FormatWeight*sub["format"] +
		cfg.HashtagWeight*sub["hashtag"] +
		cfg.CaptionWeight*sub["caption"] +
		cfg.VisualWeight*sub["visual"] +
		cfg.HookWeight*sub["hook"]))

	var strengths, weaknesses []string
	for _, name := range []string{"format", "hashtag", "caption", "visual", "hook"} {
		switch {
		case sub[name] >= 0.8:
			strengths = append(strengths, name)
		case sub[name] < 0.5:
			weaknesses = append(weaknesses, name)
		}
	}
	return Analysis{
		Platform:   cfg.Platform,
		Score:      score,
		SubScores:  sub,
		Strengths:  strengths,
		Weaknesses: weaknesses,
		Tips:       tips,
	}
}

func formatScore(cfg Config, content domain.ContentFeatureSet) float64 {
	if content.ContentType != domain.ContentTypeVideo || content.DurationSeconds <= 0 {
		return 0.7
	}
	return cfg.DurationSeconds.Score(content.DurationSeconds)
}

func visualScore(content domain.ContentFeatureSet) float64 {
	if !content.HasVisual {
		return 0.6
	}
	return content.VisualQuality
}
