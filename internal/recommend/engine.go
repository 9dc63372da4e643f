package recommend

import (
	"math"
	"sort"
	"time"

	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/domain"
	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/platforms"
)

// Weakness thresholds: a category recommendation fires when its score
// crosses the documented bar. Caption and timing (and audio for video)
// are always included.
const (
	hookThreshold       = 0.7
	visualThreshold     = 0.8
	pacingThreshold     = 0.7
	minHashtags         = 5
	trendAlignThreshold = 0.3
)

// Engine turns a content analysis into prioritized, time-estimated
// action items backed by the category templates.
type Engine struct {
	nowFn func() time.Time
}

func NewEngine() *Engine {
	return &Engine{nowFn: func() time.Time { return time.Now().UTC() }}
}

func (e *Engine) WithClock(nowFn func() time.Time) *Engine {
	e.nowFn = nowFn
	return e
}

// Generate evaluates the weakness rules and assembles the response.
// currentScore is the 0-100 platform score the recommendations start from.
func (e *Engine) Generate(analysis domain.ContentAnalysis, currentScore float64) domain.DetailedRecommendationResponse {
	optimizer := platforms.ForPlatform(analysis.Platform)
	content := analysis.Content

	var recs []domain.DetailedRecommendation
	if content.HookStrength < hookThreshold {
		recs = append(recs, e.build(domain.RecommendationCategoryHook, content.HookStrength, analysis))
	}
	if !content.HasCTA {
		recs = append(recs, e.build(domain.RecommendationCategoryCTA, 0, analysis))
	}
	if content.HashtagCount < minHashtags || analysis.Trends.HashtagAlignment.Score < trendAlignThreshold {
		recs = append(recs, e.build(domain.RecommendationCategoryHashtags, analysis.Trends.HashtagAlignment.Score, analysis))
	}
	if content.HasVisual && content.VisualQuality < visualThreshold {
		recs = append(recs, e.build(domain.RecommendationCategoryVisual, content.VisualQuality, analysis))
	}
	if analysis.PacingScore < pacingThreshold && content.ContentType == domain.ContentTypeVideo {
		recs = append(recs, e.build(domain.RecommendationCategoryPacing, analysis.PacingScore, analysis))
	}
	if content.ContentType == domain.ContentTypeVideo && content.DurationSeconds > 0 {
		if band := optimizer.Config().DurationSeconds; !band.Contains(content.DurationSeconds) {
			recs = append(recs, e.build(domain.RecommendationCategoryFormat, band.Score(content.DurationSeconds), analysis))
		}
	}

	// Always-on categories.
	recs = append(recs, e.build(domain.RecommendationCategoryCaption, captionScore(content), analysis))
	recs = append(recs, e.build(domain.RecommendationCategoryTiming, 0.5, analysis))
	if content.ContentType == domain.ContentTypeVideo {
		recs = append(recs, e.build(domain.RecommendationCategoryAudio, analysis.Trends.SoundAlignment.Score, analysis))
	}

	sort.SliceStable(recs, func(i, j int) bool {
		wi, wj := domain.PriorityWeight(recs[i].Priority), domain.PriorityWeight(recs[j].Priority)
		if wi != wj {
			return wi > wj
		}
		return recs[i].ExpectedImpact > recs[j].ExpectedImpact
	})

	total := 0
	for _, r := range recs {
		total += r.TotalTimeMin
	}

	return domain.DetailedRecommendationResponse{
		Recommendations: recs,
		QuickWins:       quickWins(recs),
		HighImpact:      highImpact(recs),
		CurrentScore:    domain.Clamp100(currentScore),
		PotentialScore:  PotentialScore(currentScore, recs),
		TotalTimeMin:    total,
		GeneratedAt:     e.nowFn(),
	}
}

func (e *Engine) build(category string, currentScore float64, analysis domain.ContentAnalysis) domain.DetailedRecommendation {
	tpl := categoryTemplates[category]
	total := 0
	for _, s := range tpl.Steps {
		total += s.TimeMinutes
	}
	rec := domain.DetailedRecommendation{
		Category:        tpl.Category,
		Priority:        tpl.Priority,
		Title:           tpl.Title,
		Rationale:       tpl.Rationale,
		CurrentScore:    domain.Clamp01(currentScore),
		TargetScore:     tpl.TargetScore,
		ExpectedImpact:  tpl.Impact,
		Difficulty:      tpl.Difficulty,
		Steps:           tpl.Steps,
		Templates:       tpl.Templates,
		AffectedMetrics: tpl.AffectedMetrics,
		TotalTimeMin:    total,
	}
	if note, ok := tpl.PlatformNotes[analysis.Platform]; ok {
		rec.PlatformNotes = map[string]string{analysis.Platform: note}
	}
	return rec
}

// PotentialScore applies diminishing returns down the sorted list:
// current + 0.7 * sum(impact_i * 100 * 0.9^i), capped at 100.
func PotentialScore(current float64, recs []domain.DetailedRecommendation) float64 {
	var gain float64
	for i, r := range recs {
		gain += r.ExpectedImpact * 100 * math.Pow(0.9, float64(i))
	}
	return domain.Clamp100(current + 0.7*gain)
}

// quickWins: easy-difficulty items with impact >= 0.10, top 3.
func quickWins(recs []domain.DetailedRecommendation) []domain.DetailedRecommendation {
	var out []domain.DetailedRecommendation
	for _, r := range recs {
		if r.Difficulty == domain.DifficultyEasy && r.ExpectedImpact >= 0.10 {
			out = append(out, r)
			if len(out) == 3 {
				break
			}
		}
	}
	return out
}

// highImpact: top 3 by raw impact regardless of difficulty.
func highImpact(recs []domain.DetailedRecommendation) []domain.DetailedRecommendation {
	sorted := make([]domain.DetailedRecommendation, len(recs))
	copy(sorted, recs)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ExpectedImpact > sorted[j].ExpectedImpact })
	if len(sorted) > 3 {
		sorted = sorted[:3]
	}
	return sorted
}

// captionScore folds caption signals into one 0-1 number for the
// always-on caption recommendation's current-score field.
func captionScore(content domain.ContentFeatureSet) float64 {
	score := 0.3
	if content.CaptionLength >= 50 && content.CaptionLength <= 300 {
		score += 0.3
	}
	if content.QuestionCount > 0 {
		score += 0.2
	}
	if content.EmojiCount > 0 {
		score += 0.1
	}
	if content.Sentiment > 0.5 {
		score += 0.1
	}
	return domain.Clamp01(score)
}
