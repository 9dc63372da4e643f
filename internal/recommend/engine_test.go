package recommend

import (
	"math"
	"testing"
	"time"

	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/domain"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func strongImageAnalysis() domain.ContentAnalysis {
	return domain.ContentAnalysis{
		Platform: domain.PlatformInstagram,
		Content: domain.ContentFeatureSet{
			Platform:      domain.PlatformInstagram,
			ContentType:   domain.ContentTypeImage,
			HookStrength:  0.9,
			HasCTA:        true,
			CTAType:       "save",
			HashtagCount:  6,
			HasVisual:     true,
			VisualQuality: 0.9,
			CaptionLength: 120,
			QuestionCount: 1,
			Sentiment:     0.7,
		},
		Trends: domain.TrendFeatureSet{
			HashtagAlignment: domain.TrendAxis{Score: 0.5},
		},
		PacingScore: 1,
	}
}

func weakVideoAnalysis() domain.ContentAnalysis {
	return domain.ContentAnalysis{
		Platform: domain.PlatformTikTok,
		Content: domain.ContentFeatureSet{
			Platform:     domain.PlatformTikTok,
			ContentType:  domain.ContentTypeVideo,
			HookStrength: 0.2,
		},
		Trends:      domain.TrendFeatureSet{},
		PacingScore: 0.5,
	}
}

func TestGenerateAlwaysOnCategories(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	engine := NewEngine().WithClock(fixedClock(now))

	got := engine.Generate(strongImageAnalysis(), 60)
	if len(got.Recommendations) != 2 {
		t.Fatalf("strong image content should only get the always-on pair, got %d: %v",
			len(got.Recommendations), categories(got.Recommendations))
	}
	seen := map[string]bool{}
	for _, r := range got.Recommendations {
		seen[r.Category] = true
	}
	if !seen[domain.RecommendationCategoryCaption] || !seen[domain.RecommendationCategoryTiming] {
		t.Fatalf("caption and timing are always on, got %v", categories(got.Recommendations))
	}
	if seen[domain.RecommendationCategoryAudio] {
		t.Fatal("audio only applies to video content")
	}
	if !got.GeneratedAt.Equal(now) {
		t.Fatalf("generated_at = %v, want %v", got.GeneratedAt, now)
	}

	// Two 0.08-impact items with diminishing returns.
	want := 60 + 0.7*(8+8*0.9)
	if math.Abs(got.PotentialScore-want) > 1e-9 {
		t.Fatalf("potential score = %v, want %v", got.PotentialScore, want)
	}
}

func TestGenerateWeakVideo(t *testing.T) {
	t.Parallel()
	engine := NewEngine()
	got := engine.Generate(weakVideoAnalysis(), 40)

	cats := categories(got.Recommendations)
	wantCats := []string{"hook", "cta", "hashtags", "pacing", "caption", "timing", "audio"}
	if len(cats) != len(wantCats) {
		t.Fatalf("expected %d recommendations, got %v", len(wantCats), cats)
	}
	if cats[0] != domain.RecommendationCategoryHook {
		t.Fatalf("critical hook must sort first, got %v", cats)
	}
	for i := 1; i < len(got.Recommendations); i++ {
		wi := domain.PriorityWeight(got.Recommendations[i].Priority)
		wj := domain.PriorityWeight(got.Recommendations[i-1].Priority)
		if wi > wj {
			t.Fatalf("recommendations not sorted by priority: %v", cats)
		}
	}

	if len(got.QuickWins) != 2 {
		t.Fatalf("expected cta and hashtags as quick wins, got %v", categories(got.QuickWins))
	}
	for _, r := range got.QuickWins {
		if r.Difficulty != domain.DifficultyEasy || r.ExpectedImpact < 0.10 {
			t.Fatalf("quick win must be easy with impact >= 0.10: %+v", r)
		}
	}

	if len(got.HighImpact) != 3 {
		t.Fatalf("high impact is capped at 3, got %d", len(got.HighImpact))
	}
	if got.HighImpact[0].Category != domain.RecommendationCategoryHook {
		t.Fatalf("hook carries the largest impact, got %v", categories(got.HighImpact))
	}

	total := 0
	for _, r := range got.Recommendations {
		total += r.TotalTimeMin
	}
	if got.TotalTimeMin != total {
		t.Fatalf("total time %d does not match the sum %d", got.TotalTimeMin, total)
	}
}

func TestPotentialScoreCaps(t *testing.T) {
	t.Parallel()
	recs := []domain.DetailedRecommendation{
		{ExpectedImpact: 0.5}, {ExpectedImpact: 0.5}, {ExpectedImpact: 0.5},
	}
	if got := PotentialScore(95, recs); got != 100 {
		t.Fatalf("potential score must clamp at 100, got %v", got)
	}
	if got := PotentialScore(50, nil); got != 50 {
		t.Fatalf("no recommendations means no gain, got %v", got)
	}
}

func TestPlatformNotesFiltered(t *testing.T) {
	t.Parallel()
	engine := NewEngine()
	got := engine.Generate(weakVideoAnalysis(), 40)
	for _, r := range got.Recommendations {
		for platform := range r.PlatformNotes {
			if platform != domain.PlatformTikTok {
				t.Fatalf("notes must be filtered to the request platform, found %q", platform)
			}
		}
	}
}

func categories(recs []domain.DetailedRecommendation) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Category)
	}
	return out
}
