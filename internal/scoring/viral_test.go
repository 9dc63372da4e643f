package scoring

import (
	"math"
	"testing"

	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/domain"
)

func TestCalculateFromEngagement(t *testing.T) {
	t.Parallel()
	scorer := NewViralScorer("")
	got := scorer.CalculateFromEngagement(1_000_000, 100_000, 5_000, 5_000, "tiktok")

	// views 1.0, engagement min(0.11/0.15, 1), shares min(0.5, 1).
	engagementScore := (110_000.0 / 1_000_000.0) / 0.15
	want := (1.0*0.40 + engagementScore*0.35 + 0.5*0.25) * 100
	if math.Abs(got.Score-want) > 1e-6 {
		t.Fatalf("score = %v, want %v", got.Score, want)
	}
	if math.Abs(got.Probability-math.Pow(want/100, 1.5)) > 1e-6 {
		t.Fatalf("probability = %v", got.Probability)
	}
	if math.Abs(got.ReachMultiplier-(1+want/25)) > 1e-6 {
		t.Fatalf("reach multiplier = %v", got.ReachMultiplier)
	}
	if got.PeakHoursAfter != 12 {
		t.Fatalf("tiktok peak window should be 12h, got %d", got.PeakHoursAfter)
	}
	if got.Basis != domain.BasisHeuristic || got.Confidence != 0.9 {
		t.Fatalf("observed-metrics scoring is heuristic at 0.9 confidence: %+v", got)
	}
}

func TestCalculateFromEngagementZeroViews(t *testing.T) {
	t.Parallel()
	scorer := NewViralScorer("")
	got := scorer.CalculateFromEngagement(0, 0, 0, 0, "instagram")
	if got.Score != 0 {
		t.Fatalf("no activity should score 0, got %v", got.Score)
	}
	if got.Probability != 0 {
		t.Fatalf("probability should be 0, got %v", got.Probability)
	}
}

func TestViralScoreBounds(t *testing.T) {
	t.Parallel()
	scorer := NewViralScorer("")
	content := domain.ContentFeatureSet{
		Platform:      domain.PlatformTikTok,
		ContentType:   domain.ContentTypeVideo,
		HookStrength:  1,
		VisualQuality: 1,
		EmojiCount:    2,
		CTAType:       "share",
		HasCTA:        true,
	}
	trends := domain.TrendFeatureSet{OverallScore: 1, TimingScore: 0.9}
	creator := &domain.CreatorFeatureSet{
		FollowerCount:    10_000_000,
		HistoricalPosts:  20,
		ConsistencyScore: 0.9,
	}
	engagement := domain.EngagementPrediction{PredictedViews: 1_000_000, PredictedShares: 50_000}

	got := scorer.Score(content, creator, trends, engagement)
	if got.Score < 0 || got.Score > 100 {
		t.Fatalf("score out of range: %v", got.Score)
	}
	if got.Score < 70 {
		t.Fatalf("everything maxed should land in the high band, got %v", got.Score)
	}
	if got.Probability < 0 || got.Probability > 1 {
		t.Fatalf("probability out of range: %v", got.Probability)
	}
	if got.Basis != domain.BasisHeuristic {
		t.Fatalf("no artifact means heuristic basis, got %q", got.Basis)
	}
	if _, ok := got.FactorBreakdown["model_adjustment"]; ok {
		t.Fatal("heuristic scoring must not report a model adjustment factor")
	}
}

func TestCreatorReach(t *testing.T) {
	t.Parallel()
	if got := creatorReach(nil); got != 0.3 {
		t.Fatalf("nil creator reach = %v, want 0.3", got)
	}
	big := &domain.CreatorFeatureSet{FollowerCount: 10_000_000}
	if got := creatorReach(big); got != 1 {
		t.Fatalf("10M followers should saturate reach, got %v", got)
	}
	small := &domain.CreatorFeatureSet{FollowerCount: 1_000}
	if got := creatorReach(small); math.Abs(got-3.0/7.0) > 1e-9 {
		t.Fatalf("1k followers reach = %v, want %v", got, 3.0/7.0)
	}
}

func TestShareabilityBonuses(t *testing.T) {
	t.Parallel()
	bars := viralBars[domain.PlatformTikTok]
	engagement := domain.EngagementPrediction{PredictedViews: 100_000, PredictedShares: 300}
	base := shareability(domain.ContentFeatureSet{}, engagement, bars)
	withCTA := shareability(domain.ContentFeatureSet{CTAType: "share"}, engagement, bars)
	if math.Abs(withCTA-base-0.2) > 1e-9 {
		t.Fatalf("share CTA should add 0.2: base=%v cta=%v", base, withCTA)
	}
}
