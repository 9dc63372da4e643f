package scoring

import (
	"math"
	"testing"

	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/domain"
)

func TestAudienceFitEmptyBrief(t *testing.T) {
	t.Parallel()
	scorer := NewAudienceFitScorer("")
	got := scorer.Score(nil, domain.ContentFeatureSet{Platform: domain.PlatformTikTok}, domain.BrandBrief{})

	found := map[string]bool{}
	for _, d := range got.Degraded {
		found[d] = true
	}
	if !found["empty_brand_brief"] || !found["no_creator_context"] {
		t.Fatalf("expected both degraded markers, got %v", got.Degraded)
	}
	if got.Score <= 0 || got.Score > 1 {
		t.Fatalf("score out of range: %v", got.Score)
	}
	if got.AuthenticityScore != 0.5 {
		t.Fatalf("missing creator should default authenticity to 0.5, got %v", got.AuthenticityScore)
	}
}

func TestDemographicMatchTiers(t *testing.T) {
	t.Parallel()
	cases := []struct {
		platform, age string
		want          float64
	}{
		{domain.PlatformTikTok, "", 0.6},
		{domain.PlatformTikTok, domain.AgeGroupYoungAdult, 0.9},
		{domain.PlatformTikTok, domain.AgeGroupTeen, 0.7}, // adjacent
		{domain.PlatformTikTok, domain.AgeGroupSenior, 0.4},
		{domain.PlatformFacebook, domain.AgeGroupMiddle, 0.9},
	}
	for _, tc := range cases {
		if got := demographicMatch(tc.platform, tc.age); got != tc.want {
			t.Fatalf("demographicMatch(%s, %s) = %v, want %v", tc.platform, tc.age, got, tc.want)
		}
	}
}

func TestInterestOverlap(t *testing.T) {
	t.Parallel()
	creator := &domain.CreatorFeatureSet{TopHashtags: []string{"fitness", "wellness"}}
	got := interestOverlap(creator, domain.ContentFeatureSet{}, []string{"#Fitness", "gaming"})
	want := 0.3 + 0.7*0.5
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("overlap = %v, want %v", got, want)
	}
	if got := interestOverlap(nil, domain.ContentFeatureSet{}, nil); got != 0.5 {
		t.Fatalf("no interests should be neutral 0.5, got %v", got)
	}
}

func TestStyleCompatibility(t *testing.T) {
	t.Parallel()
	content := domain.ContentFeatureSet{HookStrength: 1, ExclamationCount: 5, VisualQuality: 0.8}
	if got := styleCompatibility(content, "energetic"); math.Abs(got-1) > 1e-9 {
		t.Fatalf("energetic with max hook should clamp to 1, got %v", got)
	}
	if got := styleCompatibility(content, "polished"); math.Abs(got-(0.3+0.7*0.8)) > 1e-9 {
		t.Fatalf("polished = %v", got)
	}
	if got := styleCompatibility(content, "unknown-style"); got != 0.5 {
		t.Fatalf("unknown style should be neutral 0.5, got %v", got)
	}
}

func TestSafetyScore(t *testing.T) {
	t.Parallel()
	if got := safetyScore(domain.ContentFeatureSet{Sentiment: 0.5}, false); got != 0.8 {
		t.Fatalf("neutral content safety = %v, want 0.8", got)
	}
	if got := safetyScore(domain.ContentFeatureSet{Sentiment: 0.2}, true); math.Abs(got-0.4) > 1e-9 {
		t.Fatalf("negative content under strict mode = %v, want 0.4", got)
	}
}
