package features

import (
	"math"
	"testing"
	"time"

	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/domain"
)

func testSnapshot(now time.Time) *domain.TrendSnapshot {
	snap := domain.EmptyTrendSnapshot()
	snap.Hashtags["grwm"] = domain.TrendingItem{
		Name: "grwm", Type: domain.TrendTypeHashtag,
		Popularity: 0.9, Velocity: 0.6, Saturation: 0.3,
		StartedTrending: now,
	}
	snap.Sounds["snd-1"] = domain.TrendingItem{
		Name: "snd-1", Type: domain.TrendTypeSound,
		Popularity: 0.8, Velocity: 0.4, Saturation: 0.5,
		StartedTrending: now,
	}
	snap.Topics["cooking"] = domain.TrendingItem{
		Name: "cooking", Type: domain.TrendTypeTopic,
		Popularity: 0.7, Velocity: 0.2, Saturation: 0.4,
		StartedTrending: now,
	}
	snap.RefreshedAt = now
	return snap
}

func TestExtractNilSnapshot(t *testing.T) {
	t.Parallel()
	ex := NewTrendExtractor()
	fs := ex.Extract(TrendInput{
		Caption:  "grwm for a cooking night #grwm",
		SoundID:  "snd-1",
		Platform: "tiktok",
	}, nil)
	if fs.HashtagAlignment.Score != 0 || fs.TopicAlignment.Score != 0 {
		t.Fatalf("empty snapshot should score zero on hashtag/topic axes: %+v", fs)
	}
	// A sound ID with no registry entry still gets the floor score.
	if fs.SoundAlignment.Score != 0.1 {
		t.Fatalf("unknown sound should score 0.1, got %v", fs.SoundAlignment.Score)
	}
	// Format matching needs no snapshot at all.
	if fs.MatchedFormat != "get ready with me" {
		t.Fatalf("expected grwm format match, got %q", fs.MatchedFormat)
	}
}

func TestFreshnessDecay(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		started time.Time
		want    float64
	}{
		{time.Time{}, 1},
		{now, 1},
		{now.AddDate(0, 0, -7), 0.5},
		{now.AddDate(0, 0, -14), 0},
		{now.AddDate(0, 0, -30), 0},
		{now.AddDate(0, 0, 3), 1}, // future start means not yet decaying
	}
	for _, tc := range cases {
		if got := freshnessDecay(tc.started, now); math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("freshnessDecay(%v) = %v, want %v", tc.started, got, tc.want)
		}
	}
}

func TestTimingScoreBranches(t *testing.T) {
	t.Parallel()
	cases := []struct {
		velocity, saturation, want float64
	}{
		{0.6, 0.3, 0.9},
		{0.4, 0.5, 0.7},
		{0.1, 0.7, 0.5},
		{0.1, 0.9, 0.3},
		{0, 0, 0.3},
	}
	for _, tc := range cases {
		if got := timingScore(tc.velocity, tc.saturation); got != tc.want {
			t.Fatalf("timingScore(%v, %v) = %v, want %v", tc.velocity, tc.saturation, got, tc.want)
		}
	}
}

func TestAxisWeightRedistribution(t *testing.T) {
	t.Parallel()
	h, s, f, tp := axisWeights(domain.PlatformTikTok, domain.ContentTypeVideo)
	if s != 0.25 {
		t.Fatalf("tiktok video keeps the sound axis, got %v", s)
	}
	if math.Abs(h+s+f+tp-1) > 1e-9 {
		t.Fatalf("weights must sum to 1, got %v", h+s+f+tp)
	}

	h, s, f, tp = axisWeights(domain.PlatformPinterest, domain.ContentTypeImage)
	if s != 0 {
		t.Fatalf("non-sound platform should zero the sound weight, got %v", s)
	}
	if math.Abs(h+s+f+tp-1) > 1e-9 {
		t.Fatalf("redistributed weights must sum to 1, got %v", h+s+f+tp)
	}
	if math.Abs(h-0.475) > 1e-9 {
		t.Fatalf("hashtag axis should absorb half the sound weight, got %v", h)
	}
}

func TestHashtagAxisCoverage(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	ex := NewTrendExtractor().WithClock(fixedClock(now))
	snap := testSnapshot(now)

	fs := ex.Extract(TrendInput{
		Hashtags:    []string{"#GRWM", "#obscuretag"},
		ContentType: "video",
		Platform:    "tiktok",
	}, snap)
	if len(fs.MatchedHashtags) != 1 || fs.MatchedHashtags[0] != "grwm" {
		t.Fatalf("expected grwm match, got %v", fs.MatchedHashtags)
	}
	// popularity 0.9, full freshness, coverage boost 0.7+0.3*(1/2)=0.85.
	want := 0.9 * 0.85
	if math.Abs(fs.HashtagAlignment.Score-want) > 1e-9 {
		t.Fatalf("hashtag score = %v, want %v", fs.HashtagAlignment.Score, want)
	}
}

func TestTopicAndSoundAlignment(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	ex := NewTrendExtractor().WithClock(fixedClock(now))
	snap := testSnapshot(now)

	fs := ex.Extract(TrendInput{
		Caption:     "late night cooking session",
		SoundID:     "SND-1",
		ContentType: "video",
		Platform:    "tiktok",
	}, snap)
	if math.Abs(fs.TopicAlignment.Score-0.7) > 1e-9 {
		t.Fatalf("topic score = %v, want 0.7", fs.TopicAlignment.Score)
	}
	if math.Abs(fs.SoundAlignment.Score-0.8) > 1e-9 {
		t.Fatalf("sound lookup should be case-insensitive, score = %v", fs.SoundAlignment.Score)
	}
	if fs.OverallScore <= 0 || fs.OverallScore > 1 {
		t.Fatalf("overall score out of range: %v", fs.OverallScore)
	}
}

func TestFreshnessAggregate(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	ex := NewTrendExtractor().WithClock(fixedClock(now))
	snap := testSnapshot(now)
	snap.Hashtags["grwm"] = domain.TrendingItem{
		Name: "grwm", Popularity: 0.9, StartedTrending: now.AddDate(0, 0, -7),
	}

	fs := ex.Extract(TrendInput{
		Hashtags:    []string{"grwm"},
		SoundID:     "snd-1",
		ContentType: "video",
		Platform:    "tiktok",
	}, snap)
	// hashtag 0.5 + sound 1.0 averaged.
	if math.Abs(fs.Freshness-0.75) > 1e-9 {
		t.Fatalf("freshness = %v, want 0.75", fs.Freshness)
	}

	none := ex.Extract(TrendInput{Caption: "plain caption", Platform: "tiktok"}, snap)
	if none.Freshness != 0.5 {
		t.Fatalf("no matches should default freshness to 0.5, got %v", none.Freshness)
	}
}
