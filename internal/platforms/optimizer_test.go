package platforms

import (
	"math"
	"testing"

	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/domain"
)

func TestForPlatformFallback(t *testing.T) {
	t.Parallel()
	if got := ForPlatform("unknown-network"); got.Config().Platform != domain.PlatformTikTok {
		t.Fatalf("unknown platform should resolve to tiktok, got %q", got.Config().Platform)
	}
	if got := ForPlatform("Instagram"); got.Config().Platform != domain.PlatformInstagram {
		t.Fatalf("lookup should be case-insensitive, got %q", got.Config().Platform)
	}
}

func TestSupportedCoversRegistry(t *testing.T) {
	t.Parallel()
	got := Supported()
	if len(got) != 5 {
		t.Fatalf("expected 5 platforms, got %v", got)
	}
	for _, p := range got {
		if ForPlatform(p) == nil {
			t.Fatalf("supported platform %q has no optimizer", p)
		}
	}
}

func TestRangeScore(t *testing.T) {
	t.Parallel()
	band := Range{Min: 15, Max: 60}
	if got := band.Score(30); got != 1 {
		t.Fatalf("inside the band should score 1, got %v", got)
	}
	// 45 over the max with a 45-wide band decays to zero.
	if got := band.Score(105); got != 0 {
		t.Fatalf("far outside should score 0, got %v", got)
	}
	if got := band.Score(75); math.Abs(got-(1-15.0/45.0)) > 1e-9 {
		t.Fatalf("linear decay outside the band, got %v", got)
	}
	if band.Contains(60) != true || band.Contains(60.1) != false {
		t.Fatal("band bounds are inclusive")
	}
}

func TestAnalyzeContentBoundsAndBands(t *testing.T) {
	t.Parallel()
	for _, platform := range Supported() {
		opt := ForPlatform(platform)
		cfg := opt.Config()

		sum := cfg.FormatWeight + cfg.HashtagWeight + cfg.CaptionWeight + cfg.VisualWeight + cfg.HookWeight
		if math.Abs(sum-1) > 1e-9 {
			t.Fatalf("%s: sub-score weights must sum to 1, got %v", platform, sum)
		}

		weak := opt.AnalyzeContent(domain.ContentFeatureSet{
			Platform:    platform,
			ContentType: domain.ContentTypeVideo,
		})
		if weak.Score < 0 || weak.Score > 100 {
			t.Fatalf("%s: score out of range: %v", platform, weak.Score)
		}

		mid := (cfg.DurationSeconds.Min + cfg.DurationSeconds.Max) / 2
		strong := opt.AnalyzeContent(domain.ContentFeatureSet{
			Platform:        platform,
			ContentType:     domain.ContentTypeVideo,
			DurationSeconds: mid,
			HashtagCount:    int((cfg.HashtagCount.Min + cfg.HashtagCount.Max) / 2),
			CaptionLength:   int((cfg.CaptionLength.Min + cfg.CaptionLength.Max) / 2),
			HasVisual:       true,
			VisualQuality:   0.95,
			HookStrength:    0.95,
		})
		if strong.Score <= weak.Score {
			t.Fatalf("%s: on-spec content should outscore empty content: %v vs %v",
				platform, strong.Score, weak.Score)
		}
		if len(strong.Weaknesses) >= len(weak.Weaknesses) {
			t.Fatalf("%s: on-spec content should carry fewer weaknesses: %v vs %v",
				platform, strong.Weaknesses, weak.Weaknesses)
		}
	}
}

func TestOptimizerSurfacesNonEmpty(t *testing.T) {
	t.Parallel()
	for _, platform := range Supported() {
		opt := ForPlatform(platform)
		if len(opt.HookRecommendations()) == 0 {
			t.Fatalf("%s: missing hook recommendations", platform)
		}
		if len(opt.OptimalPostingTimes()) == 0 {
			t.Fatalf("%s: missing posting times", platform)
		}
		if len(opt.FormatRecommendations()) == 0 {
			t.Fatalf("%s: missing format recommendations", platform)
		}
		if len(opt.AlgorithmTips()) == 0 {
			t.Fatalf("%s: missing algorithm tips", platform)
		}
		if len(opt.Config().AlgorithmPriorities) == 0 {
			t.Fatalf("%s: missing algorithm priorities", platform)
		}
	}
}
