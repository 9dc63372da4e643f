package features

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"
)

func TestExtractIsPure(t *testing.T) {
	t.Parallel()
	ex := NewContentExtractor()
	in := ContentInput{
		Caption:     "POV: you found the secret to easy meals #grwm #cooking wait for it!",
		Hashtags:    []string{"#FoodTok"},
		ContentType: "video",
		Platform:    "tiktok",
	}
	trending := map[string]bool{"grwm": true}
	first := ex.Extract(in, trending)
	second := ex.Extract(in, trending)
	if first.HookStrength != second.HookStrength || first.Sentiment != second.Sentiment ||
		first.HashtagCount != second.HashtagCount || first.TrendingRatio != second.TrendingRatio {
		t.Fatalf("identical inputs produced different feature sets: %+v vs %+v", first, second)
	}
}

func TestCTAPriorityOrder(t *testing.T) {
	t.Parallel()
	ex := NewContentExtractor()
	// Caption contains both a follow and a like CTA; follow wins.
	fs := ex.Extract(ContentInput{
		Caption:  "double tap if you agree and follow for more tips",
		Platform: "instagram",
	}, nil)
	if !fs.HasCTA {
		t.Fatal("expected CTA detection")
	}
	if fs.CTAType != "follow" {
		t.Fatalf("expected follow to outrank like, got %q", fs.CTAType)
	}
}

func TestNoCTA(t *testing.T) {
	t.Parallel()
	ex := NewContentExtractor()
	fs := ex.Extract(ContentInput{Caption: "a quiet morning in the mountains", Platform: "tiktok"}, nil)
	if fs.HasCTA || fs.CTAType != "" {
		t.Fatalf("expected no CTA, got type %q", fs.CTAType)
	}
}

func TestHookStrengthCapsAtOne(t *testing.T) {
	t.Parallel()
	ex := NewContentExtractor()
	fs := ex.Extract(ContentInput{
		Caption:  "wait for it... plot twist! you won't believe this. watch till the end",
		Platform: "tiktok",
	}, nil)
	if fs.HookStrength != 1 {
		t.Fatalf("four hook phrases should cap strength at 1, got %v", fs.HookStrength)
	}
}

func TestSentimentScore(t *testing.T) {
	t.Parallel()
	ex := NewContentExtractor()
	cases := []struct {
		caption string
		want    float64
	}{
		{"just an average tuesday", 0.5},
		{"love this amazing view", 0.75},  // (2-0+1)/(2+0+2)
		{"worst day ever, total scam", 0}, // (0-2+1)/(0+2+2) clamped
		{"love this terrible idea", 0.25}, // (1-1+1)/(1+1+2)
	}
	for _, tc := range cases {
		fs := ex.Extract(ContentInput{Caption: tc.caption, Platform: "tiktok"}, nil)
		if math.Abs(fs.Sentiment-tc.want) > 1e-9 {
			t.Fatalf("sentiment(%q) = %v, want %v", tc.caption, fs.Sentiment, tc.want)
		}
	}
}

func TestHashtagMetrics(t *testing.T) {
	t.Parallel()
	ex := NewContentExtractor()
	fs := ex.Extract(ContentInput{
		Caption:  "morning routine #GRWM #grwm #fitness",
		Hashtags: []string{"#Wellness"},
		Platform: "tiktok",
	}, map[string]bool{"grwm": true})
	if fs.HashtagCount != 4 {
		t.Fatalf("expected 4 hashtags, got %d", fs.HashtagCount)
	}
	// grwm appears twice; both occurrences count toward the ratio.
	if math.Abs(fs.TrendingRatio-0.5) > 1e-9 {
		t.Fatalf("expected trending ratio 0.5, got %v", fs.TrendingRatio)
	}
	if math.Abs(fs.HashtagDiversity-0.75) > 1e-9 {
		t.Fatalf("expected diversity 0.75, got %v", fs.HashtagDiversity)
	}
}

func TestVisualDefaultsOnUndecodableBytes(t *testing.T) {
	t.Parallel()
	ex := NewContentExtractor()
	fs := ex.Extract(ContentInput{
		ContentBytes: []byte("definitely not an image"),
		Caption:      "test",
		Platform:     "tiktok",
	}, nil)
	if !fs.HasVisual {
		t.Fatal("bytes were supplied, HasVisual should be set")
	}
	if fs.VisualQuality != 0.7 {
		t.Fatalf("expected default visual quality 0.7, got %v", fs.VisualQuality)
	}
	found := false
	for _, d := range fs.Degraded {
		if d == "visual_decode" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected visual_decode degradation marker, got %v", fs.Degraded)
	}
}

func TestMediaFetchFailureMarksDegraded(t *testing.T) {
	t.Parallel()
	ex := NewContentExtractor()
	fs := ex.Extract(ContentInput{
		Caption:          "test",
		Platform:         "tiktok",
		MediaUnavailable: true,
	}, nil)
	if !fs.MediaUnavailable {
		t.Fatal("expected MediaUnavailable to carry through")
	}
	if fs.HasVisual {
		t.Fatal("no bytes arrived, HasVisual must stay false")
	}
	found := false
	for _, d := range fs.Degraded {
		if d == "media_fetch" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected media_fetch degradation marker, got %v", fs.Degraded)
	}
}

func TestVisualScoresFromRealImage(t *testing.T) {
	t.Parallel()
	// 9:16 portrait frame, mid-gray fill.
	img := image.NewRGBA(image.Rect(0, 0, 90, 160))
	for y := 0; y < 160; y++ {
		for x := 0; x < 90; x++ {
			img.Set(x, y, color.RGBA{R: 128, G: 128, B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test image: %v", err)
	}
	ex := NewContentExtractor()
	fs := ex.Extract(ContentInput{ContentBytes: buf.Bytes(), Platform: "tiktok"}, nil)
	if !fs.HasVisual {
		t.Fatal("expected HasVisual")
	}
	if fs.AspectScore != 1.0 {
		t.Fatalf("9:16 frame should score 1.0 on aspect, got %v", fs.AspectScore)
	}
	if len(fs.Degraded) != 0 {
		t.Fatalf("decodable image should not degrade: %v", fs.Degraded)
	}
	if fs.BrightnessScore < 0.9 {
		t.Fatalf("mid-gray fill should be near-ideal brightness, got %v", fs.BrightnessScore)
	}
	if fs.ContrastScore != 0 {
		t.Fatalf("flat fill has zero contrast, got %v", fs.ContrastScore)
	}
}

func TestEmptyCaptionBounds(t *testing.T) {
	t.Parallel()
	ex := NewContentExtractor()
	fs := ex.Extract(ContentInput{Platform: "tiktok"}, nil)
	if fs.Sentiment != 0.5 {
		t.Fatalf("empty caption sentiment should be neutral 0.5, got %v", fs.Sentiment)
	}
	if fs.HookStrength != 0 || fs.HashtagCount != 0 || fs.HasCTA {
		t.Fatalf("empty caption should produce zero text features: %+v", fs)
	}
}
