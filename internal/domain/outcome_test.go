package domain

import (
	"math"
	"testing"
	"time"
)

func TestBaselineObserve(t *testing.T) {
	t.Parallel()
	b := CreatorBaseline{CreatorID: "c-1", Platform: "tiktok"}
	at := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	b.Observe(OutcomeMetrics{Views: 1000, Likes: 100}, at)
	if b.SampleCount != 1 || b.MeanViews != 1000 || b.MeanLikes != 100 {
		t.Fatalf("first observation seeds the means: %+v", b)
	}
	b.Observe(OutcomeMetrics{Views: 3000, Likes: 300}, at.Add(time.Hour))
	if b.SampleCount != 2 || b.MeanViews != 2000 || b.MeanLikes != 200 {
		t.Fatalf("running mean after two observations: %+v", b)
	}
	if math.Abs(b.MeanEngagementRate-0.1) > 1e-9 {
		t.Fatalf("mean engagement rate = %v, want 0.1", b.MeanEngagementRate)
	}
	if !b.UpdatedAt.Equal(at.Add(time.Hour)) {
		t.Fatalf("updated_at = %v", b.UpdatedAt)
	}
}

func TestMetricAccuracy(t *testing.T) {
	t.Parallel()
	cases := []struct {
		predicted, actual int64
		want              float64
	}{
		{1000, 1000, 1},
		{900, 1000, 0.9},
		{1100, 1000, 0.9},
		{5000, 1000, 0}, // error larger than actual clamps to zero
		{0, 0, 1},
		{500, 0, 0},
	}
	for _, tc := range cases {
		if got := MetricAccuracy(tc.predicted, tc.actual); math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("MetricAccuracy(%d, %d) = %v, want %v", tc.predicted, tc.actual, got, tc.want)
		}
	}
}

func TestEngagementRate(t *testing.T) {
	t.Parallel()
	if got := EngagementRate(1000, 80, 15, 5); math.Abs(got-0.1) > 1e-9 {
		t.Fatalf("engagement rate = %v, want 0.1", got)
	}
	// Zero views falls back to a denominator of 1 and the rate clamps.
	if got := EngagementRate(0, 10, 0, 0); got != 1 {
		t.Fatalf("zero-view rate should clamp to 1, got %v", got)
	}
}
