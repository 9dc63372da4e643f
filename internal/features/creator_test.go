package features

import (
	"testing"
	"time"

	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/domain"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestCreatorDefaultsWithoutHistory(t *testing.T) {
	t.Parallel()
	ex := NewCreatorExtractor(16, time.Minute)
	fs := ex.Extract(domain.CreatorProfile{CreatorID: "c-1", FollowerCount: 100}, nil, "tiktok")
	if fs.ConsistencyScore != 0.5 || fs.EngagementVariance != 0.5 || fs.ViewsVariance != 0.5 {
		t.Fatalf("no history should yield 0.5 defaults: %+v", fs)
	}
	if fs.BestPostingHour != 18 || fs.BestPostingDay != "friday" {
		t.Fatalf("expected default posting slot 18/friday, got %d/%s", fs.BestPostingHour, fs.BestPostingDay)
	}
	found := false
	for _, d := range fs.Degraded {
		if d == "no_post_history" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected no_post_history marker, got %v", fs.Degraded)
	}
}

func TestAuthenticityTiers(t *testing.T) {
	t.Parallel()
	cases := []struct {
		followers, following int64
		want                 float64
	}{
		{100_000, 500, 0.9},
		{3_000, 1_000, 0.8},
		{800, 1_000, 0.7},
		{100, 1_000, 0.5},
		{500, 0, 0.9},
		{0, 0, 0.5},
	}
	for _, tc := range cases {
		got := authenticityScore(tc.followers, tc.following)
		if got != tc.want {
			t.Fatalf("authenticity(%d/%d) = %v, want %v", tc.followers, tc.following, got, tc.want)
		}
	}
}

func TestAccountAgeDefault(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ex := NewCreatorExtractor(16, time.Minute).WithClock(fixedClock(now))
	fs := ex.Extract(domain.CreatorProfile{CreatorID: "c-2"}, nil, "tiktok")
	if fs.AccountAgeDays != 365 {
		t.Fatalf("missing created_at should default to 365 days, got %v", fs.AccountAgeDays)
	}
	created := now.AddDate(0, 0, -30)
	ex.Invalidate("c-2", "tiktok")
	fs = ex.Extract(domain.CreatorProfile{CreatorID: "c-2", CreatedAt: &created}, nil, "tiktok")
	if fs.AccountAgeDays < 29.9 || fs.AccountAgeDays > 30.1 {
		t.Fatalf("expected ~30 day account age, got %v", fs.AccountAgeDays)
	}
}

func TestExtractCachesPerCreatorAndPlatform(t *testing.T) {
	t.Parallel()
	ex := NewCreatorExtractor(16, time.Hour)
	profile := domain.CreatorProfile{CreatorID: "c-3", FollowerCount: 1_000}
	first := ex.Extract(profile, nil, "tiktok")

	// Same key: the cached set is returned even though the profile changed.
	profile.FollowerCount = 9_999_999
	cached := ex.Extract(profile, nil, "tiktok")
	if cached.FollowerCount != first.FollowerCount {
		t.Fatalf("expected cached feature set, got followers %d", cached.FollowerCount)
	}

	// Different platform misses the cache.
	other := ex.Extract(profile, nil, "instagram")
	if other.FollowerCount != 9_999_999 {
		t.Fatalf("platform should partition the cache, got followers %d", other.FollowerCount)
	}

	// Invalidation forces a recompute.
	ex.Invalidate("c-3", "tiktok")
	fresh := ex.Extract(profile, nil, "tiktok")
	if fresh.FollowerCount != 9_999_999 {
		t.Fatalf("invalidate should drop the cached set, got followers %d", fresh.FollowerCount)
	}
}

func TestHistoryAggregates(t *testing.T) {
	t.Parallel()
	base := time.Date(2026, 1, 5, 19, 0, 0, 0, time.UTC) // monday
	posts := []domain.CreatorPost{
		{PostedAt: base, Views: 1000, Likes: 100, Caption: "one", Hashtags: []string{"#fit", "#gym"}},
		{PostedAt: base.AddDate(0, 0, 7), Views: 1000, Likes: 100, Caption: "two", Hashtags: []string{"#fit"}},
		{PostedAt: base.AddDate(0, 0, 14), Views: 1000, Likes: 100, Caption: "three", Hashtags: []string{"#fit"}},
	}
	ex := NewCreatorExtractor(16, time.Minute)
	fs := ex.Extract(domain.CreatorProfile{CreatorID: "c-4"}, posts, "tiktok")

	if fs.HistoricalPosts != 3 {
		t.Fatalf("expected 3 valid posts, got %d", fs.HistoricalPosts)
	}
	if fs.AvgViews != 1000 || fs.AvgLikes != 100 {
		t.Fatalf("unexpected averages: views=%v likes=%v", fs.AvgViews, fs.AvgLikes)
	}
	// Identical rates and views: zero variance, perfect consistency.
	if fs.EngagementVariance != 0 || fs.ViewsVariance != 0 || fs.ConsistencyScore != 1 {
		t.Fatalf("flat history should be perfectly consistent: eng=%v views=%v cons=%v",
			fs.EngagementVariance, fs.ViewsVariance, fs.ConsistencyScore)
	}
	// 3 posts over 14 days = 1.5 posts/week.
	if fs.PostingFrequency < 1.49 || fs.PostingFrequency > 1.51 {
		t.Fatalf("expected ~1.5 posts/week, got %v", fs.PostingFrequency)
	}
	if fs.BestPostingHour != 19 || fs.BestPostingDay != "monday" {
		t.Fatalf("expected 19/monday slot, got %d/%s", fs.BestPostingHour, fs.BestPostingDay)
	}
	if len(fs.TopHashtags) == 0 || fs.TopHashtags[0] != "fit" {
		t.Fatalf("expected fit as top hashtag, got %v", fs.TopHashtags)
	}
}

func TestEngagementTrendBounds(t *testing.T) {
	t.Parallel()
	if got := engagementTrend([]float64{0.01}); got != 0 {
		t.Fatalf("single sample has no trend, got %v", got)
	}
	if got := engagementTrend([]float64{0, 0, 0.05, 0.05}); got != 1 {
		t.Fatalf("growth from zero should clamp to 1, got %v", got)
	}
	if got := engagementTrend([]float64{0.10, 0.10, 0.15, 0.15}); got != 0.5 {
		t.Fatalf("expected +0.5 trend, got %v", got)
	}
	if got := engagementTrend([]float64{0.10, 0.10, 0, 0}); got != -1 {
		t.Fatalf("collapse to zero should clamp to -1, got %v", got)
	}
}

func TestInvalidPostsFiltered(t *testing.T) {
	t.Parallel()
	ex := NewCreatorExtractor(16, time.Minute)
	posts := []domain.CreatorPost{
		{Views: 1000, Likes: 10}, // zero PostedAt
		{PostedAt: time.Now().UTC(), Views: -5},
	}
	fs := ex.Extract(domain.CreatorProfile{CreatorID: "c-5"}, posts, "tiktok")
	if fs.HistoricalPosts != 0 {
		t.Fatalf("expected all posts filtered, got %d", fs.HistoricalPosts)
	}
}
