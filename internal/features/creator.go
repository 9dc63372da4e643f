package features

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/domain"
)

var weekdayNames = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// CreatorExtractor derives creator features from a profile plus post
// history. Results are held in a bounded TTL cache keyed by creator and
// platform, so repeated predictions within a session skip recomputation.
type CreatorExtractor struct {
	cache *expirable.LRU[string, domain.CreatorFeatureSet]
	nowFn func() time.Time
}

func NewCreatorExtractor(cacheSize int, cacheTTL time.Duration) *CreatorExtractor {
	if cacheSize <= 0 {
		cacheSize = 1024
	}
	if cacheTTL <= 0 {
		cacheTTL = 15 * time.Minute
	}
	return &CreatorExtractor{
		cache: expirable.NewLRU[string, domain.CreatorFeatureSet](cacheSize, nil, cacheTTL),
		nowFn: func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the extractor clock, for tests.
func (e *CreatorExtractor) WithClock(nowFn func() time.Time) *CreatorExtractor {
	e.nowFn = nowFn
	return e
}

func cacheKey(creatorID, platform string) string {
	return fmt.Sprintf("%s|%s", strings.ToLower(strings.TrimSpace(creatorID)), platform)
}

// Extract computes (or returns the cached) feature set for one creator.
func (e *CreatorExtractor) Extract(profile domain.CreatorProfile, posts []domain.CreatorPost, platform string) domain.CreatorFeatureSet {
	platform = domain.NormalizePlatform(platform)
	creatorID := strings.TrimSpace(profile.CreatorID)
	key := cacheKey(creatorID, platform)
	if creatorID != "" {
		if cached, ok := e.cache.Get(key); ok {
			return cached
		}
	}
	fs := e.compute(profile, posts, platform)
	if creatorID != "" {
		e.cache.Add(key, fs)
	}
	return fs
}

// Invalidate drops a creator's cached features, used when an outcome
// arrives and the baseline shifts.
func (e *CreatorExtractor) Invalidate(creatorID, platform string) {
	e.cache.Remove(cacheKey(creatorID, domain.NormalizePlatform(platform)))
}

func (e *CreatorExtractor) compute(profile domain.CreatorProfile, posts []domain.CreatorPost, platform string) domain.CreatorFeatureSet {
	now := e.nowFn()
	fs := domain.CreatorFeatureSet{
		CreatorID:      strings.TrimSpace(profile.CreatorID),
		Platform:       platform,
		FollowerCount:  maxInt64(profile.FollowerCount, 0),
		FollowingCount: maxInt64(profile.FollowingCount, 0),
		PostCount:      maxInt64(profile.PostCount, 0),
	}

	if profile.CreatedAt != nil && profile.CreatedAt.Before(now) {
		fs.AccountAgeDays = now.Sub(*profile.CreatedAt).Hours() / 24
	} else {
		fs.AccountAgeDays = 365
		fs.Degraded = append(fs.Degraded, "account_age_default")
	}

	fs.AudienceAuthenticity = authenticityScore(fs.FollowerCount, fs.FollowingCount)

	valid := validPosts(posts)
	fs.HistoricalPosts = len(valid)
	if len(valid) == 0 {
		fs.AvgEngagementRate = 0
		fs.ConsistencyScore = 0.5
		fs.EngagementVariance = 0.5
		fs.ViewsVariance = 0.5
		fs.GrowthScore = 0.5
		fs.BestPostingHour = 18
		fs.BestPostingDay = "friday"
		fs.Degraded = append(fs.Degraded, "no_post_history")
		return fs
	}

	rates := make([]float64, 0, len(valid))
	views := make([]float64, 0, len(valid))
	var likeSum, commentSum, shareSum, viewSum, captionSum, hashtagSum float64
	for _, p := range valid {
		rate := domain.EngagementRate(p.Views, p.Likes, p.Comments, p.Shares)
		rates = append(rates, rate)
		views = append(views, float64(p.Views))
		likeSum += float64(p.Likes)
		commentSum += float64(p.Comments)
		shareSum += float64(p.Shares)
		viewSum += float64(p.Views)
		captionSum += float64(len([]rune(p.Caption)))
		hashtagSum += float64(len(p.Hashtags))
	}
	n := float64(len(valid))
	fs.AvgEngagementRate = mean(rates)
	fs.AvgLikes = likeSum / n
	fs.AvgComments = commentSum / n
	fs.AvgShares = shareSum / n
	fs.AvgViews = viewSum / n
	fs.AvgCaptionLength = captionSum / n
	fs.AvgHashtagCount = hashtagSum / n
	fs.TopHashtags = topHashtags(valid, 5)
	fs.EngagementTrend = engagementTrend(rates)
	fs.PostingFrequency = postingFrequency(valid)
	fs.BestPostingHour, fs.BestPostingDay = bestPostingSlot(valid)
	fs.GrowthScore = domain.Clamp01(0.5 + fs.EngagementTrend)

	engVar, viewsVar, consistency := consistencyScores(rates, views)
	fs.EngagementVariance = engVar
	fs.ViewsVariance = viewsVar
	fs.ConsistencyScore = consistency
	return fs
}

func validPosts(posts []domain.CreatorPost) []domain.CreatorPost {
	out := make([]domain.CreatorPost, 0, len(posts))
	for _, p := range posts {
		if p.PostedAt.IsZero() || p.Views < 0 {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PostedAt.Before(out[j].PostedAt) })
	return out
}

// authenticityScore uses the follow ratio as a crude audience-quality
// proxy: ratio>10 -> 0.9, >2 -> 0.8, >0.5 -> 0.7, else 0.5.
func authenticityScore(followers, following int64) float64 {
	if following <= 0 {
		if followers > 0 {
			return 0.9
		}
		return 0.5
	}
	ratio := float64(followers) / float64(following)
	switch {
	case ratio > 10:
		return 0.9
	case ratio > 2:
		return 0.8
	case ratio > 0.5:
		return 0.7
	default:
		return 0.5
	}
}

// engagementTrend compares the recent half of the history against the
// older half: (recent - older) / older, guarded against empty halves
// and zero denominators.
func engagementTrend(rates []float64) float64 {
	if len(rates) < 2 {
		return 0
	}
	mid := len(rates) / 2
	older := mean(rates[:mid])
	recent := mean(rates[mid:])
	if older <= 0 {
		if recent > 0 {
			return 1
		}
		return 0
	}
	trend := (recent - older) / older
	return math.Max(-1, math.Min(trend, 1))
}

// postingFrequency is posts per week over the history span, with a
// floor of one post per day when the span collapses to zero.
func postingFrequency(posts []domain.CreatorPost) float64 {
	if len(posts) == 0 {
		return 0
	}
	span := posts[len(posts)-1].PostedAt.Sub(posts[0].PostedAt)
	spanDays := span.Hours() / 24
	if spanDays <= 0 {
		return float64(len(posts)) * 7
	}
	return float64(len(posts)) / (spanDays / 7)
}

func bestPostingSlot(posts []domain.CreatorPost) (int, string) {
	hourRates := map[int][]float64{}
	dayRates := map[int][]float64{}
	for _, p := range posts {
		rate := domain.EngagementRate(p.Views, p.Likes, p.Comments, p.Shares)
		h := p.PostedAt.UTC().Hour()
		d := int(p.PostedAt.UTC().Weekday())
		hourRates[h] = append(hourRates[h], rate)
		dayRates[d] = append(dayRates[d], rate)
	}
	bestHour, bestHourRate := 18, -1.0
	for h, rs := range hourRates {
		if m := mean(rs); m > bestHourRate {
			bestHour, bestHourRate = h, m
		}
	}
	bestDay, bestDayRate := 5, -1.0
	for d, rs := range dayRates {
		if m := mean(rs); m > bestDayRate {
			bestDay, bestDayRate = d, m
		}
	}
	return bestHour, weekdayNames[bestDay]
}

// consistencyScores returns (engagement variance, views variance,
// consistency). Variances are coefficients of variation capped at 2 and
// normalized to [0,1]; consistency = 1 - (0.6*engCV + 0.4*viewsCV).
// Fewer than 2 valid posts returns the 0.5 defaults.
func consistencyScores(rates, views []float64) (float64, float64, float64) {
	if len(rates) < 2 {
		return 0.5, 0.5, 0.5
	}
	engCV := normalizedCV(rates)
	viewsCV := normalizedCV(views)
	consistency := domain.Clamp01(1 - (0.6*engCV + 0.4*viewsCV))
	return engCV, viewsCV, consistency
}

func normalizedCV(values []float64) float64 {
	m := mean(values)
	if m <= 0 {
		return 1
	}
	cv := stddev(values) / m
	if cv > 2 {
		cv = 2
	}
	return cv / 2
}

func topHashtags(posts []domain.CreatorPost, limit int) []string {
	counts := map[string]int{}
	for _, p := range posts {
		for _, t := range p.Hashtags {
			if norm := domain.NormalizeHashtag(t); norm != "" {
				counts[norm]++
			}
		}
	}
	tags := make([]string, 0, len(counts))
	for t := range counts {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool {
		if counts[tags[i]] != counts[tags[j]] {
			return counts[tags[i]] > counts[tags[j]]
		}
		return tags[i] < tags[j]
	})
	if len(tags) > limit {
		tags = tags[:limit]
	}
	return tags
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func stddev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	var sumSq float64
	for _, v := range values {
		d := v - m
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(values)))
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
