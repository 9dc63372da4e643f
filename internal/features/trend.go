package features

import (
	"strings"
	"time"

	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/domain"
)

// trendingFormats is the static format table: named short-form formats
// with fixed popularity weights, matched against the caption.
var trendingFormats = []struct {
	Name       string
	Phrases    []string
	Popularity float64
}{
	{"get ready with me", []string{"grwm", "get ready with me"}, 0.9},
	{"day in the life", []string{"day in the life", "ditl"}, 0.85},
	{"tutorial", []string{"tutorial", "how to", "step by step"}, 0.8},
	{"before and after", []string{"before and after", "transformation"}, 0.8},
	{"storytime", []string{"storytime", "story time"}, 0.75},
	{"unboxing", []string{"unboxing", "haul"}, 0.7},
	{"challenge", []string{"challenge"}, 0.7},
	{"duet", []string{"duet", "stitch"}, 0.65},
	{"reaction", []string{"reaction", "reacting to"}, 0.6},
	{"asmr", []string{"asmr"}, 0.55},
}

// TrendInput is the content context scored against a trend snapshot.
type TrendInput struct {
	Caption     string
	Hashtags    []string
	SoundID     string
	ContentType string
	Platform    string
}

// TrendExtractor scores content alignment against an immutable trend
// snapshot supplied per call. It holds no mutable registries of its own.
type TrendExtractor struct {
	nowFn func() time.Time
}

func NewTrendExtractor() *TrendExtractor {
	return &TrendExtractor{nowFn: func() time.Time { return time.Now().UTC() }}
}

func (e *TrendExtractor) WithClock(nowFn func() time.Time) *TrendExtractor {
	e.nowFn = nowFn
	return e
}

// Extract computes the four alignment axes and their aggregates.
func (e *TrendExtractor) Extract(in TrendInput, snapshot *domain.TrendSnapshot) domain.TrendFeatureSet {
	if snapshot == nil {
		snapshot = domain.EmptyTrendSnapshot()
	}
	platform := domain.NormalizePlatform(in.Platform)
	contentType := domain.NormalizeContentType(in.ContentType)
	now := e.nowFn()

	fs := domain.TrendFeatureSet{}
	fs.HashtagAlignment, fs.MatchedHashtags = e.hashtagAxis(in, snapshot, now)
	fs.SoundAlignment = e.soundAxis(in.SoundID, snapshot, now)
	fs.FormatAlignment, fs.MatchedFormat = e.formatAxis(in.Caption)
	fs.TopicAlignment = e.topicAxis(in.Caption, snapshot, now)

	wHashtag, wSound, wFormat, wTopic := axisWeights(platform, contentType)
	fs.OverallScore = domain.Clamp01(
		wHashtag*fs.HashtagAlignment.Score +
			wSound*fs.SoundAlignment.Score +
			wFormat*fs.FormatAlignment.Score +
			wTopic*fs.TopicAlignment.Score)

	fs.Momentum = domain.Clamp01((fs.HashtagAlignment.Velocity + fs.SoundAlignment.Velocity + fs.TopicAlignment.Velocity) / 3)
	fs.Saturation = domain.Clamp01((fs.HashtagAlignment.Saturation + fs.SoundAlignment.Saturation + fs.TopicAlignment.Saturation) / 3)
	fs.Freshness = e.freshness(in, snapshot, now)
	fs.TimingScore = timingScore(fs.Momentum, fs.Saturation)
	fs.PlatformBoost = platformBoost(platform, contentType)
	return fs
}

func (e *TrendExtractor) hashtagAxis(in TrendInput, snapshot *domain.TrendSnapshot, now time.Time) (domain.TrendAxis, []string) {
	tags := map[string]bool{}
	for _, t := range in.Hashtags {
		if norm := domain.NormalizeHashtag(t); norm != "" {
			tags[norm] = true
		}
	}
	for _, t := range hashtagPattern.FindAllString(in.Caption, -1) {
		tags[domain.NormalizeHashtag(t)] = true
	}
	if len(tags) == 0 {
		return domain.TrendAxis{}, nil
	}
	var matched []string
	axis := domain.TrendAxis{}
	for tag := range tags {
		item, ok := snapshot.Hashtag(tag)
		if !ok {
			continue
		}
		matched = append(matched, tag)
		axis.Score += item.Popularity * freshnessDecay(item.StartedTrending, now)
		axis.Velocity += item.Velocity
		axis.Saturation += item.Saturation
	}
	if len(matched) > 0 {
		m := float64(len(matched))
		axis.Score = domain.Clamp01(axis.Score / m * coverageBoost(len(matched), len(tags)))
		axis.Velocity /= m
		axis.Saturation = domain.Clamp01(axis.Saturation / m)
	}
	return axis, matched
}

// coverageBoost rewards captions where a larger share of the hashtags
// is trending, without letting a single lucky tag dominate.
func coverageBoost(matched, total int) float64 {
	if total == 0 {
		return 0
	}
	return 0.7 + 0.3*float64(matched)/float64(total)
}

func (e *TrendExtractor) soundAxis(soundID string, snapshot *domain.TrendSnapshot, now time.Time) domain.TrendAxis {
	soundID = strings.TrimSpace(soundID)
	if soundID == "" {
		return domain.TrendAxis{}
	}
	item, ok := snapshot.Sound(soundID)
	if !ok {
		return domain.TrendAxis{Score: 0.1}
	}
	return domain.TrendAxis{
		Score:      domain.Clamp01(item.Popularity * freshnessDecay(item.StartedTrending, now)),
		Velocity:   item.Velocity,
		Saturation: item.Saturation,
	}
}

func (e *TrendExtractor) formatAxis(caption string) (domain.TrendAxis, string) {
	lower := strings.ToLower(caption)
	best := domain.TrendAxis{}
	bestName := ""
	for _, format := range trendingFormats {
		for _, phrase := range format.Phrases {
			if strings.Contains(lower, phrase) && format.Popularity > best.Score {
				best = domain.TrendAxis{Score: format.Popularity, Velocity: 0.2, Saturation: 0.5}
				bestName = format.Name
			}
		}
	}
	return best, bestName
}

func (e *TrendExtractor) topicAxis(caption string, snapshot *domain.TrendSnapshot, now time.Time) domain.TrendAxis {
	lower := strings.ToLower(caption)
	if lower == "" || len(snapshot.Topics) == 0 {
		return domain.TrendAxis{}
	}
	axis := domain.TrendAxis{}
	matches := 0
	for _, item := range snapshot.Topics {
		if strings.Contains(lower, strings.ToLower(item.Name)) {
			matches++
			axis.Score += item.Popularity * freshnessDecay(item.StartedTrending, now)
			axis.Velocity += item.Velocity
			axis.Saturation += item.Saturation
		}
	}
	if matches > 0 {
		m := float64(matches)
		axis.Score = domain.Clamp01(axis.Score / m)
		axis.Velocity /= m
		axis.Saturation = domain.Clamp01(axis.Saturation / m)
	}
	return axis
}

// axisWeights combines the four axes with platform- and content-type
// dependent weights. Video on platforms without a sound culture zeroes
// the sound weight and redistributes it.
func axisWeights(platform, contentType string) (hashtag, sound, format, topic float64) {
	hashtag, sound, format, topic = 0.35, 0.25, 0.2, 0.2
	soundPlatform := platform == domain.PlatformTikTok || platform == domain.PlatformInstagram
	if contentType != domain.ContentTypeVideo || !soundPlatform {
		hashtag += sound * 0.5
		topic += sound * 0.3
		format += sound * 0.2
		sound = 0
	}
	return hashtag, sound, format, topic
}

// freshnessDecay is a linear decay over 14 days from started_trending.
func freshnessDecay(started time.Time, now time.Time) float64 {
	if started.IsZero() || started.After(now) {
		return 1
	}
	ageDays := now.Sub(started).Hours() / 24
	return domain.Clamp01(1 - ageDays/14)
}

func (e *TrendExtractor) freshness(in TrendInput, snapshot *domain.TrendSnapshot, now time.Time) float64 {
	var sum float64
	var n float64
	for _, t := range in.Hashtags {
		if item, ok := snapshot.Hashtag(t); ok {
			sum += freshnessDecay(item.StartedTrending, now)
			n++
		}
	}
	if item, ok := snapshot.Sound(in.SoundID); ok {
		sum += freshnessDecay(item.StartedTrending, now)
		n++
	}
	if n == 0 {
		return 0.5
	}
	return sum / n
}

// timingScore maps (momentum, saturation) to the documented 4-branch
// thresholds; riding a fresh wave beats joining a saturated one.
func timingScore(velocity, saturation float64) float64 {
	switch {
	case velocity > 0.5 && saturation < 0.4:
		return 0.9
	case velocity > 0.3 && saturation < 0.6:
		return 0.7
	case velocity > 0 && saturation < 0.8:
		return 0.5
	default:
		return 0.3
	}
}

func platformBoost(platform, contentType string) float64 {
	switch platform {
	case domain.PlatformTikTok:
		if contentType == domain.ContentTypeVideo {
			return 0.15
		}
		return 0.05
	case domain.PlatformInstagram:
		if contentType == domain.ContentTypeVideo || contentType == domain.ContentTypeCarousel {
			return 0.1
		}
		return 0.05
	case domain.PlatformYouTube:
		return 0.08
	case domain.PlatformPinterest:
		if contentType == domain.ContentTypeImage {
			return 0.1
		}
		return 0.03
	default:
		return 0.05
	}
}
