package domain

import "strings"

const (
	PlatformTikTok    = "tiktok"
	PlatformInstagram = "instagram"
	PlatformYouTube   = "youtube"
	PlatformFacebook  = "facebook"
	PlatformPinterest = "pinterest"
)

const (
	ContentTypeVideo    = "video"
	ContentTypeImage    = "image"
	ContentTypeCarousel = "carousel"
	ContentTypeStory    = "story"
	ContentTypeText     = "text"
)

const (
	BasisModel     = "model"
	BasisHeuristic = "heuristic"
)

var knownPlatforms = map[string]bool{
	PlatformTikTok:    true,
	PlatformInstagram: true,
	PlatformYouTube:   true,
	PlatformFacebook:  true,
	PlatformPinterest: true,
}

// NormalizePlatform lowercases and validates a platform tag. Unknown
// platforms fall back to TikTok so scoring always has a base-rate table.
func NormalizePlatform(raw string) string {
	p := strings.ToLower(strings.TrimSpace(raw))
	if knownPlatforms[p] {
		return p
	}
	return PlatformTikTok
}

func IsKnownPlatform(raw string) bool {
	return knownPlatforms[strings.ToLower(strings.TrimSpace(raw))]
}

func NormalizeContentType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case ContentTypeImage:
		return ContentTypeImage
	case ContentTypeCarousel:
		return ContentTypeCarousel
	case ContentTypeStory:
		return ContentTypeStory
	case ContentTypeText:
		return ContentTypeText
	default:
		return ContentTypeVideo
	}
}

// Clamp01 bounds a score to [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Clamp100 bounds a score to [0,100].
func Clamp100(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// EngagementRate recomputes the canonical engagement rate. Input rates are
// never trusted; the result is capped at 1.0.
func EngagementRate(views, likes, comments, shares int64) float64 {
	denom := views
	if denom < 1 {
		denom = 1
	}
	rate := float64(likes+comments+shares) / float64(denom)
	return Clamp01(rate)
}
