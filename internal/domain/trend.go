package domain

import (
	"strings"
	"time"
)

const (
	TrendTypeHashtag = "hashtag"
	TrendTypeSound   = "sound"
	TrendTypeTopic   = "topic"
)

// TrendingItem is one registered trending hashtag, sound or topic.
type TrendingItem struct {
	ID              string    `json:"id"`
	Type            string    `json:"type"`
	Name            string    `json:"name"`
	Popularity      float64   `json:"popularity"`
	Velocity        float64   `json:"velocity"`
	Saturation      float64   `json:"saturation"`
	Platforms       []string  `json:"platforms,omitempty"`
	StartedTrending time.Time `json:"started_trending"`
}

// TrendSnapshot is an immutable view of the current trend registries.
// Extraction reads one snapshot for a whole request; updates swap the
// snapshot wholesale instead of mutating shared state.
type TrendSnapshot struct {
	Hashtags    map[string]TrendingItem `json:"hashtags"`
	Sounds      map[string]TrendingItem `json:"sounds"`
	Topics      map[string]TrendingItem `json:"topics"`
	RefreshedAt time.Time               `json:"refreshed_at"`
}

// EmptyTrendSnapshot returns a snapshot with initialized registries.
func EmptyTrendSnapshot() *TrendSnapshot {
	return &TrendSnapshot{
		Hashtags: map[string]TrendingItem{},
		Sounds:   map[string]TrendingItem{},
		Topics:   map[string]TrendingItem{},
	}
}

// Hashtag looks up a trending hashtag, case-insensitive and #-stripped.
func (s *TrendSnapshot) Hashtag(tag string) (TrendingItem, bool) {
	item, ok := s.Hashtags[NormalizeHashtag(tag)]
	return item, ok
}

func (s *TrendSnapshot) Sound(id string) (TrendingItem, bool) {
	item, ok := s.Sounds[strings.ToLower(strings.TrimSpace(id))]
	return item, ok
}

// TrendingHashtagSet returns the normalized hashtag names, used by the
// content extractor's trending-ratio computation.
func (s *TrendSnapshot) TrendingHashtagSet() map[string]bool {
	out := make(map[string]bool, len(s.Hashtags))
	for name := range s.Hashtags {
		out[name] = true
	}
	return out
}

func NormalizeHashtag(tag string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(tag), "#"))
}

// TrendAxis is the per-axis alignment of one content item with the
// current trends.
type TrendAxis struct {
	Score      float64 `json:"score"`
	Velocity   float64 `json:"velocity"`
	Saturation float64 `json:"saturation"`
}

// TrendFeatureSet is the trend-alignment view of one content item.
type TrendFeatureSet struct {
	HashtagAlignment TrendAxis `json:"hashtag_alignment"`
	SoundAlignment   TrendAxis `json:"sound_alignment"`
	FormatAlignment  TrendAxis `json:"format_alignment"`
	TopicAlignment   TrendAxis `json:"topic_alignment"`

	OverallScore  float64 `json:"overall_score"`
	Momentum      float64 `json:"momentum"`
	Freshness     float64 `json:"freshness"`
	Saturation    float64 `json:"saturation"`
	TimingScore   float64 `json:"timing_score"`
	PlatformBoost float64 `json:"platform_boost"`

	MatchedHashtags []string `json:"matched_hashtags,omitempty"`
	MatchedFormat   string   `json:"matched_format,omitempty"`
}
