package domain

import "time"

// CreatorPost is one historical post supplied with a prediction request.
type CreatorPost struct {
	PostedAt time.Time `json:"posted_at"`
	Views    int64     `json:"views"`
	Likes    int64     `json:"likes"`
	Comments int64     `json:"comments"`
	Shares   int64     `json:"shares"`
	Caption  string    `json:"caption,omitempty"`
	Hashtags []string  `json:"hashtags,omitempty"`
}

// CreatorProfile is the raw account view supplied by the caller.
type CreatorProfile struct {
	CreatorID      string     `json:"creator_id"`
	FollowerCount  int64      `json:"follower_count"`
	FollowingCount int64      `json:"following_count"`
	PostCount      int64      `json:"post_count"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
}

// CreatorFeatureSet is derived from a creator profile plus post history,
// built once per creator per request and cached with a TTL.
type CreatorFeatureSet struct {
	CreatorID string `json:"creator_id"`
	Platform  string `json:"platform"`

	FollowerCount  int64   `json:"follower_count"`
	FollowingCount int64   `json:"following_count"`
	PostCount      int64   `json:"post_count"`
	AccountAgeDays float64 `json:"account_age_days"`

	AvgEngagementRate float64 `json:"avg_engagement_rate"`
	EngagementTrend   float64 `json:"engagement_trend"`
	AvgLikes          float64 `json:"avg_likes"`
	AvgComments       float64 `json:"avg_comments"`
	AvgShares         float64 `json:"avg_shares"`
	AvgViews          float64 `json:"avg_views"`

	PostingFrequency float64  `json:"posting_frequency_per_week"`
	AvgCaptionLength float64  `json:"avg_caption_length"`
	AvgHashtagCount  float64  `json:"avg_hashtag_count"`
	TopHashtags      []string `json:"top_hashtags,omitempty"`

	EngagementVariance float64 `json:"engagement_variance"`
	ViewsVariance      float64 `json:"views_variance"`
	ConsistencyScore   float64 `json:"consistency_score"`

	AudienceAuthenticity float64 `json:"audience_authenticity"`
	GrowthScore          float64 `json:"growth_score"`

	BestPostingHour int    `json:"best_posting_hour"`
	BestPostingDay  string `json:"best_posting_day"`

	HistoricalPosts int      `json:"historical_posts"`
	Degraded        []string `json:"degraded,omitempty"`
}
