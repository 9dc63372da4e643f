package scoring

import (
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/domain"
)

// platformBaseRate holds the per-platform heuristic base rates used
// when no trained artifact is available.
type platformBaseRate struct {
	ViewsPerFollower float64
	EngagementRate   float64
	LikeShare        float64
	CommentShare     float64
	ShareShare       float64
}

var baseRates = map[string]platformBaseRate{
	domain.PlatformTikTok:    {ViewsPerFollower: 0.35, EngagementRate: 0.06, LikeShare: 0.80, CommentShare: 0.12, ShareShare: 0.08},
	domain.PlatformInstagram: {ViewsPerFollower: 0.25, EngagementRate: 0.04, LikeShare: 0.85, CommentShare: 0.10, ShareShare: 0.05},
	domain.PlatformYouTube:   {ViewsPerFollower: 0.15, EngagementRate: 0.035, LikeShare: 0.82, CommentShare: 0.14, ShareShare: 0.04},
	domain.PlatformFacebook:  {ViewsPerFollower: 0.08, EngagementRate: 0.02, LikeShare: 0.75, CommentShare: 0.15, ShareShare: 0.10},
	domain.PlatformPinterest: {ViewsPerFollower: 0.05, EngagementRate: 0.015, LikeShare: 0.70, CommentShare: 0.05, ShareShare: 0.25},
}

const engagementModel = "engagement"

// EngagementPredictor estimates views/likes/comments/shares from the
// fused feature vector: a trained weight artifact when one is
// available, heuristic formulas otherwise. Train publishes a refit
// artifact through the atomic pointer, so it takes effect for
// in-flight traffic without locking Predict.
type EngagementPredictor struct {
	artifact atomic.Pointer[WeightArtifact]
}

func NewEngagementPredictor(modelsDir string) *EngagementPredictor {
	p := &EngagementPredictor{}
	if artifact, _ := LoadArtifact(modelsDir, engagementModel); artifact != nil {
		p.artifact.Store(artifact)
	}
	return p
}

func (p *EngagementPredictor) Basis() string {
	if p.artifact.Load() != nil {
		return domain.BasisModel
	}
	return domain.BasisHeuristic
}

// Predict never fails; missing creator context degrades to platform
// medians and a lower confidence.
func (p *EngagementPredictor) Predict(content domain.ContentFeatureSet, creator *domain.CreatorFeatureSet, trends domain.TrendFeatureSet) domain.EngagementPrediction {
	artifact := p.artifact.Load()
	rates := baseRates[content.Platform]
	var degraded []string

	audience := 10_000.0
	historical := false
	if creator != nil && creator.FollowerCount > 0 {
		audience = float64(creator.FollowerCount)
		historical = creator.HistoricalPosts >= 5
	} else {
		degraded = append(degraded, "no_creator_context")
	}
	degraded = append(degraded, content.Degraded...)

	multiplier := contentMultiplier(content, trends)
	baseViews := audience * rates.ViewsPerFollower * multiplier
	if creator != nil && creator.AvgViews > 0 {
		// Blend the formula with the creator's own history; history wins
		// as the sample grows.
		weight := math.Min(float64(creator.HistoricalPosts)/20, 0.7)
		baseViews = baseViews*(1-weight) + creator.AvgViews*multiplier*weight
	}

	engagementRate := rates.EngagementRate * engagementMultiplier(content, creator, trends)
	engagementRate = domain.Clamp01(engagementRate)

	views := int64(math.Max(baseViews, 0))
	interactions := float64(views) * engagementRate
	likes := int64(interactions * rates.LikeShare)
	comments := int64(interactions * rates.CommentShare)
	shares := int64(interactions * rates.ShareShare)

	if artifact != nil {
		adjusted := artifact.Apply(featureVector(content, creator, trends))
		if adjusted > 0 {
			views = int64(adjusted)
			interactions = float64(views) * engagementRate
			likes = int64(interactions * rates.LikeShare)
			comments = int64(interactions * rates.CommentShare)
			shares = int64(interactions * rates.ShareShare)
		}
	}

	confidence := Confidence(ConfidenceSignals{
		Historical:       historical,
		Trained:          artifact != nil,
		Consistent:       creator != nil && creator.ConsistencyScore > 0.7,
		MediaUnavailable: content.MediaUnavailable,
		Degraded:         len(degraded),
	})
	spread := 0.15 + 0.25*(1-confidence)

	basis := domain.BasisHeuristic
	if artifact != nil {
		basis = domain.BasisModel
	}
	return domain.EngagementPrediction{
		PredictedViews:    views,
		PredictedLikes:    likes,
		PredictedComments: comments,
		PredictedShares:   shares,
		EngagementRate:    domain.EngagementRate(views, likes, comments, shares),
		ViewsLow:          int64(float64(views) * (1 - spread)),
		ViewsHigh:         int64(float64(views) * (1 + spread)),
		Confidence:        confidence,
		Basis:             basis,
		Degraded:          degraded,
		Reasoning:         engagementReasoning(content, creator, multiplier),
	}
}

// Train refits the linear views model against observed outcomes,
// persists the artifact and publishes it to the running predictor.
func (p *EngagementPredictor) Train(modelsDir string, samples []TrainingSample, now time.Time) (*WeightArtifact, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("no training samples")
	}
	artifact := fitLinear(engagementModel, samples, now)
	if err := artifact.Save(modelsDir); err != nil {
		return nil, err
	}
	p.artifact.Store(artifact)
	return artifact, nil
}

// contentMultiplier scales the platform base reach by content quality,
// hook strength and trend alignment.
func contentMultiplier(content domain.ContentFeatureSet, trends domain.TrendFeatureSet) float64 {
	m := 0.5 +
		0.6*content.HookStrength +
		0.4*trends.OverallScore +
		0.3*content.VisualQuality +
		0.2*content.TrendingRatio +
		trends.PlatformBoost
	if content.HasCTA {
		m += 0.1
	}
	return math.Max(0.2, math.Min(m, 3.0))
}

func engagementMultiplier(content domain.ContentFeatureSet, creator *domain.CreatorFeatureSet, trends domain.TrendFeatureSet) float64 {
	m := 0.7 + 0.3*content.HookStrength + 0.2*trends.Momentum
	if content.QuestionCount > 0 {
		m += 0.1
	}
	if content.HasCTA {
		m += 0.1
	}
	if creator != nil && creator.AvgEngagementRate > 0 {
		rates := baseRates[creator.Platform]
		if rates.EngagementRate > 0 {
			ratio := creator.AvgEngagementRate / rates.EngagementRate
			m *= math.Max(0.5, math.Min(ratio, 2.5))
		}
	}
	return m
}

func featureVector(content domain.ContentFeatureSet, creator *domain.CreatorFeatureSet, trends domain.TrendFeatureSet) map[string]float64 {
	v := map[string]float64{
		"hook_strength":   content.HookStrength,
		"visual_quality":  content.VisualQuality,
		"trending_ratio":  content.TrendingRatio,
		"hashtag_count":   float64(content.HashtagCount),
		"sentiment":       content.Sentiment,
		"trend_overall":   trends.OverallScore,
		"trend_momentum":  trends.Momentum,
		"trend_freshness": trends.Freshness,
	}
	if content.HasCTA {
		v["has_cta"] = 1
	}
	if creator != nil {
		v["followers"] = float64(creator.FollowerCount)
		v["avg_views"] = creator.AvgViews
		v["avg_engagement"] = creator.AvgEngagementRate
		v["consistency"] = creator.ConsistencyScore
		v["authenticity"] = creator.AudienceAuthenticity
	}
	return v
}

func engagementReasoning(content domain.ContentFeatureSet, creator *domain.CreatorFeatureSet, multiplier float64) string {
	switch {
	case creator == nil || creator.FollowerCount == 0:
		return "Estimated from platform medians; no creator history was available."
	case multiplier > 1.5:
		return "Strong hook and trend alignment project reach well above this creator's baseline."
	case multiplier < 0.8:
		return "Weak hook and low trend alignment hold the projection below baseline."
	default:
		return "Projection tracks the creator's historical baseline with minor content adjustments."
	}
}

// TrainingSample pairs a recorded feature vector with the observed views.
type TrainingSample struct {
	Features map[string]float64
	Target   float64
}

// fitLinear is a one-pass per-feature ratio fit: weight_i scales the
// feature's mean contribution to the mean target. Crude, but cheap and
// stable for the small sample counts this service sees.
func fitLinear(model string, samples []TrainingSample, now time.Time) *WeightArtifact {
	sums := map[string]float64{}
	var targetSum float64
	for _, s := range samples {
		targetSum += s.Target
		for name, value := range s.Features {
			sums[name] += value
		}
	}
	n := float64(len(samples))
	meanTarget := targetSum / n

	active := 0
	for _, total := range sums {
		if total != 0 {
			active++
		}
	}
	weights := map[string]float64{}
	if active > 0 {
		share := meanTarget / float64(active)
		for name, total := range sums {
			meanFeature := total / n
			if meanFeature != 0 {
				weights[name] = share / meanFeature
			}
		}
	}
	return &WeightArtifact{
		Model:       model,
		Version:     now.UTC().Format("20060102T150405Z"),
		Weights:     weights,
		Bias:        0,
		SampleCount: int64(len(samples)),
		TrainedAt:   now.UTC(),
	}
}
