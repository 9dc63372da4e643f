package scoring

import (
	"math"

	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/domain"
)

// viralThresholds are the per-platform bars a post must clear before
// it counts as viral on that platform.
type viralThresholds struct {
	Views          float64
	EngagementRate float64
	PeakHours      int
}

var viralBars = map[string]viralThresholds{
	domain.PlatformTikTok:    {Views: 1_000_000, EngagementRate: 0.15, PeakHours: 12},
	domain.PlatformInstagram: {Views: 500_000, EngagementRate: 0.10, PeakHours: 24},
	domain.PlatformYouTube:   {Views: 1_000_000, EngagementRate: 0.08, PeakHours: 72},
	domain.PlatformFacebook:  {Views: 250_000, EngagementRate: 0.06, PeakHours: 24},
	domain.PlatformPinterest: {Views: 100_000, EngagementRate: 0.05, PeakHours: 168},
}

const viralModel = "viral"

// ViralScorer produces the 0-100 viral score, probability, reach
// multiplier and peak-time estimate.
type ViralScorer struct {
	artifact *WeightArtifact
	basis    string
}

func NewViralScorer(modelsDir string) *ViralScorer {
	artifact, _ := LoadArtifact(modelsDir, viralModel)
	basis := domain.BasisHeuristic
	if artifact != nil {
		basis = domain.BasisModel
	}
	return &ViralScorer{artifact: artifact, basis: basis}
}

func (s *ViralScorer) Basis() string { return s.basis }

// Score rates predicted performance for viral potential.
func (s *ViralScorer) Score(content domain.ContentFeatureSet, creator *domain.CreatorFeatureSet, trends domain.TrendFeatureSet, engagement domain.EngagementPrediction) domain.ViralScore {
	bars := viralBars[content.Platform]
	var degraded []string
	degraded = append(degraded, content.Degraded...)

	factors := map[string]float64{
		"hook":            content.HookStrength,
		"trend_alignment": trends.OverallScore,
		"trend_timing":    trends.TimingScore,
		"visual":          content.VisualQuality,
		"shareability":    shareability(content, engagement, bars),
		"creator_reach":   creatorReach(creator),
	}
	if s.artifact != nil {
		raw := s.artifact.Apply(featureVector(content, creator, trends))
		factors["model_adjustment"] = domain.Clamp01(raw / 100)
	}

	weighted := 0.25*factors["hook"] +
		0.20*factors["trend_alignment"] +
		0.10*factors["trend_timing"] +
		0.15*factors["visual"] +
		0.20*factors["shareability"] +
		0.10*factors["creator_reach"]
	if adj, ok := factors["model_adjustment"]; ok {
		weighted = 0.8*weighted + 0.2*adj
	}
	score := domain.Clamp100(weighted * 100)

	historical := creator != nil && creator.HistoricalPosts >= 5
	confidence := Confidence(ConfidenceSignals{
		Historical:       historical,
		Trained:          s.artifact != nil,
		Consistent:       creator != nil && creator.ConsistencyScore > 0.7,
		MediaUnavailable: content.MediaUnavailable,
		Degraded:         len(degraded),
	})

	return domain.ViralScore{
		Score:           score,
		Probability:     domain.Clamp01(math.Pow(score/100, 1.5)),
		ReachMultiplier: 1 + score/25,
		PeakHoursAfter:  bars.PeakHours,
		FactorBreakdown: factors,
		Confidence:      confidence,
		Basis:           s.basis,
		Degraded:        degraded,
		Reasoning:       viralReasoning(score, factors),
	}
}

// CalculateFromEngagement scores observed metrics against the platform
// viral bars: views 0.40, engagement rate 0.35, share rate 0.25.
func (s *ViralScorer) CalculateFromEngagement(views, likes, comments, shares int64, platform string) domain.ViralScore {
	platform = domain.NormalizePlatform(platform)
	bars := viralBars[platform]

	denom := float64(views)
	if denom < 1 {
		denom = 1
	}
	viewsScore := math.Min(float64(views)/bars.Views, 1)
	engagementScore := math.Min((float64(likes+comments+shares)/denom)/bars.EngagementRate, 1)
	shareScore := math.Min(float64(shares)/denom*100, 1)

	score := domain.Clamp100((viewsScore*0.40 + engagementScore*0.35 + shareScore*0.25) * 100)
	return domain.ViralScore{
		Score:           score,
		Probability:     domain.Clamp01(math.Pow(score/100, 1.5)),
		ReachMultiplier: 1 + score/25,
		PeakHoursAfter:  bars.PeakHours,
		FactorBreakdown: map[string]float64{
			"views":      viewsScore,
			"engagement": engagementScore,
			"shares":     shareScore,
		},
		Confidence: 0.9,
		Basis:      domain.BasisHeuristic,
		Reasoning:  "Scored from observed engagement against platform viral thresholds.",
	}
}

func shareability(content domain.ContentFeatureSet, engagement domain.EngagementPrediction, bars viralThresholds) float64 {
	views := float64(engagement.PredictedViews)
	if views < 1 {
		views = 1
	}
	predicted := float64(engagement.PredictedShares) / views * 100
	base := math.Min(predicted, 1)
	if content.CTAType == "share" {
		base = math.Min(base+0.2, 1)
	}
	if content.EmojiCount > 0 {
		base = math.Min(base+0.05, 1)
	}
	return base
}

func creatorReach(creator *domain.CreatorFeatureSet) float64 {
	if creator == nil || creator.FollowerCount <= 0 {
		return 0.3
	}
	// log10 scale: 1k followers -> 0.43, 100k -> 0.71, 10M -> 1.0.
	return domain.Clamp01(math.Log10(float64(creator.FollowerCount)) / 7)
}

func viralReasoning(score float64, factors map[string]float64) string {
	switch {
	case score >= 70:
		return "High viral potential: hook, trends and shareability all align."
	case score >= 40:
		if factors["trend_alignment"] < 0.3 {
			return "Moderate potential; trend alignment is the biggest lever left."
		}
		return "Moderate viral potential with room in hook strength and shareability."
	default:
		return "Low viral potential; the content lacks a strong hook or trend signal."
	}
}
