package scoring

import (
	"strings"

	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/domain"
)

const audienceModel = "audience"

// platformAgeSkew is the dominant age group per platform, used as the
// demographic proxy when no audience report is attached.
var platformAgeSkew = map[string]string{
	domain.PlatformTikTok:    domain.AgeGroupYoungAdult,
	domain.PlatformInstagram: domain.AgeGroupAdult,
	domain.PlatformYouTube:   domain.AgeGroupAdult,
	domain.PlatformFacebook:  domain.AgeGroupMiddle,
	domain.PlatformPinterest: domain.AgeGroupMiddle,
}

var adjacentAgeGroups = map[string][]string{
	domain.AgeGroupTeen:       {domain.AgeGroupYoungAdult},
	domain.AgeGroupYoungAdult: {domain.AgeGroupTeen, domain.AgeGroupAdult},
	domain.AgeGroupAdult:      {domain.AgeGroupYoungAdult, domain.AgeGroupMiddle},
	domain.AgeGroupMiddle:     {domain.AgeGroupAdult, domain.AgeGroupSenior},
	domain.AgeGroupSenior:     {domain.AgeGroupMiddle},
}

// AudienceFitScorer scores brand/creator compatibility from
// demographic, interest, style, safety and authenticity sub-scores.
type AudienceFitScorer struct {
	artifact *WeightArtifact
	basis    string
}

func NewAudienceFitScorer(modelsDir string) *AudienceFitScorer {
	artifact, _ := LoadArtifact(modelsDir, audienceModel)
	basis := domain.BasisHeuristic
	if artifact != nil {
		basis = domain.BasisModel
	}
	return &AudienceFitScorer{artifact: artifact, basis: basis}
}

func (s *AudienceFitScorer) Basis() string { return s.basis }

// Score never fails; an empty brief yields a neutral fit with a
// degraded marker.
func (s *AudienceFitScorer) Score(creator *domain.CreatorFeatureSet, content domain.ContentFeatureSet, brief domain.BrandBrief) domain.AudienceFit {
	var degraded []string

	fit := domain.AudienceFit{Basis: s.basis}
	fit.DemographicMatch = demographicMatch(content.Platform, brief.TargetAgeGroup)
	fit.InterestOverlap = interestOverlap(creator, content, brief.Interests)
	fit.StyleCompatibility = styleCompatibility(content, brief.ContentStyle)
	fit.SafetyScore = safetyScore(content, brief.SafetyStrict)
	if creator != nil {
		fit.AuthenticityScore = creator.AudienceAuthenticity
	} else {
		fit.AuthenticityScore = 0.5
		degraded = append(degraded, "no_creator_context")
	}
	if brief.TargetAgeGroup == "" && len(brief.Interests) == 0 && brief.ContentStyle == "" {
		degraded = append(degraded, "empty_brand_brief")
	}

	fit.Score = domain.Clamp01(
		0.25*fit.DemographicMatch +
			0.25*fit.InterestOverlap +
			0.20*fit.StyleCompatibility +
			0.15*fit.SafetyScore +
			0.15*fit.AuthenticityScore)

	fit.Confidence = Confidence(ConfidenceSignals{
		Historical: creator != nil && creator.HistoricalPosts >= 5,
		Trained:    s.artifact != nil,
		Consistent: creator != nil && creator.ConsistencyScore > 0.7,
		Degraded:   len(degraded),
	})
	fit.Degraded = degraded
	fit.Reasoning = audienceReasoning(fit)
	return fit
}

func demographicMatch(platform, targetAgeGroup string) float64 {
	if targetAgeGroup == "" {
		return 0.6
	}
	dominant := platformAgeSkew[platform]
	if dominant == targetAgeGroup {
		return 0.9
	}
	for _, adjacent := range adjacentAgeGroups[dominant] {
		if adjacent == targetAgeGroup {
			return 0.7
		}
	}
	return 0.4
}

func interestOverlap(creator *domain.CreatorFeatureSet, content domain.ContentFeatureSet, interests []string) float64 {
	if len(interests) == 0 {
		return 0.5
	}
	tags := map[string]bool{}
	if creator != nil {
		for _, t := range creator.TopHashtags {
			tags[t] = true
		}
	}
	matches := 0
	for _, interest := range interests {
		norm := domain.NormalizeHashtag(interest)
		if tags[norm] || strings.Contains(strings.ToLower(content.CTAType), norm) {
			matches++
		}
	}
	return domain.Clamp01(0.3 + 0.7*float64(matches)/float64(len(interests)))
}

func styleCompatibility(content domain.ContentFeatureSet, style string) float64 {
	switch strings.ToLower(strings.TrimSpace(style)) {
	case "":
		return 0.6
	case "energetic", "bold":
		return domain.Clamp01(0.4 + 0.4*content.HookStrength + 0.1*float64(minInt(content.ExclamationCount, 3)))
	case "polished", "premium":
		return domain.Clamp01(0.3 + 0.7*content.VisualQuality)
	case "casual", "authentic":
		return domain.Clamp01(0.5 + 0.3*content.Sentiment + 0.05*float64(minInt(content.EmojiCount, 4)))
	default:
		return 0.5
	}
}

func safetyScore(content domain.ContentFeatureSet, strict bool) float64 {
	score := 0.8
	if content.Sentiment < 0.35 {
		score -= 0.3
	}
	if strict {
		score -= 0.1
	}
	return domain.Clamp01(score)
}

func audienceReasoning(fit domain.AudienceFit) string {
	switch {
	case fit.Score >= 0.75:
		return "Strong audience fit across demographics, interests and brand safety."
	case fit.Score >= 0.5:
		return "Workable fit; demographic or interest overlap leaves room to sharpen targeting."
	default:
		return "Weak fit: the creator's audience and the brand brief diverge on core signals."
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
