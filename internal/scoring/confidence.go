package scoring

import "github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/domain"

// ConfidenceSignals are the inputs to the shared confidence heuristic.
// Confidence here is a heuristic quality indicator, not a calibrated
// statistical quantity.
type ConfidenceSignals struct {
	Historical       bool
	Trained          bool
	Consistent       bool
	MediaUnavailable bool
	Degraded         int
}

// Confidence starts at the 0.6 base and applies bonuses for historical
// data, a trained artifact and low-variance creators, minus a penalty
// per degraded signal. When the media itself was never retrieved the
// bonuses cannot lift confidence above the base: the score rests on
// content nobody saw. Bounded to [0.1, 0.95].
func Confidence(s ConfidenceSignals) float64 {
	c := 0.6
	if s.Historical {
		c += 0.15
	}
	if s.Trained {
		c += 0.1
	}
	if s.Consistent {
		c += 0.1
	}
	if s.MediaUnavailable && c > 0.6 {
		c = 0.6
	}
	c -= 0.1 * float64(s.Degraded)
	if c < 0.1 {
		c = 0.1
	}
	if c > 0.95 {
		c = 0.95
	}
	return c
}

// overallScore fuses the four model outputs into one 0-100 number.
func OverallScore(engagementRate float64, viral domain.ViralScore, audience domain.AudienceFit, timing domain.OptimalTime) float64 {
	timingScore := 0.5
	if len(timing.Slots) > 0 {
		timingScore = timing.Slots[0].Score
	}
	score := 100 * (0.30*domain.Clamp01(engagementRate*10) +
		0.35*viral.Score/100 +
		0.20*audience.Score +
		0.15*timingScore)
	return domain.Clamp100(score)
}
