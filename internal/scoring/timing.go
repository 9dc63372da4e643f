package scoring

import (
	"sort"

	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/domain"
)

const timingModel = "timing"

var timingDays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// hourBase is the platform-independent hour-of-day activity curve,
// peaking in the evening commute/wind-down window.
var hourBase = [24]float64{
	0.15, 0.10, 0.08, 0.06, 0.06, 0.10, // 0-5
	0.25, 0.40, 0.45, 0.45, 0.50, 0.55, // 6-11
	0.65, 0.60, 0.55, 0.55, 0.60, 0.70, // 12-17
	0.85, 0.95, 0.90, 0.80, 0.55, 0.30, // 18-23
}

// platformHourBoost nudges the base curve per platform.
var platformHourBoost = map[string]map[int]float64{
	domain.PlatformTikTok:    {19: 0.05, 20: 0.05, 21: 0.05, 12: 0.05},
	domain.PlatformInstagram: {11: 0.05, 12: 0.05, 19: 0.05},
	domain.PlatformYouTube:   {17: 0.05, 18: 0.05, 20: 0.05},
	domain.PlatformFacebook:  {9: 0.05, 13: 0.05, 15: 0.05},
	domain.PlatformPinterest: {20: 0.05, 21: 0.1, 14: 0.05},
}

var dayScores = map[string]float64{
	"monday": 0.6, "tuesday": 0.75, "wednesday": 0.8, "thursday": 0.85,
	"friday": 0.9, "saturday": 0.85, "sunday": 0.7,
}

// ageActivity shifts hour preference per age group: teens skew late,
// seniors skew to the morning.
var ageActivity = map[string]map[int]float64{
	domain.AgeGroupTeen:       {15: 0.1, 16: 0.1, 21: 0.1, 22: 0.1, 23: 0.05},
	domain.AgeGroupYoungAdult: {12: 0.05, 19: 0.05, 20: 0.1, 21: 0.1, 22: 0.05},
	domain.AgeGroupAdult:      {7: 0.05, 12: 0.1, 18: 0.05, 19: 0.05, 20: 0.05},
	domain.AgeGroupMiddle:     {7: 0.1, 8: 0.05, 12: 0.05, 19: 0.05},
	domain.AgeGroupSenior:     {7: 0.1, 8: 0.1, 9: 0.1, 14: 0.05, 18: 0.05},
}

// TimingOptimizer recommends posting slots from static activity tables,
// age-group curves and the creator's own history when available.
type TimingOptimizer struct {
	artifact *WeightArtifact
	basis    string
}

func NewTimingOptimizer(modelsDir string) *TimingOptimizer {
	artifact, _ := LoadArtifact(modelsDir, timingModel)
	basis := domain.BasisHeuristic
	if artifact != nil {
		basis = domain.BasisModel
	}
	return &TimingOptimizer{artifact: artifact, basis: basis}
}

func (t *TimingOptimizer) Basis() string { return t.basis }

// PredictOptimalTimes ranks (day, hour) slots. Recommended slots never
// include two on the same day within two hours of each other.
func (t *TimingOptimizer) PredictOptimalTimes(platform, ageGroup string, creator *domain.CreatorFeatureSet, limit int) domain.OptimalTime {
	platform = domain.NormalizePlatform(platform)
	if limit <= 0 {
		limit = 3
	}
	if limit > 10 {
		limit = 10
	}

	candidates := make([]domain.TimeSlot, 0, 24*len(timingDays))
	for _, day := range timingDays {
		for hour := 0; hour < 24; hour++ {
			candidates = append(candidates, domain.TimeSlot{
				Day:   day,
				Hour:  hour,
				Score: t.slotScore(platform, ageGroup, day, hour, creator),
			})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].Score > candidates[j].Score })

	slots := dedupeSlots(candidates, limit)
	historical := creator != nil && creator.HistoricalPosts >= 5
	return domain.OptimalTime{
		Slots: slots,
		Confidence: Confidence(ConfidenceSignals{
			Historical: historical,
			Trained:    t.artifact != nil,
			Consistent: creator != nil && creator.ConsistencyScore > 0.7,
		}),
		Basis:     t.basis,
		Reasoning: timingReasoning(slots, historical),
	}
}

func (t *TimingOptimizer) slotScore(platform, ageGroup, day string, hour int, creator *domain.CreatorFeatureSet) float64 {
	score := hourBase[hour] * dayScores[day]
	if boost, ok := platformHourBoost[platform][hour]; ok {
		score += boost
	}
	if curve, ok := ageActivity[ageGroup]; ok {
		score += curve[hour]
	}
	if creator != nil && creator.HistoricalPosts >= 5 {
		if creator.BestPostingDay == day {
			score += 0.08
		}
		if creator.BestPostingHour == hour {
			score += 0.12
		}
	}
	return domain.Clamp01(score)
}

// dedupeSlots keeps the highest-scored slots while enforcing the
// two-hour same-day separation invariant.
func dedupeSlots(candidates []domain.TimeSlot, limit int) []domain.TimeSlot {
	out := make([]domain.TimeSlot, 0, limit)
	for _, c := range candidates {
		tooClose := false
		for _, chosen := range out {
			if chosen.Day == c.Day && abs(chosen.Hour-c.Hour) < 2 {
				tooClose = true
				break
			}
		}
		if tooClose {
			continue
		}
		out = append(out, c)
		if len(out) == limit {
			break
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func timingReasoning(slots []domain.TimeSlot, historical bool) string {
	if len(slots) == 0 {
		return "No slots could be ranked."
	}
	if historical {
		return "Slots blend platform activity curves with this creator's own engagement history."
	}
	return "Slots derive from platform activity curves; creator history was not available."
}
