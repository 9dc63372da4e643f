package recommend

import (
	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/domain"
)

// categoryTemplate is the hand-authored blueprint behind one
// recommendation category. Impact constants are heuristic, not
// calibrated from data.
type categoryTemplate struct {
	Category        string
	Priority        string
	Title           string
	Rationale       string
	TargetScore     float64
	Impact          float64
	Difficulty      string
	Steps           []domain.ActionStep
	Templates       []domain.Template
	PlatformNotes   map[string]string
	AffectedMetrics []string
}

var categoryTemplates = map[string]categoryTemplate{
	domain.RecommendationCategoryHook: {
		Category:    domain.RecommendationCategoryHook,
		Priority:    domain.PriorityCritical,
		Title:       "Strengthen the opening hook",
		Rationale:   "Viewers decide within the first two seconds; a weak hook caps every downstream metric.",
		TargetScore: 0.85,
		Impact:      0.25,
		Difficulty:  domain.DifficultyMedium,
		Steps: []domain.ActionStep{
			{Step: 1, Action: "Rewrite the first line as a curiosity gap or bold claim", TimeMinutes: 10},
			{Step: 2, Action: "Move the payoff moment into the first 2 seconds", Details: "Re-edit so the most striking frame opens the video", TimeMinutes: 20},
			{Step: 3, Action: "Add an on-screen text hook over the first frame", TimeMinutes: 10},
		},
		Templates: []domain.Template{
			{Name: "curiosity gap", Example: "Nobody talks about this, but..."},
			{Name: "payoff tease", Example: "Wait for the last step - it changes everything"},
		},
		PlatformNotes: map[string]string{
			domain.PlatformTikTok:  "Completion rate is the top ranking signal; the hook earns it",
			domain.PlatformYouTube: "The hook must match the title promise or session time drops",
		},
		AffectedMetrics: []string{"completion_rate", "views"},
	},
	domain.RecommendationCategoryCTA: {
		Category:    domain.RecommendationCategoryCTA,
		Priority:    domain.PriorityHigh,
		Title:       "Add a clear call to action",
		Rationale:   "Content without a CTA leaves engagement on the table; one explicit ask lifts interaction measurably.",
		TargetScore: 1,
		Impact:      0.15,
		Difficulty:  domain.DifficultyEasy,
		Steps: []domain.ActionStep{
			{Step: 1, Action: "Pick one CTA matched to your goal (follow, save, comment)", TimeMinutes: 5},
			{Step: 2, Action: "Place it at the value peak, not the very end", TimeMinutes: 5},
		},
		Templates: []domain.Template{
			{Name: "comment bait", Example: "Which one would you pick? Tell me below"},
			{Name: "save ask", Example: "Save this for your next shoot"},
		},
		PlatformNotes: map[string]string{
			domain.PlatformInstagram: "Saves and shares are weighted highest; prefer a save CTA",
		},
		AffectedMetrics: []string{"comments", "saves", "follows"},
	},
	domain.RecommendationCategoryHashtags: {
		Category:    domain.RecommendationCategoryHashtags,
		Priority:    domain.PriorityHigh,
		Title:       "Rebuild the hashtag set",
		Rationale:   "Too few or untrended hashtags starve discovery; a trending/niche mix feeds both broad and targeted reach.",
		TargetScore: 0.8,
		Impact:      0.12,
		Difficulty:  domain.DifficultyEasy,
		Steps: []domain.ActionStep{
			{Step: 1, Action: "Add 2-3 currently trending hashtags relevant to the content", TimeMinutes: 10},
			{Step: 2, Action: "Add 2-3 niche hashtags your target community follows", TimeMinutes: 10},
		},
		Templates: []domain.Template{
			{Name: "mix", Example: "#grwm #springoutfit #petitefashionfinds"},
		},
		PlatformNotes: map[string]string{
			domain.PlatformFacebook:  "Hashtags carry little weight here; skip this effort",
			domain.PlatformPinterest: "Use keyword-rich descriptions instead of hashtags",
		},
		AffectedMetrics: []string{"reach", "discovery"},
	},
	domain.RecommendationCategoryVisual: {
		Category:    domain.RecommendationCategoryVisual,
		Priority:    domain.PriorityMedium,
		Title:       "Raise visual quality",
		Rationale:   "Resolution, framing or exposure falls below the platform bar and reads as low-effort in the feed.",
		TargetScore: 0.9,
		Impact:      0.10,
		Difficulty:  domain.DifficultyMedium,
		Steps: []domain.ActionStep{
			{Step: 1, Action: "Re-export at the platform's native resolution and aspect ratio", TimeMinutes: 15},
			{Step: 2, Action: "Correct exposure toward mid-tones; avoid blown highlights", TimeMinutes: 15},
			{Step: 3, Action: "Increase contrast slightly for feed legibility", TimeMinutes: 10},
		},
		PlatformNotes: map[string]string{
			domain.PlatformPinterest: "Visual quality is weighted highest of all platforms here",
		},
		AffectedMetrics: []string{"click_through", "watch_time"},
	},
	domain.RecommendationCategoryPacing: {
		Category:    domain.RecommendationCategoryPacing,
		Priority:    domain.PriorityMedium,
		Title:       "Tighten the pacing",
		Rationale:   "Long static stretches lose viewers mid-video; faster cuts defend completion rate.",
		TargetScore: 0.85,
		Impact:      0.12,
		Difficulty:  domain.DifficultyHard,
		Steps: []domain.ActionStep{
			{Step: 1, Action: "Cut any shot longer than 3 seconds", TimeMinutes: 30},
			{Step: 2, Action: "Trim dead air at the start of each sentence", TimeMinutes: 20},
			{Step: 3, Action: "Add a mid-video pattern interrupt (zoom, caption pop)", TimeMinutes: 20},
		},
		AffectedMetrics: []string{"completion_rate", "rewatches"},
	},
	domain.RecommendationCategoryCaption: {
		Category:    domain.RecommendationCategoryCaption,
		Priority:    domain.PriorityMedium,
		Title:       "Sharpen the caption",
		Rationale:   "Captions convert impressions into engagement; the first line decides whether the rest is read.",
		TargetScore: 0.8,
		Impact:      0.08,
		Difficulty:  domain.DifficultyEasy,
		Steps: []domain.ActionStep{
			{Step: 1, Action: "Rewrite the first line as a hook; the fold hides the rest", TimeMinutes: 10},
			{Step: 2, Action: "Add one question to invite comments", TimeMinutes: 5},
		},
		Templates: []domain.Template{
			{Name: "open loop", Example: "I almost didn't post this..."},
		},
		AffectedMetrics: []string{"comments", "profile_visits"},
	},
	domain.RecommendationCategoryTiming: {
		Category:    domain.RecommendationCategoryTiming,
		Priority:    domain.PriorityMedium,
		Title:       "Post in a peak window",
		Rationale:   "Early velocity compounds; posting into a dead window handicaps otherwise strong content.",
		TargetScore: 0.9,
		Impact:      0.08,
		Difficulty:  domain.DifficultyEasy,
		Steps: []domain.ActionStep{
			{Step: 1, Action: "Schedule for the top recommended slot", TimeMinutes: 5},
			{Step: 2, Action: "Stay active for 30 minutes after posting to feed early engagement", TimeMinutes: 30},
		},
		AffectedMetrics: []string{"initial_velocity", "reach"},
	},
	domain.RecommendationCategoryFormat: {
		Category:    domain.RecommendationCategoryFormat,
		Priority:    domain.PriorityMedium,
		Title:       "Fit the platform's format band",
		Rationale:   "The duration sits outside the platform's optimal band, which drags completion and distribution.",
		TargetScore: 0.9,
		Impact:      0.10,
		Difficulty:  domain.DifficultyMedium,
		Steps: []domain.ActionStep{
			{Step: 1, Action: "Re-cut toward the platform's optimal duration band", TimeMinutes: 25},
			{Step: 2, Action: "Verify the aspect ratio matches the platform native format", TimeMinutes: 10},
		},
		AffectedMetrics: []string{"completion_rate", "reach"},
	},
	domain.RecommendationCategoryAudio: {
		Category:    domain.RecommendationCategoryAudio,
		Priority:    domain.PriorityHigh,
		Title:       "Ride a trending sound",
		Rationale:   "Trending audio is a distribution channel of its own on sound-driven platforms.",
		TargetScore: 0.8,
		Impact:      0.15,
		Difficulty:  domain.DifficultyMedium,
		Steps: []domain.ActionStep{
			{Step: 1, Action: "Pick a rising sound still under heavy-rotation threshold", TimeMinutes: 15},
			{Step: 2, Action: "Re-cut the edit so beats land on transitions", TimeMinutes: 30},
		},
		PlatformNotes: map[string]string{
			domain.PlatformYouTube:  "Sounds matter less; prioritize retention edits instead",
			domain.PlatformFacebook: "Audio trends rarely transfer; treat as optional",
		},
		AffectedMetrics: []string{"reach", "discovery"},
	},
}
