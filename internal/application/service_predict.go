package application

import (
	"context"
	"encoding/json"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/domain"
	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/features"
	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/platforms"
	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/ports"
	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/scoring"
)

// Predict runs the full pipeline for one content item: feature
// extraction, the four scorers, platform analysis and persistence of the
// prediction row for later outcome matching.
func (s *Service) Predict(ctx context.Context, actor Actor, input PredictInput) (domain.PredictionResponse, error) {
	if strings.TrimSpace(actor.SubjectID) == "" {
		return domain.PredictionResponse{}, domain.ErrUnauthorized
	}
	if err := validateContent(input.Content); err != nil {
		return domain.PredictionResponse{}, err
	}

	resp := s.analyze(ctx, input)
	resp.PredictionID = "pred_" + uuid.NewString()
	if input.Creator != nil {
		resp.CreatorID = strings.TrimSpace(input.Creator.Profile.CreatorID)
	}

	if s.insights != nil {
		if lines, err := s.insights.Reasoning(ctx, resp.Analysis, resp.Engagement); err == nil && len(lines) > 0 {
			resp.Engagement.Reasoning = strings.Join(lines, " ")
		} else if err != nil {
			s.logger.WarnContext(ctx, "insight generation failed",
				"module", "application.predict",
				"layer", "application",
				"operation", "insights",
				"outcome", "degraded",
				"error", err,
			)
		}
	}

	if s.outcomes != nil {
		row := domain.PredictionOutcome{
			PredictionID: resp.PredictionID,
			CreatorID:    resp.CreatorID,
			Platform:     resp.Platform,
			ContentType:  resp.ContentType,
			Predicted: domain.OutcomeMetrics{
				Views:    resp.Engagement.PredictedViews,
				Likes:    resp.Engagement.PredictedLikes,
				Comments: resp.Engagement.PredictedComments,
				Shares:   resp.Engagement.PredictedShares,
			},
			PredictedAt: resp.GeneratedAt,
		}
		if err := s.outcomes.StorePrediction(ctx, row); err != nil {
			return domain.PredictionResponse{}, err
		}
	}
	s.enqueueEvent(ctx, ports.EventPredictionGenerated, map[string]any{
		"prediction_id":   resp.PredictionID,
		"creator_id":      resp.CreatorID,
		"platform":        resp.Platform,
		"predicted_views": resp.Engagement.PredictedViews,
		"overall_score":   resp.OverallScore,
		"generated_at":    resp.GeneratedAt,
	}, resp.PredictionID)

	return resp, nil
}

// PredictVirality scores already-observed metrics without needing the
// full content pipeline.
func (s *Service) PredictVirality(_ context.Context, actor Actor, input ViralityInput) (domain.ViralScore, error) {
	if strings.TrimSpace(actor.SubjectID) == "" {
		return domain.ViralScore{}, domain.ErrUnauthorized
	}
	if input.Views < 0 || input.Likes < 0 || input.Comments < 0 || input.Shares < 0 {
		return domain.ViralScore{}, domain.ErrInvalidInput
	}
	return s.viral.CalculateFromEngagement(input.Views, input.Likes, input.Comments, input.Shares, input.Platform), nil
}

// Compare predicts every variant and ranks them by overall score.
// Variants are not persisted: only a committed draft goes through
// Predict and gets a prediction row.
func (s *Service) Compare(ctx context.Context, actor Actor, input CompareInput) ([]domain.ComparisonEntry, error) {
	if strings.TrimSpace(actor.SubjectID) == "" {
		return nil, domain.ErrUnauthorized
	}
	if len(input.Variants) < 2 || len(input.Variants) > 5 {
		return nil, domain.ErrInvalidInput
	}
	entries := make([]domain.ComparisonEntry, 0, len(input.Variants))
	for i, variant := range input.Variants {
		if err := validateContent(variant.Content); err != nil {
			return nil, err
		}
		label := strings.TrimSpace(variant.Label)
		if label == "" {
			label = "variant_" + string(rune('a'+i))
		}
		resp := s.analyze(ctx, PredictInput{
			Content: variant.Content,
			Creator: input.Creator,
			Brand:   input.Brand,
		})
		entries = append(entries, domain.ComparisonEntry{Label: label, Response: resp})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Response.OverallScore > entries[j].Response.OverallScore
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

// analyze runs extraction and scoring without persistence. Shared by
// Predict, Compare and the recommendation path.
func (s *Service) analyze(ctx context.Context, input PredictInput) domain.PredictionResponse {
	snapshot := s.currentSnapshot(ctx)
	platform := domain.NormalizePlatform(input.Content.Platform)

	media := input.Content.MediaBase64
	mediaUnavailable := false
	if len(media) == 0 && input.Content.MediaURL != "" && s.fetcher != nil {
		fetched, err := s.fetcher.Fetch(ctx, input.Content.MediaURL)
		if err != nil {
			mediaUnavailable = true
			s.logger.WarnContext(ctx, "media fetch failed",
				"module", "application.predict",
				"layer", "application",
				"operation", "fetch_media",
				"outcome", "degraded",
				"error", err,
			)
		} else {
			media = fetched
		}
	}

	content := s.content.Extract(features.ContentInput{
		ContentBytes:     media,
		Caption:          input.Content.Caption,
		Hashtags:         input.Content.Hashtags,
		ContentType:      input.Content.ContentType,
		Platform:         platform,
		DurationSeconds:  input.Content.DurationSeconds,
		MediaUnavailable: mediaUnavailable,
	}, snapshot.TrendingHashtagSet())

	var creator *domain.CreatorFeatureSet
	if input.Creator != nil {
		fs := s.creator.Extract(input.Creator.Profile, input.Creator.Posts, platform)
		creator = &fs
	}

	trends := s.trend.Extract(features.TrendInput{
		Caption:     input.Content.Caption,
		Hashtags:    input.Content.Hashtags,
		SoundID:     input.Content.SoundID,
		ContentType: input.Content.ContentType,
		Platform:    platform,
	}, snapshot)

	engagement := s.engage.Predict(content, creator, trends)
	viral := s.viral.Score(content, creator, trends, engagement)
	audience := s.audience.Score(creator, content, input.Brand)
	timing := s.timing.PredictOptimalTimes(platform, input.Brand.TargetAgeGroup, creator, 3)

	optimizer := platforms.ForPlatform(platform)
	platformAnalysis := optimizer.AnalyzeContent(content)

	analysis := domain.ContentAnalysis{
		Content:       content,
		Creator:       creator,
		Trends:        trends,
		Platform:      platform,
		PlatformScore: platformAnalysis.Score,
		PacingScore:   pacingScore(optimizer, content),
	}

	degraded := dedupeStrings(append(append([]string{}, engagement.Degraded...), audience.Degraded...))

	return domain.PredictionResponse{
		Platform:        platform,
		ContentType:     content.ContentType,
		Engagement:      engagement,
		Viral:           viral,
		Audience:        audience,
		Timing:          timing,
		Analysis:        analysis,
		OverallScore:    scoring.OverallScore(engagement.EngagementRate, viral, audience, timing),
		ConfidenceScore: engagement.Confidence,
		Degraded:        degraded,
		ModelVersion:    s.cfg.ModelVersion,
		GeneratedAt:     s.nowFn(),
	}
}

// pacingScore approximates delivery pacing from duration fit and hook
// strength; without frame-level data this is the best available proxy.
func pacingScore(optimizer platforms.Optimizer, content domain.ContentFeatureSet) float64 {
	if content.ContentType != domain.ContentTypeVideo || content.DurationSeconds <= 0 {
		return 1
	}
	band := optimizer.Config().DurationSeconds
	return domain.Clamp01(0.6*band.Score(content.DurationSeconds) + 0.4*content.HookStrength)
}

func validateContent(c ContentPayload) error {
	if strings.TrimSpace(c.Caption) == "" && len(c.MediaBase64) == 0 && strings.TrimSpace(c.MediaURL) == "" {
		return domain.ErrInvalidInput
	}
	if c.DurationSeconds < 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

func dedupeStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := map[string]bool{}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// enqueueEvent writes to the transactional outbox; event loss is
// tolerated only when no outbox is wired (tests, degraded boot).
func (s *Service) enqueueEvent(ctx context.Context, eventType string, payload map[string]any, partitionKey string) {
	if s.outbox == nil {
		return
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return
	}
	if err := s.outbox.Enqueue(ctx, ports.OutboxEvent{
		EventType:    eventType,
		Payload:      encoded,
		PartitionKey: partitionKey,
	}); err != nil {
		s.logger.ErrorContext(ctx, "outbox enqueue failed",
			"module", "application.events",
			"layer", "application",
			"operation", "enqueue",
			"outcome", "failure",
			"event_type", eventType,
			"error", err,
		)
	}
}
