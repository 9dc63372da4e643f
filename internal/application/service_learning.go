package application

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"

	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/domain"
	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/ports"
)

// RecordOutcome attaches observed metrics to a stored prediction exactly
// once, then folds them into the creator baseline and the platform
// benchmark. The Idempotency-Key header is mandatory: outcome reports
// are retried by upstream pipelines.
func (s *Service) RecordOutcome(ctx context.Context, actor Actor, input OutcomeInput) (domain.PredictionOutcome, error) {
	if strings.TrimSpace(actor.SubjectID) == "" {
		return domain.PredictionOutcome{}, domain.ErrUnauthorized
	}
	if strings.TrimSpace(actor.IdempotencyKey) == "" {
		return domain.PredictionOutcome{}, domain.ErrIdempotencyRequired
	}
	if strings.TrimSpace(input.PredictionID) == "" || input.Actual.Views < 0 {
		return domain.PredictionOutcome{}, domain.ErrInvalidInput
	}

	requestHash := hashPayload(input)
	now := s.nowFn()
	existing, err := s.idempotency.Get(ctx, actor.IdempotencyKey, now)
	if err != nil {
		return domain.PredictionOutcome{}, err
	}
	if existing != nil {
		if existing.RequestHash != requestHash {
			return domain.PredictionOutcome{}, domain.ErrIdempotencyConflict
		}
		var cached domain.PredictionOutcome
		if err := json.Unmarshal(existing.ResponseBody, &cached); err != nil {
			return domain.PredictionOutcome{}, err
		}
		return cached, nil
	}
	if err := s.idempotency.Reserve(ctx, actor.IdempotencyKey, requestHash, now.Add(s.cfg.IdempotencyTTL)); err != nil {
		return domain.PredictionOutcome{}, err
	}

	outcome, err := s.outcomes.GetByPredictionID(ctx, input.PredictionID)
	if err != nil {
		return domain.PredictionOutcome{}, err
	}
	if outcome.ReportedAt != nil {
		return domain.PredictionOutcome{}, domain.ErrConflict
	}

	actual := input.Actual
	outcome.Actual = &actual
	outcome.ReportedAt = &now
	outcome.ViewsAccuracy = domain.MetricAccuracy(outcome.Predicted.Views, actual.Views)
	outcome.LikesAccuracy = domain.MetricAccuracy(outcome.Predicted.Likes, actual.Likes)
	predictedRate := domain.EngagementRate(outcome.Predicted.Views, outcome.Predicted.Likes, outcome.Predicted.Comments, outcome.Predicted.Shares)
	actualRate := domain.EngagementRate(actual.Views, actual.Likes, actual.Comments, actual.Shares)
	outcome.EngagementAccuracy = rateAccuracy(predictedRate, actualRate)

	if err := s.outcomes.RecordOutcome(ctx, outcome); err != nil {
		return domain.PredictionOutcome{}, err
	}

	s.updateBaseline(ctx, outcome, actual)
	s.updateBenchmark(ctx, outcome.Platform, actual)

	if len(input.AppliedCategories) > 0 && actual.Views > outcome.Predicted.Views && s.effectiveness != nil {
		for _, category := range input.AppliedCategories {
			_ = s.effectiveness.RecordBeat(ctx, strings.TrimSpace(strings.ToLower(category)), outcome.Platform, now)
		}
	}

	s.enqueueEvent(ctx, ports.EventOutcomeRecorded, map[string]any{
		"prediction_id":       outcome.PredictionID,
		"creator_id":          outcome.CreatorID,
		"platform":            outcome.Platform,
		"views_accuracy":      outcome.ViewsAccuracy,
		"engagement_accuracy": outcome.EngagementAccuracy,
		"reported_at":         now,
	}, outcome.PredictionID)

	encoded, err := json.Marshal(outcome)
	if err != nil {
		return domain.PredictionOutcome{}, err
	}
	if err := s.idempotency.Complete(ctx, actor.IdempotencyKey, 200, encoded, now); err != nil {
		return domain.PredictionOutcome{}, err
	}
	return outcome, nil
}

func (s *Service) updateBaseline(ctx context.Context, outcome domain.PredictionOutcome, actual domain.OutcomeMetrics) {
	if s.baselines == nil || outcome.CreatorID == "" {
		return
	}
	baseline, err := s.baselines.Get(ctx, outcome.CreatorID, outcome.Platform)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.WarnContext(ctx, "baseline load failed",
				"module", "application.learning",
				"layer", "application",
				"operation", "update_baseline",
				"outcome", "degraded",
				"error", err,
			)
			return
		}
		baseline = domain.CreatorBaseline{CreatorID: outcome.CreatorID, Platform: outcome.Platform}
	}
	baseline.Observe(actual, s.nowFn())
	if err := s.baselines.Upsert(ctx, baseline); err != nil {
		s.logger.WarnContext(ctx, "baseline upsert failed",
			"module", "application.learning",
			"layer", "application",
			"operation", "update_baseline",
			"outcome", "degraded",
			"error", err,
		)
	}
	if s.creator != nil {
		s.creator.Invalidate(outcome.CreatorID, outcome.Platform)
	}
}

// updateBenchmark keeps an exponential moving estimate of the platform
// medians. A true median needs the full distribution; the EMA tracks it
// closely enough for benchmark display.
func (s *Service) updateBenchmark(ctx context.Context, platform string, actual domain.OutcomeMetrics) {
	if s.benchmarks == nil {
		return
	}
	benchmark, err := s.benchmarks.Get(ctx, platform)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return
		}
		benchmark = domain.PlatformBenchmark{Platform: platform}
	}
	const alpha = 0.05
	rate := domain.EngagementRate(actual.Views, actual.Likes, actual.Comments, actual.Shares)
	if benchmark.SampleCount == 0 {
		benchmark.MedianViews = actual.Views
		benchmark.MedianEngagement = rate
	} else {
		benchmark.MedianViews = int64(float64(benchmark.MedianViews)*(1-alpha) + float64(actual.Views)*alpha)
		benchmark.MedianEngagement = benchmark.MedianEngagement*(1-alpha) + rate*alpha
	}
	benchmark.ViralViewThreshold = benchmark.MedianViews * 10
	benchmark.ViralEngagementThreshold = benchmark.MedianEngagement * 3
	benchmark.SampleCount++
	benchmark.UpdatedAt = s.nowFn()
	if err := s.benchmarks.Upsert(ctx, benchmark); err != nil {
		return
	}
	if s.cache != nil {
		_ = s.cache.Delete(ctx, "benchmark:"+platform)
	}
}

// GetCreatorBaseline returns the running outcome means for one creator.
func (s *Service) GetCreatorBaseline(ctx context.Context, actor Actor, creatorID, platform string) (domain.CreatorBaseline, error) {
	if strings.TrimSpace(actor.SubjectID) == "" {
		return domain.CreatorBaseline{}, domain.ErrUnauthorized
	}
	creatorID = strings.TrimSpace(creatorID)
	if creatorID == "" {
		return domain.CreatorBaseline{}, domain.ErrInvalidInput
	}
	return s.baselines.Get(ctx, creatorID, domain.NormalizePlatform(platform))
}

// GetPlatformBenchmark reads the platform benchmark through the cache.
func (s *Service) GetPlatformBenchmark(ctx context.Context, actor Actor, platform string) (domain.PlatformBenchmark, error) {
	if strings.TrimSpace(actor.SubjectID) == "" {
		return domain.PlatformBenchmark{}, domain.ErrUnauthorized
	}
	platform = domain.NormalizePlatform(platform)
	cacheKey := "benchmark:" + platform

	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, cacheKey); err == nil && len(raw) > 0 {
			var cached domain.PlatformBenchmark
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached, nil
			}
		}
	}
	benchmark, err := s.benchmarks.Get(ctx, platform)
	if err != nil {
		return domain.PlatformBenchmark{}, err
	}
	if s.cache != nil {
		if raw, err := json.Marshal(benchmark); err == nil {
			_ = s.cache.Set(ctx, cacheKey, raw, s.cfg.BenchmarkTTL)
		}
	}
	return benchmark, nil
}

// rateAccuracy is MetricAccuracy over floating-point engagement rates.
func rateAccuracy(predicted, actual float64) float64 {
	if actual <= 0 {
		if predicted <= 0 {
			return 1
		}
		return 0
	}
	diff := predicted - actual
	if diff < 0 {
		diff = -diff
	}
	return domain.Clamp01(1 - diff/actual)
}

func hashPayload(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
