package application

import (
	"context"
	"strings"

	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/domain"
	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/scoring"
)

const minTrainingSamples = 20

// TrainModels refits the engagement weight artifact from reported
// outcomes. The refit artifact is published to the running predictor
// immediately and persisted for the next process start.
func (s *Service) TrainModels(ctx context.Context, actor Actor, input TrainInput) (TrainResult, error) {
	if strings.TrimSpace(actor.SubjectID) == "" {
		return TrainResult{}, domain.ErrUnauthorized
	}
	if !strings.EqualFold(strings.TrimSpace(actor.Role), "admin") {
		return TrainResult{}, domain.ErrForbidden
	}

	platform := ""
	if strings.TrimSpace(input.Platform) != "" {
		platform = domain.NormalizePlatform(input.Platform)
	}
	outcomes, err := s.outcomes.ListReported(ctx, platform, s.cfg.TrainingBatch)
	if err != nil {
		return TrainResult{}, err
	}
	samples := make([]scoring.TrainingSample, 0, len(outcomes))
	for _, outcome := range outcomes {
		if outcome.Actual == nil || outcome.Actual.Views <= 0 {
			continue
		}
		samples = append(samples, scoring.TrainingSample{
			Features: map[string]float64{
				"predicted_views":              float64(outcome.Predicted.Views),
				"engagement_rate":              domain.EngagementRate(outcome.Predicted.Views, outcome.Predicted.Likes, outcome.Predicted.Comments, outcome.Predicted.Shares),
				"platform_" + outcome.Platform: 1,
			},
			Target: float64(outcome.Actual.Views),
		})
	}
	if len(samples) < minTrainingSamples {
		return TrainResult{}, domain.ErrInvalidInput
	}

	now := s.nowFn()
	artifact, err := s.engage.Train(s.cfg.ModelsDir, samples, now)
	if err != nil {
		return TrainResult{}, err
	}

	if s.weightHistory != nil {
		encoded, encErr := artifact.Encode()
		if encErr == nil {
			if err := s.weightHistory.Append(ctx, domain.ModelWeightChange{
				Model:       artifact.Model,
				Version:     artifact.Version,
				Weights:     encoded,
				SampleCount: artifact.SampleCount,
				TrainedAt:   artifact.TrainedAt,
			}); err != nil {
				s.logger.WarnContext(ctx, "weight history append failed",
					"module", "application.train",
					"layer", "application",
					"operation", "append_history",
					"outcome", "degraded",
					"error", err,
				)
			}
		}
	}
	s.logger.InfoContext(ctx, "model retrained",
		"module", "application.train",
		"layer", "application",
		"operation", "train",
		"outcome", "success",
		"model", artifact.Model,
		"version", artifact.Version,
		"samples", artifact.SampleCount,
	)
	return TrainResult{
		Model:       artifact.Model,
		Version:     artifact.Version,
		SampleCount: artifact.SampleCount,
		TrainedAt:   artifact.TrainedAt,
	}, nil
}
