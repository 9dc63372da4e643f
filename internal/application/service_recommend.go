package application

import (
	"context"
	"strings"

	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/domain"
)

// DetailedRecommendations analyzes one item and returns prioritized,
// actionable recommendations with an improvement projection.
func (s *Service) DetailedRecommendations(ctx context.Context, actor Actor, input RecommendationsInput) (domain.DetailedRecommendationResponse, error) {
	if strings.TrimSpace(actor.SubjectID) == "" {
		return domain.DetailedRecommendationResponse{}, domain.ErrUnauthorized
	}
	if err := validateContent(input.Content); err != nil {
		return domain.DetailedRecommendationResponse{}, err
	}

	resp := s.analyze(ctx, PredictInput{Content: input.Content, Creator: input.Creator})
	out := s.engine.Generate(resp.Analysis, resp.OverallScore)

	// Effectiveness bookkeeping is best-effort; a storage hiccup must
	// not fail the recommendation request.
	if s.effectiveness != nil {
		now := s.nowFn()
		for _, rec := range out.Recommendations {
			if err := s.effectiveness.RecordIssued(ctx, rec.Category, resp.Platform, now); err != nil {
				s.logger.WarnContext(ctx, "effectiveness record failed",
					"module", "application.recommend",
					"layer", "application",
					"operation", "record_issued",
					"outcome", "degraded",
					"category", rec.Category,
					"error", err,
				)
				break
			}
		}
	}
	return out, nil
}

// OptimalTiming returns recommended posting slots for a platform and
// optional audience age group.
func (s *Service) OptimalTiming(_ context.Context, actor Actor, input TimingInput) (domain.OptimalTime, error) {
	if strings.TrimSpace(actor.SubjectID) == "" {
		return domain.OptimalTime{}, domain.ErrUnauthorized
	}
	return s.timing.PredictOptimalTimes(input.Platform, input.AgeGroup, nil, input.Limit), nil
}
