package application

import (
	"context"
	"strings"

	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/domain"
	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/features"
	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/platforms"
)

// OptimizeContent analyzes one item against its platform's best-practice
// tables and returns the full tip surface.
func (s *Service) OptimizeContent(ctx context.Context, actor Actor, input OptimizeInput) (OptimizeResponse, error) {
	if strings.TrimSpace(actor.SubjectID) == "" {
		return OptimizeResponse{}, domain.ErrUnauthorized
	}
	if err := validateContent(input.Content); err != nil {
		return OptimizeResponse{}, err
	}

	snapshot := s.currentSnapshot(ctx)
	platform := domain.NormalizePlatform(input.Content.Platform)
	content := s.content.Extract(features.ContentInput{
		ContentBytes:    input.Content.MediaBase64,
		Caption:         input.Content.Caption,
		Hashtags:        input.Content.Hashtags,
		ContentType:     input.Content.ContentType,
		Platform:        platform,
		DurationSeconds: input.Content.DurationSeconds,
	}, snapshot.TrendingHashtagSet())

	optimizer := platforms.ForPlatform(platform)
	return OptimizeResponse{
		Analysis:     optimizer.AnalyzeContent(content),
		Hooks:        optimizer.HookRecommendations(),
		Hashtags:     optimizer.HashtagStrategy(),
		PostingHours: optimizer.OptimalPostingTimes(),
		Formats:      optimizer.FormatRecommendations(),
		Sounds:       optimizer.TrendingSounds(),
		CTAs:         optimizer.CTARecommendations(),
		Algorithm:    optimizer.AlgorithmTips(),
	}, nil
}
