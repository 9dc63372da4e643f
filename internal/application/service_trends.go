package application

import (
	"context"
	"strings"

	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/domain"
	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/ports"
)

// UpdateTrends replaces the trend snapshot wholesale. In-flight requests
// keep reading the snapshot they started with; only new requests see the
// refreshed registries.
func (s *Service) UpdateTrends(ctx context.Context, actor Actor, input TrendUpdateInput) (*domain.TrendSnapshot, error) {
	if strings.TrimSpace(actor.SubjectID) == "" {
		return nil, domain.ErrUnauthorized
	}
	if !strings.EqualFold(strings.TrimSpace(actor.Role), "admin") {
		return nil, domain.ErrForbidden
	}
	if len(input.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	next := domain.EmptyTrendSnapshot()
	next.RefreshedAt = s.nowFn()
	for _, item := range input.Items {
		name := strings.TrimSpace(item.Name)
		if name == "" || item.Popularity < 0 || item.Popularity > 1 {
			return nil, domain.ErrInvalidInput
		}
		item.Name = name
		if item.StartedTrending.IsZero() {
			item.StartedTrending = next.RefreshedAt
		}
		switch item.Type {
		case domain.TrendTypeHashtag:
			next.Hashtags[domain.NormalizeHashtag(name)] = item
		case domain.TrendTypeSound:
			next.Sounds[strings.ToLower(name)] = item
		case domain.TrendTypeTopic:
			next.Topics[strings.ToLower(name)] = item
		default:
			return nil, domain.ErrInvalidInput
		}
	}

	s.snapshot.Store(next)
	if s.trendStore != nil {
		if err := s.trendStore.Store(ctx, next); err != nil {
			s.logger.WarnContext(ctx, "trend snapshot persist failed",
				"module", "application.trends",
				"layer", "application",
				"operation", "store_snapshot",
				"outcome", "degraded",
				"error", err,
			)
		}
	}
	s.enqueueEvent(ctx, ports.EventTrendsUpdated, map[string]any{
		"hashtags":     len(next.Hashtags),
		"sounds":       len(next.Sounds),
		"topics":       len(next.Topics),
		"refreshed_at": next.RefreshedAt,
	}, "trends")
	return next, nil
}

// currentSnapshot returns the in-memory snapshot, lazily hydrating from
// the shared store after a cold start.
func (s *Service) currentSnapshot(ctx context.Context) *domain.TrendSnapshot {
	snap := s.snapshot.Load()
	if snap != nil && (len(snap.Hashtags) > 0 || len(snap.Sounds) > 0 || len(snap.Topics) > 0) {
		return snap
	}
	if s.trendStore != nil {
		if stored, err := s.trendStore.Load(ctx); err == nil && stored != nil {
			s.snapshot.Store(stored)
			return stored
		}
	}
	if snap == nil {
		snap = domain.EmptyTrendSnapshot()
	}
	return snap
}
