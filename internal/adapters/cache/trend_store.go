package cache

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/domain"
)

const trendSnapshotKey = "predictor:trends:snapshot"

// RedisTrendStore persists the current trend snapshot so all replicas see
// the same trending data after an admin refresh.
type RedisTrendStore struct {
	client *redis.Client
}

func NewRedisTrendStore(client *redis.Client) *RedisTrendStore {
	return &RedisTrendStore{client: client}
}

func (s *RedisTrendStore) Load(ctx context.Context) (*domain.TrendSnapshot, error) {
	raw, err := s.client.Get(ctx, trendSnapshotKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var snap domain.TrendSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (s *RedisTrendStore) Store(ctx context.Context, snapshot *domain.TrendSnapshot) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	// No TTL: a stale snapshot still beats an empty one, and refreshes
	// overwrite in place.
	return s.client.Set(ctx, trendSnapshotKey, raw, 0).Err()
}
