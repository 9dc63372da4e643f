package postgres

import (
	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/ports"
	"gorm.io/gorm"
)

type Repositories struct {
	Outcomes      ports.OutcomeRepository
	Baselines     ports.BaselineRepository
	Benchmarks    ports.BenchmarkRepository
	Effectiveness ports.EffectivenessRepository
	WeightHistory ports.WeightHistoryRepository
	Outbox        ports.OutboxRepository
	Idempotency   ports.IdempotencyRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Outcomes:      &outcomeRepository{db: db},
		Baselines:     &baselineRepository{db: db},
		Benchmarks:    &benchmarkRepository{db: db},
		Effectiveness: &effectivenessRepository{db: db},
		WeightHistory: &weightHistoryRepository{db: db},
		Outbox:        &outboxRepository{db: db},
		Idempotency:   &idempotencyRepository{db: db},
	}
}
