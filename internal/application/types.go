package application

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/domain"
	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/features"
	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/platforms"
	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/ports"
	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/recommend"
	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/scoring"
)

type Config struct {
	ServiceName    string
	ModelVersion   string
	ModelsDir      string
	IdempotencyTTL time.Duration
	BenchmarkTTL   time.Duration
	TrainingBatch  int
}

type Actor struct {
	SubjectID      string
	Role           string
	RequestID      string
	IdempotencyKey string
}

// ContentPayload is the content side shared by predict, optimize and
// recommend inputs.
type ContentPayload struct {
	Caption         string   `json:"caption"`
	Hashtags        []string `json:"hashtags,omitempty"`
	ContentType     string   `json:"content_type"`
	Platform        string   `json:"platform"`
	DurationSeconds float64  `json:"duration_seconds,omitempty"`
	SoundID         string   `json:"sound_id,omitempty"`
	MediaURL        string   `json:"media_url,omitempty"`
	MediaBase64     []byte   `json:"media_base64,omitempty"`
}

// CreatorPayload is the optional creator context.
type CreatorPayload struct {
	Profile domain.CreatorProfile `json:"profile"`
	Posts   []domain.CreatorPost  `json:"posts,omitempty"`
}

type PredictInput struct {
	Content ContentPayload    `json:"content"`
	Creator *CreatorPayload   `json:"creator,omitempty"`
	Brand   domain.BrandBrief `json:"brand,omitempty"`
}

type ViralityInput struct {
	Platform string `json:"platform"`
	Views    int64  `json:"views"`
	Likes    int64  `json:"likes"`
	Comments int64  `json:"comments"`
	Shares   int64  `json:"shares"`
}

type CompareVariant struct {
	Label   string         `json:"label"`
	Content ContentPayload `json:"content"`
}

type CompareInput struct {
	Variants []CompareVariant  `json:"variants"`
	Creator  *CreatorPayload   `json:"creator,omitempty"`
	Brand    domain.BrandBrief `json:"brand,omitempty"`
}

type OptimizeInput struct {
	Content ContentPayload `json:"content"`
}

type RecommendationsInput struct {
	Content ContentPayload  `json:"content"`
	Creator *CreatorPayload `json:"creator,omitempty"`
}

type TimingInput struct {
	Platform string `json:"platform"`
	AgeGroup string `json:"age_group"`
	Limit    int    `json:"limit"`
}

type OutcomeInput struct {
	PredictionID      string                `json:"prediction_id"`
	Actual            domain.OutcomeMetrics `json:"actual"`
	AppliedCategories []string              `json:"applied_categories,omitempty"`
}

type TrendUpdateInput struct {
	Items []domain.TrendingItem `json:"items"`
}

type TrainInput struct {
	Platform string `json:"platform,omitempty"`
}

type TrainResult struct {
	Model       string    `json:"model"`
	Version     string    `json:"version"`
	SampleCount int64     `json:"sample_count"`
	TrainedAt   time.Time `json:"trained_at"`
}

// OptimizeResponse bundles the per-platform best-practice surfaces.
type OptimizeResponse struct {
	Analysis     platforms.Analysis          `json:"analysis"`
	Hooks        []platforms.OptimizationTip `json:"hook_recommendations"`
	Hashtags     []platforms.OptimizationTip `json:"hashtag_strategy"`
	PostingHours []int                       `json:"optimal_posting_hours"`
	Formats      []platforms.OptimizationTip `json:"format_recommendations"`
	Sounds       []platforms.TrendingElement `json:"trending_sounds"`
	CTAs         []platforms.OptimizationTip `json:"cta_recommendations"`
	Algorithm    []platforms.OptimizationTip `json:"algorithm_tips"`
}

type Service struct {
	cfg    Config
	logger *slog.Logger

	content  *features.ContentExtractor
	creator  *features.CreatorExtractor
	trend    *features.TrendExtractor
	engage   *scoring.EngagementPredictor
	viral    *scoring.ViralScorer
	audience *scoring.AudienceFitScorer
	timing   *scoring.TimingOptimizer
	engine   *recommend.Engine

	outcomes      ports.OutcomeRepository
	baselines     ports.BaselineRepository
	benchmarks    ports.BenchmarkRepository
	effectiveness ports.EffectivenessRepository
	weightHistory ports.WeightHistoryRepository
	idempotency   ports.IdempotencyRepository
	outbox        ports.OutboxRepository
	cache         ports.Cache
	trendStore    ports.TrendStore
	fetcher       ports.ContentFetcher
	insights      ports.InsightGenerator

	snapshot atomic.Pointer[domain.TrendSnapshot]
	nowFn    func() time.Time
}

type Dependencies struct {
	Config Config
	Logger *slog.Logger

	Content  *features.ContentExtractor
	Creator  *features.CreatorExtractor
	Trend    *features.TrendExtractor
	Engage   *scoring.EngagementPredictor
	Viral    *scoring.ViralScorer
	Audience *scoring.AudienceFitScorer
	Timing   *scoring.TimingOptimizer
	Engine   *recommend.Engine

	Outcomes      ports.OutcomeRepository
	Baselines     ports.BaselineRepository
	Benchmarks    ports.BenchmarkRepository
	Effectiveness ports.EffectivenessRepository
	WeightHistory ports.WeightHistoryRepository
	Idempotency   ports.IdempotencyRepository
	Outbox        ports.OutboxRepository
	Cache         ports.Cache
	TrendStore    ports.TrendStore
	Fetcher       ports.ContentFetcher
	Insights      ports.InsightGenerator
}

func NewService(deps Dependencies) *Service {
	cfg := deps.Config
	if cfg.ServiceName == "" {
		cfg.ServiceName = "M59-Performance-Predictor"
	}
	if cfg.ModelVersion == "" {
		cfg.ModelVersion = "v1.0.0"
	}
	if cfg.IdempotencyTTL <= 0 {
		cfg.IdempotencyTTL = 7 * 24 * time.Hour
	}
	if cfg.BenchmarkTTL <= 0 {
		cfg.BenchmarkTTL = 5 * time.Minute
	}
	if cfg.TrainingBatch <= 0 {
		cfg.TrainingBatch = 5000
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		cfg:           cfg,
		logger:        logger,
		content:       deps.Content,
		creator:       deps.Creator,
		trend:         deps.Trend,
		engage:        deps.Engage,
		viral:         deps.Viral,
		audience:      deps.Audience,
		timing:        deps.Timing,
		engine:        deps.Engine,
		outcomes:      deps.Outcomes,
		baselines:     deps.Baselines,
		benchmarks:    deps.Benchmarks,
		effectiveness: deps.Effectiveness,
		weightHistory: deps.WeightHistory,
		idempotency:   deps.Idempotency,
		outbox:        deps.Outbox,
		cache:         deps.Cache,
		trendStore:    deps.TrendStore,
		fetcher:       deps.Fetcher,
		insights:      deps.Insights,
		nowFn:         func() time.Time { return time.Now().UTC() },
	}
	s.snapshot.Store(domain.EmptyTrendSnapshot())
	return s
}

// WithClock overrides the service clock, used by tests.
func (s *Service) WithClock(nowFn func() time.Time) *Service {
	s.nowFn = nowFn
	return s
}
