package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/adapters/cache"
	contentadapter "github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/adapters/content"
	eventadapter "github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/adapters/events"
	httpadapter "github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/adapters/http"
	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/adapters/llm"
	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/adapters/postgres"
	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/application"
	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/features"
	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/ports"
	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/recommend"
	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/scoring"
)

type Runtime struct {
	cfg        Config
	logger     *slog.Logger
	httpServer *http.Server
	outbox     *eventadapter.OutboxWorker
	cleanupFn  func(context.Context)
}

func NewRuntime(ctx context.Context, configPath string) (*Runtime, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})).With("service", cfg.ServiceID)
	slog.SetDefault(logger)

	db, err := postgres.Connect(ctx, cfg.DatabaseURL, cfg.MaxDBConns)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := postgres.RunMigrations(ctx, db); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	redisClient, err := cache.Connect(ctx, cfg.RedisURL)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	cacheStore := cache.NewRedisCache(redisClient, "")
	trendStore := cache.NewRedisTrendStore(redisClient)

	var insights ports.InsightGenerator
	if cfg.OpenAIAPIKey != "" {
		insights = llm.NewOpenAIInsights(llm.Config{
			APIKey: cfg.OpenAIAPIKey,
			Model:  cfg.OpenAIModel,
		})
	}

	repos := postgres.NewRepositories(db)
	service := application.NewService(application.Dependencies{
		Config: application.Config{
			ServiceName:    cfg.ServiceID,
			ModelVersion:   cfg.ModelVersion,
			ModelsDir:      cfg.ModelsDir,
			IdempotencyTTL: cfg.IdempotencyTTL,
			BenchmarkTTL:   cfg.BenchmarkTTL,
			TrainingBatch:  cfg.TrainingBatch,
		},
		Logger:   logger,
		Content:  features.NewContentExtractor(),
		Creator:  features.NewCreatorExtractor(cfg.CreatorCacheSize, cfg.CreatorCacheTTL),
		Trend:    features.NewTrendExtractor(),
		Engage:   scoring.NewEngagementPredictor(cfg.ModelsDir),
		Viral:    scoring.NewViralScorer(cfg.ModelsDir),
		Audience: scoring.NewAudienceFitScorer(cfg.ModelsDir),
		Timing:   scoring.NewTimingOptimizer(cfg.ModelsDir),
		Engine:   recommend.NewEngine(),

		Outcomes:      repos.Outcomes,
		Baselines:     repos.Baselines,
		Benchmarks:    repos.Benchmarks,
		Effectiveness: repos.Effectiveness,
		WeightHistory: repos.WeightHistory,
		Idempotency:   repos.Idempotency,
		Outbox:        repos.Outbox,
		Cache:         cacheStore,
		TrendStore:    trendStore,
		Fetcher:       contentadapter.NewHTTPFetcher(cfg.MediaFetchTimeout),
		Insights:      insights,
	})

	ready := func() error {
		if err := sqlDB.Ping(); err != nil {
			return err
		}
		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return cacheStore.Ping(pingCtx)
	}

	handler := httpadapter.NewHandler(service)
	router := httpadapter.NewRouter(handler, logger, ready)
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	publisher := ports.EventPublisher(eventadapter.NewLoggingPublisher(logger))
	var closers []io.Closer
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher, pubErr := eventadapter.NewKafkaPublisher(cfg.KafkaBrokers, map[string]string{
			ports.EventPredictionGenerated: cfg.TopicPredictionGenerated,
			ports.EventOutcomeRecorded:     cfg.TopicOutcomeRecorded,
			ports.EventTrendsUpdated:       cfg.TopicTrendsUpdated,
		})
		if pubErr != nil {
			logger.WarnContext(ctx, "kafka publisher disabled, using logging publisher", "error", pubErr)
		} else {
			publisher = kafkaPublisher
			closers = append(closers, kafkaPublisher)
		}
	}
	outbox := eventadapter.NewOutboxWorker(logger, repos.Outbox, publisher, cfg.OutboxPollInterval, cfg.OutboxBatchSize)

	return &Runtime{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpServer,
		outbox:     outbox,
		cleanupFn: func(ctx context.Context) {
			for _, closer := range closers {
				_ = closer.Close()
			}
			_ = redisClient.Close()
			_ = sqlDB.Close()
		},
	}, nil
}

func (r *Runtime) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	errCh := make(chan error, 2)

	go func() {
		if err := r.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	go func() {
		if err := r.outbox.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- err
		}
	}()
	r.logger.InfoContext(ctx, "service started",
		"module", "bootstrap.runtime",
		"layer", "app",
		"operation", "run",
		"outcome", "success",
		"http_port", r.cfg.HTTPPort,
	)

	select {
	case <-ctx.Done():
	case err := <-errCh:
		r.logger.ErrorContext(ctx, "runtime failure", "error", err)
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = r.httpServer.Shutdown(shutdownCtx)
	r.cleanupFn(shutdownCtx)
	return nil
}
