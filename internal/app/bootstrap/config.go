package bootstrap

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ServiceID string

	HTTPPort int

	DatabaseURL  string
	RedisURL     string
	KafkaBrokers []string
	OpenAIAPIKey string
	OpenAIModel  string

	MaxDBConns int32

	OutboxPollInterval time.Duration
	OutboxBatchSize    int

	ModelsDir    string
	ModelVersion string

	CreatorCacheSize  int
	CreatorCacheTTL   time.Duration
	BenchmarkTTL      time.Duration
	IdempotencyTTL    time.Duration
	MediaFetchTimeout time.Duration
	TrainingBatch     int

	TopicPredictionGenerated string
	TopicOutcomeRecorded     string
	TopicTrendsUpdated       string
}

type configFile struct {
	Service struct {
		ID       string `yaml:"id"`
		HTTPPort int    `yaml:"http_port"`
	} `yaml:"service"`
	Dependencies struct {
		PostgresURL  string   `yaml:"postgres_url"`
		RedisURL     string   `yaml:"redis_url"`
		KafkaBrokers []string `yaml:"kafka_brokers"`
		OpenAIModel  string   `yaml:"openai_model"`
	} `yaml:"dependencies"`
	Predictor struct {
		ModelsDir        string `yaml:"models_dir"`
		ModelVersion     string `yaml:"model_version"`
		CreatorCacheSize int    `yaml:"creator_cache_size"`
	} `yaml:"predictor"`
}

func LoadConfig(path string) (Config, error) {
	cfg := Config{
		ServiceID:                "M59-Performance-Predictor",
		HTTPPort:                 8080,
		MaxDBConns:               20,
		OutboxPollInterval:       2 * time.Second,
		OutboxBatchSize:          100,
		ModelsDir:                "models",
		ModelVersion:             "v1.0.0",
		CreatorCacheSize:         2048,
		CreatorCacheTTL:          10 * time.Minute,
		BenchmarkTTL:             5 * time.Minute,
		IdempotencyTTL:           7 * 24 * time.Hour,
		MediaFetchTimeout:        10 * time.Second,
		TrainingBatch:            5000,
		TopicPredictionGenerated: "prediction.generated",
		TopicOutcomeRecorded:     "prediction.outcome_recorded",
		TopicTrendsUpdated:       "trends.updated",
	}

	raw, err := os.ReadFile(path)
	if err == nil {
		var f configFile
		if unmarshalErr := yaml.Unmarshal(raw, &f); unmarshalErr != nil {
			return Config{}, fmt.Errorf("parse config file: %w", unmarshalErr)
		}
		if f.Service.ID != "" {
			cfg.ServiceID = f.Service.ID
		}
		if f.Service.HTTPPort > 0 {
			cfg.HTTPPort = f.Service.HTTPPort
		}
		if f.Dependencies.PostgresURL != "" {
			cfg.DatabaseURL = f.Dependencies.PostgresURL
		}
		if f.Dependencies.RedisURL != "" {
			cfg.RedisURL = f.Dependencies.RedisURL
		}
		if len(f.Dependencies.KafkaBrokers) > 0 {
			cfg.KafkaBrokers = trimNonEmpty(f.Dependencies.KafkaBrokers)
		}
		if f.Dependencies.OpenAIModel != "" {
			cfg.OpenAIModel = f.Dependencies.OpenAIModel
		}
		if f.Predictor.ModelsDir != "" {
			cfg.ModelsDir = f.Predictor.ModelsDir
		}
		if f.Predictor.ModelVersion != "" {
			cfg.ModelVersion = f.Predictor.ModelVersion
		}
		if f.Predictor.CreatorCacheSize > 0 {
			cfg.CreatorCacheSize = f.Predictor.CreatorCacheSize
		}
	}

	cfg.DatabaseURL = envOrDefault("DB_URL", envOrDefault("POSTGRES_URL", cfg.DatabaseURL))
	cfg.RedisURL = envOrDefault("REDIS_URL", cfg.RedisURL)
	cfg.KafkaBrokers = envCSV("KAFKA_BROKERS", cfg.KafkaBrokers)
	cfg.OpenAIAPIKey = envOrDefault("OPENAI_API_KEY", cfg.OpenAIAPIKey)
	cfg.OpenAIModel = envOrDefault("OPENAI_MODEL", cfg.OpenAIModel)
	cfg.HTTPPort = envInt("HTTP_PORT", cfg.HTTPPort)
	cfg.MaxDBConns = int32(envInt("DB_MAX_CONNS", int(cfg.MaxDBConns)))
	cfg.OutboxPollInterval = time.Duration(envInt("OUTBOX_POLL_SECONDS", int(cfg.OutboxPollInterval.Seconds()))) * time.Second
	cfg.OutboxBatchSize = envInt("OUTBOX_BATCH_SIZE", cfg.OutboxBatchSize)
	cfg.ModelsDir = envOrDefault("MODELS_DIR", cfg.ModelsDir)
	cfg.ModelVersion = envOrDefault("MODEL_VERSION", cfg.ModelVersion)
	cfg.CreatorCacheSize = envInt("CREATOR_CACHE_SIZE", cfg.CreatorCacheSize)
	cfg.CreatorCacheTTL = time.Duration(envInt("CREATOR_CACHE_SECONDS", int(cfg.CreatorCacheTTL.Seconds()))) * time.Second
	cfg.BenchmarkTTL = time.Duration(envInt("BENCHMARK_CACHE_SECONDS", int(cfg.BenchmarkTTL.Seconds()))) * time.Second
	cfg.IdempotencyTTL = time.Duration(envInt("IDEMPOTENCY_TTL_HOURS", int(cfg.IdempotencyTTL.Hours()))) * time.Hour
	cfg.MediaFetchTimeout = time.Duration(envInt("MEDIA_FETCH_TIMEOUT_SECONDS", int(cfg.MediaFetchTimeout.Seconds()))) * time.Second
	cfg.TrainingBatch = envInt("TRAINING_BATCH_SIZE", cfg.TrainingBatch)

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("missing DB_URL/POSTGRES_URL")
	}
	if cfg.RedisURL == "" {
		return Config{}, fmt.Errorf("missing REDIS_URL")
	}
	return cfg, nil
}

func envOrDefault(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

func envInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func envCSV(name string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	return trimNonEmpty(strings.Split(raw, ","))
}

func trimNonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
