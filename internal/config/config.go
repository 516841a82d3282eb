package config

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	pkgRetry "github.com/mlevkov/contentproc/internal/pkg/retry"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr string `env:"SERVER_ADDR" envDefault:":5500"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Vector index configuration
	VectorStoreCfg VectorStoreConfig `envPrefix:"VECTOR_"`

	// External service configurations
	LLMConnectorCfg       LLMConnectorConfig       `envPrefix:"LLM_"`
	EmbeddingConnectorCfg EmbeddingConnectorConfig `envPrefix:"EMBEDDING_"`
	ASRConnectorCfg       ASRConnectorConfig       `envPrefix:"ASR_"`
	WebFetchCfg           WebFetchConfig           `envPrefix:"WEBFETCH_"`

	// Chunking defaults for webpage ingestion
	ChunkingCfg ChunkingConfig `envPrefix:"CHUNK_"`

	// File upload configuration
	FileUploadCfg FileUploadConfig `envPrefix:"FILE_UPLOAD_"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`

	// Environment (set from flag, not from env var)
	Environment string
}

// VectorStoreConfig selects and configures the vector index backend.
type VectorStoreConfig struct {
	Backend string `env:"BACKEND" envDefault:"postgres"` // postgres or memory

	DatabaseURL         string        `env:"DATABASE_URL"`
	DBMaxConns          int           `env:"DB_MAX_CONNS" envDefault:"25"`
	DBMinConns          int           `env:"DB_MIN_CONNS" envDefault:"5"`
	DBMaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	DBMaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	DBHealthCheckPeriod time.Duration `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"1m"`
}

// LLMConnectorConfig configures the Anthropic messages API connector.
type LLMConnectorConfig struct {
	HTTPClientConfig
	APIKey      string  `env:"API_KEY"`
	APIVersion  string  `env:"API_VERSION" envDefault:"2023-06-01"`
	Model       string  `env:"MODEL" envDefault:"claude-3-5-sonnet-20241022"`
	MaxTokens   int     `env:"MAX_TOKENS" envDefault:"1024"`
	Temperature float64 `env:"TEMPERATURE" envDefault:"0.7"`
}

// EmbeddingConnectorConfig configures the OpenAI-compatible embeddings connector.
type EmbeddingConnectorConfig struct {
	HTTPClientConfig
	APIKey     string `env:"API_KEY"`
	Model      string `env:"MODEL" envDefault:"text-embedding-3-small"`
	Dimensions int    `env:"DIMENSIONS" envDefault:"1536"`
}

// ASRConnectorConfig configures the speech-recognition service connector.
type ASRConnectorConfig struct {
	HTTPClientConfig
	TranscribeEndpoint string `env:"TRANSCRIBE_ENDPOINT" envDefault:"/transcribe"`
}

// WebFetchConfig configures server-side webpage fetching.
type WebFetchConfig struct {
	Timeout     time.Duration        `env:"TIMEOUT" envDefault:"20s"`
	CacheTTL    time.Duration        `env:"CACHE_TTL" envDefault:"10m"`
	MaxBodySize int64                `env:"MAX_BODY_SIZE" envDefault:"5242880"` // 5 MiB
	Retry       pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

// ChunkingConfig holds ingestion defaults used when a request omits them.
type ChunkingConfig struct {
	Size        int `env:"SIZE" envDefault:"1000"`
	Overlap     int `env:"OVERLAP" envDefault:"200"`
	DefaultTopK int `env:"DEFAULT_TOP_K" envDefault:"3"`
}

// HTTPClientConfig is the shared transport configuration of a connector.
type HTTPClientConfig struct {
	Url                   string        `env:"SERVICE_URL"`
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"120s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"10s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"120s"`
	Token                 string        `env:"TOKEN"`
}

// FileUploadConfig holds file upload limits
type FileUploadConfig struct {
	MaxAudioFileSize int64 `env:"MAX_AUDIO_FILE_SIZE" envDefault:"26214400"` // 25 MiB
	MaxImageFileSize int64 `env:"MAX_IMAGE_FILE_SIZE" envDefault:"10485760"` // 10 MiB
	MaxUploadSize    int64 `env:"MAX_UPLOAD_SIZE" envDefault:"33554432"`     // 32 MiB
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	return loadConfig(*envFlag)
}

func loadConfig(environment string) (*Config, error) {
	envFile := getEnvFile(environment)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = environment

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	var errs []string

	switch cfg.VectorStoreCfg.Backend {
	case "postgres":
		if cfg.VectorStoreCfg.DatabaseURL == "" && !cfg.EnableMocks {
			errs = append(errs, "VECTOR_DATABASE_URL is required for the postgres backend")
		}
	case "memory":
	default:
		errs = append(errs, fmt.Sprintf("unknown vector backend %q (expected postgres or memory)", cfg.VectorStoreCfg.Backend))
	}

	if cfg.ChunkingCfg.Size < 1 {
		errs = append(errs, fmt.Sprintf("CHUNK_SIZE must be positive, got %d", cfg.ChunkingCfg.Size))
	}
	if cfg.ChunkingCfg.Overlap < 0 || cfg.ChunkingCfg.Overlap >= cfg.ChunkingCfg.Size {
		errs = append(errs, fmt.Sprintf("CHUNK_OVERLAP must be in [0, CHUNK_SIZE), got %d", cfg.ChunkingCfg.Overlap))
	}
	if cfg.ChunkingCfg.DefaultTopK < 1 {
		errs = append(errs, fmt.Sprintf("CHUNK_DEFAULT_TOP_K must be positive, got %d", cfg.ChunkingCfg.DefaultTopK))
	}

	if cfg.EmbeddingConnectorCfg.Dimensions < 1 {
		errs = append(errs, fmt.Sprintf("EMBEDDING_DIMENSIONS must be positive, got %d", cfg.EmbeddingConnectorCfg.Dimensions))
	}

	if !cfg.EnableMocks {
		if cfg.LLMConnectorCfg.APIKey == "" {
			errs = append(errs, "LLM_API_KEY is required")
		}
		if cfg.EmbeddingConnectorCfg.APIKey == "" {
			errs = append(errs, "EMBEDDING_API_KEY is required")
		}
		if cfg.ASRConnectorCfg.Url == "" {
			errs = append(errs, "ASR_SERVICE_URL is required")
		}
	}

	if cfg.VectorStoreCfg.DBMaxConns < 1 || cfg.VectorStoreCfg.DBMaxConns > 200 {
		errs = append(errs, fmt.Sprintf("VECTOR_DB_MAX_CONNS must be between 1 and 200, got %d", cfg.VectorStoreCfg.DBMaxConns))
	}
	if cfg.VectorStoreCfg.DBMinConns < 0 || cfg.VectorStoreCfg.DBMinConns > cfg.VectorStoreCfg.DBMaxConns {
		errs = append(errs, fmt.Sprintf("VECTOR_DB_MIN_CONNS must be between 0 and VECTOR_DB_MAX_CONNS(%d), got %d",
			cfg.VectorStoreCfg.DBMaxConns, cfg.VectorStoreCfg.DBMinConns))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
