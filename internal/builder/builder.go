package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/mlevkov/contentproc/internal/api"
	documentsapi "github.com/mlevkov/contentproc/internal/api/documents"
	mediaapi "github.com/mlevkov/contentproc/internal/api/media"
	webpageapi "github.com/mlevkov/contentproc/internal/api/webpage"
	"github.com/mlevkov/contentproc/internal/config"
	"github.com/mlevkov/contentproc/internal/integration/asr"
	"github.com/mlevkov/contentproc/internal/integration/embedding"
	"github.com/mlevkov/contentproc/internal/integration/llm"
	"github.com/mlevkov/contentproc/internal/integration/webfetch"
	"github.com/mlevkov/contentproc/internal/pkg/formatter"
	"github.com/mlevkov/contentproc/internal/pkg/logger"
	"github.com/mlevkov/contentproc/internal/pkg/validator"
	"github.com/mlevkov/contentproc/internal/session"
	"github.com/mlevkov/contentproc/internal/usecase/media"
	"github.com/mlevkov/contentproc/internal/usecase/qa"
	"github.com/mlevkov/contentproc/internal/vectorstore/memory"
	vectorpg "github.com/mlevkov/contentproc/internal/vectorstore/postgres"
)

func Build() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	log.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
		zap.String("vector_backend", cfg.VectorStoreCfg.Backend),
	)

	// Vector index backend
	index, db, err := setupVectorIndex(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	// External service connectors (with mock support)
	var (
		embeddingProvider qa.EmbeddingProvider
		llmProvider       media.LLMProvider
		asrConnector      media.ASRConnector
	)

	if cfg.EnableMocks {
		log.Info("Using mock connectors for external services")
		embeddingProvider = embedding.NewMockConnector(cfg.EmbeddingConnectorCfg.Dimensions, log)
		llmProvider = llm.NewMockConnector(log)
		asrConnector = asr.NewMockConnector(log)
	} else {
		log.Info("Using real connectors for external services")
		embeddingProvider = embedding.NewConnector(cfg.EmbeddingConnectorCfg, log)
		llmProvider = llm.NewConnector(cfg.LLMConnectorCfg, log)
		asrConnector = asr.NewConnector(cfg.ASRConnectorCfg, log)
	}

	fetcher := webfetch.NewConnector(cfg.WebFetchCfg, log)
	fileValidator := validator.NewFileValidator(cfg.FileUploadCfg)
	sessionStore := session.NewStore()
	formatters := formatter.NewFactory()

	// Use cases
	qaUC := qa.NewUsecase(sessionStore, index, embeddingProvider, llmProvider, fetcher, cfg.ChunkingCfg, log)
	mediaUC := media.NewUsecase(asrConnector, llmProvider, fileValidator, formatters, log)
	log.Info("Use cases initialized")

	// API handlers
	webpageHandler := webpageapi.NewHandler(qaUC, fileValidator)
	mediaHandler := mediaapi.NewHandler(mediaUC, cfg.FileUploadCfg)
	documentsHandler := documentsapi.NewHandler(mediaUC, cfg.FileUploadCfg)

	router := api.SetupRouter(webpageHandler, mediaHandler, documentsHandler, log)
	log.Info("HTTP router configured")

	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server: server,
		db:     db,
		logger: log,
	}, nil
}

// setupVectorIndex selects the vector index backend. The postgres backend
// owns a connection pool that the app closes on shutdown; the memory
// backend has no external resources.
func setupVectorIndex(ctx context.Context, cfg *config.Config, log *zap.Logger) (qa.VectorStore, *pgxpool.Pool, error) {
	if cfg.VectorStoreCfg.Backend == "memory" {
		log.Info("Using in-memory vector index")
		return memory.NewStore(), nil, nil
	}

	db, err := setupDatabase(ctx, cfg.VectorStoreCfg, log)
	if err != nil {
		return nil, nil, fmt.Errorf("setup database: %w", err)
	}

	log.Info("Running database migrations")
	if err := vectorpg.RunMigrations(cfg.VectorStoreCfg.DatabaseURL); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}
	log.Info("Database migrations completed successfully")

	return vectorpg.NewStore(db), db, nil
}
