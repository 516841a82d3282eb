package builder

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mlevkov/contentproc/internal/config"
	"github.com/mlevkov/contentproc/internal/integration/asr"
	"github.com/mlevkov/contentproc/internal/integration/llm"
	"github.com/mlevkov/contentproc/internal/pkg/formatter"
	"github.com/mlevkov/contentproc/internal/pkg/logger"
	"github.com/mlevkov/contentproc/internal/pkg/validator"
	"github.com/mlevkov/contentproc/internal/usecase/media"
)

// BuildMeetingProcessor wires only what the meeting-processing CLI needs:
// the media use case without the HTTP server or the vector index.
func BuildMeetingProcessor() (*media.MediaUsecase, *zap.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("setup logger: %w", err)
	}

	var (
		llmProvider  media.LLMProvider
		asrConnector media.ASRConnector
	)

	if cfg.EnableMocks {
		log.Info("Using mock connectors for external services")
		llmProvider = llm.NewMockConnector(log)
		asrConnector = asr.NewMockConnector(log)
	} else {
		llmProvider = llm.NewConnector(cfg.LLMConnectorCfg, log)
		asrConnector = asr.NewConnector(cfg.ASRConnectorCfg, log)
	}

	fileValidator := validator.NewFileValidator(cfg.FileUploadCfg)
	mediaUC := media.NewUsecase(asrConnector, llmProvider, fileValidator, formatter.NewFactory(), log)

	return mediaUC, log, nil
}
