package asr

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/mlevkov/contentproc/internal/config"
	"github.com/mlevkov/contentproc/internal/entity"
	"github.com/mlevkov/contentproc/internal/integration/common"
	pkghttp "github.com/mlevkov/contentproc/pkg/http"
)

type Connector struct {
	config    config.ASRConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.ASRConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// TranscribeBytes sends the audio to the speech-recognition service and
// returns the recognized text with detected language info.
func (c *Connector) TranscribeBytes(ctx context.Context, audioData []byte, filename string) (entity.Transcription, error) {
	if len(audioData) == 0 {
		return entity.Transcription{}, fmt.Errorf("empty audio data provided")
	}

	hash := sha256.Sum256(audioData)
	checksum := hex.EncodeToString(hash[:])

	ctxzap.Info(ctx, "transcribing audio",
		zap.String("filename", filename),
		zap.String("checksum", checksum),
		zap.Int("size", len(audioData)),
	)

	prepareBody := func(writer *multipart.Writer) error {
		part, err := writer.CreateFormFile("file", filename)
		if err != nil {
			return fmt.Errorf("create form file: %w", err)
		}
		if _, err := part.Write(audioData); err != nil {
			return fmt.Errorf("write file content: %w", err)
		}
		if err := writer.WriteField("checksum", checksum); err != nil {
			return fmt.Errorf("write checksum field: %w", err)
		}
		return nil
	}

	var resp entity.ASRTranscribeResponse
	err := c.connector.DoMultipartRequest(ctx, http.MethodPost, c.config.TranscribeEndpoint, prepareBody, &resp)
	if err != nil {
		return entity.Transcription{}, fmt.Errorf("transcribe audio: %w", err)
	}

	ctxzap.Info(ctx, "audio transcribed",
		zap.String("language", resp.Language),
		zap.Int("transcription_length", len(resp.Text)),
	)

	return entity.Transcription{
		Text:                resp.Text,
		Language:            resp.Language,
		LanguageProbability: resp.LanguageProbability,
	}, nil
}
