package asr

import (
	"context"
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/mlevkov/contentproc/internal/entity"
)

// MockConnector fakes the speech-recognition service for local runs.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) TranscribeBytes(ctx context.Context, audioData []byte, filename string) (entity.Transcription, error) {
	if len(audioData) == 0 {
		return entity.Transcription{}, fmt.Errorf("empty audio data provided")
	}

	ctxzap.Info(ctx, "[MOCK] transcribing audio",
		zap.String("filename", filename),
		zap.Int("size", len(audioData)),
	)

	mockText := `Good afternoon everyone, thanks for joining. Today we reviewed the quarterly roadmap.
We agreed to prioritize the ingestion pipeline and to move the reporting work to next sprint.
Maria will prepare the migration plan by Friday, and Alex takes over the customer feedback review.
The next sync is scheduled for Tuesday at the usual time.`

	ctxzap.Info(ctx, "[MOCK] audio transcribed", zap.Int("transcription_length", len(mockText)))

	return entity.Transcription{
		Text:                mockText,
		Language:            "en",
		LanguageProbability: 0.98,
	}, nil
}
