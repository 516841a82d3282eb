package media

import (
	"context"

	"github.com/mlevkov/contentproc/internal/entity"
)

type ASRConnector interface {
	TranscribeBytes(ctx context.Context, audioData []byte, filename string) (entity.Transcription, error)
}

type LLMProvider interface {
	Generate(ctx context.Context, prompt string) (string, error)
	GenerateWithImage(ctx context.Context, prompt, imageB64, mediaType string) (string, error)
}
