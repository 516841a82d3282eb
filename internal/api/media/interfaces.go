package media

import (
	"context"

	"github.com/mlevkov/contentproc/internal/entity"
)

type MediaUsecase interface {
	Transcribe(ctx context.Context, audioData []byte, filename string) (*entity.TranscribeResponse, error)
	AnalyzeImage(ctx context.Context, imageData []byte, filename, prompt string) (*entity.AnalysisResponse, error)
	ExtractText(ctx context.Context, imageData []byte, filename string) (*entity.AnalysisResponse, error)
	AnalyzeNutrition(ctx context.Context, imageData []byte, filename, userPrompt string) (*entity.AnalysisResponse, error)
}
