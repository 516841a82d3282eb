package documents

import (
	"context"

	"github.com/mlevkov/contentproc/internal/entity"
)

type DocumentsUsecase interface {
	GenerateMeetingMinutes(ctx context.Context, transcript string) (*entity.AnalysisResponse, error)
	FormatFinancialTranscript(ctx context.Context, transcript string) (*entity.AnalysisResponse, error)
	Summarize(ctx context.Context, text string, maxWords int) (*entity.AnalysisResponse, error)
	ProcessMeeting(ctx context.Context, audioData []byte, filename string, format entity.ExportFormat) (*entity.ExportedDocument, error)
}
