// Package media implements audio transcription, image analysis and
// transcript post-processing (meeting minutes, financial formatting,
// summaries) on top of the ASR and LLM providers.
package media

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/mlevkov/contentproc/internal/entity"
	"github.com/mlevkov/contentproc/internal/pkg/formatter"
	"github.com/mlevkov/contentproc/internal/pkg/prompts"
	"github.com/mlevkov/contentproc/internal/pkg/validator"
)

// supportedImageTypes are the MIME types the vision provider accepts.
// Detection runs on the actual bytes; anything else is rejected rather
// than coerced to a guessed type.
var supportedImageTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/gif":  true,
	"image/webp": true,
}

// MediaUsecase implements media processing business logic
type MediaUsecase struct {
	asr        ASRConnector
	llm        LLMProvider
	validator  *validator.Validator
	formatters *formatter.Factory
	logger     *zap.Logger
}

// NewUsecase creates a new media use case
func NewUsecase(
	asr ASRConnector,
	llm LLMProvider,
	validator *validator.Validator,
	formatters *formatter.Factory,
	logger *zap.Logger,
) *MediaUsecase {
	return &MediaUsecase{
		asr:        asr,
		llm:        llm,
		validator:  validator,
		formatters: formatters,
		logger:     logger,
	}
}

// Transcribe converts uploaded audio to text.
func (uc *MediaUsecase) Transcribe(ctx context.Context, audioData []byte, filename string) (*entity.TranscribeResponse, error) {
	if err := uc.validator.ValidateAudioFile(filename, int64(len(audioData))); err != nil {
		return nil, err
	}

	transcription, err := uc.asr.TranscribeBytes(ctx, audioData, filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrProviderUnavailable, err)
	}

	return &entity.TranscribeResponse{
		Text:                transcription.Text,
		Language:            transcription.Language,
		LanguageProbability: transcription.LanguageProbability,
	}, nil
}

// AnalyzeImage describes an uploaded image. An empty prompt falls back to
// the default analysis prompt.
func (uc *MediaUsecase) AnalyzeImage(ctx context.Context, imageData []byte, filename, prompt string) (*entity.AnalysisResponse, error) {
	if prompt == "" {
		prompt = prompts.DefaultImageAnalysis
	}
	return uc.analyzeImageWithPrompt(ctx, imageData, filename, prompt)
}

// ExtractText runs OCR-style text extraction on an uploaded image.
func (uc *MediaUsecase) ExtractText(ctx context.Context, imageData []byte, filename string) (*entity.AnalysisResponse, error) {
	return uc.analyzeImageWithPrompt(ctx, imageData, filename, prompts.ImageTextExtraction)
}

// AnalyzeNutrition produces a structured nutrition assessment of a food
// photo. The optional user prompt is appended to the expert template.
func (uc *MediaUsecase) AnalyzeNutrition(ctx context.Context, imageData []byte, filename, userPrompt string) (*entity.AnalysisResponse, error) {
	return uc.analyzeImageWithPrompt(ctx, imageData, filename, prompts.NutritionAnalysis(userPrompt))
}

func (uc *MediaUsecase) analyzeImageWithPrompt(ctx context.Context, imageData []byte, filename, prompt string) (*entity.AnalysisResponse, error) {
	if err := uc.validator.ValidateImageFile(filename, int64(len(imageData))); err != nil {
		return nil, err
	}

	mediaType := http.DetectContentType(imageData)
	if !supportedImageTypes[mediaType] {
		return nil, fmt.Errorf("%w: detected %s", entity.ErrUnsupportedFormat, mediaType)
	}

	ctxzap.Info(ctx, "analyzing image",
		zap.String("filename", filename),
		zap.String("media_type", mediaType),
		zap.Int("size", len(imageData)),
	)

	imageB64 := base64.StdEncoding.EncodeToString(imageData)

	result, err := uc.llm.GenerateWithImage(ctx, prompt, imageB64, mediaType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrProviderUnavailable, err)
	}

	return &entity.AnalysisResponse{Result: result}, nil
}

// GenerateMeetingMinutes turns a raw transcript into structured minutes.
func (uc *MediaUsecase) GenerateMeetingMinutes(ctx context.Context, transcript string) (*entity.AnalysisResponse, error) {
	if strings.TrimSpace(transcript) == "" {
		return nil, fmt.Errorf("%w: transcript", entity.ErrMissingField)
	}

	result, err := uc.llm.Generate(ctx, prompts.MeetingMinutes(transcript))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrProviderUnavailable, err)
	}
	return &entity.AnalysisResponse{Result: result}, nil
}

// FormatFinancialTranscript cleans up a financial call transcript.
func (uc *MediaUsecase) FormatFinancialTranscript(ctx context.Context, transcript string) (*entity.AnalysisResponse, error) {
	if strings.TrimSpace(transcript) == "" {
		return nil, fmt.Errorf("%w: transcript", entity.ErrMissingField)
	}

	result, err := uc.llm.Generate(ctx, prompts.FinancialFormatting(transcript))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrProviderUnavailable, err)
	}
	return &entity.AnalysisResponse{Result: result}, nil
}

// Summarize produces a short summary of arbitrary text.
func (uc *MediaUsecase) Summarize(ctx context.Context, text string, maxWords int) (*entity.AnalysisResponse, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text", entity.ErrMissingField)
	}

	result, err := uc.llm.Generate(ctx, prompts.Summarize(text, maxWords))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrProviderUnavailable, err)
	}
	return &entity.AnalysisResponse{Result: result}, nil
}

// RenderMinutes generates meeting minutes from a transcript and renders
// them in the requested format.
func (uc *MediaUsecase) RenderMinutes(ctx context.Context, transcript string, format entity.ExportFormat) (*entity.ExportedDocument, error) {
	minutes, err := uc.GenerateMeetingMinutes(ctx, transcript)
	if err != nil {
		return nil, err
	}

	f, err := uc.formatters.Create(format)
	if err != nil {
		return nil, err
	}

	content, err := f.Format("Meeting Minutes", minutes.Result)
	if err != nil {
		return nil, fmt.Errorf("render %s document: %w", format, err)
	}

	ctxzap.Info(ctx, "minutes rendered",
		zap.String("format", string(format)),
		zap.Int("document_size", len(content)),
	)

	return &entity.ExportedDocument{
		Content:     content,
		ContentType: f.ContentType(),
		Extension:   f.FileExtension(),
	}, nil
}

// ProcessMeeting runs the full pipeline: transcribe the recording, generate
// meeting minutes and render them in the requested format.
func (uc *MediaUsecase) ProcessMeeting(ctx context.Context, audioData []byte, filename string, format entity.ExportFormat) (*entity.ExportedDocument, error) {
	transcription, err := uc.Transcribe(ctx, audioData, filename)
	if err != nil {
		return nil, err
	}
	return uc.RenderMinutes(ctx, transcription.Text, format)
}
