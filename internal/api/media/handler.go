package media

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/mlevkov/contentproc/internal/config"
	"github.com/mlevkov/contentproc/internal/entity"
	"github.com/mlevkov/contentproc/internal/pkg/logger"
	"github.com/mlevkov/contentproc/internal/pkg/response"
)

type Handler struct {
	usecase   MediaUsecase
	uploadCfg config.FileUploadConfig
}

func NewHandler(usecase MediaUsecase, uploadCfg config.FileUploadConfig) *Handler {
	return &Handler{
		usecase:   usecase,
		uploadCfg: uploadCfg,
	}
}

// Transcribe handles POST /api/media/transcribe
func (h *Handler) Transcribe(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Transcribe")

	data, filename, ok := h.readUpload(ctx, w, r, "file")
	if !ok {
		return
	}

	resp, err := h.usecase.Transcribe(ctx, data, filename)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, resp)
}

// AnalyzeImage handles POST /api/media/image/analyze
func (h *Handler) AnalyzeImage(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "AnalyzeImage")

	data, filename, ok := h.readUpload(ctx, w, r, "file")
	if !ok {
		return
	}
	prompt := r.FormValue("prompt")

	resp, err := h.usecase.AnalyzeImage(ctx, data, filename, prompt)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, resp)
}

// ExtractText handles POST /api/media/image/extract-text
func (h *Handler) ExtractText(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ExtractText")

	data, filename, ok := h.readUpload(ctx, w, r, "file")
	if !ok {
		return
	}

	resp, err := h.usecase.ExtractText(ctx, data, filename)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, resp)
}

// AnalyzeNutrition handles POST /api/media/nutrition
func (h *Handler) AnalyzeNutrition(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "AnalyzeNutrition")

	data, filename, ok := h.readUpload(ctx, w, r, "file")
	if !ok {
		return
	}
	prompt := r.FormValue("prompt")

	resp, err := h.usecase.AnalyzeNutrition(ctx, data, filename, prompt)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, resp)
}

// readUpload parses the multipart form and reads the named file part.
func (h *Handler) readUpload(ctx context.Context, w http.ResponseWriter, r *http.Request, field string) ([]byte, string, bool) {
	if err := r.ParseMultipartForm(h.uploadCfg.MaxUploadSize); err != nil {
		ctxzap.Error(ctx, "failed to parse multipart form", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid form data or size too large")
		return nil, "", false
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		ctxzap.Error(ctx, "missing uploaded file", zap.Error(err))
		response.Error(w, http.StatusBadRequest, field+" file is required")
		return nil, "", false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		ctxzap.Error(ctx, "failed to read uploaded file", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "failed to read uploaded file")
		return nil, "", false
	}

	return data, header.Filename, true
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	ctxzap.Error(ctx, "usecase error", zap.Error(err))

	switch {
	case errors.Is(err, entity.ErrInvalidFile),
		errors.Is(err, entity.ErrFileTooLarge),
		errors.Is(err, entity.ErrInvalidExtension),
		errors.Is(err, entity.ErrUnsupportedFormat),
		errors.Is(err, entity.ErrMissingField):
		response.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, entity.ErrProviderUnavailable):
		response.Error(w, http.StatusBadGateway, "upstream provider unavailable")
	default:
		response.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
