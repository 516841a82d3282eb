package documents

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
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
	usecase   DocumentsUsecase
	uploadCfg config.FileUploadConfig
}

func NewHandler(usecase DocumentsUsecase, uploadCfg config.FileUploadConfig) *Handler {
	return &Handler{
		usecase:   usecase,
		uploadCfg: uploadCfg,
	}
}

// MeetingMinutes handles POST /api/documents/meeting-minutes
func (h *Handler) MeetingMinutes(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "MeetingMinutes")

	var req entity.MeetingMinutesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.usecase.GenerateMeetingMinutes(ctx, req.Transcript)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, resp)
}

// FinancialFormat handles POST /api/documents/financial-format
func (h *Handler) FinancialFormat(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "FinancialFormat")

	var req entity.FinancialFormatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.usecase.FormatFinancialTranscript(ctx, req.Transcript)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, resp)
}

// Summarize handles POST /api/documents/summarize
func (h *Handler) Summarize(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Summarize")

	var req entity.SummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.usecase.Summarize(ctx, req.Text, req.MaxWords)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, resp)
}

// ProcessMeeting handles POST /api/documents/process-meeting. The rendered
// document is returned as a file download.
func (h *Handler) ProcessMeeting(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ProcessMeeting")

	if err := r.ParseMultipartForm(h.uploadCfg.MaxUploadSize); err != nil {
		ctxzap.Error(ctx, "failed to parse multipart form", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid form data or size too large")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		ctxzap.Error(ctx, "missing audio file", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		ctxzap.Error(ctx, "failed to read uploaded file", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "failed to read uploaded file")
		return
	}

	formatParam := r.FormValue("format")
	if formatParam == "" {
		formatParam = string(entity.FormatMarkdown)
	}
	format := entity.ExportFormat(formatParam)
	if err := format.Validate(); err != nil {
		ctxzap.Warn(ctx, "invalid format parameter", zap.String("format", formatParam))
		response.Error(w, http.StatusBadRequest, "format must be one of: markdown, pdf, docx")
		return
	}

	doc, err := h.usecase.ProcessMeeting(ctx, data, header.Filename, format)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	filename := fmt.Sprintf("meeting-minutes%s", doc.Extension)
	response.File(w, doc.ContentType, filename, doc.Content)
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	ctxzap.Error(ctx, "usecase error", zap.Error(err))

	switch {
	case errors.Is(err, entity.ErrMissingField),
		errors.Is(err, entity.ErrInvalidFile),
		errors.Is(err, entity.ErrFileTooLarge),
		errors.Is(err, entity.ErrInvalidExtension),
		errors.Is(err, entity.ErrUnsupportedFormat):
		response.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, entity.ErrProviderUnavailable):
		response.Error(w, http.StatusBadGateway, "upstream provider unavailable")
	default:
		response.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
