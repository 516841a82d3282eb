package webpage

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/mlevkov/contentproc/internal/entity"
	"github.com/mlevkov/contentproc/internal/pkg/logger"
	"github.com/mlevkov/contentproc/internal/pkg/response"
	"github.com/mlevkov/contentproc/internal/pkg/validator"
)

type Handler struct {
	usecase   QAUsecase
	validator *validator.Validator
}

func NewHandler(usecase QAUsecase, validator *validator.Validator) *Handler {
	return &Handler{
		usecase:   usecase,
		validator: validator,
	}
}

// StoreWebpage handles POST /api/webpage/store
func (h *Handler) StoreWebpage(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "StoreWebpage")

	var req entity.StoreWebpageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.ValidateStoreWebpage(&req); err != nil {
		ctxzap.Error(ctx, "failed to validate request", zap.Error(err))
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.usecase.StoreWebpage(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Created(w, resp)
}

// Ask handles POST /api/webpage/ask
func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Ask")

	var req entity.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.ValidateAsk(&req); err != nil {
		ctxzap.Error(ctx, "failed to validate request", zap.Error(err))
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.usecase.Ask(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, resp)
}

// ListSessions handles GET /api/webpage/sessions
func (h *Handler) ListSessions(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListSessions")

	resp := h.usecase.ListSessions(ctx)
	response.Success(w, resp)
}

// GetSession handles GET /api/webpage/session/{id}
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	ctx := logger.AddFields(r.Context(),
		zap.String("session_id", sessionID),
		zap.String("action", "GetSession"),
	)

	sess, err := h.usecase.GetSessionInfo(ctx, sessionID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, sess)
}

// DeleteSession handles DELETE /api/webpage/session/{id}
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	ctx := logger.AddFields(r.Context(),
		zap.String("session_id", sessionID),
		zap.String("action", "DeleteSession"),
	)

	result := h.usecase.DeleteSession(ctx, sessionID)
	switch result {
	case entity.DeleteNotFound:
		response.Error(w, http.StatusNotFound, "session not found")
	case entity.DeletePartial:
		response.Error(w, http.StatusInternalServerError, "session chunks could not be deleted, retry the delete")
	default:
		response.Success(w, &entity.DeleteSessionResponse{Result: result})
	}
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	ctxzap.Error(ctx, "usecase error", zap.Error(err))

	switch {
	case errors.Is(err, entity.ErrSessionNotFound):
		response.Error(w, http.StatusNotFound, "session not found")
	case errors.Is(err, entity.ErrEmptyContent),
		errors.Is(err, entity.ErrNoChunksProduced),
		errors.Is(err, entity.ErrInvalidChunking),
		errors.Is(err, entity.ErrMissingField),
		errors.Is(err, entity.ErrInvalidParameter):
		response.Error(w, http.StatusBadRequest, err.Error())
	default:
		response.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
