package webpage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/mlevkov/contentproc/internal/config"
	"github.com/mlevkov/contentproc/internal/entity"
	"github.com/mlevkov/contentproc/internal/pkg/validator"
)

type fakeUsecase struct {
	storeResp    *entity.StoreWebpageResponse
	storeErr     error
	askResp      *entity.AskResponse
	askErr       error
	session      *entity.Session
	sessionErr   error
	deleteResult entity.DeleteResult
}

func (f *fakeUsecase) StoreWebpage(_ context.Context, _ *entity.StoreWebpageRequest) (*entity.StoreWebpageResponse, error) {
	return f.storeResp, f.storeErr
}

func (f *fakeUsecase) Ask(_ context.Context, _ *entity.AskRequest) (*entity.AskResponse, error) {
	return f.askResp, f.askErr
}

func (f *fakeUsecase) GetSessionInfo(_ context.Context, _ string) (*entity.Session, error) {
	return f.session, f.sessionErr
}

func (f *fakeUsecase) ListSessions(_ context.Context) *entity.SessionListResponse {
	return &entity.SessionListResponse{Sessions: []*entity.Session{}, Count: 0}
}

func (f *fakeUsecase) DeleteSession(_ context.Context, _ string) entity.DeleteResult {
	return f.deleteResult
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newTestRouter(uc QAUsecase) http.Handler {
	v := validator.NewFileValidator(config.FileUploadConfig{})
	h := NewHandler(uc, v)
	r := chi.NewRouter()
	RegisterRoutes(r, h)
	return r
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestStoreWebpageCreated(t *testing.T) {
	uc := &fakeUsecase{storeResp: &entity.StoreWebpageResponse{
		SessionID: "abc", Title: "Page", URL: "https://example.com", Chunks: 3,
	}}
	router := newTestRouter(uc)

	rec, env := doJSON(t, router, http.MethodPost, "/api/webpage/store", entity.StoreWebpageRequest{
		Title: "Page", URL: "https://example.com", Content: "some content",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	require.True(t, env.Success)

	var resp entity.StoreWebpageResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	require.Equal(t, "abc", resp.SessionID)
	require.Equal(t, 3, resp.Chunks)
}

func TestStoreWebpageValidationError(t *testing.T) {
	router := newTestRouter(&fakeUsecase{})

	// Neither content nor fetch provided.
	rec, env := doJSON(t, router, http.MethodPost, "/api/webpage/store", entity.StoreWebpageRequest{
		Title: "Page", URL: "https://example.com",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.False(t, env.Success)
	require.NotEmpty(t, env.Error)
}

func TestStoreWebpageInvalidJSON(t *testing.T) {
	router := newTestRouter(&fakeUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/api/webpage/store", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStoreWebpageStorageFailure(t *testing.T) {
	uc := &fakeUsecase{storeErr: fmt.Errorf("%w: index down", entity.ErrStorageFailed)}
	router := newTestRouter(uc)

	rec, env := doJSON(t, router, http.MethodPost, "/api/webpage/store", entity.StoreWebpageRequest{
		Title: "Page", URL: "https://example.com", Content: "content",
	})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.False(t, env.Success)
}

func TestAskSuccess(t *testing.T) {
	uc := &fakeUsecase{askResp: &entity.AskResponse{
		Answer:   "42",
		Question: "what is the answer?",
		Session:  entity.SessionRef{Title: "Page", URL: "https://example.com"},
	}}
	router := newTestRouter(uc)

	rec, env := doJSON(t, router, http.MethodPost, "/api/webpage/ask", entity.AskRequest{
		SessionID: "abc", Question: "what is the answer?",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)

	var resp entity.AskResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	require.Equal(t, "42", resp.Answer)
}

func TestAskSessionNotFound(t *testing.T) {
	uc := &fakeUsecase{askErr: fmt.Errorf("%w: abc", entity.ErrSessionNotFound)}
	router := newTestRouter(uc)

	rec, env := doJSON(t, router, http.MethodPost, "/api/webpage/ask", entity.AskRequest{
		SessionID: "abc", Question: "anything?",
	})

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.False(t, env.Success)
}

func TestAskMissingQuestion(t *testing.T) {
	router := newTestRouter(&fakeUsecase{})

	rec, _ := doJSON(t, router, http.MethodPost, "/api/webpage/ask", entity.AskRequest{
		SessionID: "abc",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetSessionNotFound(t *testing.T) {
	uc := &fakeUsecase{sessionErr: fmt.Errorf("%w: nope", entity.ErrSessionNotFound)}
	router := newTestRouter(uc)

	rec, _ := doJSON(t, router, http.MethodGet, "/api/webpage/session/nope", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteSessionStatuses(t *testing.T) {
	cases := []struct {
		result entity.DeleteResult
		status int
	}{
		{entity.DeleteCompleted, http.StatusOK},
		{entity.DeletePartial, http.StatusInternalServerError},
		{entity.DeleteNotFound, http.StatusNotFound},
	}

	for _, c := range cases {
		router := newTestRouter(&fakeUsecase{deleteResult: c.result})
		rec, _ := doJSON(t, router, http.MethodDelete, "/api/webpage/session/abc", nil)
		require.Equal(t, c.status, rec.Code, "result %s", c.result)
	}
}

func TestListSessionsEmpty(t *testing.T) {
	router := newTestRouter(&fakeUsecase{})

	rec, env := doJSON(t, router, http.MethodGet, "/api/webpage/sessions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)

	var resp entity.SessionListResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	require.Zero(t, resp.Count)
}
