package qa

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mlevkov/contentproc/internal/config"
	"github.com/mlevkov/contentproc/internal/entity"
	"github.com/mlevkov/contentproc/internal/pkg/prompts"
	"github.com/mlevkov/contentproc/internal/session"
	"github.com/mlevkov/contentproc/internal/vectorstore/memory"
)

type fakeEmbedder struct{}

func textVector(text string) []float64 {
	v := make([]float64, 4)
	for i, r := range text {
		v[i%4] += float64(r%31) / 31
	}
	return v
}

func (f *fakeEmbedder) EmbedDocuments(_ context.Context, texts []string) ([][]float64, error) {
	vectors := make([][]float64, len(texts))
	for i, t := range texts {
		vectors[i] = textVector(t)
	}
	return vectors, nil
}

func (f *fakeEmbedder) EmbedQuery(_ context.Context, text string) ([]float64, error) {
	return textVector(text), nil
}

type fakeLLM struct {
	calls   int
	prompts []string
	answer  string
}

func (f *fakeLLM) Generate(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if f.answer == "" {
		return "generated answer", nil
	}
	return f.answer, nil
}

type fakeFetcher struct {
	page entity.WebpageContent
	err  error
}

func (f *fakeFetcher) Fetch(_ context.Context, _ string) (entity.WebpageContent, error) {
	return f.page, f.err
}

// emptyIndex returns no matches regardless of what was stored.
type emptyIndex struct{}

func (emptyIndex) Upsert(context.Context, []entity.IndexEntry) error { return nil }
func (emptyIndex) Query(context.Context, []float64, int, map[string]any) ([]entity.IndexMatch, error) {
	return nil, nil
}
func (emptyIndex) DeleteWhere(context.Context, map[string]any) error { return nil }

// failingIndex rejects deletes to exercise the partial-delete path.
type failingIndex struct {
	*memory.Store
}

func (f failingIndex) DeleteWhere(context.Context, map[string]any) error {
	return errors.New("index unavailable")
}

func defaultChunkCfg() config.ChunkingConfig {
	return config.ChunkingConfig{Size: 1000, Overlap: 200, DefaultTopK: 3}
}

func newTestUsecase(index VectorStore, llm LLMProvider, fetcher WebFetcher) *QAUsecase {
	return NewUsecase(session.NewStore(), index, &fakeEmbedder{}, llm, fetcher, defaultChunkCfg(), zap.NewNop())
}

func TestStoreWebpageRoundTrip(t *testing.T) {
	index := memory.NewStore()
	uc := newTestUsecase(index, &fakeLLM{}, &fakeFetcher{})
	ctx := context.Background()

	content := strings.Repeat("x", 2000)
	resp, err := uc.StoreWebpage(ctx, &entity.StoreWebpageRequest{
		Title:        "Test Page",
		URL:          "https://example.com",
		Content:      content,
		ChunkSize:    500,
		ChunkOverlap: 100,
		Metadata:     map[string]any{"source": "test"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.SessionID)
	require.Equal(t, 5, resp.Chunks)
	require.Equal(t, 5, index.Len())

	sess, err := uc.GetSessionInfo(ctx, resp.SessionID)
	require.NoError(t, err)
	require.Equal(t, "Test Page", sess.Title)
	require.Equal(t, 2000, sess.ContentLength)
	require.Equal(t, 5, sess.ChunkCount)
	require.Equal(t, 500, sess.ChunkSize)
	require.Equal(t, 100, sess.ChunkOverlap)
	require.Equal(t, "test", sess.Metadata["source"])
}

func TestStoreWebpageMultibyteContentLength(t *testing.T) {
	index := memory.NewStore()
	uc := newTestUsecase(index, &fakeLLM{}, &fakeFetcher{})

	// 2000 runes but 4000 bytes; length accounting must match the
	// rune-based chunker.
	content := strings.Repeat("я", 2000)
	resp, err := uc.StoreWebpage(context.Background(), &entity.StoreWebpageRequest{
		Title:        "Cyrillic Page",
		URL:          "https://example.com",
		Content:      content,
		ChunkSize:    500,
		ChunkOverlap: 100,
	})
	require.NoError(t, err)
	require.Equal(t, 5, resp.Chunks)

	sess, err := uc.GetSessionInfo(context.Background(), resp.SessionID)
	require.NoError(t, err)
	require.Equal(t, 2000, sess.ContentLength)
	require.Equal(t, 5, sess.ChunkCount)
}

func TestStoreWebpageEmptyContent(t *testing.T) {
	uc := newTestUsecase(memory.NewStore(), &fakeLLM{}, &fakeFetcher{})

	_, err := uc.StoreWebpage(context.Background(), &entity.StoreWebpageRequest{
		Title:   "Empty",
		URL:     "https://example.com",
		Content: "   \n ",
	})
	require.ErrorIs(t, err, entity.ErrStorageFailed)
	require.ErrorIs(t, err, entity.ErrEmptyContent)
}

func TestStoreWebpageWithFetch(t *testing.T) {
	fetcher := &fakeFetcher{page: entity.WebpageContent{
		Title:   "Fetched Title",
		Content: "fetched page content about Go services",
	}}
	uc := newTestUsecase(memory.NewStore(), &fakeLLM{}, fetcher)

	resp, err := uc.StoreWebpage(context.Background(), &entity.StoreWebpageRequest{
		URL:   "https://example.com/article",
		Fetch: true,
	})
	require.NoError(t, err)
	require.Equal(t, "Fetched Title", resp.Title)
	require.Equal(t, 1, resp.Chunks)
}

func TestStoreWebpageFetchFailure(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("connection refused")}
	uc := newTestUsecase(memory.NewStore(), &fakeLLM{}, fetcher)

	_, err := uc.StoreWebpage(context.Background(), &entity.StoreWebpageRequest{
		URL:   "https://example.com",
		Fetch: true,
	})
	require.ErrorIs(t, err, entity.ErrStorageFailed)
}

func TestAskUnknownSession(t *testing.T) {
	uc := newTestUsecase(memory.NewStore(), &fakeLLM{}, &fakeFetcher{})

	_, err := uc.Ask(context.Background(), &entity.AskRequest{
		SessionID: "no-such-session",
		Question:  "what is this?",
	})
	require.ErrorIs(t, err, entity.ErrSessionNotFound)
}

func TestAskAnswersFromStoredContent(t *testing.T) {
	llm := &fakeLLM{answer: "Python was created by Guido van Rossum."}
	uc := newTestUsecase(memory.NewStore(), llm, &fakeFetcher{})
	ctx := context.Background()

	stored, err := uc.StoreWebpage(ctx, &entity.StoreWebpageRequest{
		Title:   "Python",
		URL:     "https://example.com/python",
		Content: "Python is a high-level language created by Guido van Rossum in 1991.",
	})
	require.NoError(t, err)

	resp, err := uc.Ask(ctx, &entity.AskRequest{
		SessionID: stored.SessionID,
		Question:  "Who created Python?",
	})
	require.NoError(t, err)
	require.Equal(t, "Python was created by Guido van Rossum.", resp.Answer)
	require.Equal(t, "Who created Python?", resp.Question)
	require.Equal(t, "Python", resp.Session.Title)

	require.Equal(t, 1, llm.calls)
	require.Contains(t, llm.prompts[0], "Guido van Rossum")
	require.Contains(t, llm.prompts[0], "Who created Python?")
	require.Contains(t, llm.prompts[0], "https://example.com/python")
}

func TestAskNoMatchesSkipsLLM(t *testing.T) {
	llm := &fakeLLM{}
	uc := newTestUsecase(emptyIndex{}, llm, &fakeFetcher{})
	ctx := context.Background()

	stored, err := uc.StoreWebpage(ctx, &entity.StoreWebpageRequest{
		Title:   "Page",
		URL:     "https://example.com",
		Content: "some content",
	})
	require.NoError(t, err)

	resp, err := uc.Ask(ctx, &entity.AskRequest{
		SessionID: stored.SessionID,
		Question:  "anything?",
	})
	require.NoError(t, err)
	require.Equal(t, prompts.NoMatchFallback, resp.Answer)
	require.Zero(t, llm.calls)
}

func TestAskSessionIsolation(t *testing.T) {
	llm := &fakeLLM{}
	uc := newTestUsecase(memory.NewStore(), llm, &fakeFetcher{})
	ctx := context.Background()

	first, err := uc.StoreWebpage(ctx, &entity.StoreWebpageRequest{
		Title: "First", URL: "https://a.example", Content: "ALPHA document body",
	})
	require.NoError(t, err)

	_, err = uc.StoreWebpage(ctx, &entity.StoreWebpageRequest{
		Title: "Second", URL: "https://b.example", Content: "BRAVO document body",
	})
	require.NoError(t, err)

	_, err = uc.Ask(ctx, &entity.AskRequest{SessionID: first.SessionID, Question: "what is it?"})
	require.NoError(t, err)

	require.Contains(t, llm.prompts[0], "ALPHA")
	require.NotContains(t, llm.prompts[0], "BRAVO")
}

func TestDeleteSessionCompleted(t *testing.T) {
	index := memory.NewStore()
	uc := newTestUsecase(index, &fakeLLM{}, &fakeFetcher{})
	ctx := context.Background()

	stored, err := uc.StoreWebpage(ctx, &entity.StoreWebpageRequest{
		Title: "Page", URL: "https://example.com", Content: "to be deleted",
	})
	require.NoError(t, err)

	result := uc.DeleteSession(ctx, stored.SessionID)
	require.Equal(t, entity.DeleteCompleted, result)
	require.Zero(t, index.Len())

	_, err = uc.Ask(ctx, &entity.AskRequest{SessionID: stored.SessionID, Question: "still there?"})
	require.ErrorIs(t, err, entity.ErrSessionNotFound)
}

func TestDeleteSessionNotFound(t *testing.T) {
	uc := newTestUsecase(memory.NewStore(), &fakeLLM{}, &fakeFetcher{})
	require.Equal(t, entity.DeleteNotFound, uc.DeleteSession(context.Background(), "missing"))
}

func TestDeleteSessionPartialKeepsSession(t *testing.T) {
	index := failingIndex{memory.NewStore()}
	uc := newTestUsecase(index, &fakeLLM{}, &fakeFetcher{})
	ctx := context.Background()

	stored, err := uc.StoreWebpage(ctx, &entity.StoreWebpageRequest{
		Title: "Page", URL: "https://example.com", Content: "chunks stay behind",
	})
	require.NoError(t, err)

	result := uc.DeleteSession(ctx, stored.SessionID)
	require.Equal(t, entity.DeletePartial, result)

	// The session record survives so the delete can be retried.
	sess, err := uc.GetSessionInfo(ctx, stored.SessionID)
	require.NoError(t, err)
	require.Equal(t, "Page", sess.Title)
}

func TestListSessions(t *testing.T) {
	uc := newTestUsecase(memory.NewStore(), &fakeLLM{}, &fakeFetcher{})
	ctx := context.Background()

	require.Zero(t, uc.ListSessions(ctx).Count)

	_, err := uc.StoreWebpage(ctx, &entity.StoreWebpageRequest{
		Title: "One", URL: "https://example.com/1", Content: "first",
	})
	require.NoError(t, err)
	_, err = uc.StoreWebpage(ctx, &entity.StoreWebpageRequest{
		Title: "Two", URL: "https://example.com/2", Content: "second",
	})
	require.NoError(t, err)

	list := uc.ListSessions(ctx)
	require.Equal(t, 2, list.Count)
	require.Len(t, list.Sessions, 2)
}
