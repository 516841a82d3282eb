// Package qa implements webpage question answering over a vector index:
// content is chunked, embedded and stored per session; questions retrieve
// the nearest chunks of that session and feed them to the LLM.
package qa

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/mlevkov/contentproc/internal/chunker"
	"github.com/mlevkov/contentproc/internal/config"
	"github.com/mlevkov/contentproc/internal/entity"
	"github.com/mlevkov/contentproc/internal/pkg/prompts"
	"github.com/mlevkov/contentproc/internal/session"
)

// QAUsecase implements webpage Q&A business logic
type QAUsecase struct {
	sessions *session.Store
	index    VectorStore
	embedder EmbeddingProvider
	llm      LLMProvider
	fetcher  WebFetcher
	chunkCfg config.ChunkingConfig
	logger   *zap.Logger
}

// NewUsecase creates a new Q&A use case
func NewUsecase(
	sessions *session.Store,
	index VectorStore,
	embedder EmbeddingProvider,
	llm LLMProvider,
	fetcher WebFetcher,
	chunkCfg config.ChunkingConfig,
	logger *zap.Logger,
) *QAUsecase {
	return &QAUsecase{
		sessions: sessions,
		index:    index,
		embedder: embedder,
		llm:      llm,
		fetcher:  fetcher,
		chunkCfg: chunkCfg,
		logger:   logger,
	}
}

// StoreWebpage ingests webpage content into the vector index and registers
// a session for it. When req.Fetch is set and Content is empty, the page is
// downloaded and its readable text extracted first.
func (uc *QAUsecase) StoreWebpage(ctx context.Context, req *entity.StoreWebpageRequest) (*entity.StoreWebpageResponse, error) {
	title, url, content := req.Title, req.URL, req.Content

	if req.Fetch && strings.TrimSpace(content) == "" {
		page, err := uc.fetcher.Fetch(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", entity.ErrStorageFailed, err)
		}
		content = page.Content
		if title == "" {
			title = page.Title
		}
	}

	combined := strings.TrimSpace(content)
	if combined == "" {
		return nil, fmt.Errorf("%w: %w", entity.ErrStorageFailed, entity.ErrEmptyContent)
	}
	// Counted in runes, consistent with the chunker.
	contentLength := utf8.RuneCountInString(combined)

	chunkSize := req.ChunkSize
	if chunkSize <= 0 {
		chunkSize = uc.chunkCfg.Size
	}
	chunkOverlap := req.ChunkOverlap
	if chunkOverlap <= 0 {
		chunkOverlap = uc.chunkCfg.Overlap
	}

	sessionID := uuid.New().String()

	ctxzap.Info(ctx, "storing webpage",
		zap.String("session_id", sessionID),
		zap.String("title", title),
		zap.Int("content_length", contentLength),
	)

	chunks, err := chunker.Chunk(combined, chunkSize, chunkOverlap)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrStorageFailed, err)
	}
	if len(chunks) == 0 {
		return nil, fmt.Errorf("%w: %w", entity.ErrStorageFailed, entity.ErrNoChunksProduced)
	}

	embeddings, err := uc.embedder.EmbedDocuments(ctx, chunks)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrStorageFailed, err)
	}
	if len(embeddings) != len(chunks) {
		return nil, fmt.Errorf("%w: got %d embeddings for %d chunks", entity.ErrStorageFailed, len(embeddings), len(chunks))
	}

	now := time.Now()
	entries := make([]entity.IndexEntry, len(chunks))
	for i, chunk := range chunks {
		metadata := map[string]any{
			"session_id":   sessionID,
			"title":        title,
			"url":          url,
			"chunk_index":  i,
			"total_chunks": len(chunks),
			"stored_at":    now.Format(time.RFC3339),
		}
		for k, v := range req.Metadata {
			metadata[k] = v
		}

		entries[i] = entity.IndexEntry{
			ID:        fmt.Sprintf("%s_%d", sessionID, i),
			Embedding: embeddings[i],
			Document:  chunk,
			Metadata:  metadata,
		}
	}

	if err := uc.index.Upsert(ctx, entries); err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrStorageFailed, err)
	}

	uc.sessions.Put(&entity.Session{
		ID:            sessionID,
		Title:         title,
		URL:           url,
		ChunkCount:    len(chunks),
		ContentLength: contentLength,
		ChunkSize:     chunkSize,
		ChunkOverlap:  chunkOverlap,
		CreatedAt:     now,
		Metadata:      req.Metadata,
	})

	ctxzap.Info(ctx, "webpage stored",
		zap.String("session_id", sessionID),
		zap.Int("chunks", len(chunks)),
	)

	return &entity.StoreWebpageResponse{
		SessionID: sessionID,
		Title:     title,
		URL:       url,
		Chunks:    len(chunks),
		StoredAt:  now.Format(time.RFC3339),
	}, nil
}

// Ask answers a question about a stored session. When no chunk matches the
// question a fixed fallback string is returned and the LLM is not called.
func (uc *QAUsecase) Ask(ctx context.Context, req *entity.AskRequest) (*entity.AskResponse, error) {
	sess := uc.sessions.Get(req.SessionID)
	if sess == nil {
		return nil, fmt.Errorf("%w: %s", entity.ErrSessionNotFound, req.SessionID)
	}

	topK := req.TopK
	if topK <= 0 {
		topK = uc.chunkCfg.DefaultTopK
	}

	ctxzap.Info(ctx, "answering question",
		zap.String("session_id", req.SessionID),
		zap.Int("top_k", topK),
	)

	questionEmbedding, err := uc.embedder.EmbedQuery(ctx, req.Question)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrQueryFailed, err)
	}

	matches, err := uc.index.Query(ctx, questionEmbedding, topK, map[string]any{"session_id": req.SessionID})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrQueryFailed, err)
	}

	resp := &entity.AskResponse{
		Question: req.Question,
		Session:  entity.SessionRef{Title: sess.Title, URL: sess.URL},
	}

	if len(matches) == 0 {
		ctxzap.Info(ctx, "no relevant chunks found", zap.String("session_id", req.SessionID))
		resp.Answer = prompts.NoMatchFallback
		return resp, nil
	}

	documents := make([]string, len(matches))
	for i, m := range matches {
		documents[i] = m.Document
	}
	contextText := strings.Join(documents, "\n\n")

	ctxzap.Info(ctx, "relevant chunks found", zap.Int("count", len(matches)))

	answer, err := uc.llm.Generate(ctx, prompts.WebpageQA(sess.Title, sess.URL, contextText, req.Question))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrQueryFailed, err)
	}

	ctxzap.Info(ctx, "answer generated", zap.Int("answer_length", len(answer)))

	resp.Answer = answer
	return resp, nil
}

// GetSessionInfo returns the session record or ErrSessionNotFound.
func (uc *QAUsecase) GetSessionInfo(ctx context.Context, sessionID string) (*entity.Session, error) {
	sess := uc.sessions.Get(sessionID)
	if sess == nil {
		return nil, fmt.Errorf("%w: %s", entity.ErrSessionNotFound, sessionID)
	}
	return sess, nil
}

// ListSessions returns all active sessions.
func (uc *QAUsecase) ListSessions(ctx context.Context) *entity.SessionListResponse {
	sessions := uc.sessions.List()
	return &entity.SessionListResponse{
		Sessions: sessions,
		Count:    len(sessions),
	}
}

// DeleteSession removes a session and its indexed chunks. Index deletion
// and session removal are separate steps; when the index delete fails the
// session record is kept and a partial outcome is reported so the caller
// can retry.
func (uc *QAUsecase) DeleteSession(ctx context.Context, sessionID string) entity.DeleteResult {
	if uc.sessions.Get(sessionID) == nil {
		return entity.DeleteNotFound
	}

	if err := uc.index.DeleteWhere(ctx, map[string]any{"session_id": sessionID}); err != nil {
		ctxzap.Error(ctx, "failed to delete session chunks",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		return entity.DeletePartial
	}

	uc.sessions.Delete(sessionID)

	ctxzap.Info(ctx, "session deleted", zap.String("session_id", sessionID))
	return entity.DeleteCompleted
}
