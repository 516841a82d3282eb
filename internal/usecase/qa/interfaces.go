package qa

import (
	"context"

	"github.com/mlevkov/contentproc/internal/entity"
)

type EmbeddingProvider interface {
	EmbedDocuments(ctx context.Context, texts []string) ([][]float64, error)
	EmbedQuery(ctx context.Context, text string) ([]float64, error)
}

type LLMProvider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type VectorStore interface {
	Upsert(ctx context.Context, entries []entity.IndexEntry) error
	Query(ctx context.Context, vector []float64, topK int, filter map[string]any) ([]entity.IndexMatch, error)
	DeleteWhere(ctx context.Context, filter map[string]any) error
}

type WebFetcher interface {
	Fetch(ctx context.Context, url string) (entity.WebpageContent, error)
}
