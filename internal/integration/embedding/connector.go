package embedding

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/mlevkov/contentproc/internal/config"
	"github.com/mlevkov/contentproc/internal/entity"
	"github.com/mlevkov/contentproc/internal/integration/common"
	pkghttp "github.com/mlevkov/contentproc/pkg/http"
)

const (
	defaultBaseURL     = "https://api.openai.com/v1"
	embeddingsEndpoint = "/embeddings"
)

type Connector struct {
	config    config.EmbeddingConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.EmbeddingConnectorConfig,
	logger *zap.Logger,
) *Connector {
	if cfg.Url == "" {
		cfg.Url = defaultBaseURL
	}
	if cfg.Token == "" {
		cfg.Token = cfg.APIKey
	}
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// EmbedDocuments embeds a batch of texts. The result preserves input order
// regardless of the order the provider returns items in.
func (c *Connector) EmbedDocuments(ctx context.Context, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	ctxzap.Info(ctx, "embedding documents", zap.Int("count", len(texts)))

	req := &entity.EmbeddingsRequest{
		Model:      c.config.Model,
		Input:      texts,
		Dimensions: c.config.Dimensions,
	}

	var resp entity.EmbeddingsResponse
	if err := c.connector.DoRequest(ctx, http.MethodPost, embeddingsEndpoint, req, &resp); err != nil {
		return nil, fmt.Errorf("embeddings request failed: %w", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("invalid embeddings response: got %d vectors for %d inputs", len(resp.Data), len(texts))
	}

	sort.Slice(resp.Data, func(i, j int) bool { return resp.Data[i].Index < resp.Data[j].Index })

	vectors := make([][]float64, len(resp.Data))
	for i, item := range resp.Data {
		vectors[i] = item.Embedding
	}

	ctxzap.Info(ctx, "documents embedded", zap.Int("total_tokens", resp.Usage.TotalTokens))

	return vectors, nil
}

// EmbedQuery embeds a single query string.
func (c *Connector) EmbedQuery(ctx context.Context, text string) ([]float64, error) {
	vectors, err := c.EmbedDocuments(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}
