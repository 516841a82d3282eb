package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/binary"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockConnector produces deterministic pseudo-embeddings so that the same
// text always maps to the same vector. Good enough for local round-trips.
type MockConnector struct {
	dimensions int
	logger     *zap.Logger
}

func NewMockConnector(dimensions int, logger *zap.Logger) *MockConnector {
	if dimensions < 1 {
		dimensions = 8
	}
	return &MockConnector{
		dimensions: dimensions,
		logger:     logger,
	}
}

func (m *MockConnector) EmbedDocuments(ctx context.Context, texts []string) ([][]float64, error) {
	ctxzap.Info(ctx, "[MOCK] embedding documents", zap.Int("count", len(texts)))

	vectors := make([][]float64, len(texts))
	for i, text := range texts {
		vectors[i] = m.pseudoEmbed(text)
	}
	return vectors, nil
}

func (m *MockConnector) EmbedQuery(ctx context.Context, text string) ([]float64, error) {
	ctxzap.Info(ctx, "[MOCK] embedding query", zap.Int("text_length", len(text)))
	return m.pseudoEmbed(text), nil
}

func (m *MockConnector) pseudoEmbed(text string) []float64 {
	seed := sha256.Sum256([]byte(text))

	vector := make([]float64, m.dimensions)
	for i := range vector {
		// A digest yields 4 values; re-hash when it runs out.
		if i > 0 && i%4 == 0 {
			seed = sha256.Sum256(seed[:])
		}
		offset := (i % 4) * 8
		bits := binary.BigEndian.Uint64(seed[offset : offset+8])
		vector[i] = float64(bits%2000)/1000.0 - 1.0
	}
	return vector
}
