package llm

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockConnector fakes the LLM for local runs without an API key.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) Generate(ctx context.Context, prompt string) (string, error) {
	ctxzap.Info(ctx, "[MOCK] generating completion via LLM", zap.Int("prompt_length", len(prompt)))

	answer := `# Mock completion

Based on the provided content, here is a generated response.

- The request was processed locally without calling the model provider.
- Enable real credentials to receive actual completions.

*Generated automatically (MOCK)*`

	ctxzap.Info(ctx, "[MOCK] completion generated", zap.Int("result_length", len(answer)))
	return answer, nil
}

func (m *MockConnector) GenerateWithImage(ctx context.Context, prompt, imageB64, mediaType string) (string, error) {
	ctxzap.Info(ctx, "[MOCK] generating image completion via LLM",
		zap.String("media_type", mediaType),
		zap.Int("image_b64_length", len(imageB64)),
	)

	answer := `Mock image analysis: the submitted image was received and accepted.
No visual model was called because mocks are enabled. (MOCK)`

	ctxzap.Info(ctx, "[MOCK] image completion generated", zap.Int("result_length", len(answer)))
	return answer, nil
}
