package llm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/mlevkov/contentproc/internal/config"
	"github.com/mlevkov/contentproc/internal/entity"
	"github.com/mlevkov/contentproc/internal/integration/common"
	pkghttp "github.com/mlevkov/contentproc/pkg/http"
)

const (
	defaultBaseURL   = "https://api.anthropic.com"
	messagesEndpoint = "/v1/messages"
)

type Connector struct {
	config    config.LLMConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.LLMConnectorConfig,
	logger *zap.Logger,
) *Connector {
	if cfg.Url == "" {
		cfg.Url = defaultBaseURL
	}
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger,
			pkghttp.WithAuthHeader("x-api-key", cfg.APIKey),
			pkghttp.WithAuthHeader("anthropic-version", cfg.APIVersion),
		),
		config: cfg,
		logger: logger,
	}
}

// Generate sends a single-turn text prompt and returns the model reply.
func (c *Connector) Generate(ctx context.Context, prompt string) (string, error) {
	ctxzap.Info(ctx, "generating completion via LLM", zap.Int("prompt_length", len(prompt)))

	req := &entity.LLMGenerateRequest{
		Model:       c.config.Model,
		MaxTokens:   c.config.MaxTokens,
		Temperature: c.config.Temperature,
		Messages: []entity.LLMMessage{
			{
				Role: "user",
				Content: []entity.LLMContentBlock{
					{Type: "text", Text: prompt},
				},
			},
		},
	}

	return c.send(ctx, req)
}

// GenerateWithImage sends a prompt together with a base64-encoded image.
// mediaType is the detected MIME type of the image bytes.
func (c *Connector) GenerateWithImage(ctx context.Context, prompt, imageB64, mediaType string) (string, error) {
	ctxzap.Info(ctx, "generating image completion via LLM",
		zap.String("media_type", mediaType),
		zap.Int("image_b64_length", len(imageB64)),
	)

	req := &entity.LLMGenerateRequest{
		Model:       c.config.Model,
		MaxTokens:   c.config.MaxTokens,
		Temperature: c.config.Temperature,
		Messages: []entity.LLMMessage{
			{
				Role: "user",
				Content: []entity.LLMContentBlock{
					{
						Type: "image",
						Source: &entity.LLMImageSource{
							Type:      "base64",
							MediaType: mediaType,
							Data:      imageB64,
						},
					},
					{Type: "text", Text: prompt},
				},
			},
		},
	}

	return c.send(ctx, req)
}

func (c *Connector) send(ctx context.Context, req *entity.LLMGenerateRequest) (string, error) {
	var resp entity.LLMGenerateResponse
	if err := c.connector.DoRequest(ctx, http.MethodPost, messagesEndpoint, req, &resp); err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}

	text := ""
	for _, block := range resp.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	if text == "" {
		return "", fmt.Errorf("invalid llm response: no text content")
	}

	ctxzap.Info(ctx, "completion generated",
		zap.String("stop_reason", resp.StopReason),
		zap.Int("output_tokens", resp.Usage.OutputTokens),
	)

	return text, nil
}
