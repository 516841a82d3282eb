// Package webfetch downloads a URL server-side and extracts its readable
// text. Successful fetches are cached for a short TTL so that repeated
// ingestion of the same page does not hit the network.
package webfetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/avast/retry-go/v4"
	readability "github.com/go-shiori/go-readability"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/mlevkov/contentproc/internal/config"
	"github.com/mlevkov/contentproc/internal/entity"
)

type Connector struct {
	config config.WebFetchConfig
	client *http.Client
	cache  *gocache.Cache
	logger *zap.Logger
}

func NewConnector(cfg config.WebFetchConfig, logger *zap.Logger) *Connector {
	return &Connector{
		config: cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		cache:  gocache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
		logger: logger,
	}
}

// Fetch downloads the page and returns its readable text and title.
// Transient HTTP failures are retried per the configured policy.
func (c *Connector) Fetch(ctx context.Context, pageURL string) (entity.WebpageContent, error) {
	parsed, err := url.ParseRequestURI(pageURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return entity.WebpageContent{}, fmt.Errorf("invalid url %q", pageURL)
	}

	if cached, ok := c.cache.Get(pageURL); ok {
		ctxzap.Debug(ctx, "webpage cache hit", zap.String("url", pageURL))
		return cached.(entity.WebpageContent), nil
	}

	var body string
	err = retry.Do(
		func() error {
			var ferr error
			body, ferr = c.download(ctx, pageURL)
			return ferr
		},
		append(c.config.Retry.ToRetryOptions(), retry.Context(ctx))...,
	)
	if err != nil {
		return entity.WebpageContent{}, fmt.Errorf("fetch %s: %w", pageURL, err)
	}

	article, err := readability.FromReader(strings.NewReader(body), parsed)
	if err != nil {
		return entity.WebpageContent{}, fmt.Errorf("extract readable content from %s: %w", pageURL, err)
	}

	content := entity.WebpageContent{
		Title:   strings.TrimSpace(article.Title),
		Content: strings.TrimSpace(article.TextContent),
	}
	if content.Content == "" {
		return entity.WebpageContent{}, fmt.Errorf("no readable content at %s", pageURL)
	}

	c.cache.Set(pageURL, content, gocache.DefaultExpiration)

	ctxzap.Info(ctx, "webpage fetched",
		zap.String("url", pageURL),
		zap.String("title", content.Title),
		zap.Int("content_length", len(content.Content)),
	)

	return content, nil
}

func (c *Connector) download(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "contentproc/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("unexpected status %d", resp.StatusCode)
		// Client errors will not improve on retry.
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return "", retry.Unrecoverable(err)
		}
		return "", err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.config.MaxBodySize))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return string(body), nil
}
