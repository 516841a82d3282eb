package common

import (
	"go.uber.org/zap"

	"github.com/mlevkov/contentproc/internal/config"
	pkgHTTP "github.com/mlevkov/contentproc/pkg/http"
)

// NewBaseConnector builds a connector from the shared transport config.
// Extra options let a caller add service-specific auth headers.
func NewBaseConnector(cfg config.HTTPClientConfig, logger *zap.Logger, extra ...pkgHTTP.Option) *pkgHTTP.Connector {
	connCfg := &pkgHTTP.ConnectorConfig{
		Logger:  logger,
		BaseURL: cfg.Url,
	}

	options := []pkgHTTP.Option{
		pkgHTTP.WithRequestTimeout(cfg.RequestTimeout),
		pkgHTTP.WithConnTimeout(cfg.ConnTimeout),
		pkgHTTP.WithKeepAlive(cfg.KeepAlive),
		pkgHTTP.WithIdleConnTimeout(cfg.IdleConnTimeout),
		pkgHTTP.WithResponseHeaderTimeout(cfg.ResponseHeaderTimeout),
		pkgHTTP.WithRequestLogging(),
		pkgHTTP.WithAuthToken(cfg.Token),
	}
	options = append(options, extra...)

	return pkgHTTP.NewConnector(connCfg, options...)
}
