package http

import (
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type payloadContextKey struct{}

type logTransport struct {
	transport http.RoundTripper
}

func (t *logTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	fields := []zap.Field{
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
	}
	if payload, ok := ctx.Value(payloadContextKey{}).([]byte); ok && len(payload) > 0 {
		fields = append(fields, zap.Int("payload_bytes", len(payload)))
	}

	ctxzap.Debug(ctx, "HTTP outbound request", fields...)

	return t.transport.RoundTrip(req)
}

// WithRequestLogging logs outbound requests through the context logger.
func WithRequestLogging() Option {
	return WithTransport(func(rt http.RoundTripper) http.RoundTripper {
		return &logTransport{transport: rt}
	})
}

type authTransport struct {
	header    string
	value     string
	transport http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	reqCopy := req.Clone(req.Context())
	if t.value != "" {
		reqCopy.Header.Set(t.header, t.value)
	}
	return t.transport.RoundTrip(reqCopy)
}

// WithAuthToken sets "Authorization: Bearer <token>" on every request.
// An empty token disables the header.
func WithAuthToken(token string) Option {
	if token == "" {
		return WithAuthHeader("Authorization", "")
	}
	return WithAuthHeader("Authorization", "Bearer "+token)
}

// WithAuthHeader sets an arbitrary static auth header on every request,
// for services that do not use bearer tokens (e.g. "x-api-key").
func WithAuthHeader(header, value string) Option {
	return WithTransport(func(rt http.RoundTripper) http.RoundTripper {
		return &authTransport{header: header, value: value, transport: rt}
	})
}
