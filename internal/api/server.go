package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/mlevkov/contentproc/internal/api/docs"
	documentsapi "github.com/mlevkov/contentproc/internal/api/documents"
	mediaapi "github.com/mlevkov/contentproc/internal/api/media"
	"github.com/mlevkov/contentproc/internal/api/middleware"
	webpageapi "github.com/mlevkov/contentproc/internal/api/webpage"
	"github.com/mlevkov/contentproc/internal/pkg/response"
)

// SetupRouter creates and configures the HTTP router
func SetupRouter(
	webpageHandler *webpageapi.Handler,
	mediaHandler *mediaapi.Handler,
	documentsHandler *documentsapi.Handler,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS)
	r.Use(chimiddleware.Timeout(120 * time.Second))

	// Health check endpoint
	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, map[string]string{"status": "healthy"})
	})

	// Swagger documentation endpoints
	docs.RegisterRoutes(r)

	// API routes
	webpageapi.RegisterRoutes(r, webpageHandler)
	mediaapi.RegisterRoutes(r, mediaHandler)
	documentsapi.RegisterRoutes(r, documentsHandler)

	return r
}
