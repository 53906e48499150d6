package chi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"

	"github.com/marcelsud/webhook-capture/capture"
	"github.com/marcelsud/webhook-capture/codegen"
)

// Handlers sets up the capture surface and the inspection API
func Handlers(ctx context.Context, captureService capture.UseCase, codegenService codegen.UseCase, capturePrefix string) *chi.Mux {
	// Logger
	logger := httplog.NewLogger("webhook-capture", httplog.Options{
		JSON: true,
	})

	r := chi.NewRouter()
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Recoverer)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	/* The capture surface accepts every method and every subpath, and
	 * runs without the timeout middleware so slow request bodies still
	 * land. HandleFunc registers for all methods.
	 */
	captureAny := captureWebhook(captureService, capturePrefix)
	r.HandleFunc(capturePrefix, captureAny)
	r.HandleFunc(capturePrefix+"/*", captureAny)

	// Inspection API
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Timeout(30 * time.Second))
		r.Get("/webhooks", listWebhooks(captureService))
		r.Get("/webhooks/{id}", getWebhook(captureService))
		r.Post("/webhooks/generate-handler", generateHandler(codegenService))
	})

	return r
}
