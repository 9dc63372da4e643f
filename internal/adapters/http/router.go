package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func NewRouter(handler *Handler, logger *slog.Logger, ready func() error) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(recoverMiddleware)
	r.Use(loggingMiddleware(logger))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { writeMessage(w, http.StatusOK, "ok") })
	r.Get("/readyz", func(w http.ResponseWriter, _ *http.Request) {
		if ready != nil {
			if err := ready(); err != nil {
				writeError(w, http.StatusServiceUnavailable, "NOT_READY", "dependencies unavailable")
				return
			}
		}
		writeMessage(w, http.StatusOK, "ready")
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(authMiddleware)

		r.Route("/predictions", func(r chi.Router) {
			r.Post("/", handler.predict)
			r.Post("/virality", handler.predictVirality)
			r.Post("/compare", handler.compare)
		})
		r.Post("/content/optimize", handler.optimizeContent)
		r.Post("/recommendations/detailed", handler.detailedRecommendations)
		r.Get("/timing/optimal", handler.optimalTiming)
		r.Post("/outcomes", handler.recordOutcome)
		r.Get("/creators/{creator_id}/baseline", handler.getCreatorBaseline)
		r.Get("/benchmarks/{platform}", handler.getPlatformBenchmark)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/trends", handler.updateTrends)
			r.Post("/models/train", handler.trainModels)
		})
	})
	return r
}
