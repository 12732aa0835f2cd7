package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MKhiriev/go-sync-keeper/internal/metrics"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Handle("/metrics", promhttp.Handler())

	router.Group(func(r chi.Router) {
		r.Use(h.withTraceID, h.withLogging, metrics.Middleware)

		r.Get("/api/version", h.getServerVersion)

		r.Route("/api/sync", func(r chi.Router) {
			r.Get("/states/{mapping}", h.getSyncState)
			r.Get("/deletes/{mapping}", h.getDeletions)
			r.Get("/failed/item/{uuid}", h.getFailedItem)
			r.Get("/failed/{mapping}", h.getFailedItems)
		})
	})

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
