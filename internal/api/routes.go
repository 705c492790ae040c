package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sparkskytech/ieltsplan/internal/errors"
	"github.com/sparkskytech/ieltsplan/internal/metrics"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(loggingMiddleware)
	r.Use(recoveryMiddleware)
	r.Use(securityHeadersMiddleware)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handleError(w, r, errors.NewNotFoundError("route", r.URL.Path))
	})

	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", metrics.Handler())
	if s.Static != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(s.Static))))
	}

	r.Group(func(r chi.Router) {
		r.Use(rateLimitMiddleware(s.RateLimitRPS, s.RateLimitBurst, s.TrustProxy))
		r.Use(timeoutMiddleware(s.RequestTimeout))

		r.Get("/", s.handleHome)
		r.Post("/generate-plan", s.handleGeneratePlan)
		r.Post("/plan", s.handlePlanPage)
		r.Post("/export-text", s.handleExportText)
		r.Post("/export-pdf", s.handleExportPDF)
	})
	return r
}
