package api

import (
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/sparkskytech/ieltsplan/internal/logger"
	"github.com/sparkskytech/ieltsplan/internal/services"
)

type Server struct {
	PlanService    services.PlanService
	Templates      *template.Template
	Static         fs.FS
	RequestTimeout time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
	// TrustProxy keys the rate limiter by X-Forwarded-For instead of the peer address.
	TrustProxy bool

	// Now stamps download filenames; nil means time.Now.
	Now func() time.Time
}

type pageData map[string]any

func (s *Server) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data pageData) {
	s.renderStatus(w, r, http.StatusOK, name, data)
}

func (s *Server) renderStatus(w http.ResponseWriter, r *http.Request, status int, name string, data pageData) {
	if data == nil {
		data = pageData{}
	}
	if _, ok := data["brand_url"]; !ok {
		data["brand_url"] = brandURL
	}

	log := logger.FromContext(r.Context())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.Templates.ExecuteTemplate(w, name, data); err != nil {
		log.Error("failed to render template %s: %v", name, err)
	}
}
