package api

import (
	"net/http"

	"github.com/sparkskytech/ieltsplan/internal/export"
	"github.com/sparkskytech/ieltsplan/internal/logger"
)

const brandURL = export.BrandURL

// bandOptions lists the score choices offered by the form.
var bandOptions = []string{"4.0", "4.5", "5.0", "5.5", "6.0", "6.5", "7.0", "7.5", "8.0", "8.5", "9.0"}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Debug("rendering home page")

	s.render(w, r, "pages/index.html", homeData(nil, ""))
}

func homeData(form map[string]string, errMsg string) pageData {
	if form == nil {
		form = map[string]string{
			"current_score": "5.5",
			"target_score":  "7.0",
			"hours_daily":   "2",
			"test_type":     "academic",
			"num_weeks":     "8",
		}
	}
	return pageData{
		"bands":      bandOptions,
		"hours":      []int{1, 2, 3, 4, 5, 6},
		"week_range": []int{2, 4, 6, 8, 10, 12, 16},
		"form":       form,
		"error":      errMsg,
	}
}
