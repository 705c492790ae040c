package api

import (
	"net/http"

	"github.com/sparkskytech/ieltsplan/internal/errors"
	"github.com/sparkskytech/ieltsplan/internal/logger"
	"github.com/sparkskytech/ieltsplan/internal/planner"
)

// handleGeneratePlan answers the form submission with the plan as JSON.
func (s *Server) handleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	plan, err := s.PlanService.GeneratePlan(r.Context(), rawRequest(r))
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"success": true,
		"plan":    plan,
	})
}

// handlePlanPage answers the same form with a rendered plan page.
func (s *Server) handlePlanPage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	raw := rawRequest(r)

	plan, err := s.PlanService.GeneratePlan(r.Context(), raw)
	if err != nil {
		appErr, ok := errors.As(err)
		if !ok || appErr.Code != errors.ErrCodeValidation {
			handleError(w, r, err)
			return
		}
		log.Warn("plan form rejected: %v", appErr)
		s.renderStatus(w, r, http.StatusBadRequest, "pages/index.html", homeData(formEcho(raw), appErr.Message))
		return
	}

	s.render(w, r, "pages/plan.html", pageData{"plan": plan})
}

func rawRequest(r *http.Request) planner.RawRequest {
	return planner.RawRequest{
		CurrentScore: formValue(r, "current_score", "currentLevel"),
		TargetScore:  formValue(r, "target_score", "targetBand"),
		DailyHours:   formValue(r, "hours_daily", "hoursDaily"),
		TestType:     formValue(r, "test_type", "testType"),
		TotalWeeks:   formValue(r, "num_weeks", "prepDuration"),
	}
}

func formEcho(raw planner.RawRequest) map[string]string {
	return map[string]string{
		"current_score": raw.CurrentScore,
		"target_score":  raw.TargetScore,
		"hours_daily":   raw.DailyHours,
		"test_type":     raw.TestType,
		"num_weeks":     raw.TotalWeeks,
	}
}
