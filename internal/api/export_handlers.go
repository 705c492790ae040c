package api

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"strconv"

	"github.com/sparkskytech/ieltsplan/internal/errors"
	"github.com/sparkskytech/ieltsplan/internal/export"
	"github.com/sparkskytech/ieltsplan/internal/models"
)

const maxPlanBodyBytes = 4 << 20

func (s *Server) handleExportText(w http.ResponseWriter, r *http.Request) {
	plan, err := decodePlan(w, r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	content, err := s.PlanService.ExportText(r.Context(), plan)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"success": true,
		"content": content,
	})
}

func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	plan, err := decodePlan(w, r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	data, err := s.PlanService.ExportPDF(r.Context(), plan)
	if err != nil {
		handleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.PDFFilename(s.now())+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// decodePlan reads a plan previously returned by /generate-plan from the request body.
func decodePlan(w http.ResponseWriter, r *http.Request) (*models.StudyPlan, error) {
	body := http.MaxBytesReader(w, r.Body, maxPlanBodyBytes)

	var plan *models.StudyPlan
	if err := json.NewDecoder(body).Decode(&plan); err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, errors.NewBadRequestError("no plan data received")
		}
		return nil, errors.NewBadRequestError("invalid plan data: " + err.Error())
	}
	if plan == nil {
		return nil, errors.NewBadRequestError("no plan data received")
	}
	return plan, nil
}
