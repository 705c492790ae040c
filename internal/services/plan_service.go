package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/sparkskytech/ieltsplan/internal/errors"
	"github.com/sparkskytech/ieltsplan/internal/export"
	"github.com/sparkskytech/ieltsplan/internal/jobs"
	"github.com/sparkskytech/ieltsplan/internal/logger"
	"github.com/sparkskytech/ieltsplan/internal/metrics"
	"github.com/sparkskytech/ieltsplan/internal/models"
	"github.com/sparkskytech/ieltsplan/internal/planner"
)

// PlanService handles plan generation and export
type PlanService interface {
	GeneratePlan(ctx context.Context, raw planner.RawRequest) (*models.StudyPlan, error)
	ExportText(ctx context.Context, plan *models.StudyPlan) (string, error)
	ExportPDF(ctx context.Context, plan *models.StudyPlan) ([]byte, error)
}

type planService struct {
	generator     *planner.Generator
	renderQueue   jobs.RenderQueue
	renderTimeout time.Duration
}

// NewPlanService creates a new PlanService. A nil renderQueue renders PDFs on
// the calling goroutine.
func NewPlanService(generator *planner.Generator, renderQueue jobs.RenderQueue, renderTimeout time.Duration) PlanService {
	if generator == nil {
		generator = planner.NewGenerator()
	}
	return &planService{
		generator:     generator,
		renderQueue:   renderQueue,
		renderTimeout: renderTimeout,
	}
}

func (s *planService) GeneratePlan(ctx context.Context, raw planner.RawRequest) (*models.StudyPlan, error) {
	log := logger.FromContext(ctx)
	log.Debug("generating plan: current=%s target=%s hours=%s type=%s weeks=%s",
		raw.CurrentScore, raw.TargetScore, raw.DailyHours, raw.TestType, raw.TotalWeeks)

	req, err := planner.ParseRequest(raw)
	if err != nil {
		return nil, s.rejected(log, err)
	}

	plan, err := s.generator.Generate(req)
	if err != nil {
		return nil, s.rejected(log, err)
	}

	metrics.PlansGenerated.WithLabelValues(string(plan.Intensity)).Inc()
	log.WithFields(map[string]any{
		"intensity": plan.Intensity,
		"weeks":     plan.TotalWeeks,
		"sessions":  plan.SessionCount(),
	}).Info("plan generated")
	return plan, nil
}

func (s *planService) rejected(log *logger.Logger, err error) error {
	if appErr, ok := errors.As(err); ok && appErr.Code == errors.ErrCodeValidation {
		metrics.ValidationFailures.WithLabelValues(appErr.Field).Inc()
		log.Warn("plan request rejected: %v", appErr)
		return appErr
	}
	log.Error("plan generation failed: %v", err)
	return errors.NewInternalError(err)
}

func (s *planService) ExportText(ctx context.Context, plan *models.StudyPlan) (string, error) {
	log := logger.FromContext(ctx)
	if plan == nil {
		return "", errors.NewBadRequestError("no plan data provided")
	}

	var buf bytes.Buffer
	if err := export.WriteText(&buf, plan); err != nil {
		metrics.ExportFailed("text")
		log.Error("text export failed: %v", err)
		return "", errors.NewRenderError("text", err)
	}

	metrics.ExportSucceeded("text")
	log.Debug("text export produced %d bytes", buf.Len())
	return buf.String(), nil
}

func (s *planService) ExportPDF(ctx context.Context, plan *models.StudyPlan) ([]byte, error) {
	log := logger.FromContext(ctx)
	if plan == nil {
		return nil, errors.NewBadRequestError("no plan data provided")
	}

	data, err := s.renderPDF(ctx, plan)
	if err != nil {
		metrics.ExportFailed("pdf")
		log.Error("pdf export failed: %v", err)
		return nil, errors.NewRenderError("pdf", err)
	}

	metrics.ExportSucceeded("pdf")
	log.Info("pdf export produced %d bytes", len(data))
	return data, nil
}

func (s *planService) renderPDF(ctx context.Context, plan *models.StudyPlan) ([]byte, error) {
	if s.renderQueue == nil {
		var buf bytes.Buffer
		if err := export.WritePDF(&buf, plan); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	result, err := s.renderQueue.EnqueuePDF(plan)
	if err != nil {
		return nil, fmt.Errorf("queue render: %w", err)
	}

	if s.renderTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.renderTimeout)
		defer cancel()
	}

	select {
	case res := <-result:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Data, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("waiting for render: %w", ctx.Err())
	}
}
