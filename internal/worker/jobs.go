package worker

import (
	"bytes"
	"context"

	"github.com/sparkskytech/ieltsplan/internal/export"
	"github.com/sparkskytech/ieltsplan/internal/logger"
	"github.com/sparkskytech/ieltsplan/internal/models"
)

// RenderResult is what a render job hands back to whoever queued it.
type RenderResult struct {
	Data []byte
	Err  error
}

// RenderPDFJob renders a plan to PDF and delivers the bytes on Result.
// Result must have room for one value so an abandoned request never blocks a worker.
type RenderPDFJob struct {
	Plan   *models.StudyPlan
	Result chan<- RenderResult
}

func (j *RenderPDFJob) Name() string { return "render_pdf" }

func (j *RenderPDFJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("weeks", j.Plan.TotalWeeks)

	if err := ctx.Err(); err != nil {
		j.Result <- RenderResult{Err: err}
		return err
	}

	var buf bytes.Buffer
	if err := export.WritePDF(&buf, j.Plan); err != nil {
		log.Error("pdf render failed: %v", err)
		j.Result <- RenderResult{Err: err}
		return err
	}

	log.Debug("rendered pdf (%d bytes)", buf.Len())
	j.Result <- RenderResult{Data: buf.Bytes()}
	return nil
}
