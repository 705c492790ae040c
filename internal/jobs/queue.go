package jobs

import (
	"github.com/sparkskytech/ieltsplan/internal/models"
	"github.com/sparkskytech/ieltsplan/internal/worker"
)

// RenderQueue provides an abstraction for handing document renders to background workers
type RenderQueue interface {
	// EnqueuePDF queues plan for rendering. The returned channel receives exactly one result.
	EnqueuePDF(plan *models.StudyPlan) (<-chan worker.RenderResult, error)
}
