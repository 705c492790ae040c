package jobs

import (
	"github.com/sparkskytech/ieltsplan/internal/models"
	"github.com/sparkskytech/ieltsplan/internal/worker"
)

// WorkerQueue implements RenderQueue using a worker pool
type WorkerQueue struct {
	renderPool *worker.Pool
}

// NewWorkerQueue creates a new WorkerQueue implementation
func NewWorkerQueue(renderPool *worker.Pool) RenderQueue {
	return &WorkerQueue{renderPool: renderPool}
}

func (q *WorkerQueue) EnqueuePDF(plan *models.StudyPlan) (<-chan worker.RenderResult, error) {
	result := make(chan worker.RenderResult, 1)
	if err := q.renderPool.Submit(&worker.RenderPDFJob{Plan: plan, Result: result}); err != nil {
		return nil, err
	}
	return result, nil
}
