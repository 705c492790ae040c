package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/sparkskytech/ieltsplan/internal/models"
	"github.com/sparkskytech/ieltsplan/internal/worker"
)

// MockRenderQueue is a mock implementation of jobs.RenderQueue
type MockRenderQueue struct {
	mock.Mock
}

func (m *MockRenderQueue) EnqueuePDF(plan *models.StudyPlan) (<-chan worker.RenderResult, error) {
	args := m.Called(plan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan worker.RenderResult), args.Error(1)
}
