package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sparkskytech/ieltsplan/internal/models"
	"github.com/sparkskytech/ieltsplan/internal/planner"
)

// MockPlanService is a mock implementation of services.PlanService
type MockPlanService struct {
	mock.Mock
}

func (m *MockPlanService) GeneratePlan(ctx context.Context, raw planner.RawRequest) (*models.StudyPlan, error) {
	args := m.Called(ctx, raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StudyPlan), args.Error(1)
}

func (m *MockPlanService) ExportText(ctx context.Context, plan *models.StudyPlan) (string, error) {
	args := m.Called(ctx, plan)
	return args.String(0), args.Error(1)
}

func (m *MockPlanService) ExportPDF(ctx context.Context, plan *models.StudyPlan) ([]byte, error) {
	args := m.Called(ctx, plan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
