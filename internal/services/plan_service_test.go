package services_test

import (
	"bytes"
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkskytech/ieltsplan/internal/errors"
	"github.com/sparkskytech/ieltsplan/internal/metrics"
	"github.com/sparkskytech/ieltsplan/internal/planner"
	"github.com/sparkskytech/ieltsplan/internal/services"
	helpers "github.com/sparkskytech/ieltsplan/internal/testutil"
	"github.com/sparkskytech/ieltsplan/internal/testutil/mocks"
	"github.com/sparkskytech/ieltsplan/internal/worker"
)

func validRaw() planner.RawRequest {
	return planner.RawRequest{
		CurrentScore: "5.5",
		TargetScore:  "7",
		DailyHours:   "4",
		TestType:     "academic",
		TotalWeeks:   "2",
	}
}

func TestGeneratePlan(t *testing.T) {
	svc := services.NewPlanService(helpers.NewTestGenerator(), nil, time.Second)
	before := testutil.ToFloat64(metrics.PlansGenerated.WithLabelValues("Medium"))

	plan, err := svc.GeneratePlan(context.Background(), validRaw())
	require.NoError(t, err)

	assert.Equal(t, helpers.SamplePlan(t), plan)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.PlansGenerated.WithLabelValues("Medium")))
}

func TestGeneratePlan_ValidationError(t *testing.T) {
	svc := services.NewPlanService(helpers.NewTestGenerator(), nil, time.Second)
	before := testutil.ToFloat64(metrics.ValidationFailures.WithLabelValues("num_weeks"))

	raw := validRaw()
	raw.TotalWeeks = "abc"
	plan, err := svc.GeneratePlan(context.Background(), raw)

	assert.Nil(t, plan)
	require.True(t, errors.IsValidation(err))
	appErr, _ := errors.As(err)
	assert.Equal(t, "num_weeks", appErr.Field)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.ValidationFailures.WithLabelValues("num_weeks")))
}

func TestExportText(t *testing.T) {
	svc := services.NewPlanService(nil, nil, 0)

	text, err := svc.ExportText(context.Background(), helpers.SamplePlan(t))
	require.NoError(t, err)
	assert.Contains(t, text, "IELTS STUDY PLAN\n")
	assert.Contains(t, text, "WEEK 2\n")

	_, err = svc.ExportText(context.Background(), nil)
	appErr, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeBadRequest, appErr.Code)
}

func TestExportPDF_Inline(t *testing.T) {
	svc := services.NewPlanService(nil, nil, 0)

	data, err := svc.ExportPDF(context.Background(), helpers.SamplePlan(t))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestExportPDF_ThroughQueue(t *testing.T) {
	plan := helpers.SamplePlan(t)
	result := make(chan worker.RenderResult, 1)
	result <- worker.RenderResult{Data: []byte("%PDF-1.3 stub")}

	queue := new(mocks.MockRenderQueue)
	queue.On("EnqueuePDF", plan).Return((<-chan worker.RenderResult)(result), nil)

	svc := services.NewPlanService(nil, queue, time.Second)
	data, err := svc.ExportPDF(context.Background(), plan)

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.3 stub"), data)
	queue.AssertExpectations(t)
}

func TestExportPDF_Failures(t *testing.T) {
	plan := helpers.SamplePlan(t)

	tests := []struct {
		name  string
		setup func(q *mocks.MockRenderQueue)
	}{
		{
			name: "queue full",
			setup: func(q *mocks.MockRenderQueue) {
				q.On("EnqueuePDF", plan).Return(nil, worker.ErrQueueFull)
			},
		},
		{
			name: "render error",
			setup: func(q *mocks.MockRenderQueue) {
				ch := make(chan worker.RenderResult, 1)
				ch <- worker.RenderResult{Err: stderrors.New("font missing")}
				q.On("EnqueuePDF", plan).Return((<-chan worker.RenderResult)(ch), nil)
			},
		},
		{
			name: "timeout",
			setup: func(q *mocks.MockRenderQueue) {
				q.On("EnqueuePDF", plan).Return((<-chan worker.RenderResult)(make(chan worker.RenderResult)), nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			queue := new(mocks.MockRenderQueue)
			tt.setup(queue)
			before := testutil.ToFloat64(metrics.Exports.WithLabelValues("pdf", "error"))

			svc := services.NewPlanService(nil, queue, 20*time.Millisecond)
			data, err := svc.ExportPDF(context.Background(), plan)

			assert.Nil(t, data)
			require.True(t, errors.IsRender(err))
			appErr, _ := errors.As(err)
			assert.Equal(t, errors.RenderApology, appErr.Message)
			assert.Equal(t, before+1, testutil.ToFloat64(metrics.Exports.WithLabelValues("pdf", "error")))
			queue.AssertExpectations(t)
		})
	}
}

func TestExportPDF_CancelledRequest(t *testing.T) {
	plan := helpers.SamplePlan(t)
	queue := new(mocks.MockRenderQueue)
	queue.On("EnqueuePDF", plan).Return((<-chan worker.RenderResult)(make(chan worker.RenderResult)), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := services.NewPlanService(nil, queue, time.Minute)
	_, err := svc.ExportPDF(ctx, plan)

	require.True(t, errors.IsRender(err))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExportPDF_NilPlan(t *testing.T) {
	svc := services.NewPlanService(nil, nil, 0)
	_, err := svc.ExportPDF(context.Background(), nil)

	appErr, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeBadRequest, appErr.Code)
}
