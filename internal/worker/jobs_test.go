package worker_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkskytech/ieltsplan/internal/models"
	"github.com/sparkskytech/ieltsplan/internal/planner"
	"github.com/sparkskytech/ieltsplan/internal/worker"
)

func testPlan(t *testing.T) *models.StudyPlan {
	t.Helper()
	plan, err := planner.NewGenerator(planner.WithClock(func() time.Time {
		return time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	})).Generate(models.PlanRequest{
		CurrentScore: 6,
		TargetScore:  7,
		DailyHours:   2,
		TestType:     models.TestGeneral,
		TotalWeeks:   1,
	})
	require.NoError(t, err)
	return plan
}

func TestRenderPDFJob_Run(t *testing.T) {
	result := make(chan worker.RenderResult, 1)
	job := &worker.RenderPDFJob{Plan: testPlan(t), Result: result}

	require.NoError(t, job.Run(context.Background()))
	res := <-result
	require.NoError(t, res.Err)
	assert.True(t, bytes.HasPrefix(res.Data, []byte("%PDF-")))
	assert.Equal(t, "render_pdf", job.Name())
}

func TestRenderPDFJob_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := make(chan worker.RenderResult, 1)
	job := &worker.RenderPDFJob{Plan: testPlan(t), Result: result}

	assert.ErrorIs(t, job.Run(ctx), context.Canceled)
	res := <-result
	assert.ErrorIs(t, res.Err, context.Canceled)
	assert.Nil(t, res.Data)
}
