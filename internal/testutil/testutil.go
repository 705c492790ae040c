package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sparkskytech/ieltsplan/internal/models"
	"github.com/sparkskytech/ieltsplan/internal/planner"
)

// FixedTime is the clock reading used by NewTestGenerator.
var FixedTime = time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC)

// NewTestGenerator returns a generator whose clock always reads FixedTime.
func NewTestGenerator() *planner.Generator {
	return planner.NewGenerator(planner.WithClock(func() time.Time { return FixedTime }))
}

// SampleRequest is a valid academic request: 5.5 to 7.0, 4 hours a day, 2 weeks.
func SampleRequest() models.PlanRequest {
	return models.PlanRequest{
		CurrentScore: 5.5,
		TargetScore:  7,
		DailyHours:   4,
		TestType:     models.TestAcademic,
		TotalWeeks:   2,
	}
}

// SamplePlan generates the plan for SampleRequest and fails the test on error.
func SamplePlan(t *testing.T) *models.StudyPlan {
	t.Helper()
	plan, err := NewTestGenerator().Generate(SampleRequest())
	require.NoError(t, err)
	return plan
}
