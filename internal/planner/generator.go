package planner

import (
	"strconv"
	"time"

	"github.com/sparkskytech/ieltsplan/internal/errors"
	"github.com/sparkskytech/ieltsplan/internal/models"
)

// TimestampLayout is the format of StudyPlan.GeneratedDate.
const TimestampLayout = "2006-01-02 15:04:05"

// Generator builds study plans. It holds no state besides its clock and is safe
// for concurrent use.
type Generator struct {
	now func() time.Time
}

type GeneratorOption func(*Generator)

// WithClock replaces the wall clock used to stamp plans.
func WithClock(now func() time.Time) GeneratorOption {
	return func(g *Generator) {
		g.now = now
	}
}

func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate assembles a full plan for req. Scores are not range-checked and
// non-finite values are carried into the plan untouched.
func (g *Generator) Generate(req models.PlanRequest) (*models.StudyPlan, error) {
	testType, ok := models.ParseTestType(string(req.TestType))
	if !ok {
		return nil, errors.NewValidationError("test_type", "must be academic or general")
	}
	if req.TotalWeeks < 1 {
		return nil, errors.NewValidationError("num_weeks", "must be at least 1")
	}

	weeks := make([]models.WeekPlan, 0, req.TotalWeeks)
	for week := 1; week <= req.TotalWeeks; week++ {
		weeks = append(weeks, models.WeekPlan{
			Number:    week,
			Name:      "Week " + strconv.Itoa(week),
			Focus:     WeekFocus(week, req.TotalWeeks),
			Days:      WeekSchedule(req.DailyHours, testType),
			Goals:     WeeklyGoals(week, req.TargetScore),
			Resources: Resources(),
		})
	}

	return &models.StudyPlan{
		CurrentScore:  models.Score(req.CurrentScore),
		TargetScore:   models.Score(req.TargetScore),
		TestType:      testType,
		Duration:      strconv.Itoa(req.TotalWeeks) + " weeks",
		TotalWeeks:    req.TotalWeeks,
		HoursDaily:    req.DailyHours,
		Intensity:     ClassifyIntensity(req.CurrentScore, req.TargetScore),
		Weeks:         weeks,
		GeneratedDate: g.now().Format(TimestampLayout),
	}, nil
}
