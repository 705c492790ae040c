package planner

import (
	"strconv"
	"strings"

	"github.com/sparkskytech/ieltsplan/internal/errors"
	"github.com/sparkskytech/ieltsplan/internal/models"
)

// RawRequest carries the five inputs as submitted, before any conversion.
type RawRequest struct {
	CurrentScore string
	TargetScore  string
	DailyHours   string
	TestType     string
	TotalWeeks   string
}

// ParseRequest converts raw inputs into a PlanRequest. The first missing or
// malformed field is reported as a validation error; nothing is defaulted.
func ParseRequest(raw RawRequest) (models.PlanRequest, error) {
	var req models.PlanRequest

	fields := []struct {
		name  string
		value string
	}{
		{"current_score", raw.CurrentScore},
		{"target_score", raw.TargetScore},
		{"hours_daily", raw.DailyHours},
		{"test_type", raw.TestType},
		{"num_weeks", raw.TotalWeeks},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return req, errors.NewValidationError(f.name, "is required")
		}
	}

	current, err := strconv.ParseFloat(strings.TrimSpace(raw.CurrentScore), 64)
	if err != nil {
		return req, errors.NewValidationError("current_score", "must be a number")
	}
	target, err := strconv.ParseFloat(strings.TrimSpace(raw.TargetScore), 64)
	if err != nil {
		return req, errors.NewValidationError("target_score", "must be a number")
	}
	hours, err := strconv.Atoi(strings.TrimSpace(raw.DailyHours))
	if err != nil {
		return req, errors.NewValidationError("hours_daily", "must be a whole number of hours")
	}
	testType, ok := models.ParseTestType(raw.TestType)
	if !ok {
		return req, errors.NewValidationError("test_type", "must be academic or general")
	}
	weeks, err := strconv.Atoi(strings.TrimSpace(raw.TotalWeeks))
	if err != nil {
		return req, errors.NewValidationError("num_weeks", "must be a whole number of weeks")
	}
	if weeks < 1 {
		return req, errors.NewValidationError("num_weeks", "must be at least 1")
	}

	return models.PlanRequest{
		CurrentScore: current,
		TargetScore:  target,
		DailyHours:   hours,
		TestType:     testType,
		TotalWeeks:   weeks,
	}, nil
}
