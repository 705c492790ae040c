package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type TestType string

const (
	TestAcademic TestType = "academic"
	TestGeneral  TestType = "general"
)

// ParseTestType accepts the form values used by the web UI and the CLI.
func ParseTestType(s string) (TestType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "academic":
		return TestAcademic, true
	case "general", "general training", "general_training":
		return TestGeneral, true
	}
	return "", false
}

// Title returns the display form, e.g. "Academic".
func (t TestType) Title() string {
	s := string(t)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

type Intensity string

const (
	IntensityLow    Intensity = "Low"
	IntensityMedium Intensity = "Medium"
	IntensityHigh   Intensity = "High"
)

type Focus string

const (
	FocusFoundation  Focus = "Foundation Building"
	FocusDevelopment Focus = "Skill Development"
	FocusTestPrep    Focus = "Test Preparation & Practice"
)

// Score is a band score echoed back to the caller. Values that are not finite are
// kept as-is; JSON has no literal for them so they travel as strings.
type Score float64

func (s Score) String() string {
	f := float64(s)
	out := strconv.FormatFloat(f, 'f', -1, 64)
	if math.IsNaN(f) || math.IsInf(f, 0) || strings.Contains(out, ".") {
		return out
	}
	return out + ".0"
}

func (s Score) MarshalJSON() ([]byte, error) {
	f := float64(s)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return json.Marshal(s.String())
	}
	return []byte(strconv.FormatFloat(f, 'f', -1, 64)), nil
}

func (s *Score) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if strings.HasPrefix(raw, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		raw = strings.TrimSpace(str)
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("score %s: %w", raw, err)
	}
	*s = Score(f)
	return nil
}

type PlanRequest struct {
	CurrentScore float64
	TargetScore  float64
	DailyHours   int
	TestType     TestType
	TotalWeeks   int
}

type StudyPlan struct {
	CurrentScore  Score      `json:"current_score" yaml:"current_score"`
	TargetScore   Score      `json:"target_score" yaml:"target_score"`
	TestType      TestType   `json:"test_type" yaml:"test_type"`
	Duration      string     `json:"duration" yaml:"duration"`
	TotalWeeks    int        `json:"total_weeks" yaml:"total_weeks"`
	HoursDaily    int        `json:"hours_daily" yaml:"hours_daily"`
	Intensity     Intensity  `json:"intensity" yaml:"intensity"`
	Weeks         []WeekPlan `json:"weekly_plan" yaml:"weekly_plan"`
	GeneratedDate string     `json:"generated_date" yaml:"generated_date"`
}

type WeekPlan struct {
	Number    int             `json:"week" yaml:"week"`
	Name      string          `json:"name" yaml:"name"`
	Focus     Focus           `json:"focus" yaml:"focus"`
	Days      []DaySchedule   `json:"daily_schedule" yaml:"daily_schedule"`
	Goals     []string        `json:"goals" yaml:"goals"`
	Resources []ResourceGroup `json:"resources" yaml:"resources"`
}

type DaySchedule struct {
	Day      string    `json:"day" yaml:"day"`
	Sessions []Session `json:"sessions" yaml:"sessions"`
}

// Session is one skill block within a day.
type Session struct {
	Skill      string   `json:"skill" yaml:"skill"`
	Minutes    int      `json:"minutes" yaml:"minutes"`
	Duration   string   `json:"duration" yaml:"duration"`
	Activities []string `json:"activities" yaml:"activities"`
}

type ResourceGroup struct {
	Name  string   `json:"name" yaml:"name"`
	Links []string `json:"links" yaml:"links"`
}

// SessionCount returns the number of sessions across all weeks and days.
func (p *StudyPlan) SessionCount() int {
	n := 0
	for _, w := range p.Weeks {
		for _, d := range w.Days {
			n += len(d.Sessions)
		}
	}
	return n
}
