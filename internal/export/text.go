package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/sparkskytech/ieltsplan/internal/models"
)

// WriteText writes plan as an indented plain-text outline, weeks then days then
// sessions, in the order they appear in the plan.
func WriteText(w io.Writer, plan *models.StudyPlan) error {
	var b strings.Builder

	b.WriteString("IELTS STUDY PLAN\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	fmt.Fprintf(&b, "Current Score: %s\n", plan.CurrentScore)
	fmt.Fprintf(&b, "Target Score: %s\n", plan.TargetScore)
	fmt.Fprintf(&b, "Test Type: %s\n", plan.TestType.Title())
	fmt.Fprintf(&b, "Duration: %s\n", plan.Duration)
	fmt.Fprintf(&b, "Daily Hours: %d hours\n", plan.HoursDaily)
	fmt.Fprintf(&b, "Generated: %s\n\n", plan.GeneratedDate)

	for _, week := range plan.Weeks {
		b.WriteString(strings.ToUpper(week.Name) + "\n")
		fmt.Fprintf(&b, "Focus: %s\n\n", week.Focus)
		for _, day := range week.Days {
			fmt.Fprintf(&b, "  %s:\n", day.Day)
			for _, s := range day.Sessions {
				fmt.Fprintf(&b, "    • %s: %s\n", s.Skill, s.Duration)
				for _, a := range s.Activities {
					fmt.Fprintf(&b, "      - %s\n", a)
				}
			}
			b.WriteString("\n")
		}
		b.WriteString(strings.Repeat("-", 30) + "\n\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Text returns the plain-text outline as a string.
func Text(plan *models.StudyPlan) string {
	var b strings.Builder
	_ = WriteText(&b, plan)
	return b.String()
}
