package planner

import (
	"strconv"

	"github.com/sparkskytech/ieltsplan/internal/models"
)

// WeekFocus places week (1-based) into the first, middle or last third of the
// timeline. Thirds use integer division, so a one-week plan is all test prep.
func WeekFocus(week, totalWeeks int) models.Focus {
	switch {
	case week <= totalWeeks/3:
		return models.FocusFoundation
	case week <= 2*totalWeeks/3:
		return models.FocusDevelopment
	default:
		return models.FocusTestPrep
	}
}

// WeeklyGoals returns the four goals set for every week.
func WeeklyGoals(week int, target float64) []string {
	return []string{
		"Maintain consistent daily study routine",
		"Complete all scheduled practice activities",
		"Track progress towards " + models.Score(target).String() + " target",
		"Review and identify areas for improvement",
	}
}

// SkillMinutes returns the minutes given to a skill for a day of dailyHours.
// The product is truncated, not rounded.
func SkillMinutes(dailyHours int, ratio float64) int {
	return int(float64(dailyHours) * ratio * 60)
}

// DailySessions builds one day's sessions. Skills that get no time are skipped,
// which only happens when dailyHours is zero or negative.
func DailySessions(dailyHours int, testType models.TestType) []models.Session {
	sessions := make([]models.Session, 0, len(skillShares))
	for _, share := range skillShares {
		minutes := SkillMinutes(dailyHours, share.ratio)
		if minutes <= 0 {
			continue
		}
		sessions = append(sessions, models.Session{
			Skill:      share.skill,
			Minutes:    minutes,
			Duration:   strconv.Itoa(minutes) + " minutes",
			Activities: activitiesFor(share.skill, testType),
		})
	}
	return sessions
}

// WeekSchedule lays out the same daily sessions for every weekday.
func WeekSchedule(dailyHours int, testType models.TestType) []models.DaySchedule {
	days := make([]models.DaySchedule, 0, len(Weekdays))
	for _, day := range Weekdays {
		days = append(days, models.DaySchedule{
			Day:      day,
			Sessions: DailySessions(dailyHours, testType),
		})
	}
	return days
}
