package planner

import "github.com/sparkskytech/ieltsplan/internal/models"

// ClassifyIntensity labels how far the target is from the current band.
// The label is informational; it does not change which tasks are scheduled.
func ClassifyIntensity(current, target float64) models.Intensity {
	gap := target - current

	switch {
	case gap > 1.5:
		return models.IntensityHigh
	case gap > 0.5:
		return models.IntensityMedium
	default:
		return models.IntensityLow
	}
}
