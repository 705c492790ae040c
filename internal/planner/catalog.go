package planner

import "github.com/sparkskytech/ieltsplan/internal/models"

// Weekdays is the fixed order every week is laid out in.
var Weekdays = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

type skillShare struct {
	skill string
	ratio float64
}

// skillShares splits a study day across the four IELTS skills. Order is the order
// sessions appear in a day.
var skillShares = []skillShare{
	{skill: "Listening", ratio: 0.25},
	{skill: "Reading", ratio: 0.25},
	{skill: "Writing", ratio: 0.30},
	{skill: "Speaking", ratio: 0.20},
}

// activitySet holds the three micro-activities for a skill. Exactly one of them is
// worded per test type; it is inserted at variantAt.
type activitySet struct {
	fixed     [2]string
	variantAt int
	academic  string
	general   string
}

var skillActivities = map[string]activitySet{
	"Listening": {
		fixed:     [2]string{"Listen to IELTS practice tests", "Focus on identifying main ideas and details"},
		variantAt: 1,
		academic:  "Practice with academic lectures",
		general:   "Practice with everyday conversations",
	},
	"Reading": {
		fixed:     [2]string{"Complete IELTS reading passages", "Work on time management"},
		variantAt: 1,
		academic:  "Practice academic texts",
		general:   "Practice general interest articles",
	},
	"Writing": {
		fixed:     [2]string{"Practice Task 2 essay writing", "Focus on structure and linking words"},
		variantAt: 0,
		academic:  "Practice Task 1 (graphs/charts)",
		general:   "Practice Task 1 (letters)",
	},
	"Speaking": {
		fixed:     [2]string{"Practice Part 1 personal questions", "Practice Part 3 discussion questions"},
		variantAt: 1,
		academic:  "Work on Part 2 cue card topics",
		general:   "Work on Part 2 cue card topics about daily life",
	},
}

// activitiesFor returns a fresh slice so callers can never alter the table.
func activitiesFor(skill string, testType models.TestType) []string {
	set, ok := skillActivities[skill]
	if !ok {
		return []string{}
	}
	variant := set.general
	if testType == models.TestAcademic {
		variant = set.academic
	}
	out := make([]string, 0, 3)
	out = append(out, set.fixed[:set.variantAt]...)
	out = append(out, variant)
	out = append(out, set.fixed[set.variantAt:]...)
	return out
}

// studyResources is attached verbatim to every week.
var studyResources = []models.ResourceGroup{
	{
		Name: "sparkskytech",
		Links: []string{
			"https://www.sparkskytech.com/ielts",
			"https://www.sparkskytech.com/ielts/ielts_free_resources",
		},
	},
	{
		Name: "official",
		Links: []string{
			"https://www.ielts.org/",
			"https://takeielts.britishcouncil.org/",
		},
	},
	{
		Name: "practice",
		Links: []string{
			"https://www.ieltsonlinetests.com/",
			"https://ieltsliz.com/",
		},
	},
}

// Resources returns a deep copy of the curated link block.
func Resources() []models.ResourceGroup {
	out := make([]models.ResourceGroup, len(studyResources))
	for i, g := range studyResources {
		out[i] = models.ResourceGroup{Name: g.Name, Links: append([]string(nil), g.Links...)}
	}
	return out
}
