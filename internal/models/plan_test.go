package models_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkskytech/ieltsplan/internal/models"
)

func TestParseTestType(t *testing.T) {
	tests := []struct {
		in   string
		want models.TestType
		ok   bool
	}{
		{"academic", models.TestAcademic, true},
		{" Academic ", models.TestAcademic, true},
		{"general", models.TestGeneral, true},
		{"General Training", models.TestGeneral, true},
		{"toefl", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := models.ParseTestType(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTestType_Title(t *testing.T) {
	assert.Equal(t, "Academic", models.TestAcademic.Title())
	assert.Equal(t, "General", models.TestGeneral.Title())
	assert.Equal(t, "", models.TestType("").Title())
}

func TestScore_String(t *testing.T) {
	assert.Equal(t, "7.0", models.Score(7).String())
	assert.Equal(t, "6.5", models.Score(6.5).String())
	assert.Equal(t, "6.25", models.Score(6.25).String())
	assert.Equal(t, "NaN", models.Score(math.NaN()).String())
}

func TestScore_JSON(t *testing.T) {
	b, err := json.Marshal(models.Score(5.5))
	require.NoError(t, err)
	assert.Equal(t, "5.5", string(b))

	b, err = json.Marshal(models.Score(math.NaN()))
	require.NoError(t, err)
	assert.Equal(t, `"NaN"`, string(b))

	var s models.Score
	require.NoError(t, json.Unmarshal([]byte(`"6.5"`), &s))
	assert.Equal(t, models.Score(6.5), s)

	require.NoError(t, json.Unmarshal([]byte(`7`), &s))
	assert.Equal(t, models.Score(7), s)

	assert.Error(t, json.Unmarshal([]byte(`"high"`), &s))
}

func TestStudyPlan_SessionCount(t *testing.T) {
	plan := models.StudyPlan{
		Weeks: []models.WeekPlan{
			{Days: []models.DaySchedule{{Sessions: make([]models.Session, 4)}, {Sessions: make([]models.Session, 3)}}},
			{Days: []models.DaySchedule{{Sessions: make([]models.Session, 4)}}},
		},
	}
	assert.Equal(t, 11, plan.SessionCount())
}
