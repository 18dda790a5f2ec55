package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResumeRecord_AllListsPresent(t *testing.T) {
	record := NewResumeRecord()

	jsonBytes, err := json.Marshal(record)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(jsonBytes, &raw))

	for _, field := range []string{
		"experience", "education", "skills", "projects", "certifications",
		"languages", "publications", "awards", "volunteer",
	} {
		value, ok := raw[field]
		require.True(t, ok, "field %s should be present", field)
		assert.Equal(t, []any{}, value, "field %s should be an empty array", field)
	}
	assert.True(t, record.IsEmpty())
}

func TestFillDefaults_NestedSlices(t *testing.T) {
	record := &ResumeRecord{
		Experience:   []Experience{{Title: "Engineer", Company: "Acme"}},
		Education:    []Education{{Institution: "State University"}},
		Skills:       []SkillGroup{{Category: "Technical Skills"}},
		Projects:     []Project{{Name: "Compiler"}},
		Publications: []Publication{{Title: "On Parsing"}},
		Volunteer:    []VolunteerEntry{{Organization: "Food Bank"}},
	}

	record.FillDefaults()

	assert.NotNil(t, record.Experience[0].Description)
	assert.NotNil(t, record.Experience[0].Achievements)
	assert.NotNil(t, record.Experience[0].Technologies)
	assert.NotNil(t, record.Education[0].Honors)
	assert.NotNil(t, record.Education[0].Courses)
	assert.NotNil(t, record.Skills[0].Items)
	assert.NotNil(t, record.Projects[0].Technologies)
	assert.NotNil(t, record.Projects[0].Achievements)
	assert.NotNil(t, record.Publications[0].Authors)
	assert.NotNil(t, record.Volunteer[0].Description)
	assert.NotNil(t, record.Certifications)
	assert.NotNil(t, record.Languages)
	assert.NotNil(t, record.Awards)
	assert.False(t, record.IsEmpty())
}

func TestFillDefaults_KeepsExistingValues(t *testing.T) {
	record := &ResumeRecord{
		Skills: []SkillGroup{{Category: "Technical Skills", Items: []string{"Go", "SQL"}}},
	}

	record.FillDefaults()

	assert.Equal(t, []string{"Go", "SQL"}, record.Skills[0].Items)
}

func TestIsEmpty_PersonalOnly(t *testing.T) {
	record := NewResumeRecord()
	record.Personal.Email = "jane.doe@example.com"

	assert.False(t, record.IsEmpty())
}
