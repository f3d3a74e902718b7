package dtos

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerport/job-service/internal/models"
)

func TestParseListField(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{"json array", `["Build things", "Ship often"]`, []string{"Build things", "Ship often"}},
		{"json string", `"Build things"`, []string{"Build things"}},
		{"plain text", "Build things", []string{"Build things"}},
		{"plain text trimmed", "  Build things \n", []string{"Build things"}},
		{"empty json array", `[]`, []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseListField("description", tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseListFieldErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty after trim", "   "},
		{"json number", "42"},
		{"json object", `{"a": 1}`},
		{"array of numbers", `[1, 2]`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseListField("description", tc.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "description")
		})
	}
}

func TestNewJobDetail(t *testing.T) {
	updated := time.Date(2026, 2, 3, 10, 30, 0, 0, time.UTC)
	job := &models.Job{
		ID:               7,
		Title:            "Backend Engineer",
		Company:          "Acme",
		Location:         "Cairo, Egypt",
		Experience:       "3-5 years",
		Salary:           "30000 EGP",
		Type:             "Remote",
		Category:         "Software",
		Description:      models.StringList{"Build things"},
		Responsibilities: models.StringList{"Own services"},
		SoftSkills:       models.StringList{"Communication"},
		Qualifications:   models.StringList{"BSc"},
		CreatedAt:        time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC),
		UpdatedAt:        &updated,
	}

	detail := NewJobDetail(job)
	assert.Equal(t, uint(7), detail.ID)
	require.NotNil(t, detail.CreatedAt)
	assert.Equal(t, "2026-01-02T09:00:00Z", *detail.CreatedAt)
	require.NotNil(t, detail.UpdatedAt)
	assert.Equal(t, "2026-02-03T10:30:00Z", *detail.UpdatedAt)
	assert.Equal(t, []string{"Communication"}, detail.SoftSkills)
}

func TestNewJobDetailZeroTimestamps(t *testing.T) {
	detail := NewJobDetail(&models.Job{ID: 1})
	assert.Nil(t, detail.CreatedAt)
	assert.Nil(t, detail.UpdatedAt)
	assert.Equal(t, []string{}, detail.Description)
}
