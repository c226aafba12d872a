package algorithms

import (
	"encoding/json"
	"testing"

	"tutorrec_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeTutor(t *testing.T, raw string) models.TutorProfile {
	t.Helper()
	var tutor models.TutorProfile
	require.NoError(t, json.Unmarshal([]byte(raw), &tutor))
	return tutor
}

func TestNormalizeTutorSubjectShapes(t *testing.T) {
	t.Parallel()

	t.Run("list stays a list", func(t *testing.T) {
		tutor := decodeTutor(t, `{"id":"t1","subjects":["Math","Physics"]}`)
		normalized := NormalizeTutor(tutor)
		assert.Equal(t, []string{"Math", "Physics"}, normalized.Subjects)
		assert.Equal(t, "Math, Physics", normalized.SubjectsText)
	})

	t.Run("single string becomes singleton list", func(t *testing.T) {
		tutor := decodeTutor(t, `{"id":"t1","subjects":"Math"}`)
		normalized := NormalizeTutor(tutor)
		assert.Equal(t, []string{"Math"}, normalized.Subjects)
		assert.Equal(t, "Math", normalized.SubjectsText)
	})

	t.Run("other shapes become empty", func(t *testing.T) {
		tutor := decodeTutor(t, `{"id":"t1","subjects":42}`)
		normalized := NormalizeTutor(tutor)
		assert.Empty(t, normalized.Subjects)
		assert.Equal(t, "", normalized.SubjectsText)
	})

	t.Run("missing field becomes empty", func(t *testing.T) {
		tutor := decodeTutor(t, `{"id":"t1"}`)
		normalized := NormalizeTutor(tutor)
		assert.NotNil(t, normalized.Subjects)
		assert.Empty(t, normalized.Subjects)
		assert.Empty(t, normalized.GradeLevels)
	})
}

func TestNormalizeTutorGradeLevels(t *testing.T) {
	t.Parallel()

	tutor := decodeTutor(t, `{"id":"t1","gradeLevels":"Grade 10"}`)
	normalized := NormalizeTutor(tutor)
	assert.Equal(t, []string{"Grade 10"}, normalized.GradeLevels)
	assert.Equal(t, "Grade 10", normalized.GradeLevelsText)
}

func TestNormalizeTutorNumericFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		raw         string
		rating      float64
		ratingValid bool
		bookings    float64
	}{
		{"numbers", `{"rating":4.7,"bookingsCount":35}`, 4.7, true, 35},
		{"numeric strings", `{"rating":"4.7","bookingsCount":"35"}`, 4.7, true, 35},
		{"garbage rating", `{"rating":"n/a","bookingsCount":"x"}`, 0, false, 0},
		{"missing", `{}`, 0, false, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			normalized := NormalizeTutor(decodeTutor(t, tc.raw))
			assert.Equal(t, tc.rating, normalized.Rating)
			assert.Equal(t, tc.ratingValid, normalized.RatingValid)
			assert.Equal(t, tc.bookings, normalized.BookingsCount)
		})
	}
}

func TestNormalizeTutorNonStringExperience(t *testing.T) {
	t.Parallel()

	normalized := NormalizeTutor(decodeTutor(t, `{"id":"t1","experience":5}`))
	assert.Zero(t, normalized.ExperienceYears)
}

func TestExtractExperienceYears(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"years suffix", "6 years of tutoring", 6},
		{"yr suffix", "3yr experience", 3},
		{"case insensitive", "Over 10 Years teaching", 10},
		{"first number fallback", "taught 4 semesters", 4},
		{"number before unrelated word", "worked with 12 students over 2 years", 2},
		{"no number", "extensive background", 0},
		{"empty", "", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExtractExperienceYears(tc.input))
		})
	}
}
