package algorithms

import (
	"regexp"
	"strconv"
	"strings"

	"tutorrec_backend/internal/models"
)

var (
	yearsPattern  = regexp.MustCompile(`(?i)(\d+)\s*(?:year|yr)`)
	numberPattern = regexp.MustCompile(`\d+`)
)

// NormalizeTutors coerces every raw tutor into canonical shape. No input,
// however malformed, produces an error here; every field has a default.
func NormalizeTutors(tutors []models.TutorProfile) []models.NormalizedTutor {
	normalized := make([]models.NormalizedTutor, 0, len(tutors))
	for _, tutor := range tutors {
		normalized = append(normalized, NormalizeTutor(tutor))
	}
	return normalized
}

// NormalizeTutor derives the list/text forms of subjects and grade levels,
// parses the numeric fields and extracts experience years from free text.
func NormalizeTutor(tutor models.TutorProfile) models.NormalizedTutor {
	subjects := []string(tutor.Subjects)
	if subjects == nil {
		subjects = []string{}
	}
	gradeLevels := []string(tutor.GradeLevels)
	if gradeLevels == nil {
		gradeLevels = []string{}
	}

	bookings := 0.0
	if tutor.BookingsCount.Valid {
		bookings = tutor.BookingsCount.Value
	}

	return models.NormalizedTutor{
		Profile:         tutor,
		Subjects:        subjects,
		SubjectsText:    strings.Join(subjects, ", "),
		GradeLevels:     gradeLevels,
		GradeLevelsText: strings.Join(gradeLevels, ", "),
		Rating:          tutor.Rating.Value,
		RatingValid:     tutor.Rating.Valid,
		BookingsCount:   bookings,
		ExperienceYears: ExtractExperienceYears(string(tutor.Experience)),
	}
}

// ExtractExperienceYears pulls a year count out of a free-text experience
// description. A number immediately followed by "year"/"yr" wins; otherwise
// the first number anywhere in the text; otherwise 0.
func ExtractExperienceYears(experience string) float64 {
	if experience == "" {
		return 0
	}

	if match := yearsPattern.FindStringSubmatch(experience); match != nil {
		if years, err := strconv.Atoi(match[1]); err == nil {
			return float64(years)
		}
	}

	if match := numberPattern.FindString(experience); match != "" {
		if years, err := strconv.Atoi(match); err == nil {
			return float64(years)
		}
	}

	return 0
}
