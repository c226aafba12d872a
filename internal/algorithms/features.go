package algorithms

import (
	"strings"

	"tutorrec_backend/internal/models"
)

// Tier tokens bucket continuous values into discrete labels for the
// text-similarity path. Repetition count encodes emphasis.
const (
	tokenHighRating         = "high_rating"
	tokenGoodRating         = "good_rating"
	tokenAverageRating      = "average_rating"
	tokenPopularTutor       = "popular_tutor"
	tokenExperiencedTutor   = "experienced_tutor"
	tokenVeteranTeacher     = "veteran_teacher"
	tokenExperiencedTeacher = "experienced_teacher"
	tokenQualifiedTeacher   = "qualified_teacher"
)

// BuildTutorDocument renders a tutor as a space-joined token multiset.
// Priority order of emphasis: location > rating > subjects > popularity >
// experience.
func BuildTutorDocument(tutor models.NormalizedTutor, student models.StudentProfile) string {
	var parts []string

	subjectsText := strings.ToLower(tutor.SubjectsText)
	if subjectsText != "" {
		parts = append(parts, subjectsText)
	}

	subjectTokens := lowercaseAll(tutor.Subjects)
	detailNames := subjectDetailNames(tutor.Profile.SubjectDetails)

	for _, preferred := range student.PreferredSubjects {
		subject := strings.ToLower(preferred)
		if subject == "" {
			continue
		}
		if matchesSubjectToken(subject, subjectTokens) || containsString(detailNames, subject) {
			parts = appendRepeated(parts, subject, 3)
		}
	}

	gradeText := strings.ToLower(tutor.GradeLevelsText)
	if gradeText != "" {
		parts = append(parts, gradeText)
	}
	if student.Grade != "" {
		grade := strings.ToLower(student.Grade)
		if strings.Contains(gradeText, grade) {
			parts = appendRepeated(parts, grade, 2)
		}
	}

	location := NormalizeLocation(tutor.Profile.Address)
	if location != "" {
		similarity := LocationSimilarity(tutor.Profile.Address, student.Address)
		switch {
		case similarity > 0.5:
			parts = appendRepeated(parts, location, 6)
		case similarity > 0.3:
			parts = appendRepeated(parts, location, 4)
		default:
			parts = append(parts, location)
		}
	}

	if tutor.RatingValid {
		switch {
		case tutor.Rating >= 4.5:
			parts = appendRepeated(parts, tokenHighRating, 5)
		case tutor.Rating >= 4.0:
			parts = appendRepeated(parts, tokenGoodRating, 4)
		case tutor.Rating >= 3.5:
			parts = appendRepeated(parts, tokenAverageRating, 3)
		}
	}

	switch {
	case tutor.BookingsCount > 20:
		parts = appendRepeated(parts, tokenPopularTutor, 2)
	case tutor.BookingsCount > 10:
		parts = append(parts, tokenExperiencedTutor)
	}

	switch {
	case tutor.ExperienceYears > 5:
		parts = append(parts, tokenVeteranTeacher)
	case tutor.ExperienceYears > 3:
		parts = append(parts, tokenExperiencedTeacher)
	case tutor.ExperienceYears > 1:
		parts = append(parts, tokenQualifiedTeacher)
	}

	return strings.Join(parts, " ")
}

// BuildStudentDocument renders the requester's preferences with the same
// priority weighting. Rating, popularity and experience preferences are
// implicit: the requester is always assumed to want the best of each.
func BuildStudentDocument(student models.StudentProfile) string {
	var parts []string

	if location := NormalizeLocation(student.Address); location != "" {
		parts = appendRepeated(parts, location, 6)
	}

	parts = appendRepeated(parts, tokenHighRating, 4)

	for _, preferred := range student.PreferredSubjects {
		if subject := strings.ToLower(preferred); subject != "" {
			parts = appendRepeated(parts, subject, 3)
		}
	}

	parts = append(parts, tokenPopularTutor)
	parts = append(parts, tokenExperiencedTeacher)

	if student.Grade != "" {
		parts = append(parts, strings.ToLower(student.Grade))
	}

	return strings.Join(parts, " ")
}

func appendRepeated(parts []string, token string, count int) []string {
	for i := 0; i < count; i++ {
		parts = append(parts, token)
	}
	return parts
}

func lowercaseAll(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, strings.ToLower(item))
	}
	return out
}

func subjectDetailNames(details []models.SubjectDetail) []string {
	names := make([]string, 0, len(details))
	for _, detail := range details {
		if detail.Name != "" {
			names = append(names, strings.ToLower(detail.Name))
		}
	}
	return names
}

// matchesSubjectToken reports whether the preferred subject equals or is a
// substring of any of the tutor's subject tokens.
func matchesSubjectToken(subject string, tokens []string) bool {
	for _, token := range tokens {
		if token == subject || strings.Contains(token, subject) {
			return true
		}
	}
	return false
}

func containsString(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
