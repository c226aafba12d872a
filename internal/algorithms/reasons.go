package algorithms

import (
	"fmt"
	"strconv"
	"strings"

	"tutorrec_backend/internal/models"
)

// BuildReasons converts component scores into human-readable justifications,
// evaluated in fixed priority order: location, rating, subject, popularity,
// experience. At most limit reasons are returned; categories that fire after
// the cap is reached are dropped, never substituted.
func BuildReasons(scores ComponentScores, tutor models.NormalizedTutor, student models.StudentProfile, limit int) []string {
	var reasons []string

	switch {
	case scores.Location > 0.7:
		reasons = append(reasons, "Very close to your location")
	case scores.Location > 0.5:
		reasons = append(reasons, "Near your location")
	case scores.Location > 0.3:
		reasons = append(reasons, "In your area")
	}

	if tutor.RatingValid {
		rating := formatRating(tutor.Rating)
		switch {
		case tutor.Rating >= 4.5:
			reasons = append(reasons, fmt.Sprintf("Excellent rating (%s/5)", rating))
		case tutor.Rating >= 4.0:
			reasons = append(reasons, fmt.Sprintf("Very good rating (%s/5)", rating))
		case tutor.Rating >= 3.5:
			reasons = append(reasons, fmt.Sprintf("Good rating (%s/5)", rating))
		}
	}

	if scores.SubjectMatch > 0.8 && len(student.PreferredSubjects) > 0 {
		if matching := matchingPreferredSubjects(tutor, student, 2); len(matching) > 0 {
			reasons = append(reasons, "Teaches your preferred subject(s): "+strings.Join(matching, ", "))
		} else {
			reasons = append(reasons, "Matches your subject preferences")
		}
	} else if scores.SubjectMatch > 0.5 {
		reasons = append(reasons, "Teaches subjects you're interested in")
	}

	bookings := int(tutor.BookingsCount)
	switch {
	case bookings > 30:
		reasons = append(reasons, fmt.Sprintf("Very popular tutor (%d+ completed sessions)", bookings))
	case bookings > 15:
		reasons = append(reasons, fmt.Sprintf("Popular tutor (%d+ completed sessions)", bookings))
	case bookings > 5:
		reasons = append(reasons, fmt.Sprintf("Has completed %d+ tutoring sessions", bookings))
	}

	years := int(tutor.ExperienceYears)
	switch {
	case years > 5:
		reasons = append(reasons, fmt.Sprintf("%d+ years of teaching experience", years))
	case years == 1:
		reasons = append(reasons, "1 year of teaching experience")
	case years > 0:
		reasons = append(reasons, fmt.Sprintf("%d years of teaching experience", years))
	}

	if len(reasons) > limit {
		reasons = reasons[:limit]
	}
	return reasons
}

// matchingPreferredSubjects names up to max preferred subjects that appear
// (case-insensitively) inside one of the tutor's subject tokens. The
// original casing of the student's preference is kept for display.
func matchingPreferredSubjects(tutor models.NormalizedTutor, student models.StudentProfile, max int) []string {
	var matching []string
	for _, preferred := range student.PreferredSubjects {
		lowered := strings.ToLower(preferred)
		if lowered == "" {
			continue
		}
		for _, subject := range tutor.Subjects {
			if strings.Contains(strings.ToLower(subject), lowered) {
				matching = append(matching, preferred)
				break
			}
		}
		if len(matching) == max {
			break
		}
	}
	return matching
}

func formatRating(rating float64) string {
	return strconv.FormatFloat(rating, 'g', -1, 64)
}
