package algorithms

import (
	"errors"
	"strings"

	"tutorrec_backend/internal/models"
)

// ErrRatingUnavailable classifies the one recoverable scoring failure:
// a candidate whose rating is missing or non-numeric. The pipeline reacts
// by switching the whole batch to the rating-only fallback ordering.
var ErrRatingUnavailable = errors.New("rating unavailable")

// Weights are the fixed ranking priorities. They sum to 1.0 exactly.
type Weights struct {
	Location     float64 `json:"location"`
	Rating       float64 `json:"rating"`
	SubjectMatch float64 `json:"subject_match"`
	Popularity   float64 `json:"popularity"`
	Experience   float64 `json:"experience"`
}

// DefaultWeights: location 35%, rating 25%, subject 20%, popularity 15%,
// experience 5%.
func DefaultWeights() Weights {
	return Weights{
		Location:     0.35,
		Rating:       0.25,
		SubjectMatch: 0.20,
		Popularity:   0.15,
		Experience:   0.05,
	}
}

// ComponentScores holds the five independent [0,1] factors, their weighted
// combination and the auxiliary text-similarity signal.
type ComponentScores struct {
	Location       float64
	Rating         float64
	SubjectMatch   float64
	Popularity     float64
	Experience     float64
	Combined       float64
	TextSimilarity float64
}

// ScoreComponents computes the five factors for one tutor. A missing or
// non-numeric rating is the one condition classified as a scoring error;
// the caller switches to the rating-only fallback for the whole batch.
func ScoreComponents(tutor models.NormalizedTutor, student models.StudentProfile, weights Weights) (ComponentScores, error) {
	if !tutor.RatingValid {
		return ComponentScores{}, ErrRatingUnavailable
	}

	scores := ComponentScores{
		Location:     clip01(LocationSimilarity(tutor.Profile.Address, student.Address)),
		Rating:       clip01(tutor.Rating / 5.0),
		SubjectMatch: clip01(SubjectMatchScore(tutor, student)),
		Popularity:   clip01(tutor.BookingsCount / 100.0),
		Experience:   clip01(tutor.ExperienceYears / 10.0),
	}
	scores.Combined = weights.Combine(scores)
	return scores, nil
}

// SubjectMatchScore counts exact and partial (substring) hits of the
// student's preferred subjects against the tutor's deduplicated subject
// set. No preferences is neutral (0.5); no tutor subjects is 0.
func SubjectMatchScore(tutor models.NormalizedTutor, student models.StudentProfile) float64 {
	preferred := make([]string, 0, len(student.PreferredSubjects))
	for _, subject := range student.PreferredSubjects {
		if s := strings.ToLower(subject); s != "" {
			preferred = append(preferred, s)
		}
	}
	if len(preferred) == 0 {
		return 0.5
	}

	tutorSubjects := make(map[string]struct{})
	for _, subject := range tutor.Subjects {
		tutorSubjects[strings.ToLower(subject)] = struct{}{}
	}
	for _, detail := range tutor.Profile.SubjectDetails {
		if detail.Name != "" {
			tutorSubjects[strings.ToLower(detail.Name)] = struct{}{}
		}
	}
	if len(tutorSubjects) == 0 {
		return 0
	}

	exact := 0
	partial := 0
	for _, subject := range preferred {
		if _, ok := tutorSubjects[subject]; ok {
			exact++
			continue
		}
		for tutorSubject := range tutorSubjects {
			if strings.Contains(tutorSubject, subject) {
				partial++
				break
			}
		}
	}

	return (float64(exact) + 0.5*float64(partial)) / float64(len(preferred))
}

// Combine applies the fixed priority weights.
func (w Weights) Combine(s ComponentScores) float64 {
	return s.Location*w.Location +
		s.Rating*w.Rating +
		s.SubjectMatch*w.SubjectMatch +
		s.Popularity*w.Popularity +
		s.Experience*w.Experience
}

func clip01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
