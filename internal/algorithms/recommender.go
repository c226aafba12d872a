package algorithms

import (
	"sort"
	"strings"

	"tutorrec_backend/internal/models"
)

// ScoredTutor is one ranked candidate: the normalized profile, its score
// set and the generated justifications.
type ScoredTutor struct {
	Tutor   models.NormalizedTutor
	Scores  ComponentScores
	Reasons []string
}

// Outcome identifies which pipeline path produced a result, so the caller
// can log degraded requests with their classification.
type Outcome int

const (
	OutcomePrimary Outcome = iota
	OutcomeDirectFormula
	OutcomeRatingFallback
	OutcomeRecovered
)

// Recommender runs the full pipeline: normalize, build feature documents,
// compute component scores (with the auxiliary text-similarity signal),
// combine, rank, truncate and explain. It is pure and stateless; one
// instance may serve concurrent requests.
type Recommender struct {
	weights     Weights
	topN        int
	reasonLimit int
	minCombined float64
}

func NewRecommender(weights Weights, topN, reasonLimit int, minCombined float64) *Recommender {
	if topN <= 0 {
		topN = 5
	}
	if reasonLimit <= 0 {
		reasonLimit = 3
	}
	return &Recommender{
		weights:     weights,
		topN:        topN,
		reasonLimit: reasonLimit,
		minCombined: minCombined,
	}
}

func (r *Recommender) Weights() Weights {
	return r.weights
}

// Recommend ranks tutors for a student. It never fails: scoring errors
// degrade to the rating-only ordering, and anything escaping the pipeline
// yields an empty list. The outcome names the path that served the request.
func (r *Recommender) Recommend(student models.StudentProfile, tutors []models.TutorProfile) (result []ScoredTutor, outcome Outcome) {
	defer func() {
		if recovered := recover(); recovered != nil {
			result = []ScoredTutor{}
			outcome = OutcomeRecovered
		}
	}()

	if len(tutors) == 0 {
		return []ScoredTutor{}, OutcomePrimary
	}

	normalized := NormalizeTutors(tutors)
	studentDoc := strings.TrimSpace(BuildStudentDocument(student))

	var scored []ScoredTutor
	var err error
	if studentDoc == "" {
		outcome = OutcomeDirectFormula
		scored, err = r.scoreDirect(normalized, student)
	} else {
		outcome = OutcomePrimary
		scored, err = r.scoreWithSimilarity(studentDoc, normalized, student)
	}
	if err != nil {
		return r.ratingFallback(normalized), OutcomeRatingFallback
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Scores.Combined > scored[j].Scores.Combined
	})
	if len(scored) > r.topN {
		scored = scored[:r.topN]
	}
	if r.minCombined > 0 {
		filtered := scored[:0]
		for _, candidate := range scored {
			if candidate.Scores.Combined >= r.minCombined {
				filtered = append(filtered, candidate)
			}
		}
		scored = filtered
	}

	for i := range scored {
		scored[i].Reasons = BuildReasons(scored[i].Scores, scored[i].Tutor, student, r.reasonLimit)
	}
	return scored, outcome
}

// scoreWithSimilarity is the primary path: feature documents feed the
// TF-IDF engine whose cosine similarity is attached per candidate, while
// the ranking itself is driven entirely by the five component scores.
func (r *Recommender) scoreWithSimilarity(studentDoc string, tutors []models.NormalizedTutor, student models.StudentProfile) ([]ScoredTutor, error) {
	docs := make([]string, len(tutors))
	for i, tutor := range tutors {
		docs[i] = BuildTutorDocument(tutor, student)
	}
	similarities := TextSimilarities(studentDoc, docs)

	scored := make([]ScoredTutor, 0, len(tutors))
	for i, tutor := range tutors {
		scores, err := ScoreComponents(tutor, student, r.weights)
		if err != nil {
			return nil, err
		}
		scores.TextSimilarity = similarities[i]
		scored = append(scored, ScoredTutor{Tutor: tutor, Scores: scores})
	}
	return scored, nil
}

// scoreDirect handles the degenerate empty-requester-document condition:
// the text-similarity engine is skipped and candidates are scored by the
// weighted formula alone. Terms are clipped exactly as on the primary path
// so the two formulas cannot diverge.
func (r *Recommender) scoreDirect(tutors []models.NormalizedTutor, student models.StudentProfile) ([]ScoredTutor, error) {
	scored := make([]ScoredTutor, 0, len(tutors))
	for _, tutor := range tutors {
		scores, err := ScoreComponents(tutor, student, r.weights)
		if err != nil {
			return nil, err
		}
		scored = append(scored, ScoredTutor{Tutor: tutor, Scores: scores})
	}
	return scored, nil
}

// ratingFallback orders candidates by raw rating alone. If any candidate
// lacks a parseable rating the batch is returned unscored in input order.
// Either way the result carries zero scores and no reasons.
func (r *Recommender) ratingFallback(tutors []models.NormalizedTutor) []ScoredTutor {
	scored := make([]ScoredTutor, 0, len(tutors))
	allRated := true
	for _, tutor := range tutors {
		if !tutor.RatingValid {
			allRated = false
		}
		scored = append(scored, ScoredTutor{Tutor: tutor})
	}

	if allRated {
		sort.SliceStable(scored, func(i, j int) bool {
			return scored[i].Tutor.Rating > scored[j].Tutor.Rating
		})
	}

	if len(scored) > r.topN {
		scored = scored[:r.topN]
	}
	return scored
}
