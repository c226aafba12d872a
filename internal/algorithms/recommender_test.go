package algorithms

import (
	"fmt"
	"testing"

	"tutorrec_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultRecommender() *Recommender {
	return NewRecommender(DefaultWeights(), 5, 3, 0)
}

func scoredIDs(scored []ScoredTutor) []string {
	ids := make([]string, 0, len(scored))
	for _, candidate := range scored {
		ids = append(ids, candidate.Tutor.Profile.ID)
	}
	return ids
}

func TestRecommendEmptyInput(t *testing.T) {
	t.Parallel()

	got, outcome := defaultRecommender().Recommend(models.StudentProfile{}, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Equal(t, OutcomePrimary, outcome)
}

func TestRecommendRanksByCombinedScore(t *testing.T) {
	t.Parallel()

	student := models.StudentProfile{
		Address:           "123 Main St Springfield",
		PreferredSubjects: []string{"Math"},
	}
	tutors := []models.TutorProfile{
		decodeTutor(t, `{"id":"weak","rating":3.0}`),
		decodeTutor(t, `{
			"id": "strong",
			"address": "123 Main St Springfield",
			"subjects": ["Math"],
			"rating": 4.9,
			"bookingsCount": 40,
			"experience": "8 years"
		}`),
		decodeTutor(t, `{
			"id": "medium",
			"address": "Shelbyville",
			"subjects": ["Math"],
			"rating": 4.0,
			"bookingsCount": 12
		}`),
	}

	got, outcome := defaultRecommender().Recommend(student, tutors)
	require.Len(t, got, 3)
	assert.Equal(t, OutcomePrimary, outcome)
	assert.Equal(t, []string{"strong", "medium", "weak"}, scoredIDs(got))

	assert.Greater(t, got[0].Scores.Combined, got[1].Scores.Combined)
	assert.Greater(t, got[1].Scores.Combined, got[2].Scores.Combined)

	// The strong candidate shares location, subject and tier tokens with
	// the requester document.
	assert.Positive(t, got[0].Scores.TextSimilarity)

	require.NotEmpty(t, got[0].Reasons)
	assert.LessOrEqual(t, len(got[0].Reasons), 3)
	assert.Equal(t, "Very close to your location", got[0].Reasons[0])
}

func TestRecommendCapsAtTopN(t *testing.T) {
	t.Parallel()

	tutors := make([]models.TutorProfile, 0, 8)
	for i := 0; i < 8; i++ {
		raw := fmt.Sprintf(`{"id":"t%d","rating":%g}`, i, 3.0+float64(i)*0.2)
		tutors = append(tutors, decodeTutor(t, raw))
	}

	got, _ := defaultRecommender().Recommend(models.StudentProfile{}, tutors)
	assert.Len(t, got, 5)
	// Highest ratings come first.
	assert.Equal(t, "t7", got[0].Tutor.Profile.ID)
}

func TestRecommendStableOnTies(t *testing.T) {
	t.Parallel()

	tutors := []models.TutorProfile{
		decodeTutor(t, `{"id":"first","rating":4.0}`),
		decodeTutor(t, `{"id":"second","rating":4.0}`),
		decodeTutor(t, `{"id":"third","rating":4.0}`),
	}

	got, _ := defaultRecommender().Recommend(models.StudentProfile{}, tutors)
	assert.Equal(t, []string{"first", "second", "third"}, scoredIDs(got))
}

func TestRecommendRatingFallback(t *testing.T) {
	t.Parallel()

	tutors := []models.TutorProfile{
		decodeTutor(t, `{"id":"t1","rating":4.0}`),
		decodeTutor(t, `{"id":"t2","rating":"pending"}`),
		decodeTutor(t, `{"id":"t3","rating":4.9}`),
	}

	got, outcome := defaultRecommender().Recommend(models.StudentProfile{}, tutors)
	require.Len(t, got, 3)
	assert.Equal(t, OutcomeRatingFallback, outcome)

	// One unparseable rating degrades the whole batch to input order
	// with no scores or reasons.
	assert.Equal(t, []string{"t1", "t2", "t3"}, scoredIDs(got))
	for _, candidate := range got {
		assert.Zero(t, candidate.Scores.Combined)
		assert.Empty(t, candidate.Reasons)
	}
}

func TestRecommendRatingFallbackRespectsTopN(t *testing.T) {
	t.Parallel()

	tutors := make([]models.TutorProfile, 0, 7)
	for i := 0; i < 7; i++ {
		tutors = append(tutors, decodeTutor(t, fmt.Sprintf(`{"id":"t%d","rating":"?"}`, i)))
	}

	got, outcome := defaultRecommender().Recommend(models.StudentProfile{}, tutors)
	assert.Len(t, got, 5)
	assert.Equal(t, OutcomeRatingFallback, outcome)
	assert.Equal(t, []string{"t0", "t1", "t2", "t3", "t4"}, scoredIDs(got))
}

func TestRecommendMinCombinedFilter(t *testing.T) {
	t.Parallel()

	student := models.StudentProfile{
		Address:           "Springfield",
		PreferredSubjects: []string{"Math"},
	}
	tutors := []models.TutorProfile{
		decodeTutor(t, `{"id":"weak","rating":3.0}`),
		decodeTutor(t, `{
			"id": "strong",
			"address": "Springfield",
			"subjects": ["Math"],
			"rating": 4.9,
			"bookingsCount": 40,
			"experience": "8 years"
		}`),
	}

	recommender := NewRecommender(DefaultWeights(), 5, 3, 0.5)
	got, _ := recommender.Recommend(student, tutors)
	assert.Equal(t, []string{"strong"}, scoredIDs(got))
}
