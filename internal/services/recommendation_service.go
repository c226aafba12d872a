package services

import (
	"context"

	"tutorrec_backend/internal/algorithms"
	"tutorrec_backend/internal/config"
	"tutorrec_backend/internal/logger"
	"tutorrec_backend/internal/models"
	"tutorrec_backend/internal/services/dto"
	"tutorrec_backend/pkg/apperrors"
)

type RecommendationService interface {
	// Recommend ranks tutors for a student. It never returns an error:
	// every failure mode degrades to a defined fallback, worst case an
	// empty list.
	Recommend(ctx context.Context, student models.StudentProfile, tutors []models.TutorProfile) []dto.Recommendation

	// ScoreTutor computes the diagnostic breakdown for one candidate.
	ScoreTutor(ctx context.Context, student models.StudentProfile, tutor models.TutorProfile) (*dto.ScoreBreakdown, error)

	// Weights exposes the fixed ranking priorities.
	Weights() dto.RankingWeights
}

type recommendationService struct {
	recommender *algorithms.Recommender
}

func NewRecommendationService(cfg *config.Config) RecommendationService {
	recommender := algorithms.NewRecommender(
		algorithms.DefaultWeights(),
		cfg.Recommendation.TopN,
		cfg.Recommendation.ReasonLimit,
		cfg.Recommendation.MinCombinedScore,
	)
	return &recommendationService{recommender: recommender}
}

func (s *recommendationService) Recommend(ctx context.Context, student models.StudentProfile, tutors []models.TutorProfile) []dto.Recommendation {
	log := logger.FromContext(ctx)
	log.Info("processing recommendation request",
		"user_id", student.ID,
		"tutors_available", len(tutors),
	)

	scored, outcome := s.recommender.Recommend(student, tutors)
	switch outcome {
	case algorithms.OutcomeDirectFormula:
		appErr := apperrors.EmptyQueryVectorError()
		log.Warn(appErr.Message, "code", appErr.Code)
	case algorithms.OutcomeRatingFallback:
		appErr := apperrors.ScoringFailedError(algorithms.ErrRatingUnavailable)
		log.Warn(appErr.Message, "code", appErr.Code, "error", appErr.Error())
	case algorithms.OutcomeRecovered:
		log.Error("recommendation pipeline failed, returning empty result")
	}

	recommendations := make([]dto.Recommendation, 0, len(scored))
	for _, candidate := range scored {
		log.Info("recommendation",
			"tutor", candidate.Tutor.Profile.Username,
			"location_score", candidate.Scores.Location,
			"rating_score", candidate.Scores.Rating,
			"subject_score", candidate.Scores.SubjectMatch,
			"popularity_score", candidate.Scores.Popularity,
			"experience_score", candidate.Scores.Experience,
			"text_similarity", candidate.Scores.TextSimilarity,
			"combined_score", candidate.Scores.Combined,
		)
		recommendations = append(recommendations, toRecommendation(candidate))
	}

	log.Info("returning recommendations", "count", len(recommendations))
	return recommendations
}

func (s *recommendationService) ScoreTutor(ctx context.Context, student models.StudentProfile, tutor models.TutorProfile) (*dto.ScoreBreakdown, error) {
	normalized := algorithms.NormalizeTutor(tutor)

	scores, err := algorithms.ScoreComponents(normalized, student, s.recommender.Weights())
	if err != nil {
		logger.CtxWarn(ctx, "candidate cannot be scored", "tutor_id", tutor.ID, "error", err.Error())
		return nil, apperrors.RatingUnavailableError(err)
	}

	reasons := algorithms.BuildReasons(scores, normalized, student, 3)
	return &dto.ScoreBreakdown{
		TutorID:       tutor.ID,
		Location:      scores.Location,
		Rating:        scores.Rating,
		SubjectMatch:  scores.SubjectMatch,
		Popularity:    scores.Popularity,
		Experience:    scores.Experience,
		CombinedScore: scores.Combined,
		Reasons:       reasons,
	}, nil
}

func (s *recommendationService) Weights() dto.RankingWeights {
	weights := s.recommender.Weights()
	return dto.RankingWeights{
		Location:     weights.Location,
		Rating:       weights.Rating,
		SubjectMatch: weights.SubjectMatch,
		Popularity:   weights.Popularity,
		Experience:   weights.Experience,
	}
}

func toRecommendation(candidate algorithms.ScoredTutor) dto.Recommendation {
	profile := candidate.Tutor.Profile
	reasons := candidate.Reasons
	if reasons == nil {
		reasons = []string{}
	}

	return dto.Recommendation{
		ID:             profile.ID,
		Username:       profile.Username,
		Address:        profile.Address,
		Subjects:       candidate.Tutor.Subjects,
		GradeLevels:    candidate.Tutor.GradeLevels,
		SubjectDetails: profile.SubjectDetails,
		Rating:         profile.Rating,
		BookingsCount:  profile.BookingsCount,
		Experience:     string(profile.Experience),

		Education:        profile.Education,
		Description:      profile.Description,
		TeachingLocation: profile.TeachingLocation,
		Image:            profile.Image,
		IsAvailable:      profile.IsAvailable,
		RecentActivity:   profile.RecentActivity,
		CompletionRate:   profile.CompletionRate,

		CombinedScore:      candidate.Scores.Combined,
		LocationMatchScore: candidate.Scores.Location,
		SubjectMatchScore:  candidate.Scores.SubjectMatch,
		Reasons:            reasons,
	}
}
