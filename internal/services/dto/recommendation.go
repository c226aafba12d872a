package dto

import (
	"tutorrec_backend/internal/models"
)

// ========================
// Recommendation DTOs
// ========================

// RecommendRequest is the body of POST /recommend.
type RecommendRequest struct {
	User   *models.StudentProfile `json:"user" validate:"required"`
	Tutors []models.TutorProfile  `json:"tutors"`
}

// Recommendation echoes the candidate's fields and adds the ranking
// annotations the frontend displays.
type Recommendation struct {
	ID             string                 `json:"id"`
	Username       string                 `json:"username"`
	Address        string                 `json:"address,omitempty"`
	Subjects       []string               `json:"subjects"`
	GradeLevels    []string               `json:"gradeLevels"`
	SubjectDetails []models.SubjectDetail `json:"subjectDetails,omitempty"`
	Rating         models.FlexNumber      `json:"rating"`
	BookingsCount  models.FlexNumber      `json:"bookingsCount"`
	Experience     string                 `json:"experience,omitempty"`

	Education        string  `json:"education,omitempty"`
	Description      string  `json:"description,omitempty"`
	TeachingLocation string  `json:"teachingLocation,omitempty"`
	Image            string  `json:"image,omitempty"`
	IsAvailable      bool    `json:"isAvailable,omitempty"`
	RecentActivity   int     `json:"recentActivity,omitempty"`
	CompletionRate   float64 `json:"completionRate,omitempty"`

	CombinedScore      float64  `json:"combined_score"`
	LocationMatchScore float64  `json:"location_match_score"`
	SubjectMatchScore  float64  `json:"subject_match_score"`
	Reasons            []string `json:"recommendationReasons"`
}

// ExplainRequest is the body of POST /recommend/explain.
type ExplainRequest struct {
	User  *models.StudentProfile `json:"user" validate:"required"`
	Tutor *models.TutorProfile   `json:"tutor" validate:"required"`
}

// ScoreBreakdown is the per-factor diagnostic view of one candidate.
type ScoreBreakdown struct {
	TutorID       string   `json:"tutor_id"`
	Location      float64  `json:"location_score"`
	Rating        float64  `json:"rating_score"`
	SubjectMatch  float64  `json:"subject_match_score"`
	Popularity    float64  `json:"popularity_score"`
	Experience    float64  `json:"experience_score"`
	CombinedScore float64  `json:"combined_score"`
	Reasons       []string `json:"recommendationReasons"`
}

// RankingWeights exposes the fixed priority weights.
type RankingWeights struct {
	Location     float64 `json:"location"`
	Rating       float64 `json:"rating"`
	SubjectMatch float64 `json:"subject_match"`
	Popularity   float64 `json:"popularity"`
	Experience   float64 `json:"experience"`
}
