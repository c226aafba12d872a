package models

// StudentProfile describes the requester of a recommendation. All fields
// except ID are optional; an empty profile still produces a ranked result
// through the direct-formula path.
type StudentProfile struct {
	ID                string   `json:"id"`
	Address           string   `json:"address"`
	Grade             string   `json:"grade"`
	PreferredSubjects []string `json:"preferredSubjects"`
}

// SubjectDetail is one entry of a tutor's detailed subject list.
type SubjectDetail struct {
	Name       string `json:"name"`
	GradeLevel string `json:"gradeLevel,omitempty"`
}

// TutorProfile is the raw candidate as the collaborator sends it.
// Subjects/GradeLevels may arrive as a single string or a list; Rating and
// BookingsCount may arrive as numbers or numeric strings. The pass-through
// fields below the scoring inputs are echoed back untouched.
type TutorProfile struct {
	ID             string          `json:"id"`
	Username       string          `json:"username"`
	Address        string          `json:"address"`
	Rating         FlexNumber      `json:"rating"`
	BookingsCount  FlexNumber      `json:"bookingsCount"`
	Experience     FlexString      `json:"experience"`
	Subjects       StringList      `json:"subjects"`
	GradeLevels    StringList      `json:"gradeLevels"`
	SubjectDetails []SubjectDetail `json:"subjectDetails,omitempty"`

	Education        string  `json:"education,omitempty"`
	Description      string  `json:"description,omitempty"`
	TeachingLocation string  `json:"teachingLocation,omitempty"`
	Image            string  `json:"image,omitempty"`
	IsAvailable      bool    `json:"isAvailable,omitempty"`
	RecentActivity   int     `json:"recentActivity,omitempty"`
	CompletionRate   float64 `json:"completionRate,omitempty"`
}

// NormalizedTutor is a TutorProfile with every heterogeneous field coerced
// to a canonical shape. Downstream stages read only the derived fields and
// never branch on input shape again.
type NormalizedTutor struct {
	Profile TutorProfile

	Subjects        []string
	SubjectsText    string
	GradeLevels     []string
	GradeLevelsText string

	Rating          float64
	RatingValid     bool
	BookingsCount   float64
	ExperienceYears float64
}
