package apperrors

// ErrorCode identifies a class of application error.
type ErrorCode string

const (
	// System and unknown errors
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeUnknownError  ErrorCode = "UNKNOWN_ERROR"

	// Generic business-logic errors
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeInvalidOperation ErrorCode = "INVALID_OPERATION"

	// Recommendation pipeline conditions. The degraded paths are selected
	// by these classifications, not by catch-all recovery.
	CodeRatingUnavailable ErrorCode = "RATING_UNAVAILABLE"
	CodeScoringFailed     ErrorCode = "SCORING_FAILED"
	CodeEmptyQueryVector  ErrorCode = "EMPTY_QUERY_VECTOR"
)
