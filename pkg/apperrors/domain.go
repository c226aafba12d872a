package apperrors

import "net/http"

// Recommendation-domain constructors. These never reach HTTP clients on
// the ranking path (the pipeline degrades instead of failing); they exist
// for the diagnostic endpoints and for classification in logs.

// RatingUnavailableError marks a candidate whose rating cannot be scored.
func RatingUnavailableError(err error) *AppError {
	return Wrap(err, CodeRatingUnavailable, "recommendation", "Candidate rating is missing or not numeric", http.StatusUnprocessableEntity)
}

// ScoringFailedError marks a scoring-stage failure that triggered the
// rating-only fallback ordering.
func ScoringFailedError(err error) *AppError {
	return Wrap(err, CodeScoringFailed, "recommendation", "Scoring stage failed", http.StatusInternalServerError)
}

// EmptyQueryVectorError marks the degenerate empty-requester-document
// condition handled by the direct-formula path.
func EmptyQueryVectorError() *AppError {
	return New(CodeEmptyQueryVector, "recommendation", "Requester feature document is empty", http.StatusUnprocessableEntity)
}
