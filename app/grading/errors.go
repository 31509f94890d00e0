package grading

import "errors"

var (
	ErrNotANumber               = errors.New("value is not a number")
	ErrScoreExceedsTotal        = errors.New("score cannot be greater than total")
	ErrPassingScoreExceedsTotal = errors.New("passing score cannot be greater than total")
	ErrPassingScoreEqualsTotal  = errors.New("passing score must be lower than total")
	ErrInvalidTotal             = errors.New("total must be greater than zero")
	ErrNegativeWeight           = errors.New("weight cannot be negative")
	ErrWeightExceeded           = errors.New("total weight cannot exceed 100%")
	ErrEntryNotFound            = errors.New("entry not found")

	// ErrWeightOverLimit is the standing warning reported by Model.Warning.
	ErrWeightOverLimit = errors.New("total weight exceeds 100%, please adjust your entries")
)

// Code maps a grading error to a stable machine-readable code for API clients.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotANumber):
		return "not_a_number"
	case errors.Is(err, ErrScoreExceedsTotal):
		return "score_exceeds_total"
	case errors.Is(err, ErrPassingScoreExceedsTotal):
		return "passing_score_exceeds_total"
	case errors.Is(err, ErrPassingScoreEqualsTotal):
		return "passing_score_equals_total"
	case errors.Is(err, ErrInvalidTotal):
		return "invalid_total"
	case errors.Is(err, ErrNegativeWeight):
		return "negative_weight"
	case errors.Is(err, ErrWeightExceeded):
		return "weight_exceeded"
	case errors.Is(err, ErrEntryNotFound):
		return "entry_not_found"
	case errors.Is(err, ErrWeightOverLimit):
		return "weight_over_limit"
	default:
		return "unknown"
	}
}

// IsValidation reports whether err is a user input problem rather than a missing entry.
func IsValidation(err error) bool {
	switch Code(err) {
	case "", "unknown", "entry_not_found":
		return false
	}
	return true
}
