package validation

import (
	"errors"
)

var (
	ErrSetsRepsRequired    = errors.New("sets and reps are required")
	ErrSetsRepsNotPositive = errors.New("sets and reps must be positive numbers")
)

// ValidateSetsReps rejects workout entries without positive sets and reps.
// Missing and non-positive values carry distinct messages but are the same
// kind of failure to callers.
func ValidateSetsReps(sets, reps *int64) error {
	if sets == nil || reps == nil {
		return ErrSetsRepsRequired
	}
	if *sets <= 0 || *reps <= 0 {
		return ErrSetsRepsNotPositive
	}
	return nil
}

// IsValidationError reports whether err belongs to the validation error
// kind, used at the HTTP boundary to pick a 400 status.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrCredentialsRequired) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrSetsRepsRequired) ||
		errors.Is(err, ErrSetsRepsNotPositive)
}
