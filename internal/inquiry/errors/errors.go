package errors

import "errors"

var (
	ErrNotFound = errors.New("inquiry not found")

	ErrInvalidID = errors.New("invalid inquiry ID format")

	// ErrDuplicateToday is returned by the duplicate guard when the same
	// mobile number already submitted within the current calendar day.
	ErrDuplicateToday = errors.New("inquiry already submitted today for this mobile")
)
