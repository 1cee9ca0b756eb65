package errs

import "errors"

// Error kinds shared by the domain, use case and handler layers.
var (
	ErrNotFound          = errors.New("not found")
	ErrDateFormat        = errors.New("invalid date format")
	ErrInvalidRange      = errors.New("check-out date precedes check-in date")
	ErrBookingConflict   = errors.New("This dates is unavailable")
	ErrAccessDenied      = errors.New("access denied")
	ErrValidation        = errors.New("validation failed")
	ErrDuplicate         = errors.New("already exists")
	ErrInconsistentState = errors.New("inconsistent state")
)
