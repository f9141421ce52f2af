package validator

import "errors"

var (
	// ErrValidationFailed matches every ValidationError and ValidationErrors value.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidFormat reports malformed input to a helper, such as a
	// non-digit Luhn prefix.
	ErrInvalidFormat = errors.New("invalid format")
)
