package validator

import "errors"

var (
	// ErrValidationFailed matches any ValidationErrors value via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrNilPattern is returned when a pattern validator is built without a matching rule.
	ErrNilPattern = errors.New("pattern validator requires a non-nil matching rule")
)
