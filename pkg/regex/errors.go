package regex

import "errors"

var (
	// ErrEmptyLiteral is returned when an empty string is parsed as a literal.
	ErrEmptyLiteral = errors.New("regex literal is empty")

	// ErrInvalidLiteral is returned when a literal is not of the form /source/flags.
	ErrInvalidLiteral = errors.New("invalid regex literal")

	// ErrUnsupportedFlag is returned for flags outside of "imsu".
	ErrUnsupportedFlag = errors.New("unsupported regex flag")

	// ErrDuplicateFlag is returned when a flag is given more than once.
	ErrDuplicateFlag = errors.New("duplicate regex flag")

	// ErrUnknownEngine is returned when an engine name cannot be resolved.
	ErrUnknownEngine = errors.New("unknown regex engine")

	// ErrCompile wraps the underlying engine's compilation error.
	ErrCompile = errors.New("failed to compile regex")
)
