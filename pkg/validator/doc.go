// Package validator provides the pattern validation function used by form
// reducers: given a precompiled matching rule it returns a pure function that
// maps a nullable string to a ValidationErrors mapping.
//
// # Error shape
//
// ValidationErrors is the uniform error vocabulary of the hosting form
// framework, a map from error kind to detail record. An empty map means
// valid. A pattern validator only ever produces the empty map or a single
// entry under "pattern":
//
//	{"pattern": {"pattern": "/^[0-9.,]+$/", "actual": "12a"}}
//
// The pattern field is the printed form of the rule (see regex.Literal) and
// actual is the rejected input, unmodified.
//
// # Usage
//
//	numbers := validator.MustPattern(regexp.MustCompile(`^[0-9.,]+$`))
//
//	v := "123.45"
//	numbers(&v)  // ValidationErrors{}
//	numbers(nil) // ValidationErrors{}
//
// Absent (nil) and empty values are valid. Pair the validator with a
// required-ness check when a value must be present.
//
// # Error Handling
//
// Building a validator from a nil rule is a programming error: Pattern and
// NewPattern return ErrNilPattern, MustPattern panics. Validation failures
// are ordinary return values. When a failure has to travel as an error,
// AsError converts the mapping; ValidationErrors matches ErrValidationFailed
// with errors.Is and can be recovered with ExtractValidationErrors.
//
// Validators hold no mutable state and may be shared between goroutines.
package validator
