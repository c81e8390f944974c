package validator

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ValidationErrors maps an error kind (such as "pattern") to its detail record.
// An empty map means the value is valid.
type ValidationErrors map[string]any

// Error implements the error interface. Kinds are listed in sorted order.
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	kinds := ve.Kinds()
	parts := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		parts = append(parts, fmt.Sprintf("%s: %v", kind, ve[kind]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is reports true for ErrValidationFailed.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve ValidationErrors) Has(kind string) bool {
	_, ok := ve[kind]
	return ok
}

// Get returns the detail record stored under kind, or nil.
func (ve ValidationErrors) Get(kind string) any {
	return ve[kind]
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Kinds returns the error kinds in sorted order.
func (ve ValidationErrors) Kinds() []string {
	kinds := make([]string, 0, len(ve))
	for kind := range ve {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// PatternError returns the typed detail of a pattern failure.
func (ve ValidationErrors) PatternError() (PatternError, bool) {
	pe, ok := ve[KindPattern].(PatternError)
	return pe, ok
}

// AsError returns nil for an empty mapping and the mapping itself otherwise,
// so that a valid result never turns into a non-nil error interface.
func (ve ValidationErrors) AsError() error {
	if ve.IsEmpty() {
		return nil
	}
	return ve
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
