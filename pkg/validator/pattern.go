package validator

import (
	"fmt"
	"reflect"

	"github.com/dmitrymomot/formrules/pkg/regex"
)

// KindPattern is the ValidationErrors key used by pattern validators.
const KindPattern = "pattern"

// Matcher is a precompiled matching rule. Both *regexp.Regexp and
// *regex.Rule satisfy it.
type Matcher interface {
	MatchString(s string) bool
	String() string
}

// PatternError is the detail record stored under KindPattern.
type PatternError struct {
	// Pattern is the printed form of the rule, e.g. /^[0-9.,]+$/.
	Pattern string `json:"pattern"`
	// Actual is the rejected value, unmodified.
	Actual string `json:"actual"`
}

func (e PatternError) String() string {
	return fmt.Sprintf("%q must match %s", e.Actual, e.Pattern)
}

// Func validates a nullable string. A nil pointer is the absent value.
type Func func(value *string) ValidationErrors

// PatternValidator holds a matching rule and its printed form.
// It is immutable and safe for concurrent use.
type PatternValidator struct {
	rule    Matcher
	literal string
}

// NewPattern builds a validator for rule. A nil rule, including a typed nil
// such as (*regexp.Regexp)(nil) or a zero regex.Rule, fails with ErrNilPattern.
func NewPattern(rule Matcher) (*PatternValidator, error) {
	if isNil(rule) {
		return nil, fmt.Errorf("%w, got %#v", ErrNilPattern, rule)
	}
	if r, ok := rule.(*regex.Rule); ok && !r.Compiled() {
		return nil, fmt.Errorf("%w, got an uncompiled %T", ErrNilPattern, rule)
	}
	return &PatternValidator{rule: rule, literal: regex.Literal(rule)}, nil
}

// Pattern returns a validation function requiring a value to match rule.
// Absent and empty values are considered valid; combine it with a
// required-ness check if they should not be.
//
// On failure the result holds a single entry:
//
//	{"pattern": {"pattern": "/^[0-9.,]+$/", "actual": "12a"}}
func Pattern(rule Matcher) (Func, error) {
	v, err := NewPattern(rule)
	if err != nil {
		return nil, err
	}
	return v.Validate, nil
}

// MustPattern is like Pattern but panics if rule is nil.
func MustPattern(rule Matcher) Func {
	fn, err := Pattern(rule)
	if err != nil {
		panic(err)
	}
	return fn
}

// Validate checks value against the rule. The rule is not consulted for a
// nil or empty value. Matching follows the rule's own semantics, so an
// unanchored rule accepts any value containing a match.
func (v *PatternValidator) Validate(value *string) ValidationErrors {
	if value == nil || len(*value) == 0 {
		return ValidationErrors{}
	}

	if v.rule.MatchString(*value) {
		return ValidationErrors{}
	}

	return ValidationErrors{
		KindPattern: PatternError{
			Pattern: v.literal,
			Actual:  *value,
		},
	}
}

// ValidateString is Validate for call sites without an absent value.
func (v *PatternValidator) ValidateString(value string) ValidationErrors {
	return v.Validate(&value)
}

// Func returns Validate as a standalone function value.
func (v *PatternValidator) Func() Func {
	return v.Validate
}

// Pattern returns the printed form of the rule.
func (v *PatternValidator) Pattern() string {
	return v.literal
}

func isNil(rule Matcher) bool {
	if rule == nil {
		return true
	}
	rv := reflect.ValueOf(rule)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
