package regex

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// DefaultMatchTimeout bounds a single ECMAScript match.
const DefaultMatchTimeout = 100 * time.Millisecond

// flagOrder is the canonical rendering order of supported flags.
const flagOrder = "imsu"

// Rule is a compiled, immutable matching rule that remembers the source and
// flags it was built from, so it can print itself as a /source/flags literal.
// A Rule is safe for concurrent use.
type Rule struct {
	source string
	flags  string
	engine Engine

	re2  *regexp.Regexp
	ecma *regexp2.Regexp
}

// Option configures rule compilation.
type Option func(*options)

type options struct {
	timeout time.Duration
}

// WithMatchTimeout overrides DefaultMatchTimeout for the ECMAScript engine.
// Non-positive values are ignored.
func WithMatchTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// Compile builds a rule on the ECMAScript engine.
//
//	rule, err := regex.Compile(`^[0-9.,]+$`, "")
//	rule.String() // "/^[0-9.,]+$/"
func Compile(source, flags string, opts ...Option) (*Rule, error) {
	o := options{timeout: DefaultMatchTimeout}
	for _, opt := range opts {
		opt(&o)
	}

	canonical, err := normalizeFlags(flags)
	if err != nil {
		return nil, err
	}

	re, err := regexp2.Compile(source, ecmaOptions(canonical))
	if err != nil {
		return nil, errors.Join(ErrCompile, err)
	}
	re.MatchTimeout = o.timeout

	return &Rule{source: source, flags: canonical, engine: EngineECMAScript, ecma: re}, nil
}

// CompileRE2 builds a rule on the standard library engine. The i, m and s
// flags are translated to an inline group; u is accepted and has no effect.
func CompileRE2(source, flags string) (*Rule, error) {
	canonical, err := normalizeFlags(flags)
	if err != nil {
		return nil, err
	}

	re, err := regexp.Compile(re2Prefix(canonical) + source)
	if err != nil {
		return nil, errors.Join(ErrCompile, err)
	}

	return &Rule{source: source, flags: canonical, engine: EngineRE2, re2: re}, nil
}

// CompileEngine dispatches to Compile or CompileRE2.
func CompileEngine(engine Engine, source, flags string, opts ...Option) (*Rule, error) {
	switch engine {
	case EngineECMAScript:
		return Compile(source, flags, opts...)
	case EngineRE2:
		return CompileRE2(source, flags)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, engine)
	}
}

// MustCompile is like Compile but panics on error.
func MustCompile(source, flags string, opts ...Option) *Rule {
	r, err := Compile(source, flags, opts...)
	if err != nil {
		panic(fmt.Sprintf("regex: Compile(%q, %q): %v", source, flags, err))
	}
	return r
}

// MustCompileRE2 is like CompileRE2 but panics on error.
func MustCompileRE2(source, flags string) *Rule {
	r, err := CompileRE2(source, flags)
	if err != nil {
		panic(fmt.Sprintf("regex: CompileRE2(%q, %q): %v", source, flags, err))
	}
	return r
}

// FromRegexp wraps an already compiled standard library regexp.
// Returns nil for a nil regexp.
func FromRegexp(re *regexp.Regexp) *Rule {
	if re == nil {
		return nil
	}
	return &Rule{source: re.String(), engine: EngineRE2, re2: re}
}

// MatchString reports whether s contains any match of the rule.
// An ECMAScript match that runs past its timeout reports false, as does
// every match on a Rule that was not built by this package.
func (r *Rule) MatchString(s string) bool {
	if r.re2 != nil {
		return r.re2.MatchString(s)
	}
	if r.ecma == nil {
		return false
	}
	ok, err := r.ecma.MatchString(s)
	if err != nil {
		return false
	}
	return ok
}

// String returns the literal form, e.g. /^a\/b$/i.
func (r *Rule) String() string {
	return "/" + escapeSource(r.source) + "/" + r.flags
}

// Compiled reports whether the rule holds a compiled expression. The zero
// Rule does not.
func (r *Rule) Compiled() bool {
	return r != nil && (r.re2 != nil || r.ecma != nil)
}

// Source returns the pattern text without delimiters or flags.
func (r *Rule) Source() string { return r.source }

// Flags returns the flags in canonical order.
func (r *Rule) Flags() string { return r.flags }

// Engine returns the engine the rule was compiled for.
func (r *Rule) Engine() Engine { return r.engine }

func normalizeFlags(flags string) (string, error) {
	var seen [len(flagOrder)]bool
	for _, f := range flags {
		i := strings.IndexRune(flagOrder, f)
		if i < 0 {
			return "", fmt.Errorf("%w: %q", ErrUnsupportedFlag, f)
		}
		if seen[i] {
			return "", fmt.Errorf("%w: %q", ErrDuplicateFlag, f)
		}
		seen[i] = true
	}

	var b strings.Builder
	for i, ok := range seen {
		if ok {
			b.WriteByte(flagOrder[i])
		}
	}
	return b.String(), nil
}

func ecmaOptions(flags string) regexp2.RegexOptions {
	opts := regexp2.RegexOptions(regexp2.ECMAScript)
	for _, f := range flags {
		switch f {
		case 'i':
			opts |= regexp2.IgnoreCase
		case 'm':
			opts |= regexp2.Multiline
		case 's':
			opts |= regexp2.Singleline
		case 'u':
			opts |= regexp2.Unicode
		}
	}
	return opts
}

func re2Prefix(flags string) string {
	inline := strings.ReplaceAll(flags, "u", "")
	if inline == "" {
		return ""
	}
	return "(?" + inline + ")"
}
