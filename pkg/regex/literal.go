package regex

import (
	"fmt"
	"strings"
)

// Literal returns the canonical printed form of any matcher. A *Rule renders
// itself; anything else is treated as a flagless source and wrapped in
// slashes, so a *regexp.Regexp for `^\d+$` prints as /^\d+$/.
func Literal(m fmt.Stringer) string {
	if r, ok := m.(*Rule); ok && r != nil {
		return r.String()
	}
	return "/" + escapeSource(m.String()) + "/"
}

// Parse reads a /source/flags literal and compiles it on the given engine.
func Parse(literal string, engine Engine, opts ...Option) (*Rule, error) {
	source, flags, err := splitLiteral(literal)
	if err != nil {
		return nil, err
	}
	return CompileEngine(engine, source, flags, opts...)
}

// MustParse is like Parse but panics on error.
func MustParse(literal string, engine Engine, opts ...Option) *Rule {
	r, err := Parse(literal, engine, opts...)
	if err != nil {
		panic(fmt.Sprintf("regex: Parse(%q): %v", literal, err))
	}
	return r
}

// splitLiteral finds the closing delimiter: the first slash that is neither
// escaped nor inside a character class. Everything after it is flags.
func splitLiteral(literal string) (source, flags string, err error) {
	if literal == "" {
		return "", "", ErrEmptyLiteral
	}
	if literal[0] != '/' {
		return "", "", fmt.Errorf("%w: %q must start with /", ErrInvalidLiteral, literal)
	}

	end := -1
	inClass := false
	for i := 1; i < len(literal); i++ {
		switch literal[i] {
		case '\\':
			i++
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '/':
			if !inClass {
				end = i
			}
		}
		if end >= 0 {
			break
		}
	}
	if end < 0 {
		return "", "", fmt.Errorf("%w: %q has no closing /", ErrInvalidLiteral, literal)
	}
	if end == 1 {
		return "", "", fmt.Errorf("%w: %q has an empty source", ErrInvalidLiteral, literal)
	}

	return literal[1:end], literal[end+1:], nil
}

// escapeSource makes a source safe to place between slashes: bare slashes
// outside character classes and the line terminators \n, \r, U+2028 and
// U+2029 are escaped, and an empty source becomes the empty non-capturing
// group.
func escapeSource(source string) string {
	if source == "" {
		return "(?:)"
	}

	var b strings.Builder
	b.Grow(len(source))
	inClass := false
	for i := 0; i < len(source); i++ {
		c := source[i]
		switch c {
		case '\\':
			b.WriteByte(c)
			if i+1 < len(source) {
				i++
				b.WriteByte(source[i])
			}
			continue
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '/':
			if !inClass {
				b.WriteString(`\/`)
				continue
			}
		case '\n':
			b.WriteString(`\n`)
			continue
		case '\r':
			b.WriteString(`\r`)
			continue
		}
		if strings.HasPrefix(source[i:], "\u2028") {
			b.WriteString(`\u2028`)
			i += len("\u2028") - 1
			continue
		}
		if strings.HasPrefix(source[i:], "\u2029") {
			b.WriteString(`\u2029`)
			i += len("\u2029") - 1
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
