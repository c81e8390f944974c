package regex

import (
	"fmt"
	"strings"
)

// Engine selects the matching implementation behind a Rule.
type Engine string

const (
	// EngineECMAScript is a backtracking engine with ECMAScript semantics
	// (lookarounds, backreferences). Matches are bounded by a timeout.
	EngineECMAScript Engine = "ecmascript"
	// EngineRE2 is the linear-time standard library engine.
	EngineRE2 Engine = "re2"
)

// ParseEngine resolves an engine name. An empty name yields EngineECMAScript.
func ParseEngine(name string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", string(EngineECMAScript), "ecma", "js":
		return EngineECMAScript, nil
	case string(EngineRE2), "go":
		return EngineRE2, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
}

func (e Engine) String() string {
	return string(e)
}
