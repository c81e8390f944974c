// Package regex provides compiled matching rules that keep track of the
// source and flags they were built from and print themselves as
// /source/flags literals.
//
// Two engines are available. EngineECMAScript is backed by
// github.com/dlclark/regexp2 and understands lookarounds and backreferences;
// each match is bounded by a timeout and a match that times out counts as a
// miss. EngineRE2 is backed by the standard library and runs in linear time.
//
// # Usage
//
//	digits := regex.MustCompile(`^[0-9.,]+$`, "")
//	digits.MatchString("123.45") // true
//	digits.String()              // "/^[0-9.,]+$/"
//
//	email, err := regex.Parse(`/^[^@\s]+@[^@\s]+$/i`, regex.EngineRE2)
//
// Supported flags are i, m, s and u. Flags that make matching stateful
// (g, y) are rejected with ErrUnsupportedFlag, as are d and v.
//
// Literal renders any value with a String method. *regexp.Regexp values are
// printed as flagless literals.
package regex
