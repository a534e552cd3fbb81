// Package parse converts the routing provider's numeric text into numbers.
//
// Accepted formats, held invariant by the tests:
//   - localized text ("12.3 mi", "25 min", "25 mins", "1,532 min"): the
//     leading whitespace-separated token is taken and thousands separators
//     are stripped before parsing;
//   - machine durations ("1532s"): a plain integer with a trailing "s".
//     Thousands separators are rejected here; the field is not localized.
package parse

import (
	"fmt"
	"strconv"
	"strings"
)

// Error reports provider text that does not match an expected shape.
type Error struct {
	Input string
	Want  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("cannot parse %q as %s", e.Input, e.Want)
}

// LeadingFloat parses the leading numeric token of localized text such as
// "12.3 mi" or "1,234.5 mi".
func LeadingFloat(s string) (float64, error) {
	tok, ok := leadingToken(s)
	if !ok {
		return 0, &Error{Input: s, Want: "localized number"}
	}

	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, &Error{Input: s, Want: "localized number"}
	}
	return v, nil
}

// LeadingInt parses the leading integer token of localized text such as
// "25 min", "25 mins" or "1,532 min". The unit suffix is ignored.
func LeadingInt(s string) (int, error) {
	tok, ok := leadingToken(s)
	if !ok {
		return 0, &Error{Input: s, Want: "localized integer"}
	}

	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, &Error{Input: s, Want: "localized integer"}
	}
	return v, nil
}

// Seconds parses a machine-readable duration of the form "<integer>s".
func Seconds(s string) (int, error) {
	digits, ok := strings.CutSuffix(s, "s")
	if !ok {
		return 0, &Error{Input: s, Want: "duration in seconds"}
	}

	v, err := strconv.Atoi(digits)
	if err != nil || v < 0 {
		return 0, &Error{Input: s, Want: "duration in seconds"}
	}
	return v, nil
}

func leadingToken(s string) (string, bool) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return "", false
	}
	return strings.ReplaceAll(fields[0], ",", ""), true
}
