package cognitive

import "fmt"

// Likert scale bounds for a single raw response value.
const (
	MinLikert = 1
	MaxLikert = 5
)

// RawResponse is one answer to one Likert question. Immutable once
// recorded; produced by the assessment capture layer.
type RawResponse struct {
	Question int    // question identifier (1..N)
	Domain   Domain // domain tag from the fixed six-domain enumeration
	Value    int    // raw value, 1–5
	Reverse  bool   // apply reverse scoring (6 - value)
}

// ValidationError reports malformed assessment input. Malformed input is
// always surfaced to the caller, never silently corrected.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ReverseScore applies reverse scoring to a Likert value. It is its own
// inverse: ReverseScore(ReverseScore(v)) == v.
func ReverseScore(v int) int {
	return MaxLikert + MinLikert - v
}
