package cognitive

import (
	"fmt"
	"math"
)

// DomainScoreSet maps each assessed domain to its average score on the
// 1–5 scale. One instance exists per (subject, rater) pair. A domain with
// no responses is absent; callers must treat absence as unknown, never as
// zero.
type DomainScoreSet map[Domain]float64

// DomainAverage groups responses by domain, applies reverse scoring where
// flagged, and returns the per-domain arithmetic mean rounded to two
// decimal places. An empty input yields an empty set, not an error. Any
// response with an out-of-range value or unknown domain fails with a
// *ValidationError.
func DomainAverage(responses []RawResponse) (DomainScoreSet, error) {
	sums := make(map[Domain]float64)
	counts := make(map[Domain]int)

	for i, r := range responses {
		if !ValidDomain(string(r.Domain)) {
			return nil, &ValidationError{
				Field:  fmt.Sprintf("responses[%d].domain", i),
				Reason: fmt.Sprintf("unknown domain %q", r.Domain),
			}
		}
		if r.Value < MinLikert || r.Value > MaxLikert {
			return nil, &ValidationError{
				Field:  fmt.Sprintf("responses[%d].value", i),
				Reason: fmt.Sprintf("value %d outside [%d,%d]", r.Value, MinLikert, MaxLikert),
			}
		}

		v := r.Value
		if r.Reverse {
			v = ReverseScore(v)
		}
		sums[r.Domain] += float64(v)
		counts[r.Domain]++
	}

	scores := make(DomainScoreSet, len(sums))
	for d, sum := range sums {
		scores[d] = round2(sum / float64(counts[d]))
	}
	return scores, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
