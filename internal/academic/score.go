package academic

import "fmt"

// TierNone is reserved for "no assessment exists". ScoreAcademic never
// returns it.
const TierNone = 0

// Confidence bounds. Confidence is a secondary signal distinguishing
// "fast but possibly careless" from "deliberate" performance; it never
// overrides the tier.
const (
	MinConfidence = 0.5
	MaxConfidence = 1.0
)

// Timing heuristics applied to the mean per-question time.
const (
	// RapidGuessSecs is the mean time (exclusive) below which the
	// rapid-guessing penalty applies.
	RapidGuessSecs = 10.0
	// HesitationSecs is the mean time (exclusive) above which the
	// hesitation penalty applies.
	HesitationSecs = 60.0

	rapidGuessPenalty = 0.10
	hesitationPenalty = 0.05
)

// tierBaseConfidence maps a performance tier (1–5) to its base
// confidence before any timing adjustment.
var tierBaseConfidence = [6]float64{0, 0.60, 0.65, 0.70, 0.75, 0.80}

// Score is the outcome of one academic assessment.
type Score struct {
	Percentage float64 // correct/total × 100
	Tier       int     // performance tier, 1–5
	Confidence float64 // in [0.5, 1.0]
}

// ValidationError reports malformed academic input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ScoreAcademic converts a correct/total count and per-question timings
// into a percentage, a 1–5 tier, and a timing-adjusted confidence.
// questionTimes must have one entry per question; pass an empty slice when
// timing is unavailable, in which case the adjustment is skipped.
func ScoreAcademic(correct, total int, questionTimes []float64) (Score, error) {
	if total <= 0 {
		return Score{}, &ValidationError{Field: "total", Reason: fmt.Sprintf("must be > 0, got %d", total)}
	}
	if correct < 0 || correct > total {
		return Score{}, &ValidationError{
			Field:  "correct",
			Reason: fmt.Sprintf("must be in [0,%d], got %d", total, correct),
		}
	}
	if len(questionTimes) != 0 && len(questionTimes) != total {
		return Score{}, &ValidationError{
			Field:  "question_times",
			Reason: fmt.Sprintf("length %d does not match total %d", len(questionTimes), total),
		}
	}

	percentage := float64(correct) / float64(total) * 100
	tier := TierFor(percentage)
	confidence := clamp(tierBaseConfidence[tier]+TimingAdjustment(questionTimes), MinConfidence, MaxConfidence)

	return Score{Percentage: percentage, Tier: tier, Confidence: confidence}, nil
}

// TierFor assigns a performance tier by fixed percentage breakpoints.
func TierFor(percentage float64) int {
	switch {
	case percentage >= 80:
		return 5
	case percentage >= 60:
		return 4
	case percentage >= 40:
		return 3
	case percentage >= 20:
		return 2
	default:
		return 1
	}
}

// TimingAdjustment returns the confidence penalty implied by the mean
// per-question time: -0.10 for rapid guessing, -0.05 for hesitation,
// 0 in the neutral range or when no timings are available.
func TimingAdjustment(questionTimes []float64) float64 {
	if len(questionTimes) == 0 {
		return 0
	}
	sum := 0.0
	for _, t := range questionTimes {
		sum += t
	}
	mean := sum / float64(len(questionTimes))

	switch {
	case mean < RapidGuessSecs:
		return -rapidGuessPenalty
	case mean > HesitationSecs:
		return -hesitationPenalty
	default:
		return 0
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
