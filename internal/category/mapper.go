package category

import (
	"math"

	"github.com/learnaura/aura/internal/cognitive"
)

// NeutralScore is the "balanced profile, unknown" sentinel. A subject who
// has never been assessed cognitively maps to this score in every
// category.
const NeutralScore = 50

// scaleMidpoint substitutes for any domain missing from the input, so
// every category is computable even with partial data.
const scaleMidpoint = 3.0

// MapToCategoryScores converts six cognitive domain averages (1–5 scale)
// into eight category scores (0–100 scale) using threshold-anchored
// piecewise-linear transforms. The transforms are continuous at their
// thresholds and the results are clamped to [0,100]. A nil or empty
// domain set returns the balanced profile.
func MapToCategoryScores(domains cognitive.DomainScoreSet) ScoreSet {
	if len(domains) == 0 {
		return BalancedProfile()
	}

	speed := domainOrMidpoint(domains, cognitive.DomainProcessingSpeed)
	memory := domainOrMidpoint(domains, cognitive.DomainWorkingMemory)
	attention := domainOrMidpoint(domains, cognitive.DomainAttentionFocus)
	style := domainOrMidpoint(domains, cognitive.DomainLearningStyle)
	efficacy := domainOrMidpoint(domains, cognitive.DomainSelfEfficacy)
	motivation := domainOrMidpoint(domains, cognitive.DomainMotivationEngagement)

	return ScoreSet{
		CategorySlowProcessing:         clampScore(slowProcessing(speed)),
		CategoryNeedsRepetition:        clampScore(supportNeed(memory)),
		CategorySensitiveLowConfidence: clampScore(supportNeed(efficacy)),
		CategoryEasilyDistracted:       clampScore(easilyDistracted(attention, motivation)),
		CategoryHighEnergy:             clampScore(highEnergy(attention, motivation)),
		CategoryVisualLearner:          clampScore(visualLearner(style)),
		CategoryLogicalLearner:         clampScore(logicalLearner(style)),
		CategoryFastProcessor:          clampScore(fastProcessor(speed)),
	}
}

// BalancedProfile returns every category at exactly NeutralScore.
func BalancedProfile() ScoreSet {
	profile := make(ScoreSet, 8)
	for _, c := range AllCategories() {
		profile[c] = NeutralScore
	}
	return profile
}

func slowProcessing(x float64) float64 {
	if x < 2.5 {
		return (2.5-x)/2.5*40 + 50
	}
	return 2.5 / x * 50
}

// supportNeed is the shared low-end rule driving needs_repetition (working
// memory) and sensitive_low_confidence (self-efficacy).
func supportNeed(x float64) float64 {
	if x < 2.5 {
		return (2.5-x)/2.5*35 + 50
	}
	return 2.5 / x * 50
}

func fastProcessor(x float64) float64 {
	if x > 4.0 {
		return (x-4.0)/1.0*40 + 50
	}
	return x / 4.0 * 50
}

func highEnergy(attention, motivation float64) float64 {
	switch {
	case attention < 2.5 && motivation > 3.5:
		// Both deviations contribute on top of a base of 50,
		// 20 points each at full range.
		return 50 + (2.5-attention)/2.5*20 + (motivation-3.5)/1.5*20
	case motivation > 3.5:
		return (motivation-3.5)/1.5*40 + 30
	default:
		return motivation / 5 * 50
	}
}

func easilyDistracted(attention, motivation float64) float64 {
	switch {
	case attention < 2.5 && motivation < 3.5:
		return (2.5-attention)/2.5*35 + 50
	case attention < 2.5:
		return (2.5-attention)/2.5*40 + 40
	default:
		return 2.5 / attention * 50
	}
}

func visualLearner(x float64) float64 {
	if x > 4.0 {
		return (x-4.0)/1.0*40 + 50
	}
	return x / 4.0 * 50
}

func logicalLearner(x float64) float64 {
	if x > 4.0 {
		return (x-4.0)/1.0*30 + 40
	}
	return x / 4.0 * 60
}

func domainOrMidpoint(domains cognitive.DomainScoreSet, d cognitive.Domain) float64 {
	if v, ok := domains[d]; ok {
		return v
	}
	return scaleMidpoint
}

// clampScore rounds half-up to an integer and clamps to [0,100].
func clampScore(v float64) int {
	n := int(math.Floor(v + 0.5))
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
