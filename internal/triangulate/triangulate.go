// Package triangulate compares independent raters' domain score sets to
// estimate how much they agree.
package triangulate

import "github.com/learnaura/aura/internal/cognitive"

// AgreementLabel buckets a per-domain discrepancy.
type AgreementLabel string

const (
	LabelAgreement   AgreementLabel = "agreement"
	LabelSlight      AgreementLabel = "slight"
	LabelModerate    AgreementLabel = "moderate"
	LabelSignificant AgreementLabel = "significant"
)

// Discrepancy breakpoints on the 1–5 scale.
const (
	slightBreak      = 0.5
	moderateBreak    = 1.0
	significantBreak = 2.0
)

// maxDiscrepancy is the largest possible per-domain difference on the
// 1–5 scale.
const maxDiscrepancy = 4.0

// SignificantThreshold flags domains whose raters disagree enough to
// warrant follow-up.
const SignificantThreshold = significantBreak

// DomainComparison holds the two raters' scores for one domain and the
// bucketed disagreement between them.
type DomainComparison struct {
	A           float64
	B           float64
	Discrepancy float64 // |A - B|, in [0,4]
	Label       AgreementLabel
}

// Result is the outcome of triangulating two domain score sets.
type Result struct {
	PerDomain map[cognitive.Domain]DomainComparison
	Score     float64 // overall agreement in [0,1]; 1 = perfect agreement
}

// Triangulate compares two domain score sets over the domains present in
// both. The overall score is 1 − Σdiscrepancy / (n × 4): maximal
// disagreement across every common domain yields 0, perfect agreement
// yields 1. Symmetric in a and b. An empty intersection yields Score 0
// and an empty per-domain map; this is a defined degenerate case, not an
// error.
func Triangulate(a, b cognitive.DomainScoreSet) Result {
	perDomain := make(map[cognitive.Domain]DomainComparison)

	totalDiscrepancy := 0.0
	for d, av := range a {
		bv, ok := b[d]
		if !ok {
			continue
		}
		disc := av - bv
		if disc < 0 {
			disc = -disc
		}
		perDomain[d] = DomainComparison{
			A:           av,
			B:           bv,
			Discrepancy: disc,
			Label:       labelFor(disc),
		}
		totalDiscrepancy += disc
	}

	if len(perDomain) == 0 {
		return Result{PerDomain: perDomain, Score: 0}
	}

	score := 1 - totalDiscrepancy/(float64(len(perDomain))*maxDiscrepancy)
	return Result{PerDomain: perDomain, Score: score}
}

// FlaggedDomains returns the domains whose discrepancy meets the
// significant threshold, i.e. the raters' reports diverge enough that
// one of them is likely unreliable.
func (r Result) FlaggedDomains() []cognitive.Domain {
	var flagged []cognitive.Domain
	for _, d := range cognitive.AllDomains() {
		if cmp, ok := r.PerDomain[d]; ok && cmp.Discrepancy >= SignificantThreshold {
			flagged = append(flagged, d)
		}
	}
	return flagged
}

func labelFor(discrepancy float64) AgreementLabel {
	switch {
	case discrepancy < slightBreak:
		return LabelAgreement
	case discrepancy < moderateBreak:
		return LabelSlight
	case discrepancy < significantBreak:
		return LabelModerate
	default:
		return LabelSignificant
	}
}
