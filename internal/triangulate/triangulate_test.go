package triangulate

import (
	"math"
	"testing"

	"github.com/learnaura/aura/internal/cognitive"
)

const epsilon = 0.001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestTriangulate_SingleDomainModerate(t *testing.T) {
	student := cognitive.DomainScoreSet{cognitive.DomainSelfEfficacy: 2.0}
	parent := cognitive.DomainScoreSet{cognitive.DomainSelfEfficacy: 3.8}

	res := Triangulate(student, parent)
	cmp, ok := res.PerDomain[cognitive.DomainSelfEfficacy]
	if !ok {
		t.Fatal("self_efficacy missing from comparison")
	}
	if !almostEqual(cmp.Discrepancy, 1.8) {
		t.Errorf("discrepancy = %f, want 1.8", cmp.Discrepancy)
	}
	if cmp.Label != LabelModerate {
		t.Errorf("label = %s, want %s", cmp.Label, LabelModerate)
	}
	// 1 - 1.8/4 = 0.55
	if !almostEqual(res.Score, 0.55) {
		t.Errorf("score = %f, want 0.55", res.Score)
	}
}

func TestTriangulate_SelfAgreement(t *testing.T) {
	set := cognitive.DomainScoreSet{
		cognitive.DomainProcessingSpeed:      2.3,
		cognitive.DomainWorkingMemory:        4.1,
		cognitive.DomainMotivationEngagement: 3.0,
	}
	res := Triangulate(set, set)
	if !almostEqual(res.Score, 1.0) {
		t.Errorf("score = %f, want 1.0", res.Score)
	}
	for d, cmp := range res.PerDomain {
		if cmp.Label != LabelAgreement {
			t.Errorf("%s: label = %s, want %s", d, cmp.Label, LabelAgreement)
		}
		if !almostEqual(cmp.Discrepancy, 0) {
			t.Errorf("%s: discrepancy = %f, want 0", d, cmp.Discrepancy)
		}
	}
}

func TestTriangulate_Symmetric(t *testing.T) {
	a := cognitive.DomainScoreSet{
		cognitive.DomainAttentionFocus: 1.5,
		cognitive.DomainLearningStyle:  4.0,
	}
	b := cognitive.DomainScoreSet{
		cognitive.DomainAttentionFocus: 4.5,
		cognitive.DomainLearningStyle:  3.5,
	}
	ab := Triangulate(a, b)
	ba := Triangulate(b, a)
	if !almostEqual(ab.Score, ba.Score) {
		t.Errorf("asymmetric scores: %f vs %f", ab.Score, ba.Score)
	}
	for d, cmp := range ab.PerDomain {
		rev, ok := ba.PerDomain[d]
		if !ok {
			t.Fatalf("%s missing from reversed comparison", d)
		}
		if !almostEqual(cmp.Discrepancy, rev.Discrepancy) || cmp.Label != rev.Label {
			t.Errorf("%s: %+v vs reversed %+v", d, cmp, rev)
		}
	}
}

func TestTriangulate_IgnoresUnsharedDomains(t *testing.T) {
	a := cognitive.DomainScoreSet{
		cognitive.DomainProcessingSpeed: 3.0,
		cognitive.DomainWorkingMemory:   2.0,
	}
	b := cognitive.DomainScoreSet{
		cognitive.DomainProcessingSpeed: 3.0,
		cognitive.DomainSelfEfficacy:    5.0,
	}
	res := Triangulate(a, b)
	if len(res.PerDomain) != 1 {
		t.Fatalf("got %d compared domains, want 1", len(res.PerDomain))
	}
	if !almostEqual(res.Score, 1.0) {
		t.Errorf("score = %f, want 1.0", res.Score)
	}
}

func TestTriangulate_EmptyIntersection(t *testing.T) {
	a := cognitive.DomainScoreSet{cognitive.DomainProcessingSpeed: 3.0}
	b := cognitive.DomainScoreSet{cognitive.DomainWorkingMemory: 3.0}
	res := Triangulate(a, b)
	if len(res.PerDomain) != 0 {
		t.Errorf("got %d compared domains, want 0", len(res.PerDomain))
	}
	if !almostEqual(res.Score, 0) {
		t.Errorf("score = %f, want 0", res.Score)
	}
}

func TestTriangulate_MaximalDisagreement(t *testing.T) {
	a := cognitive.DomainScoreSet{
		cognitive.DomainProcessingSpeed: 1.0,
		cognitive.DomainWorkingMemory:   5.0,
	}
	b := cognitive.DomainScoreSet{
		cognitive.DomainProcessingSpeed: 5.0,
		cognitive.DomainWorkingMemory:   1.0,
	}
	res := Triangulate(a, b)
	if !almostEqual(res.Score, 0) {
		t.Errorf("score = %f, want 0", res.Score)
	}
	for d, cmp := range res.PerDomain {
		if cmp.Label != LabelSignificant {
			t.Errorf("%s: label = %s, want %s", d, cmp.Label, LabelSignificant)
		}
	}
}

func TestLabelFor_Breakpoints(t *testing.T) {
	cases := []struct {
		discrepancy float64
		want        AgreementLabel
	}{
		{0, LabelAgreement},
		{0.49, LabelAgreement},
		{0.5, LabelSlight},
		{0.99, LabelSlight},
		{1.0, LabelModerate},
		{1.99, LabelModerate},
		{2.0, LabelSignificant},
		{4.0, LabelSignificant},
	}
	for _, c := range cases {
		if got := labelFor(c.discrepancy); got != c.want {
			t.Errorf("labelFor(%.2f) = %s, want %s", c.discrepancy, got, c.want)
		}
	}
}

func TestFlaggedDomains(t *testing.T) {
	a := cognitive.DomainScoreSet{
		cognitive.DomainProcessingSpeed: 1.0,
		cognitive.DomainWorkingMemory:   3.0,
		cognitive.DomainSelfEfficacy:    2.0,
	}
	b := cognitive.DomainScoreSet{
		cognitive.DomainProcessingSpeed: 4.0,
		cognitive.DomainWorkingMemory:   3.2,
		cognitive.DomainSelfEfficacy:    4.0,
	}
	flagged := Triangulate(a, b).FlaggedDomains()
	if len(flagged) != 2 {
		t.Fatalf("got %d flagged domains, want 2: %v", len(flagged), flagged)
	}
	want := map[cognitive.Domain]bool{
		cognitive.DomainProcessingSpeed: true,
		cognitive.DomainSelfEfficacy:    true,
	}
	for _, d := range flagged {
		if !want[d] {
			t.Errorf("unexpected flagged domain %s", d)
		}
	}
}
