package cognitive

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 0.001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestReverseScore_Involutive(t *testing.T) {
	for v := MinLikert; v <= MaxLikert; v++ {
		if got := ReverseScore(ReverseScore(v)); got != v {
			t.Errorf("ReverseScore(ReverseScore(%d)) = %d, want %d", v, got, v)
		}
	}
}

func TestReverseScore_Values(t *testing.T) {
	cases := map[int]int{1: 5, 2: 4, 3: 3, 4: 2, 5: 1}
	for in, want := range cases {
		if got := ReverseScore(in); got != want {
			t.Errorf("ReverseScore(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestDomainAverage_SingleDomain(t *testing.T) {
	responses := []RawResponse{
		{Question: 1, Domain: DomainProcessingSpeed, Value: 4},
		{Question: 2, Domain: DomainProcessingSpeed, Value: 3},
		{Question: 3, Domain: DomainProcessingSpeed, Value: 5},
	}
	scores, err := DomainAverage(responses)
	if err != nil {
		t.Fatalf("DomainAverage returned error: %v", err)
	}
	if got := scores[DomainProcessingSpeed]; !almostEqual(got, 4.0) {
		t.Errorf("average = %f, want 4.0", got)
	}
}

func TestDomainAverage_ReverseScoring(t *testing.T) {
	// Value 5 with the reverse flag scores as 1.
	responses := []RawResponse{
		{Question: 1, Domain: DomainSelfEfficacy, Value: 5, Reverse: true},
		{Question: 2, Domain: DomainSelfEfficacy, Value: 1, Reverse: true},
	}
	scores, err := DomainAverage(responses)
	if err != nil {
		t.Fatalf("DomainAverage returned error: %v", err)
	}
	// (1 + 5) / 2 = 3.0 after reversal.
	if got := scores[DomainSelfEfficacy]; !almostEqual(got, 3.0) {
		t.Errorf("average = %f, want 3.0", got)
	}
}

func TestDomainAverage_RoundsToTwoDecimals(t *testing.T) {
	responses := []RawResponse{
		{Question: 1, Domain: DomainWorkingMemory, Value: 1},
		{Question: 2, Domain: DomainWorkingMemory, Value: 2},
		{Question: 3, Domain: DomainWorkingMemory, Value: 2},
	}
	scores, err := DomainAverage(responses)
	if err != nil {
		t.Fatalf("DomainAverage returned error: %v", err)
	}
	// 5/3 = 1.666... rounds to 1.67.
	if got := scores[DomainWorkingMemory]; !almostEqual(got, 1.67) {
		t.Errorf("average = %f, want 1.67", got)
	}
}

func TestDomainAverage_OmitsUnansweredDomains(t *testing.T) {
	responses := []RawResponse{
		{Question: 1, Domain: DomainAttentionFocus, Value: 2},
	}
	scores, err := DomainAverage(responses)
	if err != nil {
		t.Fatalf("DomainAverage returned error: %v", err)
	}
	if len(scores) != 1 {
		t.Errorf("got %d domains, want 1", len(scores))
	}
	if _, ok := scores[DomainProcessingSpeed]; ok {
		t.Error("unanswered domain should be absent, not zero")
	}
}

func TestDomainAverage_EmptyInput(t *testing.T) {
	// An empty response list is a defined sentinel, not an error.
	scores, err := DomainAverage(nil)
	if err != nil {
		t.Fatalf("DomainAverage returned error for empty input: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("got %d domains, want 0", len(scores))
	}
}

func TestDomainAverage_RejectsOutOfRangeValue(t *testing.T) {
	for _, v := range []int{0, 6, -1, 100} {
		_, err := DomainAverage([]RawResponse{
			{Question: 1, Domain: DomainLearningStyle, Value: v},
		})
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("value %d: got %v, want *ValidationError", v, err)
		}
	}
}

func TestDomainAverage_RejectsUnknownDomain(t *testing.T) {
	_, err := DomainAverage([]RawResponse{
		{Question: 1, Domain: Domain("telepathy"), Value: 3},
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %v, want *ValidationError", err)
	}
}

func TestDomainAverage_BoundsProperty(t *testing.T) {
	// Any well-formed input yields averages within [1,5].
	responses := []RawResponse{
		{Question: 1, Domain: DomainMotivationEngagement, Value: 1},
		{Question: 2, Domain: DomainMotivationEngagement, Value: 5, Reverse: true},
		{Question: 3, Domain: DomainMotivationEngagement, Value: 1, Reverse: true},
		{Question: 4, Domain: DomainMotivationEngagement, Value: 5},
	}
	scores, err := DomainAverage(responses)
	if err != nil {
		t.Fatalf("DomainAverage returned error: %v", err)
	}
	for d, v := range scores {
		if v < MinLikert || v > MaxLikert {
			t.Errorf("domain %s average %f outside [1,5]", d, v)
		}
	}
}

func TestAllDomains_CountAndValidity(t *testing.T) {
	domains := AllDomains()
	if len(domains) != 6 {
		t.Fatalf("got %d domains, want 6", len(domains))
	}
	for _, d := range domains {
		if !ValidDomain(string(d)) {
			t.Errorf("AllDomains contains invalid domain %q", d)
		}
	}
}
