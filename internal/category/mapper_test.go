package category

import (
	"testing"

	"github.com/learnaura/aura/internal/cognitive"
)

func allDomainsAt(v float64) cognitive.DomainScoreSet {
	set := make(cognitive.DomainScoreSet, 6)
	for _, d := range cognitive.AllDomains() {
		set[d] = v
	}
	return set
}

func TestMapToCategoryScores_UniformHigh(t *testing.T) {
	scores := MapToCategoryScores(allDomainsAt(4.0))
	want := ScoreSet{
		CategorySlowProcessing:         31,
		CategoryNeedsRepetition:        31,
		CategorySensitiveLowConfidence: 31,
		CategoryEasilyDistracted:       31,
		CategoryHighEnergy:             43,
		CategoryVisualLearner:          50,
		CategoryLogicalLearner:         60,
		CategoryFastProcessor:          50,
	}
	for c, w := range want {
		if got := scores[c]; got != w {
			t.Errorf("%s = %d, want %d", c, got, w)
		}
	}
}

func TestMapToCategoryScores_UniformMidpoint(t *testing.T) {
	scores := MapToCategoryScores(allDomainsAt(3.0))
	want := ScoreSet{
		CategorySlowProcessing:         42,
		CategoryNeedsRepetition:        42,
		CategorySensitiveLowConfidence: 42,
		CategoryEasilyDistracted:       42,
		CategoryHighEnergy:             30,
		CategoryVisualLearner:          38,
		CategoryLogicalLearner:         45,
		CategoryFastProcessor:          38,
	}
	for c, w := range want {
		if got := scores[c]; got != w {
			t.Errorf("%s = %d, want %d", c, got, w)
		}
	}
}

func TestMapToCategoryScores_ExtremeLow(t *testing.T) {
	scores := MapToCategoryScores(allDomainsAt(1.0))
	// Support-need categories dominate when every domain bottoms out.
	want := ScoreSet{
		CategorySlowProcessing:         74,
		CategoryNeedsRepetition:        71,
		CategorySensitiveLowConfidence: 71,
		CategoryEasilyDistracted:       71,
		CategoryHighEnergy:             10,
		CategoryVisualLearner:          13,
		CategoryLogicalLearner:         15,
		CategoryFastProcessor:          13,
	}
	for c, w := range want {
		if got := scores[c]; got != w {
			t.Errorf("%s = %d, want %d", c, got, w)
		}
	}
}

func TestMapToCategoryScores_ExtremeHigh(t *testing.T) {
	scores := MapToCategoryScores(allDomainsAt(5.0))
	want := ScoreSet{
		CategorySlowProcessing:         25,
		CategoryNeedsRepetition:        25,
		CategorySensitiveLowConfidence: 25,
		CategoryEasilyDistracted:       25,
		CategoryHighEnergy:             70,
		CategoryVisualLearner:          90,
		CategoryLogicalLearner:         70,
		CategoryFastProcessor:          90,
	}
	for c, w := range want {
		if got := scores[c]; got != w {
			t.Errorf("%s = %d, want %d", c, got, w)
		}
	}
}

func TestMapToCategoryScores_HighEnergyCombined(t *testing.T) {
	// Low attention plus high motivation stacks both deviations.
	set := allDomainsAt(3.0)
	set[cognitive.DomainAttentionFocus] = 1.0
	set[cognitive.DomainMotivationEngagement] = 5.0
	scores := MapToCategoryScores(set)
	// 50 + 1.5/2.5*20 + 1.5/1.5*20 = 82
	if got := scores[CategoryHighEnergy]; got != 82 {
		t.Errorf("high_energy = %d, want 82", got)
	}
}

func TestMapToCategoryScores_DistractedLowAttentionHighMotivation(t *testing.T) {
	set := allDomainsAt(3.0)
	set[cognitive.DomainAttentionFocus] = 1.5
	set[cognitive.DomainMotivationEngagement] = 4.0
	scores := MapToCategoryScores(set)
	// Motivated branch: 1.0/2.5*40 + 40 = 56
	if got := scores[CategoryEasilyDistracted]; got != 56 {
		t.Errorf("easily_distracted = %d, want 56", got)
	}
}

func TestMapToCategoryScores_MissingDomainUsesMidpoint(t *testing.T) {
	partial := cognitive.DomainScoreSet{
		cognitive.DomainProcessingSpeed: 1.0,
	}
	scores := MapToCategoryScores(partial)
	if got := scores[CategorySlowProcessing]; got != 74 {
		t.Errorf("slow_processing = %d, want 74", got)
	}
	// Learning style absent, so modality categories score at midpoint.
	if got := scores[CategoryVisualLearner]; got != 38 {
		t.Errorf("visual_learner = %d, want 38", got)
	}
	if got := scores[CategoryLogicalLearner]; got != 45 {
		t.Errorf("logical_learner = %d, want 45", got)
	}
}

func TestMapToCategoryScores_EmptyIsBalanced(t *testing.T) {
	for _, set := range []cognitive.DomainScoreSet{nil, {}} {
		scores := MapToCategoryScores(set)
		if len(scores) != 8 {
			t.Fatalf("got %d categories, want 8", len(scores))
		}
		for c, v := range scores {
			if v != NeutralScore {
				t.Errorf("%s = %d, want %d", c, v, NeutralScore)
			}
		}
	}
}

func TestMapToCategoryScores_RangeProperty(t *testing.T) {
	// Every category score stays in [0,100] across the whole input grid.
	for v := 1.0; v <= 5.0; v += 0.25 {
		for c, score := range MapToCategoryScores(allDomainsAt(v)) {
			if score < 0 || score > 100 {
				t.Errorf("input %.2f: %s = %d outside [0,100]", v, c, score)
			}
		}
	}
}

func TestMapToCategoryScores_ContinuousAtThresholds(t *testing.T) {
	const eps = 0.0001
	cases := []struct {
		name      string
		category  Category
		threshold float64
	}{
		{"slow_processing at 2.5", CategorySlowProcessing, 2.5},
		{"needs_repetition at 2.5", CategoryNeedsRepetition, 2.5},
		{"fast_processor at 4.0", CategoryFastProcessor, 4.0},
		{"visual_learner at 4.0", CategoryVisualLearner, 4.0},
	}
	for _, c := range cases {
		below := MapToCategoryScores(allDomainsAt(c.threshold - eps))[c.category]
		at := MapToCategoryScores(allDomainsAt(c.threshold))[c.category]
		if below != at {
			t.Errorf("%s: score jumps from %d to %d across the threshold", c.name, below, at)
		}
	}
}
