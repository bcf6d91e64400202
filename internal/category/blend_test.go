package category

import (
	"testing"

	"github.com/learnaura/aura/internal/academic"
)

func TestBlendAcademic_NilPassthrough(t *testing.T) {
	cog := ScoreSet{CategorySlowProcessing: 74, CategoryFastProcessor: 13}
	blended := BlendAcademic(cog, nil)
	if len(blended) != len(cog) {
		t.Fatalf("got %d categories, want %d", len(blended), len(cog))
	}
	for c, v := range cog {
		if blended[c] != v {
			t.Errorf("%s = %d, want %d", c, blended[c], v)
		}
	}
}

func TestBlendAcademic_Weighting(t *testing.T) {
	cog := BalancedProfile()
	acad := &academic.Score{Percentage: 100, Tier: 5, Confidence: 0.8}
	blended := BlendAcademic(cog, acad)

	// Perfect accuracy drives support-need categories down and
	// fast_processor up; modality categories stay put.
	if got := blended[CategorySlowProcessing]; got != 30 {
		t.Errorf("slow_processing = %d, want 30", got)
	}
	if got := blended[CategoryNeedsRepetition]; got != 30 {
		t.Errorf("needs_repetition = %d, want 30", got)
	}
	if got := blended[CategoryFastProcessor]; got != 70 {
		t.Errorf("fast_processor = %d, want 70", got)
	}
	if got := blended[CategoryVisualLearner]; got != 50 {
		t.Errorf("visual_learner = %d, want 50", got)
	}
	if got := blended[CategoryHighEnergy]; got != 50 {
		t.Errorf("high_energy = %d, want 50", got)
	}
}

func TestBlendAcademic_LowAccuracyRaisesSupportNeed(t *testing.T) {
	cog := ScoreSet{
		CategorySlowProcessing: 31,
		CategoryFastProcessor:  50,
	}
	acad := &academic.Score{Percentage: 20, Tier: 2, Confidence: 0.65}
	blended := BlendAcademic(cog, acad)

	// 0.6*31 + 0.4*80 = 50.6 -> 51
	if got := blended[CategorySlowProcessing]; got != 51 {
		t.Errorf("slow_processing = %d, want 51", got)
	}
	// 0.6*50 + 0.4*20 = 38
	if got := blended[CategoryFastProcessor]; got != 38 {
		t.Errorf("fast_processor = %d, want 38", got)
	}
}

func TestBlendAcademic_MissingCategoryDefaultsNeutral(t *testing.T) {
	acad := &academic.Score{Percentage: 50, Tier: 3, Confidence: 0.7}
	blended := BlendAcademic(ScoreSet{}, acad)
	if len(blended) != 8 {
		t.Fatalf("got %d categories, want 8", len(blended))
	}
	// 0.6*50 + 0.4*50 = 50 everywhere at the fixed point.
	for c, v := range blended {
		if v != NeutralScore {
			t.Errorf("%s = %d, want %d", c, v, NeutralScore)
		}
	}
}

func TestBlendAcademic_StaysInRange(t *testing.T) {
	for _, pct := range []float64{0, 25, 50, 75, 100} {
		acad := &academic.Score{Percentage: pct, Tier: academic.TierFor(pct), Confidence: 0.7}
		for _, base := range []int{0, 50, 100} {
			cog := make(ScoreSet, 8)
			for _, c := range AllCategories() {
				cog[c] = base
			}
			for c, v := range BlendAcademic(cog, acad) {
				if v < 0 || v > 100 {
					t.Errorf("pct %.0f base %d: %s = %d outside [0,100]", pct, base, c, v)
				}
			}
		}
	}
}
