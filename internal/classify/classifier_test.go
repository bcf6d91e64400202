package classify

import (
	"math"
	"testing"

	"github.com/learnaura/aura/internal/academic"
	"github.com/learnaura/aura/internal/category"
	"github.com/learnaura/aura/internal/triangulate"
)

const epsilon = 0.001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func scoresWith(overrides category.ScoreSet) category.ScoreSet {
	scores := category.BalancedProfile()
	for c, v := range overrides {
		scores[c] = v
	}
	return scores
}

func TestClassify_PrimaryNotInSecondary(t *testing.T) {
	scores := scoresWith(category.ScoreSet{
		category.CategorySlowProcessing: 80,
		category.CategoryVisualLearner:  70,
		category.CategoryFastProcessor:  65,
	})
	cls := Classify([]category.ScoreSet{scores}, nil, nil)
	if cls.Primary != category.CategorySlowProcessing {
		t.Errorf("primary = %s, want slow_processing", cls.Primary)
	}
	for _, s := range cls.Secondary {
		if s == cls.Primary {
			t.Errorf("primary %s repeated in secondary", s)
		}
	}
	if len(cls.Secondary) != 2 {
		t.Fatalf("got %d secondary, want 2", len(cls.Secondary))
	}
	if cls.Secondary[0] != category.CategoryVisualLearner || cls.Secondary[1] != category.CategoryFastProcessor {
		t.Errorf("secondary = %v, want [visual_learner fast_processor]", cls.Secondary)
	}
}

func TestClassify_SingleRaterConfidence(t *testing.T) {
	scores := scoresWith(category.ScoreSet{category.CategoryLogicalLearner: 75})
	cls := Classify([]category.ScoreSet{scores}, nil, nil)
	if !almostEqual(cls.Confidence, 0.75) {
		t.Errorf("confidence = %f, want 0.75", cls.Confidence)
	}
}

func TestClassify_TriangulatedConfidence(t *testing.T) {
	scores := scoresWith(category.ScoreSet{category.CategoryHighEnergy: 72})
	tri := &triangulate.Result{Score: 0.85}
	cls := Classify([]category.ScoreSet{scores, scores}, nil, tri)
	if !almostEqual(cls.Confidence, 0.85) {
		t.Errorf("confidence = %f, want 0.85", cls.Confidence)
	}
}

func TestClassify_ConfidenceFloor(t *testing.T) {
	scores := scoresWith(category.ScoreSet{category.CategoryHighEnergy: 72})
	tri := &triangulate.Result{Score: 0.2}
	cls := Classify([]category.ScoreSet{scores}, nil, tri)
	if !almostEqual(cls.Confidence, MinConfidence) {
		t.Errorf("confidence = %f, want %f", cls.Confidence, MinConfidence)
	}
}

func TestClassify_BalancedProfile(t *testing.T) {
	cls := Classify(nil, nil, nil)
	// Tie across the board resolves to the highest-priority category.
	if cls.Primary != category.CategorySlowProcessing {
		t.Errorf("primary = %s, want slow_processing", cls.Primary)
	}
	if len(cls.Secondary) != 0 {
		t.Errorf("secondary = %v, want empty", cls.Secondary)
	}
	if !almostEqual(cls.Confidence, MinConfidence) {
		t.Errorf("confidence = %f, want %f", cls.Confidence, MinConfidence)
	}
}

func TestClassify_AcademicBlendShiftsPrimary(t *testing.T) {
	// Cognitive scores alone favor fast_processor; a weak academic result
	// pulls support-need categories ahead.
	scores := scoresWith(category.ScoreSet{
		category.CategoryFastProcessor:  60,
		category.CategorySlowProcessing: 55,
	})
	acad := &academic.Score{Percentage: 10, Tier: 1, Confidence: 0.5}
	cls := Classify([]category.ScoreSet{scores}, acad, nil)
	// slow: 0.6*55 + 0.4*90 = 69; fast: 0.6*60 + 0.4*10 = 40
	if cls.Primary != category.CategorySlowProcessing {
		t.Errorf("primary = %s, want slow_processing", cls.Primary)
	}
}

func TestCombineRaters_MeanAndExclusion(t *testing.T) {
	student := scoresWith(category.ScoreSet{category.CategoryVisualLearner: 80})
	parent := category.ScoreSet{category.CategoryVisualLearner: 61}

	combined := CombineRaters([]category.ScoreSet{student, parent})
	// (80 + 61) / 2 = 70.5 rounds half-up to 71.
	if got := combined[category.CategoryVisualLearner]; got != 71 {
		t.Errorf("visual_learner = %d, want 71", got)
	}
	// Parent scored only one category; the rest use the student's values,
	// not a zero from the parent.
	if got := combined[category.CategorySlowProcessing]; got != 50 {
		t.Errorf("slow_processing = %d, want 50", got)
	}
}

func TestCombineRaters_NoRaterScoredCategory(t *testing.T) {
	combined := CombineRaters([]category.ScoreSet{
		{category.CategoryVisualLearner: 90},
	})
	if got := combined[category.CategoryHighEnergy]; got != category.NeutralScore {
		t.Errorf("high_energy = %d, want %d", got, category.NeutralScore)
	}
}

func TestCombineRaters_Empty(t *testing.T) {
	combined := CombineRaters(nil)
	for c, v := range combined {
		if v != category.NeutralScore {
			t.Errorf("%s = %d, want %d", c, v, category.NeutralScore)
		}
	}
}

func TestRank_TieBreakPriority(t *testing.T) {
	// All equal: rank must reproduce the priority order exactly.
	ranked := Rank(category.BalancedProfile())
	want := category.AllCategories()
	for i := range want {
		if ranked[i] != want[i] {
			t.Errorf("rank[%d] = %s, want %s", i, ranked[i], want[i])
		}
	}
}

func TestRank_ScoreBeatsPriority(t *testing.T) {
	scores := scoresWith(category.ScoreSet{category.CategoryFastProcessor: 51})
	ranked := Rank(scores)
	if ranked[0] != category.CategoryFastProcessor {
		t.Errorf("rank[0] = %s, want fast_processor", ranked[0])
	}
}

func TestClassify_ConfidenceBoundsProperty(t *testing.T) {
	inputs := []*triangulate.Result{nil, {Score: 0}, {Score: 0.3}, {Score: 0.75}, {Score: 1.0}}
	scores := scoresWith(category.ScoreSet{category.CategoryVisualLearner: 88})
	for _, tri := range inputs {
		cls := Classify([]category.ScoreSet{scores}, nil, tri)
		if cls.Confidence < 0.5 || cls.Confidence > 1.0 {
			t.Errorf("tri %+v: confidence %f outside [0.5,1.0]", tri, cls.Confidence)
		}
	}
}
