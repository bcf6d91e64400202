package cohort

import (
	"math"
	"testing"

	"github.com/learnaura/aura/internal/category"
)

const epsilon = 0.001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestGroupFor_Breakpoints(t *testing.T) {
	cases := []struct {
		percentage float64
		want       Group
	}{
		{0, GroupSupport},
		{49.9, GroupSupport},
		{50, GroupCore},
		{74.9, GroupCore},
		{75, GroupAdvanced},
		{100, GroupAdvanced},
	}
	for _, c := range cases {
		if got := GroupFor(c.percentage); got != c.want {
			t.Errorf("GroupFor(%.1f) = %s, want %s", c.percentage, got, c.want)
		}
	}
}

func TestDistribution_Stats(t *testing.T) {
	cohort := []category.ScoreSet{
		{category.CategoryVisualLearner: 40},
		{category.CategoryVisualLearner: 60},
		{category.CategoryVisualLearner: 80},
		{category.CategoryVisualLearner: 90},
	}
	stats := Distribution(cohort)[category.CategoryVisualLearner]
	if stats.Count != 4 {
		t.Errorf("count = %d, want 4", stats.Count)
	}
	if stats.Min != 40 || stats.Max != 90 {
		t.Errorf("min/max = %d/%d, want 40/90", stats.Min, stats.Max)
	}
	if !almostEqual(stats.Mean, 67.5) {
		t.Errorf("mean = %f, want 67.5", stats.Mean)
	}
	// Even count: median is the mean of the two middle values.
	if !almostEqual(stats.Median, 70) {
		t.Errorf("median = %f, want 70", stats.Median)
	}
}

func TestDistribution_OddMedian(t *testing.T) {
	cohort := []category.ScoreSet{
		{category.CategoryFastProcessor: 10},
		{category.CategoryFastProcessor: 90},
		{category.CategoryFastProcessor: 30},
	}
	stats := Distribution(cohort)[category.CategoryFastProcessor]
	if !almostEqual(stats.Median, 30) {
		t.Errorf("median = %f, want 30", stats.Median)
	}
}

func TestDistribution_MissingCategoryNeutral(t *testing.T) {
	cohort := []category.ScoreSet{
		{category.CategoryVisualLearner: 80},
	}
	stats := Distribution(cohort)[category.CategoryHighEnergy]
	if stats.Min != category.NeutralScore || stats.Max != category.NeutralScore {
		t.Errorf("min/max = %d/%d, want neutral %d", stats.Min, stats.Max, category.NeutralScore)
	}
}

func TestDistribution_CoversAllCategories(t *testing.T) {
	stats := Distribution([]category.ScoreSet{category.BalancedProfile()})
	if len(stats) != 8 {
		t.Errorf("got %d categories, want 8", len(stats))
	}
}

func TestDistribution_EmptyCohort(t *testing.T) {
	stats := Distribution(nil)
	if len(stats) != 0 {
		t.Errorf("got %d categories, want 0", len(stats))
	}
}
