package classify

import (
	"testing"

	"github.com/learnaura/aura/internal/category"
)

func TestAssignedBuckets_ThresholdBoundary(t *testing.T) {
	scores := scoresWith(category.ScoreSet{
		category.CategorySlowProcessing: 60,
		category.CategoryVisualLearner:  59,
		category.CategoryFastProcessor:  75,
	})
	buckets := AssignedBuckets(scores, 0)
	if len(buckets) != 2 {
		t.Fatalf("got %d buckets, want 2: %v", len(buckets), buckets)
	}
	// Rank order: fast_processor 75, then slow_processing 60.
	if buckets[0] != category.CategoryFastProcessor || buckets[1] != category.CategorySlowProcessing {
		t.Errorf("buckets = %v, want [fast_processor slow_processing]", buckets)
	}
}

func TestAssignedBuckets_CustomThreshold(t *testing.T) {
	scores := scoresWith(category.ScoreSet{category.CategoryHighEnergy: 45})
	if got := AssignedBuckets(scores, 45); len(got) != 8 {
		// Threshold 45 admits the neutral 50s as well.
		t.Errorf("got %d buckets, want 8: %v", len(got), got)
	}
	if got := AssignedBuckets(scores, 80); len(got) != 0 {
		t.Errorf("got %v, want none above 80", got)
	}
}

func TestAssignedBuckets_EmptyBelowThreshold(t *testing.T) {
	scores := category.BalancedProfile()
	if got := AssignedBuckets(scores, 0); len(got) != 0 {
		t.Errorf("balanced profile assigned buckets %v, want none", got)
	}
}

func TestAssignedBuckets_MultiMembership(t *testing.T) {
	scores := scoresWith(category.ScoreSet{
		category.CategorySlowProcessing:  70,
		category.CategoryNeedsRepetition: 70,
		category.CategoryVisualLearner:   82,
	})
	buckets := AssignedBuckets(scores, 0)
	if len(buckets) != 3 {
		t.Fatalf("got %d buckets, want 3: %v", len(buckets), buckets)
	}
	// Equal scores fall back to priority order behind the top score.
	want := []category.Category{
		category.CategoryVisualLearner,
		category.CategorySlowProcessing,
		category.CategoryNeedsRepetition,
	}
	for i := range want {
		if buckets[i] != want[i] {
			t.Errorf("buckets[%d] = %s, want %s", i, buckets[i], want[i])
		}
	}
}
