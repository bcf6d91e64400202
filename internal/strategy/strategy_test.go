package strategy

import (
	"testing"

	"github.com/learnaura/aura/internal/category"
	"github.com/learnaura/aura/internal/classify"
)

func TestForCategory_EveryCategoryCovered(t *testing.T) {
	for _, c := range category.AllCategories() {
		strategies := ForCategory(c)
		if len(strategies) == 0 {
			t.Errorf("no strategies registered for %s", c)
		}
		for _, st := range strategies {
			if st.Category != c {
				t.Errorf("strategy %s registered under %s but claims %s", st.ID, c, st.Category)
			}
			if st.Label == "" || st.Description == "" {
				t.Errorf("strategy %s has empty label or description", st.ID)
			}
			if len(st.Activities) == 0 {
				t.Errorf("strategy %s has no activities", st.ID)
			}
		}
	}
}

func TestForClassification_PrimaryFirst(t *testing.T) {
	cls := classify.Classification{
		Primary: category.CategorySlowProcessing,
		Secondary: []category.Category{
			category.CategoryVisualLearner,
			category.CategoryNeedsRepetition,
		},
	}
	strategies := ForClassification(cls)

	primaryCount := len(ForCategory(category.CategorySlowProcessing))
	for i, st := range strategies[:primaryCount] {
		if st.Category != category.CategorySlowProcessing {
			t.Errorf("strategy %d = %s, want primary first", i, st.Category)
		}
	}

	wantTotal := primaryCount +
		len(ForCategory(category.CategoryVisualLearner)) +
		len(ForCategory(category.CategoryNeedsRepetition))
	if len(strategies) != wantTotal {
		t.Errorf("got %d strategies, want %d", len(strategies), wantTotal)
	}
}

func TestForClassification_NoSecondary(t *testing.T) {
	cls := classify.Classification{Primary: category.CategoryHighEnergy}
	strategies := ForClassification(cls)
	if len(strategies) != len(ForCategory(category.CategoryHighEnergy)) {
		t.Errorf("got %d strategies, want primary only", len(strategies))
	}
}

func TestAll_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, st := range All() {
		if st.ID == "" {
			t.Error("strategy with empty ID")
		}
		if seen[st.ID] {
			t.Errorf("duplicate strategy ID %s", st.ID)
		}
		seen[st.ID] = true
	}
}
