// Package strategy serves pre-authored teaching strategies keyed by
// learning-style category. Strategies are static: they are looked up from
// the classification result, never generated.
package strategy

import (
	"github.com/learnaura/aura/internal/category"
	"github.com/learnaura/aura/internal/classify"
)

// Strategy is one teaching approach recommended for a category.
type Strategy struct {
	ID          string
	Category    category.Category
	Label       string
	Description string
	Activities  []string
}

// byCategory is the package-level strategy registry.
var byCategory map[category.Category][]*Strategy

func init() {
	byCategory = make(map[category.Category][]*Strategy)
	for i := range seedStrategies {
		st := &seedStrategies[i]
		byCategory[st.Category] = append(byCategory[st.Category], st)
	}
}

// ForCategory returns the strategies for a single category.
func ForCategory(c category.Category) []*Strategy {
	return byCategory[c]
}

// ForClassification returns strategies for the primary category followed
// by each secondary, in assignment order.
func ForClassification(cls classify.Classification) []*Strategy {
	result := append([]*Strategy{}, byCategory[cls.Primary]...)
	for _, c := range cls.Secondary {
		result = append(result, byCategory[c]...)
	}
	return result
}

// All returns every strategy in the registry, in category priority order.
func All() []*Strategy {
	var result []*Strategy
	for _, c := range category.AllCategories() {
		result = append(result, byCategory[c]...)
	}
	return result
}
