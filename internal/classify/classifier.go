// Package classify ranks a subject's category scores into a primary and
// up to two secondary assignments.
package classify

import (
	"math"
	"sort"
	"time"

	"github.com/learnaura/aura/internal/academic"
	"github.com/learnaura/aura/internal/category"
	"github.com/learnaura/aura/internal/triangulate"
)

const (
	// MinConfidence is the system-wide confidence floor.
	MinConfidence = 0.5
	// singleRaterConfidence applies when only one rater is available:
	// nothing to triangulate, moderate trust.
	singleRaterConfidence = 0.75
)

// maxSecondary caps the number of secondary category assignments.
const maxSecondary = 2

// Classification assigns a subject to a primary category and up to two
// secondary categories. Primary never appears in Secondary; Secondary is
// ordered descending by combined category score.
type Classification struct {
	Primary    category.Category
	Secondary  []category.Category
	Confidence float64 // in [0.5, 1.0], monotonic in rater agreement
	Timestamp  time.Time
}

// Classify combines the raters' category scores, optionally blends in
// academic performance, and ranks the eight categories. acad and tri may
// be nil: no academic result skips the blend, and no triangulation result
// (single rater) defaults confidence to 0.75.
func Classify(byRater []category.ScoreSet, acad *academic.Score, tri *triangulate.Result) Classification {
	combined := CombineRaters(byRater)
	combined = category.BlendAcademic(combined, acad)
	ranked := Rank(combined)

	cls := Classification{
		Primary:   ranked[0],
		Timestamp: time.Now().UTC(),
	}

	// The all-50 profile means "never assessed": no secondary assignment
	// is defensible and confidence is forced to the floor.
	if isBalanced(combined) {
		cls.Confidence = MinConfidence
		return cls
	}

	cls.Secondary = ranked[1 : 1+maxSecondary]
	if tri != nil {
		cls.Confidence = math.Max(MinConfidence, tri.Score)
	} else {
		cls.Confidence = singleRaterConfidence
	}
	return cls
}

// CombineRaters averages each category across raters. A rater missing a
// category is excluded from that category's mean, not treated as zero; a
// category no rater scored falls back to the neutral sentinel. An empty
// rater list yields the balanced profile.
func CombineRaters(byRater []category.ScoreSet) category.ScoreSet {
	if len(byRater) == 0 {
		return category.BalancedProfile()
	}

	combined := make(category.ScoreSet, 8)
	for _, c := range category.AllCategories() {
		sum, count := 0, 0
		for _, scores := range byRater {
			if v, ok := scores[c]; ok {
				sum += v
				count++
			}
		}
		if count == 0 {
			combined[c] = category.NeutralScore
			continue
		}
		combined[c] = int(math.Floor(float64(sum)/float64(count) + 0.5))
	}
	return combined
}

// Rank returns all eight categories sorted descending by score. Exact
// ties fall back to the fixed priority order from AllCategories, which
// ranks support-need categories ahead of advantage categories.
func Rank(scores category.ScoreSet) []category.Category {
	ranked := category.AllCategories()
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})
	return ranked
}

func isBalanced(scores category.ScoreSet) bool {
	for _, c := range category.AllCategories() {
		if scores[c] != category.NeutralScore {
			return false
		}
	}
	return true
}
