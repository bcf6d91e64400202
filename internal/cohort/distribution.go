package cohort

import (
	"sort"

	"github.com/learnaura/aura/internal/category"
)

// Stats summarizes one category's score distribution across a cohort.
type Stats struct {
	Count  int
	Min    int
	Max    int
	Mean   float64
	Median float64
}

// Distribution computes per-category score statistics across a cohort's
// score sets. Subjects missing a category fall back to the neutral
// sentinel, matching how an unassessed subject would score. An empty
// cohort yields an empty map.
func Distribution(cohort []category.ScoreSet) map[category.Category]Stats {
	stats := make(map[category.Category]Stats)
	if len(cohort) == 0 {
		return stats
	}

	for _, c := range category.AllCategories() {
		scores := make([]int, 0, len(cohort))
		for _, set := range cohort {
			score, ok := set[c]
			if !ok {
				score = category.NeutralScore
			}
			scores = append(scores, score)
		}
		stats[c] = summarize(scores)
	}
	return stats
}

func summarize(scores []int) Stats {
	sorted := append([]int{}, scores...)
	sort.Ints(sorted)

	sum := 0
	for _, s := range sorted {
		sum += s
	}

	return Stats{
		Count:  len(sorted),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Mean:   float64(sum) / float64(len(sorted)),
		Median: median(sorted),
	}
}

func median(sorted []int) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return float64(sorted[n/2])
	}
	return float64(sorted[n/2-1]+sorted[n/2]) / 2
}
