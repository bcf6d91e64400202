package classify

import "github.com/learnaura/aura/internal/category"

// DefaultBucketThreshold is the minimum combined score for bucket
// membership. A subject can belong to several buckets at once.
const DefaultBucketThreshold = 60

// AssignedBuckets returns every category scoring at or above threshold,
// in rank order. Pass threshold <= 0 to use the default.
func AssignedBuckets(scores category.ScoreSet, threshold int) []category.Category {
	if threshold <= 0 {
		threshold = DefaultBucketThreshold
	}

	var buckets []category.Category
	for _, c := range Rank(scores) {
		if scores[c] >= threshold {
			buckets = append(buckets, c)
		}
	}
	return buckets
}
