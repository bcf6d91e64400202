package category

import "github.com/learnaura/aura/internal/academic"

// Combined-score weights: cognitive assessment measures HOW a student
// learns, academic assessment measures WHAT they struggle with.
const (
	cognitiveWeight = 0.6
	academicWeight  = 0.4
)

// BlendAcademic combines cognitive-derived category scores (60%) with an
// academic component (40%). With no academic result the cognitive scores
// pass through unchanged.
func BlendAcademic(cog ScoreSet, acad *academic.Score) ScoreSet {
	if acad == nil {
		return cog
	}

	blended := make(ScoreSet, 8)
	for _, c := range AllCategories() {
		cogScore, ok := cog[c]
		if !ok {
			cogScore = NeutralScore
		}
		blended[c] = clampScore(cognitiveWeight*float64(cogScore) + academicWeight*academicComponent(c, acad.Percentage))
	}
	return blended
}

// academicComponent maps an academic percentage onto a single category's
// 0–100 scale. Low accuracy raises support-need categories, high accuracy
// raises fast_processor; modality and energy categories carry no academic
// signal and stay neutral.
func academicComponent(c Category, percentage float64) float64 {
	switch c {
	case CategorySlowProcessing, CategoryNeedsRepetition,
		CategorySensitiveLowConfidence, CategoryEasilyDistracted:
		return 100 - percentage
	case CategoryFastProcessor:
		return percentage
	default:
		return NeutralScore
	}
}
