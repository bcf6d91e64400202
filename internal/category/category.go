package category

// Category is one of the eight behavioral/learning-style labels, scored
// 0–100.
type Category string

const (
	CategorySlowProcessing         Category = "slow_processing"
	CategoryNeedsRepetition        Category = "needs_repetition"
	CategorySensitiveLowConfidence Category = "sensitive_low_confidence"
	CategoryEasilyDistracted       Category = "easily_distracted"
	CategoryHighEnergy             Category = "high_energy"
	CategoryVisualLearner          Category = "visual_learner"
	CategoryLogicalLearner         Category = "logical_learner"
	CategoryFastProcessor          Category = "fast_processor"
)

// AllCategories returns all categories in tie-break priority order:
// support-need categories rank ahead of advantage categories on exact
// score ties.
func AllCategories() []Category {
	return []Category{
		CategorySlowProcessing,
		CategoryNeedsRepetition,
		CategorySensitiveLowConfidence,
		CategoryEasilyDistracted,
		CategoryHighEnergy,
		CategoryVisualLearner,
		CategoryLogicalLearner,
		CategoryFastProcessor,
	}
}

// ValidCategory reports whether s names a known category.
func ValidCategory(s string) bool {
	switch Category(s) {
	case CategorySlowProcessing, CategoryNeedsRepetition, CategorySensitiveLowConfidence,
		CategoryEasilyDistracted, CategoryHighEnergy, CategoryVisualLearner,
		CategoryLogicalLearner, CategoryFastProcessor:
		return true
	}
	return false
}

// CategoryDisplayName returns a human-readable name for a category.
func CategoryDisplayName(c Category) string {
	switch c {
	case CategorySlowProcessing:
		return "Slow Processing"
	case CategoryNeedsRepetition:
		return "Needs Repetition"
	case CategorySensitiveLowConfidence:
		return "Sensitive / Low Confidence"
	case CategoryEasilyDistracted:
		return "Easily Distracted"
	case CategoryHighEnergy:
		return "High Energy"
	case CategoryVisualLearner:
		return "Visual Learner"
	case CategoryLogicalLearner:
		return "Logical Learner"
	case CategoryFastProcessor:
		return "Fast Processor"
	default:
		return string(c)
	}
}

// ScoreSet maps each category to an integer score in [0,100].
type ScoreSet map[Category]int
