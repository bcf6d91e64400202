package cognitive

// Domain is one of the six cognitive dimensions measured by the Likert
// questionnaire. Each domain is scored on a 1–5 scale.
type Domain string

const (
	DomainProcessingSpeed      Domain = "processing_speed"
	DomainWorkingMemory        Domain = "working_memory"
	DomainAttentionFocus       Domain = "attention_focus"
	DomainLearningStyle        Domain = "learning_style"
	DomainSelfEfficacy         Domain = "self_efficacy"
	DomainMotivationEngagement Domain = "motivation_engagement"
)

// AllDomains returns all domains in display order.
func AllDomains() []Domain {
	return []Domain{
		DomainProcessingSpeed,
		DomainWorkingMemory,
		DomainAttentionFocus,
		DomainLearningStyle,
		DomainSelfEfficacy,
		DomainMotivationEngagement,
	}
}

// ValidDomain reports whether s names a known domain.
func ValidDomain(s string) bool {
	switch Domain(s) {
	case DomainProcessingSpeed, DomainWorkingMemory, DomainAttentionFocus,
		DomainLearningStyle, DomainSelfEfficacy, DomainMotivationEngagement:
		return true
	}
	return false
}

// DomainDisplayName returns a human-readable name for a domain.
func DomainDisplayName(d Domain) string {
	switch d {
	case DomainProcessingSpeed:
		return "Processing Speed"
	case DomainWorkingMemory:
		return "Working Memory"
	case DomainAttentionFocus:
		return "Attention & Focus"
	case DomainLearningStyle:
		return "Learning Style"
	case DomainSelfEfficacy:
		return "Self-Efficacy"
	case DomainMotivationEngagement:
		return "Motivation & Engagement"
	default:
		return string(d)
	}
}

// Rater identifies the source of a domain score set.
type Rater string

const (
	RaterStudent Rater = "student"
	RaterParent  Rater = "parent"
)
