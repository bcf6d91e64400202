// Package cohort provides class-level analytics over individual
// assessment results.
package cohort

// Group is a performance-based teaching group.
type Group string

const (
	GroupSupport  Group = "support"
	GroupCore     Group = "core"
	GroupAdvanced Group = "advanced"
)

// Group breakpoints on the academic percentage scale.
const (
	supportCeiling = 50.0
	coreCeiling    = 75.0
)

// GroupFor assigns a student to a teaching group from their average
// academic percentage.
func GroupFor(avgPercentage float64) Group {
	switch {
	case avgPercentage < supportCeiling:
		return GroupSupport
	case avgPercentage < coreCeiling:
		return GroupCore
	default:
		return GroupAdvanced
	}
}

// GroupDisplayName returns a human-readable name for a group.
func GroupDisplayName(g Group) string {
	switch g {
	case GroupSupport:
		return "Support"
	case GroupCore:
		return "Core"
	case GroupAdvanced:
		return "Advanced"
	default:
		return string(g)
	}
}
