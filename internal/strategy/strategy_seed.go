package strategy

import "github.com/learnaura/aura/internal/category"

// seedStrategies defines the built-in strategy catalog: two strategies
// per category, sixteen in all.
var seedStrategies = []Strategy{
	// Slow processing (2)
	{
		ID:          "slow-extra-time",
		Category:    category.CategorySlowProcessing,
		Label:       "Extra time and step-by-step instructions",
		Description: "Allow more time per task and break instructions into single explicit steps so processing pace never blocks comprehension.",
		Activities:  []string{"Extended time on exercises", "One-step-at-a-time worked examples", "Written instructions to revisit"},
	},
	{
		ID:          "slow-chunked-tasks",
		Category:    category.CategorySlowProcessing,
		Label:       "Chunked tasks with checkpoints",
		Description: "Split long tasks into short chunks with a check-in after each, keeping cognitive load low and progress visible.",
		Activities:  []string{"Three-part task cards", "Mid-task teacher check-ins", "Progress checklists"},
	},

	// Needs repetition (2)
	{
		ID:          "repeat-spaced-practice",
		Category:    category.CategoryNeedsRepetition,
		Label:       "Multiple practice rounds and regular review",
		Description: "Revisit the same concept several times across the week; retention builds through spaced exposure rather than single long sessions.",
		Activities:  []string{"Daily five-minute reviews", "Cumulative weekly quizzes", "Flashcard rotations"},
	},
	{
		ID:          "repeat-varied-formats",
		Category:    category.CategoryNeedsRepetition,
		Label:       "Same concept, varied formats",
		Description: "Repeat material in different forms (spoken, written, drawn) so each pass reinforces rather than bores.",
		Activities:  []string{"Explain-it-back pairs", "Concept re-drawing", "Teach a younger student"},
	},

	// Sensitive / low confidence (2)
	{
		ID:          "confidence-low-stakes-success",
		Category:    category.CategorySensitiveLowConfidence,
		Label:       "Encouragement and early wins",
		Description: "Open with tasks the student will succeed at and name the success explicitly; confidence grows from evidence, not reassurance alone.",
		Activities:  []string{"Warm-up tasks below current level", "Specific praise for method, not talent", "Private rather than public correction"},
	},
	{
		ID:          "confidence-safe-errors",
		Category:    category.CategorySensitiveLowConfidence,
		Label:       "Normalize errors",
		Description: "Treat mistakes as expected steps; review errors without grades attached so risk-taking stays safe.",
		Activities:  []string{"Ungraded first attempts", "Class error-of-the-day discussion", "Redo opportunities by default"},
	},

	// Easily distracted (2)
	{
		ID:          "distract-minimal-environment",
		Category:    category.CategoryEasilyDistracted,
		Label:       "Minimize distractions, maintain focus",
		Description: "Reduce ambient stimulation at the workspace and keep materials for the current task only within reach.",
		Activities:  []string{"Front-row or quiet-zone seating", "Clear-desk policy during tasks", "Noise-reducing headphones"},
	},
	{
		ID:          "distract-short-bursts",
		Category:    category.CategoryEasilyDistracted,
		Label:       "Short timed work bursts",
		Description: "Work in brief, timed intervals with explicit refocus cues; sustained attention is built gradually, not demanded.",
		Activities:  []string{"Ten-minute timer cycles", "Visual focus cue cards", "Movement reset between bursts"},
	},

	// High energy (2)
	{
		ID:          "energy-hands-on",
		Category:    category.CategoryHighEnergy,
		Label:       "Hands-on activities and movement breaks",
		Description: "Channel physical energy into the learning itself: manipulation, building, and scheduled movement keep engagement high.",
		Activities:  []string{"Manipulatives and lab stations", "Stand-up problem solving", "Movement breaks between blocks"},
	},
	{
		ID:          "energy-station-rotation",
		Category:    category.CategoryHighEnergy,
		Label:       "Station rotation",
		Description: "Rotate through short activity stations so no single posture or task outlasts the student's energy cycle.",
		Activities:  []string{"Four-station circuits", "Role rotation in group work", "Active recall relay games"},
	},

	// Visual learner (2)
	{
		ID:          "visual-diagrams",
		Category:    category.CategoryVisualLearner,
		Label:       "Visual diagrams and color-coded charts",
		Description: "Present structure visually before verbally: diagrams, charts, and color carry the organization of the material.",
		Activities:  []string{"Color-coded notes", "Diagram-first explanations", "Anchor charts on the wall"},
	},
	{
		ID:          "visual-mind-maps",
		Category:    category.CategoryVisualLearner,
		Label:       "Mind maps and graphic organizers",
		Description: "Have the student build their own visual summaries; producing the image fixes the relations better than viewing one.",
		Activities:  []string{"Mind-map chapter summaries", "Flowchart procedures", "Sketch-note vocabulary"},
	},

	// Logical learner (2)
	{
		ID:          "logical-sequences",
		Category:    category.CategoryLogicalLearner,
		Label:       "Logical sequences and problem-solving",
		Description: "Lead with the why: rules, patterns, and cause-effect chains give this student the structure narrative alone doesn't.",
		Activities:  []string{"Derive-the-rule exercises", "If-then prediction tasks", "Ordered proof-style write-ups"},
	},
	{
		ID:          "logical-patterns",
		Category:    category.CategoryLogicalLearner,
		Label:       "Pattern finding and classification",
		Description: "Frame new material as patterns to discover and categories to build; let the student construct the taxonomy.",
		Activities:  []string{"Sort-and-justify card sets", "Spot-the-pattern warm-ups", "Build-your-own classification keys"},
	},

	// Fast processor (2)
	{
		ID:          "fast-enrichment",
		Category:    category.CategoryFastProcessor,
		Label:       "Advanced challenges and enrichment",
		Description: "Provide extension material beyond the core task so finishing early opens a harder problem, not idle time.",
		Activities:  []string{"Challenge problem queues", "Open-ended extension projects", "Cross-topic puzzles"},
	},
	{
		ID:          "fast-depth-over-pace",
		Category:    category.CategoryFastProcessor,
		Label:       "Depth over pace",
		Description: "Redirect speed into depth: justify answers, find second methods, and probe edge cases rather than racing ahead.",
		Activities:  []string{"Two-ways-to-solve tasks", "Explain-why write-ups", "Peer tutoring roles"},
	},
}
