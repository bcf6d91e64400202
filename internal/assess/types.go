package assess

import (
	"time"

	"github.com/learnaura/aura/internal/academic"
	"github.com/learnaura/aura/internal/category"
	"github.com/learnaura/aura/internal/classify"
	"github.com/learnaura/aura/internal/cognitive"
	"github.com/learnaura/aura/internal/triangulate"
)

// AcademicInput is a raw academic assessment result as captured.
type AcademicInput struct {
	Correct       int
	Total         int
	QuestionTimes []float64 // one entry per question; empty when untimed
}

// Input is everything one assessment run consumes: per-rater Likert
// responses and an optional academic result, keyed by subject.
type Input struct {
	SubjectID string
	Responses map[cognitive.Rater][]cognitive.RawResponse
	Academic  *AcademicInput
}

// Record is the assembled outcome of one assessment run. It is what the
// persistence layer stores and what downstream strategy lookup consumes.
type Record struct {
	RunID     string
	SubjectID string
	Timestamp time.Time

	DomainScores   map[cognitive.Rater]cognitive.DomainScoreSet
	CategoryScores category.ScoreSet // combined across raters, academic-blended
	Academic       *academic.Score
	Triangulation  *triangulate.Result // nil with fewer than two raters
	Classification classify.Classification
	Buckets        []category.Category

	// Shifted reports whether the primary category differs from the
	// subject's previous classification. False on first classification.
	Shifted bool

	// Improved is the signed delta between this run's academic percentage
	// and the subject's previous one. Nil when either is missing.
	Improved *float64
}
