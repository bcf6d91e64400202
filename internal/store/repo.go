package store

import (
	"context"
	"time"
)

// CognitiveEventData captures one rater's derived domain score set.
type CognitiveEventData struct {
	RunID        string
	SubjectID    string
	Rater        string
	DomainScores map[string]float64
}

// AcademicEventData captures one scored academic assessment.
type AcademicEventData struct {
	RunID      string
	SubjectID  string
	Correct    int
	Total      int
	Percentage float64
	Tier       int
	Confidence float64
}

// ClassificationEventData captures a completed classification run.
type ClassificationEventData struct {
	RunID              string
	SubjectID          string
	Primary            string
	Secondary          []string
	Confidence         float64
	CategoryScores     map[string]int
	TriangulationScore float64
	Triangulated       bool
	Shifted            bool
}

// ClassificationRecord is a persisted classification event as read back
// from the store.
type ClassificationRecord struct {
	Sequence  int64
	Timestamp time.Time
	ClassificationEventData
}

// AcademicRecord is a persisted academic event as read back from the store.
type AcademicRecord struct {
	Sequence  int64
	Timestamp time.Time
	AcademicEventData
}

// EventRepo provides append and query access to assessment events.
// Appends are strictly additive; history is never rewritten.
type EventRepo interface {
	// AppendCognitive records a rater's domain score set.
	AppendCognitive(ctx context.Context, data CognitiveEventData) error

	// AppendAcademic records a scored academic assessment.
	AppendAcademic(ctx context.Context, data AcademicEventData) error

	// AppendClassification records a classification result.
	AppendClassification(ctx context.Context, data ClassificationEventData) error

	// LatestClassification returns the most recent classification for a
	// subject, or nil if the subject has never been classified.
	LatestClassification(ctx context.Context, subjectID string) (*ClassificationRecord, error)

	// ListClassifications returns a subject's classification history,
	// newest first. limit <= 0 returns everything.
	ListClassifications(ctx context.Context, subjectID string, limit int) ([]*ClassificationRecord, error)

	// LatestAcademic returns the most recent academic result for a
	// subject, or nil if none exists.
	LatestAcademic(ctx context.Context, subjectID string) (*AcademicRecord, error)

	// ListAcademic returns a subject's academic history, newest first.
	// limit <= 0 returns everything.
	ListAcademic(ctx context.Context, subjectID string, limit int) ([]*AcademicRecord, error)

	// LatestClassificationsBySubject returns the most recent
	// classification per subject, for cohort-level reporting.
	LatestClassificationsBySubject(ctx context.Context) ([]*ClassificationRecord, error)
}
