// Package assess runs the full scoring pipeline for one subject and
// appends the outcome to the event store.
package assess

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/learnaura/aura/internal/academic"
	"github.com/learnaura/aura/internal/category"
	"github.com/learnaura/aura/internal/classify"
	"github.com/learnaura/aura/internal/cognitive"
	"github.com/learnaura/aura/internal/store"
	"github.com/learnaura/aura/internal/triangulate"
)

// Service orchestrates assessment runs. Runs for the same subject are
// serialized so that the read-previous / append-new pair is atomic:
// without this, two concurrent runs could both compare against the same
// "previous" record and one shift would be lost.
type Service struct {
	repo store.EventRepo

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewService creates an assessment service backed by the given repo.
func NewService(repo store.EventRepo) *Service {
	return &Service{
		repo:  repo,
		locks: make(map[string]*sync.Mutex),
	}
}

// Run validates and scores the input, classifies the subject, computes
// trend fields against the previous run, and appends the resulting events.
// A validation failure aborts before anything is persisted: no
// classification derived from rejected input ever reaches the store.
func (s *Service) Run(ctx context.Context, in *Input) (*Record, error) {
	if in.SubjectID == "" {
		return nil, &cognitive.ValidationError{Field: "subject_id", Reason: "must not be empty"}
	}

	rec := &Record{
		RunID:        uuid.NewString(),
		SubjectID:    in.SubjectID,
		Timestamp:    time.Now().UTC(),
		DomainScores: make(map[cognitive.Rater]cognitive.DomainScoreSet),
	}

	// Score every rater's responses up front so that a bad batch from any
	// rater rejects the whole run.
	raters := sortedRaters(in.Responses)
	for _, rater := range raters {
		scores, err := cognitive.DomainAverage(in.Responses[rater])
		if err != nil {
			return nil, fmt.Errorf("rater %s: %w", rater, err)
		}
		rec.DomainScores[rater] = scores
	}

	if in.Academic != nil {
		score, err := academic.ScoreAcademic(in.Academic.Correct, in.Academic.Total, in.Academic.QuestionTimes)
		if err != nil {
			return nil, err
		}
		rec.Academic = &score
	}

	rec.Triangulation = triangulateRaters(rec.DomainScores, raters)
	rec.classify(raters)

	lock := s.subjectLock(in.SubjectID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.computeTrend(ctx, rec); err != nil {
		return nil, err
	}
	if err := s.persist(ctx, rec, in, raters); err != nil {
		return nil, err
	}
	return rec, nil
}

// classify maps each rater's domain scores to category scores, combines
// them, blends the academic result, and ranks.
func (rec *Record) classify(raters []cognitive.Rater) {
	byRater := make([]category.ScoreSet, 0, len(raters))
	for _, rater := range raters {
		byRater = append(byRater, category.MapToCategoryScores(rec.DomainScores[rater]))
	}

	rec.Classification = classify.Classify(byRater, rec.Academic, rec.Triangulation)
	rec.CategoryScores = category.BlendAcademic(classify.CombineRaters(byRater), rec.Academic)
	rec.Buckets = classify.AssignedBuckets(rec.CategoryScores, 0)
}

// computeTrend fills Shifted and Improved from the subject's history.
// Absent history is a normal state for a new subject, never an error.
func (s *Service) computeTrend(ctx context.Context, rec *Record) error {
	prev, err := s.repo.LatestClassification(ctx, rec.SubjectID)
	if err != nil {
		return fmt.Errorf("load previous classification: %w", err)
	}
	rec.Shifted = prev != nil && prev.Primary != string(rec.Classification.Primary)

	if rec.Academic == nil {
		return nil
	}
	prevAcad, err := s.repo.LatestAcademic(ctx, rec.SubjectID)
	if err != nil {
		return fmt.Errorf("load previous academic result: %w", err)
	}
	if prevAcad != nil {
		delta := rec.Academic.Percentage - prevAcad.Percentage
		rec.Improved = &delta
	}
	return nil
}

func (s *Service) persist(ctx context.Context, rec *Record, in *Input, raters []cognitive.Rater) error {
	for _, rater := range raters {
		scores := make(map[string]float64, len(rec.DomainScores[rater]))
		for d, v := range rec.DomainScores[rater] {
			scores[string(d)] = v
		}
		err := s.repo.AppendCognitive(ctx, store.CognitiveEventData{
			RunID:        rec.RunID,
			SubjectID:    rec.SubjectID,
			Rater:        string(rater),
			DomainScores: scores,
		})
		if err != nil {
			return fmt.Errorf("append cognitive event: %w", err)
		}
	}

	if rec.Academic != nil {
		err := s.repo.AppendAcademic(ctx, store.AcademicEventData{
			RunID:      rec.RunID,
			SubjectID:  rec.SubjectID,
			Correct:    in.Academic.Correct,
			Total:      in.Academic.Total,
			Percentage: rec.Academic.Percentage,
			Tier:       rec.Academic.Tier,
			Confidence: rec.Academic.Confidence,
		})
		if err != nil {
			return fmt.Errorf("append academic event: %w", err)
		}
	}

	catScores := make(map[string]int, len(rec.CategoryScores))
	for c, v := range rec.CategoryScores {
		catScores[string(c)] = v
	}
	secondary := make([]string, 0, len(rec.Classification.Secondary))
	for _, c := range rec.Classification.Secondary {
		secondary = append(secondary, string(c))
	}
	triScore, triangulated := 0.0, false
	if rec.Triangulation != nil {
		triScore, triangulated = rec.Triangulation.Score, true
	}

	err := s.repo.AppendClassification(ctx, store.ClassificationEventData{
		RunID:              rec.RunID,
		SubjectID:          rec.SubjectID,
		Primary:            string(rec.Classification.Primary),
		Secondary:          secondary,
		Confidence:         rec.Classification.Confidence,
		CategoryScores:     catScores,
		TriangulationScore: triScore,
		Triangulated:       triangulated,
		Shifted:            rec.Shifted,
	})
	if err != nil {
		return fmt.Errorf("append classification event: %w", err)
	}
	return nil
}

// subjectLock returns the per-subject mutex, creating it on first use.
func (s *Service) subjectLock(subjectID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[subjectID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[subjectID] = lock
	}
	return lock
}

// triangulateRaters compares the first two raters (student and parent in
// the common case). With fewer than two raters there is nothing to
// compare and the result is nil.
func triangulateRaters(byRater map[cognitive.Rater]cognitive.DomainScoreSet, raters []cognitive.Rater) *triangulate.Result {
	if len(raters) < 2 {
		return nil
	}
	result := triangulate.Triangulate(byRater[raters[0]], byRater[raters[1]])
	return &result
}

// sortedRaters orders raters student-first, then parent, then any others
// alphabetically, so runs are deterministic regardless of map iteration.
func sortedRaters(responses map[cognitive.Rater][]cognitive.RawResponse) []cognitive.Rater {
	raters := make([]cognitive.Rater, 0, len(responses))
	for r := range responses {
		raters = append(raters, r)
	}
	sort.Slice(raters, func(i, j int) bool {
		return raterOrder(raters[i]) < raterOrder(raters[j])
	})
	return raters
}

func raterOrder(r cognitive.Rater) string {
	switch r {
	case cognitive.RaterStudent:
		return "0"
	case cognitive.RaterParent:
		return "1"
	default:
		return "2" + string(r)
	}
}
