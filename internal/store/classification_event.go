package store

import (
	"context"
	"fmt"

	"github.com/learnaura/aura/ent"
	"github.com/learnaura/aura/ent/classificationevent"
)

func (r *eventRepo) AppendClassification(ctx context.Context, data ClassificationEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ClassificationEvent.Create().
		SetSequence(seqNum).
		SetRunID(data.RunID).
		SetSubjectID(data.SubjectID).
		SetPrimary(data.Primary).
		SetSecondary(data.Secondary).
		SetConfidence(data.Confidence).
		SetCategoryScores(data.CategoryScores).
		SetTriangulationScore(data.TriangulationScore).
		SetTriangulated(data.Triangulated).
		SetShifted(data.Shifted).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save classification event: %w", err)
	}
	return nil
}

func (r *eventRepo) LatestClassification(ctx context.Context, subjectID string) (*ClassificationRecord, error) {
	ev, err := r.client.ClassificationEvent.Query().
		Where(classificationevent.SubjectID(subjectID)).
		Order(ent.Desc(classificationevent.FieldSequence)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query latest classification: %w", err)
	}
	return classificationRecordFrom(ev), nil
}

func (r *eventRepo) ListClassifications(ctx context.Context, subjectID string, limit int) ([]*ClassificationRecord, error) {
	q := r.client.ClassificationEvent.Query().
		Where(classificationevent.SubjectID(subjectID)).
		Order(ent.Desc(classificationevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query classifications: %w", err)
	}

	records := make([]*ClassificationRecord, 0, len(events))
	for _, ev := range events {
		records = append(records, classificationRecordFrom(ev))
	}
	return records, nil
}

func (r *eventRepo) LatestClassificationsBySubject(ctx context.Context) ([]*ClassificationRecord, error) {
	events, err := r.client.ClassificationEvent.Query().
		Order(ent.Desc(classificationevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query classifications: %w", err)
	}

	// Events arrive newest first, so the first occurrence per subject is
	// that subject's current classification.
	seen := make(map[string]bool)
	var records []*ClassificationRecord
	for _, ev := range events {
		if seen[ev.SubjectID] {
			continue
		}
		seen[ev.SubjectID] = true
		records = append(records, classificationRecordFrom(ev))
	}
	return records, nil
}

func classificationRecordFrom(ev *ent.ClassificationEvent) *ClassificationRecord {
	return &ClassificationRecord{
		Sequence:  ev.Sequence,
		Timestamp: ev.Timestamp,
		ClassificationEventData: ClassificationEventData{
			RunID:              ev.RunID,
			SubjectID:          ev.SubjectID,
			Primary:            ev.Primary,
			Secondary:          ev.Secondary,
			Confidence:         ev.Confidence,
			CategoryScores:     ev.CategoryScores,
			TriangulationScore: ev.TriangulationScore,
			Triangulated:       ev.Triangulated,
			Shifted:            ev.Shifted,
		},
	}
}
