package store

import (
	"context"
	"fmt"

	"github.com/learnaura/aura/ent"
	"github.com/learnaura/aura/ent/academicevent"
)

func (r *eventRepo) AppendAcademic(ctx context.Context, data AcademicEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AcademicEvent.Create().
		SetSequence(seqNum).
		SetRunID(data.RunID).
		SetSubjectID(data.SubjectID).
		SetCorrect(data.Correct).
		SetTotal(data.Total).
		SetPercentage(data.Percentage).
		SetTier(data.Tier).
		SetConfidence(data.Confidence).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save academic event: %w", err)
	}
	return nil
}

func (r *eventRepo) LatestAcademic(ctx context.Context, subjectID string) (*AcademicRecord, error) {
	ev, err := r.client.AcademicEvent.Query().
		Where(academicevent.SubjectID(subjectID)).
		Order(ent.Desc(academicevent.FieldSequence)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query latest academic event: %w", err)
	}
	return academicRecordFrom(ev), nil
}

func (r *eventRepo) ListAcademic(ctx context.Context, subjectID string, limit int) ([]*AcademicRecord, error) {
	q := r.client.AcademicEvent.Query().
		Where(academicevent.SubjectID(subjectID)).
		Order(ent.Desc(academicevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query academic events: %w", err)
	}

	records := make([]*AcademicRecord, 0, len(events))
	for _, ev := range events {
		records = append(records, academicRecordFrom(ev))
	}
	return records, nil
}

func academicRecordFrom(ev *ent.AcademicEvent) *AcademicRecord {
	return &AcademicRecord{
		Sequence:  ev.Sequence,
		Timestamp: ev.Timestamp,
		AcademicEventData: AcademicEventData{
			RunID:      ev.RunID,
			SubjectID:  ev.SubjectID,
			Correct:    ev.Correct,
			Total:      ev.Total,
			Percentage: ev.Percentage,
			Tier:       ev.Tier,
			Confidence: ev.Confidence,
		},
	}
}
