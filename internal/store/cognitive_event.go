package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendCognitive(ctx context.Context, data CognitiveEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.CognitiveEvent.Create().
		SetSequence(seqNum).
		SetRunID(data.RunID).
		SetSubjectID(data.SubjectID).
		SetRater(data.Rater).
		SetDomainScores(data.DomainScores).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save cognitive event: %w", err)
	}
	return nil
}
