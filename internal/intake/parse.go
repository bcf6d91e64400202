// Package intake validates and parses assessment batches from the
// capture layer into typed engine input.
package intake

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/learnaura/aura/internal/assess"
	"github.com/learnaura/aura/internal/cognitive"
)

// ValidationError reports a malformed assessment batch.
type ValidationError struct {
	Path   string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid assessment batch: %s", e.Reason)
	}
	return fmt.Sprintf("invalid assessment batch at %s: %s", e.Path, e.Reason)
}

// Wire shapes for the incoming JSON.
type batchWire struct {
	SubjectID string                    `json:"subject_id"`
	Responses map[string][]responseWire `json:"responses"`
	Academic  *academicWire             `json:"academic,omitempty"`
}

type responseWire struct {
	Question int    `json:"question"`
	Domain   string `json:"domain"`
	Value    int    `json:"value"`
	Reverse  bool   `json:"reverse"`
}

type academicWire struct {
	Correct       int       `json:"correct"`
	Total         int       `json:"total"`
	QuestionTimes []float64 `json:"question_times"`
}

// Parse validates raw JSON against the batch schema and converts it into
// typed engine input. Any schema violation or malformed identifier is a
// *ValidationError; nothing is corrected silently.
func Parse(raw []byte) (*assess.Input, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &ValidationError{Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}

	schema, err := batchSchema()
	if err != nil {
		return nil, fmt.Errorf("compile batch schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, &ValidationError{Reason: err.Error()}
	}

	var wire batchWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, &ValidationError{Reason: fmt.Sprintf("decode batch: %v", err)}
	}

	if _, err := uuid.Parse(wire.SubjectID); err != nil {
		return nil, &ValidationError{Path: "subject_id", Reason: fmt.Sprintf("not a valid UUID: %v", err)}
	}

	in := &assess.Input{
		SubjectID: wire.SubjectID,
		Responses: make(map[cognitive.Rater][]cognitive.RawResponse, len(wire.Responses)),
	}

	for rater, responses := range wire.Responses {
		typed := make([]cognitive.RawResponse, 0, len(responses))
		for _, r := range responses {
			typed = append(typed, cognitive.RawResponse{
				Question: r.Question,
				Domain:   cognitive.Domain(r.Domain),
				Value:    r.Value,
				Reverse:  r.Reverse,
			})
		}
		in.Responses[cognitive.Rater(rater)] = typed
	}

	if wire.Academic != nil {
		in.Academic = &assess.AcademicInput{
			Correct:       wire.Academic.Correct,
			Total:         wire.Academic.Total,
			QuestionTimes: wire.Academic.QuestionTimes,
		}
	}

	return in, nil
}
