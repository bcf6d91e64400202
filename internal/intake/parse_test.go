package intake

import (
	"errors"
	"testing"

	"github.com/learnaura/aura/internal/cognitive"
)

const validBatch = `{
	"subject_id": "8c5f1f2e-3e51-4c1a-9d04-6f2d8e6a1b90",
	"responses": {
		"student": [
			{"question": 1, "domain": "processing_speed", "value": 4},
			{"question": 2, "domain": "self_efficacy", "value": 2, "reverse": true}
		],
		"parent": [
			{"question": 1, "domain": "processing_speed", "value": 3}
		]
	},
	"academic": {"correct": 7, "total": 10, "question_times": [30, 25, 40, 35, 28, 33, 31, 29, 36, 30]}
}`

func TestParse_ValidBatch(t *testing.T) {
	in, err := Parse([]byte(validBatch))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if in.SubjectID != "8c5f1f2e-3e51-4c1a-9d04-6f2d8e6a1b90" {
		t.Errorf("subject_id = %s", in.SubjectID)
	}
	if len(in.Responses) != 2 {
		t.Fatalf("got %d raters, want 2", len(in.Responses))
	}
	student := in.Responses[cognitive.RaterStudent]
	if len(student) != 2 {
		t.Fatalf("got %d student responses, want 2", len(student))
	}
	if student[1].Domain != cognitive.DomainSelfEfficacy || !student[1].Reverse {
		t.Errorf("student response 2 = %+v", student[1])
	}
	if in.Academic == nil {
		t.Fatal("academic input missing")
	}
	if in.Academic.Correct != 7 || in.Academic.Total != 10 {
		t.Errorf("academic = %+v", in.Academic)
	}
	if len(in.Academic.QuestionTimes) != 10 {
		t.Errorf("got %d question times, want 10", len(in.Academic.QuestionTimes))
	}
}

func TestParse_NoAcademic(t *testing.T) {
	batch := `{
		"subject_id": "8c5f1f2e-3e51-4c1a-9d04-6f2d8e6a1b90",
		"responses": {"student": [{"question": 1, "domain": "working_memory", "value": 3}]}
	}`
	in, err := Parse([]byte(batch))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if in.Academic != nil {
		t.Errorf("academic = %+v, want nil", in.Academic)
	}
}

func TestParse_Rejections(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"malformed JSON", `{"subject_id": `},
		{"missing subject_id", `{"responses": {"student": [{"question": 1, "domain": "working_memory", "value": 3}]}}`},
		{"missing responses", `{"subject_id": "8c5f1f2e-3e51-4c1a-9d04-6f2d8e6a1b90"}`},
		{"empty responses", `{"subject_id": "8c5f1f2e-3e51-4c1a-9d04-6f2d8e6a1b90", "responses": {}}`},
		{"value out of range", `{"subject_id": "8c5f1f2e-3e51-4c1a-9d04-6f2d8e6a1b90",
			"responses": {"student": [{"question": 1, "domain": "working_memory", "value": 6}]}}`},
		{"unknown domain", `{"subject_id": "8c5f1f2e-3e51-4c1a-9d04-6f2d8e6a1b90",
			"responses": {"student": [{"question": 1, "domain": "charisma", "value": 3}]}}`},
		{"missing question", `{"subject_id": "8c5f1f2e-3e51-4c1a-9d04-6f2d8e6a1b90",
			"responses": {"student": [{"domain": "working_memory", "value": 3}]}}`},
		{"unknown response field", `{"subject_id": "8c5f1f2e-3e51-4c1a-9d04-6f2d8e6a1b90",
			"responses": {"student": [{"question": 1, "domain": "working_memory", "value": 3, "weight": 2}]}}`},
		{"academic missing total", `{"subject_id": "8c5f1f2e-3e51-4c1a-9d04-6f2d8e6a1b90",
			"responses": {"student": [{"question": 1, "domain": "working_memory", "value": 3}]},
			"academic": {"correct": 5}}`},
		{"subject_id not a UUID", `{"subject_id": "student-42",
			"responses": {"student": [{"question": 1, "domain": "working_memory", "value": 3}]}}`},
		{"unknown top-level field", `{"subject_id": "8c5f1f2e-3e51-4c1a-9d04-6f2d8e6a1b90",
			"responses": {"student": [{"question": 1, "domain": "working_memory", "value": 3}]}, "extra": true}`},
	}
	for _, c := range cases {
		_, err := Parse([]byte(c.raw))
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("%s: got %v, want *ValidationError", c.name, err)
		}
	}
}
