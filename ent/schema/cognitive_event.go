package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CognitiveEvent records one rater's domain score set for a subject,
// derived from a batch of raw Likert responses.
type CognitiveEvent struct {
	ent.Schema
}

func (CognitiveEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (CognitiveEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			NotEmpty().
			Comment("Links events produced by the same assessment run"),
		field.String("subject_id").
			NotEmpty().
			Comment("Student UUID"),
		field.String("rater").
			NotEmpty().
			Comment("student or parent"),
		field.JSON("domain_scores", map[string]float64{}).
			Comment("Per-domain averages on the 1-5 scale"),
	}
}

func (CognitiveEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject_id"),
		index.Fields("run_id"),
	}
}
