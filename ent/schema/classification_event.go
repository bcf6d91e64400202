package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ClassificationEvent records a completed classification run: the combined
// category scores, the ranked assignments, and the rater agreement behind
// the confidence. History is never deleted; trend reporting compares the
// two most recent events for a subject.
type ClassificationEvent struct {
	ent.Schema
}

func (ClassificationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ClassificationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			NotEmpty(),
		field.String("subject_id").
			NotEmpty(),
		field.String("primary").
			NotEmpty().
			Comment("Primary category assignment"),
		field.JSON("secondary", []string{}).
			Comment("Up to two secondary categories, descending by score"),
		field.Float("confidence"),
		field.JSON("category_scores", map[string]int{}).
			Comment("Combined category scores on the 0-100 scale"),
		field.Float("triangulation_score").
			Comment("Rater agreement in [0,1]; 0 when not triangulated"),
		field.Bool("triangulated").
			Comment("Whether two raters were available to compare"),
		field.Bool("shifted").
			Comment("Primary differs from the previous classification"),
	}
}

func (ClassificationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject_id"),
		index.Fields("run_id"),
	}
}
