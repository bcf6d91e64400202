package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AcademicEvent records one scored academic assessment for a subject.
type AcademicEvent struct {
	ent.Schema
}

func (AcademicEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AcademicEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			NotEmpty(),
		field.String("subject_id").
			NotEmpty(),
		field.Int("correct").
			Comment("Correct answer count"),
		field.Int("total").
			Comment("Total question count"),
		field.Float("percentage"),
		field.Int("tier").
			Comment("Performance tier 1-5"),
		field.Float("confidence").
			Comment("Timing-adjusted confidence in [0.5,1.0]"),
	}
}

func (AcademicEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject_id"),
		index.Fields("run_id"),
	}
}
