// Code generated by ent, DO NOT EDIT.

package cognitiveevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/learnaura/aura/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldEQ(FieldTimestamp, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldEQ(FieldRunID, v))
}

// SubjectID applies equality check predicate on the "subject_id" field. It's identical to SubjectIDEQ.
func SubjectID(v string) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldEQ(FieldSubjectID, v))
}

// Rater applies equality check predicate on the "rater" field. It's identical to RaterEQ.
func Rater(v string) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldEQ(FieldRater, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldLTE(FieldTimestamp, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldContainsFold(FieldRunID, v))
}

// SubjectIDEQ applies the EQ predicate on the "subject_id" field.
func SubjectIDEQ(v string) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldEQ(FieldSubjectID, v))
}

// SubjectIDNEQ applies the NEQ predicate on the "subject_id" field.
func SubjectIDNEQ(v string) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldNEQ(FieldSubjectID, v))
}

// SubjectIDIn applies the In predicate on the "subject_id" field.
func SubjectIDIn(vs ...string) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldIn(FieldSubjectID, vs...))
}

// SubjectIDNotIn applies the NotIn predicate on the "subject_id" field.
func SubjectIDNotIn(vs ...string) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldNotIn(FieldSubjectID, vs...))
}

// SubjectIDGT applies the GT predicate on the "subject_id" field.
func SubjectIDGT(v string) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldGT(FieldSubjectID, v))
}

// SubjectIDGTE applies the GTE predicate on the "subject_id" field.
func SubjectIDGTE(v string) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldGTE(FieldSubjectID, v))
}

// SubjectIDLT applies the LT predicate on the "subject_id" field.
func SubjectIDLT(v string) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldLT(FieldSubjectID, v))
}

// SubjectIDLTE applies the LTE predicate on the "subject_id" field.
func SubjectIDLTE(v string) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldLTE(FieldSubjectID, v))
}

// SubjectIDContains applies the Contains predicate on the "subject_id" field.
func SubjectIDContains(v string) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldContains(FieldSubjectID, v))
}

// SubjectIDHasPrefix applies the HasPrefix predicate on the "subject_id" field.
func SubjectIDHasPrefix(v string) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldHasPrefix(FieldSubjectID, v))
}

// SubjectIDHasSuffix applies the HasSuffix predicate on the "subject_id" field.
func SubjectIDHasSuffix(v string) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldHasSuffix(FieldSubjectID, v))
}

// SubjectIDEqualFold applies the EqualFold predicate on the "subject_id" field.
func SubjectIDEqualFold(v string) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldEqualFold(FieldSubjectID, v))
}

// SubjectIDContainsFold applies the ContainsFold predicate on the "subject_id" field.
func SubjectIDContainsFold(v string) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldContainsFold(FieldSubjectID, v))
}

// RaterEQ applies the EQ predicate on the "rater" field.
func RaterEQ(v string) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldEQ(FieldRater, v))
}

// RaterNEQ applies the NEQ predicate on the "rater" field.
func RaterNEQ(v string) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldNEQ(FieldRater, v))
}

// RaterIn applies the In predicate on the "rater" field.
func RaterIn(vs ...string) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldIn(FieldRater, vs...))
}

// RaterNotIn applies the NotIn predicate on the "rater" field.
func RaterNotIn(vs ...string) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldNotIn(FieldRater, vs...))
}

// RaterGT applies the GT predicate on the "rater" field.
func RaterGT(v string) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldGT(FieldRater, v))
}

// RaterGTE applies the GTE predicate on the "rater" field.
func RaterGTE(v string) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldGTE(FieldRater, v))
}

// RaterLT applies the LT predicate on the "rater" field.
func RaterLT(v string) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldLT(FieldRater, v))
}

// RaterLTE applies the LTE predicate on the "rater" field.
func RaterLTE(v string) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldLTE(FieldRater, v))
}

// RaterContains applies the Contains predicate on the "rater" field.
func RaterContains(v string) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldContains(FieldRater, v))
}

// RaterHasPrefix applies the HasPrefix predicate on the "rater" field.
func RaterHasPrefix(v string) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldHasPrefix(FieldRater, v))
}

// RaterHasSuffix applies the HasSuffix predicate on the "rater" field.
func RaterHasSuffix(v string) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldHasSuffix(FieldRater, v))
}

// RaterEqualFold applies the EqualFold predicate on the "rater" field.
func RaterEqualFold(v string) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldEqualFold(FieldRater, v))
}

// RaterContainsFold applies the ContainsFold predicate on the "rater" field.
func RaterContainsFold(v string) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.FieldContainsFold(FieldRater, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CognitiveEvent) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CognitiveEvent) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CognitiveEvent) predicate.CognitiveEvent {
	return predicate.CognitiveEvent(sql.NotPredicates(p))
}
