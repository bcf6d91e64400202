// Code generated by ent, DO NOT EDIT.

package classificationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/learnaura/aura/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldEQ(FieldRunID, v))
}

// SubjectID applies equality check predicate on the "subject_id" field. It's identical to SubjectIDEQ.
func SubjectID(v string) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldEQ(FieldSubjectID, v))
}

// Primary applies equality check predicate on the "primary" field. It's identical to PrimaryEQ.
func Primary(v string) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldEQ(FieldPrimary, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldEQ(FieldConfidence, v))
}

// TriangulationScore applies equality check predicate on the "triangulation_score" field. It's identical to TriangulationScoreEQ.
func TriangulationScore(v float64) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldEQ(FieldTriangulationScore, v))
}

// Triangulated applies equality check predicate on the "triangulated" field. It's identical to TriangulatedEQ.
func Triangulated(v bool) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldEQ(FieldTriangulated, v))
}

// Shifted applies equality check predicate on the "shifted" field. It's identical to ShiftedEQ.
func Shifted(v bool) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldEQ(FieldShifted, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldLTE(FieldTimestamp, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldContainsFold(FieldRunID, v))
}

// SubjectIDEQ applies the EQ predicate on the "subject_id" field.
func SubjectIDEQ(v string) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldEQ(FieldSubjectID, v))
}

// SubjectIDNEQ applies the NEQ predicate on the "subject_id" field.
func SubjectIDNEQ(v string) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldNEQ(FieldSubjectID, v))
}

// SubjectIDIn applies the In predicate on the "subject_id" field.
func SubjectIDIn(vs ...string) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldIn(FieldSubjectID, vs...))
}

// SubjectIDNotIn applies the NotIn predicate on the "subject_id" field.
func SubjectIDNotIn(vs ...string) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldNotIn(FieldSubjectID, vs...))
}

// SubjectIDGT applies the GT predicate on the "subject_id" field.
func SubjectIDGT(v string) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldGT(FieldSubjectID, v))
}

// SubjectIDGTE applies the GTE predicate on the "subject_id" field.
func SubjectIDGTE(v string) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldGTE(FieldSubjectID, v))
}

// SubjectIDLT applies the LT predicate on the "subject_id" field.
func SubjectIDLT(v string) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldLT(FieldSubjectID, v))
}

// SubjectIDLTE applies the LTE predicate on the "subject_id" field.
func SubjectIDLTE(v string) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldLTE(FieldSubjectID, v))
}

// SubjectIDContains applies the Contains predicate on the "subject_id" field.
func SubjectIDContains(v string) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldContains(FieldSubjectID, v))
}

// SubjectIDHasPrefix applies the HasPrefix predicate on the "subject_id" field.
func SubjectIDHasPrefix(v string) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldHasPrefix(FieldSubjectID, v))
}

// SubjectIDHasSuffix applies the HasSuffix predicate on the "subject_id" field.
func SubjectIDHasSuffix(v string) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldHasSuffix(FieldSubjectID, v))
}

// SubjectIDEqualFold applies the EqualFold predicate on the "subject_id" field.
func SubjectIDEqualFold(v string) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldEqualFold(FieldSubjectID, v))
}

// SubjectIDContainsFold applies the ContainsFold predicate on the "subject_id" field.
func SubjectIDContainsFold(v string) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldContainsFold(FieldSubjectID, v))
}

// PrimaryEQ applies the EQ predicate on the "primary" field.
func PrimaryEQ(v string) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldEQ(FieldPrimary, v))
}

// PrimaryNEQ applies the NEQ predicate on the "primary" field.
func PrimaryNEQ(v string) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldNEQ(FieldPrimary, v))
}

// PrimaryIn applies the In predicate on the "primary" field.
func PrimaryIn(vs ...string) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldIn(FieldPrimary, vs...))
}

// PrimaryNotIn applies the NotIn predicate on the "primary" field.
func PrimaryNotIn(vs ...string) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldNotIn(FieldPrimary, vs...))
}

// PrimaryGT applies the GT predicate on the "primary" field.
func PrimaryGT(v string) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldGT(FieldPrimary, v))
}

// PrimaryGTE applies the GTE predicate on the "primary" field.
func PrimaryGTE(v string) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldGTE(FieldPrimary, v))
}

// PrimaryLT applies the LT predicate on the "primary" field.
func PrimaryLT(v string) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldLT(FieldPrimary, v))
}

// PrimaryLTE applies the LTE predicate on the "primary" field.
func PrimaryLTE(v string) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldLTE(FieldPrimary, v))
}

// PrimaryContains applies the Contains predicate on the "primary" field.
func PrimaryContains(v string) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldContains(FieldPrimary, v))
}

// PrimaryHasPrefix applies the HasPrefix predicate on the "primary" field.
func PrimaryHasPrefix(v string) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldHasPrefix(FieldPrimary, v))
}

// PrimaryHasSuffix applies the HasSuffix predicate on the "primary" field.
func PrimaryHasSuffix(v string) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldHasSuffix(FieldPrimary, v))
}

// PrimaryEqualFold applies the EqualFold predicate on the "primary" field.
func PrimaryEqualFold(v string) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldEqualFold(FieldPrimary, v))
}

// PrimaryContainsFold applies the ContainsFold predicate on the "primary" field.
func PrimaryContainsFold(v string) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldContainsFold(FieldPrimary, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldLTE(FieldConfidence, v))
}

// TriangulationScoreEQ applies the EQ predicate on the "triangulation_score" field.
func TriangulationScoreEQ(v float64) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldEQ(FieldTriangulationScore, v))
}

// TriangulationScoreNEQ applies the NEQ predicate on the "triangulation_score" field.
func TriangulationScoreNEQ(v float64) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldNEQ(FieldTriangulationScore, v))
}

// TriangulationScoreIn applies the In predicate on the "triangulation_score" field.
func TriangulationScoreIn(vs ...float64) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldIn(FieldTriangulationScore, vs...))
}

// TriangulationScoreNotIn applies the NotIn predicate on the "triangulation_score" field.
func TriangulationScoreNotIn(vs ...float64) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldNotIn(FieldTriangulationScore, vs...))
}

// TriangulationScoreGT applies the GT predicate on the "triangulation_score" field.
func TriangulationScoreGT(v float64) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldGT(FieldTriangulationScore, v))
}

// TriangulationScoreGTE applies the GTE predicate on the "triangulation_score" field.
func TriangulationScoreGTE(v float64) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldGTE(FieldTriangulationScore, v))
}

// TriangulationScoreLT applies the LT predicate on the "triangulation_score" field.
func TriangulationScoreLT(v float64) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldLT(FieldTriangulationScore, v))
}

// TriangulationScoreLTE applies the LTE predicate on the "triangulation_score" field.
func TriangulationScoreLTE(v float64) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldLTE(FieldTriangulationScore, v))
}

// TriangulatedEQ applies the EQ predicate on the "triangulated" field.
func TriangulatedEQ(v bool) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldEQ(FieldTriangulated, v))
}

// TriangulatedNEQ applies the NEQ predicate on the "triangulated" field.
func TriangulatedNEQ(v bool) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldNEQ(FieldTriangulated, v))
}

// ShiftedEQ applies the EQ predicate on the "shifted" field.
func ShiftedEQ(v bool) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldEQ(FieldShifted, v))
}

// ShiftedNEQ applies the NEQ predicate on the "shifted" field.
func ShiftedNEQ(v bool) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.FieldNEQ(FieldShifted, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ClassificationEvent) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ClassificationEvent) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ClassificationEvent) predicate.ClassificationEvent {
	return predicate.ClassificationEvent(sql.NotPredicates(p))
}
