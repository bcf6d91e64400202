// Code generated by ent, DO NOT EDIT.

package classificationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the classificationevent type in the database.
	Label = "classification_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldSubjectID holds the string denoting the subject_id field in the database.
	FieldSubjectID = "subject_id"
	// FieldPrimary holds the string denoting the primary field in the database.
	FieldPrimary = "primary"
	// FieldSecondary holds the string denoting the secondary field in the database.
	FieldSecondary = "secondary"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldCategoryScores holds the string denoting the category_scores field in the database.
	FieldCategoryScores = "category_scores"
	// FieldTriangulationScore holds the string denoting the triangulation_score field in the database.
	FieldTriangulationScore = "triangulation_score"
	// FieldTriangulated holds the string denoting the triangulated field in the database.
	FieldTriangulated = "triangulated"
	// FieldShifted holds the string denoting the shifted field in the database.
	FieldShifted = "shifted"
	// Table holds the table name of the classificationevent in the database.
	Table = "classification_events"
)

// Columns holds all SQL columns for classificationevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldRunID,
	FieldSubjectID,
	FieldPrimary,
	FieldSecondary,
	FieldConfidence,
	FieldCategoryScores,
	FieldTriangulationScore,
	FieldTriangulated,
	FieldShifted,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	RunIDValidator func(string) error
	// SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	SubjectIDValidator func(string) error
	// PrimaryValidator is a validator for the "primary" field. It is called by the builders before save.
	PrimaryValidator func(string) error
)

// OrderOption defines the ordering options for the ClassificationEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// BySubjectID orders the results by the subject_id field.
func BySubjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectID, opts...).ToFunc()
}

// ByPrimary orders the results by the primary field.
func ByPrimary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrimary, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByTriangulationScore orders the results by the triangulation_score field.
func ByTriangulationScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriangulationScore, opts...).ToFunc()
}

// ByTriangulated orders the results by the triangulated field.
func ByTriangulated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriangulated, opts...).ToFunc()
}

// ByShifted orders the results by the shifted field.
func ByShifted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShifted, opts...).ToFunc()
}
