// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/learnaura/aura/ent/classificationevent"
)

// ClassificationEvent is the model entity for the ClassificationEvent schema.
type ClassificationEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// SubjectID holds the value of the "subject_id" field.
	SubjectID string `json:"subject_id,omitempty"`
	// Primary category assignment
	Primary string `json:"primary,omitempty"`
	// Up to two secondary categories, descending by score
	Secondary []string `json:"secondary,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// Combined category scores on the 0-100 scale
	CategoryScores map[string]int `json:"category_scores,omitempty"`
	// Rater agreement in [0,1]; 0 when not triangulated
	TriangulationScore float64 `json:"triangulation_score,omitempty"`
	// Whether two raters were available to compare
	Triangulated bool `json:"triangulated,omitempty"`
	// Primary differs from the previous classification
	Shifted      bool `json:"shifted,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ClassificationEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case classificationevent.FieldSecondary, classificationevent.FieldCategoryScores:
			values[i] = new([]byte)
		case classificationevent.FieldTriangulated, classificationevent.FieldShifted:
			values[i] = new(sql.NullBool)
		case classificationevent.FieldConfidence, classificationevent.FieldTriangulationScore:
			values[i] = new(sql.NullFloat64)
		case classificationevent.FieldID, classificationevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case classificationevent.FieldRunID, classificationevent.FieldSubjectID, classificationevent.FieldPrimary:
			values[i] = new(sql.NullString)
		case classificationevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ClassificationEvent fields.
func (_m *ClassificationEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case classificationevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case classificationevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case classificationevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case classificationevent.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case classificationevent.FieldSubjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject_id", values[i])
			} else if value.Valid {
				_m.SubjectID = value.String
			}
		case classificationevent.FieldPrimary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field primary", values[i])
			} else if value.Valid {
				_m.Primary = value.String
			}
		case classificationevent.FieldSecondary:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field secondary", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Secondary); err != nil {
					return fmt.Errorf("unmarshal field secondary: %w", err)
				}
			}
		case classificationevent.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case classificationevent.FieldCategoryScores:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field category_scores", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CategoryScores); err != nil {
					return fmt.Errorf("unmarshal field category_scores: %w", err)
				}
			}
		case classificationevent.FieldTriangulationScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field triangulation_score", values[i])
			} else if value.Valid {
				_m.TriangulationScore = value.Float64
			}
		case classificationevent.FieldTriangulated:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field triangulated", values[i])
			} else if value.Valid {
				_m.Triangulated = value.Bool
			}
		case classificationevent.FieldShifted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field shifted", values[i])
			} else if value.Valid {
				_m.Shifted = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ClassificationEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ClassificationEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ClassificationEvent.
// Note that you need to call ClassificationEvent.Unwrap() before calling this method if this ClassificationEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ClassificationEvent) Update() *ClassificationEventUpdateOne {
	return NewClassificationEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ClassificationEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ClassificationEvent) Unwrap() *ClassificationEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ClassificationEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ClassificationEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ClassificationEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("subject_id=")
	builder.WriteString(_m.SubjectID)
	builder.WriteString(", ")
	builder.WriteString("primary=")
	builder.WriteString(_m.Primary)
	builder.WriteString(", ")
	builder.WriteString("secondary=")
	builder.WriteString(fmt.Sprintf("%v", _m.Secondary))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("category_scores=")
	builder.WriteString(fmt.Sprintf("%v", _m.CategoryScores))
	builder.WriteString(", ")
	builder.WriteString("triangulation_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.TriangulationScore))
	builder.WriteString(", ")
	builder.WriteString("triangulated=")
	builder.WriteString(fmt.Sprintf("%v", _m.Triangulated))
	builder.WriteString(", ")
	builder.WriteString("shifted=")
	builder.WriteString(fmt.Sprintf("%v", _m.Shifted))
	builder.WriteByte(')')
	return builder.String()
}

// ClassificationEvents is a parsable slice of ClassificationEvent.
type ClassificationEvents []*ClassificationEvent
