// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/learnaura/aura/ent/cognitiveevent"
)

// CognitiveEvent is the model entity for the CognitiveEvent schema.
type CognitiveEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Links events produced by the same assessment run
	RunID string `json:"run_id,omitempty"`
	// Student UUID
	SubjectID string `json:"subject_id,omitempty"`
	// student or parent
	Rater string `json:"rater,omitempty"`
	// Per-domain averages on the 1-5 scale
	DomainScores map[string]float64 `json:"domain_scores,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CognitiveEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case cognitiveevent.FieldDomainScores:
			values[i] = new([]byte)
		case cognitiveevent.FieldID, cognitiveevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case cognitiveevent.FieldRunID, cognitiveevent.FieldSubjectID, cognitiveevent.FieldRater:
			values[i] = new(sql.NullString)
		case cognitiveevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CognitiveEvent fields.
func (_m *CognitiveEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case cognitiveevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case cognitiveevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case cognitiveevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case cognitiveevent.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case cognitiveevent.FieldSubjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject_id", values[i])
			} else if value.Valid {
				_m.SubjectID = value.String
			}
		case cognitiveevent.FieldRater:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rater", values[i])
			} else if value.Valid {
				_m.Rater = value.String
			}
		case cognitiveevent.FieldDomainScores:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field domain_scores", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DomainScores); err != nil {
					return fmt.Errorf("unmarshal field domain_scores: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CognitiveEvent.
// This includes values selected through modifiers, order, etc.
func (_m *CognitiveEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CognitiveEvent.
// Note that you need to call CognitiveEvent.Unwrap() before calling this method if this CognitiveEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CognitiveEvent) Update() *CognitiveEventUpdateOne {
	return NewCognitiveEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CognitiveEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CognitiveEvent) Unwrap() *CognitiveEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CognitiveEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CognitiveEvent) String() string {
	var builder strings.Builder
	builder.WriteString("CognitiveEvent(")
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
	builder.WriteString("rater=")
	builder.WriteString(_m.Rater)
	builder.WriteString(", ")
	builder.WriteString("domain_scores=")
	builder.WriteString(fmt.Sprintf("%v", _m.DomainScores))
	builder.WriteByte(')')
	return builder.String()
}

// CognitiveEvents is a parsable slice of CognitiveEvent.
type CognitiveEvents []*CognitiveEvent
