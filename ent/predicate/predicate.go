// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AcademicEvent is the predicate function for academicevent builders.
type AcademicEvent func(*sql.Selector)

// ClassificationEvent is the predicate function for classificationevent builders.
type ClassificationEvent func(*sql.Selector)

// CognitiveEvent is the predicate function for cognitiveevent builders.
type CognitiveEvent func(*sql.Selector)
