// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AcademicEventsColumns holds the columns for the "academic_events" table.
	AcademicEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
		{Name: "subject_id", Type: field.TypeString},
		{Name: "correct", Type: field.TypeInt},
		{Name: "total", Type: field.TypeInt},
		{Name: "percentage", Type: field.TypeFloat64},
		{Name: "tier", Type: field.TypeInt},
		{Name: "confidence", Type: field.TypeFloat64},
	}
	// AcademicEventsTable holds the schema information for the "academic_events" table.
	AcademicEventsTable = &schema.Table{
		Name:       "academic_events",
		Columns:    AcademicEventsColumns,
		PrimaryKey: []*schema.Column{AcademicEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "academicevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AcademicEventsColumns[1]},
			},
			{
				Name:    "academicevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AcademicEventsColumns[2]},
			},
			{
				Name:    "academicevent_subject_id",
				Unique:  false,
				Columns: []*schema.Column{AcademicEventsColumns[4]},
			},
			{
				Name:    "academicevent_run_id",
				Unique:  false,
				Columns: []*schema.Column{AcademicEventsColumns[3]},
			},
		},
	}
	// ClassificationEventsColumns holds the columns for the "classification_events" table.
	ClassificationEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
		{Name: "subject_id", Type: field.TypeString},
		{Name: "primary", Type: field.TypeString},
		{Name: "secondary", Type: field.TypeJSON},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "category_scores", Type: field.TypeJSON},
		{Name: "triangulation_score", Type: field.TypeFloat64},
		{Name: "triangulated", Type: field.TypeBool},
		{Name: "shifted", Type: field.TypeBool},
	}
	// ClassificationEventsTable holds the schema information for the "classification_events" table.
	ClassificationEventsTable = &schema.Table{
		Name:       "classification_events",
		Columns:    ClassificationEventsColumns,
		PrimaryKey: []*schema.Column{ClassificationEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "classificationevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ClassificationEventsColumns[1]},
			},
			{
				Name:    "classificationevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ClassificationEventsColumns[2]},
			},
			{
				Name:    "classificationevent_subject_id",
				Unique:  false,
				Columns: []*schema.Column{ClassificationEventsColumns[4]},
			},
			{
				Name:    "classificationevent_run_id",
				Unique:  false,
				Columns: []*schema.Column{ClassificationEventsColumns[3]},
			},
		},
	}
	// CognitiveEventsColumns holds the columns for the "cognitive_events" table.
	CognitiveEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
		{Name: "subject_id", Type: field.TypeString},
		{Name: "rater", Type: field.TypeString},
		{Name: "domain_scores", Type: field.TypeJSON},
	}
	// CognitiveEventsTable holds the schema information for the "cognitive_events" table.
	CognitiveEventsTable = &schema.Table{
		Name:       "cognitive_events",
		Columns:    CognitiveEventsColumns,
		PrimaryKey: []*schema.Column{CognitiveEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "cognitiveevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{CognitiveEventsColumns[1]},
			},
			{
				Name:    "cognitiveevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{CognitiveEventsColumns[2]},
			},
			{
				Name:    "cognitiveevent_subject_id",
				Unique:  false,
				Columns: []*schema.Column{CognitiveEventsColumns[4]},
			},
			{
				Name:    "cognitiveevent_run_id",
				Unique:  false,
				Columns: []*schema.Column{CognitiveEventsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AcademicEventsTable,
		ClassificationEventsTable,
		CognitiveEventsTable,
	}
)

func init() {
}
