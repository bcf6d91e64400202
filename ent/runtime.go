// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/learnaura/aura/ent/academicevent"
	"github.com/learnaura/aura/ent/classificationevent"
	"github.com/learnaura/aura/ent/cognitiveevent"
	"github.com/learnaura/aura/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	academiceventMixin := schema.AcademicEvent{}.Mixin()
	academiceventMixinFields0 := academiceventMixin[0].Fields()
	_ = academiceventMixinFields0
	academiceventFields := schema.AcademicEvent{}.Fields()
	_ = academiceventFields
	// academiceventDescTimestamp is the schema descriptor for timestamp field.
	academiceventDescTimestamp := academiceventMixinFields0[1].Descriptor()
	// academicevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	academicevent.DefaultTimestamp = academiceventDescTimestamp.Default.(func() time.Time)
	// academiceventDescRunID is the schema descriptor for run_id field.
	academiceventDescRunID := academiceventFields[0].Descriptor()
	// academicevent.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	academicevent.RunIDValidator = academiceventDescRunID.Validators[0].(func(string) error)
	// academiceventDescSubjectID is the schema descriptor for subject_id field.
	academiceventDescSubjectID := academiceventFields[1].Descriptor()
	// academicevent.SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	academicevent.SubjectIDValidator = academiceventDescSubjectID.Validators[0].(func(string) error)
	classificationeventMixin := schema.ClassificationEvent{}.Mixin()
	classificationeventMixinFields0 := classificationeventMixin[0].Fields()
	_ = classificationeventMixinFields0
	classificationeventFields := schema.ClassificationEvent{}.Fields()
	_ = classificationeventFields
	// classificationeventDescTimestamp is the schema descriptor for timestamp field.
	classificationeventDescTimestamp := classificationeventMixinFields0[1].Descriptor()
	// classificationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	classificationevent.DefaultTimestamp = classificationeventDescTimestamp.Default.(func() time.Time)
	// classificationeventDescRunID is the schema descriptor for run_id field.
	classificationeventDescRunID := classificationeventFields[0].Descriptor()
	// classificationevent.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	classificationevent.RunIDValidator = classificationeventDescRunID.Validators[0].(func(string) error)
	// classificationeventDescSubjectID is the schema descriptor for subject_id field.
	classificationeventDescSubjectID := classificationeventFields[1].Descriptor()
	// classificationevent.SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	classificationevent.SubjectIDValidator = classificationeventDescSubjectID.Validators[0].(func(string) error)
	// classificationeventDescPrimary is the schema descriptor for primary field.
	classificationeventDescPrimary := classificationeventFields[2].Descriptor()
	// classificationevent.PrimaryValidator is a validator for the "primary" field. It is called by the builders before save.
	classificationevent.PrimaryValidator = classificationeventDescPrimary.Validators[0].(func(string) error)
	cognitiveeventMixin := schema.CognitiveEvent{}.Mixin()
	cognitiveeventMixinFields0 := cognitiveeventMixin[0].Fields()
	_ = cognitiveeventMixinFields0
	cognitiveeventFields := schema.CognitiveEvent{}.Fields()
	_ = cognitiveeventFields
	// cognitiveeventDescTimestamp is the schema descriptor for timestamp field.
	cognitiveeventDescTimestamp := cognitiveeventMixinFields0[1].Descriptor()
	// cognitiveevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	cognitiveevent.DefaultTimestamp = cognitiveeventDescTimestamp.Default.(func() time.Time)
	// cognitiveeventDescRunID is the schema descriptor for run_id field.
	cognitiveeventDescRunID := cognitiveeventFields[0].Descriptor()
	// cognitiveevent.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	cognitiveevent.RunIDValidator = cognitiveeventDescRunID.Validators[0].(func(string) error)
	// cognitiveeventDescSubjectID is the schema descriptor for subject_id field.
	cognitiveeventDescSubjectID := cognitiveeventFields[1].Descriptor()
	// cognitiveevent.SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	cognitiveevent.SubjectIDValidator = cognitiveeventDescSubjectID.Validators[0].(func(string) error)
	// cognitiveeventDescRater is the schema descriptor for rater field.
	cognitiveeventDescRater := cognitiveeventFields[2].Descriptor()
	// cognitiveevent.RaterValidator is a validator for the "rater" field. It is called by the builders before save.
	cognitiveevent.RaterValidator = cognitiveeventDescRater.Validators[0].(func(string) error)
}
