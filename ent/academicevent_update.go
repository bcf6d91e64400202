// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/learnaura/aura/ent/academicevent"
	"github.com/learnaura/aura/ent/predicate"
)

// AcademicEventUpdate is the builder for updating AcademicEvent entities.
type AcademicEventUpdate struct {
	config
	hooks    []Hook
	mutation *AcademicEventMutation
}

// Where appends a list predicates to the AcademicEventUpdate builder.
func (_u *AcademicEventUpdate) Where(ps ...predicate.AcademicEvent) *AcademicEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *AcademicEventUpdate) SetRunID(v string) *AcademicEventUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *AcademicEventUpdate) SetNillableRunID(v *string) *AcademicEventUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *AcademicEventUpdate) SetSubjectID(v string) *AcademicEventUpdate {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *AcademicEventUpdate) SetNillableSubjectID(v *string) *AcademicEventUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AcademicEventUpdate) SetCorrect(v int) *AcademicEventUpdate {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AcademicEventUpdate) SetNillableCorrect(v *int) *AcademicEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *AcademicEventUpdate) AddCorrect(v int) *AcademicEventUpdate {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *AcademicEventUpdate) SetTotal(v int) *AcademicEventUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *AcademicEventUpdate) SetNillableTotal(v *int) *AcademicEventUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *AcademicEventUpdate) AddTotal(v int) *AcademicEventUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetPercentage sets the "percentage" field.
func (_u *AcademicEventUpdate) SetPercentage(v float64) *AcademicEventUpdate {
	_u.mutation.ResetPercentage()
	_u.mutation.SetPercentage(v)
	return _u
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (_u *AcademicEventUpdate) SetNillablePercentage(v *float64) *AcademicEventUpdate {
	if v != nil {
		_u.SetPercentage(*v)
	}
	return _u
}

// AddPercentage adds value to the "percentage" field.
func (_u *AcademicEventUpdate) AddPercentage(v float64) *AcademicEventUpdate {
	_u.mutation.AddPercentage(v)
	return _u
}

// SetTier sets the "tier" field.
func (_u *AcademicEventUpdate) SetTier(v int) *AcademicEventUpdate {
	_u.mutation.ResetTier()
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *AcademicEventUpdate) SetNillableTier(v *int) *AcademicEventUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// AddTier adds value to the "tier" field.
func (_u *AcademicEventUpdate) AddTier(v int) *AcademicEventUpdate {
	_u.mutation.AddTier(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *AcademicEventUpdate) SetConfidence(v float64) *AcademicEventUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *AcademicEventUpdate) SetNillableConfidence(v *float64) *AcademicEventUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *AcademicEventUpdate) AddConfidence(v float64) *AcademicEventUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// Mutation returns the AcademicEventMutation object of the builder.
func (_u *AcademicEventUpdate) Mutation() *AcademicEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AcademicEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AcademicEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AcademicEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AcademicEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AcademicEventUpdate) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := academicevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "AcademicEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := academicevent.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "AcademicEvent.subject_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AcademicEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(academicevent.Table, academicevent.Columns, sqlgraph.NewFieldSpec(academicevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(academicevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(academicevent.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(academicevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(academicevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(academicevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(academicevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Percentage(); ok {
		_spec.SetField(academicevent.FieldPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPercentage(); ok {
		_spec.AddField(academicevent.FieldPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(academicevent.FieldTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTier(); ok {
		_spec.AddField(academicevent.FieldTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(academicevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(academicevent.FieldConfidence, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{academicevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AcademicEventUpdateOne is the builder for updating a single AcademicEvent entity.
type AcademicEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AcademicEventMutation
}

// SetRunID sets the "run_id" field.
func (_u *AcademicEventUpdateOne) SetRunID(v string) *AcademicEventUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *AcademicEventUpdateOne) SetNillableRunID(v *string) *AcademicEventUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *AcademicEventUpdateOne) SetSubjectID(v string) *AcademicEventUpdateOne {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *AcademicEventUpdateOne) SetNillableSubjectID(v *string) *AcademicEventUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AcademicEventUpdateOne) SetCorrect(v int) *AcademicEventUpdateOne {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AcademicEventUpdateOne) SetNillableCorrect(v *int) *AcademicEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *AcademicEventUpdateOne) AddCorrect(v int) *AcademicEventUpdateOne {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *AcademicEventUpdateOne) SetTotal(v int) *AcademicEventUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *AcademicEventUpdateOne) SetNillableTotal(v *int) *AcademicEventUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *AcademicEventUpdateOne) AddTotal(v int) *AcademicEventUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetPercentage sets the "percentage" field.
func (_u *AcademicEventUpdateOne) SetPercentage(v float64) *AcademicEventUpdateOne {
	_u.mutation.ResetPercentage()
	_u.mutation.SetPercentage(v)
	return _u
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (_u *AcademicEventUpdateOne) SetNillablePercentage(v *float64) *AcademicEventUpdateOne {
	if v != nil {
		_u.SetPercentage(*v)
	}
	return _u
}

// AddPercentage adds value to the "percentage" field.
func (_u *AcademicEventUpdateOne) AddPercentage(v float64) *AcademicEventUpdateOne {
	_u.mutation.AddPercentage(v)
	return _u
}

// SetTier sets the "tier" field.
func (_u *AcademicEventUpdateOne) SetTier(v int) *AcademicEventUpdateOne {
	_u.mutation.ResetTier()
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *AcademicEventUpdateOne) SetNillableTier(v *int) *AcademicEventUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// AddTier adds value to the "tier" field.
func (_u *AcademicEventUpdateOne) AddTier(v int) *AcademicEventUpdateOne {
	_u.mutation.AddTier(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *AcademicEventUpdateOne) SetConfidence(v float64) *AcademicEventUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *AcademicEventUpdateOne) SetNillableConfidence(v *float64) *AcademicEventUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *AcademicEventUpdateOne) AddConfidence(v float64) *AcademicEventUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// Mutation returns the AcademicEventMutation object of the builder.
func (_u *AcademicEventUpdateOne) Mutation() *AcademicEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AcademicEventUpdate builder.
func (_u *AcademicEventUpdateOne) Where(ps ...predicate.AcademicEvent) *AcademicEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AcademicEventUpdateOne) Select(field string, fields ...string) *AcademicEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AcademicEvent entity.
func (_u *AcademicEventUpdateOne) Save(ctx context.Context) (*AcademicEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AcademicEventUpdateOne) SaveX(ctx context.Context) *AcademicEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AcademicEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AcademicEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AcademicEventUpdateOne) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := academicevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "AcademicEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := academicevent.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "AcademicEvent.subject_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AcademicEventUpdateOne) sqlSave(ctx context.Context) (_node *AcademicEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(academicevent.Table, academicevent.Columns, sqlgraph.NewFieldSpec(academicevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AcademicEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, academicevent.FieldID)
		for _, f := range fields {
			if !academicevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != academicevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(academicevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(academicevent.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(academicevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(academicevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(academicevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(academicevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Percentage(); ok {
		_spec.SetField(academicevent.FieldPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPercentage(); ok {
		_spec.AddField(academicevent.FieldPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(academicevent.FieldTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTier(); ok {
		_spec.AddField(academicevent.FieldTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(academicevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(academicevent.FieldConfidence, field.TypeFloat64, value)
	}
	_node = &AcademicEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{academicevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
