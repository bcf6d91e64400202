// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/learnaura/aura/ent/cognitiveevent"
	"github.com/learnaura/aura/ent/predicate"
)

// CognitiveEventUpdate is the builder for updating CognitiveEvent entities.
type CognitiveEventUpdate struct {
	config
	hooks    []Hook
	mutation *CognitiveEventMutation
}

// Where appends a list predicates to the CognitiveEventUpdate builder.
func (_u *CognitiveEventUpdate) Where(ps ...predicate.CognitiveEvent) *CognitiveEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *CognitiveEventUpdate) SetRunID(v string) *CognitiveEventUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *CognitiveEventUpdate) SetNillableRunID(v *string) *CognitiveEventUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *CognitiveEventUpdate) SetSubjectID(v string) *CognitiveEventUpdate {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *CognitiveEventUpdate) SetNillableSubjectID(v *string) *CognitiveEventUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetRater sets the "rater" field.
func (_u *CognitiveEventUpdate) SetRater(v string) *CognitiveEventUpdate {
	_u.mutation.SetRater(v)
	return _u
}

// SetNillableRater sets the "rater" field if the given value is not nil.
func (_u *CognitiveEventUpdate) SetNillableRater(v *string) *CognitiveEventUpdate {
	if v != nil {
		_u.SetRater(*v)
	}
	return _u
}

// SetDomainScores sets the "domain_scores" field.
func (_u *CognitiveEventUpdate) SetDomainScores(v map[string]float64) *CognitiveEventUpdate {
	_u.mutation.SetDomainScores(v)
	return _u
}

// Mutation returns the CognitiveEventMutation object of the builder.
func (_u *CognitiveEventUpdate) Mutation() *CognitiveEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CognitiveEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CognitiveEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CognitiveEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CognitiveEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CognitiveEventUpdate) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := cognitiveevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "CognitiveEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := cognitiveevent.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "CognitiveEvent.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rater(); ok {
		if err := cognitiveevent.RaterValidator(v); err != nil {
			return &ValidationError{Name: "rater", err: fmt.Errorf(`ent: validator failed for field "CognitiveEvent.rater": %w`, err)}
		}
	}
	return nil
}

func (_u *CognitiveEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cognitiveevent.Table, cognitiveevent.Columns, sqlgraph.NewFieldSpec(cognitiveevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(cognitiveevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(cognitiveevent.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rater(); ok {
		_spec.SetField(cognitiveevent.FieldRater, field.TypeString, value)
	}
	if value, ok := _u.mutation.DomainScores(); ok {
		_spec.SetField(cognitiveevent.FieldDomainScores, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cognitiveevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CognitiveEventUpdateOne is the builder for updating a single CognitiveEvent entity.
type CognitiveEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CognitiveEventMutation
}

// SetRunID sets the "run_id" field.
func (_u *CognitiveEventUpdateOne) SetRunID(v string) *CognitiveEventUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *CognitiveEventUpdateOne) SetNillableRunID(v *string) *CognitiveEventUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *CognitiveEventUpdateOne) SetSubjectID(v string) *CognitiveEventUpdateOne {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *CognitiveEventUpdateOne) SetNillableSubjectID(v *string) *CognitiveEventUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetRater sets the "rater" field.
func (_u *CognitiveEventUpdateOne) SetRater(v string) *CognitiveEventUpdateOne {
	_u.mutation.SetRater(v)
	return _u
}

// SetNillableRater sets the "rater" field if the given value is not nil.
func (_u *CognitiveEventUpdateOne) SetNillableRater(v *string) *CognitiveEventUpdateOne {
	if v != nil {
		_u.SetRater(*v)
	}
	return _u
}

// SetDomainScores sets the "domain_scores" field.
func (_u *CognitiveEventUpdateOne) SetDomainScores(v map[string]float64) *CognitiveEventUpdateOne {
	_u.mutation.SetDomainScores(v)
	return _u
}

// Mutation returns the CognitiveEventMutation object of the builder.
func (_u *CognitiveEventUpdateOne) Mutation() *CognitiveEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the CognitiveEventUpdate builder.
func (_u *CognitiveEventUpdateOne) Where(ps ...predicate.CognitiveEvent) *CognitiveEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CognitiveEventUpdateOne) Select(field string, fields ...string) *CognitiveEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CognitiveEvent entity.
func (_u *CognitiveEventUpdateOne) Save(ctx context.Context) (*CognitiveEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CognitiveEventUpdateOne) SaveX(ctx context.Context) *CognitiveEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CognitiveEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CognitiveEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CognitiveEventUpdateOne) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := cognitiveevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "CognitiveEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := cognitiveevent.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "CognitiveEvent.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rater(); ok {
		if err := cognitiveevent.RaterValidator(v); err != nil {
			return &ValidationError{Name: "rater", err: fmt.Errorf(`ent: validator failed for field "CognitiveEvent.rater": %w`, err)}
		}
	}
	return nil
}

func (_u *CognitiveEventUpdateOne) sqlSave(ctx context.Context) (_node *CognitiveEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cognitiveevent.Table, cognitiveevent.Columns, sqlgraph.NewFieldSpec(cognitiveevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CognitiveEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cognitiveevent.FieldID)
		for _, f := range fields {
			if !cognitiveevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cognitiveevent.FieldID {
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
		_spec.SetField(cognitiveevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(cognitiveevent.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rater(); ok {
		_spec.SetField(cognitiveevent.FieldRater, field.TypeString, value)
	}
	if value, ok := _u.mutation.DomainScores(); ok {
		_spec.SetField(cognitiveevent.FieldDomainScores, field.TypeJSON, value)
	}
	_node = &CognitiveEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cognitiveevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
