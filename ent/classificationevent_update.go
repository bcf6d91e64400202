// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/learnaura/aura/ent/classificationevent"
	"github.com/learnaura/aura/ent/predicate"
)

// ClassificationEventUpdate is the builder for updating ClassificationEvent entities.
type ClassificationEventUpdate struct {
	config
	hooks    []Hook
	mutation *ClassificationEventMutation
}

// Where appends a list predicates to the ClassificationEventUpdate builder.
func (_u *ClassificationEventUpdate) Where(ps ...predicate.ClassificationEvent) *ClassificationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *ClassificationEventUpdate) SetRunID(v string) *ClassificationEventUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *ClassificationEventUpdate) SetNillableRunID(v *string) *ClassificationEventUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *ClassificationEventUpdate) SetSubjectID(v string) *ClassificationEventUpdate {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *ClassificationEventUpdate) SetNillableSubjectID(v *string) *ClassificationEventUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetPrimary sets the "primary" field.
func (_u *ClassificationEventUpdate) SetPrimary(v string) *ClassificationEventUpdate {
	_u.mutation.SetPrimary(v)
	return _u
}

// SetNillablePrimary sets the "primary" field if the given value is not nil.
func (_u *ClassificationEventUpdate) SetNillablePrimary(v *string) *ClassificationEventUpdate {
	if v != nil {
		_u.SetPrimary(*v)
	}
	return _u
}

// SetSecondary sets the "secondary" field.
func (_u *ClassificationEventUpdate) SetSecondary(v []string) *ClassificationEventUpdate {
	_u.mutation.SetSecondary(v)
	return _u
}

// AppendSecondary appends value to the "secondary" field.
func (_u *ClassificationEventUpdate) AppendSecondary(v []string) *ClassificationEventUpdate {
	_u.mutation.AppendSecondary(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ClassificationEventUpdate) SetConfidence(v float64) *ClassificationEventUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ClassificationEventUpdate) SetNillableConfidence(v *float64) *ClassificationEventUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ClassificationEventUpdate) AddConfidence(v float64) *ClassificationEventUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetCategoryScores sets the "category_scores" field.
func (_u *ClassificationEventUpdate) SetCategoryScores(v map[string]int) *ClassificationEventUpdate {
	_u.mutation.SetCategoryScores(v)
	return _u
}

// SetTriangulationScore sets the "triangulation_score" field.
func (_u *ClassificationEventUpdate) SetTriangulationScore(v float64) *ClassificationEventUpdate {
	_u.mutation.ResetTriangulationScore()
	_u.mutation.SetTriangulationScore(v)
	return _u
}

// SetNillableTriangulationScore sets the "triangulation_score" field if the given value is not nil.
func (_u *ClassificationEventUpdate) SetNillableTriangulationScore(v *float64) *ClassificationEventUpdate {
	if v != nil {
		_u.SetTriangulationScore(*v)
	}
	return _u
}

// AddTriangulationScore adds value to the "triangulation_score" field.
func (_u *ClassificationEventUpdate) AddTriangulationScore(v float64) *ClassificationEventUpdate {
	_u.mutation.AddTriangulationScore(v)
	return _u
}

// SetTriangulated sets the "triangulated" field.
func (_u *ClassificationEventUpdate) SetTriangulated(v bool) *ClassificationEventUpdate {
	_u.mutation.SetTriangulated(v)
	return _u
}

// SetNillableTriangulated sets the "triangulated" field if the given value is not nil.
func (_u *ClassificationEventUpdate) SetNillableTriangulated(v *bool) *ClassificationEventUpdate {
	if v != nil {
		_u.SetTriangulated(*v)
	}
	return _u
}

// SetShifted sets the "shifted" field.
func (_u *ClassificationEventUpdate) SetShifted(v bool) *ClassificationEventUpdate {
	_u.mutation.SetShifted(v)
	return _u
}

// SetNillableShifted sets the "shifted" field if the given value is not nil.
func (_u *ClassificationEventUpdate) SetNillableShifted(v *bool) *ClassificationEventUpdate {
	if v != nil {
		_u.SetShifted(*v)
	}
	return _u
}

// Mutation returns the ClassificationEventMutation object of the builder.
func (_u *ClassificationEventUpdate) Mutation() *ClassificationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClassificationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClassificationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClassificationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClassificationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClassificationEventUpdate) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := classificationevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "ClassificationEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := classificationevent.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "ClassificationEvent.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Primary(); ok {
		if err := classificationevent.PrimaryValidator(v); err != nil {
			return &ValidationError{Name: "primary", err: fmt.Errorf(`ent: validator failed for field "ClassificationEvent.primary": %w`, err)}
		}
	}
	return nil
}

func (_u *ClassificationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(classificationevent.Table, classificationevent.Columns, sqlgraph.NewFieldSpec(classificationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(classificationevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(classificationevent.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Primary(); ok {
		_spec.SetField(classificationevent.FieldPrimary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Secondary(); ok {
		_spec.SetField(classificationevent.FieldSecondary, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSecondary(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, classificationevent.FieldSecondary, value)
		})
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(classificationevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(classificationevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CategoryScores(); ok {
		_spec.SetField(classificationevent.FieldCategoryScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.TriangulationScore(); ok {
		_spec.SetField(classificationevent.FieldTriangulationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTriangulationScore(); ok {
		_spec.AddField(classificationevent.FieldTriangulationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Triangulated(); ok {
		_spec.SetField(classificationevent.FieldTriangulated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Shifted(); ok {
		_spec.SetField(classificationevent.FieldShifted, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{classificationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClassificationEventUpdateOne is the builder for updating a single ClassificationEvent entity.
type ClassificationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClassificationEventMutation
}

// SetRunID sets the "run_id" field.
func (_u *ClassificationEventUpdateOne) SetRunID(v string) *ClassificationEventUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *ClassificationEventUpdateOne) SetNillableRunID(v *string) *ClassificationEventUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *ClassificationEventUpdateOne) SetSubjectID(v string) *ClassificationEventUpdateOne {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *ClassificationEventUpdateOne) SetNillableSubjectID(v *string) *ClassificationEventUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetPrimary sets the "primary" field.
func (_u *ClassificationEventUpdateOne) SetPrimary(v string) *ClassificationEventUpdateOne {
	_u.mutation.SetPrimary(v)
	return _u
}

// SetNillablePrimary sets the "primary" field if the given value is not nil.
func (_u *ClassificationEventUpdateOne) SetNillablePrimary(v *string) *ClassificationEventUpdateOne {
	if v != nil {
		_u.SetPrimary(*v)
	}
	return _u
}

// SetSecondary sets the "secondary" field.
func (_u *ClassificationEventUpdateOne) SetSecondary(v []string) *ClassificationEventUpdateOne {
	_u.mutation.SetSecondary(v)
	return _u
}

// AppendSecondary appends value to the "secondary" field.
func (_u *ClassificationEventUpdateOne) AppendSecondary(v []string) *ClassificationEventUpdateOne {
	_u.mutation.AppendSecondary(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ClassificationEventUpdateOne) SetConfidence(v float64) *ClassificationEventUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ClassificationEventUpdateOne) SetNillableConfidence(v *float64) *ClassificationEventUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ClassificationEventUpdateOne) AddConfidence(v float64) *ClassificationEventUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetCategoryScores sets the "category_scores" field.
func (_u *ClassificationEventUpdateOne) SetCategoryScores(v map[string]int) *ClassificationEventUpdateOne {
	_u.mutation.SetCategoryScores(v)
	return _u
}

// SetTriangulationScore sets the "triangulation_score" field.
func (_u *ClassificationEventUpdateOne) SetTriangulationScore(v float64) *ClassificationEventUpdateOne {
	_u.mutation.ResetTriangulationScore()
	_u.mutation.SetTriangulationScore(v)
	return _u
}

// SetNillableTriangulationScore sets the "triangulation_score" field if the given value is not nil.
func (_u *ClassificationEventUpdateOne) SetNillableTriangulationScore(v *float64) *ClassificationEventUpdateOne {
	if v != nil {
		_u.SetTriangulationScore(*v)
	}
	return _u
}

// AddTriangulationScore adds value to the "triangulation_score" field.
func (_u *ClassificationEventUpdateOne) AddTriangulationScore(v float64) *ClassificationEventUpdateOne {
	_u.mutation.AddTriangulationScore(v)
	return _u
}

// SetTriangulated sets the "triangulated" field.
func (_u *ClassificationEventUpdateOne) SetTriangulated(v bool) *ClassificationEventUpdateOne {
	_u.mutation.SetTriangulated(v)
	return _u
}

// SetNillableTriangulated sets the "triangulated" field if the given value is not nil.
func (_u *ClassificationEventUpdateOne) SetNillableTriangulated(v *bool) *ClassificationEventUpdateOne {
	if v != nil {
		_u.SetTriangulated(*v)
	}
	return _u
}

// SetShifted sets the "shifted" field.
func (_u *ClassificationEventUpdateOne) SetShifted(v bool) *ClassificationEventUpdateOne {
	_u.mutation.SetShifted(v)
	return _u
}

// SetNillableShifted sets the "shifted" field if the given value is not nil.
func (_u *ClassificationEventUpdateOne) SetNillableShifted(v *bool) *ClassificationEventUpdateOne {
	if v != nil {
		_u.SetShifted(*v)
	}
	return _u
}

// Mutation returns the ClassificationEventMutation object of the builder.
func (_u *ClassificationEventUpdateOne) Mutation() *ClassificationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ClassificationEventUpdate builder.
func (_u *ClassificationEventUpdateOne) Where(ps ...predicate.ClassificationEvent) *ClassificationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClassificationEventUpdateOne) Select(field string, fields ...string) *ClassificationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ClassificationEvent entity.
func (_u *ClassificationEventUpdateOne) Save(ctx context.Context) (*ClassificationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClassificationEventUpdateOne) SaveX(ctx context.Context) *ClassificationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClassificationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClassificationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClassificationEventUpdateOne) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := classificationevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "ClassificationEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := classificationevent.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "ClassificationEvent.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Primary(); ok {
		if err := classificationevent.PrimaryValidator(v); err != nil {
			return &ValidationError{Name: "primary", err: fmt.Errorf(`ent: validator failed for field "ClassificationEvent.primary": %w`, err)}
		}
	}
	return nil
}

func (_u *ClassificationEventUpdateOne) sqlSave(ctx context.Context) (_node *ClassificationEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(classificationevent.Table, classificationevent.Columns, sqlgraph.NewFieldSpec(classificationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ClassificationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, classificationevent.FieldID)
		for _, f := range fields {
			if !classificationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != classificationevent.FieldID {
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
		_spec.SetField(classificationevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(classificationevent.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Primary(); ok {
		_spec.SetField(classificationevent.FieldPrimary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Secondary(); ok {
		_spec.SetField(classificationevent.FieldSecondary, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSecondary(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, classificationevent.FieldSecondary, value)
		})
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(classificationevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(classificationevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CategoryScores(); ok {
		_spec.SetField(classificationevent.FieldCategoryScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.TriangulationScore(); ok {
		_spec.SetField(classificationevent.FieldTriangulationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTriangulationScore(); ok {
		_spec.AddField(classificationevent.FieldTriangulationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Triangulated(); ok {
		_spec.SetField(classificationevent.FieldTriangulated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Shifted(); ok {
		_spec.SetField(classificationevent.FieldShifted, field.TypeBool, value)
	}
	_node = &ClassificationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{classificationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
