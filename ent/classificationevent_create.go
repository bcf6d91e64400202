// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/learnaura/aura/ent/classificationevent"
)

// ClassificationEventCreate is the builder for creating a ClassificationEvent entity.
type ClassificationEventCreate struct {
	config
	mutation *ClassificationEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ClassificationEventCreate) SetSequence(v int64) *ClassificationEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ClassificationEventCreate) SetTimestamp(v time.Time) *ClassificationEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ClassificationEventCreate) SetNillableTimestamp(v *time.Time) *ClassificationEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *ClassificationEventCreate) SetRunID(v string) *ClassificationEventCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetSubjectID sets the "subject_id" field.
func (_c *ClassificationEventCreate) SetSubjectID(v string) *ClassificationEventCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetPrimary sets the "primary" field.
func (_c *ClassificationEventCreate) SetPrimary(v string) *ClassificationEventCreate {
	_c.mutation.SetPrimary(v)
	return _c
}

// SetSecondary sets the "secondary" field.
func (_c *ClassificationEventCreate) SetSecondary(v []string) *ClassificationEventCreate {
	_c.mutation.SetSecondary(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ClassificationEventCreate) SetConfidence(v float64) *ClassificationEventCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetCategoryScores sets the "category_scores" field.
func (_c *ClassificationEventCreate) SetCategoryScores(v map[string]int) *ClassificationEventCreate {
	_c.mutation.SetCategoryScores(v)
	return _c
}

// SetTriangulationScore sets the "triangulation_score" field.
func (_c *ClassificationEventCreate) SetTriangulationScore(v float64) *ClassificationEventCreate {
	_c.mutation.SetTriangulationScore(v)
	return _c
}

// SetTriangulated sets the "triangulated" field.
func (_c *ClassificationEventCreate) SetTriangulated(v bool) *ClassificationEventCreate {
	_c.mutation.SetTriangulated(v)
	return _c
}

// SetShifted sets the "shifted" field.
func (_c *ClassificationEventCreate) SetShifted(v bool) *ClassificationEventCreate {
	_c.mutation.SetShifted(v)
	return _c
}

// Mutation returns the ClassificationEventMutation object of the builder.
func (_c *ClassificationEventCreate) Mutation() *ClassificationEventMutation {
	return _c.mutation
}

// Save creates the ClassificationEvent in the database.
func (_c *ClassificationEventCreate) Save(ctx context.Context) (*ClassificationEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClassificationEventCreate) SaveX(ctx context.Context) *ClassificationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClassificationEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClassificationEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClassificationEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := classificationevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClassificationEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ClassificationEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ClassificationEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "ClassificationEvent.run_id"`)}
	}
	if v, ok := _c.mutation.RunID(); ok {
		if err := classificationevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "ClassificationEvent.run_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubjectID(); !ok {
		return &ValidationError{Name: "subject_id", err: errors.New(`ent: missing required field "ClassificationEvent.subject_id"`)}
	}
	if v, ok := _c.mutation.SubjectID(); ok {
		if err := classificationevent.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "ClassificationEvent.subject_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Primary(); !ok {
		return &ValidationError{Name: "primary", err: errors.New(`ent: missing required field "ClassificationEvent.primary"`)}
	}
	if v, ok := _c.mutation.Primary(); ok {
		if err := classificationevent.PrimaryValidator(v); err != nil {
			return &ValidationError{Name: "primary", err: fmt.Errorf(`ent: validator failed for field "ClassificationEvent.primary": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Secondary(); !ok {
		return &ValidationError{Name: "secondary", err: errors.New(`ent: missing required field "ClassificationEvent.secondary"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "ClassificationEvent.confidence"`)}
	}
	if _, ok := _c.mutation.CategoryScores(); !ok {
		return &ValidationError{Name: "category_scores", err: errors.New(`ent: missing required field "ClassificationEvent.category_scores"`)}
	}
	if _, ok := _c.mutation.TriangulationScore(); !ok {
		return &ValidationError{Name: "triangulation_score", err: errors.New(`ent: missing required field "ClassificationEvent.triangulation_score"`)}
	}
	if _, ok := _c.mutation.Triangulated(); !ok {
		return &ValidationError{Name: "triangulated", err: errors.New(`ent: missing required field "ClassificationEvent.triangulated"`)}
	}
	if _, ok := _c.mutation.Shifted(); !ok {
		return &ValidationError{Name: "shifted", err: errors.New(`ent: missing required field "ClassificationEvent.shifted"`)}
	}
	return nil
}

func (_c *ClassificationEventCreate) sqlSave(ctx context.Context) (*ClassificationEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ClassificationEventCreate) createSpec() (*ClassificationEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ClassificationEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(classificationevent.Table, sqlgraph.NewFieldSpec(classificationevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(classificationevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(classificationevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(classificationevent.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.SubjectID(); ok {
		_spec.SetField(classificationevent.FieldSubjectID, field.TypeString, value)
		_node.SubjectID = value
	}
	if value, ok := _c.mutation.Primary(); ok {
		_spec.SetField(classificationevent.FieldPrimary, field.TypeString, value)
		_node.Primary = value
	}
	if value, ok := _c.mutation.Secondary(); ok {
		_spec.SetField(classificationevent.FieldSecondary, field.TypeJSON, value)
		_node.Secondary = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(classificationevent.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.CategoryScores(); ok {
		_spec.SetField(classificationevent.FieldCategoryScores, field.TypeJSON, value)
		_node.CategoryScores = value
	}
	if value, ok := _c.mutation.TriangulationScore(); ok {
		_spec.SetField(classificationevent.FieldTriangulationScore, field.TypeFloat64, value)
		_node.TriangulationScore = value
	}
	if value, ok := _c.mutation.Triangulated(); ok {
		_spec.SetField(classificationevent.FieldTriangulated, field.TypeBool, value)
		_node.Triangulated = value
	}
	if value, ok := _c.mutation.Shifted(); ok {
		_spec.SetField(classificationevent.FieldShifted, field.TypeBool, value)
		_node.Shifted = value
	}
	return _node, _spec
}

// ClassificationEventCreateBulk is the builder for creating many ClassificationEvent entities in bulk.
type ClassificationEventCreateBulk struct {
	config
	err      error
	builders []*ClassificationEventCreate
}

// Save creates the ClassificationEvent entities in the database.
func (_c *ClassificationEventCreateBulk) Save(ctx context.Context) ([]*ClassificationEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ClassificationEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClassificationEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ClassificationEventCreateBulk) SaveX(ctx context.Context) []*ClassificationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClassificationEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClassificationEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
