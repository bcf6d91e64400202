// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/learnaura/aura/ent/academicevent"
)

// AcademicEventCreate is the builder for creating a AcademicEvent entity.
type AcademicEventCreate struct {
	config
	mutation *AcademicEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AcademicEventCreate) SetSequence(v int64) *AcademicEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AcademicEventCreate) SetTimestamp(v time.Time) *AcademicEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AcademicEventCreate) SetNillableTimestamp(v *time.Time) *AcademicEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *AcademicEventCreate) SetRunID(v string) *AcademicEventCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetSubjectID sets the "subject_id" field.
func (_c *AcademicEventCreate) SetSubjectID(v string) *AcademicEventCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *AcademicEventCreate) SetCorrect(v int) *AcademicEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetTotal sets the "total" field.
func (_c *AcademicEventCreate) SetTotal(v int) *AcademicEventCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetPercentage sets the "percentage" field.
func (_c *AcademicEventCreate) SetPercentage(v float64) *AcademicEventCreate {
	_c.mutation.SetPercentage(v)
	return _c
}

// SetTier sets the "tier" field.
func (_c *AcademicEventCreate) SetTier(v int) *AcademicEventCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *AcademicEventCreate) SetConfidence(v float64) *AcademicEventCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// Mutation returns the AcademicEventMutation object of the builder.
func (_c *AcademicEventCreate) Mutation() *AcademicEventMutation {
	return _c.mutation
}

// Save creates the AcademicEvent in the database.
func (_c *AcademicEventCreate) Save(ctx context.Context) (*AcademicEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AcademicEventCreate) SaveX(ctx context.Context) *AcademicEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AcademicEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AcademicEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AcademicEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := academicevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AcademicEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AcademicEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AcademicEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "AcademicEvent.run_id"`)}
	}
	if v, ok := _c.mutation.RunID(); ok {
		if err := academicevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "AcademicEvent.run_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubjectID(); !ok {
		return &ValidationError{Name: "subject_id", err: errors.New(`ent: missing required field "AcademicEvent.subject_id"`)}
	}
	if v, ok := _c.mutation.SubjectID(); ok {
		if err := academicevent.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "AcademicEvent.subject_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "AcademicEvent.correct"`)}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "AcademicEvent.total"`)}
	}
	if _, ok := _c.mutation.Percentage(); !ok {
		return &ValidationError{Name: "percentage", err: errors.New(`ent: missing required field "AcademicEvent.percentage"`)}
	}
	if _, ok := _c.mutation.Tier(); !ok {
		return &ValidationError{Name: "tier", err: errors.New(`ent: missing required field "AcademicEvent.tier"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "AcademicEvent.confidence"`)}
	}
	return nil
}

func (_c *AcademicEventCreate) sqlSave(ctx context.Context) (*AcademicEvent, error) {
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

func (_c *AcademicEventCreate) createSpec() (*AcademicEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AcademicEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(academicevent.Table, sqlgraph.NewFieldSpec(academicevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(academicevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(academicevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(academicevent.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.SubjectID(); ok {
		_spec.SetField(academicevent.FieldSubjectID, field.TypeString, value)
		_node.SubjectID = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(academicevent.FieldCorrect, field.TypeInt, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(academicevent.FieldTotal, field.TypeInt, value)
		_node.Total = value
	}
	if value, ok := _c.mutation.Percentage(); ok {
		_spec.SetField(academicevent.FieldPercentage, field.TypeFloat64, value)
		_node.Percentage = value
	}
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(academicevent.FieldTier, field.TypeInt, value)
		_node.Tier = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(academicevent.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	return _node, _spec
}

// AcademicEventCreateBulk is the builder for creating many AcademicEvent entities in bulk.
type AcademicEventCreateBulk struct {
	config
	err      error
	builders []*AcademicEventCreate
}

// Save creates the AcademicEvent entities in the database.
func (_c *AcademicEventCreateBulk) Save(ctx context.Context) ([]*AcademicEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AcademicEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AcademicEventMutation)
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
func (_c *AcademicEventCreateBulk) SaveX(ctx context.Context) []*AcademicEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AcademicEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AcademicEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
