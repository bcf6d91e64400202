// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/learnaura/aura/ent/cognitiveevent"
)

// CognitiveEventCreate is the builder for creating a CognitiveEvent entity.
type CognitiveEventCreate struct {
	config
	mutation *CognitiveEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *CognitiveEventCreate) SetSequence(v int64) *CognitiveEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *CognitiveEventCreate) SetTimestamp(v time.Time) *CognitiveEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *CognitiveEventCreate) SetNillableTimestamp(v *time.Time) *CognitiveEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *CognitiveEventCreate) SetRunID(v string) *CognitiveEventCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetSubjectID sets the "subject_id" field.
func (_c *CognitiveEventCreate) SetSubjectID(v string) *CognitiveEventCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetRater sets the "rater" field.
func (_c *CognitiveEventCreate) SetRater(v string) *CognitiveEventCreate {
	_c.mutation.SetRater(v)
	return _c
}

// SetDomainScores sets the "domain_scores" field.
func (_c *CognitiveEventCreate) SetDomainScores(v map[string]float64) *CognitiveEventCreate {
	_c.mutation.SetDomainScores(v)
	return _c
}

// Mutation returns the CognitiveEventMutation object of the builder.
func (_c *CognitiveEventCreate) Mutation() *CognitiveEventMutation {
	return _c.mutation
}

// Save creates the CognitiveEvent in the database.
func (_c *CognitiveEventCreate) Save(ctx context.Context) (*CognitiveEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CognitiveEventCreate) SaveX(ctx context.Context) *CognitiveEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CognitiveEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CognitiveEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CognitiveEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := cognitiveevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CognitiveEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "CognitiveEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "CognitiveEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "CognitiveEvent.run_id"`)}
	}
	if v, ok := _c.mutation.RunID(); ok {
		if err := cognitiveevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "CognitiveEvent.run_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubjectID(); !ok {
		return &ValidationError{Name: "subject_id", err: errors.New(`ent: missing required field "CognitiveEvent.subject_id"`)}
	}
	if v, ok := _c.mutation.SubjectID(); ok {
		if err := cognitiveevent.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "CognitiveEvent.subject_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Rater(); !ok {
		return &ValidationError{Name: "rater", err: errors.New(`ent: missing required field "CognitiveEvent.rater"`)}
	}
	if v, ok := _c.mutation.Rater(); ok {
		if err := cognitiveevent.RaterValidator(v); err != nil {
			return &ValidationError{Name: "rater", err: fmt.Errorf(`ent: validator failed for field "CognitiveEvent.rater": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DomainScores(); !ok {
		return &ValidationError{Name: "domain_scores", err: errors.New(`ent: missing required field "CognitiveEvent.domain_scores"`)}
	}
	return nil
}

func (_c *CognitiveEventCreate) sqlSave(ctx context.Context) (*CognitiveEvent, error) {
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

func (_c *CognitiveEventCreate) createSpec() (*CognitiveEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &CognitiveEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cognitiveevent.Table, sqlgraph.NewFieldSpec(cognitiveevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(cognitiveevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(cognitiveevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(cognitiveevent.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.SubjectID(); ok {
		_spec.SetField(cognitiveevent.FieldSubjectID, field.TypeString, value)
		_node.SubjectID = value
	}
	if value, ok := _c.mutation.Rater(); ok {
		_spec.SetField(cognitiveevent.FieldRater, field.TypeString, value)
		_node.Rater = value
	}
	if value, ok := _c.mutation.DomainScores(); ok {
		_spec.SetField(cognitiveevent.FieldDomainScores, field.TypeJSON, value)
		_node.DomainScores = value
	}
	return _node, _spec
}

// CognitiveEventCreateBulk is the builder for creating many CognitiveEvent entities in bulk.
type CognitiveEventCreateBulk struct {
	config
	err      error
	builders []*CognitiveEventCreate
}

// Save creates the CognitiveEvent entities in the database.
func (_c *CognitiveEventCreateBulk) Save(ctx context.Context) ([]*CognitiveEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CognitiveEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CognitiveEventMutation)
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
func (_c *CognitiveEventCreateBulk) SaveX(ctx context.Context) []*CognitiveEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CognitiveEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CognitiveEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
