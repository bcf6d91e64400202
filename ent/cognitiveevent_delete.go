// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/learnaura/aura/ent/cognitiveevent"
	"github.com/learnaura/aura/ent/predicate"
)

// CognitiveEventDelete is the builder for deleting a CognitiveEvent entity.
type CognitiveEventDelete struct {
	config
	hooks    []Hook
	mutation *CognitiveEventMutation
}

// Where appends a list predicates to the CognitiveEventDelete builder.
func (_d *CognitiveEventDelete) Where(ps ...predicate.CognitiveEvent) *CognitiveEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CognitiveEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CognitiveEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CognitiveEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(cognitiveevent.Table, sqlgraph.NewFieldSpec(cognitiveevent.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// CognitiveEventDeleteOne is the builder for deleting a single CognitiveEvent entity.
type CognitiveEventDeleteOne struct {
	_d *CognitiveEventDelete
}

// Where appends a list predicates to the CognitiveEventDelete builder.
func (_d *CognitiveEventDeleteOne) Where(ps ...predicate.CognitiveEvent) *CognitiveEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CognitiveEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{cognitiveevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CognitiveEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
