// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/learnaura/aura/ent/academicevent"
	"github.com/learnaura/aura/ent/predicate"
)

// AcademicEventDelete is the builder for deleting a AcademicEvent entity.
type AcademicEventDelete struct {
	config
	hooks    []Hook
	mutation *AcademicEventMutation
}

// Where appends a list predicates to the AcademicEventDelete builder.
func (_d *AcademicEventDelete) Where(ps ...predicate.AcademicEvent) *AcademicEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AcademicEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AcademicEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AcademicEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(academicevent.Table, sqlgraph.NewFieldSpec(academicevent.FieldID, field.TypeInt))
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

// AcademicEventDeleteOne is the builder for deleting a single AcademicEvent entity.
type AcademicEventDeleteOne struct {
	_d *AcademicEventDelete
}

// Where appends a list predicates to the AcademicEventDelete builder.
func (_d *AcademicEventDeleteOne) Where(ps ...predicate.AcademicEvent) *AcademicEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AcademicEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{academicevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AcademicEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
