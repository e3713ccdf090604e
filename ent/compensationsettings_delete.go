// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tracklane/tracklane/ent/compensationsettings"
	"github.com/tracklane/tracklane/ent/predicate"
)

// CompensationSettingsDelete is the builder for deleting a CompensationSettings entity.
type CompensationSettingsDelete struct {
	config
	hooks    []Hook
	mutation *CompensationSettingsMutation
}

// Where appends a list predicates to the CompensationSettingsDelete builder.
func (_d *CompensationSettingsDelete) Where(ps ...predicate.CompensationSettings) *CompensationSettingsDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CompensationSettingsDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CompensationSettingsDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CompensationSettingsDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(compensationsettings.Table, sqlgraph.NewFieldSpec(compensationsettings.FieldID, field.TypeInt))
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

// CompensationSettingsDeleteOne is the builder for deleting a single CompensationSettings entity.
type CompensationSettingsDeleteOne struct {
	_d *CompensationSettingsDelete
}

// Where appends a list predicates to the CompensationSettingsDelete builder.
func (_d *CompensationSettingsDeleteOne) Where(ps ...predicate.CompensationSettings) *CompensationSettingsDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CompensationSettingsDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{compensationsettings.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CompensationSettingsDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
