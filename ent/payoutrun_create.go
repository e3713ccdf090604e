// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tracklane/tracklane/ent/payoutrun"
)

// PayoutRunCreate is the builder for creating a PayoutRun entity.
type PayoutRunCreate struct {
	config
	mutation *PayoutRunMutation
	hooks    []Hook
}

// SetMonth sets the "month" field.
func (_c *PayoutRunCreate) SetMonth(v string) *PayoutRunCreate {
	_c.mutation.SetMonth(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *PayoutRunCreate) SetKind(v payoutrun.Kind) *PayoutRunCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PayoutRunCreate) SetStatus(v payoutrun.Status) *PayoutRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PayoutRunCreate) SetNillableStatus(v *payoutrun.Status) *PayoutRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTriggeredBy sets the "triggered_by" field.
func (_c *PayoutRunCreate) SetTriggeredBy(v int) *PayoutRunCreate {
	_c.mutation.SetTriggeredBy(v)
	return _c
}

// SetNillableTriggeredBy sets the "triggered_by" field if the given value is not nil.
func (_c *PayoutRunCreate) SetNillableTriggeredBy(v *int) *PayoutRunCreate {
	if v != nil {
		_c.SetTriggeredBy(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *PayoutRunCreate) SetStartedAt(v time.Time) *PayoutRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *PayoutRunCreate) SetNillableStartedAt(v *time.Time) *PayoutRunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *PayoutRunCreate) SetFinishedAt(v time.Time) *PayoutRunCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *PayoutRunCreate) SetNillableFinishedAt(v *time.Time) *PayoutRunCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// Mutation returns the PayoutRunMutation object of the builder.
func (_c *PayoutRunCreate) Mutation() *PayoutRunMutation {
	return _c.mutation
}

// Save creates the PayoutRun in the database.
func (_c *PayoutRunCreate) Save(ctx context.Context) (*PayoutRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PayoutRunCreate) SaveX(ctx context.Context) *PayoutRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PayoutRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PayoutRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PayoutRunCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := payoutrun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := payoutrun.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PayoutRunCreate) check() error {
	if _, ok := _c.mutation.Month(); !ok {
		return &ValidationError{Name: "month", err: errors.New(`ent: missing required field "PayoutRun.month"`)}
	}
	if v, ok := _c.mutation.Month(); ok {
		if err := payoutrun.MonthValidator(v); err != nil {
			return &ValidationError{Name: "month", err: fmt.Errorf(`ent: validator failed for field "PayoutRun.month": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "PayoutRun.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := payoutrun.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "PayoutRun.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PayoutRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := payoutrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PayoutRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "PayoutRun.started_at"`)}
	}
	return nil
}

func (_c *PayoutRunCreate) sqlSave(ctx context.Context) (*PayoutRun, error) {
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

func (_c *PayoutRunCreate) createSpec() (*PayoutRun, *sqlgraph.CreateSpec) {
	var (
		_node = &PayoutRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(payoutrun.Table, sqlgraph.NewFieldSpec(payoutrun.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Month(); ok {
		_spec.SetField(payoutrun.FieldMonth, field.TypeString, value)
		_node.Month = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(payoutrun.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(payoutrun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TriggeredBy(); ok {
		_spec.SetField(payoutrun.FieldTriggeredBy, field.TypeInt, value)
		_node.TriggeredBy = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(payoutrun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(payoutrun.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	return _node, _spec
}

// PayoutRunCreateBulk is the builder for creating many PayoutRun entities in bulk.
type PayoutRunCreateBulk struct {
	config
	err      error
	builders []*PayoutRunCreate
}

// Save creates the PayoutRun entities in the database.
func (_c *PayoutRunCreateBulk) Save(ctx context.Context) ([]*PayoutRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PayoutRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PayoutRunMutation)
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
func (_c *PayoutRunCreateBulk) SaveX(ctx context.Context) []*PayoutRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PayoutRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PayoutRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
