// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tracklane/tracklane/ent/compensationsettings"
)

// CompensationSettingsCreate is the builder for creating a CompensationSettings entity.
type CompensationSettingsCreate struct {
	config
	mutation *CompensationSettingsMutation
	hooks    []Hook
}

// SetStandardRate sets the "standard_rate" field.
func (_c *CompensationSettingsCreate) SetStandardRate(v float64) *CompensationSettingsCreate {
	_c.mutation.SetStandardRate(v)
	return _c
}

// SetNillableStandardRate sets the "standard_rate" field if the given value is not nil.
func (_c *CompensationSettingsCreate) SetNillableStandardRate(v *float64) *CompensationSettingsCreate {
	if v != nil {
		_c.SetStandardRate(*v)
	}
	return _c
}

// SetExclusiveRate sets the "exclusive_rate" field.
func (_c *CompensationSettingsCreate) SetExclusiveRate(v float64) *CompensationSettingsCreate {
	_c.mutation.SetExclusiveRate(v)
	return _c
}

// SetNillableExclusiveRate sets the "exclusive_rate" field if the given value is not nil.
func (_c *CompensationSettingsCreate) SetNillableExclusiveRate(v *float64) *CompensationSettingsCreate {
	if v != nil {
		_c.SetExclusiveRate(*v)
	}
	return _c
}

// SetSyncFeeRate sets the "sync_fee_rate" field.
func (_c *CompensationSettingsCreate) SetSyncFeeRate(v float64) *CompensationSettingsCreate {
	_c.mutation.SetSyncFeeRate(v)
	return _c
}

// SetNillableSyncFeeRate sets the "sync_fee_rate" field if the given value is not nil.
func (_c *CompensationSettingsCreate) SetNillableSyncFeeRate(v *float64) *CompensationSettingsCreate {
	if v != nil {
		_c.SetSyncFeeRate(*v)
	}
	return _c
}

// SetVolumeBonusRate sets the "volume_bonus_rate" field.
func (_c *CompensationSettingsCreate) SetVolumeBonusRate(v float64) *CompensationSettingsCreate {
	_c.mutation.SetVolumeBonusRate(v)
	return _c
}

// SetNillableVolumeBonusRate sets the "volume_bonus_rate" field if the given value is not nil.
func (_c *CompensationSettingsCreate) SetNillableVolumeBonusRate(v *float64) *CompensationSettingsCreate {
	if v != nil {
		_c.SetVolumeBonusRate(*v)
	}
	return _c
}

// SetVolumeBonusThreshold sets the "volume_bonus_threshold" field.
func (_c *CompensationSettingsCreate) SetVolumeBonusThreshold(v int) *CompensationSettingsCreate {
	_c.mutation.SetVolumeBonusThreshold(v)
	return _c
}

// SetNillableVolumeBonusThreshold sets the "volume_bonus_threshold" field if the given value is not nil.
func (_c *CompensationSettingsCreate) SetNillableVolumeBonusThreshold(v *int) *CompensationSettingsCreate {
	if v != nil {
		_c.SetVolumeBonusThreshold(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CompensationSettingsCreate) SetUpdatedAt(v time.Time) *CompensationSettingsCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CompensationSettingsCreate) SetNillableUpdatedAt(v *time.Time) *CompensationSettingsCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CompensationSettingsCreate) SetID(v int) *CompensationSettingsCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CompensationSettingsMutation object of the builder.
func (_c *CompensationSettingsCreate) Mutation() *CompensationSettingsMutation {
	return _c.mutation
}

// Save creates the CompensationSettings in the database.
func (_c *CompensationSettingsCreate) Save(ctx context.Context) (*CompensationSettings, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CompensationSettingsCreate) SaveX(ctx context.Context) *CompensationSettings {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompensationSettingsCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompensationSettingsCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CompensationSettingsCreate) defaults() {
	if _, ok := _c.mutation.StandardRate(); !ok {
		v := compensationsettings.DefaultStandardRate
		_c.mutation.SetStandardRate(v)
	}
	if _, ok := _c.mutation.ExclusiveRate(); !ok {
		v := compensationsettings.DefaultExclusiveRate
		_c.mutation.SetExclusiveRate(v)
	}
	if _, ok := _c.mutation.SyncFeeRate(); !ok {
		v := compensationsettings.DefaultSyncFeeRate
		_c.mutation.SetSyncFeeRate(v)
	}
	if _, ok := _c.mutation.VolumeBonusRate(); !ok {
		v := compensationsettings.DefaultVolumeBonusRate
		_c.mutation.SetVolumeBonusRate(v)
	}
	if _, ok := _c.mutation.VolumeBonusThreshold(); !ok {
		v := compensationsettings.DefaultVolumeBonusThreshold
		_c.mutation.SetVolumeBonusThreshold(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := compensationsettings.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CompensationSettingsCreate) check() error {
	if _, ok := _c.mutation.StandardRate(); !ok {
		return &ValidationError{Name: "standard_rate", err: errors.New(`ent: missing required field "CompensationSettings.standard_rate"`)}
	}
	if v, ok := _c.mutation.StandardRate(); ok {
		if err := compensationsettings.StandardRateValidator(v); err != nil {
			return &ValidationError{Name: "standard_rate", err: fmt.Errorf(`ent: validator failed for field "CompensationSettings.standard_rate": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExclusiveRate(); !ok {
		return &ValidationError{Name: "exclusive_rate", err: errors.New(`ent: missing required field "CompensationSettings.exclusive_rate"`)}
	}
	if v, ok := _c.mutation.ExclusiveRate(); ok {
		if err := compensationsettings.ExclusiveRateValidator(v); err != nil {
			return &ValidationError{Name: "exclusive_rate", err: fmt.Errorf(`ent: validator failed for field "CompensationSettings.exclusive_rate": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SyncFeeRate(); !ok {
		return &ValidationError{Name: "sync_fee_rate", err: errors.New(`ent: missing required field "CompensationSettings.sync_fee_rate"`)}
	}
	if v, ok := _c.mutation.SyncFeeRate(); ok {
		if err := compensationsettings.SyncFeeRateValidator(v); err != nil {
			return &ValidationError{Name: "sync_fee_rate", err: fmt.Errorf(`ent: validator failed for field "CompensationSettings.sync_fee_rate": %w`, err)}
		}
	}
	if _, ok := _c.mutation.VolumeBonusRate(); !ok {
		return &ValidationError{Name: "volume_bonus_rate", err: errors.New(`ent: missing required field "CompensationSettings.volume_bonus_rate"`)}
	}
	if v, ok := _c.mutation.VolumeBonusRate(); ok {
		if err := compensationsettings.VolumeBonusRateValidator(v); err != nil {
			return &ValidationError{Name: "volume_bonus_rate", err: fmt.Errorf(`ent: validator failed for field "CompensationSettings.volume_bonus_rate": %w`, err)}
		}
	}
	if _, ok := _c.mutation.VolumeBonusThreshold(); !ok {
		return &ValidationError{Name: "volume_bonus_threshold", err: errors.New(`ent: missing required field "CompensationSettings.volume_bonus_threshold"`)}
	}
	if v, ok := _c.mutation.VolumeBonusThreshold(); ok {
		if err := compensationsettings.VolumeBonusThresholdValidator(v); err != nil {
			return &ValidationError{Name: "volume_bonus_threshold", err: fmt.Errorf(`ent: validator failed for field "CompensationSettings.volume_bonus_threshold": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CompensationSettings.updated_at"`)}
	}
	return nil
}

func (_c *CompensationSettingsCreate) sqlSave(ctx context.Context) (*CompensationSettings, error) {
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
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CompensationSettingsCreate) createSpec() (*CompensationSettings, *sqlgraph.CreateSpec) {
	var (
		_node = &CompensationSettings{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(compensationsettings.Table, sqlgraph.NewFieldSpec(compensationsettings.FieldID, field.TypeInt))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StandardRate(); ok {
		_spec.SetField(compensationsettings.FieldStandardRate, field.TypeFloat64, value)
		_node.StandardRate = value
	}
	if value, ok := _c.mutation.ExclusiveRate(); ok {
		_spec.SetField(compensationsettings.FieldExclusiveRate, field.TypeFloat64, value)
		_node.ExclusiveRate = value
	}
	if value, ok := _c.mutation.SyncFeeRate(); ok {
		_spec.SetField(compensationsettings.FieldSyncFeeRate, field.TypeFloat64, value)
		_node.SyncFeeRate = value
	}
	if value, ok := _c.mutation.VolumeBonusRate(); ok {
		_spec.SetField(compensationsettings.FieldVolumeBonusRate, field.TypeFloat64, value)
		_node.VolumeBonusRate = value
	}
	if value, ok := _c.mutation.VolumeBonusThreshold(); ok {
		_spec.SetField(compensationsettings.FieldVolumeBonusThreshold, field.TypeInt, value)
		_node.VolumeBonusThreshold = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(compensationsettings.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// CompensationSettingsCreateBulk is the builder for creating many CompensationSettings entities in bulk.
type CompensationSettingsCreateBulk struct {
	config
	err      error
	builders []*CompensationSettingsCreate
}

// Save creates the CompensationSettings entities in the database.
func (_c *CompensationSettingsCreateBulk) Save(ctx context.Context) ([]*CompensationSettings, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CompensationSettings, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CompensationSettingsMutation)
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
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
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
func (_c *CompensationSettingsCreateBulk) SaveX(ctx context.Context) []*CompensationSettings {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompensationSettingsCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompensationSettingsCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
