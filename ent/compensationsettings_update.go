// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tracklane/tracklane/ent/compensationsettings"
	"github.com/tracklane/tracklane/ent/predicate"
)

// CompensationSettingsUpdate is the builder for updating CompensationSettings entities.
type CompensationSettingsUpdate struct {
	config
	hooks    []Hook
	mutation *CompensationSettingsMutation
}

// Where appends a list predicates to the CompensationSettingsUpdate builder.
func (_u *CompensationSettingsUpdate) Where(ps ...predicate.CompensationSettings) *CompensationSettingsUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStandardRate sets the "standard_rate" field.
func (_u *CompensationSettingsUpdate) SetStandardRate(v float64) *CompensationSettingsUpdate {
	_u.mutation.ResetStandardRate()
	_u.mutation.SetStandardRate(v)
	return _u
}

// SetNillableStandardRate sets the "standard_rate" field if the given value is not nil.
func (_u *CompensationSettingsUpdate) SetNillableStandardRate(v *float64) *CompensationSettingsUpdate {
	if v != nil {
		_u.SetStandardRate(*v)
	}
	return _u
}

// AddStandardRate adds value to the "standard_rate" field.
func (_u *CompensationSettingsUpdate) AddStandardRate(v float64) *CompensationSettingsUpdate {
	_u.mutation.AddStandardRate(v)
	return _u
}

// SetExclusiveRate sets the "exclusive_rate" field.
func (_u *CompensationSettingsUpdate) SetExclusiveRate(v float64) *CompensationSettingsUpdate {
	_u.mutation.ResetExclusiveRate()
	_u.mutation.SetExclusiveRate(v)
	return _u
}

// SetNillableExclusiveRate sets the "exclusive_rate" field if the given value is not nil.
func (_u *CompensationSettingsUpdate) SetNillableExclusiveRate(v *float64) *CompensationSettingsUpdate {
	if v != nil {
		_u.SetExclusiveRate(*v)
	}
	return _u
}

// AddExclusiveRate adds value to the "exclusive_rate" field.
func (_u *CompensationSettingsUpdate) AddExclusiveRate(v float64) *CompensationSettingsUpdate {
	_u.mutation.AddExclusiveRate(v)
	return _u
}

// SetSyncFeeRate sets the "sync_fee_rate" field.
func (_u *CompensationSettingsUpdate) SetSyncFeeRate(v float64) *CompensationSettingsUpdate {
	_u.mutation.ResetSyncFeeRate()
	_u.mutation.SetSyncFeeRate(v)
	return _u
}

// SetNillableSyncFeeRate sets the "sync_fee_rate" field if the given value is not nil.
func (_u *CompensationSettingsUpdate) SetNillableSyncFeeRate(v *float64) *CompensationSettingsUpdate {
	if v != nil {
		_u.SetSyncFeeRate(*v)
	}
	return _u
}

// AddSyncFeeRate adds value to the "sync_fee_rate" field.
func (_u *CompensationSettingsUpdate) AddSyncFeeRate(v float64) *CompensationSettingsUpdate {
	_u.mutation.AddSyncFeeRate(v)
	return _u
}

// SetVolumeBonusRate sets the "volume_bonus_rate" field.
func (_u *CompensationSettingsUpdate) SetVolumeBonusRate(v float64) *CompensationSettingsUpdate {
	_u.mutation.ResetVolumeBonusRate()
	_u.mutation.SetVolumeBonusRate(v)
	return _u
}

// SetNillableVolumeBonusRate sets the "volume_bonus_rate" field if the given value is not nil.
func (_u *CompensationSettingsUpdate) SetNillableVolumeBonusRate(v *float64) *CompensationSettingsUpdate {
	if v != nil {
		_u.SetVolumeBonusRate(*v)
	}
	return _u
}

// AddVolumeBonusRate adds value to the "volume_bonus_rate" field.
func (_u *CompensationSettingsUpdate) AddVolumeBonusRate(v float64) *CompensationSettingsUpdate {
	_u.mutation.AddVolumeBonusRate(v)
	return _u
}

// SetVolumeBonusThreshold sets the "volume_bonus_threshold" field.
func (_u *CompensationSettingsUpdate) SetVolumeBonusThreshold(v int) *CompensationSettingsUpdate {
	_u.mutation.ResetVolumeBonusThreshold()
	_u.mutation.SetVolumeBonusThreshold(v)
	return _u
}

// SetNillableVolumeBonusThreshold sets the "volume_bonus_threshold" field if the given value is not nil.
func (_u *CompensationSettingsUpdate) SetNillableVolumeBonusThreshold(v *int) *CompensationSettingsUpdate {
	if v != nil {
		_u.SetVolumeBonusThreshold(*v)
	}
	return _u
}

// AddVolumeBonusThreshold adds value to the "volume_bonus_threshold" field.
func (_u *CompensationSettingsUpdate) AddVolumeBonusThreshold(v int) *CompensationSettingsUpdate {
	_u.mutation.AddVolumeBonusThreshold(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CompensationSettingsUpdate) SetUpdatedAt(v time.Time) *CompensationSettingsUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CompensationSettingsMutation object of the builder.
func (_u *CompensationSettingsUpdate) Mutation() *CompensationSettingsMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CompensationSettingsUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompensationSettingsUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CompensationSettingsUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompensationSettingsUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CompensationSettingsUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := compensationsettings.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompensationSettingsUpdate) check() error {
	if v, ok := _u.mutation.StandardRate(); ok {
		if err := compensationsettings.StandardRateValidator(v); err != nil {
			return &ValidationError{Name: "standard_rate", err: fmt.Errorf(`ent: validator failed for field "CompensationSettings.standard_rate": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExclusiveRate(); ok {
		if err := compensationsettings.ExclusiveRateValidator(v); err != nil {
			return &ValidationError{Name: "exclusive_rate", err: fmt.Errorf(`ent: validator failed for field "CompensationSettings.exclusive_rate": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SyncFeeRate(); ok {
		if err := compensationsettings.SyncFeeRateValidator(v); err != nil {
			return &ValidationError{Name: "sync_fee_rate", err: fmt.Errorf(`ent: validator failed for field "CompensationSettings.sync_fee_rate": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VolumeBonusRate(); ok {
		if err := compensationsettings.VolumeBonusRateValidator(v); err != nil {
			return &ValidationError{Name: "volume_bonus_rate", err: fmt.Errorf(`ent: validator failed for field "CompensationSettings.volume_bonus_rate": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VolumeBonusThreshold(); ok {
		if err := compensationsettings.VolumeBonusThresholdValidator(v); err != nil {
			return &ValidationError{Name: "volume_bonus_threshold", err: fmt.Errorf(`ent: validator failed for field "CompensationSettings.volume_bonus_threshold": %w`, err)}
		}
	}
	return nil
}

func (_u *CompensationSettingsUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(compensationsettings.Table, compensationsettings.Columns, sqlgraph.NewFieldSpec(compensationsettings.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StandardRate(); ok {
		_spec.SetField(compensationsettings.FieldStandardRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStandardRate(); ok {
		_spec.AddField(compensationsettings.FieldStandardRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ExclusiveRate(); ok {
		_spec.SetField(compensationsettings.FieldExclusiveRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExclusiveRate(); ok {
		_spec.AddField(compensationsettings.FieldExclusiveRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SyncFeeRate(); ok {
		_spec.SetField(compensationsettings.FieldSyncFeeRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSyncFeeRate(); ok {
		_spec.AddField(compensationsettings.FieldSyncFeeRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.VolumeBonusRate(); ok {
		_spec.SetField(compensationsettings.FieldVolumeBonusRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVolumeBonusRate(); ok {
		_spec.AddField(compensationsettings.FieldVolumeBonusRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.VolumeBonusThreshold(); ok {
		_spec.SetField(compensationsettings.FieldVolumeBonusThreshold, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVolumeBonusThreshold(); ok {
		_spec.AddField(compensationsettings.FieldVolumeBonusThreshold, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(compensationsettings.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{compensationsettings.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CompensationSettingsUpdateOne is the builder for updating a single CompensationSettings entity.
type CompensationSettingsUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CompensationSettingsMutation
}

// SetStandardRate sets the "standard_rate" field.
func (_u *CompensationSettingsUpdateOne) SetStandardRate(v float64) *CompensationSettingsUpdateOne {
	_u.mutation.ResetStandardRate()
	_u.mutation.SetStandardRate(v)
	return _u
}

// SetNillableStandardRate sets the "standard_rate" field if the given value is not nil.
func (_u *CompensationSettingsUpdateOne) SetNillableStandardRate(v *float64) *CompensationSettingsUpdateOne {
	if v != nil {
		_u.SetStandardRate(*v)
	}
	return _u
}

// AddStandardRate adds value to the "standard_rate" field.
func (_u *CompensationSettingsUpdateOne) AddStandardRate(v float64) *CompensationSettingsUpdateOne {
	_u.mutation.AddStandardRate(v)
	return _u
}

// SetExclusiveRate sets the "exclusive_rate" field.
func (_u *CompensationSettingsUpdateOne) SetExclusiveRate(v float64) *CompensationSettingsUpdateOne {
	_u.mutation.ResetExclusiveRate()
	_u.mutation.SetExclusiveRate(v)
	return _u
}

// SetNillableExclusiveRate sets the "exclusive_rate" field if the given value is not nil.
func (_u *CompensationSettingsUpdateOne) SetNillableExclusiveRate(v *float64) *CompensationSettingsUpdateOne {
	if v != nil {
		_u.SetExclusiveRate(*v)
	}
	return _u
}

// AddExclusiveRate adds value to the "exclusive_rate" field.
func (_u *CompensationSettingsUpdateOne) AddExclusiveRate(v float64) *CompensationSettingsUpdateOne {
	_u.mutation.AddExclusiveRate(v)
	return _u
}

// SetSyncFeeRate sets the "sync_fee_rate" field.
func (_u *CompensationSettingsUpdateOne) SetSyncFeeRate(v float64) *CompensationSettingsUpdateOne {
	_u.mutation.ResetSyncFeeRate()
	_u.mutation.SetSyncFeeRate(v)
	return _u
}

// SetNillableSyncFeeRate sets the "sync_fee_rate" field if the given value is not nil.
func (_u *CompensationSettingsUpdateOne) SetNillableSyncFeeRate(v *float64) *CompensationSettingsUpdateOne {
	if v != nil {
		_u.SetSyncFeeRate(*v)
	}
	return _u
}

// AddSyncFeeRate adds value to the "sync_fee_rate" field.
func (_u *CompensationSettingsUpdateOne) AddSyncFeeRate(v float64) *CompensationSettingsUpdateOne {
	_u.mutation.AddSyncFeeRate(v)
	return _u
}

// SetVolumeBonusRate sets the "volume_bonus_rate" field.
func (_u *CompensationSettingsUpdateOne) SetVolumeBonusRate(v float64) *CompensationSettingsUpdateOne {
	_u.mutation.ResetVolumeBonusRate()
	_u.mutation.SetVolumeBonusRate(v)
	return _u
}

// SetNillableVolumeBonusRate sets the "volume_bonus_rate" field if the given value is not nil.
func (_u *CompensationSettingsUpdateOne) SetNillableVolumeBonusRate(v *float64) *CompensationSettingsUpdateOne {
	if v != nil {
		_u.SetVolumeBonusRate(*v)
	}
	return _u
}

// AddVolumeBonusRate adds value to the "volume_bonus_rate" field.
func (_u *CompensationSettingsUpdateOne) AddVolumeBonusRate(v float64) *CompensationSettingsUpdateOne {
	_u.mutation.AddVolumeBonusRate(v)
	return _u
}

// SetVolumeBonusThreshold sets the "volume_bonus_threshold" field.
func (_u *CompensationSettingsUpdateOne) SetVolumeBonusThreshold(v int) *CompensationSettingsUpdateOne {
	_u.mutation.ResetVolumeBonusThreshold()
	_u.mutation.SetVolumeBonusThreshold(v)
	return _u
}

// SetNillableVolumeBonusThreshold sets the "volume_bonus_threshold" field if the given value is not nil.
func (_u *CompensationSettingsUpdateOne) SetNillableVolumeBonusThreshold(v *int) *CompensationSettingsUpdateOne {
	if v != nil {
		_u.SetVolumeBonusThreshold(*v)
	}
	return _u
}

// AddVolumeBonusThreshold adds value to the "volume_bonus_threshold" field.
func (_u *CompensationSettingsUpdateOne) AddVolumeBonusThreshold(v int) *CompensationSettingsUpdateOne {
	_u.mutation.AddVolumeBonusThreshold(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CompensationSettingsUpdateOne) SetUpdatedAt(v time.Time) *CompensationSettingsUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CompensationSettingsMutation object of the builder.
func (_u *CompensationSettingsUpdateOne) Mutation() *CompensationSettingsMutation {
	return _u.mutation
}

// Where appends a list predicates to the CompensationSettingsUpdate builder.
func (_u *CompensationSettingsUpdateOne) Where(ps ...predicate.CompensationSettings) *CompensationSettingsUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CompensationSettingsUpdateOne) Select(field string, fields ...string) *CompensationSettingsUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CompensationSettings entity.
func (_u *CompensationSettingsUpdateOne) Save(ctx context.Context) (*CompensationSettings, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompensationSettingsUpdateOne) SaveX(ctx context.Context) *CompensationSettings {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CompensationSettingsUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompensationSettingsUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CompensationSettingsUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := compensationsettings.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompensationSettingsUpdateOne) check() error {
	if v, ok := _u.mutation.StandardRate(); ok {
		if err := compensationsettings.StandardRateValidator(v); err != nil {
			return &ValidationError{Name: "standard_rate", err: fmt.Errorf(`ent: validator failed for field "CompensationSettings.standard_rate": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExclusiveRate(); ok {
		if err := compensationsettings.ExclusiveRateValidator(v); err != nil {
			return &ValidationError{Name: "exclusive_rate", err: fmt.Errorf(`ent: validator failed for field "CompensationSettings.exclusive_rate": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SyncFeeRate(); ok {
		if err := compensationsettings.SyncFeeRateValidator(v); err != nil {
			return &ValidationError{Name: "sync_fee_rate", err: fmt.Errorf(`ent: validator failed for field "CompensationSettings.sync_fee_rate": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VolumeBonusRate(); ok {
		if err := compensationsettings.VolumeBonusRateValidator(v); err != nil {
			return &ValidationError{Name: "volume_bonus_rate", err: fmt.Errorf(`ent: validator failed for field "CompensationSettings.volume_bonus_rate": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VolumeBonusThreshold(); ok {
		if err := compensationsettings.VolumeBonusThresholdValidator(v); err != nil {
			return &ValidationError{Name: "volume_bonus_threshold", err: fmt.Errorf(`ent: validator failed for field "CompensationSettings.volume_bonus_threshold": %w`, err)}
		}
	}
	return nil
}

func (_u *CompensationSettingsUpdateOne) sqlSave(ctx context.Context) (_node *CompensationSettings, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(compensationsettings.Table, compensationsettings.Columns, sqlgraph.NewFieldSpec(compensationsettings.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CompensationSettings.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, compensationsettings.FieldID)
		for _, f := range fields {
			if !compensationsettings.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != compensationsettings.FieldID {
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
	if value, ok := _u.mutation.StandardRate(); ok {
		_spec.SetField(compensationsettings.FieldStandardRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStandardRate(); ok {
		_spec.AddField(compensationsettings.FieldStandardRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ExclusiveRate(); ok {
		_spec.SetField(compensationsettings.FieldExclusiveRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExclusiveRate(); ok {
		_spec.AddField(compensationsettings.FieldExclusiveRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SyncFeeRate(); ok {
		_spec.SetField(compensationsettings.FieldSyncFeeRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSyncFeeRate(); ok {
		_spec.AddField(compensationsettings.FieldSyncFeeRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.VolumeBonusRate(); ok {
		_spec.SetField(compensationsettings.FieldVolumeBonusRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVolumeBonusRate(); ok {
		_spec.AddField(compensationsettings.FieldVolumeBonusRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.VolumeBonusThreshold(); ok {
		_spec.SetField(compensationsettings.FieldVolumeBonusThreshold, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVolumeBonusThreshold(); ok {
		_spec.AddField(compensationsettings.FieldVolumeBonusThreshold, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(compensationsettings.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &CompensationSettings{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{compensationsettings.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
