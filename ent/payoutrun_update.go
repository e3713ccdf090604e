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
	"github.com/tracklane/tracklane/ent/payoutrun"
	"github.com/tracklane/tracklane/ent/predicate"
)

// PayoutRunUpdate is the builder for updating PayoutRun entities.
type PayoutRunUpdate struct {
	config
	hooks    []Hook
	mutation *PayoutRunMutation
}

// Where appends a list predicates to the PayoutRunUpdate builder.
func (_u *PayoutRunUpdate) Where(ps ...predicate.PayoutRun) *PayoutRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMonth sets the "month" field.
func (_u *PayoutRunUpdate) SetMonth(v string) *PayoutRunUpdate {
	_u.mutation.SetMonth(v)
	return _u
}

// SetNillableMonth sets the "month" field if the given value is not nil.
func (_u *PayoutRunUpdate) SetNillableMonth(v *string) *PayoutRunUpdate {
	if v != nil {
		_u.SetMonth(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *PayoutRunUpdate) SetKind(v payoutrun.Kind) *PayoutRunUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *PayoutRunUpdate) SetNillableKind(v *payoutrun.Kind) *PayoutRunUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PayoutRunUpdate) SetStatus(v payoutrun.Status) *PayoutRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PayoutRunUpdate) SetNillableStatus(v *payoutrun.Status) *PayoutRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTriggeredBy sets the "triggered_by" field.
func (_u *PayoutRunUpdate) SetTriggeredBy(v int) *PayoutRunUpdate {
	_u.mutation.ResetTriggeredBy()
	_u.mutation.SetTriggeredBy(v)
	return _u
}

// SetNillableTriggeredBy sets the "triggered_by" field if the given value is not nil.
func (_u *PayoutRunUpdate) SetNillableTriggeredBy(v *int) *PayoutRunUpdate {
	if v != nil {
		_u.SetTriggeredBy(*v)
	}
	return _u
}

// AddTriggeredBy adds value to the "triggered_by" field.
func (_u *PayoutRunUpdate) AddTriggeredBy(v int) *PayoutRunUpdate {
	_u.mutation.AddTriggeredBy(v)
	return _u
}

// ClearTriggeredBy clears the value of the "triggered_by" field.
func (_u *PayoutRunUpdate) ClearTriggeredBy() *PayoutRunUpdate {
	_u.mutation.ClearTriggeredBy()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *PayoutRunUpdate) SetFinishedAt(v time.Time) *PayoutRunUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *PayoutRunUpdate) SetNillableFinishedAt(v *time.Time) *PayoutRunUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *PayoutRunUpdate) ClearFinishedAt() *PayoutRunUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// Mutation returns the PayoutRunMutation object of the builder.
func (_u *PayoutRunUpdate) Mutation() *PayoutRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PayoutRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PayoutRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PayoutRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PayoutRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PayoutRunUpdate) check() error {
	if v, ok := _u.mutation.Month(); ok {
		if err := payoutrun.MonthValidator(v); err != nil {
			return &ValidationError{Name: "month", err: fmt.Errorf(`ent: validator failed for field "PayoutRun.month": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := payoutrun.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "PayoutRun.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := payoutrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PayoutRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PayoutRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(payoutrun.Table, payoutrun.Columns, sqlgraph.NewFieldSpec(payoutrun.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Month(); ok {
		_spec.SetField(payoutrun.FieldMonth, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(payoutrun.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(payoutrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TriggeredBy(); ok {
		_spec.SetField(payoutrun.FieldTriggeredBy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTriggeredBy(); ok {
		_spec.AddField(payoutrun.FieldTriggeredBy, field.TypeInt, value)
	}
	if _u.mutation.TriggeredByCleared() {
		_spec.ClearField(payoutrun.FieldTriggeredBy, field.TypeInt)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(payoutrun.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(payoutrun.FieldFinishedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{payoutrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PayoutRunUpdateOne is the builder for updating a single PayoutRun entity.
type PayoutRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PayoutRunMutation
}

// SetMonth sets the "month" field.
func (_u *PayoutRunUpdateOne) SetMonth(v string) *PayoutRunUpdateOne {
	_u.mutation.SetMonth(v)
	return _u
}

// SetNillableMonth sets the "month" field if the given value is not nil.
func (_u *PayoutRunUpdateOne) SetNillableMonth(v *string) *PayoutRunUpdateOne {
	if v != nil {
		_u.SetMonth(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *PayoutRunUpdateOne) SetKind(v payoutrun.Kind) *PayoutRunUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *PayoutRunUpdateOne) SetNillableKind(v *payoutrun.Kind) *PayoutRunUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PayoutRunUpdateOne) SetStatus(v payoutrun.Status) *PayoutRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PayoutRunUpdateOne) SetNillableStatus(v *payoutrun.Status) *PayoutRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTriggeredBy sets the "triggered_by" field.
func (_u *PayoutRunUpdateOne) SetTriggeredBy(v int) *PayoutRunUpdateOne {
	_u.mutation.ResetTriggeredBy()
	_u.mutation.SetTriggeredBy(v)
	return _u
}

// SetNillableTriggeredBy sets the "triggered_by" field if the given value is not nil.
func (_u *PayoutRunUpdateOne) SetNillableTriggeredBy(v *int) *PayoutRunUpdateOne {
	if v != nil {
		_u.SetTriggeredBy(*v)
	}
	return _u
}

// AddTriggeredBy adds value to the "triggered_by" field.
func (_u *PayoutRunUpdateOne) AddTriggeredBy(v int) *PayoutRunUpdateOne {
	_u.mutation.AddTriggeredBy(v)
	return _u
}

// ClearTriggeredBy clears the value of the "triggered_by" field.
func (_u *PayoutRunUpdateOne) ClearTriggeredBy() *PayoutRunUpdateOne {
	_u.mutation.ClearTriggeredBy()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *PayoutRunUpdateOne) SetFinishedAt(v time.Time) *PayoutRunUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *PayoutRunUpdateOne) SetNillableFinishedAt(v *time.Time) *PayoutRunUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *PayoutRunUpdateOne) ClearFinishedAt() *PayoutRunUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// Mutation returns the PayoutRunMutation object of the builder.
func (_u *PayoutRunUpdateOne) Mutation() *PayoutRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the PayoutRunUpdate builder.
func (_u *PayoutRunUpdateOne) Where(ps ...predicate.PayoutRun) *PayoutRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PayoutRunUpdateOne) Select(field string, fields ...string) *PayoutRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PayoutRun entity.
func (_u *PayoutRunUpdateOne) Save(ctx context.Context) (*PayoutRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PayoutRunUpdateOne) SaveX(ctx context.Context) *PayoutRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PayoutRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PayoutRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PayoutRunUpdateOne) check() error {
	if v, ok := _u.mutation.Month(); ok {
		if err := payoutrun.MonthValidator(v); err != nil {
			return &ValidationError{Name: "month", err: fmt.Errorf(`ent: validator failed for field "PayoutRun.month": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := payoutrun.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "PayoutRun.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := payoutrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PayoutRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PayoutRunUpdateOne) sqlSave(ctx context.Context) (_node *PayoutRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(payoutrun.Table, payoutrun.Columns, sqlgraph.NewFieldSpec(payoutrun.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PayoutRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, payoutrun.FieldID)
		for _, f := range fields {
			if !payoutrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != payoutrun.FieldID {
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
	if value, ok := _u.mutation.Month(); ok {
		_spec.SetField(payoutrun.FieldMonth, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(payoutrun.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(payoutrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TriggeredBy(); ok {
		_spec.SetField(payoutrun.FieldTriggeredBy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTriggeredBy(); ok {
		_spec.AddField(payoutrun.FieldTriggeredBy, field.TypeInt, value)
	}
	if _u.mutation.TriggeredByCleared() {
		_spec.ClearField(payoutrun.FieldTriggeredBy, field.TypeInt)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(payoutrun.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(payoutrun.FieldFinishedAt, field.TypeTime)
	}
	_node = &PayoutRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{payoutrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
