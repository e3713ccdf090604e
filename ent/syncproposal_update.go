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
	"github.com/tracklane/tracklane/ent/predicate"
	"github.com/tracklane/tracklane/ent/syncproposal"
)

// SyncProposalUpdate is the builder for updating SyncProposal entities.
type SyncProposalUpdate struct {
	config
	hooks    []Hook
	mutation *SyncProposalMutation
}

// Where appends a list predicates to the SyncProposalUpdate builder.
func (_u *SyncProposalUpdate) Where(ps ...predicate.SyncProposal) *SyncProposalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProducerID sets the "producer_id" field.
func (_u *SyncProposalUpdate) SetProducerID(v int) *SyncProposalUpdate {
	_u.mutation.ResetProducerID()
	_u.mutation.SetProducerID(v)
	return _u
}

// SetNillableProducerID sets the "producer_id" field if the given value is not nil.
func (_u *SyncProposalUpdate) SetNillableProducerID(v *int) *SyncProposalUpdate {
	if v != nil {
		_u.SetProducerID(*v)
	}
	return _u
}

// AddProducerID adds value to the "producer_id" field.
func (_u *SyncProposalUpdate) AddProducerID(v int) *SyncProposalUpdate {
	_u.mutation.AddProducerID(v)
	return _u
}

// SetTrackID sets the "track_id" field.
func (_u *SyncProposalUpdate) SetTrackID(v int) *SyncProposalUpdate {
	_u.mutation.ResetTrackID()
	_u.mutation.SetTrackID(v)
	return _u
}

// SetNillableTrackID sets the "track_id" field if the given value is not nil.
func (_u *SyncProposalUpdate) SetNillableTrackID(v *int) *SyncProposalUpdate {
	if v != nil {
		_u.SetTrackID(*v)
	}
	return _u
}

// AddTrackID adds value to the "track_id" field.
func (_u *SyncProposalUpdate) AddTrackID(v int) *SyncProposalUpdate {
	_u.mutation.AddTrackID(v)
	return _u
}

// SetProjectName sets the "project_name" field.
func (_u *SyncProposalUpdate) SetProjectName(v string) *SyncProposalUpdate {
	_u.mutation.SetProjectName(v)
	return _u
}

// SetNillableProjectName sets the "project_name" field if the given value is not nil.
func (_u *SyncProposalUpdate) SetNillableProjectName(v *string) *SyncProposalUpdate {
	if v != nil {
		_u.SetProjectName(*v)
	}
	return _u
}

// SetFee sets the "fee" field.
func (_u *SyncProposalUpdate) SetFee(v float64) *SyncProposalUpdate {
	_u.mutation.ResetFee()
	_u.mutation.SetFee(v)
	return _u
}

// SetNillableFee sets the "fee" field if the given value is not nil.
func (_u *SyncProposalUpdate) SetNillableFee(v *float64) *SyncProposalUpdate {
	if v != nil {
		_u.SetFee(*v)
	}
	return _u
}

// AddFee adds value to the "fee" field.
func (_u *SyncProposalUpdate) AddFee(v float64) *SyncProposalUpdate {
	_u.mutation.AddFee(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SyncProposalUpdate) SetStatus(v syncproposal.Status) *SyncProposalUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SyncProposalUpdate) SetNillableStatus(v *syncproposal.Status) *SyncProposalUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAcceptedAt sets the "accepted_at" field.
func (_u *SyncProposalUpdate) SetAcceptedAt(v time.Time) *SyncProposalUpdate {
	_u.mutation.SetAcceptedAt(v)
	return _u
}

// SetNillableAcceptedAt sets the "accepted_at" field if the given value is not nil.
func (_u *SyncProposalUpdate) SetNillableAcceptedAt(v *time.Time) *SyncProposalUpdate {
	if v != nil {
		_u.SetAcceptedAt(*v)
	}
	return _u
}

// ClearAcceptedAt clears the value of the "accepted_at" field.
func (_u *SyncProposalUpdate) ClearAcceptedAt() *SyncProposalUpdate {
	_u.mutation.ClearAcceptedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SyncProposalUpdate) SetUpdatedAt(v time.Time) *SyncProposalUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SyncProposalMutation object of the builder.
func (_u *SyncProposalUpdate) Mutation() *SyncProposalMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SyncProposalUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SyncProposalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SyncProposalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SyncProposalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SyncProposalUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := syncproposal.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SyncProposalUpdate) check() error {
	if v, ok := _u.mutation.ProducerID(); ok {
		if err := syncproposal.ProducerIDValidator(v); err != nil {
			return &ValidationError{Name: "producer_id", err: fmt.Errorf(`ent: validator failed for field "SyncProposal.producer_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TrackID(); ok {
		if err := syncproposal.TrackIDValidator(v); err != nil {
			return &ValidationError{Name: "track_id", err: fmt.Errorf(`ent: validator failed for field "SyncProposal.track_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProjectName(); ok {
		if err := syncproposal.ProjectNameValidator(v); err != nil {
			return &ValidationError{Name: "project_name", err: fmt.Errorf(`ent: validator failed for field "SyncProposal.project_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Fee(); ok {
		if err := syncproposal.FeeValidator(v); err != nil {
			return &ValidationError{Name: "fee", err: fmt.Errorf(`ent: validator failed for field "SyncProposal.fee": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := syncproposal.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SyncProposal.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SyncProposalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(syncproposal.Table, syncproposal.Columns, sqlgraph.NewFieldSpec(syncproposal.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProducerID(); ok {
		_spec.SetField(syncproposal.FieldProducerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProducerID(); ok {
		_spec.AddField(syncproposal.FieldProducerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TrackID(); ok {
		_spec.SetField(syncproposal.FieldTrackID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTrackID(); ok {
		_spec.AddField(syncproposal.FieldTrackID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProjectName(); ok {
		_spec.SetField(syncproposal.FieldProjectName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Fee(); ok {
		_spec.SetField(syncproposal.FieldFee, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFee(); ok {
		_spec.AddField(syncproposal.FieldFee, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(syncproposal.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AcceptedAt(); ok {
		_spec.SetField(syncproposal.FieldAcceptedAt, field.TypeTime, value)
	}
	if _u.mutation.AcceptedAtCleared() {
		_spec.ClearField(syncproposal.FieldAcceptedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(syncproposal.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{syncproposal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SyncProposalUpdateOne is the builder for updating a single SyncProposal entity.
type SyncProposalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SyncProposalMutation
}

// SetProducerID sets the "producer_id" field.
func (_u *SyncProposalUpdateOne) SetProducerID(v int) *SyncProposalUpdateOne {
	_u.mutation.ResetProducerID()
	_u.mutation.SetProducerID(v)
	return _u
}

// SetNillableProducerID sets the "producer_id" field if the given value is not nil.
func (_u *SyncProposalUpdateOne) SetNillableProducerID(v *int) *SyncProposalUpdateOne {
	if v != nil {
		_u.SetProducerID(*v)
	}
	return _u
}

// AddProducerID adds value to the "producer_id" field.
func (_u *SyncProposalUpdateOne) AddProducerID(v int) *SyncProposalUpdateOne {
	_u.mutation.AddProducerID(v)
	return _u
}

// SetTrackID sets the "track_id" field.
func (_u *SyncProposalUpdateOne) SetTrackID(v int) *SyncProposalUpdateOne {
	_u.mutation.ResetTrackID()
	_u.mutation.SetTrackID(v)
	return _u
}

// SetNillableTrackID sets the "track_id" field if the given value is not nil.
func (_u *SyncProposalUpdateOne) SetNillableTrackID(v *int) *SyncProposalUpdateOne {
	if v != nil {
		_u.SetTrackID(*v)
	}
	return _u
}

// AddTrackID adds value to the "track_id" field.
func (_u *SyncProposalUpdateOne) AddTrackID(v int) *SyncProposalUpdateOne {
	_u.mutation.AddTrackID(v)
	return _u
}

// SetProjectName sets the "project_name" field.
func (_u *SyncProposalUpdateOne) SetProjectName(v string) *SyncProposalUpdateOne {
	_u.mutation.SetProjectName(v)
	return _u
}

// SetNillableProjectName sets the "project_name" field if the given value is not nil.
func (_u *SyncProposalUpdateOne) SetNillableProjectName(v *string) *SyncProposalUpdateOne {
	if v != nil {
		_u.SetProjectName(*v)
	}
	return _u
}

// SetFee sets the "fee" field.
func (_u *SyncProposalUpdateOne) SetFee(v float64) *SyncProposalUpdateOne {
	_u.mutation.ResetFee()
	_u.mutation.SetFee(v)
	return _u
}

// SetNillableFee sets the "fee" field if the given value is not nil.
func (_u *SyncProposalUpdateOne) SetNillableFee(v *float64) *SyncProposalUpdateOne {
	if v != nil {
		_u.SetFee(*v)
	}
	return _u
}

// AddFee adds value to the "fee" field.
func (_u *SyncProposalUpdateOne) AddFee(v float64) *SyncProposalUpdateOne {
	_u.mutation.AddFee(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SyncProposalUpdateOne) SetStatus(v syncproposal.Status) *SyncProposalUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SyncProposalUpdateOne) SetNillableStatus(v *syncproposal.Status) *SyncProposalUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAcceptedAt sets the "accepted_at" field.
func (_u *SyncProposalUpdateOne) SetAcceptedAt(v time.Time) *SyncProposalUpdateOne {
	_u.mutation.SetAcceptedAt(v)
	return _u
}

// SetNillableAcceptedAt sets the "accepted_at" field if the given value is not nil.
func (_u *SyncProposalUpdateOne) SetNillableAcceptedAt(v *time.Time) *SyncProposalUpdateOne {
	if v != nil {
		_u.SetAcceptedAt(*v)
	}
	return _u
}

// ClearAcceptedAt clears the value of the "accepted_at" field.
func (_u *SyncProposalUpdateOne) ClearAcceptedAt() *SyncProposalUpdateOne {
	_u.mutation.ClearAcceptedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SyncProposalUpdateOne) SetUpdatedAt(v time.Time) *SyncProposalUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SyncProposalMutation object of the builder.
func (_u *SyncProposalUpdateOne) Mutation() *SyncProposalMutation {
	return _u.mutation
}

// Where appends a list predicates to the SyncProposalUpdate builder.
func (_u *SyncProposalUpdateOne) Where(ps ...predicate.SyncProposal) *SyncProposalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SyncProposalUpdateOne) Select(field string, fields ...string) *SyncProposalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SyncProposal entity.
func (_u *SyncProposalUpdateOne) Save(ctx context.Context) (*SyncProposal, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SyncProposalUpdateOne) SaveX(ctx context.Context) *SyncProposal {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SyncProposalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SyncProposalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SyncProposalUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := syncproposal.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SyncProposalUpdateOne) check() error {
	if v, ok := _u.mutation.ProducerID(); ok {
		if err := syncproposal.ProducerIDValidator(v); err != nil {
			return &ValidationError{Name: "producer_id", err: fmt.Errorf(`ent: validator failed for field "SyncProposal.producer_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TrackID(); ok {
		if err := syncproposal.TrackIDValidator(v); err != nil {
			return &ValidationError{Name: "track_id", err: fmt.Errorf(`ent: validator failed for field "SyncProposal.track_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProjectName(); ok {
		if err := syncproposal.ProjectNameValidator(v); err != nil {
			return &ValidationError{Name: "project_name", err: fmt.Errorf(`ent: validator failed for field "SyncProposal.project_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Fee(); ok {
		if err := syncproposal.FeeValidator(v); err != nil {
			return &ValidationError{Name: "fee", err: fmt.Errorf(`ent: validator failed for field "SyncProposal.fee": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := syncproposal.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SyncProposal.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SyncProposalUpdateOne) sqlSave(ctx context.Context) (_node *SyncProposal, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(syncproposal.Table, syncproposal.Columns, sqlgraph.NewFieldSpec(syncproposal.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SyncProposal.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, syncproposal.FieldID)
		for _, f := range fields {
			if !syncproposal.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != syncproposal.FieldID {
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
	if value, ok := _u.mutation.ProducerID(); ok {
		_spec.SetField(syncproposal.FieldProducerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProducerID(); ok {
		_spec.AddField(syncproposal.FieldProducerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TrackID(); ok {
		_spec.SetField(syncproposal.FieldTrackID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTrackID(); ok {
		_spec.AddField(syncproposal.FieldTrackID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProjectName(); ok {
		_spec.SetField(syncproposal.FieldProjectName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Fee(); ok {
		_spec.SetField(syncproposal.FieldFee, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFee(); ok {
		_spec.AddField(syncproposal.FieldFee, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(syncproposal.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AcceptedAt(); ok {
		_spec.SetField(syncproposal.FieldAcceptedAt, field.TypeTime, value)
	}
	if _u.mutation.AcceptedAtCleared() {
		_spec.ClearField(syncproposal.FieldAcceptedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(syncproposal.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SyncProposal{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{syncproposal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
