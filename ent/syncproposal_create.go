// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tracklane/tracklane/ent/syncproposal"
)

// SyncProposalCreate is the builder for creating a SyncProposal entity.
type SyncProposalCreate struct {
	config
	mutation *SyncProposalMutation
	hooks    []Hook
}

// SetProducerID sets the "producer_id" field.
func (_c *SyncProposalCreate) SetProducerID(v int) *SyncProposalCreate {
	_c.mutation.SetProducerID(v)
	return _c
}

// SetTrackID sets the "track_id" field.
func (_c *SyncProposalCreate) SetTrackID(v int) *SyncProposalCreate {
	_c.mutation.SetTrackID(v)
	return _c
}

// SetProjectName sets the "project_name" field.
func (_c *SyncProposalCreate) SetProjectName(v string) *SyncProposalCreate {
	_c.mutation.SetProjectName(v)
	return _c
}

// SetFee sets the "fee" field.
func (_c *SyncProposalCreate) SetFee(v float64) *SyncProposalCreate {
	_c.mutation.SetFee(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SyncProposalCreate) SetStatus(v syncproposal.Status) *SyncProposalCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SyncProposalCreate) SetNillableStatus(v *syncproposal.Status) *SyncProposalCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAcceptedAt sets the "accepted_at" field.
func (_c *SyncProposalCreate) SetAcceptedAt(v time.Time) *SyncProposalCreate {
	_c.mutation.SetAcceptedAt(v)
	return _c
}

// SetNillableAcceptedAt sets the "accepted_at" field if the given value is not nil.
func (_c *SyncProposalCreate) SetNillableAcceptedAt(v *time.Time) *SyncProposalCreate {
	if v != nil {
		_c.SetAcceptedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SyncProposalCreate) SetCreatedAt(v time.Time) *SyncProposalCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SyncProposalCreate) SetNillableCreatedAt(v *time.Time) *SyncProposalCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SyncProposalCreate) SetUpdatedAt(v time.Time) *SyncProposalCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SyncProposalCreate) SetNillableUpdatedAt(v *time.Time) *SyncProposalCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the SyncProposalMutation object of the builder.
func (_c *SyncProposalCreate) Mutation() *SyncProposalMutation {
	return _c.mutation
}

// Save creates the SyncProposal in the database.
func (_c *SyncProposalCreate) Save(ctx context.Context) (*SyncProposal, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SyncProposalCreate) SaveX(ctx context.Context) *SyncProposal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SyncProposalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SyncProposalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SyncProposalCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := syncproposal.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := syncproposal.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := syncproposal.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SyncProposalCreate) check() error {
	if _, ok := _c.mutation.ProducerID(); !ok {
		return &ValidationError{Name: "producer_id", err: errors.New(`ent: missing required field "SyncProposal.producer_id"`)}
	}
	if v, ok := _c.mutation.ProducerID(); ok {
		if err := syncproposal.ProducerIDValidator(v); err != nil {
			return &ValidationError{Name: "producer_id", err: fmt.Errorf(`ent: validator failed for field "SyncProposal.producer_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TrackID(); !ok {
		return &ValidationError{Name: "track_id", err: errors.New(`ent: missing required field "SyncProposal.track_id"`)}
	}
	if v, ok := _c.mutation.TrackID(); ok {
		if err := syncproposal.TrackIDValidator(v); err != nil {
			return &ValidationError{Name: "track_id", err: fmt.Errorf(`ent: validator failed for field "SyncProposal.track_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProjectName(); !ok {
		return &ValidationError{Name: "project_name", err: errors.New(`ent: missing required field "SyncProposal.project_name"`)}
	}
	if v, ok := _c.mutation.ProjectName(); ok {
		if err := syncproposal.ProjectNameValidator(v); err != nil {
			return &ValidationError{Name: "project_name", err: fmt.Errorf(`ent: validator failed for field "SyncProposal.project_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Fee(); !ok {
		return &ValidationError{Name: "fee", err: errors.New(`ent: missing required field "SyncProposal.fee"`)}
	}
	if v, ok := _c.mutation.Fee(); ok {
		if err := syncproposal.FeeValidator(v); err != nil {
			return &ValidationError{Name: "fee", err: fmt.Errorf(`ent: validator failed for field "SyncProposal.fee": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SyncProposal.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := syncproposal.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SyncProposal.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SyncProposal.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SyncProposal.updated_at"`)}
	}
	return nil
}

func (_c *SyncProposalCreate) sqlSave(ctx context.Context) (*SyncProposal, error) {
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

func (_c *SyncProposalCreate) createSpec() (*SyncProposal, *sqlgraph.CreateSpec) {
	var (
		_node = &SyncProposal{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(syncproposal.Table, sqlgraph.NewFieldSpec(syncproposal.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ProducerID(); ok {
		_spec.SetField(syncproposal.FieldProducerID, field.TypeInt, value)
		_node.ProducerID = value
	}
	if value, ok := _c.mutation.TrackID(); ok {
		_spec.SetField(syncproposal.FieldTrackID, field.TypeInt, value)
		_node.TrackID = value
	}
	if value, ok := _c.mutation.ProjectName(); ok {
		_spec.SetField(syncproposal.FieldProjectName, field.TypeString, value)
		_node.ProjectName = value
	}
	if value, ok := _c.mutation.Fee(); ok {
		_spec.SetField(syncproposal.FieldFee, field.TypeFloat64, value)
		_node.Fee = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(syncproposal.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AcceptedAt(); ok {
		_spec.SetField(syncproposal.FieldAcceptedAt, field.TypeTime, value)
		_node.AcceptedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(syncproposal.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(syncproposal.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// SyncProposalCreateBulk is the builder for creating many SyncProposal entities in bulk.
type SyncProposalCreateBulk struct {
	config
	err      error
	builders []*SyncProposalCreate
}

// Save creates the SyncProposal entities in the database.
func (_c *SyncProposalCreateBulk) Save(ctx context.Context) ([]*SyncProposal, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SyncProposal, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SyncProposalMutation)
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
func (_c *SyncProposalCreateBulk) SaveX(ctx context.Context) []*SyncProposal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SyncProposalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SyncProposalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
