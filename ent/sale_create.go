// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tracklane/tracklane/ent/sale"
	"github.com/tracklane/tracklane/ent/track"
	"github.com/tracklane/tracklane/ent/user"
)

// SaleCreate is the builder for creating a Sale entity.
type SaleCreate struct {
	config
	mutation *SaleMutation
	hooks    []Hook
}

// SetTrackID sets the "track_id" field.
func (_c *SaleCreate) SetTrackID(v int) *SaleCreate {
	_c.mutation.SetTrackID(v)
	return _c
}

// SetProducerID sets the "producer_id" field.
func (_c *SaleCreate) SetProducerID(v int) *SaleCreate {
	_c.mutation.SetProducerID(v)
	return _c
}

// SetBuyerID sets the "buyer_id" field.
func (_c *SaleCreate) SetBuyerID(v int) *SaleCreate {
	_c.mutation.SetBuyerID(v)
	return _c
}

// SetLicenseType sets the "license_type" field.
func (_c *SaleCreate) SetLicenseType(v sale.LicenseType) *SaleCreate {
	_c.mutation.SetLicenseType(v)
	return _c
}

// SetAmount sets the "amount" field.
func (_c *SaleCreate) SetAmount(v float64) *SaleCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SaleCreate) SetStatus(v sale.Status) *SaleCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SaleCreate) SetNillableStatus(v *sale.Status) *SaleCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStripeSessionID sets the "stripe_session_id" field.
func (_c *SaleCreate) SetStripeSessionID(v string) *SaleCreate {
	_c.mutation.SetStripeSessionID(v)
	return _c
}

// SetNillableStripeSessionID sets the "stripe_session_id" field if the given value is not nil.
func (_c *SaleCreate) SetNillableStripeSessionID(v *string) *SaleCreate {
	if v != nil {
		_c.SetStripeSessionID(*v)
	}
	return _c
}

// SetStripePaymentIntentID sets the "stripe_payment_intent_id" field.
func (_c *SaleCreate) SetStripePaymentIntentID(v string) *SaleCreate {
	_c.mutation.SetStripePaymentIntentID(v)
	return _c
}

// SetNillableStripePaymentIntentID sets the "stripe_payment_intent_id" field if the given value is not nil.
func (_c *SaleCreate) SetNillableStripePaymentIntentID(v *string) *SaleCreate {
	if v != nil {
		_c.SetStripePaymentIntentID(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *SaleCreate) SetCompletedAt(v time.Time) *SaleCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *SaleCreate) SetNillableCompletedAt(v *time.Time) *SaleCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SaleCreate) SetCreatedAt(v time.Time) *SaleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SaleCreate) SetNillableCreatedAt(v *time.Time) *SaleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SaleCreate) SetUpdatedAt(v time.Time) *SaleCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SaleCreate) SetNillableUpdatedAt(v *time.Time) *SaleCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetTrack sets the "track" edge to the Track entity.
func (_c *SaleCreate) SetTrack(v *Track) *SaleCreate {
	return _c.SetTrackID(v.ID)
}

// SetBuyer sets the "buyer" edge to the User entity.
func (_c *SaleCreate) SetBuyer(v *User) *SaleCreate {
	return _c.SetBuyerID(v.ID)
}

// Mutation returns the SaleMutation object of the builder.
func (_c *SaleCreate) Mutation() *SaleMutation {
	return _c.mutation
}

// Save creates the Sale in the database.
func (_c *SaleCreate) Save(ctx context.Context) (*Sale, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SaleCreate) SaveX(ctx context.Context) *Sale {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SaleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SaleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SaleCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := sale.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sale.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := sale.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SaleCreate) check() error {
	if _, ok := _c.mutation.TrackID(); !ok {
		return &ValidationError{Name: "track_id", err: errors.New(`ent: missing required field "Sale.track_id"`)}
	}
	if v, ok := _c.mutation.TrackID(); ok {
		if err := sale.TrackIDValidator(v); err != nil {
			return &ValidationError{Name: "track_id", err: fmt.Errorf(`ent: validator failed for field "Sale.track_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProducerID(); !ok {
		return &ValidationError{Name: "producer_id", err: errors.New(`ent: missing required field "Sale.producer_id"`)}
	}
	if v, ok := _c.mutation.ProducerID(); ok {
		if err := sale.ProducerIDValidator(v); err != nil {
			return &ValidationError{Name: "producer_id", err: fmt.Errorf(`ent: validator failed for field "Sale.producer_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BuyerID(); !ok {
		return &ValidationError{Name: "buyer_id", err: errors.New(`ent: missing required field "Sale.buyer_id"`)}
	}
	if v, ok := _c.mutation.BuyerID(); ok {
		if err := sale.BuyerIDValidator(v); err != nil {
			return &ValidationError{Name: "buyer_id", err: fmt.Errorf(`ent: validator failed for field "Sale.buyer_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LicenseType(); !ok {
		return &ValidationError{Name: "license_type", err: errors.New(`ent: missing required field "Sale.license_type"`)}
	}
	if v, ok := _c.mutation.LicenseType(); ok {
		if err := sale.LicenseTypeValidator(v); err != nil {
			return &ValidationError{Name: "license_type", err: fmt.Errorf(`ent: validator failed for field "Sale.license_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "Sale.amount"`)}
	}
	if v, ok := _c.mutation.Amount(); ok {
		if err := sale.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "Sale.amount": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Sale.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := sale.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Sale.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Sale.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Sale.updated_at"`)}
	}
	if len(_c.mutation.TrackIDs()) == 0 {
		return &ValidationError{Name: "track", err: errors.New(`ent: missing required edge "Sale.track"`)}
	}
	if len(_c.mutation.BuyerIDs()) == 0 {
		return &ValidationError{Name: "buyer", err: errors.New(`ent: missing required edge "Sale.buyer"`)}
	}
	return nil
}

func (_c *SaleCreate) sqlSave(ctx context.Context) (*Sale, error) {
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

func (_c *SaleCreate) createSpec() (*Sale, *sqlgraph.CreateSpec) {
	var (
		_node = &Sale{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sale.Table, sqlgraph.NewFieldSpec(sale.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ProducerID(); ok {
		_spec.SetField(sale.FieldProducerID, field.TypeInt, value)
		_node.ProducerID = value
	}
	if value, ok := _c.mutation.LicenseType(); ok {
		_spec.SetField(sale.FieldLicenseType, field.TypeEnum, value)
		_node.LicenseType = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(sale.FieldAmount, field.TypeFloat64, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(sale.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StripeSessionID(); ok {
		_spec.SetField(sale.FieldStripeSessionID, field.TypeString, value)
		_node.StripeSessionID = value
	}
	if value, ok := _c.mutation.StripePaymentIntentID(); ok {
		_spec.SetField(sale.FieldStripePaymentIntentID, field.TypeString, value)
		_node.StripePaymentIntentID = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(sale.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sale.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(sale.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TrackIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sale.TrackTable,
			Columns: []string{sale.TrackColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(track.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TrackID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BuyerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sale.BuyerTable,
			Columns: []string{sale.BuyerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.BuyerID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SaleCreateBulk is the builder for creating many Sale entities in bulk.
type SaleCreateBulk struct {
	config
	err      error
	builders []*SaleCreate
}

// Save creates the Sale entities in the database.
func (_c *SaleCreateBulk) Save(ctx context.Context) ([]*Sale, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Sale, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SaleMutation)
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
func (_c *SaleCreateBulk) SaveX(ctx context.Context) []*Sale {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SaleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SaleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
