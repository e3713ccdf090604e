// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tracklane/tracklane/ent/payoutrecord"
	"github.com/tracklane/tracklane/ent/user"
)

// PayoutRecordCreate is the builder for creating a PayoutRecord entity.
type PayoutRecordCreate struct {
	config
	mutation *PayoutRecordMutation
	hooks    []Hook
}

// SetProducerID sets the "producer_id" field.
func (_c *PayoutRecordCreate) SetProducerID(v int) *PayoutRecordCreate {
	_c.mutation.SetProducerID(v)
	return _c
}

// SetMonth sets the "month" field.
func (_c *PayoutRecordCreate) SetMonth(v string) *PayoutRecordCreate {
	_c.mutation.SetMonth(v)
	return _c
}

// SetAmount sets the "amount" field.
func (_c *PayoutRecordCreate) SetAmount(v float64) *PayoutRecordCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PayoutRecordCreate) SetStatus(v payoutrecord.Status) *PayoutRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PayoutRecordCreate) SetNillableStatus(v *payoutrecord.Status) *PayoutRecordCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetWalletAddress sets the "wallet_address" field.
func (_c *PayoutRecordCreate) SetWalletAddress(v string) *PayoutRecordCreate {
	_c.mutation.SetWalletAddress(v)
	return _c
}

// SetNillableWalletAddress sets the "wallet_address" field if the given value is not nil.
func (_c *PayoutRecordCreate) SetNillableWalletAddress(v *string) *PayoutRecordCreate {
	if v != nil {
		_c.SetWalletAddress(*v)
	}
	return _c
}

// SetPaymentTransactionID sets the "payment_transaction_id" field.
func (_c *PayoutRecordCreate) SetPaymentTransactionID(v string) *PayoutRecordCreate {
	_c.mutation.SetPaymentTransactionID(v)
	return _c
}

// SetNillablePaymentTransactionID sets the "payment_transaction_id" field if the given value is not nil.
func (_c *PayoutRecordCreate) SetNillablePaymentTransactionID(v *string) *PayoutRecordCreate {
	if v != nil {
		_c.SetPaymentTransactionID(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *PayoutRecordCreate) SetRetryCount(v int) *PayoutRecordCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *PayoutRecordCreate) SetNillableRetryCount(v *int) *PayoutRecordCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *PayoutRecordCreate) SetLastError(v string) *PayoutRecordCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *PayoutRecordCreate) SetNillableLastError(v *string) *PayoutRecordCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetPaidAt sets the "paid_at" field.
func (_c *PayoutRecordCreate) SetPaidAt(v time.Time) *PayoutRecordCreate {
	_c.mutation.SetPaidAt(v)
	return _c
}

// SetNillablePaidAt sets the "paid_at" field if the given value is not nil.
func (_c *PayoutRecordCreate) SetNillablePaidAt(v *time.Time) *PayoutRecordCreate {
	if v != nil {
		_c.SetPaidAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PayoutRecordCreate) SetCreatedAt(v time.Time) *PayoutRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PayoutRecordCreate) SetNillableCreatedAt(v *time.Time) *PayoutRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PayoutRecordCreate) SetUpdatedAt(v time.Time) *PayoutRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PayoutRecordCreate) SetNillableUpdatedAt(v *time.Time) *PayoutRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetProducer sets the "producer" edge to the User entity.
func (_c *PayoutRecordCreate) SetProducer(v *User) *PayoutRecordCreate {
	return _c.SetProducerID(v.ID)
}

// Mutation returns the PayoutRecordMutation object of the builder.
func (_c *PayoutRecordCreate) Mutation() *PayoutRecordMutation {
	return _c.mutation
}

// Save creates the PayoutRecord in the database.
func (_c *PayoutRecordCreate) Save(ctx context.Context) (*PayoutRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PayoutRecordCreate) SaveX(ctx context.Context) *PayoutRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PayoutRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PayoutRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PayoutRecordCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := payoutrecord.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := payoutrecord.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := payoutrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := payoutrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PayoutRecordCreate) check() error {
	if _, ok := _c.mutation.ProducerID(); !ok {
		return &ValidationError{Name: "producer_id", err: errors.New(`ent: missing required field "PayoutRecord.producer_id"`)}
	}
	if v, ok := _c.mutation.ProducerID(); ok {
		if err := payoutrecord.ProducerIDValidator(v); err != nil {
			return &ValidationError{Name: "producer_id", err: fmt.Errorf(`ent: validator failed for field "PayoutRecord.producer_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Month(); !ok {
		return &ValidationError{Name: "month", err: errors.New(`ent: missing required field "PayoutRecord.month"`)}
	}
	if v, ok := _c.mutation.Month(); ok {
		if err := payoutrecord.MonthValidator(v); err != nil {
			return &ValidationError{Name: "month", err: fmt.Errorf(`ent: validator failed for field "PayoutRecord.month": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "PayoutRecord.amount"`)}
	}
	if v, ok := _c.mutation.Amount(); ok {
		if err := payoutrecord.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "PayoutRecord.amount": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PayoutRecord.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := payoutrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PayoutRecord.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "PayoutRecord.retry_count"`)}
	}
	if v, ok := _c.mutation.RetryCount(); ok {
		if err := payoutrecord.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "PayoutRecord.retry_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PayoutRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PayoutRecord.updated_at"`)}
	}
	if len(_c.mutation.ProducerIDs()) == 0 {
		return &ValidationError{Name: "producer", err: errors.New(`ent: missing required edge "PayoutRecord.producer"`)}
	}
	return nil
}

func (_c *PayoutRecordCreate) sqlSave(ctx context.Context) (*PayoutRecord, error) {
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

func (_c *PayoutRecordCreate) createSpec() (*PayoutRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &PayoutRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(payoutrecord.Table, sqlgraph.NewFieldSpec(payoutrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Month(); ok {
		_spec.SetField(payoutrecord.FieldMonth, field.TypeString, value)
		_node.Month = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(payoutrecord.FieldAmount, field.TypeFloat64, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(payoutrecord.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.WalletAddress(); ok {
		_spec.SetField(payoutrecord.FieldWalletAddress, field.TypeString, value)
		_node.WalletAddress = value
	}
	if value, ok := _c.mutation.PaymentTransactionID(); ok {
		_spec.SetField(payoutrecord.FieldPaymentTransactionID, field.TypeString, value)
		_node.PaymentTransactionID = &value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(payoutrecord.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(payoutrecord.FieldLastError, field.TypeString, value)
		_node.LastError = value
	}
	if value, ok := _c.mutation.PaidAt(); ok {
		_spec.SetField(payoutrecord.FieldPaidAt, field.TypeTime, value)
		_node.PaidAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(payoutrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(payoutrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProducerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   payoutrecord.ProducerTable,
			Columns: []string{payoutrecord.ProducerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProducerID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PayoutRecordCreateBulk is the builder for creating many PayoutRecord entities in bulk.
type PayoutRecordCreateBulk struct {
	config
	err      error
	builders []*PayoutRecordCreate
}

// Save creates the PayoutRecord entities in the database.
func (_c *PayoutRecordCreateBulk) Save(ctx context.Context) ([]*PayoutRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PayoutRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PayoutRecordMutation)
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
func (_c *PayoutRecordCreateBulk) SaveX(ctx context.Context) []*PayoutRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PayoutRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PayoutRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
