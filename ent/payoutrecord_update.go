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
	"github.com/tracklane/tracklane/ent/payoutrecord"
	"github.com/tracklane/tracklane/ent/predicate"
	"github.com/tracklane/tracklane/ent/user"
)

// PayoutRecordUpdate is the builder for updating PayoutRecord entities.
type PayoutRecordUpdate struct {
	config
	hooks    []Hook
	mutation *PayoutRecordMutation
}

// Where appends a list predicates to the PayoutRecordUpdate builder.
func (_u *PayoutRecordUpdate) Where(ps ...predicate.PayoutRecord) *PayoutRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProducerID sets the "producer_id" field.
func (_u *PayoutRecordUpdate) SetProducerID(v int) *PayoutRecordUpdate {
	_u.mutation.SetProducerID(v)
	return _u
}

// SetNillableProducerID sets the "producer_id" field if the given value is not nil.
func (_u *PayoutRecordUpdate) SetNillableProducerID(v *int) *PayoutRecordUpdate {
	if v != nil {
		_u.SetProducerID(*v)
	}
	return _u
}

// SetMonth sets the "month" field.
func (_u *PayoutRecordUpdate) SetMonth(v string) *PayoutRecordUpdate {
	_u.mutation.SetMonth(v)
	return _u
}

// SetNillableMonth sets the "month" field if the given value is not nil.
func (_u *PayoutRecordUpdate) SetNillableMonth(v *string) *PayoutRecordUpdate {
	if v != nil {
		_u.SetMonth(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *PayoutRecordUpdate) SetAmount(v float64) *PayoutRecordUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *PayoutRecordUpdate) SetNillableAmount(v *float64) *PayoutRecordUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *PayoutRecordUpdate) AddAmount(v float64) *PayoutRecordUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *PayoutRecordUpdate) SetStatus(v payoutrecord.Status) *PayoutRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PayoutRecordUpdate) SetNillableStatus(v *payoutrecord.Status) *PayoutRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetWalletAddress sets the "wallet_address" field.
func (_u *PayoutRecordUpdate) SetWalletAddress(v string) *PayoutRecordUpdate {
	_u.mutation.SetWalletAddress(v)
	return _u
}

// SetNillableWalletAddress sets the "wallet_address" field if the given value is not nil.
func (_u *PayoutRecordUpdate) SetNillableWalletAddress(v *string) *PayoutRecordUpdate {
	if v != nil {
		_u.SetWalletAddress(*v)
	}
	return _u
}

// ClearWalletAddress clears the value of the "wallet_address" field.
func (_u *PayoutRecordUpdate) ClearWalletAddress() *PayoutRecordUpdate {
	_u.mutation.ClearWalletAddress()
	return _u
}

// SetPaymentTransactionID sets the "payment_transaction_id" field.
func (_u *PayoutRecordUpdate) SetPaymentTransactionID(v string) *PayoutRecordUpdate {
	_u.mutation.SetPaymentTransactionID(v)
	return _u
}

// SetNillablePaymentTransactionID sets the "payment_transaction_id" field if the given value is not nil.
func (_u *PayoutRecordUpdate) SetNillablePaymentTransactionID(v *string) *PayoutRecordUpdate {
	if v != nil {
		_u.SetPaymentTransactionID(*v)
	}
	return _u
}

// ClearPaymentTransactionID clears the value of the "payment_transaction_id" field.
func (_u *PayoutRecordUpdate) ClearPaymentTransactionID() *PayoutRecordUpdate {
	_u.mutation.ClearPaymentTransactionID()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *PayoutRecordUpdate) SetRetryCount(v int) *PayoutRecordUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *PayoutRecordUpdate) SetNillableRetryCount(v *int) *PayoutRecordUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *PayoutRecordUpdate) AddRetryCount(v int) *PayoutRecordUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *PayoutRecordUpdate) SetLastError(v string) *PayoutRecordUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *PayoutRecordUpdate) SetNillableLastError(v *string) *PayoutRecordUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *PayoutRecordUpdate) ClearLastError() *PayoutRecordUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetPaidAt sets the "paid_at" field.
func (_u *PayoutRecordUpdate) SetPaidAt(v time.Time) *PayoutRecordUpdate {
	_u.mutation.SetPaidAt(v)
	return _u
}

// SetNillablePaidAt sets the "paid_at" field if the given value is not nil.
func (_u *PayoutRecordUpdate) SetNillablePaidAt(v *time.Time) *PayoutRecordUpdate {
	if v != nil {
		_u.SetPaidAt(*v)
	}
	return _u
}

// ClearPaidAt clears the value of the "paid_at" field.
func (_u *PayoutRecordUpdate) ClearPaidAt() *PayoutRecordUpdate {
	_u.mutation.ClearPaidAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PayoutRecordUpdate) SetUpdatedAt(v time.Time) *PayoutRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProducer sets the "producer" edge to the User entity.
func (_u *PayoutRecordUpdate) SetProducer(v *User) *PayoutRecordUpdate {
	return _u.SetProducerID(v.ID)
}

// Mutation returns the PayoutRecordMutation object of the builder.
func (_u *PayoutRecordUpdate) Mutation() *PayoutRecordMutation {
	return _u.mutation
}

// ClearProducer clears the "producer" edge to the User entity.
func (_u *PayoutRecordUpdate) ClearProducer() *PayoutRecordUpdate {
	_u.mutation.ClearProducer()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PayoutRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PayoutRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PayoutRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PayoutRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PayoutRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := payoutrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PayoutRecordUpdate) check() error {
	if v, ok := _u.mutation.ProducerID(); ok {
		if err := payoutrecord.ProducerIDValidator(v); err != nil {
			return &ValidationError{Name: "producer_id", err: fmt.Errorf(`ent: validator failed for field "PayoutRecord.producer_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Month(); ok {
		if err := payoutrecord.MonthValidator(v); err != nil {
			return &ValidationError{Name: "month", err: fmt.Errorf(`ent: validator failed for field "PayoutRecord.month": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Amount(); ok {
		if err := payoutrecord.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "PayoutRecord.amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := payoutrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PayoutRecord.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RetryCount(); ok {
		if err := payoutrecord.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "PayoutRecord.retry_count": %w`, err)}
		}
	}
	if _u.mutation.ProducerCleared() && len(_u.mutation.ProducerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PayoutRecord.producer"`)
	}
	return nil
}

func (_u *PayoutRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(payoutrecord.Table, payoutrecord.Columns, sqlgraph.NewFieldSpec(payoutrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Month(); ok {
		_spec.SetField(payoutrecord.FieldMonth, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(payoutrecord.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(payoutrecord.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(payoutrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.WalletAddress(); ok {
		_spec.SetField(payoutrecord.FieldWalletAddress, field.TypeString, value)
	}
	if _u.mutation.WalletAddressCleared() {
		_spec.ClearField(payoutrecord.FieldWalletAddress, field.TypeString)
	}
	if value, ok := _u.mutation.PaymentTransactionID(); ok {
		_spec.SetField(payoutrecord.FieldPaymentTransactionID, field.TypeString, value)
	}
	if _u.mutation.PaymentTransactionIDCleared() {
		_spec.ClearField(payoutrecord.FieldPaymentTransactionID, field.TypeString)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(payoutrecord.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(payoutrecord.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(payoutrecord.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(payoutrecord.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.PaidAt(); ok {
		_spec.SetField(payoutrecord.FieldPaidAt, field.TypeTime, value)
	}
	if _u.mutation.PaidAtCleared() {
		_spec.ClearField(payoutrecord.FieldPaidAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(payoutrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProducerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProducerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{payoutrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PayoutRecordUpdateOne is the builder for updating a single PayoutRecord entity.
type PayoutRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PayoutRecordMutation
}

// SetProducerID sets the "producer_id" field.
func (_u *PayoutRecordUpdateOne) SetProducerID(v int) *PayoutRecordUpdateOne {
	_u.mutation.SetProducerID(v)
	return _u
}

// SetNillableProducerID sets the "producer_id" field if the given value is not nil.
func (_u *PayoutRecordUpdateOne) SetNillableProducerID(v *int) *PayoutRecordUpdateOne {
	if v != nil {
		_u.SetProducerID(*v)
	}
	return _u
}

// SetMonth sets the "month" field.
func (_u *PayoutRecordUpdateOne) SetMonth(v string) *PayoutRecordUpdateOne {
	_u.mutation.SetMonth(v)
	return _u
}

// SetNillableMonth sets the "month" field if the given value is not nil.
func (_u *PayoutRecordUpdateOne) SetNillableMonth(v *string) *PayoutRecordUpdateOne {
	if v != nil {
		_u.SetMonth(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *PayoutRecordUpdateOne) SetAmount(v float64) *PayoutRecordUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *PayoutRecordUpdateOne) SetNillableAmount(v *float64) *PayoutRecordUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *PayoutRecordUpdateOne) AddAmount(v float64) *PayoutRecordUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *PayoutRecordUpdateOne) SetStatus(v payoutrecord.Status) *PayoutRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PayoutRecordUpdateOne) SetNillableStatus(v *payoutrecord.Status) *PayoutRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetWalletAddress sets the "wallet_address" field.
func (_u *PayoutRecordUpdateOne) SetWalletAddress(v string) *PayoutRecordUpdateOne {
	_u.mutation.SetWalletAddress(v)
	return _u
}

// SetNillableWalletAddress sets the "wallet_address" field if the given value is not nil.
func (_u *PayoutRecordUpdateOne) SetNillableWalletAddress(v *string) *PayoutRecordUpdateOne {
	if v != nil {
		_u.SetWalletAddress(*v)
	}
	return _u
}

// ClearWalletAddress clears the value of the "wallet_address" field.
func (_u *PayoutRecordUpdateOne) ClearWalletAddress() *PayoutRecordUpdateOne {
	_u.mutation.ClearWalletAddress()
	return _u
}

// SetPaymentTransactionID sets the "payment_transaction_id" field.
func (_u *PayoutRecordUpdateOne) SetPaymentTransactionID(v string) *PayoutRecordUpdateOne {
	_u.mutation.SetPaymentTransactionID(v)
	return _u
}

// SetNillablePaymentTransactionID sets the "payment_transaction_id" field if the given value is not nil.
func (_u *PayoutRecordUpdateOne) SetNillablePaymentTransactionID(v *string) *PayoutRecordUpdateOne {
	if v != nil {
		_u.SetPaymentTransactionID(*v)
	}
	return _u
}

// ClearPaymentTransactionID clears the value of the "payment_transaction_id" field.
func (_u *PayoutRecordUpdateOne) ClearPaymentTransactionID() *PayoutRecordUpdateOne {
	_u.mutation.ClearPaymentTransactionID()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *PayoutRecordUpdateOne) SetRetryCount(v int) *PayoutRecordUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *PayoutRecordUpdateOne) SetNillableRetryCount(v *int) *PayoutRecordUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *PayoutRecordUpdateOne) AddRetryCount(v int) *PayoutRecordUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *PayoutRecordUpdateOne) SetLastError(v string) *PayoutRecordUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *PayoutRecordUpdateOne) SetNillableLastError(v *string) *PayoutRecordUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *PayoutRecordUpdateOne) ClearLastError() *PayoutRecordUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetPaidAt sets the "paid_at" field.
func (_u *PayoutRecordUpdateOne) SetPaidAt(v time.Time) *PayoutRecordUpdateOne {
	_u.mutation.SetPaidAt(v)
	return _u
}

// SetNillablePaidAt sets the "paid_at" field if the given value is not nil.
func (_u *PayoutRecordUpdateOne) SetNillablePaidAt(v *time.Time) *PayoutRecordUpdateOne {
	if v != nil {
		_u.SetPaidAt(*v)
	}
	return _u
}

// ClearPaidAt clears the value of the "paid_at" field.
func (_u *PayoutRecordUpdateOne) ClearPaidAt() *PayoutRecordUpdateOne {
	_u.mutation.ClearPaidAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PayoutRecordUpdateOne) SetUpdatedAt(v time.Time) *PayoutRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProducer sets the "producer" edge to the User entity.
func (_u *PayoutRecordUpdateOne) SetProducer(v *User) *PayoutRecordUpdateOne {
	return _u.SetProducerID(v.ID)
}

// Mutation returns the PayoutRecordMutation object of the builder.
func (_u *PayoutRecordUpdateOne) Mutation() *PayoutRecordMutation {
	return _u.mutation
}

// ClearProducer clears the "producer" edge to the User entity.
func (_u *PayoutRecordUpdateOne) ClearProducer() *PayoutRecordUpdateOne {
	_u.mutation.ClearProducer()
	return _u
}

// Where appends a list predicates to the PayoutRecordUpdate builder.
func (_u *PayoutRecordUpdateOne) Where(ps ...predicate.PayoutRecord) *PayoutRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PayoutRecordUpdateOne) Select(field string, fields ...string) *PayoutRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PayoutRecord entity.
func (_u *PayoutRecordUpdateOne) Save(ctx context.Context) (*PayoutRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PayoutRecordUpdateOne) SaveX(ctx context.Context) *PayoutRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PayoutRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PayoutRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PayoutRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := payoutrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PayoutRecordUpdateOne) check() error {
	if v, ok := _u.mutation.ProducerID(); ok {
		if err := payoutrecord.ProducerIDValidator(v); err != nil {
			return &ValidationError{Name: "producer_id", err: fmt.Errorf(`ent: validator failed for field "PayoutRecord.producer_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Month(); ok {
		if err := payoutrecord.MonthValidator(v); err != nil {
			return &ValidationError{Name: "month", err: fmt.Errorf(`ent: validator failed for field "PayoutRecord.month": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Amount(); ok {
		if err := payoutrecord.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "PayoutRecord.amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := payoutrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PayoutRecord.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RetryCount(); ok {
		if err := payoutrecord.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "PayoutRecord.retry_count": %w`, err)}
		}
	}
	if _u.mutation.ProducerCleared() && len(_u.mutation.ProducerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PayoutRecord.producer"`)
	}
	return nil
}

func (_u *PayoutRecordUpdateOne) sqlSave(ctx context.Context) (_node *PayoutRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(payoutrecord.Table, payoutrecord.Columns, sqlgraph.NewFieldSpec(payoutrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PayoutRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, payoutrecord.FieldID)
		for _, f := range fields {
			if !payoutrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != payoutrecord.FieldID {
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
		_spec.SetField(payoutrecord.FieldMonth, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(payoutrecord.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(payoutrecord.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(payoutrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.WalletAddress(); ok {
		_spec.SetField(payoutrecord.FieldWalletAddress, field.TypeString, value)
	}
	if _u.mutation.WalletAddressCleared() {
		_spec.ClearField(payoutrecord.FieldWalletAddress, field.TypeString)
	}
	if value, ok := _u.mutation.PaymentTransactionID(); ok {
		_spec.SetField(payoutrecord.FieldPaymentTransactionID, field.TypeString, value)
	}
	if _u.mutation.PaymentTransactionIDCleared() {
		_spec.ClearField(payoutrecord.FieldPaymentTransactionID, field.TypeString)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(payoutrecord.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(payoutrecord.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(payoutrecord.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(payoutrecord.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.PaidAt(); ok {
		_spec.SetField(payoutrecord.FieldPaidAt, field.TypeTime, value)
	}
	if _u.mutation.PaidAtCleared() {
		_spec.ClearField(payoutrecord.FieldPaidAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(payoutrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProducerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProducerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PayoutRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{payoutrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
