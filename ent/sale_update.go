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
	"github.com/tracklane/tracklane/ent/sale"
	"github.com/tracklane/tracklane/ent/track"
	"github.com/tracklane/tracklane/ent/user"
)

// SaleUpdate is the builder for updating Sale entities.
type SaleUpdate struct {
	config
	hooks    []Hook
	mutation *SaleMutation
}

// Where appends a list predicates to the SaleUpdate builder.
func (_u *SaleUpdate) Where(ps ...predicate.Sale) *SaleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTrackID sets the "track_id" field.
func (_u *SaleUpdate) SetTrackID(v int) *SaleUpdate {
	_u.mutation.SetTrackID(v)
	return _u
}

// SetNillableTrackID sets the "track_id" field if the given value is not nil.
func (_u *SaleUpdate) SetNillableTrackID(v *int) *SaleUpdate {
	if v != nil {
		_u.SetTrackID(*v)
	}
	return _u
}

// SetProducerID sets the "producer_id" field.
func (_u *SaleUpdate) SetProducerID(v int) *SaleUpdate {
	_u.mutation.ResetProducerID()
	_u.mutation.SetProducerID(v)
	return _u
}

// SetNillableProducerID sets the "producer_id" field if the given value is not nil.
func (_u *SaleUpdate) SetNillableProducerID(v *int) *SaleUpdate {
	if v != nil {
		_u.SetProducerID(*v)
	}
	return _u
}

// AddProducerID adds value to the "producer_id" field.
func (_u *SaleUpdate) AddProducerID(v int) *SaleUpdate {
	_u.mutation.AddProducerID(v)
	return _u
}

// SetBuyerID sets the "buyer_id" field.
func (_u *SaleUpdate) SetBuyerID(v int) *SaleUpdate {
	_u.mutation.SetBuyerID(v)
	return _u
}

// SetNillableBuyerID sets the "buyer_id" field if the given value is not nil.
func (_u *SaleUpdate) SetNillableBuyerID(v *int) *SaleUpdate {
	if v != nil {
		_u.SetBuyerID(*v)
	}
	return _u
}

// SetLicenseType sets the "license_type" field.
func (_u *SaleUpdate) SetLicenseType(v sale.LicenseType) *SaleUpdate {
	_u.mutation.SetLicenseType(v)
	return _u
}

// SetNillableLicenseType sets the "license_type" field if the given value is not nil.
func (_u *SaleUpdate) SetNillableLicenseType(v *sale.LicenseType) *SaleUpdate {
	if v != nil {
		_u.SetLicenseType(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *SaleUpdate) SetAmount(v float64) *SaleUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *SaleUpdate) SetNillableAmount(v *float64) *SaleUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *SaleUpdate) AddAmount(v float64) *SaleUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SaleUpdate) SetStatus(v sale.Status) *SaleUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SaleUpdate) SetNillableStatus(v *sale.Status) *SaleUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStripeSessionID sets the "stripe_session_id" field.
func (_u *SaleUpdate) SetStripeSessionID(v string) *SaleUpdate {
	_u.mutation.SetStripeSessionID(v)
	return _u
}

// SetNillableStripeSessionID sets the "stripe_session_id" field if the given value is not nil.
func (_u *SaleUpdate) SetNillableStripeSessionID(v *string) *SaleUpdate {
	if v != nil {
		_u.SetStripeSessionID(*v)
	}
	return _u
}

// ClearStripeSessionID clears the value of the "stripe_session_id" field.
func (_u *SaleUpdate) ClearStripeSessionID() *SaleUpdate {
	_u.mutation.ClearStripeSessionID()
	return _u
}

// SetStripePaymentIntentID sets the "stripe_payment_intent_id" field.
func (_u *SaleUpdate) SetStripePaymentIntentID(v string) *SaleUpdate {
	_u.mutation.SetStripePaymentIntentID(v)
	return _u
}

// SetNillableStripePaymentIntentID sets the "stripe_payment_intent_id" field if the given value is not nil.
func (_u *SaleUpdate) SetNillableStripePaymentIntentID(v *string) *SaleUpdate {
	if v != nil {
		_u.SetStripePaymentIntentID(*v)
	}
	return _u
}

// ClearStripePaymentIntentID clears the value of the "stripe_payment_intent_id" field.
func (_u *SaleUpdate) ClearStripePaymentIntentID() *SaleUpdate {
	_u.mutation.ClearStripePaymentIntentID()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SaleUpdate) SetCompletedAt(v time.Time) *SaleUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SaleUpdate) SetNillableCompletedAt(v *time.Time) *SaleUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SaleUpdate) ClearCompletedAt() *SaleUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SaleUpdate) SetUpdatedAt(v time.Time) *SaleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTrack sets the "track" edge to the Track entity.
func (_u *SaleUpdate) SetTrack(v *Track) *SaleUpdate {
	return _u.SetTrackID(v.ID)
}

// SetBuyer sets the "buyer" edge to the User entity.
func (_u *SaleUpdate) SetBuyer(v *User) *SaleUpdate {
	return _u.SetBuyerID(v.ID)
}

// Mutation returns the SaleMutation object of the builder.
func (_u *SaleUpdate) Mutation() *SaleMutation {
	return _u.mutation
}

// ClearTrack clears the "track" edge to the Track entity.
func (_u *SaleUpdate) ClearTrack() *SaleUpdate {
	_u.mutation.ClearTrack()
	return _u
}

// ClearBuyer clears the "buyer" edge to the User entity.
func (_u *SaleUpdate) ClearBuyer() *SaleUpdate {
	_u.mutation.ClearBuyer()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SaleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SaleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SaleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SaleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SaleUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sale.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SaleUpdate) check() error {
	if v, ok := _u.mutation.TrackID(); ok {
		if err := sale.TrackIDValidator(v); err != nil {
			return &ValidationError{Name: "track_id", err: fmt.Errorf(`ent: validator failed for field "Sale.track_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProducerID(); ok {
		if err := sale.ProducerIDValidator(v); err != nil {
			return &ValidationError{Name: "producer_id", err: fmt.Errorf(`ent: validator failed for field "Sale.producer_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BuyerID(); ok {
		if err := sale.BuyerIDValidator(v); err != nil {
			return &ValidationError{Name: "buyer_id", err: fmt.Errorf(`ent: validator failed for field "Sale.buyer_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LicenseType(); ok {
		if err := sale.LicenseTypeValidator(v); err != nil {
			return &ValidationError{Name: "license_type", err: fmt.Errorf(`ent: validator failed for field "Sale.license_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Amount(); ok {
		if err := sale.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "Sale.amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := sale.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Sale.status": %w`, err)}
		}
	}
	if _u.mutation.TrackCleared() && len(_u.mutation.TrackIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Sale.track"`)
	}
	if _u.mutation.BuyerCleared() && len(_u.mutation.BuyerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Sale.buyer"`)
	}
	return nil
}

func (_u *SaleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sale.Table, sale.Columns, sqlgraph.NewFieldSpec(sale.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProducerID(); ok {
		_spec.SetField(sale.FieldProducerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProducerID(); ok {
		_spec.AddField(sale.FieldProducerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LicenseType(); ok {
		_spec.SetField(sale.FieldLicenseType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(sale.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(sale.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sale.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StripeSessionID(); ok {
		_spec.SetField(sale.FieldStripeSessionID, field.TypeString, value)
	}
	if _u.mutation.StripeSessionIDCleared() {
		_spec.ClearField(sale.FieldStripeSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.StripePaymentIntentID(); ok {
		_spec.SetField(sale.FieldStripePaymentIntentID, field.TypeString, value)
	}
	if _u.mutation.StripePaymentIntentIDCleared() {
		_spec.ClearField(sale.FieldStripePaymentIntentID, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(sale.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(sale.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sale.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TrackCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TrackIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BuyerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BuyerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sale.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SaleUpdateOne is the builder for updating a single Sale entity.
type SaleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SaleMutation
}

// SetTrackID sets the "track_id" field.
func (_u *SaleUpdateOne) SetTrackID(v int) *SaleUpdateOne {
	_u.mutation.SetTrackID(v)
	return _u
}

// SetNillableTrackID sets the "track_id" field if the given value is not nil.
func (_u *SaleUpdateOne) SetNillableTrackID(v *int) *SaleUpdateOne {
	if v != nil {
		_u.SetTrackID(*v)
	}
	return _u
}

// SetProducerID sets the "producer_id" field.
func (_u *SaleUpdateOne) SetProducerID(v int) *SaleUpdateOne {
	_u.mutation.ResetProducerID()
	_u.mutation.SetProducerID(v)
	return _u
}

// SetNillableProducerID sets the "producer_id" field if the given value is not nil.
func (_u *SaleUpdateOne) SetNillableProducerID(v *int) *SaleUpdateOne {
	if v != nil {
		_u.SetProducerID(*v)
	}
	return _u
}

// AddProducerID adds value to the "producer_id" field.
func (_u *SaleUpdateOne) AddProducerID(v int) *SaleUpdateOne {
	_u.mutation.AddProducerID(v)
	return _u
}

// SetBuyerID sets the "buyer_id" field.
func (_u *SaleUpdateOne) SetBuyerID(v int) *SaleUpdateOne {
	_u.mutation.SetBuyerID(v)
	return _u
}

// SetNillableBuyerID sets the "buyer_id" field if the given value is not nil.
func (_u *SaleUpdateOne) SetNillableBuyerID(v *int) *SaleUpdateOne {
	if v != nil {
		_u.SetBuyerID(*v)
	}
	return _u
}

// SetLicenseType sets the "license_type" field.
func (_u *SaleUpdateOne) SetLicenseType(v sale.LicenseType) *SaleUpdateOne {
	_u.mutation.SetLicenseType(v)
	return _u
}

// SetNillableLicenseType sets the "license_type" field if the given value is not nil.
func (_u *SaleUpdateOne) SetNillableLicenseType(v *sale.LicenseType) *SaleUpdateOne {
	if v != nil {
		_u.SetLicenseType(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *SaleUpdateOne) SetAmount(v float64) *SaleUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *SaleUpdateOne) SetNillableAmount(v *float64) *SaleUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *SaleUpdateOne) AddAmount(v float64) *SaleUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SaleUpdateOne) SetStatus(v sale.Status) *SaleUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SaleUpdateOne) SetNillableStatus(v *sale.Status) *SaleUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStripeSessionID sets the "stripe_session_id" field.
func (_u *SaleUpdateOne) SetStripeSessionID(v string) *SaleUpdateOne {
	_u.mutation.SetStripeSessionID(v)
	return _u
}

// SetNillableStripeSessionID sets the "stripe_session_id" field if the given value is not nil.
func (_u *SaleUpdateOne) SetNillableStripeSessionID(v *string) *SaleUpdateOne {
	if v != nil {
		_u.SetStripeSessionID(*v)
	}
	return _u
}

// ClearStripeSessionID clears the value of the "stripe_session_id" field.
func (_u *SaleUpdateOne) ClearStripeSessionID() *SaleUpdateOne {
	_u.mutation.ClearStripeSessionID()
	return _u
}

// SetStripePaymentIntentID sets the "stripe_payment_intent_id" field.
func (_u *SaleUpdateOne) SetStripePaymentIntentID(v string) *SaleUpdateOne {
	_u.mutation.SetStripePaymentIntentID(v)
	return _u
}

// SetNillableStripePaymentIntentID sets the "stripe_payment_intent_id" field if the given value is not nil.
func (_u *SaleUpdateOne) SetNillableStripePaymentIntentID(v *string) *SaleUpdateOne {
	if v != nil {
		_u.SetStripePaymentIntentID(*v)
	}
	return _u
}

// ClearStripePaymentIntentID clears the value of the "stripe_payment_intent_id" field.
func (_u *SaleUpdateOne) ClearStripePaymentIntentID() *SaleUpdateOne {
	_u.mutation.ClearStripePaymentIntentID()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SaleUpdateOne) SetCompletedAt(v time.Time) *SaleUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SaleUpdateOne) SetNillableCompletedAt(v *time.Time) *SaleUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SaleUpdateOne) ClearCompletedAt() *SaleUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SaleUpdateOne) SetUpdatedAt(v time.Time) *SaleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTrack sets the "track" edge to the Track entity.
func (_u *SaleUpdateOne) SetTrack(v *Track) *SaleUpdateOne {
	return _u.SetTrackID(v.ID)
}

// SetBuyer sets the "buyer" edge to the User entity.
func (_u *SaleUpdateOne) SetBuyer(v *User) *SaleUpdateOne {
	return _u.SetBuyerID(v.ID)
}

// Mutation returns the SaleMutation object of the builder.
func (_u *SaleUpdateOne) Mutation() *SaleMutation {
	return _u.mutation
}

// ClearTrack clears the "track" edge to the Track entity.
func (_u *SaleUpdateOne) ClearTrack() *SaleUpdateOne {
	_u.mutation.ClearTrack()
	return _u
}

// ClearBuyer clears the "buyer" edge to the User entity.
func (_u *SaleUpdateOne) ClearBuyer() *SaleUpdateOne {
	_u.mutation.ClearBuyer()
	return _u
}

// Where appends a list predicates to the SaleUpdate builder.
func (_u *SaleUpdateOne) Where(ps ...predicate.Sale) *SaleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SaleUpdateOne) Select(field string, fields ...string) *SaleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Sale entity.
func (_u *SaleUpdateOne) Save(ctx context.Context) (*Sale, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SaleUpdateOne) SaveX(ctx context.Context) *Sale {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SaleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SaleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SaleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sale.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SaleUpdateOne) check() error {
	if v, ok := _u.mutation.TrackID(); ok {
		if err := sale.TrackIDValidator(v); err != nil {
			return &ValidationError{Name: "track_id", err: fmt.Errorf(`ent: validator failed for field "Sale.track_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProducerID(); ok {
		if err := sale.ProducerIDValidator(v); err != nil {
			return &ValidationError{Name: "producer_id", err: fmt.Errorf(`ent: validator failed for field "Sale.producer_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BuyerID(); ok {
		if err := sale.BuyerIDValidator(v); err != nil {
			return &ValidationError{Name: "buyer_id", err: fmt.Errorf(`ent: validator failed for field "Sale.buyer_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LicenseType(); ok {
		if err := sale.LicenseTypeValidator(v); err != nil {
			return &ValidationError{Name: "license_type", err: fmt.Errorf(`ent: validator failed for field "Sale.license_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Amount(); ok {
		if err := sale.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "Sale.amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := sale.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Sale.status": %w`, err)}
		}
	}
	if _u.mutation.TrackCleared() && len(_u.mutation.TrackIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Sale.track"`)
	}
	if _u.mutation.BuyerCleared() && len(_u.mutation.BuyerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Sale.buyer"`)
	}
	return nil
}

func (_u *SaleUpdateOne) sqlSave(ctx context.Context) (_node *Sale, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sale.Table, sale.Columns, sqlgraph.NewFieldSpec(sale.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Sale.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sale.FieldID)
		for _, f := range fields {
			if !sale.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sale.FieldID {
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
		_spec.SetField(sale.FieldProducerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProducerID(); ok {
		_spec.AddField(sale.FieldProducerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LicenseType(); ok {
		_spec.SetField(sale.FieldLicenseType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(sale.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(sale.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sale.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StripeSessionID(); ok {
		_spec.SetField(sale.FieldStripeSessionID, field.TypeString, value)
	}
	if _u.mutation.StripeSessionIDCleared() {
		_spec.ClearField(sale.FieldStripeSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.StripePaymentIntentID(); ok {
		_spec.SetField(sale.FieldStripePaymentIntentID, field.TypeString, value)
	}
	if _u.mutation.StripePaymentIntentIDCleared() {
		_spec.ClearField(sale.FieldStripePaymentIntentID, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(sale.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(sale.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sale.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TrackCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TrackIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BuyerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BuyerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Sale{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sale.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
