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

// TrackUpdate is the builder for updating Track entities.
type TrackUpdate struct {
	config
	hooks    []Hook
	mutation *TrackMutation
}

// Where appends a list predicates to the TrackUpdate builder.
func (_u *TrackUpdate) Where(ps ...predicate.Track) *TrackUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProducerID sets the "producer_id" field.
func (_u *TrackUpdate) SetProducerID(v int) *TrackUpdate {
	_u.mutation.SetProducerID(v)
	return _u
}

// SetNillableProducerID sets the "producer_id" field if the given value is not nil.
func (_u *TrackUpdate) SetNillableProducerID(v *int) *TrackUpdate {
	if v != nil {
		_u.SetProducerID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *TrackUpdate) SetTitle(v string) *TrackUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TrackUpdate) SetNillableTitle(v *string) *TrackUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetGenre sets the "genre" field.
func (_u *TrackUpdate) SetGenre(v string) *TrackUpdate {
	_u.mutation.SetGenre(v)
	return _u
}

// SetNillableGenre sets the "genre" field if the given value is not nil.
func (_u *TrackUpdate) SetNillableGenre(v *string) *TrackUpdate {
	if v != nil {
		_u.SetGenre(*v)
	}
	return _u
}

// ClearGenre clears the value of the "genre" field.
func (_u *TrackUpdate) ClearGenre() *TrackUpdate {
	_u.mutation.ClearGenre()
	return _u
}

// SetBpm sets the "bpm" field.
func (_u *TrackUpdate) SetBpm(v int) *TrackUpdate {
	_u.mutation.ResetBpm()
	_u.mutation.SetBpm(v)
	return _u
}

// SetNillableBpm sets the "bpm" field if the given value is not nil.
func (_u *TrackUpdate) SetNillableBpm(v *int) *TrackUpdate {
	if v != nil {
		_u.SetBpm(*v)
	}
	return _u
}

// AddBpm adds value to the "bpm" field.
func (_u *TrackUpdate) AddBpm(v int) *TrackUpdate {
	_u.mutation.AddBpm(v)
	return _u
}

// ClearBpm clears the value of the "bpm" field.
func (_u *TrackUpdate) ClearBpm() *TrackUpdate {
	_u.mutation.ClearBpm()
	return _u
}

// SetStandardPrice sets the "standard_price" field.
func (_u *TrackUpdate) SetStandardPrice(v float64) *TrackUpdate {
	_u.mutation.ResetStandardPrice()
	_u.mutation.SetStandardPrice(v)
	return _u
}

// SetNillableStandardPrice sets the "standard_price" field if the given value is not nil.
func (_u *TrackUpdate) SetNillableStandardPrice(v *float64) *TrackUpdate {
	if v != nil {
		_u.SetStandardPrice(*v)
	}
	return _u
}

// AddStandardPrice adds value to the "standard_price" field.
func (_u *TrackUpdate) AddStandardPrice(v float64) *TrackUpdate {
	_u.mutation.AddStandardPrice(v)
	return _u
}

// SetExclusivePrice sets the "exclusive_price" field.
func (_u *TrackUpdate) SetExclusivePrice(v float64) *TrackUpdate {
	_u.mutation.ResetExclusivePrice()
	_u.mutation.SetExclusivePrice(v)
	return _u
}

// SetNillableExclusivePrice sets the "exclusive_price" field if the given value is not nil.
func (_u *TrackUpdate) SetNillableExclusivePrice(v *float64) *TrackUpdate {
	if v != nil {
		_u.SetExclusivePrice(*v)
	}
	return _u
}

// AddExclusivePrice adds value to the "exclusive_price" field.
func (_u *TrackUpdate) AddExclusivePrice(v float64) *TrackUpdate {
	_u.mutation.AddExclusivePrice(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *TrackUpdate) SetStatus(v track.Status) *TrackUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TrackUpdate) SetNillableStatus(v *track.Status) *TrackUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TrackUpdate) SetUpdatedAt(v time.Time) *TrackUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProducer sets the "producer" edge to the User entity.
func (_u *TrackUpdate) SetProducer(v *User) *TrackUpdate {
	return _u.SetProducerID(v.ID)
}

// AddSaleIDs adds the "sales" edge to the Sale entity by IDs.
func (_u *TrackUpdate) AddSaleIDs(ids ...int) *TrackUpdate {
	_u.mutation.AddSaleIDs(ids...)
	return _u
}

// AddSales adds the "sales" edges to the Sale entity.
func (_u *TrackUpdate) AddSales(v ...*Sale) *TrackUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSaleIDs(ids...)
}

// Mutation returns the TrackMutation object of the builder.
func (_u *TrackUpdate) Mutation() *TrackMutation {
	return _u.mutation
}

// ClearProducer clears the "producer" edge to the User entity.
func (_u *TrackUpdate) ClearProducer() *TrackUpdate {
	_u.mutation.ClearProducer()
	return _u
}

// ClearSales clears all "sales" edges to the Sale entity.
func (_u *TrackUpdate) ClearSales() *TrackUpdate {
	_u.mutation.ClearSales()
	return _u
}

// RemoveSaleIDs removes the "sales" edge to Sale entities by IDs.
func (_u *TrackUpdate) RemoveSaleIDs(ids ...int) *TrackUpdate {
	_u.mutation.RemoveSaleIDs(ids...)
	return _u
}

// RemoveSales removes "sales" edges to Sale entities.
func (_u *TrackUpdate) RemoveSales(v ...*Sale) *TrackUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSaleIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TrackUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrackUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TrackUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrackUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TrackUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := track.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TrackUpdate) check() error {
	if v, ok := _u.mutation.ProducerID(); ok {
		if err := track.ProducerIDValidator(v); err != nil {
			return &ValidationError{Name: "producer_id", err: fmt.Errorf(`ent: validator failed for field "Track.producer_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := track.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Track.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := track.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Track.status": %w`, err)}
		}
	}
	if _u.mutation.ProducerCleared() && len(_u.mutation.ProducerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Track.producer"`)
	}
	return nil
}

func (_u *TrackUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(track.Table, track.Columns, sqlgraph.NewFieldSpec(track.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(track.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Genre(); ok {
		_spec.SetField(track.FieldGenre, field.TypeString, value)
	}
	if _u.mutation.GenreCleared() {
		_spec.ClearField(track.FieldGenre, field.TypeString)
	}
	if value, ok := _u.mutation.Bpm(); ok {
		_spec.SetField(track.FieldBpm, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBpm(); ok {
		_spec.AddField(track.FieldBpm, field.TypeInt, value)
	}
	if _u.mutation.BpmCleared() {
		_spec.ClearField(track.FieldBpm, field.TypeInt)
	}
	if value, ok := _u.mutation.StandardPrice(); ok {
		_spec.SetField(track.FieldStandardPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStandardPrice(); ok {
		_spec.AddField(track.FieldStandardPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ExclusivePrice(); ok {
		_spec.SetField(track.FieldExclusivePrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExclusivePrice(); ok {
		_spec.AddField(track.FieldExclusivePrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(track.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(track.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProducerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   track.ProducerTable,
			Columns: []string{track.ProducerColumn},
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
			Table:   track.ProducerTable,
			Columns: []string{track.ProducerColumn},
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
	if _u.mutation.SalesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   track.SalesTable,
			Columns: []string{track.SalesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sale.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSalesIDs(); len(nodes) > 0 && !_u.mutation.SalesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   track.SalesTable,
			Columns: []string{track.SalesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sale.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SalesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   track.SalesTable,
			Columns: []string{track.SalesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sale.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{track.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TrackUpdateOne is the builder for updating a single Track entity.
type TrackUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TrackMutation
}

// SetProducerID sets the "producer_id" field.
func (_u *TrackUpdateOne) SetProducerID(v int) *TrackUpdateOne {
	_u.mutation.SetProducerID(v)
	return _u
}

// SetNillableProducerID sets the "producer_id" field if the given value is not nil.
func (_u *TrackUpdateOne) SetNillableProducerID(v *int) *TrackUpdateOne {
	if v != nil {
		_u.SetProducerID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *TrackUpdateOne) SetTitle(v string) *TrackUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TrackUpdateOne) SetNillableTitle(v *string) *TrackUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetGenre sets the "genre" field.
func (_u *TrackUpdateOne) SetGenre(v string) *TrackUpdateOne {
	_u.mutation.SetGenre(v)
	return _u
}

// SetNillableGenre sets the "genre" field if the given value is not nil.
func (_u *TrackUpdateOne) SetNillableGenre(v *string) *TrackUpdateOne {
	if v != nil {
		_u.SetGenre(*v)
	}
	return _u
}

// ClearGenre clears the value of the "genre" field.
func (_u *TrackUpdateOne) ClearGenre() *TrackUpdateOne {
	_u.mutation.ClearGenre()
	return _u
}

// SetBpm sets the "bpm" field.
func (_u *TrackUpdateOne) SetBpm(v int) *TrackUpdateOne {
	_u.mutation.ResetBpm()
	_u.mutation.SetBpm(v)
	return _u
}

// SetNillableBpm sets the "bpm" field if the given value is not nil.
func (_u *TrackUpdateOne) SetNillableBpm(v *int) *TrackUpdateOne {
	if v != nil {
		_u.SetBpm(*v)
	}
	return _u
}

// AddBpm adds value to the "bpm" field.
func (_u *TrackUpdateOne) AddBpm(v int) *TrackUpdateOne {
	_u.mutation.AddBpm(v)
	return _u
}

// ClearBpm clears the value of the "bpm" field.
func (_u *TrackUpdateOne) ClearBpm() *TrackUpdateOne {
	_u.mutation.ClearBpm()
	return _u
}

// SetStandardPrice sets the "standard_price" field.
func (_u *TrackUpdateOne) SetStandardPrice(v float64) *TrackUpdateOne {
	_u.mutation.ResetStandardPrice()
	_u.mutation.SetStandardPrice(v)
	return _u
}

// SetNillableStandardPrice sets the "standard_price" field if the given value is not nil.
func (_u *TrackUpdateOne) SetNillableStandardPrice(v *float64) *TrackUpdateOne {
	if v != nil {
		_u.SetStandardPrice(*v)
	}
	return _u
}

// AddStandardPrice adds value to the "standard_price" field.
func (_u *TrackUpdateOne) AddStandardPrice(v float64) *TrackUpdateOne {
	_u.mutation.AddStandardPrice(v)
	return _u
}

// SetExclusivePrice sets the "exclusive_price" field.
func (_u *TrackUpdateOne) SetExclusivePrice(v float64) *TrackUpdateOne {
	_u.mutation.ResetExclusivePrice()
	_u.mutation.SetExclusivePrice(v)
	return _u
}

// SetNillableExclusivePrice sets the "exclusive_price" field if the given value is not nil.
func (_u *TrackUpdateOne) SetNillableExclusivePrice(v *float64) *TrackUpdateOne {
	if v != nil {
		_u.SetExclusivePrice(*v)
	}
	return _u
}

// AddExclusivePrice adds value to the "exclusive_price" field.
func (_u *TrackUpdateOne) AddExclusivePrice(v float64) *TrackUpdateOne {
	_u.mutation.AddExclusivePrice(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *TrackUpdateOne) SetStatus(v track.Status) *TrackUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TrackUpdateOne) SetNillableStatus(v *track.Status) *TrackUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TrackUpdateOne) SetUpdatedAt(v time.Time) *TrackUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProducer sets the "producer" edge to the User entity.
func (_u *TrackUpdateOne) SetProducer(v *User) *TrackUpdateOne {
	return _u.SetProducerID(v.ID)
}

// AddSaleIDs adds the "sales" edge to the Sale entity by IDs.
func (_u *TrackUpdateOne) AddSaleIDs(ids ...int) *TrackUpdateOne {
	_u.mutation.AddSaleIDs(ids...)
	return _u
}

// AddSales adds the "sales" edges to the Sale entity.
func (_u *TrackUpdateOne) AddSales(v ...*Sale) *TrackUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSaleIDs(ids...)
}

// Mutation returns the TrackMutation object of the builder.
func (_u *TrackUpdateOne) Mutation() *TrackMutation {
	return _u.mutation
}

// ClearProducer clears the "producer" edge to the User entity.
func (_u *TrackUpdateOne) ClearProducer() *TrackUpdateOne {
	_u.mutation.ClearProducer()
	return _u
}

// ClearSales clears all "sales" edges to the Sale entity.
func (_u *TrackUpdateOne) ClearSales() *TrackUpdateOne {
	_u.mutation.ClearSales()
	return _u
}

// RemoveSaleIDs removes the "sales" edge to Sale entities by IDs.
func (_u *TrackUpdateOne) RemoveSaleIDs(ids ...int) *TrackUpdateOne {
	_u.mutation.RemoveSaleIDs(ids...)
	return _u
}

// RemoveSales removes "sales" edges to Sale entities.
func (_u *TrackUpdateOne) RemoveSales(v ...*Sale) *TrackUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSaleIDs(ids...)
}

// Where appends a list predicates to the TrackUpdate builder.
func (_u *TrackUpdateOne) Where(ps ...predicate.Track) *TrackUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TrackUpdateOne) Select(field string, fields ...string) *TrackUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Track entity.
func (_u *TrackUpdateOne) Save(ctx context.Context) (*Track, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrackUpdateOne) SaveX(ctx context.Context) *Track {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TrackUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrackUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TrackUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := track.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TrackUpdateOne) check() error {
	if v, ok := _u.mutation.ProducerID(); ok {
		if err := track.ProducerIDValidator(v); err != nil {
			return &ValidationError{Name: "producer_id", err: fmt.Errorf(`ent: validator failed for field "Track.producer_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := track.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Track.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := track.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Track.status": %w`, err)}
		}
	}
	if _u.mutation.ProducerCleared() && len(_u.mutation.ProducerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Track.producer"`)
	}
	return nil
}

func (_u *TrackUpdateOne) sqlSave(ctx context.Context) (_node *Track, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(track.Table, track.Columns, sqlgraph.NewFieldSpec(track.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Track.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, track.FieldID)
		for _, f := range fields {
			if !track.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != track.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(track.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Genre(); ok {
		_spec.SetField(track.FieldGenre, field.TypeString, value)
	}
	if _u.mutation.GenreCleared() {
		_spec.ClearField(track.FieldGenre, field.TypeString)
	}
	if value, ok := _u.mutation.Bpm(); ok {
		_spec.SetField(track.FieldBpm, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBpm(); ok {
		_spec.AddField(track.FieldBpm, field.TypeInt, value)
	}
	if _u.mutation.BpmCleared() {
		_spec.ClearField(track.FieldBpm, field.TypeInt)
	}
	if value, ok := _u.mutation.StandardPrice(); ok {
		_spec.SetField(track.FieldStandardPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStandardPrice(); ok {
		_spec.AddField(track.FieldStandardPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ExclusivePrice(); ok {
		_spec.SetField(track.FieldExclusivePrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExclusivePrice(); ok {
		_spec.AddField(track.FieldExclusivePrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(track.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(track.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProducerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   track.ProducerTable,
			Columns: []string{track.ProducerColumn},
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
			Table:   track.ProducerTable,
			Columns: []string{track.ProducerColumn},
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
	if _u.mutation.SalesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   track.SalesTable,
			Columns: []string{track.SalesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sale.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSalesIDs(); len(nodes) > 0 && !_u.mutation.SalesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   track.SalesTable,
			Columns: []string{track.SalesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sale.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SalesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   track.SalesTable,
			Columns: []string{track.SalesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sale.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Track{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{track.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
