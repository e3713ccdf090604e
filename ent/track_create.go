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

// TrackCreate is the builder for creating a Track entity.
type TrackCreate struct {
	config
	mutation *TrackMutation
	hooks    []Hook
}

// SetProducerID sets the "producer_id" field.
func (_c *TrackCreate) SetProducerID(v int) *TrackCreate {
	_c.mutation.SetProducerID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *TrackCreate) SetTitle(v string) *TrackCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetGenre sets the "genre" field.
func (_c *TrackCreate) SetGenre(v string) *TrackCreate {
	_c.mutation.SetGenre(v)
	return _c
}

// SetNillableGenre sets the "genre" field if the given value is not nil.
func (_c *TrackCreate) SetNillableGenre(v *string) *TrackCreate {
	if v != nil {
		_c.SetGenre(*v)
	}
	return _c
}

// SetBpm sets the "bpm" field.
func (_c *TrackCreate) SetBpm(v int) *TrackCreate {
	_c.mutation.SetBpm(v)
	return _c
}

// SetNillableBpm sets the "bpm" field if the given value is not nil.
func (_c *TrackCreate) SetNillableBpm(v *int) *TrackCreate {
	if v != nil {
		_c.SetBpm(*v)
	}
	return _c
}

// SetStandardPrice sets the "standard_price" field.
func (_c *TrackCreate) SetStandardPrice(v float64) *TrackCreate {
	_c.mutation.SetStandardPrice(v)
	return _c
}

// SetNillableStandardPrice sets the "standard_price" field if the given value is not nil.
func (_c *TrackCreate) SetNillableStandardPrice(v *float64) *TrackCreate {
	if v != nil {
		_c.SetStandardPrice(*v)
	}
	return _c
}

// SetExclusivePrice sets the "exclusive_price" field.
func (_c *TrackCreate) SetExclusivePrice(v float64) *TrackCreate {
	_c.mutation.SetExclusivePrice(v)
	return _c
}

// SetNillableExclusivePrice sets the "exclusive_price" field if the given value is not nil.
func (_c *TrackCreate) SetNillableExclusivePrice(v *float64) *TrackCreate {
	if v != nil {
		_c.SetExclusivePrice(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *TrackCreate) SetStatus(v track.Status) *TrackCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TrackCreate) SetNillableStatus(v *track.Status) *TrackCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TrackCreate) SetCreatedAt(v time.Time) *TrackCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TrackCreate) SetNillableCreatedAt(v *time.Time) *TrackCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TrackCreate) SetUpdatedAt(v time.Time) *TrackCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TrackCreate) SetNillableUpdatedAt(v *time.Time) *TrackCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetProducer sets the "producer" edge to the User entity.
func (_c *TrackCreate) SetProducer(v *User) *TrackCreate {
	return _c.SetProducerID(v.ID)
}

// AddSaleIDs adds the "sales" edge to the Sale entity by IDs.
func (_c *TrackCreate) AddSaleIDs(ids ...int) *TrackCreate {
	_c.mutation.AddSaleIDs(ids...)
	return _c
}

// AddSales adds the "sales" edges to the Sale entity.
func (_c *TrackCreate) AddSales(v ...*Sale) *TrackCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSaleIDs(ids...)
}

// Mutation returns the TrackMutation object of the builder.
func (_c *TrackCreate) Mutation() *TrackMutation {
	return _c.mutation
}

// Save creates the Track in the database.
func (_c *TrackCreate) Save(ctx context.Context) (*Track, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TrackCreate) SaveX(ctx context.Context) *Track {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrackCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrackCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TrackCreate) defaults() {
	if _, ok := _c.mutation.StandardPrice(); !ok {
		v := track.DefaultStandardPrice
		_c.mutation.SetStandardPrice(v)
	}
	if _, ok := _c.mutation.ExclusivePrice(); !ok {
		v := track.DefaultExclusivePrice
		_c.mutation.SetExclusivePrice(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := track.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := track.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := track.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TrackCreate) check() error {
	if _, ok := _c.mutation.ProducerID(); !ok {
		return &ValidationError{Name: "producer_id", err: errors.New(`ent: missing required field "Track.producer_id"`)}
	}
	if v, ok := _c.mutation.ProducerID(); ok {
		if err := track.ProducerIDValidator(v); err != nil {
			return &ValidationError{Name: "producer_id", err: fmt.Errorf(`ent: validator failed for field "Track.producer_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Track.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := track.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Track.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StandardPrice(); !ok {
		return &ValidationError{Name: "standard_price", err: errors.New(`ent: missing required field "Track.standard_price"`)}
	}
	if _, ok := _c.mutation.ExclusivePrice(); !ok {
		return &ValidationError{Name: "exclusive_price", err: errors.New(`ent: missing required field "Track.exclusive_price"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Track.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := track.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Track.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Track.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Track.updated_at"`)}
	}
	if len(_c.mutation.ProducerIDs()) == 0 {
		return &ValidationError{Name: "producer", err: errors.New(`ent: missing required edge "Track.producer"`)}
	}
	return nil
}

func (_c *TrackCreate) sqlSave(ctx context.Context) (*Track, error) {
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

func (_c *TrackCreate) createSpec() (*Track, *sqlgraph.CreateSpec) {
	var (
		_node = &Track{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(track.Table, sqlgraph.NewFieldSpec(track.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(track.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Genre(); ok {
		_spec.SetField(track.FieldGenre, field.TypeString, value)
		_node.Genre = value
	}
	if value, ok := _c.mutation.Bpm(); ok {
		_spec.SetField(track.FieldBpm, field.TypeInt, value)
		_node.Bpm = value
	}
	if value, ok := _c.mutation.StandardPrice(); ok {
		_spec.SetField(track.FieldStandardPrice, field.TypeFloat64, value)
		_node.StandardPrice = value
	}
	if value, ok := _c.mutation.ExclusivePrice(); ok {
		_spec.SetField(track.FieldExclusivePrice, field.TypeFloat64, value)
		_node.ExclusivePrice = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(track.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(track.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(track.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProducerIDs(); len(nodes) > 0 {
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
		_node.ProducerID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SalesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TrackCreateBulk is the builder for creating many Track entities in bulk.
type TrackCreateBulk struct {
	config
	err      error
	builders []*TrackCreate
}

// Save creates the Track entities in the database.
func (_c *TrackCreateBulk) Save(ctx context.Context) ([]*Track, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Track, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TrackMutation)
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
func (_c *TrackCreateBulk) SaveX(ctx context.Context) []*Track {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrackCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrackCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
