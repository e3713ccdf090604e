// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tracklane/tracklane/ent/compensationsettings"
	"github.com/tracklane/tracklane/ent/payoutrecord"
	"github.com/tracklane/tracklane/ent/payoutrun"
	"github.com/tracklane/tracklane/ent/predicate"
	"github.com/tracklane/tracklane/ent/sale"
	"github.com/tracklane/tracklane/ent/syncproposal"
	"github.com/tracklane/tracklane/ent/track"
	"github.com/tracklane/tracklane/ent/user"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCompensationSettings = "CompensationSettings"
	TypePayoutRecord         = "PayoutRecord"
	TypePayoutRun            = "PayoutRun"
	TypeSale                 = "Sale"
	TypeSyncProposal         = "SyncProposal"
	TypeTrack                = "Track"
	TypeUser                 = "User"
)

// CompensationSettingsMutation represents an operation that mutates the CompensationSettings nodes in the graph.
type CompensationSettingsMutation struct {
	config
	op                        Op
	typ                       string
	id                        *int
	standard_rate             *float64
	addstandard_rate          *float64
	exclusive_rate            *float64
	addexclusive_rate         *float64
	sync_fee_rate             *float64
	addsync_fee_rate          *float64
	volume_bonus_rate         *float64
	addvolume_bonus_rate      *float64
	volume_bonus_threshold    *int
	addvolume_bonus_threshold *int
	updated_at                *time.Time
	clearedFields             map[string]struct{}
	done                      bool
	oldValue                  func(context.Context) (*CompensationSettings, error)
	predicates                []predicate.CompensationSettings
}

var _ ent.Mutation = (*CompensationSettingsMutation)(nil)

// compensationsettingsOption allows management of the mutation configuration using functional options.
type compensationsettingsOption func(*CompensationSettingsMutation)

// newCompensationSettingsMutation creates new mutation for the CompensationSettings entity.
func newCompensationSettingsMutation(c config, op Op, opts ...compensationsettingsOption) *CompensationSettingsMutation {
	m := &CompensationSettingsMutation{
		config:        c,
		op:            op,
		typ:           TypeCompensationSettings,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCompensationSettingsID sets the ID field of the mutation.
func withCompensationSettingsID(id int) compensationsettingsOption {
	return func(m *CompensationSettingsMutation) {
		var (
			err   error
			once  sync.Once
			value *CompensationSettings
		)
		m.oldValue = func(ctx context.Context) (*CompensationSettings, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CompensationSettings.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCompensationSettings sets the old CompensationSettings of the mutation.
func withCompensationSettings(node *CompensationSettings) compensationsettingsOption {
	return func(m *CompensationSettingsMutation) {
		m.oldValue = func(context.Context) (*CompensationSettings, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CompensationSettingsMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CompensationSettingsMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CompensationSettings entities.
func (m *CompensationSettingsMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CompensationSettingsMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CompensationSettingsMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CompensationSettings.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStandardRate sets the "standard_rate" field.
func (m *CompensationSettingsMutation) SetStandardRate(f float64) {
	m.standard_rate = &f
	m.addstandard_rate = nil
}

// StandardRate returns the value of the "standard_rate" field in the mutation.
func (m *CompensationSettingsMutation) StandardRate() (r float64, exists bool) {
	v := m.standard_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldStandardRate returns the old "standard_rate" field's value of the CompensationSettings entity.
// If the CompensationSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompensationSettingsMutation) OldStandardRate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStandardRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStandardRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStandardRate: %w", err)
	}
	return oldValue.StandardRate, nil
}

// AddStandardRate adds f to the "standard_rate" field.
func (m *CompensationSettingsMutation) AddStandardRate(f float64) {
	if m.addstandard_rate != nil {
		*m.addstandard_rate += f
	} else {
		m.addstandard_rate = &f
	}
}

// AddedStandardRate returns the value that was added to the "standard_rate" field in this mutation.
func (m *CompensationSettingsMutation) AddedStandardRate() (r float64, exists bool) {
	v := m.addstandard_rate
	if v == nil {
		return
	}
	return *v, true
}

// ResetStandardRate resets all changes to the "standard_rate" field.
func (m *CompensationSettingsMutation) ResetStandardRate() {
	m.standard_rate = nil
	m.addstandard_rate = nil
}

// SetExclusiveRate sets the "exclusive_rate" field.
func (m *CompensationSettingsMutation) SetExclusiveRate(f float64) {
	m.exclusive_rate = &f
	m.addexclusive_rate = nil
}

// ExclusiveRate returns the value of the "exclusive_rate" field in the mutation.
func (m *CompensationSettingsMutation) ExclusiveRate() (r float64, exists bool) {
	v := m.exclusive_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldExclusiveRate returns the old "exclusive_rate" field's value of the CompensationSettings entity.
// If the CompensationSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompensationSettingsMutation) OldExclusiveRate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExclusiveRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExclusiveRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExclusiveRate: %w", err)
	}
	return oldValue.ExclusiveRate, nil
}

// AddExclusiveRate adds f to the "exclusive_rate" field.
func (m *CompensationSettingsMutation) AddExclusiveRate(f float64) {
	if m.addexclusive_rate != nil {
		*m.addexclusive_rate += f
	} else {
		m.addexclusive_rate = &f
	}
}

// AddedExclusiveRate returns the value that was added to the "exclusive_rate" field in this mutation.
func (m *CompensationSettingsMutation) AddedExclusiveRate() (r float64, exists bool) {
	v := m.addexclusive_rate
	if v == nil {
		return
	}
	return *v, true
}

// ResetExclusiveRate resets all changes to the "exclusive_rate" field.
func (m *CompensationSettingsMutation) ResetExclusiveRate() {
	m.exclusive_rate = nil
	m.addexclusive_rate = nil
}

// SetSyncFeeRate sets the "sync_fee_rate" field.
func (m *CompensationSettingsMutation) SetSyncFeeRate(f float64) {
	m.sync_fee_rate = &f
	m.addsync_fee_rate = nil
}

// SyncFeeRate returns the value of the "sync_fee_rate" field in the mutation.
func (m *CompensationSettingsMutation) SyncFeeRate() (r float64, exists bool) {
	v := m.sync_fee_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldSyncFeeRate returns the old "sync_fee_rate" field's value of the CompensationSettings entity.
// If the CompensationSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompensationSettingsMutation) OldSyncFeeRate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSyncFeeRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSyncFeeRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSyncFeeRate: %w", err)
	}
	return oldValue.SyncFeeRate, nil
}

// AddSyncFeeRate adds f to the "sync_fee_rate" field.
func (m *CompensationSettingsMutation) AddSyncFeeRate(f float64) {
	if m.addsync_fee_rate != nil {
		*m.addsync_fee_rate += f
	} else {
		m.addsync_fee_rate = &f
	}
}

// AddedSyncFeeRate returns the value that was added to the "sync_fee_rate" field in this mutation.
func (m *CompensationSettingsMutation) AddedSyncFeeRate() (r float64, exists bool) {
	v := m.addsync_fee_rate
	if v == nil {
		return
	}
	return *v, true
}

// ResetSyncFeeRate resets all changes to the "sync_fee_rate" field.
func (m *CompensationSettingsMutation) ResetSyncFeeRate() {
	m.sync_fee_rate = nil
	m.addsync_fee_rate = nil
}

// SetVolumeBonusRate sets the "volume_bonus_rate" field.
func (m *CompensationSettingsMutation) SetVolumeBonusRate(f float64) {
	m.volume_bonus_rate = &f
	m.addvolume_bonus_rate = nil
}

// VolumeBonusRate returns the value of the "volume_bonus_rate" field in the mutation.
func (m *CompensationSettingsMutation) VolumeBonusRate() (r float64, exists bool) {
	v := m.volume_bonus_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldVolumeBonusRate returns the old "volume_bonus_rate" field's value of the CompensationSettings entity.
// If the CompensationSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompensationSettingsMutation) OldVolumeBonusRate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVolumeBonusRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVolumeBonusRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVolumeBonusRate: %w", err)
	}
	return oldValue.VolumeBonusRate, nil
}

// AddVolumeBonusRate adds f to the "volume_bonus_rate" field.
func (m *CompensationSettingsMutation) AddVolumeBonusRate(f float64) {
	if m.addvolume_bonus_rate != nil {
		*m.addvolume_bonus_rate += f
	} else {
		m.addvolume_bonus_rate = &f
	}
}

// AddedVolumeBonusRate returns the value that was added to the "volume_bonus_rate" field in this mutation.
func (m *CompensationSettingsMutation) AddedVolumeBonusRate() (r float64, exists bool) {
	v := m.addvolume_bonus_rate
	if v == nil {
		return
	}
	return *v, true
}

// ResetVolumeBonusRate resets all changes to the "volume_bonus_rate" field.
func (m *CompensationSettingsMutation) ResetVolumeBonusRate() {
	m.volume_bonus_rate = nil
	m.addvolume_bonus_rate = nil
}

// SetVolumeBonusThreshold sets the "volume_bonus_threshold" field.
func (m *CompensationSettingsMutation) SetVolumeBonusThreshold(i int) {
	m.volume_bonus_threshold = &i
	m.addvolume_bonus_threshold = nil
}

// VolumeBonusThreshold returns the value of the "volume_bonus_threshold" field in the mutation.
func (m *CompensationSettingsMutation) VolumeBonusThreshold() (r int, exists bool) {
	v := m.volume_bonus_threshold
	if v == nil {
		return
	}
	return *v, true
}

// OldVolumeBonusThreshold returns the old "volume_bonus_threshold" field's value of the CompensationSettings entity.
// If the CompensationSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompensationSettingsMutation) OldVolumeBonusThreshold(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVolumeBonusThreshold is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVolumeBonusThreshold requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVolumeBonusThreshold: %w", err)
	}
	return oldValue.VolumeBonusThreshold, nil
}

// AddVolumeBonusThreshold adds i to the "volume_bonus_threshold" field.
func (m *CompensationSettingsMutation) AddVolumeBonusThreshold(i int) {
	if m.addvolume_bonus_threshold != nil {
		*m.addvolume_bonus_threshold += i
	} else {
		m.addvolume_bonus_threshold = &i
	}
}

// AddedVolumeBonusThreshold returns the value that was added to the "volume_bonus_threshold" field in this mutation.
func (m *CompensationSettingsMutation) AddedVolumeBonusThreshold() (r int, exists bool) {
	v := m.addvolume_bonus_threshold
	if v == nil {
		return
	}
	return *v, true
}

// ResetVolumeBonusThreshold resets all changes to the "volume_bonus_threshold" field.
func (m *CompensationSettingsMutation) ResetVolumeBonusThreshold() {
	m.volume_bonus_threshold = nil
	m.addvolume_bonus_threshold = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CompensationSettingsMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CompensationSettingsMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CompensationSettings entity.
// If the CompensationSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompensationSettingsMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CompensationSettingsMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the CompensationSettingsMutation builder.
func (m *CompensationSettingsMutation) Where(ps ...predicate.CompensationSettings) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CompensationSettingsMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CompensationSettingsMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CompensationSettings, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CompensationSettingsMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CompensationSettingsMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CompensationSettings).
func (m *CompensationSettingsMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CompensationSettingsMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.standard_rate != nil {
		fields = append(fields, compensationsettings.FieldStandardRate)
	}
	if m.exclusive_rate != nil {
		fields = append(fields, compensationsettings.FieldExclusiveRate)
	}
	if m.sync_fee_rate != nil {
		fields = append(fields, compensationsettings.FieldSyncFeeRate)
	}
	if m.volume_bonus_rate != nil {
		fields = append(fields, compensationsettings.FieldVolumeBonusRate)
	}
	if m.volume_bonus_threshold != nil {
		fields = append(fields, compensationsettings.FieldVolumeBonusThreshold)
	}
	if m.updated_at != nil {
		fields = append(fields, compensationsettings.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CompensationSettingsMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case compensationsettings.FieldStandardRate:
		return m.StandardRate()
	case compensationsettings.FieldExclusiveRate:
		return m.ExclusiveRate()
	case compensationsettings.FieldSyncFeeRate:
		return m.SyncFeeRate()
	case compensationsettings.FieldVolumeBonusRate:
		return m.VolumeBonusRate()
	case compensationsettings.FieldVolumeBonusThreshold:
		return m.VolumeBonusThreshold()
	case compensationsettings.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CompensationSettingsMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case compensationsettings.FieldStandardRate:
		return m.OldStandardRate(ctx)
	case compensationsettings.FieldExclusiveRate:
		return m.OldExclusiveRate(ctx)
	case compensationsettings.FieldSyncFeeRate:
		return m.OldSyncFeeRate(ctx)
	case compensationsettings.FieldVolumeBonusRate:
		return m.OldVolumeBonusRate(ctx)
	case compensationsettings.FieldVolumeBonusThreshold:
		return m.OldVolumeBonusThreshold(ctx)
	case compensationsettings.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CompensationSettings field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompensationSettingsMutation) SetField(name string, value ent.Value) error {
	switch name {
	case compensationsettings.FieldStandardRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStandardRate(v)
		return nil
	case compensationsettings.FieldExclusiveRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExclusiveRate(v)
		return nil
	case compensationsettings.FieldSyncFeeRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSyncFeeRate(v)
		return nil
	case compensationsettings.FieldVolumeBonusRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVolumeBonusRate(v)
		return nil
	case compensationsettings.FieldVolumeBonusThreshold:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVolumeBonusThreshold(v)
		return nil
	case compensationsettings.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CompensationSettings field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CompensationSettingsMutation) AddedFields() []string {
	var fields []string
	if m.addstandard_rate != nil {
		fields = append(fields, compensationsettings.FieldStandardRate)
	}
	if m.addexclusive_rate != nil {
		fields = append(fields, compensationsettings.FieldExclusiveRate)
	}
	if m.addsync_fee_rate != nil {
		fields = append(fields, compensationsettings.FieldSyncFeeRate)
	}
	if m.addvolume_bonus_rate != nil {
		fields = append(fields, compensationsettings.FieldVolumeBonusRate)
	}
	if m.addvolume_bonus_threshold != nil {
		fields = append(fields, compensationsettings.FieldVolumeBonusThreshold)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CompensationSettingsMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case compensationsettings.FieldStandardRate:
		return m.AddedStandardRate()
	case compensationsettings.FieldExclusiveRate:
		return m.AddedExclusiveRate()
	case compensationsettings.FieldSyncFeeRate:
		return m.AddedSyncFeeRate()
	case compensationsettings.FieldVolumeBonusRate:
		return m.AddedVolumeBonusRate()
	case compensationsettings.FieldVolumeBonusThreshold:
		return m.AddedVolumeBonusThreshold()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompensationSettingsMutation) AddField(name string, value ent.Value) error {
	switch name {
	case compensationsettings.FieldStandardRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStandardRate(v)
		return nil
	case compensationsettings.FieldExclusiveRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExclusiveRate(v)
		return nil
	case compensationsettings.FieldSyncFeeRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSyncFeeRate(v)
		return nil
	case compensationsettings.FieldVolumeBonusRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVolumeBonusRate(v)
		return nil
	case compensationsettings.FieldVolumeBonusThreshold:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVolumeBonusThreshold(v)
		return nil
	}
	return fmt.Errorf("unknown CompensationSettings numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CompensationSettingsMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CompensationSettingsMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CompensationSettingsMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CompensationSettings nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CompensationSettingsMutation) ResetField(name string) error {
	switch name {
	case compensationsettings.FieldStandardRate:
		m.ResetStandardRate()
		return nil
	case compensationsettings.FieldExclusiveRate:
		m.ResetExclusiveRate()
		return nil
	case compensationsettings.FieldSyncFeeRate:
		m.ResetSyncFeeRate()
		return nil
	case compensationsettings.FieldVolumeBonusRate:
		m.ResetVolumeBonusRate()
		return nil
	case compensationsettings.FieldVolumeBonusThreshold:
		m.ResetVolumeBonusThreshold()
		return nil
	case compensationsettings.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CompensationSettings field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CompensationSettingsMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CompensationSettingsMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CompensationSettingsMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CompensationSettingsMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CompensationSettingsMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CompensationSettingsMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CompensationSettingsMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CompensationSettings unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CompensationSettingsMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CompensationSettings edge %s", name)
}

// PayoutRecordMutation represents an operation that mutates the PayoutRecord nodes in the graph.
type PayoutRecordMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	month                  *string
	amount                 *float64
	addamount              *float64
	status                 *payoutrecord.Status
	wallet_address         *string
	payment_transaction_id *string
	retry_count            *int
	addretry_count         *int
	last_error             *string
	paid_at                *time.Time
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	producer               *int
	clearedproducer        bool
	done                   bool
	oldValue               func(context.Context) (*PayoutRecord, error)
	predicates             []predicate.PayoutRecord
}

var _ ent.Mutation = (*PayoutRecordMutation)(nil)

// payoutrecordOption allows management of the mutation configuration using functional options.
type payoutrecordOption func(*PayoutRecordMutation)

// newPayoutRecordMutation creates new mutation for the PayoutRecord entity.
func newPayoutRecordMutation(c config, op Op, opts ...payoutrecordOption) *PayoutRecordMutation {
	m := &PayoutRecordMutation{
		config:        c,
		op:            op,
		typ:           TypePayoutRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPayoutRecordID sets the ID field of the mutation.
func withPayoutRecordID(id int) payoutrecordOption {
	return func(m *PayoutRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *PayoutRecord
		)
		m.oldValue = func(ctx context.Context) (*PayoutRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PayoutRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPayoutRecord sets the old PayoutRecord of the mutation.
func withPayoutRecord(node *PayoutRecord) payoutrecordOption {
	return func(m *PayoutRecordMutation) {
		m.oldValue = func(context.Context) (*PayoutRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PayoutRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PayoutRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PayoutRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PayoutRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PayoutRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProducerID sets the "producer_id" field.
func (m *PayoutRecordMutation) SetProducerID(i int) {
	m.producer = &i
}

// ProducerID returns the value of the "producer_id" field in the mutation.
func (m *PayoutRecordMutation) ProducerID() (r int, exists bool) {
	v := m.producer
	if v == nil {
		return
	}
	return *v, true
}

// OldProducerID returns the old "producer_id" field's value of the PayoutRecord entity.
// If the PayoutRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PayoutRecordMutation) OldProducerID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProducerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProducerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProducerID: %w", err)
	}
	return oldValue.ProducerID, nil
}

// ResetProducerID resets all changes to the "producer_id" field.
func (m *PayoutRecordMutation) ResetProducerID() {
	m.producer = nil
}

// SetMonth sets the "month" field.
func (m *PayoutRecordMutation) SetMonth(s string) {
	m.month = &s
}

// Month returns the value of the "month" field in the mutation.
func (m *PayoutRecordMutation) Month() (r string, exists bool) {
	v := m.month
	if v == nil {
		return
	}
	return *v, true
}

// OldMonth returns the old "month" field's value of the PayoutRecord entity.
// If the PayoutRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PayoutRecordMutation) OldMonth(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonth: %w", err)
	}
	return oldValue.Month, nil
}

// ResetMonth resets all changes to the "month" field.
func (m *PayoutRecordMutation) ResetMonth() {
	m.month = nil
}

// SetAmount sets the "amount" field.
func (m *PayoutRecordMutation) SetAmount(f float64) {
	m.amount = &f
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *PayoutRecordMutation) Amount() (r float64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the PayoutRecord entity.
// If the PayoutRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PayoutRecordMutation) OldAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds f to the "amount" field.
func (m *PayoutRecordMutation) AddAmount(f float64) {
	if m.addamount != nil {
		*m.addamount += f
	} else {
		m.addamount = &f
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *PayoutRecordMutation) AddedAmount() (r float64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *PayoutRecordMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetStatus sets the "status" field.
func (m *PayoutRecordMutation) SetStatus(pa payoutrecord.Status) {
	m.status = &pa
}

// Status returns the value of the "status" field in the mutation.
func (m *PayoutRecordMutation) Status() (r payoutrecord.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PayoutRecord entity.
// If the PayoutRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PayoutRecordMutation) OldStatus(ctx context.Context) (v payoutrecord.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PayoutRecordMutation) ResetStatus() {
	m.status = nil
}

// SetWalletAddress sets the "wallet_address" field.
func (m *PayoutRecordMutation) SetWalletAddress(s string) {
	m.wallet_address = &s
}

// WalletAddress returns the value of the "wallet_address" field in the mutation.
func (m *PayoutRecordMutation) WalletAddress() (r string, exists bool) {
	v := m.wallet_address
	if v == nil {
		return
	}
	return *v, true
}

// OldWalletAddress returns the old "wallet_address" field's value of the PayoutRecord entity.
// If the PayoutRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PayoutRecordMutation) OldWalletAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWalletAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWalletAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWalletAddress: %w", err)
	}
	return oldValue.WalletAddress, nil
}

// ClearWalletAddress clears the value of the "wallet_address" field.
func (m *PayoutRecordMutation) ClearWalletAddress() {
	m.wallet_address = nil
	m.clearedFields[payoutrecord.FieldWalletAddress] = struct{}{}
}

// WalletAddressCleared returns if the "wallet_address" field was cleared in this mutation.
func (m *PayoutRecordMutation) WalletAddressCleared() bool {
	_, ok := m.clearedFields[payoutrecord.FieldWalletAddress]
	return ok
}

// ResetWalletAddress resets all changes to the "wallet_address" field.
func (m *PayoutRecordMutation) ResetWalletAddress() {
	m.wallet_address = nil
	delete(m.clearedFields, payoutrecord.FieldWalletAddress)
}

// SetPaymentTransactionID sets the "payment_transaction_id" field.
func (m *PayoutRecordMutation) SetPaymentTransactionID(s string) {
	m.payment_transaction_id = &s
}

// PaymentTransactionID returns the value of the "payment_transaction_id" field in the mutation.
func (m *PayoutRecordMutation) PaymentTransactionID() (r string, exists bool) {
	v := m.payment_transaction_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentTransactionID returns the old "payment_transaction_id" field's value of the PayoutRecord entity.
// If the PayoutRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PayoutRecordMutation) OldPaymentTransactionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentTransactionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentTransactionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentTransactionID: %w", err)
	}
	return oldValue.PaymentTransactionID, nil
}

// ClearPaymentTransactionID clears the value of the "payment_transaction_id" field.
func (m *PayoutRecordMutation) ClearPaymentTransactionID() {
	m.payment_transaction_id = nil
	m.clearedFields[payoutrecord.FieldPaymentTransactionID] = struct{}{}
}

// PaymentTransactionIDCleared returns if the "payment_transaction_id" field was cleared in this mutation.
func (m *PayoutRecordMutation) PaymentTransactionIDCleared() bool {
	_, ok := m.clearedFields[payoutrecord.FieldPaymentTransactionID]
	return ok
}

// ResetPaymentTransactionID resets all changes to the "payment_transaction_id" field.
func (m *PayoutRecordMutation) ResetPaymentTransactionID() {
	m.payment_transaction_id = nil
	delete(m.clearedFields, payoutrecord.FieldPaymentTransactionID)
}

// SetRetryCount sets the "retry_count" field.
func (m *PayoutRecordMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *PayoutRecordMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the PayoutRecord entity.
// If the PayoutRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PayoutRecordMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *PayoutRecordMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *PayoutRecordMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *PayoutRecordMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetLastError sets the "last_error" field.
func (m *PayoutRecordMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *PayoutRecordMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the PayoutRecord entity.
// If the PayoutRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PayoutRecordMutation) OldLastError(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *PayoutRecordMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[payoutrecord.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *PayoutRecordMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[payoutrecord.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *PayoutRecordMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, payoutrecord.FieldLastError)
}

// SetPaidAt sets the "paid_at" field.
func (m *PayoutRecordMutation) SetPaidAt(t time.Time) {
	m.paid_at = &t
}

// PaidAt returns the value of the "paid_at" field in the mutation.
func (m *PayoutRecordMutation) PaidAt() (r time.Time, exists bool) {
	v := m.paid_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPaidAt returns the old "paid_at" field's value of the PayoutRecord entity.
// If the PayoutRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PayoutRecordMutation) OldPaidAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaidAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaidAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaidAt: %w", err)
	}
	return oldValue.PaidAt, nil
}

// ClearPaidAt clears the value of the "paid_at" field.
func (m *PayoutRecordMutation) ClearPaidAt() {
	m.paid_at = nil
	m.clearedFields[payoutrecord.FieldPaidAt] = struct{}{}
}

// PaidAtCleared returns if the "paid_at" field was cleared in this mutation.
func (m *PayoutRecordMutation) PaidAtCleared() bool {
	_, ok := m.clearedFields[payoutrecord.FieldPaidAt]
	return ok
}

// ResetPaidAt resets all changes to the "paid_at" field.
func (m *PayoutRecordMutation) ResetPaidAt() {
	m.paid_at = nil
	delete(m.clearedFields, payoutrecord.FieldPaidAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *PayoutRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PayoutRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PayoutRecord entity.
// If the PayoutRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PayoutRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PayoutRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PayoutRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PayoutRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PayoutRecord entity.
// If the PayoutRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PayoutRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PayoutRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProducer clears the "producer" edge to the User entity.
func (m *PayoutRecordMutation) ClearProducer() {
	m.clearedproducer = true
	m.clearedFields[payoutrecord.FieldProducerID] = struct{}{}
}

// ProducerCleared reports if the "producer" edge to the User entity was cleared.
func (m *PayoutRecordMutation) ProducerCleared() bool {
	return m.clearedproducer
}

// ProducerIDs returns the "producer" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProducerID instead. It exists only for internal usage by the builders.
func (m *PayoutRecordMutation) ProducerIDs() (ids []int) {
	if id := m.producer; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProducer resets all changes to the "producer" edge.
func (m *PayoutRecordMutation) ResetProducer() {
	m.producer = nil
	m.clearedproducer = false
}

// Where appends a list predicates to the PayoutRecordMutation builder.
func (m *PayoutRecordMutation) Where(ps ...predicate.PayoutRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PayoutRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PayoutRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PayoutRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PayoutRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PayoutRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PayoutRecord).
func (m *PayoutRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PayoutRecordMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.producer != nil {
		fields = append(fields, payoutrecord.FieldProducerID)
	}
	if m.month != nil {
		fields = append(fields, payoutrecord.FieldMonth)
	}
	if m.amount != nil {
		fields = append(fields, payoutrecord.FieldAmount)
	}
	if m.status != nil {
		fields = append(fields, payoutrecord.FieldStatus)
	}
	if m.wallet_address != nil {
		fields = append(fields, payoutrecord.FieldWalletAddress)
	}
	if m.payment_transaction_id != nil {
		fields = append(fields, payoutrecord.FieldPaymentTransactionID)
	}
	if m.retry_count != nil {
		fields = append(fields, payoutrecord.FieldRetryCount)
	}
	if m.last_error != nil {
		fields = append(fields, payoutrecord.FieldLastError)
	}
	if m.paid_at != nil {
		fields = append(fields, payoutrecord.FieldPaidAt)
	}
	if m.created_at != nil {
		fields = append(fields, payoutrecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, payoutrecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PayoutRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case payoutrecord.FieldProducerID:
		return m.ProducerID()
	case payoutrecord.FieldMonth:
		return m.Month()
	case payoutrecord.FieldAmount:
		return m.Amount()
	case payoutrecord.FieldStatus:
		return m.Status()
	case payoutrecord.FieldWalletAddress:
		return m.WalletAddress()
	case payoutrecord.FieldPaymentTransactionID:
		return m.PaymentTransactionID()
	case payoutrecord.FieldRetryCount:
		return m.RetryCount()
	case payoutrecord.FieldLastError:
		return m.LastError()
	case payoutrecord.FieldPaidAt:
		return m.PaidAt()
	case payoutrecord.FieldCreatedAt:
		return m.CreatedAt()
	case payoutrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PayoutRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case payoutrecord.FieldProducerID:
		return m.OldProducerID(ctx)
	case payoutrecord.FieldMonth:
		return m.OldMonth(ctx)
	case payoutrecord.FieldAmount:
		return m.OldAmount(ctx)
	case payoutrecord.FieldStatus:
		return m.OldStatus(ctx)
	case payoutrecord.FieldWalletAddress:
		return m.OldWalletAddress(ctx)
	case payoutrecord.FieldPaymentTransactionID:
		return m.OldPaymentTransactionID(ctx)
	case payoutrecord.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case payoutrecord.FieldLastError:
		return m.OldLastError(ctx)
	case payoutrecord.FieldPaidAt:
		return m.OldPaidAt(ctx)
	case payoutrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case payoutrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PayoutRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PayoutRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case payoutrecord.FieldProducerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProducerID(v)
		return nil
	case payoutrecord.FieldMonth:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonth(v)
		return nil
	case payoutrecord.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case payoutrecord.FieldStatus:
		v, ok := value.(payoutrecord.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case payoutrecord.FieldWalletAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWalletAddress(v)
		return nil
	case payoutrecord.FieldPaymentTransactionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentTransactionID(v)
		return nil
	case payoutrecord.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case payoutrecord.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case payoutrecord.FieldPaidAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaidAt(v)
		return nil
	case payoutrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case payoutrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PayoutRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PayoutRecordMutation) AddedFields() []string {
	var fields []string
	if m.addamount != nil {
		fields = append(fields, payoutrecord.FieldAmount)
	}
	if m.addretry_count != nil {
		fields = append(fields, payoutrecord.FieldRetryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PayoutRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case payoutrecord.FieldAmount:
		return m.AddedAmount()
	case payoutrecord.FieldRetryCount:
		return m.AddedRetryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PayoutRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case payoutrecord.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	case payoutrecord.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	}
	return fmt.Errorf("unknown PayoutRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PayoutRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(payoutrecord.FieldWalletAddress) {
		fields = append(fields, payoutrecord.FieldWalletAddress)
	}
	if m.FieldCleared(payoutrecord.FieldPaymentTransactionID) {
		fields = append(fields, payoutrecord.FieldPaymentTransactionID)
	}
	if m.FieldCleared(payoutrecord.FieldLastError) {
		fields = append(fields, payoutrecord.FieldLastError)
	}
	if m.FieldCleared(payoutrecord.FieldPaidAt) {
		fields = append(fields, payoutrecord.FieldPaidAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PayoutRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PayoutRecordMutation) ClearField(name string) error {
	switch name {
	case payoutrecord.FieldWalletAddress:
		m.ClearWalletAddress()
		return nil
	case payoutrecord.FieldPaymentTransactionID:
		m.ClearPaymentTransactionID()
		return nil
	case payoutrecord.FieldLastError:
		m.ClearLastError()
		return nil
	case payoutrecord.FieldPaidAt:
		m.ClearPaidAt()
		return nil
	}
	return fmt.Errorf("unknown PayoutRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PayoutRecordMutation) ResetField(name string) error {
	switch name {
	case payoutrecord.FieldProducerID:
		m.ResetProducerID()
		return nil
	case payoutrecord.FieldMonth:
		m.ResetMonth()
		return nil
	case payoutrecord.FieldAmount:
		m.ResetAmount()
		return nil
	case payoutrecord.FieldStatus:
		m.ResetStatus()
		return nil
	case payoutrecord.FieldWalletAddress:
		m.ResetWalletAddress()
		return nil
	case payoutrecord.FieldPaymentTransactionID:
		m.ResetPaymentTransactionID()
		return nil
	case payoutrecord.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case payoutrecord.FieldLastError:
		m.ResetLastError()
		return nil
	case payoutrecord.FieldPaidAt:
		m.ResetPaidAt()
		return nil
	case payoutrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case payoutrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PayoutRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PayoutRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.producer != nil {
		edges = append(edges, payoutrecord.EdgeProducer)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PayoutRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case payoutrecord.EdgeProducer:
		if id := m.producer; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PayoutRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PayoutRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PayoutRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedproducer {
		edges = append(edges, payoutrecord.EdgeProducer)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PayoutRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case payoutrecord.EdgeProducer:
		return m.clearedproducer
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PayoutRecordMutation) ClearEdge(name string) error {
	switch name {
	case payoutrecord.EdgeProducer:
		m.ClearProducer()
		return nil
	}
	return fmt.Errorf("unknown PayoutRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PayoutRecordMutation) ResetEdge(name string) error {
	switch name {
	case payoutrecord.EdgeProducer:
		m.ResetProducer()
		return nil
	}
	return fmt.Errorf("unknown PayoutRecord edge %s", name)
}

// PayoutRunMutation represents an operation that mutates the PayoutRun nodes in the graph.
type PayoutRunMutation struct {
	config
	op              Op
	typ             string
	id              *int
	month           *string
	kind            *payoutrun.Kind
	status          *payoutrun.Status
	triggered_by    *int
	addtriggered_by *int
	started_at      *time.Time
	finished_at     *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*PayoutRun, error)
	predicates      []predicate.PayoutRun
}

var _ ent.Mutation = (*PayoutRunMutation)(nil)

// payoutrunOption allows management of the mutation configuration using functional options.
type payoutrunOption func(*PayoutRunMutation)

// newPayoutRunMutation creates new mutation for the PayoutRun entity.
func newPayoutRunMutation(c config, op Op, opts ...payoutrunOption) *PayoutRunMutation {
	m := &PayoutRunMutation{
		config:        c,
		op:            op,
		typ:           TypePayoutRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPayoutRunID sets the ID field of the mutation.
func withPayoutRunID(id int) payoutrunOption {
	return func(m *PayoutRunMutation) {
		var (
			err   error
			once  sync.Once
			value *PayoutRun
		)
		m.oldValue = func(ctx context.Context) (*PayoutRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PayoutRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPayoutRun sets the old PayoutRun of the mutation.
func withPayoutRun(node *PayoutRun) payoutrunOption {
	return func(m *PayoutRunMutation) {
		m.oldValue = func(context.Context) (*PayoutRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PayoutRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PayoutRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PayoutRunMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PayoutRunMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PayoutRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMonth sets the "month" field.
func (m *PayoutRunMutation) SetMonth(s string) {
	m.month = &s
}

// Month returns the value of the "month" field in the mutation.
func (m *PayoutRunMutation) Month() (r string, exists bool) {
	v := m.month
	if v == nil {
		return
	}
	return *v, true
}

// OldMonth returns the old "month" field's value of the PayoutRun entity.
// If the PayoutRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PayoutRunMutation) OldMonth(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonth: %w", err)
	}
	return oldValue.Month, nil
}

// ResetMonth resets all changes to the "month" field.
func (m *PayoutRunMutation) ResetMonth() {
	m.month = nil
}

// SetKind sets the "kind" field.
func (m *PayoutRunMutation) SetKind(pa payoutrun.Kind) {
	m.kind = &pa
}

// Kind returns the value of the "kind" field in the mutation.
func (m *PayoutRunMutation) Kind() (r payoutrun.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the PayoutRun entity.
// If the PayoutRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PayoutRunMutation) OldKind(ctx context.Context) (v payoutrun.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *PayoutRunMutation) ResetKind() {
	m.kind = nil
}

// SetStatus sets the "status" field.
func (m *PayoutRunMutation) SetStatus(pa payoutrun.Status) {
	m.status = &pa
}

// Status returns the value of the "status" field in the mutation.
func (m *PayoutRunMutation) Status() (r payoutrun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PayoutRun entity.
// If the PayoutRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PayoutRunMutation) OldStatus(ctx context.Context) (v payoutrun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PayoutRunMutation) ResetStatus() {
	m.status = nil
}

// SetTriggeredBy sets the "triggered_by" field.
func (m *PayoutRunMutation) SetTriggeredBy(i int) {
	m.triggered_by = &i
	m.addtriggered_by = nil
}

// TriggeredBy returns the value of the "triggered_by" field in the mutation.
func (m *PayoutRunMutation) TriggeredBy() (r int, exists bool) {
	v := m.triggered_by
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggeredBy returns the old "triggered_by" field's value of the PayoutRun entity.
// If the PayoutRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PayoutRunMutation) OldTriggeredBy(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggeredBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggeredBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggeredBy: %w", err)
	}
	return oldValue.TriggeredBy, nil
}

// AddTriggeredBy adds i to the "triggered_by" field.
func (m *PayoutRunMutation) AddTriggeredBy(i int) {
	if m.addtriggered_by != nil {
		*m.addtriggered_by += i
	} else {
		m.addtriggered_by = &i
	}
}

// AddedTriggeredBy returns the value that was added to the "triggered_by" field in this mutation.
func (m *PayoutRunMutation) AddedTriggeredBy() (r int, exists bool) {
	v := m.addtriggered_by
	if v == nil {
		return
	}
	return *v, true
}

// ClearTriggeredBy clears the value of the "triggered_by" field.
func (m *PayoutRunMutation) ClearTriggeredBy() {
	m.triggered_by = nil
	m.addtriggered_by = nil
	m.clearedFields[payoutrun.FieldTriggeredBy] = struct{}{}
}

// TriggeredByCleared returns if the "triggered_by" field was cleared in this mutation.
func (m *PayoutRunMutation) TriggeredByCleared() bool {
	_, ok := m.clearedFields[payoutrun.FieldTriggeredBy]
	return ok
}

// ResetTriggeredBy resets all changes to the "triggered_by" field.
func (m *PayoutRunMutation) ResetTriggeredBy() {
	m.triggered_by = nil
	m.addtriggered_by = nil
	delete(m.clearedFields, payoutrun.FieldTriggeredBy)
}

// SetStartedAt sets the "started_at" field.
func (m *PayoutRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *PayoutRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the PayoutRun entity.
// If the PayoutRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PayoutRunMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *PayoutRunMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *PayoutRunMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *PayoutRunMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the PayoutRun entity.
// If the PayoutRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PayoutRunMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *PayoutRunMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[payoutrun.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *PayoutRunMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[payoutrun.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *PayoutRunMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, payoutrun.FieldFinishedAt)
}

// Where appends a list predicates to the PayoutRunMutation builder.
func (m *PayoutRunMutation) Where(ps ...predicate.PayoutRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PayoutRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PayoutRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PayoutRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PayoutRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PayoutRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PayoutRun).
func (m *PayoutRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PayoutRunMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.month != nil {
		fields = append(fields, payoutrun.FieldMonth)
	}
	if m.kind != nil {
		fields = append(fields, payoutrun.FieldKind)
	}
	if m.status != nil {
		fields = append(fields, payoutrun.FieldStatus)
	}
	if m.triggered_by != nil {
		fields = append(fields, payoutrun.FieldTriggeredBy)
	}
	if m.started_at != nil {
		fields = append(fields, payoutrun.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, payoutrun.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PayoutRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case payoutrun.FieldMonth:
		return m.Month()
	case payoutrun.FieldKind:
		return m.Kind()
	case payoutrun.FieldStatus:
		return m.Status()
	case payoutrun.FieldTriggeredBy:
		return m.TriggeredBy()
	case payoutrun.FieldStartedAt:
		return m.StartedAt()
	case payoutrun.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PayoutRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case payoutrun.FieldMonth:
		return m.OldMonth(ctx)
	case payoutrun.FieldKind:
		return m.OldKind(ctx)
	case payoutrun.FieldStatus:
		return m.OldStatus(ctx)
	case payoutrun.FieldTriggeredBy:
		return m.OldTriggeredBy(ctx)
	case payoutrun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case payoutrun.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PayoutRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PayoutRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case payoutrun.FieldMonth:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonth(v)
		return nil
	case payoutrun.FieldKind:
		v, ok := value.(payoutrun.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case payoutrun.FieldStatus:
		v, ok := value.(payoutrun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case payoutrun.FieldTriggeredBy:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggeredBy(v)
		return nil
	case payoutrun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case payoutrun.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PayoutRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PayoutRunMutation) AddedFields() []string {
	var fields []string
	if m.addtriggered_by != nil {
		fields = append(fields, payoutrun.FieldTriggeredBy)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PayoutRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case payoutrun.FieldTriggeredBy:
		return m.AddedTriggeredBy()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PayoutRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case payoutrun.FieldTriggeredBy:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTriggeredBy(v)
		return nil
	}
	return fmt.Errorf("unknown PayoutRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PayoutRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(payoutrun.FieldTriggeredBy) {
		fields = append(fields, payoutrun.FieldTriggeredBy)
	}
	if m.FieldCleared(payoutrun.FieldFinishedAt) {
		fields = append(fields, payoutrun.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PayoutRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PayoutRunMutation) ClearField(name string) error {
	switch name {
	case payoutrun.FieldTriggeredBy:
		m.ClearTriggeredBy()
		return nil
	case payoutrun.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown PayoutRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PayoutRunMutation) ResetField(name string) error {
	switch name {
	case payoutrun.FieldMonth:
		m.ResetMonth()
		return nil
	case payoutrun.FieldKind:
		m.ResetKind()
		return nil
	case payoutrun.FieldStatus:
		m.ResetStatus()
		return nil
	case payoutrun.FieldTriggeredBy:
		m.ResetTriggeredBy()
		return nil
	case payoutrun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case payoutrun.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown PayoutRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PayoutRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PayoutRunMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PayoutRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PayoutRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PayoutRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PayoutRunMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PayoutRunMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PayoutRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PayoutRunMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PayoutRun edge %s", name)
}

// SaleMutation represents an operation that mutates the Sale nodes in the graph.
type SaleMutation struct {
	config
	op                       Op
	typ                      string
	id                       *int
	producer_id              *int
	addproducer_id           *int
	license_type             *sale.LicenseType
	amount                   *float64
	addamount                *float64
	status                   *sale.Status
	stripe_session_id        *string
	stripe_payment_intent_id *string
	completed_at             *time.Time
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	track                    *int
	clearedtrack             bool
	buyer                    *int
	clearedbuyer             bool
	done                     bool
	oldValue                 func(context.Context) (*Sale, error)
	predicates               []predicate.Sale
}

var _ ent.Mutation = (*SaleMutation)(nil)

// saleOption allows management of the mutation configuration using functional options.
type saleOption func(*SaleMutation)

// newSaleMutation creates new mutation for the Sale entity.
func newSaleMutation(c config, op Op, opts ...saleOption) *SaleMutation {
	m := &SaleMutation{
		config:        c,
		op:            op,
		typ:           TypeSale,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSaleID sets the ID field of the mutation.
func withSaleID(id int) saleOption {
	return func(m *SaleMutation) {
		var (
			err   error
			once  sync.Once
			value *Sale
		)
		m.oldValue = func(ctx context.Context) (*Sale, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Sale.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSale sets the old Sale of the mutation.
func withSale(node *Sale) saleOption {
	return func(m *SaleMutation) {
		m.oldValue = func(context.Context) (*Sale, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SaleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SaleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SaleMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SaleMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Sale.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTrackID sets the "track_id" field.
func (m *SaleMutation) SetTrackID(i int) {
	m.track = &i
}

// TrackID returns the value of the "track_id" field in the mutation.
func (m *SaleMutation) TrackID() (r int, exists bool) {
	v := m.track
	if v == nil {
		return
	}
	return *v, true
}

// OldTrackID returns the old "track_id" field's value of the Sale entity.
// If the Sale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SaleMutation) OldTrackID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrackID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrackID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrackID: %w", err)
	}
	return oldValue.TrackID, nil
}

// ResetTrackID resets all changes to the "track_id" field.
func (m *SaleMutation) ResetTrackID() {
	m.track = nil
}

// SetProducerID sets the "producer_id" field.
func (m *SaleMutation) SetProducerID(i int) {
	m.producer_id = &i
	m.addproducer_id = nil
}

// ProducerID returns the value of the "producer_id" field in the mutation.
func (m *SaleMutation) ProducerID() (r int, exists bool) {
	v := m.producer_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProducerID returns the old "producer_id" field's value of the Sale entity.
// If the Sale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SaleMutation) OldProducerID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProducerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProducerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProducerID: %w", err)
	}
	return oldValue.ProducerID, nil
}

// AddProducerID adds i to the "producer_id" field.
func (m *SaleMutation) AddProducerID(i int) {
	if m.addproducer_id != nil {
		*m.addproducer_id += i
	} else {
		m.addproducer_id = &i
	}
}

// AddedProducerID returns the value that was added to the "producer_id" field in this mutation.
func (m *SaleMutation) AddedProducerID() (r int, exists bool) {
	v := m.addproducer_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetProducerID resets all changes to the "producer_id" field.
func (m *SaleMutation) ResetProducerID() {
	m.producer_id = nil
	m.addproducer_id = nil
}

// SetBuyerID sets the "buyer_id" field.
func (m *SaleMutation) SetBuyerID(i int) {
	m.buyer = &i
}

// BuyerID returns the value of the "buyer_id" field in the mutation.
func (m *SaleMutation) BuyerID() (r int, exists bool) {
	v := m.buyer
	if v == nil {
		return
	}
	return *v, true
}

// OldBuyerID returns the old "buyer_id" field's value of the Sale entity.
// If the Sale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SaleMutation) OldBuyerID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuyerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuyerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuyerID: %w", err)
	}
	return oldValue.BuyerID, nil
}

// ResetBuyerID resets all changes to the "buyer_id" field.
func (m *SaleMutation) ResetBuyerID() {
	m.buyer = nil
}

// SetLicenseType sets the "license_type" field.
func (m *SaleMutation) SetLicenseType(st sale.LicenseType) {
	m.license_type = &st
}

// LicenseType returns the value of the "license_type" field in the mutation.
func (m *SaleMutation) LicenseType() (r sale.LicenseType, exists bool) {
	v := m.license_type
	if v == nil {
		return
	}
	return *v, true
}

// OldLicenseType returns the old "license_type" field's value of the Sale entity.
// If the Sale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SaleMutation) OldLicenseType(ctx context.Context) (v sale.LicenseType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLicenseType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLicenseType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLicenseType: %w", err)
	}
	return oldValue.LicenseType, nil
}

// ResetLicenseType resets all changes to the "license_type" field.
func (m *SaleMutation) ResetLicenseType() {
	m.license_type = nil
}

// SetAmount sets the "amount" field.
func (m *SaleMutation) SetAmount(f float64) {
	m.amount = &f
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *SaleMutation) Amount() (r float64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the Sale entity.
// If the Sale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SaleMutation) OldAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds f to the "amount" field.
func (m *SaleMutation) AddAmount(f float64) {
	if m.addamount != nil {
		*m.addamount += f
	} else {
		m.addamount = &f
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *SaleMutation) AddedAmount() (r float64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *SaleMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetStatus sets the "status" field.
func (m *SaleMutation) SetStatus(s sale.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SaleMutation) Status() (r sale.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Sale entity.
// If the Sale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SaleMutation) OldStatus(ctx context.Context) (v sale.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SaleMutation) ResetStatus() {
	m.status = nil
}

// SetStripeSessionID sets the "stripe_session_id" field.
func (m *SaleMutation) SetStripeSessionID(s string) {
	m.stripe_session_id = &s
}

// StripeSessionID returns the value of the "stripe_session_id" field in the mutation.
func (m *SaleMutation) StripeSessionID() (r string, exists bool) {
	v := m.stripe_session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStripeSessionID returns the old "stripe_session_id" field's value of the Sale entity.
// If the Sale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SaleMutation) OldStripeSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStripeSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStripeSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStripeSessionID: %w", err)
	}
	return oldValue.StripeSessionID, nil
}

// ClearStripeSessionID clears the value of the "stripe_session_id" field.
func (m *SaleMutation) ClearStripeSessionID() {
	m.stripe_session_id = nil
	m.clearedFields[sale.FieldStripeSessionID] = struct{}{}
}

// StripeSessionIDCleared returns if the "stripe_session_id" field was cleared in this mutation.
func (m *SaleMutation) StripeSessionIDCleared() bool {
	_, ok := m.clearedFields[sale.FieldStripeSessionID]
	return ok
}

// ResetStripeSessionID resets all changes to the "stripe_session_id" field.
func (m *SaleMutation) ResetStripeSessionID() {
	m.stripe_session_id = nil
	delete(m.clearedFields, sale.FieldStripeSessionID)
}

// SetStripePaymentIntentID sets the "stripe_payment_intent_id" field.
func (m *SaleMutation) SetStripePaymentIntentID(s string) {
	m.stripe_payment_intent_id = &s
}

// StripePaymentIntentID returns the value of the "stripe_payment_intent_id" field in the mutation.
func (m *SaleMutation) StripePaymentIntentID() (r string, exists bool) {
	v := m.stripe_payment_intent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStripePaymentIntentID returns the old "stripe_payment_intent_id" field's value of the Sale entity.
// If the Sale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SaleMutation) OldStripePaymentIntentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStripePaymentIntentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStripePaymentIntentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStripePaymentIntentID: %w", err)
	}
	return oldValue.StripePaymentIntentID, nil
}

// ClearStripePaymentIntentID clears the value of the "stripe_payment_intent_id" field.
func (m *SaleMutation) ClearStripePaymentIntentID() {
	m.stripe_payment_intent_id = nil
	m.clearedFields[sale.FieldStripePaymentIntentID] = struct{}{}
}

// StripePaymentIntentIDCleared returns if the "stripe_payment_intent_id" field was cleared in this mutation.
func (m *SaleMutation) StripePaymentIntentIDCleared() bool {
	_, ok := m.clearedFields[sale.FieldStripePaymentIntentID]
	return ok
}

// ResetStripePaymentIntentID resets all changes to the "stripe_payment_intent_id" field.
func (m *SaleMutation) ResetStripePaymentIntentID() {
	m.stripe_payment_intent_id = nil
	delete(m.clearedFields, sale.FieldStripePaymentIntentID)
}

// SetCompletedAt sets the "completed_at" field.
func (m *SaleMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *SaleMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Sale entity.
// If the Sale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SaleMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *SaleMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[sale.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *SaleMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[sale.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *SaleMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, sale.FieldCompletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *SaleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SaleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Sale entity.
// If the Sale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SaleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SaleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SaleMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SaleMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Sale entity.
// If the Sale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SaleMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SaleMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTrack clears the "track" edge to the Track entity.
func (m *SaleMutation) ClearTrack() {
	m.clearedtrack = true
	m.clearedFields[sale.FieldTrackID] = struct{}{}
}

// TrackCleared reports if the "track" edge to the Track entity was cleared.
func (m *SaleMutation) TrackCleared() bool {
	return m.clearedtrack
}

// TrackIDs returns the "track" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TrackID instead. It exists only for internal usage by the builders.
func (m *SaleMutation) TrackIDs() (ids []int) {
	if id := m.track; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTrack resets all changes to the "track" edge.
func (m *SaleMutation) ResetTrack() {
	m.track = nil
	m.clearedtrack = false
}

// ClearBuyer clears the "buyer" edge to the User entity.
func (m *SaleMutation) ClearBuyer() {
	m.clearedbuyer = true
	m.clearedFields[sale.FieldBuyerID] = struct{}{}
}

// BuyerCleared reports if the "buyer" edge to the User entity was cleared.
func (m *SaleMutation) BuyerCleared() bool {
	return m.clearedbuyer
}

// BuyerIDs returns the "buyer" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BuyerID instead. It exists only for internal usage by the builders.
func (m *SaleMutation) BuyerIDs() (ids []int) {
	if id := m.buyer; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBuyer resets all changes to the "buyer" edge.
func (m *SaleMutation) ResetBuyer() {
	m.buyer = nil
	m.clearedbuyer = false
}

// Where appends a list predicates to the SaleMutation builder.
func (m *SaleMutation) Where(ps ...predicate.Sale) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SaleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SaleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Sale, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SaleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SaleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Sale).
func (m *SaleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SaleMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.track != nil {
		fields = append(fields, sale.FieldTrackID)
	}
	if m.producer_id != nil {
		fields = append(fields, sale.FieldProducerID)
	}
	if m.buyer != nil {
		fields = append(fields, sale.FieldBuyerID)
	}
	if m.license_type != nil {
		fields = append(fields, sale.FieldLicenseType)
	}
	if m.amount != nil {
		fields = append(fields, sale.FieldAmount)
	}
	if m.status != nil {
		fields = append(fields, sale.FieldStatus)
	}
	if m.stripe_session_id != nil {
		fields = append(fields, sale.FieldStripeSessionID)
	}
	if m.stripe_payment_intent_id != nil {
		fields = append(fields, sale.FieldStripePaymentIntentID)
	}
	if m.completed_at != nil {
		fields = append(fields, sale.FieldCompletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, sale.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, sale.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SaleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sale.FieldTrackID:
		return m.TrackID()
	case sale.FieldProducerID:
		return m.ProducerID()
	case sale.FieldBuyerID:
		return m.BuyerID()
	case sale.FieldLicenseType:
		return m.LicenseType()
	case sale.FieldAmount:
		return m.Amount()
	case sale.FieldStatus:
		return m.Status()
	case sale.FieldStripeSessionID:
		return m.StripeSessionID()
	case sale.FieldStripePaymentIntentID:
		return m.StripePaymentIntentID()
	case sale.FieldCompletedAt:
		return m.CompletedAt()
	case sale.FieldCreatedAt:
		return m.CreatedAt()
	case sale.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SaleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sale.FieldTrackID:
		return m.OldTrackID(ctx)
	case sale.FieldProducerID:
		return m.OldProducerID(ctx)
	case sale.FieldBuyerID:
		return m.OldBuyerID(ctx)
	case sale.FieldLicenseType:
		return m.OldLicenseType(ctx)
	case sale.FieldAmount:
		return m.OldAmount(ctx)
	case sale.FieldStatus:
		return m.OldStatus(ctx)
	case sale.FieldStripeSessionID:
		return m.OldStripeSessionID(ctx)
	case sale.FieldStripePaymentIntentID:
		return m.OldStripePaymentIntentID(ctx)
	case sale.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case sale.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case sale.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Sale field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SaleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sale.FieldTrackID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrackID(v)
		return nil
	case sale.FieldProducerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProducerID(v)
		return nil
	case sale.FieldBuyerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuyerID(v)
		return nil
	case sale.FieldLicenseType:
		v, ok := value.(sale.LicenseType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLicenseType(v)
		return nil
	case sale.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case sale.FieldStatus:
		v, ok := value.(sale.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case sale.FieldStripeSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStripeSessionID(v)
		return nil
	case sale.FieldStripePaymentIntentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStripePaymentIntentID(v)
		return nil
	case sale.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case sale.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case sale.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Sale field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SaleMutation) AddedFields() []string {
	var fields []string
	if m.addproducer_id != nil {
		fields = append(fields, sale.FieldProducerID)
	}
	if m.addamount != nil {
		fields = append(fields, sale.FieldAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SaleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sale.FieldProducerID:
		return m.AddedProducerID()
	case sale.FieldAmount:
		return m.AddedAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SaleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sale.FieldProducerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProducerID(v)
		return nil
	case sale.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	}
	return fmt.Errorf("unknown Sale numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SaleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sale.FieldStripeSessionID) {
		fields = append(fields, sale.FieldStripeSessionID)
	}
	if m.FieldCleared(sale.FieldStripePaymentIntentID) {
		fields = append(fields, sale.FieldStripePaymentIntentID)
	}
	if m.FieldCleared(sale.FieldCompletedAt) {
		fields = append(fields, sale.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SaleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SaleMutation) ClearField(name string) error {
	switch name {
	case sale.FieldStripeSessionID:
		m.ClearStripeSessionID()
		return nil
	case sale.FieldStripePaymentIntentID:
		m.ClearStripePaymentIntentID()
		return nil
	case sale.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Sale nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SaleMutation) ResetField(name string) error {
	switch name {
	case sale.FieldTrackID:
		m.ResetTrackID()
		return nil
	case sale.FieldProducerID:
		m.ResetProducerID()
		return nil
	case sale.FieldBuyerID:
		m.ResetBuyerID()
		return nil
	case sale.FieldLicenseType:
		m.ResetLicenseType()
		return nil
	case sale.FieldAmount:
		m.ResetAmount()
		return nil
	case sale.FieldStatus:
		m.ResetStatus()
		return nil
	case sale.FieldStripeSessionID:
		m.ResetStripeSessionID()
		return nil
	case sale.FieldStripePaymentIntentID:
		m.ResetStripePaymentIntentID()
		return nil
	case sale.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case sale.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case sale.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Sale field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SaleMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.track != nil {
		edges = append(edges, sale.EdgeTrack)
	}
	if m.buyer != nil {
		edges = append(edges, sale.EdgeBuyer)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SaleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sale.EdgeTrack:
		if id := m.track; id != nil {
			return []ent.Value{*id}
		}
	case sale.EdgeBuyer:
		if id := m.buyer; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SaleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SaleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SaleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedtrack {
		edges = append(edges, sale.EdgeTrack)
	}
	if m.clearedbuyer {
		edges = append(edges, sale.EdgeBuyer)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SaleMutation) EdgeCleared(name string) bool {
	switch name {
	case sale.EdgeTrack:
		return m.clearedtrack
	case sale.EdgeBuyer:
		return m.clearedbuyer
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SaleMutation) ClearEdge(name string) error {
	switch name {
	case sale.EdgeTrack:
		m.ClearTrack()
		return nil
	case sale.EdgeBuyer:
		m.ClearBuyer()
		return nil
	}
	return fmt.Errorf("unknown Sale unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SaleMutation) ResetEdge(name string) error {
	switch name {
	case sale.EdgeTrack:
		m.ResetTrack()
		return nil
	case sale.EdgeBuyer:
		m.ResetBuyer()
		return nil
	}
	return fmt.Errorf("unknown Sale edge %s", name)
}

// SyncProposalMutation represents an operation that mutates the SyncProposal nodes in the graph.
type SyncProposalMutation struct {
	config
	op             Op
	typ            string
	id             *int
	producer_id    *int
	addproducer_id *int
	track_id       *int
	addtrack_id    *int
	project_name   *string
	fee            *float64
	addfee         *float64
	status         *syncproposal.Status
	accepted_at    *time.Time
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*SyncProposal, error)
	predicates     []predicate.SyncProposal
}

var _ ent.Mutation = (*SyncProposalMutation)(nil)

// syncproposalOption allows management of the mutation configuration using functional options.
type syncproposalOption func(*SyncProposalMutation)

// newSyncProposalMutation creates new mutation for the SyncProposal entity.
func newSyncProposalMutation(c config, op Op, opts ...syncproposalOption) *SyncProposalMutation {
	m := &SyncProposalMutation{
		config:        c,
		op:            op,
		typ:           TypeSyncProposal,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSyncProposalID sets the ID field of the mutation.
func withSyncProposalID(id int) syncproposalOption {
	return func(m *SyncProposalMutation) {
		var (
			err   error
			once  sync.Once
			value *SyncProposal
		)
		m.oldValue = func(ctx context.Context) (*SyncProposal, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SyncProposal.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSyncProposal sets the old SyncProposal of the mutation.
func withSyncProposal(node *SyncProposal) syncproposalOption {
	return func(m *SyncProposalMutation) {
		m.oldValue = func(context.Context) (*SyncProposal, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SyncProposalMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SyncProposalMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SyncProposalMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SyncProposalMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SyncProposal.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProducerID sets the "producer_id" field.
func (m *SyncProposalMutation) SetProducerID(i int) {
	m.producer_id = &i
	m.addproducer_id = nil
}

// ProducerID returns the value of the "producer_id" field in the mutation.
func (m *SyncProposalMutation) ProducerID() (r int, exists bool) {
	v := m.producer_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProducerID returns the old "producer_id" field's value of the SyncProposal entity.
// If the SyncProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncProposalMutation) OldProducerID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProducerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProducerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProducerID: %w", err)
	}
	return oldValue.ProducerID, nil
}

// AddProducerID adds i to the "producer_id" field.
func (m *SyncProposalMutation) AddProducerID(i int) {
	if m.addproducer_id != nil {
		*m.addproducer_id += i
	} else {
		m.addproducer_id = &i
	}
}

// AddedProducerID returns the value that was added to the "producer_id" field in this mutation.
func (m *SyncProposalMutation) AddedProducerID() (r int, exists bool) {
	v := m.addproducer_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetProducerID resets all changes to the "producer_id" field.
func (m *SyncProposalMutation) ResetProducerID() {
	m.producer_id = nil
	m.addproducer_id = nil
}

// SetTrackID sets the "track_id" field.
func (m *SyncProposalMutation) SetTrackID(i int) {
	m.track_id = &i
	m.addtrack_id = nil
}

// TrackID returns the value of the "track_id" field in the mutation.
func (m *SyncProposalMutation) TrackID() (r int, exists bool) {
	v := m.track_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTrackID returns the old "track_id" field's value of the SyncProposal entity.
// If the SyncProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncProposalMutation) OldTrackID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrackID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrackID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrackID: %w", err)
	}
	return oldValue.TrackID, nil
}

// AddTrackID adds i to the "track_id" field.
func (m *SyncProposalMutation) AddTrackID(i int) {
	if m.addtrack_id != nil {
		*m.addtrack_id += i
	} else {
		m.addtrack_id = &i
	}
}

// AddedTrackID returns the value that was added to the "track_id" field in this mutation.
func (m *SyncProposalMutation) AddedTrackID() (r int, exists bool) {
	v := m.addtrack_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetTrackID resets all changes to the "track_id" field.
func (m *SyncProposalMutation) ResetTrackID() {
	m.track_id = nil
	m.addtrack_id = nil
}

// SetProjectName sets the "project_name" field.
func (m *SyncProposalMutation) SetProjectName(s string) {
	m.project_name = &s
}

// ProjectName returns the value of the "project_name" field in the mutation.
func (m *SyncProposalMutation) ProjectName() (r string, exists bool) {
	v := m.project_name
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectName returns the old "project_name" field's value of the SyncProposal entity.
// If the SyncProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncProposalMutation) OldProjectName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectName: %w", err)
	}
	return oldValue.ProjectName, nil
}

// ResetProjectName resets all changes to the "project_name" field.
func (m *SyncProposalMutation) ResetProjectName() {
	m.project_name = nil
}

// SetFee sets the "fee" field.
func (m *SyncProposalMutation) SetFee(f float64) {
	m.fee = &f
	m.addfee = nil
}

// Fee returns the value of the "fee" field in the mutation.
func (m *SyncProposalMutation) Fee() (r float64, exists bool) {
	v := m.fee
	if v == nil {
		return
	}
	return *v, true
}

// OldFee returns the old "fee" field's value of the SyncProposal entity.
// If the SyncProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncProposalMutation) OldFee(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFee is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFee requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFee: %w", err)
	}
	return oldValue.Fee, nil
}

// AddFee adds f to the "fee" field.
func (m *SyncProposalMutation) AddFee(f float64) {
	if m.addfee != nil {
		*m.addfee += f
	} else {
		m.addfee = &f
	}
}

// AddedFee returns the value that was added to the "fee" field in this mutation.
func (m *SyncProposalMutation) AddedFee() (r float64, exists bool) {
	v := m.addfee
	if v == nil {
		return
	}
	return *v, true
}

// ResetFee resets all changes to the "fee" field.
func (m *SyncProposalMutation) ResetFee() {
	m.fee = nil
	m.addfee = nil
}

// SetStatus sets the "status" field.
func (m *SyncProposalMutation) SetStatus(s syncproposal.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SyncProposalMutation) Status() (r syncproposal.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SyncProposal entity.
// If the SyncProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncProposalMutation) OldStatus(ctx context.Context) (v syncproposal.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SyncProposalMutation) ResetStatus() {
	m.status = nil
}

// SetAcceptedAt sets the "accepted_at" field.
func (m *SyncProposalMutation) SetAcceptedAt(t time.Time) {
	m.accepted_at = &t
}

// AcceptedAt returns the value of the "accepted_at" field in the mutation.
func (m *SyncProposalMutation) AcceptedAt() (r time.Time, exists bool) {
	v := m.accepted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAcceptedAt returns the old "accepted_at" field's value of the SyncProposal entity.
// If the SyncProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncProposalMutation) OldAcceptedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcceptedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcceptedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcceptedAt: %w", err)
	}
	return oldValue.AcceptedAt, nil
}

// ClearAcceptedAt clears the value of the "accepted_at" field.
func (m *SyncProposalMutation) ClearAcceptedAt() {
	m.accepted_at = nil
	m.clearedFields[syncproposal.FieldAcceptedAt] = struct{}{}
}

// AcceptedAtCleared returns if the "accepted_at" field was cleared in this mutation.
func (m *SyncProposalMutation) AcceptedAtCleared() bool {
	_, ok := m.clearedFields[syncproposal.FieldAcceptedAt]
	return ok
}

// ResetAcceptedAt resets all changes to the "accepted_at" field.
func (m *SyncProposalMutation) ResetAcceptedAt() {
	m.accepted_at = nil
	delete(m.clearedFields, syncproposal.FieldAcceptedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *SyncProposalMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SyncProposalMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SyncProposal entity.
// If the SyncProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncProposalMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SyncProposalMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SyncProposalMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SyncProposalMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SyncProposal entity.
// If the SyncProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncProposalMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SyncProposalMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SyncProposalMutation builder.
func (m *SyncProposalMutation) Where(ps ...predicate.SyncProposal) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SyncProposalMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SyncProposalMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SyncProposal, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SyncProposalMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SyncProposalMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SyncProposal).
func (m *SyncProposalMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SyncProposalMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.producer_id != nil {
		fields = append(fields, syncproposal.FieldProducerID)
	}
	if m.track_id != nil {
		fields = append(fields, syncproposal.FieldTrackID)
	}
	if m.project_name != nil {
		fields = append(fields, syncproposal.FieldProjectName)
	}
	if m.fee != nil {
		fields = append(fields, syncproposal.FieldFee)
	}
	if m.status != nil {
		fields = append(fields, syncproposal.FieldStatus)
	}
	if m.accepted_at != nil {
		fields = append(fields, syncproposal.FieldAcceptedAt)
	}
	if m.created_at != nil {
		fields = append(fields, syncproposal.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, syncproposal.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SyncProposalMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case syncproposal.FieldProducerID:
		return m.ProducerID()
	case syncproposal.FieldTrackID:
		return m.TrackID()
	case syncproposal.FieldProjectName:
		return m.ProjectName()
	case syncproposal.FieldFee:
		return m.Fee()
	case syncproposal.FieldStatus:
		return m.Status()
	case syncproposal.FieldAcceptedAt:
		return m.AcceptedAt()
	case syncproposal.FieldCreatedAt:
		return m.CreatedAt()
	case syncproposal.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SyncProposalMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case syncproposal.FieldProducerID:
		return m.OldProducerID(ctx)
	case syncproposal.FieldTrackID:
		return m.OldTrackID(ctx)
	case syncproposal.FieldProjectName:
		return m.OldProjectName(ctx)
	case syncproposal.FieldFee:
		return m.OldFee(ctx)
	case syncproposal.FieldStatus:
		return m.OldStatus(ctx)
	case syncproposal.FieldAcceptedAt:
		return m.OldAcceptedAt(ctx)
	case syncproposal.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case syncproposal.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SyncProposal field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SyncProposalMutation) SetField(name string, value ent.Value) error {
	switch name {
	case syncproposal.FieldProducerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProducerID(v)
		return nil
	case syncproposal.FieldTrackID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrackID(v)
		return nil
	case syncproposal.FieldProjectName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectName(v)
		return nil
	case syncproposal.FieldFee:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFee(v)
		return nil
	case syncproposal.FieldStatus:
		v, ok := value.(syncproposal.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case syncproposal.FieldAcceptedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcceptedAt(v)
		return nil
	case syncproposal.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case syncproposal.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SyncProposal field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SyncProposalMutation) AddedFields() []string {
	var fields []string
	if m.addproducer_id != nil {
		fields = append(fields, syncproposal.FieldProducerID)
	}
	if m.addtrack_id != nil {
		fields = append(fields, syncproposal.FieldTrackID)
	}
	if m.addfee != nil {
		fields = append(fields, syncproposal.FieldFee)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SyncProposalMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case syncproposal.FieldProducerID:
		return m.AddedProducerID()
	case syncproposal.FieldTrackID:
		return m.AddedTrackID()
	case syncproposal.FieldFee:
		return m.AddedFee()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SyncProposalMutation) AddField(name string, value ent.Value) error {
	switch name {
	case syncproposal.FieldProducerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProducerID(v)
		return nil
	case syncproposal.FieldTrackID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTrackID(v)
		return nil
	case syncproposal.FieldFee:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFee(v)
		return nil
	}
	return fmt.Errorf("unknown SyncProposal numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SyncProposalMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(syncproposal.FieldAcceptedAt) {
		fields = append(fields, syncproposal.FieldAcceptedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SyncProposalMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SyncProposalMutation) ClearField(name string) error {
	switch name {
	case syncproposal.FieldAcceptedAt:
		m.ClearAcceptedAt()
		return nil
	}
	return fmt.Errorf("unknown SyncProposal nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SyncProposalMutation) ResetField(name string) error {
	switch name {
	case syncproposal.FieldProducerID:
		m.ResetProducerID()
		return nil
	case syncproposal.FieldTrackID:
		m.ResetTrackID()
		return nil
	case syncproposal.FieldProjectName:
		m.ResetProjectName()
		return nil
	case syncproposal.FieldFee:
		m.ResetFee()
		return nil
	case syncproposal.FieldStatus:
		m.ResetStatus()
		return nil
	case syncproposal.FieldAcceptedAt:
		m.ResetAcceptedAt()
		return nil
	case syncproposal.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case syncproposal.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SyncProposal field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SyncProposalMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SyncProposalMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SyncProposalMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SyncProposalMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SyncProposalMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SyncProposalMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SyncProposalMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SyncProposal unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SyncProposalMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SyncProposal edge %s", name)
}

// TrackMutation represents an operation that mutates the Track nodes in the graph.
type TrackMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	title              *string
	genre              *string
	bpm                *int
	addbpm             *int
	standard_price     *float64
	addstandard_price  *float64
	exclusive_price    *float64
	addexclusive_price *float64
	status             *track.Status
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	producer           *int
	clearedproducer    bool
	sales              map[int]struct{}
	removedsales       map[int]struct{}
	clearedsales       bool
	done               bool
	oldValue           func(context.Context) (*Track, error)
	predicates         []predicate.Track
}

var _ ent.Mutation = (*TrackMutation)(nil)

// trackOption allows management of the mutation configuration using functional options.
type trackOption func(*TrackMutation)

// newTrackMutation creates new mutation for the Track entity.
func newTrackMutation(c config, op Op, opts ...trackOption) *TrackMutation {
	m := &TrackMutation{
		config:        c,
		op:            op,
		typ:           TypeTrack,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTrackID sets the ID field of the mutation.
func withTrackID(id int) trackOption {
	return func(m *TrackMutation) {
		var (
			err   error
			once  sync.Once
			value *Track
		)
		m.oldValue = func(ctx context.Context) (*Track, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Track.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTrack sets the old Track of the mutation.
func withTrack(node *Track) trackOption {
	return func(m *TrackMutation) {
		m.oldValue = func(context.Context) (*Track, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TrackMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TrackMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TrackMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TrackMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Track.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProducerID sets the "producer_id" field.
func (m *TrackMutation) SetProducerID(i int) {
	m.producer = &i
}

// ProducerID returns the value of the "producer_id" field in the mutation.
func (m *TrackMutation) ProducerID() (r int, exists bool) {
	v := m.producer
	if v == nil {
		return
	}
	return *v, true
}

// OldProducerID returns the old "producer_id" field's value of the Track entity.
// If the Track object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackMutation) OldProducerID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProducerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProducerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProducerID: %w", err)
	}
	return oldValue.ProducerID, nil
}

// ResetProducerID resets all changes to the "producer_id" field.
func (m *TrackMutation) ResetProducerID() {
	m.producer = nil
}

// SetTitle sets the "title" field.
func (m *TrackMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TrackMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Track entity.
// If the Track object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *TrackMutation) ResetTitle() {
	m.title = nil
}

// SetGenre sets the "genre" field.
func (m *TrackMutation) SetGenre(s string) {
	m.genre = &s
}

// Genre returns the value of the "genre" field in the mutation.
func (m *TrackMutation) Genre() (r string, exists bool) {
	v := m.genre
	if v == nil {
		return
	}
	return *v, true
}

// OldGenre returns the old "genre" field's value of the Track entity.
// If the Track object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackMutation) OldGenre(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGenre is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGenre requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGenre: %w", err)
	}
	return oldValue.Genre, nil
}

// ClearGenre clears the value of the "genre" field.
func (m *TrackMutation) ClearGenre() {
	m.genre = nil
	m.clearedFields[track.FieldGenre] = struct{}{}
}

// GenreCleared returns if the "genre" field was cleared in this mutation.
func (m *TrackMutation) GenreCleared() bool {
	_, ok := m.clearedFields[track.FieldGenre]
	return ok
}

// ResetGenre resets all changes to the "genre" field.
func (m *TrackMutation) ResetGenre() {
	m.genre = nil
	delete(m.clearedFields, track.FieldGenre)
}

// SetBpm sets the "bpm" field.
func (m *TrackMutation) SetBpm(i int) {
	m.bpm = &i
	m.addbpm = nil
}

// Bpm returns the value of the "bpm" field in the mutation.
func (m *TrackMutation) Bpm() (r int, exists bool) {
	v := m.bpm
	if v == nil {
		return
	}
	return *v, true
}

// OldBpm returns the old "bpm" field's value of the Track entity.
// If the Track object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackMutation) OldBpm(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBpm is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBpm requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBpm: %w", err)
	}
	return oldValue.Bpm, nil
}

// AddBpm adds i to the "bpm" field.
func (m *TrackMutation) AddBpm(i int) {
	if m.addbpm != nil {
		*m.addbpm += i
	} else {
		m.addbpm = &i
	}
}

// AddedBpm returns the value that was added to the "bpm" field in this mutation.
func (m *TrackMutation) AddedBpm() (r int, exists bool) {
	v := m.addbpm
	if v == nil {
		return
	}
	return *v, true
}

// ClearBpm clears the value of the "bpm" field.
func (m *TrackMutation) ClearBpm() {
	m.bpm = nil
	m.addbpm = nil
	m.clearedFields[track.FieldBpm] = struct{}{}
}

// BpmCleared returns if the "bpm" field was cleared in this mutation.
func (m *TrackMutation) BpmCleared() bool {
	_, ok := m.clearedFields[track.FieldBpm]
	return ok
}

// ResetBpm resets all changes to the "bpm" field.
func (m *TrackMutation) ResetBpm() {
	m.bpm = nil
	m.addbpm = nil
	delete(m.clearedFields, track.FieldBpm)
}

// SetStandardPrice sets the "standard_price" field.
func (m *TrackMutation) SetStandardPrice(f float64) {
	m.standard_price = &f
	m.addstandard_price = nil
}

// StandardPrice returns the value of the "standard_price" field in the mutation.
func (m *TrackMutation) StandardPrice() (r float64, exists bool) {
	v := m.standard_price
	if v == nil {
		return
	}
	return *v, true
}

// OldStandardPrice returns the old "standard_price" field's value of the Track entity.
// If the Track object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackMutation) OldStandardPrice(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStandardPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStandardPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStandardPrice: %w", err)
	}
	return oldValue.StandardPrice, nil
}

// AddStandardPrice adds f to the "standard_price" field.
func (m *TrackMutation) AddStandardPrice(f float64) {
	if m.addstandard_price != nil {
		*m.addstandard_price += f
	} else {
		m.addstandard_price = &f
	}
}

// AddedStandardPrice returns the value that was added to the "standard_price" field in this mutation.
func (m *TrackMutation) AddedStandardPrice() (r float64, exists bool) {
	v := m.addstandard_price
	if v == nil {
		return
	}
	return *v, true
}

// ResetStandardPrice resets all changes to the "standard_price" field.
func (m *TrackMutation) ResetStandardPrice() {
	m.standard_price = nil
	m.addstandard_price = nil
}

// SetExclusivePrice sets the "exclusive_price" field.
func (m *TrackMutation) SetExclusivePrice(f float64) {
	m.exclusive_price = &f
	m.addexclusive_price = nil
}

// ExclusivePrice returns the value of the "exclusive_price" field in the mutation.
func (m *TrackMutation) ExclusivePrice() (r float64, exists bool) {
	v := m.exclusive_price
	if v == nil {
		return
	}
	return *v, true
}

// OldExclusivePrice returns the old "exclusive_price" field's value of the Track entity.
// If the Track object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackMutation) OldExclusivePrice(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExclusivePrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExclusivePrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExclusivePrice: %w", err)
	}
	return oldValue.ExclusivePrice, nil
}

// AddExclusivePrice adds f to the "exclusive_price" field.
func (m *TrackMutation) AddExclusivePrice(f float64) {
	if m.addexclusive_price != nil {
		*m.addexclusive_price += f
	} else {
		m.addexclusive_price = &f
	}
}

// AddedExclusivePrice returns the value that was added to the "exclusive_price" field in this mutation.
func (m *TrackMutation) AddedExclusivePrice() (r float64, exists bool) {
	v := m.addexclusive_price
	if v == nil {
		return
	}
	return *v, true
}

// ResetExclusivePrice resets all changes to the "exclusive_price" field.
func (m *TrackMutation) ResetExclusivePrice() {
	m.exclusive_price = nil
	m.addexclusive_price = nil
}

// SetStatus sets the "status" field.
func (m *TrackMutation) SetStatus(t track.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TrackMutation) Status() (r track.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Track entity.
// If the Track object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackMutation) OldStatus(ctx context.Context) (v track.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TrackMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TrackMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TrackMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Track entity.
// If the Track object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TrackMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TrackMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TrackMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Track entity.
// If the Track object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TrackMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProducer clears the "producer" edge to the User entity.
func (m *TrackMutation) ClearProducer() {
	m.clearedproducer = true
	m.clearedFields[track.FieldProducerID] = struct{}{}
}

// ProducerCleared reports if the "producer" edge to the User entity was cleared.
func (m *TrackMutation) ProducerCleared() bool {
	return m.clearedproducer
}

// ProducerIDs returns the "producer" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProducerID instead. It exists only for internal usage by the builders.
func (m *TrackMutation) ProducerIDs() (ids []int) {
	if id := m.producer; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProducer resets all changes to the "producer" edge.
func (m *TrackMutation) ResetProducer() {
	m.producer = nil
	m.clearedproducer = false
}

// AddSaleIDs adds the "sales" edge to the Sale entity by ids.
func (m *TrackMutation) AddSaleIDs(ids ...int) {
	if m.sales == nil {
		m.sales = make(map[int]struct{})
	}
	for i := range ids {
		m.sales[ids[i]] = struct{}{}
	}
}

// ClearSales clears the "sales" edge to the Sale entity.
func (m *TrackMutation) ClearSales() {
	m.clearedsales = true
}

// SalesCleared reports if the "sales" edge to the Sale entity was cleared.
func (m *TrackMutation) SalesCleared() bool {
	return m.clearedsales
}

// RemoveSaleIDs removes the "sales" edge to the Sale entity by IDs.
func (m *TrackMutation) RemoveSaleIDs(ids ...int) {
	if m.removedsales == nil {
		m.removedsales = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.sales, ids[i])
		m.removedsales[ids[i]] = struct{}{}
	}
}

// RemovedSales returns the removed IDs of the "sales" edge to the Sale entity.
func (m *TrackMutation) RemovedSalesIDs() (ids []int) {
	for id := range m.removedsales {
		ids = append(ids, id)
	}
	return
}

// SalesIDs returns the "sales" edge IDs in the mutation.
func (m *TrackMutation) SalesIDs() (ids []int) {
	for id := range m.sales {
		ids = append(ids, id)
	}
	return
}

// ResetSales resets all changes to the "sales" edge.
func (m *TrackMutation) ResetSales() {
	m.sales = nil
	m.clearedsales = false
	m.removedsales = nil
}

// Where appends a list predicates to the TrackMutation builder.
func (m *TrackMutation) Where(ps ...predicate.Track) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TrackMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TrackMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Track, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TrackMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TrackMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Track).
func (m *TrackMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TrackMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.producer != nil {
		fields = append(fields, track.FieldProducerID)
	}
	if m.title != nil {
		fields = append(fields, track.FieldTitle)
	}
	if m.genre != nil {
		fields = append(fields, track.FieldGenre)
	}
	if m.bpm != nil {
		fields = append(fields, track.FieldBpm)
	}
	if m.standard_price != nil {
		fields = append(fields, track.FieldStandardPrice)
	}
	if m.exclusive_price != nil {
		fields = append(fields, track.FieldExclusivePrice)
	}
	if m.status != nil {
		fields = append(fields, track.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, track.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, track.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TrackMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case track.FieldProducerID:
		return m.ProducerID()
	case track.FieldTitle:
		return m.Title()
	case track.FieldGenre:
		return m.Genre()
	case track.FieldBpm:
		return m.Bpm()
	case track.FieldStandardPrice:
		return m.StandardPrice()
	case track.FieldExclusivePrice:
		return m.ExclusivePrice()
	case track.FieldStatus:
		return m.Status()
	case track.FieldCreatedAt:
		return m.CreatedAt()
	case track.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TrackMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case track.FieldProducerID:
		return m.OldProducerID(ctx)
	case track.FieldTitle:
		return m.OldTitle(ctx)
	case track.FieldGenre:
		return m.OldGenre(ctx)
	case track.FieldBpm:
		return m.OldBpm(ctx)
	case track.FieldStandardPrice:
		return m.OldStandardPrice(ctx)
	case track.FieldExclusivePrice:
		return m.OldExclusivePrice(ctx)
	case track.FieldStatus:
		return m.OldStatus(ctx)
	case track.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case track.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Track field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrackMutation) SetField(name string, value ent.Value) error {
	switch name {
	case track.FieldProducerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProducerID(v)
		return nil
	case track.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case track.FieldGenre:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGenre(v)
		return nil
	case track.FieldBpm:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBpm(v)
		return nil
	case track.FieldStandardPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStandardPrice(v)
		return nil
	case track.FieldExclusivePrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExclusivePrice(v)
		return nil
	case track.FieldStatus:
		v, ok := value.(track.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case track.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case track.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Track field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TrackMutation) AddedFields() []string {
	var fields []string
	if m.addbpm != nil {
		fields = append(fields, track.FieldBpm)
	}
	if m.addstandard_price != nil {
		fields = append(fields, track.FieldStandardPrice)
	}
	if m.addexclusive_price != nil {
		fields = append(fields, track.FieldExclusivePrice)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TrackMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case track.FieldBpm:
		return m.AddedBpm()
	case track.FieldStandardPrice:
		return m.AddedStandardPrice()
	case track.FieldExclusivePrice:
		return m.AddedExclusivePrice()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrackMutation) AddField(name string, value ent.Value) error {
	switch name {
	case track.FieldBpm:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBpm(v)
		return nil
	case track.FieldStandardPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStandardPrice(v)
		return nil
	case track.FieldExclusivePrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExclusivePrice(v)
		return nil
	}
	return fmt.Errorf("unknown Track numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TrackMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(track.FieldGenre) {
		fields = append(fields, track.FieldGenre)
	}
	if m.FieldCleared(track.FieldBpm) {
		fields = append(fields, track.FieldBpm)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TrackMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TrackMutation) ClearField(name string) error {
	switch name {
	case track.FieldGenre:
		m.ClearGenre()
		return nil
	case track.FieldBpm:
		m.ClearBpm()
		return nil
	}
	return fmt.Errorf("unknown Track nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TrackMutation) ResetField(name string) error {
	switch name {
	case track.FieldProducerID:
		m.ResetProducerID()
		return nil
	case track.FieldTitle:
		m.ResetTitle()
		return nil
	case track.FieldGenre:
		m.ResetGenre()
		return nil
	case track.FieldBpm:
		m.ResetBpm()
		return nil
	case track.FieldStandardPrice:
		m.ResetStandardPrice()
		return nil
	case track.FieldExclusivePrice:
		m.ResetExclusivePrice()
		return nil
	case track.FieldStatus:
		m.ResetStatus()
		return nil
	case track.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case track.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Track field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TrackMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.producer != nil {
		edges = append(edges, track.EdgeProducer)
	}
	if m.sales != nil {
		edges = append(edges, track.EdgeSales)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TrackMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case track.EdgeProducer:
		if id := m.producer; id != nil {
			return []ent.Value{*id}
		}
	case track.EdgeSales:
		ids := make([]ent.Value, 0, len(m.sales))
		for id := range m.sales {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TrackMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsales != nil {
		edges = append(edges, track.EdgeSales)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TrackMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case track.EdgeSales:
		ids := make([]ent.Value, 0, len(m.removedsales))
		for id := range m.removedsales {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TrackMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedproducer {
		edges = append(edges, track.EdgeProducer)
	}
	if m.clearedsales {
		edges = append(edges, track.EdgeSales)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TrackMutation) EdgeCleared(name string) bool {
	switch name {
	case track.EdgeProducer:
		return m.clearedproducer
	case track.EdgeSales:
		return m.clearedsales
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TrackMutation) ClearEdge(name string) error {
	switch name {
	case track.EdgeProducer:
		m.ClearProducer()
		return nil
	}
	return fmt.Errorf("unknown Track unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TrackMutation) ResetEdge(name string) error {
	switch name {
	case track.EdgeProducer:
		m.ResetProducer()
		return nil
	case track.EdgeSales:
		m.ResetSales()
		return nil
	}
	return fmt.Errorf("unknown Track edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op               Op
	typ              string
	id               *int
	email            *string
	password_hash    *string
	name             *string
	role             *user.Role
	artist_name      *string
	wallet_address   *string
	active           *bool
	deleted_at       *time.Time
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	tracks           map[int]struct{}
	removedtracks    map[int]struct{}
	clearedtracks    bool
	payouts          map[int]struct{}
	removedpayouts   map[int]struct{}
	clearedpayouts   bool
	purchases        map[int]struct{}
	removedpurchases map[int]struct{}
	clearedpurchases bool
	done             bool
	oldValue         func(context.Context) (*User, error)
	predicates       []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id int) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetName sets the "name" field.
func (m *UserMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *UserMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *UserMutation) ResetName() {
	m.name = nil
}

// SetRole sets the "role" field.
func (m *UserMutation) SetRole(u user.Role) {
	m.role = &u
}

// Role returns the value of the "role" field in the mutation.
func (m *UserMutation) Role() (r user.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRole(ctx context.Context) (v user.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *UserMutation) ResetRole() {
	m.role = nil
}

// SetArtistName sets the "artist_name" field.
func (m *UserMutation) SetArtistName(s string) {
	m.artist_name = &s
}

// ArtistName returns the value of the "artist_name" field in the mutation.
func (m *UserMutation) ArtistName() (r string, exists bool) {
	v := m.artist_name
	if v == nil {
		return
	}
	return *v, true
}

// OldArtistName returns the old "artist_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldArtistName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArtistName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArtistName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArtistName: %w", err)
	}
	return oldValue.ArtistName, nil
}

// ClearArtistName clears the value of the "artist_name" field.
func (m *UserMutation) ClearArtistName() {
	m.artist_name = nil
	m.clearedFields[user.FieldArtistName] = struct{}{}
}

// ArtistNameCleared returns if the "artist_name" field was cleared in this mutation.
func (m *UserMutation) ArtistNameCleared() bool {
	_, ok := m.clearedFields[user.FieldArtistName]
	return ok
}

// ResetArtistName resets all changes to the "artist_name" field.
func (m *UserMutation) ResetArtistName() {
	m.artist_name = nil
	delete(m.clearedFields, user.FieldArtistName)
}

// SetWalletAddress sets the "wallet_address" field.
func (m *UserMutation) SetWalletAddress(s string) {
	m.wallet_address = &s
}

// WalletAddress returns the value of the "wallet_address" field in the mutation.
func (m *UserMutation) WalletAddress() (r string, exists bool) {
	v := m.wallet_address
	if v == nil {
		return
	}
	return *v, true
}

// OldWalletAddress returns the old "wallet_address" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldWalletAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWalletAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWalletAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWalletAddress: %w", err)
	}
	return oldValue.WalletAddress, nil
}

// ClearWalletAddress clears the value of the "wallet_address" field.
func (m *UserMutation) ClearWalletAddress() {
	m.wallet_address = nil
	m.clearedFields[user.FieldWalletAddress] = struct{}{}
}

// WalletAddressCleared returns if the "wallet_address" field was cleared in this mutation.
func (m *UserMutation) WalletAddressCleared() bool {
	_, ok := m.clearedFields[user.FieldWalletAddress]
	return ok
}

// ResetWalletAddress resets all changes to the "wallet_address" field.
func (m *UserMutation) ResetWalletAddress() {
	m.wallet_address = nil
	delete(m.clearedFields, user.FieldWalletAddress)
}

// SetActive sets the "active" field.
func (m *UserMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *UserMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *UserMutation) ResetActive() {
	m.active = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *UserMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *UserMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *UserMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[user.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *UserMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[user.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *UserMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, user.FieldDeletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddTrackIDs adds the "tracks" edge to the Track entity by ids.
func (m *UserMutation) AddTrackIDs(ids ...int) {
	if m.tracks == nil {
		m.tracks = make(map[int]struct{})
	}
	for i := range ids {
		m.tracks[ids[i]] = struct{}{}
	}
}

// ClearTracks clears the "tracks" edge to the Track entity.
func (m *UserMutation) ClearTracks() {
	m.clearedtracks = true
}

// TracksCleared reports if the "tracks" edge to the Track entity was cleared.
func (m *UserMutation) TracksCleared() bool {
	return m.clearedtracks
}

// RemoveTrackIDs removes the "tracks" edge to the Track entity by IDs.
func (m *UserMutation) RemoveTrackIDs(ids ...int) {
	if m.removedtracks == nil {
		m.removedtracks = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.tracks, ids[i])
		m.removedtracks[ids[i]] = struct{}{}
	}
}

// RemovedTracks returns the removed IDs of the "tracks" edge to the Track entity.
func (m *UserMutation) RemovedTracksIDs() (ids []int) {
	for id := range m.removedtracks {
		ids = append(ids, id)
	}
	return
}

// TracksIDs returns the "tracks" edge IDs in the mutation.
func (m *UserMutation) TracksIDs() (ids []int) {
	for id := range m.tracks {
		ids = append(ids, id)
	}
	return
}

// ResetTracks resets all changes to the "tracks" edge.
func (m *UserMutation) ResetTracks() {
	m.tracks = nil
	m.clearedtracks = false
	m.removedtracks = nil
}

// AddPayoutIDs adds the "payouts" edge to the PayoutRecord entity by ids.
func (m *UserMutation) AddPayoutIDs(ids ...int) {
	if m.payouts == nil {
		m.payouts = make(map[int]struct{})
	}
	for i := range ids {
		m.payouts[ids[i]] = struct{}{}
	}
}

// ClearPayouts clears the "payouts" edge to the PayoutRecord entity.
func (m *UserMutation) ClearPayouts() {
	m.clearedpayouts = true
}

// PayoutsCleared reports if the "payouts" edge to the PayoutRecord entity was cleared.
func (m *UserMutation) PayoutsCleared() bool {
	return m.clearedpayouts
}

// RemovePayoutIDs removes the "payouts" edge to the PayoutRecord entity by IDs.
func (m *UserMutation) RemovePayoutIDs(ids ...int) {
	if m.removedpayouts == nil {
		m.removedpayouts = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.payouts, ids[i])
		m.removedpayouts[ids[i]] = struct{}{}
	}
}

// RemovedPayouts returns the removed IDs of the "payouts" edge to the PayoutRecord entity.
func (m *UserMutation) RemovedPayoutsIDs() (ids []int) {
	for id := range m.removedpayouts {
		ids = append(ids, id)
	}
	return
}

// PayoutsIDs returns the "payouts" edge IDs in the mutation.
func (m *UserMutation) PayoutsIDs() (ids []int) {
	for id := range m.payouts {
		ids = append(ids, id)
	}
	return
}

// ResetPayouts resets all changes to the "payouts" edge.
func (m *UserMutation) ResetPayouts() {
	m.payouts = nil
	m.clearedpayouts = false
	m.removedpayouts = nil
}

// AddPurchaseIDs adds the "purchases" edge to the Sale entity by ids.
func (m *UserMutation) AddPurchaseIDs(ids ...int) {
	if m.purchases == nil {
		m.purchases = make(map[int]struct{})
	}
	for i := range ids {
		m.purchases[ids[i]] = struct{}{}
	}
}

// ClearPurchases clears the "purchases" edge to the Sale entity.
func (m *UserMutation) ClearPurchases() {
	m.clearedpurchases = true
}

// PurchasesCleared reports if the "purchases" edge to the Sale entity was cleared.
func (m *UserMutation) PurchasesCleared() bool {
	return m.clearedpurchases
}

// RemovePurchaseIDs removes the "purchases" edge to the Sale entity by IDs.
func (m *UserMutation) RemovePurchaseIDs(ids ...int) {
	if m.removedpurchases == nil {
		m.removedpurchases = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.purchases, ids[i])
		m.removedpurchases[ids[i]] = struct{}{}
	}
}

// RemovedPurchases returns the removed IDs of the "purchases" edge to the Sale entity.
func (m *UserMutation) RemovedPurchasesIDs() (ids []int) {
	for id := range m.removedpurchases {
		ids = append(ids, id)
	}
	return
}

// PurchasesIDs returns the "purchases" edge IDs in the mutation.
func (m *UserMutation) PurchasesIDs() (ids []int) {
	for id := range m.purchases {
		ids = append(ids, id)
	}
	return
}

// ResetPurchases resets all changes to the "purchases" edge.
func (m *UserMutation) ResetPurchases() {
	m.purchases = nil
	m.clearedpurchases = false
	m.removedpurchases = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.name != nil {
		fields = append(fields, user.FieldName)
	}
	if m.role != nil {
		fields = append(fields, user.FieldRole)
	}
	if m.artist_name != nil {
		fields = append(fields, user.FieldArtistName)
	}
	if m.wallet_address != nil {
		fields = append(fields, user.FieldWalletAddress)
	}
	if m.active != nil {
		fields = append(fields, user.FieldActive)
	}
	if m.deleted_at != nil {
		fields = append(fields, user.FieldDeletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldEmail:
		return m.Email()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldName:
		return m.Name()
	case user.FieldRole:
		return m.Role()
	case user.FieldArtistName:
		return m.ArtistName()
	case user.FieldWalletAddress:
		return m.WalletAddress()
	case user.FieldActive:
		return m.Active()
	case user.FieldDeletedAt:
		return m.DeletedAt()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldName:
		return m.OldName(ctx)
	case user.FieldRole:
		return m.OldRole(ctx)
	case user.FieldArtistName:
		return m.OldArtistName(ctx)
	case user.FieldWalletAddress:
		return m.OldWalletAddress(ctx)
	case user.FieldActive:
		return m.OldActive(ctx)
	case user.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case user.FieldRole:
		v, ok := value.(user.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case user.FieldArtistName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArtistName(v)
		return nil
	case user.FieldWalletAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWalletAddress(v)
		return nil
	case user.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case user.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldArtistName) {
		fields = append(fields, user.FieldArtistName)
	}
	if m.FieldCleared(user.FieldWalletAddress) {
		fields = append(fields, user.FieldWalletAddress)
	}
	if m.FieldCleared(user.FieldDeletedAt) {
		fields = append(fields, user.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldArtistName:
		m.ClearArtistName()
		return nil
	case user.FieldWalletAddress:
		m.ClearWalletAddress()
		return nil
	case user.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldName:
		m.ResetName()
		return nil
	case user.FieldRole:
		m.ResetRole()
		return nil
	case user.FieldArtistName:
		m.ResetArtistName()
		return nil
	case user.FieldWalletAddress:
		m.ResetWalletAddress()
		return nil
	case user.FieldActive:
		m.ResetActive()
		return nil
	case user.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.tracks != nil {
		edges = append(edges, user.EdgeTracks)
	}
	if m.payouts != nil {
		edges = append(edges, user.EdgePayouts)
	}
	if m.purchases != nil {
		edges = append(edges, user.EdgePurchases)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeTracks:
		ids := make([]ent.Value, 0, len(m.tracks))
		for id := range m.tracks {
			ids = append(ids, id)
		}
		return ids
	case user.EdgePayouts:
		ids := make([]ent.Value, 0, len(m.payouts))
		for id := range m.payouts {
			ids = append(ids, id)
		}
		return ids
	case user.EdgePurchases:
		ids := make([]ent.Value, 0, len(m.purchases))
		for id := range m.purchases {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedtracks != nil {
		edges = append(edges, user.EdgeTracks)
	}
	if m.removedpayouts != nil {
		edges = append(edges, user.EdgePayouts)
	}
	if m.removedpurchases != nil {
		edges = append(edges, user.EdgePurchases)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeTracks:
		ids := make([]ent.Value, 0, len(m.removedtracks))
		for id := range m.removedtracks {
			ids = append(ids, id)
		}
		return ids
	case user.EdgePayouts:
		ids := make([]ent.Value, 0, len(m.removedpayouts))
		for id := range m.removedpayouts {
			ids = append(ids, id)
		}
		return ids
	case user.EdgePurchases:
		ids := make([]ent.Value, 0, len(m.removedpurchases))
		for id := range m.removedpurchases {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedtracks {
		edges = append(edges, user.EdgeTracks)
	}
	if m.clearedpayouts {
		edges = append(edges, user.EdgePayouts)
	}
	if m.clearedpurchases {
		edges = append(edges, user.EdgePurchases)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeTracks:
		return m.clearedtracks
	case user.EdgePayouts:
		return m.clearedpayouts
	case user.EdgePurchases:
		return m.clearedpurchases
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeTracks:
		m.ResetTracks()
		return nil
	case user.EdgePayouts:
		m.ResetPayouts()
		return nil
	case user.EdgePurchases:
		m.ResetPurchases()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}
