// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tracklane/tracklane/ent/compensationsettings"
)

// CompensationSettings is the model entity for the CompensationSettings schema.
type CompensationSettings struct {
	config `json:"-"`
	// ID of the ent.
	// Caller-supplied ID; the settings row is always created with ID 1
	ID int `json:"id,omitempty"`
	// Producer share of standard license sales
	StandardRate float64 `json:"standard_rate,omitempty"`
	// Producer share of exclusive license sales
	ExclusiveRate float64 `json:"exclusive_rate,omitempty"`
	// Producer share of accepted sync fees
	SyncFeeRate float64 `json:"sync_fee_rate,omitempty"`
	// Bonus share applied to gross sales above the volume threshold
	VolumeBonusRate float64 `json:"volume_bonus_rate,omitempty"`
	// Completed sales count in the month required for the volume bonus
	VolumeBonusThreshold int `json:"volume_bonus_threshold,omitempty"`
	// Last update timestamp
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CompensationSettings) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case compensationsettings.FieldStandardRate, compensationsettings.FieldExclusiveRate, compensationsettings.FieldSyncFeeRate, compensationsettings.FieldVolumeBonusRate:
			values[i] = new(sql.NullFloat64)
		case compensationsettings.FieldID, compensationsettings.FieldVolumeBonusThreshold:
			values[i] = new(sql.NullInt64)
		case compensationsettings.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CompensationSettings fields.
func (_m *CompensationSettings) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case compensationsettings.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case compensationsettings.FieldStandardRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field standard_rate", values[i])
			} else if value.Valid {
				_m.StandardRate = value.Float64
			}
		case compensationsettings.FieldExclusiveRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field exclusive_rate", values[i])
			} else if value.Valid {
				_m.ExclusiveRate = value.Float64
			}
		case compensationsettings.FieldSyncFeeRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field sync_fee_rate", values[i])
			} else if value.Valid {
				_m.SyncFeeRate = value.Float64
			}
		case compensationsettings.FieldVolumeBonusRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field volume_bonus_rate", values[i])
			} else if value.Valid {
				_m.VolumeBonusRate = value.Float64
			}
		case compensationsettings.FieldVolumeBonusThreshold:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field volume_bonus_threshold", values[i])
			} else if value.Valid {
				_m.VolumeBonusThreshold = int(value.Int64)
			}
		case compensationsettings.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CompensationSettings.
// This includes values selected through modifiers, order, etc.
func (_m *CompensationSettings) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CompensationSettings.
// Note that you need to call CompensationSettings.Unwrap() before calling this method if this CompensationSettings
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CompensationSettings) Update() *CompensationSettingsUpdateOne {
	return NewCompensationSettingsClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CompensationSettings entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CompensationSettings) Unwrap() *CompensationSettings {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CompensationSettings is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CompensationSettings) String() string {
	var builder strings.Builder
	builder.WriteString("CompensationSettings(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("standard_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.StandardRate))
	builder.WriteString(", ")
	builder.WriteString("exclusive_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExclusiveRate))
	builder.WriteString(", ")
	builder.WriteString("sync_fee_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.SyncFeeRate))
	builder.WriteString(", ")
	builder.WriteString("volume_bonus_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.VolumeBonusRate))
	builder.WriteString(", ")
	builder.WriteString("volume_bonus_threshold=")
	builder.WriteString(fmt.Sprintf("%v", _m.VolumeBonusThreshold))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CompensationSettingsSlice is a parsable slice of CompensationSettings.
type CompensationSettingsSlice []*CompensationSettings
