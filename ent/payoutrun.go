// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tracklane/tracklane/ent/payoutrun"
)

// PayoutRun is the model entity for the PayoutRun schema.
type PayoutRun struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Calendar month key, format YYYY-MM
	Month string `json:"month,omitempty"`
	// Which pipeline stage holds the run
	Kind payoutrun.Kind `json:"kind,omitempty"`
	// Run state; only running rows block a new run
	Status payoutrun.Status `json:"status,omitempty"`
	// Admin user ID that triggered the run (0 for cron)
	TriggeredBy int `json:"triggered_by,omitempty"`
	// Run start timestamp
	StartedAt time.Time `json:"started_at,omitempty"`
	// Run completion timestamp
	FinishedAt   *time.Time `json:"finished_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PayoutRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case payoutrun.FieldID, payoutrun.FieldTriggeredBy:
			values[i] = new(sql.NullInt64)
		case payoutrun.FieldMonth, payoutrun.FieldKind, payoutrun.FieldStatus:
			values[i] = new(sql.NullString)
		case payoutrun.FieldStartedAt, payoutrun.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PayoutRun fields.
func (_m *PayoutRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case payoutrun.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case payoutrun.FieldMonth:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field month", values[i])
			} else if value.Valid {
				_m.Month = value.String
			}
		case payoutrun.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = payoutrun.Kind(value.String)
			}
		case payoutrun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = payoutrun.Status(value.String)
			}
		case payoutrun.FieldTriggeredBy:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field triggered_by", values[i])
			} else if value.Valid {
				_m.TriggeredBy = int(value.Int64)
			}
		case payoutrun.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case payoutrun.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PayoutRun.
// This includes values selected through modifiers, order, etc.
func (_m *PayoutRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PayoutRun.
// Note that you need to call PayoutRun.Unwrap() before calling this method if this PayoutRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PayoutRun) Update() *PayoutRunUpdateOne {
	return NewPayoutRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PayoutRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PayoutRun) Unwrap() *PayoutRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PayoutRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PayoutRun) String() string {
	var builder strings.Builder
	builder.WriteString("PayoutRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("month=")
	builder.WriteString(_m.Month)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("triggered_by=")
	builder.WriteString(fmt.Sprintf("%v", _m.TriggeredBy))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// PayoutRuns is a parsable slice of PayoutRun.
type PayoutRuns []*PayoutRun
