// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tracklane/tracklane/ent/payoutrecord"
	"github.com/tracklane/tracklane/ent/user"
)

// PayoutRecord is the model entity for the PayoutRecord schema.
type PayoutRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Payee user ID
	ProducerID int `json:"producer_id,omitempty"`
	// Calendar month key, format YYYY-MM
	Month string `json:"month,omitempty"`
	// Computed earnings for the month in USD
	Amount float64 `json:"amount,omitempty"`
	// Disbursement status
	Status payoutrecord.Status `json:"status,omitempty"`
	// Payout destination snapshot taken at generation time
	WalletAddress string `json:"wallet_address,omitempty"`
	// External transfer ID, set only after a successful disbursement
	PaymentTransactionID *string `json:"payment_transaction_id,omitempty"`
	// Number of disbursement attempts so far
	RetryCount int `json:"retry_count,omitempty"`
	// Most recent disbursement error, cleared on success
	LastError string `json:"last_error,omitempty"`
	// Disbursement completion timestamp
	PaidAt *time.Time `json:"paid_at,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PayoutRecordQuery when eager-loading is set.
	Edges        PayoutRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PayoutRecordEdges holds the relations/edges for other nodes in the graph.
type PayoutRecordEdges struct {
	// Payee
	Producer *User `json:"producer,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProducerOrErr returns the Producer value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PayoutRecordEdges) ProducerOrErr() (*User, error) {
	if e.Producer != nil {
		return e.Producer, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "producer"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PayoutRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case payoutrecord.FieldAmount:
			values[i] = new(sql.NullFloat64)
		case payoutrecord.FieldID, payoutrecord.FieldProducerID, payoutrecord.FieldRetryCount:
			values[i] = new(sql.NullInt64)
		case payoutrecord.FieldMonth, payoutrecord.FieldStatus, payoutrecord.FieldWalletAddress, payoutrecord.FieldPaymentTransactionID, payoutrecord.FieldLastError:
			values[i] = new(sql.NullString)
		case payoutrecord.FieldPaidAt, payoutrecord.FieldCreatedAt, payoutrecord.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PayoutRecord fields.
func (_m *PayoutRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case payoutrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case payoutrecord.FieldProducerID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field producer_id", values[i])
			} else if value.Valid {
				_m.ProducerID = int(value.Int64)
			}
		case payoutrecord.FieldMonth:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field month", values[i])
			} else if value.Valid {
				_m.Month = value.String
			}
		case payoutrecord.FieldAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value.Valid {
				_m.Amount = value.Float64
			}
		case payoutrecord.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = payoutrecord.Status(value.String)
			}
		case payoutrecord.FieldWalletAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field wallet_address", values[i])
			} else if value.Valid {
				_m.WalletAddress = value.String
			}
		case payoutrecord.FieldPaymentTransactionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payment_transaction_id", values[i])
			} else if value.Valid {
				_m.PaymentTransactionID = new(string)
				*_m.PaymentTransactionID = value.String
			}
		case payoutrecord.FieldRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_count", values[i])
			} else if value.Valid {
				_m.RetryCount = int(value.Int64)
			}
		case payoutrecord.FieldLastError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_error", values[i])
			} else if value.Valid {
				_m.LastError = value.String
			}
		case payoutrecord.FieldPaidAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field paid_at", values[i])
			} else if value.Valid {
				_m.PaidAt = new(time.Time)
				*_m.PaidAt = value.Time
			}
		case payoutrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case payoutrecord.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the PayoutRecord.
// This includes values selected through modifiers, order, etc.
func (_m *PayoutRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProducer queries the "producer" edge of the PayoutRecord entity.
func (_m *PayoutRecord) QueryProducer() *UserQuery {
	return NewPayoutRecordClient(_m.config).QueryProducer(_m)
}

// Update returns a builder for updating this PayoutRecord.
// Note that you need to call PayoutRecord.Unwrap() before calling this method if this PayoutRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PayoutRecord) Update() *PayoutRecordUpdateOne {
	return NewPayoutRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PayoutRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PayoutRecord) Unwrap() *PayoutRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PayoutRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PayoutRecord) String() string {
	var builder strings.Builder
	builder.WriteString("PayoutRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("producer_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProducerID))
	builder.WriteString(", ")
	builder.WriteString("month=")
	builder.WriteString(_m.Month)
	builder.WriteString(", ")
	builder.WriteString("amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.Amount))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("wallet_address=")
	builder.WriteString(_m.WalletAddress)
	builder.WriteString(", ")
	if v := _m.PaymentTransactionID; v != nil {
		builder.WriteString("payment_transaction_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("retry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryCount))
	builder.WriteString(", ")
	builder.WriteString("last_error=")
	builder.WriteString(_m.LastError)
	builder.WriteString(", ")
	if v := _m.PaidAt; v != nil {
		builder.WriteString("paid_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PayoutRecords is a parsable slice of PayoutRecord.
type PayoutRecords []*PayoutRecord
