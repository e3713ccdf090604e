// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tracklane/tracklane/ent/sale"
	"github.com/tracklane/tracklane/ent/track"
	"github.com/tracklane/tracklane/ent/user"
)

// Sale is the model entity for the Sale schema.
type Sale struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Licensed track ID
	TrackID int `json:"track_id,omitempty"`
	// Producer user ID (denormalized for payout aggregation)
	ProducerID int `json:"producer_id,omitempty"`
	// Buyer user ID
	BuyerID int `json:"buyer_id,omitempty"`
	// License granted by the purchase
	LicenseType sale.LicenseType `json:"license_type,omitempty"`
	// Gross sale amount in USD
	Amount float64 `json:"amount,omitempty"`
	// Payment status; only completed sales count toward earnings
	Status sale.Status `json:"status,omitempty"`
	// Stripe checkout session ID
	StripeSessionID string `json:"stripe_session_id,omitempty"`
	// Stripe payment intent ID
	StripePaymentIntentID string `json:"stripe_payment_intent_id,omitempty"`
	// Payment completion timestamp (earnings month bucket)
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SaleQuery when eager-loading is set.
	Edges        SaleEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SaleEdges holds the relations/edges for other nodes in the graph.
type SaleEdges struct {
	// Licensed track
	Track *Track `json:"track,omitempty"`
	// Purchasing user
	Buyer *User `json:"buyer,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// TrackOrErr returns the Track value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SaleEdges) TrackOrErr() (*Track, error) {
	if e.Track != nil {
		return e.Track, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: track.Label}
	}
	return nil, &NotLoadedError{edge: "track"}
}

// BuyerOrErr returns the Buyer value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SaleEdges) BuyerOrErr() (*User, error) {
	if e.Buyer != nil {
		return e.Buyer, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "buyer"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Sale) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sale.FieldAmount:
			values[i] = new(sql.NullFloat64)
		case sale.FieldID, sale.FieldTrackID, sale.FieldProducerID, sale.FieldBuyerID:
			values[i] = new(sql.NullInt64)
		case sale.FieldLicenseType, sale.FieldStatus, sale.FieldStripeSessionID, sale.FieldStripePaymentIntentID:
			values[i] = new(sql.NullString)
		case sale.FieldCompletedAt, sale.FieldCreatedAt, sale.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Sale fields.
func (_m *Sale) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sale.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sale.FieldTrackID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field track_id", values[i])
			} else if value.Valid {
				_m.TrackID = int(value.Int64)
			}
		case sale.FieldProducerID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field producer_id", values[i])
			} else if value.Valid {
				_m.ProducerID = int(value.Int64)
			}
		case sale.FieldBuyerID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field buyer_id", values[i])
			} else if value.Valid {
				_m.BuyerID = int(value.Int64)
			}
		case sale.FieldLicenseType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field license_type", values[i])
			} else if value.Valid {
				_m.LicenseType = sale.LicenseType(value.String)
			}
		case sale.FieldAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value.Valid {
				_m.Amount = value.Float64
			}
		case sale.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = sale.Status(value.String)
			}
		case sale.FieldStripeSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stripe_session_id", values[i])
			} else if value.Valid {
				_m.StripeSessionID = value.String
			}
		case sale.FieldStripePaymentIntentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stripe_payment_intent_id", values[i])
			} else if value.Valid {
				_m.StripePaymentIntentID = value.String
			}
		case sale.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case sale.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case sale.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Sale.
// This includes values selected through modifiers, order, etc.
func (_m *Sale) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTrack queries the "track" edge of the Sale entity.
func (_m *Sale) QueryTrack() *TrackQuery {
	return NewSaleClient(_m.config).QueryTrack(_m)
}

// QueryBuyer queries the "buyer" edge of the Sale entity.
func (_m *Sale) QueryBuyer() *UserQuery {
	return NewSaleClient(_m.config).QueryBuyer(_m)
}

// Update returns a builder for updating this Sale.
// Note that you need to call Sale.Unwrap() before calling this method if this Sale
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Sale) Update() *SaleUpdateOne {
	return NewSaleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Sale entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Sale) Unwrap() *Sale {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Sale is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Sale) String() string {
	var builder strings.Builder
	builder.WriteString("Sale(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("track_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TrackID))
	builder.WriteString(", ")
	builder.WriteString("producer_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProducerID))
	builder.WriteString(", ")
	builder.WriteString("buyer_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.BuyerID))
	builder.WriteString(", ")
	builder.WriteString("license_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.LicenseType))
	builder.WriteString(", ")
	builder.WriteString("amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.Amount))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("stripe_session_id=")
	builder.WriteString(_m.StripeSessionID)
	builder.WriteString(", ")
	builder.WriteString("stripe_payment_intent_id=")
	builder.WriteString(_m.StripePaymentIntentID)
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
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

// Sales is a parsable slice of Sale.
type Sales []*Sale
