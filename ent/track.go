// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tracklane/tracklane/ent/track"
	"github.com/tracklane/tracklane/ent/user"
)

// Track is the model entity for the Track schema.
type Track struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Producer (owner) user ID
	ProducerID int `json:"producer_id,omitempty"`
	// Track title
	Title string `json:"title,omitempty"`
	// Primary genre
	Genre string `json:"genre,omitempty"`
	// Beats per minute
	Bpm int `json:"bpm,omitempty"`
	// Standard (non-exclusive) license price in USD
	StandardPrice float64 `json:"standard_price,omitempty"`
	// Exclusive license price in USD
	ExclusivePrice float64 `json:"exclusive_price,omitempty"`
	// Catalog status; exclusively_sold tracks are delisted
	Status track.Status `json:"status,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TrackQuery when eager-loading is set.
	Edges        TrackEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TrackEdges holds the relations/edges for other nodes in the graph.
type TrackEdges struct {
	// Track owner
	Producer *User `json:"producer,omitempty"`
	// Sales holds the value of the sales edge.
	Sales []*Sale `json:"sales,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ProducerOrErr returns the Producer value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TrackEdges) ProducerOrErr() (*User, error) {
	if e.Producer != nil {
		return e.Producer, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "producer"}
}

// SalesOrErr returns the Sales value or an error if the edge
// was not loaded in eager-loading.
func (e TrackEdges) SalesOrErr() ([]*Sale, error) {
	if e.loadedTypes[1] {
		return e.Sales, nil
	}
	return nil, &NotLoadedError{edge: "sales"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Track) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case track.FieldStandardPrice, track.FieldExclusivePrice:
			values[i] = new(sql.NullFloat64)
		case track.FieldID, track.FieldProducerID, track.FieldBpm:
			values[i] = new(sql.NullInt64)
		case track.FieldTitle, track.FieldGenre, track.FieldStatus:
			values[i] = new(sql.NullString)
		case track.FieldCreatedAt, track.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Track fields.
func (_m *Track) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case track.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case track.FieldProducerID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field producer_id", values[i])
			} else if value.Valid {
				_m.ProducerID = int(value.Int64)
			}
		case track.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case track.FieldGenre:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field genre", values[i])
			} else if value.Valid {
				_m.Genre = value.String
			}
		case track.FieldBpm:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field bpm", values[i])
			} else if value.Valid {
				_m.Bpm = int(value.Int64)
			}
		case track.FieldStandardPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field standard_price", values[i])
			} else if value.Valid {
				_m.StandardPrice = value.Float64
			}
		case track.FieldExclusivePrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field exclusive_price", values[i])
			} else if value.Valid {
				_m.ExclusivePrice = value.Float64
			}
		case track.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = track.Status(value.String)
			}
		case track.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case track.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Track.
// This includes values selected through modifiers, order, etc.
func (_m *Track) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProducer queries the "producer" edge of the Track entity.
func (_m *Track) QueryProducer() *UserQuery {
	return NewTrackClient(_m.config).QueryProducer(_m)
}

// QuerySales queries the "sales" edge of the Track entity.
func (_m *Track) QuerySales() *SaleQuery {
	return NewTrackClient(_m.config).QuerySales(_m)
}

// Update returns a builder for updating this Track.
// Note that you need to call Track.Unwrap() before calling this method if this Track
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Track) Update() *TrackUpdateOne {
	return NewTrackClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Track entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Track) Unwrap() *Track {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Track is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Track) String() string {
	var builder strings.Builder
	builder.WriteString("Track(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("producer_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProducerID))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("genre=")
	builder.WriteString(_m.Genre)
	builder.WriteString(", ")
	builder.WriteString("bpm=")
	builder.WriteString(fmt.Sprintf("%v", _m.Bpm))
	builder.WriteString(", ")
	builder.WriteString("standard_price=")
	builder.WriteString(fmt.Sprintf("%v", _m.StandardPrice))
	builder.WriteString(", ")
	builder.WriteString("exclusive_price=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExclusivePrice))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Tracks is a parsable slice of Track.
type Tracks []*Track
