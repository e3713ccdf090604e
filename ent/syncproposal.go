// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tracklane/tracklane/ent/syncproposal"
)

// SyncProposal is the model entity for the SyncProposal schema.
type SyncProposal struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Producer user ID
	ProducerID int `json:"producer_id,omitempty"`
	// Track proposed for sync placement
	TrackID int `json:"track_id,omitempty"`
	// Name of the film/TV/ad project
	ProjectName string `json:"project_name,omitempty"`
	// Negotiated sync fee in USD
	Fee float64 `json:"fee,omitempty"`
	// Proposal lifecycle status
	Status syncproposal.Status `json:"status,omitempty"`
	// Acceptance timestamp (earnings month bucket)
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SyncProposal) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case syncproposal.FieldFee:
			values[i] = new(sql.NullFloat64)
		case syncproposal.FieldID, syncproposal.FieldProducerID, syncproposal.FieldTrackID:
			values[i] = new(sql.NullInt64)
		case syncproposal.FieldProjectName, syncproposal.FieldStatus:
			values[i] = new(sql.NullString)
		case syncproposal.FieldAcceptedAt, syncproposal.FieldCreatedAt, syncproposal.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SyncProposal fields.
func (_m *SyncProposal) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case syncproposal.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case syncproposal.FieldProducerID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field producer_id", values[i])
			} else if value.Valid {
				_m.ProducerID = int(value.Int64)
			}
		case syncproposal.FieldTrackID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field track_id", values[i])
			} else if value.Valid {
				_m.TrackID = int(value.Int64)
			}
		case syncproposal.FieldProjectName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_name", values[i])
			} else if value.Valid {
				_m.ProjectName = value.String
			}
		case syncproposal.FieldFee:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field fee", values[i])
			} else if value.Valid {
				_m.Fee = value.Float64
			}
		case syncproposal.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = syncproposal.Status(value.String)
			}
		case syncproposal.FieldAcceptedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field accepted_at", values[i])
			} else if value.Valid {
				_m.AcceptedAt = new(time.Time)
				*_m.AcceptedAt = value.Time
			}
		case syncproposal.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case syncproposal.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SyncProposal.
// This includes values selected through modifiers, order, etc.
func (_m *SyncProposal) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SyncProposal.
// Note that you need to call SyncProposal.Unwrap() before calling this method if this SyncProposal
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SyncProposal) Update() *SyncProposalUpdateOne {
	return NewSyncProposalClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SyncProposal entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SyncProposal) Unwrap() *SyncProposal {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SyncProposal is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SyncProposal) String() string {
	var builder strings.Builder
	builder.WriteString("SyncProposal(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("producer_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProducerID))
	builder.WriteString(", ")
	builder.WriteString("track_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TrackID))
	builder.WriteString(", ")
	builder.WriteString("project_name=")
	builder.WriteString(_m.ProjectName)
	builder.WriteString(", ")
	builder.WriteString("fee=")
	builder.WriteString(fmt.Sprintf("%v", _m.Fee))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.AcceptedAt; v != nil {
		builder.WriteString("accepted_at=")
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

// SyncProposals is a parsable slice of SyncProposal.
type SyncProposals []*SyncProposal
