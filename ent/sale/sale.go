// Code generated by ent, DO NOT EDIT.

package sale

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the sale type in the database.
	Label = "sale"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTrackID holds the string denoting the track_id field in the database.
	FieldTrackID = "track_id"
	// FieldProducerID holds the string denoting the producer_id field in the database.
	FieldProducerID = "producer_id"
	// FieldBuyerID holds the string denoting the buyer_id field in the database.
	FieldBuyerID = "buyer_id"
	// FieldLicenseType holds the string denoting the license_type field in the database.
	FieldLicenseType = "license_type"
	// FieldAmount holds the string denoting the amount field in the database.
	FieldAmount = "amount"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStripeSessionID holds the string denoting the stripe_session_id field in the database.
	FieldStripeSessionID = "stripe_session_id"
	// FieldStripePaymentIntentID holds the string denoting the stripe_payment_intent_id field in the database.
	FieldStripePaymentIntentID = "stripe_payment_intent_id"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeTrack holds the string denoting the track edge name in mutations.
	EdgeTrack = "track"
	// EdgeBuyer holds the string denoting the buyer edge name in mutations.
	EdgeBuyer = "buyer"
	// Table holds the table name of the sale in the database.
	Table = "sales"
	// TrackTable is the table that holds the track relation/edge.
	TrackTable = "sales"
	// TrackInverseTable is the table name for the Track entity.
	// It exists in this package in order to avoid circular dependency with the "track" package.
	TrackInverseTable = "tracks"
	// TrackColumn is the table column denoting the track relation/edge.
	TrackColumn = "track_id"
	// BuyerTable is the table that holds the buyer relation/edge.
	BuyerTable = "sales"
	// BuyerInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	BuyerInverseTable = "users"
	// BuyerColumn is the table column denoting the buyer relation/edge.
	BuyerColumn = "buyer_id"
)

// Columns holds all SQL columns for sale fields.
var Columns = []string{
	FieldID,
	FieldTrackID,
	FieldProducerID,
	FieldBuyerID,
	FieldLicenseType,
	FieldAmount,
	FieldStatus,
	FieldStripeSessionID,
	FieldStripePaymentIntentID,
	FieldCompletedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TrackIDValidator is a validator for the "track_id" field. It is called by the builders before save.
	TrackIDValidator func(int) error
	// ProducerIDValidator is a validator for the "producer_id" field. It is called by the builders before save.
	ProducerIDValidator func(int) error
	// BuyerIDValidator is a validator for the "buyer_id" field. It is called by the builders before save.
	BuyerIDValidator func(int) error
	// AmountValidator is a validator for the "amount" field. It is called by the builders before save.
	AmountValidator func(float64) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// LicenseType defines the type for the "license_type" enum field.
type LicenseType string

// LicenseType values.
const (
	LicenseTypeStandard  LicenseType = "standard"
	LicenseTypeExclusive LicenseType = "exclusive"
)

func (lt LicenseType) String() string {
	return string(lt)
}

// LicenseTypeValidator is a validator for the "license_type" field enum values. It is called by the builders before save.
func LicenseTypeValidator(lt LicenseType) error {
	switch lt {
	case LicenseTypeStandard, LicenseTypeExclusive:
		return nil
	default:
		return fmt.Errorf("sale: invalid enum value for license_type field: %q", lt)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusRefunded  Status = "refunded"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusCompleted, StatusRefunded:
		return nil
	default:
		return fmt.Errorf("sale: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Sale queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTrackID orders the results by the track_id field.
func ByTrackID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrackID, opts...).ToFunc()
}

// ByProducerID orders the results by the producer_id field.
func ByProducerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProducerID, opts...).ToFunc()
}

// ByBuyerID orders the results by the buyer_id field.
func ByBuyerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuyerID, opts...).ToFunc()
}

// ByLicenseType orders the results by the license_type field.
func ByLicenseType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLicenseType, opts...).ToFunc()
}

// ByAmount orders the results by the amount field.
func ByAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmount, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStripeSessionID orders the results by the stripe_session_id field.
func ByStripeSessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStripeSessionID, opts...).ToFunc()
}

// ByStripePaymentIntentID orders the results by the stripe_payment_intent_id field.
func ByStripePaymentIntentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStripePaymentIntentID, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTrackField orders the results by track field.
func ByTrackField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTrackStep(), sql.OrderByField(field, opts...))
	}
}

// ByBuyerField orders the results by buyer field.
func ByBuyerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBuyerStep(), sql.OrderByField(field, opts...))
	}
}
func newTrackStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TrackInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TrackTable, TrackColumn),
	)
}
func newBuyerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BuyerInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, BuyerTable, BuyerColumn),
	)
}
