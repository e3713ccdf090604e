// Code generated by ent, DO NOT EDIT.

package track

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the track type in the database.
	Label = "track"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProducerID holds the string denoting the producer_id field in the database.
	FieldProducerID = "producer_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldGenre holds the string denoting the genre field in the database.
	FieldGenre = "genre"
	// FieldBpm holds the string denoting the bpm field in the database.
	FieldBpm = "bpm"
	// FieldStandardPrice holds the string denoting the standard_price field in the database.
	FieldStandardPrice = "standard_price"
	// FieldExclusivePrice holds the string denoting the exclusive_price field in the database.
	FieldExclusivePrice = "exclusive_price"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeProducer holds the string denoting the producer edge name in mutations.
	EdgeProducer = "producer"
	// EdgeSales holds the string denoting the sales edge name in mutations.
	EdgeSales = "sales"
	// Table holds the table name of the track in the database.
	Table = "tracks"
	// ProducerTable is the table that holds the producer relation/edge.
	ProducerTable = "tracks"
	// ProducerInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	ProducerInverseTable = "users"
	// ProducerColumn is the table column denoting the producer relation/edge.
	ProducerColumn = "producer_id"
	// SalesTable is the table that holds the sales relation/edge.
	SalesTable = "sales"
	// SalesInverseTable is the table name for the Sale entity.
	// It exists in this package in order to avoid circular dependency with the "sale" package.
	SalesInverseTable = "sales"
	// SalesColumn is the table column denoting the sales relation/edge.
	SalesColumn = "track_id"
)

// Columns holds all SQL columns for track fields.
var Columns = []string{
	FieldID,
	FieldProducerID,
	FieldTitle,
	FieldGenre,
	FieldBpm,
	FieldStandardPrice,
	FieldExclusivePrice,
	FieldStatus,
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
	// ProducerIDValidator is a validator for the "producer_id" field. It is called by the builders before save.
	ProducerIDValidator func(int) error
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DefaultStandardPrice holds the default value on creation for the "standard_price" field.
	DefaultStandardPrice float64
	// DefaultExclusivePrice holds the default value on creation for the "exclusive_price" field.
	DefaultExclusivePrice float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusDraft is the default value of the Status enum.
const DefaultStatus = StatusDraft

// Status values.
const (
	StatusDraft           Status = "draft"
	StatusPublished       Status = "published"
	StatusExclusivelySold Status = "exclusively_sold"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusDraft, StatusPublished, StatusExclusivelySold:
		return nil
	default:
		return fmt.Errorf("track: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Track queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProducerID orders the results by the producer_id field.
func ByProducerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProducerID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByGenre orders the results by the genre field.
func ByGenre(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGenre, opts...).ToFunc()
}

// ByBpm orders the results by the bpm field.
func ByBpm(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBpm, opts...).ToFunc()
}

// ByStandardPrice orders the results by the standard_price field.
func ByStandardPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStandardPrice, opts...).ToFunc()
}

// ByExclusivePrice orders the results by the exclusive_price field.
func ByExclusivePrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExclusivePrice, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByProducerField orders the results by producer field.
func ByProducerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProducerStep(), sql.OrderByField(field, opts...))
	}
}

// BySalesCount orders the results by sales count.
func BySalesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSalesStep(), opts...)
	}
}

// BySales orders the results by sales terms.
func BySales(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSalesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newProducerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProducerInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProducerTable, ProducerColumn),
	)
}
func newSalesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SalesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SalesTable, SalesColumn),
	)
}
