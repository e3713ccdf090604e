// Code generated by ent, DO NOT EDIT.

package compensationsettings

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the compensationsettings type in the database.
	Label = "compensation_settings"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStandardRate holds the string denoting the standard_rate field in the database.
	FieldStandardRate = "standard_rate"
	// FieldExclusiveRate holds the string denoting the exclusive_rate field in the database.
	FieldExclusiveRate = "exclusive_rate"
	// FieldSyncFeeRate holds the string denoting the sync_fee_rate field in the database.
	FieldSyncFeeRate = "sync_fee_rate"
	// FieldVolumeBonusRate holds the string denoting the volume_bonus_rate field in the database.
	FieldVolumeBonusRate = "volume_bonus_rate"
	// FieldVolumeBonusThreshold holds the string denoting the volume_bonus_threshold field in the database.
	FieldVolumeBonusThreshold = "volume_bonus_threshold"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the compensationsettings in the database.
	Table = "compensation_settings"
)

// Columns holds all SQL columns for compensationsettings fields.
var Columns = []string{
	FieldID,
	FieldStandardRate,
	FieldExclusiveRate,
	FieldSyncFeeRate,
	FieldVolumeBonusRate,
	FieldVolumeBonusThreshold,
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
	// DefaultStandardRate holds the default value on creation for the "standard_rate" field.
	DefaultStandardRate float64
	// StandardRateValidator is a validator for the "standard_rate" field. It is called by the builders before save.
	StandardRateValidator func(float64) error
	// DefaultExclusiveRate holds the default value on creation for the "exclusive_rate" field.
	DefaultExclusiveRate float64
	// ExclusiveRateValidator is a validator for the "exclusive_rate" field. It is called by the builders before save.
	ExclusiveRateValidator func(float64) error
	// DefaultSyncFeeRate holds the default value on creation for the "sync_fee_rate" field.
	DefaultSyncFeeRate float64
	// SyncFeeRateValidator is a validator for the "sync_fee_rate" field. It is called by the builders before save.
	SyncFeeRateValidator func(float64) error
	// DefaultVolumeBonusRate holds the default value on creation for the "volume_bonus_rate" field.
	DefaultVolumeBonusRate float64
	// VolumeBonusRateValidator is a validator for the "volume_bonus_rate" field. It is called by the builders before save.
	VolumeBonusRateValidator func(float64) error
	// DefaultVolumeBonusThreshold holds the default value on creation for the "volume_bonus_threshold" field.
	DefaultVolumeBonusThreshold int
	// VolumeBonusThresholdValidator is a validator for the "volume_bonus_threshold" field. It is called by the builders before save.
	VolumeBonusThresholdValidator func(int) error
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the CompensationSettings queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStandardRate orders the results by the standard_rate field.
func ByStandardRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStandardRate, opts...).ToFunc()
}

// ByExclusiveRate orders the results by the exclusive_rate field.
func ByExclusiveRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExclusiveRate, opts...).ToFunc()
}

// BySyncFeeRate orders the results by the sync_fee_rate field.
func BySyncFeeRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSyncFeeRate, opts...).ToFunc()
}

// ByVolumeBonusRate orders the results by the volume_bonus_rate field.
func ByVolumeBonusRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVolumeBonusRate, opts...).ToFunc()
}

// ByVolumeBonusThreshold orders the results by the volume_bonus_threshold field.
func ByVolumeBonusThreshold(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVolumeBonusThreshold, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
