// Code generated by ent, DO NOT EDIT.

package compensationsettings

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/tracklane/tracklane/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldLTE(FieldID, id))
}

// StandardRate applies equality check predicate on the "standard_rate" field. It's identical to StandardRateEQ.
func StandardRate(v float64) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldEQ(FieldStandardRate, v))
}

// ExclusiveRate applies equality check predicate on the "exclusive_rate" field. It's identical to ExclusiveRateEQ.
func ExclusiveRate(v float64) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldEQ(FieldExclusiveRate, v))
}

// SyncFeeRate applies equality check predicate on the "sync_fee_rate" field. It's identical to SyncFeeRateEQ.
func SyncFeeRate(v float64) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldEQ(FieldSyncFeeRate, v))
}

// VolumeBonusRate applies equality check predicate on the "volume_bonus_rate" field. It's identical to VolumeBonusRateEQ.
func VolumeBonusRate(v float64) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldEQ(FieldVolumeBonusRate, v))
}

// VolumeBonusThreshold applies equality check predicate on the "volume_bonus_threshold" field. It's identical to VolumeBonusThresholdEQ.
func VolumeBonusThreshold(v int) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldEQ(FieldVolumeBonusThreshold, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldEQ(FieldUpdatedAt, v))
}

// StandardRateEQ applies the EQ predicate on the "standard_rate" field.
func StandardRateEQ(v float64) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldEQ(FieldStandardRate, v))
}

// StandardRateNEQ applies the NEQ predicate on the "standard_rate" field.
func StandardRateNEQ(v float64) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldNEQ(FieldStandardRate, v))
}

// StandardRateIn applies the In predicate on the "standard_rate" field.
func StandardRateIn(vs ...float64) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldIn(FieldStandardRate, vs...))
}

// StandardRateNotIn applies the NotIn predicate on the "standard_rate" field.
func StandardRateNotIn(vs ...float64) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldNotIn(FieldStandardRate, vs...))
}

// StandardRateGT applies the GT predicate on the "standard_rate" field.
func StandardRateGT(v float64) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldGT(FieldStandardRate, v))
}

// StandardRateGTE applies the GTE predicate on the "standard_rate" field.
func StandardRateGTE(v float64) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldGTE(FieldStandardRate, v))
}

// StandardRateLT applies the LT predicate on the "standard_rate" field.
func StandardRateLT(v float64) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldLT(FieldStandardRate, v))
}

// StandardRateLTE applies the LTE predicate on the "standard_rate" field.
func StandardRateLTE(v float64) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldLTE(FieldStandardRate, v))
}

// ExclusiveRateEQ applies the EQ predicate on the "exclusive_rate" field.
func ExclusiveRateEQ(v float64) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldEQ(FieldExclusiveRate, v))
}

// ExclusiveRateNEQ applies the NEQ predicate on the "exclusive_rate" field.
func ExclusiveRateNEQ(v float64) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldNEQ(FieldExclusiveRate, v))
}

// ExclusiveRateIn applies the In predicate on the "exclusive_rate" field.
func ExclusiveRateIn(vs ...float64) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldIn(FieldExclusiveRate, vs...))
}

// ExclusiveRateNotIn applies the NotIn predicate on the "exclusive_rate" field.
func ExclusiveRateNotIn(vs ...float64) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldNotIn(FieldExclusiveRate, vs...))
}

// ExclusiveRateGT applies the GT predicate on the "exclusive_rate" field.
func ExclusiveRateGT(v float64) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldGT(FieldExclusiveRate, v))
}

// ExclusiveRateGTE applies the GTE predicate on the "exclusive_rate" field.
func ExclusiveRateGTE(v float64) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldGTE(FieldExclusiveRate, v))
}

// ExclusiveRateLT applies the LT predicate on the "exclusive_rate" field.
func ExclusiveRateLT(v float64) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldLT(FieldExclusiveRate, v))
}

// ExclusiveRateLTE applies the LTE predicate on the "exclusive_rate" field.
func ExclusiveRateLTE(v float64) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldLTE(FieldExclusiveRate, v))
}

// SyncFeeRateEQ applies the EQ predicate on the "sync_fee_rate" field.
func SyncFeeRateEQ(v float64) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldEQ(FieldSyncFeeRate, v))
}

// SyncFeeRateNEQ applies the NEQ predicate on the "sync_fee_rate" field.
func SyncFeeRateNEQ(v float64) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldNEQ(FieldSyncFeeRate, v))
}

// SyncFeeRateIn applies the In predicate on the "sync_fee_rate" field.
func SyncFeeRateIn(vs ...float64) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldIn(FieldSyncFeeRate, vs...))
}

// SyncFeeRateNotIn applies the NotIn predicate on the "sync_fee_rate" field.
func SyncFeeRateNotIn(vs ...float64) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldNotIn(FieldSyncFeeRate, vs...))
}

// SyncFeeRateGT applies the GT predicate on the "sync_fee_rate" field.
func SyncFeeRateGT(v float64) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldGT(FieldSyncFeeRate, v))
}

// SyncFeeRateGTE applies the GTE predicate on the "sync_fee_rate" field.
func SyncFeeRateGTE(v float64) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldGTE(FieldSyncFeeRate, v))
}

// SyncFeeRateLT applies the LT predicate on the "sync_fee_rate" field.
func SyncFeeRateLT(v float64) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldLT(FieldSyncFeeRate, v))
}

// SyncFeeRateLTE applies the LTE predicate on the "sync_fee_rate" field.
func SyncFeeRateLTE(v float64) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldLTE(FieldSyncFeeRate, v))
}

// VolumeBonusRateEQ applies the EQ predicate on the "volume_bonus_rate" field.
func VolumeBonusRateEQ(v float64) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldEQ(FieldVolumeBonusRate, v))
}

// VolumeBonusRateNEQ applies the NEQ predicate on the "volume_bonus_rate" field.
func VolumeBonusRateNEQ(v float64) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldNEQ(FieldVolumeBonusRate, v))
}

// VolumeBonusRateIn applies the In predicate on the "volume_bonus_rate" field.
func VolumeBonusRateIn(vs ...float64) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldIn(FieldVolumeBonusRate, vs...))
}

// VolumeBonusRateNotIn applies the NotIn predicate on the "volume_bonus_rate" field.
func VolumeBonusRateNotIn(vs ...float64) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldNotIn(FieldVolumeBonusRate, vs...))
}

// VolumeBonusRateGT applies the GT predicate on the "volume_bonus_rate" field.
func VolumeBonusRateGT(v float64) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldGT(FieldVolumeBonusRate, v))
}

// VolumeBonusRateGTE applies the GTE predicate on the "volume_bonus_rate" field.
func VolumeBonusRateGTE(v float64) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldGTE(FieldVolumeBonusRate, v))
}

// VolumeBonusRateLT applies the LT predicate on the "volume_bonus_rate" field.
func VolumeBonusRateLT(v float64) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldLT(FieldVolumeBonusRate, v))
}

// VolumeBonusRateLTE applies the LTE predicate on the "volume_bonus_rate" field.
func VolumeBonusRateLTE(v float64) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldLTE(FieldVolumeBonusRate, v))
}

// VolumeBonusThresholdEQ applies the EQ predicate on the "volume_bonus_threshold" field.
func VolumeBonusThresholdEQ(v int) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldEQ(FieldVolumeBonusThreshold, v))
}

// VolumeBonusThresholdNEQ applies the NEQ predicate on the "volume_bonus_threshold" field.
func VolumeBonusThresholdNEQ(v int) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldNEQ(FieldVolumeBonusThreshold, v))
}

// VolumeBonusThresholdIn applies the In predicate on the "volume_bonus_threshold" field.
func VolumeBonusThresholdIn(vs ...int) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldIn(FieldVolumeBonusThreshold, vs...))
}

// VolumeBonusThresholdNotIn applies the NotIn predicate on the "volume_bonus_threshold" field.
func VolumeBonusThresholdNotIn(vs ...int) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldNotIn(FieldVolumeBonusThreshold, vs...))
}

// VolumeBonusThresholdGT applies the GT predicate on the "volume_bonus_threshold" field.
func VolumeBonusThresholdGT(v int) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldGT(FieldVolumeBonusThreshold, v))
}

// VolumeBonusThresholdGTE applies the GTE predicate on the "volume_bonus_threshold" field.
func VolumeBonusThresholdGTE(v int) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldGTE(FieldVolumeBonusThreshold, v))
}

// VolumeBonusThresholdLT applies the LT predicate on the "volume_bonus_threshold" field.
func VolumeBonusThresholdLT(v int) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldLT(FieldVolumeBonusThreshold, v))
}

// VolumeBonusThresholdLTE applies the LTE predicate on the "volume_bonus_threshold" field.
func VolumeBonusThresholdLTE(v int) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldLTE(FieldVolumeBonusThreshold, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CompensationSettings) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CompensationSettings) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CompensationSettings) predicate.CompensationSettings {
	return predicate.CompensationSettings(sql.NotPredicates(p))
}
