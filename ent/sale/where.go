// Code generated by ent, DO NOT EDIT.

package sale

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/tracklane/tracklane/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Sale {
	return predicate.Sale(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Sale {
	return predicate.Sale(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Sale {
	return predicate.Sale(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Sale {
	return predicate.Sale(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Sale {
	return predicate.Sale(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Sale {
	return predicate.Sale(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Sale {
	return predicate.Sale(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Sale {
	return predicate.Sale(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Sale {
	return predicate.Sale(sql.FieldLTE(FieldID, id))
}

// TrackID applies equality check predicate on the "track_id" field. It's identical to TrackIDEQ.
func TrackID(v int) predicate.Sale {
	return predicate.Sale(sql.FieldEQ(FieldTrackID, v))
}

// ProducerID applies equality check predicate on the "producer_id" field. It's identical to ProducerIDEQ.
func ProducerID(v int) predicate.Sale {
	return predicate.Sale(sql.FieldEQ(FieldProducerID, v))
}

// BuyerID applies equality check predicate on the "buyer_id" field. It's identical to BuyerIDEQ.
func BuyerID(v int) predicate.Sale {
	return predicate.Sale(sql.FieldEQ(FieldBuyerID, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v float64) predicate.Sale {
	return predicate.Sale(sql.FieldEQ(FieldAmount, v))
}

// StripeSessionID applies equality check predicate on the "stripe_session_id" field. It's identical to StripeSessionIDEQ.
func StripeSessionID(v string) predicate.Sale {
	return predicate.Sale(sql.FieldEQ(FieldStripeSessionID, v))
}

// StripePaymentIntentID applies equality check predicate on the "stripe_payment_intent_id" field. It's identical to StripePaymentIntentIDEQ.
func StripePaymentIntentID(v string) predicate.Sale {
	return predicate.Sale(sql.FieldEQ(FieldStripePaymentIntentID, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Sale {
	return predicate.Sale(sql.FieldEQ(FieldCompletedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Sale {
	return predicate.Sale(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Sale {
	return predicate.Sale(sql.FieldEQ(FieldUpdatedAt, v))
}

// TrackIDEQ applies the EQ predicate on the "track_id" field.
func TrackIDEQ(v int) predicate.Sale {
	return predicate.Sale(sql.FieldEQ(FieldTrackID, v))
}

// TrackIDNEQ applies the NEQ predicate on the "track_id" field.
func TrackIDNEQ(v int) predicate.Sale {
	return predicate.Sale(sql.FieldNEQ(FieldTrackID, v))
}

// TrackIDIn applies the In predicate on the "track_id" field.
func TrackIDIn(vs ...int) predicate.Sale {
	return predicate.Sale(sql.FieldIn(FieldTrackID, vs...))
}

// TrackIDNotIn applies the NotIn predicate on the "track_id" field.
func TrackIDNotIn(vs ...int) predicate.Sale {
	return predicate.Sale(sql.FieldNotIn(FieldTrackID, vs...))
}

// ProducerIDEQ applies the EQ predicate on the "producer_id" field.
func ProducerIDEQ(v int) predicate.Sale {
	return predicate.Sale(sql.FieldEQ(FieldProducerID, v))
}

// ProducerIDNEQ applies the NEQ predicate on the "producer_id" field.
func ProducerIDNEQ(v int) predicate.Sale {
	return predicate.Sale(sql.FieldNEQ(FieldProducerID, v))
}

// ProducerIDIn applies the In predicate on the "producer_id" field.
func ProducerIDIn(vs ...int) predicate.Sale {
	return predicate.Sale(sql.FieldIn(FieldProducerID, vs...))
}

// ProducerIDNotIn applies the NotIn predicate on the "producer_id" field.
func ProducerIDNotIn(vs ...int) predicate.Sale {
	return predicate.Sale(sql.FieldNotIn(FieldProducerID, vs...))
}

// ProducerIDGT applies the GT predicate on the "producer_id" field.
func ProducerIDGT(v int) predicate.Sale {
	return predicate.Sale(sql.FieldGT(FieldProducerID, v))
}

// ProducerIDGTE applies the GTE predicate on the "producer_id" field.
func ProducerIDGTE(v int) predicate.Sale {
	return predicate.Sale(sql.FieldGTE(FieldProducerID, v))
}

// ProducerIDLT applies the LT predicate on the "producer_id" field.
func ProducerIDLT(v int) predicate.Sale {
	return predicate.Sale(sql.FieldLT(FieldProducerID, v))
}

// ProducerIDLTE applies the LTE predicate on the "producer_id" field.
func ProducerIDLTE(v int) predicate.Sale {
	return predicate.Sale(sql.FieldLTE(FieldProducerID, v))
}

// BuyerIDEQ applies the EQ predicate on the "buyer_id" field.
func BuyerIDEQ(v int) predicate.Sale {
	return predicate.Sale(sql.FieldEQ(FieldBuyerID, v))
}

// BuyerIDNEQ applies the NEQ predicate on the "buyer_id" field.
func BuyerIDNEQ(v int) predicate.Sale {
	return predicate.Sale(sql.FieldNEQ(FieldBuyerID, v))
}

// BuyerIDIn applies the In predicate on the "buyer_id" field.
func BuyerIDIn(vs ...int) predicate.Sale {
	return predicate.Sale(sql.FieldIn(FieldBuyerID, vs...))
}

// BuyerIDNotIn applies the NotIn predicate on the "buyer_id" field.
func BuyerIDNotIn(vs ...int) predicate.Sale {
	return predicate.Sale(sql.FieldNotIn(FieldBuyerID, vs...))
}

// LicenseTypeEQ applies the EQ predicate on the "license_type" field.
func LicenseTypeEQ(v LicenseType) predicate.Sale {
	return predicate.Sale(sql.FieldEQ(FieldLicenseType, v))
}

// LicenseTypeNEQ applies the NEQ predicate on the "license_type" field.
func LicenseTypeNEQ(v LicenseType) predicate.Sale {
	return predicate.Sale(sql.FieldNEQ(FieldLicenseType, v))
}

// LicenseTypeIn applies the In predicate on the "license_type" field.
func LicenseTypeIn(vs ...LicenseType) predicate.Sale {
	return predicate.Sale(sql.FieldIn(FieldLicenseType, vs...))
}

// LicenseTypeNotIn applies the NotIn predicate on the "license_type" field.
func LicenseTypeNotIn(vs ...LicenseType) predicate.Sale {
	return predicate.Sale(sql.FieldNotIn(FieldLicenseType, vs...))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v float64) predicate.Sale {
	return predicate.Sale(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v float64) predicate.Sale {
	return predicate.Sale(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...float64) predicate.Sale {
	return predicate.Sale(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...float64) predicate.Sale {
	return predicate.Sale(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v float64) predicate.Sale {
	return predicate.Sale(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v float64) predicate.Sale {
	return predicate.Sale(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v float64) predicate.Sale {
	return predicate.Sale(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v float64) predicate.Sale {
	return predicate.Sale(sql.FieldLTE(FieldAmount, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Sale {
	return predicate.Sale(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Sale {
	return predicate.Sale(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Sale {
	return predicate.Sale(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Sale {
	return predicate.Sale(sql.FieldNotIn(FieldStatus, vs...))
}

// StripeSessionIDEQ applies the EQ predicate on the "stripe_session_id" field.
func StripeSessionIDEQ(v string) predicate.Sale {
	return predicate.Sale(sql.FieldEQ(FieldStripeSessionID, v))
}

// StripeSessionIDNEQ applies the NEQ predicate on the "stripe_session_id" field.
func StripeSessionIDNEQ(v string) predicate.Sale {
	return predicate.Sale(sql.FieldNEQ(FieldStripeSessionID, v))
}

// StripeSessionIDIn applies the In predicate on the "stripe_session_id" field.
func StripeSessionIDIn(vs ...string) predicate.Sale {
	return predicate.Sale(sql.FieldIn(FieldStripeSessionID, vs...))
}

// StripeSessionIDNotIn applies the NotIn predicate on the "stripe_session_id" field.
func StripeSessionIDNotIn(vs ...string) predicate.Sale {
	return predicate.Sale(sql.FieldNotIn(FieldStripeSessionID, vs...))
}

// StripeSessionIDGT applies the GT predicate on the "stripe_session_id" field.
func StripeSessionIDGT(v string) predicate.Sale {
	return predicate.Sale(sql.FieldGT(FieldStripeSessionID, v))
}

// StripeSessionIDGTE applies the GTE predicate on the "stripe_session_id" field.
func StripeSessionIDGTE(v string) predicate.Sale {
	return predicate.Sale(sql.FieldGTE(FieldStripeSessionID, v))
}

// StripeSessionIDLT applies the LT predicate on the "stripe_session_id" field.
func StripeSessionIDLT(v string) predicate.Sale {
	return predicate.Sale(sql.FieldLT(FieldStripeSessionID, v))
}

// StripeSessionIDLTE applies the LTE predicate on the "stripe_session_id" field.
func StripeSessionIDLTE(v string) predicate.Sale {
	return predicate.Sale(sql.FieldLTE(FieldStripeSessionID, v))
}

// StripeSessionIDContains applies the Contains predicate on the "stripe_session_id" field.
func StripeSessionIDContains(v string) predicate.Sale {
	return predicate.Sale(sql.FieldContains(FieldStripeSessionID, v))
}

// StripeSessionIDHasPrefix applies the HasPrefix predicate on the "stripe_session_id" field.
func StripeSessionIDHasPrefix(v string) predicate.Sale {
	return predicate.Sale(sql.FieldHasPrefix(FieldStripeSessionID, v))
}

// StripeSessionIDHasSuffix applies the HasSuffix predicate on the "stripe_session_id" field.
func StripeSessionIDHasSuffix(v string) predicate.Sale {
	return predicate.Sale(sql.FieldHasSuffix(FieldStripeSessionID, v))
}

// StripeSessionIDIsNil applies the IsNil predicate on the "stripe_session_id" field.
func StripeSessionIDIsNil() predicate.Sale {
	return predicate.Sale(sql.FieldIsNull(FieldStripeSessionID))
}

// StripeSessionIDNotNil applies the NotNil predicate on the "stripe_session_id" field.
func StripeSessionIDNotNil() predicate.Sale {
	return predicate.Sale(sql.FieldNotNull(FieldStripeSessionID))
}

// StripeSessionIDEqualFold applies the EqualFold predicate on the "stripe_session_id" field.
func StripeSessionIDEqualFold(v string) predicate.Sale {
	return predicate.Sale(sql.FieldEqualFold(FieldStripeSessionID, v))
}

// StripeSessionIDContainsFold applies the ContainsFold predicate on the "stripe_session_id" field.
func StripeSessionIDContainsFold(v string) predicate.Sale {
	return predicate.Sale(sql.FieldContainsFold(FieldStripeSessionID, v))
}

// StripePaymentIntentIDEQ applies the EQ predicate on the "stripe_payment_intent_id" field.
func StripePaymentIntentIDEQ(v string) predicate.Sale {
	return predicate.Sale(sql.FieldEQ(FieldStripePaymentIntentID, v))
}

// StripePaymentIntentIDNEQ applies the NEQ predicate on the "stripe_payment_intent_id" field.
func StripePaymentIntentIDNEQ(v string) predicate.Sale {
	return predicate.Sale(sql.FieldNEQ(FieldStripePaymentIntentID, v))
}

// StripePaymentIntentIDIn applies the In predicate on the "stripe_payment_intent_id" field.
func StripePaymentIntentIDIn(vs ...string) predicate.Sale {
	return predicate.Sale(sql.FieldIn(FieldStripePaymentIntentID, vs...))
}

// StripePaymentIntentIDNotIn applies the NotIn predicate on the "stripe_payment_intent_id" field.
func StripePaymentIntentIDNotIn(vs ...string) predicate.Sale {
	return predicate.Sale(sql.FieldNotIn(FieldStripePaymentIntentID, vs...))
}

// StripePaymentIntentIDGT applies the GT predicate on the "stripe_payment_intent_id" field.
func StripePaymentIntentIDGT(v string) predicate.Sale {
	return predicate.Sale(sql.FieldGT(FieldStripePaymentIntentID, v))
}

// StripePaymentIntentIDGTE applies the GTE predicate on the "stripe_payment_intent_id" field.
func StripePaymentIntentIDGTE(v string) predicate.Sale {
	return predicate.Sale(sql.FieldGTE(FieldStripePaymentIntentID, v))
}

// StripePaymentIntentIDLT applies the LT predicate on the "stripe_payment_intent_id" field.
func StripePaymentIntentIDLT(v string) predicate.Sale {
	return predicate.Sale(sql.FieldLT(FieldStripePaymentIntentID, v))
}

// StripePaymentIntentIDLTE applies the LTE predicate on the "stripe_payment_intent_id" field.
func StripePaymentIntentIDLTE(v string) predicate.Sale {
	return predicate.Sale(sql.FieldLTE(FieldStripePaymentIntentID, v))
}

// StripePaymentIntentIDContains applies the Contains predicate on the "stripe_payment_intent_id" field.
func StripePaymentIntentIDContains(v string) predicate.Sale {
	return predicate.Sale(sql.FieldContains(FieldStripePaymentIntentID, v))
}

// StripePaymentIntentIDHasPrefix applies the HasPrefix predicate on the "stripe_payment_intent_id" field.
func StripePaymentIntentIDHasPrefix(v string) predicate.Sale {
	return predicate.Sale(sql.FieldHasPrefix(FieldStripePaymentIntentID, v))
}

// StripePaymentIntentIDHasSuffix applies the HasSuffix predicate on the "stripe_payment_intent_id" field.
func StripePaymentIntentIDHasSuffix(v string) predicate.Sale {
	return predicate.Sale(sql.FieldHasSuffix(FieldStripePaymentIntentID, v))
}

// StripePaymentIntentIDIsNil applies the IsNil predicate on the "stripe_payment_intent_id" field.
func StripePaymentIntentIDIsNil() predicate.Sale {
	return predicate.Sale(sql.FieldIsNull(FieldStripePaymentIntentID))
}

// StripePaymentIntentIDNotNil applies the NotNil predicate on the "stripe_payment_intent_id" field.
func StripePaymentIntentIDNotNil() predicate.Sale {
	return predicate.Sale(sql.FieldNotNull(FieldStripePaymentIntentID))
}

// StripePaymentIntentIDEqualFold applies the EqualFold predicate on the "stripe_payment_intent_id" field.
func StripePaymentIntentIDEqualFold(v string) predicate.Sale {
	return predicate.Sale(sql.FieldEqualFold(FieldStripePaymentIntentID, v))
}

// StripePaymentIntentIDContainsFold applies the ContainsFold predicate on the "stripe_payment_intent_id" field.
func StripePaymentIntentIDContainsFold(v string) predicate.Sale {
	return predicate.Sale(sql.FieldContainsFold(FieldStripePaymentIntentID, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Sale {
	return predicate.Sale(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Sale {
	return predicate.Sale(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Sale {
	return predicate.Sale(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Sale {
	return predicate.Sale(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Sale {
	return predicate.Sale(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Sale {
	return predicate.Sale(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Sale {
	return predicate.Sale(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Sale {
	return predicate.Sale(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Sale {
	return predicate.Sale(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Sale {
	return predicate.Sale(sql.FieldNotNull(FieldCompletedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Sale {
	return predicate.Sale(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Sale {
	return predicate.Sale(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Sale {
	return predicate.Sale(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Sale {
	return predicate.Sale(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Sale {
	return predicate.Sale(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Sale {
	return predicate.Sale(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Sale {
	return predicate.Sale(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Sale {
	return predicate.Sale(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Sale {
	return predicate.Sale(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Sale {
	return predicate.Sale(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Sale {
	return predicate.Sale(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Sale {
	return predicate.Sale(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Sale {
	return predicate.Sale(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Sale {
	return predicate.Sale(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Sale {
	return predicate.Sale(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Sale {
	return predicate.Sale(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTrack applies the HasEdge predicate on the "track" edge.
func HasTrack() predicate.Sale {
	return predicate.Sale(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TrackTable, TrackColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTrackWith applies the HasEdge predicate on the "track" edge with a given conditions (other predicates).
func HasTrackWith(preds ...predicate.Track) predicate.Sale {
	return predicate.Sale(func(s *sql.Selector) {
		step := newTrackStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasBuyer applies the HasEdge predicate on the "buyer" edge.
func HasBuyer() predicate.Sale {
	return predicate.Sale(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BuyerTable, BuyerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBuyerWith applies the HasEdge predicate on the "buyer" edge with a given conditions (other predicates).
func HasBuyerWith(preds ...predicate.User) predicate.Sale {
	return predicate.Sale(func(s *sql.Selector) {
		step := newBuyerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Sale) predicate.Sale {
	return predicate.Sale(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Sale) predicate.Sale {
	return predicate.Sale(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Sale) predicate.Sale {
	return predicate.Sale(sql.NotPredicates(p))
}
