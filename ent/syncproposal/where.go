// Code generated by ent, DO NOT EDIT.

package syncproposal

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/tracklane/tracklane/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldLTE(FieldID, id))
}

// ProducerID applies equality check predicate on the "producer_id" field. It's identical to ProducerIDEQ.
func ProducerID(v int) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldEQ(FieldProducerID, v))
}

// TrackID applies equality check predicate on the "track_id" field. It's identical to TrackIDEQ.
func TrackID(v int) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldEQ(FieldTrackID, v))
}

// ProjectName applies equality check predicate on the "project_name" field. It's identical to ProjectNameEQ.
func ProjectName(v string) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldEQ(FieldProjectName, v))
}

// Fee applies equality check predicate on the "fee" field. It's identical to FeeEQ.
func Fee(v float64) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldEQ(FieldFee, v))
}

// AcceptedAt applies equality check predicate on the "accepted_at" field. It's identical to AcceptedAtEQ.
func AcceptedAt(v time.Time) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldEQ(FieldAcceptedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProducerIDEQ applies the EQ predicate on the "producer_id" field.
func ProducerIDEQ(v int) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldEQ(FieldProducerID, v))
}

// ProducerIDNEQ applies the NEQ predicate on the "producer_id" field.
func ProducerIDNEQ(v int) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldNEQ(FieldProducerID, v))
}

// ProducerIDIn applies the In predicate on the "producer_id" field.
func ProducerIDIn(vs ...int) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldIn(FieldProducerID, vs...))
}

// ProducerIDNotIn applies the NotIn predicate on the "producer_id" field.
func ProducerIDNotIn(vs ...int) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldNotIn(FieldProducerID, vs...))
}

// ProducerIDGT applies the GT predicate on the "producer_id" field.
func ProducerIDGT(v int) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldGT(FieldProducerID, v))
}

// ProducerIDGTE applies the GTE predicate on the "producer_id" field.
func ProducerIDGTE(v int) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldGTE(FieldProducerID, v))
}

// ProducerIDLT applies the LT predicate on the "producer_id" field.
func ProducerIDLT(v int) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldLT(FieldProducerID, v))
}

// ProducerIDLTE applies the LTE predicate on the "producer_id" field.
func ProducerIDLTE(v int) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldLTE(FieldProducerID, v))
}

// TrackIDEQ applies the EQ predicate on the "track_id" field.
func TrackIDEQ(v int) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldEQ(FieldTrackID, v))
}

// TrackIDNEQ applies the NEQ predicate on the "track_id" field.
func TrackIDNEQ(v int) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldNEQ(FieldTrackID, v))
}

// TrackIDIn applies the In predicate on the "track_id" field.
func TrackIDIn(vs ...int) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldIn(FieldTrackID, vs...))
}

// TrackIDNotIn applies the NotIn predicate on the "track_id" field.
func TrackIDNotIn(vs ...int) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldNotIn(FieldTrackID, vs...))
}

// TrackIDGT applies the GT predicate on the "track_id" field.
func TrackIDGT(v int) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldGT(FieldTrackID, v))
}

// TrackIDGTE applies the GTE predicate on the "track_id" field.
func TrackIDGTE(v int) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldGTE(FieldTrackID, v))
}

// TrackIDLT applies the LT predicate on the "track_id" field.
func TrackIDLT(v int) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldLT(FieldTrackID, v))
}

// TrackIDLTE applies the LTE predicate on the "track_id" field.
func TrackIDLTE(v int) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldLTE(FieldTrackID, v))
}

// ProjectNameEQ applies the EQ predicate on the "project_name" field.
func ProjectNameEQ(v string) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldEQ(FieldProjectName, v))
}

// ProjectNameNEQ applies the NEQ predicate on the "project_name" field.
func ProjectNameNEQ(v string) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldNEQ(FieldProjectName, v))
}

// ProjectNameIn applies the In predicate on the "project_name" field.
func ProjectNameIn(vs ...string) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldIn(FieldProjectName, vs...))
}

// ProjectNameNotIn applies the NotIn predicate on the "project_name" field.
func ProjectNameNotIn(vs ...string) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldNotIn(FieldProjectName, vs...))
}

// ProjectNameGT applies the GT predicate on the "project_name" field.
func ProjectNameGT(v string) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldGT(FieldProjectName, v))
}

// ProjectNameGTE applies the GTE predicate on the "project_name" field.
func ProjectNameGTE(v string) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldGTE(FieldProjectName, v))
}

// ProjectNameLT applies the LT predicate on the "project_name" field.
func ProjectNameLT(v string) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldLT(FieldProjectName, v))
}

// ProjectNameLTE applies the LTE predicate on the "project_name" field.
func ProjectNameLTE(v string) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldLTE(FieldProjectName, v))
}

// ProjectNameContains applies the Contains predicate on the "project_name" field.
func ProjectNameContains(v string) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldContains(FieldProjectName, v))
}

// ProjectNameHasPrefix applies the HasPrefix predicate on the "project_name" field.
func ProjectNameHasPrefix(v string) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldHasPrefix(FieldProjectName, v))
}

// ProjectNameHasSuffix applies the HasSuffix predicate on the "project_name" field.
func ProjectNameHasSuffix(v string) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldHasSuffix(FieldProjectName, v))
}

// ProjectNameEqualFold applies the EqualFold predicate on the "project_name" field.
func ProjectNameEqualFold(v string) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldEqualFold(FieldProjectName, v))
}

// ProjectNameContainsFold applies the ContainsFold predicate on the "project_name" field.
func ProjectNameContainsFold(v string) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldContainsFold(FieldProjectName, v))
}

// FeeEQ applies the EQ predicate on the "fee" field.
func FeeEQ(v float64) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldEQ(FieldFee, v))
}

// FeeNEQ applies the NEQ predicate on the "fee" field.
func FeeNEQ(v float64) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldNEQ(FieldFee, v))
}

// FeeIn applies the In predicate on the "fee" field.
func FeeIn(vs ...float64) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldIn(FieldFee, vs...))
}

// FeeNotIn applies the NotIn predicate on the "fee" field.
func FeeNotIn(vs ...float64) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldNotIn(FieldFee, vs...))
}

// FeeGT applies the GT predicate on the "fee" field.
func FeeGT(v float64) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldGT(FieldFee, v))
}

// FeeGTE applies the GTE predicate on the "fee" field.
func FeeGTE(v float64) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldGTE(FieldFee, v))
}

// FeeLT applies the LT predicate on the "fee" field.
func FeeLT(v float64) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldLT(FieldFee, v))
}

// FeeLTE applies the LTE predicate on the "fee" field.
func FeeLTE(v float64) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldLTE(FieldFee, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldNotIn(FieldStatus, vs...))
}

// AcceptedAtEQ applies the EQ predicate on the "accepted_at" field.
func AcceptedAtEQ(v time.Time) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldEQ(FieldAcceptedAt, v))
}

// AcceptedAtNEQ applies the NEQ predicate on the "accepted_at" field.
func AcceptedAtNEQ(v time.Time) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldNEQ(FieldAcceptedAt, v))
}

// AcceptedAtIn applies the In predicate on the "accepted_at" field.
func AcceptedAtIn(vs ...time.Time) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldIn(FieldAcceptedAt, vs...))
}

// AcceptedAtNotIn applies the NotIn predicate on the "accepted_at" field.
func AcceptedAtNotIn(vs ...time.Time) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldNotIn(FieldAcceptedAt, vs...))
}

// AcceptedAtGT applies the GT predicate on the "accepted_at" field.
func AcceptedAtGT(v time.Time) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldGT(FieldAcceptedAt, v))
}

// AcceptedAtGTE applies the GTE predicate on the "accepted_at" field.
func AcceptedAtGTE(v time.Time) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldGTE(FieldAcceptedAt, v))
}

// AcceptedAtLT applies the LT predicate on the "accepted_at" field.
func AcceptedAtLT(v time.Time) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldLT(FieldAcceptedAt, v))
}

// AcceptedAtLTE applies the LTE predicate on the "accepted_at" field.
func AcceptedAtLTE(v time.Time) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldLTE(FieldAcceptedAt, v))
}

// AcceptedAtIsNil applies the IsNil predicate on the "accepted_at" field.
func AcceptedAtIsNil() predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldIsNull(FieldAcceptedAt))
}

// AcceptedAtNotNil applies the NotNil predicate on the "accepted_at" field.
func AcceptedAtNotNil() predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldNotNull(FieldAcceptedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SyncProposal {
	return predicate.SyncProposal(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SyncProposal) predicate.SyncProposal {
	return predicate.SyncProposal(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SyncProposal) predicate.SyncProposal {
	return predicate.SyncProposal(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SyncProposal) predicate.SyncProposal {
	return predicate.SyncProposal(sql.NotPredicates(p))
}
