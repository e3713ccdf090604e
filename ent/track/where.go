// Code generated by ent, DO NOT EDIT.

package track

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/tracklane/tracklane/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Track {
	return predicate.Track(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Track {
	return predicate.Track(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Track {
	return predicate.Track(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Track {
	return predicate.Track(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Track {
	return predicate.Track(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Track {
	return predicate.Track(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Track {
	return predicate.Track(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Track {
	return predicate.Track(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Track {
	return predicate.Track(sql.FieldLTE(FieldID, id))
}

// ProducerID applies equality check predicate on the "producer_id" field. It's identical to ProducerIDEQ.
func ProducerID(v int) predicate.Track {
	return predicate.Track(sql.FieldEQ(FieldProducerID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Track {
	return predicate.Track(sql.FieldEQ(FieldTitle, v))
}

// Genre applies equality check predicate on the "genre" field. It's identical to GenreEQ.
func Genre(v string) predicate.Track {
	return predicate.Track(sql.FieldEQ(FieldGenre, v))
}

// Bpm applies equality check predicate on the "bpm" field. It's identical to BpmEQ.
func Bpm(v int) predicate.Track {
	return predicate.Track(sql.FieldEQ(FieldBpm, v))
}

// StandardPrice applies equality check predicate on the "standard_price" field. It's identical to StandardPriceEQ.
func StandardPrice(v float64) predicate.Track {
	return predicate.Track(sql.FieldEQ(FieldStandardPrice, v))
}

// ExclusivePrice applies equality check predicate on the "exclusive_price" field. It's identical to ExclusivePriceEQ.
func ExclusivePrice(v float64) predicate.Track {
	return predicate.Track(sql.FieldEQ(FieldExclusivePrice, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Track {
	return predicate.Track(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Track {
	return predicate.Track(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProducerIDEQ applies the EQ predicate on the "producer_id" field.
func ProducerIDEQ(v int) predicate.Track {
	return predicate.Track(sql.FieldEQ(FieldProducerID, v))
}

// ProducerIDNEQ applies the NEQ predicate on the "producer_id" field.
func ProducerIDNEQ(v int) predicate.Track {
	return predicate.Track(sql.FieldNEQ(FieldProducerID, v))
}

// ProducerIDIn applies the In predicate on the "producer_id" field.
func ProducerIDIn(vs ...int) predicate.Track {
	return predicate.Track(sql.FieldIn(FieldProducerID, vs...))
}

// ProducerIDNotIn applies the NotIn predicate on the "producer_id" field.
func ProducerIDNotIn(vs ...int) predicate.Track {
	return predicate.Track(sql.FieldNotIn(FieldProducerID, vs...))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Track {
	return predicate.Track(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Track {
	return predicate.Track(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Track {
	return predicate.Track(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Track {
	return predicate.Track(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Track {
	return predicate.Track(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Track {
	return predicate.Track(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Track {
	return predicate.Track(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Track {
	return predicate.Track(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Track {
	return predicate.Track(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Track {
	return predicate.Track(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Track {
	return predicate.Track(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Track {
	return predicate.Track(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Track {
	return predicate.Track(sql.FieldContainsFold(FieldTitle, v))
}

// GenreEQ applies the EQ predicate on the "genre" field.
func GenreEQ(v string) predicate.Track {
	return predicate.Track(sql.FieldEQ(FieldGenre, v))
}

// GenreNEQ applies the NEQ predicate on the "genre" field.
func GenreNEQ(v string) predicate.Track {
	return predicate.Track(sql.FieldNEQ(FieldGenre, v))
}

// GenreIn applies the In predicate on the "genre" field.
func GenreIn(vs ...string) predicate.Track {
	return predicate.Track(sql.FieldIn(FieldGenre, vs...))
}

// GenreNotIn applies the NotIn predicate on the "genre" field.
func GenreNotIn(vs ...string) predicate.Track {
	return predicate.Track(sql.FieldNotIn(FieldGenre, vs...))
}

// GenreGT applies the GT predicate on the "genre" field.
func GenreGT(v string) predicate.Track {
	return predicate.Track(sql.FieldGT(FieldGenre, v))
}

// GenreGTE applies the GTE predicate on the "genre" field.
func GenreGTE(v string) predicate.Track {
	return predicate.Track(sql.FieldGTE(FieldGenre, v))
}

// GenreLT applies the LT predicate on the "genre" field.
func GenreLT(v string) predicate.Track {
	return predicate.Track(sql.FieldLT(FieldGenre, v))
}

// GenreLTE applies the LTE predicate on the "genre" field.
func GenreLTE(v string) predicate.Track {
	return predicate.Track(sql.FieldLTE(FieldGenre, v))
}

// GenreContains applies the Contains predicate on the "genre" field.
func GenreContains(v string) predicate.Track {
	return predicate.Track(sql.FieldContains(FieldGenre, v))
}

// GenreHasPrefix applies the HasPrefix predicate on the "genre" field.
func GenreHasPrefix(v string) predicate.Track {
	return predicate.Track(sql.FieldHasPrefix(FieldGenre, v))
}

// GenreHasSuffix applies the HasSuffix predicate on the "genre" field.
func GenreHasSuffix(v string) predicate.Track {
	return predicate.Track(sql.FieldHasSuffix(FieldGenre, v))
}

// GenreIsNil applies the IsNil predicate on the "genre" field.
func GenreIsNil() predicate.Track {
	return predicate.Track(sql.FieldIsNull(FieldGenre))
}

// GenreNotNil applies the NotNil predicate on the "genre" field.
func GenreNotNil() predicate.Track {
	return predicate.Track(sql.FieldNotNull(FieldGenre))
}

// GenreEqualFold applies the EqualFold predicate on the "genre" field.
func GenreEqualFold(v string) predicate.Track {
	return predicate.Track(sql.FieldEqualFold(FieldGenre, v))
}

// GenreContainsFold applies the ContainsFold predicate on the "genre" field.
func GenreContainsFold(v string) predicate.Track {
	return predicate.Track(sql.FieldContainsFold(FieldGenre, v))
}

// BpmEQ applies the EQ predicate on the "bpm" field.
func BpmEQ(v int) predicate.Track {
	return predicate.Track(sql.FieldEQ(FieldBpm, v))
}

// BpmNEQ applies the NEQ predicate on the "bpm" field.
func BpmNEQ(v int) predicate.Track {
	return predicate.Track(sql.FieldNEQ(FieldBpm, v))
}

// BpmIn applies the In predicate on the "bpm" field.
func BpmIn(vs ...int) predicate.Track {
	return predicate.Track(sql.FieldIn(FieldBpm, vs...))
}

// BpmNotIn applies the NotIn predicate on the "bpm" field.
func BpmNotIn(vs ...int) predicate.Track {
	return predicate.Track(sql.FieldNotIn(FieldBpm, vs...))
}

// BpmGT applies the GT predicate on the "bpm" field.
func BpmGT(v int) predicate.Track {
	return predicate.Track(sql.FieldGT(FieldBpm, v))
}

// BpmGTE applies the GTE predicate on the "bpm" field.
func BpmGTE(v int) predicate.Track {
	return predicate.Track(sql.FieldGTE(FieldBpm, v))
}

// BpmLT applies the LT predicate on the "bpm" field.
func BpmLT(v int) predicate.Track {
	return predicate.Track(sql.FieldLT(FieldBpm, v))
}

// BpmLTE applies the LTE predicate on the "bpm" field.
func BpmLTE(v int) predicate.Track {
	return predicate.Track(sql.FieldLTE(FieldBpm, v))
}

// BpmIsNil applies the IsNil predicate on the "bpm" field.
func BpmIsNil() predicate.Track {
	return predicate.Track(sql.FieldIsNull(FieldBpm))
}

// BpmNotNil applies the NotNil predicate on the "bpm" field.
func BpmNotNil() predicate.Track {
	return predicate.Track(sql.FieldNotNull(FieldBpm))
}

// StandardPriceEQ applies the EQ predicate on the "standard_price" field.
func StandardPriceEQ(v float64) predicate.Track {
	return predicate.Track(sql.FieldEQ(FieldStandardPrice, v))
}

// StandardPriceNEQ applies the NEQ predicate on the "standard_price" field.
func StandardPriceNEQ(v float64) predicate.Track {
	return predicate.Track(sql.FieldNEQ(FieldStandardPrice, v))
}

// StandardPriceIn applies the In predicate on the "standard_price" field.
func StandardPriceIn(vs ...float64) predicate.Track {
	return predicate.Track(sql.FieldIn(FieldStandardPrice, vs...))
}

// StandardPriceNotIn applies the NotIn predicate on the "standard_price" field.
func StandardPriceNotIn(vs ...float64) predicate.Track {
	return predicate.Track(sql.FieldNotIn(FieldStandardPrice, vs...))
}

// StandardPriceGT applies the GT predicate on the "standard_price" field.
func StandardPriceGT(v float64) predicate.Track {
	return predicate.Track(sql.FieldGT(FieldStandardPrice, v))
}

// StandardPriceGTE applies the GTE predicate on the "standard_price" field.
func StandardPriceGTE(v float64) predicate.Track {
	return predicate.Track(sql.FieldGTE(FieldStandardPrice, v))
}

// StandardPriceLT applies the LT predicate on the "standard_price" field.
func StandardPriceLT(v float64) predicate.Track {
	return predicate.Track(sql.FieldLT(FieldStandardPrice, v))
}

// StandardPriceLTE applies the LTE predicate on the "standard_price" field.
func StandardPriceLTE(v float64) predicate.Track {
	return predicate.Track(sql.FieldLTE(FieldStandardPrice, v))
}

// ExclusivePriceEQ applies the EQ predicate on the "exclusive_price" field.
func ExclusivePriceEQ(v float64) predicate.Track {
	return predicate.Track(sql.FieldEQ(FieldExclusivePrice, v))
}

// ExclusivePriceNEQ applies the NEQ predicate on the "exclusive_price" field.
func ExclusivePriceNEQ(v float64) predicate.Track {
	return predicate.Track(sql.FieldNEQ(FieldExclusivePrice, v))
}

// ExclusivePriceIn applies the In predicate on the "exclusive_price" field.
func ExclusivePriceIn(vs ...float64) predicate.Track {
	return predicate.Track(sql.FieldIn(FieldExclusivePrice, vs...))
}

// ExclusivePriceNotIn applies the NotIn predicate on the "exclusive_price" field.
func ExclusivePriceNotIn(vs ...float64) predicate.Track {
	return predicate.Track(sql.FieldNotIn(FieldExclusivePrice, vs...))
}

// ExclusivePriceGT applies the GT predicate on the "exclusive_price" field.
func ExclusivePriceGT(v float64) predicate.Track {
	return predicate.Track(sql.FieldGT(FieldExclusivePrice, v))
}

// ExclusivePriceGTE applies the GTE predicate on the "exclusive_price" field.
func ExclusivePriceGTE(v float64) predicate.Track {
	return predicate.Track(sql.FieldGTE(FieldExclusivePrice, v))
}

// ExclusivePriceLT applies the LT predicate on the "exclusive_price" field.
func ExclusivePriceLT(v float64) predicate.Track {
	return predicate.Track(sql.FieldLT(FieldExclusivePrice, v))
}

// ExclusivePriceLTE applies the LTE predicate on the "exclusive_price" field.
func ExclusivePriceLTE(v float64) predicate.Track {
	return predicate.Track(sql.FieldLTE(FieldExclusivePrice, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Track {
	return predicate.Track(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Track {
	return predicate.Track(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Track {
	return predicate.Track(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Track {
	return predicate.Track(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Track {
	return predicate.Track(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Track {
	return predicate.Track(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Track {
	return predicate.Track(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Track {
	return predicate.Track(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Track {
	return predicate.Track(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Track {
	return predicate.Track(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Track {
	return predicate.Track(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Track {
	return predicate.Track(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Track {
	return predicate.Track(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Track {
	return predicate.Track(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Track {
	return predicate.Track(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Track {
	return predicate.Track(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Track {
	return predicate.Track(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Track {
	return predicate.Track(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Track {
	return predicate.Track(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Track {
	return predicate.Track(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProducer applies the HasEdge predicate on the "producer" edge.
func HasProducer() predicate.Track {
	return predicate.Track(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProducerTable, ProducerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProducerWith applies the HasEdge predicate on the "producer" edge with a given conditions (other predicates).
func HasProducerWith(preds ...predicate.User) predicate.Track {
	return predicate.Track(func(s *sql.Selector) {
		step := newProducerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSales applies the HasEdge predicate on the "sales" edge.
func HasSales() predicate.Track {
	return predicate.Track(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SalesTable, SalesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSalesWith applies the HasEdge predicate on the "sales" edge with a given conditions (other predicates).
func HasSalesWith(preds ...predicate.Sale) predicate.Track {
	return predicate.Track(func(s *sql.Selector) {
		step := newSalesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Track) predicate.Track {
	return predicate.Track(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Track) predicate.Track {
	return predicate.Track(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Track) predicate.Track {
	return predicate.Track(sql.NotPredicates(p))
}
