package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PayoutRecord holds the schema definition for the PayoutRecord entity.
// One row per (producer, month), created by the payout generator and
// mutated only by the disburser/retrier.
type PayoutRecord struct {
	ent.Schema
}

// Fields of the PayoutRecord.
func (PayoutRecord) Fields() []ent.Field {
	return []ent.Field{
		field.Int("producer_id").
			Positive().
			Comment("Payee user ID"),
		field.String("month").
			NotEmpty().
			Comment("Calendar month key, format YYYY-MM"),
		field.Float("amount").
			Min(0).
			Comment("Computed earnings for the month in USD"),
		field.Enum("status").
			Values("pending", "paid", "skipped", "failed").
			Default("pending").
			Comment("Disbursement status"),
		field.String("wallet_address").
			Optional().
			Comment("Payout destination snapshot taken at generation time"),
		field.String("payment_transaction_id").
			Optional().
			Nillable().
			Comment("External transfer ID, set only after a successful disbursement"),
		field.Int("retry_count").
			Default(0).
			Min(0).
			Comment("Number of disbursement attempts so far"),
		field.String("last_error").
			Optional().
			Comment("Most recent disbursement error, cleared on success"),
		field.Time("paid_at").
			Optional().
			Nillable().
			Comment("Disbursement completion timestamp"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}

// Edges of the PayoutRecord.
func (PayoutRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("producer", User.Type).
			Ref("payouts").
			Field("producer_id").
			Unique().
			Required().
			Comment("Payee"),
	}
}

// Indexes of the PayoutRecord.
func (PayoutRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("producer_id", "month").Unique(),
		index.Fields("month"),
		index.Fields("status"),
	}
}
