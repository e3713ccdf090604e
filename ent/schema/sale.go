package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Sale holds the schema definition for the Sale entity.
// One row per license purchase; completed sales feed the monthly
// earnings calculation for the producer payout pipeline.
type Sale struct {
	ent.Schema
}

// Fields of the Sale.
func (Sale) Fields() []ent.Field {
	return []ent.Field{
		field.Int("track_id").
			Positive().
			Comment("Licensed track ID"),
		field.Int("producer_id").
			Positive().
			Comment("Producer user ID (denormalized for payout aggregation)"),
		field.Int("buyer_id").
			Positive().
			Comment("Buyer user ID"),
		field.Enum("license_type").
			Values("standard", "exclusive").
			Comment("License granted by the purchase"),
		field.Float("amount").
			Min(0).
			Comment("Gross sale amount in USD"),
		field.Enum("status").
			Values("pending", "completed", "refunded").
			Default("pending").
			Comment("Payment status; only completed sales count toward earnings"),
		field.String("stripe_session_id").
			Optional().
			Comment("Stripe checkout session ID"),
		field.String("stripe_payment_intent_id").
			Optional().
			Comment("Stripe payment intent ID"),
		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("Payment completion timestamp (earnings month bucket)"),
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

// Edges of the Sale.
func (Sale) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("track", Track.Type).
			Ref("sales").
			Field("track_id").
			Unique().
			Required().
			Comment("Licensed track"),
		edge.From("buyer", User.Type).
			Ref("purchases").
			Field("buyer_id").
			Unique().
			Required().
			Comment("Purchasing user"),
	}
}

// Indexes of the Sale.
func (Sale) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("producer_id", "status"),
		index.Fields("completed_at"),
		index.Fields("stripe_session_id").Unique(),
	}
}
