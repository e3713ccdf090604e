package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Track holds the schema definition for the Track entity.
type Track struct {
	ent.Schema
}

// Fields of the Track.
func (Track) Fields() []ent.Field {
	return []ent.Field{
		field.Int("producer_id").
			Positive().
			Comment("Producer (owner) user ID"),
		field.String("title").
			NotEmpty().
			Comment("Track title"),
		field.String("genre").
			Optional().
			Comment("Primary genre"),
		field.Int("bpm").
			Optional().
			Comment("Beats per minute"),
		field.Float("standard_price").
			Default(29.99).
			Comment("Standard (non-exclusive) license price in USD"),
		field.Float("exclusive_price").
			Default(299.99).
			Comment("Exclusive license price in USD"),
		field.Enum("status").
			Values("draft", "published", "exclusively_sold").
			Default("draft").
			Comment("Catalog status; exclusively_sold tracks are delisted"),
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

// Edges of the Track.
func (Track) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("producer", User.Type).
			Ref("tracks").
			Field("producer_id").
			Unique().
			Required().
			Comment("Track owner"),
		edge.To("sales", Sale.Type),
	}
}

// Indexes of the Track.
func (Track) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("producer_id"),
		index.Fields("status"),
		index.Fields("genre"),
	}
}
