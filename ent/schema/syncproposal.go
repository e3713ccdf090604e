package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SyncProposal holds the schema definition for the SyncProposal entity.
// Sync licensing deals (film/TV/ad placements) negotiated off-catalog;
// accepted proposals contribute their fee to the producer's monthly earnings.
type SyncProposal struct {
	ent.Schema
}

// Fields of the SyncProposal.
func (SyncProposal) Fields() []ent.Field {
	return []ent.Field{
		field.Int("producer_id").
			Positive().
			Comment("Producer user ID"),
		field.Int("track_id").
			Positive().
			Comment("Track proposed for sync placement"),
		field.String("project_name").
			NotEmpty().
			Comment("Name of the film/TV/ad project"),
		field.Float("fee").
			Min(0).
			Comment("Negotiated sync fee in USD"),
		field.Enum("status").
			Values("submitted", "accepted", "rejected", "paid").
			Default("submitted").
			Comment("Proposal lifecycle status"),
		field.Time("accepted_at").
			Optional().
			Nillable().
			Comment("Acceptance timestamp (earnings month bucket)"),
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

// Indexes of the SyncProposal.
func (SyncProposal) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("producer_id", "status"),
		index.Fields("accepted_at"),
	}
}
