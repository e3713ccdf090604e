package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			Unique().
			NotEmpty().
			Comment("User email address (login identifier)"),
		field.String("password_hash").
			Sensitive().
			Comment("Bcrypt password hash"),
		field.String("name").
			NotEmpty().
			Comment("Display name"),
		field.Enum("role").
			Values("client", "producer", "admin").
			Default("client").
			Comment("Account role"),
		field.String("artist_name").
			Optional().
			Comment("Public artist name (producers only)"),
		field.String("wallet_address").
			Optional().
			Comment("USDC wallet address used as the payout destination"),
		field.Bool("active").
			Default(true).
			Comment("Inactive users are excluded from payout generation"),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete timestamp"),
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

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("tracks", Track.Type),
		edge.To("payouts", PayoutRecord.Type),
		edge.To("purchases", Sale.Type),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("role"),
		index.Fields("active"),
	}
}
