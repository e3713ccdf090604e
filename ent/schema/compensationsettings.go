package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// CompensationSettings holds the schema definition for the
// CompensationSettings entity. A singleton row (fixed ID 1) holding the
// percentage rates used by the monthly earnings calculation; mutated only
// through the admin settings form.
type CompensationSettings struct {
	ent.Schema
}

// Fields of the CompensationSettings.
func (CompensationSettings) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").
			Comment("Caller-supplied ID; the settings row is always created with ID 1"),
		field.Float("standard_rate").
			Default(0.70).
			Min(0).
			Max(1).
			Comment("Producer share of standard license sales"),
		field.Float("exclusive_rate").
			Default(0.80).
			Min(0).
			Max(1).
			Comment("Producer share of exclusive license sales"),
		field.Float("sync_fee_rate").
			Default(0.85).
			Min(0).
			Max(1).
			Comment("Producer share of accepted sync fees"),
		field.Float("volume_bonus_rate").
			Default(0.05).
			Min(0).
			Max(1).
			Comment("Bonus share applied to gross sales above the volume threshold"),
		field.Int("volume_bonus_threshold").
			Default(20).
			Min(0).
			Comment("Completed sales count in the month required for the volume bonus"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}
