package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PayoutRun holds the schema definition for the PayoutRun entity.
// A marker row acquired before a generate/disburse run for a month. The
// service checks for a running row of the same month and kind before
// creating a new one, so a second invocation fails fast with
// ErrRunInProgress. Completed and failed rows stay behind as history,
// which is why the (month, kind) index is not unique.
type PayoutRun struct {
	ent.Schema
}

// Fields of the PayoutRun.
func (PayoutRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("month").
			NotEmpty().
			Comment("Calendar month key, format YYYY-MM"),
		field.Enum("kind").
			Values("generate", "disburse").
			Comment("Which pipeline stage holds the run"),
		field.Enum("status").
			Values("running", "completed", "failed").
			Default("running").
			Comment("Run state; only running rows block a new run"),
		field.Int("triggered_by").
			Optional().
			Comment("Admin user ID that triggered the run (0 for cron)"),
		field.Time("started_at").
			Default(time.Now).
			Immutable().
			Comment("Run start timestamp"),
		field.Time("finished_at").
			Optional().
			Nillable().
			Comment("Run completion timestamp"),
	}
}

// Indexes of the PayoutRun.
func (PayoutRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("month", "kind"),
	}
}
