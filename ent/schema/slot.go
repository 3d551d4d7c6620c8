package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Slot holds the schema definition for the Slot entity.
// Wall-clock fields (interview_date, start_time, end_time) are civil time in
// the configured interview timezone; conversion to UTC happens only at the
// Slot ↔ Interview boundary.
type Slot struct {
	ent.Schema
}

// Fields of the Slot.
func (Slot) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("slot_id").
			Unique().
			Immutable(),
		field.String("job_id").
			Immutable(),
		field.String("interview_date").
			Comment("Civil date, 2006-01-02"),
		field.String("start_time").
			Comment("Civil clock, 15:04"),
		field.String("end_time").
			Comment("Civil clock, 15:04; must be after start_time"),
		field.Int("duration_minutes"),
		field.Int("max_candidates").
			Default(1),
		field.Int("current_bookings").
			Default(0),
		field.Bool("cancelled").
			Default(false),
		field.String("recurrence").
			Optional().
			Nillable().
			Comment("Series descriptor, e.g. WEEKLY:4; set on every slot of the series"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Slot.
func (Slot) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("slots").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
		// Slots may only be cancelled while schedules reference them.
		edge.To("schedules", Schedule.Type).
			Annotations(entsql.OnDelete(entsql.Restrict)),
	}
}

// Indexes of the Slot.
func (Slot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "interview_date"),
		index.Fields("cancelled"),
	}
}
