package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Schedule holds the schema definition for the Schedule entity, the binding
// of one Interview to one Slot. Creating one increments the slot's booking
// counter in the same transaction; cancelling decrements it.
type Schedule struct {
	ent.Schema
}

// Fields of the Schedule.
func (Schedule) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("schedule_id").
			Unique().
			Immutable(),
		field.String("interview_id").
			Immutable(),
		field.String("slot_id").
			Immutable(),
		field.Enum("status").
			Values("pending", "confirmed", "cancelled").
			Default("pending"),
		field.String("booking_note").
			Optional(),
		field.Time("booked_at").
			Default(time.Now).
			Immutable(),
		field.Time("cancelled_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Schedule.
func (Schedule) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("interview", Interview.Type).
			Ref("schedules").
			Field("interview_id").
			Unique().
			Required().
			Immutable(),
		edge.From("slot", Slot.Type).
			Ref("schedules").
			Field("slot_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Schedule.
// A partial unique index (one non-cancelled schedule per interview) is created
// in pkg/database/migrations.go; Ent cannot express it.
func (Schedule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("slot_id", "status"),
		index.Fields("interview_id"),
	}
}
