package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Interview holds the schema definition for the Interview entity.
// started_at/ended_at are UTC instants and change only through booking or
// reschedule; they must equal the bound slot's civil window projected to UTC.
type Interview struct {
	ent.Schema
}

// Fields of the Interview.
func (Interview) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("interview_id").
			Unique().
			Immutable(),
		field.String("candidate_id").
			Immutable(),
		field.String("job_id").
			Immutable(),
		field.String("round_label").
			Optional(),
		field.Enum("status").
			Values("new", "pending_scheduling", "scheduled", "in_progress", "completed", "rejected", "on_hold").
			Default("new"),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("ended_at").
			Optional().
			Nillable(),
		field.Time("link_expires_at").
			Optional().
			Nillable().
			Comment("ended_at + late grace; tokens fail EXPIRED past this instant"),
		field.Bool("email_sent").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Interview.
func (Interview) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("candidate", Candidate.Type).
			Ref("interviews").
			Field("candidate_id").
			Unique().
			Required().
			Immutable(),
		edge.From("job", Job.Type).
			Ref("interviews").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
		edge.To("schedules", Schedule.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("session", Session.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("evaluation_results", EvaluationResult.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Interview.
func (Interview) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		// Conflict detection scans a candidate's scheduled windows.
		index.Fields("candidate_id", "started_at"),
		index.Fields("email_sent", "status"),
	}
}
