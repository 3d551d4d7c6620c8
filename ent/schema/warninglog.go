package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WarningLog holds the schema definition for the WarningLog entity.
// Append-only: one row per grace-filtered activation edge, never updated.
type WarningLog struct {
	ent.Schema
}

// Fields of the WarningLog.
func (WarningLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("warning_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Enum("warning_type").
			Values("no_person", "multiple_people", "phone_detected", "low_concentration",
				"tab_switched", "excessive_noise", "multiple_speakers", "proctor_degraded").
			Immutable(),
		field.String("message").
			Optional().
			Immutable(),
		field.String("evidence_path").
			Optional().
			Nillable().
			Immutable().
			Comment("Annotated frame in evidence storage; absent for suppressed types"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the WarningLog.
func (WarningLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("warning_logs").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the WarningLog.
func (WarningLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "created_at"),
		index.Fields("warning_type"),
	}
}
