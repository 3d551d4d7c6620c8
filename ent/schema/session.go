package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session holds the schema definition for the Session entity: the per-
// interview state machine the candidate drives. Candidate and job text are
// snapshotted at creation so a running interview is immune to later edits.
type Session struct {
	ent.Schema
}

// Fields of the Session.
func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("session_key").
			Unique().
			Immutable().
			Comment("Opaque 128-bit key carried on the portal URL; distinct from the HMAC link token"),
		field.String("interview_id").
			Unique().
			Immutable(),
		field.String("candidate_name"),
		field.String("candidate_email"),
		field.Text("job_description"),
		field.Text("resume_text").
			Optional(),
		field.String("language").
			Default("en"),
		field.String("accent").
			Optional(),
		field.Enum("status").
			Values("scheduled", "active", "paused", "completed", "expired", "error").
			Default("scheduled"),
		field.Int("current_question_index").
			Default(0),
		field.Int("total_questions").
			Default(0),
		field.Time("session_started_at").
			Optional().
			Nillable(),
		field.Time("session_ended_at").
			Optional().
			Nillable(),
		field.Time("last_interaction_at").
			Optional().
			Nillable().
			Comment("Liveness timestamp: candidate heartbeat while active, worker heartbeat while an evaluation claim is held"),
		field.Enum("id_verification_status").
			Values("pending", "verified", "failed").
			Default("pending"),
		field.String("id_details").
			Optional().
			Nillable().
			Comment("Masked OCR extract, never the raw ID number"),
		field.JSON("model_config", map[string]interface{}{}).
			Optional(),
		field.Bool("is_evaluated").
			Default(false),
		field.Int("evaluation_attempts").
			Default(0),
		field.String("claimed_by").
			Optional().
			Nillable().
			Comment("Evaluation worker holding the claim"),
		field.String("video_path").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Session.
func (Session) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("interview", Interview.Type).
			Ref("session").
			Field("interview_id").
			Unique().
			Required().
			Immutable(),
		edge.To("questions", Question.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("responses", Response.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("code_submissions", CodeSubmission.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("warning_logs", WarningLog.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("result", EvaluationResult.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Session.
func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "is_evaluated"),
		index.Fields("status", "last_interaction_at"),
	}
}
