package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EvaluationResult holds the schema definition for the EvaluationResult
// entity. Sub-scores use the canonical 0–10 scale (one decimal); the 0–100
// breakdown exposed to recruiters is derived, never stored. Re-evaluation
// replaces the row atomically.
type EvaluationResult struct {
	ent.Schema
}

// Fields of the EvaluationResult.
func (EvaluationResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("result_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("interview_id").
			Immutable(),
		field.Float("resume_score"),
		field.Float("answers_score"),
		field.Float("overall_score"),
		field.Float("technical_score").
			Optional().
			Nillable(),
		field.Float("behavioral_score").
			Optional().
			Nillable(),
		field.Float("coding_score").
			Optional().
			Nillable(),
		field.Text("resume_feedback").
			Optional(),
		field.Text("answers_feedback").
			Optional(),
		field.Text("recommendation").
			Optional(),
		field.Bool("hire_recommendation").
			Optional().
			Nillable(),
		field.Float("confidence_level").
			Default(0).
			Comment("0 marks a fallback result produced without AI analysis"),
		field.Text("warning_summary").
			Optional(),
		field.JSON("metrics", map[string]interface{}{}).
			Optional().
			Comment("Mechanical transcript metrics; stored alongside, never substituted for, LLM scores"),
		field.Bool("is_fallback").
			Default(false),
		field.String("model_used").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the EvaluationResult.
func (EvaluationResult) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("result").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
		edge.From("interview", Interview.Type).
			Ref("evaluation_results").
			Field("interview_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the EvaluationResult.
func (EvaluationResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id").
			Unique(),
		index.Fields("interview_id"),
	}
}
