package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question holds the schema definition for the Question entity.
// MAIN questions carry a unique zero-based order within their session;
// FOLLOW_UP questions share their parent's order and sort by creation time.
type Question struct {
	ent.Schema
}

// Fields of the Question.
func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("question_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Int("order").
			StorageKey("question_order"),
		field.Enum("type").
			Values("ice_breaker", "technical", "behavioral", "coding", "system_design", "general"),
		field.Enum("level").
			Values("main", "follow_up").
			Default("main"),
		field.String("parent_id").
			Optional().
			Nillable(),
		field.Text("text"),
		field.Enum("coding_language").
			Values("python", "javascript", "java", "c_sharp", "php", "ruby", "sql").
			Optional().
			Nillable().
			Comment("Required iff type=coding"),
		field.String("audio_path").
			Optional().
			Nillable(),
		field.Bool("tts_degraded").
			Default(false).
			Comment("Synthesis failed; question is delivered text-only"),
		field.Bool("generated_fallback").
			Default(false).
			Comment("Came from the deterministic bank rather than the LLM"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Question.
func (Question) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("questions").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
		edge.To("follow_ups", Question.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)).
			From("parent").
			Field("parent_id").
			Unique(),
		edge.To("responses", Response.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("test_cases", TestCase.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Question.
// Order uniqueness applies to MAIN questions only; the partial unique index
// lives in pkg/database/migrations.go.
func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "order"),
		index.Fields("session_id", "level"),
	}
}
