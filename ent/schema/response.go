package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Response holds the schema definition for the Response entity: the
// candidate's answer to one question. For AUDIO payloads, content is the
// transcript and audio_path points at the stored original.
type Response struct {
	ent.Schema
}

// Fields of the Response.
func (Response) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("response_id").
			Unique().
			Immutable(),
		field.String("question_id").
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Enum("kind").
			Values("text", "audio", "code").
			Default("text"),
		field.Text("content"),
		field.String("audio_path").
			Optional().
			Nillable(),
		field.Float("duration_seconds").
			Default(0),
		field.Int("filler_count").
			Optional().
			Nillable(),
		field.Float("words_per_minute").
			Optional().
			Nillable(),
		field.Float("sentiment").
			Optional().
			Nillable().
			Comment("Lexicon polarity in [-1, 1]"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Response.
func (Response) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("question", Question.Type).
			Ref("responses").
			Field("question_id").
			Unique().
			Required().
			Immutable(),
		edge.From("session", Session.Type).
			Ref("responses").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Response.
func (Response) Indexes() []ent.Index {
	return []ent.Index{
		// One response per question; empty answers are replaced, not appended.
		index.Fields("question_id").
			Unique(),
		index.Fields("session_id"),
	}
}
