package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Candidate holds the schema definition for the Candidate entity.
type Candidate struct {
	ent.Schema
}

// Fields of the Candidate.
func (Candidate) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("candidate_id").
			Unique().
			Immutable(),
		field.String("full_name"),
		field.String("email").
			Unique(),
		field.String("phone").
			Optional(),
		field.Text("resume_text").
			Optional().
			Nillable().
			Comment("Parsed résumé text supplied by the intake service"),
		field.String("resume_path").
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

// Edges of the Candidate.
func (Candidate) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("interviews", Interview.Type),
	}
}
