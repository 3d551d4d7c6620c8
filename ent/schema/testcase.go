package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TestCase holds the schema definition for the TestCase entity.
// input is the literal argument expression for the harness (or the setup
// script for SQL questions). Execution order: non-hidden by ordinal, then
// hidden.
type TestCase struct {
	ent.Schema
}

// Fields of the TestCase.
func (TestCase) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("test_case_id").
			Unique().
			Immutable(),
		field.String("question_id").
			Immutable(),
		field.Text("input"),
		field.Text("expected_output"),
		field.Bool("is_hidden").
			Default(false),
		field.Int("ordinal").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TestCase.
func (TestCase) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("question", Question.Type).
			Ref("test_cases").
			Field("question_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TestCase.
func (TestCase) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("question_id", "is_hidden", "ordinal"),
	}
}
