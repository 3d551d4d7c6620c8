package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CodeSubmission holds the schema definition for the CodeSubmission entity.
// Rows are immutable once recorded. question_id is a plain string: legacy
// rows referenced questions by integer order and are repaired by the
// fix-question-refs command.
type CodeSubmission struct {
	ent.Schema
}

// Fields of the CodeSubmission.
func (CodeSubmission) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("submission_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("question_id").
			Immutable(),
		field.Enum("language").
			Values("python", "javascript", "java", "c_sharp", "php", "ruby", "sql").
			Immutable(),
		field.Text("source_code").
			Immutable(),
		field.Bool("passed_all_tests").
			Default(false),
		field.Text("output_log").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the CodeSubmission.
func (CodeSubmission) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("code_submissions").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the CodeSubmission.
func (CodeSubmission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("question_id"),
	}
}
