package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Job holds the schema definition for the Job entity.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.String("title"),
		field.String("company_name").
			Optional().
			Comment("Legacy free-text company; sync-companies-from-jobs links it to a Company row"),
		field.String("company_id").
			Optional().
			Nillable(),
		field.String("domain").
			Optional(),
		field.Text("description"),
		field.JSON("tech_stack", []string{}).
			Optional(),
		field.Enum("coding_language").
			Values("python", "javascript", "java", "c_sharp", "php", "ruby", "sql").
			Optional().
			Nillable().
			Comment("Must be set before any session bound to this job starts"),
		field.Bool("is_active").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Job.
func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("company", Company.Type).
			Ref("jobs").
			Field("company_id").
			Unique(),
		edge.To("slots", Slot.Type),
		edge.To("interviews", Interview.Type),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("company_id"),
		index.Fields("is_active"),
	}
}
