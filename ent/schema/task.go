package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity: a named,
// repeatable job scoped to a conversation, fired on an interval or a
// cron expression.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("conversation_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("name").
			Comment("Lookup by name is case-insensitive; uniqueness is not enforced"),
		field.Text("description").
			Optional(),
		field.Enum("status").
			Values("active", "paused", "completed", "deleted").
			Default("active"),

		// Schedule: exactly one of (interval_value + interval_unit) and
		// cron_expression is set on an active task.
		field.Int("interval_value").
			Optional().
			Nillable(),
		field.Enum("interval_unit").
			Values("seconds", "minutes", "hours", "days").
			Optional(),
		field.String("cron_expression").
			Optional(),

		field.Time("next_run_at").
			Optional().
			Nillable(),
		field.Time("last_run_at").
			Optional().
			Nillable(),
		field.Int("max_runs").
			Optional().
			Nillable(),
		field.Int("current_runs").
			Default(0),
		field.Time("expires_at").
			Optional().
			Nillable(),
		field.JSON("task_context", map[string]interface{}{}).
			Optional(),

		field.Int("consecutive_failures").
			Default(0),
		field.Text("last_error").
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

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("conversation", Conversation.Type).
			Ref("tasks").
			Field("conversation_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("conversation_id", "name"),

		// Scheduler claim path: due active tasks.
		index.Fields("status", "next_run_at"),
	}
}
