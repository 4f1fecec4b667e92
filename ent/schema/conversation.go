package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Conversation holds the schema definition for the Conversation entity:
// a persistent, user-owned dialogue with an embedded state machine that
// can run in the background on a schedule.
type Conversation struct {
	ent.Schema
}

// Fields of the Conversation.
func (Conversation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("conversation_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("title").
			Optional(),
		field.Enum("status").
			Values("active", "background", "waiting_input", "archived").
			Default("active"),

		// Schedule. schedule_type is empty while the conversation has no
		// schedule; cron_expression accompanies "cron", scheduled_run_at
		// accompanies "scheduled".
		field.Enum("schedule_type").
			Values("cron", "scheduled", "immediate").
			Optional(),
		field.String("cron_expression").
			Optional(),
		field.Time("scheduled_run_at").
			Optional().
			Nillable(),
		field.Time("next_run_at").
			Optional().
			Nillable().
			Comment("When the background worker should pick this row up"),

		// Embedded state machine.
		field.JSON("state_context", map[string]interface{}{}).
			Optional(),
		field.String("state_step").
			Default("initial"),
		field.JSON("state_data", map[string]interface{}{}).
			Optional(),

		// Pending question, present iff status is waiting_input.
		field.Enum("pending_question_type").
			Values("confirmation", "choice", "input").
			Optional(),
		field.Text("pending_question_prompt").
			Optional(),
		field.Strings("pending_question_options").
			Optional(),

		field.String("claude_session_id").
			Optional().
			Comment("Opaque session resumption token, round-tripped to the model harness"),
		field.Strings("skills").
			Optional(),
		field.Int("consecutive_failures").
			Default(0),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Conversation.
func (Conversation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("messages", Message.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("tasks", Task.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("notifications", Notification.Type).
			Annotations(entsql.OnDelete(entsql.SetNull)),
	}
}

// Indexes of the Conversation.
func (Conversation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("status"),

		// Scheduler claim path: due background conversations.
		index.Fields("status", "next_run_at"),
	}
}
