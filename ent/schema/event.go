package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity: the persisted
// log behind NOTIFY fan-out, kept so WebSocket clients can catch up on
// events missed while disconnected. Rows are pruned by the cleanup
// service after a TTL.
type Event struct {
	ent.Schema
}

// Fields of the Event. The implicit integer id doubles as the catch-up
// cursor: clients resend the last id they saw.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("channel").
			Comment("NOTIFY channel the payload was broadcast on"),
		field.JSON("payload", map[string]interface{}{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("channel"),
		index.Fields("created_at"),
	}
}
