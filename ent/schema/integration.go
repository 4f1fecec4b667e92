package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Integration holds the schema definition for the Integration entity: a
// user's connection to an external provider. Tokens are stored sealed
// (see pkg/secrets) and decrypted only while assembling a model
// invocation.
type Integration struct {
	ent.Schema
}

// Fields of the Integration.
func (Integration) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("integration_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("provider").
			Comment("gmail, google_photos, google_drive, slack, filesystem"),
		field.Text("access_token").
			Optional().
			Sensitive().
			Comment("Sealed ciphertext"),
		field.Text("refresh_token").
			Optional().
			Sensitive().
			Comment("Sealed ciphertext"),
		field.Time("token_expires_at").
			Optional().
			Nillable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Provider specifics: email address, team id, root path"),
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

// Indexes of the Integration.
func (Integration) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "provider").
			Unique(),
	}
}
