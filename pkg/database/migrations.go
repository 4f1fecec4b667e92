package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateExpressionIndexes creates PostgreSQL expression indexes that
// Ent cannot express in schema definitions.
func CreateExpressionIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// Case-insensitive task lookup by name within a conversation.
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_tasks_conversation_lower_name
		ON tasks (conversation_id, lower(name))`)
	if err != nil {
		return fmt.Errorf("failed to create task name index: %w", err)
	}

	return nil
}
