package models

import (
	"time"

	"github.com/majordomo-io/majordomo/ent"
	"github.com/majordomo-io/majordomo/ent/task"
)

// CreateTaskRequest contains fields for creating a task. Exactly one of
// the interval pair and CronExpression must be provided.
type CreateTaskRequest struct {
	ConversationID  string            `json:"conversation_id"`
	UserID          string            `json:"user_id"`
	Name            string            `json:"name"`
	Description     string            `json:"description,omitempty"`
	IntervalValue   *int              `json:"interval_value,omitempty"`
	IntervalUnit    task.IntervalUnit `json:"interval_unit,omitempty"`
	CronExpression  string            `json:"cron_expression,omitempty"`
	MaxRuns         *int              `json:"max_runs,omitempty"`
	DurationSeconds *int              `json:"duration_seconds,omitempty"`
	TaskContext     map[string]any    `json:"task_context,omitempty"`
}

// TaskUpdate contains the partial-update fields for a task. Nil pointers
// leave the column untouched.
type TaskUpdate struct {
	Description         *string
	Status              *task.Status
	NextRunAt           *time.Time
	ClearNextRunAt      bool
	LastRunAt           *time.Time
	CurrentRuns         *int
	ConsecutiveFailures *int
	LastError           *string
	ClearLastError      bool
	TaskContext         map[string]any
}

// TaskFilters contains filtering options for listing tasks
type TaskFilters struct {
	UserID         string `json:"user_id,omitempty"`
	ConversationID string `json:"conversation_id,omitempty"`
	Status         string `json:"status,omitempty"`
	IncludeDeleted bool   `json:"include_deleted,omitempty"`
	Limit          int    `json:"limit,omitempty"`
	Offset         int    `json:"offset,omitempty"`
}

// TaskListResponse contains a paginated task list
type TaskListResponse struct {
	Tasks      []*ent.Task `json:"tasks"`
	TotalCount int         `json:"total_count"`
	Limit      int         `json:"limit"`
	Offset     int         `json:"offset"`
}
