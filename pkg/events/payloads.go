package events

import (
	"github.com/majordomo-io/majordomo/ent/conversation"
	"github.com/majordomo-io/majordomo/ent/task"
)

// BasePayload carries the fields common to every event payload. Clients
// route incoming messages by user_id, so every payload that flows through
// a user channel must embed it.
type BasePayload struct {
	Type      string `json:"type"`      // event type constant
	UserID    string `json:"user_id"`   // owning user
	Timestamp string `json:"timestamp"` // RFC3339Nano
}

// NotificationCreatedPayload is the payload for notification.created events.
// Published when a worker or task run produces a notification for the user.
type NotificationCreatedPayload struct {
	BasePayload
	NotificationID string `json:"notification_id"`
	ConversationID string `json:"conversation_id,omitempty"` // empty for system notifications
	Title          string `json:"title"`
	Body           string `json:"body,omitempty"`
}

// ConversationStatusPayload is the payload for conversation.status events.
// Published when a conversation transitions between lifecycle states.
type ConversationStatusPayload struct {
	BasePayload
	ConversationID string              `json:"conversation_id"`
	Status         conversation.Status `json:"status"`                   // active, background, waiting_input, archived
	PendingPrompt  string              `json:"pending_prompt,omitempty"` // set when status is waiting_input
}

// TaskStatusPayload is the payload for task.status events.
// Published when a task is created, paused, resumed, completed, or deleted.
type TaskStatusPayload struct {
	BasePayload
	TaskID         string      `json:"task_id"`
	ConversationID string      `json:"conversation_id"`
	Name           string      `json:"name"`
	Status         task.Status `json:"status"`               // active, paused, completed, deleted
	LastError      string      `json:"last_error,omitempty"` // last run failure, if any
}

// ConversationActivityPayload is the payload for conversation.activity
// transient events. Published around each agent run so open clients can
// show a working indicator — ephemeral, lost on disconnect.
type ConversationActivityPayload struct {
	BasePayload
	ConversationID string `json:"conversation_id"`
	Phase          string `json:"phase"` // started, finished
}
