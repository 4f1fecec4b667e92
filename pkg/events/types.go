// Package events provides real-time event delivery via WebSocket and
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// Events come in two flavors:
//
// Persistent events (notification.created, conversation.status,
// task.status) are written to the events table and broadcast via
// pg_notify in the same transaction. The row id is injected into the
// NOTIFY payload as db_event_id; clients track the last id they saw and
// replay missed events through the catchup mechanism after a reconnect.
//
// Transient events (conversation.activity) are broadcast via pg_notify
// only. They exist to drive live UI affordances — a spinner while the
// assistant is working — and are simply lost if nobody is listening.
//
// All channels are user-scoped ("user:{user_id}"): a client subscribes
// once per signed-in user and receives every event for that user's
// conversations, tasks, and notifications. Payloads carry user_id and
// (where applicable) conversation_id so multi-view clients can route
// events without extra subscriptions.
package events

// Persistent event types (stored in DB + NOTIFY).
const (
	// A notification row was created for the user.
	EventTypeNotificationCreated = "notification.created"

	// A conversation changed lifecycle status (active, background,
	// waiting_input, archived).
	EventTypeConversationStatus = "conversation.status"

	// A task changed lifecycle status (active, paused, completed, deleted).
	EventTypeTaskStatus = "task.status"
)

// Transient event types (NOTIFY only, no DB persistence).
const (
	// A run started or finished for a conversation — chat turn, background
	// run, or task run. High-frequency, ephemeral.
	EventTypeConversationActivity = "conversation.activity"
)

// Activity phase values (used in ConversationActivityPayload.Phase).
const (
	ActivityStarted  = "started"
	ActivityFinished = "finished"
)

// UserChannel returns the channel name for a user's events.
// Format: "user:{user_id}"
func UserChannel(userID string) string {
	return "user:" + userID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // Channel name (e.g., "user:abc-123")
	LastEventID *int   `json:"last_event_id,omitempty"` // For catchup
}
