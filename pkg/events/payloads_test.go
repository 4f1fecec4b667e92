package events

import (
	"encoding/json"
	"testing"

	"github.com/majordomo-io/majordomo/ent/conversation"
	"github.com/majordomo-io/majordomo/ent/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// marshalToMap marshals a payload and decodes it back into a generic map so
// tests can assert on the wire-level JSON keys clients actually see.
func marshalToMap(t *testing.T, payload any) map[string]any {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	return m
}

func TestNotificationCreatedPayload_JSON(t *testing.T) {
	t.Run("full payload", func(t *testing.T) {
		m := marshalToMap(t, NotificationCreatedPayload{
			BasePayload: BasePayload{
				Type:      EventTypeNotificationCreated,
				UserID:    "user-1",
				Timestamp: "2026-08-20T12:00:00Z",
			},
			NotificationID: "notif-1",
			ConversationID: "conv-1",
			Title:          "Task: Inbox sweep",
			Body:           "Archived 12 newsletters.",
		})

		assert.Equal(t, "notification.created", m["type"])
		assert.Equal(t, "user-1", m["user_id"])
		assert.Equal(t, "notif-1", m["notification_id"])
		assert.Equal(t, "conv-1", m["conversation_id"])
		assert.Equal(t, "Task: Inbox sweep", m["title"])
		assert.Equal(t, "Archived 12 newsletters.", m["body"])
		assert.Equal(t, "2026-08-20T12:00:00Z", m["timestamp"])
	})

	t.Run("system notification omits conversation_id and body", func(t *testing.T) {
		m := marshalToMap(t, NotificationCreatedPayload{
			BasePayload: BasePayload{
				Type:   EventTypeNotificationCreated,
				UserID: "user-1",
			},
			NotificationID: "notif-2",
			Title:          "Welcome",
		})

		assert.NotContains(t, m, "conversation_id")
		assert.NotContains(t, m, "body")
	})
}

func TestConversationStatusPayload_JSON(t *testing.T) {
	t.Run("waiting_input carries the pending prompt", func(t *testing.T) {
		m := marshalToMap(t, ConversationStatusPayload{
			BasePayload: BasePayload{
				Type:      EventTypeConversationStatus,
				UserID:    "user-1",
				Timestamp: "2026-08-20T12:00:00Z",
			},
			ConversationID: "conv-1",
			Status:         conversation.StatusWaitingInput,
			PendingPrompt:  "Which calendar should I use?",
		})

		assert.Equal(t, "conversation.status", m["type"])
		assert.Equal(t, "conv-1", m["conversation_id"])
		assert.Equal(t, "waiting_input", m["status"])
		assert.Equal(t, "Which calendar should I use?", m["pending_prompt"])
	})

	t.Run("pending_prompt omitted outside waiting_input", func(t *testing.T) {
		m := marshalToMap(t, ConversationStatusPayload{
			BasePayload: BasePayload{
				Type:   EventTypeConversationStatus,
				UserID: "user-1",
			},
			ConversationID: "conv-1",
			Status:         conversation.StatusBackground,
		})

		assert.Equal(t, "background", m["status"])
		assert.NotContains(t, m, "pending_prompt")
	})
}

func TestTaskStatusPayload_JSON(t *testing.T) {
	t.Run("paused task carries last_error", func(t *testing.T) {
		m := marshalToMap(t, TaskStatusPayload{
			BasePayload: BasePayload{
				Type:      EventTypeTaskStatus,
				UserID:    "user-1",
				Timestamp: "2026-08-20T12:00:00Z",
			},
			TaskID:         "task-1",
			ConversationID: "conv-1",
			Name:           "Inbox sweep",
			Status:         task.StatusPaused,
			LastError:      "gmail: rate limited",
		})

		assert.Equal(t, "task.status", m["type"])
		assert.Equal(t, "task-1", m["task_id"])
		assert.Equal(t, "Inbox sweep", m["name"])
		assert.Equal(t, "paused", m["status"])
		assert.Equal(t, "gmail: rate limited", m["last_error"])
	})

	t.Run("healthy task omits last_error", func(t *testing.T) {
		m := marshalToMap(t, TaskStatusPayload{
			BasePayload: BasePayload{
				Type:   EventTypeTaskStatus,
				UserID: "user-1",
			},
			TaskID:         "task-1",
			ConversationID: "conv-1",
			Name:           "Inbox sweep",
			Status:         task.StatusCompleted,
		})

		assert.Equal(t, "completed", m["status"])
		assert.NotContains(t, m, "last_error")
	})
}

func TestConversationActivityPayload_JSON(t *testing.T) {
	m := marshalToMap(t, ConversationActivityPayload{
		BasePayload: BasePayload{
			Type:      EventTypeConversationActivity,
			UserID:    "user-1",
			Timestamp: "2026-08-20T12:00:00Z",
		},
		ConversationID: "conv-1",
		Phase:          ActivityStarted,
	})

	assert.Equal(t, "conversation.activity", m["type"])
	assert.Equal(t, "conv-1", m["conversation_id"])
	assert.Equal(t, "started", m["phase"])
}
