package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(NotificationCreatedPayload{
			BasePayload: BasePayload{
				Type:   EventTypeNotificationCreated,
				UserID: "user-123",
			},
			NotificationID: "notif-1",
			Title:          "Task: Inbox sweep",
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeNotificationCreated)
		assert.Contains(t, result, "user-123")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		payload, _ := json.Marshal(NotificationCreatedPayload{
			BasePayload: BasePayload{
				Type:   EventTypeNotificationCreated,
				UserID: "user-123",
			},
			NotificationID: "notif-1",
			Body:           strings.Repeat("a", 8000),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, "truncated")
		assert.Less(t, len(result), 8000)
	})

	t.Run("does not truncate small payload", func(t *testing.T) {
		payload, _ := json.Marshal(ConversationActivityPayload{
			BasePayload: BasePayload{
				Type: EventTypeConversationActivity,
			},
			Phase: ActivityStarted,
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("truncated payload preserves routing fields", func(t *testing.T) {
		payload, _ := json.Marshal(NotificationCreatedPayload{
			BasePayload: BasePayload{
				Type:   EventTypeNotificationCreated,
				UserID: "user-789",
			},
			NotificationID: "notif-456",
			ConversationID: "conv-42",
			Body:           strings.Repeat("x", 8000),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)

		assert.Contains(t, result, EventTypeNotificationCreated)
		assert.Contains(t, result, "user-789")
		assert.Contains(t, result, "conv-42")
		assert.Contains(t, result, `"truncated":true`)
		assert.NotContains(t, result, "xxxx")
	})

	t.Run("boundary: payload just under limit is not truncated", func(t *testing.T) {
		// Build a payload whose JSON is just under 7900 bytes. Marshal an
		// empty struct first to measure the overhead of the fixed fields
		// (keys, quotes, separators); the 20-byte margin absorbs encoding
		// variability if fields are added later.
		base, _ := json.Marshal(NotificationCreatedPayload{
			BasePayload: BasePayload{Type: "t"},
		})
		bodySize := 7900 - len(base) - 20
		payload, _ := json.Marshal(NotificationCreatedPayload{
			BasePayload: BasePayload{Type: "t"},
			Body:        strings.Repeat("b", bodySize),
		})
		require.LessOrEqual(t, len(payload), 7900, "test payload should be under limit")

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("empty JSON object", func(t *testing.T) {
		result, err := truncateIfNeeded("{}")
		require.NoError(t, err)
		assert.Equal(t, "{}", result)
	})
}

func TestInjectDBEventIDAndTruncate(t *testing.T) {
	t.Run("injects db_event_id into normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(NotificationCreatedPayload{
			BasePayload: BasePayload{
				Type:   EventTypeNotificationCreated,
				UserID: "user-1",
			},
			NotificationID: "notif-1",
			Title:          "hello",
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "notif-1")
	})

	t.Run("truncated payload preserves db_event_id", func(t *testing.T) {
		payload, _ := json.Marshal(NotificationCreatedPayload{
			BasePayload: BasePayload{
				Type:   EventTypeNotificationCreated,
				UserID: "user-789",
			},
			NotificationID: "notif-456",
			Body:           strings.Repeat("x", 8000),
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "user-789")
	})

	t.Run("truncated payload without conversation_id omits it", func(t *testing.T) {
		payload, _ := json.Marshal(NotificationCreatedPayload{
			BasePayload: BasePayload{
				Type:   EventTypeNotificationCreated,
				UserID: "user-1",
			},
			NotificationID: "notif-789",
			Body:           strings.Repeat("x", 8000),
		})

		result, err := injectDBEventIDAndTruncate(payload, 99)
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, `"db_event_id":99`)
		assert.NotContains(t, result, "conversation_id")
	})
}

func TestNewPublisher(t *testing.T) {
	publisher := NewPublisher(nil)
	assert.NotNil(t, publisher)
	assert.Nil(t, publisher.db)
}
