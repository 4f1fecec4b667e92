package events

import (
	"encoding/json"
	"testing"

	"github.com/majordomo-io/majordomo/ent/conversation"
	"github.com/majordomo-io/majordomo/ent/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUserChannelPayloads_ContainUserID is a contract test between the Go
// backend and the frontend WebSocket client.
//
// The frontend routes incoming WS events by inspecting `data.user_id` in the
// JSON payload. ANY payload that is broadcast on a user channel (user:{id})
// MUST include a non-empty `user_id` field — otherwise the frontend silently
// drops it.
//
// All payload structs embed BasePayload which guarantees user_id is present.
// This test guards against:
//   - A new payload struct that forgets to embed BasePayload
//   - A call site that forgets to populate BasePayload.UserID
func TestUserChannelPayloads_ContainUserID(t *testing.T) {
	const testUserID = "user-contract-test"

	// Every payload type that flows through UserChannel(userID).
	// If you add a new payload that goes through a user channel,
	// add it here — the test will fail if user_id is missing.
	tests := []struct {
		name    string
		payload any
	}{
		{
			name: "NotificationCreatedPayload",
			payload: NotificationCreatedPayload{
				BasePayload: BasePayload{
					Type:      EventTypeNotificationCreated,
					UserID:    testUserID,
					Timestamp: "2026-01-01T00:00:00Z",
				},
				NotificationID: "notif-1",
				ConversationID: "conv-1",
				Title:          "Task: Inbox sweep",
				Body:           "Done.",
			},
		},
		{
			name: "ConversationStatusPayload",
			payload: ConversationStatusPayload{
				BasePayload: BasePayload{
					Type:      EventTypeConversationStatus,
					UserID:    testUserID,
					Timestamp: "2026-01-01T00:00:00Z",
				},
				ConversationID: "conv-1",
				Status:         conversation.StatusBackground,
			},
		},
		{
			name: "TaskStatusPayload",
			payload: TaskStatusPayload{
				BasePayload: BasePayload{
					Type:      EventTypeTaskStatus,
					UserID:    testUserID,
					Timestamp: "2026-01-01T00:00:00Z",
				},
				TaskID:         "task-1",
				ConversationID: "conv-1",
				Name:           "Inbox sweep",
				Status:         task.StatusActive,
			},
		},
		{
			name: "ConversationActivityPayload",
			payload: ConversationActivityPayload{
				BasePayload: BasePayload{
					Type:      EventTypeConversationActivity,
					UserID:    testUserID,
					Timestamp: "2026-01-01T00:00:00Z",
				},
				ConversationID: "conv-1",
				Phase:          ActivityStarted,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.payload)
			require.NoError(t, err, "failed to marshal %s", tt.name)

			var parsed map[string]any
			require.NoError(t, json.Unmarshal(data, &parsed), "failed to unmarshal %s", tt.name)

			uid, ok := parsed["user_id"]
			assert.True(t, ok,
				"%s JSON is missing \"user_id\" field — frontend WS routing will silently drop this event", tt.name)
			assert.Equal(t, testUserID, uid,
				"%s user_id has wrong value", tt.name)
		})
	}
}
