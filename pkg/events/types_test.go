package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserChannel(t *testing.T) {
	tests := []struct {
		name   string
		userID string
		want   string
	}{
		{
			name:   "formats user channel correctly",
			userID: "alice",
			want:   "user:alice",
		},
		{
			name:   "handles UUID format",
			userID: "550e8400-e29b-41d4-a716-446655440000",
			want:   "user:550e8400-e29b-41d4-a716-446655440000",
		},
		{
			name:   "handles empty string",
			userID: "",
			want:   "user:",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UserChannel(tt.userID)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEventTypeConstants(t *testing.T) {
	// Verify event types are non-empty and distinct
	types := []string{
		EventTypeNotificationCreated,
		EventTypeConversationStatus,
		EventTypeTaskStatus,
		EventTypeConversationActivity,
	}

	seen := make(map[string]bool)
	for _, typ := range types {
		assert.NotEmpty(t, typ, "event type should not be empty")
		assert.False(t, seen[typ], "duplicate event type: %s", typ)
		seen[typ] = true
	}
}

func TestActivityPhaseConstants(t *testing.T) {
	assert.Equal(t, "started", ActivityStarted)
	assert.Equal(t, "finished", ActivityFinished)
	assert.NotEqual(t, ActivityStarted, ActivityFinished)
}
