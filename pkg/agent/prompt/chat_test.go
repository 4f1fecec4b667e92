package prompt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/majordomo-io/majordomo/ent"
	"github.com/majordomo-io/majordomo/ent/conversation"
	"github.com/majordomo-io/majordomo/ent/message"
	"github.com/majordomo-io/majordomo/ent/task"
)

func intPtr(v int) *int { return &v }

func TestBuildChatSystemPrompt(t *testing.T) {
	maxRuns := 3
	lastRun := time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)

	in := ChatInput{
		Conversation: &ent.Conversation{
			Status:       conversation.StatusActive,
			StateContext: map[string]any{"goal": "inbox zero"},
			StateStep:    "initial",
		},
		Connected: []*ent.Integration{
			{Provider: "gmail", Metadata: map[string]any{"email": "u@example.com"}},
		},
		AvailableProviders: []string{"slack", "filesystem"},
		Tasks: []*ent.Task{
			{
				ID:             "t-1",
				Name:           "inbox-check",
				Status:         task.StatusActive,
				CronExpression: "*/30 * * * *",
				CurrentRuns:    1,
				MaxRuns:        &maxRuns,
				LastRunAt:      &lastRun,
			},
			{ID: "t-2", Name: "old-task", Status: task.StatusCompleted},
		},
	}

	got := BuildChatSystemPrompt(in)

	assert.Contains(t, got, "gmail (u@example.com)")
	assert.Contains(t, got, "slack, filesystem")
	assert.Contains(t, got, `"goal":"inbox zero"`)
	assert.Contains(t, got, `"name":"inbox-check"`)
	assert.Contains(t, got, `"schedule":"cron */30 * * * *"`)
	assert.Contains(t, got, `"maxRuns":3`)
	// Completed tasks are not advertised.
	assert.NotContains(t, got, "old-task")
	assert.Contains(t, got, "CONVERSATION STATUS: active")
	// Action grammar is always present.
	assert.Contains(t, got, `"create_schedule"`)
	assert.Contains(t, got, `"delete_task"`)
}

func TestBuildChatSystemPromptStatusHints(t *testing.T) {
	t.Run("waiting_input mentions the pending question", func(t *testing.T) {
		got := BuildChatSystemPrompt(ChatInput{
			Conversation: &ent.Conversation{
				Status:                conversation.StatusWaitingInput,
				PendingQuestionPrompt: "Which calendar?",
			},
		})
		assert.Contains(t, got, "Which calendar?")
	})

	t.Run("background mentions the schedule", func(t *testing.T) {
		got := BuildChatSystemPrompt(ChatInput{
			Conversation: &ent.Conversation{Status: conversation.StatusBackground},
		})
		assert.Contains(t, got, "runs on a schedule")
	})
}

func TestBuildChatUserPrompt(t *testing.T) {
	history := []*ent.Message{
		{Role: message.RoleUser, Source: message.SourceChat, Content: "check my email"},
		{Role: message.RoleAssistant, Source: message.SourceWorker, Content: "Found 2 new messages."},
	}

	got := BuildChatUserPrompt(history, "anything urgent?")

	assert.Contains(t, got, "CONVERSATION HISTORY:\nuser: check my email\nassistant [background]: Found 2 new messages.\n")
	assert.Contains(t, got, "USER MESSAGE:\nanything urgent?")
}
