package prompt

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/majordomo-io/majordomo/ent"
	"github.com/majordomo-io/majordomo/ent/message"
)

func TestBuildTaskSystemPrompt(t *testing.T) {
	got := BuildTaskSystemPrompt(&ent.Task{Name: "inbox-check", Description: "Scan for urgent mail"})
	assert.Contains(t, got, `"inbox-check"`)
	assert.Contains(t, got, "Scan for urgent mail")
	assert.Contains(t, got, "plain-text")
}

func TestBuildTaskUserPrompt(t *testing.T) {
	lastRun := time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)

	t.Run("run counter with max", func(t *testing.T) {
		got := BuildTaskUserPrompt(&ent.Task{
			CurrentRuns: 1,
			MaxRuns:     intPtr(3),
			LastRunAt:   &lastRun,
			TaskContext: map[string]any{"folder": "INBOX"},
		}, nil)

		assert.Contains(t, got, "RUN: 2/3")
		assert.Contains(t, got, "LAST RUN: 2024-06-15T09:00:00Z")
		assert.Contains(t, got, `TASK CONTEXT: {"folder":"INBOX"}`)
	})

	t.Run("first unbounded run", func(t *testing.T) {
		got := BuildTaskUserPrompt(&ent.Task{}, nil)
		assert.Contains(t, got, "RUN: 1\n")
		assert.Contains(t, got, "LAST RUN: never")
	})

	t.Run("history capped at ten", func(t *testing.T) {
		var history []*ent.Message
		for i := 0; i < 15; i++ {
			history = append(history, &ent.Message{
				Role:    message.RoleUser,
				Source:  message.SourceChat,
				Content: fmt.Sprintf("msg-%d", i),
			})
		}
		got := BuildTaskUserPrompt(&ent.Task{}, history)
		assert.NotContains(t, got, "msg-4")
		assert.Contains(t, got, "msg-5")
		assert.Contains(t, got, "msg-14")
	})
}
