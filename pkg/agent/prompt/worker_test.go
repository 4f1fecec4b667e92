package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/majordomo-io/majordomo/ent"
	"github.com/majordomo-io/majordomo/ent/message"
)

func TestBuildWorkerSystemPrompt(t *testing.T) {
	got := BuildWorkerSystemPrompt()

	// The three worker outcomes are all declared.
	assert.Contains(t, got, `{"continue": true`)
	assert.Contains(t, got, `{"complete": true`)
	assert.Contains(t, got, `{"needs_input": true`)
	// The boolean-vs-object distinction is spelled out.
	assert.Contains(t, got, "boolean true")
}

func TestBuildWorkerUserPrompt(t *testing.T) {
	conv := &ent.Conversation{
		StateContext: map[string]any{"task": "check email"},
		StateStep:    "scanning",
		StateData:    map[string]any{"seen": 4},
	}
	history := []*ent.Message{
		{Role: message.RoleUser, Source: message.SourceChat, Content: "watch my inbox"},
	}

	got := BuildWorkerUserPrompt(conv, history)

	assert.Contains(t, got, `CONTEXT: {"task":"check email"}`)
	assert.Contains(t, got, "CURRENT STEP: scanning")
	assert.Contains(t, got, "user: watch my inbox")
	assert.Contains(t, got, `STATE DATA: {"seen":4}`)
}

func TestBuildWorkerUserPromptEmptyState(t *testing.T) {
	got := BuildWorkerUserPrompt(&ent.Conversation{StateStep: "initial"}, nil)
	assert.Contains(t, got, "CONTEXT: {}")
	assert.Contains(t, got, "STATE DATA: {}")
}
