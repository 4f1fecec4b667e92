package agent

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/majordomo-io/majordomo/pkg/config"
)

func TestBuildArgs(t *testing.T) {
	t.Run("minimal plan", func(t *testing.T) {
		args, err := buildArgs(&QueryPlan{Prompt: "hello"})
		require.NoError(t, err)
		assert.Equal(t, []string{"--print", "--output-format", "stream-json", "--verbose", "hello"}, args)
	})

	t.Run("full plan", func(t *testing.T) {
		args, err := buildArgs(&QueryPlan{
			Prompt:         "do it",
			SystemPrompt:   "be brief",
			SessionID:      "sess-1",
			AllowedTools:   []string{"Read", "Bash"},
			PermissionMode: "bypassPermissions",
			MaxTurns:       30,
			Model:          "sonnet",
			MCPServers: map[string]config.MCPServerConfig{
				"gmail": {Command: "npx", Args: []string{"-y", "@anthropic/mcp-server-gmail"}},
			},
			SubAgents: map[string]config.SubAgentConfig{
				"helper": {Description: "helps"},
			},
		})
		require.NoError(t, err)

		joined := strings.Join(args, " ")
		assert.Contains(t, joined, "--append-system-prompt be brief")
		assert.Contains(t, joined, "--resume sess-1")
		assert.Contains(t, joined, "--allowed-tools Read,Bash")
		assert.Contains(t, joined, "--permission-mode bypassPermissions")
		assert.Contains(t, joined, "--max-turns 30")
		assert.Contains(t, joined, "--model sonnet")
		assert.Contains(t, joined, `"mcpServers"`)
		assert.Contains(t, joined, "--agents")
		assert.Equal(t, "do it", args[len(args)-1])
	})

	t.Run("timeout is not a CLI flag", func(t *testing.T) {
		args, err := buildArgs(&QueryPlan{Prompt: "x", Timeout: time.Minute})
		require.NoError(t, err)
		assert.NotContains(t, strings.Join(args, " "), "timeout")
	})
}

func collectEvents(t *testing.T, input string) ([]StreamEvent, bool) {
	t.Helper()
	ch := make(chan StreamEvent, 64)
	done := decodeStream(strings.NewReader(input), ch)
	close(ch)
	var events []StreamEvent
	for ev := range ch {
		events = append(events, ev)
	}
	return events, done
}

func TestDecodeStream(t *testing.T) {
	t.Run("full session", func(t *testing.T) {
		input := `{"type":"system","subtype":"init","session_id":"s-1"}
{"type":"assistant","message":{"content":[{"type":"text","text":"Checking."},{"type":"tool_use","name":"Read","input":{"file_path":"/tmp/x"}}]}}
{"type":"user","message":{"content":[{"type":"tool_result","content":"file body"}]}}
{"type":"assistant","message":{"content":[{"type":"text","text":"Done."}]}}
{"type":"result","subtype":"success","result":"Done.","session_id":"s-1"}
`
		events, done := collectEvents(t, input)
		assert.True(t, done)
		require.Len(t, events, 6)

		assert.Equal(t, InitEvent{SessionID: "s-1"}, events[0])
		assert.Equal(t, AssistantEvent{Content: "Checking."}, events[1])
		tool, ok := events[2].(ToolUseEvent)
		require.True(t, ok)
		assert.Equal(t, "Read", tool.Name)
		assert.Equal(t, ToolResultEvent{Content: "file body"}, events[3])
		assert.Equal(t, DoneEvent{Result: "Done.", SessionID: "s-1"}, events[5])
	})

	t.Run("error result", func(t *testing.T) {
		input := `{"type":"result","subtype":"error_during_execution","is_error":true,"result":"OAuth token expired"}
`
		events, done := collectEvents(t, input)
		assert.True(t, done)
		require.Len(t, events, 1)
		assert.Equal(t, ErrorEvent{Message: "OAuth token expired"}, events[0])
	})

	t.Run("tool result as block list", func(t *testing.T) {
		input := `{"type":"user","message":{"content":[{"type":"tool_result","content":[{"type":"text","text":"a"},{"type":"text","text":"b"}]}]}}
`
		events, done := collectEvents(t, input)
		assert.False(t, done)
		require.Len(t, events, 1)
		assert.Equal(t, ToolResultEvent{Content: "ab"}, events[0])
	})

	t.Run("garbage lines skipped", func(t *testing.T) {
		input := "not json\n\n{\"type\":\"result\",\"subtype\":\"success\",\"result\":\"ok\"}\n"
		events, done := collectEvents(t, input)
		assert.True(t, done)
		require.Len(t, events, 1)
		assert.Equal(t, DoneEvent{Result: "ok"}, events[0])
	})

	t.Run("stream without result line", func(t *testing.T) {
		input := `{"type":"assistant","message":{"content":[{"type":"text","text":"partial"}]}}
`
		events, done := collectEvents(t, input)
		assert.False(t, done)
		require.Len(t, events, 1)
	})
}
