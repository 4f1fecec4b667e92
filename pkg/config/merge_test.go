package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeMCPServers(t *testing.T) {
	builtin := map[string]MCPServerConfig{
		"gmail": {
			Command: "npx",
			Args:    []string{"-y", "@anthropic/mcp-server-gmail"},
		},
		"slack": {
			Command: "npx",
			Args:    []string{"-y", "@anthropic/mcp-server-slack"},
		},
	}

	user := map[string]MCPServerConfig{
		// Override the builtin gmail descriptor
		"gmail": {
			Command: "node",
			Args:    []string{"/opt/mcp/gmail.js"},
		},
		// Add a new server
		"weather": {
			Command: "npx",
			Args:    []string{"-y", "@example/mcp-weather"},
		},
	}

	merged := mergeMCPServers(builtin, user)

	require.Len(t, merged, 3)
	assert.Equal(t, "node", merged["gmail"].Command, "user entry should override builtin")
	assert.Equal(t, "npx", merged["slack"].Command, "untouched builtin should survive")
	assert.Contains(t, merged, "weather")
}

func TestMergeMCPServersCopiesBuiltins(t *testing.T) {
	builtin := map[string]MCPServerConfig{
		"gmail": {
			Command: "npx",
			Args:    []string{"-y", "@anthropic/mcp-server-gmail"},
		},
	}

	merged := mergeMCPServers(builtin, nil)
	merged["gmail"].Args[0] = "changed"

	assert.Equal(t, "-y", builtin["gmail"].Args[0], "merge must not alias builtin slices")
}

func TestMergeSkills(t *testing.T) {
	builtin := map[string]SkillConfig{
		"research": {
			Description: "Builtin research",
			Tools:       []string{"WebSearch"},
		},
	}

	user := map[string]SkillConfig{
		"research": {
			Description: "User research",
			Tools:       []string{"WebSearch", "WebFetch"},
		},
		"email-triage": {
			Description: "Inbox triage",
		},
	}

	merged := mergeSkills(builtin, user)

	require.Len(t, merged, 2)
	assert.Equal(t, "User research", merged["research"].Description)
	assert.Len(t, merged["research"].Tools, 2)
	assert.Contains(t, merged, "email-triage")
}
