package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillRegistry(t *testing.T) {
	skills := map[string]*SkillConfig{
		"research": {
			Description: "Web research",
			Tools:       []string{"WebSearch"},
		},
		"email-triage": {
			Description: "Inbox triage",
			Tools:       []string{"Read"},
		},
	}

	registry := NewSkillRegistry(skills)

	t.Run("Get existing", func(t *testing.T) {
		skill, err := registry.Get("research")
		require.NoError(t, err)
		assert.Equal(t, "Web research", skill.Description)
	})

	t.Run("Get missing", func(t *testing.T) {
		_, err := registry.Get("nonexistent")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSkillNotFound)
		assert.Contains(t, err.Error(), "nonexistent")
	})

	t.Run("Has", func(t *testing.T) {
		assert.True(t, registry.Has("email-triage"))
		assert.False(t, registry.Has("nonexistent"))
	})

	t.Run("Len and Names", func(t *testing.T) {
		assert.Equal(t, 2, registry.Len())
		assert.Equal(t, []string{"email-triage", "research"}, registry.Names())
	})

	t.Run("GetAll returns copy of map", func(t *testing.T) {
		all := registry.GetAll()
		delete(all, "research")
		assert.True(t, registry.Has("research"))
	})
}

func TestMCPServerRegistry(t *testing.T) {
	servers := map[string]*MCPServerConfig{
		"gmail": {
			Command: "npx",
			Args:    []string{"-y", "@anthropic/mcp-server-gmail"},
		},
		"weather": {
			Command: "npx",
			Args:    []string{"-y", "@example/mcp-weather"},
			Env:     map[string]string{"UNITS": "metric"},
		},
	}

	registry := NewMCPServerRegistry(servers)

	t.Run("Get existing", func(t *testing.T) {
		server, err := registry.Get("gmail")
		require.NoError(t, err)
		assert.Equal(t, "npx", server.Command)
	})

	t.Run("Get missing", func(t *testing.T) {
		_, err := registry.Get("nonexistent")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMCPServerNotFound)
	})

	t.Run("ServerIDs sorted", func(t *testing.T) {
		assert.Equal(t, []string{"gmail", "weather"}, registry.ServerIDs())
	})

	t.Run("Len", func(t *testing.T) {
		assert.Equal(t, 2, registry.Len())
	})
}

func TestMCPServerConfigClone(t *testing.T) {
	original := &MCPServerConfig{
		Command: "npx",
		Args:    []string{"-y", "@anthropic/mcp-server-gmail"},
		Env:     map[string]string{"GMAIL_USER_EMAIL": "a@example.com"},
	}

	clone := original.Clone()
	clone.Args[0] = "changed"
	clone.Env["OAUTH_ACCESS_TOKEN"] = "tok"

	// Mutating the clone must not touch the original.
	assert.Equal(t, "-y", original.Args[0])
	assert.NotContains(t, original.Env, "OAUTH_ACCESS_TOKEN")
}

func TestSkillConfigClone(t *testing.T) {
	original := &SkillConfig{
		Description: "Web research",
		Prompt:      "Prefer primary sources.",
		Tools:       []string{"WebSearch"},
		MCPServers: map[string]MCPServerConfig{
			"fetcher": {Command: "npx", Args: []string{"-y", "@example/mcp-fetch"}},
		},
		SubAgents: map[string]SubAgentConfig{
			"summarizer": {Description: "Condenses findings", Tools: []string{"Read"}},
		},
	}

	clone := original.Clone()
	clone.Tools[0] = "changed"
	fetcher := clone.MCPServers["fetcher"]
	fetcher.Args[0] = "changed"
	sub := clone.SubAgents["summarizer"]
	sub.Tools[0] = "changed"

	assert.Equal(t, "WebSearch", original.Tools[0])
	assert.Equal(t, "-y", original.MCPServers["fetcher"].Args[0])
	assert.Equal(t, "Read", original.SubAgents["summarizer"].Tools[0])
}
