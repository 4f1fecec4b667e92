package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	configDir := setupTestConfigDir(t)

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	require.NotNil(t, cfg)

	// Verify registries are populated
	assert.NotNil(t, cfg.SkillRegistry)
	assert.NotNil(t, cfg.MCPServerRegistry)
	assert.NotNil(t, cfg.Worker)
	assert.NotNil(t, cfg.Chat)
	assert.NotNil(t, cfg.Agent)
	assert.NotNil(t, cfg.System)
	assert.NotNil(t, cfg.Retention)

	// Verify built-in provider descriptors are loaded
	assert.True(t, cfg.MCPServerRegistry.Has("gmail"))
	assert.True(t, cfg.MCPServerRegistry.Has("slack"))
	assert.True(t, cfg.MCPServerRegistry.Has("filesystem"))

	// Verify user skill is loaded
	assert.True(t, cfg.SkillRegistry.Has("email-triage"))

	stats := cfg.Stats()
	assert.Equal(t, 1, stats.Skills)
	assert.GreaterOrEqual(t, stats.MCPServers, 5)
}

func TestInitializeWithoutConfigFiles(t *testing.T) {
	// No YAML at all: defaults plus builtins.
	ctx := context.Background()
	cfg, err := Initialize(ctx, t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, 0, cfg.SkillRegistry.Len())
	assert.Equal(t, 5, cfg.MCPServerRegistry.Len())
	assert.Equal(t, 5*time.Second, cfg.Worker.PollInterval)
	assert.Equal(t, 5, cfg.Worker.MaxConcurrent)
	assert.Equal(t, 120*time.Second, cfg.Chat.TurnTimeout)
	assert.Equal(t, "claude", cfg.Agent.Bin)
	assert.Equal(t, 8080, cfg.System.Port)
}

func TestInitializeInvalidYAML(t *testing.T) {
	configDir := t.TempDir()

	invalidYAML := `worker: [not: a: mapping`
	err := os.WriteFile(filepath.Join(configDir, "majordomo.yaml"), []byte(invalidYAML), 0644)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = Initialize(ctx, configDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestInitializeValidationFailure(t *testing.T) {
	configDir := t.TempDir()

	// An MCP server without a command cannot be launched.
	invalidConfig := `
mcp_servers:
  broken-server:
    args: ["-y", "some-package"]
`
	err := os.WriteFile(filepath.Join(configDir, "majordomo.yaml"), []byte(invalidConfig), 0644)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = Initialize(ctx, configDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "broken-server")
}

func TestLoadMajordomoYAML(t *testing.T) {
	configDir := t.TempDir()

	config := `
system:
  port: 9090
  allowed_ws_origins:
    - "app.example.com"
  retention:
    conversation_idle_days: 30

worker:
  poll_interval: 10s
  max_concurrent: 2

chat:
  turn_timeout: 60s

agent:
  bin: "/usr/local/bin/claude"
  max_turns: 10

mcp_servers:
  weather:
    command: "npx"
    args: ["-y", "@example/mcp-weather"]
`
	err := os.WriteFile(filepath.Join(configDir, "majordomo.yaml"), []byte(config), 0644)
	require.NoError(t, err)

	loader := &configLoader{configDir: configDir}
	mainConfig, err := loader.loadMajordomoYAML()

	require.NoError(t, err)
	require.NotNil(t, mainConfig.System)
	assert.Equal(t, 9090, mainConfig.System.Port)
	assert.Equal(t, []string{"app.example.com"}, mainConfig.System.AllowedWSOrigins)
	assert.Equal(t, 30, mainConfig.System.Retention.ConversationIdleDays)
	assert.Equal(t, 10*time.Second, mainConfig.Worker.PollInterval)
	assert.Equal(t, 2, mainConfig.Worker.MaxConcurrent)
	assert.Equal(t, 60*time.Second, mainConfig.Chat.TurnTimeout)
	assert.Equal(t, "/usr/local/bin/claude", mainConfig.Agent.Bin)
	assert.Len(t, mainConfig.MCPServers, 1)
}

func TestLoadSkillsYAML(t *testing.T) {
	configDir := t.TempDir()

	config := `
skills:
  research:
    description: "Web research"
    prompt: "Prefer primary sources."
    tools: ["WebSearch", "WebFetch"]
    sub_agents:
      summarizer:
        description: "Condenses findings"
        tools: ["Read"]
        model: "haiku"
  email-triage:
    description: "Inbox triage"
    mcp_servers:
      gmail-extra:
        command: "npx"
        args: ["-y", "@example/mcp-gmail-extra"]
`
	err := os.WriteFile(filepath.Join(configDir, "skills.yaml"), []byte(config), 0644)
	require.NoError(t, err)

	loader := &configLoader{configDir: configDir}
	skills, err := loader.loadSkillsYAML()

	require.NoError(t, err)
	require.Len(t, skills, 2)

	research := skills["research"]
	assert.Equal(t, "Web research", research.Description)
	assert.Equal(t, []string{"WebSearch", "WebFetch"}, research.Tools)
	require.Contains(t, research.SubAgents, "summarizer")
	assert.Equal(t, "haiku", research.SubAgents["summarizer"].Model)

	triage := skills["email-triage"]
	require.Contains(t, triage.MCPServers, "gmail-extra")
	assert.Equal(t, "npx", triage.MCPServers["gmail-extra"].Command)
}

func TestMergedSectionsKeepUnsetDefaults(t *testing.T) {
	configDir := t.TempDir()

	// Only poll_interval is overridden; everything else must keep its
	// default instead of zeroing out.
	config := `
worker:
  poll_interval: 30s
`
	err := os.WriteFile(filepath.Join(configDir, "majordomo.yaml"), []byte(config), 0644)
	require.NoError(t, err)

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Worker.PollInterval)
	assert.Equal(t, 5, cfg.Worker.MaxConcurrent)
	assert.Equal(t, 5*time.Minute, cfg.Worker.ExecutionTimeout)
	assert.Equal(t, 3, cfg.Worker.MaxRetries)
}

func TestEnvironmentVariableInterpolationInConfig(t *testing.T) {
	configDir := t.TempDir()

	config := `
mcp_servers:
  internal-tools:
    command: "{{.TEST_MCP_COMMAND}}"
    args:
      - "{{.TEST_MCP_ARG}}"
    env:
      API_TOKEN: "{{.TEST_MCP_TOKEN}}"
`
	err := os.WriteFile(filepath.Join(configDir, "majordomo.yaml"), []byte(config), 0644)
	require.NoError(t, err)

	t.Setenv("TEST_MCP_COMMAND", "test-cmd")
	t.Setenv("TEST_MCP_ARG", "arg-value")
	t.Setenv("TEST_MCP_TOKEN", "sekrit")

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	server, err := cfg.MCPServerRegistry.Get("internal-tools")
	require.NoError(t, err)
	assert.Equal(t, "test-cmd", server.Command)
	assert.Equal(t, []string{"arg-value"}, server.Args)
	assert.Equal(t, "sekrit", server.Env["API_TOKEN"])
}

func TestEnvOverrides(t *testing.T) {
	configDir := setupTestConfigDir(t)

	t.Setenv("MAJORDOMO_PORT", "9999")
	t.Setenv("CLAUDE_BIN", "/opt/claude/bin/claude")

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.System.Port)
	assert.Equal(t, "/opt/claude/bin/claude", cfg.Agent.Bin)
}

// Helper function to set up test config directory
func setupTestConfigDir(t *testing.T) string {
	dir := t.TempDir()

	majordomoYAML := `
system:
  port: 8080

mcp_servers: {}
`
	err := os.WriteFile(filepath.Join(dir, "majordomo.yaml"), []byte(majordomoYAML), 0644)
	require.NoError(t, err)

	skillsYAML := `
skills:
  email-triage:
    description: "Inbox triage"
    tools: ["Read"]
`
	err = os.WriteFile(filepath.Join(dir, "skills.yaml"), []byte(skillsYAML), 0644)
	require.NoError(t, err)

	return dir
}
