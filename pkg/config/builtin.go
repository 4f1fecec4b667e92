package config

import (
	"sync"
)

// BuiltinConfig holds all built-in configuration data: the MCP server
// descriptors for known integration providers and any skills shipped
// with the daemon. User YAML entries override builtins with the same
// name at load time.
type BuiltinConfig struct {
	Skills     map[string]SkillConfig
	MCPServers map[string]MCPServerConfig
}

var (
	builtinConfig     *BuiltinConfig
	builtinConfigOnce sync.Once
)

// GetBuiltinConfig returns the singleton built-in configuration (thread-safe, lazy-initialized)
func GetBuiltinConfig() *BuiltinConfig {
	builtinConfigOnce.Do(initBuiltinConfig)
	return builtinConfig
}

func initBuiltinConfig() {
	builtinConfig = &BuiltinConfig{
		Skills:     initBuiltinSkills(),
		MCPServers: initBuiltinMCPServers(),
	}
}

func initBuiltinSkills() map[string]SkillConfig {
	// No skills ship compiled in; skills come from skills.yaml. The map
	// exists so the merge path treats builtin and user skills uniformly.
	return map[string]SkillConfig{}
}

// initBuiltinMCPServers returns the descriptor for each integration
// provider the toolkit assembler knows how to wire. OAuth env vars
// (OAUTH_ACCESS_TOKEN, OAUTH_REFRESH_TOKEN) and provider extras
// (GMAIL_USER_EMAIL, SLACK_TEAM_ID, --root) are injected per user at
// assembly time, not here.
func initBuiltinMCPServers() map[string]MCPServerConfig {
	return map[string]MCPServerConfig{
		"gmail": {
			Command: "npx",
			Args:    []string{"-y", "@anthropic/mcp-server-gmail"},
		},
		"google_photos": {
			Command: "npx",
			Args:    []string{"-y", "@anthropic/mcp-server-google-photos"},
		},
		"google_drive": {
			Command: "npx",
			Args:    []string{"-y", "@anthropic/mcp-server-google-drive"},
		},
		"slack": {
			Command: "npx",
			Args:    []string{"-y", "@anthropic/mcp-server-slack"},
		},
		"filesystem": {
			Command: "npx",
			Args:    []string{"-y", "@anthropic/mcp-server-filesystem"},
		},
	}
}
