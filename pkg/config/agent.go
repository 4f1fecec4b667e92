// Package config provides configuration management for the majordomo
// daemon: skills, MCP server descriptors, worker and chat knobs, and
// harness invocation settings.
package config

// AgentConfig defines how the model harness binary is invoked. The
// daemon shells out to the Claude Code CLI for every chat turn and
// background cycle; these knobs shape that invocation.
type AgentConfig struct {
	// Bin is the harness binary. Overridden by the CLAUDE_BIN
	// environment variable.
	Bin string `yaml:"bin"`

	// PermissionMode is passed through as --permission-mode. Background
	// cycles cannot answer interactive permission prompts, so the
	// default lets tool calls through.
	PermissionMode string `yaml:"permission_mode"`

	// MaxTurns caps agentic tool-use turns per invocation.
	MaxTurns int `yaml:"max_turns"`

	// WorkDir is the working directory for harness subprocesses.
	// Empty means inherit the daemon's.
	WorkDir string `yaml:"work_dir"`

	// Model optionally pins a model name (--model). Empty uses the
	// harness default.
	Model string `yaml:"model,omitempty"`
}

// DefaultAgentConfig returns the built-in harness defaults.
func DefaultAgentConfig() *AgentConfig {
	return &AgentConfig{
		Bin:            "claude",
		PermissionMode: "bypassPermissions",
		MaxTurns:       30,
	}
}
