package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validTestConfig builds a config that passes validation; tests mutate
// one field at a time.
func validTestConfig() *Config {
	return &Config{
		System:    DefaultSystemConfig(),
		Retention: DefaultRetentionConfig(),
		Worker:    DefaultWorkerConfig(),
		Chat:      DefaultChatConfig(),
		Agent:     DefaultAgentConfig(),
		SkillRegistry: NewSkillRegistry(map[string]*SkillConfig{
			"research": {Description: "Web research", Tools: []string{"WebSearch"}},
		}),
		MCPServerRegistry: NewMCPServerRegistry(map[string]*MCPServerConfig{
			"gmail": {Command: "npx", Args: []string{"-y", "@anthropic/mcp-server-gmail"}},
		}),
	}
}

func TestValidateAllValid(t *testing.T) {
	cfg := validTestConfig()
	require.NoError(t, NewValidator(cfg).ValidateAll())
}

func TestValidateAll(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(cfg *Config)
		errContains string
	}{
		{
			name: "mcp server without command",
			mutate: func(cfg *Config) {
				cfg.MCPServerRegistry = NewMCPServerRegistry(map[string]*MCPServerConfig{
					"broken": {Args: []string{"-y", "pkg"}},
				})
			},
			errContains: "command required",
		},
		{
			name: "empty skill",
			mutate: func(cfg *Config) {
				cfg.SkillRegistry = NewSkillRegistry(map[string]*SkillConfig{
					"hollow": {},
				})
			},
			errContains: "skill is empty",
		},
		{
			name: "skill with blank tool name",
			mutate: func(cfg *Config) {
				cfg.SkillRegistry = NewSkillRegistry(map[string]*SkillConfig{
					"research": {Tools: []string{"WebSearch", ""}},
				})
			},
			errContains: "tool name must not be empty",
		},
		{
			name: "skill mcp server without command",
			mutate: func(cfg *Config) {
				cfg.SkillRegistry = NewSkillRegistry(map[string]*SkillConfig{
					"research": {
						Description: "Web research",
						MCPServers:  map[string]MCPServerConfig{"fetcher": {}},
					},
				})
			},
			errContains: "mcp_servers.fetcher.command",
		},
		{
			name: "sub agent without description",
			mutate: func(cfg *Config) {
				cfg.SkillRegistry = NewSkillRegistry(map[string]*SkillConfig{
					"research": {
						Description: "Web research",
						SubAgents:   map[string]SubAgentConfig{"helper": {Tools: []string{"Read"}}},
					},
				})
			},
			errContains: "sub_agents.helper.description",
		},
		{
			name:        "zero poll interval",
			mutate:      func(cfg *Config) { cfg.Worker.PollInterval = 0 },
			errContains: "poll_interval",
		},
		{
			name:        "jitter exceeding poll interval",
			mutate:      func(cfg *Config) { cfg.Worker.PollIntervalJitter = 10 * time.Second },
			errContains: "poll_interval_jitter",
		},
		{
			name:        "zero max concurrent",
			mutate:      func(cfg *Config) { cfg.Worker.MaxConcurrent = 0 },
			errContains: "max_concurrent",
		},
		{
			name:        "claim horizon below execution timeout",
			mutate:      func(cfg *Config) { cfg.Worker.ClaimHorizon = time.Minute },
			errContains: "claim_horizon",
		},
		{
			name:        "zero turn timeout",
			mutate:      func(cfg *Config) { cfg.Chat.TurnTimeout = 0 },
			errContains: "turn_timeout",
		},
		{
			name:        "empty agent bin",
			mutate:      func(cfg *Config) { cfg.Agent.Bin = "" },
			errContains: "binary required",
		},
		{
			name:        "port out of range",
			mutate:      func(cfg *Config) { cfg.System.Port = 70000 },
			errContains: "port",
		},
		{
			name:        "zero event ttl",
			mutate:      func(cfg *Config) { cfg.Retention.EventTTL = 0 },
			errContains: "event_ttl",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg)

			err := NewValidator(cfg).ValidateAll()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}
