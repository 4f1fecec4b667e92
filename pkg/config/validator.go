package config

import (
	"fmt"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	// Validate in order: MCP servers → skills → sections
	// This ensures dependencies are validated before dependents

	if err := v.validateMCPServers(); err != nil {
		return fmt.Errorf("MCP server validation failed: %w", err)
	}

	if err := v.validateSkills(); err != nil {
		return fmt.Errorf("skill validation failed: %w", err)
	}

	if err := v.validateWorker(); err != nil {
		return fmt.Errorf("worker validation failed: %w", err)
	}

	if err := v.validateChat(); err != nil {
		return fmt.Errorf("chat validation failed: %w", err)
	}

	if err := v.validateAgent(); err != nil {
		return fmt.Errorf("agent validation failed: %w", err)
	}

	if err := v.validateSystem(); err != nil {
		return fmt.Errorf("system validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateMCPServers() error {
	for serverID, server := range v.cfg.MCPServerRegistry.GetAll() {
		if server.Command == "" {
			return NewValidationError("mcp_server", serverID, "command", fmt.Errorf("command required"))
		}
	}
	return nil
}

func (v *ConfigValidator) validateSkills() error {
	for name, skill := range v.cfg.SkillRegistry.GetAll() {
		if skill.Description == "" && skill.Prompt == "" && len(skill.Tools) == 0 &&
			len(skill.MCPServers) == 0 && len(skill.SubAgents) == 0 {
			return NewValidationError("skill", name, "", fmt.Errorf("skill is empty"))
		}

		for _, tool := range skill.Tools {
			if tool == "" {
				return NewValidationError("skill", name, "tools", fmt.Errorf("tool name must not be empty"))
			}
		}

		// Skill-embedded MCP servers carry their own launch spec.
		for serverName, server := range skill.MCPServers {
			if server.Command == "" {
				return NewValidationError("skill", name,
					fmt.Sprintf("mcp_servers.%s.command", serverName),
					fmt.Errorf("command required"))
			}
		}

		for agentName, agent := range skill.SubAgents {
			if agent.Description == "" {
				return NewValidationError("skill", name,
					fmt.Sprintf("sub_agents.%s.description", agentName),
					fmt.Errorf("description required"))
			}
		}
	}
	return nil
}

func (v *ConfigValidator) validateWorker() error {
	w := v.cfg.Worker

	if w.PollInterval <= 0 {
		return NewValidationError("worker", "worker", "poll_interval", fmt.Errorf("must be positive"))
	}
	if w.PollIntervalJitter < 0 || w.PollIntervalJitter >= w.PollInterval {
		return NewValidationError("worker", "worker", "poll_interval_jitter", fmt.Errorf("must be non-negative and less than poll_interval"))
	}
	if w.MaxConcurrent < 1 {
		return NewValidationError("worker", "worker", "max_concurrent", fmt.Errorf("must be at least 1"))
	}
	if w.MaxMessagesToInclude < 1 {
		return NewValidationError("worker", "worker", "max_messages_to_include", fmt.Errorf("must be at least 1"))
	}
	if w.ExecutionTimeout <= 0 {
		return NewValidationError("worker", "worker", "execution_timeout", fmt.Errorf("must be positive"))
	}
	if w.MaxRetries < 1 {
		return NewValidationError("worker", "worker", "max_retries", fmt.Errorf("must be at least 1"))
	}
	if w.MinTaskInterval <= 0 {
		return NewValidationError("worker", "worker", "min_task_interval", fmt.Errorf("must be positive"))
	}
	// The claim horizon must outlast an execution, otherwise a slow run
	// gets claimed twice.
	if w.ClaimHorizon <= w.ExecutionTimeout {
		return NewValidationError("worker", "worker", "claim_horizon", fmt.Errorf("must exceed execution_timeout"))
	}

	return nil
}

func (v *ConfigValidator) validateChat() error {
	c := v.cfg.Chat

	if c.TurnTimeout <= 0 {
		return NewValidationError("chat", "chat", "turn_timeout", fmt.Errorf("must be positive"))
	}
	if c.HistoryLimit < 1 {
		return NewValidationError("chat", "chat", "history_limit", fmt.Errorf("must be at least 1"))
	}

	return nil
}

func (v *ConfigValidator) validateAgent() error {
	a := v.cfg.Agent

	if a.Bin == "" {
		return NewValidationError("agent", "agent", "bin", fmt.Errorf("binary required"))
	}
	if a.MaxTurns < 1 {
		return NewValidationError("agent", "agent", "max_turns", fmt.Errorf("must be at least 1"))
	}

	return nil
}

func (v *ConfigValidator) validateSystem() error {
	s := v.cfg.System

	if s.Port < 1 || s.Port > 65535 {
		return NewValidationError("system", "system", "port", fmt.Errorf("must be between 1 and 65535"))
	}

	r := v.cfg.Retention
	if r.ConversationIdleDays < 1 {
		return NewValidationError("system", "retention", "conversation_idle_days", fmt.Errorf("must be at least 1"))
	}
	if r.NotificationTTL <= 0 {
		return NewValidationError("system", "retention", "notification_ttl", fmt.Errorf("must be positive"))
	}
	if r.EventTTL <= 0 {
		return NewValidationError("system", "retention", "event_ttl", fmt.Errorf("must be positive"))
	}
	if r.CleanupInterval <= 0 {
		return NewValidationError("system", "retention", "cleanup_interval", fmt.Errorf("must be positive"))
	}

	return nil
}
