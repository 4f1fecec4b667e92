package config

import (
	"fmt"
	"slices"
	"sync"
)

// SkillConfig is a named capability bundle attached to conversations:
// a prompt fragment, the tools it needs, MCP servers it brings along,
// and sub-agents it makes dispatchable. Skills are static configuration,
// composed at invocation time (tool union, last-wins maps, prompt
// concatenation).
type SkillConfig struct {
	Description string                     `yaml:"description,omitempty"`
	Prompt      string                     `yaml:"prompt,omitempty"`
	Tools       []string                   `yaml:"tools,omitempty"`
	MCPServers  map[string]MCPServerConfig `yaml:"mcp_servers,omitempty"`
	SubAgents   map[string]SubAgentConfig  `yaml:"sub_agents,omitempty"`
}

// SubAgentConfig describes a sub-agent a skill exposes to the harness.
type SubAgentConfig struct {
	Description string   `yaml:"description"`
	Prompt      string   `yaml:"prompt,omitempty"`
	Tools       []string `yaml:"tools,omitempty"`
	Model       string   `yaml:"model,omitempty"`
}

// Clone returns a deep copy of the skill configuration.
func (s *SkillConfig) Clone() *SkillConfig {
	out := &SkillConfig{
		Description: s.Description,
		Prompt:      s.Prompt,
		Tools:       slices.Clone(s.Tools),
	}
	if s.MCPServers != nil {
		out.MCPServers = make(map[string]MCPServerConfig, len(s.MCPServers))
		for name, server := range s.MCPServers {
			out.MCPServers[name] = *server.Clone()
		}
	}
	if s.SubAgents != nil {
		out.SubAgents = make(map[string]SubAgentConfig, len(s.SubAgents))
		for name, agent := range s.SubAgents {
			agentCopy := agent
			agentCopy.Tools = slices.Clone(agent.Tools)
			out.SubAgents[name] = agentCopy
		}
	}
	return out
}

// SkillRegistry stores skill configurations in memory with thread-safe access
type SkillRegistry struct {
	skills map[string]*SkillConfig
	mu     sync.RWMutex
}

// NewSkillRegistry creates a new skill registry
func NewSkillRegistry(skills map[string]*SkillConfig) *SkillRegistry {
	return &SkillRegistry{
		skills: skills,
	}
}

// Get retrieves a skill configuration by name (thread-safe)
func (r *SkillRegistry) Get(name string) (*SkillConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	skill, exists := r.skills[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrSkillNotFound, name)
	}
	return skill, nil
}

// GetAll returns all skill configurations (thread-safe, returns copy)
func (r *SkillRegistry) GetAll() map[string]*SkillConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*SkillConfig, len(r.skills))
	for k, v := range r.skills {
		result[k] = v
	}
	return result
}

// Has checks if a skill exists in the registry (thread-safe)
func (r *SkillRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.skills[name]
	return exists
}

// Len returns the number of registered skills (thread-safe)
func (r *SkillRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.skills)
}

// Names returns a sorted list of all registered skill names (thread-safe)
func (r *SkillRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.skills))
	for name := range r.skills {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
