package config

// Config is the umbrella configuration object that encapsulates
// all registries, sections, and configuration state.
// This is the primary object returned by Initialize() and used throughout the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// Daemon-wide settings
	System    *SystemConfig
	Retention *RetentionConfig

	// Worker and chat turn settings
	Worker *WorkerConfig
	Chat   *ChatConfig

	// Model harness invocation settings
	Agent *AgentConfig

	// Component registries
	SkillRegistry     *SkillRegistry
	MCPServerRegistry *MCPServerRegistry
}

// Initialize is defined in loader.go

// Stats contains statistics about loaded configuration
type Stats struct {
	Skills     int
	MCPServers int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.SkillRegistry != nil {
		s.Skills = c.SkillRegistry.Len()
	}
	if c.MCPServerRegistry != nil {
		s.MCPServers = c.MCPServerRegistry.Len()
	}
	return s
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetSkill retrieves a skill configuration by name.
// This is a convenience method that wraps SkillRegistry.Get().
func (c *Config) GetSkill(name string) (*SkillConfig, error) {
	return c.SkillRegistry.Get(name)
}

// GetMCPServer retrieves an MCP server configuration by ID.
// This is a convenience method that wraps MCPServerRegistry.Get().
func (c *Config) GetMCPServer(serverID string) (*MCPServerConfig, error) {
	return c.MCPServerRegistry.Get(serverID)
}

// AllMCPServerIDs returns a sorted list of all configured MCP server IDs.
func (c *Config) AllMCPServerIDs() []string {
	return c.MCPServerRegistry.ServerIDs()
}
