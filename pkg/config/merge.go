package config

// mergeSkills merges built-in and user-defined skill configurations.
// User-defined skills override built-in skills with the same name.
func mergeSkills(builtinSkills map[string]SkillConfig, userSkills map[string]SkillConfig) map[string]*SkillConfig {
	result := make(map[string]*SkillConfig)

	// First, add built-in skills
	for name, skill := range builtinSkills {
		result[name] = skill.Clone()
	}

	// Then, override with user-defined skills (or add new ones)
	for name, userSkill := range userSkills {
		skillCopy := userSkill
		result[name] = &skillCopy
	}

	return result
}

// mergeMCPServers merges built-in provider descriptors and user-defined
// MCP server configurations. User-defined servers override built-in
// servers with the same ID.
func mergeMCPServers(builtinServers map[string]MCPServerConfig, userServers map[string]MCPServerConfig) map[string]*MCPServerConfig {
	result := make(map[string]*MCPServerConfig)

	// First, add built-in servers
	for id, server := range builtinServers {
		result[id] = server.Clone()
	}

	// Then, override with user-defined servers (or add new ones)
	for id, userServer := range userServers {
		serverCopy := userServer
		result[id] = &serverCopy
	}

	return result
}
