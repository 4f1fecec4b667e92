package agent

import (
	"log/slog"
	"slices"

	"github.com/majordomo-io/majordomo/ent"
	"github.com/majordomo-io/majordomo/pkg/config"
	"github.com/majordomo-io/majordomo/pkg/secrets"
)

// DefaultAllowedTools is the tool surface every invocation gets unless
// the caller overrides it.
var DefaultAllowedTools = []string{"Read", "Write", "Edit", "Bash", "Glob", "Grep"}

// Toolkit is the merged tool surface for one invocation: the allowed
// tools, the MCP servers to launch (credentials already injected), the
// sub-agents, and the combined skill prompt.
type Toolkit struct {
	AllowedTools []string
	MCPServers   map[string]config.MCPServerConfig
	SubAgents    map[string]config.SubAgentConfig

	// SkillPrompt is the concatenation of the resolved skills' prompt
	// fragments, joined with blank lines. Empty when no skill
	// contributes one.
	SkillPrompt string
}

// ToolkitAssembler builds toolkits from a user's integrations and a
// conversation's skills.
type ToolkitAssembler struct {
	skills    *config.SkillRegistry
	servers   *config.MCPServerRegistry
	decrypter secrets.Decrypter
}

// NewToolkitAssembler creates a ToolkitAssembler. decrypter opens the
// sealed integration tokens.
func NewToolkitAssembler(skills *config.SkillRegistry, servers *config.MCPServerRegistry, decrypter secrets.Decrypter) *ToolkitAssembler {
	return &ToolkitAssembler{
		skills:    skills,
		servers:   servers,
		decrypter: decrypter,
	}
}

// Assemble merges the user's active integrations and the requested
// skills into a Toolkit.
//
// Integrations map to MCP server descriptors with OAuth credentials in
// their env; an integration whose tokens fail to decrypt is skipped with
// a warning and costs nothing else. Skills merge with tool-set union
// (first occurrence wins), last-writer-wins MCP and sub-agent maps, and
// prompt concatenation; unknown skill names are ignored. Skill MCP
// servers override integration servers with the same name.
//
// allowedTools overrides DefaultAllowedTools when non-nil.
func (a *ToolkitAssembler) Assemble(integrations []*ent.Integration, skillNames, allowedTools []string) *Toolkit {
	tk := &Toolkit{
		MCPServers: make(map[string]config.MCPServerConfig),
	}

	for _, integ := range integrations {
		server, ok := a.integrationServer(integ)
		if !ok {
			continue
		}
		tk.MCPServers[integ.Provider] = *server
	}

	tools := allowedTools
	if tools == nil {
		tools = DefaultAllowedTools
	}
	tk.AllowedTools = slices.Clone(tools)

	for _, name := range skillNames {
		skill, err := a.skills.Get(name)
		if err != nil {
			slog.Warn("Unknown skill requested, ignoring", "skill", name)
			continue
		}
		a.mergeSkill(tk, skill)
	}

	return tk
}

// integrationServer resolves the MCP server descriptor for one
// integration and injects its credentials and provider extras.
func (a *ToolkitAssembler) integrationServer(integ *ent.Integration) (*config.MCPServerConfig, bool) {
	descriptor, err := a.servers.Get(integ.Provider)
	if err != nil {
		slog.Warn("No MCP server descriptor for provider, skipping",
			"provider", integ.Provider,
			"user_id", integ.UserID)
		return nil, false
	}

	server := descriptor.Clone()
	if server.Env == nil {
		server.Env = make(map[string]string)
	}

	if integ.AccessToken != "" {
		token, err := a.decrypter.Decrypt(integ.AccessToken)
		if err != nil {
			slog.Warn("Failed to decrypt access token, skipping integration",
				"provider", integ.Provider,
				"user_id", integ.UserID,
				"error", err)
			return nil, false
		}
		server.Env["OAUTH_ACCESS_TOKEN"] = token
	}
	if integ.RefreshToken != "" {
		token, err := a.decrypter.Decrypt(integ.RefreshToken)
		if err != nil {
			slog.Warn("Failed to decrypt refresh token, skipping integration",
				"provider", integ.Provider,
				"user_id", integ.UserID,
				"error", err)
			return nil, false
		}
		server.Env["OAUTH_REFRESH_TOKEN"] = token
	}

	switch integ.Provider {
	case "gmail":
		if email, ok := integ.Metadata["email"].(string); ok && email != "" {
			server.Env["GMAIL_USER_EMAIL"] = email
		}
	case "slack":
		if teamID, ok := integ.Metadata["team_id"].(string); ok && teamID != "" {
			server.Env["SLACK_TEAM_ID"] = teamID
		}
	case "filesystem":
		root := "/tmp"
		if p, ok := integ.Metadata["rootPath"].(string); ok && p != "" {
			root = p
		}
		server.Args = append(server.Args, "--root", root)
	}

	return server, true
}

// mergeSkill folds one skill into the toolkit: tools by union keeping
// first-occurrence order, MCP servers and sub-agents last-wins, prompt
// appended with a blank-line separator.
func (a *ToolkitAssembler) mergeSkill(tk *Toolkit, skill *config.SkillConfig) {
	for _, tool := range skill.Tools {
		if !slices.Contains(tk.AllowedTools, tool) {
			tk.AllowedTools = append(tk.AllowedTools, tool)
		}
	}

	for name, server := range skill.MCPServers {
		tk.MCPServers[name] = *server.Clone()
	}

	if len(skill.SubAgents) > 0 && tk.SubAgents == nil {
		tk.SubAgents = make(map[string]config.SubAgentConfig)
	}
	for name, sub := range skill.SubAgents {
		subCopy := sub
		subCopy.Tools = slices.Clone(sub.Tools)
		tk.SubAgents[name] = subCopy
	}

	if skill.Prompt != "" {
		if tk.SkillPrompt == "" {
			tk.SkillPrompt = skill.Prompt
		} else {
			tk.SkillPrompt += "\n\n" + skill.Prompt
		}
	}
}

// ComposeSystemPrompt joins a caller prompt and a skill prompt with a
// blank line, tolerating either being empty.
func ComposeSystemPrompt(callerPrompt, skillPrompt string) string {
	switch {
	case callerPrompt != "" && skillPrompt != "":
		return callerPrompt + "\n\n" + skillPrompt
	case callerPrompt != "":
		return callerPrompt
	default:
		return skillPrompt
	}
}
