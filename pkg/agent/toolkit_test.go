package agent

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/majordomo-io/majordomo/ent"
	"github.com/majordomo-io/majordomo/pkg/config"
)

// plainDecrypter returns the ciphertext unchanged, except for values in
// failing, which error.
type plainDecrypter struct {
	failing map[string]bool
}

func (d plainDecrypter) Decrypt(ciphertext string) (string, error) {
	if d.failing[ciphertext] {
		return "", errors.New("ciphertext is invalid")
	}
	return ciphertext, nil
}

func testAssembler(t *testing.T, skills map[string]*config.SkillConfig, failing map[string]bool) *ToolkitAssembler {
	t.Helper()
	servers := map[string]*config.MCPServerConfig{}
	for name, cfg := range config.GetBuiltinConfig().MCPServers {
		c := cfg
		servers[name] = &c
	}
	return NewToolkitAssembler(
		config.NewSkillRegistry(skills),
		config.NewMCPServerRegistry(servers),
		plainDecrypter{failing: failing},
	)
}

func TestAssembleIntegrations(t *testing.T) {
	t.Run("injects oauth env and provider extras", func(t *testing.T) {
		a := testAssembler(t, nil, nil)

		tk := a.Assemble([]*ent.Integration{
			{
				Provider:     "gmail",
				AccessToken:  "at-gmail",
				RefreshToken: "rt-gmail",
				Metadata:     map[string]any{"email": "u@example.com"},
			},
			{
				Provider:    "slack",
				AccessToken: "at-slack",
				Metadata:    map[string]any{"team_id": "T123"},
			},
			{
				Provider: "filesystem",
				Metadata: map[string]any{"rootPath": "/srv/data"},
			},
		}, nil, nil)

		require.Len(t, tk.MCPServers, 3)

		gmail := tk.MCPServers["gmail"]
		assert.Equal(t, "at-gmail", gmail.Env["OAUTH_ACCESS_TOKEN"])
		assert.Equal(t, "rt-gmail", gmail.Env["OAUTH_REFRESH_TOKEN"])
		assert.Equal(t, "u@example.com", gmail.Env["GMAIL_USER_EMAIL"])

		slack := tk.MCPServers["slack"]
		assert.Equal(t, "T123", slack.Env["SLACK_TEAM_ID"])
		assert.NotContains(t, slack.Env, "OAUTH_REFRESH_TOKEN")

		fs := tk.MCPServers["filesystem"]
		assert.Equal(t, []string{"-y", "@anthropic/mcp-server-filesystem", "--root", "/srv/data"}, fs.Args)
	})

	t.Run("filesystem root defaults to /tmp", func(t *testing.T) {
		a := testAssembler(t, nil, nil)
		tk := a.Assemble([]*ent.Integration{{Provider: "filesystem"}}, nil, nil)
		assert.Contains(t, tk.MCPServers["filesystem"].Args, "/tmp")
	})

	t.Run("decrypt failure skips only that integration", func(t *testing.T) {
		a := testAssembler(t, nil, map[string]bool{"bad": true})
		tk := a.Assemble([]*ent.Integration{
			{Provider: "gmail", AccessToken: "bad"},
			{Provider: "slack", AccessToken: "ok"},
		}, nil, nil)

		assert.NotContains(t, tk.MCPServers, "gmail")
		assert.Contains(t, tk.MCPServers, "slack")
	})

	t.Run("unknown provider skipped", func(t *testing.T) {
		a := testAssembler(t, nil, nil)
		tk := a.Assemble([]*ent.Integration{{Provider: "teletype"}}, nil, nil)
		assert.Empty(t, tk.MCPServers)
	})

	t.Run("registry descriptor is not mutated", func(t *testing.T) {
		a := testAssembler(t, nil, nil)
		a.Assemble([]*ent.Integration{{Provider: "gmail", AccessToken: "tok"}}, nil, nil)

		descriptor, err := a.servers.Get("gmail")
		require.NoError(t, err)
		assert.Empty(t, descriptor.Env)
	})
}

func TestAssembleSkills(t *testing.T) {
	skills := map[string]*config.SkillConfig{
		"email": {
			Prompt: "You handle email.",
			Tools:  []string{"Read", "WebFetch"},
			MCPServers: map[string]config.MCPServerConfig{
				"gmail": {Command: "custom-gmail"},
			},
		},
		"research": {
			Prompt: "You research topics.",
			Tools:  []string{"WebFetch", "WebSearch"},
			SubAgents: map[string]config.SubAgentConfig{
				"summarizer": {Description: "Summarizes documents", Model: "haiku"},
			},
		},
	}

	t.Run("tool union keeps first occurrence order", func(t *testing.T) {
		a := testAssembler(t, skills, nil)
		tk := a.Assemble(nil, []string{"email", "research"}, nil)

		assert.Equal(t,
			[]string{"Read", "Write", "Edit", "Bash", "Glob", "Grep", "WebFetch", "WebSearch"},
			tk.AllowedTools)
	})

	t.Run("prompts concatenate with blank line", func(t *testing.T) {
		a := testAssembler(t, skills, nil)
		tk := a.Assemble(nil, []string{"email", "research"}, nil)
		assert.Equal(t, "You handle email.\n\nYou research topics.", tk.SkillPrompt)
	})

	t.Run("skill MCP overrides integration MCP by name", func(t *testing.T) {
		a := testAssembler(t, skills, nil)
		tk := a.Assemble(
			[]*ent.Integration{{Provider: "gmail", AccessToken: "tok"}},
			[]string{"email"}, nil)

		assert.Equal(t, "custom-gmail", tk.MCPServers["gmail"].Command)
	})

	t.Run("unknown skill ignored", func(t *testing.T) {
		a := testAssembler(t, skills, nil)
		tk := a.Assemble(nil, []string{"nope", "research"}, nil)
		assert.Contains(t, tk.AllowedTools, "WebSearch")
	})

	t.Run("sub-agents last wins", func(t *testing.T) {
		overriding := map[string]*config.SkillConfig{
			"a": {SubAgents: map[string]config.SubAgentConfig{
				"helper": {Description: "first"},
			}},
			"b": {SubAgents: map[string]config.SubAgentConfig{
				"helper": {Description: "second"},
			}},
		}
		a := testAssembler(t, overriding, nil)
		tk := a.Assemble(nil, []string{"a", "b"}, nil)
		assert.Equal(t, "second", tk.SubAgents["helper"].Description)
	})

	t.Run("explicit allowed tools replace defaults", func(t *testing.T) {
		a := testAssembler(t, skills, nil)
		tk := a.Assemble(nil, []string{"email"}, []string{"Read"})
		assert.Equal(t, []string{"Read", "WebFetch"}, tk.AllowedTools)
	})
}

func TestComposeSystemPrompt(t *testing.T) {
	assert.Equal(t, "a\n\nb", ComposeSystemPrompt("a", "b"))
	assert.Equal(t, "a", ComposeSystemPrompt("a", ""))
	assert.Equal(t, "b", ComposeSystemPrompt("", "b"))
	assert.Equal(t, "", ComposeSystemPrompt("", ""))
}
