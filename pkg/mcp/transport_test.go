package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/majordomo-io/majordomo/pkg/config"
)

func TestNewTransportBuildsCommand(t *testing.T) {
	transport, err := NewTransport(&config.MCPServerConfig{
		Command: "npx",
		Args:    []string{"-y", "@anthropic/mcp-server-gmail"},
		Env:     map[string]string{"OAUTH_ACCESS_TOKEN": "tok"},
	})
	require.NoError(t, err)

	cmd := transport.Command
	assert.Contains(t, cmd.Path, "npx")
	assert.Equal(t, []string{"npx", "-y", "@anthropic/mcp-server-gmail"}, cmd.Args)
	assert.Contains(t, cmd.Env, "OAUTH_ACCESS_TOKEN=tok")
	// Parent environment is inherited alongside the overrides.
	assert.Greater(t, len(cmd.Env), 1)
}

func TestNewTransportRequiresCommand(t *testing.T) {
	_, err := NewTransport(&config.MCPServerConfig{})
	assert.Error(t, err)
}
