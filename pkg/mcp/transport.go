// Package mcp probes the configured MCP servers. The model harness
// launches servers itself for each run, so this package's job is
// operational: turn registry descriptors into runnable commands and
// keep a live health picture of every configured server.
package mcp

import (
	"fmt"
	"os"
	"os/exec"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/majordomo-io/majordomo/pkg/config"
)

// NewTransport builds a stdio transport for a server descriptor. The
// child inherits the daemon's environment with the descriptor's env
// merged on top.
func NewTransport(cfg *config.MCPServerConfig) (*mcpsdk.CommandTransport, error) {
	if cfg.Command == "" {
		return nil, fmt.Errorf("mcp server requires a command")
	}

	cmd := exec.Command(cfg.Command, cfg.Args...)
	env := os.Environ()
	for k, v := range cfg.Env {
		env = append(env, fmt.Sprintf("%s=%s", k, v))
	}
	cmd.Env = env

	return &mcpsdk.CommandTransport{Command: cmd}, nil
}
