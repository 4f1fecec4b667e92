package mcp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/majordomo-io/majordomo/pkg/config"
)

func brokenRegistry() *config.MCPServerRegistry {
	return config.NewMCPServerRegistry(map[string]*config.MCPServerConfig{
		"broken": {Command: "/nonexistent/mcp-server"},
	})
}

func TestHealthMonitorUnreachableServer(t *testing.T) {
	m := NewHealthMonitor(brokenRegistry())
	m.probeTimeout = 2 * time.Second

	m.checkServer(context.Background(), "broken")

	statuses := m.Statuses()
	require.Len(t, statuses, 1)
	assert.Equal(t, "broken", statuses[0].ServerID)
	assert.False(t, statuses[0].Healthy)
	assert.NotEmpty(t, statuses[0].Error)
	assert.False(t, statuses[0].LastCheck.IsZero())

	assert.False(t, m.IsHealthy("broken"))
}

func TestHealthMonitorUnknownServer(t *testing.T) {
	m := NewHealthMonitor(brokenRegistry())

	m.checkServer(context.Background(), "missing")

	require.Len(t, m.Statuses(), 1)
	assert.False(t, m.IsHealthy("missing"))
}

func TestHealthMonitorStartStop(t *testing.T) {
	m := NewHealthMonitor(config.NewMCPServerRegistry(map[string]*config.MCPServerConfig{}))
	m.checkInterval = 50 * time.Millisecond

	m.Start(context.Background())
	m.Start(context.Background()) // no-op on a running monitor
	m.Stop()

	// Stop clears stale statuses and allows a restart.
	assert.Empty(t, m.Statuses())
	m.Start(context.Background())
	m.Stop()
	m.Stop() // no-op on a stopped monitor
}

func TestHealthMonitorStatusesAreCopies(t *testing.T) {
	m := NewHealthMonitor(brokenRegistry())
	m.setStatus("broken", true, "", 4)

	statuses := m.Statuses()
	require.Len(t, statuses, 1)
	statuses[0].Healthy = false

	assert.True(t, m.IsHealthy("broken"))
}
