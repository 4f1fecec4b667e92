package mcp

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/majordomo-io/majordomo/pkg/config"
	"github.com/majordomo-io/majordomo/pkg/version"
)

// Default health monitor timings.
const (
	DefaultCheckInterval = 5 * time.Minute
	DefaultProbeTimeout  = 30 * time.Second
)

// HealthStatus captures the probe result for a single MCP server.
type HealthStatus struct {
	ServerID  string    `json:"server_id"`
	Healthy   bool      `json:"healthy"`
	LastCheck time.Time `json:"last_check"`
	Error     string    `json:"error,omitempty"`
	ToolCount int       `json:"tool_count"`
}

// HealthMonitor periodically probes every registered MCP server by
// launching it and listing its tools. Each probe is a full
// connect/list/close cycle, matching what a harness run will do, so a
// healthy status means the descriptor actually works.
type HealthMonitor struct {
	registry      *config.MCPServerRegistry
	checkInterval time.Duration
	probeTimeout  time.Duration

	mu       sync.RWMutex
	statuses map[string]*HealthStatus

	cancel context.CancelFunc
	done   chan struct{}
}

// NewHealthMonitor creates a health monitor over the registry.
func NewHealthMonitor(registry *config.MCPServerRegistry) *HealthMonitor {
	return &HealthMonitor{
		registry:      registry,
		checkInterval: DefaultCheckInterval,
		probeTimeout:  DefaultProbeTimeout,
		statuses:      make(map[string]*HealthStatus),
	}
}

// Start launches the background probe loop. Calling Start on a running
// monitor is a no-op.
func (m *HealthMonitor) Start(ctx context.Context) {
	if m.cancel != nil {
		return
	}
	ctx, m.cancel = context.WithCancel(ctx)
	m.done = make(chan struct{})
	go m.loop(ctx)
}

// Stop shuts the monitor down and clears stale statuses. After Stop
// returns, Start may be called again.
func (m *HealthMonitor) Stop() {
	if m.cancel == nil {
		return
	}
	m.cancel()
	<-m.done

	m.mu.Lock()
	m.statuses = make(map[string]*HealthStatus)
	m.mu.Unlock()

	m.cancel = nil
	m.done = nil
}

// Statuses returns a snapshot of the latest probe results.
func (m *HealthMonitor) Statuses() []*HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*HealthStatus, 0, len(m.statuses))
	for _, st := range m.statuses {
		copied := *st
		out = append(out, &copied)
	}
	return out
}

// IsHealthy reports the latest probe result for one server. Unknown
// servers report false.
func (m *HealthMonitor) IsHealthy(serverID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	st, ok := m.statuses[serverID]
	return ok && st.Healthy
}

func (m *HealthMonitor) loop(ctx context.Context) {
	defer close(m.done)

	m.checkAll(ctx)

	ticker := time.NewTicker(m.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.checkAll(ctx)
		}
	}
}

func (m *HealthMonitor) checkAll(ctx context.Context) {
	for _, serverID := range m.registry.ServerIDs() {
		if ctx.Err() != nil {
			return
		}
		m.checkServer(ctx, serverID)
	}
}

func (m *HealthMonitor) checkServer(ctx context.Context, serverID string) {
	cfg, err := m.registry.Get(serverID)
	if err != nil {
		m.setStatus(serverID, false, err.Error(), 0)
		return
	}

	probeCtx, cancel := context.WithTimeout(ctx, m.probeTimeout)
	defer cancel()

	tools, err := probe(probeCtx, cfg)
	if err != nil {
		slog.Warn("MCP health probe failed", "server", serverID, "error", err)
		m.setStatus(serverID, false, err.Error(), 0)
		return
	}

	m.setStatus(serverID, true, "", tools)
}

// probe launches the server, lists its tools, and tears it down.
func probe(ctx context.Context, cfg *config.MCPServerConfig) (int, error) {
	transport, err := NewTransport(cfg)
	if err != nil {
		return 0, err
	}

	client := mcpsdk.NewClient(&mcpsdk.Implementation{
		Name:    version.AppName,
		Version: version.GitCommit,
	}, nil)

	session, err := client.Connect(ctx, transport, nil)
	if err != nil {
		// Close the transport if it leaks a child process on a failed
		// handshake.
		if closer, ok := any(transport).(io.Closer); ok {
			_ = closer.Close()
		}
		return 0, fmt.Errorf("connect: %w", err)
	}
	defer func() { _ = session.Close() }()

	result, err := session.ListTools(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("list tools: %w", err)
	}
	return len(result.Tools), nil
}

func (m *HealthMonitor) setStatus(serverID string, healthy bool, errMsg string, toolCount int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statuses[serverID] = &HealthStatus{
		ServerID:  serverID,
		Healthy:   healthy,
		LastCheck: time.Now(),
		Error:     errMsg,
		ToolCount: toolCount,
	}
}
