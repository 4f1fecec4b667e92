// Package agent invokes the model harness on behalf of chat turns and
// background cycles: it assembles per-user toolkits (skills, MCP
// servers, credentials) into a QueryPlan and runs the plan through a
// Runner.
package agent

import (
	"context"
	"time"

	"github.com/majordomo-io/majordomo/pkg/config"
)

// QueryPlan is one fully-assembled harness invocation: the prompts, the
// session to resume, the tool surface, and the invocation policy.
type QueryPlan struct {
	Prompt       string
	SystemPrompt string

	// SessionID resumes a prior harness session. Empty starts fresh;
	// task runs leave it empty on purpose so they never collide with
	// the interactive session.
	SessionID string

	AllowedTools []string
	MCPServers   map[string]config.MCPServerConfig
	SubAgents    map[string]config.SubAgentConfig

	Timeout        time.Duration
	PermissionMode string
	MaxTurns       int
	Model          string
}

// Result is the aggregated outcome of a harness run.
type Result struct {
	// Response is the final text the model produced.
	Response string

	// SessionID is the resumption token for the session this run used
	// or created.
	SessionID string
}

// Runner executes query plans against the model harness.
type Runner interface {
	// Run executes the plan and returns the aggregated completion.
	Run(ctx context.Context, plan *QueryPlan) (*Result, error)

	// Stream executes the plan and delivers events as they arrive.
	// The channel is closed after a DoneEvent (or an ErrorEvent that
	// ends the run).
	Stream(ctx context.Context, plan *QueryPlan) (<-chan StreamEvent, error)
}

// StreamEvent is one tagged event from a streaming harness run.
type StreamEvent interface {
	streamEvent()
}

// InitEvent opens a stream and carries the session id.
type InitEvent struct {
	SessionID string
}

// AssistantEvent carries a chunk of assistant text.
type AssistantEvent struct {
	Content string
}

// ToolUseEvent reports a tool invocation by the model.
type ToolUseEvent struct {
	Name  string
	Input map[string]any
}

// ToolResultEvent carries the output of a tool invocation.
type ToolResultEvent struct {
	Content string
}

// ErrorEvent reports a harness-side failure.
type ErrorEvent struct {
	Message string
}

// DoneEvent terminates a stream. Result is the final response text when
// the harness reported one.
type DoneEvent struct {
	Result    string
	SessionID string
}

func (InitEvent) streamEvent()       {}
func (AssistantEvent) streamEvent()  {}
func (ToolUseEvent) streamEvent()    {}
func (ToolResultEvent) streamEvent() {}
func (ErrorEvent) streamEvent()      {}
func (DoneEvent) streamEvent()       {}
