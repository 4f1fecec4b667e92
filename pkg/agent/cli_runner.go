package agent

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"

	"github.com/majordomo-io/majordomo/pkg/config"
)

// CLIRunner executes query plans by shelling out to the Claude Code CLI
// in --print mode and parsing its stream-json output. One subprocess per
// invocation; session continuity comes from --resume, not from keeping
// the process alive.
type CLIRunner struct {
	bin     string
	workDir string
}

// NewCLIRunner creates a CLIRunner from the harness configuration.
func NewCLIRunner(cfg *config.AgentConfig) *CLIRunner {
	return &CLIRunner{
		bin:     cfg.Bin,
		workDir: cfg.WorkDir,
	}
}

// Run executes the plan and folds the event stream into an aggregated
// result. The final response prefers the harness's result line and falls
// back to the concatenated assistant text.
func (r *CLIRunner) Run(ctx context.Context, plan *QueryPlan) (*Result, error) {
	ch, err := r.Stream(ctx, plan)
	if err != nil {
		return nil, err
	}

	var (
		res       Result
		assistant strings.Builder
		errMsg    string
	)
	for ev := range ch {
		switch e := ev.(type) {
		case InitEvent:
			res.SessionID = e.SessionID
		case AssistantEvent:
			assistant.WriteString(e.Content)
		case ErrorEvent:
			errMsg = e.Message
		case DoneEvent:
			if e.Result != "" {
				res.Response = e.Result
			}
			if e.SessionID != "" {
				res.SessionID = e.SessionID
			}
		}
	}
	if errMsg != "" {
		return nil, fmt.Errorf("harness run failed: %s", errMsg)
	}
	if res.Response == "" {
		res.Response = assistant.String()
	}
	return &res, nil
}

// Stream launches the subprocess and delivers parsed events. The channel
// always ends with a DoneEvent or an ErrorEvent and is then closed.
// In-process failures (timeout, non-zero exit) surface as ErrorEvents,
// not as a second error return.
func (r *CLIRunner) Stream(ctx context.Context, plan *QueryPlan) (<-chan StreamEvent, error) {
	cancel := context.CancelFunc(func() {})
	if plan.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, plan.Timeout)
	}

	args, err := buildArgs(plan)
	if err != nil {
		cancel()
		return nil, err
	}

	cmd := exec.CommandContext(ctx, r.bin, args...)
	cmd.Dir = r.workDir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		cancel()
		return nil, fmt.Errorf("opening harness stdout: %w", err)
	}
	if err := cmd.Start(); err != nil {
		cancel()
		return nil, fmt.Errorf("starting harness %q: %w", r.bin, err)
	}

	ch := make(chan StreamEvent, 16)
	go func() {
		defer close(ch)
		defer cancel()

		doneSeen := decodeStream(stdout, ch)
		waitErr := cmd.Wait()

		switch {
		case doneSeen:
			// Terminal event already delivered.
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			ch <- ErrorEvent{Message: fmt.Sprintf("harness timed out after %s", plan.Timeout)}
		case waitErr != nil:
			msg := strings.TrimSpace(stderr.String())
			if msg == "" {
				msg = waitErr.Error()
			}
			ch <- ErrorEvent{Message: msg}
		default:
			ch <- DoneEvent{}
		}
	}()

	return ch, nil
}

// buildArgs assembles the CLI argument list for a plan. The prompt is
// the final positional argument.
func buildArgs(plan *QueryPlan) ([]string, error) {
	args := []string{"--print", "--output-format", "stream-json", "--verbose"}

	if plan.SystemPrompt != "" {
		args = append(args, "--append-system-prompt", plan.SystemPrompt)
	}
	if plan.SessionID != "" {
		args = append(args, "--resume", plan.SessionID)
	}
	if len(plan.AllowedTools) > 0 {
		args = append(args, "--allowed-tools", strings.Join(plan.AllowedTools, ","))
	}
	if plan.PermissionMode != "" {
		args = append(args, "--permission-mode", plan.PermissionMode)
	}
	if plan.MaxTurns > 0 {
		args = append(args, "--max-turns", strconv.Itoa(plan.MaxTurns))
	}
	if plan.Model != "" {
		args = append(args, "--model", plan.Model)
	}
	if len(plan.MCPServers) > 0 {
		doc, err := json.Marshal(map[string]any{"mcpServers": plan.MCPServers})
		if err != nil {
			return nil, fmt.Errorf("encoding MCP config: %w", err)
		}
		args = append(args, "--mcp-config", string(doc))
	}
	if len(plan.SubAgents) > 0 {
		doc, err := json.Marshal(subAgentsDoc(plan.SubAgents))
		if err != nil {
			return nil, fmt.Errorf("encoding sub-agents: %w", err)
		}
		args = append(args, "--agents", string(doc))
	}

	return append(args, plan.Prompt), nil
}

// subAgentsDoc shapes the sub-agent map for --agents.
func subAgentsDoc(subAgents map[string]config.SubAgentConfig) map[string]any {
	doc := make(map[string]any, len(subAgents))
	for name, sub := range subAgents {
		entry := map[string]any{"description": sub.Description}
		if sub.Prompt != "" {
			entry["prompt"] = sub.Prompt
		}
		if len(sub.Tools) > 0 {
			entry["tools"] = sub.Tools
		}
		if sub.Model != "" {
			entry["model"] = sub.Model
		}
		doc[name] = entry
	}
	return doc
}

// streamLine is the decoded shape of one stream-json output line. Only
// the fields the daemon cares about are listed; everything else is
// ignored.
type streamLine struct {
	Type      string `json:"type"`
	Subtype   string `json:"subtype"`
	SessionID string `json:"session_id"`
	Result    string `json:"result"`
	IsError   bool   `json:"is_error"`
	Message   *struct {
		Content []contentBlock `json:"content"`
	} `json:"message"`
}

// contentBlock is one block inside an assistant or user message.
type contentBlock struct {
	Type    string          `json:"type"`
	Text    string          `json:"text"`
	Name    string          `json:"name"`
	Input   map[string]any  `json:"input"`
	Content json.RawMessage `json:"content"`
}

// decodeStream translates stream-json lines into events. Returns whether
// a terminal event (DoneEvent or ErrorEvent from a result line) was
// emitted. Unparseable lines are skipped.
func decodeStream(r io.Reader, ch chan<- StreamEvent) bool {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)

	terminal := false
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var entry streamLine
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}

		switch entry.Type {
		case "system":
			if entry.Subtype == "init" && entry.SessionID != "" {
				ch <- InitEvent{SessionID: entry.SessionID}
			}
		case "assistant":
			if entry.Message == nil {
				continue
			}
			for _, block := range entry.Message.Content {
				switch block.Type {
				case "text":
					if block.Text != "" {
						ch <- AssistantEvent{Content: block.Text}
					}
				case "tool_use":
					ch <- ToolUseEvent{Name: block.Name, Input: block.Input}
				}
			}
		case "user":
			if entry.Message == nil {
				continue
			}
			for _, block := range entry.Message.Content {
				if block.Type == "tool_result" {
					ch <- ToolResultEvent{Content: toolResultText(block.Content)}
				}
			}
		case "result":
			terminal = true
			if entry.IsError {
				msg := entry.Result
				if msg == "" {
					msg = entry.Subtype
				}
				ch <- ErrorEvent{Message: msg}
			} else {
				ch <- DoneEvent{Result: entry.Result, SessionID: entry.SessionID}
			}
		}
	}
	return terminal
}

// toolResultText flattens a tool_result content field, which the
// harness emits either as a bare string or as a list of text blocks.
func toolResultText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var blocks []contentBlock
	if err := json.Unmarshal(raw, &blocks); err == nil {
		var b strings.Builder
		for _, block := range blocks {
			if block.Type == "text" {
				b.WriteString(block.Text)
			}
		}
		return b.String()
	}
	return string(raw)
}
