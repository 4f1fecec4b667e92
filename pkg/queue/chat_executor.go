package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/majordomo-io/majordomo/ent"
	"github.com/majordomo-io/majordomo/ent/conversation"
	"github.com/majordomo-io/majordomo/ent/message"
	"github.com/majordomo-io/majordomo/ent/task"
	"github.com/majordomo-io/majordomo/pkg/agent"
	"github.com/majordomo-io/majordomo/pkg/agent/prompt"
	"github.com/majordomo-io/majordomo/pkg/config"
	"github.com/majordomo-io/majordomo/pkg/models"
	"github.com/majordomo-io/majordomo/pkg/protocol"
	"github.com/majordomo-io/majordomo/pkg/services"
)

// ChatTurnExecutor processes synchronous chat turns: it persists the
// user message, runs the model with the conversation's toolkit, applies
// whatever structured actions the response carries, and persists the
// assistant message. At most one turn per conversation runs at a time;
// a second concurrent submission gets ErrTurnInProgress.
type ChatTurnExecutor struct {
	chatCfg  *config.ChatConfig
	agentCfg *config.AgentConfig
	servers  *config.MCPServerRegistry

	conversations ConversationStore
	messages      MessageStore
	tasks         TaskStore
	integrations  IntegrationStore
	assembler     *agent.ToolkitAssembler
	runner        agent.Runner
	publisher     EventPublisher // may be nil (events disabled)

	mu       sync.Mutex
	inFlight map[string]struct{} // conversationID → turn in flight
	stopped  bool
	wg       sync.WaitGroup
}

// NewChatTurnExecutor creates a ChatTurnExecutor.
// publisher may be nil (event broadcasting disabled).
func NewChatTurnExecutor(
	chatCfg *config.ChatConfig,
	agentCfg *config.AgentConfig,
	servers *config.MCPServerRegistry,
	conversations ConversationStore,
	messages MessageStore,
	tasks TaskStore,
	integrations IntegrationStore,
	assembler *agent.ToolkitAssembler,
	runner agent.Runner,
	publisher EventPublisher,
) *ChatTurnExecutor {
	return &ChatTurnExecutor{
		chatCfg:       chatCfg,
		agentCfg:      agentCfg,
		servers:       servers,
		conversations: conversations,
		messages:      messages,
		tasks:         tasks,
		integrations:  integrations,
		assembler:     assembler,
		runner:        runner,
		publisher:     publisher,
		inFlight:      make(map[string]struct{}),
	}
}

// Stop rejects new turns and waits for in-flight ones to finish.
// Safe to call multiple times.
func (e *ChatTurnExecutor) Stop() {
	e.mu.Lock()
	e.stopped = true
	e.mu.Unlock()
	e.wg.Wait()
}

// ProcessTurn runs one chat turn for the conversation and blocks until
// the turn completes. The caller's context bounds the whole turn in
// addition to the configured turn timeout.
func (e *ChatTurnExecutor) ProcessTurn(ctx context.Context, conversationID, content string) (*models.ChatTurnResult, error) {
	if err := e.acquire(conversationID); err != nil {
		return nil, err
	}
	defer e.release(conversationID)

	conv, err := e.conversations.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if conv.Status == conversation.StatusArchived {
		return nil, services.ErrArchived
	}

	log := slog.With("conversation_id", conv.ID, "user_id", conv.UserID)

	// History is loaded before the user message is appended so the new
	// content appears exactly once in the prompt.
	history, err := e.messages.LastMessages(ctx, conv.ID, e.chatCfg.HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}

	activeTasks, err := e.activeTasks(ctx, conv.ID)
	if err != nil {
		return nil, err
	}
	connected, err := e.integrations.ListActiveIntegrations(ctx, conv.UserID)
	if err != nil {
		return nil, fmt.Errorf("loading integrations: %w", err)
	}

	tk := e.assembler.Assemble(connected, conv.Skills, nil)

	userMsg, err := e.messages.AppendMessage(ctx, models.AppendMessageRequest{
		ConversationID: conv.ID,
		Role:           message.RoleUser,
		Content:        content,
		Source:         message.SourceChat,
	})
	if err != nil {
		return nil, err
	}

	plan := &agent.QueryPlan{
		Prompt: prompt.BuildChatUserPrompt(history, content),
		SystemPrompt: agent.ComposeSystemPrompt(prompt.BuildChatSystemPrompt(prompt.ChatInput{
			Conversation:       conv,
			Connected:          connected,
			AvailableProviders: e.availableProviders(connected),
			Tasks:              activeTasks,
		}), tk.SkillPrompt),
		SessionID:      conv.ClaudeSessionID,
		AllowedTools:   tk.AllowedTools,
		MCPServers:     tk.MCPServers,
		SubAgents:      tk.SubAgents,
		Timeout:        e.chatCfg.TurnTimeout,
		PermissionMode: e.agentCfg.PermissionMode,
		MaxTurns:       e.agentCfg.MaxTurns,
		Model:          e.agentCfg.Model,
	}

	e.publishActivity(ctx, conv, "started")
	result, err := e.runner.Run(ctx, plan)
	e.publishActivity(ctx, conv, "finished")
	if err != nil {
		log.Error("Chat turn failed", "error", err)
		return nil, err
	}

	directive := protocol.ParseChat(result.Response)

	upd, updated := e.directiveUpdate(conv, directive, time.Now())
	if result.SessionID != "" && result.SessionID != conv.ClaudeSessionID {
		upd.ClaudeSessionID = &result.SessionID
	}
	conv, err = e.conversations.UpdateConversation(ctx, conv.ID, upd)
	if err != nil {
		return nil, fmt.Errorf("applying turn update: %w", err)
	}

	if e.applyTaskDirectives(ctx, conv, directive) {
		updated = true
	}

	assistantMsg, err := e.messages.AppendMessage(ctx, models.AppendMessageRequest{
		ConversationID: conv.ID,
		Role:           message.RoleAssistant,
		Content:        directive.Message,
		Source:         message.SourceChat,
	})
	if err != nil {
		return nil, err
	}

	if upd.Status != nil {
		e.publishConversationStatus(ctx, conv)
	}

	res := &models.ChatTurnResult{
		UserMessage:      userMsg,
		AssistantMessage: assistantMsg,
		Updated:          updated,
		Status:           conv.Status,
	}
	if conv.Status == conversation.StatusWaitingInput && conv.PendingQuestionPrompt != "" {
		res.PendingQuestion = &models.PendingQuestion{
			Type:    conv.PendingQuestionType,
			Prompt:  conv.PendingQuestionPrompt,
			Options: conv.PendingQuestionOptions,
		}
	}
	return res, nil
}

// acquire registers a turn for the conversation, failing when the
// executor is stopped or a turn is already in flight.
func (e *ChatTurnExecutor) acquire(conversationID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return ErrExecutorStopped
	}
	if _, busy := e.inFlight[conversationID]; busy {
		return ErrTurnInProgress
	}
	e.inFlight[conversationID] = struct{}{}
	e.wg.Add(1)
	return nil
}

func (e *ChatTurnExecutor) release(conversationID string) {
	e.mu.Lock()
	delete(e.inFlight, conversationID)
	e.mu.Unlock()
	e.wg.Done()
}

func (e *ChatTurnExecutor) activeTasks(ctx context.Context, conversationID string) ([]*ent.Task, error) {
	resp, err := e.tasks.ListTasks(ctx, models.TaskFilters{
		ConversationID: conversationID,
		Status:         string(task.StatusActive),
	})
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	return resp.Tasks, nil
}

// availableProviders returns configured MCP server ids the user has not
// connected yet, so the model can suggest connecting them.
func (e *ChatTurnExecutor) availableProviders(connected []*ent.Integration) []string {
	inUse := make(map[string]bool, len(connected))
	for _, integ := range connected {
		inUse[integ.Provider] = true
	}
	var available []string
	for _, id := range e.servers.ServerIDs() {
		if !inUse[id] {
			available = append(available, id)
		}
	}
	return available
}

// directiveUpdate translates the exclusive chat directive into a
// conversation update. The returned bool reports whether the directive
// changed conversation state.
func (e *ChatTurnExecutor) directiveUpdate(conv *ent.Conversation, d *protocol.ChatDirective, now time.Time) (models.ConversationUpdate, bool) {
	var upd models.ConversationUpdate

	switch d.Kind {
	case protocol.ChatCreateSchedule:
		return e.scheduleUpdate(conv, d.CreateSchedule, now)

	case protocol.ChatNeedsInput:
		status := conversation.StatusWaitingInput
		upd.Status = &status
		upd.PendingQuestion = &models.PendingQuestion{
			Type:    questionType(d.NeedsInput.Type),
			Prompt:  d.NeedsInput.Prompt,
			Options: d.NeedsInput.Options,
		}
		// A paused conversation must never be claimed by the worker.
		upd.ClearNextRunAt = true
		return upd, true

	case protocol.ChatStateUpdate:
		upd.StateData = mergeState(conv.StateData, d.StateUpdate)
		return upd, true
	}

	// Plain response. A user message to a waiting_input conversation is
	// the answer to the pending question: clear it and resume.
	if conv.Status == conversation.StatusWaitingInput {
		upd.ClearPendingQuestion = true
		if conv.ScheduleType != "" {
			status := conversation.StatusBackground
			upd.Status = &status
			next, err := nextRunForSchedule(conv, now)
			if err != nil {
				slog.Warn("Cannot resume schedule, falling back to active",
					"conversation_id", conv.ID, "error", err)
				status = conversation.StatusActive
			} else {
				upd.NextRunAt = next
			}
		} else {
			status := conversation.StatusActive
			upd.Status = &status
		}
		return upd, true
	}

	return upd, false
}

// scheduleUpdate converts a create_schedule directive. An invalid
// schedule (bad cron, unparseable run_at) is dropped with a warning
// rather than failing the turn: the model already answered the user.
func (e *ChatTurnExecutor) scheduleUpdate(conv *ent.Conversation, sched *protocol.ScheduleDirective, now time.Time) (models.ConversationUpdate, bool) {
	var upd models.ConversationUpdate
	log := slog.With("conversation_id", conv.ID, "schedule_type", sched.Type)

	var scheduleType conversation.ScheduleType
	switch sched.Type {
	case "cron":
		next, err := nextCronRun(sched.CronExpression, now)
		if err != nil {
			log.Warn("Dropping schedule directive", "error", err)
			return upd, false
		}
		scheduleType = conversation.ScheduleTypeCron
		upd.CronExpression = &sched.CronExpression
		upd.NextRunAt = next

	case "scheduled":
		runAt, err := time.Parse(time.RFC3339, sched.RunAt)
		if err != nil {
			log.Warn("Dropping schedule directive", "run_at", sched.RunAt, "error", err)
			return upd, false
		}
		scheduleType = conversation.ScheduleTypeScheduled
		upd.ScheduledRunAt = &runAt
		upd.NextRunAt = &runAt

	case "immediate":
		scheduleType = conversation.ScheduleTypeImmediate
		upd.NextRunAt = &now

	default:
		log.Warn("Dropping schedule directive with unknown type")
		return upd, false
	}

	status := conversation.StatusBackground
	upd.Status = &status
	upd.ScheduleType = &scheduleType
	upd.ClearPendingQuestion = true

	if st := sched.InitialState; st != nil {
		upd.StateContext = orEmpty(st.Context)
		upd.StateData = orEmpty(st.Data)
		step := st.Step
		if step == "" {
			step = "initial"
		}
		upd.StateStep = &step
	}

	return upd, true
}

// applyTaskDirectives handles create_task and delete_task, which apply
// in addition to the exclusive directive. Invalid task parameters are
// logged and skipped, not surfaced as turn failures.
func (e *ChatTurnExecutor) applyTaskDirectives(ctx context.Context, conv *ent.Conversation, d *protocol.ChatDirective) bool {
	changed := false

	if td := d.CreateTask; td != nil {
		req := models.CreateTaskRequest{
			ConversationID: conv.ID,
			UserID:         conv.UserID,
			Name:           td.Name,
			Description:    td.Description,
			CronExpression: td.CronExpression,
			TaskContext:    td.TaskContext,
		}
		if td.IntervalValue > 0 {
			v := td.IntervalValue
			req.IntervalValue = &v
			req.IntervalUnit = task.IntervalUnit(td.IntervalUnit)
		}
		if td.MaxRuns > 0 {
			v := td.MaxRuns
			req.MaxRuns = &v
		}
		if td.DurationSeconds > 0 {
			v := td.DurationSeconds
			req.DurationSeconds = &v
		}

		created, err := e.tasks.CreateTask(ctx, req)
		switch {
		case services.IsValidationError(err):
			slog.Warn("Rejecting task directive", "conversation_id", conv.ID, "task_name", td.Name, "error", err)
		case err != nil:
			slog.Error("Failed to create task", "conversation_id", conv.ID, "task_name", td.Name, "error", err)
		default:
			changed = true
			e.publishTaskStatus(ctx, created)
		}
	}

	if sel := d.DeleteTask; sel != nil {
		if deleted := e.deleteTask(ctx, conv, sel); deleted {
			changed = true
		}
	}

	return changed
}

func (e *ChatTurnExecutor) deleteTask(ctx context.Context, conv *ent.Conversation, sel *protocol.TaskSelector) bool {
	taskID := sel.TaskID
	if taskID == "" {
		t, err := e.tasks.FindTaskByName(ctx, conv.ID, sel.TaskName)
		if err != nil {
			if !errors.Is(err, services.ErrNotFound) {
				slog.Error("Failed to resolve task by name", "conversation_id", conv.ID, "task_name", sel.TaskName, "error", err)
			}
			return false
		}
		taskID = t.ID
	}

	deleted, err := e.tasks.DeleteTask(ctx, taskID)
	if err != nil {
		if !errors.Is(err, services.ErrNotFound) {
			slog.Error("Failed to delete task", "task_id", taskID, "error", err)
		}
		return false
	}
	e.publishTaskStatus(ctx, deleted)
	return true
}

func (e *ChatTurnExecutor) publishActivity(ctx context.Context, conv *ent.Conversation, phase string) {
	publishActivity(ctx, e.publisher, conv.UserID, conv.ID, phase)
}

func (e *ChatTurnExecutor) publishConversationStatus(ctx context.Context, conv *ent.Conversation) {
	publishConversationStatus(ctx, e.publisher, conv)
}

func (e *ChatTurnExecutor) publishTaskStatus(ctx context.Context, t *ent.Task) {
	publishTaskStatus(ctx, e.publisher, t)
}

// questionType maps a wire question type onto the persisted enum,
// defaulting unknown values to free-form input.
func questionType(s string) conversation.PendingQuestionType {
	switch s {
	case "confirmation":
		return conversation.PendingQuestionTypeConfirmation
	case "choice":
		return conversation.PendingQuestionTypeChoice
	default:
		return conversation.PendingQuestionTypeInput
	}
}

// mergeState shallow-merges update into base without mutating either.
func mergeState(base, update map[string]any) map[string]any {
	merged := make(map[string]any, len(base)+len(update))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range update {
		merged[k] = v
	}
	return merged
}

func orEmpty(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}
