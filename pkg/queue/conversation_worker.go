package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/majordomo-io/majordomo/ent"
	"github.com/majordomo-io/majordomo/ent/conversation"
	"github.com/majordomo-io/majordomo/ent/message"
	"github.com/majordomo-io/majordomo/pkg/agent"
	"github.com/majordomo-io/majordomo/pkg/agent/prompt"
	"github.com/majordomo-io/majordomo/pkg/config"
	"github.com/majordomo-io/majordomo/pkg/models"
	"github.com/majordomo-io/majordomo/pkg/protocol"
)

// ReconnectPrompt is the question a conversation pauses on when its
// credentials stop working mid-cycle.
const ReconnectPrompt = "Your connection has expired. Please reconnect in Settings."

const notificationBodyLimit = 100

// ConversationWorker polls for due background conversations, runs one
// model cycle for each, and applies the structured outcome: advance the
// state machine and reschedule, pause for user input, or complete.
// Claimed rows are processed concurrently up to MaxConcurrent.
type ConversationWorker struct {
	cfg      *config.WorkerConfig
	agentCfg *config.AgentConfig

	conversations ConversationStore
	messages      MessageStore
	integrations  IntegrationStore
	notifications NotificationStore
	assembler     *agent.ToolkitAssembler
	runner        agent.Runner
	publisher     EventPublisher // may be nil (events disabled)

	mu         sync.Mutex
	running    bool
	stopCh     chan struct{}
	active     int
	processed  int
	lastPollAt time.Time
	wg         sync.WaitGroup
}

// NewConversationWorker creates a ConversationWorker.
// publisher may be nil (event broadcasting disabled).
func NewConversationWorker(
	cfg *config.WorkerConfig,
	agentCfg *config.AgentConfig,
	conversations ConversationStore,
	messages MessageStore,
	integrations IntegrationStore,
	notifications NotificationStore,
	assembler *agent.ToolkitAssembler,
	runner agent.Runner,
	publisher EventPublisher,
) *ConversationWorker {
	return &ConversationWorker{
		cfg:           cfg,
		agentCfg:      agentCfg,
		conversations: conversations,
		messages:      messages,
		integrations:  integrations,
		notifications: notifications,
		assembler:     assembler,
		runner:        runner,
		publisher:     publisher,
	}
}

// Start begins the polling loop. Calling Start on a running worker is a
// no-op; a stopped worker can be started again.
func (w *ConversationWorker) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return
	}
	w.running = true
	w.stopCh = make(chan struct{})
	w.wg.Add(1)
	go w.run(w.stopCh)
}

// Stop signals the worker to stop and waits for the poll loop and all
// in-flight cycles to finish. Safe to call multiple times.
func (w *ConversationWorker) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	close(w.stopCh)
	w.mu.Unlock()
	w.wg.Wait()
}

// Health returns a snapshot of the worker's state.
func (w *ConversationWorker) Health() WorkerHealth {
	w.mu.Lock()
	defer w.mu.Unlock()
	return WorkerHealth{
		Name:       "conversations",
		Running:    w.running,
		Active:     w.active,
		Processed:  w.processed,
		LastPollAt: w.lastPollAt,
	}
}

func (w *ConversationWorker) run(stopCh chan struct{}) {
	defer w.wg.Done()
	slog.Info("Conversation worker started", "poll_interval", w.cfg.PollInterval)

	for {
		select {
		case <-stopCh:
			slog.Info("Conversation worker shutting down")
			return
		default:
			if err := w.poll(context.Background()); err != nil {
				if !errors.Is(err, ErrNoWorkAvailable) && !errors.Is(err, ErrAtCapacity) {
					slog.Error("Conversation poll failed", "error", err)
					w.sleep(stopCh, time.Second) // brief backoff on error
					continue
				}
			}
			w.sleep(stopCh, w.pollInterval())
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *ConversationWorker) sleep(stopCh chan struct{}, d time.Duration) {
	select {
	case <-stopCh:
	case <-time.After(d):
	}
}

// pollInterval returns the base interval with jitter applied, so
// concurrent replicas spread their claim transactions.
func (w *ConversationWorker) pollInterval() time.Duration {
	jitter := w.cfg.PollIntervalJitter
	if jitter <= 0 {
		return w.cfg.PollInterval
	}
	return w.cfg.PollInterval + rand.N(2*jitter) - jitter
}

// poll claims up to the free capacity of due conversations and starts a
// cycle goroutine for each.
func (w *ConversationWorker) poll(ctx context.Context) error {
	w.mu.Lock()
	w.lastPollAt = time.Now()
	capacity := w.cfg.MaxConcurrent - w.active
	w.mu.Unlock()
	if capacity <= 0 {
		return ErrAtCapacity
	}

	claimed, err := w.conversations.ClaimReady(ctx, capacity, w.cfg.ClaimHorizon)
	if err != nil {
		return fmt.Errorf("claiming conversations: %w", err)
	}
	if len(claimed) == 0 {
		return ErrNoWorkAvailable
	}

	for _, conv := range claimed {
		w.mu.Lock()
		w.active++
		w.mu.Unlock()
		w.wg.Add(1)
		go func(conv *ent.Conversation) {
			defer w.wg.Done()
			defer func() {
				w.mu.Lock()
				w.active--
				w.processed++
				w.mu.Unlock()
			}()
			w.process(conv)
		}(conv)
	}
	return nil
}

// process runs one background cycle for a claimed conversation.
func (w *ConversationWorker) process(conv *ent.Conversation) {
	ctx, cancel := context.WithTimeout(context.Background(), w.cfg.ExecutionTimeout)
	defer cancel()

	log := slog.With("conversation_id", conv.ID, "step", conv.StateStep)
	log.Info("Background cycle started")

	publishActivity(ctx, w.publisher, conv.UserID, conv.ID, "started")
	defer publishActivity(context.Background(), w.publisher, conv.UserID, conv.ID, "finished")

	result, err := w.invoke(ctx, conv)
	if err != nil {
		w.handleFailure(conv, err)
		return
	}

	w.applyOutcome(conv, protocol.ParseWorker(result.Response), result.SessionID)
}

// invoke assembles the cycle's toolkit and prompts and runs the model.
func (w *ConversationWorker) invoke(ctx context.Context, conv *ent.Conversation) (*agent.Result, error) {
	history, err := w.messages.LastMessages(ctx, conv.ID, w.cfg.MaxMessagesToInclude)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	connected, err := w.integrations.ListActiveIntegrations(ctx, conv.UserID)
	if err != nil {
		return nil, fmt.Errorf("loading integrations: %w", err)
	}
	tk := w.assembler.Assemble(connected, conv.Skills, nil)

	return w.runner.Run(ctx, &agent.QueryPlan{
		Prompt:         prompt.BuildWorkerUserPrompt(conv, history),
		SystemPrompt:   agent.ComposeSystemPrompt(prompt.BuildWorkerSystemPrompt(), tk.SkillPrompt),
		SessionID:      conv.ClaudeSessionID,
		AllowedTools:   tk.AllowedTools,
		MCPServers:     tk.MCPServers,
		SubAgents:      tk.SubAgents,
		PermissionMode: w.agentCfg.PermissionMode,
		MaxTurns:       w.agentCfg.MaxTurns,
		Model:          w.agentCfg.Model,
	})
}

// handleFailure records a failed cycle. Credential failures pause the
// conversation for the user to reconnect; anything else schedules a
// retry, with a notification once the consecutive-failure limit is hit.
func (w *ConversationWorker) handleFailure(conv *ent.Conversation, runErr error) {
	ctx := context.Background()
	log := slog.With("conversation_id", conv.ID)

	if agent.IsAuthError(runErr) {
		log.Warn("Pausing conversation on credential failure", "error", runErr)
		status := conversation.StatusWaitingInput
		updated, err := w.conversations.UpdateConversation(ctx, conv.ID, models.ConversationUpdate{
			Status: &status,
			PendingQuestion: &models.PendingQuestion{
				Type:   conversation.PendingQuestionTypeInput,
				Prompt: ReconnectPrompt,
			},
			ClearNextRunAt: true,
		})
		if err != nil {
			log.Error("Failed to pause conversation", "error", err)
			return
		}
		w.notify(ctx, conv, "Reconnect needed", ReconnectPrompt)
		publishConversationStatus(ctx, w.publisher, updated)
		return
	}

	failures := conv.ConsecutiveFailures + 1
	log.Error("Background cycle failed", "error", runErr, "consecutive_failures", failures)

	upd := models.ConversationUpdate{ConsecutiveFailures: &failures}
	if failures < w.cfg.MaxRetries {
		next := time.Now().Add(w.cfg.PollInterval)
		upd.NextRunAt = &next
	}
	// At or past the limit the claim horizon stays in place, which backs
	// retries off to the horizon interval.
	if _, err := w.conversations.UpdateConversation(ctx, conv.ID, upd); err != nil {
		log.Error("Failed to record cycle failure", "error", err)
		return
	}
	if failures == w.cfg.MaxRetries {
		w.notify(ctx, conv, "Task error", truncate(runErr.Error(), notificationBodyLimit))
	}
}

// applyOutcome persists the parsed outcome of a successful cycle.
func (w *ConversationWorker) applyOutcome(conv *ent.Conversation, out *protocol.WorkerOutcome, sessionID string) {
	ctx := context.Background()
	now := time.Now()
	log := slog.With("conversation_id", conv.ID, "outcome", string(out.Kind))

	zero := 0
	upd := models.ConversationUpdate{ConsecutiveFailures: &zero}
	completed := false
	if sessionID != "" && sessionID != conv.ClaudeSessionID {
		upd.ClaudeSessionID = &sessionID
	}

	switch out.Kind {
	case protocol.WorkerNeedsInput:
		w.append(ctx, conv.ID, out.Message)
		status := conversation.StatusWaitingInput
		upd.Status = &status
		upd.PendingQuestion = &models.PendingQuestion{
			Type:    questionType(out.Question.Type),
			Prompt:  out.Question.Prompt,
			Options: out.Question.Options,
		}
		upd.ClearNextRunAt = true

	case protocol.WorkerComplete:
		w.append(ctx, conv.ID, out.Summary)
		if conv.ScheduleType == conversation.ScheduleTypeCron {
			// Recurring work: this occurrence is done, schedule the next.
			next, err := nextCronRun(conv.CronExpression, now)
			if err != nil {
				log.Warn("Cannot reschedule cron conversation, completing instead", "error", err)
				w.complete(&upd)
				completed = true
			} else {
				upd.NextRunAt = next
			}
		} else {
			w.complete(&upd)
			completed = true
		}

	default: // continue
		if out.StatusMessage != "" {
			w.append(ctx, conv.ID, out.StatusMessage)
		}
		if out.StateUpdate != nil {
			upd.StateData = mergeState(conv.StateData, out.StateUpdate)
		}
		if out.NextStep != "" {
			step := out.NextStep
			upd.StateStep = &step
		}
		next, err := nextRunForSchedule(conv, now)
		if err != nil {
			log.Warn("No schedule to continue on, returning to active", "error", err)
			status := conversation.StatusActive
			upd.Status = &status
			upd.ClearNextRunAt = true
		} else {
			upd.NextRunAt = next
		}
	}

	updated, err := w.conversations.UpdateConversation(ctx, conv.ID, upd)
	if err != nil {
		log.Error("Failed to apply cycle outcome", "error", err)
		return
	}
	log.Info("Background cycle finished")

	if upd.Status != nil {
		publishConversationStatus(ctx, w.publisher, updated)
	}
	if out.Kind == protocol.WorkerNeedsInput {
		w.notify(ctx, conv, waitingTitle(conv), out.Question.Prompt)
	}
	if completed {
		w.notify(ctx, conv, completedTitle(conv), truncate(out.Summary, notificationBodyLimit))
	}
}

// complete returns a conversation to interactive use: schedule gone,
// nothing left to claim.
func (w *ConversationWorker) complete(upd *models.ConversationUpdate) {
	status := conversation.StatusActive
	upd.Status = &status
	upd.ClearSchedule = true
	upd.ClearNextRunAt = true
}

// append records an assistant message produced by a background cycle.
// Failures (such as the conversation being archived mid-cycle) only log.
func (w *ConversationWorker) append(ctx context.Context, conversationID, content string) {
	if content == "" {
		return
	}
	_, err := w.messages.AppendMessage(ctx, models.AppendMessageRequest{
		ConversationID: conversationID,
		Role:           message.RoleAssistant,
		Content:        content,
		Source:         message.SourceWorker,
	})
	if err != nil {
		slog.Warn("Failed to append worker message", "conversation_id", conversationID, "error", err)
	}
}

func (w *ConversationWorker) notify(ctx context.Context, conv *ent.Conversation, title, body string) {
	_, err := w.notifications.CreateNotification(ctx, models.CreateNotificationRequest{
		UserID:         conv.UserID,
		ConversationID: conv.ID,
		Title:          title,
		Body:           body,
	})
	if err != nil {
		slog.Warn("Failed to create notification", "conversation_id", conv.ID, "error", err)
	}
}

func waitingTitle(conv *ent.Conversation) string {
	if conv.Title != "" {
		return conv.Title
	}
	return "Conversation needs your input"
}

func completedTitle(conv *ent.Conversation) string {
	if conv.Title != "" {
		return "Completed: " + conv.Title
	}
	return "Background work completed"
}
