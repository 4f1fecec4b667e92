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
	"github.com/majordomo-io/majordomo/ent/message"
	"github.com/majordomo-io/majordomo/ent/task"
	"github.com/majordomo-io/majordomo/pkg/agent"
	"github.com/majordomo-io/majordomo/pkg/agent/prompt"
	"github.com/majordomo-io/majordomo/pkg/config"
	"github.com/majordomo-io/majordomo/pkg/models"
	"github.com/majordomo-io/majordomo/pkg/services"
)

// TaskWorker polls for due tasks and executes each as an isolated model
// run: no session resumption, full task context in the prompt. Results
// land in the parent conversation as worker messages plus a
// notification, and the run counters decide whether the task
// reschedules, completes, or pauses.
type TaskWorker struct {
	cfg      *config.WorkerConfig
	agentCfg *config.AgentConfig

	tasks         TaskStore
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

// NewTaskWorker creates a TaskWorker.
// publisher may be nil (event broadcasting disabled).
func NewTaskWorker(
	cfg *config.WorkerConfig,
	agentCfg *config.AgentConfig,
	tasks TaskStore,
	conversations ConversationStore,
	messages MessageStore,
	integrations IntegrationStore,
	notifications NotificationStore,
	assembler *agent.ToolkitAssembler,
	runner agent.Runner,
	publisher EventPublisher,
) *TaskWorker {
	return &TaskWorker{
		cfg:           cfg,
		agentCfg:      agentCfg,
		tasks:         tasks,
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
func (w *TaskWorker) Start() {
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
// in-flight runs to finish. Safe to call multiple times.
func (w *TaskWorker) Stop() {
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
func (w *TaskWorker) Health() WorkerHealth {
	w.mu.Lock()
	defer w.mu.Unlock()
	return WorkerHealth{
		Name:       "tasks",
		Running:    w.running,
		Active:     w.active,
		Processed:  w.processed,
		LastPollAt: w.lastPollAt,
	}
}

func (w *TaskWorker) run(stopCh chan struct{}) {
	defer w.wg.Done()
	slog.Info("Task worker started", "poll_interval", w.cfg.PollInterval)

	for {
		select {
		case <-stopCh:
			slog.Info("Task worker shutting down")
			return
		default:
			if err := w.poll(context.Background()); err != nil {
				if !errors.Is(err, ErrNoWorkAvailable) && !errors.Is(err, ErrAtCapacity) {
					slog.Error("Task poll failed", "error", err)
					w.sleep(stopCh, time.Second)
					continue
				}
			}
			w.sleep(stopCh, w.pollInterval())
		}
	}
}

func (w *TaskWorker) sleep(stopCh chan struct{}, d time.Duration) {
	select {
	case <-stopCh:
	case <-time.After(d):
	}
}

func (w *TaskWorker) pollInterval() time.Duration {
	jitter := w.cfg.PollIntervalJitter
	if jitter <= 0 {
		return w.cfg.PollInterval
	}
	return w.cfg.PollInterval + rand.N(2*jitter) - jitter
}

func (w *TaskWorker) poll(ctx context.Context) error {
	w.mu.Lock()
	w.lastPollAt = time.Now()
	capacity := w.cfg.MaxConcurrent - w.active
	w.mu.Unlock()
	if capacity <= 0 {
		return ErrAtCapacity
	}

	claimed, err := w.tasks.ClaimReady(ctx, capacity, w.cfg.ClaimHorizon)
	if err != nil {
		return fmt.Errorf("claiming tasks: %w", err)
	}
	if len(claimed) == 0 {
		return ErrNoWorkAvailable
	}

	for _, t := range claimed {
		w.mu.Lock()
		w.active++
		w.mu.Unlock()
		w.wg.Add(1)
		go func(t *ent.Task) {
			defer w.wg.Done()
			defer func() {
				w.mu.Lock()
				w.active--
				w.processed++
				w.mu.Unlock()
			}()
			w.process(t)
		}(t)
	}
	return nil
}

// process runs one execution of a claimed task.
func (w *TaskWorker) process(t *ent.Task) {
	ctx, cancel := context.WithTimeout(context.Background(), w.cfg.ExecutionTimeout)
	defer cancel()

	log := slog.With("task_id", t.ID, "task_name", t.Name)
	log.Info("Task run started")

	conv, err := w.conversations.GetConversation(ctx, t.ConversationID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			// The parent conversation is gone; nothing left to run
			// against.
			w.finish(t, task.StatusCompleted, "Conversation not found")
			return
		}
		w.handleFailure(t, err)
		return
	}

	result, err := w.invoke(ctx, t, conv)
	if err != nil {
		w.handleFailure(t, err)
		return
	}

	w.recordRun(t, conv, result.Response)
}

// invoke runs the task as a fresh session. Task runs never resume the
// conversation's interactive session: each run stands alone with the
// task context in the prompt.
func (w *TaskWorker) invoke(ctx context.Context, t *ent.Task, conv *ent.Conversation) (*agent.Result, error) {
	history, err := w.messages.LastMessages(ctx, conv.ID, w.cfg.MaxMessagesToInclude)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	connected, err := w.integrations.ListActiveIntegrations(ctx, t.UserID)
	if err != nil {
		return nil, fmt.Errorf("loading integrations: %w", err)
	}
	tk := w.assembler.Assemble(connected, conv.Skills, nil)

	return w.runner.Run(ctx, &agent.QueryPlan{
		Prompt:         prompt.BuildTaskUserPrompt(t, history),
		SystemPrompt:   agent.ComposeSystemPrompt(prompt.BuildTaskSystemPrompt(t), tk.SkillPrompt),
		AllowedTools:   tk.AllowedTools,
		MCPServers:     tk.MCPServers,
		SubAgents:      tk.SubAgents,
		PermissionMode: w.agentCfg.PermissionMode,
		MaxTurns:       w.agentCfg.MaxTurns,
		Model:          w.agentCfg.Model,
	})
}

// recordRun persists a successful run: the result lands in the parent
// conversation and a notification, the counters advance, and the task
// either reschedules or completes.
func (w *TaskWorker) recordRun(t *ent.Task, conv *ent.Conversation, response string) {
	ctx := context.Background()
	now := time.Now()
	log := slog.With("task_id", t.ID, "task_name", t.Name)

	if response != "" {
		_, err := w.messages.AppendMessage(ctx, models.AppendMessageRequest{
			ConversationID: conv.ID,
			Role:           message.RoleAssistant,
			Content:        response,
			Source:         message.SourceWorker,
		})
		if err != nil {
			log.Warn("Failed to append task result", "error", err)
		}
	}
	w.notify(ctx, t, "Task: "+t.Name, truncate(response, notificationBodyLimit))

	runs := t.CurrentRuns + 1
	zero := 0
	upd := models.TaskUpdate{
		CurrentRuns:         &runs,
		LastRunAt:           &now,
		ConsecutiveFailures: &zero,
		ClearLastError:      true,
	}

	done := (t.MaxRuns != nil && runs >= *t.MaxRuns) ||
		(t.ExpiresAt != nil && !t.ExpiresAt.After(now))
	if done {
		status := task.StatusCompleted
		upd.Status = &status
		upd.ClearNextRunAt = true
	} else {
		next, err := services.NextTaskRun(t, now)
		if err != nil {
			log.Error("Task has no usable schedule, completing", "error", err)
			status := task.StatusCompleted
			upd.Status = &status
			upd.ClearNextRunAt = true
			done = true
		} else {
			upd.NextRunAt = &next
		}
	}

	updated, err := w.tasks.UpdateTask(ctx, t.ID, upd)
	if err != nil {
		log.Error("Failed to record task run", "error", err)
		return
	}
	log.Info("Task run finished", "runs", runs)

	if done {
		w.notify(ctx, t, "Task completed: "+t.Name, "")
		publishTaskStatus(ctx, w.publisher, updated)
	}
}

// handleFailure records a failed run and pauses the task once the
// consecutive-failure limit is hit.
func (w *TaskWorker) handleFailure(t *ent.Task, runErr error) {
	ctx := context.Background()
	failures := t.ConsecutiveFailures + 1
	slog.Error("Task run failed", "task_id", t.ID, "task_name", t.Name,
		"error", runErr, "consecutive_failures", failures)

	lastError := runErr.Error()
	upd := models.TaskUpdate{
		ConsecutiveFailures: &failures,
		LastError:           &lastError,
	}

	if failures >= w.cfg.MaxRetries {
		status := task.StatusPaused
		upd.Status = &status
		upd.ClearNextRunAt = true
	} else {
		next := time.Now().Add(w.cfg.PollInterval)
		upd.NextRunAt = &next
	}

	updated, err := w.tasks.UpdateTask(ctx, t.ID, upd)
	if err != nil {
		slog.Error("Failed to record task failure", "task_id", t.ID, "error", err)
		return
	}

	if failures >= w.cfg.MaxRetries {
		w.notify(ctx, t, "Task paused: "+t.Name, truncate(lastError, notificationBodyLimit))
		publishTaskStatus(ctx, w.publisher, updated)
	}
}

// finish marks a task terminal outside the normal run path.
func (w *TaskWorker) finish(t *ent.Task, status task.Status, reason string) {
	ctx := context.Background()
	upd := models.TaskUpdate{
		Status:         &status,
		ClearNextRunAt: true,
	}
	if reason != "" {
		upd.LastError = &reason
	}
	updated, err := w.tasks.UpdateTask(ctx, t.ID, upd)
	if err != nil {
		slog.Error("Failed to finish task", "task_id", t.ID, "error", err)
		return
	}
	slog.Info("Task finished", "task_id", t.ID, "status", string(status), "reason", reason)
	publishTaskStatus(ctx, w.publisher, updated)
}

func (w *TaskWorker) notify(ctx context.Context, t *ent.Task, title, body string) {
	_, err := w.notifications.CreateNotification(ctx, models.CreateNotificationRequest{
		UserID:         t.UserID,
		ConversationID: t.ConversationID,
		Title:          title,
		Body:           body,
	})
	if err != nil {
		slog.Warn("Failed to create notification", "task_id", t.ID, "error", err)
	}
}
