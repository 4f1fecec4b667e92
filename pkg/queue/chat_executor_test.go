package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/majordomo-io/majordomo/ent"
	"github.com/majordomo-io/majordomo/ent/conversation"
	"github.com/majordomo-io/majordomo/ent/message"
	"github.com/majordomo-io/majordomo/ent/task"
	"github.com/majordomo-io/majordomo/pkg/config"
	"github.com/majordomo-io/majordomo/pkg/services"
)

type chatFixture struct {
	convs  *fakeConversationStore
	msgs   *fakeMessageStore
	tasks  *fakeTaskStore
	pub    *fakePublisher
	runner *fakeRunner
	exec   *ChatTurnExecutor
}

func newChatFixture(runner *fakeRunner, convs ...*ent.Conversation) *chatFixture {
	f := &chatFixture{
		convs:  newFakeConversationStore(convs...),
		msgs:   &fakeMessageStore{},
		tasks:  newFakeTaskStore(),
		pub:    &fakePublisher{},
		runner: runner,
	}
	f.exec = NewChatTurnExecutor(
		config.DefaultChatConfig(),
		config.DefaultAgentConfig(),
		config.NewMCPServerRegistry(map[string]*config.MCPServerConfig{}),
		f.convs,
		f.msgs,
		f.tasks,
		&fakeIntegrationStore{},
		emptyAssembler(),
		runner,
		f.pub,
	)
	return f
}

func activeConv(id string) *ent.Conversation {
	return &ent.Conversation{
		ID:        id,
		UserID:    "user-1",
		Status:    conversation.StatusActive,
		StateStep: "initial",
	}
}

func TestProcessTurnPlainResponse(t *testing.T) {
	f := newChatFixture(respondWith("Sure, done!", "sess-1"), activeConv("conv-1"))

	res, err := f.exec.ProcessTurn(context.Background(), "conv-1", "hello")
	require.NoError(t, err)

	assert.Equal(t, "hello", res.UserMessage.Content)
	assert.Equal(t, "Sure, done!", res.AssistantMessage.Content)
	assert.False(t, res.Updated)
	assert.Equal(t, conversation.StatusActive, res.Status)
	assert.Nil(t, res.PendingQuestion)

	// Both messages persisted as chat-sourced.
	require.Len(t, f.msgs.appended, 2)
	assert.Equal(t, message.RoleUser, f.msgs.appended[0].Role)
	assert.Equal(t, message.SourceChat, f.msgs.appended[0].Source)
	assert.Equal(t, message.RoleAssistant, f.msgs.appended[1].Role)

	// Session token persisted for the next turn.
	assert.Equal(t, "sess-1", f.convs.convs["conv-1"].ClaudeSessionID)

	// Activity events bracket the run.
	require.Len(t, f.pub.activity, 2)
	assert.Equal(t, "started", f.pub.activity[0].Phase)
	assert.Equal(t, "finished", f.pub.activity[1].Phase)
}

func TestProcessTurnResumesSession(t *testing.T) {
	conv := activeConv("conv-1")
	conv.ClaudeSessionID = "sess-old"
	f := newChatFixture(respondWith("ok", "sess-old"), conv)

	_, err := f.exec.ProcessTurn(context.Background(), "conv-1", "hi")
	require.NoError(t, err)

	assert.Equal(t, "sess-old", f.runner.lastPlan().SessionID)
}

func TestProcessTurnCreateScheduleCron(t *testing.T) {
	response := `{"message": "I'll check daily at 9.", "create_schedule": {"type": "cron", "cron_expression": "0 9 * * *", "initial_state": {"step": "check", "data": {"seen": []}}}}`
	f := newChatFixture(respondWith(response, "s"), activeConv("conv-1"))

	res, err := f.exec.ProcessTurn(context.Background(), "conv-1", "watch this daily")
	require.NoError(t, err)

	assert.True(t, res.Updated)
	assert.Equal(t, conversation.StatusBackground, res.Status)
	assert.Equal(t, "I'll check daily at 9.", res.AssistantMessage.Content)

	conv := f.convs.convs["conv-1"]
	assert.Equal(t, conversation.ScheduleTypeCron, conv.ScheduleType)
	assert.Equal(t, "0 9 * * *", conv.CronExpression)
	require.NotNil(t, conv.NextRunAt)
	assert.True(t, conv.NextRunAt.After(time.Now()))
	assert.Equal(t, "check", conv.StateStep)
	assert.Contains(t, conv.StateData, "seen")

	// Status transition broadcast.
	require.Len(t, f.pub.statuses, 1)
	assert.Equal(t, conversation.StatusBackground, f.pub.statuses[0].Status)
}

func TestProcessTurnCreateScheduleBadCronDropped(t *testing.T) {
	response := `{"message": "Scheduling.", "create_schedule": {"type": "cron", "cron_expression": "not a cron"}}`
	f := newChatFixture(respondWith(response, "s"), activeConv("conv-1"))

	res, err := f.exec.ProcessTurn(context.Background(), "conv-1", "go")
	require.NoError(t, err)

	// Invalid schedule is dropped; the turn itself still succeeds.
	assert.False(t, res.Updated)
	assert.Equal(t, conversation.StatusActive, res.Status)
	assert.Empty(t, f.convs.convs["conv-1"].CronExpression)
}

func TestProcessTurnCreateScheduleScheduled(t *testing.T) {
	runAt := time.Now().Add(2 * time.Hour).UTC().Format(time.RFC3339)
	response := `{"message": "Will do.", "create_schedule": {"type": "scheduled", "run_at": "` + runAt + `"}}`
	f := newChatFixture(respondWith(response, "s"), activeConv("conv-1"))

	res, err := f.exec.ProcessTurn(context.Background(), "conv-1", "remind me")
	require.NoError(t, err)

	assert.Equal(t, conversation.StatusBackground, res.Status)
	conv := f.convs.convs["conv-1"]
	require.NotNil(t, conv.ScheduledRunAt)
	require.NotNil(t, conv.NextRunAt)
	assert.Equal(t, *conv.ScheduledRunAt, *conv.NextRunAt)
}

func TestProcessTurnNeedsInput(t *testing.T) {
	response := `{"message": "Which account?", "needs_input": {"type": "choice", "prompt": "Pick an account", "options": ["work", "personal"]}}`
	f := newChatFixture(respondWith(response, "s"), activeConv("conv-1"))

	res, err := f.exec.ProcessTurn(context.Background(), "conv-1", "check my mail")
	require.NoError(t, err)

	assert.True(t, res.Updated)
	assert.Equal(t, conversation.StatusWaitingInput, res.Status)
	require.NotNil(t, res.PendingQuestion)
	assert.Equal(t, conversation.PendingQuestionTypeChoice, res.PendingQuestion.Type)
	assert.Equal(t, "Pick an account", res.PendingQuestion.Prompt)
	assert.Equal(t, []string{"work", "personal"}, res.PendingQuestion.Options)

	assert.Nil(t, f.convs.convs["conv-1"].NextRunAt)
}

func TestProcessTurnStateUpdateMerges(t *testing.T) {
	conv := activeConv("conv-1")
	conv.StateData = map[string]any{"a": "keep", "b": "old"}
	response := `{"message": "Noted.", "state_update": {"b": "new", "c": 3}}`
	f := newChatFixture(respondWith(response, "s"), conv)

	res, err := f.exec.ProcessTurn(context.Background(), "conv-1", "update")
	require.NoError(t, err)

	assert.True(t, res.Updated)
	data := f.convs.convs["conv-1"].StateData
	assert.Equal(t, "keep", data["a"])
	assert.Equal(t, "new", data["b"])
	assert.Contains(t, data, "c")
}

func TestProcessTurnAnswerResumesSchedule(t *testing.T) {
	conv := activeConv("conv-1")
	conv.Status = conversation.StatusWaitingInput
	conv.ScheduleType = conversation.ScheduleTypeCron
	conv.CronExpression = "*/5 * * * *"
	conv.PendingQuestionType = conversation.PendingQuestionTypeInput
	conv.PendingQuestionPrompt = "Which city?"
	f := newChatFixture(respondWith("Thanks, continuing.", "s"), conv)

	res, err := f.exec.ProcessTurn(context.Background(), "conv-1", "Brno")
	require.NoError(t, err)

	assert.True(t, res.Updated)
	assert.Equal(t, conversation.StatusBackground, res.Status)
	assert.Nil(t, res.PendingQuestion)

	stored := f.convs.convs["conv-1"]
	assert.Empty(t, stored.PendingQuestionPrompt)
	require.NotNil(t, stored.NextRunAt)
}

func TestProcessTurnAnswerWithoutScheduleGoesActive(t *testing.T) {
	conv := activeConv("conv-1")
	conv.Status = conversation.StatusWaitingInput
	conv.PendingQuestionType = conversation.PendingQuestionTypeConfirmation
	conv.PendingQuestionPrompt = "Proceed?"
	f := newChatFixture(respondWith("Cancelled.", "s"), conv)

	res, err := f.exec.ProcessTurn(context.Background(), "conv-1", "no")
	require.NoError(t, err)

	assert.Equal(t, conversation.StatusActive, res.Status)
	assert.Empty(t, f.convs.convs["conv-1"].PendingQuestionPrompt)
}

func TestProcessTurnCreateTask(t *testing.T) {
	response := `{"message": "Task created.", "create_task": {"name": "inbox sweep", "intervalValue": 30, "intervalUnit": "minutes", "maxRuns": 10}}`
	f := newChatFixture(respondWith(response, "s"), activeConv("conv-1"))

	res, err := f.exec.ProcessTurn(context.Background(), "conv-1", "sweep my inbox")
	require.NoError(t, err)

	assert.True(t, res.Updated)
	require.Len(t, f.tasks.created, 1)
	req := f.tasks.created[0]
	assert.Equal(t, "inbox sweep", req.Name)
	assert.Equal(t, "conv-1", req.ConversationID)
	assert.Equal(t, "user-1", req.UserID)
	require.NotNil(t, req.IntervalValue)
	assert.Equal(t, 30, *req.IntervalValue)
	assert.Equal(t, task.IntervalUnitMinutes, req.IntervalUnit)
	require.NotNil(t, req.MaxRuns)
	assert.Equal(t, 10, *req.MaxRuns)

	require.Len(t, f.pub.taskEvents, 1)
	assert.Equal(t, task.StatusActive, f.pub.taskEvents[0].Status)
}

func TestProcessTurnCreateTaskValidationRejected(t *testing.T) {
	f := newChatFixture(respondWith(`{"message": "ok", "create_task": {"name": "bad"}}`, "s"), activeConv("conv-1"))
	f.tasks.createErr = services.NewValidationError("schedule", "required")

	res, err := f.exec.ProcessTurn(context.Background(), "conv-1", "go")
	require.NoError(t, err)

	// The invalid directive is dropped without failing the turn.
	assert.False(t, res.Updated)
	assert.Empty(t, f.pub.taskEvents)
}

func TestProcessTurnDeleteTaskByName(t *testing.T) {
	existing := &ent.Task{
		ID:             "task-9",
		ConversationID: "conv-1",
		UserID:         "user-1",
		Name:           "Inbox Sweep",
		Status:         task.StatusActive,
	}
	f := newChatFixture(respondWith(`{"message": "Removed.", "delete_task": {"taskName": "inbox sweep"}}`, "s"), activeConv("conv-1"))
	f.tasks.tasks[existing.ID] = existing

	res, err := f.exec.ProcessTurn(context.Background(), "conv-1", "stop sweeping")
	require.NoError(t, err)

	assert.True(t, res.Updated)
	assert.Equal(t, task.StatusDeleted, existing.Status)
	require.Len(t, f.pub.taskEvents, 1)
	assert.Equal(t, task.StatusDeleted, f.pub.taskEvents[0].Status)
}

func TestProcessTurnDeleteUnknownTaskIgnored(t *testing.T) {
	f := newChatFixture(respondWith(`{"message": "ok", "delete_task": {"taskName": "nope"}}`, "s"), activeConv("conv-1"))

	res, err := f.exec.ProcessTurn(context.Background(), "conv-1", "go")
	require.NoError(t, err)
	assert.False(t, res.Updated)
}

func TestProcessTurnConversationNotFound(t *testing.T) {
	f := newChatFixture(respondWith("x", "s"))

	_, err := f.exec.ProcessTurn(context.Background(), "missing", "hi")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestProcessTurnArchivedConversation(t *testing.T) {
	conv := activeConv("conv-1")
	conv.Status = conversation.StatusArchived
	f := newChatFixture(respondWith("x", "s"), conv)

	_, err := f.exec.ProcessTurn(context.Background(), "conv-1", "hi")
	assert.ErrorIs(t, err, services.ErrArchived)
	assert.Empty(t, f.msgs.appended)
}

func TestProcessTurnRunnerErrorPropagates(t *testing.T) {
	runErr := errors.New("harness exploded")
	f := newChatFixture(failWith(runErr), activeConv("conv-1"))

	_, err := f.exec.ProcessTurn(context.Background(), "conv-1", "hi")
	assert.ErrorIs(t, err, runErr)

	// The user message is kept; no assistant message was produced.
	require.Len(t, f.msgs.appended, 1)
	assert.Equal(t, message.RoleUser, f.msgs.appended[0].Role)
}

func TestProcessTurnSingleFlight(t *testing.T) {
	f := newChatFixture(respondWith("x", "s"), activeConv("conv-1"))

	require.NoError(t, f.exec.acquire("conv-1"))
	defer f.exec.release("conv-1")

	_, err := f.exec.ProcessTurn(context.Background(), "conv-1", "hi")
	assert.ErrorIs(t, err, ErrTurnInProgress)

	// Other conversations are unaffected.
	require.NoError(t, f.exec.acquire("conv-2"))
	f.exec.release("conv-2")
}

func TestProcessTurnAfterStop(t *testing.T) {
	f := newChatFixture(respondWith("x", "s"), activeConv("conv-1"))
	f.exec.Stop()

	_, err := f.exec.ProcessTurn(context.Background(), "conv-1", "hi")
	assert.ErrorIs(t, err, ErrExecutorStopped)
}
