package queue

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/majordomo-io/majordomo/ent"
	"github.com/majordomo-io/majordomo/ent/message"
	"github.com/majordomo-io/majordomo/ent/task"
	"github.com/majordomo-io/majordomo/pkg/config"
)

type taskFixture struct {
	tasks  *fakeTaskStore
	convs  *fakeConversationStore
	msgs   *fakeMessageStore
	notifs *fakeNotificationStore
	pub    *fakePublisher
	runner *fakeRunner
	w      *TaskWorker
}

func newTaskFixture(runner *fakeRunner, conv *ent.Conversation, tasks ...*ent.Task) *taskFixture {
	var convs *fakeConversationStore
	if conv != nil {
		convs = newFakeConversationStore(conv)
	} else {
		convs = newFakeConversationStore()
	}
	f := &taskFixture{
		tasks:  newFakeTaskStore(tasks...),
		convs:  convs,
		msgs:   &fakeMessageStore{},
		notifs: &fakeNotificationStore{},
		pub:    &fakePublisher{},
		runner: runner,
	}
	f.w = NewTaskWorker(
		config.DefaultWorkerConfig(),
		config.DefaultAgentConfig(),
		f.tasks,
		f.convs,
		f.msgs,
		&fakeIntegrationStore{},
		f.notifs,
		emptyAssembler(),
		runner,
		f.pub,
	)
	return f
}

func intervalTask(id string) *ent.Task {
	value := 30
	next := time.Now()
	return &ent.Task{
		ID:             id,
		ConversationID: "conv-1",
		UserID:         "user-1",
		Name:           "inbox sweep",
		Status:         task.StatusActive,
		IntervalValue:  &value,
		IntervalUnit:   task.IntervalUnitMinutes,
		NextRunAt:      &next,
	}
}

func TestTaskRunSuccess(t *testing.T) {
	conv := activeConv("conv-1")
	conv.ClaudeSessionID = "sess-chat"
	tk := intervalTask("task-1")
	f := newTaskFixture(respondWith("Swept 4 messages into folders.", "sess-task"), conv, tk)

	f.w.process(tk)

	// Result lands in the parent conversation as a worker message.
	require.Len(t, f.msgs.appended, 1)
	assert.Equal(t, "conv-1", f.msgs.appended[0].ConversationID)
	assert.Equal(t, message.RoleAssistant, f.msgs.appended[0].Role)
	assert.Equal(t, message.SourceWorker, f.msgs.appended[0].Source)

	// Notification named after the task.
	require.Len(t, f.notifs.created, 1)
	assert.Equal(t, "Task: inbox sweep", f.notifs.created[0].Title)
	assert.Equal(t, "Swept 4 messages into folders.", f.notifs.created[0].Body)

	// Counters advance and the task reschedules one interval out.
	assert.Equal(t, 1, tk.CurrentRuns)
	require.NotNil(t, tk.LastRunAt)
	require.NotNil(t, tk.NextRunAt)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), *tk.NextRunAt, 2*time.Second)
	assert.Equal(t, task.StatusActive, tk.Status)

	// Task runs never resume the conversation's interactive session.
	assert.Empty(t, f.runner.lastPlan().SessionID)
}

func TestTaskNotificationBodyTruncated(t *testing.T) {
	long := strings.Repeat("x", 300)
	tk := intervalTask("task-1")
	f := newTaskFixture(respondWith(long, ""), activeConv("conv-1"), tk)

	f.w.process(tk)

	require.Len(t, f.notifs.created, 1)
	assert.Len(t, []rune(f.notifs.created[0].Body), notificationBodyLimit+3)
	assert.True(t, strings.HasSuffix(f.notifs.created[0].Body, "..."))
}

func TestTaskMaxRunsCompletes(t *testing.T) {
	tk := intervalTask("task-1")
	maxRuns := 3
	tk.MaxRuns = &maxRuns
	tk.CurrentRuns = 2
	f := newTaskFixture(respondWith("done", ""), activeConv("conv-1"), tk)

	f.w.process(tk)

	assert.Equal(t, 3, tk.CurrentRuns)
	assert.Equal(t, task.StatusCompleted, tk.Status)
	assert.Nil(t, tk.NextRunAt)

	// Per-run notification plus the completion notification.
	require.Len(t, f.notifs.created, 2)
	assert.Equal(t, "Task completed: inbox sweep", f.notifs.created[1].Title)

	require.Len(t, f.pub.taskEvents, 1)
	assert.Equal(t, task.StatusCompleted, f.pub.taskEvents[0].Status)
}

func TestTaskExpiryCompletes(t *testing.T) {
	tk := intervalTask("task-1")
	expired := time.Now().Add(-time.Minute)
	tk.ExpiresAt = &expired
	f := newTaskFixture(respondWith("done", ""), activeConv("conv-1"), tk)

	f.w.process(tk)

	assert.Equal(t, task.StatusCompleted, tk.Status)
	assert.Nil(t, tk.NextRunAt)
}

func TestTaskCronReschedules(t *testing.T) {
	tk := intervalTask("task-1")
	tk.IntervalValue = nil
	tk.IntervalUnit = ""
	tk.CronExpression = "0 * * * *"
	f := newTaskFixture(respondWith("done", ""), activeConv("conv-1"), tk)

	f.w.process(tk)

	require.NotNil(t, tk.NextRunAt)
	assert.Equal(t, 0, tk.NextRunAt.Minute())
	assert.True(t, tk.NextRunAt.After(time.Now()))
}

func TestTaskFailureBelowLimitRetries(t *testing.T) {
	tk := intervalTask("task-1")
	f := newTaskFixture(failWith(errors.New("upstream 500")), activeConv("conv-1"), tk)

	f.w.process(tk)

	assert.Equal(t, task.StatusActive, tk.Status)
	assert.Equal(t, 1, tk.ConsecutiveFailures)
	require.NotNil(t, tk.LastError)
	assert.Equal(t, "upstream 500", *tk.LastError)
	require.NotNil(t, tk.NextRunAt)
	assert.WithinDuration(t, time.Now().Add(f.w.cfg.PollInterval), *tk.NextRunAt, 2*time.Second)
	assert.Empty(t, f.notifs.created)
}

func TestTaskFailureLimitPauses(t *testing.T) {
	tk := intervalTask("task-1")
	tk.ConsecutiveFailures = 2 // next failure hits MaxRetries (3)
	f := newTaskFixture(failWith(errors.New("upstream 500")), activeConv("conv-1"), tk)

	f.w.process(tk)

	assert.Equal(t, task.StatusPaused, tk.Status)
	assert.Nil(t, tk.NextRunAt)

	require.Len(t, f.notifs.created, 1)
	assert.Equal(t, "Task paused: inbox sweep", f.notifs.created[0].Title)

	require.Len(t, f.pub.taskEvents, 1)
	assert.Equal(t, task.StatusPaused, f.pub.taskEvents[0].Status)
}

func TestTaskFailureCounterResetsOnSuccess(t *testing.T) {
	tk := intervalTask("task-1")
	tk.ConsecutiveFailures = 2
	tk.LastError = strPtr("upstream 500")
	f := newTaskFixture(respondWith("done", ""), activeConv("conv-1"), tk)

	f.w.process(tk)

	assert.Equal(t, 0, tk.ConsecutiveFailures)
	assert.Nil(t, tk.LastError)
}

func TestTaskConversationGoneCompletes(t *testing.T) {
	tk := intervalTask("task-1")
	f := newTaskFixture(respondWith("never used", ""), nil, tk)

	f.w.process(tk)

	assert.Equal(t, task.StatusCompleted, tk.Status)
	require.NotNil(t, tk.LastError)
	assert.Equal(t, "Conversation not found", *tk.LastError)
	assert.Nil(t, tk.NextRunAt)
	assert.Nil(t, f.runner.lastPlan(), "no model run without a conversation")
}

func TestTaskPollClaimsAndProcesses(t *testing.T) {
	tk := intervalTask("task-1")
	f := newTaskFixture(respondWith("done", ""), activeConv("conv-1"), tk)
	f.tasks.claims = [][]*ent.Task{{tk}}

	f.w.Start()
	defer f.w.Stop()

	require.Eventually(t, func() bool {
		f.w.mu.Lock()
		defer f.w.mu.Unlock()
		return f.w.processed >= 1
	}, 5*time.Second, 10*time.Millisecond)

	assert.Equal(t, 1, tk.CurrentRuns)
}

func TestTaskWorkerStartStopIdempotent(t *testing.T) {
	f := newTaskFixture(respondWith("done", ""), nil)

	f.w.Start()
	f.w.Start()
	assert.True(t, f.w.Health().Running)

	f.w.Stop()
	f.w.Stop()
	assert.False(t, f.w.Health().Running)

	f.w.Start()
	assert.True(t, f.w.Health().Running)
	f.w.Stop()
}
