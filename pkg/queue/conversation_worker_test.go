package queue

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/majordomo-io/majordomo/ent"
	"github.com/majordomo-io/majordomo/ent/conversation"
	"github.com/majordomo-io/majordomo/ent/message"
	"github.com/majordomo-io/majordomo/pkg/config"
)

type workerFixture struct {
	convs  *fakeConversationStore
	msgs   *fakeMessageStore
	notifs *fakeNotificationStore
	pub    *fakePublisher
	runner *fakeRunner
	w      *ConversationWorker
}

func newWorkerFixture(runner *fakeRunner, convs ...*ent.Conversation) *workerFixture {
	f := &workerFixture{
		convs:  newFakeConversationStore(convs...),
		msgs:   &fakeMessageStore{},
		notifs: &fakeNotificationStore{},
		pub:    &fakePublisher{},
		runner: runner,
	}
	f.w = NewConversationWorker(
		config.DefaultWorkerConfig(),
		config.DefaultAgentConfig(),
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

func backgroundConv(id string) *ent.Conversation {
	next := time.Now()
	return &ent.Conversation{
		ID:              id,
		UserID:          "user-1",
		Title:           "Flight watch",
		Status:          conversation.StatusBackground,
		ScheduleType:    conversation.ScheduleTypeCron,
		CronExpression:  "*/5 * * * *",
		NextRunAt:       &next,
		StateStep:       "watch",
		StateData:       map[string]any{"count": 1},
		ClaudeSessionID: "sess-bg",
	}
}

func TestWorkerContinueOutcome(t *testing.T) {
	conv := backgroundConv("conv-1")
	response := `{"continue": true, "message": "Checked 3 flights.", "state_update": {"count": 2}, "next_step": "compare"}`
	f := newWorkerFixture(respondWith(response, "sess-bg"), conv)

	f.w.process(conv)

	assert.Equal(t, conversation.StatusBackground, conv.Status)
	assert.Equal(t, "compare", conv.StateStep)
	assert.Equal(t, 2, int(conv.StateData["count"].(float64)))
	assert.Equal(t, 0, conv.ConsecutiveFailures)
	require.NotNil(t, conv.NextRunAt)
	assert.True(t, conv.NextRunAt.After(time.Now()))

	// Status message lands in the conversation as a worker message.
	require.Len(t, f.msgs.appended, 1)
	assert.Equal(t, message.RoleAssistant, f.msgs.appended[0].Role)
	assert.Equal(t, message.SourceWorker, f.msgs.appended[0].Source)
	assert.Equal(t, "Checked 3 flights.", f.msgs.appended[0].Content)

	// Still background: no status transition to broadcast.
	assert.Empty(t, f.pub.statuses)
	require.Len(t, f.pub.activity, 2)
}

func TestWorkerContinueWithoutUpdates(t *testing.T) {
	conv := backgroundConv("conv-1")
	f := newWorkerFixture(respondWith("plain prose, no protocol object", "sess-bg"), conv)

	f.w.process(conv)

	// Unrecognised output is a continue with no state changes.
	assert.Equal(t, conversation.StatusBackground, conv.Status)
	assert.Equal(t, "watch", conv.StateStep)
	assert.Equal(t, 1, int(conv.StateData["count"].(int)))
	assert.Empty(t, f.msgs.appended)
	require.NotNil(t, conv.NextRunAt)
}

func TestWorkerNeedsInputOutcome(t *testing.T) {
	conv := backgroundConv("conv-1")
	response := `{"needs_input": true, "message": "Found a cheap fare.", "question": {"type": "confirmation", "prompt": "Book it?"}}`
	f := newWorkerFixture(respondWith(response, "sess-bg"), conv)

	f.w.process(conv)

	assert.Equal(t, conversation.StatusWaitingInput, conv.Status)
	assert.Equal(t, conversation.PendingQuestionTypeConfirmation, conv.PendingQuestionType)
	assert.Equal(t, "Book it?", conv.PendingQuestionPrompt)
	assert.Nil(t, conv.NextRunAt, "paused conversations must not be claimable")

	// Assistant message plus a notification titled after the conversation.
	require.Len(t, f.msgs.appended, 1)
	assert.Equal(t, "Found a cheap fare.", f.msgs.appended[0].Content)
	require.Len(t, f.notifs.created, 1)
	assert.Equal(t, "Flight watch", f.notifs.created[0].Title)
	assert.Equal(t, "Book it?", f.notifs.created[0].Body)

	require.Len(t, f.pub.statuses, 1)
	assert.Equal(t, conversation.StatusWaitingInput, f.pub.statuses[0].Status)
	assert.Equal(t, "Book it?", f.pub.statuses[0].PendingPrompt)
}

func TestWorkerCompleteCronReschedules(t *testing.T) {
	conv := backgroundConv("conv-1")
	response := `{"complete": true, "summary": "Nothing new today."}`
	f := newWorkerFixture(respondWith(response, "sess-bg"), conv)

	f.w.process(conv)

	// Recurring schedule: the occurrence completes, the schedule stays.
	assert.Equal(t, conversation.StatusBackground, conv.Status)
	assert.Equal(t, conversation.ScheduleTypeCron, conv.ScheduleType)
	require.NotNil(t, conv.NextRunAt)
	assert.True(t, conv.NextRunAt.After(time.Now()))

	require.Len(t, f.msgs.appended, 1)
	assert.Equal(t, "Nothing new today.", f.msgs.appended[0].Content)
	assert.Empty(t, f.notifs.created, "a rescheduled occurrence is not a completion")
}

func TestWorkerCompleteOneShotGoesActive(t *testing.T) {
	runAt := time.Now().Add(-time.Minute)
	conv := backgroundConv("conv-1")
	conv.ScheduleType = conversation.ScheduleTypeScheduled
	conv.CronExpression = ""
	conv.ScheduledRunAt = &runAt
	response := `{"complete": true, "summary": "Reminder sent."}`
	f := newWorkerFixture(respondWith(response, "sess-bg"), conv)

	f.w.process(conv)

	assert.Equal(t, conversation.StatusActive, conv.Status)
	assert.Empty(t, string(conv.ScheduleType))
	assert.Nil(t, conv.ScheduledRunAt)
	assert.Nil(t, conv.NextRunAt)

	require.Len(t, f.pub.statuses, 1)
	assert.Equal(t, conversation.StatusActive, f.pub.statuses[0].Status)

	require.Len(t, f.notifs.created, 1)
	assert.Equal(t, "Completed: Flight watch", f.notifs.created[0].Title)
	assert.Equal(t, "Reminder sent.", f.notifs.created[0].Body)
}

func TestWorkerSessionTokenRefreshed(t *testing.T) {
	conv := backgroundConv("conv-1")
	f := newWorkerFixture(respondWith(`{"continue": true}`, "sess-new"), conv)

	f.w.process(conv)

	assert.Equal(t, "sess-new", conv.ClaudeSessionID)
}

func TestWorkerAuthErrorPauses(t *testing.T) {
	conv := backgroundConv("conv-1")
	f := newWorkerFixture(failWith(errors.New("gmail: token expired")), conv)

	f.w.process(conv)

	assert.Equal(t, conversation.StatusWaitingInput, conv.Status)
	assert.Equal(t, ReconnectPrompt, conv.PendingQuestionPrompt)
	assert.Equal(t, conversation.PendingQuestionTypeInput, conv.PendingQuestionType)
	assert.Nil(t, conv.NextRunAt)

	require.Len(t, f.notifs.created, 1)
	assert.Equal(t, "Reconnect needed", f.notifs.created[0].Title)

	require.Len(t, f.pub.statuses, 1)
	assert.Equal(t, conversation.StatusWaitingInput, f.pub.statuses[0].Status)
}

func TestWorkerTransientFailureRetries(t *testing.T) {
	conv := backgroundConv("conv-1")
	f := newWorkerFixture(failWith(errors.New("connection refused")), conv)

	f.w.process(conv)

	assert.Equal(t, conversation.StatusBackground, conv.Status)
	assert.Equal(t, 1, conv.ConsecutiveFailures)
	require.NotNil(t, conv.NextRunAt)
	// Quick retry, not the claim horizon.
	assert.WithinDuration(t, time.Now().Add(f.w.cfg.PollInterval), *conv.NextRunAt, 2*time.Second)
	assert.Empty(t, f.notifs.created)
}

func TestWorkerFailureLimitNotifies(t *testing.T) {
	conv := backgroundConv("conv-1")
	conv.ConsecutiveFailures = 2 // next failure hits MaxRetries (3)
	f := newWorkerFixture(failWith(errors.New("model unavailable")), conv)

	f.w.process(conv)

	assert.Equal(t, 3, conv.ConsecutiveFailures)
	require.Len(t, f.notifs.created, 1)
	assert.Equal(t, "Task error", f.notifs.created[0].Title)
	assert.Contains(t, f.notifs.created[0].Body, "model unavailable")

	// Past the limit the claim horizon stands in as backoff.
	f.notifs.created = nil
	f.w.process(conv)
	assert.Equal(t, 4, conv.ConsecutiveFailures)
	assert.Empty(t, f.notifs.created, "notify once per failure streak")
}

func TestWorkerFailureCounterResetsOnSuccess(t *testing.T) {
	conv := backgroundConv("conv-1")
	conv.ConsecutiveFailures = 2
	f := newWorkerFixture(respondWith(`{"continue": true}`, "sess-bg"), conv)

	f.w.process(conv)

	assert.Equal(t, 0, conv.ConsecutiveFailures)
}

func TestWorkerPollClaimsAndProcesses(t *testing.T) {
	conv := backgroundConv("conv-1")
	f := newWorkerFixture(respondWith(`{"continue": true}`, "sess-bg"), conv)
	f.convs.claims = [][]*ent.Conversation{{conv}}

	f.w.Start()
	defer f.w.Stop()

	require.Eventually(t, func() bool {
		f.w.mu.Lock()
		defer f.w.mu.Unlock()
		return f.w.processed >= 1
	}, 5*time.Second, 10*time.Millisecond)

	assert.NotNil(t, f.runner.lastPlan())
}

func TestWorkerStartStopIdempotent(t *testing.T) {
	f := newWorkerFixture(respondWith(`{"continue": true}`, "s"))

	f.w.Start()
	f.w.Start() // no-op
	assert.True(t, f.w.Health().Running)

	f.w.Stop()
	f.w.Stop() // no-op
	assert.False(t, f.w.Health().Running)

	// A stopped worker can be started again.
	f.w.Start()
	assert.True(t, f.w.Health().Running)
	f.w.Stop()
}
