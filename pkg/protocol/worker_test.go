package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWorker_NeedsInputBoolean(t *testing.T) {
	o := ParseWorker(`{"needs_input":true,"question":{"type":"confirmation","prompt":"Send the draft?"},"message":"Waiting on you."}`)
	require.Equal(t, WorkerNeedsInput, o.Kind)
	require.NotNil(t, o.Question)
	assert.Equal(t, "confirmation", o.Question.Type)
	assert.Equal(t, "Send the draft?", o.Question.Prompt)
	assert.Equal(t, "Waiting on you.", o.Message)
}

func TestParseWorker_NeedsInputWithoutQuestionFallsBackToMessage(t *testing.T) {
	o := ParseWorker(`{"needs_input":true,"message":"Which account should I use?"}`)
	require.Equal(t, WorkerNeedsInput, o.Kind)
	require.NotNil(t, o.Question)
	assert.Equal(t, "Which account should I use?", o.Question.Prompt)
}

func TestParseWorker_ObjectNeedsInputIsNotAWorkerOutcome(t *testing.T) {
	// The object form belongs to the chat protocol; the worker classifier
	// requires the boolean literal true.
	o := ParseWorker(`{"needs_input":{"type":"input","prompt":"?"},"message":"m"}`)
	assert.Equal(t, WorkerContinue, o.Kind)
	assert.Nil(t, o.Question)
	assert.Nil(t, o.StateUpdate)
}

func TestParseWorker_Complete(t *testing.T) {
	o := ParseWorker(`{"complete":true,"summary":"Inbox triaged, 3 drafts ready.","message":"done"}`)
	require.Equal(t, WorkerComplete, o.Kind)
	assert.Equal(t, "Inbox triaged, 3 drafts ready.", o.Summary)
}

func TestParseWorker_CompleteSummaryFallsBackToMessage(t *testing.T) {
	o := ParseWorker(`{"complete":true,"message":"all done"}`)
	require.Equal(t, WorkerComplete, o.Kind)
	assert.Equal(t, "all done", o.Summary)
}

func TestParseWorker_ContinueWithUpdates(t *testing.T) {
	o := ParseWorker(`{"continue":true,"state_update":{"cursor":"page-2"},"next_step":"fetch","message":"Working through the backlog."}`)
	require.Equal(t, WorkerContinue, o.Kind)
	assert.Equal(t, map[string]any{"cursor": "page-2"}, o.StateUpdate)
	assert.Equal(t, "fetch", o.NextStep)
	assert.Equal(t, "Working through the backlog.", o.StatusMessage)
}

func TestParseWorker_ContinueWithoutUpdates(t *testing.T) {
	o := ParseWorker(`{"continue":true}`)
	require.Equal(t, WorkerContinue, o.Kind)
	assert.Nil(t, o.StateUpdate)
	assert.Empty(t, o.NextStep)
	assert.Empty(t, o.StatusMessage)
}

func TestParseWorker_FalseFlagsDoNotClassify(t *testing.T) {
	o := ParseWorker(`{"needs_input":false,"complete":false,"continue":false,"message":"nothing"}`)
	assert.Equal(t, WorkerContinue, o.Kind)
	assert.Nil(t, o.Question)
	assert.Empty(t, o.Summary)
}

func TestParseWorker_PlainTextIsContinueWithNoUpdates(t *testing.T) {
	o := ParseWorker("Checked the inbox, nothing new.")
	assert.Equal(t, WorkerContinue, o.Kind)
	assert.Equal(t, "Checked the inbox, nothing new.", o.Message)
	assert.Nil(t, o.StateUpdate)
}

func TestParseWorker_UnrecognisedJSONIsContinueWithNoUpdates(t *testing.T) {
	o := ParseWorker(`{"verdict":"unknown shape"}`)
	assert.Equal(t, WorkerContinue, o.Kind)
	assert.Nil(t, o.StateUpdate)
	assert.Empty(t, o.NextStep)
}

func TestParseWorker_ClassificationOrder(t *testing.T) {
	// needs_input wins over complete, which wins over continue.
	o := ParseWorker(`{"needs_input":true,"complete":true,"continue":true,"message":"m"}`)
	assert.Equal(t, WorkerNeedsInput, o.Kind)

	o = ParseWorker(`{"complete":true,"continue":true,"message":"m"}`)
	assert.Equal(t, WorkerComplete, o.Kind)
}
