package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractObject_FindsFirstBalancedObject(t *testing.T) {
	raw, start, end, ok := ExtractObject(`Sure thing. {"message":"done"} Anything else?`)
	require.True(t, ok)
	assert.Equal(t, `{"message":"done"}`, raw)
	assert.Equal(t, "Sure thing. Anything else?", outsideText(`Sure thing. {"message":"done"} Anything else?`, start, end))
}

func TestExtractObject_HandlesNestingAndStrings(t *testing.T) {
	input := `{"a":{"b":"}{ not a brace"},"c":"\"quoted\""}`
	raw, _, _, ok := ExtractObject(input)
	require.True(t, ok)
	assert.Equal(t, input, raw)
}

func TestExtractObject_NoObject(t *testing.T) {
	for _, input := range []string{"", "just text", "open { never closes", "}{"} {
		_, _, _, ok := ExtractObject(input)
		assert.False(t, ok, "input %q", input)
	}
}

func TestExtractObject_InvalidJSONInsideBraces(t *testing.T) {
	_, _, _, ok := ExtractObject("{not valid json}")
	assert.False(t, ok)
}

func TestParseChat_PlainText(t *testing.T) {
	d := ParseChat("Here is your answer, no JSON involved.")
	assert.Equal(t, ChatPlain, d.Kind)
	assert.Equal(t, "Here is your answer, no JSON involved.", d.Message)
	assert.Nil(t, d.CreateTask)
	assert.Nil(t, d.DeleteTask)
}

func TestParseChat_CreateScheduleImmediate(t *testing.T) {
	d := ParseChat(`{"create_schedule":{"type":"immediate"},"message":"x"}`)
	require.Equal(t, ChatCreateSchedule, d.Kind)
	assert.Equal(t, "x", d.Message)
	assert.Equal(t, "immediate", d.CreateSchedule.Type)
}

func TestParseChat_CreateScheduleCronWithInitialState(t *testing.T) {
	d := ParseChat(`{"create_schedule":{"type":"cron","cron_expression":"0 9 * * *",` +
		`"initial_state":{"context":{"task":"check email"}}},"message":"Will do."}`)
	require.Equal(t, ChatCreateSchedule, d.Kind)
	require.NotNil(t, d.CreateSchedule)
	assert.Equal(t, "cron", d.CreateSchedule.Type)
	assert.Equal(t, "0 9 * * *", d.CreateSchedule.CronExpression)
	require.NotNil(t, d.CreateSchedule.InitialState)
	assert.Equal(t, map[string]any{"task": "check email"}, d.CreateSchedule.InitialState.Context)
	assert.Equal(t, "Will do.", d.Message)
}

func TestParseChat_NeedsInputObject(t *testing.T) {
	d := ParseChat(`{"needs_input":{"type":"choice","prompt":"Which calendar?","options":["work","home"]},"message":"One question."}`)
	require.Equal(t, ChatNeedsInput, d.Kind)
	require.NotNil(t, d.NeedsInput)
	assert.Equal(t, "choice", d.NeedsInput.Type)
	assert.Equal(t, "Which calendar?", d.NeedsInput.Prompt)
	assert.Equal(t, []string{"work", "home"}, d.NeedsInput.Options)
}

func TestParseChat_BooleanNeedsInputIsNotAChatDirective(t *testing.T) {
	// The boolean form belongs to the worker protocol; in chat context it
	// must not classify as needs_input.
	d := ParseChat(`{"needs_input":true,"message":"hm"}`)
	assert.Equal(t, ChatPlain, d.Kind)
	assert.Nil(t, d.NeedsInput)
}

func TestParseChat_StateUpdate(t *testing.T) {
	d := ParseChat(`{"state_update":{"emails_seen":12},"message":"noted"}`)
	require.Equal(t, ChatStateUpdate, d.Kind)
	assert.Equal(t, float64(12), d.StateUpdate["emails_seen"])
}

func TestParseChat_ExclusiveDirectiveOrder(t *testing.T) {
	// create_schedule wins over needs_input, which wins over state_update.
	d := ParseChat(`{"create_schedule":{"type":"immediate"},` +
		`"needs_input":{"type":"input","prompt":"?"},` +
		`"state_update":{"k":"v"},"message":"m"}`)
	assert.Equal(t, ChatCreateSchedule, d.Kind)
	assert.Nil(t, d.NeedsInput)
	assert.Nil(t, d.StateUpdate)

	d = ParseChat(`{"needs_input":{"type":"input","prompt":"?"},"state_update":{"k":"v"},"message":"m"}`)
	assert.Equal(t, ChatNeedsInput, d.Kind)
	assert.Nil(t, d.StateUpdate)
}

func TestParseChat_TaskDirectivesApplyAlongsideSchedule(t *testing.T) {
	d := ParseChat(`{"create_schedule":{"type":"immediate"},` +
		`"create_task":{"name":"greet","intervalValue":15,"intervalUnit":"seconds","maxRuns":3},` +
		`"delete_task":{"taskName":"old-task"},"message":"ok"}`)
	assert.Equal(t, ChatCreateSchedule, d.Kind)
	require.NotNil(t, d.CreateTask)
	assert.Equal(t, "greet", d.CreateTask.Name)
	assert.Equal(t, 15, d.CreateTask.IntervalValue)
	assert.Equal(t, "seconds", d.CreateTask.IntervalUnit)
	assert.Equal(t, 3, d.CreateTask.MaxRuns)
	require.NotNil(t, d.DeleteTask)
	assert.Equal(t, "old-task", d.DeleteTask.TaskName)
}

func TestParseChat_DeleteTaskRequiresIdOrName(t *testing.T) {
	d := ParseChat(`{"delete_task":{},"message":"ok"}`)
	assert.Nil(t, d.DeleteTask)
}

func TestParseChat_SynthesisesMessageFromSurroundingText(t *testing.T) {
	d := ParseChat(`Setting that up now. {"create_task":{"name":"digest","cronExpression":"0 8 * * *"}}`)
	assert.Equal(t, "Setting that up now.", d.Message)
	require.NotNil(t, d.CreateTask)
	assert.Equal(t, "0 8 * * *", d.CreateTask.CronExpression)
}

func TestParseChat_MessageFallsBackToRawResponse(t *testing.T) {
	raw := `{"state_update":{"k":1}}`
	d := ParseChat(raw)
	assert.Equal(t, raw, d.Message)
}

func TestParseChat_MalformedJSONDegradesToPlainText(t *testing.T) {
	raw := `I think {"create_schedule": is the right shape`
	d := ParseChat(raw)
	assert.Equal(t, ChatPlain, d.Kind)
	assert.Equal(t, raw, d.Message)
}
