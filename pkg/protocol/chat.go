package protocol

import (
	"encoding/json"
)

// ChatKind discriminates the mutually exclusive chat directives.
type ChatKind string

const (
	ChatPlain          ChatKind = "plain"
	ChatCreateSchedule ChatKind = "create_schedule"
	ChatNeedsInput     ChatKind = "needs_input"
	ChatStateUpdate    ChatKind = "state_update"
)

// ChatDirective is a classified chat-context response. Kind carries the
// exclusive directive (checked in order create_schedule, needs_input,
// state_update); CreateTask and DeleteTask are applied in addition to
// whichever exclusive directive is present.
type ChatDirective struct {
	Kind    ChatKind
	Message string

	CreateSchedule *ScheduleDirective
	NeedsInput     *Question
	StateUpdate    map[string]any

	CreateTask *TaskDirective
	DeleteTask *TaskSelector
}

// chatEnvelope decodes every field as raw JSON so that one ill-typed
// field cannot sink the whole object.
type chatEnvelope struct {
	Message        json.RawMessage `json:"message"`
	CreateSchedule json.RawMessage `json:"create_schedule"`
	NeedsInput     json.RawMessage `json:"needs_input"`
	StateUpdate    json.RawMessage `json:"state_update"`
	CreateTask     json.RawMessage `json:"create_task"`
	DeleteTask     json.RawMessage `json:"delete_task"`
}

// ParseChat classifies a chat-context model response. It never fails:
// responses without a parseable JSON object are plain text, and the
// message falls back to the text outside the JSON span, then to the raw
// response.
func ParseChat(response string) *ChatDirective {
	raw, start, end, ok := ExtractObject(response)
	if !ok {
		return &ChatDirective{Kind: ChatPlain, Message: response}
	}

	var env chatEnvelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return &ChatDirective{Kind: ChatPlain, Message: response}
	}

	d := &ChatDirective{Kind: ChatPlain}
	d.Message = messageOf(env.Message, response, start, end)

	// Exclusive directives, first match wins.
	switch {
	case isObject(env.CreateSchedule):
		var sched ScheduleDirective
		if err := json.Unmarshal(env.CreateSchedule, &sched); err == nil {
			d.Kind = ChatCreateSchedule
			d.CreateSchedule = &sched
		}
	case isObject(env.NeedsInput):
		var q Question
		if err := json.Unmarshal(env.NeedsInput, &q); err == nil {
			d.Kind = ChatNeedsInput
			d.NeedsInput = &q
		}
	case isObject(env.StateUpdate):
		var update map[string]any
		if err := json.Unmarshal(env.StateUpdate, &update); err == nil {
			d.Kind = ChatStateUpdate
			d.StateUpdate = update
		}
	}

	// Task directives apply regardless of the exclusive directive.
	if isObject(env.CreateTask) {
		var task TaskDirective
		if err := json.Unmarshal(env.CreateTask, &task); err == nil {
			d.CreateTask = &task
		}
	}
	if isObject(env.DeleteTask) {
		var sel TaskSelector
		if err := json.Unmarshal(env.DeleteTask, &sel); err == nil && (sel.TaskID != "" || sel.TaskName != "") {
			d.DeleteTask = &sel
		}
	}

	return d
}

// messageOf resolves the user-facing message: the object's "message"
// string when present, else the response text outside the JSON span,
// else the raw response.
func messageOf(rawMessage json.RawMessage, response string, start, end int) string {
	if len(rawMessage) > 0 {
		var msg string
		if err := json.Unmarshal(rawMessage, &msg); err == nil && msg != "" {
			return msg
		}
	}
	if outside := outsideText(response, start, end); outside != "" {
		return outside
	}
	return response
}
