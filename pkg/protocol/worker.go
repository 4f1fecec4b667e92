package protocol

import (
	"encoding/json"
)

// WorkerKind discriminates the worker-cycle outcomes.
type WorkerKind string

const (
	WorkerNeedsInput WorkerKind = "needs_input"
	WorkerComplete   WorkerKind = "complete"
	WorkerContinue   WorkerKind = "continue"
)

// WorkerOutcome is a classified worker-context response. The worker
// shape is distinct from the chat shape: needs_input is a boolean flag
// accompanied by a question object, not an object itself.
type WorkerOutcome struct {
	Kind    WorkerKind
	Message string

	// Question is set for needs_input outcomes.
	Question *Question

	// Summary is set for complete outcomes (falls back to Message).
	Summary string

	// Continue payload: shallow state merge, optional step override,
	// optional status message appended to the conversation.
	StateUpdate   map[string]any
	NextStep      string
	StatusMessage string
}

type workerEnvelope struct {
	Message     json.RawMessage `json:"message"`
	NeedsInput  json.RawMessage `json:"needs_input"`
	Question    json.RawMessage `json:"question"`
	Complete    json.RawMessage `json:"complete"`
	Continue    json.RawMessage `json:"continue"`
	Summary     json.RawMessage `json:"summary"`
	StateUpdate json.RawMessage `json:"state_update"`
	NextStep    json.RawMessage `json:"next_step"`
}

// ParseWorker classifies a worker-context model response. The checks
// are strict about runtime type: needs_input must be the boolean true
// (an object-shaped needs_input belongs to the chat protocol and falls
// through). Anything unrecognised, including plain text, is a continue
// outcome with no updates.
func ParseWorker(response string) *WorkerOutcome {
	out := &WorkerOutcome{Kind: WorkerContinue, Message: response}

	raw, start, end, ok := ExtractObject(response)
	if !ok {
		return out
	}
	var env workerEnvelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return out
	}

	out.Message = messageOf(env.Message, response, start, end)

	switch {
	case isTrue(env.NeedsInput):
		out.Kind = WorkerNeedsInput
		var q Question
		if isObject(env.Question) {
			if err := json.Unmarshal(env.Question, &q); err != nil {
				q = Question{}
			}
		}
		if q.Prompt == "" {
			q.Prompt = out.Message
		}
		out.Question = &q

	case isTrue(env.Complete):
		out.Kind = WorkerComplete
		out.Summary = stringOf(env.Summary, out.Message)

	case isTrue(env.Continue):
		out.Kind = WorkerContinue
		if isObject(env.StateUpdate) {
			var update map[string]any
			if err := json.Unmarshal(env.StateUpdate, &update); err == nil {
				out.StateUpdate = update
			}
		}
		out.NextStep = stringOf(env.NextStep, "")
		if len(env.Message) > 0 {
			out.StatusMessage = stringOf(env.Message, "")
		}
	}

	return out
}

func stringOf(raw json.RawMessage, fallback string) string {
	if len(raw) > 0 {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil && s != "" {
			return s
		}
	}
	return fallback
}
