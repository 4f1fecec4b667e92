package protocol

// Question is a structured request for user input that pauses a
// conversation. Type is one of "confirmation", "choice", "input";
// Options accompanies "choice".
type Question struct {
	Type    string   `json:"type"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options,omitempty"`
}

// InitialState seeds a conversation's state machine when a schedule is
// created. Absent fields fall back to an empty context, the step
// "initial", and empty data.
type InitialState struct {
	Context map[string]any `json:"context"`
	Step    string         `json:"step"`
	Data    map[string]any `json:"data"`
}

// ScheduleDirective converts a conversation to background execution.
// Type is "cron" (CronExpression set), "scheduled" (RunAt set, RFC 3339)
// or "immediate".
type ScheduleDirective struct {
	Type           string        `json:"type"`
	CronExpression string        `json:"cron_expression,omitempty"`
	RunAt          string        `json:"run_at,omitempty"`
	InitialState   *InitialState `json:"initial_state,omitempty"`
}

// TaskDirective creates a named scheduled task under the conversation.
// Exactly one of the interval pair and CronExpression must be set; the
// keys are camelCase on the wire.
type TaskDirective struct {
	Name            string         `json:"name"`
	Description     string         `json:"description,omitempty"`
	IntervalValue   int            `json:"intervalValue,omitempty"`
	IntervalUnit    string         `json:"intervalUnit,omitempty"`
	CronExpression  string         `json:"cronExpression,omitempty"`
	MaxRuns         int            `json:"maxRuns,omitempty"`
	DurationSeconds int            `json:"durationSeconds,omitempty"`
	TaskContext     map[string]any `json:"taskContext,omitempty"`
}

// TaskSelector identifies a task for deletion, by id when present,
// otherwise by case-insensitive name.
type TaskSelector struct {
	TaskID   string `json:"taskId,omitempty"`
	TaskName string `json:"taskName,omitempty"`
}
