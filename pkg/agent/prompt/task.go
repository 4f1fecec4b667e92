package prompt

import (
	"fmt"
	"strings"
	"time"

	"github.com/majordomo-io/majordomo/ent"
)

// taskHistoryWindow is how many trailing messages a task run sees.
const taskHistoryWindow = 10

// BuildTaskSystemPrompt returns the system prompt for one task run.
// Task responses are delivered to the user verbatim, so the model is
// told to answer in plain text with no protocol JSON.
func BuildTaskSystemPrompt(t *ent.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are executing the scheduled task %q for the user.\n", t.Name)
	if t.Description != "" {
		fmt.Fprintf(&b, "Task description: %s\n", t.Description)
	}
	b.WriteString("Do the work and reply with a short plain-text report of what you did or found. Do not include JSON or any structured directives; the text is shown to the user as a notification.")
	return b.String()
}

// BuildTaskUserPrompt assembles the run context: which run this is, when
// the task last ran, its stored context, and the tail of the owning
// conversation.
func BuildTaskUserPrompt(t *ent.Task, history []*ent.Message) string {
	var b strings.Builder

	if t.MaxRuns != nil {
		fmt.Fprintf(&b, "RUN: %d/%d\n", t.CurrentRuns+1, *t.MaxRuns)
	} else {
		fmt.Fprintf(&b, "RUN: %d\n", t.CurrentRuns+1)
	}
	if t.LastRunAt != nil {
		fmt.Fprintf(&b, "LAST RUN: %s\n", t.LastRunAt.Format(time.RFC3339))
	} else {
		b.WriteString("LAST RUN: never\n")
	}

	b.WriteString("TASK CONTEXT: ")
	b.Write(marshalOrEmpty(t.TaskContext))
	b.WriteString("\n\nRECENT CONVERSATION:\n")

	if len(history) > taskHistoryWindow {
		history = history[len(history)-taskHistoryWindow:]
	}
	for _, msg := range history {
		b.WriteString(formatHistoryLine(msg))
		b.WriteString("\n")
	}

	b.WriteString("\nExecute the task now.")
	return b.String()
}
