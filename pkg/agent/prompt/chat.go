package prompt

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/majordomo-io/majordomo/ent"
	"github.com/majordomo-io/majordomo/ent/conversation"
	"github.com/majordomo-io/majordomo/ent/message"
	"github.com/majordomo-io/majordomo/ent/task"
)

// ChatInput carries everything the chat system prompt mentions: the
// conversation being continued, the user's connected integrations, the
// providers they could still connect, and the conversation's live tasks.
type ChatInput struct {
	Conversation       *ent.Conversation
	Connected          []*ent.Integration
	AvailableProviders []string
	Tasks              []*ent.Task
}

// BuildChatSystemPrompt assembles the system prompt for an interactive
// chat turn: assistant identity, integration inventory, conversation
// state, active tasks, status context, and the action grammar.
func BuildChatSystemPrompt(in ChatInput) string {
	var b strings.Builder

	b.WriteString("You are Majordomo, a personal assistant that can answer directly, schedule work to continue in the background, and manage repeating tasks.\n\n")

	writeIntegrations(&b, in.Connected, in.AvailableProviders)
	writeConversationState(&b, in.Conversation)
	writeActiveTasks(&b, in.Tasks)
	writeStatusContext(&b, in.Conversation)

	b.WriteString(chatActionGrammar)
	return b.String()
}

// BuildChatUserPrompt formats the history window and the new message.
// Worker-sourced lines are tagged so the model can tell background
// activity from the interactive thread.
func BuildChatUserPrompt(history []*ent.Message, content string) string {
	var b strings.Builder
	b.WriteString("CONVERSATION HISTORY:\n")
	for _, msg := range history {
		b.WriteString(formatHistoryLine(msg))
		b.WriteString("\n")
	}
	b.WriteString("\nUSER MESSAGE:\n")
	b.WriteString(content)
	return b.String()
}

func formatHistoryLine(msg *ent.Message) string {
	role := string(msg.Role)
	if msg.Source == message.SourceWorker {
		role += " [background]"
	}
	return fmt.Sprintf("%s: %s", role, msg.Content)
}

func writeIntegrations(b *strings.Builder, connected []*ent.Integration, available []string) {
	if len(connected) > 0 {
		b.WriteString("CONNECTED INTEGRATIONS:\n")
		for _, integ := range connected {
			b.WriteString("- ")
			b.WriteString(integ.Provider)
			if detail := integrationDetail(integ); detail != "" {
				b.WriteString(" (")
				b.WriteString(detail)
				b.WriteString(")")
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	if len(available) > 0 {
		b.WriteString("AVAILABLE BUT NOT CONNECTED: ")
		b.WriteString(strings.Join(available, ", "))
		b.WriteString("\nSuggest connecting one in Settings when it would help.\n\n")
	}
}

// integrationDetail surfaces the human-meaningful bit of an
// integration's metadata, like the Gmail address being acted for.
func integrationDetail(integ *ent.Integration) string {
	switch integ.Provider {
	case "gmail":
		if email, ok := integ.Metadata["email"].(string); ok {
			return email
		}
	case "slack":
		if team, ok := integ.Metadata["team_name"].(string); ok {
			return team
		}
	case "filesystem":
		if root, ok := integ.Metadata["rootPath"].(string); ok {
			return root
		}
	}
	return ""
}

func writeConversationState(b *strings.Builder, conv *ent.Conversation) {
	state := map[string]any{
		"context": conv.StateContext,
		"step":    conv.StateStep,
		"data":    conv.StateData,
	}
	encoded, err := json.Marshal(state)
	if err != nil {
		encoded = []byte("{}")
	}
	b.WriteString("CONVERSATION STATE: ")
	b.Write(encoded)
	b.WriteString("\n\n")
}

func writeActiveTasks(b *strings.Builder, tasks []*ent.Task) {
	var active []*ent.Task
	for _, t := range tasks {
		if t.Status == task.StatusActive {
			active = append(active, t)
		}
	}
	if len(active) == 0 {
		return
	}

	b.WriteString("ACTIVE TASKS:\n")
	for _, t := range active {
		entry := map[string]any{
			"id":          t.ID,
			"name":        t.Name,
			"schedule":    taskSchedule(t),
			"currentRuns": t.CurrentRuns,
		}
		if t.MaxRuns != nil {
			entry["maxRuns"] = *t.MaxRuns
		}
		if t.ExpiresAt != nil {
			entry["expiresAt"] = t.ExpiresAt.Format(time.RFC3339)
		}
		if t.LastRunAt != nil {
			entry["lastRunAt"] = t.LastRunAt.Format(time.RFC3339)
		}
		encoded, err := json.Marshal(entry)
		if err != nil {
			continue
		}
		b.WriteString("- ")
		b.Write(encoded)
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func taskSchedule(t *ent.Task) string {
	if t.CronExpression != "" {
		return "cron " + t.CronExpression
	}
	if t.IntervalValue != nil {
		return fmt.Sprintf("every %d %s", *t.IntervalValue, t.IntervalUnit)
	}
	return "unscheduled"
}

func writeStatusContext(b *strings.Builder, conv *ent.Conversation) {
	fmt.Fprintf(b, "CONVERSATION STATUS: %s\n", conv.Status)
	switch conv.Status {
	case conversation.StatusWaitingInput:
		if conv.PendingQuestionPrompt != "" {
			fmt.Fprintf(b, "You previously asked: %q. The user's message may be the answer; if it is, act on it and continue.\n", conv.PendingQuestionPrompt)
		} else {
			b.WriteString("You are waiting on the user; their message may be the answer you asked for.\n")
		}
	case conversation.StatusBackground:
		b.WriteString("This conversation runs on a schedule in the background. The user is checking in; answer without disturbing the schedule unless asked to change it.\n")
	}
	b.WriteString("\n")
}
