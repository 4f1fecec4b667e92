package prompt

import (
	"encoding/json"
	"strings"

	"github.com/majordomo-io/majordomo/ent"
)

// BuildWorkerSystemPrompt returns the system prompt for a background
// conversation cycle. The grammar is fixed; per-cycle detail travels in
// the user prompt.
func BuildWorkerSystemPrompt() string {
	return workerResponseGrammar
}

// BuildWorkerUserPrompt assembles the cycle's working context: what the
// conversation is about, where its state machine stands, and the recent
// message history.
func BuildWorkerUserPrompt(conv *ent.Conversation, history []*ent.Message) string {
	var b strings.Builder

	b.WriteString("CONTEXT: ")
	b.Write(marshalOrEmpty(conv.StateContext))
	b.WriteString("\n\nCURRENT STEP: ")
	b.WriteString(conv.StateStep)
	b.WriteString("\n\nRECENT MESSAGES:\n")
	for _, msg := range history {
		b.WriteString(formatHistoryLine(msg))
		b.WriteString("\n")
	}
	b.WriteString("\nSTATE DATA: ")
	b.Write(marshalOrEmpty(conv.StateData))
	b.WriteString("\n\nContinue the scheduled work for this cycle.")

	return b.String()
}

func marshalOrEmpty(m map[string]any) []byte {
	if m == nil {
		return []byte("{}")
	}
	encoded, err := json.Marshal(m)
	if err != nil {
		return []byte("{}")
	}
	return encoded
}
