package models

import (
	"github.com/majordomo-io/majordomo/ent"
	"github.com/majordomo-io/majordomo/ent/conversation"
)

// ChatTurnRequest contains fields for one interactive turn
type ChatTurnRequest struct {
	ConversationID string `json:"conversation_id"`
	Content        string `json:"content"`
}

// ChatTurnResult is the outcome of a completed interactive turn: the two
// messages persisted for it, whether any structured actions changed
// state, and the conversation status after they ran.
type ChatTurnResult struct {
	UserMessage      *ent.Message        `json:"user_message"`
	AssistantMessage *ent.Message        `json:"assistant_message"`
	Updated          bool                `json:"updated"`
	Status           conversation.Status `json:"status"`
	PendingQuestion  *PendingQuestion    `json:"pending_question,omitempty"`
}
