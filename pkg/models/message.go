package models

import (
	"github.com/majordomo-io/majordomo/ent"
	"github.com/majordomo-io/majordomo/ent/message"
)

// AppendMessageRequest contains fields for appending a message to a
// conversation. Source defaults to chat when empty.
type AppendMessageRequest struct {
	ConversationID string         `json:"conversation_id"`
	Role           message.Role   `json:"role"`
	Content        string         `json:"content"`
	Source         message.Source `json:"source,omitempty"`
}

// MessageListResponse contains a paginated message list in
// chronological order
type MessageListResponse struct {
	Messages   []*ent.Message `json:"messages"`
	TotalCount int            `json:"total_count"`
	Limit      int            `json:"limit"`
	Offset     int            `json:"offset"`
}
