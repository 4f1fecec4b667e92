// Package models contains request/response models and business domain types.
package models

import (
	"time"

	"github.com/majordomo-io/majordomo/ent"
	"github.com/majordomo-io/majordomo/ent/conversation"
)

// PendingQuestion describes the question a waiting_input conversation is
// blocked on. Options is only populated for choice questions.
type PendingQuestion struct {
	Type    conversation.PendingQuestionType `json:"type"`
	Prompt  string                           `json:"prompt"`
	Options []string                         `json:"options,omitempty"`
}

// CreateConversationRequest contains fields for creating a conversation
type CreateConversationRequest struct {
	UserID         string                    `json:"user_id"`
	Title          string                    `json:"title,omitempty"`
	Status         conversation.Status       `json:"status,omitempty"`
	ScheduleType   conversation.ScheduleType `json:"schedule_type,omitempty"`
	CronExpression string                    `json:"cron_expression,omitempty"`
	ScheduledRunAt *time.Time                `json:"scheduled_run_at,omitempty"`
	NextRunAt      *time.Time                `json:"next_run_at,omitempty"`
	StateContext   map[string]any            `json:"state_context,omitempty"`
	StateStep      string                    `json:"state_step,omitempty"`
	StateData      map[string]any            `json:"state_data,omitempty"`
	Skills         []string                  `json:"skills,omitempty"`
}

// ConversationUpdate contains the partial-update fields for a conversation.
// Nil pointers leave the column untouched; the Clear flags null out columns
// a pointer cannot distinguish from "unchanged".
type ConversationUpdate struct {
	Title                *string
	Status               *conversation.Status
	ScheduleType         *conversation.ScheduleType
	CronExpression       *string
	ScheduledRunAt       *time.Time
	NextRunAt            *time.Time
	ClearNextRunAt       bool
	ClearSchedule        bool
	StateContext         map[string]any
	StateStep            *string
	StateData            map[string]any
	PendingQuestion      *PendingQuestion
	ClearPendingQuestion bool
	ClaudeSessionID      *string
	Skills               []string
	ConsecutiveFailures  *int
}

// ConversationFilters contains filtering options for listing conversations
type ConversationFilters struct {
	UserID          string `json:"user_id,omitempty"`
	Status          string `json:"status,omitempty"`
	IncludeArchived bool   `json:"include_archived,omitempty"`
	Limit           int    `json:"limit,omitempty"`
	Offset          int    `json:"offset,omitempty"`
}

// ConversationListResponse contains a paginated conversation list
type ConversationListResponse struct {
	Conversations []*ent.Conversation `json:"conversations"`
	TotalCount    int                 `json:"total_count"`
	Limit         int                 `json:"limit"`
	Offset        int                 `json:"offset"`
}
