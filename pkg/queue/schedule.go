package queue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/majordomo-io/majordomo/ent"
	"github.com/majordomo-io/majordomo/ent/conversation"
	"github.com/majordomo-io/majordomo/pkg/cron"
	"github.com/majordomo-io/majordomo/pkg/events"
)

// nextCronRun validates expr and computes the first fire time after now.
func nextCronRun(expr string, now time.Time) (*time.Time, error) {
	next, err := cron.NextAfter(expr, now)
	if err != nil {
		return nil, err
	}
	return &next, nil
}

// nextRunForSchedule computes when a scheduled conversation should next
// fire, based on its persisted schedule fields.
func nextRunForSchedule(conv *ent.Conversation, now time.Time) (*time.Time, error) {
	switch conv.ScheduleType {
	case conversation.ScheduleTypeCron:
		return nextCronRun(conv.CronExpression, now)
	case conversation.ScheduleTypeScheduled:
		if conv.ScheduledRunAt == nil {
			return nil, fmt.Errorf("conversation %s has schedule_type scheduled but no scheduled_run_at", conv.ID)
		}
		return conv.ScheduledRunAt, nil
	case conversation.ScheduleTypeImmediate:
		return &now, nil
	}
	return nil, fmt.Errorf("conversation %s has no schedule", conv.ID)
}

// --- Best-effort event publishing ---
//
// Events keep connected clients current; a publish failure must never
// fail the work that produced it, so these log and move on. All accept
// a nil publisher.

func publishActivity(ctx context.Context, p EventPublisher, userID, conversationID, phase string) {
	if p == nil {
		return
	}
	err := p.PublishConversationActivity(ctx, userID, events.ConversationActivityPayload{
		BasePayload:    basePayload(events.EventTypeConversationActivity, userID),
		ConversationID: conversationID,
		Phase:          phase,
	})
	if err != nil {
		slog.Warn("Failed to publish activity event", "conversation_id", conversationID, "error", err)
	}
}

func publishConversationStatus(ctx context.Context, p EventPublisher, conv *ent.Conversation) {
	if p == nil {
		return
	}
	payload := events.ConversationStatusPayload{
		BasePayload:    basePayload(events.EventTypeConversationStatus, conv.UserID),
		ConversationID: conv.ID,
		Status:         conv.Status,
	}
	if conv.Status == conversation.StatusWaitingInput {
		payload.PendingPrompt = conv.PendingQuestionPrompt
	}
	if err := p.PublishConversationStatus(ctx, conv.UserID, payload); err != nil {
		slog.Warn("Failed to publish conversation status event", "conversation_id", conv.ID, "error", err)
	}
}

func publishTaskStatus(ctx context.Context, p EventPublisher, t *ent.Task) {
	if p == nil {
		return
	}
	payload := events.TaskStatusPayload{
		BasePayload:    basePayload(events.EventTypeTaskStatus, t.UserID),
		TaskID:         t.ID,
		ConversationID: t.ConversationID,
		Name:           t.Name,
		Status:         t.Status,
	}
	if t.LastError != nil {
		payload.LastError = *t.LastError
	}
	if err := p.PublishTaskStatus(ctx, t.UserID, payload); err != nil {
		slog.Warn("Failed to publish task status event", "task_id", t.ID, "error", err)
	}
}

func basePayload(eventType, userID string) events.BasePayload {
	return events.BasePayload{
		Type:      eventType,
		UserID:    userID,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	}
}
