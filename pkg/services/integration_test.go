package services

import (
	"context"
	"testing"
	"time"

	"github.com/majordomo-io/majordomo/ent/conversation"
	"github.com/majordomo-io/majordomo/ent/message"
	"github.com/majordomo-io/majordomo/ent/task"
	"github.com/majordomo-io/majordomo/pkg/models"
	testdb "github.com/majordomo-io/majordomo/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestServiceIntegration drives multiple services through the shapes the
// daemon produces: an interactive exchange that schedules background
// work, a claim cycle, task bookkeeping, and the resulting notification.
func TestServiceIntegration(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	sink := &captureSink{}
	conversationService := NewConversationService(client.Client)
	messageService := NewMessageService(client.Client)
	taskService := NewTaskService(client.Client, 15*time.Second)
	notificationService := NewNotificationService(client.Client, sink)

	t.Run("conversation goes background and gets claimed", func(t *testing.T) {
		// 1. Interactive conversation with history
		conv, err := conversationService.CreateConversation(ctx, models.CreateConversationRequest{
			UserID: "user-1",
			Title:  "Flight watch",
		})
		require.NoError(t, err)

		_, err = messageService.AppendMessage(ctx, models.AppendMessageRequest{
			ConversationID: conv.ID,
			Role:           message.RoleUser,
			Content:        "Watch fares to Lisbon and ping me when they drop",
		})
		require.NoError(t, err)
		_, err = messageService.AppendMessage(ctx, models.AppendMessageRequest{
			ConversationID: conv.ID,
			Role:           message.RoleAssistant,
			Content:        "I'll check every morning and let you know.",
		})
		require.NoError(t, err)

		// 2. The assistant turned the request into a cron schedule
		status := conversation.StatusBackground
		cronExpr := "0 8 * * *"
		scheduleType := conversation.ScheduleTypeCron
		due := time.Now().Add(-time.Minute)
		step := "monitoring"
		_, err = conversationService.UpdateConversation(ctx, conv.ID, models.ConversationUpdate{
			Status:         &status,
			ScheduleType:   &scheduleType,
			CronExpression: &cronExpr,
			NextRunAt:      &due,
			StateStep:      &step,
			StateContext:   map[string]any{"route": "SFO-LIS"},
		})
		require.NoError(t, err)

		// 3. Worker claims it
		claimed, err := conversationService.ClaimReady(ctx, 5, 10*time.Minute)
		require.NoError(t, err)
		require.Len(t, claimed, 1)
		assert.Equal(t, conv.ID, claimed[0].ID)
		assert.Equal(t, "monitoring", claimed[0].StateStep)

		// 4. Worker appends its output and reschedules
		_, err = messageService.AppendMessage(ctx, models.AppendMessageRequest{
			ConversationID: conv.ID,
			Role:           message.RoleAssistant,
			Content:        "Fares unchanged today.",
			Source:         message.SourceWorker,
		})
		require.NoError(t, err)

		history, err := messageService.LastMessages(ctx, conv.ID, 10)
		require.NoError(t, err)
		require.Len(t, history, 3)
		assert.Equal(t, message.SourceWorker, history[2].Source)
	})

	t.Run("task lifecycle produces a notification", func(t *testing.T) {
		conv, err := conversationService.CreateConversation(ctx, models.CreateConversationRequest{
			UserID: "user-1",
		})
		require.NoError(t, err)

		created, err := taskService.CreateTask(ctx, models.CreateTaskRequest{
			ConversationID: conv.ID,
			UserID:         "user-1",
			Name:           "Inbox sweep",
			IntervalValue:  intPtr(30),
			IntervalUnit:   task.IntervalUnitMinutes,
			MaxRuns:        intPtr(1),
		})
		require.NoError(t, err)

		due := time.Now().Add(-time.Second)
		_, err = taskService.UpdateTask(ctx, created.ID, models.TaskUpdate{NextRunAt: &due})
		require.NoError(t, err)

		claimed, err := taskService.ClaimReady(ctx, 5, 10*time.Minute)
		require.NoError(t, err)
		require.Len(t, claimed, 1)

		// Run once, hit max_runs, complete.
		now := time.Now()
		completed := task.StatusCompleted
		_, err = taskService.UpdateTask(ctx, created.ID, models.TaskUpdate{
			Status:         &completed,
			CurrentRuns:    intPtr(1),
			LastRunAt:      &now,
			ClearNextRunAt: true,
		})
		require.NoError(t, err)

		notif, err := notificationService.CreateNotification(ctx, models.CreateNotificationRequest{
			UserID:         "user-1",
			ConversationID: conv.ID,
			Title:          "Task: Inbox sweep",
			Body:           "Swept 12 messages, nothing urgent.",
		})
		require.NoError(t, err)
		assert.Equal(t, "Task: Inbox sweep", notif.Title)
		require.NotEmpty(t, sink.notifs)
		assert.Equal(t, notif.ID, sink.notifs[len(sink.notifs)-1].ID)

		got, err := taskService.GetTask(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusCompleted, got.Status)
		assert.Nil(t, got.NextRunAt)

		// Completed tasks never come back.
		claimed, err = taskService.ClaimReady(ctx, 5, 10*time.Minute)
		require.NoError(t, err)
		assert.Empty(t, claimed)
	})
}
