package services

import (
	"context"
	"testing"
	"time"

	"github.com/majordomo-io/majordomo/ent/conversation"
	"github.com/majordomo-io/majordomo/pkg/models"
	testdb "github.com/majordomo-io/majordomo/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversationService_CreateConversation(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewConversationService(client.Client)
	ctx := context.Background()

	t.Run("creates conversation with defaults", func(t *testing.T) {
		conv, err := service.CreateConversation(ctx, models.CreateConversationRequest{
			UserID: "user-1",
			Title:  "Trip planning",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, conv.ID)
		assert.Equal(t, "user-1", conv.UserID)
		assert.Equal(t, "Trip planning", conv.Title)
		assert.Equal(t, conversation.StatusActive, conv.Status)
		assert.Equal(t, "initial", conv.StateStep)
		assert.Nil(t, conv.NextRunAt)
		assert.Equal(t, 0, conv.ConsecutiveFailures)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := service.CreateConversation(ctx, models.CreateConversationRequest{})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("computes first cron run", func(t *testing.T) {
		conv, err := service.CreateConversation(ctx, models.CreateConversationRequest{
			UserID:         "user-1",
			Status:         conversation.StatusBackground,
			ScheduleType:   conversation.ScheduleTypeCron,
			CronExpression: "0 9 * * *",
		})
		require.NoError(t, err)
		require.NotNil(t, conv.NextRunAt)
		assert.True(t, conv.NextRunAt.After(time.Now()))
		assert.Equal(t, 9, conv.NextRunAt.Hour())
		assert.Equal(t, 0, conv.NextRunAt.Minute())
	})

	t.Run("rejects invalid cron expression", func(t *testing.T) {
		_, err := service.CreateConversation(ctx, models.CreateConversationRequest{
			UserID:         "user-1",
			ScheduleType:   conversation.ScheduleTypeCron,
			CronExpression: "not a cron",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("requires cron expression for cron schedules", func(t *testing.T) {
		_, err := service.CreateConversation(ctx, models.CreateConversationRequest{
			UserID:       "user-1",
			ScheduleType: conversation.ScheduleTypeCron,
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("scheduled run uses scheduled_run_at", func(t *testing.T) {
		runAt := time.Now().Add(2 * time.Hour).Truncate(time.Second)
		conv, err := service.CreateConversation(ctx, models.CreateConversationRequest{
			UserID:         "user-1",
			Status:         conversation.StatusBackground,
			ScheduleType:   conversation.ScheduleTypeScheduled,
			ScheduledRunAt: &runAt,
		})
		require.NoError(t, err)
		require.NotNil(t, conv.NextRunAt)
		assert.WithinDuration(t, runAt, *conv.NextRunAt, time.Second)
	})

	t.Run("scheduled run requires scheduled_run_at", func(t *testing.T) {
		_, err := service.CreateConversation(ctx, models.CreateConversationRequest{
			UserID:       "user-1",
			ScheduleType: conversation.ScheduleTypeScheduled,
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("immediate schedule is due now", func(t *testing.T) {
		conv, err := service.CreateConversation(ctx, models.CreateConversationRequest{
			UserID:       "user-1",
			Status:       conversation.StatusBackground,
			ScheduleType: conversation.ScheduleTypeImmediate,
		})
		require.NoError(t, err)
		require.NotNil(t, conv.NextRunAt)
		assert.WithinDuration(t, time.Now(), *conv.NextRunAt, 5*time.Second)
	})

	t.Run("explicit next_run_at wins over computation", func(t *testing.T) {
		next := time.Now().Add(30 * time.Minute).Truncate(time.Second)
		conv, err := service.CreateConversation(ctx, models.CreateConversationRequest{
			UserID:         "user-1",
			ScheduleType:   conversation.ScheduleTypeCron,
			CronExpression: "*/5 * * * *",
			NextRunAt:      &next,
		})
		require.NoError(t, err)
		require.NotNil(t, conv.NextRunAt)
		assert.WithinDuration(t, next, *conv.NextRunAt, time.Second)
	})
}

func TestConversationService_GetConversation(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewConversationService(client.Client)
	ctx := context.Background()

	created, err := service.CreateConversation(ctx, models.CreateConversationRequest{UserID: "user-1"})
	require.NoError(t, err)

	t.Run("returns conversation", func(t *testing.T) {
		conv, err := service.GetConversation(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, conv.ID)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := service.GetConversation(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestConversationService_ListConversations(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewConversationService(client.Client)
	ctx := context.Background()

	for range 3 {
		_, err := service.CreateConversation(ctx, models.CreateConversationRequest{UserID: "user-a"})
		require.NoError(t, err)
	}
	other, err := service.CreateConversation(ctx, models.CreateConversationRequest{UserID: "user-b"})
	require.NoError(t, err)
	_, err = service.ArchiveConversation(ctx, other.ID)
	require.NoError(t, err)

	t.Run("filters by user", func(t *testing.T) {
		resp, err := service.ListConversations(ctx, models.ConversationFilters{UserID: "user-a"})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.TotalCount)
		assert.Len(t, resp.Conversations, 3)
	})

	t.Run("excludes archived by default", func(t *testing.T) {
		resp, err := service.ListConversations(ctx, models.ConversationFilters{UserID: "user-b"})
		require.NoError(t, err)
		assert.Equal(t, 0, resp.TotalCount)
	})

	t.Run("status filter includes archived", func(t *testing.T) {
		resp, err := service.ListConversations(ctx, models.ConversationFilters{
			UserID: "user-b",
			Status: string(conversation.StatusArchived),
		})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.TotalCount)
	})

	t.Run("paginates", func(t *testing.T) {
		resp, err := service.ListConversations(ctx, models.ConversationFilters{
			UserID: "user-a",
			Limit:  2,
			Offset: 2,
		})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.TotalCount)
		assert.Len(t, resp.Conversations, 1)
		assert.Equal(t, 2, resp.Limit)
		assert.Equal(t, 2, resp.Offset)
	})
}

func TestConversationService_UpdateConversation(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewConversationService(client.Client)
	ctx := context.Background()

	t.Run("partial update leaves other fields alone", func(t *testing.T) {
		conv, err := service.CreateConversation(ctx, models.CreateConversationRequest{
			UserID: "user-1",
			Title:  "before",
			StateData: map[string]any{
				"step_count": float64(2),
			},
		})
		require.NoError(t, err)

		title := "after"
		updated, err := service.UpdateConversation(ctx, conv.ID, models.ConversationUpdate{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "after", updated.Title)
		assert.Equal(t, conversation.StatusActive, updated.Status)
		assert.Equal(t, map[string]any{"step_count": float64(2)}, updated.StateData)
	})

	t.Run("waiting_input with pending question", func(t *testing.T) {
		conv, err := service.CreateConversation(ctx, models.CreateConversationRequest{UserID: "user-1"})
		require.NoError(t, err)

		status := conversation.StatusWaitingInput
		updated, err := service.UpdateConversation(ctx, conv.ID, models.ConversationUpdate{
			Status: &status,
			PendingQuestion: &models.PendingQuestion{
				Type:    conversation.PendingQuestionTypeChoice,
				Prompt:  "Window or aisle?",
				Options: []string{"window", "aisle"},
			},
			ClearNextRunAt: true,
		})
		require.NoError(t, err)
		assert.Equal(t, conversation.StatusWaitingInput, updated.Status)
		assert.Equal(t, conversation.PendingQuestionTypeChoice, updated.PendingQuestionType)
		assert.Equal(t, "Window or aisle?", updated.PendingQuestionPrompt)
		assert.Equal(t, []string{"window", "aisle"}, updated.PendingQuestionOptions)
		assert.Nil(t, updated.NextRunAt)
	})

	t.Run("clearing the pending question", func(t *testing.T) {
		conv, err := service.CreateConversation(ctx, models.CreateConversationRequest{UserID: "user-1"})
		require.NoError(t, err)

		status := conversation.StatusWaitingInput
		_, err = service.UpdateConversation(ctx, conv.ID, models.ConversationUpdate{
			Status: &status,
			PendingQuestion: &models.PendingQuestion{
				Type:   conversation.PendingQuestionTypeConfirmation,
				Prompt: "Proceed?",
			},
		})
		require.NoError(t, err)

		active := conversation.StatusActive
		updated, err := service.UpdateConversation(ctx, conv.ID, models.ConversationUpdate{
			Status:               &active,
			ClearPendingQuestion: true,
		})
		require.NoError(t, err)
		assert.Equal(t, conversation.StatusActive, updated.Status)
		assert.Empty(t, updated.PendingQuestionType)
		assert.Empty(t, updated.PendingQuestionPrompt)
		assert.Nil(t, updated.PendingQuestionOptions)
	})

	t.Run("records model session and state", func(t *testing.T) {
		conv, err := service.CreateConversation(ctx, models.CreateConversationRequest{UserID: "user-1"})
		require.NoError(t, err)

		sid := "sess-abc"
		step := "gathering"
		updated, err := service.UpdateConversation(ctx, conv.ID, models.ConversationUpdate{
			ClaudeSessionID: &sid,
			StateStep:       &step,
			StateContext:    map[string]any{"goal": "book flights"},
		})
		require.NoError(t, err)
		assert.Equal(t, "sess-abc", updated.ClaudeSessionID)
		assert.Equal(t, "gathering", updated.StateStep)
		assert.Equal(t, map[string]any{"goal": "book flights"}, updated.StateContext)
	})

	t.Run("not found", func(t *testing.T) {
		title := "x"
		_, err := service.UpdateConversation(ctx, "missing", models.ConversationUpdate{Title: &title})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestConversationService_ArchiveConversation(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewConversationService(client.Client)
	ctx := context.Background()

	next := time.Now().Add(time.Hour)
	conv, err := service.CreateConversation(ctx, models.CreateConversationRequest{
		UserID:    "user-1",
		Status:    conversation.StatusBackground,
		NextRunAt: &next,
	})
	require.NoError(t, err)

	archived, err := service.ArchiveConversation(ctx, conv.ID)
	require.NoError(t, err)
	assert.Equal(t, conversation.StatusArchived, archived.Status)
	assert.Nil(t, archived.NextRunAt)

	_, err = service.ArchiveConversation(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConversationService_ClaimReady(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewConversationService(client.Client)
	ctx := context.Background()

	now := time.Now()
	mkBackground := func(due time.Time) models.CreateConversationRequest {
		return models.CreateConversationRequest{
			UserID:    "user-1",
			Status:    conversation.StatusBackground,
			NextRunAt: &due,
		}
	}

	oldest, err := service.CreateConversation(ctx, mkBackground(now.Add(-3*time.Hour)))
	require.NoError(t, err)
	middle, err := service.CreateConversation(ctx, mkBackground(now.Add(-2*time.Hour)))
	require.NoError(t, err)
	newest, err := service.CreateConversation(ctx, mkBackground(now.Add(-1*time.Hour)))
	require.NoError(t, err)

	// Not claimable: future, wrong status.
	_, err = service.CreateConversation(ctx, mkBackground(now.Add(time.Hour)))
	require.NoError(t, err)
	due := now.Add(-time.Hour)
	_, err = service.CreateConversation(ctx, models.CreateConversationRequest{
		UserID:    "user-1",
		Status:    conversation.StatusActive,
		NextRunAt: &due,
	})
	require.NoError(t, err)

	t.Run("claims most overdue first and bumps next_run_at", func(t *testing.T) {
		claimed, err := service.ClaimReady(ctx, 2, 10*time.Minute)
		require.NoError(t, err)
		require.Len(t, claimed, 2)
		assert.Equal(t, oldest.ID, claimed[0].ID)
		assert.Equal(t, middle.ID, claimed[1].ID)
		for _, c := range claimed {
			require.NotNil(t, c.NextRunAt)
			assert.WithinDuration(t, time.Now().Add(10*time.Minute), *c.NextRunAt, 5*time.Second)
		}
	})

	t.Run("next claim sees the remaining row only", func(t *testing.T) {
		claimed, err := service.ClaimReady(ctx, 10, 10*time.Minute)
		require.NoError(t, err)
		require.Len(t, claimed, 1)
		assert.Equal(t, newest.ID, claimed[0].ID)
	})

	t.Run("no rows due", func(t *testing.T) {
		claimed, err := service.ClaimReady(ctx, 10, 10*time.Minute)
		require.NoError(t, err)
		assert.Empty(t, claimed)
	})

	t.Run("zero limit claims nothing", func(t *testing.T) {
		claimed, err := service.ClaimReady(ctx, 0, 10*time.Minute)
		require.NoError(t, err)
		assert.Empty(t, claimed)
	})
}

func TestConversationService_ArchiveIdle(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewConversationService(client.Client)
	ctx := context.Background()

	stale, err := service.CreateConversation(ctx, models.CreateConversationRequest{UserID: "user-1"})
	require.NoError(t, err)
	waiting, err := service.CreateConversation(ctx, models.CreateConversationRequest{UserID: "user-1"})
	require.NoError(t, err)
	fresh, err := service.CreateConversation(ctx, models.CreateConversationRequest{UserID: "user-1"})
	require.NoError(t, err)

	old := time.Now().Add(-100 * 24 * time.Hour)
	_, err = client.Conversation.UpdateOneID(stale.ID).SetUpdatedAt(old).Save(ctx)
	require.NoError(t, err)
	_, err = client.Conversation.UpdateOneID(waiting.ID).
		SetStatus(conversation.StatusWaitingInput).
		SetUpdatedAt(old).
		Save(ctx)
	require.NoError(t, err)

	n, err := service.ArchiveIdle(ctx, time.Now().Add(-90*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := service.GetConversation(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, conversation.StatusArchived, got.Status)

	// Waiting on the user is not idle abandonment.
	got, err = service.GetConversation(ctx, waiting.ID)
	require.NoError(t, err)
	assert.Equal(t, conversation.StatusWaitingInput, got.Status)

	got, err = service.GetConversation(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, conversation.StatusActive, got.Status)
}
