package services

import (
	"context"
	"testing"
	"time"

	"github.com/majordomo-io/majordomo/ent/task"
	"github.com/majordomo-io/majordomo/pkg/models"
	testdb "github.com/majordomo-io/majordomo/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestIntervalDuration(t *testing.T) {
	assert.Equal(t, 30*time.Second, IntervalDuration(30, task.IntervalUnitSeconds))
	assert.Equal(t, 5*time.Minute, IntervalDuration(5, task.IntervalUnitMinutes))
	assert.Equal(t, 2*time.Hour, IntervalDuration(2, task.IntervalUnitHours))
	assert.Equal(t, 72*time.Hour, IntervalDuration(3, task.IntervalUnitDays))
	assert.Equal(t, time.Duration(0), IntervalDuration(5, task.IntervalUnit("")))
}

func TestTaskService_CreateTask(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client, 15*time.Second)
	ctx := context.Background()

	conv := createTestConversation(t, client, "user-1")

	t.Run("creates interval task", func(t *testing.T) {
		created, err := service.CreateTask(ctx, models.CreateTaskRequest{
			ConversationID: conv.ID,
			UserID:         "user-1",
			Name:           "Check inbox",
			Description:    "Summarize unread mail",
			IntervalValue:  intPtr(30),
			IntervalUnit:   task.IntervalUnitMinutes,
		})
		require.NoError(t, err)
		assert.Equal(t, task.StatusActive, created.Status)
		assert.Equal(t, "Check inbox", created.Name)
		require.NotNil(t, created.NextRunAt)
		assert.WithinDuration(t, time.Now().Add(30*time.Minute), *created.NextRunAt, 5*time.Second)
		assert.Equal(t, 0, created.CurrentRuns)
		assert.Nil(t, created.ExpiresAt)
	})

	t.Run("creates cron task", func(t *testing.T) {
		created, err := service.CreateTask(ctx, models.CreateTaskRequest{
			ConversationID: conv.ID,
			UserID:         "user-1",
			Name:           "Morning digest",
			CronExpression: "0 7 * * 1-5",
		})
		require.NoError(t, err)
		require.NotNil(t, created.NextRunAt)
		assert.True(t, created.NextRunAt.After(time.Now()))
		assert.Equal(t, 7, created.NextRunAt.Hour())
	})

	t.Run("bounded run task", func(t *testing.T) {
		created, err := service.CreateTask(ctx, models.CreateTaskRequest{
			ConversationID:  conv.ID,
			UserID:          "user-1",
			Name:            "Poll order status",
			IntervalValue:   intPtr(5),
			IntervalUnit:    task.IntervalUnitMinutes,
			MaxRuns:         intPtr(10),
			DurationSeconds: intPtr(3600),
		})
		require.NoError(t, err)
		require.NotNil(t, created.MaxRuns)
		assert.Equal(t, 10, *created.MaxRuns)
		require.NotNil(t, created.ExpiresAt)
		assert.WithinDuration(t, time.Now().Add(time.Hour), *created.ExpiresAt, 5*time.Second)
	})

	t.Run("validation failures", func(t *testing.T) {
		base := models.CreateTaskRequest{
			ConversationID: conv.ID,
			UserID:         "user-1",
			Name:           "bad",
		}

		tests := []struct {
			name   string
			mutate func(*models.CreateTaskRequest)
		}{
			{"missing conversation_id", func(r *models.CreateTaskRequest) { r.ConversationID = "" }},
			{"missing user_id", func(r *models.CreateTaskRequest) { r.UserID = "" }},
			{"missing name", func(r *models.CreateTaskRequest) { r.Name = "" }},
			{"no schedule", func(r *models.CreateTaskRequest) {}},
			{"both schedules", func(r *models.CreateTaskRequest) {
				r.IntervalValue = intPtr(5)
				r.IntervalUnit = task.IntervalUnitMinutes
				r.CronExpression = "* * * * *"
			}},
			{"interval unit without value", func(r *models.CreateTaskRequest) {
				r.IntervalUnit = task.IntervalUnitMinutes
			}},
			{"interval value without unit", func(r *models.CreateTaskRequest) {
				r.IntervalValue = intPtr(5)
			}},
			{"negative interval", func(r *models.CreateTaskRequest) {
				r.IntervalValue = intPtr(-1)
				r.IntervalUnit = task.IntervalUnitMinutes
			}},
			{"interval below minimum", func(r *models.CreateTaskRequest) {
				r.IntervalValue = intPtr(5)
				r.IntervalUnit = task.IntervalUnitSeconds
			}},
			{"bad cron", func(r *models.CreateTaskRequest) { r.CronExpression = "61 * * * *" }},
			{"nonpositive max_runs", func(r *models.CreateTaskRequest) {
				r.IntervalValue = intPtr(5)
				r.IntervalUnit = task.IntervalUnitMinutes
				r.MaxRuns = intPtr(0)
			}},
			{"nonpositive duration", func(r *models.CreateTaskRequest) {
				r.IntervalValue = intPtr(5)
				r.IntervalUnit = task.IntervalUnitMinutes
				r.DurationSeconds = intPtr(-10)
			}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := base
				tt.mutate(&req)
				_, err := service.CreateTask(ctx, req)
				require.Error(t, err)
				assert.True(t, IsValidationError(err), "expected validation error, got %v", err)
			})
		}
	})

	t.Run("minimum interval is exact", func(t *testing.T) {
		created, err := service.CreateTask(ctx, models.CreateTaskRequest{
			ConversationID: conv.ID,
			UserID:         "user-1",
			Name:           "Fast poll",
			IntervalValue:  intPtr(15),
			IntervalUnit:   task.IntervalUnitSeconds,
		})
		require.NoError(t, err)
		assert.NotNil(t, created.NextRunAt)
	})

	t.Run("conversation must exist", func(t *testing.T) {
		_, err := service.CreateTask(ctx, models.CreateTaskRequest{
			ConversationID: "missing",
			UserID:         "user-1",
			Name:           "orphan",
			IntervalValue:  intPtr(5),
			IntervalUnit:   task.IntervalUnitMinutes,
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTaskService_FindTaskByName(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client, 15*time.Second)
	ctx := context.Background()

	conv := createTestConversation(t, client, "user-1")
	created, err := service.CreateTask(ctx, models.CreateTaskRequest{
		ConversationID: conv.ID,
		UserID:         "user-1",
		Name:           "Check Inbox",
		IntervalValue:  intPtr(30),
		IntervalUnit:   task.IntervalUnitMinutes,
	})
	require.NoError(t, err)

	t.Run("case-insensitive match", func(t *testing.T) {
		for _, name := range []string{"Check Inbox", "check inbox", "CHECK INBOX"} {
			found, err := service.FindTaskByName(ctx, conv.ID, name)
			require.NoError(t, err, "lookup %q", name)
			assert.Equal(t, created.ID, found.ID)
		}
	})

	t.Run("scoped to conversation", func(t *testing.T) {
		other := createTestConversation(t, client, "user-1")
		_, err := service.FindTaskByName(ctx, other.ID, "Check Inbox")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("latest duplicate wins", func(t *testing.T) {
		dup, err := service.CreateTask(ctx, models.CreateTaskRequest{
			ConversationID: conv.ID,
			UserID:         "user-1",
			Name:           "check inbox",
			IntervalValue:  intPtr(45),
			IntervalUnit:   task.IntervalUnitMinutes,
		})
		require.NoError(t, err)

		found, err := service.FindTaskByName(ctx, conv.ID, "Check Inbox")
		require.NoError(t, err)
		assert.Equal(t, dup.ID, found.ID)
	})

	t.Run("deleted tasks are invisible", func(t *testing.T) {
		found, err := service.FindTaskByName(ctx, conv.ID, "check inbox")
		require.NoError(t, err)
		_, err = service.DeleteTask(ctx, found.ID)
		require.NoError(t, err)

		surviving, err := service.FindTaskByName(ctx, conv.ID, "check inbox")
		require.NoError(t, err)
		assert.Equal(t, created.ID, surviving.ID)
	})
}

func TestTaskService_Lifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client, 15*time.Second)
	ctx := context.Background()

	conv := createTestConversation(t, client, "user-1")

	newTask := func(name string) *models.CreateTaskRequest {
		return &models.CreateTaskRequest{
			ConversationID: conv.ID,
			UserID:         "user-1",
			Name:           name,
			IntervalValue:  intPtr(30),
			IntervalUnit:   task.IntervalUnitMinutes,
		}
	}

	t.Run("pause and resume", func(t *testing.T) {
		created, err := service.CreateTask(ctx, *newTask("pausable"))
		require.NoError(t, err)

		paused, err := service.PauseTask(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusPaused, paused.Status)
		assert.Nil(t, paused.NextRunAt)

		// Idempotent.
		paused, err = service.PauseTask(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusPaused, paused.Status)

		resumed, err := service.ResumeTask(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusActive, resumed.Status)
		require.NotNil(t, resumed.NextRunAt)
		assert.WithinDuration(t, time.Now().Add(30*time.Minute), *resumed.NextRunAt, 5*time.Second)
	})

	t.Run("resume resets failure counter", func(t *testing.T) {
		created, err := service.CreateTask(ctx, *newTask("flaky"))
		require.NoError(t, err)

		status := task.StatusPaused
		lastErr := "timed out"
		_, err = service.UpdateTask(ctx, created.ID, models.TaskUpdate{
			Status:              &status,
			ClearNextRunAt:      true,
			ConsecutiveFailures: intPtr(3),
			LastError:           &lastErr,
		})
		require.NoError(t, err)

		resumed, err := service.ResumeTask(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, resumed.ConsecutiveFailures)
	})

	t.Run("completed tasks stay finished", func(t *testing.T) {
		created, err := service.CreateTask(ctx, *newTask("finished"))
		require.NoError(t, err)

		status := task.StatusCompleted
		_, err = service.UpdateTask(ctx, created.ID, models.TaskUpdate{
			Status:         &status,
			ClearNextRunAt: true,
		})
		require.NoError(t, err)

		_, err = service.PauseTask(ctx, created.ID)
		assert.True(t, IsValidationError(err))
		_, err = service.ResumeTask(ctx, created.ID)
		assert.True(t, IsValidationError(err))
	})

	t.Run("soft delete", func(t *testing.T) {
		created, err := service.CreateTask(ctx, *newTask("doomed"))
		require.NoError(t, err)

		deleted, err := service.DeleteTask(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusDeleted, deleted.Status)
		assert.Nil(t, deleted.NextRunAt)

		// The row survives for history but reads as gone.
		_, err = service.DeleteTask(ctx, created.ID)
		assert.ErrorIs(t, err, ErrNotFound)
		got, err := service.GetTask(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusDeleted, got.Status)
	})

	t.Run("run bookkeeping", func(t *testing.T) {
		created, err := service.CreateTask(ctx, *newTask("bookkept"))
		require.NoError(t, err)

		now := time.Now().Truncate(time.Second)
		next := now.Add(30 * time.Minute)
		updated, err := service.UpdateTask(ctx, created.ID, models.TaskUpdate{
			CurrentRuns:         intPtr(1),
			LastRunAt:           &now,
			NextRunAt:           &next,
			ConsecutiveFailures: intPtr(0),
			ClearLastError:      true,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, updated.CurrentRuns)
		require.NotNil(t, updated.LastRunAt)
		assert.WithinDuration(t, now, *updated.LastRunAt, time.Second)
		require.NotNil(t, updated.NextRunAt)
		assert.WithinDuration(t, next, *updated.NextRunAt, time.Second)
		assert.Nil(t, updated.LastError)
	})
}

func TestTaskService_ClaimReady(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client, 15*time.Second)
	ctx := context.Background()

	conv := createTestConversation(t, client, "user-1")
	now := time.Now()

	mk := func(name string, due time.Time, status task.Status) string {
		t.Helper()
		created, err := service.CreateTask(ctx, models.CreateTaskRequest{
			ConversationID: conv.ID,
			UserID:         "user-1",
			Name:           name,
			IntervalValue:  intPtr(30),
			IntervalUnit:   task.IntervalUnitMinutes,
		})
		require.NoError(t, err)
		upd := models.TaskUpdate{NextRunAt: &due}
		if status != task.StatusActive {
			upd.Status = &status
		}
		_, err = service.UpdateTask(ctx, created.ID, upd)
		require.NoError(t, err)
		return created.ID
	}

	overdueID := mk("overdue", now.Add(-time.Hour), task.StatusActive)
	justDueID := mk("just due", now.Add(-time.Minute), task.StatusActive)
	mk("future", now.Add(time.Hour), task.StatusActive)
	mk("paused", now.Add(-time.Hour), task.StatusPaused)

	t.Run("claims due active tasks in order", func(t *testing.T) {
		claimed, err := service.ClaimReady(ctx, 10, 10*time.Minute)
		require.NoError(t, err)
		require.Len(t, claimed, 2)
		assert.Equal(t, overdueID, claimed[0].ID)
		assert.Equal(t, justDueID, claimed[1].ID)
		for _, c := range claimed {
			require.NotNil(t, c.NextRunAt)
			assert.WithinDuration(t, time.Now().Add(10*time.Minute), *c.NextRunAt, 5*time.Second)
		}
	})

	t.Run("claimed rows stay claimed until the horizon", func(t *testing.T) {
		claimed, err := service.ClaimReady(ctx, 10, 10*time.Minute)
		require.NoError(t, err)
		assert.Empty(t, claimed)
	})

	t.Run("expired tasks are still claimable for finalization", func(t *testing.T) {
		expired, err := service.CreateTask(ctx, models.CreateTaskRequest{
			ConversationID:  conv.ID,
			UserID:          "user-1",
			Name:            "expired",
			IntervalValue:   intPtr(30),
			IntervalUnit:    task.IntervalUnitMinutes,
			DurationSeconds: intPtr(3600),
		})
		require.NoError(t, err)
		due := now.Add(-time.Minute)
		_, err = service.UpdateTask(ctx, expired.ID, models.TaskUpdate{NextRunAt: &due})
		require.NoError(t, err)
		_, err = client.Task.UpdateOneID(expired.ID).SetExpiresAt(now.Add(-time.Second)).Save(ctx)
		require.NoError(t, err)

		claimed, err := service.ClaimReady(ctx, 10, 10*time.Minute)
		require.NoError(t, err)
		require.Len(t, claimed, 1)
		assert.Equal(t, expired.ID, claimed[0].ID)
	})
}

func TestTaskService_PurgeDeletedOlderThan(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client, 15*time.Second)
	ctx := context.Background()

	conv := createTestConversation(t, client, "user-1")
	created, err := service.CreateTask(ctx, models.CreateTaskRequest{
		ConversationID: conv.ID,
		UserID:         "user-1",
		Name:           "old and gone",
		IntervalValue:  intPtr(30),
		IntervalUnit:   task.IntervalUnitMinutes,
	})
	require.NoError(t, err)
	_, err = service.DeleteTask(ctx, created.ID)
	require.NoError(t, err)
	_, err = client.Task.UpdateOneID(created.ID).
		SetUpdatedAt(time.Now().Add(-40 * 24 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	keep, err := service.CreateTask(ctx, models.CreateTaskRequest{
		ConversationID: conv.ID,
		UserID:         "user-1",
		Name:           "recently deleted",
		IntervalValue:  intPtr(30),
		IntervalUnit:   task.IntervalUnitMinutes,
	})
	require.NoError(t, err)
	_, err = service.DeleteTask(ctx, keep.ID)
	require.NoError(t, err)

	n, err := service.PurgeDeletedOlderThan(ctx, time.Now().Add(-30*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = service.GetTask(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = service.GetTask(ctx, keep.ID)
	require.NoError(t, err)
}
