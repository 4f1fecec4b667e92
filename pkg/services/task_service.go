package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/majordomo-io/majordomo/ent"
	"github.com/majordomo-io/majordomo/ent/conversation"
	"github.com/majordomo-io/majordomo/ent/task"
	"github.com/majordomo-io/majordomo/pkg/cron"
	"github.com/majordomo-io/majordomo/pkg/models"
)

// TaskService manages scheduled tasks scoped to conversations
type TaskService struct {
	client      *ent.Client
	minInterval time.Duration
}

// NewTaskService creates a new TaskService. minInterval is the smallest
// interval accepted on task creation.
func NewTaskService(client *ent.Client, minInterval time.Duration) *TaskService {
	return &TaskService{client: client, minInterval: minInterval}
}

// IntervalDuration converts a task interval to a duration.
func IntervalDuration(value int, unit task.IntervalUnit) time.Duration {
	switch unit {
	case task.IntervalUnitSeconds:
		return time.Duration(value) * time.Second
	case task.IntervalUnitMinutes:
		return time.Duration(value) * time.Minute
	case task.IntervalUnitHours:
		return time.Duration(value) * time.Hour
	case task.IntervalUnitDays:
		return time.Duration(value) * 24 * time.Hour
	default:
		return 0
	}
}

// NextTaskRun computes when a task should fire next, relative to now.
func NextTaskRun(t *ent.Task, now time.Time) (time.Time, error) {
	if t.CronExpression != "" {
		return cron.NextAfter(t.CronExpression, now)
	}
	if t.IntervalValue == nil || t.IntervalUnit == "" {
		return time.Time{}, fmt.Errorf("task %s has no schedule", t.ID)
	}
	return now.Add(IntervalDuration(*t.IntervalValue, t.IntervalUnit)), nil
}

// CreateTask creates a new task. Exactly one of the interval pair and
// the cron expression must be given; intervals below the configured
// minimum are rejected.
func (s *TaskService) CreateTask(_ context.Context, req models.CreateTaskRequest) (*ent.Task, error) {
	// Validate input
	if req.ConversationID == "" {
		return nil, NewValidationError("conversation_id", "required")
	}
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}

	hasInterval := req.IntervalValue != nil || req.IntervalUnit != ""
	hasCron := req.CronExpression != ""
	switch {
	case hasInterval && hasCron:
		return nil, NewValidationError("schedule", "interval and cron_expression are mutually exclusive")
	case !hasInterval && !hasCron:
		return nil, NewValidationError("schedule", "an interval or a cron_expression is required")
	case hasInterval:
		if req.IntervalValue == nil {
			return nil, NewValidationError("interval_value", "required with interval_unit")
		}
		if req.IntervalUnit == "" {
			return nil, NewValidationError("interval_unit", "required with interval_value")
		}
		if *req.IntervalValue <= 0 {
			return nil, NewValidationError("interval_value", "must be positive")
		}
		if d := IntervalDuration(*req.IntervalValue, req.IntervalUnit); d < s.minInterval {
			return nil, NewValidationError("interval_value", fmt.Sprintf("interval must be at least %s", s.minInterval))
		}
	case hasCron:
		if _, err := cron.Parse(req.CronExpression); err != nil {
			return nil, NewValidationError("cron_expression", err.Error())
		}
	}
	if req.MaxRuns != nil && *req.MaxRuns <= 0 {
		return nil, NewValidationError("max_runs", "must be positive")
	}
	if req.DurationSeconds != nil && *req.DurationSeconds <= 0 {
		return nil, NewValidationError("duration_seconds", "must be positive")
	}

	// Use background context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exists, err := s.client.Conversation.Query().
		Where(conversation.IDEQ(req.ConversationID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check conversation: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	now := time.Now()
	var nextRunAt time.Time
	if hasCron {
		nextRunAt, err = cron.NextAfter(req.CronExpression, now)
		if err != nil {
			return nil, NewValidationError("cron_expression", err.Error())
		}
	} else {
		nextRunAt = now.Add(IntervalDuration(*req.IntervalValue, req.IntervalUnit))
	}

	create := s.client.Task.Create().
		SetID(uuid.New().String()).
		SetConversationID(req.ConversationID).
		SetUserID(req.UserID).
		SetName(req.Name).
		SetNextRunAt(nextRunAt).
		SetCreatedAt(now)
	if req.Description != "" {
		create = create.SetDescription(req.Description)
	}
	if req.IntervalValue != nil {
		create = create.SetIntervalValue(*req.IntervalValue).
			SetIntervalUnit(req.IntervalUnit)
	}
	if req.CronExpression != "" {
		create = create.SetCronExpression(req.CronExpression)
	}
	if req.MaxRuns != nil {
		create = create.SetMaxRuns(*req.MaxRuns)
	}
	if req.DurationSeconds != nil {
		create = create.SetExpiresAt(now.Add(time.Duration(*req.DurationSeconds) * time.Second))
	}
	if req.TaskContext != nil {
		create = create.SetTaskContext(req.TaskContext)
	}

	t, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return t, nil
}

// GetTask retrieves a task by ID
func (s *TaskService) GetTask(ctx context.Context, taskID string) (*ent.Task, error) {
	t, err := s.client.Task.Query().
		Where(task.IDEQ(taskID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return t, nil
}

// FindTaskByName retrieves a conversation's task by name,
// case-insensitively. When several live tasks share a name the most
// recently created one wins.
func (s *TaskService) FindTaskByName(ctx context.Context, conversationID, name string) (*ent.Task, error) {
	t, err := s.client.Task.Query().
		Where(func(sel *sql.Selector) {
			sel.Where(sql.ExprP("lower(name) = lower($1)", name))
		}).
		Where(
			task.ConversationIDEQ(conversationID),
			task.StatusNEQ(task.StatusDeleted),
		).
		Order(ent.Desc(task.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find task by name: %w", err)
	}

	return t, nil
}

// ListTasks lists tasks with filtering and pagination
func (s *TaskService) ListTasks(ctx context.Context, filters models.TaskFilters) (*models.TaskListResponse, error) {
	query := s.client.Task.Query()

	// Apply filters
	if filters.UserID != "" {
		query = query.Where(task.UserIDEQ(filters.UserID))
	}
	if filters.ConversationID != "" {
		query = query.Where(task.ConversationIDEQ(filters.ConversationID))
	}
	if filters.Status != "" {
		query = query.Where(task.StatusEQ(task.Status(filters.Status)))
	}
	if !filters.IncludeDeleted && filters.Status == "" {
		query = query.Where(task.StatusNEQ(task.StatusDeleted))
	}

	// Count total
	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	// Apply pagination
	limit := filters.Limit
	if limit <= 0 {
		limit = 20 // Default
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	tasks, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(task.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return &models.TaskListResponse{
		Tasks:      tasks,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// UpdateTask applies a partial update to a task. Workers use this for
// run bookkeeping after executions complete, so the write uses a
// background context.
func (s *TaskService) UpdateTask(_ context.Context, taskID string, upd models.TaskUpdate) (*ent.Task, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Task.UpdateOneID(taskID)
	if upd.Description != nil {
		update = update.SetDescription(*upd.Description)
	}
	if upd.Status != nil {
		update = update.SetStatus(*upd.Status)
	}
	if upd.ClearNextRunAt {
		update = update.ClearNextRunAt()
	} else if upd.NextRunAt != nil {
		update = update.SetNextRunAt(*upd.NextRunAt)
	}
	if upd.LastRunAt != nil {
		update = update.SetLastRunAt(*upd.LastRunAt)
	}
	if upd.CurrentRuns != nil {
		update = update.SetCurrentRuns(*upd.CurrentRuns)
	}
	if upd.ConsecutiveFailures != nil {
		update = update.SetConsecutiveFailures(*upd.ConsecutiveFailures)
	}
	if upd.ClearLastError {
		update = update.ClearLastError()
	} else if upd.LastError != nil {
		update = update.SetLastError(*upd.LastError)
	}
	if upd.TaskContext != nil {
		update = update.SetTaskContext(upd.TaskContext)
	}

	t, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return t, nil
}

// DeleteTask soft-deletes a task. The row is kept for history; the
// cleanup service prunes it later.
func (s *TaskService) DeleteTask(_ context.Context, taskID string) (*ent.Task, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	t, err := s.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if t.Status == task.StatusDeleted {
		return nil, ErrNotFound
	}

	t, err = t.Update().
		SetStatus(task.StatusDeleted).
		ClearNextRunAt().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to delete task: %w", err)
	}

	return t, nil
}

// PauseTask pauses an active task. Pausing an already paused task is a
// no-op.
func (s *TaskService) PauseTask(_ context.Context, taskID string) (*ent.Task, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	t, err := s.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	switch t.Status {
	case task.StatusDeleted:
		return nil, ErrNotFound
	case task.StatusCompleted:
		return nil, NewValidationError("status", "completed tasks cannot be paused")
	case task.StatusPaused:
		return t, nil
	}

	t, err = t.Update().
		SetStatus(task.StatusPaused).
		ClearNextRunAt().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to pause task: %w", err)
	}

	return t, nil
}

// ResumeTask reactivates a paused task and recomputes its next run from
// its schedule. The failure counter is reset so a task paused after
// repeated errors gets a fresh set of retries.
func (s *TaskService) ResumeTask(_ context.Context, taskID string) (*ent.Task, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	t, err := s.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	switch t.Status {
	case task.StatusDeleted:
		return nil, ErrNotFound
	case task.StatusCompleted:
		return nil, NewValidationError("status", "completed tasks cannot be resumed")
	case task.StatusActive:
		return t, nil
	}

	next, err := NextTaskRun(t, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to compute next run: %w", err)
	}

	t, err = t.Update().
		SetStatus(task.StatusActive).
		SetNextRunAt(next).
		SetConsecutiveFailures(0).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resume task: %w", err)
	}

	return t, nil
}

// ClaimReady atomically claims up to limit due active tasks using
// FOR UPDATE SKIP LOCKED. Claimed rows have next_run_at pushed out by
// horizon before the transaction commits, the same crash-recovery
// discipline as conversation claims. Expired tasks are still returned
// so the worker can finalize them.
func (s *TaskService) ClaimReady(ctx context.Context, limit int, horizon time.Duration) ([]*ent.Task, error) {
	if limit <= 0 {
		return nil, nil
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()

	// SELECT ... FOR UPDATE SKIP LOCKED
	rows, err := tx.Task.Query().
		Where(
			task.StatusEQ(task.StatusActive),
			task.NextRunAtNotNil(),
			task.NextRunAtLTE(now),
		).
		Order(ent.Asc(task.FieldNextRunAt)).
		Limit(limit).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query due tasks: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	claimed := make([]*ent.Task, 0, len(rows))
	for _, row := range rows {
		t, err := row.Update().
			SetNextRunAt(now.Add(horizon)).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to claim task %s: %w", row.ID, err)
		}
		claimed = append(claimed, t)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return claimed, nil
}

// PurgeDeletedOlderThan hard-deletes soft-deleted tasks whose last
// update is older than the cutoff. Returns the number of rows removed.
func (s *TaskService) PurgeDeletedOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.Task.Delete().
		Where(
			task.StatusEQ(task.StatusDeleted),
			task.UpdatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge deleted tasks: %w", err)
	}

	return n, nil
}
