package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/majordomo-io/majordomo/ent"
	"github.com/majordomo-io/majordomo/ent/conversation"
	"github.com/majordomo-io/majordomo/pkg/cron"
	"github.com/majordomo-io/majordomo/pkg/models"
)

// ConversationService manages conversation lifecycle and embedded state
type ConversationService struct {
	client *ent.Client
}

// NewConversationService creates a new ConversationService
func NewConversationService(client *ent.Client) *ConversationService {
	return &ConversationService{client: client}
}

// CreateConversation creates a new conversation. When a schedule is given
// without an explicit next_run_at, the first due time is computed here so
// the background worker picks the row up without further setup.
func (s *ConversationService) CreateConversation(_ context.Context, req models.CreateConversationRequest) (*ent.Conversation, error) {
	// Validate input
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}

	nextRunAt := req.NextRunAt
	switch req.ScheduleType {
	case conversation.ScheduleTypeCron:
		if req.CronExpression == "" {
			return nil, NewValidationError("cron_expression", "required for cron schedules")
		}
		if nextRunAt == nil {
			next, err := cron.NextAfter(req.CronExpression, time.Now())
			if err != nil {
				return nil, NewValidationError("cron_expression", err.Error())
			}
			nextRunAt = &next
		}
	case conversation.ScheduleTypeScheduled:
		if req.ScheduledRunAt == nil {
			return nil, NewValidationError("scheduled_run_at", "required for scheduled runs")
		}
		if nextRunAt == nil {
			nextRunAt = req.ScheduledRunAt
		}
	case conversation.ScheduleTypeImmediate:
		if nextRunAt == nil {
			now := time.Now()
			nextRunAt = &now
		}
	}

	// Use background context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	create := s.client.Conversation.Create().
		SetID(uuid.New().String()).
		SetUserID(req.UserID).
		SetCreatedAt(time.Now())
	if req.Title != "" {
		create = create.SetTitle(req.Title)
	}
	if req.Status != "" {
		create = create.SetStatus(req.Status)
	}
	if req.ScheduleType != "" {
		create = create.SetScheduleType(req.ScheduleType)
	}
	if req.CronExpression != "" {
		create = create.SetCronExpression(req.CronExpression)
	}
	if req.ScheduledRunAt != nil {
		create = create.SetScheduledRunAt(*req.ScheduledRunAt)
	}
	if nextRunAt != nil {
		create = create.SetNextRunAt(*nextRunAt)
	}
	if req.StateContext != nil {
		create = create.SetStateContext(req.StateContext)
	}
	if req.StateStep != "" {
		create = create.SetStateStep(req.StateStep)
	}
	if req.StateData != nil {
		create = create.SetStateData(req.StateData)
	}
	if req.Skills != nil {
		create = create.SetSkills(req.Skills)
	}

	conv, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}

	return conv, nil
}

// GetConversation retrieves a conversation by ID
func (s *ConversationService) GetConversation(ctx context.Context, conversationID string) (*ent.Conversation, error) {
	conv, err := s.client.Conversation.Query().
		Where(conversation.IDEQ(conversationID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}

	return conv, nil
}

// ListConversations lists conversations with filtering and pagination
func (s *ConversationService) ListConversations(ctx context.Context, filters models.ConversationFilters) (*models.ConversationListResponse, error) {
	query := s.client.Conversation.Query()

	// Apply filters
	if filters.UserID != "" {
		query = query.Where(conversation.UserIDEQ(filters.UserID))
	}
	if filters.Status != "" {
		query = query.Where(conversation.StatusEQ(conversation.Status(filters.Status)))
	}
	if !filters.IncludeArchived && filters.Status == "" {
		query = query.Where(conversation.StatusNEQ(conversation.StatusArchived))
	}

	// Count total
	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count conversations: %w", err)
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

	conversations, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(conversation.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}

	return &models.ConversationListResponse{
		Conversations: conversations,
		TotalCount:    totalCount,
		Limit:         limit,
		Offset:        offset,
	}, nil
}

// UpdateConversation applies a partial update to a conversation.
// Workers call this after model invocations complete, so the write uses a
// background context and survives caller cancellation.
func (s *ConversationService) UpdateConversation(_ context.Context, conversationID string, upd models.ConversationUpdate) (*ent.Conversation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Conversation.UpdateOneID(conversationID)
	if upd.Title != nil {
		update = update.SetTitle(*upd.Title)
	}
	if upd.Status != nil {
		update = update.SetStatus(*upd.Status)
	}
	if upd.ClearSchedule {
		update = update.
			ClearScheduleType().
			ClearCronExpression().
			ClearScheduledRunAt()
	} else {
		if upd.ScheduleType != nil {
			update = update.SetScheduleType(*upd.ScheduleType)
		}
		if upd.CronExpression != nil {
			update = update.SetCronExpression(*upd.CronExpression)
		}
		if upd.ScheduledRunAt != nil {
			update = update.SetScheduledRunAt(*upd.ScheduledRunAt)
		}
	}
	if upd.ClearNextRunAt {
		update = update.ClearNextRunAt()
	} else if upd.NextRunAt != nil {
		update = update.SetNextRunAt(*upd.NextRunAt)
	}
	if upd.StateContext != nil {
		update = update.SetStateContext(upd.StateContext)
	}
	if upd.StateStep != nil {
		update = update.SetStateStep(*upd.StateStep)
	}
	if upd.StateData != nil {
		update = update.SetStateData(upd.StateData)
	}
	if upd.ClearPendingQuestion {
		update = update.
			ClearPendingQuestionType().
			ClearPendingQuestionPrompt().
			ClearPendingQuestionOptions()
	} else if upd.PendingQuestion != nil {
		update = update.
			SetPendingQuestionType(upd.PendingQuestion.Type).
			SetPendingQuestionPrompt(upd.PendingQuestion.Prompt)
		if upd.PendingQuestion.Options != nil {
			update = update.SetPendingQuestionOptions(upd.PendingQuestion.Options)
		} else {
			update = update.ClearPendingQuestionOptions()
		}
	}
	if upd.ClaudeSessionID != nil {
		update = update.SetClaudeSessionID(*upd.ClaudeSessionID)
	}
	if upd.Skills != nil {
		update = update.SetSkills(upd.Skills)
	}
	if upd.ConsecutiveFailures != nil {
		update = update.SetConsecutiveFailures(*upd.ConsecutiveFailures)
	}

	conv, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update conversation: %w", err)
	}

	return conv, nil
}

// ArchiveConversation archives a conversation, taking it out of the
// background worker's reach and rejecting further appends.
func (s *ConversationService) ArchiveConversation(_ context.Context, conversationID string) (*ent.Conversation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conv, err := s.client.Conversation.UpdateOneID(conversationID).
		SetStatus(conversation.StatusArchived).
		ClearNextRunAt().
		ClearPendingQuestionType().
		ClearPendingQuestionPrompt().
		ClearPendingQuestionOptions().
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to archive conversation: %w", err)
	}

	return conv, nil
}

// ClaimReady atomically claims up to limit due background conversations
// using FOR UPDATE SKIP LOCKED, so concurrent replicas never pick the
// same row. Each claimed row's next_run_at is pushed out by horizon
// before the transaction commits; if the claimant crashes mid-execution
// the row simply becomes due again once the horizon passes.
func (s *ConversationService) ClaimReady(ctx context.Context, limit int, horizon time.Duration) ([]*ent.Conversation, error) {
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
	// Order by next_run_at so the most overdue conversations go first
	rows, err := tx.Conversation.Query().
		Where(
			conversation.StatusEQ(conversation.StatusBackground),
			conversation.NextRunAtNotNil(),
			conversation.NextRunAtLTE(now),
		).
		Order(ent.Asc(conversation.FieldNextRunAt)).
		Limit(limit).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query due conversations: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	claimed := make([]*ent.Conversation, 0, len(rows))
	for _, row := range rows {
		conv, err := row.Update().
			SetNextRunAt(now.Add(horizon)).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to claim conversation %s: %w", row.ID, err)
		}
		claimed = append(claimed, conv)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return claimed, nil
}

// ArchiveIdle archives conversations whose last update is older than the
// cutoff, skipping those still waiting on user input. Returns the number
// of conversations archived.
func (s *ConversationService) ArchiveIdle(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.Conversation.Update().
		Where(
			conversation.StatusIn(conversation.StatusActive, conversation.StatusBackground),
			conversation.UpdatedAtLT(cutoff),
		).
		SetStatus(conversation.StatusArchived).
		ClearNextRunAt().
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to archive idle conversations: %w", err)
	}

	return n, nil
}
