package services

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/majordomo-io/majordomo/ent"
	"github.com/majordomo-io/majordomo/ent/conversation"
	"github.com/majordomo-io/majordomo/ent/message"
	"github.com/majordomo-io/majordomo/pkg/models"
)

// MessageService manages conversation messages
type MessageService struct {
	client *ent.Client
}

// NewMessageService creates a new MessageService
func NewMessageService(client *ent.Client) *MessageService {
	return &MessageService{client: client}
}

// AppendMessage appends a message to a conversation. Archived
// conversations reject appends with ErrArchived.
func (s *MessageService) AppendMessage(_ context.Context, req models.AppendMessageRequest) (*ent.Message, error) {
	// Validate input
	if req.ConversationID == "" {
		return nil, NewValidationError("conversation_id", "required")
	}
	if req.Role == "" {
		return nil, NewValidationError("role", "required")
	}
	if req.Content == "" {
		return nil, NewValidationError("content", "required")
	}

	// Use background context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conv, err := s.client.Conversation.Query().
		Where(conversation.IDEQ(req.ConversationID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}
	if conv.Status == conversation.StatusArchived {
		return nil, ErrArchived
	}

	create := s.client.Message.Create().
		SetID(uuid.New().String()).
		SetConversationID(req.ConversationID).
		SetRole(req.Role).
		SetContent(req.Content).
		SetCreatedAt(time.Now())
	if req.Source != "" {
		create = create.SetSource(req.Source)
	}

	msg, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	return msg, nil
}

// LastMessages retrieves the most recent n messages of a conversation in
// chronological order. Workers use this to build the history the model
// sees, so the window is read newest-first and then reversed.
func (s *MessageService) LastMessages(ctx context.Context, conversationID string, n int) ([]*ent.Message, error) {
	if n <= 0 {
		return nil, nil
	}

	messages, err := s.client.Message.Query().
		Where(message.ConversationIDEQ(conversationID)).
		Order(ent.Desc(message.FieldCreatedAt)).
		Limit(n).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}

	slices.Reverse(messages)
	return messages, nil
}

// ListMessages lists a conversation's messages in chronological order
// with pagination
func (s *MessageService) ListMessages(ctx context.Context, conversationID string, limit, offset int) (*models.MessageListResponse, error) {
	query := s.client.Message.Query().
		Where(message.ConversationIDEQ(conversationID))

	// Count total
	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count messages: %w", err)
	}

	// Apply pagination
	if limit <= 0 {
		limit = 50 // Default
	}
	if offset < 0 {
		offset = 0
	}

	messages, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Asc(message.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	return &models.MessageListResponse{
		Messages:   messages,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}
