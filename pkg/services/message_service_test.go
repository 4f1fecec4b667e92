package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/majordomo-io/majordomo/ent/conversation"
	"github.com/majordomo-io/majordomo/ent/message"
	"github.com/majordomo-io/majordomo/pkg/models"
	testdb "github.com/majordomo-io/majordomo/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageService_AppendMessage(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewMessageService(client.Client)
	ctx := context.Background()

	conv := createTestConversation(t, client, "user-1")

	t.Run("appends chat message by default", func(t *testing.T) {
		msg, err := service.AppendMessage(ctx, models.AppendMessageRequest{
			ConversationID: conv.ID,
			Role:           message.RoleUser,
			Content:        "hello",
		})
		require.NoError(t, err)
		assert.Equal(t, conv.ID, msg.ConversationID)
		assert.Equal(t, message.RoleUser, msg.Role)
		assert.Equal(t, message.SourceChat, msg.Source)
	})

	t.Run("keeps worker source", func(t *testing.T) {
		msg, err := service.AppendMessage(ctx, models.AppendMessageRequest{
			ConversationID: conv.ID,
			Role:           message.RoleAssistant,
			Content:        "background cycle output",
			Source:         message.SourceWorker,
		})
		require.NoError(t, err)
		assert.Equal(t, message.SourceWorker, msg.Source)
	})

	t.Run("validates required fields", func(t *testing.T) {
		cases := []models.AppendMessageRequest{
			{Role: message.RoleUser, Content: "x"},
			{ConversationID: conv.ID, Content: "x"},
			{ConversationID: conv.ID, Role: message.RoleUser},
		}
		for _, req := range cases {
			_, err := service.AppendMessage(ctx, req)
			assert.True(t, IsValidationError(err), "request %+v", req)
		}
	})

	t.Run("conversation not found", func(t *testing.T) {
		_, err := service.AppendMessage(ctx, models.AppendMessageRequest{
			ConversationID: "missing",
			Role:           message.RoleUser,
			Content:        "x",
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("archived conversation rejects appends", func(t *testing.T) {
		archived := createTestConversation(t, client, "user-1")
		_, err := client.Conversation.UpdateOneID(archived.ID).
			SetStatus(conversation.StatusArchived).
			Save(ctx)
		require.NoError(t, err)

		_, err = service.AppendMessage(ctx, models.AppendMessageRequest{
			ConversationID: archived.ID,
			Role:           message.RoleUser,
			Content:        "too late",
		})
		assert.ErrorIs(t, err, ErrArchived)
	})
}

func TestMessageService_LastMessages(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewMessageService(client.Client)
	ctx := context.Background()

	conv := createTestConversation(t, client, "user-1")
	for i := 1; i <= 5; i++ {
		_, err := service.AppendMessage(ctx, models.AppendMessageRequest{
			ConversationID: conv.ID,
			Role:           message.RoleUser,
			Content:        fmt.Sprintf("message %d", i),
		})
		require.NoError(t, err)
	}

	t.Run("returns trailing window in order", func(t *testing.T) {
		messages, err := service.LastMessages(ctx, conv.ID, 3)
		require.NoError(t, err)
		require.Len(t, messages, 3)
		assert.Equal(t, "message 3", messages[0].Content)
		assert.Equal(t, "message 4", messages[1].Content)
		assert.Equal(t, "message 5", messages[2].Content)
	})

	t.Run("window larger than history", func(t *testing.T) {
		messages, err := service.LastMessages(ctx, conv.ID, 50)
		require.NoError(t, err)
		assert.Len(t, messages, 5)
		assert.Equal(t, "message 1", messages[0].Content)
	})

	t.Run("zero window", func(t *testing.T) {
		messages, err := service.LastMessages(ctx, conv.ID, 0)
		require.NoError(t, err)
		assert.Empty(t, messages)
	})
}

func TestMessageService_ListMessages(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewMessageService(client.Client)
	ctx := context.Background()

	conv := createTestConversation(t, client, "user-1")
	for i := 1; i <= 4; i++ {
		_, err := service.AppendMessage(ctx, models.AppendMessageRequest{
			ConversationID: conv.ID,
			Role:           message.RoleUser,
			Content:        fmt.Sprintf("message %d", i),
		})
		require.NoError(t, err)
	}

	resp, err := service.ListMessages(ctx, conv.ID, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, resp.TotalCount)
	require.Len(t, resp.Messages, 2)
	assert.Equal(t, "message 2", resp.Messages[0].Content)
	assert.Equal(t, "message 3", resp.Messages[1].Content)
}
