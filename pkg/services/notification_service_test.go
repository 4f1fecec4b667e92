package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/majordomo-io/majordomo/pkg/models"
	testdb "github.com/majordomo-io/majordomo/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_CreateNotification(t *testing.T) {
	client := testdb.NewTestClient(t)
	sink := &captureSink{}
	service := NewNotificationService(client.Client, sink)
	ctx := context.Background()

	t.Run("creates and publishes", func(t *testing.T) {
		conv := createTestConversation(t, client, "user-1")
		notif, err := service.CreateNotification(ctx, models.CreateNotificationRequest{
			UserID:         "user-1",
			ConversationID: conv.ID,
			Title:          "Task: Check inbox",
			Body:           "3 unread messages from your team",
		})
		require.NoError(t, err)
		assert.False(t, notif.Read)
		assert.Equal(t, conv.ID, notif.ConversationID)

		require.Len(t, sink.notifs, 1)
		assert.Equal(t, "user-1", sink.users[0])
		assert.Equal(t, notif.ID, sink.notifs[0].ID)
	})

	t.Run("publish failure does not fail the create", func(t *testing.T) {
		failing := NewNotificationService(client.Client, &captureSink{err: errors.New("listener down")})
		notif, err := failing.CreateNotification(ctx, models.CreateNotificationRequest{
			UserID: "user-1",
			Title:  "Still persisted",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, notif.ID)
	})

	t.Run("nil sink is allowed", func(t *testing.T) {
		quiet := NewNotificationService(client.Client, nil)
		_, err := quiet.CreateNotification(ctx, models.CreateNotificationRequest{
			UserID: "user-1",
			Title:  "No broadcast",
		})
		require.NoError(t, err)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := service.CreateNotification(ctx, models.CreateNotificationRequest{Title: "x"})
		assert.True(t, IsValidationError(err))
		_, err = service.CreateNotification(ctx, models.CreateNotificationRequest{UserID: "user-1"})
		assert.True(t, IsValidationError(err))
	})
}

func TestNotificationService_ListNotifications(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewNotificationService(client.Client, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := service.CreateNotification(ctx, models.CreateNotificationRequest{
			UserID: "user-1",
			Title:  "Background update",
		})
		require.NoError(t, err)
	}
	read, err := service.CreateNotification(ctx, models.CreateNotificationRequest{
		UserID: "user-1",
		Title:  "Already seen",
	})
	require.NoError(t, err)
	_, err = service.MarkRead(ctx, read.ID)
	require.NoError(t, err)

	t.Run("lists with unread count", func(t *testing.T) {
		resp, err := service.ListNotifications(ctx, models.NotificationFilters{UserID: "user-1"})
		require.NoError(t, err)
		assert.Equal(t, 4, resp.TotalCount)
		assert.Equal(t, 3, resp.UnreadCount)
		assert.Len(t, resp.Notifications, 4)
	})

	t.Run("unread only", func(t *testing.T) {
		resp, err := service.ListNotifications(ctx, models.NotificationFilters{
			UserID:     "user-1",
			UnreadOnly: true,
		})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.TotalCount)
		for _, n := range resp.Notifications {
			assert.False(t, n.Read)
		}
	})

	t.Run("requires user_id", func(t *testing.T) {
		_, err := service.ListNotifications(ctx, models.NotificationFilters{})
		assert.True(t, IsValidationError(err))
	})
}

func TestNotificationService_MarkRead(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewNotificationService(client.Client, nil)
	ctx := context.Background()

	notif, err := service.CreateNotification(ctx, models.CreateNotificationRequest{
		UserID: "user-1",
		Title:  "Unread",
	})
	require.NoError(t, err)

	updated, err := service.MarkRead(ctx, notif.ID)
	require.NoError(t, err)
	assert.True(t, updated.Read)

	_, err = service.MarkRead(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewNotificationService(client.Client, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := service.CreateNotification(ctx, models.CreateNotificationRequest{
			UserID: "user-1",
			Title:  "Unread",
		})
		require.NoError(t, err)
	}
	_, err := service.CreateNotification(ctx, models.CreateNotificationRequest{
		UserID: "user-2",
		Title:  "Someone else's",
	})
	require.NoError(t, err)

	n, err := service.MarkAllRead(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	resp, err := service.ListNotifications(ctx, models.NotificationFilters{UserID: "user-1"})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.UnreadCount)

	resp, err = service.ListNotifications(ctx, models.NotificationFilters{UserID: "user-2"})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.UnreadCount)
}

func TestNotificationService_PurgeReadOlderThan(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewNotificationService(client.Client, nil)
	ctx := context.Background()

	// created_at is immutable, so backdated rows are seeded directly.
	backdate := time.Now().Add(-40 * 24 * time.Hour)
	_, err := client.Notification.Create().
		SetID(uuid.New().String()).
		SetUserID("user-1").
		SetTitle("Old and read").
		SetRead(true).
		SetCreatedAt(backdate).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Notification.Create().
		SetID(uuid.New().String()).
		SetUserID("user-1").
		SetTitle("Old but unread").
		SetCreatedAt(backdate).
		Save(ctx)
	require.NoError(t, err)

	freshRead, err := service.CreateNotification(ctx, models.CreateNotificationRequest{
		UserID: "user-1",
		Title:  "Fresh and read",
	})
	require.NoError(t, err)
	_, err = service.MarkRead(ctx, freshRead.ID)
	require.NoError(t, err)

	n, err := service.PurgeReadOlderThan(ctx, time.Now().Add(-30*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	resp, err := service.ListNotifications(ctx, models.NotificationFilters{UserID: "user-1"})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.TotalCount)
}
