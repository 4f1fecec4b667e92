package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/majordomo-io/majordomo/ent"
	"github.com/majordomo-io/majordomo/ent/notification"
	"github.com/majordomo-io/majordomo/pkg/models"
)

// EventSink publishes realtime payloads for created notifications.
// *events.Publisher satisfies it; a nil sink disables publishing.
type EventSink interface {
	NotificationCreated(ctx context.Context, userID string, notif *ent.Notification) error
}

// NotificationService manages user-facing notifications produced by the
// background and task workers
type NotificationService struct {
	client *ent.Client
	sink   EventSink
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(client *ent.Client, sink EventSink) *NotificationService {
	return &NotificationService{client: client, sink: sink}
}

// CreateNotification persists a notification and broadcasts it on the
// user's event channel. The broadcast is best-effort; the row is the
// source of truth and disconnected clients catch up from it.
func (s *NotificationService) CreateNotification(_ context.Context, req models.CreateNotificationRequest) (*ent.Notification, error) {
	// Validate input
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if req.Title == "" {
		return nil, NewValidationError("title", "required")
	}

	// Use background context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	create := s.client.Notification.Create().
		SetID(uuid.New().String()).
		SetUserID(req.UserID).
		SetTitle(req.Title).
		SetCreatedAt(time.Now())
	if req.ConversationID != "" {
		create = create.SetConversationID(req.ConversationID)
	}
	if req.Body != "" {
		create = create.SetBody(req.Body)
	}

	notif, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	if s.sink != nil {
		if err := s.sink.NotificationCreated(ctx, req.UserID, notif); err != nil {
			slog.Warn("Failed to publish notification event",
				"notification_id", notif.ID,
				"user_id", req.UserID,
				"error", err)
		}
	}

	return notif, nil
}

// ListNotifications lists a user's notifications, newest first, along
// with the unread count
func (s *NotificationService) ListNotifications(ctx context.Context, filters models.NotificationFilters) (*models.NotificationListResponse, error) {
	if filters.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}

	query := s.client.Notification.Query().
		Where(notification.UserIDEQ(filters.UserID))
	if filters.UnreadOnly {
		query = query.Where(notification.ReadEQ(false))
	}

	// Count total
	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count notifications: %w", err)
	}

	unreadCount, err := s.client.Notification.Query().
		Where(
			notification.UserIDEQ(filters.UserID),
			notification.ReadEQ(false),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread notifications: %w", err)
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

	notifications, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(notification.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return &models.NotificationListResponse{
		Notifications: notifications,
		TotalCount:    totalCount,
		UnreadCount:   unreadCount,
		Limit:         limit,
		Offset:        offset,
	}, nil
}

// MarkRead marks a notification as read
func (s *NotificationService) MarkRead(_ context.Context, notificationID string) (*ent.Notification, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	notif, err := s.client.Notification.UpdateOneID(notificationID).
		SetRead(true).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to mark notification read: %w", err)
	}

	return notif, nil
}

// MarkAllRead marks all of a user's unread notifications as read and
// returns how many were updated
func (s *NotificationService) MarkAllRead(_ context.Context, userID string) (int, error) {
	if userID == "" {
		return 0, NewValidationError("user_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := s.client.Notification.Update().
		Where(
			notification.UserIDEQ(userID),
			notification.ReadEQ(false),
		).
		SetRead(true).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}

	return n, nil
}

// PurgeReadOlderThan hard-deletes read notifications created before the
// cutoff. Returns the number of rows removed.
func (s *NotificationService) PurgeReadOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.Notification.Delete().
		Where(
			notification.ReadEQ(true),
			notification.CreatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge notifications: %w", err)
	}

	return n, nil
}
