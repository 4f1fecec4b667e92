package models

import "github.com/majordomo-io/majordomo/ent"

// CreateNotificationRequest contains fields for creating a notification
type CreateNotificationRequest struct {
	UserID         string `json:"user_id"`
	ConversationID string `json:"conversation_id,omitempty"`
	Title          string `json:"title"`
	Body           string `json:"body,omitempty"`
}

// NotificationFilters contains filtering options for listing notifications
type NotificationFilters struct {
	UserID     string `json:"user_id"`
	UnreadOnly bool   `json:"unread_only,omitempty"`
	Limit      int    `json:"limit,omitempty"`
	Offset     int    `json:"offset,omitempty"`
}

// NotificationListResponse contains a paginated notification list plus
// the user's total unread count
type NotificationListResponse struct {
	Notifications []*ent.Notification `json:"notifications"`
	TotalCount    int                 `json:"total_count"`
	UnreadCount   int                 `json:"unread_count"`
	Limit         int                 `json:"limit"`
	Offset        int                 `json:"offset"`
}
