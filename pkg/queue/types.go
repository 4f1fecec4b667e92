// Package queue drives the daemon's model-backed work: synchronous chat
// turns through ChatTurnExecutor, and the two polling workers that run
// due background conversations and scheduled tasks.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/majordomo-io/majordomo/ent"
	"github.com/majordomo-io/majordomo/pkg/events"
	"github.com/majordomo-io/majordomo/pkg/models"
)

// Sentinel errors for queue operations.
var (
	// ErrNoWorkAvailable indicates a poll found no due rows to claim.
	ErrNoWorkAvailable = errors.New("no work available")

	// ErrAtCapacity indicates the concurrent execution limit is reached.
	ErrAtCapacity = errors.New("at capacity")

	// ErrTurnInProgress indicates the conversation already has a chat
	// turn in flight.
	ErrTurnInProgress = errors.New("turn already in progress")

	// ErrExecutorStopped indicates the executor is shutting down and
	// accepts no new turns.
	ErrExecutorStopped = errors.New("executor stopped")
)

// ConversationStore is the conversation persistence surface the queue
// needs. *services.ConversationService satisfies it.
type ConversationStore interface {
	GetConversation(ctx context.Context, conversationID string) (*ent.Conversation, error)
	UpdateConversation(ctx context.Context, conversationID string, upd models.ConversationUpdate) (*ent.Conversation, error)
	ClaimReady(ctx context.Context, limit int, horizon time.Duration) ([]*ent.Conversation, error)
}

// MessageStore is the message persistence surface the queue needs.
// *services.MessageService satisfies it.
type MessageStore interface {
	AppendMessage(ctx context.Context, req models.AppendMessageRequest) (*ent.Message, error)
	LastMessages(ctx context.Context, conversationID string, n int) ([]*ent.Message, error)
}

// TaskStore is the task persistence surface the queue needs.
// *services.TaskService satisfies it.
type TaskStore interface {
	CreateTask(ctx context.Context, req models.CreateTaskRequest) (*ent.Task, error)
	FindTaskByName(ctx context.Context, conversationID, name string) (*ent.Task, error)
	ListTasks(ctx context.Context, filters models.TaskFilters) (*models.TaskListResponse, error)
	UpdateTask(ctx context.Context, taskID string, upd models.TaskUpdate) (*ent.Task, error)
	DeleteTask(ctx context.Context, taskID string) (*ent.Task, error)
	ClaimReady(ctx context.Context, limit int, horizon time.Duration) ([]*ent.Task, error)
}

// NotificationStore is the notification surface the queue needs.
// *services.NotificationService satisfies it.
type NotificationStore interface {
	CreateNotification(ctx context.Context, req models.CreateNotificationRequest) (*ent.Notification, error)
}

// IntegrationStore is the integration surface the queue needs.
// *services.IntegrationService satisfies it.
type IntegrationStore interface {
	ListActiveIntegrations(ctx context.Context, userID string) ([]*ent.Integration, error)
}

// EventPublisher is the event surface the queue needs. *events.Publisher
// satisfies it. All publishes are best-effort: a failed publish is
// logged, never fails the work that produced it.
type EventPublisher interface {
	PublishConversationStatus(ctx context.Context, userID string, payload events.ConversationStatusPayload) error
	PublishTaskStatus(ctx context.Context, userID string, payload events.TaskStatusPayload) error
	PublishConversationActivity(ctx context.Context, userID string, payload events.ConversationActivityPayload) error
}

// WorkerHealth is a point-in-time snapshot of one polling worker.
type WorkerHealth struct {
	Name       string    `json:"name"`
	Running    bool      `json:"running"`
	Active     int       `json:"active"`
	Processed  int       `json:"processed"`
	LastPollAt time.Time `json:"last_poll_at"`
}

// truncate shortens s to at most n runes for notification bodies.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
