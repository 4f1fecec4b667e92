// Package cleanup enforces data retention policies on a timer.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/majordomo-io/majordomo/pkg/config"
)

// ConversationArchiver archives idle conversations.
// *services.ConversationService satisfies it.
type ConversationArchiver interface {
	ArchiveIdle(ctx context.Context, cutoff time.Time) (int, error)
}

// NotificationPurger removes read notifications past their TTL.
// *services.NotificationService satisfies it.
type NotificationPurger interface {
	PurgeReadOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}

// TaskPurger removes soft-deleted tasks past their retention.
// *services.TaskService satisfies it.
type TaskPurger interface {
	PurgeDeletedOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}

// EventPurger removes event rows past their catch-up TTL.
// *services.EventService satisfies it.
type EventPurger interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}

// Service periodically enforces retention:
//   - Archives unscheduled conversations idle past the retention window
//   - Purges read notifications past their TTL
//   - Purges soft-deleted tasks past their retention
//   - Removes event rows past the WebSocket catch-up TTL
//
// All operations are idempotent and safe to run from multiple replicas.
type Service struct {
	config        *config.RetentionConfig
	conversations ConversationArchiver
	notifications NotificationPurger
	tasks         TaskPurger
	events        EventPurger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg *config.RetentionConfig,
	conversations ConversationArchiver,
	notifications NotificationPurger,
	tasks TaskPurger,
	events EventPurger,
) *Service {
	return &Service{
		config:        cfg,
		conversations: conversations,
		notifications: notifications,
		tasks:         tasks,
		events:        events,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"conversation_idle_days", s.config.ConversationIdleDays,
		"notification_ttl", s.config.NotificationTTL,
		"event_ttl", s.config.EventTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.cancel = nil
	s.done = nil
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunAll(ctx)
		}
	}
}

// RunAll executes one retention pass. Exported so operators can trigger
// a pass out of cycle.
func (s *Service) RunAll(ctx context.Context) {
	now := time.Now()
	s.archiveIdleConversations(ctx, now)
	s.purgeReadNotifications(ctx, now)
	s.purgeDeletedTasks(ctx, now)
	s.purgeOldEvents(ctx, now)
}

func (s *Service) archiveIdleConversations(ctx context.Context, now time.Time) {
	cutoff := now.AddDate(0, 0, -s.config.ConversationIdleDays)
	count, err := s.conversations.ArchiveIdle(ctx, cutoff)
	if err != nil {
		slog.Error("Retention: archiving idle conversations failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: archived idle conversations", "count", count)
	}
}

func (s *Service) purgeReadNotifications(ctx context.Context, now time.Time) {
	count, err := s.notifications.PurgeReadOlderThan(ctx, now.Add(-s.config.NotificationTTL))
	if err != nil {
		slog.Error("Retention: notification purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged read notifications", "count", count)
	}
}

func (s *Service) purgeDeletedTasks(ctx context.Context, now time.Time) {
	// Deleted tasks follow the notification TTL: long enough to audit,
	// short enough to not accumulate.
	count, err := s.tasks.PurgeDeletedOlderThan(ctx, now.Add(-s.config.NotificationTTL))
	if err != nil {
		slog.Error("Retention: task purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged deleted tasks", "count", count)
	}
}

func (s *Service) purgeOldEvents(ctx context.Context, now time.Time) {
	count, err := s.events.DeleteOlderThan(ctx, now.Add(-s.config.EventTTL))
	if err != nil {
		slog.Error("Retention: event purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged old events", "count", count)
	}
}
