package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// ConversationIdleDays is how many days an unscheduled conversation
	// may sit untouched before it is archived.
	ConversationIdleDays int `yaml:"conversation_idle_days"`

	// NotificationTTL is how long read notifications are kept.
	NotificationTTL time.Duration `yaml:"notification_ttl"`

	// EventTTL is the maximum age of event rows kept for WebSocket
	// catch-up before deletion.
	EventTTL time.Duration `yaml:"event_ttl"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		ConversationIdleDays: 90,
		NotificationTTL:      30 * 24 * time.Hour,
		EventTTL:             1 * time.Hour,
		CleanupInterval:      12 * time.Hour,
	}
}
