package config

import "time"

// ChatConfig contains interactive chat turn settings.
type ChatConfig struct {
	// TurnTimeout is the maximum time one synchronous chat turn may
	// spend in the LLM.
	TurnTimeout time.Duration `yaml:"turn_timeout"`

	// HistoryLimit is how many recent messages are loaded for a turn.
	HistoryLimit int `yaml:"history_limit"`
}

// DefaultChatConfig returns the built-in chat defaults.
func DefaultChatConfig() *ChatConfig {
	return &ChatConfig{
		TurnTimeout:  120 * time.Second,
		HistoryLimit: 50,
	}
}
