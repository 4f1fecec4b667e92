package config

import "time"

// WorkerConfig contains the background worker knobs shared by the
// conversation worker and the task worker. These values control how
// due rows are polled, claimed, and processed.
type WorkerConfig struct {
	// PollInterval is the base interval for checking due conversations
	// and tasks.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// MaxConcurrent is the per-worker limit of rows being processed at
	// once. New claims are skipped while the limit is reached.
	MaxConcurrent int `yaml:"max_concurrent"`

	// MaxMessagesToInclude is how many recent messages a background
	// cycle includes in its prompt.
	MaxMessagesToInclude int `yaml:"max_messages_to_include"`

	// ExecutionTimeout is the maximum time one background LLM
	// invocation may run.
	ExecutionTimeout time.Duration `yaml:"execution_timeout"`

	// MaxRetries is how many consecutive failures are tolerated before
	// the owner is notified and retries stop.
	MaxRetries int `yaml:"max_retries"`

	// MinTaskInterval is the floor applied to task schedules.
	MinTaskInterval time.Duration `yaml:"min_task_interval"`

	// ClaimHorizon is how far next_run_at is pushed out when a row is
	// claimed. A crashed worker's rows become due again at the horizon.
	ClaimHorizon time.Duration `yaml:"claim_horizon"`

	// GracefulShutdownTimeout is the max time to wait for in-flight
	// executions during shutdown. Should cover ExecutionTimeout.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// DefaultWorkerConfig returns the built-in worker defaults.
func DefaultWorkerConfig() *WorkerConfig {
	return &WorkerConfig{
		PollInterval:            5 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		MaxConcurrent:           5,
		MaxMessagesToInclude:    20,
		ExecutionTimeout:        5 * time.Minute,
		MaxRetries:              3,
		MinTaskInterval:         15 * time.Second,
		ClaimHorizon:            10 * time.Minute,
		GracefulShutdownTimeout: 6 * time.Minute,
	}
}
