package tasks

import "time"

// Config tunes the background job queue. It mirrors the TASKS_* settings.
type Config struct {
	Workers int
	// ReleaseAfter hands a claimed task back to the queue if its worker
	// has not finished by then.
	ReleaseAfter    time.Duration
	CleanupInterval time.Duration
}

// DefaultConfig matches the TASKS_* defaults: one worker is enough for
// occasional matcher runs and ingestion jobs.
func DefaultConfig() Config {
	return Config{
		Workers:         1,
		ReleaseAfter:    15 * time.Minute,
		CleanupInterval: time.Hour,
	}
}
