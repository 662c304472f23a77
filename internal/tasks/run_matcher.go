package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/jenaralee/StoryStash/internal/matcher"
)

// RunMatcherTask runs the notification matcher once.
type RunMatcherTask struct {
	// Reason is logged with the run, e.g. "api" or "cli".
	Reason string `json:"reason,omitempty"`
}

// Config returns the queue configuration for matcher runs. Runs are not
// retried: the next scheduled run picks up anything missed.
func (t RunMatcherTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        QueueRunMatcher,
		MaxAttempts: 1,
		Timeout:     10 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
		},
	}
}

// MatcherRunner is implemented by *matcher.Matcher.
type MatcherRunner interface {
	Run(ctx context.Context) (*matcher.Result, error)
}

func RunMatcherProcessor(runner MatcherRunner) backlite.QueueProcessor[RunMatcherTask] {
	return func(ctx context.Context, task RunMatcherTask) error {
		if runner == nil {
			return fmt.Errorf("matcher not configured")
		}

		result, err := runner.Run(ctx)
		if err != nil {
			return fmt.Errorf("run matcher: %w", err)
		}

		log.Printf("[TASK] Matcher run (%s): %d notifications created, %d duplicates skipped",
			task.Reason, result.NotificationsCreated, result.DuplicatesSkipped)
		return nil
	}
}

func NewRunMatcherQueue(runner MatcherRunner) backlite.Queue {
	return backlite.NewQueue(RunMatcherProcessor(runner))
}
