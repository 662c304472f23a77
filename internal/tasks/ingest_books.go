package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/jenaralee/StoryStash/internal/services"
)

// IngestBooksTask pulls books for a query from the external source into the
// local catalog.
type IngestBooksTask struct {
	Query      string `json:"query"`
	MaxResults int    `json:"maxResults,omitempty"`
}

// Config returns the queue configuration for ingestion tasks.
func (t IngestBooksTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        QueueIngestBooks,
		MaxAttempts: 3,
		Backoff:     30 * time.Second,
		Timeout:     2 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// Ingester is implemented by *services.DiscoveryService.
type Ingester interface {
	IngestQuery(ctx context.Context, query string, maxResults int) (services.IngestResult, error)
}

func IngestBooksProcessor(ingester Ingester) backlite.QueueProcessor[IngestBooksTask] {
	return func(ctx context.Context, task IngestBooksTask) error {
		if ingester == nil {
			return fmt.Errorf("book ingestion not configured")
		}
		if task.Query == "" {
			return fmt.Errorf("query is required")
		}

		result, err := ingester.IngestQuery(ctx, task.Query, task.MaxResults)
		if err != nil {
			return fmt.Errorf("ingest %q: %w", task.Query, err)
		}

		log.Printf("[TASK] Ingested %q: %d fetched, %d created, %d already present, %d failed",
			task.Query, result.BooksFetched, result.BooksCreated, result.BooksSkipped, result.BooksFailed)
		return nil
	}
}

func NewIngestBooksQueue(ingester Ingester) backlite.Queue {
	return backlite.NewQueue(IngestBooksProcessor(ingester))
}
