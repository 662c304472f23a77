package tasks

import "github.com/mikestefanello/backlite"

const (
	QueueRunMatcher  = "run_matcher"
	QueueIngestBooks = "ingest_books"
)

// TypeInfo describes a task type that can be triggered over the API.
type TypeInfo struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Types lists the task types in a stable order.
func Types() []TypeInfo {
	return []TypeInfo{
		{Type: QueueRunMatcher, Description: "Run the new-release notification matcher"},
		{Type: QueueIngestBooks, Description: "Import books matching a query from Google Books"},
	}
}

// StatusString renders a backlite status for API responses.
func StatusString(status backlite.TaskStatus) string {
	switch status {
	case backlite.TaskStatusPending:
		return "pending"
	case backlite.TaskStatusRunning:
		return "running"
	case backlite.TaskStatusSuccess:
		return "success"
	case backlite.TaskStatusFailure:
		return "failure"
	case backlite.TaskStatusNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}
