package tasks

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jenaralee/StoryStash/internal/matcher"
	"github.com/jenaralee/StoryStash/internal/services"
)

type countingRunner struct {
	runs atomic.Int32
}

func (r *countingRunner) Run(context.Context) (*matcher.Result, error) {
	r.runs.Add(1)
	return &matcher.Result{NotificationsCreated: 2}, nil
}

type countingIngester struct {
	queries atomic.Int32
}

func (i *countingIngester) IngestQuery(context.Context, string, int) (services.IngestResult, error) {
	i.queries.Add(1)
	return services.IngestResult{}, nil
}

func newTestClient(t *testing.T) *Client {
	t.Helper()
	client, err := NewClient(filepath.Join(t.TempDir(), "storystash.db"), DefaultConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestNewClient_CreatesQueueDatabase(t *testing.T) {
	dir := t.TempDir()

	client, err := NewClient(filepath.Join(dir, "storystash.db"), Config{Workers: 0})
	require.NoError(t, err)
	defer client.Close()

	_, err = os.Stat(filepath.Join(dir, "storystash-tasks.db"))
	assert.NoError(t, err)
	assert.Equal(t, 1, client.workers, "worker count is at least one")
}

func TestClient_StopWithoutStart(t *testing.T) {
	client := newTestClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.True(t, client.Stop(ctx))
}

func TestClient_RunsEnqueuedMatcherTask(t *testing.T) {
	client := newTestClient(t)
	runner := &countingRunner{}
	ingester := &countingIngester{}
	client.Register(NewRunMatcherQueue(runner), NewIngestBooksQueue(ingester))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	client.Start(ctx)
	client.Start(ctx)

	ids, err := client.Add(RunMatcherTask{Reason: "api"}).Save()
	require.NoError(t, err)
	require.Len(t, ids, 1)

	assert.Eventually(t, func() bool { return runner.runs.Load() == 1 }, 5*time.Second, 20*time.Millisecond)
	assert.Eventually(t, func() bool {
		status, err := client.Status(ctx, ids[0])
		return err == nil && status == backlite.TaskStatusSuccess
	}, 5*time.Second, 20*time.Millisecond)
	assert.Zero(t, ingester.queries.Load())

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer stopCancel()
	assert.True(t, client.Stop(stopCtx))
}

func TestTasksDBPath(t *testing.T) {
	assert.Equal(t, "data/storystash-tasks.db", TasksDBPath("data/storystash.db"))
	assert.Equal(t, "books-tasks", TasksDBPath("books"))
}

func TestRunMatcherTaskConfig(t *testing.T) {
	cfg := RunMatcherTask{}.Config()

	assert.Equal(t, QueueRunMatcher, cfg.Name)
	assert.Equal(t, 1, cfg.MaxAttempts)
	assert.Equal(t, 10*time.Minute, cfg.Timeout)
}

func TestIngestBooksTaskConfig(t *testing.T) {
	cfg := IngestBooksTask{Query: "dragons"}.Config()

	assert.Equal(t, QueueIngestBooks, cfg.Name)
	assert.Equal(t, 3, cfg.MaxAttempts)
	assert.Equal(t, 30*time.Second, cfg.Backoff)
	assert.Equal(t, 2*time.Minute, cfg.Timeout)
	assert.NotNil(t, cfg.Retention)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, 15*time.Minute, cfg.ReleaseAfter)
	assert.Equal(t, time.Hour, cfg.CleanupInterval)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "pending", StatusString(backlite.TaskStatusPending))
	assert.Equal(t, "success", StatusString(backlite.TaskStatusSuccess))
	assert.Equal(t, "not_found", StatusString(backlite.TaskStatusNotFound))
}
