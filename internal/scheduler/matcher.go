package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jenaralee/StoryStash/internal/matcher"
)

// MatcherRunner is implemented by *matcher.Matcher.
type MatcherRunner interface {
	Run(ctx context.Context) (*matcher.Result, error)
}

// Status describes the last completed matcher run.
type Status struct {
	Schedule    string          `json:"schedule"`
	Description string          `json:"description"`
	Running     bool            `json:"running"`
	NextRun     *time.Time      `json:"nextRun,omitempty"`
	LastRun     *matcher.Result `json:"lastRun,omitempty"`
	LastError   string          `json:"lastError,omitempty"`
}

// MatcherScheduler runs the notification matcher on a cron schedule, plus
// once shortly after start.
type MatcherScheduler struct {
	runner       MatcherRunner
	schedule     string
	startupDelay time.Duration

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc

	// statusMu guards the fields jobs touch, so Stop can hold mu while
	// waiting for an in-flight run.
	statusMu   sync.Mutex
	runCtx     context.Context
	lastResult *matcher.Result
	lastErr    error
}

func NewMatcherScheduler(runner MatcherRunner, schedule string, startupDelay time.Duration) *MatcherScheduler {
	return &MatcherScheduler{
		runner:       runner,
		schedule:     schedule,
		startupDelay: startupDelay,
		cron:         cron.New(cron.WithParser(newParser())),
	}
}

// Start registers the job and begins the cron loop. The scheduler stops
// when ctx is cancelled.
func (s *MatcherScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if err := ValidateCronSchedule(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.schedule, err)
	}

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		s.runMatcher()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule matcher job: %w", err)
	}
	s.entryID = entryID

	var runCtx context.Context
	runCtx, s.cancelFunc = context.WithCancel(ctx)
	s.statusMu.Lock()
	s.runCtx = runCtx
	s.statusMu.Unlock()

	s.cron.Start()
	s.isRunning = true

	nextRun, _ := GetNextRunTime(s.schedule, time.Now())
	log.Printf("Matcher scheduler: started with schedule '%s' (%s). Next run: %v",
		s.schedule, GetCronDescription(s.schedule), nextRun)

	go func() {
		if s.startupDelay >= 0 {
			timer := time.NewTimer(s.startupDelay)
			select {
			case <-timer.C:
				s.runMatcher()
			case <-runCtx.Done():
				timer.Stop()
			}
		}
		<-runCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop waits for an in-flight run and stops the scheduler.
func (s *MatcherScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	s.cancelFunc()

	// Stop accepting new jobs and wait for running jobs to complete
	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	s.cancelFunc = nil

	log.Printf("Matcher scheduler: stopped")
}

// RunNow triggers an immediate run in the background.
func (s *MatcherScheduler) RunNow() {
	go s.runMatcher()
}

func (s *MatcherScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRunTime returns when the next run will occur
func (s *MatcherScheduler) GetNextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

func (s *MatcherScheduler) Status() Status {
	next := s.GetNextRunTime()

	s.mu.RLock()
	running := s.isRunning
	s.mu.RUnlock()

	s.statusMu.Lock()
	defer s.statusMu.Unlock()

	status := Status{
		Schedule:    s.schedule,
		Description: GetCronDescription(s.schedule),
		Running:     running,
		NextRun:     next,
		LastRun:     s.lastResult,
	}
	if s.lastErr != nil {
		status.LastError = s.lastErr.Error()
	}
	return status
}

func (s *MatcherScheduler) runMatcher() {
	s.statusMu.Lock()
	ctx := s.runCtx
	s.statusMu.Unlock()
	if ctx == nil {
		ctx = context.Background()
	}

	log.Printf("Matcher scheduler: run starting")
	result, err := s.runner.Run(ctx)
	if err != nil {
		log.Printf("Matcher scheduler: run failed: %v", err)
	}

	s.statusMu.Lock()
	s.lastErr = err
	if result != nil {
		s.lastResult = result
	}
	s.statusMu.Unlock()
}
