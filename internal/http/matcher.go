package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jenaralee/StoryStash/internal/matcher"
	"github.com/jenaralee/StoryStash/internal/scheduler"
)

// MatcherRunner is implemented by *matcher.Matcher.
type MatcherRunner interface {
	Run(ctx context.Context) (*matcher.Result, error)
}

// MatcherStatusProvider is implemented by *scheduler.MatcherScheduler.
type MatcherStatusProvider interface {
	Status() scheduler.Status
}

type MatcherController struct {
	runner    MatcherRunner
	scheduler MatcherStatusProvider
}

// NewMatcherController creates a controller; scheduler may be nil when the
// matcher is not scheduled.
func NewMatcherController(runner MatcherRunner, scheduler MatcherStatusProvider) *MatcherController {
	return &MatcherController{runner: runner, scheduler: scheduler}
}

// Run handles POST /api/matcher/run and returns the run summary.
func (mc *MatcherController) Run(c *gin.Context) {
	result, err := mc.runner.Run(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "run matcher")
		return
	}
	c.JSON(http.StatusOK, result)
}

// Status handles GET /api/matcher/status
func (mc *MatcherController) Status(c *gin.Context) {
	if mc.scheduler == nil {
		c.JSON(http.StatusOK, gin.H{"scheduled": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"scheduled": true, "status": mc.scheduler.Status()})
}
