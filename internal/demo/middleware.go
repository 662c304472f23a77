// Package demo guards shared data on public demo deployments.
package demo

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// protectedPrefixes are the shared catalog and admin endpoints. Per-user
// endpoints (favorites, preferences, notifications, following, recently
// viewed) stay writable.
var protectedPrefixes = []string{
	"/api/books",
	"/api/authors",
	"/api/series",
	"/api/matcher/run",
	"/api/tasks/",
}

// Middleware blocks writes to the shared catalog in read-only demo mode.
// GET, HEAD and OPTIONS are always allowed.
type Middleware struct {
	enabled bool
}

// NewMiddleware creates a read-only demo middleware.
func NewMiddleware(enabled bool) *Middleware {
	return &Middleware{enabled: enabled}
}

// IsEnabled returns whether read-only mode is active.
func (m *Middleware) IsEnabled() bool {
	return m.enabled
}

// Handler returns a Gin middleware that blocks catalog writes.
func (m *Middleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.enabled {
			c.Next()
			return
		}

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		if !isProtectedPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "This action is disabled in demo mode",
			"code":  "FORBIDDEN",
		})
	}
}

func isProtectedPath(path string) bool {
	for _, prefix := range protectedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
