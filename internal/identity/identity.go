// Package identity decides which user a request acts as. There is no login:
// every request is attributed to a single configured demo user.
package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/jenaralee/StoryStash/internal/entities"
	"github.com/jenaralee/StoryStash/internal/store"
)

// Context keys for user data
const (
	ContextKeyUserID   = "identity_user_id"
	ContextKeyUsername = "identity_username"
)

// Resolver maps a request to the acting user.
type Resolver interface {
	Resolve(r *http.Request) (*entities.User, error)
}

// DemoResolver attributes every request to one user, creating it on first
// use when it does not exist yet.
type DemoResolver struct {
	users    store.UserStore
	username string
	password string

	mu   sync.Mutex
	user *entities.User
}

func NewDemoResolver(users store.UserStore, username, password string) *DemoResolver {
	return &DemoResolver{users: users, username: username, password: password}
}

func (d *DemoResolver) Resolve(r *http.Request) (*entities.User, error) {
	return d.Ensure(r.Context())
}

// Ensure returns the demo user, creating it if needed.
func (d *DemoResolver) Ensure(ctx context.Context) (*entities.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.user != nil {
		out := *d.user
		return &out, nil
	}

	user, err := d.users.GetUserByUsername(ctx, d.username)
	if err != nil {
		return nil, fmt.Errorf("look up demo user: %w", err)
	}
	if user == nil {
		user, err = d.users.CreateUser(ctx, &entities.User{Username: d.username, Password: d.password})
		if errors.Is(err, store.ErrConflict) {
			user, err = d.users.GetUserByUsername(ctx, d.username)
		}
		if err != nil {
			return nil, fmt.Errorf("create demo user: %w", err)
		}
	}

	d.user = user
	out := *user
	return &out, nil
}

// Middleware stores the resolved user's id and name on the gin context.
func Middleware(resolver Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := resolver.Resolve(c.Request)
		if err != nil || user == nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "failed to resolve user",
				"code":  "INTERNAL",
			})
			return
		}
		c.Set(ContextKeyUserID, user.ID)
		c.Set(ContextKeyUsername, user.Username)
		c.Next()
	}
}

// GetUserID returns the acting user's id, or 0 outside the middleware.
func GetUserID(c *gin.Context) uint {
	if id, exists := c.Get(ContextKeyUserID); exists {
		if userID, ok := id.(uint); ok {
			return userID
		}
	}
	return 0
}

func GetUsername(c *gin.Context) string {
	if name, exists := c.Get(ContextKeyUsername); exists {
		if username, ok := name.(string); ok {
			return username
		}
	}
	return ""
}
