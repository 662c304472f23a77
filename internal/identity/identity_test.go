package identity

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jenaralee/StoryStash/internal/entities"
	"github.com/jenaralee/StoryStash/internal/store/memory"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestDemoResolver_CreatesUserOnce(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	resolver := NewDemoResolver(s, "demo", "demo123")

	first, err := resolver.Ensure(ctx)
	require.NoError(t, err)
	second, err := resolver.Ensure(ctx)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	prefs, err := s.GetUserPreferences(ctx, first.ID)
	require.NoError(t, err)
	assert.NotNil(t, prefs, "created through the store, so preferences exist")
}

func TestDemoResolver_UsesExistingUser(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	_, err := s.CreateUser(ctx, &entities.User{Username: "someone-else"})
	require.NoError(t, err)
	existing, err := s.CreateUser(ctx, &entities.User{Username: "demo"})
	require.NoError(t, err)

	user, err := NewDemoResolver(s, "demo", "x").Ensure(ctx)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, user.ID)
}

type failingResolver struct{}

func (failingResolver) Resolve(*http.Request) (*entities.User, error) {
	return nil, errors.New("no store")
}

func TestMiddleware(t *testing.T) {
	s := memory.New()
	router := gin.New()
	router.Use(Middleware(NewDemoResolver(s, "demo", "demo123")))
	router.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": GetUserID(c), "username": GetUsername(c)})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"username":"demo"}`, w.Body.String())
}

func TestMiddleware_ResolveFailure(t *testing.T) {
	router := gin.New()
	router.Use(Middleware(failingResolver{}))
	router.GET("/whoami", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
