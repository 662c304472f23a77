package demo

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(m *Middleware) *gin.Engine {
	router := gin.New()
	router.Use(m.Handler())
	ok := func(c *gin.Context) { c.String(http.StatusOK, "OK") }
	router.GET("/api/books", ok)
	router.POST("/api/books", ok)
	router.PATCH("/api/books/:id", ok)
	router.POST("/api/authors", ok)
	router.POST("/api/matcher/run", ok)
	router.POST("/api/tasks/:type/run", ok)
	router.POST("/api/favorites", ok)
	router.PUT("/api/preferences", ok)
	router.DELETE("/api/following/authors/:id", ok)
	return router
}

func serve(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestNewMiddleware(t *testing.T) {
	assert.True(t, NewMiddleware(true).IsEnabled())
	assert.False(t, NewMiddleware(false).IsEnabled())
}

func TestMiddleware_BlocksCatalogWrites(t *testing.T) {
	router := newRouter(NewMiddleware(true))

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/books"},
		{http.MethodPatch, "/api/books/1"},
		{http.MethodPost, "/api/authors"},
		{http.MethodPost, "/api/matcher/run"},
		{http.MethodPost, "/api/tasks/run_matcher/run"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := serve(router, tt.method, tt.path)
			require.Equal(t, http.StatusForbidden, w.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "FORBIDDEN", body["code"])
		})
	}
}

func TestMiddleware_AllowsReadsAndUserWrites(t *testing.T) {
	router := newRouter(NewMiddleware(true))

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/books"},
		{http.MethodPost, "/api/favorites"},
		{http.MethodPut, "/api/preferences"},
		{http.MethodDelete, "/api/following/authors/3"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := serve(router, tt.method, tt.path)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "OK", w.Body.String())
		})
	}
}

func TestMiddleware_Disabled(t *testing.T) {
	router := newRouter(NewMiddleware(false))

	w := serve(router, http.MethodPost, "/api/books")
	assert.Equal(t, http.StatusOK, w.Code)
}
