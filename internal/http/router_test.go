package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jenaralee/StoryStash/internal/entities"
	"github.com/jenaralee/StoryStash/internal/identity"
	"github.com/jenaralee/StoryStash/internal/matcher"
	"github.com/jenaralee/StoryStash/internal/store/memory"
)

type testServer struct {
	t      *testing.T
	router *gin.Engine
	store  *memory.Store
}

type stubSearcher struct {
	books []entities.Book
	err   error
	calls []string
}

func (s *stubSearcher) Search(_ context.Context, query string) ([]entities.Book, error) {
	s.calls = append(s.calls, query)
	return s.books, s.err
}

func newTestServer(t *testing.T, mutate ...func(*RouterConfig)) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := memory.New()
	cfg := RouterConfig{
		Store:       s,
		StoreDriver: "memory",
		Version:     "test",
		Resolver:    identity.NewDemoResolver(s, "demo", "demo"),
		Matcher:     matcher.New(s, matcher.ModeAll),
		Quiet:       true,
	}
	for _, fn := range mutate {
		fn(&cfg)
	}
	return &testServer{t: t, router: NewRouter(cfg), store: s}
}

func (ts *testServer) do(method, path string, body any) *httptest.ResponseRecorder {
	ts.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(ts.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func (ts *testServer) createBook(book entities.Book) *entities.Book {
	ts.t.Helper()
	created, err := ts.store.CreateBook(context.Background(), &book)
	require.NoError(ts.t, err)
	return created
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestRouter_Health(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = ts.do(http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", decode[map[string]string](t, w)["message"])
}

func TestRouter_CurrentUser(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodGet, "/api/user", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode[map[string]any](t, w)
	assert.Equal(t, "demo", body["username"])
	assert.NotContains(t, body, "password")
}

func TestRouter_Books(t *testing.T) {
	t.Run("creates and fetches a book", func(t *testing.T) {
		ts := newTestServer(t)

		w := ts.do(http.MethodPost, "/api/books", map[string]any{
			"title":      "Where the Wild Things Are",
			"author":     "Maurice Sendak",
			"categories": []string{"Picture Books"},
			"ageRange":   "3-5 years",
			"rating":     46,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		created := decode[entities.Book](t, w)
		assert.NotZero(t, created.ID)
		assert.NotEmpty(t, created.GoogleID)

		w = ts.do(http.MethodGet, "/api/books/"+itoa(created.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Where the Wild Things Are", decode[entities.Book](t, w).Title)
	})

	t.Run("returns the existing book for a known googleId", func(t *testing.T) {
		ts := newTestServer(t)
		existing := ts.createBook(entities.Book{GoogleID: "g-1", Title: "Matilda"})

		w := ts.do(http.MethodPost, "/api/books", map[string]any{"googleId": "g-1", "title": "Other"})
		require.Equal(t, http.StatusOK, w.Code)
		got := decode[entities.Book](t, w)
		assert.Equal(t, existing.ID, got.ID)
		assert.Equal(t, "Matilda", got.Title)
	})

	t.Run("rejects invalid bodies with field details", func(t *testing.T) {
		ts := newTestServer(t)

		w := ts.do(http.MethodPost, "/api/books", map[string]any{
			"categories": []string{"Cookbooks"},
			"rating":     51,
		})
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, CodeValidation, resp.Code)
		assert.Equal(t, "is required", resp.Details["title"])
		assert.Contains(t, resp.Details, "categories[0]")
		assert.Contains(t, resp.Details, "rating")
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		ts := newTestServer(t)

		req := httptest.NewRequest(http.MethodPost, "/api/books", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		ts.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown and invalid ids", func(t *testing.T) {
		ts := newTestServer(t)

		w := ts.do(http.MethodGet, "/api/books/999", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, CodeNotFound, decode[ErrorResponse](t, w).Code)

		w = ts.do(http.MethodGet, "/api/books/abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, CodeBadRequest, decode[ErrorResponse](t, w).Code)

		w = ts.do(http.MethodPatch, "/api/books/999", map[string]any{"title": "x"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("patches only the given fields", func(t *testing.T) {
		ts := newTestServer(t)
		book := ts.createBook(entities.Book{Title: "Matilda", Author: "Roald Dahl"})

		w := ts.do(http.MethodPatch, "/api/books/"+itoa(book.ID), map[string]any{"isNew": true})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		got := decode[entities.Book](t, w)
		assert.True(t, got.IsNew)
		assert.Equal(t, "Roald Dahl", got.Author)
	})

	t.Run("filters the listing", func(t *testing.T) {
		ts := newTestServer(t)
		ts.createBook(entities.Book{Title: "A", Categories: []string{"Fantasy"}, AgeRange: "6-8 years"})
		ts.createBook(entities.Book{Title: "B", Categories: []string{"Mystery"}, AgeRange: "6-8 years", IsNew: true})
		ts.createBook(entities.Book{Title: "C", Categories: []string{"Fantasy"}, AgeRange: "3-5 years", IsNew: true})

		w := ts.do(http.MethodGet, "/api/books?category=Fantasy", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode[[]entities.Book](t, w), 2)

		w = ts.do(http.MethodGet, "/api/books?isNew=true&ageRange=6-8%20years", nil)
		require.Equal(t, http.StatusOK, w.Code)
		books := decode[[]entities.Book](t, w)
		require.Len(t, books, 1)
		assert.Equal(t, "B", books[0].Title)

		w = ts.do(http.MethodGet, "/api/books?limit=-1", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = ts.do(http.MethodGet, "/api/books?isNew=maybe", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRouter_SearchBooks(t *testing.T) {
	t.Run("requires a query", func(t *testing.T) {
		ts := newTestServer(t)

		w := ts.do(http.MethodGet, "/api/books/search?query=%20", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("searches the store by default", func(t *testing.T) {
		ts := newTestServer(t)
		ts.createBook(entities.Book{Title: "The Gruffalo", Author: "Julia Donaldson"})
		ts.createBook(entities.Book{Title: "Matilda", Author: "Roald Dahl"})

		w := ts.do(http.MethodGet, "/api/books/search?query=gruff", nil)
		require.Equal(t, http.StatusOK, w.Code)
		books := decode[[]entities.Book](t, w)
		require.Len(t, books, 1)
		assert.Equal(t, "The Gruffalo", books[0].Title)
	})

	t.Run("uses the configured searcher", func(t *testing.T) {
		searcher := &stubSearcher{books: []entities.Book{{ID: 7, Title: "Remote"}}}
		ts := newTestServer(t, func(cfg *RouterConfig) { cfg.Searcher = searcher })

		w := ts.do(http.MethodGet, "/api/books/search?query=dragons", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"dragons"}, searcher.calls)
		assert.Len(t, decode[[]entities.Book](t, w), 1)
	})

	t.Run("hides searcher errors", func(t *testing.T) {
		searcher := &stubSearcher{err: errors.New("boom")}
		ts := newTestServer(t, func(cfg *RouterConfig) { cfg.Searcher = searcher })

		w := ts.do(http.MethodGet, "/api/books/search?query=dragons", nil)
		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "internal server error", decode[ErrorResponse](t, w).Error)
	})
}

func TestRouter_Preferences(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodGet, "/api/preferences", nil)
	require.Equal(t, http.StatusOK, w.Code)
	prefs := decode[entities.UserPreferences](t, w)
	assert.True(t, prefs.NotificationsEnabled)
	assert.Empty(t, prefs.PreferredCategories)

	w = ts.do(http.MethodPut, "/api/preferences", map[string]any{
		"preferredCategories": []string{"Fantasy", "Adventure"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	prefs = decode[entities.UserPreferences](t, w)
	assert.Equal(t, []string{"Fantasy", "Adventure"}, prefs.PreferredCategories)
	assert.True(t, prefs.NotificationsEnabled)

	w = ts.do(http.MethodPut, "/api/preferences", map[string]any{
		"preferredAgeRanges": []string{"13-18 years"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_ReferenceLists(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, entities.Categories, decode[[]string](t, w))

	w = ts.do(http.MethodGet, "/api/age-ranges", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, entities.AgeRanges, decode[[]string](t, w))
}

func TestRouter_Favorites(t *testing.T) {
	ts := newTestServer(t)
	book := ts.createBook(entities.Book{Title: "Matilda"})

	w := ts.do(http.MethodPost, "/api/favorites", map[string]any{"bookId": book.ID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	first := decode[entities.Favorite](t, w)

	w = ts.do(http.MethodPost, "/api/favorites", map[string]any{"bookId": book.ID})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, first.ID, decode[entities.Favorite](t, w).ID)

	w = ts.do(http.MethodGet, "/api/favorites", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]entities.Book](t, w), 1)

	w = ts.do(http.MethodGet, "/api/favorites/check/"+itoa(book.ID), nil)
	assert.Equal(t, true, decode[map[string]bool](t, w)["isFavorite"])

	w = ts.do(http.MethodDelete, "/api/favorites/"+itoa(book.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = ts.do(http.MethodDelete, "/api/favorites/"+itoa(book.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(http.MethodGet, "/api/favorites/check/"+itoa(book.ID), nil)
	assert.Equal(t, false, decode[map[string]bool](t, w)["isFavorite"])

	w = ts.do(http.MethodPost, "/api/favorites", map[string]any{"bookId": 999})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(http.MethodPost, "/api/favorites", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_RecentlyViewed(t *testing.T) {
	ts := newTestServer(t)
	first := ts.createBook(entities.Book{Title: "First"})
	second := ts.createBook(entities.Book{Title: "Second"})

	for _, id := range []uint{first.ID, second.ID} {
		w := ts.do(http.MethodPost, "/api/recently-viewed", map[string]any{"bookId": id})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	w := ts.do(http.MethodGet, "/api/recently-viewed?limit=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	books := decode[[]entities.Book](t, w)
	require.Len(t, books, 1)
	assert.Equal(t, "Second", books[0].Title)

	w = ts.do(http.MethodPost, "/api/recently-viewed", map[string]any{"bookId": 999})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(http.MethodPost, "/api/recently-viewed/clear", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), decode[map[string]any](t, w)["cleared"])

	w = ts.do(http.MethodGet, "/api/recently-viewed", nil)
	assert.Empty(t, decode[[]entities.Book](t, w))
}

func TestRouter_Notifications(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodPost, "/api/notifications", map[string]any{"title": "Hello", "message": "Welcome"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[entities.Notification](t, w)
	assert.Equal(t, entities.NotificationTypeSystem, created.Type)
	assert.False(t, created.IsRead)

	w = ts.do(http.MethodPost, "/api/notifications", map[string]any{"title": "x", "message": "y", "type": "spam"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(http.MethodPost, "/api/notifications", map[string]any{"title": "x", "message": "y", "bookId": 999})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(http.MethodGet, "/api/notifications/unread-count", nil)
	assert.Equal(t, float64(1), decode[map[string]any](t, w)["count"])

	w = ts.do(http.MethodPost, "/api/notifications/mark-read/"+itoa(created.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = ts.do(http.MethodPost, "/api/notifications/mark-read/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(http.MethodGet, "/api/notifications/unread-count", nil)
	assert.Equal(t, float64(0), decode[map[string]any](t, w)["count"])

	ts.do(http.MethodPost, "/api/notifications", map[string]any{"title": "Two", "message": "m"})
	w = ts.do(http.MethodPost, "/api/notifications/mark-all-read", nil)
	assert.Equal(t, float64(1), decode[map[string]any](t, w)["updated"])

	w = ts.do(http.MethodGet, "/api/notifications", nil)
	list := decode[[]entities.Notification](t, w)
	require.Len(t, list, 2)
	assert.Equal(t, "Two", list[0].Title)

	book := ts.createBook(entities.Book{Title: "The Gruffalo", Author: "Julia Donaldson"})
	w = ts.do(http.MethodPost, "/api/notifications", map[string]any{"title": "Three", "message": "m", "bookId": book.ID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	withBook := decode[entities.Notification](t, w)
	require.NotNil(t, withBook.BookID)
	assert.Equal(t, book.ID, *withBook.BookID)
}

func TestRouter_CatalogAndFollowing(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodPost, "/api/authors", map[string]any{"name": "Roald Dahl"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	author := decode[entities.Author](t, w)

	w = ts.do(http.MethodPost, "/api/authors", map[string]any{"name": "Roald Dahl"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = ts.do(http.MethodGet, "/api/authors/"+itoa(author.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = ts.do(http.MethodPost, "/api/series", map[string]any{"name": "Magic Tree House"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	series := decode[entities.BookSeries](t, w)

	w = ts.do(http.MethodPost, "/api/following/authors", map[string]any{"authorId": author.ID})
	assert.Equal(t, http.StatusCreated, w.Code)
	w = ts.do(http.MethodPost, "/api/following/authors", map[string]any{"authorId": author.ID})
	assert.Equal(t, http.StatusCreated, w.Code)
	w = ts.do(http.MethodPost, "/api/following/authors", map[string]any{"authorId": 999})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(http.MethodGet, "/api/following/authors", nil)
	assert.Len(t, decode[[]entities.Author](t, w), 1)
	w = ts.do(http.MethodGet, "/api/following/authors/check/"+itoa(author.ID), nil)
	assert.Equal(t, true, decode[map[string]bool](t, w)["isFollowing"])

	w = ts.do(http.MethodPost, "/api/following/series", map[string]any{"seriesId": series.ID})
	assert.Equal(t, http.StatusCreated, w.Code)
	w = ts.do(http.MethodDelete, "/api/following/series/"+itoa(series.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = ts.do(http.MethodDelete, "/api/following/series/"+itoa(series.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(http.MethodPost, "/api/following/categories", map[string]any{"category": "Adventure"})
	assert.Equal(t, http.StatusCreated, w.Code)
	w = ts.do(http.MethodPost, "/api/following/categories", map[string]any{"category": "Cookbooks"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(http.MethodGet, "/api/following/categories", nil)
	assert.Equal(t, []string{"Adventure"}, decode[[]string](t, w))
	w = ts.do(http.MethodGet, "/api/following/categories/check/Adventure", nil)
	assert.Equal(t, true, decode[map[string]bool](t, w)["isFollowing"])
	w = ts.do(http.MethodDelete, "/api/following/categories/Adventure", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = ts.do(http.MethodGet, "/api/following/categories/check/Adventure", nil)
	assert.Equal(t, false, decode[map[string]bool](t, w)["isFollowing"])
}

func TestRouter_MatcherRun(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodPut, "/api/preferences", map[string]any{
		"preferredCategories": []string{"Fairy Tales"},
		"preferredAgeRanges":  []string{"6-8 years"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	ts.createBook(entities.Book{
		Title:      "Princess and the Dragon",
		Categories: []string{"Fairy Tales"},
		AgeRange:   "6-8 years",
		IsNew:      true,
	})

	w = ts.do(http.MethodPost, "/api/matcher/run", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	result := decode[matcher.Result](t, w)
	assert.Equal(t, 1, result.NotificationsCreated)

	w = ts.do(http.MethodPost, "/api/matcher/run", nil)
	require.Equal(t, http.StatusOK, w.Code)
	result = decode[matcher.Result](t, w)
	assert.Equal(t, 0, result.NotificationsCreated)
	assert.Equal(t, 1, result.DuplicatesSkipped)

	w = ts.do(http.MethodGet, "/api/notifications", nil)
	list := decode[[]entities.Notification](t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "New Book Release: Princess and the Dragon", list[0].Title)

	w = ts.do(http.MethodGet, "/api/matcher/status", nil)
	assert.Equal(t, false, decode[map[string]any](t, w)["scheduled"])
}

func TestRouter_OptionalRoutes(t *testing.T) {
	ts := newTestServer(t, func(cfg *RouterConfig) { cfg.Matcher = nil })

	assert.Equal(t, http.StatusNotFound, ts.do(http.MethodPost, "/api/matcher/run", nil).Code)
	assert.Equal(t, http.StatusNotFound, ts.do(http.MethodGet, "/api/tasks/types", nil).Code)
}

type failingResolver struct{}

func (failingResolver) Resolve(*http.Request) (*entities.User, error) {
	return nil, errors.New("no user")
}

func TestRouter_IdentityFailure(t *testing.T) {
	ts := newTestServer(t, func(cfg *RouterConfig) { cfg.Resolver = failingResolver{} })

	w := ts.do(http.MethodGet, "/api/books", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = ts.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })
	return &buf
}

func TestRouter_ReadOnlyDemo(t *testing.T) {
	logs := captureLog(t)
	ts := newTestServer(t, func(cfg *RouterConfig) { cfg.ReadOnly = true })
	assert.Contains(t, logs.String(), "read-only mode enabled")
	book := ts.createBook(entities.Book{Title: "Matilda"})

	w := ts.do(http.MethodPost, "/api/books", map[string]any{"title": "Blocked"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = ts.do(http.MethodGet, "/api/books", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = ts.do(http.MethodPost, "/api/favorites", map[string]any{"bookId": book.ID})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRespondInternalError_LogsActingUser(t *testing.T) {
	logs := captureLog(t)
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set(identity.ContextKeyUsername, "demo")

	respondInternalError(c, errors.New("disk full"), "list books")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode[ErrorResponse](t, w)
	assert.Equal(t, CodeInternal, body.Code)
	assert.NotContains(t, w.Body.String(), "disk full")
	assert.Contains(t, logs.String(), `(list books) for user "demo": disk full`)
}
