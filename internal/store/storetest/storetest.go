// Package storetest holds the behavioural contract every store.Store
// implementation must satisfy. Backends call Run from their own tests.
package storetest

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jenaralee/StoryStash/internal/entities"
	"github.com/jenaralee/StoryStash/internal/store"
)

// Factory builds a fresh, empty store that stamps rows using clock.
type Factory func(t *testing.T, clock func() time.Time) store.Store

// Clock is a manually advanced time source.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

func NewClock() *Clock {
	return &Clock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Run executes the full contract suite.
func Run(t *testing.T, factory Factory) {
	tests := []struct {
		name string
		fn   func(t *testing.T, s store.Store, clock *Clock)
	}{
		{"CreateUserCreatesDefaultPreferences", testCreateUserCreatesDefaultPreferences},
		{"UsernameIsUnique", testUsernameIsUnique},
		{"LookupsReturnNilWhenAbsent", testLookupsReturnNilWhenAbsent},
		{"ListUsers", testListUsers},
		{"UpdatePreferencesMerges", testUpdatePreferencesMerges},
		{"BookIDsAreMonotonic", testBookIDsAreMonotonic},
		{"GoogleIDIsUnique", testGoogleIDIsUnique},
		{"UpdateBook", testUpdateBook},
		{"GetBooksFiltersAndSorts", testGetBooksFiltersAndSorts},
		{"GetBooksPagination", testGetBooksPagination},
		{"SearchBooks", testSearchBooks},
		{"FavoritesAreIdempotent", testFavoritesAreIdempotent},
		{"RemoveFavorite", testRemoveFavorite},
		{"GetFavoritesSkipsMissingBooks", testGetFavoritesSkipsMissingBooks},
		{"ConcurrentAddFavorite", testConcurrentAddFavorite},
		{"RecentlyViewedUpdatesInPlace", testRecentlyViewedUpdatesInPlace},
		{"RecentlyViewedOrderAndLimit", testRecentlyViewedOrderAndLimit},
		{"ClearRecentlyViewed", testClearRecentlyViewed},
		{"Notifications", testNotifications},
		{"AuthorsAndSeries", testAuthorsAndSeries},
		{"FollowAuthors", testFollowAuthors},
		{"FollowSeries", testFollowSeries},
		{"FollowCategories", testFollowCategories},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := NewClock()
			s := factory(t, clock.Now)
			tt.fn(t, s, clock)
		})
	}
}

func mustCreateUser(t *testing.T, s store.Store, username string) *entities.User {
	t.Helper()
	user, err := s.CreateUser(context.Background(), &entities.User{Username: username, Password: "secret"})
	require.NoError(t, err)
	require.NotNil(t, user)
	return user
}

func mustCreateBook(t *testing.T, s store.Store, book entities.Book) *entities.Book {
	t.Helper()
	created, err := s.CreateBook(context.Background(), &book)
	require.NoError(t, err)
	require.NotNil(t, created)
	return created
}

func bookIDs(books []entities.Book) []uint {
	ids := make([]uint, 0, len(books))
	for _, b := range books {
		ids = append(ids, b.ID)
	}
	return ids
}

func testCreateUserCreatesDefaultPreferences(t *testing.T, s store.Store, _ *Clock) {
	ctx := context.Background()
	user := mustCreateUser(t, s, "demo")

	assert.NotZero(t, user.ID)
	assert.Equal(t, "demo", user.Username)
	assert.Equal(t, "secret", user.Password)

	prefs, err := s.GetUserPreferences(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, prefs)
	assert.Equal(t, user.ID, prefs.UserID)
	assert.Empty(t, prefs.PreferredCategories)
	assert.Empty(t, prefs.PreferredAgeRanges)
	assert.True(t, prefs.NotificationsEnabled)
}

func testUsernameIsUnique(t *testing.T, s store.Store, _ *Clock) {
	mustCreateUser(t, s, "demo")

	_, err := s.CreateUser(context.Background(), &entities.User{Username: "demo"})
	assert.ErrorIs(t, err, store.ErrConflict)

	users, err := s.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func testLookupsReturnNilWhenAbsent(t *testing.T, s store.Store, _ *Clock) {
	ctx := context.Background()

	user, err := s.GetUser(ctx, 42)
	assert.NoError(t, err)
	assert.Nil(t, user)

	user, err = s.GetUserByUsername(ctx, "nobody")
	assert.NoError(t, err)
	assert.Nil(t, user)

	prefs, err := s.GetUserPreferences(ctx, 42)
	assert.NoError(t, err)
	assert.Nil(t, prefs)

	book, err := s.GetBook(ctx, 42)
	assert.NoError(t, err)
	assert.Nil(t, book)

	book, err = s.GetBookByGoogleID(ctx, "missing")
	assert.NoError(t, err)
	assert.Nil(t, book)

	author, err := s.GetAuthorByName(ctx, "Nobody")
	assert.NoError(t, err)
	assert.Nil(t, author)

	series, err := s.GetSeries(ctx, 42)
	assert.NoError(t, err)
	assert.Nil(t, series)
}

func testListUsers(t *testing.T, s store.Store, _ *Clock) {
	first := mustCreateUser(t, s, "first")
	second := mustCreateUser(t, s, "second")

	users, err := s.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, first.ID, users[0].ID)
	assert.Equal(t, second.ID, users[1].ID)
	assert.Greater(t, second.ID, first.ID)
}

func testUpdatePreferencesMerges(t *testing.T, s store.Store, _ *Clock) {
	ctx := context.Background()
	user := mustCreateUser(t, s, "demo")

	categories := []string{"Fantasy", "Mystery"}
	prefs, err := s.UpdateUserPreferences(ctx, user.ID, entities.PreferencesUpdate{PreferredCategories: &categories})
	require.NoError(t, err)
	assert.Equal(t, categories, prefs.PreferredCategories)
	assert.Empty(t, prefs.PreferredAgeRanges)
	assert.True(t, prefs.NotificationsEnabled)

	disabled := false
	ages := []string{"3-5 years"}
	prefs, err = s.UpdateUserPreferences(ctx, user.ID, entities.PreferencesUpdate{
		PreferredAgeRanges:   &ages,
		NotificationsEnabled: &disabled,
	})
	require.NoError(t, err)
	assert.Equal(t, categories, prefs.PreferredCategories, "untouched fields survive the merge")
	assert.Equal(t, ages, prefs.PreferredAgeRanges)
	assert.False(t, prefs.NotificationsEnabled)

	stored, err := s.GetUserPreferences(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, prefs.PreferredCategories, stored.PreferredCategories)
	assert.Equal(t, prefs.PreferredAgeRanges, stored.PreferredAgeRanges)
	assert.False(t, stored.NotificationsEnabled)
}

func testBookIDsAreMonotonic(t *testing.T, s store.Store, _ *Clock) {
	ctx := context.Background()
	a := mustCreateBook(t, s, entities.Book{GoogleID: "g-a", Title: "A"})
	b := mustCreateBook(t, s, entities.Book{GoogleID: "g-b", Title: "B"})
	c := mustCreateBook(t, s, entities.Book{Title: "No external key"})

	assert.Less(t, a.ID, b.ID)
	assert.Less(t, b.ID, c.ID)
	assert.Contains(t, c.GoogleID, store.LocalIDPrefix)

	found, err := s.GetBookByGoogleID(ctx, "g-b")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, b.ID, found.ID)
	assert.Equal(t, "B", found.Title)
}

func testGoogleIDIsUnique(t *testing.T, s store.Store, _ *Clock) {
	mustCreateBook(t, s, entities.Book{GoogleID: "dup", Title: "Original"})

	_, err := s.CreateBook(context.Background(), &entities.Book{GoogleID: "dup", Title: "Copy"})
	assert.ErrorIs(t, err, store.ErrConflict)

	books, err := s.GetBooks(context.Background(), store.BookFilter{})
	require.NoError(t, err)
	assert.Len(t, books, 1)
}

func testUpdateBook(t *testing.T, s store.Store, _ *Clock) {
	ctx := context.Background()
	rating := 45
	book := mustCreateBook(t, s, entities.Book{
		GoogleID:   "g-1",
		Title:      "Moon Garden",
		Categories: []string{"Bedtime Stories"},
		AgeRange:   "3-5 years",
		Rating:     &rating,
		IsNew:      true,
	})

	notNew := false
	title := "Moon Garden (Revised)"
	updated, err := s.UpdateBook(ctx, book.ID, entities.BookUpdate{IsNew: &notNew, Title: &title})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.False(t, updated.IsNew)
	assert.Equal(t, title, updated.Title)
	assert.Equal(t, []string{"Bedtime Stories"}, updated.Categories)
	require.NotNil(t, updated.Rating)
	assert.Equal(t, 45, *updated.Rating)

	stored, err := s.GetBook(ctx, book.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsNew)

	missing, err := s.UpdateBook(ctx, 999, entities.BookUpdate{IsNew: &notNew})
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func testGetBooksFiltersAndSorts(t *testing.T, s store.Store, _ *Clock) {
	ctx := context.Background()
	b1 := mustCreateBook(t, s, entities.Book{GoogleID: "1", Title: "One", Categories: []string{"Adventure"}, AgeRange: "6-8 years", IsNew: true})
	b2 := mustCreateBook(t, s, entities.Book{GoogleID: "2", Title: "Two", Categories: []string{"Fantasy"}, AgeRange: "6-8 years", IsNew: false})
	b3 := mustCreateBook(t, s, entities.Book{GoogleID: "3", Title: "Three", Categories: []string{"Adventure", "Fantasy"}, AgeRange: "9-12 years", IsNew: true})
	b4 := mustCreateBook(t, s, entities.Book{GoogleID: "4", Title: "Four", Categories: []string{"Mystery"}, AgeRange: "9-12 years", IsNew: true})

	all, err := s.GetBooks(ctx, store.BookFilter{})
	require.NoError(t, err)
	assert.Equal(t, []uint{b4.ID, b3.ID, b2.ID, b1.ID}, bookIDs(all))

	fantasy, err := s.GetBooks(ctx, store.BookFilter{Category: "Fantasy"})
	require.NoError(t, err)
	assert.Equal(t, []uint{b3.ID, b2.ID}, bookIDs(fantasy))

	young, err := s.GetBooks(ctx, store.BookFilter{AgeRange: "6-8 years"})
	require.NoError(t, err)
	assert.Equal(t, []uint{b2.ID, b1.ID}, bookIDs(young))

	combined, err := s.GetBooks(ctx, store.BookFilter{Category: "Adventure", IsNew: store.BoolPtr(true), AgeRange: "9-12 years"})
	require.NoError(t, err)
	assert.Equal(t, []uint{b3.ID}, bookIDs(combined))

	newest, err := s.GetBooks(ctx, store.BookFilter{IsNew: store.BoolPtr(true), Limit: 2})
	require.NoError(t, err)
	require.Len(t, newest, 2)
	assert.Equal(t, []uint{b4.ID, b3.ID}, bookIDs(newest))
	for _, b := range newest {
		assert.True(t, b.IsNew)
	}
}

func testGetBooksPagination(t *testing.T, s store.Store, _ *Clock) {
	ctx := context.Background()
	var ids []uint
	for _, g := range []string{"a", "b", "c", "d", "e"} {
		ids = append(ids, mustCreateBook(t, s, entities.Book{GoogleID: g, Title: g}).ID)
	}

	page, err := s.GetBooks(ctx, store.BookFilter{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Equal(t, []uint{ids[2], ids[1]}, bookIDs(page))

	tail, err := s.GetBooks(ctx, store.BookFilter{Limit: 10, Offset: 4})
	require.NoError(t, err)
	assert.Equal(t, []uint{ids[0]}, bookIDs(tail))

	offsetOnly, err := s.GetBooks(ctx, store.BookFilter{Offset: 3})
	require.NoError(t, err)
	assert.Len(t, offsetOnly, 5, "offset without limit returns the full set")

	past, err := s.GetBooks(ctx, store.BookFilter{Limit: 2, Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, past)
}

func testSearchBooks(t *testing.T, s store.Store, _ *Clock) {
	ctx := context.Background()
	princess := mustCreateBook(t, s, entities.Book{GoogleID: "p", Title: "Princess and the Dragon", Author: "Mira Holt"})
	mustCreateBook(t, s, entities.Book{GoogleID: "q", Title: "The Quiet Pond", Author: "Sam Reed"})
	tale := mustCreateBook(t, s, entities.Book{GoogleID: "r", Title: "Ember", Author: "Jo Park", Description: "A tiny dragon learns to fly."})

	found, err := s.SearchBooks(ctx, "dragon")
	require.NoError(t, err)
	assert.Equal(t, []uint{princess.ID, tale.ID}, bookIDs(found))

	upper, err := s.SearchBooks(ctx, "DRAGON")
	require.NoError(t, err)
	assert.Len(t, upper, 2)

	byAuthor, err := s.SearchBooks(ctx, "sam reed")
	require.NoError(t, err)
	require.Len(t, byAuthor, 1)
	assert.Equal(t, "The Quiet Pond", byAuthor[0].Title)

	none, err := s.SearchBooks(ctx, "spaceship")
	require.NoError(t, err)
	assert.Empty(t, none)

	emile := mustCreateBook(t, s, entities.Book{GoogleID: "e", Title: "Émile and the Dragon", Author: "Zoë Ångström"})
	accented, err := s.SearchBooks(ctx, "émile")
	require.NoError(t, err)
	assert.Equal(t, []uint{emile.ID}, bookIDs(accented))

	byAuthor, err = s.SearchBooks(ctx, "ZOË ÅNGSTRÖM")
	require.NoError(t, err)
	assert.Equal(t, []uint{emile.ID}, bookIDs(byAuthor))
}

func testFavoritesAreIdempotent(t *testing.T, s store.Store, _ *Clock) {
	ctx := context.Background()
	user := mustCreateUser(t, s, "demo")
	book := mustCreateBook(t, s, entities.Book{GoogleID: "fav", Title: "Fav"})

	first, err := s.AddFavorite(ctx, user.ID, book.ID)
	require.NoError(t, err)
	isFav, err := s.IsFavorite(ctx, user.ID, book.ID)
	require.NoError(t, err)
	assert.True(t, isFav)

	second, err := s.AddFavorite(ctx, user.ID, book.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	isFav, err = s.IsFavorite(ctx, user.ID, book.ID)
	require.NoError(t, err)
	assert.True(t, isFav)

	favs, err := s.GetFavorites(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, favs, 1)
}

func testRemoveFavorite(t *testing.T, s store.Store, _ *Clock) {
	ctx := context.Background()
	user := mustCreateUser(t, s, "demo")
	book := mustCreateBook(t, s, entities.Book{GoogleID: "fav", Title: "Fav"})

	removed, err := s.RemoveFavorite(ctx, user.ID, book.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = s.AddFavorite(ctx, user.ID, book.ID)
	require.NoError(t, err)

	removed, err = s.RemoveFavorite(ctx, user.ID, book.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	isFav, err := s.IsFavorite(ctx, user.ID, book.ID)
	require.NoError(t, err)
	assert.False(t, isFav)
}

func testGetFavoritesSkipsMissingBooks(t *testing.T, s store.Store, clock *Clock) {
	ctx := context.Background()
	user := mustCreateUser(t, s, "demo")
	older := mustCreateBook(t, s, entities.Book{GoogleID: "1", Title: "Older"})
	newer := mustCreateBook(t, s, entities.Book{GoogleID: "2", Title: "Newer"})

	_, err := s.AddFavorite(ctx, user.ID, older.ID)
	require.NoError(t, err)
	clock.Advance(time.Minute)
	_, err = s.AddFavorite(ctx, user.ID, 999)
	require.NoError(t, err)
	clock.Advance(time.Minute)
	_, err = s.AddFavorite(ctx, user.ID, newer.ID)
	require.NoError(t, err)

	favs, err := s.GetFavorites(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{newer.ID, older.ID}, bookIDs(favs))
}

func testConcurrentAddFavorite(t *testing.T, s store.Store, _ *Clock) {
	ctx := context.Background()
	user := mustCreateUser(t, s, "demo")
	book := mustCreateBook(t, s, entities.Book{GoogleID: "race", Title: "Race"})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.AddFavorite(ctx, user.ID, book.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	favs, err := s.GetFavorites(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, favs, 1)
}

func testRecentlyViewedUpdatesInPlace(t *testing.T, s store.Store, clock *Clock) {
	ctx := context.Background()
	user := mustCreateUser(t, s, "demo")
	book := mustCreateBook(t, s, entities.Book{GoogleID: "rv", Title: "Viewed"})

	first, err := s.AddRecentlyViewed(ctx, user.ID, book.ID)
	require.NoError(t, err)

	clock.Advance(time.Hour)
	second, err := s.AddRecentlyViewed(ctx, user.ID, book.ID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.ViewedAt.Equal(clock.Now()), "viewedAt reflects the second view")
	assert.True(t, second.ViewedAt.After(first.ViewedAt))

	books, err := s.GetRecentlyViewed(ctx, user.ID, 0)
	require.NoError(t, err)
	assert.Len(t, books, 1)
}

func testRecentlyViewedOrderAndLimit(t *testing.T, s store.Store, clock *Clock) {
	ctx := context.Background()
	user := mustCreateUser(t, s, "demo")
	a := mustCreateBook(t, s, entities.Book{GoogleID: "a", Title: "A"})
	b := mustCreateBook(t, s, entities.Book{GoogleID: "b", Title: "B"})
	c := mustCreateBook(t, s, entities.Book{GoogleID: "c", Title: "C"})

	for _, id := range []uint{a.ID, b.ID, 999, c.ID} {
		_, err := s.AddRecentlyViewed(ctx, user.ID, id)
		require.NoError(t, err)
		clock.Advance(time.Minute)
	}
	// Re-viewing A moves it to the front.
	_, err := s.AddRecentlyViewed(ctx, user.ID, a.ID)
	require.NoError(t, err)

	books, err := s.GetRecentlyViewed(ctx, user.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, []uint{a.ID, c.ID, b.ID}, bookIDs(books))

	limited, err := s.GetRecentlyViewed(ctx, user.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, []uint{a.ID, c.ID}, bookIDs(limited))

	// The unresolved row counts against the limit before it is dropped.
	three, err := s.GetRecentlyViewed(ctx, user.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, []uint{a.ID, c.ID}, bookIDs(three))
}

func testClearRecentlyViewed(t *testing.T, s store.Store, _ *Clock) {
	ctx := context.Background()
	user := mustCreateUser(t, s, "demo")
	other := mustCreateUser(t, s, "other")
	book := mustCreateBook(t, s, entities.Book{GoogleID: "a", Title: "A"})

	_, err := s.AddRecentlyViewed(ctx, user.ID, book.ID)
	require.NoError(t, err)
	_, err = s.AddRecentlyViewed(ctx, other.ID, book.ID)
	require.NoError(t, err)

	removed, err := s.ClearRecentlyViewed(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	mine, err := s.GetRecentlyViewed(ctx, user.ID, 10)
	require.NoError(t, err)
	assert.Empty(t, mine)

	theirs, err := s.GetRecentlyViewed(ctx, other.ID, 10)
	require.NoError(t, err)
	assert.Len(t, theirs, 1)
}

func testNotifications(t *testing.T, s store.Store, clock *Clock) {
	ctx := context.Background()
	user := mustCreateUser(t, s, "demo")
	other := mustCreateUser(t, s, "other")
	bookID := uint(7)

	first, err := s.CreateNotification(ctx, &entities.Notification{
		UserID:  user.ID,
		Title:   "Welcome",
		Message: "Happy reading!",
	})
	require.NoError(t, err)
	assert.False(t, first.IsRead)
	assert.Equal(t, entities.NotificationTypeSystem, first.Type)

	clock.Advance(time.Minute)
	second, err := s.CreateNotification(ctx, &entities.Notification{
		UserID:  user.ID,
		Title:   entities.NewReleaseTitle + ": Ember",
		Message: "A new book matches your preferences.",
		Type:    entities.NotificationTypeNewRelease,
		BookID:  &bookID,
	})
	require.NoError(t, err)

	list, err := s.GetNotifications(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	require.NotNil(t, list[0].BookID)
	assert.Equal(t, bookID, *list[0].BookID)
	assert.Nil(t, list[1].BookID)

	unread, err := s.GetUnreadNotificationCount(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), unread)

	ok, err := s.MarkNotificationRead(ctx, other.ID, first.ID)
	require.NoError(t, err)
	assert.False(t, ok, "cannot mark another user's notification")

	ok, err = s.MarkNotificationRead(ctx, user.ID, 999)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.MarkNotificationRead(ctx, user.ID, first.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	unread, err = s.GetUnreadNotificationCount(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)

	updated, err := s.MarkAllNotificationsRead(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)

	unread, err = s.GetUnreadNotificationCount(ctx, user.ID)
	require.NoError(t, err)
	assert.Zero(t, unread)

	theirs, err := s.GetNotifications(ctx, other.ID)
	require.NoError(t, err)
	assert.Empty(t, theirs)
}

func testAuthorsAndSeries(t *testing.T, s store.Store, _ *Clock) {
	ctx := context.Background()

	author, err := s.CreateAuthor(ctx, &entities.Author{Name: "Mira Holt", Bio: "Writes about dragons."})
	require.NoError(t, err)
	_, err = s.CreateAuthor(ctx, &entities.Author{Name: "Mira Holt"})
	assert.ErrorIs(t, err, store.ErrConflict)

	byName, err := s.GetAuthorByName(ctx, "Mira Holt")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, author.ID, byName.ID)

	_, err = s.CreateAuthor(ctx, &entities.Author{Name: "Sam Reed"})
	require.NoError(t, err)
	authors, err := s.ListAuthors(ctx)
	require.NoError(t, err)
	assert.Len(t, authors, 2)

	series, err := s.CreateSeries(ctx, &entities.BookSeries{Name: "Moon Garden", Author: "Mira Holt"})
	require.NoError(t, err)
	_, err = s.CreateSeries(ctx, &entities.BookSeries{Name: "Moon Garden"})
	assert.ErrorIs(t, err, store.ErrConflict)

	got, err := s.GetSeries(ctx, series.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Moon Garden", got.Name)

	byName2, err := s.GetSeriesByName(ctx, "Moon Garden")
	require.NoError(t, err)
	require.NotNil(t, byName2)
	assert.Equal(t, series.ID, byName2.ID)

	all, err := s.ListSeries(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func testFollowAuthors(t *testing.T, s store.Store, _ *Clock) {
	ctx := context.Background()
	user := mustCreateUser(t, s, "demo")
	a1, err := s.CreateAuthor(ctx, &entities.Author{Name: "A1"})
	require.NoError(t, err)
	a2, err := s.CreateAuthor(ctx, &entities.Author{Name: "A2"})
	require.NoError(t, err)

	first, err := s.FollowAuthor(ctx, user.ID, a1.ID)
	require.NoError(t, err)
	again, err := s.FollowAuthor(ctx, user.ID, a1.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	_, err = s.FollowAuthor(ctx, user.ID, 999)
	require.NoError(t, err)
	_, err = s.FollowAuthor(ctx, user.ID, a2.ID)
	require.NoError(t, err)

	following, err := s.GetFollowingAuthors(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, following, 2, "unresolved author is skipped")
	assert.Equal(t, a1.ID, following[0].ID)
	assert.Equal(t, a2.ID, following[1].ID)

	is, err := s.IsFollowingAuthor(ctx, user.ID, a1.ID)
	require.NoError(t, err)
	assert.True(t, is)

	ok, err := s.UnfollowAuthor(ctx, user.ID, a1.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = s.UnfollowAuthor(ctx, user.ID, a1.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	is, err = s.IsFollowingAuthor(ctx, user.ID, a1.ID)
	require.NoError(t, err)
	assert.False(t, is)
}

func testFollowSeries(t *testing.T, s store.Store, _ *Clock) {
	ctx := context.Background()
	user := mustCreateUser(t, s, "demo")
	series, err := s.CreateSeries(ctx, &entities.BookSeries{Name: "Moon Garden"})
	require.NoError(t, err)

	first, err := s.FollowSeries(ctx, user.ID, series.ID)
	require.NoError(t, err)
	again, err := s.FollowSeries(ctx, user.ID, series.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	following, err := s.GetFollowingSeries(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, "Moon Garden", following[0].Name)

	ok, err := s.UnfollowSeries(ctx, user.ID, 999)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.UnfollowSeries(ctx, user.ID, series.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	is, err := s.IsFollowingSeries(ctx, user.ID, series.ID)
	require.NoError(t, err)
	assert.False(t, is)
}

func testFollowCategories(t *testing.T, s store.Store, _ *Clock) {
	ctx := context.Background()
	user := mustCreateUser(t, s, "demo")

	first, err := s.FollowCategory(ctx, user.ID, "Fantasy")
	require.NoError(t, err)
	again, err := s.FollowCategory(ctx, user.ID, "Fantasy")
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	_, err = s.FollowCategory(ctx, user.ID, "Mystery")
	require.NoError(t, err)

	categories, err := s.GetFollowingCategories(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Fantasy", "Mystery"}, categories)

	is, err := s.IsFollowingCategory(ctx, user.ID, "Mystery")
	require.NoError(t, err)
	assert.True(t, is)

	ok, err := s.UnfollowCategory(ctx, user.ID, "Mystery")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = s.UnfollowCategory(ctx, user.ID, "Mystery")
	require.NoError(t, err)
	assert.False(t, ok)

	categories, err = s.GetFollowingCategories(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Fantasy"}, categories)
}
