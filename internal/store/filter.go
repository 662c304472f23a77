package store

import (
	"strings"

	"github.com/jenaralee/StoryStash/internal/entities"
)

// BookFilter selects books for GetBooks. Zero values mean "no constraint";
// all set constraints must hold.
type BookFilter struct {
	Category string
	AgeRange string
	IsNew    *bool
	Limit    int
	Offset   int
}

// Matches reports whether the book satisfies every constraint of the filter.
func (f BookFilter) Matches(book *entities.Book) bool {
	if f.Category != "" && !book.HasCategory(f.Category) {
		return false
	}
	if f.AgeRange != "" && book.AgeRange != f.AgeRange {
		return false
	}
	if f.IsNew != nil && book.IsNew != *f.IsNew {
		return false
	}
	return true
}

// Paginate applies the GetBooks paging policy to an already sorted slice.
// Offset only applies together with a limit; with no limit the whole slice
// is returned.
func Paginate[T any](items []T, limit, offset int) []T {
	if limit <= 0 {
		return items
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return items[:0]
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

// MatchesQuery is the case-insensitive substring test used by SearchBooks.
func MatchesQuery(book *entities.Book, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(book.Title), q) ||
		strings.Contains(strings.ToLower(book.Author), q) ||
		strings.Contains(strings.ToLower(book.Description), q)
}

// BoolPtr is a convenience for building filters.
func BoolPtr(v bool) *bool {
	return &v
}
