package memory

import (
	"slices"

	"github.com/jenaralee/StoryStash/internal/entities"
)

func cloneBook(b *entities.Book) entities.Book {
	out := *b
	out.Categories = slices.Clone(b.Categories)
	if out.Categories == nil {
		out.Categories = []string{}
	}
	if b.Rating != nil {
		rating := *b.Rating
		out.Rating = &rating
	}
	return out
}

func clonePreferences(p *entities.UserPreferences) entities.UserPreferences {
	out := *p
	out.PreferredCategories = slices.Clone(p.PreferredCategories)
	out.PreferredAgeRanges = slices.Clone(p.PreferredAgeRanges)
	if out.PreferredCategories == nil {
		out.PreferredCategories = []string{}
	}
	if out.PreferredAgeRanges == nil {
		out.PreferredAgeRanges = []string{}
	}
	return out
}

func cloneNotification(n *entities.Notification) entities.Notification {
	out := *n
	if n.BookID != nil {
		bookID := *n.BookID
		out.BookID = &bookID
	}
	return out
}
