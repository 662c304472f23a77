package entities

import (
	"slices"
	"time"
)

// MaxRating is the top of the rating scale (five stars, times ten).
const MaxRating = 50

type Book struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	GoogleID      string    `gorm:"uniqueIndex;size:64" json:"googleId"`
	Title         string    `gorm:"index;size:512" json:"title"`
	Author        string    `gorm:"index;size:256" json:"author"`
	Description   string    `gorm:"type:text" json:"description,omitempty"`
	Thumbnail     string    `gorm:"size:2048" json:"thumbnail,omitempty"`
	Categories    []string  `gorm:"serializer:json" json:"categories"`
	AgeRange      string    `gorm:"index;size:20" json:"ageRange,omitempty"`
	PublishedDate string    `gorm:"size:32" json:"publishedDate,omitempty"`
	Rating        *int      `json:"rating,omitempty"` // 0-50, i.e. stars * 10
	IsNew         bool      `gorm:"index;default:false" json:"isNew"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (Book) TableName() string {
	return "books"
}

// HasCategory reports whether the book is tagged with the given category.
func (b *Book) HasCategory(category string) bool {
	return slices.Contains(b.Categories, category)
}

// BookUpdate is a partial update; nil fields are left untouched.
type BookUpdate struct {
	Title         *string   `json:"title,omitempty"`
	Author        *string   `json:"author,omitempty"`
	Description   *string   `json:"description,omitempty"`
	Thumbnail     *string   `json:"thumbnail,omitempty"`
	Categories    *[]string `json:"categories,omitempty"`
	AgeRange      *string   `json:"ageRange,omitempty"`
	PublishedDate *string   `json:"publishedDate,omitempty"`
	Rating        *int      `json:"rating,omitempty"`
	IsNew         *bool     `json:"isNew,omitempty"`
}

// Apply copies every set field of the update onto the book.
func (u BookUpdate) Apply(book *Book) {
	if u.Title != nil {
		book.Title = *u.Title
	}
	if u.Author != nil {
		book.Author = *u.Author
	}
	if u.Description != nil {
		book.Description = *u.Description
	}
	if u.Thumbnail != nil {
		book.Thumbnail = *u.Thumbnail
	}
	if u.Categories != nil {
		book.Categories = slices.Clone(*u.Categories)
	}
	if u.AgeRange != nil {
		book.AgeRange = *u.AgeRange
	}
	if u.PublishedDate != nil {
		book.PublishedDate = *u.PublishedDate
	}
	if u.Rating != nil {
		rating := *u.Rating
		book.Rating = &rating
	}
	if u.IsNew != nil {
		book.IsNew = *u.IsNew
	}
}

type Author struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:256" json:"name"`
	Bio       string    `gorm:"type:text" json:"bio,omitempty"`
	ImageURL  string    `gorm:"size:2048" json:"imageUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Author) TableName() string {
	return "authors"
}

type BookSeries struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;size:256" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Author      string    `gorm:"size:256" json:"author,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (BookSeries) TableName() string {
	return "book_series"
}
