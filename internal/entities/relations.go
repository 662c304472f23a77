package entities

import "time"

// Favorite links a user to a book. At most one row exists per (UserID, BookID).
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_favorite_user_book" json:"userId"`
	BookID    uint      `gorm:"uniqueIndex:idx_favorite_user_book" json:"bookId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Favorite) TableName() string {
	return "favorites"
}

// RecentlyViewed records the last time a user opened a book.
type RecentlyViewed struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	UserID   uint      `gorm:"uniqueIndex:idx_recent_user_book" json:"userId"`
	BookID   uint      `gorm:"uniqueIndex:idx_recent_user_book" json:"bookId"`
	ViewedAt time.Time `gorm:"index" json:"viewedAt"`
}

func (RecentlyViewed) TableName() string {
	return "recently_viewed"
}

type FollowingAuthor struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_following_author" json:"userId"`
	AuthorID  uint      `gorm:"uniqueIndex:idx_following_author" json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (FollowingAuthor) TableName() string {
	return "following_authors"
}

type FollowingSeries struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_following_series" json:"userId"`
	SeriesID  uint      `gorm:"uniqueIndex:idx_following_series" json:"seriesId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (FollowingSeries) TableName() string {
	return "following_series"
}

type FollowingCategory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_following_category" json:"userId"`
	Category  string    `gorm:"uniqueIndex:idx_following_category;size:100" json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

func (FollowingCategory) TableName() string {
	return "following_categories"
}
