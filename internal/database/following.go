package database

import (
	"context"

	"github.com/jenaralee/StoryStash/internal/entities"
)

func (d *Database) FollowAuthor(ctx context.Context, userID, authorID uint) (*entities.FollowingAuthor, error) {
	return link(ctx, d.DB, &entities.FollowingAuthor{UserID: userID, AuthorID: authorID},
		"user_id = ? AND author_id = ?", userID, authorID)
}

func (d *Database) UnfollowAuthor(ctx context.Context, userID, authorID uint) (bool, error) {
	return unlink[entities.FollowingAuthor](ctx, d.DB, "user_id = ? AND author_id = ?", userID, authorID)
}

func (d *Database) IsFollowingAuthor(ctx context.Context, userID, authorID uint) (bool, error) {
	return exists[entities.FollowingAuthor](ctx, d.DB, "user_id = ? AND author_id = ?", userID, authorID)
}

// GetFollowingAuthors returns followed authors in follow order, skipping
// follows whose author no longer exists.
func (d *Database) GetFollowingAuthors(ctx context.Context, userID uint) ([]entities.Author, error) {
	authors := make([]entities.Author, 0)
	err := d.DB.WithContext(ctx).
		Select("authors.*").
		Joins("JOIN following_authors ON following_authors.author_id = authors.id").
		Where("following_authors.user_id = ?", userID).
		Order("following_authors.id ASC").
		Find(&authors).Error
	return authors, err
}

func (d *Database) FollowSeries(ctx context.Context, userID, seriesID uint) (*entities.FollowingSeries, error) {
	return link(ctx, d.DB, &entities.FollowingSeries{UserID: userID, SeriesID: seriesID},
		"user_id = ? AND series_id = ?", userID, seriesID)
}

func (d *Database) UnfollowSeries(ctx context.Context, userID, seriesID uint) (bool, error) {
	return unlink[entities.FollowingSeries](ctx, d.DB, "user_id = ? AND series_id = ?", userID, seriesID)
}

func (d *Database) IsFollowingSeries(ctx context.Context, userID, seriesID uint) (bool, error) {
	return exists[entities.FollowingSeries](ctx, d.DB, "user_id = ? AND series_id = ?", userID, seriesID)
}

func (d *Database) GetFollowingSeries(ctx context.Context, userID uint) ([]entities.BookSeries, error) {
	series := make([]entities.BookSeries, 0)
	err := d.DB.WithContext(ctx).
		Select("book_series.*").
		Joins("JOIN following_series ON following_series.series_id = book_series.id").
		Where("following_series.user_id = ?", userID).
		Order("following_series.id ASC").
		Find(&series).Error
	return series, err
}

func (d *Database) FollowCategory(ctx context.Context, userID uint, category string) (*entities.FollowingCategory, error) {
	return link(ctx, d.DB, &entities.FollowingCategory{UserID: userID, Category: category},
		"user_id = ? AND category = ?", userID, category)
}

func (d *Database) UnfollowCategory(ctx context.Context, userID uint, category string) (bool, error) {
	return unlink[entities.FollowingCategory](ctx, d.DB, "user_id = ? AND category = ?", userID, category)
}

func (d *Database) IsFollowingCategory(ctx context.Context, userID uint, category string) (bool, error) {
	return exists[entities.FollowingCategory](ctx, d.DB, "user_id = ? AND category = ?", userID, category)
}

func (d *Database) GetFollowingCategories(ctx context.Context, userID uint) ([]string, error) {
	categories := make([]string, 0)
	err := d.DB.WithContext(ctx).Model(&entities.FollowingCategory{}).
		Where("user_id = ?", userID).
		Order("id ASC").
		Pluck("category", &categories).Error
	return categories, err
}
