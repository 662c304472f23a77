package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jenaralee/StoryStash/internal/entities"
	"github.com/jenaralee/StoryStash/internal/store"
)

// link returns the existing row matching where, or creates row.
func link[T any](ctx context.Context, db *gorm.DB, row *T, where string, args ...any) (*T, error) {
	var result *T

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := firstOrNil[T](tx.Where(where, args...))
		if err != nil {
			return err
		}
		if existing != nil {
			result = existing
			return nil
		}
		if err := tx.Create(row).Error; err != nil {
			return translate(err)
		}
		result = row
		return nil
	})
	if errors.Is(err, store.ErrConflict) {
		// Lost a race to a concurrent insert of the same pair.
		return firstOrNil[T](db.WithContext(ctx).Where(where, args...))
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// unlink deletes the rows matching where and reports whether any existed.
func unlink[T any](ctx context.Context, db *gorm.DB, where string, args ...any) (bool, error) {
	var model T
	result := db.WithContext(ctx).Where(where, args...).Delete(&model)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func exists[T any](ctx context.Context, db *gorm.DB, where string, args ...any) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(new(T)).Where(where, args...).Count(&count).Error
	return count > 0, err
}

func (d *Database) AddFavorite(ctx context.Context, userID, bookID uint) (*entities.Favorite, error) {
	return link(ctx, d.DB, &entities.Favorite{UserID: userID, BookID: bookID},
		"user_id = ? AND book_id = ?", userID, bookID)
}

func (d *Database) RemoveFavorite(ctx context.Context, userID, bookID uint) (bool, error) {
	return unlink[entities.Favorite](ctx, d.DB, "user_id = ? AND book_id = ?", userID, bookID)
}

func (d *Database) IsFavorite(ctx context.Context, userID, bookID uint) (bool, error) {
	return exists[entities.Favorite](ctx, d.DB, "user_id = ? AND book_id = ?", userID, bookID)
}

// GetFavorites returns the user's favorite books, most recently added first.
// The inner join drops favorites whose book no longer exists.
func (d *Database) GetFavorites(ctx context.Context, userID uint) ([]entities.Book, error) {
	books := make([]entities.Book, 0)
	err := d.DB.WithContext(ctx).
		Select("books.*").
		Joins("JOIN favorites ON favorites.book_id = books.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at DESC, favorites.id DESC").
		Find(&books).Error
	return books, err
}
