package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/jenaralee/StoryStash/internal/entities"
	"github.com/jenaralee/StoryStash/internal/store"
)

// AddRecentlyViewed records a view, moving ViewedAt forward on an existing row.
func (d *Database) AddRecentlyViewed(ctx context.Context, userID, bookID uint) (*entities.RecentlyViewed, error) {
	var row *entities.RecentlyViewed

	err := d.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := firstOrNil[entities.RecentlyViewed](tx.Where("user_id = ? AND book_id = ?", userID, bookID))
		if err != nil {
			return err
		}
		if existing == nil {
			existing = &entities.RecentlyViewed{UserID: userID, BookID: bookID}
		}
		existing.ViewedAt = d.now()
		row = existing
		return tx.Save(row).Error
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

// GetRecentlyViewed takes the newest limit views, then resolves them to books.
// Views of books that no longer resolve are dropped after the limit applies.
func (d *Database) GetRecentlyViewed(ctx context.Context, userID uint, limit int) ([]entities.Book, error) {
	if limit <= 0 {
		limit = store.DefaultRecentlyViewedLimit
	}

	var views []entities.RecentlyViewed
	err := d.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("viewed_at DESC, id DESC").
		Limit(limit).
		Find(&views).Error
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(views))
	for _, v := range views {
		ids = append(ids, v.BookID)
	}
	byID, err := d.booksByID(ctx, ids)
	if err != nil {
		return nil, err
	}

	books := make([]entities.Book, 0, len(views))
	for _, v := range views {
		if book, ok := byID[v.BookID]; ok {
			books = append(books, book)
		}
	}
	return books, nil
}

func (d *Database) ClearRecentlyViewed(ctx context.Context, userID uint) (int64, error) {
	result := d.DB.WithContext(ctx).Where("user_id = ?", userID).Delete(&entities.RecentlyViewed{})
	return result.RowsAffected, result.Error
}

func (d *Database) booksByID(ctx context.Context, ids []uint) (map[uint]entities.Book, error) {
	byID := make(map[uint]entities.Book, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}

	var books []entities.Book
	if err := d.DB.WithContext(ctx).Where("id IN ?", ids).Find(&books).Error; err != nil {
		return nil, err
	}
	for _, b := range books {
		byID[b.ID] = b
	}
	return byID, nil
}
