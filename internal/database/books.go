package database

import (
	"context"
	"slices"

	"gorm.io/gorm"

	"github.com/jenaralee/StoryStash/internal/entities"
	"github.com/jenaralee/StoryStash/internal/store"
)

const searchBatchSize = 200

func (d *Database) CreateBook(ctx context.Context, book *entities.Book) (*entities.Book, error) {
	created := *book
	created.ID = 0
	created.Categories = append([]string{}, book.Categories...)
	store.EnsureGoogleID(&created)

	err := d.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := firstOrNil[entities.Book](tx.Where("google_id = ?", created.GoogleID))
		if err != nil {
			return err
		}
		if existing != nil {
			return store.ErrConflict
		}
		return translate(tx.Create(&created).Error)
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (d *Database) GetBook(ctx context.Context, id uint) (*entities.Book, error) {
	return firstOrNil[entities.Book](d.DB.WithContext(ctx).Where("id = ?", id))
}

func (d *Database) GetBookByGoogleID(ctx context.Context, googleID string) (*entities.Book, error) {
	return firstOrNil[entities.Book](d.DB.WithContext(ctx).Where("google_id = ?", googleID))
}

func (d *Database) UpdateBook(ctx context.Context, id uint, update entities.BookUpdate) (*entities.Book, error) {
	var book *entities.Book

	err := d.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := firstOrNil[entities.Book](tx.Where("id = ?", id))
		if err != nil || existing == nil {
			return err
		}
		update.Apply(existing)
		book = existing
		return tx.Save(book).Error
	})
	if err != nil {
		return nil, err
	}
	return book, nil
}

// GetBooks filters in SQL, orders by id descending and then paginates.
func (d *Database) GetBooks(ctx context.Context, filter store.BookFilter) ([]entities.Book, error) {
	query := d.DB.WithContext(ctx).Model(&entities.Book{})

	if filter.Category != "" {
		query = query.Where("EXISTS (SELECT 1 FROM json_each(books.categories) WHERE json_each.value = ?)", filter.Category)
	}
	if filter.AgeRange != "" {
		query = query.Where("age_range = ?", filter.AgeRange)
	}
	if filter.IsNew != nil {
		query = query.Where("is_new = ?", *filter.IsNew)
	}

	query = query.Order("id DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
		if filter.Offset > 0 {
			query = query.Offset(filter.Offset)
		}
	}

	books := make([]entities.Book, 0)
	err := query.Find(&books).Error
	return books, err
}

// SearchBooks matches the query as a case-insensitive substring of title,
// author or description. Results are in insertion order.
//
// SQLite's lower() only folds ASCII, so matching happens in Go with the same
// test the memory store uses.
func (d *Database) SearchBooks(ctx context.Context, query string) ([]entities.Book, error) {
	books := make([]entities.Book, 0)
	batch := make([]entities.Book, 0, searchBatchSize)
	err := d.DB.WithContext(ctx).FindInBatches(&batch, searchBatchSize, func(tx *gorm.DB, _ int) error {
		for i := range batch {
			if store.MatchesQuery(&batch[i], query) {
				book := batch[i]
				book.Categories = slices.Clone(book.Categories)
				books = append(books, book)
			}
		}
		return nil
	}).Error
	return books, err
}
