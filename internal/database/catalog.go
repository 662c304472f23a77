package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/jenaralee/StoryStash/internal/entities"
	"github.com/jenaralee/StoryStash/internal/store"
)

// createUniqueByName inserts row unless another row already uses name.
func createUniqueByName[T any](ctx context.Context, db *gorm.DB, row *T, name string) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := firstOrNil[T](tx.Where("name = ?", name))
		if err != nil {
			return err
		}
		if existing != nil {
			return store.ErrConflict
		}
		return translate(tx.Create(row).Error)
	})
}

func (d *Database) CreateAuthor(ctx context.Context, author *entities.Author) (*entities.Author, error) {
	created := *author
	created.ID = 0
	if err := createUniqueByName(ctx, d.DB, &created, created.Name); err != nil {
		return nil, err
	}
	return &created, nil
}

func (d *Database) GetAuthor(ctx context.Context, id uint) (*entities.Author, error) {
	return firstOrNil[entities.Author](d.DB.WithContext(ctx).Where("id = ?", id))
}

func (d *Database) GetAuthorByName(ctx context.Context, name string) (*entities.Author, error) {
	return firstOrNil[entities.Author](d.DB.WithContext(ctx).Where("name = ?", name))
}

func (d *Database) ListAuthors(ctx context.Context) ([]entities.Author, error) {
	authors := make([]entities.Author, 0)
	err := d.DB.WithContext(ctx).Order("id ASC").Find(&authors).Error
	return authors, err
}

func (d *Database) CreateSeries(ctx context.Context, series *entities.BookSeries) (*entities.BookSeries, error) {
	created := *series
	created.ID = 0
	if err := createUniqueByName(ctx, d.DB, &created, created.Name); err != nil {
		return nil, err
	}
	return &created, nil
}

func (d *Database) GetSeries(ctx context.Context, id uint) (*entities.BookSeries, error) {
	return firstOrNil[entities.BookSeries](d.DB.WithContext(ctx).Where("id = ?", id))
}

func (d *Database) GetSeriesByName(ctx context.Context, name string) (*entities.BookSeries, error) {
	return firstOrNil[entities.BookSeries](d.DB.WithContext(ctx).Where("name = ?", name))
}

func (d *Database) ListSeries(ctx context.Context) ([]entities.BookSeries, error) {
	series := make([]entities.BookSeries, 0)
	err := d.DB.WithContext(ctx).Order("id ASC").Find(&series).Error
	return series, err
}
