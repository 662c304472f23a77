package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/jenaralee/StoryStash/internal/entities"
	"github.com/jenaralee/StoryStash/internal/store"
)

// CreateUser inserts the user and its default preferences in one transaction.
func (d *Database) CreateUser(ctx context.Context, user *entities.User) (*entities.User, error) {
	created := *user
	created.ID = 0

	err := d.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := firstOrNil[entities.User](tx.Where("username = ?", created.Username))
		if err != nil {
			return err
		}
		if existing != nil {
			return store.ErrConflict
		}

		if err := tx.Create(&created).Error; err != nil {
			return translate(err)
		}
		if err := tx.Create(entities.DefaultPreferences(created.ID)).Error; err != nil {
			return fmt.Errorf("create default preferences: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (d *Database) GetUser(ctx context.Context, id uint) (*entities.User, error) {
	return firstOrNil[entities.User](d.DB.WithContext(ctx).Where("id = ?", id))
}

func (d *Database) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	return firstOrNil[entities.User](d.DB.WithContext(ctx).Where("username = ?", username))
}

func (d *Database) ListUsers(ctx context.Context) ([]entities.User, error) {
	users := make([]entities.User, 0)
	err := d.DB.WithContext(ctx).Order("id ASC").Find(&users).Error
	return users, err
}

func (d *Database) GetUserPreferences(ctx context.Context, userID uint) (*entities.UserPreferences, error) {
	return firstOrNil[entities.UserPreferences](d.DB.WithContext(ctx).Where("user_id = ?", userID))
}

func (d *Database) UpdateUserPreferences(ctx context.Context, userID uint, update entities.PreferencesUpdate) (*entities.UserPreferences, error) {
	var prefs *entities.UserPreferences

	err := d.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := firstOrNil[entities.UserPreferences](tx.Where("user_id = ?", userID))
		if err != nil {
			return err
		}
		if existing == nil {
			existing = entities.DefaultPreferences(userID)
		}
		update.Apply(existing)
		prefs = existing
		return tx.Save(prefs).Error
	})
	if err != nil {
		return nil, err
	}
	return prefs, nil
}
