package database

import (
	"context"

	"github.com/jenaralee/StoryStash/internal/entities"
)

func (d *Database) CreateNotification(ctx context.Context, notification *entities.Notification) (*entities.Notification, error) {
	created := *notification
	created.ID = 0
	created.IsRead = false
	if created.Type == "" {
		created.Type = entities.NotificationTypeSystem
	}
	if err := d.DB.WithContext(ctx).Create(&created).Error; err != nil {
		return nil, err
	}
	return &created, nil
}

func (d *Database) GetNotifications(ctx context.Context, userID uint) ([]entities.Notification, error) {
	notifications := make([]entities.Notification, 0)
	err := d.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&notifications).Error
	return notifications, err
}

func (d *Database) GetUnreadNotificationCount(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := d.DB.WithContext(ctx).Model(&entities.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

func (d *Database) MarkNotificationRead(ctx context.Context, userID, id uint) (bool, error) {
	result := d.DB.WithContext(ctx).Model(&entities.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (d *Database) MarkAllNotificationsRead(ctx context.Context, userID uint) (int64, error) {
	result := d.DB.WithContext(ctx).Model(&entities.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}
