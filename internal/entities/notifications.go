package entities

import "time"

type NotificationType string

const (
	NotificationTypeNewRelease NotificationType = "new_release"
	NotificationTypeSystem     NotificationType = "system"
)

// NewReleaseTitle prefixes every notification created by the matcher.
// Duplicate detection looks for it in existing titles.
const NewReleaseTitle = "New Book Release"

// Notification moves one way: created unread, then read.
type Notification struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	UserID    uint             `gorm:"index" json:"userId"`
	Title     string           `gorm:"size:256" json:"title"`
	Message   string           `gorm:"type:text" json:"message"`
	Type      NotificationType `gorm:"size:32" json:"type"`
	BookID    *uint            `gorm:"index" json:"bookId,omitempty"`
	IsRead    bool             `gorm:"default:false" json:"isRead"`
	CreatedAt time.Time        `json:"createdAt"`
}

func (Notification) TableName() string {
	return "notifications"
}
