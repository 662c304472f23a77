package entities

import (
	"slices"
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:100" json:"username"`
	Password  string    `gorm:"size:255" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

func (User) TableName() string {
	return "users"
}

// UserPreferences holds the single preferences row owned by a user.
type UserPreferences struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	UserID               uint      `gorm:"uniqueIndex" json:"userId"`
	PreferredCategories  []string  `gorm:"serializer:json" json:"preferredCategories"`
	PreferredAgeRanges   []string  `gorm:"serializer:json" json:"preferredAgeRanges"`
	NotificationsEnabled bool      `json:"notificationsEnabled"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

func (UserPreferences) TableName() string {
	return "user_preferences"
}

// DefaultPreferences returns the row created alongside every new user.
func DefaultPreferences(userID uint) *UserPreferences {
	return &UserPreferences{
		UserID:               userID,
		PreferredCategories:  []string{},
		PreferredAgeRanges:   []string{},
		NotificationsEnabled: true,
	}
}

// PreferencesUpdate merges into existing preferences; nil fields are kept.
type PreferencesUpdate struct {
	PreferredCategories  *[]string `json:"preferredCategories,omitempty"`
	PreferredAgeRanges   *[]string `json:"preferredAgeRanges,omitempty"`
	NotificationsEnabled *bool     `json:"notificationsEnabled,omitempty"`
}

func (u PreferencesUpdate) Apply(prefs *UserPreferences) {
	if u.PreferredCategories != nil {
		prefs.PreferredCategories = slices.Clone(*u.PreferredCategories)
	}
	if u.PreferredAgeRanges != nil {
		prefs.PreferredAgeRanges = slices.Clone(*u.PreferredAgeRanges)
	}
	if u.NotificationsEnabled != nil {
		prefs.NotificationsEnabled = *u.NotificationsEnabled
	}
}
