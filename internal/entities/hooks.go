package entities

import "gorm.io/gorm"

// Slice columns are stored as JSON; saving nil would persist "null".

func (b *Book) BeforeSave(*gorm.DB) error {
	if b.Categories == nil {
		b.Categories = []string{}
	}
	return nil
}

func (p *UserPreferences) BeforeSave(*gorm.DB) error {
	if p.PreferredCategories == nil {
		p.PreferredCategories = []string{}
	}
	if p.PreferredAgeRanges == nil {
		p.PreferredAgeRanges = []string{}
	}
	return nil
}
