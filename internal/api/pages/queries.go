package pagesapi

import (
	"landing-app/internal/domain/pages"

	"gorm.io/gorm"
)

// pageWithComposition loads everything the composer needs in one query:
// the page type, the campaign and the placements (with their items) already
// in render order.
func pageWithComposition(db *gorm.DB) *gorm.DB {
	return db.Model(&pages.LandingPage{}).
		Preload("PageType").
		Preload("Campaign").
		Preload("Placements", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC, created_at ASC, id ASC")
		}).
		Preload("Placements.Item")
}

func activePageBySlug(db *gorm.DB, slug string) (*pages.LandingPage, error) {
	var page pages.LandingPage
	err := pageWithComposition(db).
		First(&page, "slug = ? AND is_active = true", slug).Error
	if err != nil {
		return nil, err
	}
	return &page, nil
}
