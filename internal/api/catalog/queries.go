package catalogapi

import (
	"esim-store/internal/domain/catalog"

	"gorm.io/gorm"
)

func activePlansQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&catalog.Plan{}).Where("active = ?", true)
}

func categoriesQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&catalog.Category{}).Order("name ASC")
}

func categoryBySlugQuery(db *gorm.DB, slug string) *gorm.DB {
	return db.Model(&catalog.Category{}).Where("slug = ?", slug)
}
