package sync

import (
	"context"
	"errors"

	"esim-store/internal/domain/catalog"

	"gorm.io/gorm"
)

// Store is the persistence boundary of the sync engine. Plans upsert by
// SKU, categories by id; nothing is ever hard-deleted. ActivePlanSKUs is
// scoped to one provider so reconciling a WooCommerce run never touches
// plans the external plans API owns, and vice versa.
type Store interface {
	UpsertCategory(ctx context.Context, cat *catalog.Category) (created bool, err error)
	UpsertPlan(ctx context.Context, plan *catalog.Plan) (created bool, err error)
	ActivePlanSKUs(ctx context.Context, provider string) ([]string, error)
	DeactivatePlans(ctx context.Context, skus []string) (int64, error)
}

// GormStore implements Store on the application database.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) UpsertCategory(ctx context.Context, cat *catalog.Category) (bool, error) {
	var existing catalog.Category
	err := s.db.WithContext(ctx).Where("id = ?", cat.ID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true, s.db.WithContext(ctx).Create(cat).Error
	}
	if err != nil {
		return false, err
	}
	return false, s.db.WithContext(ctx).Save(cat).Error
}

func (s *GormStore) UpsertPlan(ctx context.Context, plan *catalog.Plan) (bool, error) {
	var existing catalog.Plan
	err := s.db.WithContext(ctx).Where("sku = ?", plan.SKU).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true, s.db.WithContext(ctx).Create(plan).Error
	}
	if err != nil {
		return false, err
	}

	// Keep the stored row id stable so cart/order line items that point at
	// it by id stay valid across syncs.
	plan.ID = existing.ID
	return false, s.db.WithContext(ctx).Save(plan).Error
}

func (s *GormStore) ActivePlanSKUs(ctx context.Context, provider string) ([]string, error) {
	var skus []string
	err := s.db.WithContext(ctx).
		Model(&catalog.Plan{}).
		Where("active = ? AND metadata->>'provider' = ?", true, provider).
		Pluck("sku", &skus).Error
	return skus, err
}

func (s *GormStore) DeactivatePlans(ctx context.Context, skus []string) (int64, error) {
	if len(skus) == 0 {
		return 0, nil
	}
	res := s.db.WithContext(ctx).
		Model(&catalog.Plan{}).
		Where("sku IN ? AND active = ?", skus, true).
		Update("active", false)
	return res.RowsAffected, res.Error
}
