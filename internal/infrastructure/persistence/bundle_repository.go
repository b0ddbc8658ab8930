package persistence

import (
	"context"
	"errors"

	"github.com/flowstock/backend/internal/domain/catalog"
	"github.com/flowstock/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormBundleRepository implements BundleRepository using GORM
type GormBundleRepository struct {
	db *gorm.DB
}

// NewGormBundleRepository creates a new GormBundleRepository
func NewGormBundleRepository(db *gorm.DB) *GormBundleRepository {
	return &GormBundleRepository{db: db}
}

// FindByID finds a bundle with its items by ID
func (r *GormBundleRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Bundle, error) {
	var bundle catalog.Bundle
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		First(&bundle, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &bundle, nil
}

// FindAll finds all bundles matching the filter
func (r *GormBundleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Bundle, error) {
	var bundles []catalog.Bundle
	query := r.db.WithContext(ctx).Model(&catalog.Bundle{})
	query = r.applySearch(query, filter)
	query = applyOrdering(query, filter, []string{"name", "price", "created_at"}, "created_at DESC")
	query = applyPagination(query, filter)

	if err := query.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("display_order ASC")
	}).Find(&bundles).Error; err != nil {
		return nil, err
	}
	return bundles, nil
}

// FindReferencing finds all bundles containing the given item
func (r *GormBundleRepository) FindReferencing(ctx context.Context, ref catalog.ItemRef) ([]catalog.Bundle, error) {
	var bundles []catalog.Bundle
	if err := r.db.WithContext(ctx).
		Joins("JOIN bundle_items ON bundle_items.bundle_id = bundles.id").
		Where("bundle_items.item_type = ? AND bundle_items.item_id = ?", ref.Type, ref.ID).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Find(&bundles).Error; err != nil {
		return nil, err
	}
	return bundles, nil
}

// Save creates or updates a bundle together with its items. Items removed
// from the aggregate are deleted so the row set mirrors the aggregate.
func (r *GormBundleRepository) Save(ctx context.Context, bundle *catalog.Bundle) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		keep := make([]uuid.UUID, 0, len(bundle.Items))
		for i := range bundle.Items {
			keep = append(keep, bundle.Items[i].ID)
		}

		query := tx.Where("bundle_id = ?", bundle.ID)
		if len(keep) > 0 {
			query = query.Where("id NOT IN ?", keep)
		}
		if err := query.Delete(&catalog.BundleItem{}).Error; err != nil {
			return err
		}

		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(bundle).Error
	})
}

// Delete deletes a bundle. Its items cascade at the database level.
func (r *GormBundleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Bundle{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts bundles matching the filter
func (r *GormBundleRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&catalog.Bundle{})
	query = r.applySearch(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsReferencing checks whether any bundle contains the given item
func (r *GormBundleRepository) ExistsReferencing(ctx context.Context, ref catalog.ItemRef) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.BundleItem{}).
		Where("item_type = ? AND item_id = ?", ref.Type, ref.ID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormBundleRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if active, ok := filter.Filters["active"]; ok {
		query = query.Where("active = ?", active)
	}
	return query
}

// Ensure GormBundleRepository implements BundleRepository
var _ catalog.BundleRepository = (*GormBundleRepository)(nil)
