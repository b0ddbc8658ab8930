package persistence

import (
	"context"
	"errors"

	"github.com/flowstock/backend/internal/domain/catalog"
	"github.com/flowstock/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormVariantRepository implements VariantRepository using GORM
type GormVariantRepository struct {
	db *gorm.DB
}

// NewGormVariantRepository creates a new GormVariantRepository
func NewGormVariantRepository(db *gorm.DB) *GormVariantRepository {
	return &GormVariantRepository{db: db}
}

// FindByID finds a variant with its attributes by ID
func (r *GormVariantRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.ProductVariant, error) {
	var variant catalog.ProductVariant
	if err := r.db.WithContext(ctx).
		Preload("Attributes").
		First(&variant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &variant, nil
}

// FindBySKU finds a variant by its unique SKU
func (r *GormVariantRepository) FindBySKU(ctx context.Context, sku string) (*catalog.ProductVariant, error) {
	var variant catalog.ProductVariant
	if err := r.db.WithContext(ctx).
		Preload("Attributes").
		First(&variant, "sku = ?", sku).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &variant, nil
}

// FindByProduct finds all variants of a product
func (r *GormVariantRepository) FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]catalog.ProductVariant, error) {
	var variants []catalog.ProductVariant
	query := r.db.WithContext(ctx).
		Model(&catalog.ProductVariant{}).
		Where("product_id = ?", productID).
		Preload("Attributes")
	query = applyOrdering(query, filter, []string{"sku", "price", "created_at"}, "sku ASC")
	query = applyPagination(query, filter)

	if err := query.Find(&variants).Error; err != nil {
		return nil, err
	}
	return variants, nil
}

// Save creates or updates a variant together with its attributes
func (r *GormVariantRepository) Save(ctx context.Context, variant *catalog.ProductVariant) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(variant).Error
}

// SaveBatch inserts freshly generated variants in one statement batch.
// The unique SKU index rejects the whole batch on any duplicate.
func (r *GormVariantRepository) SaveBatch(ctx context.Context, variants []*catalog.ProductVariant) error {
	if len(variants) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(variants, 100).Error
}

// Delete deletes a variant. Its attributes cascade at the database level.
func (r *GormVariantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.ProductVariant{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountByProduct counts variants of a product
func (r *GormVariantRepository) CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.ProductVariant{}).
		Where("product_id = ?", productID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsBySKU checks if a variant with the given SKU exists
func (r *GormVariantRepository) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.ProductVariant{}).
		Where("sku = ?", sku).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormVariantRepository implements VariantRepository
var _ catalog.VariantRepository = (*GormVariantRepository)(nil)
