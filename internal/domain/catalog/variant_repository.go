package catalog

import (
	"context"

	"github.com/flowstock/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// VariantRepository defines the interface for product variant persistence
type VariantRepository interface {
	// FindByID finds a variant by its ID with attributes loaded
	FindByID(ctx context.Context, id uuid.UUID) (*ProductVariant, error)

	// FindBySKU finds a variant by its globally unique SKU
	FindBySKU(ctx context.Context, sku string) (*ProductVariant, error)

	// FindByProduct finds all variants of a product, attributes loaded
	FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]ProductVariant, error)

	// Save creates or updates a single variant with its attributes
	Save(ctx context.Context, variant *ProductVariant) error

	// SaveBatch persists a batch of generated variants with their
	// attributes. The whole batch is written in the ambient transaction;
	// a SKU collision fails the entire batch.
	SaveBatch(ctx context.Context, variants []*ProductVariant) error

	// Delete deletes a variant and its attributes
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByProduct counts the variants of a product
	CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error)

	// ExistsBySKU checks if any variant carries the given SKU
	ExistsBySKU(ctx context.Context, sku string) (bool, error)
}
