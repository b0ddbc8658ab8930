package catalog

import (
	"context"

	"github.com/flowstock/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductRepository defines the interface for product master persistence
type ProductRepository interface {
	// FindByID finds a product by its ID, without loading options
	FindByID(ctx context.Context, id uuid.UUID) (*ProductMaster, error)

	// FindByIDWithOptions finds a product with its options and their values
	// eagerly loaded, ordered by display order
	FindByIDWithOptions(ctx context.Context, id uuid.UUID) (*ProductMaster, error)

	// FindAll finds all products matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]ProductMaster, error)

	// Save creates or updates a product with its options
	Save(ctx context.Context, product *ProductMaster) error

	// Delete deletes a product. Options, their values and the product's
	// variants are removed with it.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts products matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// ExistsByName checks if a product with the given name exists
	ExistsByName(ctx context.Context, name string) (bool, error)
}
