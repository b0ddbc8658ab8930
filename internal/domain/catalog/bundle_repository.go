package catalog

import (
	"context"

	"github.com/flowstock/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BundleRepository defines the interface for bundle persistence
type BundleRepository interface {
	// FindByID finds a bundle with its items eagerly loaded,
	// ordered by display order
	FindByID(ctx context.Context, id uuid.UUID) (*Bundle, error)

	// FindAll finds all bundles matching the filter, items loaded
	FindAll(ctx context.Context, filter shared.Filter) ([]Bundle, error)

	// FindReferencing finds all bundles containing the given item
	FindReferencing(ctx context.Context, ref ItemRef) ([]Bundle, error)

	// Save creates or updates a bundle with its items
	Save(ctx context.Context, bundle *Bundle) error

	// Delete deletes a bundle and its items
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts bundles matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// ExistsReferencing checks if any bundle contains the given item
	ExistsReferencing(ctx context.Context, ref ItemRef) (bool, error)
}
