package inventory

import (
	"context"

	"github.com/flowstock/backend/internal/domain/catalog"
	"github.com/flowstock/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// StockRepository defines the interface for stock ledger persistence
type StockRepository interface {
	// FindByKey finds the stock row for a warehouse-item pair.
	// Returns shared.ErrNotFound when no row exists.
	FindByKey(ctx context.Context, warehouseID uuid.UUID, ref catalog.ItemRef) (*Stock, error)

	// GetQuantity returns the quantity for a warehouse-item pair,
	// defaulting to 0 when no stock row exists
	GetQuantity(ctx context.Context, warehouseID uuid.UUID, ref catalog.ItemRef) (int64, error)

	// FindByWarehouse finds all stock rows in a warehouse
	FindByWarehouse(ctx context.Context, warehouseID uuid.UUID, filter shared.Filter) ([]Stock, error)

	// FindByItem finds all stock rows for an item across warehouses
	FindByItem(ctx context.Context, ref catalog.ItemRef) ([]Stock, error)

	// Save creates or updates a stock row
	Save(ctx context.Context, stock *Stock) error

	// SaveWithLock saves with optimistic locking. Returns
	// shared.ErrConcurrencyConflict when the row changed underneath.
	SaveWithLock(ctx context.Context, stock *Stock) error

	// GetOrCreate returns the stock row for the pair, creating a
	// zero-quantity row when none exists
	GetOrCreate(ctx context.Context, warehouseID uuid.UUID, ref catalog.ItemRef) (*Stock, error)

	// Delete deletes a stock row
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByItem deletes all stock rows for an item across warehouses
	DeleteByItem(ctx context.Context, ref catalog.ItemRef) error

	// CountByWarehouse counts stock rows in a warehouse
	CountByWarehouse(ctx context.Context, warehouseID uuid.UUID) (int64, error)
}

// WarehouseRepository defines the interface for warehouse persistence
type WarehouseRepository interface {
	// FindByID finds a warehouse by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Warehouse, error)

	// FindByName finds a warehouse by its unique name
	FindByName(ctx context.Context, name string) (*Warehouse, error)

	// FindAll finds all warehouses matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Warehouse, error)

	// Save creates or updates a warehouse
	Save(ctx context.Context, warehouse *Warehouse) error

	// Delete deletes a warehouse
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts warehouses matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// ExistsByName checks if a warehouse with the given name exists
	ExistsByName(ctx context.Context, name string) (bool, error)
}
