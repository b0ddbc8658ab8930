package persistence

import (
	"context"
	"errors"

	"github.com/flowstock/backend/internal/domain/catalog"
	"github.com/flowstock/backend/internal/domain/inventory"
	"github.com/flowstock/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStockRepository implements StockRepository using GORM
type GormStockRepository struct {
	db *gorm.DB
}

// NewGormStockRepository creates a new GormStockRepository
func NewGormStockRepository(db *gorm.DB) *GormStockRepository {
	return &GormStockRepository{db: db}
}

// FindByKey finds the stock row for a warehouse-item pair
func (r *GormStockRepository) FindByKey(ctx context.Context, warehouseID uuid.UUID, ref catalog.ItemRef) (*inventory.Stock, error) {
	var stock inventory.Stock
	if err := r.db.WithContext(ctx).
		Where("warehouse_id = ? AND item_type = ? AND item_id = ?", warehouseID, ref.Type, ref.ID).
		First(&stock).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &stock, nil
}

// GetQuantity returns the quantity for a warehouse-item pair, defaulting
// to 0 when no stock row exists
func (r *GormStockRepository) GetQuantity(ctx context.Context, warehouseID uuid.UUID, ref catalog.ItemRef) (int64, error) {
	stock, err := r.FindByKey(ctx, warehouseID, ref)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return stock.Quantity, nil
}

// FindByWarehouse finds all stock rows in a warehouse
func (r *GormStockRepository) FindByWarehouse(ctx context.Context, warehouseID uuid.UUID, filter shared.Filter) ([]inventory.Stock, error) {
	var stocks []inventory.Stock
	query := r.db.WithContext(ctx).
		Model(&inventory.Stock{}).
		Where("warehouse_id = ?", warehouseID)
	query = applyOrdering(query, filter, []string{"quantity", "updated_at"}, "item_type ASC, item_id ASC")
	query = applyPagination(query, filter)

	if err := query.Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}

// FindByItem finds all stock rows for an item across warehouses
func (r *GormStockRepository) FindByItem(ctx context.Context, ref catalog.ItemRef) ([]inventory.Stock, error) {
	var stocks []inventory.Stock
	if err := r.db.WithContext(ctx).
		Where("item_type = ? AND item_id = ?", ref.Type, ref.ID).
		Order("warehouse_id ASC").
		Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}

// Save creates or updates a stock row
func (r *GormStockRepository) Save(ctx context.Context, stock *inventory.Stock) error {
	return r.db.WithContext(ctx).Save(stock).Error
}

// SaveWithLock saves with optimistic locking. The update only matches the
// row at the version the aggregate was loaded at; zero rows affected means
// another writer got there first.
func (r *GormStockRepository) SaveWithLock(ctx context.Context, stock *inventory.Stock) error {
	result := r.db.WithContext(ctx).
		Model(stock).
		Where("id = ? AND version = ?", stock.ID, stock.Version-1).
		Updates(map[string]interface{}{
			"quantity":   stock.Quantity,
			"version":    stock.Version,
			"updated_at": stock.UpdatedAt,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// GetOrCreate returns the stock row for the pair, creating a zero-quantity
// row when none exists
func (r *GormStockRepository) GetOrCreate(ctx context.Context, warehouseID uuid.UUID, ref catalog.ItemRef) (*inventory.Stock, error) {
	stock, err := r.FindByKey(ctx, warehouseID, ref)
	if err == nil {
		return stock, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	stock, err = inventory.NewStock(warehouseID, ref, 0)
	if err != nil {
		return nil, err
	}

	// ON CONFLICT handles the race where two callers create the same row
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "warehouse_id"}, {Name: "item_type"}, {Name: "item_id"}},
			DoNothing: true,
		}).
		Create(stock)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return r.FindByKey(ctx, warehouseID, ref)
	}

	return stock, nil
}

// Delete deletes a stock row
func (r *GormStockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&inventory.Stock{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteByItem deletes all stock rows for an item across warehouses
func (r *GormStockRepository) DeleteByItem(ctx context.Context, ref catalog.ItemRef) error {
	return r.db.WithContext(ctx).
		Delete(&inventory.Stock{}, "item_type = ? AND item_id = ?", ref.Type, ref.ID).Error
}

// CountByWarehouse counts stock rows in a warehouse
func (r *GormStockRepository) CountByWarehouse(ctx context.Context, warehouseID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&inventory.Stock{}).
		Where("warehouse_id = ?", warehouseID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormStockRepository implements StockRepository
var _ inventory.StockRepository = (*GormStockRepository)(nil)
