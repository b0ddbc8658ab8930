package handler

import (
	"context"

	"github.com/flowstock/backend/internal/domain/catalog"
	"github.com/flowstock/backend/internal/domain/inventory"
	"github.com/flowstock/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository implements catalog.ProductRepository for testing
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.ProductMaster, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ProductMaster), args.Error(1)
}

func (m *MockProductRepository) FindByIDWithOptions(ctx context.Context, id uuid.UUID) (*catalog.ProductMaster, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ProductMaster), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.ProductMaster, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.ProductMaster), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.ProductMaster) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

// MockVariantRepository implements catalog.VariantRepository for testing
type MockVariantRepository struct {
	mock.Mock
}

func (m *MockVariantRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.ProductVariant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ProductVariant), args.Error(1)
}

func (m *MockVariantRepository) FindBySKU(ctx context.Context, sku string) (*catalog.ProductVariant, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ProductVariant), args.Error(1)
}

func (m *MockVariantRepository) FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]catalog.ProductVariant, error) {
	args := m.Called(ctx, productID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.ProductVariant), args.Error(1)
}

func (m *MockVariantRepository) Save(ctx context.Context, variant *catalog.ProductVariant) error {
	return m.Called(ctx, variant).Error(0)
}

func (m *MockVariantRepository) SaveBatch(ctx context.Context, variants []*catalog.ProductVariant) error {
	return m.Called(ctx, variants).Error(0)
}

func (m *MockVariantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockVariantRepository) CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVariantRepository) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	args := m.Called(ctx, sku)
	return args.Bool(0), args.Error(1)
}

// MockBundleRepository implements catalog.BundleRepository for testing
type MockBundleRepository struct {
	mock.Mock
}

func (m *MockBundleRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Bundle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Bundle), args.Error(1)
}

func (m *MockBundleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Bundle, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Bundle), args.Error(1)
}

func (m *MockBundleRepository) FindReferencing(ctx context.Context, ref catalog.ItemRef) ([]catalog.Bundle, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Bundle), args.Error(1)
}

func (m *MockBundleRepository) Save(ctx context.Context, bundle *catalog.Bundle) error {
	return m.Called(ctx, bundle).Error(0)
}

func (m *MockBundleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBundleRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBundleRepository) ExistsReferencing(ctx context.Context, ref catalog.ItemRef) (bool, error) {
	args := m.Called(ctx, ref)
	return args.Bool(0), args.Error(1)
}

// MockStockRepository implements inventory.StockRepository for testing
type MockStockRepository struct {
	mock.Mock
}

func (m *MockStockRepository) FindByKey(ctx context.Context, warehouseID uuid.UUID, ref catalog.ItemRef) (*inventory.Stock, error) {
	args := m.Called(ctx, warehouseID, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Stock), args.Error(1)
}

func (m *MockStockRepository) GetQuantity(ctx context.Context, warehouseID uuid.UUID, ref catalog.ItemRef) (int64, error) {
	args := m.Called(ctx, warehouseID, ref)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStockRepository) FindByWarehouse(ctx context.Context, warehouseID uuid.UUID, filter shared.Filter) ([]inventory.Stock, error) {
	args := m.Called(ctx, warehouseID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.Stock), args.Error(1)
}

func (m *MockStockRepository) FindByItem(ctx context.Context, ref catalog.ItemRef) ([]inventory.Stock, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.Stock), args.Error(1)
}

func (m *MockStockRepository) Save(ctx context.Context, stock *inventory.Stock) error {
	return m.Called(ctx, stock).Error(0)
}

func (m *MockStockRepository) SaveWithLock(ctx context.Context, stock *inventory.Stock) error {
	return m.Called(ctx, stock).Error(0)
}

func (m *MockStockRepository) GetOrCreate(ctx context.Context, warehouseID uuid.UUID, ref catalog.ItemRef) (*inventory.Stock, error) {
	args := m.Called(ctx, warehouseID, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Stock), args.Error(1)
}

func (m *MockStockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockStockRepository) DeleteByItem(ctx context.Context, ref catalog.ItemRef) error {
	return m.Called(ctx, ref).Error(0)
}

func (m *MockStockRepository) CountByWarehouse(ctx context.Context, warehouseID uuid.UUID) (int64, error) {
	args := m.Called(ctx, warehouseID)
	return args.Get(0).(int64), args.Error(1)
}

// MockWarehouseRepository implements inventory.WarehouseRepository for testing
type MockWarehouseRepository struct {
	mock.Mock
}

func (m *MockWarehouseRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Warehouse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) FindByName(ctx context.Context, name string) (*inventory.Warehouse, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.Warehouse, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) Save(ctx context.Context, warehouse *inventory.Warehouse) error {
	return m.Called(ctx, warehouse).Error(0)
}

func (m *MockWarehouseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockWarehouseRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWarehouseRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

// Interface conformance checks
var _ catalog.ProductRepository = (*MockProductRepository)(nil)
var _ catalog.VariantRepository = (*MockVariantRepository)(nil)
var _ catalog.BundleRepository = (*MockBundleRepository)(nil)
var _ inventory.StockRepository = (*MockStockRepository)(nil)
var _ inventory.WarehouseRepository = (*MockWarehouseRepository)(nil)
