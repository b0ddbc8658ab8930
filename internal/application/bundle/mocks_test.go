package bundle

import (
	"context"

	"github.com/flowstock/backend/internal/domain/catalog"
	"github.com/flowstock/backend/internal/domain/inventory"
	"github.com/flowstock/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockBundleRepository is a mock implementation of catalog.BundleRepository
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
	return args.Get(0).([]catalog.Bundle), args.Error(1)
}

func (m *MockBundleRepository) FindReferencing(ctx context.Context, ref catalog.ItemRef) ([]catalog.Bundle, error) {
	args := m.Called(ctx, ref)
	return args.Get(0).([]catalog.Bundle), args.Error(1)
}

func (m *MockBundleRepository) Save(ctx context.Context, bundle *catalog.Bundle) error {
	args := m.Called(ctx, bundle)
	return args.Error(0)
}

func (m *MockBundleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBundleRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBundleRepository) ExistsReferencing(ctx context.Context, ref catalog.ItemRef) (bool, error) {
	args := m.Called(ctx, ref)
	return args.Bool(0), args.Error(1)
}

// MockProductRepository is a mock implementation of catalog.ProductRepository
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
	return args.Get(0).([]catalog.ProductMaster), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.ProductMaster) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

// MockVariantRepository is a mock implementation of catalog.VariantRepository
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
	return args.Get(0).([]catalog.ProductVariant), args.Error(1)
}

func (m *MockVariantRepository) Save(ctx context.Context, variant *catalog.ProductVariant) error {
	args := m.Called(ctx, variant)
	return args.Error(0)
}

func (m *MockVariantRepository) SaveBatch(ctx context.Context, variants []*catalog.ProductVariant) error {
	args := m.Called(ctx, variants)
	return args.Error(0)
}

func (m *MockVariantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVariantRepository) CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVariantRepository) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	args := m.Called(ctx, sku)
	return args.Bool(0), args.Error(1)
}

// MockWarehouseRepository is a mock implementation of inventory.WarehouseRepository
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
	return args.Get(0).([]inventory.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) Save(ctx context.Context, warehouse *inventory.Warehouse) error {
	args := m.Called(ctx, warehouse)
	return args.Error(0)
}

func (m *MockWarehouseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWarehouseRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWarehouseRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

var _ catalog.BundleRepository = (*MockBundleRepository)(nil)
var _ catalog.ProductRepository = (*MockProductRepository)(nil)
var _ catalog.VariantRepository = (*MockVariantRepository)(nil)
var _ inventory.WarehouseRepository = (*MockWarehouseRepository)(nil)
