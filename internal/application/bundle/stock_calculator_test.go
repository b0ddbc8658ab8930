package bundle

import (
	"context"
	"testing"

	"github.com/flowstock/backend/internal/domain/catalog"
	"github.com/flowstock/backend/internal/domain/inventory"
	"github.com/flowstock/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bundleComponent struct {
	name     string
	required int64
	avail    int64
}

// calculatorFixture builds a bundle, a warehouse and a seeded ledger for
// the given components
func calculatorFixture(t *testing.T, components []bundleComponent) (*catalog.Bundle, *inventory.Warehouse, *memStockLedger, *StockCalculator) {
	t.Helper()

	bundle, err := catalog.NewBundle("Gift Set", "", decimal.NewFromInt(100))
	require.NoError(t, err)
	warehouse, err := inventory.NewWarehouse("Main", "")
	require.NoError(t, err)

	ledger := newMemStockLedger()
	for _, c := range components {
		ref := catalog.ProductRef(uuid.New())
		require.NoError(t, bundle.AddItem(ref, c.name, c.required))
		if c.avail != 0 {
			ledger.seed(warehouse.ID, ref, c.avail)
		}
	}

	bundleRepo := new(MockBundleRepository)
	bundleRepo.On("FindByID", mock.Anything, bundle.ID).Return(bundle, nil)
	warehouseRepo := new(MockWarehouseRepository)
	warehouseRepo.On("FindByID", mock.Anything, warehouse.ID).Return(warehouse, nil)

	return bundle, warehouse, ledger, NewStockCalculator(bundleRepo, warehouseRepo, ledger)
}

func TestStockCalculatorCalculate(t *testing.T) {
	t.Run("reports minimum across components with single bottleneck", func(t *testing.T) {
		bundle, warehouse, _, calc := calculatorFixture(t, []bundleComponent{
			{"Mug", 1, 50},
			{"Coaster", 1, 15},
			{"Spoon", 2, 100},
		})

		resp, err := calc.Calculate(context.Background(), bundle.ID, warehouse.ID)
		require.NoError(t, err)

		assert.Equal(t, int64(15), resp.MaxAvailableBundles)
		require.Len(t, resp.Items, 3)
		assert.Equal(t, int64(50), resp.Items[0].PossibleBundles)
		assert.False(t, resp.Items[0].IsBottleneck)
		assert.Equal(t, int64(15), resp.Items[1].PossibleBundles)
		assert.True(t, resp.Items[1].IsBottleneck)
		assert.Equal(t, int64(50), resp.Items[2].PossibleBundles)
		assert.False(t, resp.Items[2].IsBottleneck)

		assert.Contains(t, resp.Explanation, "can be sold 15 times")
		assert.Contains(t, resp.Explanation, "Coaster (15 available, 1 required)")
		assert.NotContains(t, resp.Explanation, "Mug")
	})

	t.Run("flags every tied component as bottleneck", func(t *testing.T) {
		bundle, warehouse, _, calc := calculatorFixture(t, []bundleComponent{
			{"Mug", 1, 10},
			{"Coaster", 2, 20},
			{"Spoon", 1, 99},
		})

		resp, err := calc.Calculate(context.Background(), bundle.ID, warehouse.ID)
		require.NoError(t, err)

		assert.Equal(t, int64(10), resp.MaxAvailableBundles)
		assert.True(t, resp.Items[0].IsBottleneck)
		assert.True(t, resp.Items[1].IsBottleneck)
		assert.False(t, resp.Items[2].IsBottleneck)
		assert.Contains(t, resp.Explanation, "Mug (10 available, 1 required)")
		assert.Contains(t, resp.Explanation, "Coaster (20 available, 2 required)")
	})

	t.Run("missing stock row counts as zero", func(t *testing.T) {
		bundle, warehouse, _, calc := calculatorFixture(t, []bundleComponent{
			{"Mug", 1, 30},
			{"Coaster", 1, 0}, // no stock row seeded
		})

		resp, err := calc.Calculate(context.Background(), bundle.ID, warehouse.ID)
		require.NoError(t, err)

		assert.Equal(t, int64(0), resp.MaxAvailableBundles)
		assert.Equal(t, int64(0), resp.Items[1].Available)
		assert.True(t, resp.Items[1].IsBottleneck)
	})

	t.Run("is idempotent with no intervening writes", func(t *testing.T) {
		bundle, warehouse, _, calc := calculatorFixture(t, []bundleComponent{
			{"Mug", 1, 50},
			{"Coaster", 3, 15},
		})

		first, err := calc.Calculate(context.Background(), bundle.ID, warehouse.ID)
		require.NoError(t, err)
		second, err := calc.Calculate(context.Background(), bundle.ID, warehouse.ID)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("unknown bundle yields not found", func(t *testing.T) {
		bundleRepo := new(MockBundleRepository)
		bundleRepo.On("FindByID", mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)
		calc := NewStockCalculator(bundleRepo, new(MockWarehouseRepository), newMemStockLedger())

		_, err := calc.Calculate(context.Background(), uuid.New(), uuid.New())
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
	})

	t.Run("unknown warehouse yields not found", func(t *testing.T) {
		bundle, err := catalog.NewBundle("Gift Set", "", decimal.NewFromInt(10))
		require.NoError(t, err)
		bundleRepo := new(MockBundleRepository)
		bundleRepo.On("FindByID", mock.Anything, bundle.ID).Return(bundle, nil)
		warehouseRepo := new(MockWarehouseRepository)
		warehouseRepo.On("FindByID", mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)

		calc := NewStockCalculator(bundleRepo, warehouseRepo, newMemStockLedger())
		_, err = calc.Calculate(context.Background(), bundle.ID, uuid.New())
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
	})
}
