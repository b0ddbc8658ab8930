package persistence

import (
	"context"
	"testing"

	"github.com/flowstock/backend/internal/domain/catalog"
	"github.com/flowstock/backend/internal/domain/inventory"
	"github.com/flowstock/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupStockTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&inventory.Stock{}))
	return db
}

func TestGormStockRepository_SaveAndFind(t *testing.T) {
	db := setupStockTestDB(t)
	repo := NewGormStockRepository(db)
	ctx := context.Background()

	warehouseID := uuid.New()
	ref := catalog.ProductRef(uuid.New())

	stock, err := inventory.NewStock(warehouseID, ref, 50)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, stock))

	t.Run("finds by key", func(t *testing.T) {
		found, err := repo.FindByKey(ctx, warehouseID, ref)
		require.NoError(t, err)
		assert.Equal(t, stock.ID, found.ID)
		assert.Equal(t, int64(50), found.Quantity)
	})

	t.Run("missing key yields not found", func(t *testing.T) {
		_, err := repo.FindByKey(ctx, warehouseID, catalog.VariantRef(uuid.New()))
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("quantity for existing row", func(t *testing.T) {
		qty, err := repo.GetQuantity(ctx, warehouseID, ref)
		require.NoError(t, err)
		assert.Equal(t, int64(50), qty)
	})

	t.Run("quantity defaults to zero for missing row", func(t *testing.T) {
		qty, err := repo.GetQuantity(ctx, uuid.New(), ref)
		require.NoError(t, err)
		assert.Zero(t, qty)
	})
}

func TestGormStockRepository_SaveWithLock(t *testing.T) {
	db := setupStockTestDB(t)
	repo := NewGormStockRepository(db)
	ctx := context.Background()

	warehouseID := uuid.New()
	ref := catalog.ProductRef(uuid.New())
	stock, err := inventory.NewStock(warehouseID, ref, 100)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, stock))

	t.Run("persists when version matches", func(t *testing.T) {
		loaded, err := repo.FindByKey(ctx, warehouseID, ref)
		require.NoError(t, err)
		require.NoError(t, loaded.Deduct(10, false))
		require.NoError(t, repo.SaveWithLock(ctx, loaded))

		reloaded, err := repo.FindByKey(ctx, warehouseID, ref)
		require.NoError(t, err)
		assert.Equal(t, int64(90), reloaded.Quantity)
		assert.Equal(t, loaded.Version, reloaded.Version)
	})

	t.Run("stale writer loses", func(t *testing.T) {
		first, err := repo.FindByKey(ctx, warehouseID, ref)
		require.NoError(t, err)
		second, err := repo.FindByKey(ctx, warehouseID, ref)
		require.NoError(t, err)

		require.NoError(t, first.Deduct(5, false))
		require.NoError(t, repo.SaveWithLock(ctx, first))

		require.NoError(t, second.Deduct(5, false))
		err = repo.SaveWithLock(ctx, second)
		assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)

		reloaded, err := repo.FindByKey(ctx, warehouseID, ref)
		require.NoError(t, err)
		assert.Equal(t, int64(85), reloaded.Quantity)
	})
}

func TestGormStockRepository_GetOrCreate(t *testing.T) {
	db := setupStockTestDB(t)
	repo := NewGormStockRepository(db)
	ctx := context.Background()

	warehouseID := uuid.New()
	ref := catalog.VariantRef(uuid.New())

	t.Run("creates zero-quantity row when missing", func(t *testing.T) {
		stock, err := repo.GetOrCreate(ctx, warehouseID, ref)
		require.NoError(t, err)
		assert.Zero(t, stock.Quantity)

		found, err := repo.FindByKey(ctx, warehouseID, ref)
		require.NoError(t, err)
		assert.Equal(t, stock.ID, found.ID)
	})

	t.Run("returns existing row on second call", func(t *testing.T) {
		first, err := repo.GetOrCreate(ctx, warehouseID, ref)
		require.NoError(t, err)
		second, err := repo.GetOrCreate(ctx, warehouseID, ref)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)

		count, err := repo.CountByWarehouse(ctx, warehouseID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func TestGormStockRepository_DeleteByItem(t *testing.T) {
	db := setupStockTestDB(t)
	repo := NewGormStockRepository(db)
	ctx := context.Background()

	ref := catalog.ProductRef(uuid.New())
	other := catalog.ProductRef(uuid.New())

	for i := 0; i < 3; i++ {
		stock, err := inventory.NewStock(uuid.New(), ref, 10)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, stock))
	}
	kept, err := inventory.NewStock(uuid.New(), other, 7)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, kept))

	require.NoError(t, repo.DeleteByItem(ctx, ref))

	rows, err := repo.FindByItem(ctx, ref)
	require.NoError(t, err)
	assert.Empty(t, rows)

	remaining, err := repo.FindByItem(ctx, other)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestGormStockRepository_FindByWarehouse(t *testing.T) {
	db := setupStockTestDB(t)
	repo := NewGormStockRepository(db)
	ctx := context.Background()

	warehouseID := uuid.New()
	for i := 0; i < 5; i++ {
		stock, err := inventory.NewStock(warehouseID, catalog.ProductRef(uuid.New()), int64(i))
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, stock))
	}

	t.Run("paginates", func(t *testing.T) {
		rows, err := repo.FindByWarehouse(ctx, warehouseID, shared.Filter{Page: 1, PageSize: 2})
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("zero filter returns every row", func(t *testing.T) {
		rows, err := repo.FindByWarehouse(ctx, warehouseID, shared.Filter{})
		require.NoError(t, err)
		assert.Len(t, rows, 5)
	})
}
