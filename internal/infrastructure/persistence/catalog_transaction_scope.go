package persistence

import (
	"context"

	appcatalog "github.com/flowstock/backend/internal/application/catalog"
	"github.com/flowstock/backend/internal/domain/catalog"
	"github.com/flowstock/backend/internal/domain/inventory"
	"gorm.io/gorm"
)

// GormCatalogTransactionScope implements the catalog TransactionScope
// using GORM transactions. Variant generation writes its whole batch
// through one transaction so a mid-batch failure leaves nothing behind,
// and product deletion removes the product and its stock rows as a unit.
type GormCatalogTransactionScope struct {
	db *gorm.DB
}

// NewGormCatalogTransactionScope creates a new GormCatalogTransactionScope
func NewGormCatalogTransactionScope(db *gorm.DB) *GormCatalogTransactionScope {
	return &GormCatalogTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormCatalogTransactionScope) Execute(ctx context.Context, fn func(repos appcatalog.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormCatalogRepositories{tx: tx})
	})
}

// gormCatalogRepositories provides catalog repositories scoped to one transaction
type gormCatalogRepositories struct {
	tx *gorm.DB
}

// ProductRepo returns the product repository scoped to the current transaction
func (r *gormCatalogRepositories) ProductRepo() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

// VariantRepo returns the variant repository scoped to the current transaction
func (r *gormCatalogRepositories) VariantRepo() catalog.VariantRepository {
	return NewGormVariantRepository(r.tx)
}

// StockRepo returns the stock repository scoped to the current transaction
func (r *gormCatalogRepositories) StockRepo() inventory.StockRepository {
	return NewGormStockRepository(r.tx)
}

var _ appcatalog.TransactionScope = (*GormCatalogTransactionScope)(nil)
var _ appcatalog.TransactionalRepositories = (*gormCatalogRepositories)(nil)
