package persistence

import (
	"context"

	appbundle "github.com/flowstock/backend/internal/application/bundle"
	"github.com/flowstock/backend/internal/domain/inventory"
	"gorm.io/gorm"
)

// GormSaleTransactionScope implements the bundle TransactionScope using
// GORM transactions. A bundle sale deducts several stock rows; they
// commit or roll back as one unit.
type GormSaleTransactionScope struct {
	db *gorm.DB
}

// NewGormSaleTransactionScope creates a new GormSaleTransactionScope
func NewGormSaleTransactionScope(db *gorm.DB) *GormSaleTransactionScope {
	return &GormSaleTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormSaleTransactionScope) Execute(ctx context.Context, fn func(repos appbundle.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormSaleRepositories{tx: tx})
	})
}

// gormSaleRepositories provides inventory repositories scoped to one transaction
type gormSaleRepositories struct {
	tx *gorm.DB
}

// StockRepo returns the stock repository scoped to the current transaction
func (r *gormSaleRepositories) StockRepo() inventory.StockRepository {
	return NewGormStockRepository(r.tx)
}

var _ appbundle.TransactionScope = (*GormSaleTransactionScope)(nil)
var _ appbundle.TransactionalRepositories = (*gormSaleRepositories)(nil)
