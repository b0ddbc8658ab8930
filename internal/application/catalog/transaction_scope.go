package catalog

import (
	"context"

	"github.com/flowstock/backend/internal/domain/catalog"
	"github.com/flowstock/backend/internal/domain/inventory"
)

// TransactionScope provides transactional access to catalog repositories.
// Repository operations performed inside Execute share one database
// transaction and commit or roll back as a unit.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to catalog repositories
// scoped to the current transaction
type TransactionalRepositories interface {
	// ProductRepo returns the product repository scoped to the current transaction
	ProductRepo() catalog.ProductRepository
	// VariantRepo returns the variant repository scoped to the current transaction
	VariantRepo() catalog.VariantRepository
	// StockRepo returns the stock repository scoped to the current transaction
	StockRepo() inventory.StockRepository
}

// NoOpTransactionScope runs the function without a real transaction.
// Useful for tests and in-memory setups.
type NoOpTransactionScope struct {
	productRepo catalog.ProductRepository
	variantRepo catalog.VariantRepository
	stockRepo   inventory.StockRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories
func NewNoOpTransactionScope(
	productRepo catalog.ProductRepository,
	variantRepo catalog.VariantRepository,
	stockRepo inventory.StockRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		productRepo: productRepo,
		variantRepo: variantRepo,
		stockRepo:   stockRepo,
	}
}

// Execute runs the function without transaction boundaries
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// ProductRepo returns the product repository
func (s *NoOpTransactionScope) ProductRepo() catalog.ProductRepository {
	return s.productRepo
}

// VariantRepo returns the variant repository
func (s *NoOpTransactionScope) VariantRepo() catalog.VariantRepository {
	return s.variantRepo
}

// StockRepo returns the stock repository
func (s *NoOpTransactionScope) StockRepo() inventory.StockRepository {
	return s.stockRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
