package bundle

import (
	"context"

	"github.com/flowstock/backend/internal/domain/inventory"
)

// TransactionScope provides transactional access to the stock ledger.
// Every deduction of a sale runs inside one Execute call; either all
// component rows are written or none are.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to inventory repositories
// scoped to the current transaction
type TransactionalRepositories interface {
	// StockRepo returns the stock repository scoped to the current transaction
	StockRepo() inventory.StockRepository
}

// NoOpTransactionScope runs the function without a real transaction.
// Useful for tests and in-memory setups.
type NoOpTransactionScope struct {
	stockRepo inventory.StockRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories
func NewNoOpTransactionScope(stockRepo inventory.StockRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{stockRepo: stockRepo}
}

// Execute runs the function without transaction boundaries
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// StockRepo returns the stock repository
func (s *NoOpTransactionScope) StockRepo() inventory.StockRepository {
	return s.stockRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
