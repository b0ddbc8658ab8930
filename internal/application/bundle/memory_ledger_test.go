package bundle

import (
	"context"

	"github.com/flowstock/backend/internal/domain/catalog"
	"github.com/flowstock/backend/internal/domain/inventory"
	"github.com/flowstock/backend/internal/domain/shared"
	"github.com/google/uuid"
)

type ledgerKey struct {
	warehouseID uuid.UUID
	ref         catalog.ItemRef
}

// memStockLedger is an in-memory stock repository with copy-on-read
// semantics, close enough to a database for transactor tests. Errors can
// be injected per item to simulate mid-transaction write failures.
type memStockLedger struct {
	rows        map[ledgerKey]inventory.Stock
	failSaveFor map[catalog.ItemRef]error
}

func newMemStockLedger() *memStockLedger {
	return &memStockLedger{
		rows:        make(map[ledgerKey]inventory.Stock),
		failSaveFor: make(map[catalog.ItemRef]error),
	}
}

func (l *memStockLedger) seed(warehouseID uuid.UUID, ref catalog.ItemRef, quantity int64) {
	stock, err := inventory.NewStock(warehouseID, ref, quantity)
	if err != nil {
		panic(err)
	}
	l.rows[ledgerKey{warehouseID, ref}] = *stock
}

func (l *memStockLedger) snapshot() map[ledgerKey]inventory.Stock {
	copy := make(map[ledgerKey]inventory.Stock, len(l.rows))
	for k, v := range l.rows {
		copy[k] = v
	}
	return copy
}

func (l *memStockLedger) restore(snapshot map[ledgerKey]inventory.Stock) {
	l.rows = snapshot
}

func (l *memStockLedger) FindByKey(_ context.Context, warehouseID uuid.UUID, ref catalog.ItemRef) (*inventory.Stock, error) {
	row, ok := l.rows[ledgerKey{warehouseID, ref}]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &row, nil
}

func (l *memStockLedger) GetQuantity(_ context.Context, warehouseID uuid.UUID, ref catalog.ItemRef) (int64, error) {
	row, ok := l.rows[ledgerKey{warehouseID, ref}]
	if !ok {
		return 0, nil
	}
	return row.Quantity, nil
}

func (l *memStockLedger) FindByWarehouse(_ context.Context, warehouseID uuid.UUID, _ shared.Filter) ([]inventory.Stock, error) {
	var out []inventory.Stock
	for k, v := range l.rows {
		if k.warehouseID == warehouseID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (l *memStockLedger) FindByItem(_ context.Context, ref catalog.ItemRef) ([]inventory.Stock, error) {
	var out []inventory.Stock
	for k, v := range l.rows {
		if k.ref == ref {
			out = append(out, v)
		}
	}
	return out, nil
}

func (l *memStockLedger) Save(_ context.Context, stock *inventory.Stock) error {
	l.rows[ledgerKey{stock.WarehouseID, stock.Ref()}] = *stock
	return nil
}

func (l *memStockLedger) SaveWithLock(_ context.Context, stock *inventory.Stock) error {
	if err, ok := l.failSaveFor[stock.Ref()]; ok {
		return err
	}
	l.rows[ledgerKey{stock.WarehouseID, stock.Ref()}] = *stock
	return nil
}

func (l *memStockLedger) GetOrCreate(_ context.Context, warehouseID uuid.UUID, ref catalog.ItemRef) (*inventory.Stock, error) {
	key := ledgerKey{warehouseID, ref}
	if row, ok := l.rows[key]; ok {
		return &row, nil
	}
	stock, err := inventory.NewStock(warehouseID, ref, 0)
	if err != nil {
		return nil, err
	}
	l.rows[key] = *stock
	return stock, nil
}

func (l *memStockLedger) Delete(_ context.Context, id uuid.UUID) error {
	for k, v := range l.rows {
		if v.ID == id {
			delete(l.rows, k)
			return nil
		}
	}
	return shared.ErrNotFound
}

func (l *memStockLedger) DeleteByItem(_ context.Context, ref catalog.ItemRef) error {
	for k := range l.rows {
		if k.ref == ref {
			delete(l.rows, k)
		}
	}
	return nil
}

func (l *memStockLedger) CountByWarehouse(_ context.Context, warehouseID uuid.UUID) (int64, error) {
	var n int64
	for k := range l.rows {
		if k.warehouseID == warehouseID {
			n++
		}
	}
	return n, nil
}

var _ inventory.StockRepository = (*memStockLedger)(nil)

// memTxScope wraps the ledger with snapshot-restore transaction
// semantics: a failing function leaves the ledger untouched
type memTxScope struct {
	ledger *memStockLedger
}

func (s *memTxScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	snapshot := s.ledger.snapshot()
	if err := fn(s); err != nil {
		s.ledger.restore(snapshot)
		return err
	}
	return nil
}

func (s *memTxScope) StockRepo() inventory.StockRepository {
	return s.ledger
}

var _ TransactionScope = (*memTxScope)(nil)
var _ TransactionalRepositories = (*memTxScope)(nil)
