package inventory

import (
	"fmt"
	"time"

	"github.com/flowstock/backend/internal/domain/catalog"
	"github.com/flowstock/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Stock is one row of the stock ledger: the on-hand quantity of one item
// in one warehouse. The (warehouse, item type, item id) triple is unique,
// so there is at most one row per item per warehouse.
//
// The aggregate version backs a compare-and-swap on every write, which is
// what protects concurrent sales of overlapping bundles from losing updates.
type Stock struct {
	shared.BaseAggregateRoot
	WarehouseID uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_stock_warehouse_item,priority:1"`
	ItemType    catalog.ItemType `gorm:"type:varchar(10);not null;uniqueIndex:idx_stock_warehouse_item,priority:2"`
	ItemID      uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_stock_warehouse_item,priority:3"`
	Quantity    int64            `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Stock) TableName() string {
	return "stocks"
}

// NewStock creates a stock row for a warehouse-item pair
func NewStock(warehouseID uuid.UUID, ref catalog.ItemRef, quantity int64) (*Stock, error) {
	if warehouseID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_WAREHOUSE", "Warehouse ID cannot be empty")
	}
	if !ref.Type.IsValid() || ref.ID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ITEM_REF", "Stock requires a valid item reference")
	}
	if quantity < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Initial stock quantity cannot be negative")
	}

	return &Stock{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		WarehouseID:       warehouseID,
		ItemType:          ref.Type,
		ItemID:            ref.ID,
		Quantity:          quantity,
	}, nil
}

// Ref returns the item reference this stock row is keyed on
func (s *Stock) Ref() catalog.ItemRef {
	return catalog.ItemRef{Type: s.ItemType, ID: s.ItemID}
}

// SetQuantity overwrites the quantity with an absolute value.
// Negative values are rejected here; only a backorder sale may drive
// a quantity below zero.
func (s *Stock) SetQuantity(quantity int64) error {
	if quantity < 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Stock quantity cannot be set negative")
	}

	old := s.Quantity
	s.Quantity = quantity
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	s.AddDomainEvent(NewStockQuantitySetEvent(s, old))

	return nil
}

// Deduct subtracts the given amount. Without allowNegative the quantity
// must stay at or above zero; with it, the result may go negative and
// there is no floor clamp.
func (s *Stock) Deduct(amount int64, allowNegative bool) error {
	if amount <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Deduction amount must be positive")
	}

	newQuantity := s.Quantity - amount
	if newQuantity < 0 && !allowNegative {
		return shared.NewDomainError("INSUFFICIENT_STOCK",
			fmt.Sprintf("Cannot deduct %d from %d for item %s", amount, s.Quantity, s.Ref()))
	}

	old := s.Quantity
	s.Quantity = newQuantity
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	s.AddDomainEvent(NewStockDeductedEvent(s, old, amount))

	return nil
}

// Add increases the quantity by the given amount
func (s *Stock) Add(amount int64) error {
	if amount <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Addition amount must be positive")
	}

	old := s.Quantity
	s.Quantity += amount
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	s.AddDomainEvent(NewStockQuantitySetEvent(s, old))

	return nil
}
