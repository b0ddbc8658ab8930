package inventory

import (
	"github.com/flowstock/backend/internal/domain/catalog"
	"github.com/flowstock/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant
const AggregateTypeStock = "Stock"

// Event type constants
const (
	EventTypeStockQuantitySet = "StockQuantitySet"
	EventTypeStockDeducted    = "StockDeducted"
)

// StockQuantitySetEvent is published when a stock quantity is written absolutely
type StockQuantitySetEvent struct {
	shared.BaseDomainEvent
	WarehouseID uuid.UUID        `json:"warehouse_id"`
	ItemType    catalog.ItemType `json:"item_type"`
	ItemID      uuid.UUID        `json:"item_id"`
	OldQuantity int64            `json:"old_quantity"`
	NewQuantity int64            `json:"new_quantity"`
}

// NewStockQuantitySetEvent creates a new StockQuantitySetEvent
func NewStockQuantitySetEvent(stock *Stock, oldQuantity int64) *StockQuantitySetEvent {
	return &StockQuantitySetEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockQuantitySet, AggregateTypeStock, stock.ID),
		WarehouseID:     stock.WarehouseID,
		ItemType:        stock.ItemType,
		ItemID:          stock.ItemID,
		OldQuantity:     oldQuantity,
		NewQuantity:     stock.Quantity,
	}
}

// StockDeductedEvent is published when stock is deducted by a sale
type StockDeductedEvent struct {
	shared.BaseDomainEvent
	WarehouseID uuid.UUID        `json:"warehouse_id"`
	ItemType    catalog.ItemType `json:"item_type"`
	ItemID      uuid.UUID        `json:"item_id"`
	Deducted    int64            `json:"deducted"`
	OldQuantity int64            `json:"old_quantity"`
	NewQuantity int64            `json:"new_quantity"`
}

// NewStockDeductedEvent creates a new StockDeductedEvent
func NewStockDeductedEvent(stock *Stock, oldQuantity, deducted int64) *StockDeductedEvent {
	return &StockDeductedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockDeducted, AggregateTypeStock, stock.ID),
		WarehouseID:     stock.WarehouseID,
		ItemType:        stock.ItemType,
		ItemID:          stock.ItemID,
		Deducted:        deducted,
		OldQuantity:     oldQuantity,
		NewQuantity:     stock.Quantity,
	}
}
