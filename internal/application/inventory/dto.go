package inventory

import (
	"time"

	"github.com/flowstock/backend/internal/domain/inventory"
	"github.com/google/uuid"
)

// SetQuantityRequest represents an absolute stock level assignment
type SetQuantityRequest struct {
	WarehouseID uuid.UUID `json:"warehouse_id" binding:"required"`
	ItemType    string    `json:"item_type" binding:"required,oneof=product variant"`
	ItemID      uuid.UUID `json:"item_id" binding:"required"`
	Quantity    int64     `json:"quantity" binding:"min=0"`
}

// StockResponse represents a stock ledger row in API responses
type StockResponse struct {
	ID          uuid.UUID `json:"id"`
	WarehouseID uuid.UUID `json:"warehouse_id"`
	ItemType    string    `json:"item_type"`
	ItemID      uuid.UUID `json:"item_id"`
	Quantity    int64     `json:"quantity"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// QuantityResponse represents a point quantity lookup
type QuantityResponse struct {
	WarehouseID uuid.UUID `json:"warehouse_id"`
	ItemType    string    `json:"item_type"`
	ItemID      uuid.UUID `json:"item_id"`
	Quantity    int64     `json:"quantity"`
}

// CreateWarehouseRequest represents a warehouse creation request
type CreateWarehouseRequest struct {
	Name     string `json:"name" binding:"required,max=200"`
	Location string `json:"location" binding:"max=500"`
}

// UpdateWarehouseRequest represents a warehouse update request
type UpdateWarehouseRequest struct {
	Name     *string `json:"name,omitempty"`
	Location *string `json:"location,omitempty"`
	Active   *bool   `json:"active,omitempty"`
}

// WarehouseResponse represents a warehouse in API responses
type WarehouseResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToStockResponse converts a Stock aggregate to its response form
func ToStockResponse(stock *inventory.Stock) *StockResponse {
	return &StockResponse{
		ID:          stock.ID,
		WarehouseID: stock.WarehouseID,
		ItemType:    string(stock.ItemType),
		ItemID:      stock.ItemID,
		Quantity:    stock.Quantity,
		UpdatedAt:   stock.UpdatedAt,
	}
}

// ToWarehouseResponse converts a Warehouse aggregate to its response form
func ToWarehouseResponse(warehouse *inventory.Warehouse) *WarehouseResponse {
	return &WarehouseResponse{
		ID:        warehouse.ID,
		Name:      warehouse.Name,
		Location:  warehouse.Location,
		Active:    warehouse.Active,
		CreatedAt: warehouse.CreatedAt,
		UpdatedAt: warehouse.UpdatedAt,
	}
}
