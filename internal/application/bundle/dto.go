package bundle

import (
	"time"

	"github.com/flowstock/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateBundleRequest represents a request to create a bundle
type CreateBundleRequest struct {
	Name        string              `json:"name" binding:"required,min=1,max=200"`
	Description string              `json:"description" binding:"max=2000"`
	Price       decimal.Decimal     `json:"price" binding:"required"`
	Items       []BundleItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateBundleRequest represents a request to update a bundle's header.
// Items are managed through the dedicated item endpoints.
type UpdateBundleRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string          `json:"description" binding:"omitempty,max=2000"`
	Price       *decimal.Decimal `json:"price"`
}

// BundleItemRequest represents one component of a bundle
type BundleItemRequest struct {
	ItemType string    `json:"item_type" binding:"required,oneof=product variant"`
	ItemID   uuid.UUID `json:"item_id" binding:"required"`
	Quantity int64     `json:"quantity" binding:"required,gt=0"`
}

// SellBundleRequest represents a request to sell a bundle
type SellBundleRequest struct {
	WarehouseID    uuid.UUID `json:"warehouse_id" binding:"required"`
	Quantity       int64     `json:"quantity" binding:"required,gt=0"`
	AllowBackorder bool      `json:"allow_backorder"`
}

// BundleResponse represents a bundle in API responses
type BundleResponse struct {
	ID          uuid.UUID            `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Price       decimal.Decimal      `json:"price"`
	Active      bool                 `json:"active"`
	Items       []BundleItemResponse `json:"items"`
	Version     int                  `json:"version"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// BundleItemResponse represents a bundle component in API responses
type BundleItemResponse struct {
	ItemType         string    `json:"item_type"`
	ItemID           uuid.UUID `json:"item_id"`
	ItemName         string    `json:"item_name"`
	RequiredQuantity int64     `json:"required_quantity"`
}

// ComponentStock reports the availability of one bundle component
type ComponentStock struct {
	ItemType         string    `json:"item_type"`
	ItemID           uuid.UUID `json:"item_id"`
	ItemName         string    `json:"item_name"`
	RequiredQuantity int64     `json:"required_quantity"`
	Available        int64     `json:"available"`
	PossibleBundles  int64     `json:"possible_bundles"`
	IsBottleneck     bool      `json:"is_bottleneck"`
}

// StockCalculationResponse reports bundle availability in a warehouse
type StockCalculationResponse struct {
	BundleID            uuid.UUID        `json:"bundle_id"`
	BundleName          string           `json:"bundle_name"`
	WarehouseID         uuid.UUID        `json:"warehouse_id"`
	MaxAvailableBundles int64            `json:"max_available_bundles"`
	Items               []ComponentStock `json:"items"`
	Explanation         string           `json:"explanation"`
}

// SaleItemAudit records the before and after stock of one component
type SaleItemAudit struct {
	ItemType         string    `json:"item_type"`
	ItemID           uuid.UUID `json:"item_id"`
	ItemName         string    `json:"item_name"`
	RequiredQuantity int64     `json:"required_quantity"`
	Deducted         int64     `json:"deducted"`
	StockBefore      int64     `json:"stock_before"`
	StockAfter       int64     `json:"stock_after"`
}

// SellBundleResponse reports the outcome of a committed sale
type SellBundleResponse struct {
	TransactionID    uuid.UUID       `json:"transaction_id"`
	BundleID         uuid.UUID       `json:"bundle_id"`
	BundleName       string          `json:"bundle_name"`
	WarehouseID      uuid.UUID       `json:"warehouse_id"`
	Quantity         int64           `json:"quantity"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	Items            []SaleItemAudit `json:"items"`
	RemainingBundles int64           `json:"remaining_bundles"`
	SoldAt           time.Time       `json:"sold_at"`
}

// ToBundleResponse converts a domain bundle to its response representation
func ToBundleResponse(bundle *catalog.Bundle) *BundleResponse {
	resp := &BundleResponse{
		ID:          bundle.ID,
		Name:        bundle.Name,
		Description: bundle.Description,
		Price:       bundle.Price,
		Active:      bundle.Active,
		Version:     bundle.Version,
		CreatedAt:   bundle.CreatedAt,
		UpdatedAt:   bundle.UpdatedAt,
	}
	for _, item := range bundle.Items {
		resp.Items = append(resp.Items, BundleItemResponse{
			ItemType:         string(item.ItemType),
			ItemID:           item.ItemID,
			ItemName:         item.ItemName,
			RequiredQuantity: item.RequiredQuantity,
		})
	}
	return resp
}
