package catalog

import (
	"github.com/flowstock/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypeBundle = "Bundle"

// Event type constants
const (
	EventTypeBundleCreated = "BundleCreated"
	EventTypeBundleUpdated = "BundleUpdated"
	EventTypeBundleDeleted = "BundleDeleted"
	EventTypeBundleSold    = "BundleSold"
)

// BundleCreatedEvent is published when a new bundle is created
type BundleCreatedEvent struct {
	shared.BaseDomainEvent
	BundleID uuid.UUID       `json:"bundle_id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
}

// NewBundleCreatedEvent creates a new BundleCreatedEvent
func NewBundleCreatedEvent(bundle *Bundle) *BundleCreatedEvent {
	return &BundleCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBundleCreated, AggregateTypeBundle, bundle.ID),
		BundleID:        bundle.ID,
		Name:            bundle.Name,
		Price:           bundle.Price,
	}
}

// BundleUpdatedEvent is published when a bundle is updated
type BundleUpdatedEvent struct {
	shared.BaseDomainEvent
	BundleID uuid.UUID       `json:"bundle_id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
}

// NewBundleUpdatedEvent creates a new BundleUpdatedEvent
func NewBundleUpdatedEvent(bundle *Bundle) *BundleUpdatedEvent {
	return &BundleUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBundleUpdated, AggregateTypeBundle, bundle.ID),
		BundleID:        bundle.ID,
		Name:            bundle.Name,
		Price:           bundle.Price,
	}
}

// BundleDeletedEvent is published when a bundle is deleted
type BundleDeletedEvent struct {
	shared.BaseDomainEvent
	BundleID uuid.UUID `json:"bundle_id"`
	Name     string    `json:"name"`
}

// NewBundleDeletedEvent creates a new BundleDeletedEvent
func NewBundleDeletedEvent(bundle *Bundle) *BundleDeletedEvent {
	return &BundleDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBundleDeleted, AggregateTypeBundle, bundle.ID),
		BundleID:        bundle.ID,
		Name:            bundle.Name,
	}
}

// BundleSoldEvent is published after a sale transaction commits
type BundleSoldEvent struct {
	shared.BaseDomainEvent
	BundleID      uuid.UUID       `json:"bundle_id"`
	WarehouseID   uuid.UUID       `json:"warehouse_id"`
	TransactionID uuid.UUID       `json:"transaction_id"`
	Quantity      int64           `json:"quantity"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}

// NewBundleSoldEvent creates a new BundleSoldEvent
func NewBundleSoldEvent(bundle *Bundle, warehouseID, transactionID uuid.UUID, quantity int64) *BundleSoldEvent {
	return &BundleSoldEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBundleSold, AggregateTypeBundle, bundle.ID),
		BundleID:        bundle.ID,
		WarehouseID:     warehouseID,
		TransactionID:   transactionID,
		Quantity:        quantity,
		TotalAmount:     bundle.TotalAmount(quantity),
	}
}
