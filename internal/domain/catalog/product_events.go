package catalog

import (
	"github.com/flowstock/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constants
const (
	AggregateTypeProduct = "ProductMaster"
	AggregateTypeVariant = "ProductVariant"
)

// Event type constants
const (
	EventTypeProductCreated    = "ProductCreated"
	EventTypeProductUpdated    = "ProductUpdated"
	EventTypeProductDeleted    = "ProductDeleted"
	EventTypeVariantsGenerated = "VariantsGenerated"
)

// ProductCreatedEvent is published when a new product master is created
type ProductCreatedEvent struct {
	shared.BaseDomainEvent
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
}

// NewProductCreatedEvent creates a new ProductCreatedEvent
func NewProductCreatedEvent(product *ProductMaster) *ProductCreatedEvent {
	return &ProductCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductCreated, AggregateTypeProduct, product.ID),
		ProductID:       product.ID,
		Name:            product.Name,
	}
}

// ProductUpdatedEvent is published when a product master is updated
type ProductUpdatedEvent struct {
	shared.BaseDomainEvent
	ProductID   uuid.UUID `json:"product_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
}

// NewProductUpdatedEvent creates a new ProductUpdatedEvent
func NewProductUpdatedEvent(product *ProductMaster) *ProductUpdatedEvent {
	return &ProductUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductUpdated, AggregateTypeProduct, product.ID),
		ProductID:       product.ID,
		Name:            product.Name,
		Description:     product.Description,
	}
}

// ProductDeletedEvent is published when a product master is deleted
type ProductDeletedEvent struct {
	shared.BaseDomainEvent
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
}

// NewProductDeletedEvent creates a new ProductDeletedEvent
func NewProductDeletedEvent(product *ProductMaster) *ProductDeletedEvent {
	return &ProductDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductDeleted, AggregateTypeProduct, product.ID),
		ProductID:       product.ID,
		Name:            product.Name,
	}
}

// VariantsGeneratedEvent is published once per generation run, after the
// full batch of combinations has been committed
type VariantsGeneratedEvent struct {
	shared.BaseDomainEvent
	ProductID uuid.UUID       `json:"product_id"`
	Count     int             `json:"count"`
	Strategy  PricingStrategy `json:"strategy"`
}

// NewVariantsGeneratedEvent creates a new VariantsGeneratedEvent
func NewVariantsGeneratedEvent(productID uuid.UUID, count int, strategy PricingStrategy) *VariantsGeneratedEvent {
	return &VariantsGeneratedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeVariantsGenerated, AggregateTypeProduct, productID),
		ProductID:       productID,
		Count:           count,
		Strategy:        strategy,
	}
}
