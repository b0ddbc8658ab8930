package catalog

import (
	"time"

	"github.com/flowstock/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents a request to create a new product master
type CreateProductRequest struct {
	Name        string                `json:"name" binding:"required,min=1,max=200"`
	Description string                `json:"description" binding:"max=2000"`
	Options     []CreateOptionRequest `json:"options" binding:"omitempty,dive"`
}

// CreateOptionRequest represents one configurable option with its values
type CreateOptionRequest struct {
	Name   string   `json:"name" binding:"required,min=1,max=100"`
	Values []string `json:"values" binding:"required,min=1,dive,required,max=100"`
}

// UpdateProductRequest represents a request to update a product master
type UpdateProductRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
}

// OptionValueSelection selects a subset of an option's values for generation.
// Selections are applied in request order; that order defines combination
// order and default SKU segment order.
type OptionValueSelection struct {
	OptionID uuid.UUID   `json:"option_id" binding:"required"`
	ValueIDs []uuid.UUID `json:"value_ids" binding:"required,min=1"`
}

// GenerateVariantsRequest represents a request to generate the Cartesian
// product of the selected option values
type GenerateVariantsRequest struct {
	Selections  []OptionValueSelection `json:"selections" binding:"required,min=1,dive"`
	Strategy    string                 `json:"strategy" binding:"required"`
	BasePrice   decimal.Decimal        `json:"base_price" binding:"required"`
	BaseCost    decimal.Decimal        `json:"base_cost"`
	SKUTemplate string                 `json:"sku_template" binding:"max=150"`
}

// ProductResponse represents a product master in API responses
type ProductResponse struct {
	ID           uuid.UUID        `json:"id"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Active       bool             `json:"active"`
	Options      []OptionResponse `json:"options,omitempty"`
	VariantCount int64            `json:"variant_count"`
	Version      int              `json:"version"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// OptionResponse represents a variant option in API responses
type OptionResponse struct {
	ID           uuid.UUID             `json:"id"`
	Name         string                `json:"name"`
	DisplayOrder int                   `json:"display_order"`
	Values       []OptionValueResponse `json:"values"`
}

// OptionValueResponse represents an option value in API responses
type OptionValueResponse struct {
	ID           uuid.UUID `json:"id"`
	Value        string    `json:"value"`
	DisplayOrder int       `json:"display_order"`
}

// VariantResponse represents a product variant in API responses
type VariantResponse struct {
	ID         uuid.UUID           `json:"id"`
	ProductID  uuid.UUID           `json:"product_id"`
	SKU        string              `json:"sku"`
	Price      decimal.Decimal     `json:"price"`
	Cost       decimal.Decimal     `json:"cost"`
	Active     bool                `json:"active"`
	Attributes []AttributeResponse `json:"attributes"`
	CreatedAt  time.Time           `json:"created_at"`
}

// AttributeResponse represents one (option, value) pair of a variant
type AttributeResponse struct {
	OptionID   uuid.UUID `json:"option_id"`
	OptionName string    `json:"option_name"`
	ValueID    uuid.UUID `json:"value_id"`
	Value      string    `json:"value"`
}

// GenerateVariantsResponse reports the outcome of a generation run
type GenerateVariantsResponse struct {
	ProductID      uuid.UUID         `json:"product_id"`
	Count          int               `json:"count"`
	Strategy       string            `json:"strategy"`
	ProcessingTime string            `json:"processing_time"`
	Variants       []VariantResponse `json:"variants"`
}

// ToProductResponse converts a domain product to its response representation
func ToProductResponse(product *catalog.ProductMaster, variantCount int64) *ProductResponse {
	resp := &ProductResponse{
		ID:           product.ID,
		Name:         product.Name,
		Description:  product.Description,
		Active:       product.Active,
		VariantCount: variantCount,
		Version:      product.Version,
		CreatedAt:    product.CreatedAt,
		UpdatedAt:    product.UpdatedAt,
	}
	for _, option := range product.Options {
		resp.Options = append(resp.Options, ToOptionResponse(option))
	}
	return resp
}

// ToOptionResponse converts a domain variant option
func ToOptionResponse(option catalog.VariantOption) OptionResponse {
	out := OptionResponse{
		ID:           option.ID,
		Name:         option.Name,
		DisplayOrder: option.DisplayOrder,
	}
	for _, v := range option.Values {
		out.Values = append(out.Values, OptionValueResponse{
			ID:           v.ID,
			Value:        v.Value,
			DisplayOrder: v.DisplayOrder,
		})
	}
	return out
}

// ToVariantResponse converts a domain variant
func ToVariantResponse(variant *catalog.ProductVariant) VariantResponse {
	out := VariantResponse{
		ID:        variant.ID,
		ProductID: variant.ProductID,
		SKU:       variant.SKU,
		Price:     variant.Price,
		Cost:      variant.Cost,
		Active:    variant.Active,
		CreatedAt: variant.CreatedAt,
	}
	for _, attr := range variant.Attributes {
		out.Attributes = append(out.Attributes, AttributeResponse{
			OptionID:   attr.OptionID,
			OptionName: attr.OptionName,
			ValueID:    attr.ValueID,
			Value:      attr.Value,
		})
	}
	return out
}
