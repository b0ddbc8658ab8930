package catalog

import (
	"strings"
	"time"

	"github.com/flowstock/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductVariant is a concrete, stockable, uniquely-SKU'd combination of
// option values under a product master. Variants are created by the
// generator, one per element of the Cartesian product of selected values.
type ProductVariant struct {
	shared.BaseAggregateRoot
	ProductID  uuid.UUID          `gorm:"type:uuid;not null;index"`
	SKU        string             `gorm:"type:varchar(150);not null;uniqueIndex"`
	Price      decimal.Decimal    `gorm:"type:decimal(18,4);not null;default:0"`
	Cost       decimal.Decimal    `gorm:"type:decimal(18,4);not null;default:0"`
	Active     bool               `gorm:"not null;default:true"`
	Attributes []VariantAttribute `gorm:"foreignKey:VariantID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (ProductVariant) TableName() string {
	return "product_variants"
}

// VariantAttribute records one (option, chosen value) pair of a variant.
// A variant carries exactly one attribute per option that was part of
// the generation request.
type VariantAttribute struct {
	shared.BaseEntity
	VariantID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_variant_attribute_option,priority:1"`
	OptionID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_variant_attribute_option,priority:2"`
	OptionName string    `gorm:"type:varchar(100);not null"`
	ValueID    uuid.UUID `gorm:"type:uuid;not null"`
	Value      string    `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (VariantAttribute) TableName() string {
	return "variant_attributes"
}

// NewProductVariant creates a variant for one combination of option values
func NewProductVariant(productID uuid.UUID, sku string, price, cost decimal.Decimal, combo Combination) (*ProductVariant, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_VARIANT", "Variant must belong to a product")
	}
	if err := validateSKU(sku); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Variant price cannot be negative")
	}
	if cost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Variant cost cannot be negative")
	}

	variant := &ProductVariant{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ProductID:         productID,
		SKU:               sku,
		Price:             price,
		Cost:              cost,
		Active:            true,
	}
	for _, sel := range combo {
		variant.Attributes = append(variant.Attributes, VariantAttribute{
			BaseEntity: shared.NewBaseEntity(),
			VariantID:  variant.ID,
			OptionID:   sel.OptionID,
			OptionName: sel.OptionName,
			ValueID:    sel.ValueID,
			Value:      sel.Value,
		})
	}

	return variant, nil
}

// AttributeValue returns the chosen value for the named option,
// matched case-insensitively. The second return is false when the
// variant has no attribute for that option.
func (v *ProductVariant) AttributeValue(optionName string) (string, bool) {
	for _, attr := range v.Attributes {
		if strings.EqualFold(attr.OptionName, optionName) {
			return attr.Value, true
		}
	}
	return "", false
}

// Activate marks the variant as sellable
func (v *ProductVariant) Activate() error {
	if v.Active {
		return shared.NewDomainError("ALREADY_ACTIVE", "Variant is already active")
	}
	v.Active = true
	v.UpdatedAt = time.Now()
	v.IncrementVersion()
	return nil
}

// Deactivate withdraws the variant from sale
func (v *ProductVariant) Deactivate() error {
	if !v.Active {
		return shared.NewDomainError("ALREADY_INACTIVE", "Variant is already inactive")
	}
	v.Active = false
	v.UpdatedAt = time.Now()
	v.IncrementVersion()
	return nil
}

// UpdatePrice changes the selling price of the variant
func (v *ProductVariant) UpdatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Variant price cannot be negative")
	}
	v.Price = price
	v.UpdatedAt = time.Now()
	v.IncrementVersion()
	return nil
}

// validateSKU validates a stock-keeping unit code
func validateSKU(sku string) error {
	if sku == "" {
		return shared.NewDomainError("INVALID_SKU", "SKU cannot be empty")
	}
	if len(sku) > 150 {
		return shared.NewDomainError("INVALID_SKU", "SKU cannot exceed 150 characters")
	}
	return nil
}
