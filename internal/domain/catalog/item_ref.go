package catalog

import (
	"fmt"

	"github.com/flowstock/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ItemType discriminates what a stockable reference points at
type ItemType string

const (
	// ItemTypeProduct means any variant of the product satisfies the reference
	ItemTypeProduct ItemType = "product"
	// ItemTypeVariant means the exact variant is required
	ItemTypeVariant ItemType = "variant"
)

// ParseItemType parses and validates an item type tag
func ParseItemType(s string) (ItemType, error) {
	switch ItemType(s) {
	case ItemTypeProduct:
		return ItemTypeProduct, nil
	case ItemTypeVariant:
		return ItemTypeVariant, nil
	default:
		return "", shared.NewDomainError("INVALID_ITEM_TYPE", fmt.Sprintf("Item type must be 'product' or 'variant', got '%s'", s))
	}
}

// IsValid returns true if the item type is a known tag
func (t ItemType) IsValid() bool {
	return t == ItemTypeProduct || t == ItemTypeVariant
}

// ItemRef identifies either a product master or a concrete variant.
// It is the key half of every stock row and bundle line item.
type ItemRef struct {
	Type ItemType  `gorm:"column:item_type;type:varchar(10);not null" json:"item_type"`
	ID   uuid.UUID `gorm:"column:item_id;type:uuid;not null" json:"item_id"`
}

// NewItemRef creates a validated item reference
func NewItemRef(itemType ItemType, id uuid.UUID) (ItemRef, error) {
	if !itemType.IsValid() {
		return ItemRef{}, shared.NewDomainError("INVALID_ITEM_TYPE", fmt.Sprintf("Item type must be 'product' or 'variant', got '%s'", itemType))
	}
	if id == uuid.Nil {
		return ItemRef{}, shared.NewDomainError("INVALID_ITEM_REF", "Item id cannot be empty")
	}
	return ItemRef{Type: itemType, ID: id}, nil
}

// ProductRef creates a reference to a product master
func ProductRef(id uuid.UUID) ItemRef {
	return ItemRef{Type: ItemTypeProduct, ID: id}
}

// VariantRef creates a reference to a product variant
func VariantRef(id uuid.UUID) ItemRef {
	return ItemRef{Type: ItemTypeVariant, ID: id}
}

// IsProduct returns true if the reference points at a product master
func (r ItemRef) IsProduct() bool {
	return r.Type == ItemTypeProduct
}

// IsVariant returns true if the reference points at a concrete variant
func (r ItemRef) IsVariant() bool {
	return r.Type == ItemTypeVariant
}

// String returns a compact "type:id" form, used in logs and error messages
func (r ItemRef) String() string {
	return fmt.Sprintf("%s:%s", r.Type, r.ID)
}
