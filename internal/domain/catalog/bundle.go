package catalog

import (
	"strings"
	"time"

	"github.com/flowstock/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Bundle is a sellable package combining fixed quantities of products
// and/or variants at a single fixed price. It exclusively owns its line
// items; deleting the bundle removes them.
type Bundle struct {
	shared.BaseAggregateRoot
	Name        string          `gorm:"type:varchar(200);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Active      bool            `gorm:"not null;default:true"`
	Items       []BundleItem    `gorm:"foreignKey:BundleID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Bundle) TableName() string {
	return "bundles"
}

// BundleItem is one component of a bundle: an item reference plus the
// quantity of that item consumed per bundle sold. The (bundle, item)
// pair is unique within a bundle.
type BundleItem struct {
	shared.BaseEntity
	BundleID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_bundle_item_ref,priority:1"`
	ItemType         ItemType  `gorm:"type:varchar(10);not null;uniqueIndex:idx_bundle_item_ref,priority:2"`
	ItemID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_bundle_item_ref,priority:3"`
	ItemName         string    `gorm:"type:varchar(200);not null"`
	RequiredQuantity int64     `gorm:"not null"`
	DisplayOrder     int       `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (BundleItem) TableName() string {
	return "bundle_items"
}

// Ref returns the item reference of this line item
func (i BundleItem) Ref() ItemRef {
	return ItemRef{Type: i.ItemType, ID: i.ItemID}
}

// NewBundle creates a new empty bundle
func NewBundle(name, description string, price decimal.Decimal) (*Bundle, error) {
	if err := validateBundleName(name); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Bundle price cannot be negative")
	}

	bundle := &Bundle{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Description:       description,
		Price:             price,
		Active:            true,
	}

	bundle.AddDomainEvent(NewBundleCreatedEvent(bundle))

	return bundle, nil
}

// Update updates the bundle's basic information and price
func (b *Bundle) Update(name, description string, price decimal.Decimal) error {
	if err := validateBundleName(name); err != nil {
		return err
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Bundle price cannot be negative")
	}

	b.Name = name
	b.Description = description
	b.Price = price
	b.UpdatedAt = time.Now()
	b.IncrementVersion()

	b.AddDomainEvent(NewBundleUpdatedEvent(b))

	return nil
}

// AddItem appends a component to the bundle. The same item reference
// cannot appear twice in one bundle.
func (b *Bundle) AddItem(ref ItemRef, itemName string, requiredQuantity int64) error {
	if !ref.Type.IsValid() {
		return shared.NewDomainError("INVALID_ITEM_TYPE", "Item type must be 'product' or 'variant', got '"+string(ref.Type)+"'")
	}
	if ref.ID == uuid.Nil {
		return shared.NewDomainError("INVALID_ITEM_REF", "Item id cannot be empty")
	}
	if requiredQuantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Required quantity must be positive")
	}
	for _, existing := range b.Items {
		if existing.Ref() == ref {
			return shared.NewDomainError("DUPLICATE_BUNDLE_ITEM", "Bundle already contains item "+ref.String())
		}
	}

	b.Items = append(b.Items, BundleItem{
		BaseEntity:       shared.NewBaseEntity(),
		BundleID:         b.ID,
		ItemType:         ref.Type,
		ItemID:           ref.ID,
		ItemName:         itemName,
		RequiredQuantity: requiredQuantity,
		DisplayOrder:     len(b.Items),
	})
	b.UpdatedAt = time.Now()
	b.IncrementVersion()

	return nil
}

// RemoveItem drops the component with the given reference.
// Returns a not-found error when the bundle has no such item.
func (b *Bundle) RemoveItem(ref ItemRef) error {
	for i, existing := range b.Items {
		if existing.Ref() == ref {
			b.Items = append(b.Items[:i], b.Items[i+1:]...)
			for j := range b.Items {
				b.Items[j].DisplayOrder = j
			}
			b.UpdatedAt = time.Now()
			b.IncrementVersion()
			return nil
		}
	}
	return shared.NewDomainError("ITEM_NOT_FOUND", "Bundle does not contain item "+ref.String())
}

// References returns true if the bundle contains the given item
func (b *Bundle) References(ref ItemRef) bool {
	for _, item := range b.Items {
		if item.Ref() == ref {
			return true
		}
	}
	return false
}

// Activate marks the bundle as sellable
func (b *Bundle) Activate() error {
	if b.Active {
		return shared.NewDomainError("ALREADY_ACTIVE", "Bundle is already active")
	}
	b.Active = true
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
	return nil
}

// Deactivate withdraws the bundle from sale
func (b *Bundle) Deactivate() error {
	if !b.Active {
		return shared.NewDomainError("ALREADY_INACTIVE", "Bundle is already inactive")
	}
	b.Active = false
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
	return nil
}

// TotalAmount returns the amount charged for selling the given quantity
// of this bundle. The amount is the bundle's fixed price times quantity,
// not the sum of component prices.
func (b *Bundle) TotalAmount(quantity int64) decimal.Decimal {
	return b.Price.Mul(decimal.NewFromInt(quantity))
}

// validateBundleName validates the bundle name
func validateBundleName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Bundle name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Bundle name cannot exceed 200 characters")
	}
	return nil
}
