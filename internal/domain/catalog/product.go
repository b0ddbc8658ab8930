package catalog

import (
	"strings"
	"time"

	"github.com/flowstock/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductMaster is a product definition with configurable variant options.
// It is the aggregate root for product-related operations; it is not itself
// stockable - stock attaches to its generated variants, or to the master as
// a whole when a bundle references it by product.
type ProductMaster struct {
	shared.BaseAggregateRoot
	Name        string          `gorm:"type:varchar(200);not null"`
	Description string          `gorm:"type:text"`
	Active      bool            `gorm:"not null;default:true"`
	Options     []VariantOption `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (ProductMaster) TableName() string {
	return "product_masters"
}

// VariantOption is a configurable axis of a product (e.g. "Size")
// together with its ordered set of allowed values.
type VariantOption struct {
	shared.BaseEntity
	ProductID    uuid.UUID            `gorm:"type:uuid;not null;index"`
	Name         string               `gorm:"type:varchar(100);not null"`
	DisplayOrder int                  `gorm:"not null;default:0"`
	Values       []VariantOptionValue `gorm:"foreignKey:OptionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (VariantOption) TableName() string {
	return "variant_options"
}

// VariantOptionValue is a single immutable value of an option (e.g. "M").
type VariantOptionValue struct {
	shared.BaseEntity
	OptionID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Value        string    `gorm:"type:varchar(100);not null"`
	DisplayOrder int       `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (VariantOptionValue) TableName() string {
	return "variant_option_values"
}

// NewProductMaster creates a new product master
func NewProductMaster(name, description string) (*ProductMaster, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}

	product := &ProductMaster{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Description:       description,
		Active:            true,
	}

	product.AddDomainEvent(NewProductCreatedEvent(product))

	return product, nil
}

// Update updates the product's basic information.
// Name changes do not cascade to existing variants or their SKUs.
func (p *ProductMaster) Update(name, description string) error {
	if err := validateProductName(name); err != nil {
		return err
	}

	p.Name = name
	p.Description = description
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductUpdatedEvent(p))

	return nil
}

// AddOption appends a configurable option with its ordered values
func (p *ProductMaster) AddOption(name string, values []string) (*VariantOption, error) {
	if err := validateOptionName(name); err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, shared.NewDomainError("INVALID_OPTION", "Option must have at least one value")
	}
	for _, existing := range p.Options {
		if strings.EqualFold(existing.Name, name) {
			return nil, shared.NewDomainError("DUPLICATE_OPTION", "Product already has an option named '"+name+"'")
		}
	}
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return nil, shared.NewDomainError("INVALID_OPTION_VALUE", "Option value cannot be empty")
		}
		key := strings.ToLower(v)
		if _, dup := seen[key]; dup {
			return nil, shared.NewDomainError("DUPLICATE_OPTION_VALUE", "Option value '"+v+"' is listed more than once")
		}
		seen[key] = struct{}{}
	}

	option := VariantOption{
		BaseEntity:   shared.NewBaseEntity(),
		ProductID:    p.ID,
		Name:         name,
		DisplayOrder: len(p.Options),
	}
	for i, v := range values {
		option.Values = append(option.Values, VariantOptionValue{
			BaseEntity:   shared.NewBaseEntity(),
			OptionID:     option.ID,
			Value:        v,
			DisplayOrder: i,
		})
	}

	p.Options = append(p.Options, option)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return &p.Options[len(p.Options)-1], nil
}

// FindOption returns the option with the given id, or nil when the
// id does not belong to this product
func (p *ProductMaster) FindOption(optionID uuid.UUID) *VariantOption {
	for i := range p.Options {
		if p.Options[i].ID == optionID {
			return &p.Options[i]
		}
	}
	return nil
}

// Activate marks the product as active
func (p *ProductMaster) Activate() error {
	if p.Active {
		return shared.NewDomainError("ALREADY_ACTIVE", "Product is already active")
	}
	p.Active = true
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// Deactivate marks the product as inactive
func (p *ProductMaster) Deactivate() error {
	if !p.Active {
		return shared.NewDomainError("ALREADY_INACTIVE", "Product is already inactive")
	}
	p.Active = false
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// FindValue returns the option's value with the given id, or nil
func (o *VariantOption) FindValue(valueID uuid.UUID) *VariantOptionValue {
	for i := range o.Values {
		if o.Values[i].ID == valueID {
			return &o.Values[i]
		}
	}
	return nil
}

// SelectValues returns the subset of the option's values whose ids are
// requested, preserving the option's configured display order
func (o *VariantOption) SelectValues(valueIDs []uuid.UUID) []VariantOptionValue {
	requested := make(map[uuid.UUID]struct{}, len(valueIDs))
	for _, id := range valueIDs {
		requested[id] = struct{}{}
	}
	var selected []VariantOptionValue
	for _, v := range o.Values {
		if _, ok := requested[v.ID]; ok {
			selected = append(selected, v)
		}
	}
	return selected
}

// validateProductName validates the product name
func validateProductName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}

// validateOptionName validates a variant option name
func validateOptionName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_OPTION", "Option name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_OPTION", "Option name cannot exceed 100 characters")
	}
	return nil
}
