package inventory

import (
	"strings"
	"time"

	"github.com/flowstock/backend/internal/domain/shared"
)

// Warehouse is reference data: a named location stock is tracked against
type Warehouse struct {
	shared.BaseAggregateRoot
	Name     string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Location string `gorm:"type:varchar(200)"`
	Active   bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Warehouse) TableName() string {
	return "warehouses"
}

// NewWarehouse creates a new active warehouse
func NewWarehouse(name, location string) (*Warehouse, error) {
	if err := validateWarehouseName(name); err != nil {
		return nil, err
	}

	return &Warehouse{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Location:          location,
		Active:            true,
	}, nil
}

// Update updates the warehouse's name and location
func (w *Warehouse) Update(name, location string) error {
	if err := validateWarehouseName(name); err != nil {
		return err
	}

	w.Name = name
	w.Location = location
	w.UpdatedAt = time.Now()
	w.IncrementVersion()

	return nil
}

// Activate marks the warehouse as active
func (w *Warehouse) Activate() error {
	if w.Active {
		return shared.NewDomainError("ALREADY_ACTIVE", "Warehouse is already active")
	}
	w.Active = true
	w.UpdatedAt = time.Now()
	w.IncrementVersion()
	return nil
}

// Deactivate marks the warehouse as inactive
func (w *Warehouse) Deactivate() error {
	if !w.Active {
		return shared.NewDomainError("ALREADY_INACTIVE", "Warehouse is already inactive")
	}
	w.Active = false
	w.UpdatedAt = time.Now()
	w.IncrementVersion()
	return nil
}

// validateWarehouseName validates the warehouse name
func validateWarehouseName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Warehouse name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Warehouse name cannot exceed 100 characters")
	}
	return nil
}
