package inventory

import (
	"context"
	"errors"

	"github.com/flowstock/backend/internal/domain/inventory"
	"github.com/flowstock/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// WarehouseService handles warehouse reference-data operations
type WarehouseService struct {
	warehouseRepo inventory.WarehouseRepository
	stockRepo     inventory.StockRepository
}

// NewWarehouseService creates a new WarehouseService
func NewWarehouseService(warehouseRepo inventory.WarehouseRepository, stockRepo inventory.StockRepository) *WarehouseService {
	return &WarehouseService{
		warehouseRepo: warehouseRepo,
		stockRepo:     stockRepo,
	}
}

// Create creates a warehouse with a unique name
func (s *WarehouseService) Create(ctx context.Context, req CreateWarehouseRequest) (*WarehouseResponse, error) {
	exists, err := s.warehouseRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Warehouse with name '"+req.Name+"' already exists")
	}

	warehouse, err := inventory.NewWarehouse(req.Name, req.Location)
	if err != nil {
		return nil, err
	}
	if err := s.warehouseRepo.Save(ctx, warehouse); err != nil {
		return nil, err
	}

	return ToWarehouseResponse(warehouse), nil
}

// Get returns a warehouse by ID
func (s *WarehouseService) Get(ctx context.Context, id uuid.UUID) (*WarehouseResponse, error) {
	warehouse, err := s.findWarehouse(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToWarehouseResponse(warehouse), nil
}

// List returns warehouses matching the filter
func (s *WarehouseService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[WarehouseResponse], error) {
	warehouses, err := s.warehouseRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.warehouseRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]WarehouseResponse, 0, len(warehouses))
	for i := range warehouses {
		items = append(items, *ToWarehouseResponse(&warehouses[i]))
	}
	page := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &page, nil
}

// Update updates a warehouse's name, location and active flag
func (s *WarehouseService) Update(ctx context.Context, id uuid.UUID, req UpdateWarehouseRequest) (*WarehouseResponse, error) {
	warehouse, err := s.findWarehouse(ctx, id)
	if err != nil {
		return nil, err
	}

	name := warehouse.Name
	if req.Name != nil {
		name = *req.Name
	}
	location := warehouse.Location
	if req.Location != nil {
		location = *req.Location
	}

	if name != warehouse.Name {
		exists, err := s.warehouseRepo.ExistsByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Warehouse with name '"+name+"' already exists")
		}
	}

	if err := warehouse.Update(name, location); err != nil {
		return nil, err
	}
	if req.Active != nil && *req.Active != warehouse.Active {
		if *req.Active {
			err = warehouse.Activate()
		} else {
			err = warehouse.Deactivate()
		}
		if err != nil {
			return nil, err
		}
	}

	if err := s.warehouseRepo.Save(ctx, warehouse); err != nil {
		return nil, err
	}
	return ToWarehouseResponse(warehouse), nil
}

// Delete deletes a warehouse. Warehouses still holding stock rows
// cannot be deleted.
func (s *WarehouseService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.findWarehouse(ctx, id); err != nil {
		return err
	}

	count, err := s.stockRepo.CountByWarehouse(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.NewDomainError("ITEM_IN_USE", "Warehouse still holds stock and cannot be deleted")
	}

	return s.warehouseRepo.Delete(ctx, id)
}

func (s *WarehouseService) findWarehouse(ctx context.Context, id uuid.UUID) (*inventory.Warehouse, error) {
	warehouse, err := s.warehouseRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Warehouse not found")
		}
		return nil, err
	}
	return warehouse, nil
}
