package inventory

import (
	"context"
	"errors"

	"github.com/flowstock/backend/internal/domain/catalog"
	"github.com/flowstock/backend/internal/domain/inventory"
	"github.com/flowstock/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// StockService handles stock ledger operations
type StockService struct {
	stockRepo     inventory.StockRepository
	warehouseRepo inventory.WarehouseRepository
	productRepo   catalog.ProductRepository
	variantRepo   catalog.VariantRepository
	publisher     shared.EventPublisher
}

// NewStockService creates a new StockService
func NewStockService(
	stockRepo inventory.StockRepository,
	warehouseRepo inventory.WarehouseRepository,
	productRepo catalog.ProductRepository,
	variantRepo catalog.VariantRepository,
	publisher shared.EventPublisher,
) *StockService {
	return &StockService{
		stockRepo:     stockRepo,
		warehouseRepo: warehouseRepo,
		productRepo:   productRepo,
		variantRepo:   variantRepo,
		publisher:     publisher,
	}
}

// GetQuantity returns the on-hand quantity for a warehouse-item pair.
// Missing ledger rows read as zero.
func (s *StockService) GetQuantity(ctx context.Context, warehouseID uuid.UUID, itemType string, itemID uuid.UUID) (*QuantityResponse, error) {
	ref, err := parseRef(itemType, itemID)
	if err != nil {
		return nil, err
	}

	quantity, err := s.stockRepo.GetQuantity(ctx, warehouseID, ref)
	if err != nil {
		return nil, err
	}

	return &QuantityResponse{
		WarehouseID: warehouseID,
		ItemType:    string(ref.Type),
		ItemID:      ref.ID,
		Quantity:    quantity,
	}, nil
}

// SetQuantity sets the absolute stock level for a warehouse-item pair,
// creating the ledger row when none exists. The warehouse and the
// referenced catalog item must both exist.
func (s *StockService) SetQuantity(ctx context.Context, req SetQuantityRequest) (*StockResponse, error) {
	ref, err := parseRef(req.ItemType, req.ItemID)
	if err != nil {
		return nil, err
	}
	if err := s.ensureWarehouse(ctx, req.WarehouseID); err != nil {
		return nil, err
	}
	if err := s.ensureItem(ctx, ref); err != nil {
		return nil, err
	}

	stock, err := s.stockRepo.GetOrCreate(ctx, req.WarehouseID, ref)
	if err != nil {
		return nil, err
	}
	if err := stock.SetQuantity(req.Quantity); err != nil {
		return nil, err
	}
	if err := s.stockRepo.SaveWithLock(ctx, stock); err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, stock.GetDomainEvents()...); err != nil {
		return nil, err
	}
	stock.ClearDomainEvents()

	return ToStockResponse(stock), nil
}

// ListByWarehouse returns the stock rows held in a warehouse
func (s *StockService) ListByWarehouse(ctx context.Context, warehouseID uuid.UUID, filter shared.Filter) (*shared.Paginated[StockResponse], error) {
	if err := s.ensureWarehouse(ctx, warehouseID); err != nil {
		return nil, err
	}

	stocks, err := s.stockRepo.FindByWarehouse(ctx, warehouseID, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.stockRepo.CountByWarehouse(ctx, warehouseID)
	if err != nil {
		return nil, err
	}

	items := make([]StockResponse, 0, len(stocks))
	for i := range stocks {
		items = append(items, *ToStockResponse(&stocks[i]))
	}
	page := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &page, nil
}

// ListByItem returns the stock rows for one item across all warehouses
func (s *StockService) ListByItem(ctx context.Context, itemType string, itemID uuid.UUID) ([]StockResponse, error) {
	ref, err := parseRef(itemType, itemID)
	if err != nil {
		return nil, err
	}

	stocks, err := s.stockRepo.FindByItem(ctx, ref)
	if err != nil {
		return nil, err
	}

	items := make([]StockResponse, 0, len(stocks))
	for i := range stocks {
		items = append(items, *ToStockResponse(&stocks[i]))
	}
	return items, nil
}

func (s *StockService) ensureWarehouse(ctx context.Context, id uuid.UUID) error {
	if _, err := s.warehouseRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("NOT_FOUND", "Warehouse not found")
		}
		return err
	}
	return nil
}

// ensureItem verifies the referenced product or variant exists in the catalog
func (s *StockService) ensureItem(ctx context.Context, ref catalog.ItemRef) error {
	var err error
	switch ref.Type {
	case catalog.ItemTypeProduct:
		_, err = s.productRepo.FindByID(ctx, ref.ID)
	default:
		_, err = s.variantRepo.FindByID(ctx, ref.ID)
	}
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("NOT_FOUND", "Referenced "+string(ref.Type)+" not found")
		}
		return err
	}
	return nil
}

func parseRef(itemType string, itemID uuid.UUID) (catalog.ItemRef, error) {
	parsed, err := catalog.ParseItemType(itemType)
	if err != nil {
		return catalog.ItemRef{}, err
	}
	return catalog.NewItemRef(parsed, itemID)
}
