package bundle

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/flowstock/backend/internal/domain/catalog"
	"github.com/flowstock/backend/internal/domain/inventory"
	"github.com/flowstock/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// StockCalculator computes, for every component of a bundle, how many
// bundles the component's stock can produce, and which components are
// the bottleneck. It performs no mutation; the sale transactor calls it
// both before and after a deduction.
type StockCalculator struct {
	bundleRepo    catalog.BundleRepository
	warehouseRepo inventory.WarehouseRepository
	stockRepo     inventory.StockRepository
}

// NewStockCalculator creates a new StockCalculator
func NewStockCalculator(
	bundleRepo catalog.BundleRepository,
	warehouseRepo inventory.WarehouseRepository,
	stockRepo inventory.StockRepository,
) *StockCalculator {
	return &StockCalculator{
		bundleRepo:    bundleRepo,
		warehouseRepo: warehouseRepo,
		stockRepo:     stockRepo,
	}
}

// Calculate returns the availability breakdown of a bundle in a warehouse
func (c *StockCalculator) Calculate(ctx context.Context, bundleID, warehouseID uuid.UUID) (*StockCalculationResponse, error) {
	bundle, err := c.bundleRepo.FindByID(ctx, bundleID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Bundle not found")
		}
		return nil, err
	}
	if _, err := c.warehouseRepo.FindByID(ctx, warehouseID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Warehouse not found")
		}
		return nil, err
	}

	return c.calculate(ctx, bundle, warehouseID, c.stockRepo)
}

// calculate runs the breakdown against the given stock repository. The
// sale transactor passes its transaction-scoped repository here.
func (c *StockCalculator) calculate(ctx context.Context, bundle *catalog.Bundle, warehouseID uuid.UUID, stockRepo inventory.StockRepository) (*StockCalculationResponse, error) {
	resp := &StockCalculationResponse{
		BundleID:    bundle.ID,
		BundleName:  bundle.Name,
		WarehouseID: warehouseID,
	}
	if len(bundle.Items) == 0 {
		resp.Explanation = fmt.Sprintf("Bundle '%s' has no items.", bundle.Name)
		return resp, nil
	}

	var overall int64
	for i, item := range bundle.Items {
		available, err := stockRepo.GetQuantity(ctx, warehouseID, item.Ref())
		if err != nil {
			return nil, err
		}

		// Required quantity is guaranteed positive by the bundle invariant.
		possible := available / item.RequiredQuantity
		resp.Items = append(resp.Items, ComponentStock{
			ItemType:         string(item.ItemType),
			ItemID:           item.ItemID,
			ItemName:         item.ItemName,
			RequiredQuantity: item.RequiredQuantity,
			Available:        available,
			PossibleBundles:  possible,
		})

		if i == 0 || possible < overall {
			overall = possible
		}
	}

	resp.MaxAvailableBundles = overall

	var bottlenecks []string
	for i := range resp.Items {
		if resp.Items[i].PossibleBundles == overall {
			resp.Items[i].IsBottleneck = true
			bottlenecks = append(bottlenecks, fmt.Sprintf("%s (%d available, %d required)",
				resp.Items[i].ItemName, resp.Items[i].Available, resp.Items[i].RequiredQuantity))
		}
	}
	resp.Explanation = fmt.Sprintf("Bundle '%s' can be sold %d times. Limited by: %s",
		bundle.Name, overall, strings.Join(bottlenecks, ", "))

	return resp, nil
}
