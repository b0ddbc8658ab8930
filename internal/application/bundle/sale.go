package bundle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/flowstock/backend/internal/domain/catalog"
	"github.com/flowstock/backend/internal/domain/inventory"
	"github.com/flowstock/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SaleTransactor validates availability, deducts stock for every bundle
// component inside one transaction, and reports per-component before and
// after quantities. Partial deductions are never visible: any failure
// between the first and last write rolls the whole sale back.
type SaleTransactor struct {
	bundleRepo    catalog.BundleRepository
	warehouseRepo inventory.WarehouseRepository
	calculator    *StockCalculator
	txScope       TransactionScope
	publisher     shared.EventPublisher
	logger        *zap.Logger
}

// NewSaleTransactor creates a new SaleTransactor
func NewSaleTransactor(
	bundleRepo catalog.BundleRepository,
	warehouseRepo inventory.WarehouseRepository,
	calculator *StockCalculator,
	txScope TransactionScope,
	publisher shared.EventPublisher,
	logger *zap.Logger,
) *SaleTransactor {
	return &SaleTransactor{
		bundleRepo:    bundleRepo,
		warehouseRepo: warehouseRepo,
		calculator:    calculator,
		txScope:       txScope,
		publisher:     publisher,
		logger:        logger,
	}
}

// Sell sells the given quantity of a bundle out of one warehouse. Each
// component loses requiredQuantity x quantity units. Without backorder
// the sale is rejected up front when fewer bundles are producible than
// requested; with backorder component stock may go negative.
func (t *SaleTransactor) Sell(ctx context.Context, bundleID uuid.UUID, req SellBundleRequest) (*SellBundleResponse, error) {
	if req.Quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Sale quantity must be positive")
	}

	bundle, err := t.bundleRepo.FindByID(ctx, bundleID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Bundle not found")
		}
		return nil, err
	}
	if !bundle.Active {
		return nil, shared.NewDomainError("INVALID_STATE", "Bundle is not active")
	}
	if len(bundle.Items) == 0 {
		return nil, shared.NewDomainError("INVALID_STATE", "Bundle has no items")
	}
	if _, err := t.warehouseRepo.FindByID(ctx, req.WarehouseID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Warehouse not found")
		}
		return nil, err
	}

	// Pre-check outside the transaction. The per-row compare-and-swap
	// below still catches races that slip past this read.
	precheck, err := t.calculator.calculate(ctx, bundle, req.WarehouseID, t.calculator.stockRepo)
	if err != nil {
		return nil, err
	}
	if precheck.MaxAvailableBundles < req.Quantity && !req.AllowBackorder {
		return nil, shared.NewDomainError("INSUFFICIENT_STOCK",
			fmt.Sprintf("Only %d of %d requested bundles available. %s",
				precheck.MaxAvailableBundles, req.Quantity, precheck.Explanation))
	}

	transactionID := uuid.New()
	audits := make([]SaleItemAudit, 0, len(bundle.Items))
	var stockEvents []shared.DomainEvent

	err = t.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		for _, item := range bundle.Items {
			stock, err := repos.StockRepo().GetOrCreate(ctx, req.WarehouseID, item.Ref())
			if err != nil {
				return err
			}

			deduct := item.RequiredQuantity * req.Quantity
			before := stock.Quantity
			if err := stock.Deduct(deduct, req.AllowBackorder); err != nil {
				return err
			}
			if err := repos.StockRepo().SaveWithLock(ctx, stock); err != nil {
				return err
			}

			audits = append(audits, SaleItemAudit{
				ItemType:         string(item.ItemType),
				ItemID:           item.ItemID,
				ItemName:         item.ItemName,
				RequiredQuantity: item.RequiredQuantity,
				Deducted:         deduct,
				StockBefore:      before,
				StockAfter:       stock.Quantity,
			})
			stockEvents = append(stockEvents, stock.GetDomainEvents()...)
			stock.ClearDomainEvents()
		}
		return nil
	})
	if err != nil {
		t.logger.Warn("bundle sale rolled back",
			zap.String("bundle_id", bundleID.String()),
			zap.String("warehouse_id", req.WarehouseID.String()),
			zap.Int64("quantity", req.Quantity),
			zap.Error(err))
		return nil, err
	}

	remaining, err := t.calculator.calculate(ctx, bundle, req.WarehouseID, t.calculator.stockRepo)
	if err != nil {
		return nil, err
	}

	t.logger.Info("bundle sold",
		zap.String("bundle_id", bundleID.String()),
		zap.String("transaction_id", transactionID.String()),
		zap.Int64("quantity", req.Quantity),
		zap.Int64("remaining_bundles", remaining.MaxAvailableBundles))

	events := append(stockEvents, catalog.NewBundleSoldEvent(bundle, req.WarehouseID, transactionID, req.Quantity))
	if err := t.publisher.Publish(ctx, events...); err != nil {
		return nil, err
	}

	return &SellBundleResponse{
		TransactionID:    transactionID,
		BundleID:         bundle.ID,
		BundleName:       bundle.Name,
		WarehouseID:      req.WarehouseID,
		Quantity:         req.Quantity,
		TotalAmount:      bundle.TotalAmount(req.Quantity),
		Items:            audits,
		RemainingBundles: remaining.MaxAvailableBundles,
		SoldAt:           time.Now(),
	}, nil
}
