package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/flowstock/backend/internal/domain/catalog"
	"github.com/flowstock/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// VariantGenerator expands selected option-value sets into the Cartesian
// product of variants, deriving SKU and price per combination, and
// persists the whole batch atomically.
type VariantGenerator struct {
	productRepo catalog.ProductRepository
	txScope     TransactionScope
	publisher   shared.EventPublisher
	logger      *zap.Logger
}

// NewVariantGenerator creates a new VariantGenerator
func NewVariantGenerator(
	productRepo catalog.ProductRepository,
	txScope TransactionScope,
	publisher shared.EventPublisher,
	logger *zap.Logger,
) *VariantGenerator {
	return &VariantGenerator{
		productRepo: productRepo,
		txScope:     txScope,
		publisher:   publisher,
		logger:      logger,
	}
}

// Generate produces one variant per element of the Cartesian product of
// the selected value sets. Option ids that do not belong to the product
// are silently ignored; value ids that do not belong to their option are
// ignored the same way. Either every combination is committed or none.
func (g *VariantGenerator) Generate(ctx context.Context, productID uuid.UUID, req GenerateVariantsRequest) (*GenerateVariantsResponse, error) {
	started := time.Now()

	strategy, err := catalog.ParsePricingStrategy(req.Strategy)
	if err != nil {
		return nil, err
	}
	calculator, err := catalog.PriceCalculatorFor(strategy)
	if err != nil {
		return nil, err
	}
	if req.BasePrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Base price cannot be negative")
	}
	if req.BaseCost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Base cost cannot be negative")
	}

	product, err := g.productRepo.FindByIDWithOptions(ctx, productID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Product not found")
		}
		return nil, err
	}

	// Retain only selections whose option belongs to the product,
	// keeping the request's selection order.
	selections := make([]catalog.OptionSelection, 0, len(req.Selections))
	for _, sel := range req.Selections {
		option := product.FindOption(sel.OptionID)
		if option == nil {
			g.logger.Debug("ignoring unknown option in generation request",
				zap.String("product_id", productID.String()),
				zap.String("option_id", sel.OptionID.String()))
			continue
		}
		values := option.SelectValues(sel.ValueIDs)
		if len(values) == 0 {
			continue
		}
		selections = append(selections, catalog.OptionSelection{Option: option, Values: values})
	}

	combos, err := catalog.ExpandCombinations(selections)
	if err != nil {
		return nil, err
	}

	variants := make([]*catalog.ProductVariant, 0, len(combos))
	for _, combo := range combos {
		sku := catalog.DeriveSKU(product.Name, req.SKUTemplate, combo)
		price := calculator.Price(req.BasePrice, combo)
		variant, err := catalog.NewProductVariant(product.ID, sku, price, req.BaseCost, combo)
		if err != nil {
			return nil, err
		}
		variants = append(variants, variant)
	}

	err = g.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		return repos.VariantRepo().SaveBatch(ctx, variants)
	})
	if err != nil {
		g.logger.Error("variant generation rolled back",
			zap.String("product_id", productID.String()),
			zap.Int("combinations", len(combos)),
			zap.Error(err))
		return nil, err
	}

	elapsed := time.Since(started)
	g.logger.Info("variants generated",
		zap.String("product_id", productID.String()),
		zap.Int("count", len(variants)),
		zap.String("strategy", string(strategy)),
		zap.Duration("elapsed", elapsed))

	if err := g.publisher.Publish(ctx, catalog.NewVariantsGeneratedEvent(product.ID, len(variants), strategy)); err != nil {
		return nil, err
	}

	resp := &GenerateVariantsResponse{
		ProductID:      product.ID,
		Count:          len(variants),
		Strategy:       string(strategy),
		ProcessingTime: elapsed.String(),
	}
	for _, v := range variants {
		resp.Variants = append(resp.Variants, ToVariantResponse(v))
	}
	return resp, nil
}
