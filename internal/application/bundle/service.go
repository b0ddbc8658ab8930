package bundle

import (
	"context"
	"errors"

	"github.com/flowstock/backend/internal/domain/catalog"
	"github.com/flowstock/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BundleService handles bundle composition operations
type BundleService struct {
	bundleRepo  catalog.BundleRepository
	productRepo catalog.ProductRepository
	variantRepo catalog.VariantRepository
	publisher   shared.EventPublisher
}

// NewBundleService creates a new BundleService
func NewBundleService(
	bundleRepo catalog.BundleRepository,
	productRepo catalog.ProductRepository,
	variantRepo catalog.VariantRepository,
	publisher shared.EventPublisher,
) *BundleService {
	return &BundleService{
		bundleRepo:  bundleRepo,
		productRepo: productRepo,
		variantRepo: variantRepo,
		publisher:   publisher,
	}
}

// Create creates a bundle with its components. Every referenced product
// or variant must exist.
func (s *BundleService) Create(ctx context.Context, req CreateBundleRequest) (*BundleResponse, error) {
	bundle, err := catalog.NewBundle(req.Name, req.Description, req.Price)
	if err != nil {
		return nil, err
	}

	for _, item := range req.Items {
		ref, name, err := s.resolveItem(ctx, item)
		if err != nil {
			return nil, err
		}
		if err := bundle.AddItem(ref, name, item.Quantity); err != nil {
			return nil, err
		}
	}

	if err := s.bundleRepo.Save(ctx, bundle); err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, bundle.GetDomainEvents()...); err != nil {
		return nil, err
	}
	bundle.ClearDomainEvents()

	return ToBundleResponse(bundle), nil
}

// Get returns a bundle with its items
func (s *BundleService) Get(ctx context.Context, id uuid.UUID) (*BundleResponse, error) {
	bundle, err := s.findBundle(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToBundleResponse(bundle), nil
}

// List returns bundles matching the filter
func (s *BundleService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[BundleResponse], error) {
	bundles, err := s.bundleRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.bundleRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]BundleResponse, 0, len(bundles))
	for i := range bundles {
		items = append(items, *ToBundleResponse(&bundles[i]))
	}
	page := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &page, nil
}

// Update updates a bundle's name, description and price
func (s *BundleService) Update(ctx context.Context, id uuid.UUID, req UpdateBundleRequest) (*BundleResponse, error) {
	bundle, err := s.findBundle(ctx, id)
	if err != nil {
		return nil, err
	}

	name := bundle.Name
	if req.Name != nil {
		name = *req.Name
	}
	description := bundle.Description
	if req.Description != nil {
		description = *req.Description
	}
	price := bundle.Price
	if req.Price != nil {
		price = *req.Price
	}

	if err := bundle.Update(name, description, price); err != nil {
		return nil, err
	}
	if err := s.bundleRepo.Save(ctx, bundle); err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, bundle.GetDomainEvents()...); err != nil {
		return nil, err
	}
	bundle.ClearDomainEvents()

	return ToBundleResponse(bundle), nil
}

// AddItem adds a component to an existing bundle
func (s *BundleService) AddItem(ctx context.Context, id uuid.UUID, req BundleItemRequest) (*BundleResponse, error) {
	bundle, err := s.findBundle(ctx, id)
	if err != nil {
		return nil, err
	}

	ref, name, err := s.resolveItem(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := bundle.AddItem(ref, name, req.Quantity); err != nil {
		return nil, err
	}
	if err := s.bundleRepo.Save(ctx, bundle); err != nil {
		return nil, err
	}

	return ToBundleResponse(bundle), nil
}

// RemoveItem removes a component from a bundle
func (s *BundleService) RemoveItem(ctx context.Context, id uuid.UUID, itemType string, itemID uuid.UUID) (*BundleResponse, error) {
	bundle, err := s.findBundle(ctx, id)
	if err != nil {
		return nil, err
	}

	parsed, err := catalog.ParseItemType(itemType)
	if err != nil {
		return nil, err
	}
	if err := bundle.RemoveItem(catalog.ItemRef{Type: parsed, ID: itemID}); err != nil {
		return nil, err
	}
	if err := s.bundleRepo.Save(ctx, bundle); err != nil {
		return nil, err
	}

	return ToBundleResponse(bundle), nil
}

// Delete deletes a bundle and its items
func (s *BundleService) Delete(ctx context.Context, id uuid.UUID) error {
	bundle, err := s.findBundle(ctx, id)
	if err != nil {
		return err
	}

	if err := s.bundleRepo.Delete(ctx, id); err != nil {
		return err
	}
	return s.publisher.Publish(ctx, catalog.NewBundleDeletedEvent(bundle))
}

func (s *BundleService) findBundle(ctx context.Context, id uuid.UUID) (*catalog.Bundle, error) {
	bundle, err := s.bundleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Bundle not found")
		}
		return nil, err
	}
	return bundle, nil
}

// resolveItem validates the item reference and returns it together with
// the referenced item's display name
func (s *BundleService) resolveItem(ctx context.Context, req BundleItemRequest) (catalog.ItemRef, string, error) {
	itemType, err := catalog.ParseItemType(req.ItemType)
	if err != nil {
		return catalog.ItemRef{}, "", err
	}
	ref, err := catalog.NewItemRef(itemType, req.ItemID)
	if err != nil {
		return catalog.ItemRef{}, "", err
	}

	switch itemType {
	case catalog.ItemTypeProduct:
		product, err := s.productRepo.FindByID(ctx, req.ItemID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return catalog.ItemRef{}, "", shared.NewDomainError("NOT_FOUND", "Referenced product not found")
			}
			return catalog.ItemRef{}, "", err
		}
		return ref, product.Name, nil
	default:
		variant, err := s.variantRepo.FindByID(ctx, req.ItemID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return catalog.ItemRef{}, "", shared.NewDomainError("NOT_FOUND", "Referenced variant not found")
			}
			return catalog.ItemRef{}, "", err
		}
		return ref, variant.SKU, nil
	}
}
