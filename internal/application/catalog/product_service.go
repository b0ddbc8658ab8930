package catalog

import (
	"context"
	"errors"

	"github.com/flowstock/backend/internal/domain/catalog"
	"github.com/flowstock/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductService handles product master and variant operations
type ProductService struct {
	productRepo catalog.ProductRepository
	variantRepo catalog.VariantRepository
	bundleRepo  catalog.BundleRepository
	txScope     TransactionScope
	publisher   shared.EventPublisher
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	variantRepo catalog.VariantRepository,
	bundleRepo catalog.BundleRepository,
	txScope TransactionScope,
	publisher shared.EventPublisher,
) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		variantRepo: variantRepo,
		bundleRepo:  bundleRepo,
		txScope:     txScope,
		publisher:   publisher,
	}
}

// Create creates a new product master with its configurable options
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	exists, err := s.productRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with this name already exists")
	}

	product, err := catalog.NewProductMaster(req.Name, req.Description)
	if err != nil {
		return nil, err
	}
	for _, opt := range req.Options {
		if _, err := product.AddOption(opt.Name, opt.Values); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, product.GetDomainEvents()...); err != nil {
		return nil, err
	}
	product.ClearDomainEvents()

	return ToProductResponse(product, 0), nil
}

// Get returns a product with its options and values
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByIDWithOptions(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Product not found")
		}
		return nil, err
	}

	count, err := s.variantRepo.CountByProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToProductResponse(product, count), nil
}

// List returns products matching the filter
func (s *ProductService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[ProductResponse], error) {
	products, err := s.productRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.productRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]ProductResponse, 0, len(products))
	for i := range products {
		items = append(items, *ToProductResponse(&products[i], 0))
	}
	page := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &page, nil
}

// Update updates a product's basic information. Changes do not cascade
// to already generated variants.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByIDWithOptions(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Product not found")
		}
		return nil, err
	}

	name := product.Name
	if req.Name != nil {
		name = *req.Name
	}
	description := product.Description
	if req.Description != nil {
		description = *req.Description
	}

	if err := product.Update(name, description); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, product.GetDomainEvents()...); err != nil {
		return nil, err
	}
	product.ClearDomainEvents()

	return ToProductResponse(product, 0), nil
}

// AddOption adds a configurable option to an existing product
func (s *ProductService) AddOption(ctx context.Context, id uuid.UUID, req CreateOptionRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByIDWithOptions(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Product not found")
		}
		return nil, err
	}

	if _, err := product.AddOption(req.Name, req.Values); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	return ToProductResponse(product, 0), nil
}

// Delete deletes a product together with its options, variants and stock
// rows. The delete is refused while any bundle still references the
// product or one of its variants.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.FindByIDWithOptions(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("NOT_FOUND", "Product not found")
		}
		return err
	}

	referenced, err := s.bundleRepo.ExistsReferencing(ctx, catalog.ProductRef(id))
	if err != nil {
		return err
	}
	if referenced {
		return shared.NewDomainError("ITEM_IN_USE", "Product is referenced by a bundle")
	}

	// Zero filter means no pagination: every variant is checked.
	variants, err := s.variantRepo.FindByProduct(ctx, id, shared.Filter{})
	if err != nil {
		return err
	}
	for i := range variants {
		referenced, err := s.bundleRepo.ExistsReferencing(ctx, catalog.VariantRef(variants[i].ID))
		if err != nil {
			return err
		}
		if referenced {
			return shared.NewDomainError("ITEM_IN_USE", "A variant of this product is referenced by a bundle")
		}
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.ProductRepo().Delete(ctx, id); err != nil {
			return err
		}
		if err := repos.StockRepo().DeleteByItem(ctx, catalog.ProductRef(id)); err != nil {
			return err
		}
		for i := range variants {
			if err := repos.StockRepo().DeleteByItem(ctx, catalog.VariantRef(variants[i].ID)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	return s.publisher.Publish(ctx, catalog.NewProductDeletedEvent(product))
}

// GetVariant returns a single variant with its attributes
func (s *ProductService) GetVariant(ctx context.Context, id uuid.UUID) (*VariantResponse, error) {
	variant, err := s.variantRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Variant not found")
		}
		return nil, err
	}
	resp := ToVariantResponse(variant)
	return &resp, nil
}

// ListVariants returns the variants of a product
func (s *ProductService) ListVariants(ctx context.Context, productID uuid.UUID, filter shared.Filter) (*shared.Paginated[VariantResponse], error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Product not found")
		}
		return nil, err
	}

	variants, err := s.variantRepo.FindByProduct(ctx, productID, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.variantRepo.CountByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	items := make([]VariantResponse, 0, len(variants))
	for i := range variants {
		items = append(items, ToVariantResponse(&variants[i]))
	}
	page := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &page, nil
}

// DeleteVariant deletes a single variant and its stock rows, refusing
// while a bundle still references it
func (s *ProductService) DeleteVariant(ctx context.Context, id uuid.UUID) error {
	if _, err := s.variantRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("NOT_FOUND", "Variant not found")
		}
		return err
	}

	referenced, err := s.bundleRepo.ExistsReferencing(ctx, catalog.VariantRef(id))
	if err != nil {
		return err
	}
	if referenced {
		return shared.NewDomainError("ITEM_IN_USE", "Variant is referenced by a bundle")
	}

	return s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.VariantRepo().Delete(ctx, id); err != nil {
			return err
		}
		return repos.StockRepo().DeleteByItem(ctx, catalog.VariantRef(id))
	})
}
