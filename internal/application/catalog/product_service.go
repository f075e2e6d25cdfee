package catalog

import (
	"context"

	"github.com/fakturo/backend/internal/domain/catalog"
	"github.com/fakturo/backend/internal/domain/document"
	"github.com/fakturo/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ProductService handles product-related business operations
type ProductService struct {
	productRepo catalog.ProductRepository
	itemRepo    document.ItemRepository
	logger      *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	itemRepo document.ItemRepository,
	logger *zap.Logger,
) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		itemRepo:    itemRepo,
		logger:      logger,
	}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	unit, err := catalog.ParseUnitType(req.Unit)
	if err != nil {
		return nil, err
	}

	exists, err := s.productRepo.ExistsByName(ctx, req.Name, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewConflictError("Product with this name already exists")
	}

	product, err := catalog.NewProduct(req.Name, req.Description, req.UnitPrice, unit)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		s.logger.Error("Failed to save product", zap.Error(err))
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uint) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// List returns all products. A storage failure degrades to an empty
// list rather than an error.
func (s *ProductService) List(ctx context.Context) []ProductResponse {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list products", zap.Error(err))
		return []ProductResponse{}
	}
	return ToProductResponses(products)
}

// Update applies a partial update to a product. Price changes never
// touch existing document items, which keep the price captured when
// they were added.
func (s *ProductService) Update(ctx context.Context, id uint, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		exists, err := s.productRepo.ExistsByName(ctx, *req.Name, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewConflictError("Product with this name already exists")
		}
		if err := product.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		product.SetDescription(*req.Description)
	}
	if req.UnitPrice != nil {
		if err := product.ChangePrice(*req.UnitPrice); err != nil {
			return nil, err
		}
	}
	if req.Unit != nil {
		unit, err := catalog.ParseUnitType(*req.Unit)
		if err != nil {
			return nil, err
		}
		if err := product.ChangeUnit(unit); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		s.logger.Error("Failed to update product", zap.Uint("product_id", id), zap.Error(err))
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Delete removes a product. Products referenced by document items
// cannot be deleted.
func (s *ProductService) Delete(ctx context.Context, id uint) error {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		return err
	}

	referenced, err := s.itemRepo.ExistsForProduct(ctx, id)
	if err != nil {
		return err
	}
	if referenced {
		return shared.NewConflictError("Product is referenced by existing document items")
	}

	return s.productRepo.Delete(ctx, id)
}
