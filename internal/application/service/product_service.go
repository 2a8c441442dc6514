package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sangkips/electrostore-api/internal/domain/entity"
	"github.com/sangkips/electrostore-api/internal/domain/repository"
	"github.com/sangkips/electrostore-api/internal/infrastructure/cache"
	"github.com/sangkips/electrostore-api/pkg/apperror"
	"github.com/sangkips/electrostore-api/pkg/pagination"
	"go.uber.org/zap"
)

// ProductService handles product-related operations
type ProductService struct {
	productRepo repository.ProductRepository
	cache       cache.ProductCache
	logger      *zap.Logger
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository, productCache cache.ProductCache, logger *zap.Logger) *ProductService {
	if productCache == nil {
		productCache = cache.NewNoopProductCache()
	}
	return &ProductService{
		productRepo: productRepo,
		cache:       productCache,
		logger:      logger.Named("product"),
	}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name         string
	Description  *string
	Category     string
	Price        float64
	Stock        int
	Image        *string
	Barcode      *string
	SerialNumber *string
	Manufacturer *string
}

// CreateProduct creates a new product
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewFieldError("name", "name is required")
	}
	if input.Price < 0 {
		return nil, apperror.NewFieldError("price", "price must not be negative")
	}
	if input.Stock < 0 {
		return nil, apperror.NewFieldError("stock", "stock must not be negative")
	}

	product := &entity.Product{
		Name:         name,
		Description:  input.Description,
		Category:     strings.TrimSpace(input.Category),
		Stock:        input.Stock,
		Image:        input.Image,
		Barcode:      input.Barcode,
		SerialNumber: input.SerialNumber,
		Manufacturer: input.Manufacturer,
	}
	product.SetPriceFromDecimal(input.Price)

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("product created", zap.String("product_id", product.ID.String()))
	return product, nil
}

// GetProductByID retrieves a product by ID, reading through the cache
func (s *ProductService) GetProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	if cached, ok, err := s.cache.Get(ctx, id); err != nil {
		s.logger.Warn("product cache read failed", zap.String("product_id", id.String()), zap.Error(err))
	} else if ok {
		return cached, nil
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if err := s.cache.Set(ctx, product); err != nil {
		s.logger.Warn("product cache write failed", zap.String("product_id", id.String()), zap.Error(err))
	}
	return product, nil
}

// ListProducts lists products with filtering
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	ID           uuid.UUID
	Name         *string
	Description  *string
	Category     *string
	Price        *float64
	Stock        *int
	Image        *string
	Barcode      *string
	SerialNumber *string
	Manufacturer *string
}

// UpdateProduct applies a partial update to a product
func (s *ProductService) UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperror.NewFieldError("name", "name is required")
		}
		product.Name = name
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, apperror.NewFieldError("price", "price must not be negative")
		}
		product.SetPriceFromDecimal(*input.Price)
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, apperror.NewFieldError("stock", "stock must not be negative")
		}
		product.Stock = *input.Stock
	}
	if input.Category != nil {
		product.Category = strings.TrimSpace(*input.Category)
	}
	if input.Description != nil {
		product.Description = input.Description
	}
	if input.Image != nil {
		product.Image = input.Image
	}
	if input.Barcode != nil {
		product.Barcode = input.Barcode
	}
	if input.SerialNumber != nil {
		product.SerialNumber = input.SerialNumber
	}
	if input.Manufacturer != nil {
		product.Manufacturer = input.Manufacturer
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	s.invalidate(ctx, product.ID)

	return product, nil
}

// DeleteProduct soft deletes a product. Past orders keep their lines.
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *ProductService) invalidate(ctx context.Context, id uuid.UUID) {
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Warn("product cache invalidation failed", zap.String("product_id", id.String()), zap.Error(err))
	}
}
