package service

import (
	"context"
	"fmt"

	"catalog-api/internal/domain"
	"catalog-api/internal/repository"
	"catalog-api/internal/rules"
)

// CreateProductInput carries the caller-supplied fields of a new product
type CreateProductInput struct {
	Name         string
	Description  string
	UnitPrice    float64
	UnitsInStock int
	ImageURL     string
	CategoryID   int
}

// UpdateProductInput carries the full replacement state of a product
type UpdateProductInput struct {
	ID int
	CreateProductInput
}

// ProductService defines the product lifecycle operations
type ProductService interface {
	ListAll(ctx context.Context) ([]ProductSummary, error)
	GetByID(ctx context.Context, id int) (*ProductDetail, error)
	Create(ctx context.Context, input CreateProductInput) (*CreatedProduct, error)
	Update(ctx context.Context, input UpdateProductInput) (*UpdatedProduct, error)
	Delete(ctx context.Context, id int) (*DeletedProduct, error)
}

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	rules        *rules.ProductRules
}

// NewProductService creates a new instance of ProductService
func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	productRules *rules.ProductRules,
) ProductService {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		rules:        productRules,
	}
}

// ListAll returns every product, including those whose category is gone
func (s *productService) ListAll(ctx context.Context) ([]ProductSummary, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	summaries := make([]ProductSummary, 0, len(products))
	for _, p := range products {
		summaries = append(summaries, toProductSummary(p))
	}
	return summaries, nil
}

// GetByID returns the detail view of one product
func (s *productService) GetByID(ctx context.Context, id int) (*ProductDetail, error) {
	if err := s.rules.RequireExists(ctx, id); err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load product: %w", err)
	}

	return toProductDetail(product), nil
}

// Create adds a product under an existing category
func (s *productService) Create(ctx context.Context, input CreateProductInput) (*CreatedProduct, error) {
	if err := s.rules.RequireNameAvailable(ctx, input.Name); err != nil {
		return nil, err
	}
	if err := s.rules.RequirePriceValid(input.UnitPrice); err != nil {
		return nil, err
	}

	category, err := s.resolveCategory(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}

	product := &domain.Product{Category: category}
	applyProductInput(product, input)

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return &CreatedProduct{
		ID:           product.ID,
		Name:         product.Name,
		Description:  product.Description,
		UnitPrice:    product.UnitPrice,
		UnitsInStock: product.UnitsInStock,
		ImageURL:     product.ImageURL,
		CategoryID:   category.ID,
		CategoryName: category.Name,
		CreatedDate:  product.CreatedDate,
	}, nil
}

// Update replaces every mutable field of an existing product, including its category
func (s *productService) Update(ctx context.Context, input UpdateProductInput) (*UpdatedProduct, error) {
	if err := s.rules.RequireExists(ctx, input.ID); err != nil {
		return nil, err
	}
	if err := s.rules.RequireNameAvailableForUpdate(ctx, input.ID, input.Name); err != nil {
		return nil, err
	}
	if err := s.rules.RequirePriceValid(input.UnitPrice); err != nil {
		return nil, err
	}

	category, err := s.resolveCategory(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product: %w", err)
	}

	applyProductInput(product, input.CreateProductInput)
	product.Category = category

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return &UpdatedProduct{
		ID:           product.ID,
		Name:         product.Name,
		Description:  product.Description,
		UnitPrice:    product.UnitPrice,
		UnitsInStock: product.UnitsInStock,
		ImageURL:     product.ImageURL,
		CategoryID:   category.ID,
		CategoryName: category.Name,
		UpdatedDate:  product.UpdatedDate,
	}, nil
}

// Delete removes a product
func (s *productService) Delete(ctx context.Context, id int) (*DeletedProduct, error) {
	if err := s.rules.RequireExists(ctx, id); err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load product: %w", err)
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete product: %w", err)
	}

	return &DeletedProduct{ID: product.ID, Name: product.Name}, nil
}

// resolveCategory loads the category a product must point at. A missing
// category is reported as not found.
func (s *productService) resolveCategory(ctx context.Context, categoryID int) (*domain.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if domain.IsBusinessError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to resolve category %d: %w", categoryID, err)
	}
	return category, nil
}

func applyProductInput(product *domain.Product, input CreateProductInput) {
	product.Name = input.Name
	product.Description = input.Description
	product.UnitPrice = input.UnitPrice
	product.UnitsInStock = input.UnitsInStock
	product.ImageURL = input.ImageURL
}
