package service

import (
	"context"
	"fmt"

	"catalog-api/internal/domain"
	"catalog-api/internal/repository"
	"catalog-api/internal/rules"
)

// CategoryService defines the category lifecycle operations
type CategoryService interface {
	ListAll(ctx context.Context) ([]CategorySummary, error)
	GetByID(ctx context.Context, id int) (*CategoryDetail, error)
	Create(ctx context.Context, name, description string) (*CreatedCategory, error)
	Update(ctx context.Context, id int, name, description string) (*UpdatedCategory, error)
	Delete(ctx context.Context, id int) (*DeletedCategory, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	rules        *rules.CategoryRules
}

// NewCategoryService creates a new instance of CategoryService
func NewCategoryService(categoryRepo repository.CategoryRepository, categoryRules *rules.CategoryRules) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		rules:        categoryRules,
	}
}

// ListAll returns every category as id/name pairs
func (s *categoryService) ListAll(ctx context.Context) ([]CategorySummary, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	summaries := make([]CategorySummary, 0, len(categories))
	for _, c := range categories {
		summaries = append(summaries, CategorySummary{ID: c.ID, Name: c.Name})
	}
	return summaries, nil
}

// GetByID returns the detail view of one category
func (s *categoryService) GetByID(ctx context.Context, id int) (*CategoryDetail, error) {
	if err := s.rules.RequireExists(ctx, id); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load category: %w", err)
	}

	return &CategoryDetail{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		CreatedDate: category.CreatedDate,
		UpdatedDate: category.UpdatedDate,
		Active:      category.Active,
	}, nil
}

// Create adds a category with a name no other category uses
func (s *categoryService) Create(ctx context.Context, name, description string) (*CreatedCategory, error) {
	if err := s.rules.RequireNameAvailable(ctx, name); err != nil {
		return nil, err
	}

	category := &domain.Category{
		Name:        name,
		Description: description,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreatedCategory{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		CreatedDate: category.CreatedDate,
	}, nil
}

// Update renames and redescribes an existing category. Existence is checked
// before uniqueness so an unknown id reports not found.
func (s *categoryService) Update(ctx context.Context, id int, name, description string) (*UpdatedCategory, error) {
	if err := s.rules.RequireExists(ctx, id); err != nil {
		return nil, err
	}
	if err := s.rules.RequireNameAvailableForUpdate(ctx, id, name); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load category: %w", err)
	}

	category.Name = name
	category.Description = description

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &UpdatedCategory{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		UpdatedDate: category.UpdatedDate,
	}, nil
}

// Delete removes a category; products referencing it are left in place
func (s *categoryService) Delete(ctx context.Context, id int) (*DeletedCategory, error) {
	if err := s.rules.RequireExists(ctx, id); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load category: %w", err)
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}

	return &DeletedCategory{ID: category.ID, Name: category.Name}, nil
}
