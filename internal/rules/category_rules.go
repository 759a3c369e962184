package rules

import (
	"context"
	"fmt"

	"catalog-api/internal/domain"
)

// CategoryRules guards category mutations.
type CategoryRules struct {
	categories EntityLookup
}

func NewCategoryRules(categories EntityLookup) *CategoryRules {
	return &CategoryRules{categories: categories}
}

// RequireExists fails with ErrNotFound when no category has the given id.
func (r *CategoryRules) RequireExists(ctx context.Context, id int) error {
	exists, err := r.categories.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check category %d: %w", id, err)
	}
	if !exists {
		return domain.NotFound("category not found. id: %d", id)
	}
	return nil
}

// RequireNameAvailable fails with ErrConflict when any category already uses name.
func (r *CategoryRules) RequireNameAvailable(ctx context.Context, name string) error {
	exists, err := r.categories.ExistsByName(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to check category name: %w", err)
	}
	if exists {
		return domain.Conflict("category name already exists: %s", name)
	}
	return nil
}

// RequireNameAvailableForUpdate fails with ErrConflict when a category other
// than id already uses name.
func (r *CategoryRules) RequireNameAvailableForUpdate(ctx context.Context, id int, name string) error {
	exists, err := r.categories.ExistsByNameAndIDNot(ctx, name, id)
	if err != nil {
		return fmt.Errorf("failed to check category name: %w", err)
	}
	if exists {
		return domain.Conflict("category name already belongs to another category: %s", name)
	}
	return nil
}
