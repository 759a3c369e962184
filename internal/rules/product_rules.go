package rules

import (
	"context"
	"fmt"

	"catalog-api/internal/domain"
)

// ProductRules guards product mutations.
type ProductRules struct {
	products EntityLookup
}

func NewProductRules(products EntityLookup) *ProductRules {
	return &ProductRules{products: products}
}

// RequireExists fails with ErrNotFound when no product has the given id.
func (r *ProductRules) RequireExists(ctx context.Context, id int) error {
	exists, err := r.products.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check product %d: %w", id, err)
	}
	if !exists {
		return domain.NotFound("product not found. id: %d", id)
	}
	return nil
}

// RequireNameAvailable fails with ErrConflict when any product already uses name.
func (r *ProductRules) RequireNameAvailable(ctx context.Context, name string) error {
	exists, err := r.products.ExistsByName(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to check product name: %w", err)
	}
	if exists {
		return domain.Conflict("product name already exists: %s", name)
	}
	return nil
}

// RequireNameAvailableForUpdate fails with ErrConflict when a product other
// than id already uses name.
func (r *ProductRules) RequireNameAvailableForUpdate(ctx context.Context, id int, name string) error {
	exists, err := r.products.ExistsByNameAndIDNot(ctx, name, id)
	if err != nil {
		return fmt.Errorf("failed to check product name: %w", err)
	}
	if exists {
		return domain.Conflict("product name already belongs to another product: %s", name)
	}
	return nil
}

// RequirePriceValid fails with ErrInvalidArgument unless price >= 0. Zero is
// allowed; NaN is not.
func (r *ProductRules) RequirePriceValid(price float64) error {
	if !(price >= 0) {
		return domain.InvalidArgument("unit price cannot be negative: %v", price)
	}
	return nil
}
