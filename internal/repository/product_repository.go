package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"catalog-api/internal/domain"

	sq "github.com/Masterminds/squirrel"
)

const productsTable = "products"

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id int) error
	FindByID(ctx context.Context, id int) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	ExistsByID(ctx context.Context, id int) (bool, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	ExistsByNameAndIDNot(ctx context.Context, name string, id int) (bool, error)
}

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new instance of ProductRepository
func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

// Create inserts a new product. The store assigns the id, created date and
// active flag and writes them back into product.
func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	err := psql.Insert(productsTable).
		Columns("name", "description", "unit_price", "units_in_stock", "image_url", "category_id").
		Values(
			product.Name,
			product.Description,
			product.UnitPrice,
			product.UnitsInStock,
			product.ImageURL,
			categoryIDValue(product),
		).
		Suffix("RETURNING id, created_date, is_active").
		RunWith(r.db).
		QueryRowContext(ctx).
		Scan(&product.ID, &product.CreatedDate, &product.Active)

	if err != nil {
		return translateProductWriteError(err, product)
	}

	return nil
}

// Update overwrites every mutable column; updated_date is refreshed by the store.
func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	var updated sql.NullTime

	err := psql.Update(productsTable).
		SetMap(map[string]interface{}{
			"name":           product.Name,
			"description":    product.Description,
			"unit_price":     product.UnitPrice,
			"units_in_stock": product.UnitsInStock,
			"image_url":      product.ImageURL,
			"category_id":    categoryIDValue(product),
		}).
		Where(sq.Eq{"id": product.ID}).
		Suffix("RETURNING updated_date").
		RunWith(r.db).
		QueryRowContext(ctx).
		Scan(&updated)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFound("product not found. id: %d", product.ID)
		}
		return translateProductWriteError(err, product)
	}

	product.UpdatedDate = nullableTime(updated)
	return nil
}

// Delete physically removes a product
func (r *productRepository) Delete(ctx context.Context, id int) error {
	result, err := psql.Delete(productsTable).
		Where(sq.Eq{"id": id}).
		RunWith(r.db).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return domain.NotFound("product not found. id: %d", id)
	}

	return nil
}

// FindByID retrieves a product and its category, if any
func (r *productRepository) FindByID(ctx context.Context, id int) (*domain.Product, error) {
	row := selectProducts().
		Where(sq.Eq{"p.id": id}).
		RunWith(r.db).
		QueryRowContext(ctx)

	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound("product not found. id: %d", id)
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}

	return product, nil
}

// List retrieves every product ordered by id
func (r *productRepository) List(ctx context.Context) ([]*domain.Product, error) {
	rows, err := selectProducts().
		OrderBy("p.id ASC").
		RunWith(r.db).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []*domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

func (r *productRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	return r.exists(ctx, sq.Eq{"id": id})
}

func (r *productRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return r.exists(ctx, sq.Eq{"name": name})
}

func (r *productRepository) ExistsByNameAndIDNot(ctx context.Context, name string, id int) (bool, error) {
	return r.exists(ctx, sq.And{sq.Eq{"name": name}, sq.NotEq{"id": id}})
}

func (r *productRepository) exists(ctx context.Context, where sq.Sqlizer) (bool, error) {
	var found bool
	err := existsQuery(productsTable, where).
		RunWith(r.db).
		QueryRowContext(ctx).
		Scan(&found)
	if err != nil {
		return false, fmt.Errorf("failed to check product existence: %w", err)
	}
	return found, nil
}

func selectProducts() sq.SelectBuilder {
	return psql.Select(
		"p.id", "p.name", "p.description", "p.unit_price", "p.units_in_stock", "p.image_url",
		"p.created_date", "p.updated_date", "p.deleted_date", "p.is_active",
		"c.id", "c.name", "c.description",
	).
		From(productsTable + " p").
		LeftJoin(categoriesTable + " c ON c.id = p.category_id")
}

func scanProduct(row sq.RowScanner) (*domain.Product, error) {
	var (
		product          domain.Product
		updated, deleted sql.NullTime
		categoryID       sql.NullInt64
		categoryName     sql.NullString
		categoryDesc     sql.NullString
	)

	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.UnitPrice,
		&product.UnitsInStock,
		&product.ImageURL,
		&product.CreatedDate,
		&updated,
		&deleted,
		&product.Active,
		&categoryID,
		&categoryName,
		&categoryDesc,
	)
	if err != nil {
		return nil, err
	}

	product.UpdatedDate = nullableTime(updated)
	product.DeletedDate = nullableTime(deleted)

	if categoryID.Valid {
		product.Category = &domain.Category{
			ID:          int(categoryID.Int64),
			Name:        categoryName.String,
			Description: categoryDesc.String,
		}
	}

	return &product, nil
}

// categoryIDValue maps a missing category reference to NULL.
func categoryIDValue(product *domain.Product) interface{} {
	if product.Category == nil {
		return nil
	}
	return product.Category.ID
}

func translateProductWriteError(err error, product *domain.Product) error {
	switch {
	case isUniqueViolation(err):
		return domain.Conflict("product name already exists: %s", product.Name)
	case isForeignKeyViolation(err):
		return domain.NotFound("category not found. id: %d", product.CategoryID())
	default:
		return fmt.Errorf("failed to write product: %w", err)
	}
}
