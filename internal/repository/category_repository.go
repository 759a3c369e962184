package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"catalog-api/internal/domain"

	sq "github.com/Masterminds/squirrel"
)

const categoriesTable = "categories"

var categoryColumns = []string{
	"id", "name", "description", "created_date", "updated_date", "deleted_date", "is_active",
}

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id int) error
	FindByID(ctx context.Context, id int) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	ExistsByID(ctx context.Context, id int) (bool, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	ExistsByNameAndIDNot(ctx context.Context, name string, id int) (bool, error)
}

type categoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository creates a new instance of CategoryRepository
func NewCategoryRepository(db *sql.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// Create inserts a new category. The store assigns the id, created date and
// active flag and writes them back into category.
func (r *categoryRepository) Create(ctx context.Context, category *domain.Category) error {
	err := psql.Insert(categoriesTable).
		Columns("name", "description").
		Values(category.Name, category.Description).
		Suffix("RETURNING id, created_date, is_active").
		RunWith(r.db).
		QueryRowContext(ctx).
		Scan(&category.ID, &category.CreatedDate, &category.Active)

	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict("category name already exists: %s", category.Name)
		}
		return fmt.Errorf("failed to create category: %w", err)
	}

	return nil
}

// Update overwrites name and description; updated_date is refreshed by the store.
func (r *categoryRepository) Update(ctx context.Context, category *domain.Category) error {
	var updated sql.NullTime

	err := psql.Update(categoriesTable).
		Set("name", category.Name).
		Set("description", category.Description).
		Where(sq.Eq{"id": category.ID}).
		Suffix("RETURNING updated_date").
		RunWith(r.db).
		QueryRowContext(ctx).
		Scan(&updated)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFound("category not found. id: %d", category.ID)
		}
		if isUniqueViolation(err) {
			return domain.Conflict("category name already belongs to another category: %s", category.Name)
		}
		return fmt.Errorf("failed to update category: %w", err)
	}

	category.UpdatedDate = nullableTime(updated)
	return nil
}

// Delete physically removes a category
func (r *categoryRepository) Delete(ctx context.Context, id int) error {
	result, err := psql.Delete(categoriesTable).
		Where(sq.Eq{"id": id}).
		RunWith(r.db).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return domain.NotFound("category not found. id: %d", id)
	}

	return nil
}

// FindByID retrieves a category by ID
func (r *categoryRepository) FindByID(ctx context.Context, id int) (*domain.Category, error) {
	row := psql.Select(categoryColumns...).
		From(categoriesTable).
		Where(sq.Eq{"id": id}).
		RunWith(r.db).
		QueryRowContext(ctx)

	category, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound("category not found. id: %d", id)
		}
		return nil, fmt.Errorf("failed to find category by ID: %w", err)
	}

	return category, nil
}

// List retrieves all categories ordered by id
func (r *categoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	rows, err := psql.Select(categoryColumns...).
		From(categoriesTable).
		OrderBy("id ASC").
		RunWith(r.db).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []*domain.Category{}
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

func (r *categoryRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	return r.exists(ctx, sq.Eq{"id": id})
}

func (r *categoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return r.exists(ctx, sq.Eq{"name": name})
}

func (r *categoryRepository) ExistsByNameAndIDNot(ctx context.Context, name string, id int) (bool, error) {
	return r.exists(ctx, sq.And{sq.Eq{"name": name}, sq.NotEq{"id": id}})
}

func (r *categoryRepository) exists(ctx context.Context, where sq.Sqlizer) (bool, error) {
	var found bool
	err := existsQuery(categoriesTable, where).
		RunWith(r.db).
		QueryRowContext(ctx).
		Scan(&found)
	if err != nil {
		return false, fmt.Errorf("failed to check category existence: %w", err)
	}
	return found, nil
}

func scanCategory(row sq.RowScanner) (*domain.Category, error) {
	var (
		category         domain.Category
		updated, deleted sql.NullTime
	)

	err := row.Scan(
		&category.ID,
		&category.Name,
		&category.Description,
		&category.CreatedDate,
		&updated,
		&deleted,
		&category.Active,
	)
	if err != nil {
		return nil, err
	}

	category.UpdatedDate = nullableTime(updated)
	category.DeletedDate = nullableTime(deleted)
	return &category, nil
}
