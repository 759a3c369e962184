// Package repositorytest provides in-memory CategoryRepository and
// ProductRepository implementations for service and transport tests.
package repositorytest

import (
	"context"
	"sync"
	"time"

	"catalog-api/internal/domain"
	"catalog-api/internal/repository"
)

var (
	_ repository.CategoryRepository = (*CategoryRepository)(nil)
	_ repository.ProductRepository  = (*ProductRepository)(nil)
)

// CategoryRepository keeps categories in memory. Ids grow monotonically and
// Writes counts every Create, Update and Delete call, including rejected ones.
// When Failure is set every method returns it.
type CategoryRepository struct {
	mu         sync.Mutex
	categories map[int]*domain.Category
	nextID     int

	Writes  int
	Failure error
}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{
		categories: make(map[int]*domain.Category),
		nextID:     1,
	}
}

// Len returns the number of stored categories.
func (m *CategoryRepository) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.categories)
}

// Stored returns a copy of the stored category, or nil.
func (m *CategoryRepository) Stored(id int) *domain.Category {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lookup(id)
}

func (m *CategoryRepository) lookup(id int) *domain.Category {
	c, ok := m.categories[id]
	if !ok {
		return nil
	}
	found := *c
	return &found
}

func (m *CategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Writes++
	if m.Failure != nil {
		return m.Failure
	}
	for _, c := range m.categories {
		if c.Name == category.Name {
			return domain.Conflict("category name already exists: %s", category.Name)
		}
	}
	category.ID = m.nextID
	category.CreatedDate = time.Now()
	category.Active = true
	m.nextID++

	stored := *category
	m.categories[category.ID] = &stored
	return nil
}

func (m *CategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Writes++
	if m.Failure != nil {
		return m.Failure
	}
	if _, ok := m.categories[category.ID]; !ok {
		return domain.NotFound("category not found. id: %d", category.ID)
	}
	now := time.Now()
	category.UpdatedDate = &now

	stored := *category
	m.categories[category.ID] = &stored
	return nil
}

func (m *CategoryRepository) Delete(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Writes++
	if m.Failure != nil {
		return m.Failure
	}
	if _, ok := m.categories[id]; !ok {
		return domain.NotFound("category not found. id: %d", id)
	}
	delete(m.categories, id)
	return nil
}

func (m *CategoryRepository) FindByID(ctx context.Context, id int) (*domain.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Failure != nil {
		return nil, m.Failure
	}
	found := m.lookup(id)
	if found == nil {
		return nil, domain.NotFound("category not found. id: %d", id)
	}
	return found, nil
}

func (m *CategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Failure != nil {
		return nil, m.Failure
	}
	categories := []*domain.Category{}
	for id := 1; id < m.nextID; id++ {
		if found := m.lookup(id); found != nil {
			categories = append(categories, found)
		}
	}
	return categories, nil
}

func (m *CategoryRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Failure != nil {
		return false, m.Failure
	}
	_, ok := m.categories[id]
	return ok, nil
}

func (m *CategoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return m.ExistsByNameAndIDNot(ctx, name, 0)
}

func (m *CategoryRepository) ExistsByNameAndIDNot(ctx context.Context, name string, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Failure != nil {
		return false, m.Failure
	}
	for _, c := range m.categories {
		if c.Name == name && c.ID != id {
			return true, nil
		}
	}
	return false, nil
}

// ProductRepository keeps products in memory and joins their category ids
// against a CategoryRepository on read, like the SQL LEFT JOIN does. A deleted
// category therefore leaves its products without one.
type ProductRepository struct {
	mu         sync.Mutex
	products   map[int]*domain.Product
	categoryOf map[int]int
	categories *CategoryRepository
	nextID     int

	Writes  int
	Failure error
}

func NewProductRepository(categories *CategoryRepository) *ProductRepository {
	return &ProductRepository{
		products:   make(map[int]*domain.Product),
		categoryOf: make(map[int]int),
		categories: categories,
		nextID:     1,
	}
}

// Len returns the number of stored products.
func (m *ProductRepository) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.products)
}

func (m *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Writes++
	if m.Failure != nil {
		return m.Failure
	}
	for _, p := range m.products {
		if p.Name == product.Name {
			return domain.Conflict("product name already exists: %s", product.Name)
		}
	}
	product.ID = m.nextID
	product.CreatedDate = time.Now()
	product.Active = true
	m.nextID++
	m.store(product)
	return nil
}

func (m *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Writes++
	if m.Failure != nil {
		return m.Failure
	}
	if _, ok := m.products[product.ID]; !ok {
		return domain.NotFound("product not found. id: %d", product.ID)
	}
	now := time.Now()
	product.UpdatedDate = &now
	m.store(product)
	return nil
}

func (m *ProductRepository) store(product *domain.Product) {
	stored := *product
	stored.Category = nil
	m.products[product.ID] = &stored
	m.categoryOf[product.ID] = product.CategoryID()
}

func (m *ProductRepository) Delete(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Writes++
	if m.Failure != nil {
		return m.Failure
	}
	if _, ok := m.products[id]; !ok {
		return domain.NotFound("product not found. id: %d", id)
	}
	delete(m.products, id)
	delete(m.categoryOf, id)
	return nil
}

func (m *ProductRepository) FindByID(ctx context.Context, id int) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Failure != nil {
		return nil, m.Failure
	}
	p, ok := m.products[id]
	if !ok {
		return nil, domain.NotFound("product not found. id: %d", id)
	}
	return m.joined(p), nil
}

func (m *ProductRepository) joined(p *domain.Product) *domain.Product {
	found := *p
	found.Category = m.categories.Stored(m.categoryOf[p.ID])
	return &found
}

func (m *ProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Failure != nil {
		return nil, m.Failure
	}
	products := []*domain.Product{}
	for id := 1; id < m.nextID; id++ {
		if p, ok := m.products[id]; ok {
			products = append(products, m.joined(p))
		}
	}
	return products, nil
}

func (m *ProductRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Failure != nil {
		return false, m.Failure
	}
	_, ok := m.products[id]
	return ok, nil
}

func (m *ProductRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return m.ExistsByNameAndIDNot(ctx, name, 0)
}

func (m *ProductRepository) ExistsByNameAndIDNot(ctx context.Context, name string, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Failure != nil {
		return false, m.Failure
	}
	for _, p := range m.products {
		if p.Name == name && p.ID != id {
			return true, nil
		}
	}
	return false, nil
}
