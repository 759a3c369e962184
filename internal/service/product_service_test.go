package service

import (
	"context"
	"errors"
	"testing"

	"catalog-api/internal/domain"
	"catalog-api/internal/repository/repositorytest"
	"catalog-api/internal/rules"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type productFixture struct {
	categories  *repositorytest.CategoryRepository
	products    *repositorytest.ProductRepository
	categorySvc CategoryService
	productSvc  ProductService
}

func newProductFixture() *productFixture {
	categories := repositorytest.NewCategoryRepository()
	products := repositorytest.NewProductRepository(categories)
	return &productFixture{
		categories:  categories,
		products:    products,
		categorySvc: NewCategoryService(categories, rules.NewCategoryRules(categories)),
		productSvc:  NewProductService(products, categories, rules.NewProductRules(products)),
	}
}

func laptopInput(categoryID int) CreateProductInput {
	return CreateProductInput{
		Name:         "Laptop",
		Description:  "14 inch",
		UnitPrice:    999.99,
		UnitsInStock: 5,
		ImageURL:     "https://img.example.com/laptop.png",
		CategoryID:   categoryID,
	}
}

func TestProductService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("ReturnsProductWithCategory", func(t *testing.T) {
		f := newProductFixture()
		electronics, err := f.categorySvc.Create(ctx, "Electronics", "")
		require.NoError(t, err)

		created, err := f.productSvc.Create(ctx, laptopInput(electronics.ID))
		require.NoError(t, err)
		assert.Equal(t, 1, created.ID)
		assert.Equal(t, "Laptop", created.Name)
		assert.Equal(t, 999.99, created.UnitPrice)
		assert.Equal(t, 5, created.UnitsInStock)
		assert.Equal(t, electronics.ID, created.CategoryID)
		assert.Equal(t, "Electronics", created.CategoryName)
		assert.False(t, created.CreatedDate.IsZero())
	})

	t.Run("ZeroPriceIsAccepted", func(t *testing.T) {
		f := newProductFixture()
		electronics, err := f.categorySvc.Create(ctx, "Electronics", "")
		require.NoError(t, err)

		input := laptopInput(electronics.ID)
		input.UnitPrice = 0
		created, err := f.productSvc.Create(ctx, input)
		require.NoError(t, err)
		assert.Zero(t, created.UnitPrice)
	})

	t.Run("NegativePriceIsInvalidWithoutWrite", func(t *testing.T) {
		f := newProductFixture()
		electronics, err := f.categorySvc.Create(ctx, "Electronics", "")
		require.NoError(t, err)

		input := laptopInput(electronics.ID)
		input.UnitPrice = -0.01
		_, err = f.productSvc.Create(ctx, input)
		require.ErrorIs(t, err, domain.ErrInvalidArgument)
		assert.Zero(t, f.products.Writes)
	})

	t.Run("MissingCategoryIsNotFoundWithoutWrite", func(t *testing.T) {
		f := newProductFixture()

		_, err := f.productSvc.Create(ctx, laptopInput(99))
		require.ErrorIs(t, err, domain.ErrNotFound)
		assert.Contains(t, err.Error(), "99")
		assert.Zero(t, f.products.Writes)
		assert.Zero(t, f.products.Len())
	})

	t.Run("DuplicateNameIsCheckedBeforeCategory", func(t *testing.T) {
		f := newProductFixture()
		electronics, err := f.categorySvc.Create(ctx, "Electronics", "")
		require.NoError(t, err)
		_, err = f.productSvc.Create(ctx, laptopInput(electronics.ID))
		require.NoError(t, err)

		_, err = f.productSvc.Create(ctx, laptopInput(99))
		require.ErrorIs(t, err, domain.ErrConflict)
	})
}

// Electronics gets a Laptop; a second Laptop is rejected, and an update to a
// negative price leaves the stored product untouched.
func TestProductService_LaptopScenario(t *testing.T) {
	ctx := context.Background()
	f := newProductFixture()

	electronics, err := f.categorySvc.Create(ctx, "Electronics", "Devices")
	require.NoError(t, err)

	laptop, err := f.productSvc.Create(ctx, laptopInput(electronics.ID))
	require.NoError(t, err)

	_, err = f.productSvc.Create(ctx, laptopInput(electronics.ID))
	require.ErrorIs(t, err, domain.ErrConflict)

	writes := f.products.Writes
	update := UpdateProductInput{ID: laptop.ID, CreateProductInput: laptopInput(electronics.ID)}
	update.UnitPrice = -1
	_, err = f.productSvc.Update(ctx, update)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Equal(t, writes, f.products.Writes)

	detail, err := f.productSvc.GetByID(ctx, laptop.ID)
	require.NoError(t, err)
	assert.Equal(t, 999.99, detail.UnitPrice)
	assert.Equal(t, "Electronics", detail.CategoryName)
	assert.Nil(t, detail.UpdatedDate)

	list, err := f.productSvc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Laptop", list[0].Name)
}

func TestProductService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("ReplacesFieldsAndCategory", func(t *testing.T) {
		f := newProductFixture()
		electronics, err := f.categorySvc.Create(ctx, "Electronics", "")
		require.NoError(t, err)
		office, err := f.categorySvc.Create(ctx, "Office", "")
		require.NoError(t, err)
		laptop, err := f.productSvc.Create(ctx, laptopInput(electronics.ID))
		require.NoError(t, err)

		updated, err := f.productSvc.Update(ctx, UpdateProductInput{
			ID: laptop.ID,
			CreateProductInput: CreateProductInput{
				Name:         "Laptop",
				Description:  "15 inch",
				UnitPrice:    1299,
				UnitsInStock: 2,
				ImageURL:     "",
				CategoryID:   office.ID,
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "15 inch", updated.Description)
		assert.Equal(t, office.ID, updated.CategoryID)
		assert.Equal(t, "Office", updated.CategoryName)
		require.NotNil(t, updated.UpdatedDate)

		detail, err := f.productSvc.GetByID(ctx, laptop.ID)
		require.NoError(t, err)
		assert.Equal(t, 1299.0, detail.UnitPrice)
		assert.Equal(t, 2, detail.UnitsInStock)
		assert.Equal(t, "Office", detail.CategoryName)
	})

	t.Run("UnknownIDIsNotFound", func(t *testing.T) {
		f := newProductFixture()
		electronics, err := f.categorySvc.Create(ctx, "Electronics", "")
		require.NoError(t, err)

		_, err = f.productSvc.Update(ctx, UpdateProductInput{ID: 3, CreateProductInput: laptopInput(electronics.ID)})
		require.ErrorIs(t, err, domain.ErrNotFound)
		assert.Zero(t, f.products.Writes)
	})

	t.Run("NameOfAnotherProductIsConflict", func(t *testing.T) {
		f := newProductFixture()
		electronics, err := f.categorySvc.Create(ctx, "Electronics", "")
		require.NoError(t, err)
		_, err = f.productSvc.Create(ctx, laptopInput(electronics.ID))
		require.NoError(t, err)
		phoneInput := laptopInput(electronics.ID)
		phoneInput.Name = "Phone"
		phone, err := f.productSvc.Create(ctx, phoneInput)
		require.NoError(t, err)

		_, err = f.productSvc.Update(ctx, UpdateProductInput{ID: phone.ID, CreateProductInput: laptopInput(electronics.ID)})
		require.ErrorIs(t, err, domain.ErrConflict)

		detail, err := f.productSvc.GetByID(ctx, phone.ID)
		require.NoError(t, err)
		assert.Equal(t, "Phone", detail.Name)
	})

	t.Run("MissingCategoryIsNotFound", func(t *testing.T) {
		f := newProductFixture()
		electronics, err := f.categorySvc.Create(ctx, "Electronics", "")
		require.NoError(t, err)
		laptop, err := f.productSvc.Create(ctx, laptopInput(electronics.ID))
		require.NoError(t, err)
		writes := f.products.Writes

		_, err = f.productSvc.Update(ctx, UpdateProductInput{ID: laptop.ID, CreateProductInput: laptopInput(42)})
		require.ErrorIs(t, err, domain.ErrNotFound)
		assert.Equal(t, writes, f.products.Writes)
	})
}

func TestProductService_Delete(t *testing.T) {
	ctx := context.Background()
	f := newProductFixture()
	electronics, err := f.categorySvc.Create(ctx, "Electronics", "")
	require.NoError(t, err)
	laptop, err := f.productSvc.Create(ctx, laptopInput(electronics.ID))
	require.NoError(t, err)

	_, err = f.productSvc.Delete(ctx, 55)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 1, f.products.Len())

	deleted, err := f.productSvc.Delete(ctx, laptop.ID)
	require.NoError(t, err)
	assert.Equal(t, DeletedProduct{ID: laptop.ID, Name: "Laptop"}, *deleted)

	_, err = f.productSvc.GetByID(ctx, laptop.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductService_ProductOutlivesItsCategory(t *testing.T) {
	ctx := context.Background()
	f := newProductFixture()
	electronics, err := f.categorySvc.Create(ctx, "Electronics", "")
	require.NoError(t, err)
	laptop, err := f.productSvc.Create(ctx, laptopInput(electronics.ID))
	require.NoError(t, err)

	_, err = f.categorySvc.Delete(ctx, electronics.ID)
	require.NoError(t, err)

	detail, err := f.productSvc.GetByID(ctx, laptop.ID)
	require.NoError(t, err)
	assert.Zero(t, detail.CategoryID)
	assert.Empty(t, detail.CategoryName)

	list, err := f.productSvc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Zero(t, list[0].CategoryID)
}

func TestProperty_ProductPriceGate(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("create succeeds exactly when price >= 0", prop.ForAll(
		func(price float64) bool {
			f := newProductFixture()
			ctx := context.Background()
			electronics, err := f.categorySvc.Create(ctx, "Electronics", "")
			if err != nil {
				t.Logf("FAIL: category setup: %v", err)
				return false
			}

			input := laptopInput(electronics.ID)
			input.UnitPrice = price
			_, err = f.productSvc.Create(ctx, input)

			if price >= 0 {
				return err == nil && f.products.Len() == 1
			}
			return errors.Is(err, domain.ErrInvalidArgument) && f.products.Writes == 0
		},
		gen.Float64Range(-1e6, 1e6),
	))

	properties.Property("unknown category never produces a product", prop.ForAll(
		func(categoryID int) bool {
			f := newProductFixture()
			_, err := f.productSvc.Create(context.Background(), laptopInput(categoryID))
			return errors.Is(err, domain.ErrNotFound) && f.products.Writes == 0
		},
		gen.IntRange(1, 10000),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
