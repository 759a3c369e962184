package service

import (
	"time"

	"catalog-api/internal/domain"
)

// CategorySummary is the list projection of a category.
type CategorySummary struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CategoryDetail is the single-category projection.
type CategoryDetail struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CreatedDate time.Time  `json:"createdDate"`
	UpdatedDate *time.Time `json:"updatedDate"`
	Active      bool       `json:"active"`
}

type CreatedCategory struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedDate time.Time `json:"createdDate"`
}

type UpdatedCategory struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	UpdatedDate *time.Time `json:"updatedDate"`
}

type DeletedCategory struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ProductSummary is the list projection of a product. Category fields stay
// zero/omitted for products without a category.
type ProductSummary struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	UnitPrice    float64 `json:"unitPrice"`
	UnitsInStock int     `json:"unitsInStock"`
	ImageURL     string  `json:"imageUrl"`
	CategoryID   int     `json:"categoryId"`
	CategoryName string  `json:"categoryName,omitempty"`
}

// ProductDetail is the single-product projection.
type ProductDetail struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	UnitPrice    float64    `json:"unitPrice"`
	UnitsInStock int        `json:"unitsInStock"`
	ImageURL     string     `json:"imageUrl"`
	CategoryID   int        `json:"categoryId"`
	CategoryName string     `json:"categoryName,omitempty"`
	CreatedDate  time.Time  `json:"createdDate"`
	UpdatedDate  *time.Time `json:"updatedDate"`
	Active       bool       `json:"active"`
}

type CreatedProduct struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	UnitPrice    float64   `json:"unitPrice"`
	UnitsInStock int       `json:"unitsInStock"`
	ImageURL     string    `json:"imageUrl"`
	CategoryID   int       `json:"categoryId"`
	CategoryName string    `json:"categoryName"`
	CreatedDate  time.Time `json:"createdDate"`
}

type UpdatedProduct struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	UnitPrice    float64    `json:"unitPrice"`
	UnitsInStock int        `json:"unitsInStock"`
	ImageURL     string     `json:"imageUrl"`
	CategoryID   int        `json:"categoryId"`
	CategoryName string     `json:"categoryName"`
	UpdatedDate  *time.Time `json:"updatedDate"`
}

type DeletedProduct struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// categoryRef returns the category id and name of p, tolerating a nil reference.
func categoryRef(p *domain.Product) (int, string) {
	if p.Category == nil {
		return 0, ""
	}
	return p.Category.ID, p.Category.Name
}

func toProductSummary(p *domain.Product) ProductSummary {
	categoryID, categoryName := categoryRef(p)
	return ProductSummary{
		ID:           p.ID,
		Name:         p.Name,
		UnitPrice:    p.UnitPrice,
		UnitsInStock: p.UnitsInStock,
		ImageURL:     p.ImageURL,
		CategoryID:   categoryID,
		CategoryName: categoryName,
	}
}

func toProductDetail(p *domain.Product) *ProductDetail {
	categoryID, categoryName := categoryRef(p)
	return &ProductDetail{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		UnitPrice:    p.UnitPrice,
		UnitsInStock: p.UnitsInStock,
		ImageURL:     p.ImageURL,
		CategoryID:   categoryID,
		CategoryName: categoryName,
		CreatedDate:  p.CreatedDate,
		UpdatedDate:  p.UpdatedDate,
		Active:       p.Active,
	}
}
