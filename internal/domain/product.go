package domain

// Product represents a product in the catalog
type Product struct {
	ID           int       `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Description  string    `json:"description" db:"description"`
	UnitPrice    float64   `json:"unitPrice" db:"unit_price"`
	UnitsInStock int       `json:"unitsInStock" db:"units_in_stock"`
	ImageURL     string    `json:"imageUrl" db:"image_url"`
	Category     *Category `json:"category,omitempty" db:"-"`
	Audit
}

// CategoryID returns the id of the referenced category, or zero when the
// product carries no category.
func (p *Product) CategoryID() int {
	if p.Category == nil {
		return 0
	}
	return p.Category.ID
}
