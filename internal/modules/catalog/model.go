package catalog

import "github.com/shopspring/decimal"

// ProductStatus marks whether a product is sellable.
type ProductStatus string

const (
	StatusActive   ProductStatus = "active"
	StatusInactive ProductStatus = "inactive"
)

// Product is one catalog entry. Sales keep their own name/price
// snapshots, so editing or deleting a product never rewrites history.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku,omitempty"`
	Price       decimal.Decimal `json:"price"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	Stock       int             `json:"stock"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Status      ProductStatus   `json:"status"`
}

// LowStockThreshold is the stock level below which a product counts as
// running low.
const LowStockThreshold = 10

// LowStock reports whether the product is below the restock threshold.
func (p Product) LowStock() bool { return p.Stock < LowStockThreshold }

// UpsertProductRequest holds data for creating or editing a product.
// An empty ID means create.
type UpsertProductRequest struct {
	ID          string          `json:"id,omitempty"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku,omitempty"`
	Price       decimal.Decimal `json:"price"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	Stock       int             `json:"stock"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Status      ProductStatus   `json:"status,omitempty"`
}
