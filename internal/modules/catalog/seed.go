package catalog

import "github.com/shopspring/decimal"

// SeedProducts is the starter catalog installed when no products
// record exists yet, so a fresh shop has something to sell.
func SeedProducts() []Product {
	return []Product{
		{ID: "p1", SKU: "8901001", Name: "Fresh Milk 1L", Price: decimal.NewFromFloat(2.50), CostPrice: decimal.NewFromFloat(1.80), Stock: 50, Category: "Grocery", Status: StatusActive},
		{ID: "p2", SKU: "8901002", Name: "Whole Wheat Bread", Price: decimal.NewFromFloat(1.20), CostPrice: decimal.NewFromFloat(0.80), Stock: 8, Category: "Bakery", Status: StatusActive},
		{ID: "p3", SKU: "8901003", Name: "Eggs (Dozen)", Price: decimal.NewFromFloat(3.80), CostPrice: decimal.NewFromFloat(2.50), Stock: 15, Category: "Grocery", Status: StatusActive},
		{ID: "p4", SKU: "8901004", Name: "Coffee Powder 200g", Price: decimal.NewFromFloat(5.50), CostPrice: decimal.NewFromFloat(4.00), Stock: 5, Category: "Grocery", Status: StatusActive},
	}
}

// DefaultCategories is the category list a fresh shop starts with.
// Categories only ever grow automatically; they are pruned solely by
// explicit category management.
func DefaultCategories() []string {
	return []string{"Grocery", "Bakery", "Dairy", "Personal Care", "General"}
}
