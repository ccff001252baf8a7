package catalog

import "context"

// Repository defines catalog data storage. Products and categories are
// whole-record snapshots: load, mutate in memory, save back.
type Repository interface {
	LoadProducts(ctx context.Context) ([]Product, error)
	SaveProducts(ctx context.Context, products []Product) error
	LoadCategories(ctx context.Context) ([]string, error)
	SaveCategories(ctx context.Context, categories []string) error
}
