package sale

import (
	"context"

	"github.com/shopsmart/shopsmart-backend/internal/modules/catalog"
	"github.com/shopsmart/shopsmart-backend/internal/modules/customer"
)

// Repository defines sale storage. Sales are an append-only list kept
// most-recent-first.
type Repository interface {
	LoadSales(ctx context.Context) ([]Sale, error)

	// Commit prepends the sale and persists the post-commit catalog and
	// customer records together. All three records land in one storage
	// transaction or not at all.
	Commit(ctx context.Context, s Sale, products []catalog.Product, customers []customer.Customer) error
}
