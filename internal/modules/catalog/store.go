package catalog

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/shopsmart/shopsmart-backend/internal/sanitize"
	"github.com/shopsmart/shopsmart-backend/internal/storage"
)

type kvRepository struct {
	kv     storage.Store
	logger *slog.Logger
}

// NewKVRepository creates a catalog repository over the snapshot store.
func NewKVRepository(kv storage.Store, logger *slog.Logger) Repository {
	return &kvRepository{kv: kv, logger: logger}
}

// LoadProducts returns the stored catalog. A missing or corrupt record
// falls back to the seeded starter catalog, which is persisted so the
// next load sees it. Stored values are re-sanitized on the way in so a
// hand-edited record cannot smuggle in negative prices or stock.
func (r *kvRepository) LoadProducts(ctx context.Context) ([]Product, error) {
	data, err := r.kv.Get(ctx, storage.KeyProducts)
	if err != nil {
		return nil, err
	}

	var products []Product
	if data != nil {
		if err := json.Unmarshal(data, &products); err != nil {
			r.logger.Warn("products record corrupt, reseeding", "error", err)
			products = nil
		}
	}
	if len(products) == 0 {
		seeded := SeedProducts()
		if err := r.SaveProducts(ctx, seeded); err != nil {
			return nil, err
		}
		return seeded, nil
	}

	for i := range products {
		products[i] = Sanitize(products[i])
	}
	return products, nil
}

func (r *kvRepository) SaveProducts(ctx context.Context, products []Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, storage.KeyProducts, data)
}

// LoadCategories returns the category list, defaulting when the record
// is missing or corrupt.
func (r *kvRepository) LoadCategories(ctx context.Context) ([]string, error) {
	data, err := r.kv.Get(ctx, storage.KeyCategories)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return DefaultCategories(), nil
	}
	var categories []string
	if err := json.Unmarshal(data, &categories); err != nil {
		r.logger.Warn("categories record corrupt, using defaults", "error", err)
		return DefaultCategories(), nil
	}
	return categories, nil
}

func (r *kvRepository) SaveCategories(ctx context.Context, categories []string) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, storage.KeyCategories, data)
}

// Sanitize cleans a product at the storage/input boundary.
func Sanitize(p Product) Product {
	p.Name = sanitize.String(p.Name)
	p.SKU = sanitize.String(p.SKU)
	p.Category = sanitize.String(p.Category)
	p.Description = sanitize.String(p.Description)
	p.Price = sanitize.Money(p.Price)
	p.CostPrice = sanitize.Money(p.CostPrice)
	p.Stock = sanitize.Quantity(p.Stock)
	if p.Status != StatusInactive {
		p.Status = StatusActive
	}
	return p
}
