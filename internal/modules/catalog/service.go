package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/shopsmart/shopsmart-backend/internal/sanitize"
)

// ErrProductNotFound is returned when a product id has no catalog entry.
var ErrProductNotFound = errors.New("product not found")

// Service defines catalog business logic.
type Service interface {
	UpsertProduct(ctx context.Context, req UpsertProductRequest) (*Product, error)
	DeleteProduct(ctx context.Context, id string) error
	GetProduct(ctx context.Context, id string) (*Product, error)
	ListProducts(ctx context.Context, category string, lowStockOnly bool) ([]Product, error)
	ListCategories(ctx context.Context) ([]string, error)
	ReplaceCategories(ctx context.Context, categories []string) ([]string, error)
}

type service struct{ repo Repository }

// NewService creates a catalog service.
func NewService(repo Repository) Service { return &service{repo: repo} }

// UpsertProduct creates or replaces a product. A product whose
// category is new appends that category to the category list; existing
// categories are left untouched, so growth is idempotent.
func (s *service) UpsertProduct(ctx context.Context, req UpsertProductRequest) (*Product, error) {
	p := Sanitize(Product{
		ID:          req.ID,
		Name:        req.Name,
		SKU:         req.SKU,
		Price:       req.Price,
		CostPrice:   req.CostPrice,
		Stock:       req.Stock,
		Category:    req.Category,
		Description: req.Description,
		Status:      req.Status,
	})
	if p.Name == "" {
		return nil, fmt.Errorf("name is required")
	}

	products, err := s.repo.LoadProducts(ctx)
	if err != nil {
		return nil, err
	}

	if p.ID == "" {
		p.ID = uuid.New().String()
		products = append(products, p)
	} else {
		replaced := false
		for i := range products {
			if products[i].ID == p.ID {
				products[i] = p
				replaced = true
				break
			}
		}
		if !replaced {
			products = append(products, p)
		}
	}

	if err := s.repo.SaveProducts(ctx, products); err != nil {
		return nil, err
	}
	if err := s.growCategories(ctx, p.Category); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *service) growCategories(ctx context.Context, category string) error {
	if category == "" {
		return nil
	}
	categories, err := s.repo.LoadCategories(ctx)
	if err != nil {
		return err
	}
	for _, c := range categories {
		if c == category {
			return nil
		}
	}
	return s.repo.SaveCategories(ctx, append(categories, category))
}

// DeleteProduct removes the product from the catalog. Historical sales
// keep their snapshots; the product's category is never pruned.
func (s *service) DeleteProduct(ctx context.Context, id string) error {
	products, err := s.repo.LoadProducts(ctx)
	if err != nil {
		return err
	}
	next := products[:0:0]
	found := false
	for _, p := range products {
		if p.ID == id {
			found = true
			continue
		}
		next = append(next, p)
	}
	if !found {
		return ErrProductNotFound
	}
	return s.repo.SaveProducts(ctx, next)
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	products, err := s.repo.LoadProducts(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, ErrProductNotFound
}

func (s *service) ListProducts(ctx context.Context, category string, lowStockOnly bool) ([]Product, error) {
	products, err := s.repo.LoadProducts(ctx)
	if err != nil {
		return nil, err
	}
	if category == "" && !lowStockOnly {
		return products, nil
	}
	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		if lowStockOnly && !p.LowStock() {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered, nil
}

func (s *service) ListCategories(ctx context.Context) ([]string, error) {
	return s.repo.LoadCategories(ctx)
}

// ReplaceCategories overwrites the category list for the manual
// category manager. Blanks are dropped and duplicates collapsed.
func (s *service) ReplaceCategories(ctx context.Context, categories []string) ([]string, error) {
	seen := make(map[string]bool, len(categories))
	cleaned := make([]string, 0, len(categories))
	for _, c := range categories {
		c = sanitize.String(c)
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		cleaned = append(cleaned, c)
	}
	if err := s.repo.SaveCategories(ctx, cleaned); err != nil {
		return nil, err
	}
	return cleaned, nil
}
