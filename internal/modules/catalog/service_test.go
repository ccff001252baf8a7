package catalog_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopsmart/shopsmart-backend/internal/modules/catalog"
	"github.com/shopsmart/shopsmart-backend/internal/storage"
)

func newTestService(t *testing.T) (catalog.Service, *storage.Memory) {
	t.Helper()
	kv := storage.NewMemory()
	repo := catalog.NewKVRepository(kv, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return catalog.NewService(repo), kv
}

func TestLoadProducts_SeedsWhenAbsent(t *testing.T) {
	svc, _ := newTestService(t)

	products, err := svc.ListProducts(context.Background(), "", false)
	require.NoError(t, err)
	require.Len(t, products, len(catalog.SeedProducts()))
	assert.Equal(t, "Fresh Milk 1L", products[0].Name)
}

func TestLoadProducts_CorruptRecordFallsBackToSeed(t *testing.T) {
	svc, kv := newTestService(t)
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, storage.KeyProducts, []byte("{not json")))

	products, err := svc.ListProducts(ctx, "", false)
	require.NoError(t, err)
	assert.Len(t, products, len(catalog.SeedProducts()))
}

func TestUpsertProduct_CreateSanitizesInput(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	p, err := svc.UpsertProduct(ctx, catalog.UpsertProductRequest{
		Name:      "  <b>Sugar 1kg</b>  ",
		Price:     decimal.NewFromFloat(-3),
		CostPrice: decimal.NewFromFloat(0.9),
		Stock:     -4,
		Category:  "Grocery",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "bSugar 1kg/b", p.Name)
	assert.True(t, p.Price.IsZero(), "negative price clamps to zero")
	assert.Equal(t, 0, p.Stock, "negative stock floors at zero")
	assert.Equal(t, catalog.StatusActive, p.Status)
}

func TestUpsertProduct_EditReplacesByID(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	p, err := svc.UpsertProduct(ctx, catalog.UpsertProductRequest{Name: "Tea", Price: decimal.NewFromInt(4), Category: "Grocery", Stock: 3})
	require.NoError(t, err)

	edited, err := svc.UpsertProduct(ctx, catalog.UpsertProductRequest{ID: p.ID, Name: "Green Tea", Price: decimal.NewFromInt(5), Category: "Grocery", Stock: 7})
	require.NoError(t, err)
	assert.Equal(t, p.ID, edited.ID)

	got, err := svc.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Green Tea", got.Name)
	assert.Equal(t, 7, got.Stock)
}

func TestUpsertProduct_NewCategoryGrowsListOnce(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.UpsertProduct(ctx, catalog.UpsertProductRequest{Name: "Paracetamol", Price: decimal.NewFromInt(1), Category: "Pharmacy"})
	require.NoError(t, err)
	_, err = svc.UpsertProduct(ctx, catalog.UpsertProductRequest{Name: "Aspirin", Price: decimal.NewFromInt(1), Category: "Pharmacy"})
	require.NoError(t, err)

	categories, err := svc.ListCategories(ctx)
	require.NoError(t, err)

	count := 0
	for _, c := range categories {
		if c == "Pharmacy" {
			count++
		}
	}
	assert.Equal(t, 1, count, "category list must not grow duplicates")
	assert.Contains(t, categories, "Grocery", "existing categories are preserved")
}

func TestDeleteProduct(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.DeleteProduct(ctx, "p1"))
	_, err := svc.GetProduct(ctx, "p1")
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)

	assert.ErrorIs(t, svc.DeleteProduct(ctx, "missing"), catalog.ErrProductNotFound)
}

func TestListProducts_Filters(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	lowStock, err := svc.ListProducts(ctx, "", true)
	require.NoError(t, err)
	for _, p := range lowStock {
		assert.Less(t, p.Stock, catalog.LowStockThreshold)
	}

	bakery, err := svc.ListProducts(ctx, "Bakery", false)
	require.NoError(t, err)
	require.Len(t, bakery, 1)
	assert.Equal(t, "Whole Wheat Bread", bakery[0].Name)
}

func TestReplaceCategories_DedupesAndDropsBlanks(t *testing.T) {
	svc, _ := newTestService(t)

	cleaned, err := svc.ReplaceCategories(context.Background(), []string{"Grocery", " Grocery ", "", "Drinks"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Grocery", "Drinks"}, cleaned)
}
