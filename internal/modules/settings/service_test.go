package settings_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopsmart/shopsmart-backend/internal/modules/settings"
	"github.com/shopsmart/shopsmart-backend/internal/storage"
)

func newTestService() settings.Service {
	return settings.NewService(storage.NewMemory(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func ptr[T any](v T) *T { return &v }

func TestGet_Defaults(t *testing.T) {
	svc := newTestService()
	s, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "en", s.Language)
	assert.Equal(t, "$", s.Currency)
	assert.True(t, s.TaxRate.IsZero())
}

func TestUpdate_PartialAndClamped(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	s, err := svc.Update(ctx, settings.UpdateRequest{
		Currency: ptr("₹"),
		TaxRate:  ptr(decimal.NewFromInt(250)),
	})
	require.NoError(t, err)
	assert.Equal(t, "₹", s.Currency)
	assert.True(t, s.TaxRate.Equal(decimal.NewFromInt(100)), "tax rate clamps to 100")
	assert.Equal(t, "en", s.Language, "untouched fields keep their value")

	s, err = svc.Update(ctx, settings.UpdateRequest{TaxRate: ptr(decimal.NewFromInt(-5))})
	require.NoError(t, err)
	assert.True(t, s.TaxRate.IsZero(), "negative tax rate clamps to zero")
}

func TestUpdate_UnknownLanguageIgnored(t *testing.T) {
	svc := newTestService()
	s, err := svc.Update(context.Background(), settings.UpdateRequest{Language: ptr("fr")})
	require.NoError(t, err)
	assert.Equal(t, "en", s.Language)
}

func TestShopName_RoundTrip(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	name, err := svc.ShopName(ctx)
	require.NoError(t, err)
	assert.Empty(t, name)

	set, err := svc.SetShopName(ctx, "  Sunny <Groceries>  ")
	require.NoError(t, err)
	assert.Equal(t, "Sunny Groceries", set)

	name, err = svc.ShopName(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Sunny Groceries", name)
}

func TestSetShopName_RejectsEmpty(t *testing.T) {
	svc := newTestService()
	_, err := svc.SetShopName(context.Background(), "   ")
	assert.Error(t, err)
}
