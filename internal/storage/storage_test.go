package storage_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopsmart/shopsmart-backend/internal/storage"
)

func stores(t *testing.T) map[string]storage.Store {
	t.Helper()
	sqlite, err := storage.NewSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { sqlite.Close() })
	return map[string]storage.Store{
		"sqlite": sqlite,
		"memory": storage.NewMemory(),
	}
}

func TestGetSet_RoundTrip(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			got, err := store.Get(ctx, "missing")
			require.NoError(t, err)
			assert.Nil(t, got, "absent key reads as nil")

			require.NoError(t, store.Set(ctx, storage.KeyProducts, []byte(`[{"id":"p1"}]`)))
			got, err = store.Get(ctx, storage.KeyProducts)
			require.NoError(t, err)
			assert.Equal(t, []byte(`[{"id":"p1"}]`), got)

			// Overwrite replaces.
			require.NoError(t, store.Set(ctx, storage.KeyProducts, []byte(`[]`)))
			got, err = store.Get(ctx, storage.KeyProducts)
			require.NoError(t, err)
			assert.Equal(t, []byte(`[]`), got)
		})
	}
}

func TestUpdate_AppliesAllWritesTogether(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			err := store.Update(ctx, func(tx storage.Tx) error {
				if err := tx.Set(storage.KeySales, []byte(`["s1"]`)); err != nil {
					return err
				}
				return tx.Set(storage.KeyProducts, []byte(`["p1"]`))
			})
			require.NoError(t, err)

			sales, _ := store.Get(ctx, storage.KeySales)
			products, _ := store.Get(ctx, storage.KeyProducts)
			assert.Equal(t, []byte(`["s1"]`), sales)
			assert.Equal(t, []byte(`["p1"]`), products)
		})
	}
}

func TestUpdate_ErrorDiscardsEveryWrite(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, store.Set(ctx, storage.KeySales, []byte(`[]`)))

			boom := errors.New("boom")
			err := store.Update(ctx, func(tx storage.Tx) error {
				if err := tx.Set(storage.KeySales, []byte(`["s1"]`)); err != nil {
					return err
				}
				return boom
			})
			assert.ErrorIs(t, err, boom)

			sales, _ := store.Get(ctx, storage.KeySales)
			assert.Equal(t, []byte(`[]`), sales, "failed update leaves records untouched")
		})
	}
}

func TestUpdate_TxReadsItsOwnWrites(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			err := store.Update(context.Background(), func(tx storage.Tx) error {
				if err := tx.Set("k", []byte("v")); err != nil {
					return err
				}
				got, err := tx.Get("k")
				if err != nil {
					return err
				}
				assert.Equal(t, []byte("v"), got)
				return nil
			})
			require.NoError(t, err)
		})
	}
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	path := t.TempDir() + "/shop.db"
	ctx := context.Background()

	store, err := storage.NewSQLite(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, storage.KeyShopName, []byte("Sunny Groceries")))
	require.NoError(t, store.Close())

	reopened, err := storage.NewSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, storage.KeyShopName)
	require.NoError(t, err)
	assert.Equal(t, []byte("Sunny Groceries"), got)
}
