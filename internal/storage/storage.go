// Package storage provides the snapshot record store backing the POS.
//
// State is kept as a small set of independently keyed JSON records
// (products, sales, customers, categories, settings). Modules read a
// whole record, mutate it in memory, and write it back. Writes that
// must land together (the sale commit touches three records) go
// through Update, which applies every Set in one transaction.
package storage

import "context"

// Record keys. One JSON blob per key.
const (
	KeyProducts   = "products"
	KeySales      = "sales"
	KeyCustomers  = "customers"
	KeyCategories = "categories"
	KeySettings   = "settings"
	KeyShopName   = "shop_name"
)

// Store is a keyed snapshot store.
type Store interface {
	// Get returns the record value, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set writes a single record.
	Set(ctx context.Context, key string, value []byte) error

	// Update runs fn against a transaction. Every Set inside fn is
	// applied atomically; any error discards all of them.
	Update(ctx context.Context, fn func(tx Tx) error) error
}

// Tx is the view of the store inside an Update.
type Tx interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}
