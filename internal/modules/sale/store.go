package sale

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/shopsmart/shopsmart-backend/internal/modules/catalog"
	"github.com/shopsmart/shopsmart-backend/internal/modules/customer"
	"github.com/shopsmart/shopsmart-backend/internal/storage"
)

type kvRepository struct {
	kv     storage.Store
	logger *slog.Logger
}

// NewKVRepository creates a sale repository over the snapshot store.
func NewKVRepository(kv storage.Store, logger *slog.Logger) Repository {
	return &kvRepository{kv: kv, logger: logger}
}

// LoadSales returns the sales list, newest first. Missing or corrupt
// records fall back to an empty list.
func (r *kvRepository) LoadSales(ctx context.Context) ([]Sale, error) {
	data, err := r.kv.Get(ctx, storage.KeySales)
	if err != nil {
		return nil, err
	}
	return r.decode(data), nil
}

func (r *kvRepository) decode(data []byte) []Sale {
	if data == nil {
		return []Sale{}
	}
	var sales []Sale
	if err := json.Unmarshal(data, &sales); err != nil {
		r.logger.Warn("sales record corrupt, starting empty", "error", err)
		return []Sale{}
	}
	return sales
}

// Commit writes the sale plus the updated catalog and customer records
// in one transaction, so an interrupted commit can never leave the
// three records disagreeing.
func (r *kvRepository) Commit(ctx context.Context, s Sale, products []catalog.Product, customers []customer.Customer) error {
	return r.kv.Update(ctx, func(tx storage.Tx) error {
		current, err := tx.Get(storage.KeySales)
		if err != nil {
			return err
		}
		sales := append([]Sale{s}, r.decode(current)...)

		salesData, err := json.Marshal(sales)
		if err != nil {
			return err
		}
		productData, err := json.Marshal(products)
		if err != nil {
			return err
		}
		customerData, err := json.Marshal(customers)
		if err != nil {
			return err
		}

		if err := tx.Set(storage.KeySales, salesData); err != nil {
			return err
		}
		if err := tx.Set(storage.KeyProducts, productData); err != nil {
			return err
		}
		return tx.Set(storage.KeyCustomers, customerData)
	})
}
