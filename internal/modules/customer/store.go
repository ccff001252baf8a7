package customer

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/shopsmart/shopsmart-backend/internal/storage"
)

type kvRepository struct {
	kv     storage.Store
	logger *slog.Logger
}

// NewKVRepository creates a customer repository over the snapshot store.
func NewKVRepository(kv storage.Store, logger *slog.Logger) Repository {
	return &kvRepository{kv: kv, logger: logger}
}

// LoadCustomers returns the stored ledger; missing or corrupt records
// fall back to an empty list rather than failing the application.
func (r *kvRepository) LoadCustomers(ctx context.Context) ([]Customer, error) {
	data, err := r.kv.Get(ctx, storage.KeyCustomers)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return []Customer{}, nil
	}
	var customers []Customer
	if err := json.Unmarshal(data, &customers); err != nil {
		r.logger.Warn("customers record corrupt, starting empty", "error", err)
		return []Customer{}, nil
	}
	return customers, nil
}

func (r *kvRepository) SaveCustomers(ctx context.Context, customers []Customer) error {
	data, err := json.Marshal(customers)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, storage.KeyCustomers, data)
}
