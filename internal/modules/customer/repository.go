package customer

import "context"

// Repository defines customer ledger storage as a whole-record
// snapshot.
type Repository interface {
	LoadCustomers(ctx context.Context) ([]Customer, error)
	SaveCustomers(ctx context.Context, customers []Customer) error
}
