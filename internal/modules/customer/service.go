package customer

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopsmart/shopsmart-backend/internal/sanitize"
)

// ErrCustomerNotFound is returned when a customer id has no ledger entry.
var ErrCustomerNotFound = errors.New("customer not found")

// Service defines customer ledger business logic.
type Service interface {
	CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*Customer, error)
	GetCustomer(ctx context.Context, id string) (*Customer, error)
	ListCustomers(ctx context.Context) ([]Customer, error)

	// ApplyRepayment lowers the customer's pending balance by amount,
	// clamped at zero. Overpayment is discarded; there is no credit
	// balance and no repayment history record.
	ApplyRepayment(ctx context.Context, customerID string, amount decimal.Decimal) (*Customer, error)
}

type service struct{ repo Repository }

// NewService creates a customer service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*Customer, error) {
	name := sanitize.String(req.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	c := Customer{
		ID:             uuid.New().String(),
		Name:           name,
		Phone:          sanitize.Phone(req.Phone),
		Address:        sanitize.String(req.Address),
		Notes:          sanitize.String(req.Notes),
		TotalSpent:     decimal.Zero,
		PendingBalance: decimal.Zero,
	}

	customers, err := s.repo.LoadCustomers(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SaveCustomers(ctx, append(customers, c)); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *service) GetCustomer(ctx context.Context, id string) (*Customer, error) {
	customers, err := s.repo.LoadCustomers(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range customers {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, ErrCustomerNotFound
}

func (s *service) ListCustomers(ctx context.Context) ([]Customer, error) {
	return s.repo.LoadCustomers(ctx)
}

func (s *service) ApplyRepayment(ctx context.Context, customerID string, amount decimal.Decimal) (*Customer, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("repayment amount must be greater than zero")
	}

	customers, err := s.repo.LoadCustomers(ctx)
	if err != nil {
		return nil, err
	}

	for i := range customers {
		if customers[i].ID != customerID {
			continue
		}
		next := customers[i].PendingBalance.Sub(amount)
		if next.IsNegative() {
			next = decimal.Zero
		}
		customers[i].PendingBalance = next
		if err := s.repo.SaveCustomers(ctx, customers); err != nil {
			return nil, err
		}
		return &customers[i], nil
	}
	return nil, ErrCustomerNotFound
}
