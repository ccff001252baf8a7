package customer_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopsmart/shopsmart-backend/internal/modules/customer"
	"github.com/shopsmart/shopsmart-backend/internal/storage"
)

func newTestService(t *testing.T) customer.Service {
	t.Helper()
	repo := customer.NewKVRepository(storage.NewMemory(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	return customer.NewService(repo)
}

func TestCreateCustomer_SanitizesAndZeroesBalances(t *testing.T) {
	svc := newTestService(t)

	c, err := svc.CreateCustomer(context.Background(), customer.CreateCustomerRequest{
		Name:  "  Ravi <Kumar>  ",
		Phone: "+91 98765-43210",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ravi Kumar", c.Name)
	assert.Equal(t, "919876543210", c.Phone)
	assert.True(t, c.TotalSpent.IsZero())
	assert.True(t, c.PendingBalance.IsZero())
}

func TestCreateCustomer_RequiresName(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.CreateCustomer(context.Background(), customer.CreateCustomerRequest{Phone: "123"})
	assert.Error(t, err)
}

func TestApplyRepayment_ClampsAtZero(t *testing.T) {
	// A customer owing 20 repays 25: the balance clamps at zero and the
	// excess is discarded.
	repo := customer.NewKVRepository(storage.NewMemory(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	svc := customer.NewService(repo)
	ctx := context.Background()

	c, err := svc.CreateCustomer(ctx, customer.CreateCustomerRequest{Name: "Asha"})
	require.NoError(t, err)

	customers, err := repo.LoadCustomers(ctx)
	require.NoError(t, err)
	customers[0].PendingBalance = decimal.NewFromInt(20)
	require.NoError(t, repo.SaveCustomers(ctx, customers))

	updated, err := svc.ApplyRepayment(ctx, c.ID, decimal.NewFromInt(25))
	require.NoError(t, err)
	assert.True(t, updated.PendingBalance.IsZero(), "pending balance = %s", updated.PendingBalance)
}

func TestApplyRepayment_PartialLeavesRemainder(t *testing.T) {
	repo := customer.NewKVRepository(storage.NewMemory(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	svc := customer.NewService(repo)
	ctx := context.Background()

	c, err := svc.CreateCustomer(ctx, customer.CreateCustomerRequest{Name: "Noor"})
	require.NoError(t, err)

	customers, _ := repo.LoadCustomers(ctx)
	customers[0].PendingBalance = decimal.NewFromInt(30)
	require.NoError(t, repo.SaveCustomers(ctx, customers))

	updated, err := svc.ApplyRepayment(ctx, c.ID, decimal.NewFromInt(10))
	require.NoError(t, err)
	assert.True(t, updated.PendingBalance.Equal(decimal.NewFromInt(20)))
}

func TestApplyRepayment_RejectsNonPositiveAmount(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	c, err := svc.CreateCustomer(ctx, customer.CreateCustomerRequest{Name: "Omar"})
	require.NoError(t, err)

	_, err = svc.ApplyRepayment(ctx, c.ID, decimal.Zero)
	assert.Error(t, err)
	_, err = svc.ApplyRepayment(ctx, c.ID, decimal.NewFromInt(-5))
	assert.Error(t, err)
}

func TestApplyRepayment_UnknownCustomer(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.ApplyRepayment(context.Background(), "missing", decimal.NewFromInt(5))
	assert.ErrorIs(t, err, customer.ErrCustomerNotFound)
}
