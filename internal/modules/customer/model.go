package customer

import "github.com/shopspring/decimal"

// Customer is one entry in the customer ledger. TotalSpent accumulates
// every sale tied to the customer; PendingBalance tracks what they
// still owe from deferred-payment sales and never goes negative.
type Customer struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone"`
	Address        string          `json:"address,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	TotalSpent     decimal.Decimal `json:"total_spent"`
	PendingBalance decimal.Decimal `json:"pending_balance"`
}

// CreateCustomerRequest holds data for registering a customer.
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// RepaymentRequest holds a repayment against a pending balance.
type RepaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
}
