package sale

import (
	"github.com/shopspring/decimal"

	"github.com/shopsmart/shopsmart-backend/internal/modules/pricing"
)

// PaymentType is how a sale was settled. "pending" defers payment and
// lands on the customer's pending balance.
type PaymentType string

const (
	PaymentCash    PaymentType = "cash"
	PaymentCard    PaymentType = "card"
	PaymentWallet  PaymentType = "wallet"
	PaymentBank    PaymentType = "bank"
	PaymentPending PaymentType = "pending"
)

// Valid reports whether t is a known payment type.
func (t PaymentType) Valid() bool {
	switch t {
	case PaymentCash, PaymentCard, PaymentWallet, PaymentBank, PaymentPending:
		return true
	}
	return false
}

// SaleItem is a line item embedded in a sale: a name/price snapshot
// taken at commit time, immutable afterwards and independent of later
// product edits.
type SaleItem struct {
	ProductID    string               `json:"product_id"`
	Name         string               `json:"name"`
	Price        decimal.Decimal      `json:"price"`
	Quantity     int                  `json:"quantity"`
	Discount     decimal.Decimal      `json:"discount"`
	DiscountType pricing.DiscountType `json:"discount_type"`
}

// Sale is one committed checkout. Sales are append-only: there is no
// edit, void, or refund operation.
type Sale struct {
	ID           string               `json:"id"`
	Timestamp    int64                `json:"timestamp"` // unix milliseconds
	Items        []SaleItem           `json:"items"`
	Subtotal     decimal.Decimal      `json:"subtotal"`
	Discount     decimal.Decimal      `json:"discount"`
	DiscountType pricing.DiscountType `json:"discount_type"`
	Total        decimal.Decimal      `json:"total"`
	PaymentType  PaymentType          `json:"payment_type"`
	Notes        string               `json:"notes,omitempty"`
	CustomerID   string               `json:"customer_id,omitempty"`
}

// CheckoutLine is one requested cart line. Price and name are resolved
// from the current catalog by the service, never trusted from the
// client.
type CheckoutLine struct {
	ProductID    string               `json:"product_id"`
	Quantity     int                  `json:"quantity"`
	Discount     decimal.Decimal      `json:"discount"`
	DiscountType pricing.DiscountType `json:"discount_type,omitempty"`
}

// CheckoutRequest is the payload for committing (or quoting) a cart.
type CheckoutRequest struct {
	Lines        []CheckoutLine       `json:"lines"`
	Discount     decimal.Decimal      `json:"discount"`
	DiscountType pricing.DiscountType `json:"discount_type,omitempty"`
	PaymentType  PaymentType          `json:"payment_type,omitempty"`
	CustomerID   string               `json:"customer_id,omitempty"`
	Notes        string               `json:"notes,omitempty"`
}

// Quote is a priced cart that has not been committed.
type Quote struct {
	Items  []SaleItem     `json:"items"`
	Totals pricing.Totals `json:"totals"`
}
