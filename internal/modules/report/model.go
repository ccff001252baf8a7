package report

import "github.com/shopspring/decimal"

// Summary is the read-side projection shown on the reports screen.
// All amounts are rounded to two decimals here, at the display
// boundary — never earlier.
type Summary struct {
	PeriodRevenue      decimal.Decimal    `json:"period_revenue"`
	OrderCount         int                `json:"order_count"`
	PaymentBreakdown   []PaymentSlice     `json:"payment_breakdown"`
	TopProducts        []ProductRank      `json:"top_products"`
	OutstandingPending decimal.Decimal    `json:"outstanding_pending"`
}

// PaymentSlice is one payment method's share of period revenue.
type PaymentSlice struct {
	PaymentType string          `json:"payment_type"`
	Revenue     decimal.Decimal `json:"revenue"`
	Share       decimal.Decimal `json:"share"` // percent of period revenue
}

// ProductRank is one entry in the top-products list.
type ProductRank struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// Filter selects which sales feed the summary. Zero From/To mean
// unbounded; an empty PaymentType means all methods.
type Filter struct {
	From        int64  // unix milliseconds, inclusive
	To          int64  // unix milliseconds, inclusive
	PaymentType string
}
