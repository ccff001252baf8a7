package pricing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Totals is the computed price of a cart. Values carry full precision;
// rounding to two decimals happens only at display boundaries.
type Totals struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Total          decimal.Decimal `json:"total"`
}

// LineGross is unit price times quantity, before any discount.
func LineGross(l Line) decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// LineNet applies the line's own discount to its gross amount.
//
// A fixed discount is clamped so the line never goes negative. A
// percent discount is applied as-is: values outside [0,100] are the
// input boundary's problem, and a 150% "discount" really does produce
// a negative line here.
func LineNet(l Line) decimal.Decimal {
	gross := LineGross(l)
	if l.Discount.IsZero() {
		return gross
	}
	if l.DiscountType == DiscountPercent {
		return gross.Mul(decimal.NewFromInt(1).Sub(l.Discount.Div(hundred)))
	}
	net := gross.Sub(l.Discount)
	if net.IsNegative() {
		return decimal.Zero
	}
	return net
}

// Totals prices the cart: subtotal is the sum of discounted lines, the
// order discount comes off the subtotal, and the payable total is
// clamped at zero.
func (c *Cart) Totals() Totals {
	subtotal := decimal.Zero
	for _, l := range c.Lines {
		subtotal = subtotal.Add(LineNet(l))
	}

	discount := c.OrderDiscount
	if c.OrderDiscountType == DiscountPercent {
		discount = subtotal.Mul(c.OrderDiscount).Div(hundred)
	}

	total := subtotal.Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return Totals{Subtotal: subtotal, DiscountAmount: discount, Total: total}
}
