// Package pricing is the cart pricing engine: it accumulates candidate
// line items and computes the payable total. It is pure computation —
// no storage, no HTTP — so checkout, live quotes, and receipts all
// price through the same code path and can never disagree.
package pricing

import "github.com/shopspring/decimal"

// DiscountType selects how a discount amount is interpreted.
type DiscountType string

const (
	DiscountFixed   DiscountType = "fixed"
	DiscountPercent DiscountType = "percent"
)

// Valid reports whether t is a known discount type.
func (t DiscountType) Valid() bool {
	return t == DiscountFixed || t == DiscountPercent
}

// Line is one product entry in a cart with its own quantity and
// optional discount. Name and Price are snapshots of the catalog at
// the time the line was added; later product edits do not touch them.
type Line struct {
	ProductID    string          `json:"product_id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity"`
	Discount     decimal.Decimal `json:"discount"`
	DiscountType DiscountType    `json:"discount_type"`
}

// Cart holds candidate lines plus a single order-level discount that
// applies after all line-level discounts.
type Cart struct {
	Lines             []Line
	OrderDiscount     decimal.Decimal
	OrderDiscountType DiscountType
}

// AddLine merges the product into the cart: an existing line gains one
// quantity, otherwise a new line starts at quantity 1 with a zero
// fixed discount. Stock is deliberately not checked here — over-adding
// then correcting downward is allowed, validation happens at commit.
func (c *Cart) AddLine(productID, name string, price decimal.Decimal) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity++
			return
		}
	}
	c.Lines = append(c.Lines, Line{
		ProductID:    productID,
		Name:         name,
		Price:        price,
		Quantity:     1,
		Discount:     decimal.Zero,
		DiscountType: DiscountFixed,
	})
}

// DecrementLine lowers the line's quantity by one, removing the line
// when it would reach zero.
func (c *Cart) DecrementLine(productID string) {
	for i := range c.Lines {
		if c.Lines[i].ProductID != productID {
			continue
		}
		if c.Lines[i].Quantity > 1 {
			c.Lines[i].Quantity--
		} else {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
		}
		return
	}
}

// RemoveLine drops the line outright regardless of quantity.
func (c *Cart) RemoveLine(productID string) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// SetLineDiscount stores a per-line discount as given. Amounts are not
// clamped to the line subtotal here; clamping happens where money is
// computed (LineNet), not where inputs are entered.
func (c *Cart) SetLineDiscount(productID string, amount decimal.Decimal, t DiscountType) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Discount = amount
			c.Lines[i].DiscountType = t
			return
		}
	}
}

// SetOrderDiscount sets the single discount applied to the whole cart
// after line discounts.
func (c *Cart) SetOrderDiscount(amount decimal.Decimal, t DiscountType) {
	c.OrderDiscount = amount
	c.OrderDiscountType = t
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool { return len(c.Lines) == 0 }
