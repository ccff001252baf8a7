package sale

import (
	"errors"
	"fmt"
)

// Sentinel errors for the commit preconditions. Structured variants
// below carry the details; use errors.Is against these.
var (
	// ErrEmptyCart is returned when checkout is invoked with no lines.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrProductNotFound is returned when a cart line references a
	// product missing from the catalog.
	ErrProductNotFound = errors.New("product not found")

	// ErrInsufficientStock is returned when a cart line asks for more
	// units than the catalog has.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductNotFoundError names the missing product.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %s not found", e.ProductID)
}

func (e *ProductNotFoundError) Unwrap() error { return ErrProductNotFound }

// InsufficientStockError names the product and the available vs.
// requested quantities.
type InsufficientStockError struct {
	ProductID string
	Name      string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: available %d, requested %d",
		e.Name, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
