package sale

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopsmart/shopsmart-backend/internal/modules/catalog"
	"github.com/shopsmart/shopsmart-backend/internal/modules/customer"
	"github.com/shopsmart/shopsmart-backend/internal/modules/pricing"
	"github.com/shopsmart/shopsmart-backend/internal/sanitize"
)

// Service defines checkout business logic.
type Service interface {
	// Checkout validates the cart against the current catalog and, on
	// success, commits the sale with all of its side effects. Any
	// precondition failure aborts with zero state change.
	Checkout(ctx context.Context, req CheckoutRequest) (*Sale, error)

	// Quote prices the cart without committing or checking stock. It
	// runs the same pricing path as Checkout, so displayed totals
	// always match committed totals.
	Quote(ctx context.Context, req CheckoutRequest) (*Quote, error)

	ListSales(ctx context.Context) ([]Sale, error)
	ListCustomerSales(ctx context.Context, customerID string) ([]Sale, error)
}

type service struct {
	// mu serializes the checkout path: the stock precondition is a
	// point-in-time check, so commits must not interleave.
	mu           sync.Mutex
	repo         Repository
	catalogRepo  catalog.Repository
	customerRepo customer.Repository
	onCommit     func()
}

// Option configures the sale service.
type Option func(*service)

// WithCommitHook runs fn after every successful commit (used to poke
// the sync indicator).
func WithCommitHook(fn func()) Option {
	return func(s *service) { s.onCommit = fn }
}

// NewService creates a sale service.
func NewService(repo Repository, catalogRepo catalog.Repository, customerRepo customer.Repository, opts ...Option) Service {
	s := &service{repo: repo, catalogRepo: catalogRepo, customerRepo: customerRepo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// buildCart resolves request lines against the catalog, snapshotting
// name and price per line. Returns ProductNotFoundError for a line
// whose product is gone.
func buildCart(req CheckoutRequest, products []catalog.Product) (*pricing.Cart, error) {
	byID := make(map[string]catalog.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	var cart pricing.Cart
	for _, line := range req.Lines {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("quantity for product %s must be greater than zero", line.ProductID)
		}
		p, ok := byID[line.ProductID]
		if !ok {
			return nil, &ProductNotFoundError{ProductID: line.ProductID}
		}
		for i := 0; i < line.Quantity; i++ {
			cart.AddLine(p.ID, p.Name, p.Price)
		}
		if !line.Discount.IsZero() {
			t := line.DiscountType
			if !t.Valid() {
				t = pricing.DiscountFixed
			}
			// Negative discounts are floored here at the input
			// boundary; percent values above 100 pass through.
			cart.SetLineDiscount(p.ID, sanitize.Money(line.Discount), t)
		}
	}

	orderType := req.DiscountType
	if !orderType.Valid() {
		orderType = pricing.DiscountFixed
	}
	cart.SetOrderDiscount(sanitize.Money(req.Discount), orderType)
	return &cart, nil
}

func cartItems(cart *pricing.Cart) []SaleItem {
	items := make([]SaleItem, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		items = append(items, SaleItem{
			ProductID:    l.ProductID,
			Name:         l.Name,
			Price:        l.Price,
			Quantity:     l.Quantity,
			Discount:     l.Discount,
			DiscountType: l.DiscountType,
		})
	}
	return items
}

func (s *service) Quote(ctx context.Context, req CheckoutRequest) (*Quote, error) {
	if len(req.Lines) == 0 {
		return nil, ErrEmptyCart
	}
	products, err := s.catalogRepo.LoadProducts(ctx)
	if err != nil {
		return nil, err
	}
	cart, err := buildCart(req, products)
	if err != nil {
		return nil, err
	}
	return &Quote{Items: cartItems(cart), Totals: cart.Totals()}, nil
}

func (s *service) Checkout(ctx context.Context, req CheckoutRequest) (*Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	paymentType := req.PaymentType
	if paymentType == "" {
		paymentType = PaymentCash
	}
	if !paymentType.Valid() {
		return nil, fmt.Errorf("invalid payment_type: %s (allowed: cash, card, wallet, bank, pending)", req.PaymentType)
	}

	// Precondition 1: non-empty cart.
	if len(req.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	// Everything below works from one pre-commit snapshot.
	products, err := s.catalogRepo.LoadProducts(ctx)
	if err != nil {
		return nil, err
	}

	// Precondition 2: every referenced product still exists.
	cart, err := buildCart(req, products)
	if err != nil {
		return nil, err
	}
	totals := cart.Totals()

	// Precondition 3: point-in-time stock check, in cart order.
	byID := make(map[string]catalog.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	for _, l := range cart.Lines {
		p := byID[l.ProductID]
		if p.Stock < l.Quantity {
			return nil, &InsufficientStockError{
				ProductID: p.ID,
				Name:      p.Name,
				Available: p.Stock,
				Requested: l.Quantity,
			}
		}
	}

	committed := Sale{
		ID:           uuid.New().String(),
		Timestamp:    time.Now().UnixMilli(),
		Items:        cartItems(cart),
		Subtotal:     totals.Subtotal,
		Discount:     sanitize.Money(req.Discount),
		DiscountType: cart.OrderDiscountType,
		Total:        totals.Total,
		PaymentType:  paymentType,
		Notes:        sanitize.String(req.Notes),
		CustomerID:   req.CustomerID,
	}

	// Effects, all from the same snapshot: stock decrement (defensively
	// floored at zero) and customer balance update.
	nextProducts := make([]catalog.Product, len(products))
	copy(nextProducts, products)
	sold := make(map[string]int, len(committed.Items))
	for _, item := range committed.Items {
		sold[item.ProductID] = item.Quantity
	}
	for i := range nextProducts {
		if qty, ok := sold[nextProducts[i].ID]; ok {
			nextProducts[i].Stock = sanitize.Quantity(nextProducts[i].Stock - qty)
		}
	}

	customers, err := s.customerRepo.LoadCustomers(ctx)
	if err != nil {
		return nil, err
	}
	if committed.CustomerID != "" {
		for i := range customers {
			if customers[i].ID != committed.CustomerID {
				continue
			}
			customers[i].TotalSpent = customers[i].TotalSpent.Add(committed.Total)
			if committed.PaymentType == PaymentPending {
				customers[i].PendingBalance = customers[i].PendingBalance.Add(committed.Total)
			}
			break
		}
	}

	if err := s.repo.Commit(ctx, committed, nextProducts, customers); err != nil {
		return nil, err
	}
	if s.onCommit != nil {
		s.onCommit()
	}
	return &committed, nil
}

func (s *service) ListSales(ctx context.Context) ([]Sale, error) {
	return s.repo.LoadSales(ctx)
}

func (s *service) ListCustomerSales(ctx context.Context, customerID string) ([]Sale, error) {
	sales, err := s.repo.LoadSales(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]Sale, 0, len(sales))
	for _, sl := range sales {
		if sl.CustomerID == customerID {
			filtered = append(filtered, sl)
		}
	}
	return filtered, nil
}

// OutstandingPending sums the totals of all pending-type sales. Used
// by reporting.
func OutstandingPending(sales []Sale) decimal.Decimal {
	sum := decimal.Zero
	for _, sl := range sales {
		if sl.PaymentType == PaymentPending {
			sum = sum.Add(sl.Total)
		}
	}
	return sum
}
