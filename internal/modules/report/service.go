package report

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/shopsmart/shopsmart-backend/internal/modules/pricing"
	"github.com/shopsmart/shopsmart-backend/internal/modules/sale"
)

// Service derives report projections from the immutable sales list.
// Pure read side: nothing here mutates state.
type Service interface {
	Summarize(ctx context.Context, f Filter) (*Summary, error)
}

type service struct{ sales sale.Repository }

// NewService creates a reporting service.
func NewService(sales sale.Repository) Service { return &service{sales: sales} }

const topProductLimit = 5

func (s *service) Summarize(ctx context.Context, f Filter) (*Summary, error) {
	all, err := s.sales.LoadSales(ctx)
	if err != nil {
		return nil, err
	}

	var filtered []sale.Sale
	for _, sl := range all {
		if f.From != 0 && sl.Timestamp < f.From {
			continue
		}
		if f.To != 0 && sl.Timestamp > f.To {
			continue
		}
		if f.PaymentType != "" && string(sl.PaymentType) != f.PaymentType {
			continue
		}
		filtered = append(filtered, sl)
	}

	revenue := decimal.Zero
	byPayment := make(map[string]decimal.Decimal)
	type rank struct {
		name     string
		quantity int
		revenue  decimal.Decimal
	}
	byProduct := make(map[string]*rank)

	for _, sl := range filtered {
		revenue = revenue.Add(sl.Total)
		pt := string(sl.PaymentType)
		byPayment[pt] = byPayment[pt].Add(sl.Total)

		for _, item := range sl.Items {
			r, ok := byProduct[item.ProductID]
			if !ok {
				r = &rank{name: item.Name}
				byProduct[item.ProductID] = r
			}
			r.quantity += item.Quantity
			r.revenue = r.revenue.Add(pricing.LineNet(pricing.Line{
				Price:        item.Price,
				Quantity:     item.Quantity,
				Discount:     item.Discount,
				DiscountType: item.DiscountType,
			}))
		}
	}

	breakdown := make([]PaymentSlice, 0, len(byPayment))
	for pt, amount := range byPayment {
		share := decimal.Zero
		if revenue.IsPositive() {
			share = amount.Mul(decimal.NewFromInt(100)).Div(revenue).Round(2)
		}
		breakdown = append(breakdown, PaymentSlice{
			PaymentType: pt,
			Revenue:     amount.Round(2),
			Share:       share,
		})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		return breakdown[i].Revenue.GreaterThan(breakdown[j].Revenue)
	})

	ranks := make([]ProductRank, 0, len(byProduct))
	for id, r := range byProduct {
		ranks = append(ranks, ProductRank{
			ProductID: id,
			Name:      r.name,
			Quantity:  r.quantity,
			Revenue:   r.revenue.Round(2),
		})
	}
	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].Quantity != ranks[j].Quantity {
			return ranks[i].Quantity > ranks[j].Quantity
		}
		return ranks[i].ProductID < ranks[j].ProductID
	})
	if len(ranks) > topProductLimit {
		ranks = ranks[:topProductLimit]
	}

	// Outstanding pending is all-time, not limited by the filter,
	// matching the reports screen.
	return &Summary{
		PeriodRevenue:      revenue.Round(2),
		OrderCount:         len(filtered),
		PaymentBreakdown:   breakdown,
		TopProducts:        ranks,
		OutstandingPending: sale.OutstandingPending(all).Round(2),
	}, nil
}
