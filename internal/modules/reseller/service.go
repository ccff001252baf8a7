// Package reseller backs the referral dashboard. This is a disconnected
// stub feature: the referral list is sample data and only the reseller
// id is persisted.
package reseller

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/shopsmart/shopsmart-backend/internal/storage"
)

const resellerIDKey = "reseller_id"

// Service serves the reseller dashboard.
type Service interface {
	Summary(ctx context.Context, origin string) (*Summary, error)
}

type service struct{ kv storage.Store }

// NewService creates a reseller service.
func NewService(kv storage.Store) Service { return &service{kv: kv} }

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func (s *service) Summary(ctx context.Context, origin string) (*Summary, error) {
	id, err := s.resellerID(ctx)
	if err != nil {
		return nil, err
	}

	referrals := sampleReferrals()
	total := decimal.Zero
	live := 0
	for _, ref := range referrals {
		total = total.Add(ref.Earned)
		if ref.Status == "Active" {
			live++
		}
	}

	return &Summary{
		ResellerID:   id,
		ReferralLink: fmt.Sprintf("%s/join?ref=%s", origin, id),
		Referrals:    referrals,
		TotalEarned:  total,
		LiveCount:    live,
	}, nil
}

// resellerID returns the persisted reseller id, minting one on first use.
func (s *service) resellerID(ctx context.Context) (string, error) {
	data, err := s.kv.Get(ctx, resellerIDKey)
	if err != nil {
		return "", err
	}
	if len(data) > 0 {
		return string(data), nil
	}

	id := make([]byte, 6)
	for i := range id {
		id[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	if err := s.kv.Set(ctx, resellerIDKey, id); err != nil {
		return "", err
	}
	return string(id), nil
}

func sampleReferrals() []Referral {
	return []Referral{
		{Name: "Apex Grocery", Type: "Retail", SignedUp: "2024-11-12", Status: "Active", Earned: decimal.NewFromFloat(245.00)},
		{Name: "Elite Salon", Type: "Service", SignedUp: "2025-01-02", Status: "Active", Earned: decimal.NewFromFloat(112.50)},
		{Name: "Bridge Meds", Type: "Pharma", SignedUp: "2024-12-15", Status: "Expired", Earned: decimal.NewFromFloat(450.00)},
		{Name: "Fresh Produce", Type: "Vendor", SignedUp: "2025-02-10", Status: "Trial", Earned: decimal.Zero},
	}
}
