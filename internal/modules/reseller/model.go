package reseller

import "github.com/shopspring/decimal"

// Referral is one merchant referred through the reseller program.
type Referral struct {
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	SignedUp string          `json:"signed_up"`
	Status   string          `json:"status"` // Active, Trial, Expired
	Earned   decimal.Decimal `json:"earned"`
}

// Summary is the reseller dashboard payload.
type Summary struct {
	ResellerID   string          `json:"reseller_id"`
	ReferralLink string          `json:"referral_link"`
	Referrals    []Referral      `json:"referrals"`
	TotalEarned  decimal.Decimal `json:"total_earned"`
	LiveCount    int             `json:"live_count"`
}
