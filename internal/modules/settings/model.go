package settings

import "github.com/shopspring/decimal"

// Settings is plain key-value shop configuration. No invariants beyond
// clamping the tax rate into [0,100].
type Settings struct {
	Language     string          `json:"language"` // en, ar, hi
	Currency     string          `json:"currency"`
	DarkMode     bool            `json:"dark_mode"`
	BusinessType string          `json:"business_type"`
	TaxRate      decimal.Decimal `json:"tax_rate"`
}

// Defaults returns the settings a fresh shop starts with.
func Defaults() Settings {
	return Settings{
		Language:     "en",
		Currency:     "$",
		DarkMode:     false,
		BusinessType: "General",
		TaxRate:      decimal.Zero,
	}
}

// UpdateRequest is a partial settings update; nil fields are left
// unchanged.
type UpdateRequest struct {
	Language     *string          `json:"language,omitempty"`
	Currency     *string          `json:"currency,omitempty"`
	DarkMode     *bool            `json:"dark_mode,omitempty"`
	BusinessType *string          `json:"business_type,omitempty"`
	TaxRate      *decimal.Decimal `json:"tax_rate,omitempty"`
}
