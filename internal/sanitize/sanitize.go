// Package sanitize holds the input-boundary cleaners shared by the
// catalog and customer modules. Bad numeric input is clamped to a safe
// value rather than rejected; strings are trimmed and capped.
package sanitize

import (
	"strings"

	"github.com/shopspring/decimal"
)

const maxStringLen = 1000

// String trims, strips angle brackets, and caps the length.
func String(in string) string {
	out := strings.NewReplacer("<", "", ">", "").Replace(in)
	out = strings.TrimSpace(out)
	if len(out) > maxStringLen {
		out = out[:maxStringLen]
	}
	return out
}

// Phone keeps digits only, capped at 15 characters.
func Phone(in string) string {
	var b strings.Builder
	for _, r := range in {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
		if b.Len() == 15 {
			break
		}
	}
	return b.String()
}

// Money clamps a decimal to be non-negative.
func Money(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// Quantity floors an integer at zero.
func Quantity(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// Percent clamps a decimal into [0, 100].
func Percent(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	if d.GreaterThan(decimal.NewFromInt(100)) {
		return decimal.NewFromInt(100)
	}
	return d
}
