package sanitize_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/shopsmart/shopsmart-backend/internal/sanitize"
)

func TestString(t *testing.T) {
	assert.Equal(t, "Sugar 1kg", sanitize.String("  Sugar 1kg  "))
	assert.Equal(t, "bSugar/b", sanitize.String("<b>Sugar</b>"))
	long := strings.Repeat("a", 1200)
	assert.Len(t, sanitize.String(long), 1000)
}

func TestPhone(t *testing.T) {
	assert.Equal(t, "260971234567", sanitize.Phone("+260 97 123-4567"))
	assert.Equal(t, "123456789012345", sanitize.Phone("1234567890123456789"))
	assert.Equal(t, "", sanitize.Phone("no digits"))
}

func TestMoney(t *testing.T) {
	assert.True(t, sanitize.Money(decimal.NewFromFloat(-5)).IsZero())
	assert.Equal(t, "9.99", sanitize.Money(decimal.NewFromFloat(9.99)).String())
}

func TestQuantity(t *testing.T) {
	assert.Equal(t, 0, sanitize.Quantity(-3))
	assert.Equal(t, 7, sanitize.Quantity(7))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "0", sanitize.Percent(decimal.NewFromInt(-10)).String())
	assert.Equal(t, "100", sanitize.Percent(decimal.NewFromInt(250)).String())
	assert.Equal(t, "12.5", sanitize.Percent(decimal.NewFromFloat(12.5)).String())
}
