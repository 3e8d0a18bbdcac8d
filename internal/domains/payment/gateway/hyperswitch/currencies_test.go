package hyperswitch

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMinorUnitExponent(t *testing.T) {
	assert.EqualValues(t, 0, MinorUnitExponent("JPY"))
	assert.EqualValues(t, 0, MinorUnitExponent("VND"))
	assert.EqualValues(t, 3, MinorUnitExponent("KWD"))
	assert.EqualValues(t, 3, MinorUnitExponent("BHD"))
	assert.EqualValues(t, 2, MinorUnitExponent("USD"))
	assert.EqualValues(t, 2, MinorUnitExponent("INR"))
	assert.EqualValues(t, 2, MinorUnitExponent("XYZ"))
}

func TestAmountFromMinorUnits(t *testing.T) {
	tests := []struct {
		amount   int64
		currency string
		want     string
	}{
		{12345, "USD", "123.45"},
		{12345, "JPY", "12345"},
		{12345, "KWD", "12.345"},
		{0, "USD", "0"},
		{1, "INR", "0.01"},
	}

	for _, tt := range tests {
		got := AmountFromMinorUnits(tt.amount, tt.currency)
		assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
			"%d %s: got %s, want %s", tt.amount, tt.currency, got, tt.want)
	}
}

func TestAmountToMinorUnits(t *testing.T) {
	assert.EqualValues(t, 12345, AmountToMinorUnits(decimal.RequireFromString("123.45"), "USD"))
	assert.EqualValues(t, 12345, AmountToMinorUnits(decimal.RequireFromString("12345"), "JPY"))
	assert.EqualValues(t, 12345, AmountToMinorUnits(decimal.RequireFromString("12.345"), "KWD"))
}

func TestMinorUnitRoundTrip(t *testing.T) {
	for _, currency := range []string{"USD", "JPY", "KWD"} {
		original := int64(98765)
		major := AmountFromMinorUnits(original, currency)
		assert.EqualValues(t, original, AmountToMinorUnits(major, currency), currency)
	}
}
