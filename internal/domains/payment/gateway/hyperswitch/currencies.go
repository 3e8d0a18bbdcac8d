package hyperswitch

import (
	"github.com/shopspring/decimal"
)

// Hyperswitch reports amounts in the currency's minor units (e.g. paise,
// cents). The platform ledger expects major units as a decimal.

// zeroDecimalCurrencies have no minor unit; amounts pass through unchanged.
var zeroDecimalCurrencies = map[string]bool{
	"BIF": true,
	"CLP": true,
	"DJF": true,
	"GNF": true,
	"JPY": true,
	"KMF": true,
	"KRW": true,
	"MGA": true,
	"PYG": true,
	"RWF": true,
	"UGX": true,
	"VND": true,
	"VUV": true,
	"XAF": true,
	"XOF": true,
	"XPF": true,
}

// threeDecimalCurrencies use three digits of minor units.
var threeDecimalCurrencies = map[string]bool{
	"BHD": true,
	"IQD": true,
	"JOD": true,
	"KWD": true,
	"LYD": true,
	"OMR": true,
	"TND": true,
}

// MinorUnitExponent returns the number of minor-unit digits for a currency.
func MinorUnitExponent(currency string) int32 {
	switch {
	case zeroDecimalCurrencies[currency]:
		return 0
	case threeDecimalCurrencies[currency]:
		return 3
	default:
		return 2
	}
}

// AmountFromMinorUnits converts a Hyperswitch minor-unit amount into the
// decimal major-unit amount reported to the ledger.
func AmountFromMinorUnits(amount int64, currency string) decimal.Decimal {
	return decimal.New(amount, -MinorUnitExponent(currency))
}

// AmountToMinorUnits converts a ledger decimal amount into the integer
// minor-unit representation Hyperswitch expects.
func AmountToMinorUnits(amount decimal.Decimal, currency string) int64 {
	return amount.Shift(MinorUnitExponent(currency)).Round(0).IntPart()
}
