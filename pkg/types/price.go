package types

import "github.com/shopspring/decimal"

// Price is a decimal money amount. Unlike decimal.Decimal it serializes as a
// bare JSON number with two fractional digits, which is what the storefront
// clients send and expect back.
type Price struct {
	decimal.Decimal
}

// NewPrice wraps a decimal amount.
func NewPrice(d decimal.Decimal) Price {
	return Price{Decimal: d}
}

// PriceFromFloat converts a float amount (e.g. 4.2) into a Price.
func PriceFromFloat(f float64) Price {
	return Price{Decimal: decimal.NewFromFloat(f)}
}

// MarshalJSON emits the amount as an unquoted number rounded to cents.
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.Decimal.StringFixed(2)), nil
}

// UnmarshalJSON accepts both quoted and unquoted decimal payloads.
func (p *Price) UnmarshalJSON(data []byte) error {
	return p.Decimal.UnmarshalJSON(data)
}

// IsNegative reports whether the amount is below zero.
func (p Price) IsNegative() bool {
	return p.Decimal.IsNegative()
}
