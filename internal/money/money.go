// Package money centralizes decimal handling for prices and totals.
package money

import "github.com/shopspring/decimal"

func init() {
	// prices and totals go over the wire as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

// Zero is the starting value for total computations.
var Zero = decimal.Zero

// FromFloat converts a float price literal into a decimal.
func FromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// Line returns price multiplied by quantity.
func Line(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}
