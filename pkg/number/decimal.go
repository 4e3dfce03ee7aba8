// Package number owns the fixed-point arithmetic discipline of the ledger:
// every quantity, USD value, and ratio is a decimal truncated to 18
// fractional digits after each multiply or divide, which reproduces the
// floor semantics of 18-decimal integer (wei) arithmetic exactly.
package number

import "github.com/shopspring/decimal"

// Precision fractional digits carried by every ledger amount
const Precision = 18

// MaxDecimal sentinel for an unbounded ratio, the largest amount the
// 256-bit wei representation could hold.
var MaxDecimal = Decimal("115792089237316195423570985008687907853269984665640564039457.584007913129639935")

func Decimal(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

// Floor truncates toward zero at the ledger precision.
func Floor(d decimal.Decimal) decimal.Decimal {
	return d.Truncate(Precision)
}

// Mul multiplies and floors the product.
func Mul(a, b decimal.Decimal) decimal.Decimal {
	return Floor(a.Mul(b))
}

// Div divides with the quotient truncated toward zero at the ledger
// precision. Conversions built on it are deliberately not guaranteed to
// round-trip exactly.
func Div(a, b decimal.Decimal) decimal.Decimal {
	q, _ := a.QuoRem(b, Precision)
	return q
}
