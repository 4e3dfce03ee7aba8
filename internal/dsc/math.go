// Package dsc holds the pure protocol math: price conversion, the health
// factor, and the liquidation payout. The constants here are load-bearing;
// changing any of them changes every solvency decision the engine makes.
package dsc

import (
	"dsc/pkg/number"

	"github.com/shopspring/decimal"
)

// FeedDecimals price feeds quote raw integers in the 8-decimal convention
const FeedDecimals = 8

var (
	// LiquidationThreshold only 50% of nominal collateral value counts
	// toward solvency, i.e. positions must be 200% over-collateralized.
	LiquidationThreshold = number.Decimal("0.5")

	// LiquidationBonus extra collateral share awarded to a liquidator
	LiquidationBonus = number.Decimal("0.1")

	// MinHealthFactor ratio at or above which an account is solvent
	MinHealthFactor = number.Decimal("1")
)

// UsdValue converts an asset quantity to its USD value at the raw feed
// price, floored at the ledger precision.
func UsdValue(rawPrice, quantity decimal.Decimal) decimal.Decimal {
	return number.Mul(rawPrice.Shift(-FeedDecimals), quantity)
}

// TokenAmountFromUsd is the inverse conversion. The quotient truncates
// toward zero, so converting back and forth can lose up to one unit of the
// smallest increment.
func TokenAmountFromUsd(rawPrice, usdAmount decimal.Decimal) decimal.Decimal {
	return number.Div(usdAmount, rawPrice.Shift(-FeedDecimals))
}

// HealthFactor returns the solvency ratio of a position. With no debt the
// position has unbounded headroom and the ratio saturates at the maximum
// representable value.
func HealthFactor(debt, collateralValue decimal.Decimal) decimal.Decimal {
	if debt.IsZero() {
		return number.MaxDecimal
	}

	adjusted := number.Mul(collateralValue, LiquidationThreshold)
	return number.Div(adjusted, debt)
}

// LiquidationPayout converts a USD debt amount into the collateral
// quantity seized from the target: the debt-equivalent quantity plus the
// liquidator's bonus share.
func LiquidationPayout(rawPrice, debtToCover decimal.Decimal) (equivalent, bonus, total decimal.Decimal) {
	equivalent = TokenAmountFromUsd(rawPrice, debtToCover)
	bonus = number.Mul(equivalent, LiquidationBonus)
	total = equivalent.Add(bonus)
	return
}
