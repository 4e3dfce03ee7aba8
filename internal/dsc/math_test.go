package dsc

import (
	"testing"

	"dsc/pkg/number"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(v string) decimal.Decimal {
	return number.Decimal(v)
}

func TestUsdValue(t *testing.T) {
	// 2000 USD/unit in the 8-decimal feed convention
	price := d("200000000000")

	assert.True(t, d("20000").Equal(UsdValue(price, d("10"))))
	assert.True(t, d("0").Equal(UsdValue(price, d("0"))))
	assert.True(t, d("30").Equal(UsdValue(d("1500000000"), d("2"))))
}

func TestTokenAmountFromUsd(t *testing.T) {
	price := d("1800000000") // 18 USD/unit

	assert.Equal(t, "5.555555555555555555", TokenAmountFromUsd(price, d("100")).String())
	assert.True(t, d("0.05").Equal(TokenAmountFromUsd(d("200000000000"), d("100"))))
}

func TestConversionRoundTrip(t *testing.T) {
	price := d("1800000000")
	qty := d("7")

	back := TokenAmountFromUsd(price, UsdValue(price, qty))
	diff := qty.Sub(back)
	assert.True(t, diff.GreaterThanOrEqual(decimal.Zero))
	assert.True(t, diff.LessThanOrEqual(d("0.000000000000000001")), "round trip within one floor unit, got %s", back)
}

func TestHealthFactor(t *testing.T) {
	// Scenario: 20000 USD collateral, 10000 debt is exactly the boundary.
	assert.True(t, d("1").Equal(HealthFactor(d("10000"), d("20000"))))
	assert.True(t, d("0.5").Equal(HealthFactor(d("20000"), d("20000"))))
	assert.True(t, HealthFactor(d("10000"), d("20000")).GreaterThanOrEqual(MinHealthFactor))
	assert.True(t, HealthFactor(d("10001"), d("20000")).LessThan(MinHealthFactor))
}

func TestHealthFactorZeroDebt(t *testing.T) {
	assert.True(t, number.MaxDecimal.Equal(HealthFactor(decimal.Zero, d("20000"))))
	assert.True(t, number.MaxDecimal.Equal(HealthFactor(decimal.Zero, decimal.Zero)))
}

func TestLiquidationPayout(t *testing.T) {
	price := d("1800000000") // 18 USD/unit

	equivalent, bonus, total := LiquidationPayout(price, d("100"))
	assert.Equal(t, "5.555555555555555555", equivalent.String())
	assert.Equal(t, "0.555555555555555555", bonus.String())
	assert.Equal(t, "6.11111111111111111", total.String())
	assert.True(t, d("6.111111111111111110").Equal(total))
}
