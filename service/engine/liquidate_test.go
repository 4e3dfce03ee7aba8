package engine

import (
	"context"
	"testing"

	"dsc/core"
	"dsc/pkg/number"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiquidateRequiresInsolventTarget(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.engine.DepositCollateralAndMintDsc(ctx, alice, weth, d("10"), d("10000")))

	assert.ErrorIs(t, env.engine.Liquidate(ctx, bob, alice, weth, d("100")), core.ErrHealthFactorOk)
	assert.ErrorIs(t, env.engine.Liquidate(ctx, bob, alice, weth, d("0")), core.ErrInvalidAmount)
}

// The full crash scenario: alice mints 100 against 10 WETH, the price
// drops to 18 USD, and bob covers her whole debt.
func TestLiquidateFullCover(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.engine.DepositCollateralAndMintDsc(ctx, alice, weth, d("10"), d("100")))

	require.NoError(t, env.oracle.SetPrice(ctx, "weth-usd", price("18")))

	factor, err := env.engine.HealthFactor(ctx, alice)
	require.NoError(t, err)
	assert.True(t, factor.LessThan(d("1")), "alice must be under water, got %s", factor)

	require.NoError(t, env.engine.DepositCollateralAndMintDsc(ctx, bob, weth, d("20"), d("100")))

	bobWalletBefore, err := env.ledger.Balance(ctx, weth, bob)
	require.NoError(t, err)

	require.NoError(t, env.engine.Liquidate(ctx, bob, alice, weth, d("100")))

	// 100/18 + 10% bonus, floor-rounded at 18 decimals
	seized := d("6.111111111111111110")

	bobWallet, err := env.ledger.Balance(ctx, weth, bob)
	require.NoError(t, err)
	assert.True(t, bobWalletBefore.Add(seized).Equal(bobWallet), "bob should hold the seized collateral, got %s", bobWallet)

	aliceVault, err := env.engine.CollateralBalance(ctx, alice, weth)
	require.NoError(t, err)
	assert.True(t, d("10").Sub(seized).Equal(aliceVault))

	// remaining value = original value - usdValue(seized)
	seizedValue, err := env.engine.UsdValue(ctx, weth, seized)
	require.NoError(t, err)
	remaining, err := env.account.CollateralValue(ctx, alice)
	require.NoError(t, err)
	assert.True(t, d("180").Sub(seizedValue).Equal(remaining), "got %s", remaining)

	// debt fully cleared, paid from bob's balance
	position, err := env.debts.Find(ctx, alice)
	require.NoError(t, err)
	assert.True(t, position.Principal.IsZero())

	bobDsc, err := env.dsc.Balance(ctx, bob)
	require.NoError(t, err)
	assert.True(t, bobDsc.IsZero())

	endFactor, err := env.engine.HealthFactor(ctx, alice)
	require.NoError(t, err)
	assert.True(t, number.MaxDecimal.Equal(endFactor))

	// bob stays solvent
	bobFactor, err := env.engine.HealthFactor(ctx, bob)
	require.NoError(t, err)
	assert.True(t, bobFactor.GreaterThanOrEqual(d("1")))

	events, err := env.events.FindByUser(ctx, alice, 1)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, core.EventTypeLiquidation, events[0].Type)
	assert.Equal(t, bob, events[0].ToUserID)
	assert.True(t, seized.Equal(events[0].Amount))
}

// A cover so small relative to how deep the target is under water that the
// factor would decrease must be rejected with no state change.
func TestLiquidateMustImproveFactor(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// collateral value 200 at 10 USD/unit, then crash to 2.5: value 50
	require.NoError(t, env.oracle.SetPrice(ctx, "weth-usd", price("10")))
	require.NoError(t, env.engine.DepositCollateralAndMintDsc(ctx, alice, weth, d("20"), d("100")))
	require.NoError(t, env.oracle.SetPrice(ctx, "weth-usd", price("2.5")))

	require.NoError(t, env.engine.DepositCollateralAndMintDsc(ctx, bob, wbtc, d("1"), d("10")))

	// covering 10 removes 11 of value but only 10 of debt:
	// 0.5*(50-11)/90 < 0.5*50/100
	err := env.engine.Liquidate(ctx, bob, alice, weth, d("10"))
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrHealthFactorNotImproved)

	// full rollback
	position, err := env.debts.Find(ctx, alice)
	require.NoError(t, err)
	assert.True(t, d("100").Equal(position.Principal))

	aliceVault, err := env.engine.CollateralBalance(ctx, alice, weth)
	require.NoError(t, err)
	assert.True(t, d("20").Equal(aliceVault))

	bobDsc, err := env.dsc.Balance(ctx, bob)
	require.NoError(t, err)
	assert.True(t, d("10").Equal(bobDsc), "bob's payment must be returned on abort")
}

func TestLiquidateUnknownAsset(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	assert.ErrorIs(t, env.engine.Liquidate(ctx, bob, alice, "DOGE", d("1")), core.ErrAssetNotRegistered)
}
