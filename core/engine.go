package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// IEngine is the collateral/debt accounting engine. Every mutating
// operation is a single atomic unit of work: either all bookkeeping and
// all value transfers it triggers commit, or none do. Mutating operations
// hold the engine's re-entrancy guard for their entire execution.
type IEngine interface {
	// DepositCollateral credits the vault then pulls the asset into custody.
	DepositCollateral(ctx context.Context, userID, symbol string, amount decimal.Decimal) error
	// RedeemCollateral debits the vault, pushes the asset out, and
	// re-validates the caller's health factor.
	RedeemCollateral(ctx context.Context, userID, symbol string, amount decimal.Decimal) error
	// MintDsc raises the caller's debt and mints debt token to them,
	// rejecting any mint that would break the minimum health factor.
	MintDsc(ctx context.Context, userID string, amount decimal.Decimal) error
	// BurnDsc repays the caller's debt from their own token balance.
	BurnDsc(ctx context.Context, userID string, amount decimal.Decimal) error
	// DepositCollateralAndMintDsc composes deposit and mint in one transaction.
	DepositCollateralAndMintDsc(ctx context.Context, userID, symbol string, amount, mintAmount decimal.Decimal) error
	// RedeemCollateralForDsc burns then redeems in one transaction.
	RedeemCollateralForDsc(ctx context.Context, userID, symbol string, amount, burnAmount decimal.Decimal) error
	// Liquidate force-repays an insolvent user's debt from the liquidator's
	// token balance in exchange for a bonus share of the user's collateral.
	Liquidate(ctx context.Context, liquidatorID, userID, symbol string, debtToCover decimal.Decimal) error

	HealthFactor(ctx context.Context, userID string) (decimal.Decimal, error)
	UsdValue(ctx context.Context, symbol string, amount decimal.Decimal) (decimal.Decimal, error)
	TokenAmountFromUsd(ctx context.Context, symbol string, usdAmount decimal.Decimal) (decimal.Decimal, error)
	CollateralBalance(ctx context.Context, userID, symbol string) (decimal.Decimal, error)
	RegisteredAssets() []*CollateralAsset
	LiquidationBonus() decimal.Decimal
	LiquidationThreshold() decimal.Decimal
	MinHealthFactor() decimal.Decimal
}
