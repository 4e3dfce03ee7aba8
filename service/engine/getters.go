package engine

import (
	"context"

	"dsc/core"
	"dsc/internal/dsc"

	"github.com/shopspring/decimal"
)

func (s *engineService) HealthFactor(ctx context.Context, userID string) (decimal.Decimal, error) {
	debt, value, err := s.accountService.AccountInformation(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}

	return dsc.HealthFactor(debt, value), nil
}

func (s *engineService) UsdValue(ctx context.Context, symbol string, amount decimal.Decimal) (decimal.Decimal, error) {
	price, err := s.price(ctx, symbol)
	if err != nil {
		return decimal.Zero, err
	}

	return dsc.UsdValue(price, amount), nil
}

func (s *engineService) TokenAmountFromUsd(ctx context.Context, symbol string, usdAmount decimal.Decimal) (decimal.Decimal, error) {
	price, err := s.price(ctx, symbol)
	if err != nil {
		return decimal.Zero, err
	}

	return dsc.TokenAmountFromUsd(price, usdAmount), nil
}

func (s *engineService) CollateralBalance(ctx context.Context, userID, symbol string) (decimal.Decimal, error) {
	collateral, err := s.vaultStore.Find(ctx, userID, symbol)
	if err != nil {
		return decimal.Zero, err
	}

	return collateral.Balance, nil
}

func (s *engineService) RegisteredAssets() []*core.CollateralAsset {
	assets := make([]*core.CollateralAsset, len(s.assets))
	copy(assets, s.assets)
	return assets
}

func (s *engineService) LiquidationBonus() decimal.Decimal {
	return dsc.LiquidationBonus
}

func (s *engineService) LiquidationThreshold() decimal.Decimal {
	return dsc.LiquidationThreshold
}

func (s *engineService) MinHealthFactor() decimal.Decimal {
	return dsc.MinHealthFactor
}
