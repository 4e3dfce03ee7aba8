package account

import (
	"context"

	"dsc/core"
	"dsc/internal/dsc"

	"github.com/shopspring/decimal"
)

type accountService struct {
	assets     []*core.CollateralAsset
	vaultStore core.IVaultStore
	debtStore  core.IDebtStore
	priceFeed  core.IPriceFeed
}

// New new account service
func New(
	assets []*core.CollateralAsset,
	vaultStore core.IVaultStore,
	debtStore core.IDebtStore,
	priceFeed core.IPriceFeed,
) core.IAccountService {
	return &accountService{
		assets:     assets,
		vaultStore: vaultStore,
		debtStore:  debtStore,
		priceFeed:  priceFeed,
	}
}

// CollateralValue sums the USD value of the user's balance in every
// registered asset. Zero balances contribute zero.
func (s *accountService) CollateralValue(ctx context.Context, userID string) (decimal.Decimal, error) {
	value := decimal.Zero
	for _, asset := range s.assets {
		collateral, err := s.vaultStore.Find(ctx, userID, asset.Symbol)
		if err != nil {
			return decimal.Zero, err
		}

		if collateral.Balance.IsZero() {
			continue
		}

		price, err := s.priceFeed.LatestPrice(ctx, asset.FeedID)
		if err != nil {
			return decimal.Zero, err
		}

		value = value.Add(dsc.UsdValue(price, collateral.Balance))
	}

	return value, nil
}

func (s *accountService) AccountInformation(ctx context.Context, userID string) (decimal.Decimal, decimal.Decimal, error) {
	position, err := s.debtStore.Find(ctx, userID)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	value, err := s.CollateralValue(ctx, userID)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	return position.Principal, value, nil
}

func (s *accountService) Account(ctx context.Context, userID string) (*core.Account, error) {
	debt, value, err := s.AccountInformation(ctx, userID)
	if err != nil {
		return nil, err
	}

	collaterals, err := s.vaultStore.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &core.Account{
		UserID:          userID,
		Debt:            debt,
		CollateralValue: value,
		HealthFactor:    dsc.HealthFactor(debt, value),
		Collaterals:     collaterals,
	}, nil
}
