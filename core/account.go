package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// Account a user's aggregated position
type Account struct {
	UserID          string          `json:"user_id"`
	Debt            decimal.Decimal `json:"debt"`
	CollateralValue decimal.Decimal `json:"collateral_value"`
	HealthFactor    decimal.Decimal `json:"health_factor"`
	Collaterals     []*Collateral   `json:"collaterals"`
}

// IAccountService account aggregator interface
type IAccountService interface {
	// AccountInformation returns minted debt and total collateral USD value.
	AccountInformation(ctx context.Context, userID string) (decimal.Decimal, decimal.Decimal, error)
	// CollateralValue sums the USD value of every registered asset balance.
	CollateralValue(ctx context.Context, userID string) (decimal.Decimal, error)
	Account(ctx context.Context, userID string) (*Account, error)
}
