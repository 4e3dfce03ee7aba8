package core

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ITokenLedger is the transfer surface of the collateral asset ledgers.
// Mutators take the transaction handle of the enclosing engine operation so
// a failure anywhere in that operation rolls the transfer back with it.
type ITokenLedger interface {
	Balance(ctx context.Context, symbol, account string) (decimal.Decimal, error)
	Transfer(ctx context.Context, tx *gorm.DB, symbol, from, to string, amount decimal.Decimal) error
	TransferFrom(ctx context.Context, tx *gorm.DB, symbol, from, to string, amount decimal.Decimal) error
}

// IDebtToken is the minted synthetic token ledger. Mint/burn authority is
// delegated to the engine at construction and never revoked.
type IDebtToken interface {
	Symbol() string
	Balance(ctx context.Context, account string) (decimal.Decimal, error)
	Supply(ctx context.Context) (decimal.Decimal, error)
	Mint(ctx context.Context, tx *gorm.DB, to string, amount decimal.Decimal) error
	// Burn destroys supply held by the burner account.
	Burn(ctx context.Context, tx *gorm.DB, burner string, amount decimal.Decimal) error
	TransferFrom(ctx context.Context, tx *gorm.DB, from, to string, amount decimal.Decimal) error
}
