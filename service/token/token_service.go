package token

import (
	"context"

	"dsc/core"
	tokenstore "dsc/store/token"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransferHook runs before a transfer is applied. Used in tests to model a
// token contract that calls back into the engine mid-operation.
type TransferHook func(ctx context.Context, symbol, from, to string, amount decimal.Decimal) error

// Ledger db-backed token ledger for the collateral assets
type Ledger struct {
	store *tokenstore.Store
	hook  TransferHook
}

// NewLedger new collateral token ledger
func NewLedger(store *tokenstore.Store) *Ledger {
	return &Ledger{
		store: store,
	}
}

// SetTransferHook install a transfer hook
func (l *Ledger) SetTransferHook(hook TransferHook) {
	l.hook = hook
}

func (l *Ledger) Balance(ctx context.Context, symbol, account string) (decimal.Decimal, error) {
	return l.store.Find(ctx, symbol, account)
}

func (l *Ledger) Transfer(ctx context.Context, tx *gorm.DB, symbol, from, to string, amount decimal.Decimal) error {
	return l.move(ctx, tx, symbol, from, to, amount)
}

func (l *Ledger) TransferFrom(ctx context.Context, tx *gorm.DB, symbol, from, to string, amount decimal.Decimal) error {
	return l.move(ctx, tx, symbol, from, to, amount)
}

func (l *Ledger) move(ctx context.Context, tx *gorm.DB, symbol, from, to string, amount decimal.Decimal) error {
	if l.hook != nil {
		if err := l.hook(ctx, symbol, from, to, amount); err != nil {
			return err
		}
	}

	if err := l.store.Debit(ctx, tx, symbol, from, amount); err != nil {
		return err
	}

	return l.store.Credit(ctx, tx, symbol, to, amount)
}

// Deposit credits an account out of thin air, standing in for value
// arriving from outside the system. Test and genesis helper.
func (l *Ledger) Deposit(ctx context.Context, tx *gorm.DB, symbol, account string, amount decimal.Decimal) error {
	return l.store.Credit(ctx, tx, symbol, account, amount)
}

var _ core.ITokenLedger = (*Ledger)(nil)

// DebtToken the synthetic debt token ledger. Mint and burn authority
// belongs to the engine holding this reference.
type DebtToken struct {
	symbol string
	store  *tokenstore.Store
	hook   TransferHook
}

// NewDebtToken new debt token ledger
func NewDebtToken(symbol string, store *tokenstore.Store) *DebtToken {
	return &DebtToken{
		symbol: symbol,
		store:  store,
	}
}

// SetTransferHook install a transfer hook
func (t *DebtToken) SetTransferHook(hook TransferHook) {
	t.hook = hook
}

func (t *DebtToken) Symbol() string {
	return t.symbol
}

func (t *DebtToken) Balance(ctx context.Context, account string) (decimal.Decimal, error) {
	return t.store.Find(ctx, t.symbol, account)
}

func (t *DebtToken) Supply(ctx context.Context) (decimal.Decimal, error) {
	return t.store.Sum(ctx, t.symbol)
}

func (t *DebtToken) Mint(ctx context.Context, tx *gorm.DB, to string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return core.ErrMintFailed
	}

	return t.store.Credit(ctx, tx, t.symbol, to, amount)
}

func (t *DebtToken) Burn(ctx context.Context, tx *gorm.DB, burner string, amount decimal.Decimal) error {
	return t.store.Debit(ctx, tx, t.symbol, burner, amount)
}

func (t *DebtToken) TransferFrom(ctx context.Context, tx *gorm.DB, from, to string, amount decimal.Decimal) error {
	if t.hook != nil {
		if err := t.hook(ctx, t.symbol, from, to, amount); err != nil {
			return err
		}
	}

	if err := t.store.Debit(ctx, tx, t.symbol, from, amount); err != nil {
		return err
	}

	return t.store.Credit(ctx, tx, t.symbol, to, amount)
}

var _ core.IDebtToken = (*DebtToken)(nil)
