package token

import (
	"context"
	"errors"
	"time"

	"dsc/core"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Balance one account's holding of one token. The engine's custody account
// and every user account live in the same table, so a rolled-back engine
// operation also rolls back the token movements it triggered.
type Balance struct {
	ID        uint64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Symbol    string          `gorm:"size:20;uniqueIndex:idx_token_symbol_account" json:"symbol"`
	Account   string          `gorm:"size:64;uniqueIndex:idx_token_symbol_account" json:"account"`
	Amount    decimal.Decimal `gorm:"type:decimal(42,18)" json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Store balance store for the simulated token ledgers
type Store struct {
	db *gorm.DB
}

// New new token balance store
func New(db *gorm.DB) *Store {
	return &Store{
		db: db,
	}
}

// Migrate migrate token balance table
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Balance{})
}

func (s *Store) Find(ctx context.Context, symbol, account string) (decimal.Decimal, error) {
	var balance Balance
	if err := s.db.WithContext(ctx).Where("symbol = ? AND account = ?", symbol, account).First(&balance).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}

	return balance.Amount, nil
}

func (s *Store) Sum(ctx context.Context, symbol string) (decimal.Decimal, error) {
	var balances []*Balance
	if err := s.db.WithContext(ctx).Where("symbol = ?", symbol).Find(&balances).Error; err != nil {
		return decimal.Zero, err
	}

	sum := decimal.Zero
	for _, b := range balances {
		sum = sum.Add(b.Amount)
	}

	return sum, nil
}

// Credit adds amount to an account, creating the row on first use.
func (s *Store) Credit(ctx context.Context, tx *gorm.DB, symbol, account string, amount decimal.Decimal) error {
	var balance Balance
	err := tx.WithContext(ctx).Where("symbol = ? AND account = ?", symbol, account).First(&balance).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		balance = Balance{
			Symbol:  symbol,
			Account: account,
			Amount:  amount,
		}
		return tx.WithContext(ctx).Create(&balance).Error
	}
	if err != nil {
		return err
	}

	return tx.WithContext(ctx).Model(&balance).Update("amount", balance.Amount.Add(amount)).Error
}

// Debit removes amount from an account, failing on insufficient funds.
func (s *Store) Debit(ctx context.Context, tx *gorm.DB, symbol, account string, amount decimal.Decimal) error {
	var balance Balance
	if err := tx.WithContext(ctx).Where("symbol = ? AND account = ?", symbol, account).First(&balance).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.ErrInsufficientBalance
		}
		return err
	}

	remaining := balance.Amount.Sub(amount)
	if remaining.IsNegative() {
		return core.ErrInsufficientBalance
	}

	return tx.WithContext(ctx).Model(&balance).Update("amount", remaining).Error
}
