package vault

import (
	"context"
	"errors"

	"dsc/core"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type vaultStore struct {
	db *gorm.DB
}

// New new vault store
func New(db *gorm.DB) core.IVaultStore {
	return &vaultStore{
		db: db,
	}
}

// Migrate migrate vault table
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&core.Collateral{})
}

func (s *vaultStore) Find(ctx context.Context, userID, symbol string) (*core.Collateral, error) {
	var collateral core.Collateral
	if err := s.db.WithContext(ctx).Where("user_id = ? AND symbol = ?", userID, symbol).First(&collateral).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &core.Collateral{
				UserID:  userID,
				Symbol:  symbol,
				Balance: decimal.Zero,
			}, nil
		}
		return nil, err
	}

	return &collateral, nil
}

func (s *vaultStore) FindByUser(ctx context.Context, userID string) ([]*core.Collateral, error) {
	var collaterals []*core.Collateral
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&collaterals).Error; err != nil {
		return nil, err
	}

	return collaterals, nil
}

func (s *vaultStore) Users(ctx context.Context) ([]string, error) {
	var users []string
	if err := s.db.WithContext(ctx).Model(&core.Collateral{}).Distinct("user_id").Pluck("user_id", &users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

func (s *vaultStore) Add(ctx context.Context, tx *gorm.DB, userID, symbol string, amount decimal.Decimal) error {
	var collateral core.Collateral
	err := tx.WithContext(ctx).Where("user_id = ? AND symbol = ?", userID, symbol).First(&collateral).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		collateral = core.Collateral{
			UserID:  userID,
			Symbol:  symbol,
			Balance: amount,
		}
		return tx.WithContext(ctx).Create(&collateral).Error
	}
	if err != nil {
		return err
	}

	return tx.WithContext(ctx).Model(&collateral).Updates(map[string]interface{}{
		"balance": collateral.Balance.Add(amount),
		"version": collateral.Version + 1,
	}).Error
}

func (s *vaultStore) Sub(ctx context.Context, tx *gorm.DB, userID, symbol string, amount decimal.Decimal) error {
	var collateral core.Collateral
	if err := tx.WithContext(ctx).Where("user_id = ? AND symbol = ?", userID, symbol).First(&collateral).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.ErrInsufficientCollateral
		}
		return err
	}

	balance := collateral.Balance.Sub(amount)
	if balance.IsNegative() {
		return core.ErrInsufficientCollateral
	}

	return tx.WithContext(ctx).Model(&collateral).Updates(map[string]interface{}{
		"balance": balance,
		"version": collateral.Version + 1,
	}).Error
}
