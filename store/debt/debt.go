package debt

import (
	"context"
	"errors"

	"dsc/core"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type debtStore struct {
	db *gorm.DB
}

// New new debt store
func New(db *gorm.DB) core.IDebtStore {
	return &debtStore{
		db: db,
	}
}

// Migrate migrate debt table
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&core.DebtPosition{})
}

func (s *debtStore) Find(ctx context.Context, userID string) (*core.DebtPosition, error) {
	var position core.DebtPosition
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&position).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &core.DebtPosition{
				UserID:    userID,
				Principal: decimal.Zero,
			}, nil
		}
		return nil, err
	}

	return &position, nil
}

func (s *debtStore) Users(ctx context.Context) ([]string, error) {
	var users []string
	if err := s.db.WithContext(ctx).Model(&core.DebtPosition{}).Distinct("user_id").Pluck("user_id", &users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

func (s *debtStore) Add(ctx context.Context, tx *gorm.DB, userID string, amount decimal.Decimal) error {
	var position core.DebtPosition
	err := tx.WithContext(ctx).Where("user_id = ?", userID).First(&position).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		position = core.DebtPosition{
			UserID:    userID,
			Principal: amount,
		}
		return tx.WithContext(ctx).Create(&position).Error
	}
	if err != nil {
		return err
	}

	return tx.WithContext(ctx).Model(&position).Updates(map[string]interface{}{
		"principal": position.Principal.Add(amount),
		"version":   position.Version + 1,
	}).Error
}

func (s *debtStore) Sub(ctx context.Context, tx *gorm.DB, userID string, amount decimal.Decimal) error {
	var position core.DebtPosition
	if err := tx.WithContext(ctx).Where("user_id = ?", userID).First(&position).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.ErrInsufficientDebt
		}
		return err
	}

	principal := position.Principal.Sub(amount)
	if principal.IsNegative() {
		return core.ErrInsufficientDebt
	}

	return tx.WithContext(ctx).Model(&position).Updates(map[string]interface{}{
		"principal": principal,
		"version":   position.Version + 1,
	}).Error
}
