package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DebtPosition per-user minted debt counter. The principal mirrors the
// debt-token supply issued on the user's behalf.
type DebtPosition struct {
	ID        uint64          `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string          `gorm:"size:64;uniqueIndex:idx_debt_user" json:"user_id"`
	Principal decimal.Decimal `gorm:"type:decimal(42,18)" json:"principal"`
	Version   int64           `gorm:"default:0" json:"version"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// IDebtStore debt store interface
type IDebtStore interface {
	Find(ctx context.Context, userID string) (*DebtPosition, error)
	Users(ctx context.Context) ([]string, error)
	Add(ctx context.Context, tx *gorm.DB, userID string, amount decimal.Decimal) error
	Sub(ctx context.Context, tx *gorm.DB, userID string, amount decimal.Decimal) error
}
