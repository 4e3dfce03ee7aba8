package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Collateral per-user per-asset deposited quantity. Rows are created
// implicitly on first deposit and never deleted; balances decay to zero.
type Collateral struct {
	ID        uint64          `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string          `gorm:"size:64;uniqueIndex:idx_vault_user_symbol" json:"user_id"`
	Symbol    string          `gorm:"size:20;uniqueIndex:idx_vault_user_symbol" json:"symbol"`
	Balance   decimal.Decimal `gorm:"type:decimal(42,18)" json:"balance"`
	Version   int64           `gorm:"default:0" json:"version"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// IVaultStore vault store interface
type IVaultStore interface {
	Find(ctx context.Context, userID, symbol string) (*Collateral, error)
	FindByUser(ctx context.Context, userID string) ([]*Collateral, error)
	Users(ctx context.Context) ([]string, error)
	Add(ctx context.Context, tx *gorm.DB, userID, symbol string, amount decimal.Decimal) error
	Sub(ctx context.Context, tx *gorm.DB, userID, symbol string, amount decimal.Decimal) error
}
