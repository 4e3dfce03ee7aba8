package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// EventType event type
type EventType string

const (
	// EventTypeDeposit collateral pulled into engine custody
	EventTypeDeposit EventType = "deposit"
	// EventTypeRedeem collateral pushed out of engine custody
	EventTypeRedeem EventType = "redeem"
	// EventTypeMint debt token minted to a user
	EventTypeMint EventType = "mint"
	// EventTypeBurn debt repaid and supply destroyed
	EventTypeBurn EventType = "burn"
	// EventTypeLiquidation forced redeem + burn across two accounts
	EventTypeLiquidation EventType = "liquidation"
)

// Event append-only operation log row. Redemption events carry both sides
// of the transfer; liquidations record the liquidator in ToUserID.
type Event struct {
	ID        uint64          `gorm:"primaryKey;autoIncrement" json:"id"`
	FollowID  string          `gorm:"size:36" json:"follow_id"`
	Type      EventType       `gorm:"size:20;index:idx_event_type" json:"type"`
	UserID    string          `gorm:"size:64;index:idx_event_user" json:"user_id"`
	ToUserID  string          `gorm:"size:64" json:"to_user_id,omitempty"`
	Symbol    string          `gorm:"size:20" json:"symbol,omitempty"`
	Amount    decimal.Decimal `gorm:"type:decimal(42,18)" json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

// IEventStore event store interface
type IEventStore interface {
	Create(ctx context.Context, tx *gorm.DB, event *Event) error
	FindByUser(ctx context.Context, userID string, limit int) ([]*Event, error)
	List(ctx context.Context, limit int) ([]*Event, error)
}
