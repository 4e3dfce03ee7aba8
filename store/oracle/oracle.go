package oracle

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Price latest published round for one feed
type Price struct {
	ID        uint64          `gorm:"primaryKey;autoIncrement" json:"id"`
	FeedID    string          `gorm:"size:64;uniqueIndex:idx_oracle_feed" json:"feed_id"`
	Price     decimal.Decimal `gorm:"type:decimal(42,18)" json:"price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Store price store
type Store struct {
	db *gorm.DB
}

// New new price store
func New(db *gorm.DB) *Store {
	return &Store{
		db: db,
	}
}

// Migrate migrate price table
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Price{})
}

// Find returns the latest round for the feed; ok is false when the feed has
// never published.
func (s *Store) Find(ctx context.Context, feedID string) (decimal.Decimal, bool, error) {
	var price Price
	if err := s.db.WithContext(ctx).Where("feed_id = ?", feedID).First(&price).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, err
	}

	return price.Price, true, nil
}

// Save upserts the latest round for the feed.
func (s *Store) Save(ctx context.Context, feedID string, value decimal.Decimal) error {
	var price Price
	err := s.db.WithContext(ctx).Where("feed_id = ?", feedID).First(&price).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		price = Price{
			FeedID: feedID,
			Price:  value,
		}
		return s.db.WithContext(ctx).Create(&price).Error
	}
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Model(&price).Update("price", value).Error
}
