package oracle

import (
	"context"

	"dsc/core"
	oraclestore "dsc/store/oracle"

	"github.com/shopspring/decimal"
)

// Service price feed over the oracle store. Prices are raw integers in the
// 8-decimal feed convention and are served exactly as last published: the
// engine performs no staleness or positivity checks on them.
type Service struct {
	store *oraclestore.Store
}

// New new price feed service
func New(store *oraclestore.Store) *Service {
	return &Service{
		store: store,
	}
}

func (s *Service) LatestPrice(ctx context.Context, feedID string) (decimal.Decimal, error) {
	price, ok, err := s.store.Find(ctx, feedID)
	if err != nil {
		return decimal.Zero, err
	}
	if !ok {
		return decimal.Zero, core.ErrInvalidPrice
	}

	return price, nil
}

// SetPrice publishes a new round for the feed.
func (s *Service) SetPrice(ctx context.Context, feedID string, price decimal.Decimal) error {
	return s.store.Save(ctx, feedID, price)
}

// Seed publishes genesis prices for feeds that have never published. Feeds
// with an existing round keep it.
func (s *Service) Seed(ctx context.Context, prices map[string]decimal.Decimal) error {
	for feedID, price := range prices {
		_, ok, err := s.store.Find(ctx, feedID)
		if err != nil {
			return err
		}
		if ok {
			continue
		}

		if err := s.store.Save(ctx, feedID, price); err != nil {
			return err
		}
	}

	return nil
}

var (
	_ core.IPriceFeed = (*Service)(nil)
	_ core.IPriceSink = (*Service)(nil)
)
