package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// IPriceFeed quotes the latest price for a feed in the 8-decimal
// convention, i.e. a raw integer such that price = raw / 1e8 USD.
//
// Feed data is trusted as-is: no staleness or positivity validation is
// performed at this layer. That is a documented limitation of the design,
// not an oversight to harden here.
type IPriceFeed interface {
	LatestPrice(ctx context.Context, feedID string) (decimal.Decimal, error)
}

// IPriceSink accepts operator-published feed rounds.
type IPriceSink interface {
	SetPrice(ctx context.Context, feedID string, price decimal.Decimal) error
}
