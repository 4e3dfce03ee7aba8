package core

// CollateralAsset identifies a fungible asset accepted as collateral,
// paired with the price feed that quotes it. The set is fixed at engine
// construction and immutable afterwards; an asset without a feed is not
// accepted by any operation.
type CollateralAsset struct {
	Symbol string `json:"symbol"`
	FeedID string `json:"feed_id"`
}
