package views

import (
	"dsc/core"

	"github.com/shopspring/decimal"
)

// Account account view with aggregates
type Account struct {
	core.Account
	Solvent bool `json:"solvent"`
}

// Asset registered asset view with its current quote
type Asset struct {
	core.CollateralAsset
	Price decimal.Decimal `json:"price"`
}
