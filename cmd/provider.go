package cmd

import (
	"context"

	"dsc/core"
	"dsc/pkg/number"
	accountservice "dsc/service/account"
	engineservice "dsc/service/engine"
	oracleservice "dsc/service/oracle"
	tokenservice "dsc/service/token"
	"dsc/store"
	debtstore "dsc/store/debt"
	eventstore "dsc/store/event"
	oraclestore "dsc/store/oracle"
	tokenstore "dsc/store/token"
	vaultstore "dsc/store/vault"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func provideDatabase() *gorm.DB {
	return store.MustOpen(cfg.DB)
}

func providePriceFeed(db *gorm.DB) (*oracleservice.Service, error) {
	prices := make(map[string]decimal.Decimal, len(cfg.Genesis.Prices))
	for feedID, raw := range cfg.Genesis.Prices {
		prices[feedID] = number.Decimal(raw)
	}

	oracle := oracleservice.New(oraclestore.New(db))
	if err := oracle.Seed(context.Background(), prices); err != nil {
		return nil, err
	}

	return oracle, nil
}

type app struct {
	db       *gorm.DB
	engine   core.IEngine
	oracle   *oracleservice.Service
	account  core.IAccountService
	vaults   core.IVaultStore
	debts    core.IDebtStore
	events   core.IEventStore
	ledger   *tokenservice.Ledger
	dscToken *tokenservice.DebtToken
}

func provideApp() (*app, error) {
	db := provideDatabase()

	vaults := vaultstore.New(db)
	debts := debtstore.New(db)
	events := eventstore.New(db)
	tokens := tokenstore.New(db)

	oracle, err := providePriceFeed(db)
	if err != nil {
		return nil, err
	}
	ledger := tokenservice.NewLedger(tokens)
	dscToken := tokenservice.NewDebtToken(cfg.App.DebtSymbol, tokens)

	assets := make([]*core.CollateralAsset, 0, len(cfg.Genesis.Assets))
	for i, symbol := range cfg.Genesis.Assets {
		if i >= len(cfg.Genesis.Feeds) {
			break
		}
		assets = append(assets, &core.CollateralAsset{
			Symbol: symbol,
			FeedID: cfg.Genesis.Feeds[i],
		})
	}

	account := accountservice.New(assets, vaults, debts, oracle)

	engine, err := engineservice.New(
		db,
		cfg.Genesis.Assets,
		cfg.Genesis.Feeds,
		vaults,
		debts,
		events,
		oracle,
		dscToken,
		ledger,
		account,
	)
	if err != nil {
		return nil, err
	}

	return &app{
		db:       db,
		engine:   engine,
		oracle:   oracle,
		account:  account,
		vaults:   vaults,
		debts:    debts,
		events:   events,
		ledger:   ledger,
		dscToken: dscToken,
	}, nil
}
