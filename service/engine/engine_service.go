package engine

import (
	"context"

	"dsc/core"
	"dsc/internal/dsc"
	"dsc/pkg/guard"

	"github.com/fox-one/pkg/logger"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CustodyAccount token ledger account holding engine custody
const CustodyAccount = "dsc-engine"

type engineService struct {
	db         *gorm.DB
	assets     []*core.CollateralAsset
	assetIndex map[string]*core.CollateralAsset

	vaultStore core.IVaultStore
	debtStore  core.IDebtStore
	eventStore core.IEventStore

	priceFeed      core.IPriceFeed
	debtToken      core.IDebtToken
	tokenLedger    core.ITokenLedger
	accountService core.IAccountService

	guard *guard.Guard
}

// New builds the engine from parallel asset/feed registration lists. The
// lists must be equal length; the registry is immutable afterwards.
func New(
	db *gorm.DB,
	symbols []string,
	feedIDs []string,
	vaultStore core.IVaultStore,
	debtStore core.IDebtStore,
	eventStore core.IEventStore,
	priceFeed core.IPriceFeed,
	debtToken core.IDebtToken,
	tokenLedger core.ITokenLedger,
	accountService core.IAccountService,
) (core.IEngine, error) {
	if len(symbols) != len(feedIDs) {
		return nil, core.ErrLengthMismatch
	}

	assets := make([]*core.CollateralAsset, 0, len(symbols))
	index := make(map[string]*core.CollateralAsset, len(symbols))
	for i, symbol := range symbols {
		asset := &core.CollateralAsset{
			Symbol: symbol,
			FeedID: feedIDs[i],
		}
		assets = append(assets, asset)
		index[symbol] = asset
	}

	return &engineService{
		db:             db,
		assets:         assets,
		assetIndex:     index,
		vaultStore:     vaultStore,
		debtStore:      debtStore,
		eventStore:     eventStore,
		priceFeed:      priceFeed,
		debtToken:      debtToken,
		tokenLedger:    tokenLedger,
		accountService: accountService,
		guard:          guard.New(),
	}, nil
}

func (s *engineService) asset(symbol string) (*core.CollateralAsset, error) {
	asset, ok := s.assetIndex[symbol]
	if !ok {
		return nil, core.ErrAssetNotRegistered
	}

	return asset, nil
}

func (s *engineService) price(ctx context.Context, symbol string) (decimal.Decimal, error) {
	asset, err := s.asset(symbol)
	if err != nil {
		return decimal.Zero, err
	}

	return s.priceFeed.LatestPrice(ctx, asset.FeedID)
}

func (s *engineService) DepositCollateral(ctx context.Context, userID, symbol string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return core.ErrInvalidAmount
	}
	if _, err := s.asset(symbol); err != nil {
		return err
	}

	if !s.guard.Enter() {
		return core.ErrReentrantCall
	}
	defer s.guard.Exit()

	return s.db.Transaction(func(tx *gorm.DB) error {
		return s.depositCollateral(ctx, tx, userID, symbol, amount)
	})
}

func (s *engineService) RedeemCollateral(ctx context.Context, userID, symbol string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return core.ErrInvalidAmount
	}
	if _, err := s.asset(symbol); err != nil {
		return err
	}

	if !s.guard.Enter() {
		return core.ErrReentrantCall
	}
	defer s.guard.Exit()

	factor, err := s.postFactor(ctx, userID, symbol, amount.Neg(), decimal.Zero)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.withdrawCollateral(ctx, tx, symbol, amount, userID, userID); err != nil {
			return err
		}

		if factor.LessThan(dsc.MinHealthFactor) {
			return &core.HealthFactorError{Code: core.ErrHealthFactorViolated, Factor: factor}
		}

		return nil
	})
}

func (s *engineService) MintDsc(ctx context.Context, userID string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return core.ErrInvalidAmount
	}

	if !s.guard.Enter() {
		return core.ErrReentrantCall
	}
	defer s.guard.Exit()

	factor, err := s.postFactor(ctx, userID, "", decimal.Zero, amount)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		return s.mintDsc(ctx, tx, userID, amount, factor)
	})
}

func (s *engineService) BurnDsc(ctx context.Context, userID string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return core.ErrInvalidAmount
	}

	if !s.guard.Enter() {
		return core.ErrReentrantCall
	}
	defer s.guard.Exit()

	return s.db.Transaction(func(tx *gorm.DB) error {
		return s.burnDsc(ctx, tx, userID, userID, amount)
	})
}

func (s *engineService) DepositCollateralAndMintDsc(ctx context.Context, userID, symbol string, amount, mintAmount decimal.Decimal) error {
	if !amount.IsPositive() || !mintAmount.IsPositive() {
		return core.ErrInvalidAmount
	}
	if _, err := s.asset(symbol); err != nil {
		return err
	}

	if !s.guard.Enter() {
		return core.ErrReentrantCall
	}
	defer s.guard.Exit()

	factor, err := s.postFactor(ctx, userID, symbol, amount, mintAmount)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.depositCollateral(ctx, tx, userID, symbol, amount); err != nil {
			return err
		}

		return s.mintDsc(ctx, tx, userID, mintAmount, factor)
	})
}

func (s *engineService) RedeemCollateralForDsc(ctx context.Context, userID, symbol string, amount, burnAmount decimal.Decimal) error {
	if !amount.IsPositive() || !burnAmount.IsPositive() {
		return core.ErrInvalidAmount
	}
	if _, err := s.asset(symbol); err != nil {
		return err
	}

	if !s.guard.Enter() {
		return core.ErrReentrantCall
	}
	defer s.guard.Exit()

	factor, err := s.postFactor(ctx, userID, symbol, amount.Neg(), burnAmount.Neg())
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.burnDsc(ctx, tx, userID, userID, burnAmount); err != nil {
			return err
		}

		if err := s.withdrawCollateral(ctx, tx, symbol, amount, userID, userID); err != nil {
			return err
		}

		if factor.LessThan(dsc.MinHealthFactor) {
			return &core.HealthFactorError{Code: core.ErrHealthFactorViolated, Factor: factor}
		}

		return nil
	})
}

// depositCollateral credits the vault first, then pulls the asset in. The
// pull failing rolls the credit back with the enclosing transaction.
func (s *engineService) depositCollateral(ctx context.Context, tx *gorm.DB, userID, symbol string, amount decimal.Decimal) error {
	if err := s.vaultStore.Add(ctx, tx, userID, symbol, amount); err != nil {
		return err
	}

	if err := s.eventStore.Create(ctx, tx, &core.Event{
		Type:   core.EventTypeDeposit,
		UserID: userID,
		Symbol: symbol,
		Amount: amount,
	}); err != nil {
		return err
	}

	if err := s.tokenLedger.TransferFrom(ctx, tx, symbol, userID, CustodyAccount, amount); err != nil {
		return &core.TransferError{Symbol: symbol, Err: err}
	}

	logger.FromContext(ctx).WithField("user", userID).Debugf("deposited %s %s", amount, symbol)
	return nil
}

// withdrawCollateral debits from's balance before pushing the asset out,
// so even a re-entrant observer sees the reduced balance.
func (s *engineService) withdrawCollateral(ctx context.Context, tx *gorm.DB, symbol string, amount decimal.Decimal, from, to string) error {
	if err := s.vaultStore.Sub(ctx, tx, from, symbol, amount); err != nil {
		return err
	}

	if err := s.eventStore.Create(ctx, tx, &core.Event{
		Type:     core.EventTypeRedeem,
		UserID:   from,
		ToUserID: to,
		Symbol:   symbol,
		Amount:   amount,
	}); err != nil {
		return err
	}

	if err := s.tokenLedger.Transfer(ctx, tx, symbol, CustodyAccount, to, amount); err != nil {
		return &core.TransferError{Symbol: symbol, Err: err}
	}

	return nil
}

// mintDsc raises the debt counter, checks the post-state factor, and only
// then mints supply.
func (s *engineService) mintDsc(ctx context.Context, tx *gorm.DB, userID string, amount, factor decimal.Decimal) error {
	if err := s.debtStore.Add(ctx, tx, userID, amount); err != nil {
		return err
	}

	if factor.LessThan(dsc.MinHealthFactor) {
		return &core.HealthFactorError{Code: core.ErrHealthFactorViolated, Factor: factor}
	}

	if err := s.debtToken.Mint(ctx, tx, userID, amount); err != nil {
		return core.ErrMintFailed
	}

	return s.eventStore.Create(ctx, tx, &core.Event{
		Type:   core.EventTypeMint,
		UserID: userID,
		Symbol: s.debtToken.Symbol(),
		Amount: amount,
	})
}

// burnDsc lowers onBehalfOf's debt, funded by payer's token balance.
func (s *engineService) burnDsc(ctx context.Context, tx *gorm.DB, onBehalfOf, payer string, amount decimal.Decimal) error {
	if err := s.debtStore.Sub(ctx, tx, onBehalfOf, amount); err != nil {
		return err
	}

	if err := s.debtToken.TransferFrom(ctx, tx, payer, CustodyAccount, amount); err != nil {
		return &core.TransferError{Symbol: s.debtToken.Symbol(), Err: err}
	}

	if err := s.debtToken.Burn(ctx, tx, CustodyAccount, amount); err != nil {
		return &core.TransferError{Symbol: s.debtToken.Symbol(), Err: err}
	}

	return s.eventStore.Create(ctx, tx, &core.Event{
		Type:     core.EventTypeBurn,
		UserID:   onBehalfOf,
		ToUserID: payer,
		Symbol:   s.debtToken.Symbol(),
		Amount:   amount,
	})
}

// postFactor computes the health factor the user would have after moving
// collateralDelta of symbol and debtDelta of minted debt. The guard is
// held by the caller, so state read here cannot shift mid-operation.
func (s *engineService) postFactor(ctx context.Context, userID, symbol string, collateralDelta, debtDelta decimal.Decimal) (decimal.Decimal, error) {
	debt, value, err := s.accountService.AccountInformation(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}

	if !collateralDelta.IsZero() {
		price, err := s.price(ctx, symbol)
		if err != nil {
			return decimal.Zero, err
		}

		delta := dsc.UsdValue(price, collateralDelta.Abs())
		if collateralDelta.IsNegative() {
			value = value.Sub(delta)
		} else {
			value = value.Add(delta)
		}
	}

	return dsc.HealthFactor(debt.Add(debtDelta), value), nil
}
