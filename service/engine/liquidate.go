package engine

import (
	"context"

	"dsc/core"
	"dsc/internal/dsc"

	"github.com/fox-one/pkg/logger"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Liquidate force-closes part of an insolvent user's position: the
// liquidator pays debtToCover of debt token out of their own balance and
// seizes the equivalent collateral plus the bonus share. The whole call
// commits only if it strictly improves the target's health factor and
// leaves the liquidator solvent.
func (s *engineService) Liquidate(ctx context.Context, liquidatorID, userID, symbol string, debtToCover decimal.Decimal) error {
	log := logger.FromContext(ctx).WithField("service", "liquidate")

	if !debtToCover.IsPositive() {
		return core.ErrInvalidAmount
	}
	if _, err := s.asset(symbol); err != nil {
		return err
	}

	if !s.guard.Enter() {
		return core.ErrReentrantCall
	}
	defer s.guard.Exit()

	debt, value, err := s.accountService.AccountInformation(ctx, userID)
	if err != nil {
		return err
	}

	startFactor := dsc.HealthFactor(debt, value)
	if startFactor.GreaterThanOrEqual(dsc.MinHealthFactor) {
		return core.ErrHealthFactorOk
	}

	price, err := s.price(ctx, symbol)
	if err != nil {
		return err
	}

	equivalent, bonus, totalSeized := dsc.LiquidationPayout(price, debtToCover)
	log.Debugf("seizing %s %s (%s + %s bonus) from %s for %s debt",
		totalSeized, symbol, equivalent, bonus, userID, debtToCover)

	endFactor := dsc.HealthFactor(
		debt.Sub(debtToCover),
		value.Sub(dsc.UsdValue(price, totalSeized)),
	)

	liquidatorDebt, liquidatorValue, err := s.accountService.AccountInformation(ctx, liquidatorID)
	if err != nil {
		return err
	}
	liquidatorFactor := dsc.HealthFactor(liquidatorDebt, liquidatorValue)

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.withdrawCollateral(ctx, tx, symbol, totalSeized, userID, liquidatorID); err != nil {
			return err
		}

		if err := s.burnDsc(ctx, tx, userID, liquidatorID, debtToCover); err != nil {
			return err
		}

		if endFactor.LessThanOrEqual(startFactor) {
			return &core.HealthFactorError{Code: core.ErrHealthFactorNotImproved, Factor: endFactor}
		}

		if liquidatorFactor.LessThan(dsc.MinHealthFactor) {
			return &core.HealthFactorError{Code: core.ErrHealthFactorViolated, Factor: liquidatorFactor}
		}

		return s.eventStore.Create(ctx, tx, &core.Event{
			Type:     core.EventTypeLiquidation,
			UserID:   userID,
			ToUserID: liquidatorID,
			Symbol:   symbol,
			Amount:   totalSeized,
		})
	})
}
