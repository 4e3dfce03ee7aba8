// Package watchdog periodically scans every indebted account and reports
// the ones whose health factor has fallen below the minimum, i.e. the
// accounts a liquidator may act on.
package watchdog

import (
	"context"

	"dsc/core"
	"dsc/internal/dsc"
	"dsc/worker"

	"github.com/fox-one/pkg/logger"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
)

const scanConcurrency = 16

// Worker liquidation watchdog worker
type Worker struct {
	worker.BaseJob
	debtStore      core.IDebtStore
	accountService core.IAccountService
}

// New new watchdog worker
func New(spec string, debtStore core.IDebtStore, accountService core.IAccountService) *Worker {
	job := Worker{
		debtStore:      debtStore,
		accountService: accountService,
	}

	job.Cron = cron.New()
	job.Cron.AddFunc(spec, job.Run)
	job.OnWork = func() error {
		return job.onWork(context.Background())
	}

	return &job
}

func (w *Worker) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "watchdog")

	users, err := w.debtStore.Users(ctx)
	if err != nil {
		log.Errorln(err)
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(scanConcurrency)

	for _, userID := range users {
		userID := userID
		g.Go(func() error {
			account, err := w.accountService.Account(ctx, userID)
			if err != nil {
				log.WithField("user", userID).Errorln(err)
				return err
			}

			if account.Debt.IsPositive() && account.HealthFactor.LessThan(dsc.MinHealthFactor) {
				log.WithField("user", userID).
					Infof("eligible for liquidation: factor %s, debt %s, collateral value %s",
						account.HealthFactor, account.Debt, account.CollateralValue)
			}

			return nil
		})
	}

	return g.Wait()
}
