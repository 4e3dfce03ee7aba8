package cmd

import (
	"os/signal"
	"syscall"

	"dsc/worker/watchdog"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var watchdogCmd = &cobra.Command{
	Use:   "watchdog",
	Short: "scan for accounts eligible for liquidation",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := provideApp()
		if err != nil {
			return err
		}

		w := watchdog.New(cfg.Watchdog.Spec, app.debts, app.account)
		if err := w.Start(); err != nil {
			return err
		}
		defer w.Stop()

		logrus.Infoln("watchdog running with spec", cfg.Watchdog.Spec)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		<-ctx.Done()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchdogCmd)
}
