package cmd

import (
	"encoding/json"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func amountFlag(cmd *cobra.Command, name string) (decimal.Decimal, error) {
	raw, err := cmd.Flags().GetString(name)
	if err != nil {
		return decimal.Zero, err
	}

	return decimal.NewFromString(raw)
}

var depositCmd = &cobra.Command{
	Use:   "deposit",
	Short: "deposit collateral into the engine",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := provideApp()
		if err != nil {
			return err
		}

		user, _ := cmd.Flags().GetString("user")
		asset, _ := cmd.Flags().GetString("asset")
		amount, err := amountFlag(cmd, "amount")
		if err != nil {
			return err
		}

		return app.engine.DepositCollateral(cmd.Context(), user, asset, amount)
	},
}

var mintCmd = &cobra.Command{
	Use:   "mint",
	Short: "mint debt token against deposited collateral",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := provideApp()
		if err != nil {
			return err
		}

		user, _ := cmd.Flags().GetString("user")
		amount, err := amountFlag(cmd, "amount")
		if err != nil {
			return err
		}

		return app.engine.MintDsc(cmd.Context(), user, amount)
	},
}

var liquidateCmd = &cobra.Command{
	Use:   "liquidate",
	Short: "cover an insolvent user's debt for a collateral bonus",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := provideApp()
		if err != nil {
			return err
		}

		liquidator, _ := cmd.Flags().GetString("liquidator")
		user, _ := cmd.Flags().GetString("user")
		asset, _ := cmd.Flags().GetString("asset")
		amount, err := amountFlag(cmd, "amount")
		if err != nil {
			return err
		}

		return app.engine.Liquidate(cmd.Context(), liquidator, user, asset, amount)
	},
}

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "show a user's position",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := provideApp()
		if err != nil {
			return err
		}

		user, _ := cmd.Flags().GetString("user")
		account, err := app.account.Account(cmd.Context(), user)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(account, "", "  ")
		if err != nil {
			return err
		}

		cmd.Println(string(out))
		return nil
	},
}

var faucetCmd = &cobra.Command{
	Use:   "faucet",
	Short: "credit a wallet with collateral asset (dev helper)",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := provideApp()
		if err != nil {
			return err
		}

		user, _ := cmd.Flags().GetString("user")
		asset, _ := cmd.Flags().GetString("asset")
		amount, err := amountFlag(cmd, "amount")
		if err != nil {
			return err
		}

		return app.ledger.Deposit(cmd.Context(), app.db, asset, user, amount)
	},
}

func init() {
	for _, c := range []*cobra.Command{depositCmd, mintCmd, liquidateCmd, accountCmd, faucetCmd} {
		c.Flags().String("user", "", "user id")
		rootCmd.AddCommand(c)
	}

	for _, c := range []*cobra.Command{depositCmd, liquidateCmd, faucetCmd} {
		c.Flags().String("asset", "", "collateral asset symbol")
	}

	for _, c := range []*cobra.Command{depositCmd, mintCmd, liquidateCmd, faucetCmd} {
		c.Flags().String("amount", "0", "amount")
	}

	liquidateCmd.Flags().String("liquidator", "", "liquidator user id")
}
