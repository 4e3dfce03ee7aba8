package cmd

import (
	"dsc/store"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "migrate database tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		db := provideDatabase()
		return store.Migrate(db)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
