package commands

import (
	"github.com/spf13/cobra"
)

var storeFile string

var rootCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Single-user inventory record keeper",
	Long: `Single-user inventory record keeper.

Stores product records (id, name, description, price, quantity) in a single
JSON file and offers create/read/update/delete, name search and inventory
statistics over the collection.

The backing file path comes from config.yaml (store.path), a .env file or
the INVENTORY_STORE_PATH environment variable, and can be overridden per
call with --file.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&storeFile, "file", "f", "", "backing store file (overrides configuration)")

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(demoCmd)
}
