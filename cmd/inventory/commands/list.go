package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aroldan/inventory/pkg/cli"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all records with inventory totals",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		inventory, err := svc.List(cmd.Context())
		if err != nil {
			return err
		}

		if inventory.Count == 0 {
			cli.PrintInfo("no records stored")
			return nil
		}

		fmt.Println(cli.Header("Stored records:"))
		for _, record := range inventory.Records {
			fmt.Println(renderRecordLine(record))
		}
		fmt.Println()
		fmt.Printf("%s %s\n", cli.Label("total inventory value:"), cli.Money(inventory.TotalValue))
		fmt.Printf("%s %d\n", cli.Label("distinct records:"), inventory.Count)
		return nil
	},
}
