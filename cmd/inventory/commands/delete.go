package commands

import (
	"github.com/spf13/cobra"

	"github.com/aroldan/inventory/pkg/cli"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a record by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		svc, err := newService()
		if err != nil {
			return err
		}

		record, err := svc.DeleteByID(cmd.Context(), id)
		if err != nil {
			return err
		}

		cli.PrintSuccess("record %q deleted (id %d)", record.Name, record.ID)
		return nil
	},
}
