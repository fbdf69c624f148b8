package commands

import (
	"github.com/spf13/cobra"

	"github.com/aroldan/inventory/pkg/cli"
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace the fields of a record",
	Long: `Replace the name, description, price and quantity of an existing
record. The id and the record's position in the collection never change.

Example:
  inventory update 1 --name "Pencil 2B" --description "For sketching" --price 3500 --quantity 80`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		input, err := inputFromFlags(cmd)
		if err != nil {
			return err
		}

		svc, err := newService()
		if err != nil {
			return err
		}

		record, err := svc.Update(cmd.Context(), id, input)
		if err != nil {
			return err
		}

		cli.PrintSuccess("record %q updated (id %d)", record.Name, record.ID)
		return nil
	},
}

func init() {
	addRecordFlags(updateCmd)
}
