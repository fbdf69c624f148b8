package commands

import (
	"github.com/spf13/cobra"

	"github.com/aroldan/inventory/pkg/cli"
)

var createCmd = &cobra.Command{
	Use:   "create <id>",
	Short: "Create a new record",
	Long: `Create a new record under the given id.

The id is a caller-chosen integer and must not already be in use.

Examples:
  inventory create 1 --name "Pencil HB" --description "Premium graphite" --price 1500 --quantity 200
  inventory -f shop.json create 2 --name Eraser --price 800 --quantity 150`,
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

		record, err := svc.Create(cmd.Context(), id, input)
		if err != nil {
			return err
		}

		cli.PrintSuccess("record %q created (id %d)", record.Name, record.ID)
		return nil
	},
}

func init() {
	addRecordFlags(createCmd)
}
