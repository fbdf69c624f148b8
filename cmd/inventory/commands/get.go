package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aroldan/inventory/pkg/cli"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Look up a record by id",
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

		record, err := svc.FindByID(cmd.Context(), id)
		if err != nil {
			return err
		}

		fmt.Println(cli.Header("Record found:"))
		fmt.Println(renderRecord(record))
		return nil
	},
}
